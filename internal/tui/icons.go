package tui

import (
	"github.com/kmaicher/tabline/internal/tab"
)

// Icons resolves a glyph and style per document language. It implements the
// render engine's icon provider boundary.
type Icons struct{}

func (Icons) Icon(name, language string, activity tab.Activity) (glyph, style string) {
	switch language {
	case "go":
		return "◈", "TabIconGo"
	case "markdown":
		return "◎", "TabIconMd"
	case "terminal":
		return ">", "TabIconTerm"
	default:
		// plain documents inherit the tab's own style
		return "·", ""
	}
}
