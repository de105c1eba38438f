package tab

import (
	"cmp"
	"strings"
)

// SortCriterion selects a comparator for ordering unpinned tabs.
type SortCriterion int

const (
	// ByHandle orders tabs by their numeric host handle.
	ByHandle SortCriterion = iota
	// ByDirectory orders tabs by parent-path depth, deepest first, then
	// lexicographically by path.
	ByDirectory
	// ByLanguage orders tabs by their document's language label.
	ByLanguage
	// ByWindow orders tabs by the host window number they were last shown in.
	ByWindow
)

func (c SortCriterion) String() string {
	switch c {
	case ByDirectory:
		return "directory"
	case ByLanguage:
		return "language"
	case ByWindow:
		return "window"
	default:
		return "handle"
	}
}

func (c SortCriterion) compare(a, b *Tab) int {
	switch c {
	case ByDirectory:
		if v := cmp.Compare(pathDepth(b.Path), pathDepth(a.Path)); v != 0 {
			return v
		}
		return cmp.Compare(a.Path, b.Path)
	case ByLanguage:
		return cmp.Compare(a.Language, b.Language)
	case ByWindow:
		return cmp.Compare(a.Window, b.Window)
	default:
		return cmp.Compare(a.Handle, b.Handle)
	}
}

func pathDepth(path string) int {
	return strings.Count(path, "/")
}
