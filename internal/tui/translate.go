package tui

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/ansi"
)

// clickDirective matches a clickable-region marker, `%N@Handler@`. Click
// regions are meaningless inside a terminal pane, so translation drops them.
var clickDirective = regexp.MustCompile(`^%[0-9]+@[^@]*@`)

// Translate renders a composed tabline — style directives, escapes, click
// markers and all — into an ANSI-styled string using the theme. Unknown style
// names fall back to the default style.
func Translate(line string, theme map[string]lipgloss.Style) string {
	var (
		b     strings.Builder
		run   strings.Builder
		style = Regular
	)
	flush := func() {
		if run.Len() > 0 {
			b.WriteString(style.Render(run.String()))
			run.Reset()
		}
	}
	for i := 0; i < len(line); {
		if line[i] != '%' {
			run.WriteByte(line[i])
			i++
			continue
		}
		// escaped literal percent
		if strings.HasPrefix(line[i:], "%%") {
			run.WriteByte('%')
			i += 2
			continue
		}
		// style switch
		if strings.HasPrefix(line[i:], "%#") {
			end := strings.IndexByte(line[i+2:], '#')
			if end == -1 {
				run.WriteByte('%')
				i++
				continue
			}
			flush()
			name := line[i+2 : i+2+end]
			if s, ok := theme[name]; ok {
				style = s
			} else {
				style = Regular
			}
			i += 2 + end + 1
			continue
		}
		// click region
		if loc := clickDirective.FindStringIndex(line[i:]); loc != nil {
			i += loc[1]
			continue
		}
		// stray percent; emit as-is
		run.WriteByte('%')
		i++
	}
	flush()
	return b.String()
}

// Pad pads a translated line with the theme's fill style up to width columns.
func Pad(rendered string, width int, theme map[string]lipgloss.Style) string {
	if gap := width - ansi.PrintableRuneWidth(rendered); gap > 0 {
		return rendered + theme["TabFill"].Render(strings.Repeat(" ", gap))
	}
	return rendered
}
