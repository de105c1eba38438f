// Package segment provides the styled text runs composing the rendered
// tabline, and width-aware operations over ordered lists of them. All widths
// are display columns, not bytes, so multi-byte and double-width characters
// are measured by the space they occupy on screen.
package segment

import (
	"fmt"
	"strings"

	"github.com/leg100/go-runewidth"
)

// ClickHandler is the name of the handler the host render sink binds
// clickable regions to.
const ClickHandler = "TablineClickHandler"

// A Segment is a styled run of text, the atomic unit of the rendered line.
type Segment struct {
	// Style names the style region the text is rendered with. An empty style
	// leaves the previously declared style in effect.
	Style string
	Text  string
	// Handle, when non-zero, opens a clickable region bound to the handle.
	// The region extends until the next segment with a non-zero handle.
	Handle int
}

func (s Segment) width() int {
	return runewidth.StringWidth(s.Text)
}

// List is an ordered sequence of styled segments; list order is rendering
// order, left to right.
type List []Segment

// Width returns the total number of display columns the list occupies.
func (l List) Width() (width int) {
	for _, s := range l {
		width += s.width()
	}
	return
}

// String serializes the list into a single line consumable by the host render
// sink: `%#Style#` declares a style switch, `%N@Handler@` opens a clickable
// region, and any literal percent within text is escaped as `%%`.
func (l List) String() string {
	var b strings.Builder
	for _, s := range l {
		if s.Handle != 0 {
			fmt.Fprintf(&b, "%%%d@%s@", s.Handle, ClickHandler)
		}
		if s.Style != "" {
			b.WriteString("%#")
			b.WriteString(s.Style)
			b.WriteString("#")
		}
		b.WriteString(strings.ReplaceAll(s.Text, "%", "%%"))
	}
	return b.String()
}

// CropRight keeps segments left-to-right until the accumulated width reaches
// width; the segment crossing the boundary is truncated by display column to
// fit. Nothing past that point is kept. A width of zero or less yields an
// empty list.
func (l List) CropRight(width int) List {
	if width <= 0 {
		return nil
	}
	var out List
	remaining := width
	for _, s := range l {
		w := s.width()
		if w <= remaining {
			out = append(out, s)
			remaining -= w
			if remaining == 0 {
				break
			}
			continue
		}
		// Crossing segment: keep only its leftmost columns.
		s.Text = runewidth.Truncate(s.Text, remaining, "")
		if s.Text != "" {
			out = append(out, s)
		}
		break
	}
	return out
}

// CropLeft is the symmetric operation, keeping the last width columns. The
// segment crossing the boundary is cropped from its left edge.
func (l List) CropLeft(width int) List {
	if width <= 0 {
		return nil
	}
	skip := l.Width() - width
	if skip <= 0 {
		return l
	}
	var out List
	for _, s := range l {
		if skip > 0 {
			w := s.width()
			if w <= skip {
				skip -= w
				continue
			}
			s.Text = runewidth.TruncateLeft(s.Text, skip, "")
			skip = 0
			if s.Text == "" {
				continue
			}
		}
		out = append(out, s)
	}
	return out
}

// InsertAt lays others over the list such that its first character lands at
// display column position. Existing content overlapping the inserted range is
// cropped or dropped; content fully left or right of the range is preserved,
// with the segment straddling the range's end cropped from its left edge.
// Later insertions therefore win over earlier ones where they overlap. A
// position beyond the total width appends others at the end.
func (l List) InsertAt(position int, others List) List {
	if position < 0 {
		position = 0
	}
	total := l.Width()
	if position > total {
		position = total
	}
	out := append(List{}, l.CropRight(position)...)
	out = append(out, others...)
	if end := position + others.Width(); total > end {
		out = append(out, l.CropLeft(total-end)...)
	}
	return out
}
