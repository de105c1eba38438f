// Package render composes the tabline: it drives the layout engine, assembles
// each tab's styled segments, merges them onto a canvas positioned by
// x-coordinate, crops the canvas to the scroll window and serializes the
// result into a single styled line for the host render sink.
package render

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/kmaicher/tabline/internal/animate"
	"github.com/kmaicher/tabline/internal/layout"
	"github.com/kmaicher/tabline/internal/logging"
	"github.com/kmaicher/tabline/internal/segment"
	"github.com/kmaicher/tabline/internal/tab"
	"github.com/leg100/go-runewidth"
	"github.com/leg100/reflow/truncate"
)

const scrollDuration = 200 * time.Millisecond

// DocProvider is the read-only boundary to the host's open documents.
type DocProvider interface {
	Name(handle int) (string, error)
	Modified(handle int) (bool, error)
	// Tabpages reports the host's current page and the total number of pages.
	Tabpages() (current, total int)
}

// IconProvider yields a glyph and style name for a document. An empty style
// name makes the glyph inherit the tab's own style.
type IconProvider interface {
	Icon(name, language string, activity tab.Activity) (glyph, style string)
}

// Offset is a region reserved at the left edge of the line, e.g. to align the
// tabline with a side panel.
type Offset struct {
	Width int
	Text  string
	Style string
}

type Options struct {
	Tabs      *tab.Service
	Docs      DocProvider
	Icons     IconProvider
	Engine    *layout.Engine
	Scheduler *animate.Scheduler
	Logger    logging.Interface

	// Animation enables smooth scrolling; when disabled scroll jumps.
	Animation bool
	// AutoHide suppresses the line entirely while at most one tab is open.
	AutoHide bool
	// JumpLetters is the alphabet jump mode assigns from, in order of
	// preference.
	JumpLetters   string
	CloseGlyph    string
	ModifiedGlyph string
	PinnedGlyph   string
}

// Renderer holds the mutable render state of one session: scroll position,
// offset region and jump mode. Everything else is recomputed per render pass.
type Renderer struct {
	tabs      *tab.Service
	docs      DocProvider
	icons     IconProvider
	engine    *layout.Engine
	scheduler *animate.Scheduler
	logger    logging.Interface

	animation     bool
	autoHide      bool
	jumpAlphabet  string
	closeGlyph    string
	modifiedGlyph string
	pinnedGlyph   string

	width         int
	scrollCurrent int
	scrollTarget  int
	// rightmost useful scroll column as of the last render pass
	maxScroll int
	// the scroll animation is globally singular; starting a new one stops the
	// previous one.
	scrollAnim *animate.Animation

	offset Offset

	jumpMode    bool
	jumpLetters map[int]rune
}

func New(opts Options) *Renderer {
	if opts.JumpLetters == "" {
		opts.JumpLetters = "asdfjkl;ghnmxcvbziowerutylqp"
	}
	if opts.CloseGlyph == "" {
		opts.CloseGlyph = "×"
	}
	if opts.ModifiedGlyph == "" {
		opts.ModifiedGlyph = "●"
	}
	if opts.PinnedGlyph == "" {
		opts.PinnedGlyph = "◆"
	}
	return &Renderer{
		tabs:          opts.Tabs,
		docs:          opts.Docs,
		icons:         opts.Icons,
		engine:        opts.Engine,
		scheduler:     opts.Scheduler,
		logger:        opts.Logger,
		animation:     opts.Animation,
		autoHide:      opts.AutoHide,
		jumpAlphabet:  opts.JumpLetters,
		closeGlyph:    opts.CloseGlyph,
		modifiedGlyph: opts.ModifiedGlyph,
		pinnedGlyph:   opts.PinnedGlyph,
		width:         80,
	}
}

// SetWidth sets the viewport width in columns.
func (r *Renderer) SetWidth(width int) {
	r.width = width
}

// SetOffset reserves width columns at the left edge, rendered with the given
// text and style.
func (r *Renderer) SetOffset(width int, text, style string) {
	r.offset = Offset{Width: max(width, 0), Text: text, Style: style}
}

// SetScroll scrolls to an absolute column, clamped against the content.
func (r *Renderer) SetScroll(target int) {
	r.setScrollTarget(target)
}

// Scroll returns the current scroll column.
func (r *Renderer) Scroll() int {
	return r.scrollCurrent
}

// Render performs one render pass. With updateNames set, tab labels are
// refreshed from the document provider. With refocus set, the scroll target
// is adjusted so the current tab is fully visible. hidden reports that the
// line should not be displayed at all (auto-hide).
func (r *Renderer) Render(updateNames, refocus bool) (line string, hidden bool) {
	tabs := r.tabs.List()
	if r.autoHide && len(tabs) <= 1 {
		return "", true
	}

	// Collect: refresh per-tab host state.
	for _, t := range tabs {
		if updateNames {
			if name, err := r.docs.Name(t.Handle); err == nil {
				t.Label = name
			}
		}
		if modified, err := r.docs.Modified(t.Handle); err == nil {
			t.Modified = modified
		}
	}

	var tabpages string
	if current, total := r.docs.Tabpages(); total > 1 {
		tabpages = " " + strconv.Itoa(current) + "/" + strconv.Itoa(total) + " "
	}

	// Compute layout.
	l := r.engine.Calculate(tabs, r.width, r.offset.Width, runewidth.StringWidth(tabpages))
	positions := r.engine.Positions(tabs)
	r.maxScroll = max(l.ActualWidth-l.BuffersWidth, 0)

	// Merge per-tab segments onto the canvas. The current tab is inserted
	// last so that where animations make tabs overlap, its segments and click
	// region win.
	canvas := segment.List{{Style: "TabFill", Text: strings.Repeat(" ", l.ActualWidth)}}
	var currentTab *tab.Tab
	for _, t := range tabs {
		if t.Activity == tab.Current {
			currentTab = t
			continue
		}
		canvas = canvas.InsertAt(r.position(t, positions), r.tabSegments(t, l))
	}
	if currentTab != nil {
		canvas = canvas.InsertAt(r.position(currentTab, positions), r.tabSegments(currentTab, l))

		if refocus {
			// Auto-scroll so the current tab's full range is within the
			// visible window.
			start := int(math.Round(positions[currentTab.Handle]))
			end := start + l.Widths[currentTab.Handle]
			target := r.scrollTarget
			if target > start {
				target = start
			}
			if target+l.BuffersWidth < end {
				target = end - l.BuffersWidth
			}
			if target != r.scrollTarget {
				r.setScrollTarget(target)
			}
		}
	}

	// Crop to the scroll window.
	scroll := min(max(r.scrollCurrent, 0), max(l.ActualWidth-l.BuffersWidth, 0))
	canvas = canvas.CropRight(scroll + l.BuffersWidth)
	canvas = canvas.CropLeft(canvas.Width() - scroll)

	// Serialize.
	var out segment.List
	if r.offset.Width > 0 {
		out = append(out, r.offsetSegment())
	}
	out = append(out, canvas...)
	// Trailing filler closes the line so the last clickable region doesn't
	// expand into unused space.
	out = append(out, segment.Segment{
		Style: "TabFill",
		Text:  strings.Repeat(" ", max(l.BuffersWidth-canvas.Width(), 0)),
	})
	if tabpages != "" {
		out = append(out, segment.Segment{Style: "TabPages", Text: tabpages})
	}
	return out.String(), false
}

func (r *Renderer) position(t *tab.Tab, positions map[int]float64) int {
	if t.PositionOverride != nil {
		return int(math.Round(*t.PositionOverride))
	}
	return int(math.Round(positions[t.Handle]))
}

// tabSegments assembles one tab's styled segments, exactly as wide as the
// layout says the tab is.
func (r *Renderer) tabSegments(t *tab.Tab, l layout.Layout) segment.List {
	width := l.Widths[t.Handle]
	if width <= 0 {
		return nil
	}
	base := styleFor(t)
	padding := strings.Repeat(" ", l.PaddingWidth)

	// Left padding opens the tab's click region.
	list := segment.List{{Style: base, Text: padding, Handle: t.Handle}}
	if letter, ok := r.jumpLetters[t.Handle]; r.jumpMode && ok {
		list = append(list, segment.Segment{Style: "TabJump", Text: string(letter) + " "})
	} else if r.engine.Icons() && r.icons != nil {
		glyph, style := r.icons.Icon(t.Label, t.Language, t.Activity)
		if style == "" {
			// fall back to the tab's own style
			style = base
		}
		list = append(list, segment.Segment{Style: style, Text: glyph + " "})
	}
	list = append(list, segment.Segment{Style: base, Text: r.label(t, l)})
	if r.engine.CloseIcon() {
		glyph := r.closeGlyph
		switch {
		case t.Modified:
			glyph = r.modifiedGlyph
		case t.Pinned:
			glyph = r.pinnedGlyph
		}
		list = append(list, segment.Segment{Style: base, Text: " " + glyph})
	}
	list = append(list, segment.Segment{Style: base, Text: padding})

	// Fit to the laid-out width exactly: animations hand us widths narrower
	// than the content, minimum widths hand us wider.
	switch w := list.Width(); {
	case w > width:
		list = list.CropRight(width)
	case w < width:
		list = append(list, segment.Segment{Style: base, Text: strings.Repeat(" ", width-w)})
	}
	return list
}

// label returns the tab's label truncated to the columns the layout leaves
// for it.
func (r *Renderer) label(t *tab.Tab, l layout.Layout) string {
	available := l.Widths[t.Handle] - 2*l.PaddingWidth
	if r.engine.Icons() {
		available -= 2
	}
	if r.engine.CloseIcon() {
		available -= 2
	}
	if available <= 0 {
		return ""
	}
	return truncate.StringWithTail(t.Label, uint(available), "…")
}

func (r *Renderer) offsetSegment() segment.Segment {
	style := r.offset.Style
	if style == "" {
		style = "TabOffset"
	}
	text := truncate.StringWithTail(r.offset.Text, uint(r.offset.Width), "…")
	if pad := r.offset.Width - runewidth.StringWidth(text); pad > 0 {
		text += strings.Repeat(" ", pad)
	}
	return segment.Segment{Style: style, Text: text}
}

func (r *Renderer) setScrollTarget(target int) {
	// Clamp against the extent of the last pass, so a held-down scroll key
	// cannot drive the target arbitrarily past the content.
	target = min(max(target, 0), r.maxScroll)
	if target == r.scrollTarget {
		return
	}
	r.scrollTarget = target
	if !r.animation {
		r.scrollCurrent = target
		return
	}
	if r.scrollAnim != nil {
		r.scrollAnim.Stop()
	}
	r.scrollAnim = r.scheduler.Start(scrollDuration, float64(r.scrollCurrent), float64(target), animate.Integer, func(a *animate.Animation, v float64) {
		r.scrollCurrent = int(v)
		if !a.Running() && r.scrollAnim == a {
			r.scrollAnim = nil
		}
	})
}

// styleFor selects the style family for a tab from its activity and modified
// state.
func styleFor(t *tab.Tab) string {
	var base string
	switch t.Activity {
	case tab.Current:
		base = "TabCurrent"
	case tab.Visible:
		base = "TabVisible"
	default:
		base = "TabInactive"
	}
	if t.Modified {
		base += "Mod"
	}
	return base
}
