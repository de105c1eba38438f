// Package layout computes tab geometry: each tab's on-screen width and
// x-position, and the column budget left for tabs once reserved regions are
// subtracted from the viewport. Geometry is recomputed every render and never
// persisted.
package layout

import (
	"github.com/kmaicher/tabline/internal/tab"
	"github.com/leg100/go-runewidth"
)

// Options configure tab geometry.
type Options struct {
	// MinWidth is the floor for a tab's natural width.
	MinWidth int
	// MaxWidth caps a tab's natural width; zero leaves it uncapped.
	MaxWidth int
	// Padding is the number of columns either side of a tab's content.
	Padding int
	// Icons reserves a glyph slot per tab.
	Icons bool
	// CloseIcon reserves a trailing close-glyph slot per tab.
	CloseIcon bool
}

// Layout is the derived geometry of one render pass.
type Layout struct {
	// BaseWidth is the uniform per-tab minimum width.
	BaseWidth int
	// PaddingWidth is the per-side padding within a tab.
	PaddingWidth int
	// BuffersWidth is the viewport width available to tabs after reserved
	// regions (offset panel, tabpage indicator) are subtracted.
	BuffersWidth int
	// ActualWidth is the sum of all tab widths.
	ActualWidth int
	// TabpagesWidth is the width reserved for the tabpage indicator.
	TabpagesWidth int
	// Widths holds each tab's on-screen width keyed by handle, with any
	// animation override already applied.
	Widths map[int]int
}

// Engine computes layouts. It implements tab.Geometry.
type Engine struct {
	opts Options
}

func NewEngine(opts Options) *Engine {
	return &Engine{opts: opts}
}

// CalculateWidth returns the natural width of a tab with the given label: the
// label's display width plus decoration slots and both sides of padding,
// floored at baseWidth and capped at the configured maximum.
func (e *Engine) CalculateWidth(label string, baseWidth, paddingWidth int) int {
	w := runewidth.StringWidth(label) + e.decorationWidth() + 2*paddingWidth
	if w < baseWidth {
		w = baseWidth
	}
	if e.opts.MaxWidth > 0 && w > e.opts.MaxWidth {
		w = e.opts.MaxWidth
	}
	return w
}

// NaturalWidth is the width a tab occupies absent animation overrides.
func (e *Engine) NaturalWidth(t *tab.Tab) int {
	return e.CalculateWidth(t.Label, e.opts.MinWidth, e.opts.Padding)
}

// Calculate lays the tabs out left-to-right in canonical order, applying any
// animation width overrides, and accumulates the total width. It does not
// crop; cropping against the scroll window is the render engine's job.
func (e *Engine) Calculate(tabs []*tab.Tab, viewportWidth, offsetWidth, tabpagesWidth int) Layout {
	l := Layout{
		BaseWidth:     e.opts.MinWidth,
		PaddingWidth:  e.opts.Padding,
		TabpagesWidth: tabpagesWidth,
		BuffersWidth:  max(viewportWidth-offsetWidth-tabpagesWidth, 0),
		Widths:        make(map[int]int, len(tabs)),
	}
	for _, t := range tabs {
		w := t.Width(e.NaturalWidth(t))
		l.Widths[t.Handle] = w
		l.ActualWidth += w
	}
	return l
}

// Positions returns each tab's natural x-coordinate keyed by handle: a pure
// function of canonical order and natural/override widths. It is used for
// steady-state rendering and as before/after snapshots for the move
// animation.
func (e *Engine) Positions(tabs []*tab.Tab) map[int]float64 {
	positions := make(map[int]float64, len(tabs))
	var x float64
	for _, t := range tabs {
		positions[t.Handle] = x
		x += float64(t.Width(e.NaturalWidth(t)))
	}
	return positions
}

// Padding returns the configured per-side padding.
func (e *Engine) Padding() int {
	return e.opts.Padding
}

// Icons reports whether a glyph slot is reserved per tab.
func (e *Engine) Icons() bool {
	return e.opts.Icons
}

// CloseIcon reports whether a close-glyph slot is reserved per tab.
func (e *Engine) CloseIcon() bool {
	return e.opts.CloseIcon
}

func (e *Engine) decorationWidth() int {
	var w int
	if e.opts.Icons {
		w += 2
	}
	if e.opts.CloseIcon {
		w += 2
	}
	return w
}
