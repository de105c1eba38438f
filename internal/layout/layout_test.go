package layout

import (
	"testing"

	"github.com/kmaicher/tabline/internal/tab"
	"github.com/stretchr/testify/assert"
)

func TestEngine_CalculateWidth(t *testing.T) {
	tests := []struct {
		name  string
		opts  Options
		label string
		want  int
	}{
		{"label plus padding", Options{Padding: 1}, "main.go", 9},
		{"floored at minimum", Options{MinWidth: 12, Padding: 1}, "a.go", 12},
		{"capped at maximum", Options{MaxWidth: 10, Padding: 1}, "a_very_long_name.go", 10},
		{"icon slot", Options{Icons: true, Padding: 1}, "main.go", 11},
		{"icon and close slots", Options{Icons: true, CloseIcon: true, Padding: 1}, "main.go", 13},
		{"wide runes", Options{Padding: 1}, "配置.md", 9},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewEngine(tt.opts)
			assert.Equal(t, tt.want, e.CalculateWidth(tt.label, tt.opts.MinWidth, tt.opts.Padding))
		})
	}
}

func TestEngine_Calculate(t *testing.T) {
	e := NewEngine(Options{MinWidth: 8, Padding: 1})
	tabs := []*tab.Tab{
		{Handle: 1, Label: "main.go"},
		{Handle: 2, Label: "service_options.go"},
		{Handle: 3, Label: "x.go"},
	}

	l := e.Calculate(tabs, 80, 10, 6)

	assert.Equal(t, 8, l.BaseWidth)
	assert.Equal(t, 1, l.PaddingWidth)
	assert.Equal(t, 64, l.BuffersWidth)
	assert.Equal(t, 6, l.TabpagesWidth)
	assert.Equal(t, map[int]int{1: 9, 2: 20, 3: 8}, l.Widths)
	assert.Equal(t, 37, l.ActualWidth)
}

func TestEngine_Calculate_reservedExceedsViewport(t *testing.T) {
	e := NewEngine(Options{MinWidth: 8})

	l := e.Calculate(nil, 10, 8, 6)

	assert.Zero(t, l.BuffersWidth)
}

func TestEngine_Calculate_widthOverride(t *testing.T) {
	e := NewEngine(Options{MinWidth: 8, Padding: 1})
	override := 3
	tabs := []*tab.Tab{
		{Handle: 1, Label: "main.go", WidthOverride: &override},
		{Handle: 2, Label: "main.go"},
	}

	l := e.Calculate(tabs, 80, 0, 0)

	assert.Equal(t, 3, l.Widths[1])
	assert.Equal(t, 9, l.Widths[2])
	assert.Equal(t, 12, l.ActualWidth)
}

func TestEngine_Positions(t *testing.T) {
	e := NewEngine(Options{MinWidth: 8})
	override := 4
	tabs := []*tab.Tab{
		{Handle: 1, Label: "a"},
		{Handle: 2, Label: "b", WidthOverride: &override},
		{Handle: 3, Label: "c"},
	}

	got := e.Positions(tabs)

	assert.Equal(t, map[int]float64{1: 0, 2: 8, 3: 12}, got)
}
