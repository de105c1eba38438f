package tui

import "github.com/charmbracelet/lipgloss"

var (
	Regular = lipgloss.NewStyle()
	Bold    = Regular.Bold(true)
)

const (
	Black       = lipgloss.Color("#000000")
	Red         = lipgloss.Color("#FF5353")
	Orange      = lipgloss.Color("214")
	Yellow      = lipgloss.Color("#DBBD70")
	Green       = lipgloss.Color("34")
	DeepBlue    = lipgloss.Color("39")
	Blue        = lipgloss.Color("63")
	Grey        = lipgloss.Color("#737373")
	LightGrey   = lipgloss.Color("245")
	LighterGrey = lipgloss.Color("250")
	DarkGrey    = lipgloss.Color("#606362")
	White       = lipgloss.Color("#ffffff")
	OffWhite    = lipgloss.Color("#a8a7a5")
)

var (
	ErrorStyle = Regular.Foreground(Red)
	InfoStyle  = Regular.Foreground(LightGrey)
)

// DefaultTheme maps the style names emitted by the render engine to terminal
// styles. Style names absent from the theme render with the default style.
func DefaultTheme() map[string]lipgloss.Style {
	return map[string]lipgloss.Style{
		"TabCurrent":     Regular.Foreground(White).Background(Grey).Bold(true),
		"TabCurrentMod":  Regular.Foreground(Yellow).Background(Grey).Bold(true),
		"TabVisible":     Regular.Foreground(OffWhite).Background(DarkGrey),
		"TabVisibleMod":  Regular.Foreground(Yellow).Background(DarkGrey),
		"TabInactive":    Regular.Foreground(LightGrey),
		"TabInactiveMod": Regular.Foreground(Yellow),
		"TabJump":        Regular.Foreground(Red).Bold(true),
		"TabFill":        Regular.Foreground(Grey),
		"TabPages":       Regular.Foreground(White).Background(Blue),
		"TabOffset":      Regular.Foreground(LighterGrey),
		"TabIconGo":      Regular.Foreground(DeepBlue),
		"TabIconMd":      Regular.Foreground(Green),
		"TabIconTerm":    Regular.Foreground(Orange),
	}
}
