package tui

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/davecgh/go-spew/spew"
	"github.com/kmaicher/tabline/internal/animate"
	"github.com/kmaicher/tabline/internal/doc"
	"github.com/kmaicher/tabline/internal/logging"
	"github.com/kmaicher/tabline/internal/pubsub"
	"github.com/kmaicher/tabline/internal/render"
	"github.com/kmaicher/tabline/internal/tab"
)

// samples are the synthetic documents the demo host opens.
var samples = []struct {
	name, path, language string
}{
	{"main.go", "cmd/tabline/main.go", "go"},
	{"renderer.go", "internal/render/renderer.go", "go"},
	{"README.md", "README.md", "markdown"},
	{"layout.go", "internal/layout/layout.go", "go"},
	{"háček.txt", "docs/háček.txt", "text"},
	{"配置.md", "docs/配置.md", "markdown"},
	{"notes.txt", "notes.txt", "text"},
	{"shell", "", "terminal"},
}

type Options struct {
	Docs      *doc.Service
	Tabs      *tab.Service
	Renderer  *render.Renderer
	Scheduler *animate.Scheduler
	Logger    logging.Interface

	Theme        map[string]lipgloss.Style
	TickInterval time.Duration
	Debug        bool
}

// New constructs the top-level TUI model.
func New(opts Options) (Model, error) {
	var dump *os.File
	if opts.Debug {
		var err error
		dump, err = os.OpenFile("messages.log", os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o755)
		if err != nil {
			return Model{}, err
		}
	}
	interval := opts.TickInterval
	if interval <= 0 {
		interval = 16 * time.Millisecond
	}
	return Model{
		docs:      opts.Docs,
		tabs:      opts.Tabs,
		renderer:  opts.Renderer,
		scheduler: opts.Scheduler,
		logger:    opts.Logger,
		theme:     opts.Theme,
		interval:  interval,
		help:      help.New(),
		dump:      dump,
		width:     80,
		height:    24,
	}, nil
}

type Model struct {
	docs      *doc.Service
	tabs      *tab.Service
	renderer  *render.Renderer
	scheduler *animate.Scheduler
	logger    logging.Interface

	theme    map[string]lipgloss.Style
	interval time.Duration

	width  int
	height int

	// last composed tabline, in directive form
	line   string
	hidden bool

	// Either an error or an informational message is rendered in the footer.
	err  error
	info string

	help     help.Model
	offset   bool
	opened   int
	lastTick time.Time

	dump *os.File
}

type tickMsg time.Time

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.dump != nil {
		spew.Fdump(m.dump, msg)
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.renderer.SetWidth(msg.Width)

	case tickMsg:
		dt := m.interval
		if !m.lastTick.IsZero() {
			dt = time.Time(msg).Sub(m.lastTick)
		}
		m.lastTick = time.Time(msg)
		m.scheduler.Advance(dt)
		m.rerender()
		return m, m.tick()

	case pubsub.Event[*doc.Document]:
		m.handleDocEvent(msg)

	case pubsub.Event[*tab.Tab]:
		// tab state changed; fall through to re-render

	case pubsub.Event[logging.Message]:
		switch msg.Payload.Level {
		case "error", "warn":
			m.err = errors.New(msg.Payload.Message)
		default:
			m.info = msg.Payload.Message
		}

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	m.rerender()
	return m, nil
}

func (m *Model) handleDocEvent(ev pubsub.Event[*doc.Document]) {
	d := ev.Payload
	switch ev.Type {
	case pubsub.CreatedEvent:
		kind := tab.Document
		if d.Terminal || d.Language == "terminal" {
			kind = tab.Terminal
		}
		m.tabs.OpenMany([]tab.Spec{{
			Handle:   d.Handle,
			Label:    d.Name,
			Path:     d.Path,
			Language: d.Language,
			Window:   d.Window,
			Kind:     kind,
		}})
		if m.docs.Current() == d.Handle {
			m.err = m.tabs.SetCurrent(d.Handle)
		}
	case pubsub.DeletedEvent:
		if err := m.tabs.CloseAnimated(d.Handle); err != nil {
			m.err = err
			return
		}
		// focus a surviving document
		if m.docs.Current() == 0 {
			if remaining := m.docs.List(); len(remaining) > 0 {
				m.focus(remaining[0].Handle)
			}
		}
	}
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.renderer.JumpMode() {
		switch msg.String() {
		case "esc":
			m.renderer.DeactivateJumpMode()
		default:
			if runes := msg.Runes; len(runes) == 1 {
				if err := m.renderer.JumpTo(runes[0]); err != nil {
					m.err = err
				} else if t, ok := m.tabs.Current(); ok {
					m.err = m.docs.SetCurrent(t.Handle)
				}
			}
		}
		m.rerender()
		return m, nil
	}

	switch {
	case key.Matches(msg, Keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, Keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, Keys.Next):
		m.cycle(1)
	case key.Matches(msg, Keys.Prev):
		m.cycle(-1)
	case key.Matches(msg, Keys.MoveLeft):
		m.tabs.MoveBy(-1)
	case key.Matches(msg, Keys.MoveRight):
		m.tabs.MoveBy(1)
	case key.Matches(msg, Keys.Open):
		sample := samples[m.opened%len(samples)]
		m.opened++
		name := sample.name
		if m.opened > len(samples) {
			name = fmt.Sprintf("%s~%d", sample.name, m.opened/len(samples))
		}
		d := m.docs.Open(name, sample.path, sample.language)
		m.err = m.docs.SetCurrent(d.Handle)
	case key.Matches(msg, Keys.Close):
		if t, ok := m.tabs.Current(); ok {
			m.err = m.docs.Close(t.Handle)
		}
	case key.Matches(msg, Keys.CloseOthers):
		m.tabs.CloseOthers(true)
	case key.Matches(msg, Keys.Pin):
		if t, ok := m.tabs.Current(); ok {
			m.err = m.tabs.TogglePin(t.Handle)
		}
	case key.Matches(msg, Keys.Modify):
		if t, ok := m.tabs.Current(); ok {
			m.err = m.docs.SetModified(t.Handle, !t.Modified)
		}
	case key.Matches(msg, Keys.Jump):
		m.renderer.ActivateJumpMode()
	case key.Matches(msg, Keys.SortHandle):
		m.tabs.SortBy(tab.ByHandle)
	case key.Matches(msg, Keys.SortDirectory):
		m.tabs.SortBy(tab.ByDirectory)
	case key.Matches(msg, Keys.SortLanguage):
		m.tabs.SortBy(tab.ByLanguage)
	case key.Matches(msg, Keys.SortWindow):
		m.tabs.SortBy(tab.ByWindow)
	case key.Matches(msg, Keys.Offset):
		if m.offset = !m.offset; m.offset {
			m.renderer.SetOffset(20, " explorer", "TabOffset")
		} else {
			m.renderer.SetOffset(0, "", "")
		}
	case key.Matches(msg, Keys.ScrollLeft):
		m.renderer.SetScroll(m.renderer.Scroll() - 10)
	case key.Matches(msg, Keys.ScrollRight):
		m.renderer.SetScroll(m.renderer.Scroll() + 10)
	}

	m.rerender()
	return m, nil
}

// cycle makes the tab at the given distance from the current one current,
// wrapping around either end.
func (m *Model) cycle(direction int) {
	tabs := m.tabs.List()
	if len(tabs) == 0 {
		return
	}
	idx := 0
	if current, ok := m.tabs.Current(); ok {
		idx = slices.Index(tabs, current) + direction
	}
	idx = ((idx % len(tabs)) + len(tabs)) % len(tabs)
	m.focus(tabs[idx].Handle)
}

func (m *Model) focus(handle int) {
	if err := m.docs.SetCurrent(handle); err != nil {
		m.err = err
		return
	}
	m.err = m.tabs.SetCurrent(handle)
}

func (m *Model) rerender() {
	m.line, m.hidden = m.renderer.Render(true, true)
}

func (m Model) View() string {
	var b strings.Builder

	if m.hidden {
		b.WriteString(Pad("", m.width, m.theme))
	} else {
		b.WriteString(Pad(Translate(m.line, m.theme), m.width, m.theme))
	}
	b.WriteString("\n\n")

	if t, ok := m.tabs.Current(); ok {
		b.WriteString(Bold.Render(t.Label))
		if t.Path != "" {
			b.WriteString(InfoStyle.Render("  " + t.Path))
		}
		b.WriteString("\n")
		b.WriteString(InfoStyle.Render(fmt.Sprintf("%d tabs open, scroll column %d", m.tabs.Len(), m.renderer.Scroll())))
	} else {
		b.WriteString(InfoStyle.Render("no document focused"))
	}
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(ErrorStyle.Render("Error: " + m.err.Error()))
		b.WriteString("\n")
	} else if m.info != "" {
		b.WriteString(InfoStyle.Render(m.info))
		b.WriteString("\n")
	}
	b.WriteString(m.help.View(Keys))
	return b.String()
}
