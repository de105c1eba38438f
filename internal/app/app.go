// Package app is the main entrypoint into the application, responsible for
// configuring and starting the application, services, dependency injection,
// etc.
package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/kmaicher/tabline/internal/animate"
	"github.com/kmaicher/tabline/internal/doc"
	"github.com/kmaicher/tabline/internal/layout"
	"github.com/kmaicher/tabline/internal/logging"
	"github.com/kmaicher/tabline/internal/render"
	"github.com/kmaicher/tabline/internal/tab"
	"github.com/kmaicher/tabline/internal/tui"
	"github.com/kmaicher/tabline/internal/version"
)

// seeds are the documents every session starts with.
var seeds = []struct {
	name, path, language string
}{
	{"main.go", "cmd/tabline/main.go", "go"},
	{"service.go", "internal/tab/service.go", "go"},
	{"README.md", "README.md", "markdown"},
}

func Start(stdout, stderr io.Writer, args []string) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Parse configuration from flags, env vars, and config file.
	cfg, err := Parse(stderr, args)
	if err != nil {
		return fmt.Errorf("parsing config: %w", err)
	}
	if cfg.Version {
		fmt.Fprintln(stdout, "tabline", version.Version)
		return nil
	}

	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		defer f.Close()
		cfg.Logging.AdditionalWriters = append(cfg.Logging.AdditionalWriters, f)
	}

	a, m, err := newApp(cfg)
	if err != nil {
		return err
	}

	// Construct TUI program.
	p := tea.NewProgram(
		m,
		// use the full size of the terminal with its "alternate screen buffer"
		tea.WithAltScreen(),
	)

	// Relay document, tab and log events to the TUI.
	a.relay(ctx, p)

	// Blocks until user quits
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

type app struct {
	cfg Config

	logger    *logging.Logger
	docs      *doc.Service
	tabs      *tab.Service
	renderer  *render.Renderer
	scheduler *animate.Scheduler
}

// newApp wires the services together and seeds the session with a few open
// documents.
func newApp(cfg Config) (*app, tui.Model, error) {
	logger := logging.NewLogger(cfg.Logging)

	scheduler := animate.NewScheduler(logger)
	engine := layout.NewEngine(layout.Options{
		MinWidth:  cfg.MinWidth,
		MaxWidth:  cfg.MaxWidth,
		Padding:   cfg.Padding,
		Icons:     !cfg.NoIcons,
		CloseIcon: !cfg.NoCloseIcon,
	})
	tabs := tab.NewService(tab.ServiceOptions{
		Geometry:      engine,
		Scheduler:     scheduler,
		Logger:        logger,
		Animation:     !cfg.NoAnimation,
		InsertAtEnd:   cfg.InsertAtEnd,
		InsertAtStart: cfg.InsertAtStart,
	})
	docs := doc.NewService(logger)
	renderer := render.New(render.Options{
		Tabs:        tabs,
		Docs:        docs,
		Icons:       tui.Icons{},
		Engine:      engine,
		Scheduler:   scheduler,
		Logger:      logger,
		Animation:   !cfg.NoAnimation,
		AutoHide:    cfg.AutoHide,
		JumpLetters: cfg.JumpLetters,
	})

	theme, err := tui.LoadTheme(cfg.Theme)
	if err != nil {
		return nil, tui.Model{}, err
	}

	// Seed the session. The tabs are opened as one batch, before the program
	// starts ticking, so no entrance animation plays.
	var specs []tab.Spec
	for _, seed := range seeds {
		d := docs.Open(seed.name, seed.path, seed.language)
		specs = append(specs, tab.Spec{
			Handle:   d.Handle,
			Label:    d.Name,
			Path:     d.Path,
			Language: d.Language,
			Window:   d.Window,
		})
	}
	tabs.OpenMany(specs)
	if len(specs) > 0 {
		if err := docs.SetCurrent(specs[0].Handle); err != nil {
			return nil, tui.Model{}, err
		}
		if err := tabs.SetCurrent(specs[0].Handle); err != nil {
			return nil, tui.Model{}, err
		}
	}

	m, err := tui.New(tui.Options{
		Docs:         docs,
		Tabs:         tabs,
		Renderer:     renderer,
		Scheduler:    scheduler,
		Logger:       logger,
		Theme:        theme,
		TickInterval: time.Duration(cfg.TickMillis) * time.Millisecond,
		Debug:        cfg.Debug,
	})
	if err != nil {
		return nil, tui.Model{}, err
	}

	return &app{
		cfg:       cfg,
		logger:    logger,
		docs:      docs,
		tabs:      tabs,
		renderer:  renderer,
		scheduler: scheduler,
	}, m, nil
}

// sender is the part of tea.Program the relay needs; teatest's TestModel
// implements it too.
type sender interface {
	Send(tea.Msg)
}

// relay forwards service events to the TUI until the context is canceled.
func (a *app) relay(ctx context.Context, s sender) {
	docEvents := a.docs.Broker().Subscribe(ctx)
	go func() {
		for ev := range docEvents {
			s.Send(ev)
		}
	}()
	tabEvents := a.tabs.Broker().Subscribe(ctx)
	go func() {
		for ev := range tabEvents {
			s.Send(ev)
		}
	}()
	logEvents := a.logger.Subscribe(ctx)
	go func() {
		for ev := range logEvents {
			s.Send(ev)
		}
	}()
}
