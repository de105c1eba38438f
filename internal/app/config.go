package app

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/kmaicher/tabline/internal/logging"
	"github.com/peterbourgon/ff/v4"
	"github.com/peterbourgon/ff/v4/ffhelp"
	"github.com/peterbourgon/ff/v4/ffyaml"
)

type Config struct {
	NoAnimation   bool
	AutoHide      bool
	NoIcons       bool
	NoCloseIcon   bool
	InsertAtEnd   bool
	InsertAtStart bool

	MinWidth   int
	MaxWidth   int
	Padding    int
	TickMillis int

	JumpLetters string
	Theme       string

	LogFile string
	Logging logging.Options

	Debug   bool
	Version bool
}

// set config in order of precedence:
// 1. flags > 2. env vars > 3. config file
func Parse(stderr io.Writer, args []string) (Config, error) {
	var cfg Config

	home, err := os.UserHomeDir()
	if err != nil {
		return Config{}, fmt.Errorf("retrieving user's home directory: %w", err)
	}
	defaultConfigFile := filepath.Join(home, ".tabline.yaml")

	fs := ff.NewFlagSet("tabline")
	fs.BoolVar(&cfg.NoAnimation, 0, "no-animation", "Disable open/close/move/scroll animations.")
	fs.BoolVar(&cfg.AutoHide, 0, "auto-hide", "Hide the tabline while at most one tab is open.")
	fs.BoolVar(&cfg.NoIcons, 0, "no-icons", "Disable the per-tab icon slot.")
	fs.BoolVar(&cfg.NoCloseIcon, 0, "no-close-icon", "Disable the per-tab close glyph.")
	fs.BoolVar(&cfg.InsertAtEnd, 0, "insert-at-end", "Open new tabs at the end of the line rather than next to the current tab.")
	fs.BoolVar(&cfg.InsertAtStart, 0, "insert-at-start", "Open new tabs at the start of the line rather than next to the current tab.")
	fs.IntVar(&cfg.MinWidth, 0, "min-width", 0, "Minimum width of a tab.")
	fs.IntVar(&cfg.MaxWidth, 0, "max-width", 32, "Maximum width of a tab; 0 leaves tabs uncapped.")
	fs.IntVar(&cfg.Padding, 0, "padding", 1, "Columns of padding either side of a tab's content.")
	fs.IntVar(&cfg.TickMillis, 't', "tick-interval", 16, "Animation tick interval in milliseconds.")
	fs.StringVar(&cfg.JumpLetters, 'j', "jump-letters", "asdfjkl;ghnmxcvbziowerutylqp", "Letters jump mode assigns, in order of preference.")
	fs.StringVar(&cfg.Theme, 0, "theme", "", "Path to a YAML theme file overriding styles.")
	fs.StringVar(&cfg.LogFile, 0, "log-file", "", "Send log output to a file.")
	fs.BoolVar(&cfg.Debug, 'd', "debug", "Log bubbletea messages to messages.log")
	fs.BoolVar(&cfg.Version, 'v', "version", "Print version.")
	_ = fs.String('c', "config", defaultConfigFile, "Path to config file.")

	{
		usage := fmt.Sprintf("Logging level (valid: %s).", strings.Join(logging.ValidLevels(), ","))
		fs.StringEnumVar(&cfg.Logging.Level, 'l', "log-level", usage, logging.ValidLevels()...)
	}

	err = ff.Parse(fs, args,
		ff.WithEnvVarPrefix("TABLINE"),
		ff.WithConfigFileFlag("config"),
		ff.WithConfigFileParser(ffyaml.Parse),
		ff.WithConfigAllowMissingFile(),
	)
	if err != nil {
		// ff.Parse returns an error if there is an error or if -h/--help is
		// passed; in either case print flag usage in addition to error message.
		fmt.Fprintln(stderr, ffhelp.Flags(fs))
		return Config{}, err
	}

	return cfg, nil
}
