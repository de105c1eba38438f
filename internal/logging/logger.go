package logging

import (
	"io"
	"log/slog"
	"slices"

	"github.com/kmaicher/tabline/internal/pubsub"
	"golang.org/x/exp/maps"
)

const DefaultLevel = "info"

var levels = map[string]slog.Level{
	"debug":      slog.LevelDebug,
	DefaultLevel: slog.LevelInfo,
	"warn":       slog.LevelWarn,
	"error":      slog.LevelError,
}

// ValidLevels returns valid strings for choosing a log level. Returns the
// default log level first.
func ValidLevels() []string {
	keys := maps.Keys(levels)
	slices.SortFunc(keys, func(a, b string) int {
		if a == DefaultLevel {
			return -1
		}
		if b == DefaultLevel {
			return 1
		}
		// Sort remaining in alphabetical order.
		if a < b {
			return -1
		}
		return 1
	})
	return keys
}

type Options struct {
	// The log level of the logger
	Level string
	// Any additional writers the log handler should write to.
	AdditionalWriters []io.Writer
}

// NewLogger constructs Logger, a slog wrapper with additional functionality.
func NewLogger(opts Options) *Logger {
	logger := &Logger{}
	broker := pubsub.NewBroker[Message](logger)
	logger.writer = &writer{broker: broker}

	handler := slog.NewTextHandler(
		io.MultiWriter(append(opts.AdditionalWriters, logger.writer)...),
		&slog.HandlerOptions{
			Level: levels[opts.Level],
		},
	)

	logger.logger = slog.New(handler)
	logger.Broker = broker

	return logger
}

// Logger wraps slog, providing further functionality such as keeping log
// records in memory and emitting them as events.
type Logger struct {
	logger *slog.Logger
	writer *writer

	*pubsub.Broker[Message]
}

func (l *Logger) Debug(msg string, args ...any) {
	l.logger.Debug(msg, args...)
}

func (l *Logger) Info(msg string, args ...any) {
	l.logger.Info(msg, args...)
}

func (l *Logger) Warn(msg string, args ...any) {
	l.logger.Warn(msg, args...)
}

func (l *Logger) Error(msg string, args ...any) {
	l.logger.Error(msg, args...)
}

// Messages lists the log messages received thus far, newest first.
func (l *Logger) Messages() []Message {
	msgs := slices.Clone(l.writer.Messages)
	slices.SortFunc(msgs, BySerialDesc)
	return msgs
}
