package logging

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/kmaicher/tabline/internal/pubsub"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger_recordsMessages(t *testing.T) {
	logger := NewLogger(Options{Level: "info"})

	logger.Info("opened tabs", "added", "3")
	logger.Error("something failed")

	got := logger.Messages()
	require.Len(t, got, 2)

	// newest first
	assert.Equal(t, "something failed", got[0].Message)
	assert.Equal(t, "ERROR", got[0].Level)

	assert.Equal(t, "opened tabs", got[1].Message)
	assert.Equal(t, "INFO", got[1].Level)
	assert.Contains(t, got[1].Attributes, Attr{Key: "added", Value: "3"})
	assert.False(t, got[1].Time.IsZero())
}

func TestLogger_level(t *testing.T) {
	logger := NewLogger(Options{Level: "info"})

	logger.Debug("below threshold")

	assert.Empty(t, logger.Messages())
}

func TestLogger_publishesMessages(t *testing.T) {
	logger := NewLogger(Options{Level: "info"})
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sub := logger.Subscribe(ctx)

	logger.Warn("tab vanished", "handle", "4")

	event := <-sub
	assert.Equal(t, pubsub.CreatedEvent, event.Type)
	assert.Equal(t, "tab vanished", event.Payload.Message)
	assert.Equal(t, "WARN", event.Payload.Level)
}

func TestLogger_additionalWriters(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(Options{Level: "info", AdditionalWriters: []io.Writer{&buf}})

	logger.Info("scrolled", "target", "4")

	assert.Contains(t, buf.String(), "msg=scrolled")
	assert.Contains(t, buf.String(), "target=4")
}

func TestValidLevels(t *testing.T) {
	got := ValidLevels()

	assert.Equal(t, DefaultLevel, got[0])
	assert.ElementsMatch(t, []string{"info", "debug", "warn", "error"}, got)
}
