package doc

import (
	"context"
	"testing"

	"github.com/kmaicher/tabline/internal/logging"
	"github.com/kmaicher/tabline/internal/pubsub"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_lifecycle(t *testing.T) {
	svc := NewService(logging.Discard)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sub := svc.Broker().Subscribe(ctx)

	d := svc.Open("main.go", "cmd/main.go", "go")
	assert.Equal(t, 1, d.Handle)
	assert.NotZero(t, d.ID)

	event := <-sub
	assert.Equal(t, pubsub.CreatedEvent, event.Type)
	assert.Equal(t, d, event.Payload)

	require.NoError(t, svc.SetModified(d.Handle, true))
	event = <-sub
	assert.Equal(t, pubsub.UpdatedEvent, event.Type)
	assert.True(t, event.Payload.Modified)

	require.NoError(t, svc.Close(d.Handle))
	event = <-sub
	assert.Equal(t, pubsub.DeletedEvent, event.Type)

	_, err := svc.Get(d.Handle)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_handlesAreNeverReused(t *testing.T) {
	svc := NewService(logging.Discard)

	first := svc.Open("a.go", "a.go", "go")
	require.NoError(t, svc.Close(first.Handle))
	second := svc.Open("b.go", "b.go", "go")

	assert.NotEqual(t, first.Handle, second.Handle)
}

func TestService_current(t *testing.T) {
	svc := NewService(logging.Discard)
	d := svc.Open("a.go", "a.go", "go")

	assert.Zero(t, svc.Current())
	require.NoError(t, svc.SetCurrent(d.Handle))
	assert.Equal(t, d.Handle, svc.Current())

	assert.ErrorIs(t, svc.SetCurrent(99), ErrNotFound)

	// closing the focused document clears focus
	require.NoError(t, svc.Close(d.Handle))
	assert.Zero(t, svc.Current())
}

func TestService_listOrderedByHandle(t *testing.T) {
	svc := NewService(logging.Discard)
	svc.Open("c.go", "c.go", "go")
	svc.Open("a.go", "a.go", "go")
	svc.Open("b.go", "b.go", "go")

	docs := svc.List()

	require.Len(t, docs, 3)
	assert.Equal(t, []string{"c.go", "a.go", "b.go"}, []string{docs[0].Name, docs[1].Name, docs[2].Name})
}

func TestService_provider(t *testing.T) {
	svc := NewService(logging.Discard)
	d := svc.Open("main.go", "cmd/main.go", "go")

	name, err := svc.Name(d.Handle)
	require.NoError(t, err)
	assert.Equal(t, "main.go", name)

	modified, err := svc.Modified(d.Handle)
	require.NoError(t, err)
	assert.False(t, modified)

	current, total := svc.Tabpages()
	assert.Equal(t, 1, current)
	assert.Equal(t, 1, total)

	svc.SetTabpages(2, 3)
	current, total = svc.Tabpages()
	assert.Equal(t, 2, current)
	assert.Equal(t, 3, total)

	_, err = svc.Name(99)
	assert.ErrorIs(t, err, ErrNotFound)
}
