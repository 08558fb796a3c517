package events_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/berkaychi/ClimbUpAPI-sub001/internal/events"
	"github.com/berkaychi/ClimbUpAPI-sub001/pkg/entity"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestPublishSessionCompleted(t *testing.T) {
	d := events.NewDispatcher(time.Second)
	session := entity.FocusSession{ID: uuid.New(), UserID: uuid.New(), Status: entity.SessionCompleted}
	calls := make([]string, 0)
	d.OnSessionCompleted("failing", func(ctx context.Context, event events.SessionCompleted) error {
		calls = append(calls, "failing")
		return errors.New("subscriber error")
	})
	d.OnSessionCompleted("panicking", func(ctx context.Context, event events.SessionCompleted) error {
		calls = append(calls, "panicking")
		panic("boom")
	})
	d.OnSessionCompleted("recording", func(ctx context.Context, event events.SessionCompleted) error {
		calls = append(calls, "recording")
		assert.Equal(t, session.ID, event.Session.ID)
		return nil
	})
	assert.NotPanics(t, func() {
		d.PublishSessionCompleted(context.Background(), events.SessionCompleted{Session: session})
	})
	assert.Equal(t, []string{"failing", "panicking", "recording"}, calls)
}

func TestSubscriberContext(t *testing.T) {
	d := events.NewDispatcher(50 * time.Millisecond)
	t.Run("detached from publisher cancellation", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		var subErr error
		d.OnTodoCompleted("ctx check", func(ctx context.Context, event events.TodoCompleted) error {
			subErr = ctx.Err()
			_, hasDeadline := ctx.Deadline()
			assert.True(t, hasDeadline)
			return nil
		})
		d.PublishTodoCompleted(ctx, events.TodoCompleted{UserID: uuid.New(), ToDoItemID: uuid.New()})
		assert.NoError(t, subErr)
	})
}

func TestPublishWithoutSubscribers(t *testing.T) {
	d := events.NewDispatcher(0)
	assert.NotPanics(t, func() {
		d.PublishTodoCompleted(context.Background(), events.TodoCompleted{})
		d.PublishSessionCompleted(context.Background(), events.SessionCompleted{})
	})
}
