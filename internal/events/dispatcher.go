package events

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime/debug"
	"sync"
	"time"

	"github.com/berkaychi/ClimbUpAPI-sub001/pkg/entity"
	"github.com/berkaychi/ClimbUpAPI-sub001/pkg/logger"
	"github.com/google/uuid"
)

const DefaultSubscriberTimeout = 10 * time.Second

// SessionCompleted is published after the transaction that completed the session commits.
type SessionCompleted struct {
	Session entity.FocusSession
}

type TodoCompleted struct {
	UserID      uuid.UUID
	ToDoItemID  uuid.UUID
	CompletedAt time.Time
}

type Subscriber[E any] struct {
	Name   string
	Handle func(ctx context.Context, event E) error
}

// Dispatcher delivers events to subscribers registered at startup. Delivery is
// sequential and synchronous; a failing subscriber never affects the publisher
// or the remaining subscribers.
type Dispatcher struct {
	mu                sync.RWMutex
	sessionCompleted  []Subscriber[SessionCompleted]
	todoCompleted     []Subscriber[TodoCompleted]
	subscriberTimeout time.Duration
}

func NewDispatcher(subscriberTimeout time.Duration) *Dispatcher {
	if subscriberTimeout <= 0 {
		subscriberTimeout = DefaultSubscriberTimeout
	}
	return &Dispatcher{
		subscriberTimeout: subscriberTimeout,
	}
}

func (d *Dispatcher) OnSessionCompleted(name string, handle func(ctx context.Context, event SessionCompleted) error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.sessionCompleted = append(d.sessionCompleted, Subscriber[SessionCompleted]{Name: name, Handle: handle})
}

func (d *Dispatcher) OnTodoCompleted(name string, handle func(ctx context.Context, event TodoCompleted) error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.todoCompleted = append(d.todoCompleted, Subscriber[TodoCompleted]{Name: name, Handle: handle})
}

func (d *Dispatcher) PublishSessionCompleted(ctx context.Context, event SessionCompleted) {
	d.mu.RLock()
	subs := d.sessionCompleted
	d.mu.RUnlock()
	log := logger.FromContext(ctx).With(
		slog.String("event", "session_completed"),
		slog.String("session_id", event.Session.ID.String()),
	)
	deliver(ctx, log, d.subscriberTimeout, subs, event)
}

func (d *Dispatcher) PublishTodoCompleted(ctx context.Context, event TodoCompleted) {
	d.mu.RLock()
	subs := d.todoCompleted
	d.mu.RUnlock()
	log := logger.FromContext(ctx).With(
		slog.String("event", "todo_completed"),
		slog.String("todo_id", event.ToDoItemID.String()),
	)
	deliver(ctx, log, d.subscriberTimeout, subs, event)
}

func deliver[E any](ctx context.Context, log *slog.Logger, timeout time.Duration, subs []Subscriber[E], event E) {
	base := context.WithoutCancel(ctx)
	for _, sub := range subs {
		err := invoke(base, timeout, sub, event)
		if err != nil {
			log.Error("event subscriber failed", slog.String("subscriber", sub.Name), slog.String("error", err.Error()))
		}
	}
}

func invoke[E any](ctx context.Context, timeout time.Duration, sub Subscriber[E], event E) (err error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v\n%s", r, debug.Stack())
		}
	}()
	if sub.Handle == nil {
		return errors.New("subscriber has no handler")
	}
	return sub.Handle(ctx, event)
}
