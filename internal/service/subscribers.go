package service

import (
	"context"

	"github.com/berkaychi/ClimbUpAPI-sub001/internal/events"
	"github.com/berkaychi/ClimbUpAPI-sub001/pkg/entity"
	"github.com/google/uuid"
)

type BadgeChecker interface {
	CheckAndAward(ctx context.Context, uid uuid.UUID) ([]entity.UserBadge, error)
}

type TaskProgressUpdater interface {
	UpdateProgress(ctx context.Context, uid uuid.UUID, metric entity.MetricKey, amount int) ([]*entity.UserAppTask, error)
}

type EventSubscriptions interface {
	OnSessionCompleted(name string, handle func(ctx context.Context, event events.SessionCompleted) error)
	OnTodoCompleted(name string, handle func(ctx context.Context, event events.TodoCompleted) error)
}

// RegisterSubscribers wires achievement and task reactions to completion events.
func RegisterSubscribers(d EventSubscriptions, badges BadgeChecker, tasks TaskProgressUpdater) {
	d.OnSessionCompleted("check-badges", func(ctx context.Context, e events.SessionCompleted) error {
		_, err := badges.CheckAndAward(ctx, e.Session.UserID)
		return err
	})
	d.OnSessionCompleted("task-progress-sessions", func(ctx context.Context, e events.SessionCompleted) error {
		_, err := tasks.UpdateProgress(ctx, e.Session.UserID, entity.MetricCompletedSessions, 1)
		return err
	})
	d.OnSessionCompleted("task-progress-focus-minutes", func(ctx context.Context, e events.SessionCompleted) error {
		_, err := tasks.UpdateProgress(ctx, e.Session.UserID, entity.MetricFocusMinutes, e.Session.TotalWorkDuration/60)
		return err
	})
	d.OnTodoCompleted("check-badges", func(ctx context.Context, e events.TodoCompleted) error {
		_, err := badges.CheckAndAward(ctx, e.UserID)
		return err
	})
	d.OnTodoCompleted("task-progress-todos", func(ctx context.Context, e events.TodoCompleted) error {
		_, err := tasks.UpdateProgress(ctx, e.UserID, entity.MetricToDosCompleted, 1)
		return err
	})
}
