package worker

import (
	"context"
	"log/slog"
	"time"

	"github.com/berkaychi/ClimbUpAPI-sub001/pkg/clock"
	"github.com/berkaychi/ClimbUpAPI-sub001/pkg/logger"
)

type TaskScheduler interface {
	AssignForAllUsers(ctx context.Context) (int, error)
	ExpireOverdue(ctx context.Context) (int64, error)
}

type SessionJanitor interface {
	CancelAbandoned(ctx context.Context, cutoff time.Time, limit int) (int, error)
}

type TodoJanitor interface {
	MarkOverdue(ctx context.Context) (int64, error)
}

func AssignTasksJob(tasks TaskScheduler, interval time.Duration) Job {
	return Job{
		Name:     "assign-app-tasks",
		Interval: interval,
		Run: func(ctx context.Context) error {
			n, err := tasks.AssignForAllUsers(ctx)
			if n > 0 {
				logger.FromContext(ctx).Info("app tasks assigned", slog.Int("count", n))
			}
			return err
		},
	}
}

func ExpireTasksJob(tasks TaskScheduler, interval time.Duration) Job {
	return Job{
		Name:     "expire-app-tasks",
		Interval: interval,
		Run: func(ctx context.Context) error {
			n, err := tasks.ExpireOverdue(ctx)
			if n > 0 {
				logger.FromContext(ctx).Info("app tasks expired", slog.Int64("count", n))
			}
			return err
		},
	}
}

// CleanupSessionsJob cancels sessions idle for longer than abandonAfter,
// batch sessions per pass.
func CleanupSessionsJob(sessions SessionJanitor, clk clock.Clock, interval, abandonAfter time.Duration, batch int) Job {
	return Job{
		Name:     "cleanup-sessions",
		Interval: interval,
		Run: func(ctx context.Context) error {
			n, err := sessions.CancelAbandoned(ctx, clk.Now().Add(-abandonAfter), batch)
			if n > 0 {
				logger.FromContext(ctx).Info("abandoned sessions cancelled", slog.Int("count", n))
			}
			return err
		},
	}
}

func MarkOverdueTodosJob(todos TodoJanitor, interval time.Duration) Job {
	return Job{
		Name:     "mark-overdue-todos",
		Interval: interval,
		Run: func(ctx context.Context) error {
			n, err := todos.MarkOverdue(ctx)
			if n > 0 {
				logger.FromContext(ctx).Info("todos marked overdue", slog.Int64("count", n))
			}
			return err
		},
	}
}
