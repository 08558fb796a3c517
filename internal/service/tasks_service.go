package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"

	"github.com/berkaychi/ClimbUpAPI-sub001/internal/repository"
	"github.com/berkaychi/ClimbUpAPI-sub001/pkg/clock"
	"github.com/berkaychi/ClimbUpAPI-sub001/pkg/entity"
	"github.com/berkaychi/ClimbUpAPI-sub001/pkg/logger"
	"github.com/google/uuid"
)

const defaultUserBatch = 200

type TasksServiceDeps struct {
	Users  repository.UsersRepositoryI
	Tasks  repository.AppTasksRepositoryI
	Points PointsLedger
	Tx     Transactor
	Clock  clock.Clock
	// Users processed per page by AssignForAllUsers
	BatchSize int
}

type TasksService struct {
	users     repository.UsersRepositoryI
	tasks     repository.AppTasksRepositoryI
	points    PointsLedger
	tx        Transactor
	clock     clock.Clock
	batchSize int
}

func NewTasksService(deps TasksServiceDeps) *TasksService {
	if deps.Users == nil || deps.Tasks == nil || deps.Points == nil || deps.Tx == nil {
		log.Fatal("on tasks service provided nil dependencies")
	}
	if deps.Clock == nil {
		deps.Clock = clock.Real{}
	}
	if deps.BatchSize <= 0 {
		deps.BatchSize = defaultUserBatch
	}
	return &TasksService{
		users:     deps.Users,
		tasks:     deps.Tasks,
		points:    deps.Points,
		tx:        deps.Tx,
		clock:     deps.Clock,
		batchSize: deps.BatchSize,
	}
}

// AssignOrRefresh makes sure the user holds an assignment of every active
// template for the current period. Returns how many were created.
func (ts *TasksService) AssignOrRefresh(ctx context.Context, uid uuid.UUID, templates []entity.AppTask) (int, error) {
	now := ts.clock.Now()
	created := 0
	var errs []error
	for _, tmpl := range templates {
		if !tmpl.IsActive {
			continue
		}
		start, end, err := PeriodWindow(tmpl.Recurrence, now)
		if err != nil {
			errs = append(errs, fmt.Errorf("task %q: %w", tmpl.Title, err))
			continue
		}
		ok, err := ts.tasks.Assign(ctx, &entity.UserAppTask{
			UserID:       uid,
			AppTaskID:    tmpl.ID,
			AssignedDate: start,
			DueDate:      end,
			Status:       entity.UserAppTaskInProgress,
		})
		if err != nil {
			errs = append(errs, fmt.Errorf("assigning task %q: %w", tmpl.Title, err))
			continue
		}
		if ok {
			created++
		}
	}
	return created, errors.Join(errs...)
}

// AssignForAllUsers pages over every user. A failing user is logged and skipped.
func (ts *TasksService) AssignForAllUsers(ctx context.Context) (int, error) {
	templates, err := ts.tasks.ListActiveTemplates(ctx)
	if err != nil {
		return 0, fmt.Errorf("listing task templates: %w", err)
	}
	if len(templates) == 0 {
		return 0, nil
	}
	log := logger.FromContext(ctx)
	total := 0
	for offset := 0; ; offset += ts.batchSize {
		if err = ctx.Err(); err != nil {
			return total, err
		}
		ids, err := ts.users.ListIDs(ctx, ts.batchSize, offset)
		if err != nil {
			return total, fmt.Errorf("listing users: %w", err)
		}
		for _, uid := range ids {
			n, err := ts.AssignOrRefresh(ctx, uid, templates)
			total += n
			if err != nil {
				log.Warn("assigning tasks failed", slog.String("uid", uid.String()), slog.String("error", err.Error()))
			}
		}
		if len(ids) < ts.batchSize {
			return total, nil
		}
	}
}

// UpdateProgress adds amount to every open assignment tracking metric, capped
// at the target. Assignments of the current period are created first if the
// scheduled pass has not reached the user yet. Returns the assignments
// completed by this call.
func (ts *TasksService) UpdateProgress(ctx context.Context, uid uuid.UUID, metric entity.MetricKey, amount int) ([]*entity.UserAppTask, error) {
	if amount <= 0 {
		return nil, nil
	}
	now := ts.clock.Now()
	var completed []*entity.UserAppTask
	err := ts.tx.WithTx(ctx, func(ctx context.Context) error {
		completed = nil
		templates, err := ts.tasks.ListActiveTemplates(ctx)
		if err != nil {
			return fmt.Errorf("listing task templates: %w", err)
		}
		tracking := make([]entity.AppTask, 0, len(templates))
		for _, tmpl := range templates {
			if tmpl.ActionType == metric {
				tracking = append(tracking, tmpl)
			}
		}
		if _, err = ts.AssignOrRefresh(ctx, uid, tracking); err != nil {
			return err
		}
		open, err := ts.tasks.ListOpenForMetric(ctx, uid, metric, now)
		if err != nil {
			return fmt.Errorf("listing open tasks: %w", err)
		}
		for _, task := range open {
			task.CurrentProgress = min(task.CurrentProgress+amount, task.TargetProgress)
			if task.CurrentProgress >= task.TargetProgress {
				task.Status = entity.UserAppTaskCompleted
				task.CompletedDate = &now
				completed = append(completed, task)
			}
			if err = ts.tasks.UpdateProgress(ctx, task); err != nil {
				return fmt.Errorf("saving task progress: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	log := logger.FromContext(ctx)
	for _, task := range completed {
		if task.PointsReward <= 0 {
			continue
		}
		err = ts.points.AwardPoints(ctx, uid, task.PointsReward, "task:"+task.ID.String())
		if err != nil {
			log.Warn("awarding task points failed", slog.String("task_id", task.ID.String()), slog.String("error", err.Error()))
		}
	}
	return completed, nil
}

func (ts *TasksService) ExpireOverdue(ctx context.Context) (int64, error) {
	n, err := ts.tasks.ExpireOverdue(ctx, ts.clock.Now())
	if err != nil {
		return 0, fmt.Errorf("expiring tasks: %w", err)
	}
	return n, nil
}

func (ts *TasksService) ListUserTasks(ctx context.Context, uid uuid.UUID) ([]*entity.UserAppTask, error) {
	tasks, err := ts.tasks.GetCurrentByUserID(ctx, uid, ts.clock.Now())
	if err != nil {
		return nil, fmt.Errorf("listing user tasks: %w", err)
	}
	return tasks, nil
}
