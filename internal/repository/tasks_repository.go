package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	errorvalues "github.com/berkaychi/ClimbUpAPI-sub001/internal/error_values"
	"github.com/berkaychi/ClimbUpAPI-sub001/pkg/entity"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const userTaskColumns = `ut.id, ut.user_id, ut.app_task_id, ut.assigned_date, ut.due_date, ut.current_progress, ut.status, ` +
	`ut.completed_date, t.title, t.target_progress, t.points_reward`

type AppTasksRepository struct {
	conn PgConnection
}

func NewAppTasksRepo(conn PgConnection) *AppTasksRepository {
	mustPing(conn, "appTasksRepo")
	return &AppTasksRepository{
		conn: conn,
	}
}

func (tr *AppTasksRepository) ListActiveTemplates(ctx context.Context) ([]entity.AppTask, error) {
	rows, err := querierFrom(ctx, tr.conn).Query(ctx, `SELECT id, title, description, target_progress, recurrence, action_type, points_reward, is_active `+
		`FROM app_tasks WHERE is_active ORDER BY id;`)
	if err != nil {
		return nil, fmt.Errorf("listing app tasks error: %w", err)
	}
	defer rows.Close()
	tasks := make([]entity.AppTask, 0)
	for rows.Next() {
		var t entity.AppTask
		if err = rows.Scan(&t.ID, &t.Title, &t.Description, &t.TargetProgress, &t.Recurrence, &t.ActionType, &t.PointsReward, &t.IsActive); err != nil {
			return nil, fmt.Errorf("app task row parsing error: %w", err)
		}
		tasks = append(tasks, t)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected app task rows error: %w", err)
	}
	return tasks, nil
}

func (tr *AppTasksRepository) UpsertTemplate(ctx context.Context, task *entity.AppTask) (int64, error) {
	var id int64
	err := querierFrom(ctx, tr.conn).QueryRow(ctx, `INSERT INTO app_tasks (title, description, target_progress, recurrence, action_type, points_reward, is_active) `+
		`VALUES ($1, $2, $3, $4, $5, $6, $7) ON CONFLICT (title) DO UPDATE SET description = EXCLUDED.description, `+
		`target_progress = EXCLUDED.target_progress, recurrence = EXCLUDED.recurrence, action_type = EXCLUDED.action_type, `+
		`points_reward = EXCLUDED.points_reward, is_active = EXCLUDED.is_active RETURNING id;`,
		task.Title, task.Description, task.TargetProgress, task.Recurrence, task.ActionType, task.PointsReward, task.IsActive).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("upserting app task error: %w", err)
	}
	return id, nil
}

// Assign creates the assignment and fills its id. An assignment for the same
// user, template and period start is left untouched and reported as false.
func (tr *AppTasksRepository) Assign(ctx context.Context, task *entity.UserAppTask) (bool, error) {
	err := querierFrom(ctx, tr.conn).QueryRow(ctx, `INSERT INTO user_app_tasks (user_id, app_task_id, assigned_date, due_date, current_progress, status) `+
		`VALUES ($1, $2, $3, $4, $5, $6) ON CONFLICT (user_id, app_task_id, assigned_date) DO NOTHING RETURNING id;`,
		task.UserID, task.AppTaskID, task.AssignedDate, task.DueDate, task.CurrentProgress, task.Status).Scan(&task.ID)
	if err != nil {
		switch {
		case errors.Is(err, pgx.ErrNoRows):
			return false, nil
		case isPgCode(err, foreignKeyViolation):
			return false, errorvalues.ErrReferenceNotFound
		}
		return false, fmt.Errorf("assigning app task error: %w", err)
	}
	return true, nil
}

func (tr *AppTasksRepository) ListOpenForMetric(ctx context.Context, uid uuid.UUID, metric entity.MetricKey, now time.Time) ([]*entity.UserAppTask, error) {
	rows, err := querierFrom(ctx, tr.conn).Query(ctx, `SELECT `+userTaskColumns+` FROM user_app_tasks ut JOIN app_tasks t ON t.id = ut.app_task_id `+
		`WHERE ut.user_id = $1 AND t.action_type = $2 AND t.is_active AND ut.status = 'in_progress' `+
		`AND ut.assigned_date <= $3 AND ut.due_date > $3 ORDER BY t.id FOR UPDATE OF ut;`, uid, metric, now)
	if err != nil {
		return nil, fmt.Errorf("listing open app tasks error: %w", err)
	}
	return collectUserTasks(rows)
}

func (tr *AppTasksRepository) UpdateProgress(ctx context.Context, task *entity.UserAppTask) error {
	ct, err := querierFrom(ctx, tr.conn).Exec(ctx, `UPDATE user_app_tasks SET current_progress = $1, status = $2, completed_date = $3 WHERE id = $4;`,
		task.CurrentProgress, task.Status, task.CompletedDate, task.ID)
	if err != nil {
		return fmt.Errorf("updating app task progress error: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrReferenceNotFound
	}
	return nil
}

func (tr *AppTasksRepository) ExpireOverdue(ctx context.Context, now time.Time) (int64, error) {
	ct, err := querierFrom(ctx, tr.conn).Exec(ctx, `UPDATE user_app_tasks SET status = 'expired' WHERE status = 'in_progress' AND due_date <= $1;`, now)
	if err != nil {
		return 0, fmt.Errorf("expiring app tasks error: %w", err)
	}
	return ct.RowsAffected(), nil
}

func (tr *AppTasksRepository) GetCurrentByUserID(ctx context.Context, uid uuid.UUID, now time.Time) ([]*entity.UserAppTask, error) {
	rows, err := querierFrom(ctx, tr.conn).Query(ctx, `SELECT `+userTaskColumns+` FROM user_app_tasks ut JOIN app_tasks t ON t.id = ut.app_task_id `+
		`WHERE ut.user_id = $1 AND ut.assigned_date <= $2 AND ut.due_date > $2 ORDER BY t.id;`, uid, now)
	if err != nil {
		return nil, fmt.Errorf("getting user app tasks error: %w", err)
	}
	return collectUserTasks(rows)
}

func collectUserTasks(rows pgx.Rows) ([]*entity.UserAppTask, error) {
	defer rows.Close()
	tasks := make([]*entity.UserAppTask, 0)
	for rows.Next() {
		var t entity.UserAppTask
		err := rows.Scan(&t.ID, &t.UserID, &t.AppTaskID, &t.AssignedDate, &t.DueDate, &t.CurrentProgress, &t.Status,
			&t.CompletedDate, &t.Title, &t.TargetProgress, &t.PointsReward)
		if err != nil {
			return nil, fmt.Errorf("user app task row parsing error: %w", err)
		}
		tasks = append(tasks, &t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected user app task rows error: %w", err)
	}
	return tasks, nil
}
