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

type ToDosRepository struct {
	conn PgConnection
}

func NewToDosRepo(conn PgConnection) *ToDosRepository {
	mustPing(conn, "todosRepo")
	return &ToDosRepository{
		conn: conn,
	}
}

func (tr *ToDosRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.ToDoItem, error) {
	return tr.get(ctx, `SELECT id, user_id, title, status, due_date, completed_date, created_at FROM todo_items WHERE id = $1;`, id)
}

func (tr *ToDosRepository) LockByID(ctx context.Context, id uuid.UUID) (*entity.ToDoItem, error) {
	return tr.get(ctx, `SELECT id, user_id, title, status, due_date, completed_date, created_at FROM todo_items WHERE id = $1 FOR UPDATE;`, id)
}

func (tr *ToDosRepository) get(ctx context.Context, query string, id uuid.UUID) (*entity.ToDoItem, error) {
	var item entity.ToDoItem
	err := querierFrom(ctx, tr.conn).QueryRow(ctx, query, id).Scan(
		&item.ID, &item.UserID, &item.Title, &item.Status, &item.DueDate, &item.CompletedDate, &item.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrToDoNotFound
		}
		return nil, fmt.Errorf("getting todo item error: %w", err)
	}
	return &item, nil
}

func (tr *ToDosRepository) MarkCompleted(ctx context.Context, id uuid.UUID, at time.Time) error {
	ct, err := querierFrom(ctx, tr.conn).Exec(ctx, `UPDATE todo_items SET status = 'completed', completed_date = $1 WHERE id = $2;`, at, id)
	if err != nil {
		return fmt.Errorf("completing todo item error: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrToDoNotFound
	}
	return nil
}

func (tr *ToDosRepository) MarkOverdue(ctx context.Context, now time.Time) (int64, error) {
	ct, err := querierFrom(ctx, tr.conn).Exec(ctx, `UPDATE todo_items SET status = 'overdue' WHERE status = 'open' AND due_date < $1;`, now)
	if err != nil {
		return 0, fmt.Errorf("marking overdue todo items error: %w", err)
	}
	return ct.RowsAffected(), nil
}
