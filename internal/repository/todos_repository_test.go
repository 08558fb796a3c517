package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	errorvalues "github.com/berkaychi/ClimbUpAPI-sub001/internal/error_values"
	"github.com/berkaychi/ClimbUpAPI-sub001/internal/repository"
	"github.com/berkaychi/ClimbUpAPI-sub001/pkg/entity"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
)

func TestGetToDo(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewToDosRepo(mock)
	ctx := context.Background()
	due := time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC)
	item := entity.ToDoItem{
		ID:            uuid.New(),
		UserID:        userID,
		Title:         "write report",
		Status:        entity.ToDoOpen,
		DueDate:       &due,
		CompletedDate: (*time.Time)(nil),
		CreatedAt:     due.Add(-48 * time.Hour),
	}
	columns := []string{"id", "user_id", "title", "status", "due_date", "completed_date", "created_at"}
	t.Run("found", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`FROM todo_items WHERE id = $1;`)).
			WithArgs(item.ID).
			WillReturnRows(pgxmock.NewRows(columns).
				AddRow(item.ID, item.UserID, item.Title, item.Status, item.DueDate, item.CompletedDate, item.CreatedAt))
		result, err := repo.GetByID(ctx, item.ID)
		assert.NoError(t, err)
		assert.Equal(t, item, *result)
	})
	t.Run("locked not found", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`FROM todo_items WHERE id = $1 FOR UPDATE;`)).
			WithArgs(item.ID).
			WillReturnError(pgx.ErrNoRows)
		_, err := repo.LockByID(ctx, item.ID)
		assert.ErrorIs(t, err, errorvalues.ErrToDoNotFound)
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`FROM todo_items WHERE id = $1;`)).
			WithArgs(item.ID).
			WillReturnError(errors.New("db error"))
		_, err := repo.GetByID(ctx, item.ID)
		assert.Error(t, err)
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestToDoStatusUpdates(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewToDosRepo(mock)
	ctx := context.Background()
	id := uuid.New()
	now := time.Date(2025, 3, 12, 8, 0, 0, 0, time.UTC)
	completeQuery := regexp.QuoteMeta(`UPDATE todo_items SET status = 'completed', completed_date = $1 WHERE id = $2;`)
	t.Run("completed", func(t *testing.T) {
		mock.ExpectExec(completeQuery).WithArgs(now, id).WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		assert.NoError(t, repo.MarkCompleted(ctx, id, now))
	})
	t.Run("complete missing item", func(t *testing.T) {
		mock.ExpectExec(completeQuery).WithArgs(now, id).WillReturnResult(pgxmock.NewResult("UPDATE", 0))
		assert.ErrorIs(t, repo.MarkCompleted(ctx, id, now), errorvalues.ErrToDoNotFound)
	})
	t.Run("overdue", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta(`UPDATE todo_items SET status = 'overdue' WHERE status = 'open' AND due_date < $1;`)).
			WithArgs(now).
			WillReturnResult(pgxmock.NewResult("UPDATE", 2))
		n, err := repo.MarkOverdue(ctx, now)
		assert.NoError(t, err)
		assert.Equal(t, int64(2), n)
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}
