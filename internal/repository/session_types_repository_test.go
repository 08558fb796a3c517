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

func TestGetSessionType(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewSessionTypesRepo(mock)
	ctx := context.Background()
	breakSeconds, cycles := 300, 4
	st := entity.SessionType{
		ID:                   uuid.New(),
		UserID:               (*uuid.UUID)(nil),
		Name:                 "Pomodoro",
		WorkDurationSeconds:  1500,
		BreakDurationSeconds: &breakSeconds,
		NumberOfCycles:       &cycles,
		IsActive:             true,
		CreatedAt:            time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	query := regexp.QuoteMeta(`FROM session_types WHERE id = $1;`)
	columns := []string{"user_id", "name", "work_duration_seconds", "break_duration_seconds", "number_of_cycles", "is_active", "created_at"}
	t.Run("system type", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(st.ID).
			WillReturnRows(pgxmock.NewRows(columns).
				AddRow(st.UserID, st.Name, st.WorkDurationSeconds, st.BreakDurationSeconds, st.NumberOfCycles, st.IsActive, st.CreatedAt))
		result, err := repo.GetByID(ctx, st.ID)
		assert.NoError(t, err)
		assert.Equal(t, st, *result)
		assert.Equal(t, 300, result.BreakSeconds())
	})
	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(st.ID).WillReturnError(pgx.ErrNoRows)
		_, err := repo.GetByID(ctx, st.ID)
		assert.ErrorIs(t, err, errorvalues.ErrSessionTypeNotFound)
		assert.ErrorIs(t, err, errorvalues.ErrNotFound)
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(st.ID).WillReturnError(errors.New("db error"))
		_, err := repo.GetByID(ctx, st.ID)
		assert.Error(t, err)
		assert.NotErrorIs(t, err, errorvalues.ErrNotFound)
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}
