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
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
)

func TestEnsureStatsExist(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewStatsRepo(mock)
	ctx := context.Background()
	query := regexp.QuoteMeta(`INSERT INTO user_stats (user_id) VALUES ($1) ON CONFLICT (user_id) DO NOTHING;`)
	t.Run("created", func(t *testing.T) {
		mock.ExpectExec(query).WithArgs(userID).WillReturnResult(pgxmock.NewResult("INSERT", 1))
		assert.NoError(t, repo.EnsureExists(ctx, userID))
	})
	t.Run("already exists", func(t *testing.T) {
		mock.ExpectExec(query).WithArgs(userID).WillReturnResult(pgxmock.NewResult("INSERT", 0))
		assert.NoError(t, repo.EnsureExists(ctx, userID))
	})
	t.Run("unknown user", func(t *testing.T) {
		mock.ExpectExec(query).WithArgs(userID).WillReturnError(&pgconn.PgError{Code: "23503"})
		assert.ErrorIs(t, repo.EnsureExists(ctx, userID), errorvalues.ErrUserNotFound)
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetStats(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewStatsRepo(mock)
	ctx := context.Background()
	last := time.Date(2025, 3, 9, 18, 0, 0, 0, time.UTC)
	stats := entity.UserStats{
		UserID:                              userID,
		TotalFocusDurationSeconds:           6000,
		TotalCompletedSessions:              4,
		TotalStartedSessions:                5,
		LongestSingleSessionDurationSeconds: 1500,
		TotalToDosCompletedWithFocus:        1,
		CurrentStreakDays:                   2,
		LongestStreakDays:                   3,
		LastSessionCompletionDate:           &last,
		UpdatedAt:                           last,
	}
	columns := []string{"user_id", "total_focus_duration_seconds", "total_completed_sessions", "total_started_sessions",
		"longest_single_session_duration_seconds", "total_todos_completed_with_focus", "current_streak_days", "longest_streak_days",
		"last_session_completion_date", "updated_at"}
	row := []any{stats.UserID, stats.TotalFocusDurationSeconds, stats.TotalCompletedSessions, stats.TotalStartedSessions,
		stats.LongestSingleSessionDurationSeconds, stats.TotalToDosCompletedWithFocus, stats.CurrentStreakDays, stats.LongestStreakDays,
		stats.LastSessionCompletionDate, stats.UpdatedAt}
	t.Run("success", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`FROM user_stats WHERE user_id = $1;`)).
			WithArgs(userID).
			WillReturnRows(pgxmock.NewRows(columns).AddRow(row...))
		result, err := repo.Get(ctx, userID)
		assert.NoError(t, err)
		assert.Equal(t, stats, *result)
	})
	t.Run("locked read", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`FROM user_stats WHERE user_id = $1 FOR UPDATE;`)).
			WithArgs(userID).
			WillReturnRows(pgxmock.NewRows(columns).AddRow(row...))
		result, err := repo.GetForUpdate(ctx, userID)
		assert.NoError(t, err)
		assert.Equal(t, stats, *result)
	})
	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`FROM user_stats WHERE user_id = $1;`)).
			WithArgs(userID).
			WillReturnError(pgx.ErrNoRows)
		_, err := repo.Get(ctx, userID)
		assert.ErrorIs(t, err, errorvalues.ErrStatsNotFound)
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStatsCounters(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewStatsRepo(mock)
	ctx := context.Background()
	testCases := []struct {
		Desc     string
		Query    string
		Args     []any
		Call     func() error
		DBErr    error
		Expected error
	}{
		{
			Desc:  "increment started",
			Query: `SET total_started_sessions = user_stats.total_started_sessions + 1, updated_at = NOW();`,
			Args:  []any{userID},
			Call:  func() error { return repo.IncrementStarted(ctx, userID) },
		},
		{
			Desc:  "add focus duration",
			Query: `longest_single_session_duration_seconds = GREATEST(user_stats.longest_single_session_duration_seconds, $2), updated_at = NOW();`,
			Args:  []any{userID, 1500},
			Call:  func() error { return repo.AddFocusDuration(ctx, userID, 1500) },
		},
		{
			Desc:  "increment todos",
			Query: `SET total_todos_completed_with_focus = user_stats.total_todos_completed_with_focus + 1, updated_at = NOW();`,
			Args:  []any{userID},
			Call:  func() error { return repo.IncrementToDosCompleted(ctx, userID) },
		},
		{
			Desc:     "unknown user",
			Query:    `SET total_started_sessions = user_stats.total_started_sessions + 1, updated_at = NOW();`,
			Args:     []any{userID},
			Call:     func() error { return repo.IncrementStarted(ctx, userID) },
			DBErr:    &pgconn.PgError{Code: "23503"},
			Expected: errorvalues.ErrUserNotFound,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			exp := mock.ExpectExec(regexp.QuoteMeta(tc.Query)).WithArgs(tc.Args...)
			if tc.DBErr != nil {
				exp.WillReturnError(tc.DBErr)
			} else {
				exp.WillReturnResult(pgxmock.NewResult("INSERT", 1))
			}
			err := tc.Call()
			if tc.Expected != nil {
				assert.ErrorIs(t, err, tc.Expected)
			} else {
				assert.NoError(t, err)
			}
		})
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateStatsCompletion(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewStatsRepo(mock)
	ctx := context.Background()
	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	stats := &entity.UserStats{
		UserID:                    userID,
		TotalCompletedSessions:    3,
		CurrentStreakDays:         2,
		LongestStreakDays:         2,
		LastSessionCompletionDate: &day,
	}
	query := regexp.QuoteMeta(`UPDATE user_stats SET total_completed_sessions = $1, current_streak_days = $2, ` +
		`longest_streak_days = $3, last_session_completion_date = $4, updated_at = NOW() WHERE user_id = $5;`)
	args := []any{3, 2, 2, &day, userID}
	t.Run("success", func(t *testing.T) {
		mock.ExpectExec(query).WithArgs(args...).WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		assert.NoError(t, repo.UpdateCompletion(ctx, stats))
	})
	t.Run("no row", func(t *testing.T) {
		mock.ExpectExec(query).WithArgs(args...).WillReturnResult(pgxmock.NewResult("UPDATE", 0))
		assert.ErrorIs(t, repo.UpdateCompletion(ctx, stats), errorvalues.ErrStatsNotFound)
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectExec(query).WithArgs(args...).WillReturnError(errors.New("db error"))
		assert.Error(t, repo.UpdateCompletion(ctx, stats))
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}
