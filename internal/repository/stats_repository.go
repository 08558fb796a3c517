package repository

import (
	"context"
	"errors"
	"fmt"

	errorvalues "github.com/berkaychi/ClimbUpAPI-sub001/internal/error_values"
	"github.com/berkaychi/ClimbUpAPI-sub001/pkg/entity"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const statsColumns = `user_id, total_focus_duration_seconds, total_completed_sessions, total_started_sessions, ` +
	`longest_single_session_duration_seconds, total_todos_completed_with_focus, current_streak_days, longest_streak_days, ` +
	`last_session_completion_date, updated_at`

// StatsRepository keeps one row per user. Counter updates are single upsert
// statements, so concurrent writers never lose increments.
type StatsRepository struct {
	conn PgConnection
}

func NewStatsRepo(conn PgConnection) *StatsRepository {
	mustPing(conn, "statsRepo")
	return &StatsRepository{
		conn: conn,
	}
}

func (sr *StatsRepository) EnsureExists(ctx context.Context, uid uuid.UUID) error {
	_, err := querierFrom(ctx, sr.conn).Exec(ctx, `INSERT INTO user_stats (user_id) VALUES ($1) ON CONFLICT (user_id) DO NOTHING;`, uid)
	if err != nil {
		if isPgCode(err, foreignKeyViolation) {
			return errorvalues.ErrUserNotFound
		}
		return fmt.Errorf("creating user stats error: %w", err)
	}
	return nil
}

func (sr *StatsRepository) Get(ctx context.Context, uid uuid.UUID) (*entity.UserStats, error) {
	return sr.get(ctx, `SELECT `+statsColumns+` FROM user_stats WHERE user_id = $1;`, uid)
}

func (sr *StatsRepository) GetForUpdate(ctx context.Context, uid uuid.UUID) (*entity.UserStats, error) {
	return sr.get(ctx, `SELECT `+statsColumns+` FROM user_stats WHERE user_id = $1 FOR UPDATE;`, uid)
}

func (sr *StatsRepository) get(ctx context.Context, query string, uid uuid.UUID) (*entity.UserStats, error) {
	var st entity.UserStats
	err := querierFrom(ctx, sr.conn).QueryRow(ctx, query, uid).Scan(
		&st.UserID,
		&st.TotalFocusDurationSeconds,
		&st.TotalCompletedSessions,
		&st.TotalStartedSessions,
		&st.LongestSingleSessionDurationSeconds,
		&st.TotalToDosCompletedWithFocus,
		&st.CurrentStreakDays,
		&st.LongestStreakDays,
		&st.LastSessionCompletionDate,
		&st.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrStatsNotFound
		}
		return nil, fmt.Errorf("getting user stats error: %w", err)
	}
	return &st, nil
}

func (sr *StatsRepository) IncrementStarted(ctx context.Context, uid uuid.UUID) error {
	return sr.upsert(ctx, "incrementing started sessions error",
		`INSERT INTO user_stats (user_id, total_started_sessions) VALUES ($1, 1) ON CONFLICT (user_id) DO UPDATE `+
			`SET total_started_sessions = user_stats.total_started_sessions + 1, updated_at = NOW();`, uid)
}

func (sr *StatsRepository) AddFocusDuration(ctx context.Context, uid uuid.UUID, seconds int) error {
	return sr.upsert(ctx, "adding focus duration error",
		`INSERT INTO user_stats (user_id, total_focus_duration_seconds, longest_single_session_duration_seconds) VALUES ($1, $2, $2) `+
			`ON CONFLICT (user_id) DO UPDATE SET total_focus_duration_seconds = user_stats.total_focus_duration_seconds + $2, `+
			`longest_single_session_duration_seconds = GREATEST(user_stats.longest_single_session_duration_seconds, $2), updated_at = NOW();`,
		uid, seconds)
}

func (sr *StatsRepository) IncrementToDosCompleted(ctx context.Context, uid uuid.UUID) error {
	return sr.upsert(ctx, "incrementing completed todos error",
		`INSERT INTO user_stats (user_id, total_todos_completed_with_focus) VALUES ($1, 1) ON CONFLICT (user_id) DO UPDATE `+
			`SET total_todos_completed_with_focus = user_stats.total_todos_completed_with_focus + 1, updated_at = NOW();`, uid)
}

func (sr *StatsRepository) upsert(ctx context.Context, errPrefix, query string, args ...any) error {
	_, err := querierFrom(ctx, sr.conn).Exec(ctx, query, args...)
	if err != nil {
		if isPgCode(err, foreignKeyViolation) {
			return errorvalues.ErrUserNotFound
		}
		return fmt.Errorf("%s: %w", errPrefix, err)
	}
	return nil
}

func (sr *StatsRepository) UpdateCompletion(ctx context.Context, stats *entity.UserStats) error {
	ct, err := querierFrom(ctx, sr.conn).Exec(ctx, `UPDATE user_stats SET total_completed_sessions = $1, current_streak_days = $2, `+
		`longest_streak_days = $3, last_session_completion_date = $4, updated_at = NOW() WHERE user_id = $5;`,
		stats.TotalCompletedSessions,
		stats.CurrentStreakDays,
		stats.LongestStreakDays,
		stats.LastSessionCompletionDate,
		stats.UserID,
	)
	if err != nil {
		return fmt.Errorf("updating user stats error: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrStatsNotFound
	}
	return nil
}
