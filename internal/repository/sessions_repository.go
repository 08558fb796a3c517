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

const sessionColumns = `id, user_id, session_type_id, todo_item_id, custom_duration_seconds, status, start_time, end_time, ` +
	`current_state_start_time, current_state_end_time, completed_cycles, total_work_duration, total_break_duration`

type rowScanner interface {
	Scan(dest ...any) error
}

type FocusSessionsRepository struct {
	conn PgConnection
}

func NewFocusSessionsRepo(conn PgConnection) *FocusSessionsRepository {
	mustPing(conn, "focusSessionsRepo")
	return &FocusSessionsRepository{
		conn: conn,
	}
}

func scanSession(row rowScanner) (*entity.FocusSession, error) {
	var s entity.FocusSession
	err := row.Scan(
		&s.ID,
		&s.UserID,
		&s.SessionTypeID,
		&s.ToDoItemID,
		&s.CustomDurationSeconds,
		&s.Status,
		&s.StartTime,
		&s.EndTime,
		&s.CurrentStateStartTime,
		&s.CurrentStateEndTime,
		&s.CompletedCycles,
		&s.TotalWorkDuration,
		&s.TotalBreakDuration,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (sr *FocusSessionsRepository) Create(ctx context.Context, session *entity.FocusSession) (uuid.UUID, error) {
	if session == nil {
		return uuid.UUID{}, errors.New("session is nil")
	}
	q := querierFrom(ctx, sr.conn)
	var id uuid.UUID
	err := q.QueryRow(ctx, `INSERT INTO focus_sessions (user_id, session_type_id, todo_item_id, custom_duration_seconds, status, `+
		`start_time, current_state_start_time, current_state_end_time) VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id;`,
		session.UserID,
		session.SessionTypeID,
		session.ToDoItemID,
		session.CustomDurationSeconds,
		session.Status,
		session.StartTime,
		session.CurrentStateStartTime,
		session.CurrentStateEndTime,
	).Scan(&id)
	if err != nil {
		if isPgCode(err, foreignKeyViolation) {
			return uuid.UUID{}, errorvalues.ErrReferenceNotFound
		}
		return uuid.UUID{}, fmt.Errorf("creating focus session error: %w", err)
	}
	for _, tagID := range session.TagIDs {
		_, err = q.Exec(ctx, `INSERT INTO focus_session_tags (session_id, tag_id) VALUES ($1, $2) ON CONFLICT DO NOTHING;`, id, tagID)
		if err != nil {
			if isPgCode(err, foreignKeyViolation) {
				return uuid.UUID{}, errorvalues.ErrReferenceNotFound
			}
			return uuid.UUID{}, fmt.Errorf("attaching tag to focus session error: %w", err)
		}
	}
	return id, nil
}

func (sr *FocusSessionsRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.FocusSession, error) {
	row := querierFrom(ctx, sr.conn).QueryRow(ctx, `SELECT `+sessionColumns+` FROM focus_sessions WHERE id = $1;`, id)
	session, err := scanSession(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrSessionNotFound
		}
		return nil, fmt.Errorf("getting focus session by id error: %w", err)
	}
	return session, nil
}

func (sr *FocusSessionsRepository) LockByID(ctx context.Context, id uuid.UUID) (*entity.FocusSession, error) {
	row := querierFrom(ctx, sr.conn).QueryRow(ctx, `SELECT `+sessionColumns+` FROM focus_sessions WHERE id = $1 FOR UPDATE;`, id)
	session, err := scanSession(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrSessionNotFound
		}
		return nil, fmt.Errorf("locking focus session error: %w", err)
	}
	return session, nil
}

func (sr *FocusSessionsRepository) Update(ctx context.Context, session *entity.FocusSession) error {
	ct, err := querierFrom(ctx, sr.conn).Exec(ctx, `UPDATE focus_sessions SET status = $1, end_time = $2, current_state_start_time = $3, `+
		`current_state_end_time = $4, completed_cycles = $5, total_work_duration = $6, total_break_duration = $7 WHERE id = $8;`,
		session.Status,
		session.EndTime,
		session.CurrentStateStartTime,
		session.CurrentStateEndTime,
		session.CompletedCycles,
		session.TotalWorkDuration,
		session.TotalBreakDuration,
		session.ID,
	)
	if err != nil {
		return fmt.Errorf("updating focus session error: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrSessionNotFound
	}
	return nil
}

func (sr *FocusSessionsRepository) GetByUserID(ctx context.Context, uid uuid.UUID, limit, offset int) ([]*entity.FocusSession, error) {
	rows, err := querierFrom(ctx, sr.conn).Query(ctx, `SELECT `+sessionColumns+
		` FROM focus_sessions WHERE user_id = $1 ORDER BY start_time DESC LIMIT $2 OFFSET $3;`, uid, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("getting focus sessions by uid error: %w", err)
	}
	return collectSessions(rows)
}

func (sr *FocusSessionsRepository) ListAbandoned(ctx context.Context, cutoff time.Time, limit int) ([]*entity.FocusSession, error) {
	rows, err := querierFrom(ctx, sr.conn).Query(ctx, `SELECT `+sessionColumns+` FROM focus_sessions WHERE status IN ('working', 'break') `+
		`AND COALESCE(current_state_end_time, current_state_start_time) < $1 ORDER BY start_time LIMIT $2;`, cutoff, limit)
	if err != nil {
		return nil, fmt.Errorf("listing abandoned focus sessions error: %w", err)
	}
	return collectSessions(rows)
}

func (sr *FocusSessionsRepository) ExistsCompletedForToDo(ctx context.Context, todoID uuid.UUID) (bool, error) {
	var exists bool
	row := querierFrom(ctx, sr.conn).QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM focus_sessions WHERE todo_item_id = $1 AND status = 'completed');`, todoID)
	if err := row.Scan(&exists); err != nil {
		return false, fmt.Errorf("inspecting focus sessions of todo error: %w", err)
	}
	return exists, nil
}

func (sr *FocusSessionsRepository) TagOwners(ctx context.Context, tagIDs []uuid.UUID) (map[uuid.UUID]uuid.UUID, error) {
	owners := make(map[uuid.UUID]uuid.UUID, len(tagIDs))
	if len(tagIDs) == 0 {
		return owners, nil
	}
	rows, err := querierFrom(ctx, sr.conn).Query(ctx, `SELECT id, user_id FROM tags WHERE id = ANY($1);`, tagIDs)
	if err != nil {
		return nil, fmt.Errorf("getting tag owners error: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var id, uid uuid.UUID
		if err = rows.Scan(&id, &uid); err != nil {
			return nil, fmt.Errorf("tag row parsing error: %w", err)
		}
		owners[id] = uid
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected tag rows error: %w", err)
	}
	return owners, nil
}

func collectSessions(rows pgx.Rows) ([]*entity.FocusSession, error) {
	defer rows.Close()
	sessions := make([]*entity.FocusSession, 0)
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, fmt.Errorf("focus session row parsing error: %w", err)
		}
		sessions = append(sessions, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected focus session rows error: %w", err)
	}
	return sessions, nil
}
