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

type SessionTypesRepository struct {
	conn PgConnection
}

func NewSessionTypesRepo(conn PgConnection) *SessionTypesRepository {
	mustPing(conn, "sessionTypesRepo")
	return &SessionTypesRepository{
		conn: conn,
	}
}

func (tr *SessionTypesRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.SessionType, error) {
	var st entity.SessionType
	st.ID = id
	row := querierFrom(ctx, tr.conn).QueryRow(ctx, `SELECT user_id, name, work_duration_seconds, break_duration_seconds, `+
		`number_of_cycles, is_active, created_at FROM session_types WHERE id = $1;`, id)
	err := row.Scan(&st.UserID, &st.Name, &st.WorkDurationSeconds, &st.BreakDurationSeconds, &st.NumberOfCycles, &st.IsActive, &st.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrSessionTypeNotFound
		}
		return nil, fmt.Errorf("getting session type by id error: %w", err)
	}
	return &st, nil
}
