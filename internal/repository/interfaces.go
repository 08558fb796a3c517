package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/berkaychi/ClimbUpAPI-sub001/pkg/entity"
)

type UsersRepositoryI interface {
	// Looks up user by uid. Used by authorization middleware
	FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error)
	// Lists user ids ordered by id. Used by background passes over all users
	ListIDs(ctx context.Context, limit, offset int) ([]uuid.UUID, error)
}

type SessionTypesRepositoryI interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.SessionType, error)
}

type FocusSessionsRepositoryI interface {
	// Creates session with its tags. Returns generated id
	Create(ctx context.Context, session *entity.FocusSession) (uuid.UUID, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.FocusSession, error)
	// Same as GetByID but locks the row until the surrounding transaction ends
	LockByID(ctx context.Context, id uuid.UUID) (*entity.FocusSession, error)
	// Persists state machine fields (status, phase times, cycles, durations, end time)
	Update(ctx context.Context, session *entity.FocusSession) error
	// Lists user's sessions, newest first
	GetByUserID(ctx context.Context, uid uuid.UUID, limit, offset int) ([]*entity.FocusSession, error)
	// Lists non-terminal sessions whose current phase ended (or, if open-ended, started) before cutoff
	ListAbandoned(ctx context.Context, cutoff time.Time, limit int) ([]*entity.FocusSession, error)
	// Reports whether a completed session is linked to the todo item
	ExistsCompletedForToDo(ctx context.Context, todoID uuid.UUID) (bool, error)
	// Maps each existing tag id to its owner. Unknown ids are absent from the result
	TagOwners(ctx context.Context, tagIDs []uuid.UUID) (map[uuid.UUID]uuid.UUID, error)
}

type StatsRepositoryI interface {
	// Inserts zeroed stats row if there is none
	EnsureExists(ctx context.Context, uid uuid.UUID) error
	Get(ctx context.Context, uid uuid.UUID) (*entity.UserStats, error)
	// Same as Get but locks the row until the surrounding transaction ends
	GetForUpdate(ctx context.Context, uid uuid.UUID) (*entity.UserStats, error)
	IncrementStarted(ctx context.Context, uid uuid.UUID) error
	// Adds focus seconds and raises longest single session if needed
	AddFocusDuration(ctx context.Context, uid uuid.UUID, seconds int) error
	IncrementToDosCompleted(ctx context.Context, uid uuid.UUID) error
	// Persists completion counters and streak fields
	UpdateCompletion(ctx context.Context, stats *entity.UserStats) error
}

type BadgesRepositoryI interface {
	// Lists all definitions with their levels
	ListDefinitions(ctx context.Context) ([]entity.BadgeDefinition, error)
	ListUserBadges(ctx context.Context, uid uuid.UUID) ([]entity.UserBadge, error)
	// Records badge level for user. Returns false if it was already recorded
	Award(ctx context.Context, uid uuid.UUID, levelID int64, at time.Time) (bool, error)
	UpsertDefinition(ctx context.Context, def *entity.BadgeDefinition) (int64, error)
	UpsertLevel(ctx context.Context, level *entity.BadgeLevel) error
}

type AppTasksRepositoryI interface {
	ListActiveTemplates(ctx context.Context) ([]entity.AppTask, error)
	UpsertTemplate(ctx context.Context, task *entity.AppTask) (int64, error)
	// Creates assignment for a period. Returns false if it already exists
	Assign(ctx context.Context, task *entity.UserAppTask) (bool, error)
	// Lists and locks in-progress assignments of active templates tracking metric whose period contains now
	ListOpenForMetric(ctx context.Context, uid uuid.UUID, metric entity.MetricKey, now time.Time) ([]*entity.UserAppTask, error)
	UpdateProgress(ctx context.Context, task *entity.UserAppTask) error
	// Marks in-progress assignments due at or before now as expired
	ExpireOverdue(ctx context.Context, now time.Time) (int64, error)
	// Lists assignments whose period contains now
	GetCurrentByUserID(ctx context.Context, uid uuid.UUID, now time.Time) ([]*entity.UserAppTask, error)
}

type ToDosRepositoryI interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.ToDoItem, error)
	LockByID(ctx context.Context, id uuid.UUID) (*entity.ToDoItem, error)
	MarkCompleted(ctx context.Context, id uuid.UUID, at time.Time) error
	// Marks open items due before now as overdue
	MarkOverdue(ctx context.Context, now time.Time) (int64, error)
}

type DBConfig interface {
	ConnString() string
}

// Querier is satisfied by pool connections and transactions alike.
type Querier interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PgConnection interface {
	Querier
	Ping(ctx context.Context) error
	Begin(ctx context.Context) (pgx.Tx, error)
}

type PGCfg struct {
	Address  string
	Username string
	Password string
	DB       string
	SSLMode  string
}

func (pgcfg *PGCfg) ConnString() string {
	connStr := fmt.Sprintf("postgresql://%s:%s@%s/%s", pgcfg.Username, pgcfg.Password, pgcfg.Address, pgcfg.DB)
	if pgcfg.SSLMode != "" {
		connStr += "?sslmode=" + pgcfg.SSLMode
	}
	return connStr
}
