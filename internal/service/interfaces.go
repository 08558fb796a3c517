//go:generate mockgen -source=interfaces.go -destination=mocks/mock_services.go -package=mocks

package service

import (
	"context"
	"time"

	"github.com/berkaychi/ClimbUpAPI-sub001/internal/events"
	"github.com/berkaychi/ClimbUpAPI-sub001/pkg/entity"
	"github.com/google/uuid"
)

type StartSessionRequest struct {
	SessionTypeID         *uuid.UUID  `validate:"omitempty,not_nil_uuid"`
	CustomDurationSeconds *int        `validate:"omitempty,gt=0"`
	ToDoItemID            *uuid.UUID  `validate:"omitempty,not_nil_uuid"`
	TagIDs                []uuid.UUID `validate:"max=10,dive,not_nil_uuid"`
}

type PaginationOpts struct {
	Limit  int
	Offset int
}

type SessionsServiceI interface {
	// Creates session in working state for user. Validates duration source, session type and linked todo
	StartSession(ctx context.Context, uid uuid.UUID, req *StartSessionRequest) (*entity.FocusSession, error)
	// Moves session to its next state, completing it at the last boundary
	TransitionState(ctx context.Context, sessionID, uid uuid.UUID) (*entity.FocusSession, error)
	CancelSession(ctx context.Context, sessionID, uid uuid.UUID) (*entity.FocusSession, error)
	GetSession(ctx context.Context, sessionID, uid uuid.UUID) (*entity.FocusSession, error)
	ListSessions(ctx context.Context, uid uuid.UUID, pagination PaginationOpts) ([]*entity.FocusSession, error)
}

type StatsServiceI interface {
	GetStats(ctx context.Context, uid uuid.UUID) (*entity.UserStats, error)
}

type AchievementsServiceI interface {
	// Awards every badge level the user became eligible for. Returns only new badges
	CheckAndAward(ctx context.Context, uid uuid.UUID) ([]entity.UserBadge, error)
	ListUserBadges(ctx context.Context, uid uuid.UUID) ([]entity.UserBadge, error)
}

type TasksServiceI interface {
	// Lists tasks assigned for the periods containing now
	ListUserTasks(ctx context.Context, uid uuid.UUID) ([]*entity.UserAppTask, error)
}

type TodosServiceI interface {
	CompleteTodo(ctx context.Context, todoID, uid uuid.UUID) (*entity.ToDoItem, error)
}

type UserServiceI interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
}

// PointsLedger credits points once per (user, reason).
type PointsLedger interface {
	AwardPoints(ctx context.Context, uid uuid.UUID, amount int, reason string) error
}

type Transactor interface {
	WithTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type SessionEventPublisher interface {
	PublishSessionCompleted(ctx context.Context, event events.SessionCompleted)
}

type TodoEventPublisher interface {
	PublishTodoCompleted(ctx context.Context, event events.TodoCompleted)
}

// StatsAggregator is the write side of statistics used by session and todo flows.
type StatsAggregator interface {
	GetOrCreate(ctx context.Context, uid uuid.UUID) (*entity.UserStats, error)
	OnSessionStarted(ctx context.Context, uid uuid.UUID) error
	OnWorkPhaseCompleted(ctx context.Context, uid uuid.UUID, durationSeconds int) error
	OnSessionCompleted(ctx context.Context, uid uuid.UUID, completedAt time.Time) error
	OnTodoCompletedWithFocus(ctx context.Context, uid uuid.UUID) error
}
