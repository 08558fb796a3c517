package service

import (
	"context"
	"fmt"
	"log"

	errorvalues "github.com/berkaychi/ClimbUpAPI-sub001/internal/error_values"
	"github.com/berkaychi/ClimbUpAPI-sub001/internal/events"
	"github.com/berkaychi/ClimbUpAPI-sub001/internal/repository"
	"github.com/berkaychi/ClimbUpAPI-sub001/pkg/clock"
	"github.com/berkaychi/ClimbUpAPI-sub001/pkg/entity"
	"github.com/google/uuid"
)

type TodosServiceDeps struct {
	ToDos     repository.ToDosRepositoryI
	Sessions  repository.FocusSessionsRepositoryI
	Stats     StatsAggregator
	Tx        Transactor
	Publisher TodoEventPublisher
	Clock     clock.Clock
}

type TodosService struct {
	todos     repository.ToDosRepositoryI
	sessions  repository.FocusSessionsRepositoryI
	stats     StatsAggregator
	tx        Transactor
	publisher TodoEventPublisher
	clock     clock.Clock
}

func NewTodosService(deps TodosServiceDeps) *TodosService {
	if deps.ToDos == nil || deps.Sessions == nil || deps.Stats == nil || deps.Tx == nil || deps.Publisher == nil {
		log.Fatal("on todos service provided nil dependencies")
	}
	if deps.Clock == nil {
		deps.Clock = clock.Real{}
	}
	return &TodosService{
		todos:     deps.ToDos,
		sessions:  deps.Sessions,
		stats:     deps.Stats,
		tx:        deps.Tx,
		publisher: deps.Publisher,
		clock:     deps.Clock,
	}
}

// CompleteTodo marks the item completed. Items worked on in at least one
// completed focus session count towards the user's stats and raise TodoCompleted.
func (ts *TodosService) CompleteTodo(ctx context.Context, todoID, uid uuid.UUID) (*entity.ToDoItem, error) {
	now := ts.clock.Now()
	var (
		item      *entity.ToDoItem
		withFocus bool
	)
	err := ts.tx.WithTx(ctx, func(ctx context.Context) error {
		t, err := ts.todos.LockByID(ctx, todoID)
		if err != nil {
			return fmt.Errorf("loading todo: %w", err)
		}
		if t.UserID != uid {
			return errorvalues.ErrWrongOwner
		}
		if t.Status == entity.ToDoCompleted {
			return errorvalues.ErrToDoCompleted
		}
		if err = ts.todos.MarkCompleted(ctx, todoID, now); err != nil {
			return fmt.Errorf("completing todo: %w", err)
		}
		t.Status = entity.ToDoCompleted
		t.CompletedDate = &now
		withFocus, err = ts.sessions.ExistsCompletedForToDo(ctx, todoID)
		if err != nil {
			return fmt.Errorf("checking focus sessions: %w", err)
		}
		if withFocus {
			if err = ts.stats.OnTodoCompletedWithFocus(ctx, uid); err != nil {
				return fmt.Errorf("updating todo stats: %w", err)
			}
		}
		item = t
		return nil
	})
	if err != nil {
		return nil, err
	}
	if withFocus {
		ts.publisher.PublishTodoCompleted(ctx, events.TodoCompleted{
			UserID:      uid,
			ToDoItemID:  todoID,
			CompletedAt: now,
		})
	}
	return item, nil
}

func (ts *TodosService) MarkOverdue(ctx context.Context) (int64, error) {
	n, err := ts.todos.MarkOverdue(ctx, ts.clock.Now())
	if err != nil {
		return 0, fmt.Errorf("marking overdue todos: %w", err)
	}
	return n, nil
}
