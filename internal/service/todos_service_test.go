package service_test

import (
	"context"
	"testing"
	"time"

	errorvalues "github.com/berkaychi/ClimbUpAPI-sub001/internal/error_values"
	"github.com/berkaychi/ClimbUpAPI-sub001/internal/service"
	"github.com/berkaychi/ClimbUpAPI-sub001/pkg/clock"
	"github.com/berkaychi/ClimbUpAPI-sub001/pkg/entity"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type todosEnv struct {
	svc       *service.TodosService
	todos     *todosRepoFake
	sessions  *sessionsRepoFake
	stats     *statsRepoFake
	publisher *publisherFake
	clock     *clock.Manual
}

func newTodosEnv(items ...entity.ToDoItem) *todosEnv {
	env := &todosEnv{
		todos:     newTodosRepoFake(items...),
		sessions:  newSessionsRepoFake(),
		stats:     newStatsRepoFake(),
		publisher: &publisherFake{},
		clock:     clock.NewManual(startTime),
	}
	env.svc = service.NewTodosService(service.TodosServiceDeps{
		ToDos:     env.todos,
		Sessions:  env.sessions,
		Stats:     service.NewStatsService(env.stats, env.clock),
		Tx:        &txFake{},
		Publisher: env.publisher,
		Clock:     env.clock,
	})
	return env
}

func (env *todosEnv) addSession(todoID uuid.UUID, status entity.SessionStatus) {
	id := uuid.New()
	env.sessions.sessions[id] = entity.FocusSession{
		ID:         id,
		UserID:     userID,
		ToDoItemID: &todoID,
		Status:     status,
		StartTime:  startTime,
	}
}

func TestCompleteTodo(t *testing.T) {
	todoID := uuid.New()
	testCases := []struct {
		Desc           string
		Item           entity.ToDoItem
		Sessions       []entity.SessionStatus
		Caller         uuid.UUID
		ExpectedErr    error
		ExpectedEvents int
		ExpectedStat   int
	}{
		{
			Desc:           "worked on in a completed session",
			Item:           entity.ToDoItem{ID: todoID, UserID: userID, Status: entity.ToDoOpen},
			Sessions:       []entity.SessionStatus{entity.SessionCancelled, entity.SessionCompleted},
			Caller:         userID,
			ExpectedEvents: 1,
			ExpectedStat:   1,
		},
		{
			Desc:     "only cancelled sessions",
			Item:     entity.ToDoItem{ID: todoID, UserID: userID, Status: entity.ToDoOpen},
			Sessions: []entity.SessionStatus{entity.SessionCancelled},
			Caller:   userID,
		},
		{
			Desc:   "overdue can still be completed",
			Item:   entity.ToDoItem{ID: todoID, UserID: userID, Status: entity.ToDoOverdue},
			Caller: userID,
		},
		{
			Desc:        "already completed",
			Item:        entity.ToDoItem{ID: todoID, UserID: userID, Status: entity.ToDoCompleted},
			Caller:      userID,
			ExpectedErr: errorvalues.ErrToDoCompleted,
		},
		{
			Desc:        "wrong owner",
			Item:        entity.ToDoItem{ID: todoID, UserID: userID, Status: entity.ToDoOpen},
			Sessions:    []entity.SessionStatus{entity.SessionCompleted},
			Caller:      otherUser,
			ExpectedErr: errorvalues.ErrWrongOwner,
		},
		{
			Desc:        "not found",
			Item:        entity.ToDoItem{ID: uuid.New(), UserID: userID, Status: entity.ToDoOpen},
			Caller:      userID,
			ExpectedErr: errorvalues.ErrToDoNotFound,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			env := newTodosEnv(tc.Item)
			for _, st := range tc.Sessions {
				env.addSession(todoID, st)
			}
			item, err := env.svc.CompleteTodo(context.Background(), todoID, tc.Caller)
			if tc.ExpectedErr != nil {
				assert.ErrorIs(t, err, tc.ExpectedErr)
				assert.Empty(t, env.publisher.todos)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, entity.ToDoCompleted, item.Status)
			require.NotNil(t, item.CompletedDate)
			assert.Equal(t, startTime, *item.CompletedDate)
			assert.Equal(t, entity.ToDoCompleted, env.todos.items[todoID].Status)
			assert.Len(t, env.publisher.todos, tc.ExpectedEvents)
			assert.Equal(t, tc.ExpectedStat, env.stats.stats[userID].TotalToDosCompletedWithFocus)
		})
	}
}

func TestCompleteTodoEvent(t *testing.T) {
	todoID := uuid.New()
	env := newTodosEnv(entity.ToDoItem{ID: todoID, UserID: userID, Status: entity.ToDoOpen})
	env.addSession(todoID, entity.SessionCompleted)
	_, err := env.svc.CompleteTodo(context.Background(), todoID, userID)
	require.NoError(t, err)
	require.Len(t, env.publisher.todos, 1)
	event := env.publisher.todos[0]
	assert.Equal(t, userID, event.UserID)
	assert.Equal(t, todoID, event.ToDoItemID)
	assert.Equal(t, startTime, event.CompletedAt)
}

func TestMarkOverdue(t *testing.T) {
	past := startTime.Add(-time.Hour)
	future := startTime.Add(time.Hour)
	env := newTodosEnv(
		entity.ToDoItem{ID: uuid.New(), UserID: userID, Status: entity.ToDoOpen, DueDate: &past},
		entity.ToDoItem{ID: uuid.New(), UserID: userID, Status: entity.ToDoOpen, DueDate: &future},
		entity.ToDoItem{ID: uuid.New(), UserID: userID, Status: entity.ToDoCompleted, DueDate: &past},
		entity.ToDoItem{ID: uuid.New(), UserID: userID, Status: entity.ToDoOpen},
	)
	n, err := env.svc.MarkOverdue(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}
