package service_test

import (
	"context"
	"errors"
	"slices"
	"sync"
	"time"

	errorvalues "github.com/berkaychi/ClimbUpAPI-sub001/internal/error_values"
	"github.com/berkaychi/ClimbUpAPI-sub001/internal/events"
	"github.com/berkaychi/ClimbUpAPI-sub001/pkg/entity"
	"github.com/google/uuid"
)

// In-memory repositories. They return copies so services can't mutate
// stored state without calling an update method.

type sessionsRepoFake struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]entity.FocusSession
	// tag id -> owner
	tags map[uuid.UUID]uuid.UUID
	err  error
}

func newSessionsRepoFake() *sessionsRepoFake {
	return &sessionsRepoFake{
		sessions: make(map[uuid.UUID]entity.FocusSession),
		tags:     make(map[uuid.UUID]uuid.UUID),
	}
}

func (f *sessionsRepoFake) Create(ctx context.Context, session *entity.FocusSession) (uuid.UUID, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return uuid.UUID{}, f.err
	}
	s := *session
	s.ID = uuid.New()
	f.sessions[s.ID] = s
	return s.ID, nil
}

func (f *sessionsRepoFake) GetByID(ctx context.Context, id uuid.UUID) (*entity.FocusSession, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.sessions[id]
	if !ok {
		return nil, errorvalues.ErrSessionNotFound
	}
	return &s, nil
}

func (f *sessionsRepoFake) LockByID(ctx context.Context, id uuid.UUID) (*entity.FocusSession, error) {
	return f.GetByID(ctx, id)
}

func (f *sessionsRepoFake) Update(ctx context.Context, session *entity.FocusSession) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	if _, ok := f.sessions[session.ID]; !ok {
		return errorvalues.ErrSessionNotFound
	}
	f.sessions[session.ID] = *session
	return nil
}

func (f *sessionsRepoFake) GetByUserID(ctx context.Context, uid uuid.UUID, limit, offset int) ([]*entity.FocusSession, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	result := make([]*entity.FocusSession, 0)
	for _, s := range f.sessions {
		if s.UserID == uid {
			result = append(result, &s)
		}
	}
	slices.SortFunc(result, func(a, b *entity.FocusSession) int {
		return b.StartTime.Compare(a.StartTime)
	})
	if offset >= len(result) {
		return []*entity.FocusSession{}, nil
	}
	return result[offset:min(offset+limit, len(result))], nil
}

func (f *sessionsRepoFake) ListAbandoned(ctx context.Context, cutoff time.Time, limit int) ([]*entity.FocusSession, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	result := make([]*entity.FocusSession, 0)
	for _, s := range f.sessions {
		if s.Status.IsTerminal() {
			continue
		}
		ref := s.CurrentStateStartTime
		if s.CurrentStateEndTime != nil {
			ref = *s.CurrentStateEndTime
		}
		if ref.Before(cutoff) && len(result) < limit {
			result = append(result, &s)
		}
	}
	return result, nil
}

func (f *sessionsRepoFake) ExistsCompletedForToDo(ctx context.Context, todoID uuid.UUID) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, s := range f.sessions {
		if s.ToDoItemID != nil && *s.ToDoItemID == todoID && s.Status == entity.SessionCompleted {
			return true, nil
		}
	}
	return false, nil
}

func (f *sessionsRepoFake) TagOwners(ctx context.Context, tagIDs []uuid.UUID) (map[uuid.UUID]uuid.UUID, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	owners := make(map[uuid.UUID]uuid.UUID)
	for _, id := range tagIDs {
		if owner, ok := f.tags[id]; ok {
			owners[id] = owner
		}
	}
	return owners, nil
}

type sessionTypesRepoFake struct {
	types map[uuid.UUID]entity.SessionType
}

func newSessionTypesRepoFake(types ...entity.SessionType) *sessionTypesRepoFake {
	f := &sessionTypesRepoFake{types: make(map[uuid.UUID]entity.SessionType)}
	for _, st := range types {
		f.types[st.ID] = st
	}
	return f
}

func (f *sessionTypesRepoFake) GetByID(ctx context.Context, id uuid.UUID) (*entity.SessionType, error) {
	st, ok := f.types[id]
	if !ok {
		return nil, errorvalues.ErrSessionTypeNotFound
	}
	return &st, nil
}

type todosRepoFake struct {
	mu    sync.Mutex
	items map[uuid.UUID]entity.ToDoItem
}

func newTodosRepoFake(items ...entity.ToDoItem) *todosRepoFake {
	f := &todosRepoFake{items: make(map[uuid.UUID]entity.ToDoItem)}
	for _, it := range items {
		f.items[it.ID] = it
	}
	return f
}

func (f *todosRepoFake) GetByID(ctx context.Context, id uuid.UUID) (*entity.ToDoItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	it, ok := f.items[id]
	if !ok {
		return nil, errorvalues.ErrToDoNotFound
	}
	return &it, nil
}

func (f *todosRepoFake) LockByID(ctx context.Context, id uuid.UUID) (*entity.ToDoItem, error) {
	return f.GetByID(ctx, id)
}

func (f *todosRepoFake) MarkCompleted(ctx context.Context, id uuid.UUID, at time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	it, ok := f.items[id]
	if !ok {
		return errorvalues.ErrToDoNotFound
	}
	it.Status = entity.ToDoCompleted
	it.CompletedDate = &at
	f.items[id] = it
	return nil
}

func (f *todosRepoFake) MarkOverdue(ctx context.Context, now time.Time) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var n int64
	for id, it := range f.items {
		if it.Status == entity.ToDoOpen && it.DueDate != nil && it.DueDate.Before(now) {
			it.Status = entity.ToDoOverdue
			f.items[id] = it
			n++
		}
	}
	return n, nil
}

type statsRepoFake struct {
	mu    sync.Mutex
	stats map[uuid.UUID]entity.UserStats
	err   error
}

func newStatsRepoFake() *statsRepoFake {
	return &statsRepoFake{stats: make(map[uuid.UUID]entity.UserStats)}
}

func (f *statsRepoFake) EnsureExists(ctx context.Context, uid uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	if _, ok := f.stats[uid]; !ok {
		f.stats[uid] = entity.UserStats{UserID: uid}
	}
	return nil
}

func (f *statsRepoFake) Get(ctx context.Context, uid uuid.UUID) (*entity.UserStats, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	st, ok := f.stats[uid]
	if !ok {
		return nil, errorvalues.ErrStatsNotFound
	}
	return &st, nil
}

func (f *statsRepoFake) GetForUpdate(ctx context.Context, uid uuid.UUID) (*entity.UserStats, error) {
	return f.Get(ctx, uid)
}

func (f *statsRepoFake) modify(uid uuid.UUID, fn func(st *entity.UserStats)) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	st := f.stats[uid]
	st.UserID = uid
	fn(&st)
	f.stats[uid] = st
	return nil
}

func (f *statsRepoFake) IncrementStarted(ctx context.Context, uid uuid.UUID) error {
	return f.modify(uid, func(st *entity.UserStats) { st.TotalStartedSessions++ })
}

func (f *statsRepoFake) AddFocusDuration(ctx context.Context, uid uuid.UUID, seconds int) error {
	return f.modify(uid, func(st *entity.UserStats) {
		st.TotalFocusDurationSeconds += seconds
		st.LongestSingleSessionDurationSeconds = max(st.LongestSingleSessionDurationSeconds, seconds)
	})
}

func (f *statsRepoFake) IncrementToDosCompleted(ctx context.Context, uid uuid.UUID) error {
	return f.modify(uid, func(st *entity.UserStats) { st.TotalToDosCompletedWithFocus++ })
}

func (f *statsRepoFake) UpdateCompletion(ctx context.Context, stats *entity.UserStats) error {
	return f.modify(stats.UserID, func(st *entity.UserStats) {
		st.TotalCompletedSessions = stats.TotalCompletedSessions
		st.CurrentStreakDays = stats.CurrentStreakDays
		st.LongestStreakDays = stats.LongestStreakDays
		st.LastSessionCompletionDate = stats.LastSessionCompletionDate
	})
}

type badgesRepoFake struct {
	mu       sync.Mutex
	defs     []entity.BadgeDefinition
	owned    map[uuid.UUID][]entity.UserBadge
	awardErr error
}

func newBadgesRepoFake(defs ...entity.BadgeDefinition) *badgesRepoFake {
	return &badgesRepoFake{defs: defs, owned: make(map[uuid.UUID][]entity.UserBadge)}
}

func (f *badgesRepoFake) ListDefinitions(ctx context.Context) ([]entity.BadgeDefinition, error) {
	return f.defs, nil
}

func (f *badgesRepoFake) ListUserBadges(ctx context.Context, uid uuid.UUID) ([]entity.UserBadge, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return slices.Clone(f.owned[uid]), nil
}

func (f *badgesRepoFake) levelByID(id int64) (entity.BadgeLevel, bool) {
	for _, d := range f.defs {
		for _, l := range d.Levels {
			if l.ID == id {
				return l, true
			}
		}
	}
	return entity.BadgeLevel{}, false
}

func (f *badgesRepoFake) Award(ctx context.Context, uid uuid.UUID, levelID int64, at time.Time) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.awardErr != nil {
		return false, f.awardErr
	}
	level, ok := f.levelByID(levelID)
	if !ok {
		return false, errorvalues.ErrReferenceNotFound
	}
	for _, b := range f.owned[uid] {
		if b.BadgeLevelID == levelID {
			return false, nil
		}
	}
	f.owned[uid] = append(f.owned[uid], entity.UserBadge{
		UserID:            uid,
		BadgeLevelID:      levelID,
		BadgeDefinitionID: level.BadgeDefinitionID,
		Level:             level.Level,
		RequiredValue:     level.RequiredValue,
		AchievedAt:        at,
	})
	return true, nil
}

func (f *badgesRepoFake) UpsertDefinition(ctx context.Context, def *entity.BadgeDefinition) (int64, error) {
	return 0, errors.New("not supported")
}

func (f *badgesRepoFake) UpsertLevel(ctx context.Context, level *entity.BadgeLevel) error {
	return errors.New("not supported")
}

type tasksRepoFake struct {
	mu          sync.Mutex
	templates   []entity.AppTask
	assignments []entity.UserAppTask
}

func (f *tasksRepoFake) ListActiveTemplates(ctx context.Context) ([]entity.AppTask, error) {
	result := make([]entity.AppTask, 0)
	for _, t := range f.templates {
		if t.IsActive {
			result = append(result, t)
		}
	}
	return result, nil
}

func (f *tasksRepoFake) UpsertTemplate(ctx context.Context, task *entity.AppTask) (int64, error) {
	return 0, errors.New("not supported")
}

func (f *tasksRepoFake) template(id int64) (entity.AppTask, bool) {
	for _, t := range f.templates {
		if t.ID == id {
			return t, true
		}
	}
	return entity.AppTask{}, false
}

func (f *tasksRepoFake) Assign(ctx context.Context, task *entity.UserAppTask) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.template(task.AppTaskID); !ok {
		return false, errorvalues.ErrReferenceNotFound
	}
	for _, a := range f.assignments {
		if a.UserID == task.UserID && a.AppTaskID == task.AppTaskID && a.AssignedDate.Equal(task.AssignedDate) {
			return false, nil
		}
	}
	task.ID = uuid.New()
	f.assignments = append(f.assignments, *task)
	return true, nil
}

func (f *tasksRepoFake) withTemplate(a entity.UserAppTask) *entity.UserAppTask {
	t, _ := f.template(a.AppTaskID)
	a.Title = t.Title
	a.TargetProgress = t.TargetProgress
	a.PointsReward = t.PointsReward
	return &a
}

func (f *tasksRepoFake) ListOpenForMetric(ctx context.Context, uid uuid.UUID, metric entity.MetricKey, now time.Time) ([]*entity.UserAppTask, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	result := make([]*entity.UserAppTask, 0)
	for _, a := range f.assignments {
		t, _ := f.template(a.AppTaskID)
		if a.UserID != uid || t.ActionType != metric || !t.IsActive || a.Status != entity.UserAppTaskInProgress {
			continue
		}
		if a.AssignedDate.After(now) || !a.DueDate.After(now) {
			continue
		}
		result = append(result, f.withTemplate(a))
	}
	return result, nil
}

func (f *tasksRepoFake) UpdateProgress(ctx context.Context, task *entity.UserAppTask) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, a := range f.assignments {
		if a.ID == task.ID {
			f.assignments[i].CurrentProgress = task.CurrentProgress
			f.assignments[i].Status = task.Status
			f.assignments[i].CompletedDate = task.CompletedDate
			return nil
		}
	}
	return errorvalues.ErrReferenceNotFound
}

func (f *tasksRepoFake) ExpireOverdue(ctx context.Context, now time.Time) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var n int64
	for i, a := range f.assignments {
		if a.Status == entity.UserAppTaskInProgress && !a.DueDate.After(now) {
			f.assignments[i].Status = entity.UserAppTaskExpired
			n++
		}
	}
	return n, nil
}

func (f *tasksRepoFake) GetCurrentByUserID(ctx context.Context, uid uuid.UUID, now time.Time) ([]*entity.UserAppTask, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	result := make([]*entity.UserAppTask, 0)
	for _, a := range f.assignments {
		if a.UserID == uid && !a.AssignedDate.After(now) && a.DueDate.After(now) {
			result = append(result, f.withTemplate(a))
		}
	}
	return result, nil
}

type usersRepoFake struct {
	ids []uuid.UUID
}

func (f *usersRepoFake) FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error) {
	if slices.Contains(f.ids, uid) {
		return &entity.User{ID: uid}, nil
	}
	return nil, errorvalues.ErrUserNotFound
}

func (f *usersRepoFake) ListIDs(ctx context.Context, limit, offset int) ([]uuid.UUID, error) {
	if offset >= len(f.ids) {
		return []uuid.UUID{}, nil
	}
	return f.ids[offset:min(offset+limit, len(f.ids))], nil
}

// Collaborators

type txFake struct {
	calls int
}

func (f *txFake) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(ctx)
}

type pointsAward struct {
	UserID uuid.UUID
	Amount int
	Reason string
}

type ledgerFake struct {
	mu      sync.Mutex
	awards  []pointsAward
	reasons map[string]bool
	err     error
}

func (f *ledgerFake) AwardPoints(ctx context.Context, uid uuid.UUID, amount int, reason string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	if f.reasons == nil {
		f.reasons = make(map[string]bool)
	}
	if f.reasons[uid.String()+reason] {
		return nil
	}
	f.reasons[uid.String()+reason] = true
	f.awards = append(f.awards, pointsAward{UserID: uid, Amount: amount, Reason: reason})
	return nil
}

type publisherFake struct {
	mu       sync.Mutex
	sessions []events.SessionCompleted
	todos    []events.TodoCompleted
}

func (f *publisherFake) PublishSessionCompleted(ctx context.Context, event events.SessionCompleted) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sessions = append(f.sessions, event)
}

func (f *publisherFake) PublishTodoCompleted(ctx context.Context, event events.TodoCompleted) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.todos = append(f.todos, event)
}
