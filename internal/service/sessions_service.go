package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"time"

	errorvalues "github.com/berkaychi/ClimbUpAPI-sub001/internal/error_values"
	"github.com/berkaychi/ClimbUpAPI-sub001/internal/events"
	"github.com/berkaychi/ClimbUpAPI-sub001/internal/repository"
	"github.com/berkaychi/ClimbUpAPI-sub001/pkg/clock"
	"github.com/berkaychi/ClimbUpAPI-sub001/pkg/entity"
	"github.com/berkaychi/ClimbUpAPI-sub001/pkg/logger"
	"github.com/google/uuid"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

type SessionsServiceDeps struct {
	Sessions     repository.FocusSessionsRepositoryI
	SessionTypes repository.SessionTypesRepositoryI
	ToDos        repository.ToDosRepositoryI
	Stats        StatsAggregator
	Tx           Transactor
	Publisher    SessionEventPublisher
	Clock        clock.Clock
}

type SessionsService struct {
	sessions  repository.FocusSessionsRepositoryI
	types     repository.SessionTypesRepositoryI
	todos     repository.ToDosRepositoryI
	stats     StatsAggregator
	tx        Transactor
	publisher SessionEventPublisher
	clock     clock.Clock
}

func NewSessionsService(deps SessionsServiceDeps) *SessionsService {
	if deps.Sessions == nil || deps.SessionTypes == nil || deps.ToDos == nil || deps.Stats == nil ||
		deps.Tx == nil || deps.Publisher == nil {
		log.Fatal("on sessions service provided nil dependencies")
	}
	if deps.Clock == nil {
		deps.Clock = clock.Real{}
	}
	InitValidator()
	return &SessionsService{
		sessions:  deps.Sessions,
		types:     deps.SessionTypes,
		todos:     deps.ToDos,
		stats:     deps.Stats,
		tx:        deps.Tx,
		publisher: deps.Publisher,
		clock:     deps.Clock,
	}
}

func (ss *SessionsService) StartSession(ctx context.Context, uid uuid.UUID, req *StartSessionRequest) (*entity.FocusSession, error) {
	if req == nil {
		return nil, errorvalues.ErrDurationNotSet
	}
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	plan, err := ss.planForRequest(ctx, uid, req)
	if err != nil {
		return nil, err
	}
	if req.ToDoItemID != nil {
		todo, err := ss.todos.GetByID(ctx, *req.ToDoItemID)
		if err != nil {
			return nil, fmt.Errorf("getting linked todo: %w", err)
		}
		if todo.UserID != uid {
			return nil, errorvalues.ErrWrongOwner
		}
	}
	if err = ss.checkTags(ctx, uid, req.TagIDs); err != nil {
		return nil, err
	}
	now := ss.clock.Now()
	session := &entity.FocusSession{
		UserID:                uid,
		SessionTypeID:         req.SessionTypeID,
		ToDoItemID:            req.ToDoItemID,
		Status:                entity.SessionWorking,
		StartTime:             now,
		CurrentStateStartTime: now,
		CurrentStateEndTime:   plan.deadline(now, plan.workSeconds),
		TagIDs:                req.TagIDs,
	}
	if req.SessionTypeID == nil {
		session.CustomDurationSeconds = req.CustomDurationSeconds
	}
	err = ss.tx.WithTx(ctx, func(ctx context.Context) error {
		id, err := ss.sessions.Create(ctx, session)
		if err != nil {
			return fmt.Errorf("creating session: %w", err)
		}
		session.ID = id
		if err = ss.stats.OnSessionStarted(ctx, uid); err != nil {
			return fmt.Errorf("updating started sessions: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return session, nil
}

// checkTags requires every tag to exist and belong to uid.
func (ss *SessionsService) checkTags(ctx context.Context, uid uuid.UUID, tagIDs []uuid.UUID) error {
	if len(tagIDs) == 0 {
		return nil
	}
	owners, err := ss.sessions.TagOwners(ctx, tagIDs)
	if err != nil {
		return fmt.Errorf("getting tags: %w", err)
	}
	for _, id := range tagIDs {
		owner, ok := owners[id]
		if !ok {
			return errorvalues.ErrTagNotFound
		}
		if owner != uid {
			return errorvalues.ErrWrongOwner
		}
	}
	return nil
}

func (ss *SessionsService) planForRequest(ctx context.Context, uid uuid.UUID, req *StartSessionRequest) (phasePlan, error) {
	hasCustom := req.CustomDurationSeconds != nil && *req.CustomDurationSeconds > 0
	switch {
	case req.SessionTypeID != nil && req.CustomDurationSeconds != nil:
		return phasePlan{}, errorvalues.ErrDurationConflict
	case req.SessionTypeID == nil && !hasCustom:
		return phasePlan{}, errorvalues.ErrDurationNotSet
	case req.SessionTypeID == nil:
		return planForCustom(*req.CustomDurationSeconds), nil
	}
	st, err := ss.types.GetByID(ctx, *req.SessionTypeID)
	if err != nil {
		return phasePlan{}, fmt.Errorf("getting session type: %w", err)
	}
	if st.UserID != nil && *st.UserID != uid {
		return phasePlan{}, errorvalues.ErrWrongOwner
	}
	if !st.IsActive {
		return phasePlan{}, errorvalues.ErrSessionTypeInactive
	}
	if st.WorkDurationSeconds <= 0 {
		return phasePlan{}, errorvalues.ErrInvalidSessionType
	}
	return planForType(st), nil
}

// planForSession rebuilds the plan of a running session. Session types are
// immutable templates, so a type deactivated after the start still drives it.
func (ss *SessionsService) planForSession(ctx context.Context, s *entity.FocusSession) (phasePlan, error) {
	if s.SessionTypeID != nil {
		st, err := ss.types.GetByID(ctx, *s.SessionTypeID)
		if err != nil {
			return phasePlan{}, fmt.Errorf("getting session type: %w", err)
		}
		return planForType(st), nil
	}
	if s.CustomDurationSeconds == nil || *s.CustomDurationSeconds <= 0 {
		return phasePlan{}, errorvalues.ErrDurationNotSet
	}
	return planForCustom(*s.CustomDurationSeconds), nil
}

func (ss *SessionsService) TransitionState(ctx context.Context, sessionID, uid uuid.UUID) (*entity.FocusSession, error) {
	now := ss.clock.Now()
	var session *entity.FocusSession
	err := ss.tx.WithTx(ctx, func(ctx context.Context) error {
		s, err := ss.lockOwned(ctx, sessionID, &uid)
		if err != nil {
			return err
		}
		plan, err := ss.planForSession(ctx, s)
		if err != nil {
			return err
		}
		leavingWork := s.Status == entity.SessionWorking
		elapsed, err := advance(s, plan, now)
		if err != nil {
			return err
		}
		if leavingWork {
			if err = ss.stats.OnWorkPhaseCompleted(ctx, uid, elapsed); err != nil {
				return fmt.Errorf("updating focus duration: %w", err)
			}
		}
		if err = ss.sessions.Update(ctx, s); err != nil {
			return fmt.Errorf("saving session: %w", err)
		}
		if s.Status == entity.SessionCompleted {
			if err = ss.stats.OnSessionCompleted(ctx, uid, now); err != nil {
				return fmt.Errorf("updating completion stats: %w", err)
			}
		}
		session = s
		return nil
	})
	if err != nil {
		return nil, err
	}
	if session.Status == entity.SessionCompleted {
		ss.publisher.PublishSessionCompleted(ctx, events.SessionCompleted{Session: *session})
	}
	return session, nil
}

func (ss *SessionsService) CancelSession(ctx context.Context, sessionID, uid uuid.UUID) (*entity.FocusSession, error) {
	return ss.cancel(ctx, sessionID, &uid)
}

// cancel stops the session. A nil uid skips the ownership check.
func (ss *SessionsService) cancel(ctx context.Context, sessionID uuid.UUID, uid *uuid.UUID) (*entity.FocusSession, error) {
	now := ss.clock.Now()
	var session *entity.FocusSession
	err := ss.tx.WithTx(ctx, func(ctx context.Context) error {
		s, err := ss.lockOwned(ctx, sessionID, uid)
		if err != nil {
			return err
		}
		if err = stop(s, now); err != nil {
			return err
		}
		if err = ss.sessions.Update(ctx, s); err != nil {
			return fmt.Errorf("saving session: %w", err)
		}
		session = s
		return nil
	})
	if err != nil {
		return nil, err
	}
	return session, nil
}

func (ss *SessionsService) lockOwned(ctx context.Context, sessionID uuid.UUID, uid *uuid.UUID) (*entity.FocusSession, error) {
	s, err := ss.sessions.LockByID(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("loading session: %w", err)
	}
	if uid != nil && s.UserID != *uid {
		return nil, errorvalues.ErrWrongOwner
	}
	if s.Status.IsTerminal() {
		return nil, errorvalues.ErrSessionFinished
	}
	return s, nil
}

func (ss *SessionsService) GetSession(ctx context.Context, sessionID, uid uuid.UUID) (*entity.FocusSession, error) {
	s, err := ss.sessions.GetByID(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("loading session: %w", err)
	}
	if s.UserID != uid {
		return nil, errorvalues.ErrWrongOwner
	}
	return s, nil
}

func (ss *SessionsService) ListSessions(ctx context.Context, uid uuid.UUID, pagination PaginationOpts) ([]*entity.FocusSession, error) {
	limit, offset := normalizePagination(pagination)
	sessions, err := ss.sessions.GetByUserID(ctx, uid, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("listing sessions: %w", err)
	}
	return sessions, nil
}

// CancelAbandoned cancels up to limit running sessions whose phase ended (or,
// for open ended phases, started) before cutoff. Failures are logged per
// session and do not stop the batch.
func (ss *SessionsService) CancelAbandoned(ctx context.Context, cutoff time.Time, limit int) (int, error) {
	stale, err := ss.sessions.ListAbandoned(ctx, cutoff, limit)
	if err != nil {
		return 0, fmt.Errorf("listing abandoned sessions: %w", err)
	}
	log := logger.FromContext(ctx)
	cancelled := 0
	for _, s := range stale {
		_, err = ss.cancel(ctx, s.ID, nil)
		if err != nil {
			if !errors.Is(err, errorvalues.ErrSessionFinished) {
				log.Warn("cancelling abandoned session failed", slog.String("session_id", s.ID.String()), slog.String("error", err.Error()))
			}
			continue
		}
		cancelled++
	}
	return cancelled, nil
}

func normalizePagination(p PaginationOpts) (int, int) {
	limit, offset := p.Limit, p.Offset
	if limit <= 0 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
