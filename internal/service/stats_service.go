package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/berkaychi/ClimbUpAPI-sub001/internal/repository"
	"github.com/berkaychi/ClimbUpAPI-sub001/pkg/clock"
	"github.com/berkaychi/ClimbUpAPI-sub001/pkg/entity"
	"github.com/google/uuid"
)

// StatsService is the single writer of user statistics.
type StatsService struct {
	repo  repository.StatsRepositoryI
	clock clock.Clock
}

func NewStatsService(repo repository.StatsRepositoryI, clk clock.Clock) *StatsService {
	if repo == nil {
		log.Fatal("provided nil statsRepo")
	}
	if clk == nil {
		clk = clock.Real{}
	}
	return &StatsService{
		repo:  repo,
		clock: clk,
	}
}

func (ss *StatsService) GetOrCreate(ctx context.Context, uid uuid.UUID) (*entity.UserStats, error) {
	if err := ss.repo.EnsureExists(ctx, uid); err != nil {
		return nil, fmt.Errorf("creating stats: %w", err)
	}
	st, err := ss.repo.Get(ctx, uid)
	if err != nil {
		return nil, fmt.Errorf("reading stats: %w", err)
	}
	return st, nil
}

func (ss *StatsService) OnSessionStarted(ctx context.Context, uid uuid.UUID) error {
	return ss.repo.IncrementStarted(ctx, uid)
}

func (ss *StatsService) OnWorkPhaseCompleted(ctx context.Context, uid uuid.UUID, durationSeconds int) error {
	if durationSeconds <= 0 {
		return nil
	}
	return ss.repo.AddFocusDuration(ctx, uid, durationSeconds)
}

// OnSessionCompleted must run inside the transaction that completed the
// session; the stats row stays locked until it ends.
func (ss *StatsService) OnSessionCompleted(ctx context.Context, uid uuid.UUID, completedAt time.Time) error {
	if err := ss.repo.EnsureExists(ctx, uid); err != nil {
		return fmt.Errorf("creating stats: %w", err)
	}
	st, err := ss.repo.GetForUpdate(ctx, uid)
	if err != nil {
		return fmt.Errorf("locking stats: %w", err)
	}
	ApplyCompletion(st, completedAt)
	if err = ss.repo.UpdateCompletion(ctx, st); err != nil {
		return fmt.Errorf("saving stats: %w", err)
	}
	return nil
}

func (ss *StatsService) OnTodoCompletedWithFocus(ctx context.Context, uid uuid.UUID) error {
	return ss.repo.IncrementToDosCompleted(ctx, uid)
}

// GetStats reports the stored counters with the current streak as of now:
// a streak whose last day is before yesterday reads as zero.
func (ss *StatsService) GetStats(ctx context.Context, uid uuid.UUID) (*entity.UserStats, error) {
	st, err := ss.GetOrCreate(ctx, uid)
	if err != nil {
		return nil, err
	}
	st.CurrentStreakDays = LiveStreak(st, ss.clock.Now())
	return st, nil
}

// ApplyCompletion counts one completed session at completedAt and updates the
// streak. Completions on the last recorded day leave the streak as is, the
// next day extends it, anything later starts over at one.
func ApplyCompletion(st *entity.UserStats, completedAt time.Time) {
	day := DateOf(completedAt)
	st.TotalCompletedSessions++
	if st.LastSessionCompletionDate == nil {
		st.CurrentStreakDays = 1
	} else {
		switch gap := daysBetween(*st.LastSessionCompletionDate, day); {
		case gap <= 0:
			if st.CurrentStreakDays == 0 {
				st.CurrentStreakDays = 1
			}
		case gap == 1:
			st.CurrentStreakDays++
		default:
			st.CurrentStreakDays = 1
		}
	}
	if st.CurrentStreakDays > st.LongestStreakDays {
		st.LongestStreakDays = st.CurrentStreakDays
	}
	if st.LastSessionCompletionDate == nil || day.After(DateOf(*st.LastSessionCompletionDate)) {
		st.LastSessionCompletionDate = &day
	}
}

func LiveStreak(st *entity.UserStats, now time.Time) int {
	if st.LastSessionCompletionDate == nil {
		return 0
	}
	if daysBetween(*st.LastSessionCompletionDate, now) > 1 {
		return 0
	}
	return st.CurrentStreakDays
}
