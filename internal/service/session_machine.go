package service

import (
	"fmt"
	"time"

	errorvalues "github.com/berkaychi/ClimbUpAPI-sub001/internal/error_values"
	"github.com/berkaychi/ClimbUpAPI-sub001/pkg/entity"
)

// phasePlan holds the durations driving a session. Nil cycles means work and
// break alternate until the session is cancelled.
type phasePlan struct {
	workSeconds  int
	breakSeconds int
	cycles       *int
}

func planForType(st *entity.SessionType) phasePlan {
	return phasePlan{
		workSeconds:  st.WorkDurationSeconds,
		breakSeconds: st.BreakSeconds(),
		cycles:       st.NumberOfCycles,
	}
}

// A custom duration is a single work phase without breaks.
func planForCustom(seconds int) phasePlan {
	one := 1
	return phasePlan{
		workSeconds: seconds,
		cycles:      &one,
	}
}

func (p phasePlan) bounded() bool {
	return p.cycles != nil
}

// Unbounded sessions have no phase deadlines.
func (p phasePlan) deadline(from time.Time, seconds int) *time.Time {
	if !p.bounded() {
		return nil
	}
	d := from.Add(time.Duration(seconds) * time.Second)
	return &d
}

// phaseElapsed returns whole seconds spent in the current phase, never negative.
func phaseElapsed(s *entity.FocusSession, now time.Time) int {
	secs := int(now.Sub(s.CurrentStateStartTime) / time.Second)
	if secs < 0 {
		return 0
	}
	return secs
}

func startPhase(s *entity.FocusSession, status entity.SessionStatus, now time.Time, deadline *time.Time) {
	s.Status = status
	s.CurrentStateStartTime = now
	s.CurrentStateEndTime = deadline
}

func finish(s *entity.FocusSession, status entity.SessionStatus, now time.Time) {
	s.Status = status
	s.EndTime = &now
	s.CurrentStateEndTime = nil
}

// advance closes the current phase and moves s to its next state. It returns
// the length of the closed phase in seconds.
//
// From Working the session takes a break while cycles remain, otherwise the
// final work phase closes the last cycle and the session completes. Unbounded
// types without breaks start a new work phase instead. From Break the cycle is
// counted and work resumes.
func advance(s *entity.FocusSession, p phasePlan, now time.Time) (int, error) {
	if s.Status.IsTerminal() {
		return 0, errorvalues.ErrSessionFinished
	}
	elapsed := phaseElapsed(s, now)
	switch s.Status {
	case entity.SessionWorking:
		s.TotalWorkDuration += elapsed
		switch {
		case p.breakSeconds > 0 && (!p.bounded() || s.CompletedCycles+1 < *p.cycles):
			startPhase(s, entity.SessionBreak, now, p.deadline(now, p.breakSeconds))
		case !p.bounded():
			s.CompletedCycles++
			startPhase(s, entity.SessionWorking, now, nil)
		default:
			s.CompletedCycles++
			finish(s, entity.SessionCompleted, now)
		}
	case entity.SessionBreak:
		s.TotalBreakDuration += elapsed
		s.CompletedCycles++
		if p.bounded() && s.CompletedCycles >= *p.cycles {
			finish(s, entity.SessionCompleted, now)
		} else {
			startPhase(s, entity.SessionWorking, now, p.deadline(now, p.workSeconds))
		}
	default:
		return 0, fmt.Errorf("unknown session status %q", s.Status)
	}
	return elapsed, nil
}

// stop cancels s, accounting only for the phase in progress.
func stop(s *entity.FocusSession, now time.Time) error {
	if s.Status.IsTerminal() {
		return errorvalues.ErrSessionFinished
	}
	elapsed := phaseElapsed(s, now)
	if s.Status == entity.SessionBreak {
		s.TotalBreakDuration += elapsed
	} else {
		s.TotalWorkDuration += elapsed
	}
	finish(s, entity.SessionCancelled, now)
	return nil
}
