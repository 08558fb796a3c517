package entity

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	TotalPoints int       `json:"total_points"`
}

type SessionStatus string

const (
	SessionWorking   SessionStatus = "working"
	SessionBreak     SessionStatus = "break"
	SessionCompleted SessionStatus = "completed"
	SessionCancelled SessionStatus = "cancelled"
)

// IsTerminal reports whether no further transition is allowed.
func (s SessionStatus) IsTerminal() bool {
	return s == SessionCompleted || s == SessionCancelled
}

type SessionType struct {
	ID     uuid.UUID  `json:"id"`
	UserID *uuid.UUID `json:"uid,omitempty"`
	Name   string     `json:"name"`
	// Durations are in seconds. Nil or zero break means the type has no breaks.
	WorkDurationSeconds  int  `json:"work_duration"`
	BreakDurationSeconds *int `json:"break_duration,omitempty"`
	// Nil means work and break alternate until the session is stopped.
	NumberOfCycles *int      `json:"cycles,omitempty"`
	IsActive       bool      `json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
}

func (st *SessionType) BreakSeconds() int {
	if st.BreakDurationSeconds == nil {
		return 0
	}
	return *st.BreakDurationSeconds
}

type FocusSession struct {
	ID                    uuid.UUID     `json:"id"`
	UserID                uuid.UUID     `json:"uid"`
	SessionTypeID         *uuid.UUID    `json:"session_type_id,omitempty"`
	ToDoItemID            *uuid.UUID    `json:"todo_id,omitempty"`
	CustomDurationSeconds *int          `json:"custom_duration,omitempty"`
	Status                SessionStatus `json:"status"`
	StartTime             time.Time     `json:"start_time"`
	EndTime               *time.Time    `json:"end_time,omitempty"`
	CurrentStateStartTime time.Time     `json:"state_start_time"`
	CurrentStateEndTime   *time.Time    `json:"state_end_time,omitempty"`
	CompletedCycles       int           `json:"completed_cycles"`
	TotalWorkDuration     int           `json:"total_work_duration"`
	TotalBreakDuration    int           `json:"total_break_duration"`
	TagIDs                []uuid.UUID   `json:"tags,omitempty"`
}

type ToDoStatus string

const (
	ToDoOpen      ToDoStatus = "open"
	ToDoCompleted ToDoStatus = "completed"
	ToDoOverdue   ToDoStatus = "overdue"
)

type ToDoItem struct {
	ID            uuid.UUID  `json:"id"`
	UserID        uuid.UUID  `json:"uid"`
	Title         string     `json:"title"`
	Status        ToDoStatus `json:"status"`
	DueDate       *time.Time `json:"due_date,omitempty"`
	CompletedDate *time.Time `json:"completed_date,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

type UserStats struct {
	UserID                              uuid.UUID  `json:"uid"`
	TotalFocusDurationSeconds           int        `json:"total_focus_duration"`
	TotalCompletedSessions              int        `json:"total_completed_sessions"`
	TotalStartedSessions                int        `json:"total_started_sessions"`
	LongestSingleSessionDurationSeconds int        `json:"longest_session_duration"`
	TotalToDosCompletedWithFocus        int        `json:"total_todos_completed_with_focus"`
	CurrentStreakDays                   int        `json:"current_streak"`
	LongestStreakDays                   int        `json:"longest_streak"`
	LastSessionCompletionDate           *time.Time `json:"last_completion_date,omitempty"`
	UpdatedAt                           time.Time  `json:"updated_at"`
}
