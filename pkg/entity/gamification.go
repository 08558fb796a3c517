package entity

import (
	"time"

	"github.com/google/uuid"
)

// MetricKey names a value derived from user activity. Badge definitions and
// app tasks both reference one.
type MetricKey string

const (
	MetricCompletedSessions MetricKey = "completed_sessions"
	MetricFocusHours        MetricKey = "focus_hours"
	MetricFocusMinutes      MetricKey = "focus_minutes"
	MetricToDosCompleted    MetricKey = "todos_completed"
	MetricLongestStreak     MetricKey = "longest_streak"
)

type BadgeDefinition struct {
	ID            int64        `json:"id"`
	Name          string       `json:"name"`
	Description   string       `json:"desc"`
	MetricToTrack MetricKey    `json:"metric"`
	Levels        []BadgeLevel `json:"levels"`
}

type BadgeLevel struct {
	ID                int64  `json:"id"`
	BadgeDefinitionID int64  `json:"badge_id"`
	Level             int    `json:"level"`
	Name              string `json:"name"`
	Description       string `json:"desc"`
	RequiredValue     int    `json:"required_value"`
	AwardPoints       int    `json:"award_points"`
}

type UserBadge struct {
	UserID            uuid.UUID `json:"uid"`
	BadgeLevelID      int64     `json:"badge_level_id"`
	BadgeDefinitionID int64     `json:"badge_id"`
	Level             int       `json:"level"`
	RequiredValue     int       `json:"required_value"`
	AchievedAt        time.Time `json:"achieved_at"`
}

type Recurrence string

const (
	RecurrenceDaily  Recurrence = "daily"
	RecurrenceWeekly Recurrence = "weekly"
)

type AppTask struct {
	ID             int64      `json:"id"`
	Title          string     `json:"title"`
	Description    string     `json:"desc"`
	TargetProgress int        `json:"target"`
	Recurrence     Recurrence `json:"recurrence"`
	ActionType     MetricKey  `json:"metric"`
	PointsReward   int        `json:"points"`
	IsActive       bool       `json:"is_active"`
}

type UserAppTaskStatus string

const (
	UserAppTaskInProgress UserAppTaskStatus = "in_progress"
	UserAppTaskCompleted  UserAppTaskStatus = "completed"
	UserAppTaskExpired    UserAppTaskStatus = "expired"
)

type UserAppTask struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"uid"`
	AppTaskID int64     `json:"task_id"`
	// AssignedDate is the start of the period window, DueDate its exclusive end.
	AssignedDate    time.Time         `json:"assigned_date"`
	DueDate         time.Time         `json:"due_date"`
	CurrentProgress int               `json:"progress"`
	Status          UserAppTaskStatus `json:"status"`
	CompletedDate   *time.Time        `json:"completed_date,omitempty"`

	// Filled from the template on reads.
	Title          string `json:"title,omitempty"`
	TargetProgress int    `json:"target,omitempty"`
	PointsReward   int    `json:"points,omitempty"`
}
