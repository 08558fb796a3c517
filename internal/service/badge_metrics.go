package service

import (
	"slices"

	"github.com/berkaychi/ClimbUpAPI-sub001/pkg/entity"
)

type badgeMetric func(st *entity.UserStats) int

var badgeMetrics = map[entity.MetricKey]badgeMetric{
	entity.MetricCompletedSessions: func(st *entity.UserStats) int {
		return st.TotalCompletedSessions
	},
	entity.MetricFocusHours: func(st *entity.UserStats) int {
		return st.TotalFocusDurationSeconds / 3600
	},
	entity.MetricToDosCompleted: func(st *entity.UserStats) int {
		return st.TotalToDosCompletedWithFocus
	},
	// Longest rather than current streak, so a broken streak keeps its badge level.
	entity.MetricLongestStreak: func(st *entity.UserStats) int {
		return st.LongestStreakDays
	},
}

// MetricValue reports the current value of a badge metric. False means the key is unknown.
func MetricValue(metric entity.MetricKey, st *entity.UserStats) (int, bool) {
	f, ok := badgeMetrics[metric]
	if !ok {
		return 0, false
	}
	return f(st), true
}

// HighestEligibleLevel sorts levels by required value and returns the last
// one met before the first unmet level.
func HighestEligibleLevel(levels []entity.BadgeLevel, value int) (entity.BadgeLevel, bool) {
	sorted := slices.Clone(levels)
	slices.SortStableFunc(sorted, func(a, b entity.BadgeLevel) int {
		if a.RequiredValue != b.RequiredValue {
			return a.RequiredValue - b.RequiredValue
		}
		return a.Level - b.Level
	})
	var (
		best  entity.BadgeLevel
		found bool
	)
	for _, l := range sorted {
		if value < l.RequiredValue {
			break
		}
		best, found = l, true
	}
	return best, found
}
