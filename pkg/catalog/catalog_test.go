package catalog_test

import (
	"context"
	"errors"
	"testing"

	"github.com/berkaychi/ClimbUpAPI-sub001/pkg/catalog"
	"github.com/berkaychi/ClimbUpAPI-sub001/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadShippedCatalog(t *testing.T) {
	c, err := catalog.LoadFromFile("../../configs/catalog.toml")
	require.NoError(t, err)
	assert.NotEmpty(t, c.Badges)
	assert.NotEmpty(t, c.Tasks)
}

func TestLoadFromFileMissing(t *testing.T) {
	_, err := catalog.LoadFromFile("./nowhere.toml")
	assert.Error(t, err)
}

func TestLoadFromBytes(t *testing.T) {
	testCases := []struct {
		Desc        string
		Data        string
		ExpectedErr string
	}{
		{
			Desc: "valid",
			Data: `
[[badges]]
name = "Starter"
metric = "completed_sessions"
  [[badges.levels]]
  level = 1
  required_value = 1
  award_points = 5

[[tasks]]
title = "Daily Double"
target = 2
recurrence = "daily"
metric = "completed_sessions"
points = 10
`,
		},
		{
			Desc:        "broken toml",
			Data:        `[[badges]`,
			ExpectedErr: "decoding catalog",
		},
		{
			Desc: "unknown metric",
			Data: `
[[badges]]
name = "Starter"
metric = "pushups"
  [[badges.levels]]
  level = 1
  required_value = 1
`,
			ExpectedErr: `unknown metric "pushups"`,
		},
		{
			Desc: "duplicated level",
			Data: `
[[badges]]
name = "Starter"
metric = "focus_hours"
  [[badges.levels]]
  level = 1
  required_value = 1
  [[badges.levels]]
  level = 1
  required_value = 5
`,
			ExpectedErr: "level 1 duplicated",
		},
		{
			Desc: "badge without levels",
			Data: `
[[badges]]
name = "Empty"
metric = "focus_hours"
`,
			ExpectedErr: "no levels",
		},
		{
			Desc: "task with streak metric",
			Data: `
[[tasks]]
title = "Streaky"
target = 3
recurrence = "daily"
metric = "longest_streak"
`,
			ExpectedErr: "unsupported metric",
		},
		{
			Desc: "task with bad recurrence and target",
			Data: `
[[tasks]]
title = "Monthly"
target = 0
recurrence = "monthly"
metric = "focus_minutes"
`,
			ExpectedErr: "target must be positive",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			c, err := catalog.LoadFromBytes([]byte(tc.Data))
			if tc.ExpectedErr != "" {
				assert.ErrorContains(t, err, tc.ExpectedErr)
				return
			}
			require.NoError(t, err)
			require.Len(t, c.Badges, 1)
			assert.Equal(t, 5, c.Badges[0].Levels[0].AwardPoints)
			require.Len(t, c.Tasks, 1)
			assert.Nil(t, c.Tasks[0].Active)
		})
	}
}

type badgeStoreFake struct {
	defs   []*entity.BadgeDefinition
	levels []*entity.BadgeLevel
	err    error
}

func (f *badgeStoreFake) UpsertDefinition(ctx context.Context, def *entity.BadgeDefinition) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.defs = append(f.defs, def)
	return int64(len(f.defs)) * 10, nil
}

func (f *badgeStoreFake) UpsertLevel(ctx context.Context, level *entity.BadgeLevel) error {
	f.levels = append(f.levels, level)
	return nil
}

type taskStoreFake struct {
	tasks []*entity.AppTask
}

func (f *taskStoreFake) UpsertTemplate(ctx context.Context, task *entity.AppTask) (int64, error) {
	f.tasks = append(f.tasks, task)
	return int64(len(f.tasks)), nil
}

func TestSeed(t *testing.T) {
	inactive := false
	c := &catalog.Catalog{
		Badges: []catalog.Badge{{
			Name:   "Starter",
			Metric: "completed_sessions",
			Levels: []catalog.Level{
				{Level: 2, Name: "Ten", RequiredValue: 10, AwardPoints: 20},
				{Level: 1, Name: "One", RequiredValue: 1, AwardPoints: 5},
			},
		}},
		Tasks: []catalog.Task{
			{Title: "Daily Double", Target: 2, Recurrence: "daily", Metric: "completed_sessions", Points: 10},
			{Title: "Retired", Target: 1, Recurrence: "weekly", Metric: "todos_completed", Active: &inactive},
		},
	}
	require.NoError(t, c.Validate())

	badges := &badgeStoreFake{}
	tasks := &taskStoreFake{}
	require.NoError(t, c.Seed(context.Background(), badges, tasks))

	require.Len(t, badges.defs, 1)
	assert.Equal(t, entity.MetricCompletedSessions, badges.defs[0].MetricToTrack)
	require.Len(t, badges.levels, 2)
	for _, l := range badges.levels {
		assert.Equal(t, int64(10), l.BadgeDefinitionID)
	}
	require.Len(t, tasks.tasks, 2)
	assert.True(t, tasks.tasks[0].IsActive)
	assert.Equal(t, entity.RecurrenceDaily, tasks.tasks[0].Recurrence)
	assert.False(t, tasks.tasks[1].IsActive)

	failing := &badgeStoreFake{err: errors.New("db error")}
	err := c.Seed(context.Background(), failing, tasks)
	assert.ErrorContains(t, err, `seeding badge "Starter"`)
}
