package catalog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/berkaychi/ClimbUpAPI-sub001/pkg/entity"
	"github.com/berkaychi/ClimbUpAPI-sub001/pkg/logger"
	"github.com/pelletier/go-toml/v2"
)

// Catalog is the static gamification content: badge ladders and the app task
// templates handed out to every user.
type Catalog struct {
	Badges []Badge `toml:"badges"`
	Tasks  []Task  `toml:"tasks"`
}

type Badge struct {
	Name        string  `toml:"name"`
	Description string  `toml:"description"`
	Metric      string  `toml:"metric"`
	Levels      []Level `toml:"levels"`
}

type Level struct {
	Level         int    `toml:"level"`
	Name          string `toml:"name"`
	Description   string `toml:"description"`
	RequiredValue int    `toml:"required_value"`
	AwardPoints   int    `toml:"award_points"`
}

type Task struct {
	Title       string `toml:"title"`
	Description string `toml:"description"`
	Target      int    `toml:"target"`
	Recurrence  string `toml:"recurrence"`
	Metric      string `toml:"metric"`
	Points      int    `toml:"points"`
	// Nil means active.
	Active *bool `toml:"active"`
}

type BadgeStore interface {
	UpsertDefinition(ctx context.Context, def *entity.BadgeDefinition) (int64, error)
	UpsertLevel(ctx context.Context, level *entity.BadgeLevel) error
}

type TaskStore interface {
	UpsertTemplate(ctx context.Context, task *entity.AppTask) (int64, error)
}

var knownMetrics = map[entity.MetricKey]struct{}{
	entity.MetricCompletedSessions: {},
	entity.MetricFocusHours:        {},
	entity.MetricFocusMinutes:      {},
	entity.MetricToDosCompleted:    {},
	entity.MetricLongestStreak:     {},
}

// Task progress is only fed by session and todo events.
var taskMetrics = map[entity.MetricKey]struct{}{
	entity.MetricCompletedSessions: {},
	entity.MetricFocusMinutes:      {},
	entity.MetricToDosCompleted:    {},
}

func LoadFromFile(path string) (*Catalog, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening catalog file: %w", err)
	}
	defer file.Close()

	var c Catalog
	if err := toml.NewDecoder(file).DisallowUnknownFields().Decode(&c); err != nil {
		return nil, fmt.Errorf("decoding catalog: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func LoadFromBytes(data []byte) (*Catalog, error) {
	var c Catalog
	if err := toml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("decoding catalog: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate reports every problem found, not just the first one.
func (c *Catalog) Validate() error {
	var errs []error
	badgeNames := make(map[string]struct{}, len(c.Badges))
	for i, b := range c.Badges {
		if b.Name == "" {
			errs = append(errs, fmt.Errorf("badge #%d: empty name", i))
		} else if _, dup := badgeNames[b.Name]; dup {
			errs = append(errs, fmt.Errorf("badge %q: duplicated", b.Name))
		}
		badgeNames[b.Name] = struct{}{}
		if _, ok := knownMetrics[entity.MetricKey(b.Metric)]; !ok {
			errs = append(errs, fmt.Errorf("badge %q: unknown metric %q", b.Name, b.Metric))
		}
		if len(b.Levels) == 0 {
			errs = append(errs, fmt.Errorf("badge %q: no levels", b.Name))
		}
		levels := make(map[int]struct{}, len(b.Levels))
		for _, l := range b.Levels {
			if l.Level <= 0 {
				errs = append(errs, fmt.Errorf("badge %q: level must be positive, got %d", b.Name, l.Level))
			}
			if _, dup := levels[l.Level]; dup {
				errs = append(errs, fmt.Errorf("badge %q: level %d duplicated", b.Name, l.Level))
			}
			levels[l.Level] = struct{}{}
			if l.RequiredValue <= 0 {
				errs = append(errs, fmt.Errorf("badge %q level %d: required value must be positive", b.Name, l.Level))
			}
			if l.AwardPoints < 0 {
				errs = append(errs, fmt.Errorf("badge %q level %d: negative award points", b.Name, l.Level))
			}
		}
	}

	titles := make(map[string]struct{}, len(c.Tasks))
	for i, t := range c.Tasks {
		if t.Title == "" {
			errs = append(errs, fmt.Errorf("task #%d: empty title", i))
		} else if _, dup := titles[t.Title]; dup {
			errs = append(errs, fmt.Errorf("task %q: duplicated", t.Title))
		}
		titles[t.Title] = struct{}{}
		switch entity.Recurrence(t.Recurrence) {
		case entity.RecurrenceDaily, entity.RecurrenceWeekly:
		default:
			errs = append(errs, fmt.Errorf("task %q: unknown recurrence %q", t.Title, t.Recurrence))
		}
		if _, ok := taskMetrics[entity.MetricKey(t.Metric)]; !ok {
			errs = append(errs, fmt.Errorf("task %q: unsupported metric %q", t.Title, t.Metric))
		}
		if t.Target <= 0 {
			errs = append(errs, fmt.Errorf("task %q: target must be positive", t.Title))
		}
		if t.Points < 0 {
			errs = append(errs, fmt.Errorf("task %q: negative points", t.Title))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid catalog: %w", errors.Join(errs...))
	}
	return nil
}

// Seed upserts the catalog by natural keys, so running it on every start is
// safe. Entries missing from the catalog are left in the database.
func (c *Catalog) Seed(ctx context.Context, badges BadgeStore, tasks TaskStore) error {
	for _, b := range c.Badges {
		id, err := badges.UpsertDefinition(ctx, &entity.BadgeDefinition{
			Name:          b.Name,
			Description:   b.Description,
			MetricToTrack: entity.MetricKey(b.Metric),
		})
		if err != nil {
			return fmt.Errorf("seeding badge %q: %w", b.Name, err)
		}
		for _, l := range b.Levels {
			err = badges.UpsertLevel(ctx, &entity.BadgeLevel{
				BadgeDefinitionID: id,
				Level:             l.Level,
				Name:              l.Name,
				Description:       l.Description,
				RequiredValue:     l.RequiredValue,
				AwardPoints:       l.AwardPoints,
			})
			if err != nil {
				return fmt.Errorf("seeding badge %q level %d: %w", b.Name, l.Level, err)
			}
		}
	}
	for _, t := range c.Tasks {
		active := t.Active == nil || *t.Active
		_, err := tasks.UpsertTemplate(ctx, &entity.AppTask{
			Title:          t.Title,
			Description:    t.Description,
			TargetProgress: t.Target,
			Recurrence:     entity.Recurrence(t.Recurrence),
			ActionType:     entity.MetricKey(t.Metric),
			PointsReward:   t.Points,
			IsActive:       active,
		})
		if err != nil {
			return fmt.Errorf("seeding task %q: %w", t.Title, err)
		}
	}
	logger.FromContext(ctx).Info("catalog seeded",
		slog.Int("badges", len(c.Badges)), slog.Int("tasks", len(c.Tasks)))
	return nil
}
