package repository

import (
	"context"
	"fmt"
	"time"

	errorvalues "github.com/berkaychi/ClimbUpAPI-sub001/internal/error_values"
	"github.com/berkaychi/ClimbUpAPI-sub001/pkg/entity"
	"github.com/google/uuid"
)

type BadgesRepository struct {
	conn PgConnection
}

func NewBadgesRepo(conn PgConnection) *BadgesRepository {
	mustPing(conn, "badgesRepo")
	return &BadgesRepository{
		conn: conn,
	}
}

// ListDefinitions returns definitions ordered by id, each with its levels
// ordered by level number. Definitions without levels are omitted.
func (br *BadgesRepository) ListDefinitions(ctx context.Context) ([]entity.BadgeDefinition, error) {
	rows, err := querierFrom(ctx, br.conn).Query(ctx, `SELECT d.id, d.name, d.description, d.metric_to_track, `+
		`l.id, l.level, l.name, l.description, l.required_value, l.award_points `+
		`FROM badge_definitions d JOIN badge_levels l ON l.badge_definition_id = d.id ORDER BY d.id, l.level;`)
	if err != nil {
		return nil, fmt.Errorf("listing badge definitions error: %w", err)
	}
	defer rows.Close()
	defs := make([]entity.BadgeDefinition, 0)
	for rows.Next() {
		var (
			def   entity.BadgeDefinition
			level entity.BadgeLevel
		)
		err = rows.Scan(&def.ID, &def.Name, &def.Description, &def.MetricToTrack,
			&level.ID, &level.Level, &level.Name, &level.Description, &level.RequiredValue, &level.AwardPoints)
		if err != nil {
			return nil, fmt.Errorf("badge definition row parsing error: %w", err)
		}
		level.BadgeDefinitionID = def.ID
		if n := len(defs); n == 0 || defs[n-1].ID != def.ID {
			defs = append(defs, def)
		}
		last := &defs[len(defs)-1]
		last.Levels = append(last.Levels, level)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected badge definition rows error: %w", err)
	}
	return defs, nil
}

func (br *BadgesRepository) ListUserBadges(ctx context.Context, uid uuid.UUID) ([]entity.UserBadge, error) {
	rows, err := querierFrom(ctx, br.conn).Query(ctx, `SELECT ub.badge_level_id, l.badge_definition_id, l.level, l.required_value, ub.achieved_at `+
		`FROM user_badges ub JOIN badge_levels l ON l.id = ub.badge_level_id WHERE ub.user_id = $1 ORDER BY ub.achieved_at;`, uid)
	if err != nil {
		return nil, fmt.Errorf("listing user badges error: %w", err)
	}
	defer rows.Close()
	badges := make([]entity.UserBadge, 0)
	for rows.Next() {
		b := entity.UserBadge{UserID: uid}
		if err = rows.Scan(&b.BadgeLevelID, &b.BadgeDefinitionID, &b.Level, &b.RequiredValue, &b.AchievedAt); err != nil {
			return nil, fmt.Errorf("user badge row parsing error: %w", err)
		}
		badges = append(badges, b)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected user badge rows error: %w", err)
	}
	return badges, nil
}

// Award inserts the (user, level) pair. The primary key makes concurrent
// awards of the same level collapse into one row; the loser gets false.
func (br *BadgesRepository) Award(ctx context.Context, uid uuid.UUID, levelID int64, at time.Time) (bool, error) {
	ct, err := querierFrom(ctx, br.conn).Exec(ctx, `INSERT INTO user_badges (user_id, badge_level_id, achieved_at) VALUES ($1, $2, $3) `+
		`ON CONFLICT (user_id, badge_level_id) DO NOTHING;`, uid, levelID, at)
	if err != nil {
		switch {
		case isPgCode(err, uniqueViolation):
			return false, nil
		case isPgCode(err, foreignKeyViolation):
			return false, errorvalues.ErrReferenceNotFound
		}
		return false, fmt.Errorf("awarding badge error: %w", err)
	}
	return ct.RowsAffected() == 1, nil
}

func (br *BadgesRepository) UpsertDefinition(ctx context.Context, def *entity.BadgeDefinition) (int64, error) {
	var id int64
	err := querierFrom(ctx, br.conn).QueryRow(ctx, `INSERT INTO badge_definitions (name, description, metric_to_track) VALUES ($1, $2, $3) `+
		`ON CONFLICT (name) DO UPDATE SET description = EXCLUDED.description, metric_to_track = EXCLUDED.metric_to_track RETURNING id;`,
		def.Name, def.Description, def.MetricToTrack).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("upserting badge definition error: %w", err)
	}
	return id, nil
}

func (br *BadgesRepository) UpsertLevel(ctx context.Context, level *entity.BadgeLevel) error {
	_, err := querierFrom(ctx, br.conn).Exec(ctx, `INSERT INTO badge_levels (badge_definition_id, level, name, description, required_value, award_points) `+
		`VALUES ($1, $2, $3, $4, $5, $6) ON CONFLICT (badge_definition_id, level) DO UPDATE SET name = EXCLUDED.name, `+
		`description = EXCLUDED.description, required_value = EXCLUDED.required_value, award_points = EXCLUDED.award_points;`,
		level.BadgeDefinitionID, level.Level, level.Name, level.Description, level.RequiredValue, level.AwardPoints)
	if err != nil {
		if isPgCode(err, foreignKeyViolation) {
			return errorvalues.ErrReferenceNotFound
		}
		return fmt.Errorf("upserting badge level error: %w", err)
	}
	return nil
}
