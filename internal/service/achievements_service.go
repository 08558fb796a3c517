package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"

	"github.com/berkaychi/ClimbUpAPI-sub001/internal/repository"
	"github.com/berkaychi/ClimbUpAPI-sub001/pkg/clock"
	"github.com/berkaychi/ClimbUpAPI-sub001/pkg/entity"
	"github.com/berkaychi/ClimbUpAPI-sub001/pkg/logger"
	"github.com/google/uuid"
)

type StatsReader interface {
	GetOrCreate(ctx context.Context, uid uuid.UUID) (*entity.UserStats, error)
}

type AchievementsService struct {
	stats  StatsReader
	badges repository.BadgesRepositoryI
	points PointsLedger
	clock  clock.Clock
}

func NewAchievementsService(stats StatsReader, badges repository.BadgesRepositoryI, points PointsLedger, clk clock.Clock) *AchievementsService {
	if stats == nil || badges == nil || points == nil {
		log.Fatal("on achievements service provided nil dependencies")
	}
	if clk == nil {
		clk = clock.Real{}
	}
	return &AchievementsService{
		stats:  stats,
		badges: badges,
		points: points,
		clock:  clk,
	}
}

// CheckAndAward records, per badge definition, the highest level the user
// qualifies for when it is above the level already owned. Lower levels are
// not backfilled. A definition that fails does not stop the others; their
// errors are joined.
func (as *AchievementsService) CheckAndAward(ctx context.Context, uid uuid.UUID) ([]entity.UserBadge, error) {
	log := logger.FromContext(ctx).With(slog.String("uid", uid.String()))
	st, err := as.stats.GetOrCreate(ctx, uid)
	if err != nil {
		return nil, fmt.Errorf("reading stats: %w", err)
	}
	defs, err := as.badges.ListDefinitions(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing badge definitions: %w", err)
	}
	owned, err := as.badges.ListUserBadges(ctx, uid)
	if err != nil {
		return nil, fmt.Errorf("listing user badges: %w", err)
	}
	highest := make(map[int64]int, len(owned))
	for _, b := range owned {
		if cur, ok := highest[b.BadgeDefinitionID]; !ok || b.RequiredValue > cur {
			highest[b.BadgeDefinitionID] = b.RequiredValue
		}
	}

	now := as.clock.Now()
	awarded := make([]entity.UserBadge, 0)
	var errs []error
	for _, def := range defs {
		value, ok := MetricValue(def.MetricToTrack, st)
		if !ok {
			log.Warn("skipping badge with unknown metric", slog.String("badge", def.Name), slog.String("metric", string(def.MetricToTrack)))
			continue
		}
		level, ok := HighestEligibleLevel(def.Levels, value)
		if !ok {
			continue
		}
		if have, ok := highest[def.ID]; ok && level.RequiredValue <= have {
			continue
		}
		created, err := as.badges.Award(ctx, uid, level.ID, now)
		if err != nil {
			errs = append(errs, fmt.Errorf("awarding %s level %d: %w", def.Name, level.Level, err))
			continue
		}
		if !created {
			continue
		}
		awarded = append(awarded, entity.UserBadge{
			UserID:            uid,
			BadgeLevelID:      level.ID,
			BadgeDefinitionID: def.ID,
			Level:             level.Level,
			RequiredValue:     level.RequiredValue,
			AchievedAt:        now,
		})
		log.Info("badge awarded", slog.String("badge", def.Name), slog.Int("level", level.Level))
		if level.AwardPoints > 0 {
			err = as.points.AwardPoints(ctx, uid, level.AwardPoints, fmt.Sprintf("badge:%d", level.ID))
			if err != nil {
				log.Warn("awarding badge points failed", slog.Int64("badge_level_id", level.ID), slog.String("error", err.Error()))
			}
		}
	}
	return awarded, errors.Join(errs...)
}

func (as *AchievementsService) ListUserBadges(ctx context.Context, uid uuid.UUID) ([]entity.UserBadge, error) {
	badges, err := as.badges.ListUserBadges(ctx, uid)
	if err != nil {
		return nil, fmt.Errorf("listing user badges: %w", err)
	}
	return badges, nil
}
