// @title ClimbUp API
// @description Focus sessions and gamification API for "ClimbUp"
// @BasePath /api/v1
// @schemes http
package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/berkaychi/ClimbUpAPI-sub001/internal/api"
	"github.com/berkaychi/ClimbUpAPI-sub001/internal/events"
	"github.com/berkaychi/ClimbUpAPI-sub001/internal/repository"
	"github.com/berkaychi/ClimbUpAPI-sub001/internal/service"
	"github.com/berkaychi/ClimbUpAPI-sub001/internal/worker"
	"github.com/berkaychi/ClimbUpAPI-sub001/pkg/catalog"
	"github.com/berkaychi/ClimbUpAPI-sub001/pkg/cleanup"
	"github.com/berkaychi/ClimbUpAPI-sub001/pkg/clock"
	"github.com/berkaychi/ClimbUpAPI-sub001/pkg/config"
	jwtservice "github.com/berkaychi/ClimbUpAPI-sub001/pkg/jwt_service"
	"github.com/berkaychi/ClimbUpAPI-sub001/pkg/logger"
	"golang.org/x/sync/errgroup"
)

func init() {
	service.InitValidator()
}

func main() {
	cfg := config.New()
	slog.SetDefault(logger.New(cfg.GetStringOr("LOG_LEVEL", "info")))
	defer cleanup.CleanUp()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbCfg := repository.PGCfg{
		Address:  cfg.GetString("POSTGRES_DB_ADDRESS"),
		Username: cfg.GetString("POSTGRES_USER"),
		Password: cfg.GetString("POSTGRES_PASSWORD"),
		DB:       cfg.GetString("POSTGRES_DB"),
		SSLMode:  cfg.GetString("POSTGRES_SSLMODE"),
	}
	if err := repository.Migrate(&dbCfg, cfg.GetStringOr("MIGRATIONS_DIR", "./migrations")); err != nil {
		log.Fatal(err)
	}

	pool := repository.NewPool(&dbCfg)
	tx := repository.NewTxRunner(pool)
	usersRepo := repository.NewUsersRepo(pool)
	sessionsRepo := repository.NewFocusSessionsRepo(pool)
	todosRepo := repository.NewToDosRepo(pool)
	badgesRepo := repository.NewBadgesRepo(pool)
	tasksRepo := repository.NewAppTasksRepo(pool)
	pointsRepo := repository.NewPointsRepo(pool)

	c, err := catalog.LoadFromFile(cfg.GetStringOr("CATALOG_PATH", "./configs/catalog.toml"))
	if err != nil {
		log.Fatal(err)
	}
	err = tx.WithTx(ctx, func(ctx context.Context) error {
		return c.Seed(ctx, badgesRepo, tasksRepo)
	})
	if err != nil {
		log.Fatal(err)
	}

	clk := clock.Real{}
	dispatcher := events.NewDispatcher(cfg.GetDuration("EVENT_HANDLER_TIMEOUT", 10*time.Second))
	statsService := service.NewStatsService(repository.NewStatsRepo(pool), clk)
	achievementsService := service.NewAchievementsService(statsService, badgesRepo, pointsRepo, clk)
	tasksService := service.NewTasksService(service.TasksServiceDeps{
		Users:     usersRepo,
		Tasks:     tasksRepo,
		Points:    pointsRepo,
		Tx:        tx,
		Clock:     clk,
		BatchSize: cfg.GetInt("TASK_ASSIGN_BATCH", 100),
	})
	sessionsService := service.NewSessionsService(service.SessionsServiceDeps{
		Sessions:     sessionsRepo,
		SessionTypes: repository.NewSessionTypesRepo(pool),
		ToDos:        todosRepo,
		Stats:        statsService,
		Tx:           tx,
		Publisher:    dispatcher,
		Clock:        clk,
	})
	todosService := service.NewTodosService(service.TodosServiceDeps{
		ToDos:     todosRepo,
		Sessions:  sessionsRepo,
		Stats:     statsService,
		Tx:        tx,
		Publisher: dispatcher,
		Clock:     clk,
	})
	service.RegisterSubscribers(dispatcher, achievementsService, tasksService)

	runner := worker.NewRunner(
		worker.AssignTasksJob(tasksService, cfg.GetDuration("TASK_ASSIGN_INTERVAL", time.Hour)),
		worker.ExpireTasksJob(tasksService, cfg.GetDuration("TASK_EXPIRE_INTERVAL", time.Hour)),
		worker.CleanupSessionsJob(sessionsService, clk,
			cfg.GetDuration("SESSION_CLEANUP_INTERVAL", 15*time.Minute),
			cfg.GetDuration("SESSION_ABANDON_AFTER", 24*time.Hour),
			cfg.GetInt("SESSION_CLEANUP_BATCH", 100)),
		worker.MarkOverdueTodosJob(todosService, cfg.GetDuration("TODO_OVERDUE_INTERVAL", time.Hour)),
	)

	serv := api.New(&api.ServicesList{
		UserService:         service.NewUserService(usersRepo),
		SessionsService:     sessionsService,
		StatsService:        statsService,
		AchievementsService: achievementsService,
		TasksService:        tasksService,
		TodosService:        todosService,
		JwtService:          jwtservice.New(cfg.GetString("JWT_SECRET"), cfg.GetDuration("JWT_TTL", time.Hour)),
	})

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return runner.Run(ctx)
	})
	g.Go(func() error {
		return serv.Run(ctx, cfg.GetStringOr("API_ADDRESS", ":8080"))
	})
	err = g.Wait()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("server error", slog.String("error", err.Error()))
	}
	slog.Info("shutting down")
}
