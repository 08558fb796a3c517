package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/berkaychi/ClimbUpAPI-sub001/internal/service"
	"github.com/berkaychi/ClimbUpAPI-sub001/pkg/httputil"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const (
	requestTimeout  = 10 * time.Second
	shutdownTimeout = 15 * time.Second
)

type Server struct {
	mx                  *chi.Mux
	userService         service.UserServiceI
	sessionsService     service.SessionsServiceI
	statsService        service.StatsServiceI
	achievementsService service.AchievementsServiceI
	tasksService        service.TasksServiceI
	todosService        service.TodosServiceI
	jwtService          JWTServiceI
}

type ServicesList struct {
	UserService         service.UserServiceI
	SessionsService     service.SessionsServiceI
	StatsService        service.StatsServiceI
	AchievementsService service.AchievementsServiceI
	TasksService        service.TasksServiceI
	TodosService        service.TodosServiceI
	JwtService          JWTServiceI
}

func New(servicesOptions *ServicesList) *Server {
	s := &Server{
		mx:                  chi.NewMux(),
		userService:         servicesOptions.UserService,
		sessionsService:     servicesOptions.SessionsService,
		statsService:        servicesOptions.StatsService,
		achievementsService: servicesOptions.AchievementsService,
		tasksService:        servicesOptions.TasksService,
		todosService:        servicesOptions.TodosService,
		jwtService:          servicesOptions.JwtService,
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.mx.Use(middleware.Recoverer)
	s.mx.Use(s.RequestIDMiddleware)
	s.mx.Use(s.SettingUpLoggerMiddleware)
	s.mx.Use(s.AccessLogMiddleware)
	s.mx.NotFound(func(w http.ResponseWriter, r *http.Request) {
		httputil.WriteErrorResponse(w, http.StatusNotFound, "route not found", nil)
	})
	s.mx.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"status": "ok"})
	})
	s.mx.Route("/api/v1", func(r chi.Router) {
		r.Use(s.AuthMiddleware)
		r.Use(s.LoggerExtensionMiddleware)

		r.Route("/sessions", func(r chi.Router) {
			r.Post("/", s.StartSession)
			r.Get("/", s.ListSessions)
			r.Get("/{id}", s.GetSession)
			r.Post("/{id}/transition", s.TransitionSession)
			r.Post("/{id}/cancel", s.CancelSession)
		})
		r.Get("/stats", s.GetStats)
		r.Get("/badges", s.ListBadges)
		r.Post("/badges/check", s.CheckBadges)
		r.Get("/tasks", s.ListTasks)
		r.Post("/todos/{id}/complete", s.CompleteTodo)
	})
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mx.ServeHTTP(w, r)
}

// Run serves on addr until ctx is cancelled, then drains in-flight requests.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.mx,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      requestTimeout + 5*time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		slog.Info("http server started", slog.String("address", addr))
		errCh <- srv.ListenAndServe()
	}()
	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	slog.Info("http server stopped")
	return nil
}
