package api

import (
	"context"
	"net/http"

	"github.com/berkaychi/ClimbUpAPI-sub001/pkg/entity"
	"github.com/berkaychi/ClimbUpAPI-sub001/pkg/httputil"
	"github.com/google/uuid"
)

type BadgesResponse struct {
	Badges []entity.UserBadge `json:"badges"`
}

type TasksResponse struct {
	Tasks []*entity.UserAppTask `json:"tasks"`
}

func (s *Server) GetStats(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get stats error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	stats, err := s.statsService.GetStats(ctx, uid)
	if err != nil {
		writeServiceError(w, logger, "get stats", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, stats)
}

func (s *Server) ListBadges(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("list badges error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	badges, err := s.achievementsService.ListUserBadges(ctx, uid)
	if err != nil {
		writeServiceError(w, logger, "list badges", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, BadgesResponse{Badges: badges})
}

// CheckBadges responds with the badges awarded by this call only.
func (s *Server) CheckBadges(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("check badges error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	awarded, err := s.achievementsService.CheckAndAward(ctx, uid)
	if err != nil {
		writeServiceError(w, logger, "check badges", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, BadgesResponse{Badges: awarded})
	if len(awarded) > 0 {
		logger.Info("badges awarded on request")
	}
}

func (s *Server) ListTasks(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("list tasks error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	tasks, err := s.tasksService.ListUserTasks(ctx, uid)
	if err != nil {
		writeServiceError(w, logger, "list tasks", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, TasksResponse{Tasks: tasks})
}

func (s *Server) CompleteTodo(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("complete todo error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("complete todo error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid todo id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	item, err := s.todosService.CompleteTodo(ctx, id, uid)
	if err != nil {
		writeServiceError(w, logger, "complete todo", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, item)
	logger.Info("todo completed")
}
