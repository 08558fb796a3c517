package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/berkaychi/ClimbUpAPI-sub001/internal/service"
	"github.com/berkaychi/ClimbUpAPI-sub001/pkg/entity"
	"github.com/berkaychi/ClimbUpAPI-sub001/pkg/httputil"
	"github.com/google/uuid"
)

type StartSessionRequest struct {
	SessionTypeID         string   `json:"session_type_id,omitempty"`
	CustomDurationSeconds *int     `json:"custom_duration_seconds,omitempty"`
	ToDoItemID            string   `json:"todo_id,omitempty"`
	TagIDs                []string `json:"tags,omitempty"`
}

type GetSessionsResponse struct {
	UserID   string                 `json:"uid"`
	Page     int                    `json:"page"`
	Limit    int                    `json:"limit"`
	Sessions []*entity.FocusSession `json:"sessions"`
}

func (req *StartSessionRequest) toService() (*service.StartSessionRequest, error) {
	res := &service.StartSessionRequest{
		CustomDurationSeconds: req.CustomDurationSeconds,
		TagIDs:                make([]uuid.UUID, 0, len(req.TagIDs)),
	}
	var err error
	if res.SessionTypeID, err = optionalUUID(req.SessionTypeID); err != nil {
		return nil, errors.New("invalid session_type_id")
	}
	if res.ToDoItemID, err = optionalUUID(req.ToDoItemID); err != nil {
		return nil, errors.New("invalid todo_id")
	}
	for _, raw := range req.TagIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, errors.New("invalid tag id " + strconv.Quote(raw))
		}
		res.TagIDs = append(res.TagIDs, id)
	}
	return res, nil
}

func optionalUUID(raw string) (*uuid.UUID, error) {
	if raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func (s *Server) StartSession(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("start session error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req StartSessionRequest
	if err = httputil.DecodeJSON(r, &req); err != nil {
		logger.Error("start session error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	serviceReq, err := req.toService()
	if err != nil {
		logger.Error("start session error: " + err.Error())
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", err)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	session, err := s.sessionsService.StartSession(ctx, uid, serviceReq)
	if err != nil {
		writeServiceError(w, logger, "start session", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, session)
	logger.Info("session started")
}

func (s *Server) ListSessions(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("list sessions error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit < 1 || limit > 100 {
		limit = 20
	}
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		page = 1
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	sessions, err := s.sessionsService.ListSessions(ctx, uid, service.PaginationOpts{
		Limit:  limit,
		Offset: (page - 1) * limit,
	})
	if err != nil {
		writeServiceError(w, logger, "list sessions", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, GetSessionsResponse{
		UserID:   uid.String(),
		Page:     page,
		Limit:    limit,
		Sessions: sessions,
	})
	logger.Info("sessions provided")
}

// sessionAction covers the handlers that only take a session id from the path.
func (s *Server) sessionAction(op string, call func(ctx context.Context, sessionID, uid uuid.UUID) (*entity.FocusSession, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := GetLoggerFromCtx(r.Context())
		uid, err := GetUIDFromContext(r)
		if err != nil {
			logger.Error(op + " error: unauthorized")
			httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
			return
		}
		id, err := uuid.Parse(r.PathValue("id"))
		if err != nil {
			logger.Error(op + " error: invalid id in path value")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid session id in path value", nil)
			return
		}
		ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
		defer cancel()
		session, err := call(ctx, id, uid)
		if err != nil {
			writeServiceError(w, logger, op, err)
			return
		}
		httputil.WriteJSONResponse(w, http.StatusOK, session)
	}
}

func (s *Server) GetSession(w http.ResponseWriter, r *http.Request) {
	s.sessionAction("get session", s.sessionsService.GetSession)(w, r)
}

func (s *Server) TransitionSession(w http.ResponseWriter, r *http.Request) {
	s.sessionAction("transition session", s.sessionsService.TransitionState)(w, r)
}

func (s *Server) CancelSession(w http.ResponseWriter, r *http.Request) {
	s.sessionAction("cancel session", s.sessionsService.CancelSession)(w, r)
}
