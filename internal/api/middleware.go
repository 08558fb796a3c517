package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	errorvalues "github.com/berkaychi/ClimbUpAPI-sub001/internal/error_values"
	"github.com/berkaychi/ClimbUpAPI-sub001/pkg/httputil"
	"github.com/berkaychi/ClimbUpAPI-sub001/pkg/logger"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

type contextKey string

const (
	requestIDContextKey contextKey = "Request-ID"
	uidContextKey       contextKey = "User-ID"
	requestIDHeader                = "X-Request-ID"
)

func (s *Server) RequestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := r.Header.Get(requestIDHeader)
		if _, err := uuid.Parse(reqID); err != nil {
			reqID = uuid.New().String()
		}
		w.Header().Set(requestIDHeader, reqID)
		ctx := context.WithValue(r.Context(), requestIDContextKey, reqID)
		r = r.WithContext(ctx)
		next.ServeHTTP(w, r)
	})
}

func (s *Server) SettingUpLoggerMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := slog.Default()
		reqID, ok := r.Context().Value(requestIDContextKey).(string)
		if ok && reqID != "" {
			log = log.With(slog.String("request_id", reqID))
		}
		log = log.With(slog.String("from", r.RemoteAddr), slog.String("method", r.Method), slog.String("path", r.URL.Path))
		r = r.WithContext(logger.WithContext(r.Context(), log))
		next.ServeHTTP(w, r)
	})
}

func (s *Server) LoggerExtensionMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := GetLoggerFromCtx(r.Context())
		uid, ok := r.Context().Value(uidContextKey).(uuid.UUID)
		if ok {
			log = log.With(slog.String("uid", uid.String()))
		}
		r = r.WithContext(logger.WithContext(r.Context(), log))
		next.ServeHTTP(w, r)
	})
}

// AccessLogMiddleware logs one line per request once the handler returns.
func (s *Server) AccessLogMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		level := slog.LevelInfo
		if status >= http.StatusInternalServerError {
			level = slog.LevelError
		}
		GetLoggerFromCtx(r.Context()).Log(r.Context(), level, "request served",
			slog.Int("status", status), slog.Int("bytes", ww.BytesWritten()), slog.Duration("took", time.Since(start)))
	})
}

type authError struct {
	code    int
	message string
	cause   error
}

func (s *Server) AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		uid, aerr := s.authenticate(r)
		if aerr != nil {
			attrs := []any{slog.Int("code", aerr.code)}
			if aerr.cause != nil {
				attrs = append(attrs, slog.String("error", aerr.cause.Error()))
			}
			GetLoggerFromCtx(r.Context()).Error("auth failed: "+aerr.message, attrs...)
			httputil.WriteErrorResponse(w, aerr.code, "authorization failed: "+aerr.message, nil)
			return
		}
		r = r.WithContext(WithUID(r.Context(), uid))
		next.ServeHTTP(w, r)
	})
}

// authenticate resolves the bearer token to a user that still exists.
func (s *Server) authenticate(r *http.Request) (uuid.UUID, *authError) {
	tokenString, err := GetTokenFromHeader(r)
	if err != nil {
		return uuid.Nil, &authError{code: http.StatusUnauthorized, message: "invalid token"}
	}
	claims, err := s.jwtService.ParseToken(tokenString)
	if err != nil {
		if errors.Is(err, errorvalues.ErrInvalidToken) {
			return uuid.Nil, &authError{code: http.StatusUnauthorized, message: "invalid token", cause: err}
		}
		return uuid.Nil, &authError{code: http.StatusInternalServerError, message: "error parsing token", cause: err}
	}
	now := time.Now()
	if (claims.ExpiresAt != nil && claims.ExpiresAt.Time.Before(now)) ||
		(claims.NotBefore != nil && claims.NotBefore.Time.After(now)) {
		return uuid.Nil, &authError{code: http.StatusUnauthorized, message: "token expired or not ready"}
	}
	uid, err := uuid.Parse(claims.UserID)
	if err != nil {
		return uuid.Nil, &authError{code: http.StatusUnauthorized, message: "invalid token payload", cause: err}
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()
	if _, err = s.userService.GetByID(ctx, uid); err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return uuid.Nil, &authError{code: http.StatusNotFound, message: "user not found"}
		}
		return uuid.Nil, &authError{code: http.StatusInternalServerError, message: "user lookup error", cause: err}
	}
	return uid, nil
}

func GetLoggerFromCtx(ctx context.Context) *slog.Logger {
	return logger.FromContext(ctx)
}

func GetTokenFromHeader(r *http.Request) (string, error) {
	token := r.Header.Get("Authorization")
	if token == "" {
		return "", errorvalues.ErrInvalidToken
	}
	token, ok := strings.CutPrefix(token, "Bearer ")
	if !ok || token == "" || strings.ContainsRune(token, ' ') {
		return "", errorvalues.ErrInvalidToken
	}
	return token, nil
}

// WithUID stores the authenticated user id the way AuthMiddleware does.
func WithUID(ctx context.Context, uid uuid.UUID) context.Context {
	return context.WithValue(ctx, uidContextKey, uid)
}

func GetUIDFromContext(r *http.Request) (uuid.UUID, error) {
	uid, ok := r.Context().Value(uidContextKey).(uuid.UUID)
	if !ok {
		return uuid.UUID{}, errors.New("uid invalid or doesn't exists")
	}
	return uid, nil
}
