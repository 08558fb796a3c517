package api

import (
	"errors"
	"log/slog"
	"net/http"

	errorvalues "github.com/berkaychi/ClimbUpAPI-sub001/internal/error_values"
	"github.com/berkaychi/ClimbUpAPI-sub001/pkg/httputil"
)

// writeServiceError maps error kinds to statuses. Client errors carry the
// sentinel text; anything else is logged and hidden behind a generic message.
func writeServiceError(w http.ResponseWriter, logger *slog.Logger, op string, err error) {
	var code int
	switch {
	case errors.Is(err, errorvalues.ErrNotFound):
		code = http.StatusNotFound
	case errors.Is(err, errorvalues.ErrForbidden):
		code = http.StatusForbidden
	case errors.Is(err, errorvalues.ErrInvalidState):
		code = http.StatusConflict
	case errors.Is(err, errorvalues.ErrInvalidInput):
		code = http.StatusBadRequest
	default:
		logger.Error(op+" error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error during "+op, nil)
		return
	}
	logger.Error(op+" error", slog.String("error", err.Error()), slog.Int("code", code))
	httputil.WriteErrorResponse(w, code, op+" failed", err)
}
