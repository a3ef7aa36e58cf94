package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/baechuer/board-service/internal/domain"
	"github.com/baechuer/board-service/internal/logger"
)

// ErrorBody is the single error shape returned by every endpoint.
type ErrorBody struct {
	Status    int    `json:"status"`
	Error     string `json:"error"`
	Message   string `json:"message"`
	Code      string `json:"code"`
	Path      string `json:"path"`
	Timestamp string `json:"timestamp"`
}

// overridden in tests
var now = time.Now

// WriteError converts a domain error into a consistent JSON HTTP error response.
// Non-domain errors are treated as internal errors (500) without leaking details.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	code := domain.CodeInternalError
	message := domain.MsgInternalError

	var de *domain.Error
	if errors.As(err, &de) {
		status = statusFromKind(de.Kind)
		code = de.Code
		message = de.Message
	}

	if status >= http.StatusInternalServerError {
		ev := logger.WithCtx(r.Context()).Error().Err(err).Str("path", r.URL.Path)
		if de != nil && len(de.Meta) > 0 {
			ev = ev.Fields(map[string]any{"meta": de.Meta})
		}
		ev.Msg("request failed")
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)

	_ = json.NewEncoder(w).Encode(ErrorBody{
		Status:    status,
		Error:     http.StatusText(status),
		Message:   message,
		Code:      code,
		Path:      r.URL.Path,
		Timestamp: now().UTC().Format(time.RFC3339Nano),
	})
}

// statusFromKind maps domain error kinds to HTTP status codes.
func statusFromKind(kind domain.ErrKind) int {
	switch kind {
	case domain.KindValidation:
		return http.StatusBadRequest
	case domain.KindAuth:
		return http.StatusUnauthorized
	case domain.KindNotFound:
		return http.StatusNotFound
	case domain.KindMethod:
		return http.StatusMethodNotAllowed
	case domain.KindConflict:
		return http.StatusConflict
	case domain.KindRateLimited:
		return http.StatusTooManyRequests
	case domain.KindInternal:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
