package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/osse101/SpinWheel_Go/internal/cooldown"
	"github.com/osse101/SpinWheel_Go/internal/domain"
	"github.com/osse101/SpinWheel_Go/internal/logger"
	"github.com/osse101/SpinWheel_Go/internal/metrics"
)

// Standard response types for consistent API responses

// ErrorBody describes a failed request
type ErrorBody struct {
	Kind             string            `json:"kind"`
	Message          string            `json:"message"`
	RemainingMinutes *int              `json:"remainingMinutes,omitempty"`
	Fields           map[string]string `json:"fields,omitempty"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Success bool      `json:"success"`
	Error   ErrorBody `json:"error"`
}

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	buf := getBuffer()
	defer putBuffer(buf)

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		// Headers are already sent
		slog.Error(LogMsgEncodeFailed, "error", err)
		return
	}

	if _, err := buf.WriteTo(w); err != nil {
		slog.Error(LogMsgWriteFailed, "error", err)
	}
}

// respondErrorBody sends an error envelope
func respondErrorBody(w http.ResponseWriter, status int, body ErrorBody) {
	metrics.ServiceErrors.WithLabelValues(body.Kind).Inc()
	respondJSON(w, status, ErrorResponse{Success: false, Error: body})
}

// RespondUnauthenticated sends the 401 envelope. Used by the authentication middleware.
func RespondUnauthenticated(w http.ResponseWriter) {
	respondErrorBody(w, http.StatusUnauthorized, ErrorBody{Kind: KindUnauthenticated, Message: ErrMsgUnauthenticated})
}

// RespondRateLimited sends the 429 envelope for requests rejected by the rate limiter
func RespondRateLimited(w http.ResponseWriter, retryAfter time.Duration) {
	w.Header().Set(HeaderRetryAfter, strconv.Itoa(max(1, cooldown.CeilSeconds(retryAfter))))
	respondErrorBody(w, http.StatusTooManyRequests, ErrorBody{Kind: KindRateLimited, Message: ErrMsgTooManyRequests})
}

// respondServiceError logs err and writes the mapped error response
func respondServiceError(w http.ResponseWriter, r *http.Request, op string, err error) {
	status, body := mapServiceError(err)

	log := logger.FromContext(r.Context())
	switch {
	case status >= http.StatusInternalServerError:
		log.Error(LogMsgRequestFailed, "operation", op, "kind", body.Kind, "error", err)
	default:
		log.Debug(LogMsgRequestFailed, "operation", op, "kind", body.Kind, "error", err)
	}

	var cd *domain.CooldownActiveError
	if errors.As(err, &cd) {
		metrics.CooldownDenials.Inc()
		seconds := cooldown.CeilSeconds(cd.Remaining)
		if seconds <= 0 {
			seconds = cd.RemainingMinutes * 60
		}
		w.Header().Set(HeaderRetryAfter, strconv.Itoa(max(1, seconds)))
	}

	respondErrorBody(w, status, body)
}

// mapServiceError converts service errors into an HTTP status and a safe error body.
// Anything unclassified becomes a generic internal error; details are only logged.
func mapServiceError(err error) (int, ErrorBody) {
	var cd *domain.CooldownActiveError

	switch {
	case err == nil:
		return http.StatusInternalServerError, ErrorBody{Kind: KindInternal, Message: ErrMsgGenericServerError}
	case errors.Is(err, domain.ErrUnauthenticated):
		return http.StatusUnauthorized, ErrorBody{Kind: KindUnauthenticated, Message: ErrMsgUnauthenticated}
	case errors.As(err, &cd):
		remaining := cd.RemainingMinutes
		return http.StatusTooManyRequests, ErrorBody{
			Kind:             KindCooldownActive,
			Message:          fmt.Sprintf(ErrMsgCooldownFormat, remaining),
			RemainingMinutes: &remaining,
		}
	case errors.Is(err, domain.ErrInvalidArgument):
		return http.StatusBadRequest, ErrorBody{Kind: KindInvalidArgument, Message: invalidArgumentMessage(err)}
	case errors.Is(err, domain.ErrConfigurationNotFound):
		return http.StatusNotFound, ErrorBody{Kind: KindConfigurationNotFound, Message: ErrMsgConfigurationNotFound}
	case errors.Is(err, domain.ErrConfiguration):
		msg := ErrMsgInvalidConfiguration
		if strings.Contains(err.Error(), domain.ErrMsgNoSegments) {
			msg = ErrMsgNoSegments
		}
		return http.StatusServiceUnavailable, ErrorBody{Kind: KindConfigurationError, Message: msg}
	case errors.Is(err, domain.ErrStorage):
		return http.StatusServiceUnavailable, ErrorBody{Kind: KindStorageError, Message: ErrMsgStorageUnavailable}
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable, ErrorBody{Kind: KindStorageError, Message: ErrMsgStorageUnavailable}
	}

	return http.StatusInternalServerError, ErrorBody{Kind: KindInternal, Message: ErrMsgGenericServerError}
}

// invalidArgumentMessage keeps the validation detail that follows the sentinel text
func invalidArgumentMessage(err error) string {
	msg := err.Error()
	if i := strings.Index(msg, domain.ErrMsgInvalidArgument+": "); i >= 0 {
		return msg[i+len(domain.ErrMsgInvalidArgument)+2:]
	}
	return ErrMsgInvalidRequestSummary
}
