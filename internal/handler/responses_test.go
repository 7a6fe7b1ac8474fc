package handler

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/SpinWheel_Go/internal/domain"
)

func stringsReader(s string) io.Reader { return strings.NewReader(s) }

func wrapInvalid(msg string) error {
	return fmt.Errorf("%w: %s", domain.ErrInvalidArgument, msg)
}

func TestMapServiceError(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedKind   string
		expectedMsg    string
	}{
		{"nil", nil, http.StatusInternalServerError, KindInternal, ErrMsgGenericServerError},
		{"unauthenticated", domain.ErrUnauthenticated, http.StatusUnauthorized, KindUnauthenticated, ErrMsgUnauthenticated},
		{"invalid argument keeps detail", wrapInvalid(domain.ErrMsgLimitTooLarge), http.StatusBadRequest, KindInvalidArgument, domain.ErrMsgLimitTooLarge},
		{"bare invalid argument", domain.ErrInvalidArgument, http.StatusBadRequest, KindInvalidArgument, ErrMsgInvalidRequestSummary},
		{"not found", domain.ErrConfigurationNotFound, http.StatusNotFound, KindConfigurationNotFound, ErrMsgConfigurationNotFound},
		{"no segments", fmt.Errorf("%w: %s", domain.ErrConfiguration, domain.ErrMsgNoSegments), http.StatusServiceUnavailable, KindConfigurationError, ErrMsgNoSegments},
		{"bad weights", fmt.Errorf("%w: total weight is not positive", domain.ErrConfiguration), http.StatusServiceUnavailable, KindConfigurationError, ErrMsgInvalidConfiguration},
		{"cooldown", &domain.CooldownActiveError{RemainingMinutes: 1, Remaining: time.Second}, http.StatusTooManyRequests, KindCooldownActive, "Please wait 1 more minute(s) before spinning again"},
		{"wrapped cooldown", fmt.Errorf("scope: %w", &domain.CooldownActiveError{RemainingMinutes: 2}), http.StatusTooManyRequests, KindCooldownActive, "Please wait 2 more minute(s) before spinning again"},
		{"storage", fmt.Errorf("%w: insert: connection reset", domain.ErrStorage), http.StatusServiceUnavailable, KindStorageError, ErrMsgStorageUnavailable},
		{"deadline", context.DeadlineExceeded, http.StatusServiceUnavailable, KindStorageError, ErrMsgStorageUnavailable},
		{"unknown", errors.New("nil pointer somewhere deep"), http.StatusInternalServerError, KindInternal, ErrMsgGenericServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := mapServiceError(tt.err)
			assert.Equal(t, tt.expectedStatus, status)
			assert.Equal(t, tt.expectedKind, body.Kind)
			assert.Equal(t, tt.expectedMsg, body.Message)
			if tt.expectedKind == KindCooldownActive {
				assert.NotNil(t, body.RemainingMinutes)
			} else {
				assert.Nil(t, body.RemainingMinutes)
			}
		})
	}
}

func TestRespondRateLimited(t *testing.T) {
	w := httptest.NewRecorder()
	RespondRateLimited(w, 1500*time.Millisecond)

	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "2", w.Header().Get(HeaderRetryAfter))
	assert.Contains(t, w.Body.String(), `"kind":"rate_limited"`)
}

func TestRespondUnauthenticated(t *testing.T) {
	w := httptest.NewRecorder()
	RespondUnauthenticated(w)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"success":false,"error":{"kind":"unauthenticated","message":"User must be authenticated"}}`, w.Body.String())
}
