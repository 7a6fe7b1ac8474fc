package discord

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/SpinWheel_Go/internal/domain"
	"github.com/osse101/SpinWheel_Go/internal/handler"
)

// tokenSubject checks the bearer token and returns its subject.
// It runs on the server goroutine, so it asserts instead of requiring.
func tokenSubject(t *testing.T, ctx *TestContext, r *http.Request) string {
	t.Helper()
	token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
	userID, err := ctx.Tokens.Validate(token)
	assert.NoError(t, err)
	return userID
}

func cooldownBody(minutes int) handler.ErrorResponse {
	return handler.ErrorResponse{Error: handler.ErrorBody{
		Kind:             handler.KindCooldownActive,
		Message:          "Please wait 3 more minute(s) before spinning again",
		RemainingMinutes: &minutes,
	}}
}

func TestAPIClient_Spin(t *testing.T) {
	ctx := SetupTestContext(t)
	ctx.Mux.HandleFunc("POST "+PathSpin, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "discord:42", tokenSubject(t, ctx, r))

		var req handler.SpinRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		if assert.NotNil(t, req.ClientRequestID) {
			assert.Equal(t, "987", *req.ClientRequestID)
		}

		WriteJSON(w, http.StatusOK, handler.SpinResponse{Success: true, SpinOutcome: domain.SpinOutcome{
			SpinID:          "spin-1",
			Segment:         domain.Segment{ID: 8, Label: "Jackpot"},
			Prize:           domain.Prize{Type: domain.PrizeTypeJackpot, Amount: 1000, Description: "JACKPOT! 1000 Coins!"},
			Message:         "You won: JACKPOT! 1000 Coins!",
			CooldownMinutes: 1,
		}})
	})

	outcome, err := ctx.APIClient.Spin(context.Background(), "42", "987")
	require.NoError(t, err)
	assert.Equal(t, "spin-1", outcome.SpinID)
	assert.Equal(t, int64(1000), outcome.Prize.Amount)
	assert.Equal(t, "You won: JACKPOT! 1000 Coins!", outcome.Message)
}

func TestAPIClient_SpinErrorsAreNotRetried(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     handler.ErrorResponse
		wantKind string
	}{
		{name: "cooldown", status: http.StatusTooManyRequests, body: cooldownBody(3), wantKind: handler.KindCooldownActive},
		{
			name:     "storage",
			status:   http.StatusServiceUnavailable,
			body:     handler.ErrorResponse{Error: handler.ErrorBody{Kind: handler.KindStorageError, Message: "down"}},
			wantKind: handler.KindStorageError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := SetupTestContext(t)
			var calls atomic.Int32
			ctx.Mux.HandleFunc("POST "+PathSpin, func(w http.ResponseWriter, r *http.Request) {
				calls.Add(1)
				WriteJSON(w, tt.status, tt.body)
			})

			_, err := ctx.APIClient.Spin(context.Background(), "42", "")
			var apiErr *APIError
			require.True(t, errors.As(err, &apiErr))
			assert.Equal(t, tt.status, apiErr.Status)
			assert.Equal(t, tt.wantKind, apiErr.Kind)
			assert.Equal(t, int32(1), calls.Load())
		})
	}
}

func TestAPIClient_HistoryRetriesServerErrors(t *testing.T) {
	ctx := SetupTestContext(t)
	var calls atomic.Int32
	ctx.Mux.HandleFunc("GET "+PathHistory, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "discord:7", tokenSubject(t, ctx, r))
		assert.Equal(t, "10", r.URL.Query().Get("limit"))
		assert.Equal(t, "20", r.URL.Query().Get("offset"))

		if calls.Add(1) == 1 {
			http.Error(w, "boom", http.StatusInternalServerError)
			return
		}
		WriteJSON(w, http.StatusOK, handler.HistoryResponse{Success: true, HistoryPage: domain.HistoryPage{
			Spins:      []domain.SpinRecord{{ID: "s1", Prize: domain.Prize{Type: domain.PrizeTypeCoins, Amount: 50}}},
			TotalSpins: 21,
			Limit:      10,
			Offset:     20,
		}})
	})

	page, err := ctx.APIClient.History(context.Background(), "7", 10, 20)
	require.NoError(t, err)
	assert.Equal(t, int32(2), calls.Load())
	assert.Equal(t, 21, page.TotalSpins)
	require.Len(t, page.Spins, 1)
}

func TestAPIClient_HistoryGivesUpAfterRetries(t *testing.T) {
	ctx := SetupTestContext(t)
	var calls atomic.Int32
	ctx.Mux.HandleFunc("GET "+PathHistory, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		http.Error(w, "boom", http.StatusBadGateway)
	})

	_, err := ctx.APIClient.History(context.Background(), "7", 10, 0)
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, handler.KindInternal, apiErr.Kind)
	assert.Equal(t, http.StatusBadGateway, apiErr.Status)
	assert.Equal(t, int32(1+ClientMaxRetries), calls.Load())
}

func TestAPIClient_StatusAndPing(t *testing.T) {
	ctx := SetupTestContext(t)
	ctx.Mux.HandleFunc("GET "+PathSpinStatus, func(w http.ResponseWriter, r *http.Request) {
		WriteJSON(w, http.StatusOK, handler.SpinStatusResponse{Success: true, SpinStatus: domain.SpinStatus{
			CanSpin: false, RemainingMinutes: 4, RemainingSeconds: 200, CooldownMinutes: 5, WheelVersion: 2,
		}})
	})

	status, err := ctx.APIClient.Status(context.Background(), "1")
	require.NoError(t, err)
	assert.False(t, status.CanSpin)
	assert.Equal(t, 4, status.RemainingMinutes)

	// No /healthz route is mounted, so the check fails
	assert.False(t, ctx.APIClient.Ping(context.Background()))
	ctx.Mux.HandleFunc("GET "+PathHealthz, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	assert.True(t, ctx.APIClient.Ping(context.Background()))
}

func TestAPIClient_ContextCancelledDuringBackoff(t *testing.T) {
	ctx := SetupTestContext(t)
	ctx.APIClient.retryDelay = time.Hour
	ctx.Mux.HandleFunc("GET "+PathHistory, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	reqCtx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := ctx.APIClient.History(reqCtx, "7", 10, 0)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestUserID(t *testing.T) {
	assert.Equal(t, "discord:123", UserID("123"))
}
