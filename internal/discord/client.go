package discord

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/osse101/SpinWheel_Go/internal/domain"
	"github.com/osse101/SpinWheel_Go/internal/handler"
)

// TokenIssuer mints bearer tokens for a user ID
type TokenIssuer interface {
	Issue(userID string) (string, error)
}

// APIError is a structured error returned by the SpinWheel API
type APIError struct {
	Status           int
	Kind             string
	Message          string
	RemainingMinutes *int
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API error (%d %s): %s", e.Status, e.Kind, e.Message)
}

// APIClient calls the SpinWheel HTTP API on behalf of Discord users
type APIClient struct {
	BaseURL string
	Client  *http.Client
	tokens  TokenIssuer

	maxRetries int
	retryDelay time.Duration
}

// NewAPIClient creates a new API client
func NewAPIClient(baseURL string, tokens TokenIssuer) *APIClient {
	return &APIClient{
		BaseURL: baseURL,
		Client: &http.Client{
			Timeout: ClientTimeout,
		},
		tokens:     tokens,
		maxRetries: ClientMaxRetries,
		retryDelay: ClientRetryDelay,
	}
}

// UserID maps a Discord account to the API's user identifier
func UserID(discordID string) string {
	return UserIDPrefix + discordID
}

// Spin records a spin for the Discord user. The interaction ID travels as the
// client request ID so the ledger can correlate bot retries.
func (c *APIClient) Spin(ctx context.Context, discordID, interactionID string) (*domain.SpinOutcome, error) {
	body := handler.SpinRequest{}
	if interactionID != "" {
		body.ClientRequestID = &interactionID
	}

	var out handler.SpinResponse
	if err := c.do(ctx, http.MethodPost, PathSpin, discordID, body, &out); err != nil {
		return nil, err
	}
	return &out.SpinOutcome, nil
}

// History fetches one page of the user's spins
func (c *APIClient) History(ctx context.Context, discordID string, limit, offset int) (*domain.HistoryPage, error) {
	q := url.Values{}
	q.Set(handler.QueryParamLimit, strconv.Itoa(limit))
	q.Set(handler.QueryParamOffset, strconv.Itoa(offset))

	var out handler.HistoryResponse
	if err := c.do(ctx, http.MethodGet, PathHistory+"?"+q.Encode(), discordID, nil, &out); err != nil {
		return nil, err
	}
	return &out.HistoryPage, nil
}

// Status reports the user's cooldown state
func (c *APIClient) Status(ctx context.Context, discordID string) (*domain.SpinStatus, error) {
	var out handler.SpinStatusResponse
	if err := c.do(ctx, http.MethodGet, PathSpinStatus, discordID, nil, &out); err != nil {
		return nil, err
	}
	return &out.SpinStatus, nil
}

// Ping reports whether the API answers its health check
func (c *APIClient) Ping(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+PathHealthz, nil)
	if err != nil {
		return false
	}
	resp, err := c.Client.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}

// do performs an authenticated request and decodes the JSON response into out.
// GETs are retried with exponential backoff on transport and 5xx errors; spins
// are sent once so a slow server never records two.
func (c *APIClient) do(ctx context.Context, method, path, discordID string, body, out any) error {
	var reqBody []byte
	if body != nil {
		var err error
		if reqBody, err = json.Marshal(body); err != nil {
			return fmt.Errorf("failed to marshal body: %w", err)
		}
	}

	token, err := c.tokens.Issue(UserID(discordID))
	if err != nil {
		return fmt.Errorf("failed to issue token: %w", err)
	}

	attempts := 1
	if method == http.MethodGet {
		attempts += c.maxRetries
	}

	var lastErr error
	for attempt := 0; attempt < attempts; attempt++ {
		if attempt > 0 {
			delay := c.retryDelay * time.Duration(1<<uint(attempt-1))
			slog.Info(LogMsgRetryingRequest, "attempt", attempt, "path", path, "delay", delay)
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
			}
		}

		req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, bytes.NewReader(reqBody))
		if err != nil {
			return fmt.Errorf("failed to create request: %w", err)
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+token)

		resp, err := c.Client.Do(req)
		if err != nil {
			lastErr = err
			slog.Warn(LogMsgRequestFailed, "error", err, "attempt", attempt)
			continue
		}

		lastErr = decodeResponse(resp, out)
		var apiErr *APIError
		if lastErr == nil || !errors.As(lastErr, &apiErr) || apiErr.Status < http.StatusInternalServerError {
			return lastErr
		}
		slog.Warn(LogMsgServerError, "status", apiErr.Status, "attempt", attempt)
	}

	return lastErr
}

func decodeResponse(resp *http.Response, out any) error {
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		var envelope handler.ErrorResponse
		if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil || envelope.Error.Kind == "" {
			return &APIError{Status: resp.StatusCode, Kind: handler.KindInternal, Message: http.StatusText(resp.StatusCode)}
		}
		return &APIError{
			Status:           resp.StatusCode,
			Kind:             envelope.Error.Kind,
			Message:          envelope.Error.Message,
			RemainingMinutes: envelope.Error.RemainingMinutes,
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
