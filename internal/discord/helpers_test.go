package discord

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/SpinWheel_Go/internal/auth"
)

const testSecret = "discord-test-secret-with-enough-bytes"

// MockRoundTripper implements http.RoundTripper for intercepting requests
type MockRoundTripper struct {
	RoundTripFunc func(req *http.Request) (*http.Response, error)
}

func (m *MockRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	return m.RoundTripFunc(req)
}

// TestContext bundles a fake SpinWheel API and a Discord session whose REST
// calls are captured instead of sent.
type TestContext struct {
	Server    *httptest.Server
	Mux       *http.ServeMux
	APIClient *APIClient
	Tokens    *auth.TokenService
	Session   *discordgo.Session

	mu       sync.Mutex
	edits    []discordgo.WebhookEdit
	deferred int
}

func SetupTestContext(t *testing.T) *TestContext {
	t.Helper()

	mux := http.NewServeMux()
	server := httptest.NewServer(mux)
	tokens := auth.NewTokenService(testSecret, "spinwheel", time.Minute)

	client := NewAPIClient(server.URL, tokens)
	client.retryDelay = time.Millisecond

	session, err := discordgo.New("Bot test-token")
	if err != nil {
		t.Fatalf("Failed to create mock session: %v", err)
	}

	ctx := &TestContext{
		Server:    server,
		Mux:       mux,
		APIClient: client,
		Tokens:    tokens,
		Session:   session,
	}

	session.Client = &http.Client{Transport: &MockRoundTripper{
		RoundTripFunc: func(req *http.Request) (*http.Response, error) {
			ctx.mu.Lock()
			defer ctx.mu.Unlock()
			switch req.Method {
			case http.MethodPatch:
				var body discordgo.WebhookEdit
				_ = json.NewDecoder(req.Body).Decode(&body)
				ctx.edits = append(ctx.edits, body)
			case http.MethodPost:
				ctx.deferred++
			}
			return &http.Response{
				StatusCode: http.StatusOK,
				Body:       io.NopCloser(bytes.NewBufferString("{}")),
				Header:     make(http.Header),
			}, nil
		},
	}}

	t.Cleanup(server.Close)
	return ctx
}

// LastEdit returns the most recent interaction edit sent to Discord
func (c *TestContext) LastEdit(t *testing.T) discordgo.WebhookEdit {
	t.Helper()
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.edits) == 0 {
		t.Fatal("no interaction edit was sent")
	}
	return c.edits[len(c.edits)-1]
}

// WriteJSON writes data as a JSON body with the given status
func WriteJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func createTestInteraction(commandName string, options []*discordgo.ApplicationCommandInteractionDataOption) *discordgo.InteractionCreate {
	return &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			ID:    "1234567890",
			AppID: "app",
			Token: "interaction-token",
			Type:  discordgo.InteractionApplicationCommand,
			Data: discordgo.ApplicationCommandInteractionData{
				Name:    commandName,
				Options: options,
			},
			User: &discordgo.User{
				ID:       "test-user-123",
				Username: "TestUser",
			},
		},
	}
}
