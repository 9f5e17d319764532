// File: services/meet/provider.go
package meet

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

// State tracks the link-request lifecycle: Idle -> Requesting -> Ready|Fallback.
type State string

const (
	StateIdle       State = "idle"
	StateRequesting State = "requesting"
	StateReady      State = "ready"
	StateFallback   State = "fallback"
)

// Result is the outcome of a single link request. Degraded results carry a
// synthesized placeholder link plus a non-fatal warning for the caller to
// surface; they never block event creation.
type Result struct {
	URL      string `json:"url"`
	State    State  `json:"state"`
	Degraded bool   `json:"degraded"`
	Warning  string `json:"warning,omitempty"`
}

// TokenSource yields the cached authorization token for the external meeting
// capability, or an empty token when none has been obtained.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// LinkProvider produces a meeting-join URL for a newly created event. Editing
// an existing event reuses its stored link and never goes through here.
type LinkProvider interface {
	CreateLink(ctx context.Context) Result
}

// DefaultLinkProvider implements LinkProvider against an external meeting API.
type DefaultLinkProvider struct {
	Tokens  TokenSource
	BaseURL string
	Client  *http.Client
	Logger  *zap.Logger
}

// NewLinkProvider builds a provider with a bounded-timeout HTTP client.
func NewLinkProvider(tokens TokenSource, baseURL string, logger *zap.Logger) *DefaultLinkProvider {
	return &DefaultLinkProvider{
		Tokens:  tokens,
		BaseURL: strings.TrimRight(baseURL, "/"),
		Client:  &http.Client{Timeout: 15 * time.Second},
		Logger:  logger,
	}
}

type createMeetingResponse struct {
	JoinURL string `json:"joinUrl"`
}

// CreateLink performs a single attempt against the meeting API. No cached
// token, a missing endpoint, or any fault short-circuits to a fallback link;
// the caller may re-trigger by reopening the creation flow.
func (p *DefaultLinkProvider) CreateLink(ctx context.Context) Result {
	token, err := p.Tokens.Token(ctx)
	if err != nil || token == "" || p.BaseURL == "" {
		if err != nil {
			p.Logger.Warn("meet: token lookup failed, falling back", zap.Error(err))
		}
		return p.fallback()
	}

	url, err := p.requestLink(ctx, token)
	if err != nil {
		p.Logger.Warn("meet: external meeting request failed, falling back", zap.Error(err))
		return p.fallback()
	}

	return Result{URL: url, State: StateReady}
}

func (p *DefaultLinkProvider) requestLink(ctx context.Context, token string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.BaseURL+"/v1/meetings", nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")

	resp, err := p.Client.Do(req)
	if err != nil {
		return "", fmt.Errorf("meeting request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("meeting API returned status %d", resp.StatusCode)
	}

	var out createMeetingResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decoding meeting response failed: %w", err)
	}
	if out.JoinURL == "" {
		return "", fmt.Errorf("meeting API returned no join URL")
	}
	return out.JoinURL, nil
}

func (p *DefaultLinkProvider) fallback() Result {
	return Result{
		URL:      FallbackLink(),
		State:    StateFallback,
		Degraded: true,
		Warning:  "Could not reach the meeting service; a placeholder link was generated.",
	}
}
