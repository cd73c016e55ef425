package footballdata

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"premier-league-notifier/internal/logging"
	"premier-league-notifier/internal/providers"
	"premier-league-notifier/internal/standings"
)

// Config controls how the football-data client reaches the upstream API.
type Config struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client
	Logger     *slog.Logger
}

// Client fetches Premier League standings from football-data.org and maps
// them to domain models.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient httpDoer
	logger     *slog.Logger
}

// NewClient constructs a football-data client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		apiKey:     cfg.APIKey,
		httpClient: resolveHTTPClient(cfg.HTTPClient),
		logger:     cfg.Logger,
	}
}

// FetchStandings retrieves the current Premier League standings. The request
// is sent exactly once; any failure is returned as a *providers.FetchError
// after a diagnostic log line.
func (c *Client) FetchStandings(ctx context.Context) (standings.Document, error) {
	req, err := c.buildRequest(ctx)
	if err != nil {
		return standings.Document{}, c.fail(0, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return standings.Document{}, c.fail(0, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		err := fmt.Errorf("unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
		return standings.Document{}, c.fail(resp.StatusCode, err)
	}

	var payload standingsResponse
	if decodeErr := json.NewDecoder(resp.Body).Decode(&payload); decodeErr != nil {
		return standings.Document{}, c.fail(0, decodeErr)
	}

	return mapDocument(payload), nil
}

func (c *Client) buildRequest(ctx context.Context) (*http.Request, error) {
	url := fmt.Sprintf("%s/competitions/%s/standings", c.baseURL, competitionCode)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set(authHeader, c.apiKey)
	return req, nil
}

func (c *Client) fail(status int, err error) error {
	fErr := &providers.FetchError{Provider: providerName, StatusCode: status, Err: err}
	logging.Error(c.logger, "standings fetch failed", fErr, slog.String("provider", providerName))
	return fErr
}
