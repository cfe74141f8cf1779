package prayercalc

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/4imn/Sadeqi-backend/internal/domain"
)

const defaultTimeout = 30 * time.Second

// Client fetches a country's daily prayer schedule from the
// calculation service. It implements domain.DailyTimeCalculator.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
	}
}

// WithHTTPClient overrides the underlying HTTP client. Tests inject a
// client bound to a local server.
func (c *Client) WithHTTPClient(httpClient *http.Client) *Client {
	c.httpClient = httpClient
	return c
}

type dailyTimesResponse struct {
	Country string            `json:"country"`
	Date    string            `json:"date"`
	Times   map[string]string `json:"times"`
}

// ComputeDailyTimes returns the scope's schedule for the given date as
// label -> local HH:MM. An unknown country maps to ErrScopeNotFound;
// any other upstream failure maps to ErrCalculationError.
func (c *Client) ComputeDailyTimes(ctx context.Context, scope domain.Scope, date time.Time) (map[string]string, error) {
	endpoint, err := url.Parse(c.baseURL + "/v1/times")
	if err != nil {
		return nil, fmt.Errorf("invalid calculator base url: %w", err)
	}
	query := endpoint.Query()
	query.Set("country", scope.Code)
	query.Set("date", date.Format("2006-01-02"))
	endpoint.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCalculationError, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, fmt.Errorf("%w: country %s", domain.ErrScopeNotFound, scope.Code)
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("%w: unexpected status %d", domain.ErrCalculationError, resp.StatusCode)
	}

	var body dailyTimesResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("%w: malformed response: %v", domain.ErrCalculationError, err)
	}
	if len(body.Times) == 0 {
		return nil, fmt.Errorf("%w: empty schedule for %s", domain.ErrCalculationError, scope.Code)
	}
	return body.Times, nil
}
