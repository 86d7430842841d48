package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// HTTPDoer is the outbound transport. *http.Client satisfies it.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

type WeatherAPIClient interface {
	GetCurrent(ctx context.Context, city string) (*WeatherPayload, error)
	GetForecast(ctx context.Context, city string, days int) (*WeatherPayload, error)
}

type Options struct {
	APIKey      string
	CurrentURL  string
	ForecastURL string
	Timeout     time.Duration
}

type weatherAPIClient struct {
	apiKey      string
	currentURL  string
	forecastURL string
	client      HTTPDoer
}

// NewWeatherAPIClient builds a client for the configured endpoints. A nil doer
// gets an *http.Client bounded by opts.Timeout.
func NewWeatherAPIClient(opts Options, doer HTTPDoer) WeatherAPIClient {
	if doer == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = 10 * time.Second
		}
		doer = &http.Client{Timeout: timeout}
	}

	return &weatherAPIClient{
		apiKey:      opts.APIKey,
		currentURL:  opts.CurrentURL,
		forecastURL: opts.ForecastURL,
		client:      doer,
	}
}

func (c *weatherAPIClient) GetCurrent(ctx context.Context, city string) (*WeatherPayload, error) {
	return c.fetch(ctx, EndpointCurrent, c.currentURL, url.Values{"q": {city}})
}

func (c *weatherAPIClient) GetForecast(ctx context.Context, city string, days int) (*WeatherPayload, error) {
	return c.fetch(ctx, EndpointForecast, c.forecastURL, url.Values{
		"q":    {city},
		"days": {strconv.Itoa(days)},
	})
}

func (c *weatherAPIClient) fetch(ctx context.Context, endpoint Endpoint, baseURL string, params url.Values) (*WeatherPayload, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, &UpstreamError{Endpoint: endpoint, Err: fmt.Errorf("parse base url: %w", err)}
	}

	query := u.Query()
	query.Set("key", c.apiKey)
	for k, vs := range params {
		for _, v := range vs {
			query.Set(k, v)
		}
	}
	u.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, &UpstreamError{Endpoint: endpoint, Err: fmt.Errorf("create request: %w", err)}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, &UpstreamError{Endpoint: endpoint, Err: fmt.Errorf("request failed: %w", redactKey(err, c.apiKey))}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &UpstreamError{Endpoint: endpoint, StatusCode: resp.StatusCode}
	}

	var payload WeatherPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, &UpstreamError{
			Endpoint:   endpoint,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("malformed JSON: %w", err),
		}
	}

	if payload.Error != nil && payload.Error.Code != 0 {
		return nil, &UpstreamError{
			Endpoint:   endpoint,
			StatusCode: resp.StatusCode,
			Code:       payload.Error.Code,
			Message:    payload.Error.Message,
		}
	}

	return &payload, nil
}

// redactKey strips the API key from *url.Error messages, which quote the full request URL.
func redactKey(err error, apiKey string) error {
	urlErr, ok := err.(*url.Error)
	if !ok || apiKey == "" {
		return err
	}

	u, parseErr := url.Parse(urlErr.URL)
	if parseErr != nil {
		return err
	}
	query := u.Query()
	if query.Has("key") {
		query.Set("key", "REDACTED")
		u.RawQuery = query.Encode()
	}

	return &url.Error{Op: urlErr.Op, URL: u.String(), Err: urlErr.Err}
}
