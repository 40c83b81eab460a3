package ticketmaster

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/nearlive/event-search-service/internal/application/search"
	"github.com/nearlive/event-search-service/internal/domain"
)

const (
	defaultBaseURL = "https://app.ticketmaster.com/discovery/v2"

	// requestedPageSize is the fixed upstream page size.
	requestedPageSize = 20

	// maxErrorBody bounds how much of an upstream error body is forwarded.
	maxErrorBody = 8 << 10

	instantLayout = "2006-01-02T15:04:05Z"
)

type Config struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
}

// Client queries the Discovery events search endpoint. It implements
// search.EventSource.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func New(cfg Config) *Client {
	baseURL := strings.TrimSuffix(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL:    baseURL,
		apiKey:     cfg.APIKey,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Search maps the validated query and resolved window into the Discovery
// dialect, performs the call, and returns normalized records. A missing API
// key fails before any network traffic.
func (c *Client) Search(ctx context.Context, q search.Query, w search.Window) (*search.Page, error) {
	if c.apiKey == "" {
		return nil, domain.ErrConfig("upstream API key is not configured")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/events.json", nil)
	if err != nil {
		return nil, fmt.Errorf("build upstream request: %w", err)
	}

	p := req.URL.Query()
	p.Set("apikey", c.apiKey)
	p.Set("size", strconv.Itoa(requestedPageSize))
	p.Set("page", strconv.Itoa(q.Page))
	p.Set("sort", "date,asc")
	p.Set("locale", "*")
	p.Set("startDateTime", w.Start.UTC().Format(instantLayout))
	if w.End != nil {
		p.Set("endDateTime", w.End.UTC().Format(instantLayout))
	}
	if q.Keyword != "" {
		p.Set("keyword", q.Keyword)
	}
	if q.Lat != nil && q.Lng != nil {
		p.Set("latlong", fmt.Sprintf("%f,%f", *q.Lat, *q.Lng))
		p.Set("radius", strconv.Itoa(int(q.Radius)))
		p.Set("unit", "km")
	}
	req.URL.RawQuery = p.Encode()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return nil, err
		}
		return nil, domain.ErrUpstream(http.StatusBadGateway, "upstream request failed", err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, domain.ErrUpstream(resp.StatusCode, "upstream request failed", strings.TrimSpace(string(body)))
	}

	var payload eventsResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, domain.ErrUpstream(http.StatusBadGateway, "upstream request failed", "malformed upstream payload")
	}

	return normalizeResponse(&payload), nil
}
