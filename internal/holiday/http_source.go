package holiday

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"
)

const (
	defaultHTTPTimeout = 10 * time.Second
	defaultCacheTTL    = 24 * time.Hour
)

// HTTPSource fetches the holiday list from a JSON endpoint. The endpoint may
// return either a flat array of dates or {"holidays": [...]}; any other JSON
// shape yields an empty set.
type HTTPSource struct {
	url        string
	httpClient *http.Client
	logger     *zap.Logger
	cacheTTL   time.Duration
	cacheMu    sync.RWMutex
	cached     Set
	fetchedAt  time.Time
}

// NewHTTPSource creates a new HTTPSource instance. A cacheTTL of zero
// disables caching and every call hits the endpoint.
func NewHTTPSource(url string, timeout, cacheTTL time.Duration, logger *zap.Logger) *HTTPSource {
	if timeout == 0 {
		timeout = defaultHTTPTimeout
	}

	return &HTTPSource{
		url: url,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger:   logger,
		cacheTTL: cacheTTL,
	}
}

// Holidays returns the holiday snapshot, fetching from the endpoint when the
// cached copy is missing or stale.
func (s *HTTPSource) Holidays(ctx context.Context) (Set, error) {
	s.cacheMu.RLock()
	if s.cached != nil && time.Since(s.fetchedAt) < s.cacheTTL {
		cached := s.cached
		s.cacheMu.RUnlock()
		s.logger.Debug("Using cached holiday set",
			zap.Int("holidays", cached.Len()))
		return cached, nil
	}
	s.cacheMu.RUnlock()

	set, err := s.fetch(ctx)
	if err != nil {
		return nil, err
	}

	s.cacheMu.Lock()
	s.cached = set
	s.fetchedAt = time.Now()
	s.cacheMu.Unlock()

	return set, nil
}

// ClearCache clears the cached holiday set
func (s *HTTPSource) ClearCache() {
	s.cacheMu.Lock()
	defer s.cacheMu.Unlock()

	s.cached = nil
	s.fetchedAt = time.Time{}
}

func (s *HTTPSource) fetch(ctx context.Context) (Set, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build holiday request: %w", err)
	}

	s.logger.Debug("Fetching holiday list", zap.String("url", s.url))

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch holiday list: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("holiday endpoint returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read holiday response: %w", err)
	}

	set, err := parsePayload(body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse holiday response: %w", err)
	}

	if set.Len() == 0 {
		s.logger.Warn("Holiday endpoint returned no recognizable dates",
			zap.String("url", s.url))
	} else {
		s.logger.Info("Holiday list fetched",
			zap.String("url", s.url),
			zap.Int("holidays", set.Len()))
	}

	return set, nil
}

// parsePayload decodes the two accepted response shapes. Other valid JSON
// decodes to an empty set; malformed JSON is a supplier failure.
func parsePayload(body []byte) (Set, error) {
	var flat []string
	if err := json.Unmarshal(body, &flat); err == nil {
		return NewSet(flat), nil
	}

	var wrapped struct {
		Holidays []string `json:"holidays"`
	}
	if err := json.Unmarshal(body, &wrapped); err == nil {
		return NewSet(wrapped.Holidays), nil
	}

	var anything interface{}
	if err := json.Unmarshal(body, &anything); err != nil {
		return nil, err
	}

	return Set{}, nil
}
