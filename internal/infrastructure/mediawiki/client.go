// Package mediawiki implements the record source and site ports over the
// MediaWiki action API.
package mediawiki

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/ersonp/wikilog/internal/domain/entities"
	"github.com/ersonp/wikilog/internal/domain/ports"
	"github.com/ersonp/wikilog/internal/infrastructure/config"
)

// defaultPageSize is the lelimit used when the query doesn't bound results.
const defaultPageSize = 50

// Client talks to one wiki's action API. It implements ports.RecordSource
// and ports.Site. Site info (version, namespaces) is fetched once via
// EnsureSiteInfo and cached for the client's lifetime.
type Client struct {
	httpClient *http.Client
	apiURL     string
	userAgent  string
	limiter    *rate.Limiter
	logger     *slog.Logger

	mu         sync.RWMutex
	version    string
	namespaces map[int]entities.Namespace
}

// apiError is the API-level error envelope.
type apiError struct {
	Code string `json:"code"`
	Info string `json:"info"`
}

func (e *apiError) Error() string {
	return fmt.Sprintf("api error %s: %s", e.Code, e.Info)
}

// NewClient creates a client for the configured wiki.
func NewClient(siteCfg config.SiteConfig, clientCfg config.ClientConfig) (*Client, error) {
	if siteCfg.APIURL == "" {
		return nil, errors.New("api url is required")
	}
	if _, err := url.Parse(siteCfg.APIURL); err != nil {
		return nil, fmt.Errorf("parsing api url: %w", err)
	}

	rps := clientCfg.RateLimit
	if rps <= 0 {
		rps = 2
	}
	burst := clientCfg.Burst
	if burst <= 0 {
		burst = 1
	}
	timeout := time.Duration(clientCfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		apiURL:     siteCfg.APIURL,
		userAgent:  siteCfg.UserAgent,
		limiter:    rate.NewLimiter(rate.Limit(rps), burst),
		logger:     slog.Default().With("component", "mediawiki"),
	}, nil
}

// LogEvents fetches raw log records via list=logevents.
func (c *Client) LogEvents(ctx context.Context, q ports.LogQuery) ([]entities.RawRecord, error) {
	limit := q.Limit
	if limit <= 0 {
		limit = defaultPageSize
	}

	params := url.Values{
		"action":        {"query"},
		"format":        {"json"},
		"formatversion": {"2"},
		"list":          {"logevents"},
		"lelimit":       {strconv.Itoa(limit)},
		"leprop":        {"ids|title|type|user|timestamp|comment|details"},
	}
	if q.Kind != "" {
		params.Set("letype", string(q.Kind))
	}

	var resp struct {
		Error *apiError `json:"error"`
		Query struct {
			LogEvents []entities.RawRecord `json:"logevents"`
		} `json:"query"`
	}
	if err := c.get(ctx, params, &resp); err != nil {
		return nil, err
	}
	if resp.Error != nil {
		return nil, resp.Error
	}
	if len(resp.Query.LogEvents) == 0 {
		return nil, ports.ErrExhausted
	}
	return resp.Query.LogEvents, nil
}

// EnsureSiteInfo fetches and caches the wiki version and namespace table.
// Call once before using the Site surface; repeated calls are cheap.
func (c *Client) EnsureSiteInfo(ctx context.Context) error {
	c.mu.RLock()
	loaded := c.namespaces != nil
	c.mu.RUnlock()
	if loaded {
		return nil
	}

	params := url.Values{
		"action":        {"query"},
		"format":        {"json"},
		"formatversion": {"2"},
		"meta":          {"siteinfo"},
		"siprop":        {"general|namespaces"},
	}

	var resp struct {
		Error *apiError `json:"error"`
		Query struct {
			General struct {
				Generator string `json:"generator"`
			} `json:"general"`
			Namespaces map[string]struct {
				ID        int    `json:"id"`
				Name      string `json:"name"`
				Star      string `json:"*"` // pre-formatversion=2 field name
				Canonical string `json:"canonical"`
			} `json:"namespaces"`
		} `json:"query"`
	}
	if err := c.get(ctx, params, &resp); err != nil {
		return err
	}
	if resp.Error != nil {
		return resp.Error
	}

	namespaces := make(map[int]entities.Namespace, len(resp.Query.Namespaces))
	for _, ns := range resp.Query.Namespaces {
		name := ns.Name
		if name == "" {
			name = ns.Star
		}
		namespaces[ns.ID] = entities.Namespace{ID: ns.ID, Name: name, Canonical: ns.Canonical}
	}

	version := strings.TrimPrefix(resp.Query.General.Generator, "MediaWiki ")
	c.mu.Lock()
	c.version = version
	c.namespaces = namespaces
	c.mu.Unlock()

	c.logger.Debug("site info loaded", "version", version, "namespaces", len(namespaces))
	return nil
}

// Version returns the cached wiki software version, or "" before
// EnsureSiteInfo.
func (c *Client) Version() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.version
}

// Namespace resolves a namespace id from the cached table.
func (c *Client) Namespace(id int) (entities.Namespace, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.namespaces == nil {
		return entities.Namespace{}, errors.New("site info not loaded")
	}
	ns, ok := c.namespaces[id]
	if !ok {
		return entities.Namespace{}, fmt.Errorf("unknown namespace id %d", id)
	}
	return ns, nil
}

// NewPage builds a page reference in the given namespace.
func (c *Client) NewPage(ns int, title string) (entities.Page, error) {
	namespace, err := c.Namespace(ns)
	if err != nil {
		return entities.Page{}, err
	}
	return entities.Page{Namespace: namespace, Title: title}, nil
}

// get performs one rate-limited API request and decodes the JSON response.
func (c *Client) get(ctx context.Context, params url.Values, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("waiting for rate limiter: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.apiURL+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("calling api: %w", err)
	}
	defer resp.Body.Close()

	c.logger.Debug("api request", "action", params.Get("action"), "list", params.Get("list"),
		"status", resp.StatusCode, "elapsed", time.Since(start))

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("api returned status %d", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding api response: %w", err)
	}
	return nil
}
