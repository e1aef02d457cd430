// Package country resolves federation countries to flag assets using the
// restcountries API, with a built-in fallback table so the bracket never
// renders without flags when the upstream service is down.
package country

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"
)

const defaultBaseURL = "https://restcountries.com/v3.1"

// Flag is a resolved country flag.
type Flag struct {
	Code    string `json:"code"`
	Name    string `json:"name"`
	FlagURL string `json:"flagUrl"`
	FlagAlt string `json:"flagAlt"`
	Source  string `json:"source"`
}

// Flag sources.
const (
	SourceLive     = "live"
	SourceFallback = "fallback"
)

// Client looks up flags over HTTP and memoizes results. Lookups are keyed by
// the lower-cased query, so repeated bracket renders hit the cache.
type Client struct {
	httpClient *http.Client
	baseURL    string

	mu    sync.RWMutex
	cache map[string]Flag
}

// NewClient builds a Client. A nil httpClient gets a default with a short
// timeout so a slow upstream cannot stall request handling.
func NewClient(httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 5 * time.Second}
	}
	return &Client{
		httpClient: httpClient,
		baseURL:    defaultBaseURL,
		cache:      make(map[string]Flag),
	}
}

type restCountry struct {
	Name struct {
		Common   string `json:"common"`
		Official string `json:"official"`
	} `json:"name"`
	CCA2  string `json:"cca2"`
	Flags struct {
		PNG string `json:"png"`
		SVG string `json:"svg"`
		Alt string `json:"alt"`
	} `json:"flags"`
}

func (c *Client) cached(key string) (Flag, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	flag, ok := c.cache[key]
	return flag, ok
}

func (c *Client) store(key string, flag Flag) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cache[key] = flag
}

func (c *Client) fetch(ctx context.Context, query string) (Flag, error) {
	endpoint := fmt.Sprintf("%s/name/%s?fields=name,cca2,flags", c.baseURL, url.PathEscape(query))
	if len(query) == 2 {
		endpoint = fmt.Sprintf("%s/alpha/%s?fields=name,cca2,flags", c.baseURL, url.PathEscape(query))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return Flag{}, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Flag{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Flag{}, fmt.Errorf("restcountries returned status %d", resp.StatusCode)
	}

	var countries []restCountry
	if err := json.NewDecoder(resp.Body).Decode(&countries); err != nil {
		return Flag{}, err
	}
	if len(countries) == 0 {
		return Flag{}, fmt.Errorf("no country matched %q", query)
	}

	match := countries[0]
	name := match.Name.Common
	if name == "" {
		name = match.Name.Official
	}
	if name == "" {
		name = match.CCA2
	}

	flagURL := match.Flags.SVG
	if flagURL == "" {
		flagURL = match.Flags.PNG
	}
	if flagURL == "" {
		return Flag{}, fmt.Errorf("no flag asset for %q", query)
	}

	alt := match.Flags.Alt
	if alt == "" {
		alt = name + " flag"
	}

	return Flag{
		Code:    match.CCA2,
		Name:    name,
		FlagURL: flagURL,
		FlagAlt: alt,
		Source:  SourceLive,
	}, nil
}

// Lookup resolves a country name or ISO alpha-2 code to a flag. It consults
// the cache, then the live API, then the built-in fallback table.
func (c *Client) Lookup(ctx context.Context, query string) (Flag, error) {
	key := strings.ToLower(strings.TrimSpace(query))
	if key == "" {
		return Flag{}, fmt.Errorf("empty country query")
	}

	if flag, ok := c.cached(key); ok {
		return flag, nil
	}

	flag, err := c.fetch(ctx, key)
	if err != nil {
		fallback, ok := fallbackFlag(key)
		if !ok {
			return Flag{}, err
		}
		flag = fallback
	}

	c.store(key, flag)
	return flag, nil
}
