/*
 * Copyright 2025 CloudWeGo Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package bingcore

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const defaultUserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

// BingClient glues the request builders and response parsers to an HTTP
// round trip. It performs exactly one attempt per call; retry and backoff
// belong to the transport layer above this package.
type BingClient struct {
	client  *http.Client
	headers map[string]string
	traits  *TraitTable
	cache   *cache
	config  *Config
}

// Config represents the Bing client configuration.
// All fields are optional and will use sensible defaults if not provided.
type Config struct {
	// Headers specifies custom HTTP headers to be sent with each request.
	// Common headers like "User-Agent" can be set here.
	// Example:
	//   Headers: map[string]string{
	//     "User-Agent": "MyApp/1.0",
	//   }
	Headers map[string]string `json:"headers"`

	// Timeout specifies the maximum duration for a single request.
	// Default is 30 seconds if not specified.
	// Example: 5 * time.Second
	Timeout time.Duration `json:"timeout"`

	// ProxyURL specifies the proxy server URL for all requests.
	// Supports HTTP, HTTPS, and SOCKS5 proxies.
	// Example values:
	//   - "http://proxy.example.com:8080"
	//   - "socks5://localhost:1080"
	ProxyURL string `json:"proxy_url"`

	// Cache enables in-memory caching of parsed results. Identical
	// requests return cached results until the entry expires.
	// Default: 0 (disabled)
	// Example: 5 * time.Minute
	Cache time.Duration `json:"cache"`

	// Traits is the locale→market table consulted on every request.
	// Default: DefaultTraits().
	Traits *TraitTable `json:"-"`
}

// New creates a new BingClient instance.
func New(config *Config) (*BingClient, error) {
	if config == nil {
		config = &Config{}
	}

	if config.Timeout == 0 {
		config.Timeout = 30 * time.Second
	}

	if config.Traits == nil {
		config.Traits = DefaultTraits()
	}

	c := &BingClient{
		client:  &http.Client{Timeout: config.Timeout},
		headers: config.Headers,
		traits:  config.Traits,
		config:  config,
	}

	if config.ProxyURL != "" {
		proxyURL, err := url.Parse(config.ProxyURL)
		if err != nil {
			return nil, fmt.Errorf("invalid proxy URL: %w", err)
		}

		// Validate proxy scheme
		switch proxyURL.Scheme {
		case "http", "https", "socks5":
			c.client.Transport = &http.Transport{
				Proxy: http.ProxyURL(proxyURL),
			}
		default:
			return nil, fmt.Errorf("unsupported proxy scheme: %s", proxyURL.Scheme)
		}
	}

	if config.Cache > 0 {
		c.cache = newCache(config.Cache)
	}

	return c, nil
}

// Traits returns the table the client resolves markets against.
func (b *BingClient) Traits() *TraitTable {
	return b.traits
}

// Search performs a Bing-Web search.
func (b *BingClient) Search(ctx context.Context, params *SearchParams) ([]*Result, error) {
	req, err := BuildWebRequest(params, b.traits)
	if err != nil {
		return nil, err
	}
	return b.do(ctx, "web", params, req, ParseWebResponse)
}

// News performs a Bing-News search.
func (b *BingClient) News(ctx context.Context, params *SearchParams) ([]*Result, error) {
	req, err := BuildNewsRequest(params, b.traits)
	if err != nil {
		return nil, err
	}
	return b.do(ctx, "news", params, req, ParseNewsResponse)
}

// Videos performs a Bing-Videos search.
func (b *BingClient) Videos(ctx context.Context, params *SearchParams) ([]*Result, error) {
	req, err := BuildVideosRequest(params, b.traits)
	if err != nil {
		return nil, err
	}
	return b.do(ctx, "videos", params, req, ParseVideosResponse)
}

// do performs the round trip for one built request and parses the body.
func (b *BingClient) do(ctx context.Context, vertical string, params *SearchParams, req *Request, parse func([]byte) ([]*Result, error)) ([]*Result, error) {
	if b.cache != nil {
		params.cacheKey = params.getCacheKey(vertical)
		if results, ok := b.cache.get(params.cacheKey); ok {
			return results, nil
		}
	}

	body, err := b.fetch(ctx, req)
	if err != nil {
		return nil, err
	}

	results, err := parse(body)
	if err != nil {
		return nil, err
	}

	if len(results) == 0 {
		return nil, ErrNoResults
	}

	if b.cache != nil && params.cacheKey != "" {
		b.cache.set(params.cacheKey, results)
	}

	return results, nil
}

// fetch executes one built Request. One attempt only, no retries.
func (b *BingClient) fetch(ctx context.Context, req *Request) ([]byte, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, req.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	for k, v := range b.headers {
		httpReq.Header.Set(k, v)
	}
	// per-request headers win over client defaults, the Accept-Language
	// override must match the mkt param
	for k, v := range req.Headers {
		httpReq.Header.Set(k, v)
	}

	if _, ok := httpReq.Header["User-Agent"]; !ok {
		httpReq.Header.Set("User-Agent", defaultUserAgent)
	}

	client := b.client
	if !req.AllowRedirects {
		clone := *b.client
		clone.CheckRedirect = func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		}
		client = &clone
	}

	resp, err := client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, ErrRateLimit
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, NewSearchError(fmt.Sprintf("unexpected status code: %d", resp.StatusCode), nil)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return body, nil
}
