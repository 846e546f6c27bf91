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
	"crypto/md5"
	"fmt"
	"net/url"
	"strconv"
)

// Endpoint variables, overridable in tests.
var (
	baseURL        = "https://www.bing.com"
	webSearchURL   = "https://www.bing.com/search"
	newsSearchURL  = "https://www.bing.com/news/infinitescrollajax"
	videoSearchURL = "https://www.bing.com/videos/asyncv2"
	regionPageURL  = "https://www.bing.com/account/general"
)

// SafeSearch represents the Bing adult-content filter level.
type SafeSearch int

const (
	// SafeSearchOff disables filtering of explicit content
	SafeSearchOff SafeSearch = 0
	// SafeSearchModerate enables moderate filtering of explicit content
	SafeSearchModerate SafeSearch = 1
	// SafeSearchStrict enables strict filtering of explicit content
	SafeSearchStrict SafeSearch = 2
)

// safeSearchMap translates a SafeSearch level into Bing's adlt parameter.
var safeSearchMap = map[SafeSearch]string{
	SafeSearchOff:      "off",
	SafeSearchModerate: "moderate",
	SafeSearchStrict:   "strict",
}

// TimeRange limits results to a publication window.
type TimeRange string

const (
	// TimeRangeAll includes results from all time periods
	TimeRangeAll TimeRange = ""
	// TimeRangeDay limits results to the past day
	TimeRangeDay TimeRange = "day"
	// TimeRangeWeek limits results to the past week
	TimeRangeWeek TimeRange = "week"
	// TimeRangeMonth limits results to the past month
	TimeRangeMonth TimeRange = "month"
	// TimeRangeYear limits results to the past year
	TimeRangeYear TimeRange = "year"
)

// SearchParams configures a single Bing search.
//
// Example usage:
//
//	params := &SearchParams{
//		Query:      "golang tutorials",   // Required
//		Page:       1,                    // Optional, defaults to 1
//		SafeSearch: SafeSearchModerate,   // Optional, defaults to Off
//		TimeRange:  TimeRangeWeek,        // Optional, defaults to All
//		Locale:     "de-DE",              // Optional, resolved through the TraitTable
//	}
type SearchParams struct {
	// Query is the search term or phrase
	Query string `json:"query"`

	// Page specifies which page of results to return, starting from 1.
	// The web endpoint ignores it (see BuildWebRequest).
	Page int `json:"page"`

	// SafeSearch controls filtering of explicit content
	SafeSearch SafeSearch `json:"safe_search"`

	// TimeRange limits results to a specific time period
	TimeRange TimeRange `json:"time_range"`

	// Locale is the canonical locale tag (e.g. "fr-FR") the caller wants
	// results for. Resolution to a Bing market code goes through the
	// TraitTable; unknown tags simply omit the market restriction.
	Locale string `json:"locale"`

	// cacheKey is used internally for caching search results
	cacheKey string `json:"-"`
}

// NextPage returns a copy of the params with the page number incremented.
func (p *SearchParams) NextPage() *SearchParams {
	return &SearchParams{
		Query:      p.Query,
		Page:       p.page() + 1,
		SafeSearch: p.SafeSearch,
		TimeRange:  p.TimeRange,
		Locale:     p.Locale,
	}
}

// page normalizes the page number to be 1-based.
func (p *SearchParams) page() int {
	if p.Page < 1 {
		return 1
	}
	return p.Page
}

// validate checks if the search parameters are valid.
func (p *SearchParams) validate() error {
	if p == nil {
		return NewSearchError("search params cannot be nil", nil)
	}
	if p.Query == "" {
		return NewSearchError("search query cannot be empty", nil)
	}
	return nil
}

// getCacheKey generates a unique cache key for the search parameters.
// The vertical keeps web, news and video results apart.
func (p *SearchParams) getCacheKey(vertical string) string {
	v := url.Values{}
	v.Set("q", p.Query)
	v.Set("pg", strconv.Itoa(p.page()))
	v.Set("ss", strconv.Itoa(int(p.SafeSearch)))
	v.Set("tr", string(p.TimeRange))
	v.Set("l", p.Locale)

	hash := md5.Sum([]byte(v.Encode()))
	return fmt.Sprintf("%s_%x", vertical, hash)
}

// Request is a fully assembled provider request. It carries everything an
// external transport needs to perform the round trip.
type Request struct {
	// URL is the fully qualified request URL including the query string.
	URL string `json:"url"`

	// Headers holds per-request header overrides (Accept-Language in
	// particular, see AcceptLanguage).
	Headers map[string]string `json:"headers"`

	// AllowRedirects tells the transport to follow redirects. Bing
	// unconditionally redirects to a regional host in geoblocked regions,
	// so the web endpoint sets it.
	AllowRedirects bool `json:"allow_redirects"`
}

// Result is a normalized search result record. Order within a response is
// the provider's ranked order and is preserved.
type Result struct {
	// URL is the web address of the result
	URL string `json:"url"`

	// Title is the title of the result
	Title string `json:"title"`

	// Content is a brief snippet of the result, may be empty
	Content string `json:"content"`

	// Thumbnail is an absolute image URL, empty when the result has none
	Thumbnail string `json:"thumbnail,omitempty"`

	// Metadata carries source/author info for news results
	Metadata string `json:"metadata,omitempty"`

	// Template is a renderer hint ("videos.html" for video results)
	Template string `json:"template,omitempty"`

	// NumberOfResults is only set on the summary record appended after a
	// non-empty web parse, see IsSummary.
	NumberOfResults int `json:"number_of_results,omitempty"`
}

// IsSummary reports whether the record is the synthetic result-count record
// the web parser appends. Summary records have no URL or title and must not
// be rendered like ordinary results.
func (r *Result) IsSummary() bool {
	return r.URL == "" && r.Title == "" && r.NumberOfResults > 0
}

// newResult constructs a validated result record. Records without a
// destination URL are never emitted; web and news parsers additionally
// require a title before calling this.
func newResult(rawURL, title string) (*Result, bool) {
	if rawURL == "" {
		return nil, false
	}
	return &Result{URL: rawURL, Title: title}, true
}
