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
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/text/language"
)

// marketOverrides patches known provider inconsistencies in derived market
// codes. Not sure why, but at Microsoft en-hk is the market code for Hong
// Kong.
var marketOverrides = map[string]string{
	"zh-hk": "en-hk",
}

// traitFetchHeaders is the fixed browser-mimicking header block for the
// one-off region-page crawl. Search requests never use it.
var traitFetchHeaders = map[string]string{
	"Accept":                    "text/html,application/xhtml+xml,application/xml;q=0.9,image/webp,*/*;q=0.8",
	"Accept-Language":           "en-US;q=0.5,en;q=0.3",
	"DNT":                       "1",
	"Connection":                "keep-alive",
	"Upgrade-Insecure-Requests": "1",
	"Sec-GPC":                   "1",
	"Cache-Control":             "max-age=0",
}

// TraitFetchConfig configures the offline region crawl. All fields are
// optional.
type TraitFetchConfig struct {
	// Timeout bounds the single crawl request. Default: 5 seconds.
	Timeout time.Duration

	// UserAgent overrides the default browser User-Agent.
	UserAgent string

	// HTTPClient overrides the client used for the crawl, mainly for tests.
	HTTPClient *http.Client
}

// FetchTraits crawls Bing's region-selection page and builds the
// locale→market table. This is an offline, administrative operation; it is
// never on the search request path. A non-success response is a hard
// failure (ErrTraitFetch): a partially built table cannot be trusted.
//
// The returned warnings describe mappings that were skipped because they
// conflicted with an earlier one (first mapping wins).
func FetchTraits(ctx context.Context, cfg *TraitFetchConfig) (*TraitTable, []string, error) {
	if cfg == nil {
		cfg = &TraitFetchConfig{}
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 5 * time.Second
	}

	client := cfg.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: timeout}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, regionPageURL, nil)
	if err != nil {
		return nil, nil, NewSearchError("failed to create region page request", err)
	}

	for k, v := range traitFetchHeaders {
		req.Header.Set(k, v)
	}
	ua := cfg.UserAgent
	if ua == "" {
		ua = defaultUserAgent
	}
	req.Header.Set("User-Agent", ua)

	resp, err := client.Do(req)
	if err != nil {
		return nil, nil, NewSearchError("region page request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, nil, NewSearchError(fmt.Sprintf("region page returned status %d", resp.StatusCode), ErrTraitFetch)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, nil, NewSearchError("failed to parse region page", ErrTraitFetch)
	}

	table := NewTraitTable()
	var warnings []string

	doc.Find("div#region-section-content div.regionItem > a").Each(func(_ int, a *goquery.Selection) {
		href, _ := a.Attr("href")
		parsed, err := url.Parse(href)
		if err != nil {
			return
		}

		cc := parsed.Query().Get("cc")
		if cc == "" {
			return
		}
		if cc == allLocaleSentinel {
			table.allLocale = cc
			return
		}

		// add market codes from the official languages of the country
		for _, lang := range officialLanguages[cc] {
			langTag, err := language.Parse(lang)
			if err != nil {
				continue
			}
			base, _ := langTag.Base()
			langSub := base.String() // zh-Hant --> zh

			market := langSub + "-" + cc // zh-tw
			if override, ok := marketOverrides[market]; ok {
				market = override
			}

			// canonical locale tag, unknown combinations are silently
			// skipped
			locale, err := language.Parse(langSub + "-" + strings.ToUpper(cc))
			if err != nil {
				continue
			}

			if w := table.set(locale.String(), market); w != "" {
				warnings = append(warnings, w)
			}
		}
	})

	return table, warnings, nil
}

// FetchNewsTraits crawls the region page and applies the news-specific
// market fixups on top of the base table.
func FetchNewsTraits(ctx context.Context, cfg *TraitFetchConfig) (*TraitTable, []string, error) {
	table, warnings, err := FetchTraits(ctx, cfg)
	if err != nil {
		return nil, warnings, err
	}
	applyNewsOverrides(table)
	return table, warnings, nil
}
