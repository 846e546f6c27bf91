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
	"fmt"
	"net/url"
	"strings"

	"github.com/bytedance/sonic"
)

// allLocaleSentinel is the region tag Bing uses for "no market restriction".
const allLocaleSentinel = "clear"

// TraitTable maps canonical locale tags (e.g. "de-DE") to Bing market codes
// (e.g. "de-de"). It is built offline by FetchTraits, loaded at process
// start, and read-only afterwards. Callers pass it explicitly to the request
// builders; there is no package-level table.
type TraitTable struct {
	regions   map[string]string
	allLocale string
}

// NewTraitTable returns an empty table.
func NewTraitTable() *TraitTable {
	return &TraitTable{regions: make(map[string]string)}
}

// set inserts a locale→market mapping, first mapping wins. It returns a
// warning message when the insert conflicts with an existing mapping.
func (t *TraitTable) set(locale, market string) string {
	if existing, ok := t.regions[locale]; ok {
		if existing != market {
			return fmt.Sprintf("conflicting market codes for %s: keeping %s, dropping %s", locale, existing, market)
		}
		return ""
	}
	t.regions[locale] = market
	return ""
}

// Len returns the number of locale→market mappings.
func (t *TraitTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.regions)
}

// ResolveMarket maps a locale tag to a Bing market code. It returns ""
// (emit no market restriction) for an empty tag, the "clear" sentinel, or a
// tag absent from the table. Lookups never fail hard: an unknown locale just
// means an unrestricted query.
func (t *TraitTable) ResolveMarket(locale string) string {
	if t == nil || locale == "" || locale == allLocaleSentinel {
		return ""
	}
	return t.regions[locale]
}

// AcceptLanguage derives the Accept-Language header value for a market code,
// e.g. "zh-tw,zh;q=0.9". The header deliberately replaces any multi-language
// preference list the caller might send: Bing returns nonsense when the mkt
// param and the Accept-Language header disagree. Returns "" for an empty
// market code.
func AcceptLanguage(market string) string {
	if market == "" {
		return ""
	}
	lang, _, _ := strings.Cut(market, "-")
	return fmt.Sprintf("%s,%s;q=0.9", market, lang)
}

// applyLocale resolves the locale against the table and, when a market code
// exists, adds the mkt parameter and the Accept-Language override. Shared by
// the web, news and video request builders.
func (t *TraitTable) applyLocale(locale string, query url.Values, headers map[string]string) {
	market := t.ResolveMarket(locale)
	if market == "" {
		return
	}
	query.Set("mkt", market)
	headers["Accept-Language"] = AcceptLanguage(market)
}

// traitTableJSON is the on-disk form written by cmd/fetchtraits.
type traitTableJSON struct {
	AllLocale string            `json:"all_locale,omitempty"`
	Regions   map[string]string `json:"regions"`
}

// Encode serializes the table to JSON.
func (t *TraitTable) Encode() ([]byte, error) {
	return sonic.MarshalIndent(&traitTableJSON{
		AllLocale: t.allLocale,
		Regions:   t.regions,
	}, "", "  ")
}

// DecodeTraitTable deserializes a table produced by Encode.
func DecodeTraitTable(data []byte) (*TraitTable, error) {
	var raw traitTableJSON
	if err := sonic.Unmarshal(data, &raw); err != nil {
		return nil, NewSearchError("failed to decode trait table", err)
	}
	t := &TraitTable{regions: raw.Regions, allLocale: raw.AllLocale}
	if t.regions == nil {
		t.regions = make(map[string]string)
	}
	return t, nil
}
