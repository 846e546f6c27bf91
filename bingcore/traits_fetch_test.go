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
	"net/http"
	"net/http/httptest"
	"testing"
)

const regionPage = `<html><body><div id="region-section-content">
<div class="regionItem"><a href="/account/general?cc=clear">All regions</a></div>
<div class="regionItem"><a href="/account/general?cc=us">United States</a></div>
<div class="regionItem"><a href="/account/general?cc=hk">Hong Kong</a></div>
<div class="regionItem"><a href="/account/general?cc=tw">Taiwan</a></div>
<div class="regionItem"><a href="/account/general?cc=zz">Atlantis</a></div>
<div class="regionItem"><a href="/account/general">no cc param</a></div>
</div></body></html>`

func TestFetchTraits(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("User-Agent") == "" {
			t.Error("crawl request is missing a User-Agent")
		}
		w.Write([]byte(regionPage))
	}))
	defer server.Close()

	old := regionPageURL
	regionPageURL = server.URL
	defer func() { regionPageURL = old }()

	table, warnings, err := FetchTraits(context.Background(), nil)
	if err != nil {
		t.Fatalf("FetchTraits() error = %v", err)
	}
	if len(warnings) != 0 {
		t.Errorf("unexpected warnings: %v", warnings)
	}

	if table.allLocale != "clear" {
		t.Errorf("allLocale = %q, want the clear sentinel recorded", table.allLocale)
	}

	tests := []struct {
		locale string
		want   string
	}{
		{"en-US", "en-us"},
		{"es-US", "es-us"},
		// script subtag collapses, then the Hong Kong anomaly applies
		{"zh-HK", "en-hk"},
		{"en-HK", "en-hk"},
		{"zh-TW", "zh-tw"},
	}
	for _, tt := range tests {
		if got := table.ResolveMarket(tt.locale); got != tt.want {
			t.Errorf("ResolveMarket(%q) = %q, want %q", tt.locale, got, tt.want)
		}
	}

	// unknown country is silently skipped
	if table.Len() != len(tests) {
		t.Errorf("table has %d mappings, want %d", table.Len(), len(tests))
	}
}

func TestFetchTraitsHardFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	old := regionPageURL
	regionPageURL = server.URL
	defer func() { regionPageURL = old }()

	_, _, err := FetchTraits(context.Background(), nil)
	if err == nil {
		t.Fatal("expected a hard failure on non-success status")
	}
	if !IsTraitFetchErr(err) {
		t.Errorf("error %v is not a trait fetch error", err)
	}
}

func TestFetchNewsTraits(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(regionPage))
	}))
	defer server.Close()

	old := regionPageURL
	regionPageURL = server.URL
	defer func() { regionPageURL = old }()

	table, _, err := FetchNewsTraits(context.Background(), nil)
	if err != nil {
		t.Fatalf("FetchNewsTraits() error = %v", err)
	}
	if got := table.ResolveMarket("zh-CN"); got != "en-hk" {
		t.Errorf("news zh-CN market = %q, want en-hk", got)
	}
}
