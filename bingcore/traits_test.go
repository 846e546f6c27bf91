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
	"testing"
)

func TestResolveMarket(t *testing.T) {
	traits := DefaultTraits()

	tests := []struct {
		name   string
		table  *TraitTable
		locale string
		want   string
	}{
		{name: "empty locale", table: traits, locale: "", want: ""},
		{name: "clear sentinel", table: traits, locale: "clear", want: ""},
		{name: "unknown locale", table: traits, locale: "xx-XX", want: ""},
		{name: "known locale", table: traits, locale: "fr-FR", want: "fr-fr"},
		{name: "hong kong anomaly", table: traits, locale: "zh-HK", want: "en-hk"},
		{name: "nil table", table: nil, locale: "fr-FR", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.table.ResolveMarket(tt.locale); got != tt.want {
				t.Errorf("ResolveMarket(%q) = %q, want %q", tt.locale, got, tt.want)
			}
		})
	}
}

func TestAcceptLanguage(t *testing.T) {
	tests := []struct {
		market string
		want   string
	}{
		{market: "zh-tw", want: "zh-tw,zh;q=0.9"},
		{market: "de-de", want: "de-de,de;q=0.9"},
		{market: "en-hk", want: "en-hk,en;q=0.9"},
		{market: "", want: ""},
	}

	for _, tt := range tests {
		if got := AcceptLanguage(tt.market); got != tt.want {
			t.Errorf("AcceptLanguage(%q) = %q, want %q", tt.market, got, tt.want)
		}
	}
}

func TestTraitTableFirstMappingWins(t *testing.T) {
	table := NewTraitTable()

	if w := table.set("en-US", "en-us"); w != "" {
		t.Errorf("unexpected warning on first insert: %q", w)
	}
	if w := table.set("en-US", "en-us"); w != "" {
		t.Errorf("unexpected warning on identical insert: %q", w)
	}
	if w := table.set("en-US", "en-gb"); w == "" {
		t.Error("expected a warning on conflicting insert")
	}
	if got := table.ResolveMarket("en-US"); got != "en-us" {
		t.Errorf("ResolveMarket = %q, first mapping must win", got)
	}
}

func TestNewsTraitsOverride(t *testing.T) {
	if got := DefaultTraits().ResolveMarket("zh-CN"); got != "zh-cn" {
		t.Errorf("web zh-CN market = %q, want zh-cn", got)
	}
	// Bing has no news category for the zh-cn market, the Hong Kong market
	// is substituted
	if got := DefaultNewsTraits().ResolveMarket("zh-CN"); got != "en-hk" {
		t.Errorf("news zh-CN market = %q, want en-hk", got)
	}
}

func TestTraitTableEncodeDecode(t *testing.T) {
	table := NewTraitTable()
	table.set("de-DE", "de-de")
	table.allLocale = "clear"

	data, err := table.Encode()
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	decoded, err := DecodeTraitTable(data)
	if err != nil {
		t.Fatalf("DecodeTraitTable() error = %v", err)
	}
	if got := decoded.ResolveMarket("de-DE"); got != "de-de" {
		t.Errorf("decoded table lost mapping, got %q", got)
	}
	if decoded.allLocale != "clear" {
		t.Errorf("decoded allLocale = %q, want clear", decoded.allLocale)
	}

	if _, err := DecodeTraitTable([]byte("not json")); err == nil {
		t.Error("expected error decoding garbage")
	}
}
