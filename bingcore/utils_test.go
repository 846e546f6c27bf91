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
	"encoding/base64"
	"testing"
)

func TestDecodeClickURL(t *testing.T) {
	encoded := base64.RawURLEncoding.EncodeToString([]byte("https://example.com/page"))

	tests := []struct {
		name string
		href string
		want string
	}{
		{
			name: "plain URL passes through",
			href: "https://example.com/direct",
			want: "https://example.com/direct",
		},
		{
			name: "tracking URL decodes",
			href: "https://www.bing.com/ck/a?!&&p=x&u=a1" + encoded,
			want: "https://example.com/page",
		},
		{
			name: "padded payload decodes",
			href: "https://www.bing.com/ck/a?u=a1" + encoded + "==",
			want: "https://example.com/page",
		},
		{
			name: "missing u parameter stays as-is",
			href: "https://www.bing.com/ck/a?!&&p=x",
			want: "https://www.bing.com/ck/a?!&&p=x",
		},
		{
			name: "unexpected u prefix stays as-is",
			href: "https://www.bing.com/ck/a?u=b2" + encoded,
			want: "https://www.bing.com/ck/a?u=b2" + encoded,
		},
		{
			name: "malformed base64 stays as-is",
			href: "https://www.bing.com/ck/a?u=a1%%%",
			want: "https://www.bing.com/ck/a?u=a1%%%",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := decodeClickURL(tt.href); got != tt.want {
				t.Errorf("decodeClickURL() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStripNonDigits(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"1,234 results", "1234"},
		{"Ungefähr 11.000.000 Ergebnisse", "11000000"},
		{"no digits", ""},
		{"", ""},
	}

	for _, tt := range tests {
		if got := stripNonDigits(tt.in); got != tt.want {
			t.Errorf("stripNonDigits(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestAbsoluteThumbnail(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"/th?id=abc", "https://www.bing.com/th?id=abc"},
		{"th?id=abc", "https://www.bing.com/th?id=abc"},
		{"https://www.bing.com/th?id=abc", "https://www.bing.com/th?id=abc"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := absoluteThumbnail(tt.in); got != tt.want {
			t.Errorf("absoluteThumbnail(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCleanText(t *testing.T) {
	if got := cleanText("  a \n\t b  "); got != "a b" {
		t.Errorf("cleanText() = %q", got)
	}
}
