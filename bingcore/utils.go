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
	"net/url"
	"regexp"
	"strings"
)

const clickTrackingPrefix = "https://www.bing.com/ck/a?"

var nonDigitRe = regexp.MustCompile(`[^0-9]`)

// decodeClickURL recovers the destination URL from Bing's click-tracking
// redirect form. The u parameter carries "a1" followed by the target encoded
// as base64url without padding. Anything unexpected (missing parameter,
// wrong prefix, bad encoding) leaves the href untouched rather than dropping
// the result.
func decodeClickURL(href string) string {
	if !strings.HasPrefix(href, clickTrackingPrefix) {
		return href
	}

	parsed, err := url.Parse(href)
	if err != nil {
		return href
	}

	u := parsed.Query().Get("u")
	if !strings.HasPrefix(u, "a1") {
		return href
	}

	decoded, err := base64.RawURLEncoding.DecodeString(strings.TrimRight(u[2:], "="))
	if err != nil {
		return href
	}

	return string(decoded)
}

// stripNonDigits removes everything but 0-9, used on the result-count banner.
func stripNonDigits(s string) string {
	return nonDigitRe.ReplaceAllString(s, "")
}

// absoluteThumbnail makes a thumbnail src absolute on the Bing origin.
// Already-absolute values pass through unchanged.
func absoluteThumbnail(src string) string {
	if src == "" || strings.HasPrefix(src, baseURL) {
		return src
	}
	return baseURL + "/" + strings.TrimPrefix(src, "/")
}

// cleanText collapses runs of whitespace the way rendered HTML would.
func cleanText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
