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
	"bytes"
	"net/url"
	"strconv"

	"github.com/PuerkitoBio/goquery"
)

// BuildWebRequest assembles a Bing-Web request against the no-script search
// endpoint.
//
// Paging and time-range params are not supported: NoJS requests always
// receive page-1 results regardless of the first parameter and ignore
// time-range filters, so neither is ever emitted.
func BuildWebRequest(params *SearchParams, traits *TraitTable) (*Request, error) {
	if err := params.validate(); err != nil {
		return nil, err
	}

	query := url.Values{}
	query.Set("q", params.Query)

	adlt, ok := safeSearchMap[params.SafeSearch]
	if !ok {
		adlt = safeSearchMap[SafeSearchOff]
	}
	query.Set("adlt", adlt)

	headers := make(map[string]string)
	traits.applyLocale(params.Locale, query, headers)

	return &Request{
		URL:     webSearchURL + "?" + query.Encode(),
		Headers: headers,
		// in some regions where geoblocking is employed (e.g. China),
		// www.bing.com redirects to the regional version of Bing
		AllowRedirects: true,
	}, nil
}

// ParseWebResponse extracts normalized results from a Bing-Web HTML page.
// Items missing a link or title are dropped; when at least one result was
// found, a summary record carrying the total result count is appended (see
// Result.IsSummary).
func ParseWebResponse(body []byte) ([]*Result, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, NewSearchError("failed to parse web response", ErrInvalidResponse)
	}

	results := make([]*Result, 0)

	doc.Find("ol#b_results > li.b_algo").Each(func(_ int, item *goquery.Selection) {
		link := item.Find("h2 a").First()
		href, _ := link.Attr("href")
		title := cleanText(link.Text())
		if href == "" || title == "" {
			return
		}

		href = decodeClickURL(href)

		// remove decorative icons that Bing injects into <p> elements
		item.Find("p span.algoSlug_icon").Remove()
		content := cleanText(item.Find("p").Text())

		r, ok := newResult(href, title)
		if !ok {
			return
		}
		r.Content = content
		results = append(results, r)
	})

	if len(results) > 0 {
		count := stripNonDigits(doc.Find("span.sb_count").Text())
		if count != "" {
			if n, err := strconv.Atoi(count); err == nil {
				results = append(results, &Result{NumberOfResults: n})
			}
		}
	}

	return results, nil
}
