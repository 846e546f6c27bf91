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
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// newsTimeMap translates a time range into the qft interval filter. The
// string '4' means *last 4 hours*; it is used for day because the difference
// between *last day* and *last week* in the result list is just marginal.
// Bing news has no year interval, so year falls through to the month
// fallback.
var newsTimeMap = map[TimeRange]string{
	TimeRangeDay:   `interval="4"`,
	TimeRangeWeek:  `interval="7"`,
	TimeRangeMonth: `interval="9"`,
}

const newsTimeFallback = `interval="9"`

// BuildNewsRequest assembles a Bing-News request against the infinite-scroll
// ajax endpoint, e.g.
// https://www.bing.com/news/infinitescrollajax?q=london&first=1
//
// Paging works, with one provider quirk: requesting a page beyond the
// available results returns the last page's results again instead of an
// empty page. Callers must not read that as duplicates.
func BuildNewsRequest(params *SearchParams, traits *TraitTable) (*Request, error) {
	if err := params.validate(); err != nil {
		return nil, err
	}

	page := params.page() - 1

	query := url.Values{}
	query.Set("q", params.Query)
	query.Set("InfiniteScroll", "1")
	// stick to the default of 10 items per page to keep the count simple
	query.Set("first", strconv.Itoa(page*10+1))
	query.Set("SFX", strconv.Itoa(page))
	query.Set("form", "PTFTNR")

	headers := make(map[string]string)
	traits.applyLocale(params.Locale, query, headers)

	if params.TimeRange != TimeRangeAll {
		qft, ok := newsTimeMap[params.TimeRange]
		if !ok {
			qft = newsTimeFallback
		}
		query.Set("qft", qft)
	}

	return &Request{
		URL:     newsSearchURL + "?" + query.Encode(),
		Headers: headers,
	}, nil
}

// ParseNewsResponse extracts normalized results from a Bing-News ajax page.
func ParseNewsResponse(body []byte) ([]*Result, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, NewSearchError("failed to parse news response", ErrInvalidResponse)
	}

	results := make([]*Result, 0)

	doc.Find("div.newsitem").Each(func(_ int, item *goquery.Selection) {
		link := item.Find("a.title").First()
		href, _ := link.Attr("href")
		title := cleanText(link.Text())
		if href == "" || title == "" {
			return
		}

		r, ok := newResult(href, title)
		if !ok {
			return
		}
		r.Content = cleanText(item.Find("div.snippet").Text())

		var metadata []string
		if source := item.Find("div.source").First(); source.Length() > 0 {
			if label, ok := source.Find("span[aria-label]").First().Attr("aria-label"); ok {
				if label = strings.TrimSpace(label); label != "" {
					metadata = append(metadata, label)
				}
			}
			if author, ok := link.Attr("data-author"); ok {
				if author = strings.TrimSpace(author); author != "" {
					metadata = append(metadata, author)
				}
			}
		}
		r.Metadata = strings.Join(metadata, " | ")

		if src, ok := item.Find("a.imagelink img").First().Attr("src"); ok {
			r.Thumbnail = absoluteThumbnail(src)
		}

		results = append(results, r)
	})

	return results, nil
}

// applyNewsOverrides patches market codes not known by Bing News.
//
// The market code zh-cn exists in Bing, but Bing has no news category for
// that market. The Hong Kong market is used instead; even if this is not
// correct, it is better than having no hits at all, or sending queries Bing
// would flag as bot traffic.
func applyNewsOverrides(t *TraitTable) {
	t.regions["zh-CN"] = "en-hk"
}
