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
	"github.com/bytedance/sonic"
)

// videoTimeMap translates a time range into the videoage filter, in minutes.
var videoTimeMap = map[TimeRange]int{
	TimeRangeDay:   60 * 24,
	TimeRangeWeek:  60 * 24 * 7,
	TimeRangeMonth: 60 * 24 * 30,
	TimeRangeYear:  60 * 24 * 365,
}

// videoMetadata is the JSON blob Bing embeds in each video tile's vrhm
// attribute.
type videoMetadata struct {
	Duration string `json:"du"`
	MediaURL string `json:"murl"`
	Title    string `json:"vt"`
}

// BuildVideosRequest assembles a Bing-Videos request, e.g.
// https://www.bing.com/videos/asyncv2?q=foo&async=content&first=1&count=35
func BuildVideosRequest(params *SearchParams, traits *TraitTable) (*Request, error) {
	if err := params.validate(); err != nil {
		return nil, err
	}

	query := url.Values{}
	query.Set("q", params.Query)
	query.Set("async", "content")
	// stick to the default of 35 videos per page to keep the count simple
	query.Set("first", strconv.Itoa((params.page()-1)*35+1))
	query.Set("count", "35")

	headers := make(map[string]string)
	traits.applyLocale(params.Locale, query, headers)

	// time range, example for one week (10080 minutes):
	// '&qft= filterui:videoage-lt10080' '&form=VRFLTR'
	if minutes, ok := videoTimeMap[params.TimeRange]; ok {
		query.Set("form", "VRFLTR")
		query.Set("qft", " filterui:videoage-lt"+strconv.Itoa(minutes))
	}

	return &Request{
		URL:     videoSearchURL + "?" + query.Encode(),
		Headers: headers,
	}, nil
}

// ParseVideosResponse extracts normalized results from a Bing-Videos async
// page. A tile is only emitted when its embedded JSON blob parses; a
// malformed blob skips that tile without aborting the rest.
func ParseVideosResponse(body []byte) ([]*Result, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, NewSearchError("failed to parse videos response", ErrInvalidResponse)
	}

	results := make([]*Result, 0)

	doc.Find("div.dg_u div[id*='mc_vtvc_video']").Each(func(_ int, item *goquery.Selection) {
		raw, ok := item.Find("div.vrhdata").First().Attr("vrhm")
		if !ok {
			return
		}

		var meta videoMetadata
		if err := sonic.Unmarshal([]byte(raw), &meta); err != nil {
			return
		}

		r, ok := newResult(meta.MediaURL, meta.Title)
		if !ok {
			return
		}

		var info []string
		item.Find("div.mc_vtvc_meta_block span").Each(func(_ int, span *goquery.Selection) {
			if text := cleanText(span.Text()); text != "" {
				info = append(info, text)
			}
		})
		r.Content = meta.Duration
		if len(info) > 0 {
			r.Content = meta.Duration + " - " + strings.Join(info, " - ")
		}

		if src, ok := item.Find("div[class*='mc_vtvc_th'] img").First().Attr("src"); ok {
			r.Thumbnail = src
		}

		r.Template = "videos.html"
		results = append(results, r)
	})

	return results, nil
}
