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

// Package bingcore scrapes Bing's no-script web, news and video search
// endpoints without an API key.
//
// The package is split along a simple contract: request builders
// (BuildWebRequest, BuildNewsRequest, BuildVideosRequest) turn SearchParams
// plus a TraitTable into a ready-to-send Request, and response parsers
// (ParseWebResponse, ParseNewsResponse, ParseVideosResponse) turn a raw body
// into normalized Result records. Both halves are pure functions, so an
// external orchestrator with its own transport can use them directly.
// BingClient wires the two halves to net/http for callers that just want
// results.
//
// Example usage:
//
//	client, err := bingcore.New(&bingcore.Config{
//		Timeout: 10 * time.Second,
//		Cache:   5 * time.Minute,
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	results, err := client.Search(context.Background(), &bingcore.SearchParams{
//		Query:      "golang programming",
//		SafeSearch: bingcore.SafeSearchModerate,
//		Locale:     "en-US",
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	for _, r := range results {
//		if r.IsSummary() {
//			fmt.Printf("about %d results\n", r.NumberOfResults)
//			continue
//		}
//		fmt.Printf("%s\n%s\n%s\n\n", r.Title, r.URL, r.Content)
//	}
//
// The locale→market table ships with a builtin snapshot (DefaultTraits) and
// can be rebuilt offline with FetchTraits or the cmd/fetchtraits CLI.
package bingcore
