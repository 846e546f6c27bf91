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

package bingscrape

import (
	"context"
	"fmt"
	"time"

	"github.com/cloudwego/eino-ext/components/tool/bingscrape/bingcore"
	"github.com/cloudwego/eino/components/tool"
	"github.com/cloudwego/eino/components/tool/utils"
)

// Config represents the Bing scrape tool configuration.
type Config struct {
	ToolName string `json:"tool_name"` // optional, default depends on the vertical
	ToolDesc string `json:"tool_desc"` // optional, default depends on the vertical

	// Locale is the canonical locale tag used to resolve the Bing market,
	// e.g. "de-DE". Optional, default: "" (no market restriction).
	Locale string `json:"locale"`

	// SafeSearch specifies the adult-content filter level.
	// Optional, default: bingcore.SafeSearchOff
	SafeSearch bingcore.SafeSearch `json:"safe_search"`

	// TimeRange limits results to a publication window. The web vertical
	// ignores it (the no-script endpoint does not filter by time).
	// Optional, default: bingcore.TimeRangeAll
	TimeRange bingcore.TimeRange `json:"time_range"`

	// MaxResults specifies the maximum number of results to return.
	// Optional, default: 10
	MaxResults int `json:"max_results"`

	// BingConfig holds the underlying client settings (headers, timeout,
	// proxy, cache, trait table).
	BingConfig *bingcore.Config `json:"bing_config"`
}

// NewTool creates a Bing web search tool instance.
func NewTool(ctx context.Context, config *Config) (tool.InvokableTool, error) {
	searcher, err := newSearcher(ctx, config, "bing_scrape_search", "search web for information by bing")
	if err != nil {
		return nil, fmt.Errorf("failed to create bing scrape tool: %w", err)
	}

	searchTool, err := utils.InferTool(searcher.config.ToolName, searcher.config.ToolDesc, searcher.Search)
	if err != nil {
		return nil, fmt.Errorf("failed to infer tool: %w", err)
	}

	return searchTool, nil
}

// validate validates the configuration and sets default values if not
// provided.
func (conf *Config) validate(defaultName, defaultDesc string) error {
	if conf == nil {
		return fmt.Errorf("config is nil")
	}

	if conf.ToolName == "" {
		conf.ToolName = defaultName
	}

	if conf.ToolDesc == "" {
		conf.ToolDesc = defaultDesc
	}

	if conf.MaxResults <= 0 {
		conf.MaxResults = 10
	}

	if conf.BingConfig == nil {
		conf.BingConfig = &bingcore.Config{}
	}

	if conf.BingConfig.Timeout == 0 {
		conf.BingConfig.Timeout = 30 * time.Second
	}

	return nil
}

// bingSearcher binds a validated config to a bingcore client.
type bingSearcher struct {
	config *Config
	client *bingcore.BingClient
}

func newSearcher(_ context.Context, config *Config, defaultName, defaultDesc string) (*bingSearcher, error) {
	if config == nil {
		config = &Config{}
	}

	if err := config.validate(defaultName, defaultDesc); err != nil {
		return nil, err
	}

	client, err := bingcore.New(config.BingConfig)
	if err != nil {
		return nil, err
	}

	return &bingSearcher{
		config: config,
		client: client,
	}, nil
}

func (s *bingSearcher) params(request *SearchRequest) *bingcore.SearchParams {
	return &bingcore.SearchParams{
		Query:      request.Query,
		Page:       request.Page,
		SafeSearch: s.config.SafeSearch,
		TimeRange:  s.config.TimeRange,
		Locale:     s.config.Locale,
	}
}

type SearchRequest struct {
	Query string `json:"query" jsonschema_description:"The query to search the web for"`
	Page  int    `json:"page" jsonschema_description:"The page number to search for, default: 1"`
}

type SearchResult struct {
	Title     string `json:"title" jsonschema_description:"The title of the search result"`
	Link      string `json:"link" jsonschema_description:"The link of the search result"`
	Content   string `json:"content" jsonschema_description:"The content snippet of the search result"`
	Thumbnail string `json:"thumbnail,omitempty" jsonschema_description:"The thumbnail image of the search result"`
	Metadata  string `json:"metadata,omitempty" jsonschema_description:"Source and author info of the search result"`
}

type SearchResponse struct {
	Results []*SearchResult `json:"results" jsonschema_description:"The results of the search"`

	// NumberOfResults is Bing's total result estimate, web search only.
	NumberOfResults int `json:"number_of_results,omitempty" jsonschema_description:"Bing's estimate of the total result count"`
}

// Search searches the web for information.
func (s *bingSearcher) Search(ctx context.Context, request *SearchRequest) (*SearchResponse, error) {
	records, err := s.client.Search(ctx, s.params(request))
	if err != nil {
		return nil, err
	}

	return s.buildResponse(records), nil
}

// buildResponse maps core records into the tool response, splitting off the
// summary record and applying the MaxResults limit.
func (s *bingSearcher) buildResponse(records []*bingcore.Result) *SearchResponse {
	response := &SearchResponse{
		Results: make([]*SearchResult, 0, len(records)),
	}

	for _, r := range records {
		if r.IsSummary() {
			response.NumberOfResults = r.NumberOfResults
			continue
		}
		if len(response.Results) >= s.config.MaxResults {
			continue
		}
		response.Results = append(response.Results, &SearchResult{
			Title:     r.Title,
			Link:      r.URL,
			Content:   r.Content,
			Thumbnail: r.Thumbnail,
			Metadata:  r.Metadata,
		})
	}

	return response
}
