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

	"github.com/cloudwego/eino-ext/components/tool/bingscrape/bingcore"
	"github.com/cloudwego/eino/components/tool"
	"github.com/cloudwego/eino/components/tool/utils"
)

// NewNewsTool creates a Bing news search tool instance.
//
// Note that the news trait table differs from the web one: pass
// bingcore.DefaultNewsTraits() (or a FetchNewsTraits result) in
// Config.BingConfig.Traits to get the news-specific market fixups.
func NewNewsTool(ctx context.Context, config *Config) (tool.InvokableTool, error) {
	if config == nil {
		config = &Config{}
	}
	if config.BingConfig == nil {
		config.BingConfig = &bingcore.Config{}
	}
	if config.BingConfig.Traits == nil {
		config.BingConfig.Traits = bingcore.DefaultNewsTraits()
	}

	searcher, err := newSearcher(ctx, config, "bing_scrape_news", "search news for information by bing")
	if err != nil {
		return nil, fmt.Errorf("failed to create bing news tool: %w", err)
	}

	newsTool, err := utils.InferTool(searcher.config.ToolName, searcher.config.ToolDesc, searcher.News)
	if err != nil {
		return nil, fmt.Errorf("failed to infer tool: %w", err)
	}

	return newsTool, nil
}

// News searches Bing news for information.
func (s *bingSearcher) News(ctx context.Context, request *SearchRequest) (*SearchResponse, error) {
	records, err := s.client.News(ctx, s.params(request))
	if err != nil {
		return nil, err
	}

	return s.buildResponse(records), nil
}
