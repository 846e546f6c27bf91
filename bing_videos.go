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

	"github.com/cloudwego/eino/components/tool"
	"github.com/cloudwego/eino/components/tool/utils"
)

// NewVideosTool creates a Bing video search tool instance. Video results
// carry the duration and view/source metadata in Content; the renderer hint
// for them is "videos.html".
func NewVideosTool(ctx context.Context, config *Config) (tool.InvokableTool, error) {
	searcher, err := newSearcher(ctx, config, "bing_scrape_videos", "search videos for information by bing")
	if err != nil {
		return nil, fmt.Errorf("failed to create bing videos tool: %w", err)
	}

	videosTool, err := utils.InferTool(searcher.config.ToolName, searcher.config.ToolDesc, searcher.Videos)
	if err != nil {
		return nil, fmt.Errorf("failed to infer tool: %w", err)
	}

	return videosTool, nil
}

// Videos searches Bing videos for information.
func (s *bingSearcher) Videos(ctx context.Context, request *SearchRequest) (*SearchResponse, error) {
	records, err := s.client.Videos(ctx, s.params(request))
	if err != nil {
		return nil, err
	}

	return s.buildResponse(records), nil
}
