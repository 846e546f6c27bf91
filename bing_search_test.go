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
	"testing"

	"github.com/bytedance/mockey"
	"github.com/stretchr/testify/assert"

	"github.com/cloudwego/eino-ext/components/tool/bingscrape/bingcore"
)

func MockWebSearch() *mockey.Mocker {
	return mockey.Mock((*bingcore.BingClient).Search).To(func(ctx context.Context, params *bingcore.SearchParams) ([]*bingcore.Result, error) {
		if params == nil {
			return nil, fmt.Errorf("params is nil")
		}
		if params.Query == "" {
			return nil, fmt.Errorf("query is empty")
		}
		return []*bingcore.Result{
			{
				Title:   "test title",
				URL:     "https://example.com/1",
				Content: "test content",
			},
			{
				Title:   "test title 2",
				URL:     "https://example.com/2",
				Content: "test content 2",
			},
			{NumberOfResults: 1234},
		}, nil
	}).Build()
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  *Config
		wantErr bool
	}{
		{
			name:    "nil config",
			config:  nil,
			wantErr: true,
		},
		{
			name:    "empty config gets defaults",
			config:  &Config{},
			wantErr: false,
		},
		{
			name: "valid config",
			config: &Config{
				ToolName:   "custom_bing",
				ToolDesc:   "custom description",
				Locale:     "de-DE",
				SafeSearch: bingcore.SafeSearchStrict,
				MaxResults: 20,
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.validate("bing_scrape_search", "search web for information by bing")
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.NotEmpty(t, tt.config.ToolName)
			assert.NotEmpty(t, tt.config.ToolDesc)
			assert.Greater(t, tt.config.MaxResults, 0)
			assert.NotNil(t, tt.config.BingConfig)
		})
	}
}

func TestSearcherSearch(t *testing.T) {
	mockey.PatchConvey("search maps records and splits the summary", t, func() {
		defer MockWebSearch().UnPatch()

		searcher, err := newSearcher(context.Background(), &Config{MaxResults: 10}, "bing_scrape_search", "desc")
		assert.NoError(t, err)

		response, err := searcher.Search(context.Background(), &SearchRequest{Query: "golang", Page: 1})
		assert.NoError(t, err)
		assert.Len(t, response.Results, 2)
		assert.Equal(t, "test title", response.Results[0].Title)
		assert.Equal(t, "https://example.com/1", response.Results[0].Link)
		assert.Equal(t, 1234, response.NumberOfResults)
	})

	mockey.PatchConvey("max results truncates", t, func() {
		defer MockWebSearch().UnPatch()

		searcher, err := newSearcher(context.Background(), &Config{MaxResults: 1}, "bing_scrape_search", "desc")
		assert.NoError(t, err)

		response, err := searcher.Search(context.Background(), &SearchRequest{Query: "golang"})
		assert.NoError(t, err)
		assert.Len(t, response.Results, 1)
		// the summary record is not a result and never counts toward the limit
		assert.Equal(t, 1234, response.NumberOfResults)
	})
}

func TestNewTool(t *testing.T) {
	ctx := context.Background()

	searchTool, err := NewTool(ctx, &Config{})
	assert.NoError(t, err)

	info, err := searchTool.Info(ctx)
	assert.NoError(t, err)
	assert.Equal(t, "bing_scrape_search", info.Name)

	newsTool, err := NewNewsTool(ctx, &Config{})
	assert.NoError(t, err)
	info, err = newsTool.Info(ctx)
	assert.NoError(t, err)
	assert.Equal(t, "bing_scrape_news", info.Name)

	videosTool, err := NewVideosTool(ctx, &Config{})
	assert.NoError(t, err)
	info, err = videosTool.Info(ctx)
	assert.NoError(t, err)
	assert.Equal(t, "bing_scrape_videos", info.Name)
}
