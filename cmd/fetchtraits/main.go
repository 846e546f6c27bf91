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

// fetchtraits rebuilds the Bing locale→market trait table by crawling the
// provider's region-selection page. It is an offline, administrative step;
// nothing at search time performs this crawl.
package main

import (
	"context"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/cloudwego/eino-ext/components/tool/bingscrape/bingcore"
)

var (
	output  string
	news    bool
	timeout time.Duration
)

var rootCmd = &cobra.Command{
	Use:   "fetchtraits",
	Short: "Rebuild the Bing locale→market trait table",
	Long: `fetchtraits crawls Bing's region-selection page once and writes the
locale→market table as JSON. Run it when Bing's region list changes and ship
the output next to your service config; the search tools load it at startup.`,
	RunE: run,
}

func init() {
	rootCmd.Flags().StringVarP(&output, "output", "o", "traits.json", "file to write the trait table to")
	rootCmd.Flags().BoolVar(&news, "news", false, "apply the news-specific market fixups")
	rootCmd.Flags().DurationVar(&timeout, "timeout", 5*time.Second, "crawl request timeout")
}

func run(cmd *cobra.Command, _ []string) error {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	cfg := &bingcore.TraitFetchConfig{Timeout: timeout}

	fetch := bingcore.FetchTraits
	if news {
		fetch = bingcore.FetchNewsTraits
	}

	table, warnings, err := fetch(cmd.Context(), cfg)
	if err != nil {
		log.Error().Err(err).Msg("trait crawl failed")
		return err
	}

	for _, w := range warnings {
		log.Warn().Msg(w)
	}

	data, err := table.Encode()
	if err != nil {
		log.Error().Err(err).Msg("failed to encode trait table")
		return err
	}

	if err := os.WriteFile(output, data, 0o644); err != nil {
		log.Error().Err(err).Str("output", output).Msg("failed to write trait table")
		return err
	}

	log.Info().Str("output", output).Int("regions", table.Len()).Int("warnings", len(warnings)).Msg("trait table written")
	return nil
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
