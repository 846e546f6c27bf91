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
	"errors"
	"fmt"
)

// SearchError represents an error that occurred during a search operation.
// It wraps the original error and provides additional context.
type SearchError struct {
	Message string // Human readable error message
	Err     error  // Original error
}

func (e *SearchError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *SearchError) Unwrap() error {
	return e.Err
}

// NewSearchError creates a new SearchError with the given message and error.
func NewSearchError(message string, err error) error {
	return &SearchError{Message: message, Err: err}
}

// Common errors returned by the library
var (
	// ErrRateLimit is returned when Bing rate limits the request.
	// Retry/backoff is the caller's responsibility; this layer never retries.
	ErrRateLimit = &SearchError{Message: "rate limit exceeded"}

	// ErrNoResults is returned when the search yields no results.
	ErrNoResults = &SearchError{Message: "no results found"}

	// ErrInvalidResponse is returned when a response body cannot be parsed
	// at the document level. Individual malformed result items are dropped
	// silently instead.
	ErrInvalidResponse = &SearchError{Message: "invalid response from Bing"}

	// ErrTraitFetch is returned when the region-page crawl fails. A partial
	// trait table cannot be trusted, so this is always a hard failure.
	ErrTraitFetch = &SearchError{Message: "failed to fetch Bing region traits"}
)

// IsRateLimitErr checks if the error is a rate limit error.
func IsRateLimitErr(err error) bool {
	return errors.Is(err, ErrRateLimit)
}

// IsNoResultsErr checks if the error indicates no results were found.
//
// Example:
//
//	if IsNoResultsErr(err) {
//		fmt.Println("No results found, try different keywords")
//	}
func IsNoResultsErr(err error) bool {
	return errors.Is(err, ErrNoResults)
}

// IsInvalidResponseErr checks if the error is a document-level parse error.
func IsInvalidResponseErr(err error) bool {
	return errors.Is(err, ErrInvalidResponse)
}

// IsTraitFetchErr checks if the error came from the region-page crawl.
func IsTraitFetchErr(err error) bool {
	return errors.Is(err, ErrTraitFetch)
}
