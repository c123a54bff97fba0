// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pubmed

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
)

// Common errors returned by the PubMed client.
var (
	// ErrEmptyQuery indicates a search with no query terms.
	ErrEmptyQuery = errors.New("query is empty")

	// ErrRateLimited indicates NCBI kept rejecting requests for pacing even
	// after backoff retries.
	ErrRateLimited = errors.New("PubMed rate limit exceeded")
)

// APIError represents a non-200 response from an E-utilities endpoint.
type APIError struct {
	StatusCode int
	Op         string // "esearch" or "efetch"
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("PubMed %s returned HTTP %d: %s", e.Op, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("PubMed %s returned HTTP %d", e.Op, e.StatusCode)
}

// IsTransient reports whether err is worth retrying later: rate limiting,
// a server-side failure, or a network timeout.
func IsTransient(err error) bool {
	if errors.Is(err, ErrRateLimited) || errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusTooManyRequests || apiErr.StatusCode >= 500
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}
	return false
}

// IsPermanent reports whether err cannot be fixed by retrying: an empty
// query, or a request E-utilities rejects outright (bad syntax, unknown
// PMIDs, URL too long).
func IsPermanent(err error) bool {
	if errors.Is(err, ErrEmptyQuery) {
		return true
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode >= 400 && apiErr.StatusCode < 500 &&
			apiErr.StatusCode != http.StatusTooManyRequests
	}
	return false
}
