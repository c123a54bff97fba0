// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pubmed queries the NCBI E-utilities API: esearch for PMIDs
// matching a query, efetch for article metadata. Requests are paced to
// NCBI's published limits and retried on transient failures.
package pubmed

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/pdiddy/pharma-papers/internal/httputil"
	"github.com/pdiddy/pharma-papers/internal/logging"
	"github.com/pdiddy/pharma-papers/pkg/types"
)

// E-utilities endpoints. Declared as vars so tests can substitute an
// httptest server.
var (
	esearchAPIBase = "https://eutils.ncbi.nlm.nih.gov/entrez/eutils/esearch.fcgi"
	efetchAPIBase  = "https://eutils.ncbi.nlm.nih.gov/entrez/eutils/efetch.fcgi"
)

const (
	// toolName identifies this client to NCBI via the "tool" parameter.
	toolName = "pharma-papers"

	defaultUserAgent = "pharma-papers/0.1"

	// NCBI allows 3 requests per second without an API key, 10 with one.
	keylessRate = 3
	keyedRate   = 10

	// maxRetMax is the retmax ceiling esearch enforces.
	maxRetMax = 10000

	defaultBatchSize = 50

	// DefaultMaxResults bounds a search when the caller does not say.
	DefaultMaxResults = 100

	// DefaultTimeout is the default HTTP request timeout.
	DefaultTimeout = 30 * time.Second
)

// Client is a rate-limited client for the PubMed E-utilities API.
type Client struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	cfg        types.FetchConfig
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithLimiter sets a custom rate limiter (for tests).
func WithLimiter(l *rate.Limiter) ClientOption {
	return func(c *Client) {
		c.limiter = l
	}
}

// NewClient creates a PubMed client. Zero-valued config fields fall back to
// defaults; the request rate follows NCBI policy for keyless and keyed use.
func NewClient(cfg types.FetchConfig, opts ...ClientOption) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = defaultUserAgent
	}
	if cfg.MaxResults <= 0 {
		cfg.MaxResults = DefaultMaxResults
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = defaultBatchSize
	}

	rps := keylessRate
	if cfg.APIKey != "" {
		rps = keyedRate
	}

	c := &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		limiter:    rate.NewLimiter(rate.Limit(rps), 1),
		cfg:        cfg,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Search queries esearch for PMIDs matching query, sorted by relevance.
// An empty query returns ErrEmptyQuery; a query matching nothing returns an
// empty list and no error.
func (c *Client) Search(ctx context.Context, query string) ([]string, error) {
	if strings.TrimSpace(query) == "" {
		return nil, ErrEmptyQuery
	}

	retmax := c.cfg.MaxResults
	if retmax > maxRetMax {
		retmax = maxRetMax
	}

	params := url.Values{
		"db":      {"pubmed"},
		"term":    {query},
		"retmax":  {strconv.Itoa(retmax)},
		"sort":    {"relevance"},
		"retmode": {"json"},
	}
	c.identify(params)

	body, err := c.get(ctx, esearchAPIBase, params, "esearch")
	if err != nil {
		return nil, err
	}

	var sr esearchResponse
	if err := json.Unmarshal(body, &sr); err != nil {
		return nil, fmt.Errorf("parsing esearch response: %w", err)
	}

	logging.S.Debugw("esearch complete",
		"query", query,
		"count", sr.Result.Count,
		"returned", len(sr.Result.IDList),
		"translation", sr.Result.QueryTranslation)
	return sr.Result.IDList, nil
}

// FetchDetails retrieves article metadata for the given PMIDs via efetch,
// in batches, writing per-batch progress to w. Results come back in request
// order.
func (c *Client) FetchDetails(ctx context.Context, ids []string, w io.Writer) ([]types.Paper, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	papers := make([]types.Paper, 0, len(ids))
	for start := 0; start < len(ids); start += c.cfg.BatchSize {
		end := start + c.cfg.BatchSize
		if end > len(ids) {
			end = len(ids)
		}
		batch := ids[start:end]
		fmt.Fprintf(w, "fetching: articles %d-%d of %d\n", start+1, end, len(ids))

		params := url.Values{
			"db":      {"pubmed"},
			"id":      {strings.Join(batch, ",")},
			"retmode": {"xml"},
		}
		c.identify(params)

		body, err := c.get(ctx, efetchAPIBase, params, "efetch")
		if err != nil {
			return nil, fmt.Errorf("fetching articles %d-%d: %w", start+1, end, err)
		}

		got, err := ParseArticleSet(bytes.NewReader(body))
		if err != nil {
			return nil, err
		}
		papers = append(papers, got...)
	}

	logging.S.Debugw("efetch complete", "requested", len(ids), "parsed", len(papers))
	return papers, nil
}

// FetchAll searches for query and fetches metadata for every match: the
// whole retrieval pipeline in one call.
func (c *Client) FetchAll(ctx context.Context, query string, w io.Writer) ([]types.Paper, error) {
	ids, err := c.Search(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("searching PubMed: %w", err)
	}
	if len(ids) == 0 {
		return nil, nil
	}
	fmt.Fprintf(w, "found: %d articles\n", len(ids))
	return c.FetchDetails(ctx, ids, w)
}

// identify adds the NCBI identification parameters: tool always, email and
// api_key when configured.
func (c *Client) identify(params url.Values) {
	params.Set("tool", toolName)
	if c.cfg.Email != "" {
		params.Set("email", c.cfg.Email)
	}
	if c.cfg.APIKey != "" {
		params.Set("api_key", c.cfg.APIKey)
	}
}

// get performs one paced GET against an E-utilities endpoint and returns the
// response body. Non-200 responses map to the package error taxonomy.
func (c *Client) get(ctx context.Context, base string, params url.Values, op string) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, base+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("creating %s request: %w", op, err)
	}
	req.Header.Set("User-Agent", c.cfg.UserAgent)

	resp, err := httputil.DoWithRetry(ctx, c.httpClient, req, 0)
	if err != nil {
		return nil, fmt.Errorf("%s request: %w", op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("%s: %w", op, ErrRateLimited)
	}
	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 200))
		return nil, &APIError{StatusCode: resp.StatusCode, Op: op, Message: strings.TrimSpace(string(msg))}
	}

	return io.ReadAll(resp.Body)
}

// E-utilities esearch JSON structures.
type esearchResponse struct {
	Result esearchResult `json:"esearchresult"`
}

type esearchResult struct {
	Count            string   `json:"count"`
	IDList           []string `json:"idlist"`
	QueryTranslation string   `json:"querytranslation"`
}
