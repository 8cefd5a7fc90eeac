// Package github provides a minimal GitHub REST v3 client for the sync pipelines
//
// The client deliberately performs no retries: a failed call surfaces
// immediately and the row it belonged to is retried on the next scheduled run
package github

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	perr "papersync/internal/platform/errors"
	"papersync/internal/platform/logger"
)

const (
	baseURLDefault = "https://api.github.com"
	defaultTimeout = 10 * time.Second
	defaultUA      = "papersync"
	maxBodyBytes   = 1 << 20
)

// Options configures the Client
type Options struct {
	BaseURL   string
	UserAgent string
	Timeout   time.Duration

	// Token authenticates every request. Empty means tokenless which is
	// very low quota so not recommended
	Token string

	// Repository is the owner/name pair all issue calls are scoped to
	Repository string
}

// Client is a minimal GitHub REST client scoped to a single repository
type Client struct {
	http *http.Client
	opts Options
	log  logger.Logger
	now  func() time.Time
}

// NewClient creates a new Client with sane defaults
func NewClient(o Options) *Client {
	if o.BaseURL == "" {
		o.BaseURL = baseURLDefault
	}
	if o.UserAgent == "" {
		o.UserAgent = defaultUA
	}
	if o.Timeout <= 0 {
		o.Timeout = defaultTimeout
	}
	return &Client{
		http: &http.Client{Timeout: o.Timeout},
		opts: o,
		log:  *logger.Named("github"),
		now:  time.Now,
	}
}

// Repository returns the owner/name pair the client is scoped to
func (c *Client) Repository() string { return c.opts.Repository }

// do issues one request with auth headers and maps the status to project errors
// body is JSON encoded when non-nil
func (c *Client) do(ctx context.Context, method, path string, body any) (*http.Response, error) {
	url := c.opts.BaseURL + path

	var payload io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, perr.Wrapf(err, perr.ErrorCodeJSON, "github encode body failed")
		}
		payload = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, payload)
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeUnknown, "github new request failed")
	}
	req.Header.Set("User-Agent", c.opts.UserAgent)
	req.Header.Set("Accept", "application/vnd.github+json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if tok := strings.TrimSpace(c.opts.Token); tok != "" {
		req.Header.Set("Authorization", "token "+tok)
	}

	start := c.now()
	resp, err := c.http.Do(req)
	lat := c.now().Sub(start)
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeUnavailable, "github do failed")
	}

	// Always log lightweight response metadata
	rem, reset, retryAfter := parseRateHeaders(resp.Header)
	c.log.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("latency", lat).
		Int("rate_remaining", rem).
		Time("rate_reset", reset).
		Int("retry_after_s", retryAfter).
		Msg("github http response")

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return resp, nil
	case resp.StatusCode == http.StatusUnauthorized:
		_ = drainAndClose(resp.Body)
		return nil, perr.Unauthorizedf("github auth rejected")
	case resp.StatusCode == http.StatusForbidden, resp.StatusCode == http.StatusTooManyRequests:
		_ = drainAndClose(resp.Body)
		if resp.StatusCode == http.StatusTooManyRequests || rem == 0 || retryAfter > 0 {
			return nil, perr.Newf(perr.ErrorCodeTooManyRequests, "github rate limited")
		}
		return nil, perr.Forbiddenf("github access denied")
	case resp.StatusCode == http.StatusNotFound:
		_ = drainAndClose(resp.Body)
		return nil, perr.NotFoundf("github resource missing %s", path)
	case resp.StatusCode == http.StatusUnprocessableEntity:
		tail, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		_ = resp.Body.Close()
		return nil, perr.Conflictf("github validation failed: %s", string(tail))
	case resp.StatusCode >= 500:
		_ = drainAndClose(resp.Body)
		return nil, perr.Unavailablef("github server error %d", resp.StatusCode)
	default:
		tail, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		_ = resp.Body.Close()
		return nil, perr.Newf(perr.ErrorCodeUnknown, "github unexpected status %d body %s", resp.StatusCode, string(tail))
	}
}

// decodeInto reads and decodes a JSON response body then closes it
func (c *Client) decodeInto(resp *http.Response, out any) error {
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			c.log.Error().Err(cerr).Msg("github close body failed")
		}
	}()
	b, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return perr.Wrapf(err, perr.ErrorCodeUnknown, "github read body failed")
	}
	if err := json.Unmarshal(b, out); err != nil {
		return perr.Wrapf(err, perr.ErrorCodeJSON, "github decode body failed")
	}
	return nil
}
