// Package sheets fetches the published CSV export of a spreadsheet
package sheets

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	perr "papersync/internal/platform/errors"
	"papersync/internal/platform/logger"
)

const (
	baseURLDefault = "https://docs.google.com"
	defaultTimeout = 30 * time.Second
	maxBodyBytes   = 16 << 20
)

// Fetcher fetches the raw CSV text for one run
type Fetcher interface {
	FetchCSV(ctx context.Context) (string, error)
}

// HTTPFetcher fetches directly from the spreadsheet export endpoint
type HTTPFetcher struct {
	Client  *http.Client
	BaseURL string
	SheetID string
	GID     string
}

// NewHTTPFetcher creates a fetcher for the given sheet with a request timeout
func NewHTTPFetcher(sheetID, gid string, timeout time.Duration) *HTTPFetcher {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &HTTPFetcher{
		Client:  &http.Client{Timeout: timeout},
		BaseURL: baseURLDefault,
		SheetID: sheetID,
		GID:     gid,
	}
}

// FetchCSV GETs the CSV export and returns the body as text
// transport errors and non-200 statuses both surface as fetch errors
func (f *HTTPFetcher) FetchCSV(ctx context.Context) (string, error) {
	url := fmt.Sprintf("%s/spreadsheets/d/%s/export?format=csv", f.BaseURL, f.SheetID)
	if f.GID != "" {
		url += "&gid=" + f.GID
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", perr.Wrapf(err, perr.ErrorCodeFetch, "sheet request build failed")
	}

	start := time.Now()
	resp, err := f.Client.Do(req)
	if err != nil {
		return "", perr.Wrapf(err, perr.ErrorCodeFetch, "sheet fetch failed")
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			logger.Named("sheets").Error().Err(cerr).Msg("sheet close body failed")
		}
	}()

	logger.Named("sheets").Debug().
		Int("status", resp.StatusCode).
		Dur("latency", time.Since(start)).
		Msg("sheet http response")

	if resp.StatusCode != http.StatusOK {
		return "", perr.Fetchf("sheet fetch unexpected status %d", resp.StatusCode)
	}

	b, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return "", perr.Wrapf(err, perr.ErrorCodeFetch, "sheet body read failed")
	}
	return string(b), nil
}
