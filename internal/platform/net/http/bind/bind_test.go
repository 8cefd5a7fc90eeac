package bind_test

import (
	stdhttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"

	perr "papersync/internal/platform/errors"
	"papersync/internal/platform/net/http/bind"
)

type runRequest struct {
	SheetID string `json:"sheet_id" validate:"required,min=4"`
	DryRun  bool   `json:"dry_run"`
}

func post(body string) *stdhttp.Request {
	return httptest.NewRequest(stdhttp.MethodPost, "/run", strings.NewReader(body))
}

func TestParseJSON_Valid(t *testing.T) {
	got, err := bind.ParseJSON[runRequest](post(`{"sheet_id":"1a2b3c","dry_run":true}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.SheetID != "1a2b3c" || !got.DryRun {
		t.Fatalf("parsed = %+v", got)
	}
}

func TestParseJSON_InvalidJSON(t *testing.T) {
	_, err := bind.ParseJSON[runRequest](post(`{"sheet_id":`))
	if !perr.IsCode(err, perr.ErrorCodeJSON) {
		t.Fatalf("want JSON error, got %v", err)
	}
}

func TestParseJSON_UnknownField(t *testing.T) {
	_, err := bind.ParseJSON[runRequest](post(`{"sheet_id":"1a2b3c","nope":1}`))
	if !perr.IsCode(err, perr.ErrorCodeJSON) {
		t.Fatalf("want JSON error for unknown field, got %v", err)
	}
}

func TestParseJSON_ValidationFailure(t *testing.T) {
	_, err := bind.ParseJSON[runRequest](post(`{"sheet_id":"x"}`))
	if !perr.IsCode(err, perr.ErrorCodeValidation) {
		t.Fatalf("want validation error, got %v", err)
	}
	// message uses the json tag name and the short min translation
	if !strings.Contains(err.Error(), "sheet_id") {
		t.Fatalf("message should name the json field, got %q", err.Error())
	}
}

func TestParseJSON_EmptyBody(t *testing.T) {
	_, err := bind.ParseJSON[runRequest](post(""))
	if !perr.IsCode(err, perr.ErrorCodeJSON) {
		t.Fatalf("want JSON error for empty POST body, got %v", err)
	}

	// GET tolerates an empty body
	req := httptest.NewRequest(stdhttp.MethodGet, "/run", strings.NewReader(""))
	if _, err := bind.ParseJSON[runRequest](req); err != nil {
		t.Fatalf("GET empty body should be tolerated, got %v", err)
	}
}

func TestParseJSON_TrailingData(t *testing.T) {
	_, err := bind.ParseJSON[runRequest](post(`{"sheet_id":"1a2b3c"} {"x":1}`))
	if !perr.IsCode(err, perr.ErrorCodeJSON) {
		t.Fatalf("want JSON error for trailing data, got %v", err)
	}
}
