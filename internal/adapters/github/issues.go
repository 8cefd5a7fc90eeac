package github

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	perr "papersync/internal/platform/errors"
)

const perPage = 100

// ListIssues returns every issue in the repository carrying labelFilter
// state may be open, closed, or all. Pagination is followed to the end
func (c *Client) ListIssues(ctx context.Context, state string, labelFilter ...string) ([]Issue, error) {
	if state == "" {
		state = "all"
	}
	var out []Issue
	for page := 1; ; page++ {
		q := url.Values{}
		q.Set("state", state)
		q.Set("per_page", fmt.Sprintf("%d", perPage))
		q.Set("page", fmt.Sprintf("%d", page))
		if len(labelFilter) > 0 {
			q.Set("labels", strings.Join(labelFilter, ","))
		}
		path := fmt.Sprintf("/repos/%s/issues?%s", c.opts.Repository, q.Encode())

		resp, err := c.do(ctx, http.MethodGet, path, nil)
		if err != nil {
			return nil, perr.WithOp(err, "list_issues")
		}
		var batch []Issue
		if err := c.decodeInto(resp, &batch); err != nil {
			return nil, perr.WithOp(err, "list_issues")
		}
		out = append(out, batch...)
		if len(batch) < perPage {
			return out, nil
		}
	}
}

// CreateIssue opens a new issue with the given title, body, and labels
func (c *Client) CreateIssue(ctx context.Context, title, body string, labels []string) (Issue, error) {
	path := fmt.Sprintf("/repos/%s/issues", c.opts.Repository)
	payload := struct {
		Title  string   `json:"title"`
		Body   string   `json:"body"`
		Labels []string `json:"labels,omitempty"`
	}{Title: title, Body: body, Labels: labels}

	resp, err := c.do(ctx, http.MethodPost, path, payload)
	if err != nil {
		return Issue{}, perr.WithOp(err, "create_issue")
	}
	var out Issue
	if err := c.decodeInto(resp, &out); err != nil {
		return Issue{}, perr.WithOp(err, "create_issue")
	}
	return out, nil
}

// SetLabels replaces the full label set on an issue
func (c *Client) SetLabels(ctx context.Context, number int, labels []string) error {
	path := fmt.Sprintf("/repos/%s/issues/%d/labels", c.opts.Repository, number)
	payload := struct {
		Labels []string `json:"labels"`
	}{Labels: labels}

	resp, err := c.do(ctx, http.MethodPut, path, payload)
	if err != nil {
		return perr.WithOp(err, "set_labels")
	}
	return drainAndClose(resp.Body)
}

// AddComment appends a comment to an issue
// fails with a not found error when the issue number is unknown
func (c *Client) AddComment(ctx context.Context, number int, body string) error {
	path := fmt.Sprintf("/repos/%s/issues/%d/comments", c.opts.Repository, number)
	payload := struct {
		Body string `json:"body"`
	}{Body: body}

	resp, err := c.do(ctx, http.MethodPost, path, payload)
	if err != nil {
		return perr.WithOp(err, "add_comment")
	}
	return drainAndClose(resp.Body)
}

// EnsureLabel creates a label if it does not exist yet
// the tracker answers 422 for duplicates which counts as success here
func (c *Client) EnsureLabel(ctx context.Context, name, color, description string) error {
	path := fmt.Sprintf("/repos/%s/labels", c.opts.Repository)
	payload := Label{Name: name, Color: color, Description: description}

	resp, err := c.do(ctx, http.MethodPost, path, payload)
	if err != nil {
		if perr.IsCode(err, perr.ErrorCodeConflict) {
			// already exists
			return nil
		}
		return perr.WithOp(err, "ensure_label")
	}
	return drainAndClose(resp.Body)
}
