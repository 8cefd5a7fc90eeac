package domain

import (
	"context"

	gh "papersync/internal/adapters/github"
)

// RunnerPort is the public port exposed by the module
type RunnerPort interface {
	Run(ctx context.Context) (Summary, error)
}

// SheetPort fetches the raw CSV snapshot for one run
type SheetPort interface {
	FetchCSV(ctx context.Context) (string, error)
}

// TrackerPort is the slice of the tracker client the monitor needs
type TrackerPort interface {
	ListIssues(ctx context.Context, state string, labelFilter ...string) ([]gh.Issue, error)
	CreateIssue(ctx context.Context, title, body string, labels []string) (gh.Issue, error)
}

// StateRepo persists the set of paper ids that already got an issue
type StateRepo interface {
	LoadProcessed() (map[string]bool, error)
	SaveProcessed(ids map[string]bool) error
}
