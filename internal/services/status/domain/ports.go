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

// TrackerPort is the slice of the tracker client the status pipeline needs
type TrackerPort interface {
	ListIssues(ctx context.Context, state string, labelFilter ...string) ([]gh.Issue, error)
	SetLabels(ctx context.Context, number int, labels []string) error
	AddComment(ctx context.Context, number int, body string) error
	EnsureLabel(ctx context.Context, name, color, description string) error
}

// StateRepo persists the last seen tuple per paper id
type StateRepo interface {
	LoadLastSeen() (map[string]Tuple, error)
	SaveLastSeen(map[string]Tuple) error
}
