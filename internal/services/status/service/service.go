// Package service runs the status pipeline: changed sheet tuples become label
// swaps and appended comments on the matching issues
package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	gh "papersync/internal/adapters/github"
	"papersync/internal/core/labelslug"
	"papersync/internal/core/review"
	"papersync/internal/core/sheetcsv"
	perr "papersync/internal/platform/errors"
	"papersync/internal/platform/logger"
	"papersync/internal/services/status/domain"
)

// Config tunes a Service
type Config struct {
	// DryRun logs intended updates without touching the tracker or state
	DryRun bool
}

// Service implements domain.RunnerPort
type Service struct {
	sheet   domain.SheetPort
	tracker domain.TrackerPort
	repo    domain.StateRepo
	cfg     Config

	now      func() time.Time
	newRunID func() string
}

// New constructs the status service
func New(sheet domain.SheetPort, tracker domain.TrackerPort, repo domain.StateRepo, cfg Config) *Service {
	return &Service{
		sheet:    sheet,
		tracker:  tracker,
		repo:     repo,
		cfg:      cfg,
		now:      time.Now,
		newRunID: uuid.NewString,
	}
}

// Run executes one status pass
//
// Fetch, parse, and list failures abort the run with state untouched. A row
// whose issue is missing or whose tracker calls fail keeps its previous
// stored tuple, so the change fires again on the next scheduled run
func (s *Service) Run(ctx context.Context) (domain.Summary, error) {
	runID := s.newRunID()
	ctx = logger.WithRun(ctx, "", runID)
	log := logger.C(ctx)

	sum := domain.Summary{RunID: runID, DryRun: s.cfg.DryRun}

	raw, err := s.sheet.FetchCSV(ctx)
	if err != nil {
		return sum, err
	}
	rows := sheetcsv.Parse(raw)
	sum.Rows = len(rows)

	lastSeen, err := s.repo.LoadLastSeen()
	if err != nil {
		return sum, err
	}

	changed, updated := domain.Reconcile(rows, lastSeen)
	sum.Unchanged = len(rows) - len(changed)

	if len(changed) == 0 {
		log.Info().Int("rows", sum.Rows).Msg("status reconcile found no changes")
		if !s.cfg.DryRun {
			if err := s.repo.SaveLastSeen(updated); err != nil {
				return sum, err
			}
		}
		return sum, nil
	}

	issues, err := s.tracker.ListIssues(ctx, "all", review.ReviewLabel)
	if err != nil {
		return sum, err
	}
	byID := make(map[string]gh.Issue, len(issues))
	for _, is := range issues {
		if id, ok := review.PaperID(is.Title); ok {
			byID[id] = is
		}
	}

	log.Info().
		Int("rows", sum.Rows).
		Int("changed", len(changed)).
		Bool("dry_run", s.cfg.DryRun).
		Msg("status reconcile done")

	restore := func(id string) {
		if prev, had := lastSeen[id]; had {
			updated[id] = prev
		} else {
			delete(updated, id)
		}
	}

	for i, row := range changed {
		if s.cfg.DryRun {
			log.Info().Str("paper_id", row.PaperID).Str("status", row.Status).Msg("dry run would update issue")
			sum.Changed++
			continue
		}

		issue, ok := byID[row.PaperID]
		if !ok {
			log.Warn().Str("paper_id", row.PaperID).Msg("no issue matches row, update retried next run")
			restore(row.PaperID)
			sum.Missing++
			continue
		}

		uerr := s.updateIssue(ctx, issue, row)
		if uerr != nil {
			restore(row.PaperID)
			if perr.IsCode(uerr, perr.ErrorCodeUnauthorized) {
				// nothing downstream can succeed, flush what we have and bail
				for _, rest := range changed[i+1:] {
					restore(rest.PaperID)
				}
				if serr := s.repo.SaveLastSeen(updated); serr != nil {
					log.Error().Err(serr).Msg("state save failed during abort")
				}
				return sum, uerr
			}
			log.Error().Err(uerr).Str("paper_id", row.PaperID).Msg("issue update failed, row retried next run")
			sum.Failed++
			continue
		}

		log.Info().Str("paper_id", row.PaperID).Int("issue", issue.Number).Str("status", row.Status).Msg("issue updated")
		sum.Changed++
	}

	if !s.cfg.DryRun {
		if err := s.repo.SaveLastSeen(updated); err != nil {
			return sum, err
		}
	}
	return sum, nil
}

// updateIssue swaps the managed status label and appends the update comment
func (s *Service) updateIssue(ctx context.Context, issue gh.Issue, row domain.Row) error {
	labels := review.EnsureEssential(labelslug.Apply(issue.LabelNames(), row.Status))

	if slug := labelslug.Slug(row.Status); slug != "" {
		if err := s.tracker.EnsureLabel(ctx, labelslug.Prefix+slug, labelslug.Color(slug), labelslug.Description(slug)); err != nil {
			return err
		}
	}
	if err := s.tracker.SetLabels(ctx, issue.Number, labels); err != nil {
		return err
	}
	return s.tracker.AddComment(ctx, issue.Number, review.CommentBody(row.Status, row.Reviewer, row.Notes, s.now()))
}
