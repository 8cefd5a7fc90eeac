// Package service runs the monitor pipeline: new sheet rows become new issues
package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"papersync/internal/core/review"
	"papersync/internal/core/sheetcsv"
	perr "papersync/internal/platform/errors"
	"papersync/internal/platform/logger"
	"papersync/internal/services/monitor/domain"
)

// Config tunes a Service
type Config struct {
	// DryRun logs intended creations without touching the tracker or state
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

// New constructs the monitor service
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

// Run executes one monitor pass
//
// Fetch, parse, and list failures abort the run with state untouched. A
// failed creation only costs that row: it stays unmarked and is retried on
// the next scheduled run. Auth rejection aborts immediately
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

	processed, err := s.repo.LoadProcessed()
	if err != nil {
		return sum, err
	}

	issues, err := s.tracker.ListIssues(ctx, "all", review.ReviewLabel)
	if err != nil {
		return sum, err
	}
	titles := make(map[string]bool, len(issues))
	for _, is := range issues {
		titles[is.Title] = true
	}

	toCreate, updated := domain.Reconcile(rows, processed, titles)
	sum.Skipped = len(rows) - len(toCreate)

	log.Info().
		Int("rows", sum.Rows).
		Int("to_create", len(toCreate)).
		Bool("dry_run", s.cfg.DryRun).
		Msg("monitor reconcile done")

	for i, row := range toCreate {
		if s.cfg.DryRun {
			log.Info().Str("paper_id", row.PaperID).Msg("dry run would create issue")
			sum.Created++
			continue
		}

		issue, cerr := s.tracker.CreateIssue(
			ctx,
			review.Title(row.PaperID),
			review.IssueBody(row.PaperID, s.now()),
			[]string{review.ReviewLabel, review.AutomatedLabel},
		)
		if cerr != nil {
			delete(updated, row.PaperID)
			if perr.IsCode(cerr, perr.ErrorCodeUnauthorized) {
				// nothing downstream can succeed, flush what we have and bail
				for _, rest := range toCreate[i+1:] {
					delete(updated, rest.PaperID)
				}
				if serr := s.repo.SaveProcessed(updated); serr != nil {
					log.Error().Err(serr).Msg("state save failed during abort")
				}
				return sum, cerr
			}
			log.Error().Err(cerr).Str("paper_id", row.PaperID).Msg("issue creation failed, row retried next run")
			sum.Failed++
			continue
		}

		log.Info().Str("paper_id", row.PaperID).Int("issue", issue.Number).Msg("issue created")
		sum.Created++
	}

	if !s.cfg.DryRun {
		if err := s.repo.SaveProcessed(updated); err != nil {
			return sum, err
		}
	}
	return sum, nil
}
