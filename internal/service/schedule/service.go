package schedule

import (
	"context"
	"fmt"
	"golang.org/x/sync/errgroup"
	"rota-golang/internal/config"
	"rota-golang/internal/solver"
	"rota-golang/internal/storage"
)

type SolutionStorage interface {
	GetSolutionRun(ctx context.Context, runID int64) (*storage.SolutionRun, error)
	GetSolutionVariables(ctx context.Context, runID int64) (map[string]float64, error)
}

// Service loads a stored solver run and composes it into a roster.
type Service struct {
	storage  SolutionStorage
	defaults config.RosterDefaults
}

func NewService(storage SolutionStorage, defaults config.RosterDefaults) *Service {
	return &Service{storage: storage, defaults: defaults}
}

// BuildRoster fetches the run header and its variables in parallel,
// then composes the grid. Runs saved without dimensions fall back to
// the configured defaults.
func (s *Service) BuildRoster(ctx context.Context, runID int64) (*Roster, *storage.SolutionRun, error) {
	const op = "service.schedule.BuildRoster"

	var run *storage.SolutionRun
	var raw map[string]float64

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		run, err = s.storage.GetSolutionRun(gCtx, runID)
		return err
	})
	g.Go(func() error {
		var err error
		raw, err = s.storage.GetSolutionVariables(gCtx, runID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}

	cfg := Config{
		Year:         run.Year,
		Month:        run.Month,
		NumPersonnel: run.NumPersonnel,
		NumSections:  run.NumSections,
		NumShifts:    run.NumShifts,
	}
	if cfg.NumPersonnel == 0 {
		cfg.NumPersonnel = s.defaults.NumPersonnel
	}
	if cfg.NumSections == 0 {
		cfg.NumSections = s.defaults.NumSections
	}
	if cfg.NumShifts == 0 {
		cfg.NumShifts = s.defaults.NumShifts
	}

	compositor, err := NewCompositor(solver.Decode(raw), cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}

	return compositor.Compose(), run, nil
}
