package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"rota-golang/internal/storage"
)

var ErrRunNotFound = errors.New("solution run not found")

// SaveSolutionRun stores the run header and its flat variable map in
// one transaction. A partially saved solution is worse than none, the
// composer would silently read zeros for the missing variables.
func (s *Storage) SaveSolutionRun(ctx context.Context, run storage.SolutionRun, variables map[string]float64) (int64, error) {
	const op = "storage.mysql.SaveSolutionRun"

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("%s: begin tx: %w", op, err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`INSERT INTO rota_solution_runs (year, month, num_personnel, num_sections, num_shifts)
         VALUES (?, ?, ?, ?, ?)`,
		run.Year, run.Month, run.NumPersonnel, run.NumSections, run.NumShifts,
	)
	if err != nil {
		return 0, fmt.Errorf("%s: insert run: %w", op, err)
	}

	runID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO rota_solution_vars (run_id, name, value) VALUES (?, ?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("%s: prepare vars: %w", op, err)
	}
	defer stmt.Close()

	for name, value := range variables {
		if _, err := stmt.ExecContext(ctx, runID, name, value); err != nil {
			return 0, fmt.Errorf("%s: insert var %s: %w", op, name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("%s: commit: %w", op, err)
	}

	return runID, nil
}

func (s *Storage) GetSolutionRun(ctx context.Context, runID int64) (*storage.SolutionRun, error) {
	const op = "storage.mysql.GetSolutionRun"

	var run storage.SolutionRun
	err := s.db.QueryRowContext(ctx,
		`SELECT id, year, month, num_personnel, num_sections, num_shifts, created_at
         FROM rota_solution_runs WHERE id = ?`, runID,
	).Scan(&run.ID, &run.Year, &run.Month, &run.NumPersonnel, &run.NumSections, &run.NumShifts, &run.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%s: %w", op, ErrRunNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &run, nil
}

// GetSolutionVariables returns the raw flat variable map of a run, as
// the solver produced it.
func (s *Storage) GetSolutionVariables(ctx context.Context, runID int64) (map[string]float64, error) {
	const op = "storage.mysql.GetSolutionVariables"

	rows, err := s.db.QueryContext(ctx,
		`SELECT name, value FROM rota_solution_vars WHERE run_id = ?`, runID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	variables := make(map[string]float64)
	for rows.Next() {
		var name string
		var value float64
		if err := rows.Scan(&name, &value); err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		variables[name] = value
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return variables, nil
}

func (s *Storage) ListSolutionRuns(ctx context.Context) ([]storage.SolutionRun, error) {
	const op = "storage.mysql.ListSolutionRuns"

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, year, month, num_personnel, num_sections, num_shifts, created_at
         FROM rota_solution_runs ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var runs []storage.SolutionRun
	for rows.Next() {
		var run storage.SolutionRun
		err := rows.Scan(&run.ID, &run.Year, &run.Month, &run.NumPersonnel,
			&run.NumSections, &run.NumShifts, &run.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return runs, nil
}
