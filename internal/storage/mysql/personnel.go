package mysql

import (
	"context"
	"fmt"
	"rota-golang/internal/storage"
)

func (s *Storage) GetAllPersonnel(ctx context.Context) ([]storage.Personnel, error) {
	const op = "storage.mysql.GetAllPersonnel"

	rows, err := s.db.QueryContext(ctx,
		`SELECT idx, label, is_active FROM rota_personnel ORDER BY idx ASC`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var personnel []storage.Personnel
	for rows.Next() {
		var p storage.Personnel
		if err := rows.Scan(&p.Index, &p.Label, &p.Active); err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		personnel = append(personnel, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return personnel, nil
}

// GetPersonnelLabels returns active labels keyed by person index for
// the sheet's merged personnel column.
func (s *Storage) GetPersonnelLabels(ctx context.Context) (map[int]string, error) {
	const op = "storage.mysql.GetPersonnelLabels"

	rows, err := s.db.QueryContext(ctx,
		`SELECT idx, label FROM rota_personnel WHERE is_active = TRUE`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	labels := make(map[int]string)
	for rows.Next() {
		var idx int
		var label string
		if err := rows.Scan(&idx, &label); err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		labels[idx] = label
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return labels, nil
}

func (s *Storage) UpsertPersonnel(ctx context.Context, p storage.Personnel) error {
	const op = "storage.mysql.UpsertPersonnel"

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO rota_personnel (idx, label, is_active) VALUES (?, ?, ?)
         ON DUPLICATE KEY UPDATE label = VALUES(label), is_active = VALUES(is_active)`,
		p.Index, p.Label, p.Active,
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
