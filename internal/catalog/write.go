package catalog

import (
	"context"
	"fmt"

	"github.com/jongheekang/LensTools/internal/cosmo"
	"github.com/jongheekang/LensTools/internal/lensing"
)

// WriteRun persists a completed spectrum computation and the spec that
// produced it. The run row and all spectrum rows are written in one
// transaction: a run is either fully in the catalog or absent.
//
// Writes are idempotent on the run token — re-writing an existing token is
// silently skipped, matrix rows included.
func (s *Store) WriteRun(ctx context.Context, res *lensing.Result, spec cosmo.Spec) error {
	record, err := ParamRecord(spec)
	if err != nil {
		return fmt.Errorf("write run: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("write run: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx, `
		INSERT INTO runs (token, tomo, nzbin, nl, nz, params)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(token) DO NOTHING
	`,
		res.Token,
		res.Mode.String(),
		res.Nzbin,
		res.Matrix.Rows,
		res.Matrix.Cols,
		string(record),
	)
	if err != nil {
		return fmt.Errorf("write run: %w", err)
	}
	if n, err := result.RowsAffected(); err == nil && n == 0 {
		// Token already present: idempotent no-op.
		return nil
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO spectra (run_token, l, col, ell, value)
		VALUES (?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("write run: %w", err)
	}
	defer stmt.Close()

	for l := 0; l < res.Matrix.Rows; l++ {
		for b := 0; b < res.Matrix.Cols; b++ {
			if _, err := stmt.ExecContext(ctx,
				res.Token, l, b, res.Multipoles[l], res.Matrix.At(l, b)); err != nil {
				return fmt.Errorf("write run: spectrum entry (%d,%d): %w", l, b, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("write run: %w", err)
	}
	return nil
}
