package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jongheekang/LensTools/internal/cosmo"
	"github.com/jongheekang/LensTools/internal/lensing"
)

// ErrRunNotFound is returned when no run exists for a token.
var ErrRunNotFound = errors.New("catalog: run not found")

// RunInfo summarizes a catalogued run.
type RunInfo struct {
	Token  string
	Mode   string
	Nzbin  int
	Rows   int
	Cols   int
	Params string // canonical JSON parameter record
}

// ReadRun reconstructs a catalogued spectrum run. Spectrum rows are read
// in (multipole index, column) order, so the rebuilt matrix is laid out
// exactly as the dispatcher produced it.
func (s *Store) ReadRun(ctx context.Context, token string) (*lensing.Result, error) {
	var (
		tomoName string
		nzbin    int
		nl, nz   int
	)
	err := s.db.QueryRowContext(ctx, `
		SELECT tomo, nzbin, nl, nz FROM runs WHERE token = ?
	`, token).Scan(&tomoName, &nzbin, &nl, &nz)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRunNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("read run: %w", err)
	}

	modeValue, err := cosmo.Lookup(cosmo.CategoryTomography, tomoName)
	if err != nil {
		return nil, fmt.Errorf("read run: stored tomography mode: %w", err)
	}

	matrix, err := lensing.NewMatrix(nl, nz)
	if err != nil {
		return nil, fmt.Errorf("read run: %w", err)
	}
	multipoles := make([]float64, nl)

	rows, err := s.db.QueryContext(ctx, `
		SELECT l, col, ell, value FROM spectra
		WHERE run_token = ?
		ORDER BY l ASC, col ASC
	`, token)
	if err != nil {
		return nil, fmt.Errorf("read run: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			l, col     int
			ell, value float64
		)
		if err := rows.Scan(&l, &col, &ell, &value); err != nil {
			return nil, fmt.Errorf("read run: %w", err)
		}
		if l < 0 || l >= nl || col < 0 || col >= nz {
			return nil, fmt.Errorf("read run: spectrum entry (%d,%d) outside %dx%d matrix", l, col, nl, nz)
		}
		multipoles[l] = ell
		matrix.Set(l, col, value)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read run: %w", err)
	}

	return &lensing.Result{
		Token:      token,
		Mode:       cosmo.TomoMode(modeValue),
		Nzbin:      nzbin,
		Multipoles: multipoles,
		Matrix:     matrix,
	}, nil
}

// ListRuns returns all catalogued runs ordered by token. Tokens are
// UUIDv7, so this is creation order.
func (s *Store) ListRuns(ctx context.Context) ([]RunInfo, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT token, tomo, nzbin, nl, nz, params FROM runs
		ORDER BY token ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var infos []RunInfo
	for rows.Next() {
		var info RunInfo
		if err := rows.Scan(&info.Token, &info.Mode, &info.Nzbin, &info.Rows, &info.Cols, &info.Params); err != nil {
			return nil, fmt.Errorf("list runs: %w", err)
		}
		infos = append(infos, info)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	return infos, nil
}
