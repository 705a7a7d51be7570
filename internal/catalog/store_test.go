package catalog

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jongheekang/LensTools/internal/cosmo"
	"github.com/jongheekang/LensTools/internal/lensing"
	"github.com/jongheekang/LensTools/internal/testutil"
)

// valueEngine is a deterministic spectrum stand-in for catalog tests.
type valueEngine struct{}

func (valueEngine) ShearPower(_ *cosmo.Model, ell float64, i, j int) (float64, error) {
	return ell*100 + float64(i)*10 + float64(j), nil
}

func testSpec(nzbin int) cosmo.Spec {
	spec := cosmo.Spec{
		Params: cosmo.Params{
			OmegaM: 0.26, OmegaDE: 0.74, W0: -1.0, H100: 0.72,
			OmegaB: 0.046, NEff: 3.04, Sigma8: 0.8, NS: 0.96,
		},
		Settings: cosmo.Settings{
			Nonlinear:     "smith03",
			Transfer:      "eisenhu",
			Growth:        "growth_de",
			DarkEnergy:    "linder",
			Normalization: "norm_s8",
			Tomography:    "tomo_all",
			ReducedShear:  "none",
			QMagSize:      1.0,
		},
	}
	for b := 0; b < nzbin; b++ {
		spec.Nofz = append(spec.Nofz, cosmo.BinSpec{Shape: "single", Par: []float64{0.6, 0.6}})
	}
	return spec
}

func computeResult(t *testing.T, token string, nzbin int, multipoles []float64) (*lensing.Result, cosmo.Spec) {
	t.Helper()
	spec := testSpec(nzbin)
	d := lensing.New(valueEngine{}, lensing.WithTokenGenerator(testutil.NewFixedGenerator(token)))
	res, err := d.ComputeSpectrum(spec, multipoles)
	require.NoError(t, err)
	return res, spec
}

func openStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "catalog.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

// TestOpen_Idempotent verifies Open can run twice against the same file.
func TestOpen_Idempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.db")

	s1, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s1.Close())

	s2, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s2.Close())
}

// TestWriteReadRun verifies a run round-trips: shape, multipoles, and
// every matrix entry.
func TestWriteReadRun(t *testing.T) {
	s := openStore(t)
	ctx := context.Background()

	res, spec := computeResult(t, "run-a", 2, []float64{10, 20, 30})
	require.NoError(t, s.WriteRun(ctx, res, spec))

	got, err := s.ReadRun(ctx, "run-a")
	require.NoError(t, err)

	assert.Equal(t, res.Token, got.Token)
	assert.Equal(t, res.Mode, got.Mode)
	assert.Equal(t, res.Nzbin, got.Nzbin)
	assert.Equal(t, res.Multipoles, got.Multipoles)
	assert.Equal(t, res.Matrix, got.Matrix)
}

// TestWriteRun_Idempotent verifies re-writing a token is a no-op rather
// than a duplicate or partial overwrite.
func TestWriteRun_Idempotent(t *testing.T) {
	s := openStore(t)
	ctx := context.Background()

	res, spec := computeResult(t, "run-a", 2, []float64{10})
	require.NoError(t, s.WriteRun(ctx, res, spec))
	require.NoError(t, s.WriteRun(ctx, res, spec))

	infos, err := s.ListRuns(ctx)
	require.NoError(t, err)
	require.Len(t, infos, 1)

	got, err := s.ReadRun(ctx, "run-a")
	require.NoError(t, err)
	assert.Equal(t, res.Matrix, got.Matrix)
}

// TestReadRun_NotFound verifies the sentinel for unknown tokens.
func TestReadRun_NotFound(t *testing.T) {
	s := openStore(t)

	_, err := s.ReadRun(context.Background(), "no-such-run")
	assert.ErrorIs(t, err, ErrRunNotFound)
}

// TestListRuns_OrderAndRecord verifies token-ordered listing and that the
// stored parameter record is the canonical serialization of the spec.
func TestListRuns_OrderAndRecord(t *testing.T) {
	s := openStore(t)
	ctx := context.Background()

	for _, token := range []string{"run-b", "run-a", "run-c"} {
		res, spec := computeResult(t, token, 1, []float64{10})
		require.NoError(t, s.WriteRun(ctx, res, spec))
	}

	infos, err := s.ListRuns(ctx)
	require.NoError(t, err)
	require.Len(t, infos, 3)
	assert.Equal(t, "run-a", infos[0].Token)
	assert.Equal(t, "run-b", infos[1].Token)
	assert.Equal(t, "run-c", infos[2].Token)

	record, err := ParamRecord(testSpec(1))
	require.NoError(t, err)
	for _, info := range infos {
		assert.Equal(t, string(record), info.Params)
		assert.Equal(t, "tomo_all", info.Mode)
		assert.Equal(t, 1, info.Nzbin)
		assert.Equal(t, 1, info.Rows)
		assert.Equal(t, 1, info.Cols)
	}
}

// TestWriteRun_ManyEntries exercises the transaction across a larger
// matrix.
func TestWriteRun_ManyEntries(t *testing.T) {
	s := openStore(t)
	ctx := context.Background()

	multipoles := make([]float64, 24)
	for i := range multipoles {
		multipoles[i] = float64(10 * (i + 1))
	}
	res, spec := computeResult(t, "run-big", 4, multipoles)
	require.Equal(t, 10, res.Matrix.Cols) // 4 bins, all pairs

	require.NoError(t, s.WriteRun(ctx, res, spec))

	got, err := s.ReadRun(ctx, "run-big")
	require.NoError(t, err)
	assert.Equal(t, res.Matrix, got.Matrix)
	assert.Equal(t, res.Multipoles, got.Multipoles)

	for l, ell := range multipoles {
		for b := 0; b < got.Matrix.Cols; b++ {
			i, j := lensing.ColumnPair(got.Mode, got.Nzbin, b)
			want := ell*100 + float64(i)*10 + float64(j)
			assert.Equal(t, want, got.Matrix.At(l, b), fmt.Sprintf("l=%d b=%d", l, b))
		}
	}
}
