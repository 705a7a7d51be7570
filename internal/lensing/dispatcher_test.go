package lensing

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jongheekang/LensTools/internal/cosmo"
	"github.com/jongheekang/LensTools/internal/testutil"
)

// call records one engine evaluation in order.
type call struct {
	ell  float64
	i, j int
}

// fakeEngine is a deterministic SpectrumEngine: the value encodes its
// arguments (ell*100 + i*10 + j) so packing order is fully observable.
// An optional failAt call triggers an engine error.
type fakeEngine struct {
	calls  []call
	model  *cosmo.Model
	failAt *call
}

func (e *fakeEngine) ShearPower(m *cosmo.Model, ell float64, i, j int) (float64, error) {
	e.model = m
	e.calls = append(e.calls, call{ell, i, j})
	if e.failAt != nil && *e.failAt == (call{ell, i, j}) {
		return 0, fmt.Errorf("lensing signal underflow at ell=%g bins=(%d,%d)", ell, i, j)
	}
	return ell*100 + float64(i)*10 + float64(j), nil
}

func specWithTomo(tomo string, nzbin int) cosmo.Spec {
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
			Tomography:    tomo,
			ReducedShear:  "none",
			QMagSize:      1.0,
		},
	}
	for b := 0; b < nzbin; b++ {
		z := 0.5 + 0.3*float64(b)
		spec.Nofz = append(spec.Nofz, cosmo.BinSpec{Shape: "single", Par: []float64{z, z}})
	}
	return spec
}

// TestComputeSpectrum_AutoOnly verifies shape and packing for auto-only
// tomography: column i holds pair (i,i).
func TestComputeSpectrum_AutoOnly(t *testing.T) {
	engine := &fakeEngine{}
	d := New(engine)

	res, err := d.ComputeSpectrum(specWithTomo("tomo_auto_only", 3), []float64{10, 20})
	require.NoError(t, err)

	m := res.Matrix
	assert.Equal(t, 2, m.Rows)
	assert.Equal(t, 3, m.Cols)
	for l, ell := range []float64{10, 20} {
		for i := 0; i < 3; i++ {
			assert.Equal(t, ell*100+float64(i)*10+float64(i), m.At(l, i))
		}
	}
}

// TestComputeSpectrum_CrossOnlySingleBin verifies the up-front
// precondition: nothing to compute, no engine call, configuration error.
func TestComputeSpectrum_CrossOnlySingleBin(t *testing.T) {
	engine := &fakeEngine{}
	d := New(engine)

	res, err := d.ComputeSpectrum(specWithTomo("tomo_cross_only", 1), []float64{10})
	require.Error(t, err)
	assert.Nil(t, res)
	assert.True(t, cosmo.IsConfigurationError(err))
	assert.Empty(t, engine.calls, "precondition failures must not reach the engine")
}

// TestComputeSpectrum_CrossOnlyThreeBins pins the column enumeration
// (0,1), (0,2), (1,2).
func TestComputeSpectrum_CrossOnlyThreeBins(t *testing.T) {
	engine := &fakeEngine{}
	d := New(engine)

	res, err := d.ComputeSpectrum(specWithTomo("tomo_cross_only", 3), []float64{10})
	require.NoError(t, err)

	m := res.Matrix
	require.Equal(t, 3, m.Cols)
	assert.Equal(t, []float64{1001, 1002, 1012}, m.Row(0))
	assert.Equal(t, []call{{10, 0, 1}, {10, 0, 2}, {10, 1, 2}}, engine.calls)
}

// TestComputeSpectrum_AllTwoBins pins the column enumeration
// (0,0), (0,1), (1,1).
func TestComputeSpectrum_AllTwoBins(t *testing.T) {
	engine := &fakeEngine{}
	d := New(engine)

	res, err := d.ComputeSpectrum(specWithTomo("tomo_all", 2), []float64{10})
	require.NoError(t, err)

	assert.Equal(t, []float64{1000, 1001, 1011}, res.Matrix.Row(0))
	assert.Equal(t, []call{{10, 0, 0}, {10, 0, 1}, {10, 1, 1}}, engine.calls)
}

// TestComputeSpectrum_EngineErrorAborts verifies fail-fast propagation: no
// evaluation after the failing (multipole, pair), a COMPUTATION_FAILED
// error carrying the engine diagnostic, and no partial result.
func TestComputeSpectrum_EngineErrorAborts(t *testing.T) {
	engine := &fakeEngine{failAt: &call{20, 0, 1}}
	d := New(engine)

	res, err := d.ComputeSpectrum(specWithTomo("tomo_all", 2), []float64{10, 20, 30})
	require.Error(t, err)
	assert.Nil(t, res)
	assert.True(t, cosmo.IsComputationError(err))
	assert.Contains(t, err.Error(), "lensing signal underflow")

	// Row 0 fully evaluated (3 pairs), row 1 stopped at its second pair.
	want := []call{
		{10, 0, 0}, {10, 0, 1}, {10, 1, 1},
		{20, 0, 0}, {20, 0, 1},
	}
	assert.Equal(t, want, engine.calls)
}

// TestComputeSpectrum_UnsupportedSetting verifies that vocabulary failures
// surface before any computation.
func TestComputeSpectrum_UnsupportedSetting(t *testing.T) {
	engine := &fakeEngine{}
	d := New(engine)

	spec := specWithTomo("tomo_all", 2)
	spec.Settings.Nonlinear = "bogus"

	_, err := d.ComputeSpectrum(spec, []float64{10})
	require.Error(t, err)
	assert.True(t, cosmo.IsUnsupportedSetting(err))
	assert.Empty(t, engine.calls)
}

// TestComputeSpectrum_ReleasesModel verifies the model handle is released
// on the success path and on the computation-error path.
func TestComputeSpectrum_ReleasesModel(t *testing.T) {
	engine := &fakeEngine{}
	d := New(engine)

	_, err := d.ComputeSpectrum(specWithTomo("tomo_all", 2), []float64{10})
	require.NoError(t, err)
	require.NotNil(t, engine.model)
	assert.True(t, engine.model.Released())

	engine = &fakeEngine{failAt: &call{10, 0, 0}}
	d = New(engine)
	_, err = d.ComputeSpectrum(specWithTomo("tomo_all", 2), []float64{10})
	require.Error(t, err)
	require.NotNil(t, engine.model)
	assert.True(t, engine.model.Released())
}

// TestComputeSpectrum_EmptyMultipoles verifies the degenerate Ns = 0 call:
// an empty matrix, no engine calls, no error.
func TestComputeSpectrum_EmptyMultipoles(t *testing.T) {
	engine := &fakeEngine{}
	d := New(engine)

	res, err := d.ComputeSpectrum(specWithTomo("tomo_all", 2), nil)
	require.NoError(t, err)
	assert.Equal(t, 0, res.Matrix.Rows)
	assert.Equal(t, 3, res.Matrix.Cols)
	assert.Empty(t, engine.calls)
}

// TestComputeSpectrum_FixedToken verifies token generator injection.
func TestComputeSpectrum_FixedToken(t *testing.T) {
	engine := &fakeEngine{}
	d := New(engine, WithTokenGenerator(testutil.NewFixedGenerator("run-0001")))

	res, err := d.ComputeSpectrum(specWithTomo("tomo_auto_only", 1), []float64{10})
	require.NoError(t, err)
	assert.Equal(t, "run-0001", res.Token)
	assert.Equal(t, cosmo.TomoAutoOnly, res.Mode)
	assert.Equal(t, 1, res.Nzbin)
}
