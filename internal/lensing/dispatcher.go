package lensing

import (
	"log/slog"

	"github.com/jongheekang/LensTools/internal/cosmo"
)

// SpectrumEngine is the external shear power spectrum computation. Given a
// resolved model, a multipole, and a redshift bin pair it returns one
// spectrum value, or an error when the evaluation is unphysical for that
// model. The engine is treated as opaque; implementing it is out of scope
// here.
type SpectrumEngine interface {
	ShearPower(m *cosmo.Model, ell float64, i, j int) (float64, error)
}

// Result is a completed spectrum computation: the run token, the shape
// metadata the catalog needs, the sampled multipoles, and the filled
// matrix.
type Result struct {
	Token      string
	Mode       cosmo.TomoMode
	Nzbin      int
	Multipoles []float64
	Matrix     *Matrix
}

// Dispatcher drives the tomographic evaluation loop against a spectrum
// engine. It holds no per-computation state; every ComputeSpectrum call
// builds and releases its own model handle, so a Dispatcher may be reused
// across calls.
type Dispatcher struct {
	engine SpectrumEngine
	tokens RunTokenGenerator
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithTokenGenerator overrides the run token generator. Tests use
// testutil.FixedGenerator for deterministic tokens.
func WithTokenGenerator(g RunTokenGenerator) Option {
	return func(d *Dispatcher) {
		d.tokens = g
	}
}

// New creates a Dispatcher for the given engine.
func New(engine SpectrumEngine, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		engine: engine,
		tokens: UUIDv7Generator{},
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// ComputeSpectrum builds a model from spec, evaluates the shear power
// spectrum at every multipole for every bin pair selected by the model's
// tomography mode, and returns the packed result.
//
// The call fails before any engine evaluation when the request is
// structurally empty (tomo_cross_only with one bin). The first engine
// error aborts the loop: remaining entries are never evaluated, no partial
// result is returned, and the error surfaces as a COMPUTATION_FAILED model
// error carrying the engine diagnostic. The model handle is released on
// every exit path.
func (d *Dispatcher) ComputeSpectrum(spec cosmo.Spec, multipoles []float64) (*Result, error) {
	model, err := cosmo.NewModel(spec)
	if err != nil {
		return nil, err
	}
	defer model.Close()

	mode := model.Tomography
	nz := ColumnCount(mode, model.Nzbin)
	if mode == cosmo.TomoCrossOnly && nz == 0 {
		return nil, cosmo.NewConfigurationError(
			"nothing to compute: %s selected with only one redshift bin", mode)
	}

	out, err := NewMatrix(len(multipoles), nz)
	if err != nil {
		return nil, err
	}

	token := d.tokens.Generate()
	slog.Debug("spectrum computation starting",
		"run", token,
		"mode", mode.String(),
		"nzbin", model.Nzbin,
		"multipoles", len(multipoles),
		"columns", nz)

	pairs := Pairs(mode, model.Nzbin)
	for l, ell := range multipoles {
		for b, p := range pairs {
			v, err := d.engine.ShearPower(model, ell, p[0], p[1])
			if err != nil {
				slog.Error("spectrum computation aborted",
					"run", token,
					"multipole", ell,
					"bin_i", p[0],
					"bin_j", p[1],
					"error", err)
				return nil, cosmo.NewComputationError(err.Error())
			}
			out.Set(l, b, v)
		}
	}

	slog.Info("spectrum computation finished",
		"run", token,
		"rows", out.Rows,
		"columns", out.Cols)

	return &Result{
		Token:      token,
		Mode:       mode,
		Nzbin:      model.Nzbin,
		Multipoles: multipoles,
		Matrix:     out,
	}, nil
}
