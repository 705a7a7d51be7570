package cosmo

// Params holds the scalar cosmological parameters, in the argument order of
// the external computation library.
type Params struct {
	OmegaM  float64 // matter density
	OmegaDE float64 // dark-energy density
	W0      float64 // equation-of-state parameter
	W1      float64 // equation-of-state evolution parameter
	H100    float64 // Hubble rate in units of 100 km/s/Mpc
	OmegaB  float64 // baryon density
	OmegaNu float64 // massive-neutrino density
	NEff    float64 // effective number of relativistic species
	Sigma8  float64 // power spectrum normalization
	NS      float64 // scalar spectral index
}

// BinSpec describes one redshift bin: the name of its distribution shape
// and the shape parameters the external library expects for that shape.
type BinSpec struct {
	Shape string
	Par   []float64
}

// Settings carries the computation-mode names to be resolved against the
// closed vocabularies, plus the magnification-bias slope.
type Settings struct {
	Nonlinear     string
	Transfer      string
	Growth        string
	DarkEnergy    string
	Normalization string
	Tomography    string
	ReducedShear  string
	QMagSize      float64
}

// Spec is the unvalidated input to NewModel: parameters, settings names,
// and the per-bin redshift distribution. Loaders (CUE, YAML) produce a
// Spec; all vocabulary and shape validation happens in NewModel so there
// is a single enforcement point.
type Spec struct {
	Params   Params
	Settings Settings
	Nofz     []BinSpec
}

// Model is the resolved, immutable cosmological model handle. It stands in
// for the external library's native parameter object: built once per
// computation, read by the dispatcher loop, and released exactly once via
// Close on every exit path.
type Model struct {
	Params Params

	// Redshift distribution: bin count, per-bin shape, per-bin parameter
	// counts, and the flat parameter array, in the external library's
	// layout.
	Nzbin int
	Nofz  []Distribution
	Nnz   []int
	ParNz []float64

	Nonlinear     Nonlinear
	Transfer      Transfer
	Growth        Growth
	DarkEnergy    DarkEnergy
	Normalization Normalization
	Tomography    TomoMode
	ReducedShear  ReducedShear
	QMagSize      float64

	// Intrinsic alignment is accepted by the external library but not
	// exposed here; models always carry the disabled values.
	iaAmplitude float64

	released bool
}

// NewModel validates a Spec and resolves its settings names into a Model.
//
// Resolution order is fixed: per-bin distribution shapes first, then
// nonlinear, transfer, growth, dark energy, normalization, tomography,
// reduced shear. The first unresolvable name aborts construction; nothing
// built so far escapes.
func NewModel(spec Spec) (*Model, error) {
	nzbin := len(spec.Nofz)
	if nzbin < 1 {
		return nil, NewConfigurationError("at least one redshift bin is required, got %d", nzbin)
	}

	m := &Model{
		Params: spec.Params,
		Nzbin:  nzbin,
		Nofz:   make([]Distribution, nzbin),
		Nnz:    make([]int, nzbin),
	}

	for i, bin := range spec.Nofz {
		v, err := Lookup(CategoryDistribution, bin.Shape)
		if err != nil {
			return nil, err
		}
		m.Nofz[i] = Distribution(v)
		m.Nnz[i] = len(bin.Par)
		m.ParNz = append(m.ParNz, bin.Par...)
	}

	v, err := Lookup(CategoryNonlinear, spec.Settings.Nonlinear)
	if err != nil {
		return nil, err
	}
	m.Nonlinear = Nonlinear(v)

	if v, err = Lookup(CategoryTransfer, spec.Settings.Transfer); err != nil {
		return nil, err
	}
	m.Transfer = Transfer(v)

	if v, err = Lookup(CategoryGrowth, spec.Settings.Growth); err != nil {
		return nil, err
	}
	m.Growth = Growth(v)

	if v, err = Lookup(CategoryDarkEnergy, spec.Settings.DarkEnergy); err != nil {
		return nil, err
	}
	m.DarkEnergy = DarkEnergy(v)

	if v, err = Lookup(CategoryNormalization, spec.Settings.Normalization); err != nil {
		return nil, err
	}
	m.Normalization = Normalization(v)

	if v, err = Lookup(CategoryTomography, spec.Settings.Tomography); err != nil {
		return nil, err
	}
	m.Tomography = TomoMode(v)

	if v, err = Lookup(CategoryReducedShear, spec.Settings.ReducedShear); err != nil {
		return nil, err
	}
	m.ReducedShear = ReducedShear(v)

	m.QMagSize = spec.Settings.QMagSize

	return m, nil
}

// Close releases the model handle. It must be called exactly once; a
// second call returns ErrReleased.
func (m *Model) Close() error {
	if m.released {
		return ErrReleased
	}
	m.released = true
	return nil
}

// Released reports whether the handle has been released.
func (m *Model) Released() bool {
	return m.released
}
