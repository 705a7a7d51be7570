package params

import (
	"fmt"
	"os"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"cuelang.org/go/cue/token"

	"github.com/jongheekang/LensTools/internal/cosmo"
)

// LoadError represents an error that occurred while loading a parameter
// file.
type LoadError struct {
	Field   string
	Message string
	Pos     token.Pos // CUE position if available
}

func (e *LoadError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s:%d:%d: %s: %s", e.Pos.Filename(), e.Pos.Line(), e.Pos.Column(), e.Field, e.Message)
	}
	if e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Message)
	}
	return e.Message
}

// LoadCUE reads and compiles a CUE cosmology definition file.
func LoadCUE(path string) (cosmo.Spec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return cosmo.Spec{}, &LoadError{Message: fmt.Sprintf("reading parameter file: %v", err)}
	}
	return CompileCUE(path, data)
}

// CompileCUE parses CUE source into a cosmo.Spec. Uses the CUE SDK's Go
// API directly (not a CLI subprocess). The document must carry a top-level
// "cosmology" struct; see the package comment for the expected shape.
func CompileCUE(filename string, src []byte) (cosmo.Spec, error) {
	ctx := cuecontext.New()
	v := ctx.CompileBytes(src, cue.Filename(filename))
	if err := v.Err(); err != nil {
		return cosmo.Spec{}, &LoadError{Message: err.Error(), Pos: v.Pos()}
	}

	root := v.LookupPath(cue.ParsePath("cosmology"))
	if !root.Exists() {
		return cosmo.Spec{}, &LoadError{Field: "cosmology", Message: "top-level cosmology struct is required", Pos: v.Pos()}
	}

	spec := cosmo.Spec{}

	scalars := []struct {
		name string
		dst  *float64
	}{
		{"Om", &spec.Params.OmegaM},
		{"Ode", &spec.Params.OmegaDE},
		{"w0", &spec.Params.W0},
		{"w1", &spec.Params.W1},
		{"H100", &spec.Params.H100},
		{"Omegab", &spec.Params.OmegaB},
		{"Omeganu", &spec.Params.OmegaNu},
		{"Neff", &spec.Params.NEff},
		{"sigma8", &spec.Params.Sigma8},
		{"ns", &spec.Params.NS},
	}
	for _, s := range scalars {
		if err := floatField(root, s.name, s.dst); err != nil {
			return cosmo.Spec{}, err
		}
	}

	settings := root.LookupPath(cue.ParsePath("settings"))
	if !settings.Exists() {
		return cosmo.Spec{}, &LoadError{Field: "settings", Message: "settings struct is required", Pos: root.Pos()}
	}

	names := []struct {
		name string
		dst  *string
	}{
		{"snonlinear", &spec.Settings.Nonlinear},
		{"stransfer", &spec.Settings.Transfer},
		{"sgrowth", &spec.Settings.Growth},
		{"sde_param", &spec.Settings.DarkEnergy},
		{"normmode", &spec.Settings.Normalization},
		{"stomo", &spec.Settings.Tomography},
		{"sreduced", &spec.Settings.ReducedShear},
	}
	for _, s := range names {
		if err := stringField(settings, s.name, s.dst); err != nil {
			return cosmo.Spec{}, err
		}
	}
	if err := floatField(settings, "q_mag_size", &spec.Settings.QMagSize); err != nil {
		return cosmo.Spec{}, err
	}

	nofz := root.LookupPath(cue.ParsePath("nofz"))
	if !nofz.Exists() {
		return cosmo.Spec{}, &LoadError{Field: "nofz", Message: "nofz bin list is required", Pos: root.Pos()}
	}
	iter, err := nofz.List()
	if err != nil {
		return cosmo.Spec{}, &LoadError{Field: "nofz", Message: err.Error(), Pos: nofz.Pos()}
	}
	for iter.Next() {
		bin := iter.Value()
		var b cosmo.BinSpec
		if err := stringField(bin, "shape", &b.Shape); err != nil {
			return cosmo.Spec{}, err
		}
		par := bin.LookupPath(cue.ParsePath("par"))
		if !par.Exists() {
			return cosmo.Spec{}, &LoadError{Field: "nofz.par", Message: "shape parameter list is required", Pos: bin.Pos()}
		}
		parIter, err := par.List()
		if err != nil {
			return cosmo.Spec{}, &LoadError{Field: "nofz.par", Message: err.Error(), Pos: par.Pos()}
		}
		for parIter.Next() {
			x, err := parIter.Value().Float64()
			if err != nil {
				return cosmo.Spec{}, &LoadError{Field: "nofz.par", Message: err.Error(), Pos: parIter.Value().Pos()}
			}
			b.Par = append(b.Par, x)
		}
		spec.Nofz = append(spec.Nofz, b)
	}

	return spec, nil
}

func floatField(v cue.Value, name string, dst *float64) error {
	field := v.LookupPath(cue.ParsePath(name))
	if !field.Exists() {
		return &LoadError{Field: name, Message: fmt.Sprintf("%s is required", name), Pos: v.Pos()}
	}
	x, err := field.Float64()
	if err != nil {
		return &LoadError{Field: name, Message: err.Error(), Pos: field.Pos()}
	}
	*dst = x
	return nil
}

func stringField(v cue.Value, name string, dst *string) error {
	field := v.LookupPath(cue.ParsePath(name))
	if !field.Exists() {
		return &LoadError{Field: name, Message: fmt.Sprintf("%s is required", name), Pos: v.Pos()}
	}
	s, err := field.String()
	if err != nil {
		return &LoadError{Field: name, Message: err.Error(), Pos: field.Pos()}
	}
	*dst = s
	return nil
}
