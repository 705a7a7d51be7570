package catalog

import (
	"github.com/jongheekang/LensTools/internal/canonical"
	"github.com/jongheekang/LensTools/internal/cosmo"
)

// ParamRecord serializes a cosmology spec to its canonical JSON record.
// Equal specs always produce identical bytes, so catalog rows stay
// byte-comparable across runs and hosts.
func ParamRecord(spec cosmo.Spec) ([]byte, error) {
	bins := make([]any, len(spec.Nofz))
	for i, bin := range spec.Nofz {
		bins[i] = map[string]any{
			"shape": bin.Shape,
			"par":   bin.Par,
		}
	}

	record := map[string]any{
		"Om":      spec.Params.OmegaM,
		"Ode":     spec.Params.OmegaDE,
		"w0":      spec.Params.W0,
		"w1":      spec.Params.W1,
		"H100":    spec.Params.H100,
		"Omegab":  spec.Params.OmegaB,
		"Omeganu": spec.Params.OmegaNu,
		"Neff":    spec.Params.NEff,
		"sigma8":  spec.Params.Sigma8,
		"ns":      spec.Params.NS,
		"settings": map[string]any{
			"snonlinear": spec.Settings.Nonlinear,
			"stransfer":  spec.Settings.Transfer,
			"sgrowth":    spec.Settings.Growth,
			"sde_param":  spec.Settings.DarkEnergy,
			"normmode":   spec.Settings.Normalization,
			"stomo":      spec.Settings.Tomography,
			"sreduced":   spec.Settings.ReducedShear,
			"q_mag_size": spec.Settings.QMagSize,
		},
		"nofz": bins,
	}

	return canonical.Marshal(record)
}
