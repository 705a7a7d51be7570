package params

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/jongheekang/LensTools/internal/cosmo"
)

// yamlDocument mirrors the parameter file tree. Field names match the
// historical settings-dictionary keys.
type yamlDocument struct {
	Cosmology *yamlCosmology `yaml:"cosmology"`
}

type yamlCosmology struct {
	Om      float64 `yaml:"Om"`
	Ode     float64 `yaml:"Ode"`
	W0      float64 `yaml:"w0"`
	W1      float64 `yaml:"w1"`
	H100    float64 `yaml:"H100"`
	Omegab  float64 `yaml:"Omegab"`
	Omeganu float64 `yaml:"Omeganu"`
	Neff    float64 `yaml:"Neff"`
	Sigma8  float64 `yaml:"sigma8"`
	NS      float64 `yaml:"ns"`

	Settings yamlSettings `yaml:"settings"`
	Nofz     []yamlBin    `yaml:"nofz"`
}

type yamlSettings struct {
	Nonlinear     string  `yaml:"snonlinear"`
	Transfer      string  `yaml:"stransfer"`
	Growth        string  `yaml:"sgrowth"`
	DarkEnergy    string  `yaml:"sde_param"`
	Normalization string  `yaml:"normmode"`
	Tomography    string  `yaml:"stomo"`
	ReducedShear  string  `yaml:"sreduced"`
	QMagSize      float64 `yaml:"q_mag_size"`
}

type yamlBin struct {
	Shape string    `yaml:"shape"`
	Par   []float64 `yaml:"par"`
}

// LoadYAML reads and parses a YAML cosmology parameter file.
func LoadYAML(path string) (cosmo.Spec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return cosmo.Spec{}, &LoadError{Message: fmt.Sprintf("reading parameter file: %v", err)}
	}
	return ParseYAML(data)
}

// ParseYAML parses YAML source into a cosmo.Spec. Unknown fields are
// rejected, so a typo in a settings key fails loudly instead of leaving a
// zero value for cosmo.NewModel to reject later with a less precise error.
func ParseYAML(src []byte) (cosmo.Spec, error) {
	dec := yaml.NewDecoder(bytes.NewReader(src))
	dec.KnownFields(true)

	var doc yamlDocument
	if err := dec.Decode(&doc); err != nil && err != io.EOF {
		return cosmo.Spec{}, &LoadError{Message: err.Error()}
	}
	if doc.Cosmology == nil {
		return cosmo.Spec{}, &LoadError{Field: "cosmology", Message: "top-level cosmology mapping is required"}
	}

	c := doc.Cosmology
	spec := cosmo.Spec{
		Params: cosmo.Params{
			OmegaM:  c.Om,
			OmegaDE: c.Ode,
			W0:      c.W0,
			W1:      c.W1,
			H100:    c.H100,
			OmegaB:  c.Omegab,
			OmegaNu: c.Omeganu,
			NEff:    c.Neff,
			Sigma8:  c.Sigma8,
			NS:      c.NS,
		},
		Settings: cosmo.Settings{
			Nonlinear:     c.Settings.Nonlinear,
			Transfer:      c.Settings.Transfer,
			Growth:        c.Settings.Growth,
			DarkEnergy:    c.Settings.DarkEnergy,
			Normalization: c.Settings.Normalization,
			Tomography:    c.Settings.Tomography,
			ReducedShear:  c.Settings.ReducedShear,
			QMagSize:      c.Settings.QMagSize,
		},
	}
	for _, bin := range c.Nofz {
		spec.Nofz = append(spec.Nofz, cosmo.BinSpec{Shape: bin.Shape, Par: bin.Par})
	}

	return spec, nil
}
