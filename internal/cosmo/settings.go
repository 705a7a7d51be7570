package cosmo

// SettingCategory names one closed settings vocabulary. The values match
// the keys of the historical settings dictionary, which is why they carry
// their s-prefixes.
type SettingCategory string

const (
	CategoryDistribution  SettingCategory = "nofz"
	CategoryNonlinear     SettingCategory = "snonlinear"
	CategoryTransfer      SettingCategory = "stransfer"
	CategoryGrowth        SettingCategory = "sgrowth"
	CategoryDarkEnergy    SettingCategory = "sde_param"
	CategoryNormalization SettingCategory = "normmode"
	CategoryTomography    SettingCategory = "stomo"
	CategoryReducedShear  SettingCategory = "sreduced"
)

// Distribution selects the shape of one redshift bin's galaxy distribution.
type Distribution int

const (
	DistLudo Distribution = iota
	DistJonben
	DistYmmk
	DistYmmk0Const
	DistHist
	DistSingle
)

// Nonlinear selects the nonlinear power spectrum model.
type Nonlinear int

const (
	NonlinearLinear Nonlinear = iota
	NonlinearPD96
	NonlinearSmith03
	NonlinearSmith03DE
	NonlinearCoyote10
	NonlinearCoyote13
	NonlinearHaloDM
	NonlinearSmith03Revised
)

// Transfer selects the transfer function.
type Transfer int

const (
	TransferBBKS Transfer = iota
	TransferEisenhu
	TransferEisenhuOsc
	TransferBE84
)

// Growth selects the growth factor model.
type Growth int

const (
	GrowthHeath Growth = iota
	GrowthDE
)

// DarkEnergy selects the dark-energy equation-of-state parametrization.
type DarkEnergy int

const (
	DEJassal DarkEnergy = iota
	DELinder
	DEEarly
	DEPoly
)

// Normalization selects how the power spectrum amplitude is fixed.
type Normalization int

const (
	NormSigma8 Normalization = iota
	NormAs
)

// TomoMode selects which pairs of redshift bins contribute to the output.
type TomoMode int

const (
	// TomoAll evaluates same- and distinct-bin pairs.
	TomoAll TomoMode = iota
	// TomoAutoOnly evaluates same-bin pairs only.
	TomoAutoOnly
	// TomoCrossOnly evaluates distinct-bin pairs only.
	TomoCrossOnly
)

// ReducedShear selects the reduced-shear correction.
type ReducedShear int

const (
	ReducedNone ReducedShear = iota
	ReducedK10
)

// vocabularies maps each category to its accepted names, in declaration
// order. The slice index of a name is its enumeration value — the tables
// below and the typed constants above must stay in lockstep.
var vocabularies = map[SettingCategory][]string{
	CategoryDistribution:  {"ludo", "jonben", "ymmk", "ymmk0const", "hist", "single"},
	CategoryNonlinear:     {"linear", "pd96", "smith03", "smith03_de", "coyote10", "coyote13", "halodm", "smith03_revised"},
	CategoryTransfer:      {"bbks", "eisenhu", "eisenhu_osc", "be84"},
	CategoryGrowth:        {"heath", "growth_de"},
	CategoryDarkEnergy:    {"jassal", "linder", "earlyDE", "poly_DE"},
	CategoryNormalization: {"norm_s8", "norm_as"},
	CategoryTomography:    {"tomo_all", "tomo_auto_only", "tomo_cross_only"},
	CategoryReducedShear:  {"none", "reduced_K10"},
}

// Lookup resolves a settings name within its category's closed vocabulary
// and returns its enumeration value. Unknown categories and names fail
// with an UNSUPPORTED_SETTING error; lookups never fall back or fuzz-match.
func Lookup(category SettingCategory, name string) (int, error) {
	names, ok := vocabularies[category]
	if !ok {
		return -1, NewConfigurationError("unknown settings category %q", category)
	}
	for i, n := range names {
		if n == name {
			return i, nil
		}
	}
	return -1, NewUnsupportedSettingError(category, name)
}

// Names returns the accepted names for a category in declaration order.
// The returned slice is a copy.
func Names(category SettingCategory) []string {
	names := vocabularies[category]
	out := make([]string, len(names))
	copy(out, names)
	return out
}

// String returns the vocabulary name of a tomography mode.
func (m TomoMode) String() string {
	names := vocabularies[CategoryTomography]
	if int(m) < 0 || int(m) >= len(names) {
		return "tomo_invalid"
	}
	return names[m]
}
