// Package cosmo defines the cosmological model handle used by the lensing
// dispatcher: scalar parameters, the per-redshift-bin distribution
// specification, and the closed-vocabulary computation settings.
//
// # Settings vocabulary
//
// Every computation mode (nonlinear power spectrum, transfer function,
// growth, dark-energy parametrization, normalization, tomography, reduced
// shear, redshift-distribution shape) is selected by name from a closed,
// versioned vocabulary. Names resolve through a single Lookup function;
// adding a name means extending the table, which is the module's
// compatibility surface.
//
// # Model lifetime
//
// A Model is built once per computation from a validated Spec, is immutable
// for the duration of that computation, and is released exactly once via
// Close on every exit path. Construction resolves settings in a fixed
// order (per-bin distribution shapes, then nonlinear, transfer, growth,
// dark energy, normalization, tomography, reduced shear); the first
// unresolvable name aborts construction.
package cosmo
