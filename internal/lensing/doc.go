// Package lensing implements the tomographic shear power spectrum
// dispatcher.
//
// The dispatcher does no physics. Given a cosmological model spec, an
// ordered multipole array, and the model's tomography mode, it determines
// which (redshift-bin i, redshift-bin j) pairs must be evaluated, allocates
// an (Ns x Nz) result matrix, invokes the external spectrum engine once per
// (multipole, pair), and packs results in a fixed column order:
//
//   - tomo_auto_only: column i holds pair (i, i)
//   - tomo_cross_only: pairs (i, j) with i < j, row-major (i outer)
//   - tomo_all: pairs (i, j) with i <= j, row-major (i outer)
//
// The first engine error aborts the whole computation; no partial matrix is
// ever returned. The model handle built for a computation is released on
// every exit path.
package lensing
