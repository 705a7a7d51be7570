// Package params loads cosmology parameter files into a cosmo.Spec.
//
// Two front-ends share one document shape: a CUE loader with
// position-carrying errors, and a YAML loader with strict field checking.
// Loaders only assemble the Spec; settings-vocabulary validation stays in
// cosmo.NewModel so there is exactly one enforcement point.
//
// Document shape (CUE syntax; YAML is the same tree):
//
//	cosmology: {
//		Om:     0.26
//		Ode:    0.74
//		w0:     -1.0
//		w1:     0.0
//		H100:   0.72
//		Omegab: 0.046
//		Omeganu: 0.0
//		Neff:   3.04
//		sigma8: 0.8
//		ns:     0.96
//
//		settings: {
//			snonlinear: "smith03"
//			stransfer:  "eisenhu"
//			sgrowth:    "growth_de"
//			sde_param:  "linder"
//			normmode:   "norm_s8"
//			stomo:      "tomo_all"
//			sreduced:   "none"
//			q_mag_size: 1.0
//		}
//
//		nofz: [
//			{shape: "single", par: [0.8, 0.8]},
//		]
//	}
package params
