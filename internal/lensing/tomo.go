package lensing

import (
	"fmt"

	"github.com/jongheekang/LensTools/internal/cosmo"
)

// ColumnCount returns the number of output columns for a tomography mode
// and bin count: nzbin for auto-only, nzbin*(nzbin-1)/2 for cross-only,
// nzbin*(nzbin+1)/2 for all pairs. Cross-only with a single bin yields 0.
func ColumnCount(mode cosmo.TomoMode, nzbin int) int {
	switch mode {
	case cosmo.TomoAutoOnly:
		return nzbin
	case cosmo.TomoCrossOnly:
		return nzbin * (nzbin - 1) / 2
	default:
		return nzbin * (nzbin + 1) / 2
	}
}

// PairColumn maps a bin pair (i, j) to its output column for the given mode
// and bin count. The mapping is the flat-index form of the enumeration
// order documented in the package comment; Pairs and PairColumn agree by
// construction and are cross-checked in tests.
//
// PairColumn panics when (i, j) is not a pair the mode evaluates; the
// dispatcher only produces valid pairs, so an invalid argument is a
// programmer error.
func PairColumn(mode cosmo.TomoMode, nzbin, i, j int) int {
	if i < 0 || j < 0 || i >= nzbin || j >= nzbin {
		panic(fmt.Sprintf("bin pair (%d,%d) is not valid for nzbin = %d", i, j, nzbin))
	}

	switch mode {
	case cosmo.TomoAutoOnly:
		if i != j {
			panic(fmt.Sprintf("pair (%d,%d) is off-diagonal but mode is %s", i, j, mode))
		}
		return i
	case cosmo.TomoCrossOnly:
		if i >= j {
			panic(fmt.Sprintf("pair (%d,%d) is not strictly upper-triangular", i, j))
		}
		// Full rows above row i hold (nzbin-1-r) pairs each.
		return i*(nzbin-1) - i*(i-1)/2 + (j - i - 1)
	default:
		if i > j {
			panic(fmt.Sprintf("pair (%d,%d) is not upper-triangular", i, j))
		}
		return i*nzbin - i*(i-1)/2 + (j - i)
	}
}

// ColumnPair is the inverse of PairColumn: it recovers the bin pair stored
// in column b. It panics when b is outside [0, ColumnCount).
func ColumnPair(mode cosmo.TomoMode, nzbin, b int) (i, j int) {
	if b < 0 || b >= ColumnCount(mode, nzbin) {
		panic(fmt.Sprintf("column %d is not valid for mode %s, nzbin = %d", b, mode, nzbin))
	}

	if mode == cosmo.TomoAutoOnly {
		return b, b
	}

	jStart := 0 // offset of the first j in each row relative to i
	if mode == cosmo.TomoCrossOnly {
		jStart = 1
	}
	for i = 0; i < nzbin; i++ {
		rowLen := nzbin - i - jStart
		if b < rowLen {
			return i, i + jStart + b
		}
		b -= rowLen
	}
	panic("unreachable")
}

// Pairs returns the evaluated bin pairs for a mode in output column order.
// The slice index of a pair is its column.
func Pairs(mode cosmo.TomoMode, nzbin int) [][2]int {
	pairs := make([][2]int, 0, ColumnCount(mode, nzbin))

	switch mode {
	case cosmo.TomoAutoOnly:
		for i := 0; i < nzbin; i++ {
			pairs = append(pairs, [2]int{i, i})
		}
	case cosmo.TomoCrossOnly:
		for i := 0; i < nzbin; i++ {
			for j := i + 1; j < nzbin; j++ {
				pairs = append(pairs, [2]int{i, j})
			}
		}
	default:
		for i := 0; i < nzbin; i++ {
			for j := i; j < nzbin; j++ {
				pairs = append(pairs, [2]int{i, j})
			}
		}
	}

	return pairs
}
