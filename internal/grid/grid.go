// Package grid bins 3D particle positions onto a regular grid of cell
// counts, the way simulation post-processing snaps snapshot particles onto
// a density mesh.
//
// Cell assignment floors the scaled offset: a particle exactly on a cell's
// lower boundary belongs to that cell. Particles below the grid origin or
// at/above the upper boundary on any axis are silently dropped; they are
// never wrapped or clamped. Counts only ever increase, so the result is
// identical under any permutation of the input particles.
package grid

import (
	"errors"
	"math"
)

// Sentinel errors for shape validation. Binning itself cannot fail; only
// malformed inputs are rejected, before any cell is touched.
var (
	// ErrPositionsShape is returned when the flat positions slice is not a
	// whole number of (x, y, z) triples.
	ErrPositionsShape = errors.New("grid: positions length is not a multiple of 3")

	// ErrGridSize is returned when the count buffer does not hold exactly
	// nx*ny*nz cells.
	ErrGridSize = errors.New("grid: count buffer does not match grid dimensions")

	// ErrBadGeometry is returned for non-positive dimensions or cell sizes.
	ErrBadGeometry = errors.New("grid: dimensions and cell sizes must be positive")
)

// Geometry fixes a grid's physical placement: the position of its lower
// corner, the cell size per axis, and the number of cells per axis.
type Geometry struct {
	Origin   [3]float64
	CellSize [3]float64
	Dims     [3]int
}

// Valid reports whether all dimensions and cell sizes are positive.
func (g Geometry) Valid() bool {
	for a := 0; a < 3; a++ {
		if g.Dims[a] <= 0 || g.CellSize[a] <= 0 {
			return false
		}
	}
	return true
}

// Cells returns the total cell count nx*ny*nz.
func (g Geometry) Cells() int {
	return g.Dims[0] * g.Dims[1] * g.Dims[2]
}

// Index flattens cell coordinates row-major with x outermost and z
// innermost: (i*ny + j)*nz + k.
func (g Geometry) Index(i, j, k int) int {
	return (i*g.Dims[1]+j)*g.Dims[2] + k
}

// NewCounts allocates a zeroed count buffer matching the geometry.
func NewCounts(g Geometry) []float32 {
	return make([]float32, g.Cells())
}

// Bin assigns each particle to its containing cell and increments that
// cell's count in place. positions is flat [x0, y0, z0, x1, y1, z1, ...];
// counts must be pre-allocated with geom.Cells() entries and is typically
// pre-zeroed, though accumulating over successive calls is also valid.
//
// Out-of-bounds particles are dropped without error; positions are never
// mutated.
func Bin(positions []float32, geom Geometry, counts []float32) error {
	if !geom.Valid() {
		return ErrBadGeometry
	}
	if len(positions)%3 != 0 {
		return ErrPositionsShape
	}
	if len(counts) != geom.Cells() {
		return ErrGridSize
	}

	nx, ny, nz := geom.Dims[0], geom.Dims[1], geom.Dims[2]
	for n := 0; n < len(positions); n += 3 {
		// Floor, not rounding: the lower cell boundary is inclusive, the
		// upper exclusive, and anything below the origin goes negative and
		// fails the bounds check below.
		i := int(math.Floor((float64(positions[n]) - geom.Origin[0]) / geom.CellSize[0]))
		j := int(math.Floor((float64(positions[n+1]) - geom.Origin[1]) / geom.CellSize[1]))
		k := int(math.Floor((float64(positions[n+2]) - geom.Origin[2]) / geom.CellSize[2]))

		if i >= 0 && i < nx && j >= 0 && j < ny && k >= 0 && k < nz {
			counts[(i*ny+j)*nz+k] += 1.0
		}
	}

	return nil
}
