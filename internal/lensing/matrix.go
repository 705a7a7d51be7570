package lensing

import (
	"fmt"
	"math"

	"github.com/jongheekang/LensTools/internal/cosmo"
)

// Matrix is a dense (Rows x Cols) float64 matrix stored row-major in a
// single flat slice. Row l holds the spectrum sampled at multipole l; the
// column order is the tomographic pair enumeration.
type Matrix struct {
	Rows int
	Cols int
	Data []float64
}

// NewMatrix allocates a zero-filled matrix. Negative or overflowing shapes
// fail with an ALLOC_FAILED error rather than panicking in make.
func NewMatrix(rows, cols int) (*Matrix, error) {
	if rows < 0 || cols < 0 {
		return nil, cosmo.NewAllocationError(
			fmt.Sprintf("invalid matrix shape %dx%d", rows, cols))
	}
	if cols != 0 && rows > math.MaxInt/cols {
		return nil, cosmo.NewAllocationError(
			fmt.Sprintf("matrix shape %dx%d overflows", rows, cols))
	}
	return &Matrix{Rows: rows, Cols: cols, Data: make([]float64, rows*cols)}, nil
}

// At returns the entry at row l, column b.
func (m *Matrix) At(l, b int) float64 {
	m.check(l, b)
	return m.Data[l*m.Cols+b]
}

// Set stores v at row l, column b.
func (m *Matrix) Set(l, b int, v float64) {
	m.check(l, b)
	m.Data[l*m.Cols+b] = v
}

// Row returns row l as a slice aliasing the matrix storage.
func (m *Matrix) Row(l int) []float64 {
	if l < 0 || l >= m.Rows {
		panic(fmt.Sprintf("row %d is not valid for a %dx%d matrix", l, m.Rows, m.Cols))
	}
	return m.Data[l*m.Cols : (l+1)*m.Cols]
}

func (m *Matrix) check(l, b int) {
	if l < 0 || l >= m.Rows || b < 0 || b >= m.Cols {
		panic(fmt.Sprintf("index (%d,%d) is not valid for a %dx%d matrix",
			l, b, m.Rows, m.Cols))
	}
}
