package arb

import (
	"errors"
)

var (
	// ErrMatrixShape is returned when matrix dimensions do not line up.
	ErrMatrixShape = errors.New("arb: matrix shape mismatch")

	// ErrSingularMatrix is returned by Inverse for a singular matrix.
	ErrSingularMatrix = errors.New("arb: matrix is singular")
)

// Matrix is a dense matrix of rationals, stored row-major. The zero value
// is an empty 0x0 matrix.
type Matrix struct {
	rows, cols int
	cells      []Rat
}

// MatrixFromRows builds a matrix from rows of equal length. Values are
// copied.
func MatrixFromRows(rows [][]Rat) (Matrix, error) {
	if len(rows) == 0 {
		return Matrix{}, nil
	}

	cols := len(rows[0])
	cells := make([]Rat, 0, len(rows)*cols)
	for _, row := range rows {
		if len(row) != cols {
			return Matrix{}, ErrMatrixShape
		}
		for _, v := range row {
			cells = append(cells, v.Clone())
		}
	}
	return Matrix{rows: len(rows), cols: cols, cells: cells}, nil
}

// MatrixIdentity returns the n by n identity matrix.
func MatrixIdentity(n int) Matrix {
	cells := make([]Rat, n*n)
	for i := range cells {
		if i%(n+1) == 0 {
			cells[i] = ratOne()
		} else {
			cells[i] = ratZero()
		}
	}
	return Matrix{rows: n, cols: n, cells: cells}
}

func (m Matrix) Rows() int { return m.rows }
func (m Matrix) Cols() int { return m.cols }

// At returns a copy of the cell at row r, column c.
func (m Matrix) At(r, c int) Rat { return m.at(r, c).Clone() }

func (m Matrix) at(r, c int) Rat { return m.cells[r*m.cols+c] }

func (m Matrix) Clone() Matrix {
	cells := make([]Rat, len(m.cells))
	for i, v := range m.cells {
		cells[i] = v.Clone()
	}
	return Matrix{rows: m.rows, cols: m.cols, cells: cells}
}

// Mul returns the matrix product m * n. The column count of m must equal
// the row count of n.
func (m Matrix) Mul(n Matrix) (Matrix, error) {
	if m.cols != n.rows {
		return Matrix{}, ErrMatrixShape
	}

	out := Matrix{rows: m.rows, cols: n.cols, cells: make([]Rat, m.rows*n.cols)}
	for r := 0; r < m.rows; r++ {
		for c := 0; c < n.cols; c++ {
			acc := ratZero()
			for k := 0; k < m.cols; k++ {
				acc.AddMut(m.at(r, k).Mul(n.at(k, c)))
			}
			out.cells[r*out.cols+c] = acc
		}
	}
	return out, nil
}

// Inverse returns the inverse of a square matrix by Gauss-Jordan
// elimination. Arithmetic is exact, so singularity detection is too: a
// matrix is reported singular if and only if it has no inverse.
func (m Matrix) Inverse() (Matrix, error) {
	if m.rows != m.cols {
		return Matrix{}, ErrMatrixShape
	}

	n := m.rows
	a := m.Clone()
	inv := MatrixIdentity(n)

	for col := 0; col < n; col++ {
		pivot := -1
		for r := col; r < n; r++ {
			if !a.at(r, col).IsZero() {
				pivot = r
				break
			}
		}
		if pivot < 0 {
			return Matrix{}, ErrSingularMatrix
		}
		a.swapRows(col, pivot)
		inv.swapRows(col, pivot)

		scale := a.at(col, col).Reci()
		a.scaleRow(col, scale)
		inv.scaleRow(col, scale)

		for r := 0; r < n; r++ {
			if r == col {
				continue
			}
			f := a.at(r, col)
			if f.IsZero() {
				continue
			}
			f = f.Clone()
			a.subScaledRow(r, col, f)
			inv.subScaledRow(r, col, f)
		}
	}
	return inv, nil
}

func (m Matrix) swapRows(r1, r2 int) {
	if r1 == r2 {
		return
	}
	for c := 0; c < m.cols; c++ {
		m.cells[r1*m.cols+c], m.cells[r2*m.cols+c] = m.cells[r2*m.cols+c], m.cells[r1*m.cols+c]
	}
}

func (m Matrix) scaleRow(r int, f Rat) {
	for c := 0; c < m.cols; c++ {
		m.cells[r*m.cols+c].MulMut(f)
	}
}

// subScaledRow subtracts f times row src from row r.
func (m Matrix) subScaledRow(r, src int, f Rat) {
	for c := 0; c < m.cols; c++ {
		m.cells[r*m.cols+c].SubMut(f.Mul(m.at(src, c)))
	}
}
