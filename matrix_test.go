package arb

import (
	"testing"

	"github.com/shabbyrobe/golib/assert"
)

func mustMatrix(t testing.TB, rows [][]Rat) Matrix {
	t.Helper()
	m, err := MatrixFromRows(rows)
	if err != nil {
		t.Fatal(err)
	}
	return m
}

func matrixFromStrings(t testing.TB, rows [][]string) Matrix {
	t.Helper()
	rs := make([][]Rat, len(rows))
	for i, row := range rows {
		rs[i] = make([]Rat, len(row))
		for j, s := range row {
			rs[i][j] = rats(s)
		}
	}
	return mustMatrix(t, rs)
}

func assertMatrixEqual(t testing.TB, exp, act Matrix) {
	t.Helper()
	tt := assert.WrapTB(t)
	tt.MustEqual(exp.Rows(), act.Rows())
	tt.MustEqual(exp.Cols(), act.Cols())
	for r := 0; r < exp.Rows(); r++ {
		for c := 0; c < exp.Cols(); c++ {
			tt.MustAssert(exp.At(r, c).Equal(act.At(r, c)),
				"cell %d,%d: expected %s, found %s", r, c, exp.At(r, c), act.At(r, c))
		}
	}
}

func TestMatrixFromRowsRagged(t *testing.T) {
	tt := assert.WrapTB(t)

	_, err := MatrixFromRows([][]Rat{
		{ratOne(), ratZero()},
		{ratOne()},
	})
	tt.MustEqual(ErrMatrixShape, err)
}

func TestMatrixMul(t *testing.T) {
	tt := assert.WrapTB(t)

	a := matrixFromStrings(t, [][]string{
		{"1", "2"},
		{"3", "4"},
	})
	b := matrixFromStrings(t, [][]string{
		{"1/2", "0"},
		{"0", "1/2"},
	})

	ab, err := a.Mul(b)
	tt.MustOK(err)
	assertMatrixEqual(t, matrixFromStrings(t, [][]string{
		{"1/2", "1"},
		{"3/2", "2"},
	}), ab)

	col := matrixFromStrings(t, [][]string{{"1"}, {"1"}})
	ac, err := a.Mul(col)
	tt.MustOK(err)
	assertMatrixEqual(t, matrixFromStrings(t, [][]string{{"3"}, {"7"}}), ac)

	_, err = col.Mul(a)
	tt.MustEqual(ErrMatrixShape, err)
}

func TestMatrixInverse(t *testing.T) {
	tt := assert.WrapTB(t)

	a := matrixFromStrings(t, [][]string{
		{"1", "2"},
		{"3", "4"},
	})
	inv, err := a.Inverse()
	tt.MustOK(err)
	assertMatrixEqual(t, matrixFromStrings(t, [][]string{
		{"-2", "1"},
		{"3/2", "-1/2"},
	}), inv)

	prod, err := a.Mul(inv)
	tt.MustOK(err)
	assertMatrixEqual(t, MatrixIdentity(2), prod)
}

func TestMatrixInversePivotSwap(t *testing.T) {
	tt := assert.WrapTB(t)

	// A zero in the leading position forces a row swap:
	a := matrixFromStrings(t, [][]string{
		{"0", "1"},
		{"1", "0"},
	})
	inv, err := a.Inverse()
	tt.MustOK(err)
	assertMatrixEqual(t, a, inv)
}

func TestMatrixInverseSingular(t *testing.T) {
	tt := assert.WrapTB(t)

	a := matrixFromStrings(t, [][]string{
		{"1", "2"},
		{"2", "4"},
	})
	_, err := a.Inverse()
	tt.MustEqual(ErrSingularMatrix, err)

	b := matrixFromStrings(t, [][]string{
		{"1", "2", "3"},
	})
	_, err = b.Inverse()
	tt.MustEqual(ErrMatrixShape, err)
}

func TestMatrixIdentity(t *testing.T) {
	tt := assert.WrapTB(t)

	id := MatrixIdentity(3)
	inv, err := id.Inverse()
	tt.MustOK(err)
	assertMatrixEqual(t, id, inv)

	a := matrixFromStrings(t, [][]string{
		{"1/2", "-3", "7"},
		{"0", "5", "1/9"},
		{"2", "0", "-1"},
	})
	prod, err := a.Mul(id)
	tt.MustOK(err)
	assertMatrixEqual(t, a, prod)
}
