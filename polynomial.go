package arb

// Poly is a dense univariate polynomial over Rat, with coefficients stored
// from the highest degree down. The zero value evaluates to zero
// everywhere.
type Poly struct {
	coeffs []Rat
}

// PolyFromCoeffs builds a polynomial from coefficients ordered highest
// degree first, so PolyFromCoeffs(a, b, c) is a*x^2 + b*x + c. Leading zero
// coefficients are stripped. Values are copied.
func PolyFromCoeffs(coeffs ...Rat) Poly {
	cs := make([]Rat, len(coeffs))
	for i, c := range coeffs {
		cs[i] = c.Clone()
	}
	i := 0
	for i < len(cs)-1 && cs[i].IsZero() {
		i++
	}
	return Poly{coeffs: cs[i:]}
}

// Degree returns the degree of p; the zero polynomial has degree 0.
func (p Poly) Degree() int {
	if len(p.coeffs) == 0 {
		return 0
	}
	return len(p.coeffs) - 1
}

// Coeff returns the coefficient of the x^deg term, or zero when deg is
// beyond the polynomial's degree.
func (p Poly) Coeff(deg int) Rat {
	if deg < 0 || deg >= len(p.coeffs) {
		return ratZero()
	}
	return p.coeffs[len(p.coeffs)-1-deg].Clone()
}

// Calc evaluates p at x by Horner's rule. The result is exact.
func (p Poly) Calc(x Rat) Rat {
	result := ratZero()
	for _, c := range p.coeffs {
		result.MulMut(x)
		result.AddMut(c)
	}
	return result
}

// LinearFromPoints returns the line through (a, v1) and (b, v2). When a
// equals b the slope is zero and the result is the constant v1.
func LinearFromPoints(a, b, v1, v2 Rat) Poly {
	tan := ratZero()
	if !a.Equal(b) {
		tan = v2.Sub(v1).Div(b.Sub(a))
	}
	c := v1.Sub(a.Mul(tan))
	return Poly{coeffs: []Rat{tan, c}}
}

// QuadraticFromPoints returns the parabola through (a, v1), (b, v2) and
// (c, v3), by inverting the Vandermonde system. When two of the x values
// coincide the system is singular and the result degrades to the line
// through the two remaining distinct points.
func QuadraticFromPoints(a, b, c, v1, v2, v3 Rat) Poly {
	vand, _ := MatrixFromRows([][]Rat{
		{a.Mul(a), a, ratOne()},
		{b.Mul(b), b, ratOne()},
		{c.Mul(c), c, ratOne()},
	})

	inv, err := vand.Inverse()
	if err != nil {
		if a.Equal(b) {
			return LinearFromPoints(a, c, v1, v3)
		}
		return LinearFromPoints(a, b, v1, v2)
	}

	vals, _ := MatrixFromRows([][]Rat{{v1}, {v2}, {v3}})
	res, _ := inv.Mul(vals)
	return Poly{coeffs: []Rat{res.At(0, 0), res.At(1, 0), res.At(2, 0)}}
}

// CubicFromTangents returns the cubic with f(a) = v1, f(b) = v2,
// f'(a) = v3 and f'(b) = v4. When a equals b the system is singular and the
// result is the tangent line v3*(x - a) + v1, ignoring v2 and v4.
func CubicFromTangents(a, b, v1, v2, v3, v4 Rat) Poly {
	aa := a.Mul(a)
	bb := b.Mul(b)

	sys, _ := MatrixFromRows([][]Rat{
		{aa.Mul(a), aa, a, ratOne()},
		{bb.Mul(b), bb, b, ratOne()},
		{aa.Mul64(3), a.Mul64(2), ratOne(), ratZero()},
		{bb.Mul64(3), b.Mul64(2), ratOne(), ratZero()},
	})

	inv, err := sys.Inverse()
	if err != nil {
		return Poly{coeffs: []Rat{v3.Clone(), v1.Sub(a.Mul(v3))}}
	}

	vals, _ := MatrixFromRows([][]Rat{{v1}, {v2}, {v3}, {v4}})
	res, _ := inv.Mul(vals)
	return Poly{coeffs: []Rat{res.At(0, 0), res.At(1, 0), res.At(2, 0), res.At(3, 0)}}
}
