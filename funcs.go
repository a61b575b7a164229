package arb

// This file contains iterative approximations of the transcendental
// functions. Every function takes an iteration count rather than a target
// precision; more iterations mean more correct digits, at a cost that
// grows quickly because the rationals involved do not stay small. Results
// are exact evaluations of the truncated series, so the same inputs always
// produce the same output.

// Ln2Iter approximates ln(2) using 2*atanh(1/3), one term per iteration.
// Each term adds roughly one decimal digit.
func Ln2Iter(iter int) Rat {
	result := ratZero()
	pow := RatFromFrac64(1, 3)
	ninth := RatFromFrac64(1, 9)
	for k := 0; k <= iter; k++ {
		result.AddMut(pow.Div64(int64(2*k + 1)))
		pow.MulMut(ninth)
	}
	return result.Mul64(2)
}

// LnIter approximates the natural logarithm of x. It panics when x is zero
// or negative.
//
// The argument is first scaled by a power of two into the neighbourhood of
// 1, where the Mercator series for ln(1+a) converges; the final result adds
// back the scaling as a multiple of Ln2Iter. Because the scale factor comes
// from Log2Accurate, calls with large iteration counts spend most of their
// time there, not in the series.
func LnIter(x Rat, iter int) Rat {
	if x.IsZero() || x.IsNeg() {
		panic("arb: logarithm of a non-positive number")
	}

	la := Big{mag: x.num.mag.Log2Accurate()}
	lb := Big{mag: x.den.Log2Accurate()}
	approx := la.Sub(lb).Rsh(log2Bits)
	scale, ok := approx.AsInt64()
	if !ok {
		panic("arb: logarithm argument out of range")
	}

	// Divide x by 2^scale. Halving whichever side is even keeps the pair
	// coprime; num and den cannot both be even.
	num := x.num.mag.Clone()
	den := x.den.Clone()
	if scale > 0 {
		n := uint(scale)
		for n > 0 && num.isEven() {
			num.RshMut(1)
			n--
		}
		den.LshMut(n)
	} else if scale < 0 {
		n := uint(-scale)
		for n > 0 && den.isEven() {
			den.RshMut(1)
			n--
		}
		num.LshMut(n)
	}

	a := Rat{num: Big{mag: num}, den: den}.Sub64(1)
	result := a.Clone()
	xit := a.Clone()
	for k := 0; k < iter; k++ {
		xit.MulMut(a)
		result.SubMut(xit.Div64(int64(2*k + 2)))
		xit.MulMut(a)
		result.AddMut(xit.Div64(int64(2*k + 3)))
	}

	return result.Add(Ln2Iter(iter).Mul64(scale))
}

// LogIter approximates the base-b logarithm of x as LnIter(x)/LnIter(b).
// It panics when x or b is non-positive, or when b is 1.
func LogIter(x, b Rat, iter int) Rat {
	if b.IsOne() {
		panic("arb: logarithm base one")
	}
	return LnIter(x, iter).Div(LnIter(b, iter))
}

// EIter approximates Euler's number by its factorial series, two terms per
// iteration.
func EIter(iter int) Rat {
	result := ratOne()
	term := ratOne()
	for k := int64(1); k <= int64(2*iter)+1; k++ {
		term.Div64Mut(k)
		result.AddMut(term)
	}
	return result
}

// ExpIter approximates e^x. The integer part of x is handled exactly by
// raising EIter to that power; the Taylor series only ever sees the
// fractional part, where it converges fast. Two series terms are taken per
// iteration, matching EIter so the two halves carry similar error.
func ExpIter(x Rat, iter int) Rat {
	t, f := x.TruncateAndFrac()

	result := ratOne()
	term := ratOne()
	for k := int64(1); k <= int64(2*iter)+1; k++ {
		term.MulMut(f)
		term.Div64Mut(k)
		result.AddMut(term)
	}

	ti, ok := t.AsInt64()
	if !ok {
		panic("arb: exponent out of range")
	}
	return result.Mul(EIter(iter).Pow64(ti))
}

// PowIter approximates a^b as e^(b*ln(a)). A zero base returns zero for
// every exponent, including zero; a negative base panics via LnIter.
func PowIter(a, b Rat, iter int) Rat {
	if a.IsZero() {
		return ratZero()
	}
	return ExpIter(b.Mul(LnIter(a, iter)), iter)
}

// SqrtIter approximates the square root of x. For an exact integer square
// root, use UBig.Sqrt.
func SqrtIter(x Rat, iter int) Rat {
	return PowIter(x, RatFromFrac64(1, 2), iter)
}

// CbrtIter approximates the cube root of x.
func CbrtIter(x Rat, iter int) Rat {
	return PowIter(x, RatFromFrac64(1, 3), iter)
}

// PiIter approximates pi by Machin's formula,
// 16*atan(1/5) - 4*atan(1/239), with one series term per iteration.
func PiIter(iter int) Rat {
	return atanReci(5, iter).Mul64(16).Sub(atanReci(239, iter).Mul64(4))
}

// atanReci evaluates the Gregory series for atan(1/n).
func atanReci(n int64, iter int) Rat {
	result := ratZero()
	pow := RatFromFrac64(1, n)
	step := RatFromFrac64(1, n*n)
	for k := 0; k <= iter; k++ {
		term := pow.Div64(int64(2*k + 1))
		if k%2 == 1 {
			result.SubMut(term)
		} else {
			result.AddMut(term)
		}
		pow.MulMut(step)
	}
	return result
}

// SinIter approximates sin(x) by its Taylor series, one term per iteration
// past the initial x. There is no range reduction; arguments far from zero
// need more iterations.
func SinIter(x Rat, iter int) Rat {
	x2 := x.Mul(x)
	result := x.Clone()
	term := x.Clone()
	for k := int64(1); k <= int64(iter); k++ {
		term.MulMut(x2)
		term.Div64Mut(2 * k * (2*k + 1))
		if k%2 == 1 {
			result.SubMut(term)
		} else {
			result.AddMut(term)
		}
	}
	return result
}

// CosIter approximates cos(x) by its Taylor series, one term per iteration
// past the initial 1. Like SinIter it performs no range reduction.
func CosIter(x Rat, iter int) Rat {
	x2 := x.Mul(x)
	result := ratOne()
	term := ratOne()
	for k := int64(1); k <= int64(iter); k++ {
		term.MulMut(x2)
		term.Div64Mut(2 * k * (2*k - 1))
		if k%2 == 1 {
			result.SubMut(term)
		} else {
			result.AddMut(term)
		}
	}
	return result
}

// TanIter approximates tan(x) as SinIter(x)/CosIter(x).
func TanIter(x Rat, iter int) Rat {
	return SinIter(x, iter).Div(CosIter(x, iter))
}
