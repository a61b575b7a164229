package arb

import (
	"fmt"
	"io"
	"math/big"
	"strconv"
	"strings"
)

// Rat is an exact rational number: a Big numerator over a UBig
// denominator.
//
// Three invariants hold for every Rat that escapes this package: the
// denominator is strictly positive, numerator and denominator are
// coprime, and the sign lives entirely on the numerator. Every
// constructor and arithmetic path restores these via reduce(); the
// handful of internal call sites that skip reduction each carry an
// argument for why the invariants already hold.
type Rat struct {
	num Big
	den UBig
}

func ratZero() Rat { return Rat{num: bigZero(), den: ubigOne()} }
func ratOne() Rat  { return Rat{num: bigOne(), den: ubigOne()} }

func RatFromBig(num Big) Rat {
	return Rat{num: num.Clone(), den: ubigOne()}
}

func RatFromUBig(num UBig) Rat {
	return Rat{num: BigFromUBig(num), den: ubigOne()}
}

func RatFrom64(v int64) Rat { return Rat{num: BigFrom64(v), den: ubigOne()} }
func RatFrom32(v int32) Rat { return RatFrom64(int64(v)) }

// RatFromFrac creates the rational num/den in lowest terms. A negative
// denominator moves its sign to the numerator. It panics when den is
// zero.
func RatFromFrac(num, den Big) Rat {
	if den.IsZero() {
		panic("arb: zero denominator")
	}
	n := num.Clone()
	if den.neg {
		n.NegMut()
	}
	v := Rat{num: n, den: den.mag.Clone()}
	v.reduce()
	return v
}

// RatFromFrac64 creates the rational num/den in lowest terms from native
// integers. It panics when den is zero.
func RatFromFrac64(num, den int64) Rat {
	return RatFromFrac(BigFrom64(num), BigFrom64(den))
}

// RatFromBigRat creates a Rat from a big.Rat, which shares this type's
// reduced-form invariants, so no further normalization is needed.
func RatFromBigRat(v *big.Rat) Rat {
	return Rat{num: BigFromBigInt(v.Num()), den: ubigFromBytes(v.Denom().Bytes())}
}

// reduce restores the representation invariants: denominator positive,
// numerator and denominator coprime, zero non-negative with denominator 1.
func (r *Rat) reduce() {
	if r.den.IsZero() {
		panic("arb: zero denominator")
	}
	g := GcdUBig(r.num.mag, r.den)
	if !g.IsOne() {
		r.num.mag.QuoMut(g)
		r.den.QuoMut(g)
	}
	if r.num.mag.IsZero() {
		r.num.neg = false
	}
}

func (r Rat) isValid() bool {
	if !r.num.isValid() || !r.den.isValid() || r.den.IsZero() {
		return false
	}
	return GcdUBig(r.num.mag, r.den).IsOne()
}

func (r Rat) Clone() Rat { return Rat{num: r.num.Clone(), den: r.den.Clone()} }

// Num returns the numerator, which carries the sign of r.
func (r Rat) Num() Big { return r.num.Clone() }

// Den returns the denominator, which is always positive.
func (r Rat) Den() UBig { return r.den.Clone() }

func (r Rat) IsZero() bool    { return r.num.IsZero() }
func (r Rat) IsNeg() bool     { return r.num.neg }
func (r Rat) IsOne() bool     { return r.num.IsOne() && r.den.IsOne() }
func (r Rat) IsInteger() bool { return r.den.IsOne() }

func (r Rat) Add(n Rat) Rat {
	num := r.num.Mul(Big{mag: n.den})
	num.AddMut(n.num.Mul(Big{mag: r.den}))
	v := Rat{num: num, den: r.den.Mul(n.den)}
	v.reduce()
	return v
}

func (r *Rat) AddMut(n Rat) { *r = r.Add(n) }

func (r Rat) Sub(n Rat) Rat {
	num := r.num.Mul(Big{mag: n.den})
	num.SubMut(n.num.Mul(Big{mag: r.den}))
	v := Rat{num: num, den: r.den.Mul(n.den)}
	v.reduce()
	return v
}

func (r *Rat) SubMut(n Rat) { *r = r.Sub(n) }

func (r Rat) Mul(n Rat) Rat {
	v := Rat{num: r.num.Mul(n.num), den: r.den.Mul(n.den)}
	v.reduce()
	return v
}

func (r *Rat) MulMut(n Rat) { *r = r.Mul(n) }

// Div returns r / n. It panics when n is zero.
func (r Rat) Div(n Rat) Rat {
	if n.IsZero() {
		panic("arb: division by zero")
	}
	num := r.num.Mul(Big{mag: n.den})
	num.neg = r.num.neg != n.num.neg && !num.mag.IsZero()
	v := Rat{num: num, den: r.den.Mul(n.num.mag)}
	v.reduce()
	return v
}

func (r *Rat) DivMut(n Rat) { *r = r.Div(n) }

func (r Rat) Add64(v int64) Rat { return r.Add(RatFrom64(v)) }
func (r Rat) Sub64(v int64) Rat { return r.Sub(RatFrom64(v)) }
func (r Rat) Mul64(v int64) Rat { return r.Mul(RatFrom64(v)) }
func (r Rat) Div64(v int64) Rat { return r.Div(RatFrom64(v)) }

func (r *Rat) Add64Mut(v int64) { *r = r.Add64(v) }
func (r *Rat) Sub64Mut(v int64) { *r = r.Sub64(v) }
func (r *Rat) Mul64Mut(v int64) { *r = r.Mul64(v) }
func (r *Rat) Div64Mut(v int64) { *r = r.Div64(v) }

func (r Rat) MulBig(n Big) Rat {
	v := Rat{num: r.num.Mul(n), den: r.den.Clone()}
	v.reduce()
	return v
}

func (r Rat) Neg() Rat {
	// If a and b are coprime, so are -a and b; no reduction needed.
	return Rat{num: r.num.Neg(), den: r.den.Clone()}
}

func (r *Rat) NegMut() { r.num.NegMut() }

func (r Rat) Abs() Rat {
	return Rat{num: Big{mag: r.num.mag.Clone()}, den: r.den.Clone()}
}

func (r *Rat) AbsMut() { r.num.neg = false }

// Reci returns 1 / r: numerator and denominator magnitudes swap and the
// sign stays on the numerator. They were coprime before, so they still
// are. It panics when r is zero.
func (r Rat) Reci() Rat {
	if r.num.mag.IsZero() {
		panic("arb: division by zero")
	}
	return Rat{
		num: Big{mag: r.den.Clone(), neg: r.num.neg},
		den: r.num.mag.Clone(),
	}
}

func (r *Rat) ReciMut() { *r = r.Reci() }

// Pow64 returns r raised to an integer power. Coprime numerator and
// denominator stay coprime under powers, so no reduction is needed.
// A negative exponent takes the reciprocal, which panics for a zero base;
// Pow64(0) is 1.
func (r Rat) Pow64(n int64) Rat {
	if n == 0 {
		return ratOne()
	}

	m, recip := uint64(n), false
	if n < 0 {
		m, recip = uint64(-(n+1))+1, true
	}

	v := Rat{
		num: Big{mag: pow64(r.num.mag, m), neg: r.num.neg && m&1 == 1},
		den: pow64(r.den, m),
	}
	if v.num.mag.IsZero() {
		v.num.neg = false
	}
	if recip {
		v.ReciMut()
	}
	return v
}

func pow64(u UBig, n uint64) UBig {
	result, base := ubigOne(), u.Clone()
	for n > 0 {
		if n&1 == 1 {
			result.MulMut(base)
		}
		n >>= 1
		if n > 0 {
			base.MulMut(base)
		}
	}
	return result
}

// TruncateBig returns r rounded toward zero, as an integer.
func (r Rat) TruncateBig() Big {
	return r.num.Quo(Big{mag: r.den})
}

// Truncate returns r rounded toward zero.
func (r Rat) Truncate() Rat { return RatFromBig(r.TruncateBig()) }

func (r *Rat) TruncateMut() {
	r.num.QuoMut(Big{mag: r.den})
	r.den = ubigOne()
}

// Frac returns r - Truncate(r). The remainder of num/den is coprime with
// den whenever num and den were, so the result needs no reduction.
func (r Rat) Frac() Rat {
	return Rat{num: r.num.Rem(Big{mag: r.den}), den: r.den.Clone()}
}

func (r *Rat) FracMut() {
	r.num.RemMut(Big{mag: r.den})
}

// TruncateAndFrac returns both halves of r in a single division.
func (r Rat) TruncateAndFrac() (Big, Rat) {
	q, rem := r.num.QuoRem(Big{mag: r.den})
	return q, Rat{num: rem, den: r.den.Clone()}
}

// FloorBig returns the largest integer less than or equal to r.
func (r Rat) FloorBig() Big {
	t := r.TruncateBig()
	if r.IsNeg() && !r.IsInteger() {
		return t.Sub64(1)
	}
	return t
}

// Floor returns the largest integer less than or equal to r.
func (r Rat) Floor() Rat { return RatFromBig(r.FloorBig()) }

// RoundBig returns r rounded to the nearest integer, with exact halves
// rounded away from zero. This matches IEEE-754 round-to-nearest-away
// (and math.Round) for every representable binary fraction.
func (r Rat) RoundBig() Big {
	trun, frac := r.TruncateAndFrac()

	doubled := frac.num.mag.Mul32(2)
	if doubled.Cmp(r.den) < 0 {
		return trun
	}
	if r.IsNeg() {
		return trun.Sub64(1)
	}
	return trun.Add64(1)
}

// Round returns r rounded to the nearest integer, halves away from zero.
func (r Rat) Round() Rat { return RatFromBig(r.RoundBig()) }

// Cmp compares by cross-multiplying the numerators with the opposite
// denominators; no conversion through floating point is involved.
func (r Rat) Cmp(n Rat) int {
	return r.num.Mul(Big{mag: n.den}).Cmp(n.num.Mul(Big{mag: r.den}))
}

func (r Rat) Equal(n Rat) bool            { return r.Cmp(n) == 0 }
func (r Rat) LessThan(n Rat) bool         { return r.Cmp(n) < 0 }
func (r Rat) LessOrEqualTo(n Rat) bool    { return r.Cmp(n) <= 0 }
func (r Rat) GreaterThan(n Rat) bool      { return r.Cmp(n) > 0 }
func (r Rat) GreaterOrEqualTo(n Rat) bool { return r.Cmp(n) >= 0 }

func (r Rat) AsBigRat() *big.Rat {
	return new(big.Rat).SetFrac(r.num.AsBigInt(), r.den.AsBigInt())
}

// AsFloat64 returns the nearest float64; the conversion is lossy for
// values a float64 cannot represent.
func (r Rat) AsFloat64() float64 {
	f, _ := r.AsBigRat().Float64()
	return f
}

// String returns the exact value: the integer itself when the denominator
// is 1, "num/den" otherwise. RatFromString accepts both forms.
func (r Rat) String() string {
	if r.den.IsOne() {
		return r.num.String()
	}
	return r.num.String() + "/" + r.den.String()
}

func (r Rat) Format(s fmt.State, c rune) {
	io.WriteString(s, r.String())
}

// ToApproxString renders a decimal approximation of r that is at most
// width runes long, counting the sign and the decimal point. The fraction
// is truncated, not rounded, and trailing fractional zeros are stripped.
// When even the integer part does not fit, the result degrades to
// exponent notation ("3.16e41"), growing past width if unavoidable.
func (r Rat) ToApproxString(width int) string {
	var prefix string
	if r.num.neg {
		prefix = "-"
	}

	q, rem := r.num.mag.QuoRem(r.den)
	intStr := q.String()
	used := len(prefix) + len(intStr)

	if used > width {
		exp := len(intStr) - 1
		suffix := "e" + strconv.Itoa(exp)
		avail := width - len(prefix) - len(suffix) - 2
		if avail < 0 {
			avail = 0
		}
		mant := intStr[1:]
		if len(mant) > avail {
			mant = mant[:avail]
		}
		mant = strings.TrimRight(mant, "0")
		if mant != "" {
			mant = "." + mant
		}
		return prefix + intStr[:1] + mant + suffix
	}

	fracDigits := width - used - 1
	if fracDigits < 1 || rem.IsZero() {
		return prefix + intStr
	}

	scaled := rem.Mul(UBigFrom32(10).Pow32(uint32(fracDigits)))
	scaled.QuoMut(r.den)
	digits := scaled.String()
	if pad := fracDigits - len(digits); pad > 0 {
		digits = strings.Repeat("0", pad) + digits
	}
	frac := strings.TrimRight(digits, "0")
	if frac == "" {
		return prefix + intStr
	}
	return prefix + intStr + "." + frac
}

func (r Rat) MarshalText() ([]byte, error) { return []byte(r.String()), nil }

func (r *Rat) UnmarshalText(b []byte) error {
	v, err := RatFromString(string(b))
	if err != nil {
		return err
	}
	*r = v
	return nil
}

func (r Rat) MarshalJSON() ([]byte, error) {
	return []byte(`"` + r.String() + `"`), nil
}

func (r *Rat) UnmarshalJSON(b []byte) error {
	if len(b) >= 2 && b[0] == '"' && b[len(b)-1] == '"' {
		b = b[1 : len(b)-1]
	}
	return r.UnmarshalText(b)
}
