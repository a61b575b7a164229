package arb

import (
	"fmt"
	"math/big"
)

// Big is a signed integer of arbitrary magnitude: a UBig plus a sign flag.
//
// Zero is never negative; every operation that could produce a zero
// magnitude clears the sign, so there is exactly one representation of
// every value.
type Big struct {
	mag UBig
	neg bool
}

func BigFromUBig(mag UBig) Big { return Big{mag: mag.Clone()} }

func BigFrom64(v int64) Big {
	if v < 0 {
		return Big{mag: UBigFrom64(uint64(-(v + 1)) + 1), neg: true}
	}
	return Big{mag: UBigFrom64(uint64(v))}
}

func BigFrom32(v int32) Big { return BigFrom64(int64(v)) }

func BigFromBigInt(v *big.Int) Big {
	return Big{mag: ubigFromBytes(v.Bytes()), neg: v.Sign() < 0}
}

func bigZero() Big { return Big{mag: ubigZero()} }
func bigOne() Big  { return Big{mag: ubigOne()} }

func (b Big) Clone() Big { return Big{mag: b.mag.Clone(), neg: b.neg} }

func (b Big) isValid() bool {
	return b.mag.isValid() && !(b.neg && b.mag.IsZero())
}

func (b Big) IsZero() bool { return !b.neg && b.mag.IsZero() }
func (b Big) IsNeg() bool  { return b.neg }
func (b Big) IsOne() bool  { return !b.neg && b.mag.IsOne() }

// Sign returns -1 for negative values, 0 for zero and 1 for positive
// values.
func (b Big) Sign() int {
	if b.neg {
		return -1
	} else if b.mag.IsZero() {
		return 0
	}
	return 1
}

// Abs returns the absolute value of b as a UBig.
func (b Big) Abs() UBig { return b.mag.Clone() }

func (b *Big) AbsMut() { b.neg = false }

func (b Big) Neg() Big {
	v := b.Clone()
	v.NegMut()
	return v
}

func (b *Big) NegMut() {
	if !b.mag.IsZero() {
		b.neg = !b.neg
	}
}

func (b Big) Add(n Big) Big {
	if b.neg == n.neg {
		return Big{mag: b.mag.Add(n.mag), neg: b.neg}
	}

	switch b.mag.Cmp(n.mag) {
	case 1:
		return Big{mag: b.mag.Sub(n.mag), neg: b.neg}
	case -1:
		return Big{mag: n.mag.Sub(b.mag), neg: n.neg}
	default:
		return bigZero()
	}
}

func (b *Big) AddMut(n Big) { *b = b.Add(n) }

func (b Big) Sub(n Big) Big {
	n = n.Clone()
	n.NegMut()
	return b.Add(n)
}

func (b *Big) SubMut(n Big) { *b = b.Sub(n) }

func (b Big) Mul(n Big) Big {
	mag := b.mag.Mul(n.mag)
	return Big{mag: mag, neg: b.neg != n.neg && !mag.IsZero()}
}

func (b *Big) MulMut(n Big) { *b = b.Mul(n) }

// QuoRem returns the quotient and remainder of b / n, truncated toward
// zero: the quotient's sign is the XOR of the operand signs and the
// remainder takes the dividend's sign. This is T-division (like Go's
// native integers), not flooring division. It panics when n is zero.
func (b Big) QuoRem(n Big) (q, r Big) {
	qm, rm := b.mag.QuoRem(n.mag)
	q = Big{mag: qm, neg: b.neg != n.neg && !qm.IsZero()}
	r = Big{mag: rm, neg: b.neg && !rm.IsZero()}
	return q, r
}

func (b Big) Quo(n Big) Big {
	q, _ := b.QuoRem(n)
	return q
}

func (b Big) Rem(n Big) Big {
	_, r := b.QuoRem(n)
	return r
}

func (b *Big) QuoMut(n Big) { *b = b.Quo(n) }
func (b *Big) RemMut(n Big) { *b = b.Rem(n) }

func (b Big) Add64(v int64) Big { return b.Add(BigFrom64(v)) }
func (b Big) Sub64(v int64) Big { return b.Sub(BigFrom64(v)) }
func (b Big) Mul64(v int64) Big { return b.Mul(BigFrom64(v)) }

// Lsh returns b shifted left by n bits; the sign is unchanged.
func (b Big) Lsh(n uint) Big {
	return Big{mag: b.mag.Lsh(n), neg: b.neg}
}

// Rsh returns b shifted right by n bits, truncating the magnitude toward
// zero (so Rsh of -1 by any amount is zero, unlike two's complement).
func (b Big) Rsh(n uint) Big {
	mag := b.mag.Rsh(n)
	return Big{mag: mag, neg: b.neg && !mag.IsZero()}
}

// Log2Accurate returns trunc(log2(b) * 2^24). It panics for negative
// values; see UBig.Log2Accurate.
func (b Big) Log2Accurate() Big {
	if b.neg {
		panic("arb: log2 of a negative number")
	}
	return Big{mag: b.mag.Log2Accurate()}
}

// Cmp orders by sign first, then magnitude.
func (b Big) Cmp(n Big) int {
	if b.neg != n.neg {
		if b.neg {
			return -1
		}
		return 1
	}
	c := b.mag.Cmp(n.mag)
	if b.neg {
		return -c
	}
	return c
}

func (b Big) Equal(n Big) bool            { return b.Cmp(n) == 0 }
func (b Big) LessThan(n Big) bool         { return b.Cmp(n) < 0 }
func (b Big) LessOrEqualTo(n Big) bool    { return b.Cmp(n) <= 0 }
func (b Big) GreaterThan(n Big) bool      { return b.Cmp(n) > 0 }
func (b Big) GreaterOrEqualTo(n Big) bool { return b.Cmp(n) >= 0 }

// AsInt64 converts b to an int64 if it fits; ok reports whether the value
// was representable.
func (b Big) AsInt64() (v int64, ok bool) {
	m, ok := b.mag.AsUint64()
	if !ok {
		return 0, false
	}
	if b.neg {
		if m > maxInt64+1 {
			return 0, false
		}
		return -int64(m - 1) - 1, true
	}
	if m > maxInt64 {
		return 0, false
	}
	return int64(m), true
}

// AsUint64 converts b to a uint64 if it fits; negative values never fit.
func (b Big) AsUint64() (v uint64, ok bool) {
	if b.neg {
		return 0, false
	}
	return b.mag.AsUint64()
}

func (b Big) IntoBigInt(v *big.Int) {
	b.mag.IntoBigInt(v)
	if b.neg {
		v.Neg(v)
	}
}

func (b Big) AsBigInt() *big.Int {
	var v big.Int
	b.IntoBigInt(&v)
	return &v
}

func (b Big) String() string {
	if b.neg {
		return "-" + b.mag.String()
	}
	return b.mag.String()
}

func (b Big) Format(s fmt.State, c rune) {
	b.AsBigInt().Format(s, c)
}

func (b Big) MarshalText() ([]byte, error) { return []byte(b.String()), nil }

func (b *Big) UnmarshalText(bts []byte) error {
	v, err := BigFromString(string(bts))
	if err != nil {
		return err
	}
	*b = v
	return nil
}

func (b Big) MarshalJSON() ([]byte, error) {
	return []byte(`"` + b.String() + `"`), nil
}

func (b *Big) UnmarshalJSON(bts []byte) error {
	if len(bts) >= 2 && bts[0] == '"' && bts[len(bts)-1] == '"' {
		bts = bts[1 : len(bts)-1]
	}
	return b.UnmarshalText(bts)
}
