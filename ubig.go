package arb

import (
	"fmt"
	"math/big"
	"strconv"
)

// UBig is an unsigned integer of arbitrary magnitude, stored as a sequence
// of 32-bit limbs, least significant first.
//
// The representation is kept canonical at all times: the limb sequence
// never has a most-significant zero limb, except that zero itself is
// exactly one zero limb. Every constructor and every Mut operation
// restores this invariant before returning.
type UBig struct {
	limbs []uint32
}

// UBigFromRaw creates a UBig from a limb sequence, least significant limb
// first. The slice is copied and normalized; it may be in any state.
func UBigFromRaw(limbs []uint32) UBig {
	if len(limbs) == 0 {
		return ubigZero()
	}
	cp := make([]uint32, len(limbs))
	copy(cp, limbs)
	return UBig{limbs: norm(cp)}
}

func UBigFrom64(v uint64) UBig {
	if v > maxUint32 {
		return UBig{limbs: []uint32{uint32(v & limbMask), uint32(v >> limbBits)}}
	}
	return UBig{limbs: []uint32{uint32(v)}}
}

func UBigFrom32(v uint32) UBig { return UBig{limbs: []uint32{v}} }
func UBigFrom16(v uint16) UBig { return UBigFrom32(uint32(v)) }
func UBigFrom8(v uint8) UBig   { return UBigFrom32(uint32(v)) }

// UBigFromBigInt creates a UBig from a big.Int. A negative input cannot be
// represented; ok is set to false and zero is returned.
func UBigFromBigInt(v *big.Int) (out UBig, ok bool) {
	if v.Sign() < 0 {
		return ubigZero(), false
	}
	return ubigFromBytes(v.Bytes()), true
}

// ubigFromBytes builds a UBig from big-endian bytes, as produced by
// big.Int.Bytes.
func ubigFromBytes(b []byte) UBig {
	// big.Int.Bytes returns nothing at all for zero:
	if len(b) == 0 {
		return ubigZero()
	}
	limbs := make([]uint32, (len(b)+3)/4)
	for i := len(b) - 1; i >= 0; i-- {
		sh := uint(len(b)-1-i) * 8
		limbs[sh/limbBits] |= uint32(b[i]) << (sh % limbBits)
	}
	return UBig{limbs: norm(limbs)}
}

func ubigZero() UBig { return UBig{limbs: []uint32{0}} }
func ubigOne() UBig  { return UBig{limbs: []uint32{1}} }

// norm strips most-significant zero limbs, leaving at least one limb.
func norm(limbs []uint32) []uint32 {
	n := len(limbs)
	for n > 1 && limbs[n-1] == 0 {
		n--
	}
	return limbs[:n]
}

func (u UBig) Clone() UBig {
	cp := make([]uint32, len(u.limbs))
	copy(cp, u.limbs)
	return UBig{limbs: cp}
}

// len returns the limb count of the canonical representation.
func (u UBig) len() int { return len(u.limbs) }

// isValid reports whether the representation invariant holds. It is only
// consulted by tests and the fuzzer.
func (u UBig) isValid() bool {
	if len(u.limbs) == 0 {
		return false
	}
	return len(u.limbs) == 1 || u.limbs[len(u.limbs)-1] != 0
}

func (u UBig) IsZero() bool { return len(u.limbs) == 1 && u.limbs[0] == 0 }
func (u UBig) IsOne() bool  { return len(u.limbs) == 1 && u.limbs[0] == 1 }
func (u UBig) isEven() bool { return u.limbs[0]&1 == 0 }

func (u UBig) Cmp(n UBig) int {
	if len(u.limbs) != len(n.limbs) {
		if len(u.limbs) > len(n.limbs) {
			return 1
		}
		return -1
	}
	for i := len(u.limbs) - 1; i >= 0; i-- {
		if u.limbs[i] != n.limbs[i] {
			if u.limbs[i] > n.limbs[i] {
				return 1
			}
			return -1
		}
	}
	return 0
}

// Cmp32 compares against a single-limb value without allocating.
func (u UBig) Cmp32(n uint32) int {
	if len(u.limbs) > 1 {
		return 1
	}
	if u.limbs[0] > n {
		return 1
	} else if u.limbs[0] < n {
		return -1
	}
	return 0
}

func (u UBig) Equal(n UBig) bool            { return u.Cmp(n) == 0 }
func (u UBig) LessThan(n UBig) bool         { return u.Cmp(n) < 0 }
func (u UBig) LessOrEqualTo(n UBig) bool    { return u.Cmp(n) <= 0 }
func (u UBig) GreaterThan(n UBig) bool      { return u.Cmp(n) > 0 }
func (u UBig) GreaterOrEqualTo(n UBig) bool { return u.Cmp(n) >= 0 }

// BitLen returns the number of bits needed to represent u; BitLen of zero
// is 0.
func (u UBig) BitLen() int {
	top := u.limbs[len(u.limbs)-1]
	if top == 0 {
		return 0
	}
	return (len(u.limbs)-1)*limbBits + int(log2w(top)) + 1
}

// AsUint64 converts u to a uint64 if it fits; ok reports whether the value
// was representable.
func (u UBig) AsUint64() (v uint64, ok bool) {
	switch len(u.limbs) {
	case 1:
		return uint64(u.limbs[0]), true
	case 2:
		return uint64(u.limbs[1])<<limbBits | uint64(u.limbs[0]), true
	}
	return 0, false
}

// AsUint32 converts u to a uint32 if it fits.
func (u UBig) AsUint32() (v uint32, ok bool) {
	if len(u.limbs) > 1 {
		return 0, false
	}
	return u.limbs[0], true
}

func (u UBig) IntoBigInt(b *big.Int) {
	bts := make([]byte, len(u.limbs)*4)
	for i, limb := range u.limbs {
		off := len(bts) - i*4
		bts[off-1] = byte(limb)
		bts[off-2] = byte(limb >> 8)
		bts[off-3] = byte(limb >> 16)
		bts[off-4] = byte(limb >> 24)
	}
	b.SetBytes(bts)
}

func (u UBig) AsBigInt() *big.Int {
	var v big.Int
	u.IntoBigInt(&v)
	return &v
}

func (u UBig) String() string {
	if v, ok := u.AsUint64(); ok {
		return strconv.FormatUint(v, 10)
	}

	// Peel off 9 decimal digits per division; the chunks come out least
	// significant first.
	var chunks []uint32
	rest := u.Clone()
	for !rest.IsZero() {
		r := rest.QuoRem32Mut(1e9)
		chunks = append(chunks, r)
	}

	out := strconv.FormatUint(uint64(chunks[len(chunks)-1]), 10)
	for i := len(chunks) - 2; i >= 0; i-- {
		out += fmt.Sprintf("%09d", chunks[i])
	}
	return out
}

func (u UBig) Format(s fmt.State, c rune) {
	u.AsBigInt().Format(s, c)
}

func (u UBig) MarshalText() ([]byte, error) { return []byte(u.String()), nil }

func (u *UBig) UnmarshalText(b []byte) error {
	v, err := UBigFromString(string(b))
	if err != nil {
		return err
	}
	*u = v
	return nil
}

func (u UBig) MarshalJSON() ([]byte, error) {
	return []byte(`"` + u.String() + `"`), nil
}

func (u *UBig) UnmarshalJSON(b []byte) error {
	if len(b) >= 2 && b[0] == '"' && b[len(b)-1] == '"' {
		b = b[1 : len(b)-1]
	}
	return u.UnmarshalText(b)
}
