package arb

import (
	"errors"
	"math"
)

// ErrNonFinite is returned when converting a NaN or infinity; those have
// no rational value.
var ErrNonFinite = errors.New("arb: cannot convert non-finite float")

// RatFromFloat64 converts f to the exact rational value it represents.
// Every finite float64 is a dyadic rational, so the conversion is lossless;
// the denominator is always a power of two. The result of converting 0.1
// is therefore not 1/10 but 3602879701896397/36028797018963968, exactly as
// the float64 stores it.
func RatFromFloat64(f float64) (Rat, error) {
	bits := math.Float64bits(f)
	neg := bits>>63 == 1
	exp := int(bits>>52) & 0x7FF
	mant := bits & (1<<52 - 1)

	switch exp {
	case 0x7FF:
		return ratZero(), ErrNonFinite
	case 0:
		exp = 1 // subnormal: no implicit bit
	default:
		mant |= 1 << 52
	}
	if mant == 0 {
		return ratZero(), nil
	}

	shift := exp - 1023 - 52
	for mant&1 == 0 {
		mant >>= 1
		shift++
	}

	num := Big{mag: UBigFrom64(mant), neg: neg}
	if shift >= 0 {
		num.mag.LshMut(uint(shift))
		return Rat{num: num, den: ubigOne()}, nil
	}

	// The mantissa is odd here, so it is already coprime with 2^-shift.
	return Rat{num: num, den: ubigOne().Lsh(uint(-shift))}, nil
}

// RatFromFloat32 converts f to the exact rational value it represents.
func RatFromFloat32(f float32) (Rat, error) {
	// Widening a float32 to float64 is exact.
	return RatFromFloat64(float64(f))
}
