/*
Package arb provides exact arbitrary-precision unsigned integers (UBig),
signed integers (Big) and rational numbers (Rat), plus iteratively
converging evaluators for exp, ln, pow, trigonometric functions and
famous constants.

UBig, Big and Rat are independently owned values; operations return new
values, and every arithmetic operation also has an explicitly named
in-place 'Mut' variant to avoid reallocating in chained calculations:

	a := arb.UBigFrom64(math.MaxUint64)
	b := a.Mul(a)        // a is untouched
	a.MulMut(a)          // a is squared in place

Values can be created from a variety of sources:

	UBigFromRaw(limbs []uint32) UBig
	UBigFrom64(v uint64) UBig
	UBigFrom32(v uint32) UBig
	UBigFromString(s string) (UBig, error)
	UBigFromBigInt(v *big.Int) (UBig, bool)
	BigFrom64(v int64) Big
	BigFromString(s string) (Big, error)
	RatFrom64(v int64) Rat
	RatFromFrac(num, den Big) Rat
	RatFromString(s string) (Rat, error)
	RatFromFloat64(f float64) (Rat, error)

Strings may use underscores as digit group separators and a "0x" prefix
for hexadecimal; Rat additionally accepts "n/d" fractions, a decimal
point and an exponent marker. Parse failures are reported as *ParseError
values.

The transcendental evaluators (ExpIter, LnIter, PowIter, SinIter, ...)
take an explicit iteration count; there is no automatic convergence
detection, so accuracy is entirely the caller's responsibility. Results
are exact rationals approximating the true value, and can be rendered
with Rat.ToApproxString.

Misuse of an operation's contract (division by zero, UBig subtraction
that would underflow, logarithm of zero or a negative number) panics.
Expected failures (malformed text, non-finite floats) return errors, and
narrowing conversions report an ok bool.

UBig, Big and Rat implement fmt.Stringer, fmt.Formatter,
encoding.TextMarshaler, encoding.TextUnmarshaler, json.Marshaler and
json.Unmarshaler.
*/
package arb
