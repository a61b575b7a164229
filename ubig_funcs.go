package arb

// Log2 returns floor(log2(u)). Log2 of 1 is 0; Log2 of zero panics.
func (u UBig) Log2() uint {
	if u.IsZero() {
		panic("arb: log2 of zero")
	}
	return uint(len(u.limbs)-1)*limbBits + log2w(u.limbs[len(u.limbs)-1])
}

// Log2Accurate returns trunc(log2(u) * 2^24) as a fixed-point value.
//
// The value is squared 24 times (three rounds of eight), truncating back
// down to three limbs between rounds and accounting for the discarded
// bits, so that the exact floor-log2 of the final value carries 24
// fractional bits of the original's log2. The 24-bit precision is a
// property of the schedule, not a parameter.
//
// Warning: this is very expensive; the intermediate values reach several
// hundred limbs.
func (u UBig) Log2Accurate() UBig {
	result := ubigZero()
	cur := u.Clone()

	for round := 0; round < 3; round++ {
		if len(cur.limbs) > 3 {
			result.AddMut(UBigFrom64(uint64(len(cur.limbs)-3) * limbBits))
			cur.RshMut(uint(len(cur.limbs)-3) * limbBits)
		}

		// cur = cur^256
		for i := 0; i < 8; i++ {
			cur.MulMut(cur)
		}

		result.Mul32Mut(256)
	}

	result.AddMut(UBigFrom64(uint64(cur.Log2())))
	return result
}

// Sqrt returns floor(sqrt(u)), by digit-by-digit refinement: alternately
// grow the candidate while its square is below u and shrink it while the
// square is above, quartering the step each pass until it reaches zero.
func (u UBig) Sqrt() UBig {
	var div UBig
	if len(u.limbs) > 2 {
		div = u.Rsh(limbBits)
	} else {
		div = UBigFrom32(1 << 30)
	}
	result := ubigZero()

	for {
		for result.Mul(result).LessThan(u) {
			result.AddMut(div)
		}

		div.Quo32Mut(4)
		if div.Cmp32(4) < 0 {
			div = ubigOne()
		}

		for result.Mul(result).GreaterThan(u) {
			result.SubMut(div)
		}

		div.Quo32Mut(4)
		if div.IsZero() {
			break
		}
	}

	return result
}

// IsPrime reports whether u is prime, by trial division up to
// floor(sqrt(u)) + 1. When that bound fits a machine word the division is
// native; beyond that it falls back to big-integer trial division by odd
// candidates, which is correct but hopelessly slow for large prime inputs.
// The fallback is a documented limitation, not a fixable defect of the
// algorithm's users.
func (u UBig) IsPrime() bool {
	if u.isEven() {
		return len(u.limbs) == 1 && u.limbs[0] == 2
	}
	if u.IsOne() {
		return false
	}

	bound := u.Sqrt()
	bound.Add32Mut(1)

	if b, ok := bound.AsUint32(); ok {
		// sqrt(u)+1 fits 32 bits, so u fits 64.
		v, _ := u.AsUint64()
		for div := uint64(3); div < uint64(b); div += 2 {
			if v%div == 0 {
				return false
			}
		}
		return true
	}

	for div := uint32(3); ; div += 2 {
		if u.Rem32(div) == 0 {
			return false
		}
		if div > maxUint32-4 {
			break
		}
	}

	d := UBigFrom64(maxUint32 + 2) // first odd candidate past 32 bits
	for d.Mul(d).LessOrEqualTo(u) {
		if u.Rem(d).IsZero() {
			return false
		}
		d.Add32Mut(2)
	}
	return true
}

// PrimeFactors returns the prime factorization of u in ascending order,
// with multiplicity. PrimeFactors of 1 is [1] and of 0 is [0]; every other
// result contains only primes whose product is u.
func (u UBig) PrimeFactors() []UBig {
	cur := u.Clone()
	var result []UBig

	for cur.Cmp32(1) > 0 && cur.isEven() {
		cur.Quo32Mut(2)
		result = append(result, UBigFrom32(2))
	}

	for div := uint32(3); ; div += 2 {
		if cur.LessThan(UBigFrom64(uint64(div) * uint64(div))) {
			break
		}
		for cur.Rem32(div) == 0 {
			cur.Quo32Mut(div)
			result = append(result, UBigFrom32(div))
		}
		if div > maxUint32-4 {
			break
		}
	}

	d := UBigFrom32(maxUint32)
	for d.Mul(d).LessOrEqualTo(cur) {
		for cur.Rem(d).IsZero() {
			cur.QuoMut(d)
			result = append(result, d.Clone())
		}
		d.Add32Mut(2)
	}

	if cur.Cmp32(1) > 0 || len(result) == 0 {
		result = append(result, cur)
	}
	return result
}

// GcdUBig returns the greatest common divisor of a and b.
func GcdUBig(a, b UBig) UBig {
	if a.IsZero() {
		return b.Clone()
	}

	x, y := b.Rem(a), a.Clone()
	for !x.IsZero() {
		x, y = y.Rem(x), x
	}
	return y
}

// factorial20 is 20!, the largest factorial that fits a uint64.
var factorial20 = []uint32{2192834560, 566454140}

// factorial128 is 128!.
var factorial128 = []uint32{
	0, 0, 0, 2147483648, 1653232837,
	595720861, 948844160, 1991672462,
	2500910141, 2421394908, 1199558731,
	684006397, 4097118094, 3861115933,
	3624737256, 703871983, 1875727135,
	2498653150, 380736459, 2256750694,
	3845178240, 3753984225, 4581,
}

// Factorial returns n!. Small inputs use native arithmetic; larger ones
// continue from precomputed pivots with single-limb multiplies, batching
// factors into a machine word before each big multiply. The tiers are a
// speedup only; the result is identical to the naive recurrence.
func Factorial(n uint32) UBig {
	if n < 21 {
		result := uint64(1)
		for i := uint64(2); i <= uint64(n); i++ {
			result *= i
		}
		return UBigFrom64(result)
	}

	if n < 129 {
		result := UBigFromRaw(factorial20)
		buf := uint32(1)
		for i := uint32(21); i <= n; i++ {
			buf *= i
			if buf > 0x1_000_000 {
				result.Mul32Mut(buf)
				buf = 1
			}
		}
		if buf > 1 {
			result.Mul32Mut(buf)
		}
		return result
	}

	result := UBigFromRaw(factorial128)
	buf := ubigOne()
	for i := uint32(129); i <= n; i++ {
		buf.Mul32Mut(i)
		if len(buf.limbs) > 3 {
			result.MulMut(buf)
			buf = ubigOne()
		}
	}
	result.MulMut(buf)
	return result
}

var fibonacciSmall = []uint32{
	0, 1, 1, 2, 3, 5, 8, 13,
	21, 34, 55, 89, 144, 233,
}

// Fibonacci returns the n'th Fibonacci number (Fibonacci(0) is 0). Results
// up to Fibonacci(93) are computed in a native word; beyond that the
// recurrence continues from precomputed pivots with big additions.
func Fibonacci(n uint32) UBig {
	if n < 14 {
		return UBigFrom32(fibonacciSmall[n])
	}

	if n < 94 {
		last, llast := uint64(233), uint64(144)
		var result uint64
		for i := uint32(0); i < n-13; i++ {
			result = last + llast
			llast = last
			last = result
		}
		return UBigFrom64(result)
	}

	last := UBigFrom64(12200160415121876738)  // fibonacci(93)
	llast := UBigFrom64(7540113804746346429)  // fibonacci(92)
	result := ubigZero()
	for i := uint32(0); i < n-93; i++ {
		result = last.Add(llast)
		llast = last
		last = result
	}
	return result
}

// RandUBig returns a value of exactly the given limb count drawn from src.
// Each limb is uniform except that zero limbs are bumped to 1, which keeps
// the length exact; this is not a uniform distribution and is in no way
// cryptographically secure. A limb count of zero or less returns zero.
func RandUBig(src RandSource, limbs int) UBig {
	if limbs <= 0 {
		return ubigZero()
	}
	ls := make([]uint32, limbs)
	for i := range ls {
		v := uint32(src.Uint64())
		if v == 0 {
			v = 1
		}
		ls[i] = v
	}
	return UBig{limbs: ls}
}
