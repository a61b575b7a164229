package arb

// Primitive single-limb operations. Limbs are 32 bits wide so that every
// intermediate fits a uint64 with room to spare; no operation in this file
// can overflow its accumulator.

// addWWW returns x + y + carry. carry must be 0 or 1.
func addWWW(x, y, carry uint32) (z, carryOut uint32) {
	s := uint64(x) + uint64(y) + uint64(carry)
	return uint32(s & limbMask), uint32(s >> limbBits)
}

// subWWW returns x - y - borrow. borrow must be 0 or 1.
func subWWW(x, y, borrow uint32) (z, borrowOut uint32) {
	d := uint64(x) - uint64(y) - uint64(borrow)
	return uint32(d & limbMask), uint32(d >> 63)
}

// mulAddWWW returns the double-limb result of x*y + acc + carry.
func mulAddWWW(x, y, acc, carry uint32) (hi, lo uint32) {
	t := uint64(x)*uint64(y) + uint64(acc) + uint64(carry)
	return uint32(t >> limbBits), uint32(t & limbMask)
}

// divWW divides the double limb (hi, lo) by the single limb d, returning
// quotient and remainder. hi must be less than d or the quotient overflows.
func divWW(hi, lo, d uint32) (q, r uint32) {
	t := uint64(hi)<<limbBits | uint64(lo)
	return uint32(t / uint64(d)), uint32(t % uint64(d))
}

// log2w returns floor(log2(n)) for n > 0, by successively dividing out
// powers of two.
func log2w(n uint32) uint {
	var result uint

	for n > 1024 {
		n /= 1024
		result += 10
	}

	for n > 32 {
		n /= 32
		result += 5
	}

	for n > 1 {
		n /= 2
		result++
	}

	return result
}
