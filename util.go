package arb

type RandSource interface {
	Uint64() uint64
}

// DifferenceUBig subtracts the smaller of a and b from the larger.
func DifferenceUBig(a, b UBig) UBig {
	if a.Cmp(b) >= 0 {
		return a.Sub(b)
	}
	return b.Sub(a)
}

func LargerUBig(a, b UBig) UBig {
	if a.Cmp(b) >= 0 {
		return a
	}
	return b
}

func SmallerUBig(a, b UBig) UBig {
	if a.Cmp(b) <= 0 {
		return a
	}
	return b
}

// RandRat returns a rational in the half-open interval [0, 1) drawn from
// src. Like RandUBig, the distribution is not uniform and the values are
// only suitable for tests and experiments.
func RandRat(src RandSource) Rat {
	den := RandUBig(src, 2)
	num := RandUBig(src, 2).Rem(den)
	v := Rat{num: Big{mag: num}, den: den}
	v.reduce()
	return v
}
