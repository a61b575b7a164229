package arb

// Add returns u + n.
func (u UBig) Add(n UBig) UBig {
	v := u.Clone()
	v.AddMut(n)
	return v
}

// AddMut adds n to u in place.
func (u *UBig) AddMut(n UBig) {
	for len(u.limbs) < len(n.limbs) {
		u.limbs = append(u.limbs, 0)
	}

	var carry uint32
	for i := range u.limbs {
		var y uint32
		if i < len(n.limbs) {
			y = n.limbs[i]
		} else if carry == 0 {
			return
		}
		u.limbs[i], carry = addWWW(u.limbs[i], y, carry)
	}
	if carry != 0 {
		u.limbs = append(u.limbs, carry)
	}
}

// Add32 returns u + n.
func (u UBig) Add32(n uint32) UBig {
	v := u.Clone()
	v.Add32Mut(n)
	return v
}

func (u *UBig) Add32Mut(n uint32) {
	carry := n
	for i := 0; carry != 0 && i < len(u.limbs); i++ {
		u.limbs[i], carry = addWWW(u.limbs[i], carry, 0)
	}
	if carry != 0 {
		u.limbs = append(u.limbs, carry)
	}
}

// Sub returns u - n. It panics when n > u; a UBig cannot go negative, and
// asking it to is a bug at the call site, not a recoverable condition.
func (u UBig) Sub(n UBig) UBig {
	v := u.Clone()
	v.SubMut(n)
	return v
}

// SubMut subtracts n from u in place. It panics when n > u.
func (u *UBig) SubMut(n UBig) {
	if len(n.limbs) > len(u.limbs) {
		panic("arb: subtraction underflow")
	}

	var borrow uint32
	for i := 0; i < len(n.limbs); i++ {
		u.limbs[i], borrow = subWWW(u.limbs[i], n.limbs[i], borrow)
	}
	for i := len(n.limbs); borrow != 0 && i < len(u.limbs); i++ {
		u.limbs[i], borrow = subWWW(u.limbs[i], 0, borrow)
	}
	if borrow != 0 {
		panic("arb: subtraction underflow")
	}
	u.limbs = norm(u.limbs)
}

// Sub32 returns u - n. It panics when n > u.
func (u UBig) Sub32(n uint32) UBig {
	v := u.Clone()
	v.Sub32Mut(n)
	return v
}

func (u *UBig) Sub32Mut(n uint32) {
	borrow := n
	for i := 0; borrow != 0 && i < len(u.limbs); i++ {
		u.limbs[i], borrow = subWWW(u.limbs[i], borrow, 0)
	}
	if borrow != 0 {
		panic("arb: subtraction underflow")
	}
	u.limbs = norm(u.limbs)
}

// Mul returns u * n, by schoolbook long multiplication. Each limb pair
// product is accumulated in a uint64, which cannot overflow: the largest
// possible x*y + acc + carry is exactly the uint64 maximum.
func (u UBig) Mul(n UBig) UBig {
	if u.IsZero() || n.IsZero() {
		return ubigZero()
	}

	res := make([]uint32, len(u.limbs)+len(n.limbs))
	for i, x := range u.limbs {
		if x == 0 {
			continue
		}
		var carry uint32
		for j, y := range n.limbs {
			carry, res[i+j] = mulAddWWW(x, y, res[i+j], carry)
		}
		for k := i + len(n.limbs); carry != 0; k++ {
			res[k], carry = addWWW(res[k], carry, 0)
		}
	}
	return UBig{limbs: norm(res)}
}

// MulMut multiplies u by n in place. n may be u itself.
func (u *UBig) MulMut(n UBig) {
	u.limbs = u.Mul(n).limbs
}

// Mul32 returns u * n.
func (u UBig) Mul32(n uint32) UBig {
	v := u.Clone()
	v.Mul32Mut(n)
	return v
}

func (u *UBig) Mul32Mut(n uint32) {
	var carry uint32
	for i := range u.limbs {
		carry, u.limbs[i] = mulAddWWW(u.limbs[i], n, 0, carry)
	}
	if carry != 0 {
		u.limbs = append(u.limbs, carry)
	} else {
		u.limbs = norm(u.limbs)
	}
}

// QuoRem returns the quotient and remainder of u / by. It panics when by
// is zero.
//
// Single-limb divisors take a fast path; the general case is restoring
// binary long division, walking from the dividend's most significant bit.
func (u UBig) QuoRem(by UBig) (q, r UBig) {
	if by.IsZero() {
		panic("arb: division by zero")
	}

	if w, ok := by.AsUint32(); ok {
		q = u.Clone()
		rem := q.QuoRem32Mut(w)
		return q, UBigFrom32(rem)
	}

	if u.Cmp(by) < 0 {
		return ubigZero(), u.Clone()
	}

	shift := uint(u.BitLen() - by.BitLen())
	d := by.Lsh(shift)
	q, r = ubigZero(), u.Clone()

	for {
		q.LshMut(1)
		if r.Cmp(d) >= 0 {
			r.SubMut(d)
			q.limbs[0] |= 1
		}
		if shift == 0 {
			break
		}
		shift--
		d.RshMut(1)
	}
	return q, r
}

// Quo returns u / by, truncated. It panics when by is zero.
func (u UBig) Quo(by UBig) UBig {
	q, _ := u.QuoRem(by)
	return q
}

// Rem returns u mod by. It panics when by is zero.
func (u UBig) Rem(by UBig) UBig {
	_, r := u.QuoRem(by)
	return r
}

func (u *UBig) QuoMut(by UBig) { u.limbs = u.Quo(by).limbs }
func (u *UBig) RemMut(by UBig) { u.limbs = u.Rem(by).limbs }

// QuoRem32 returns the quotient and remainder of u / by. It panics when by
// is zero.
func (u UBig) QuoRem32(by uint32) (q UBig, r uint32) {
	q = u.Clone()
	r = q.QuoRem32Mut(by)
	return q, r
}

// QuoRem32Mut divides u by a single limb in place and returns the
// remainder. It panics when by is zero.
func (u *UBig) QuoRem32Mut(by uint32) (r uint32) {
	if by == 0 {
		panic("arb: division by zero")
	}
	for i := len(u.limbs) - 1; i >= 0; i-- {
		u.limbs[i], r = divWW(r, u.limbs[i], by)
	}
	u.limbs = norm(u.limbs)
	return r
}

// Quo32 returns u / by, truncated. It panics when by is zero.
func (u UBig) Quo32(by uint32) UBig {
	q, _ := u.QuoRem32(by)
	return q
}

// Rem32 returns u mod by. It panics when by is zero.
func (u UBig) Rem32(by uint32) uint32 {
	if by == 0 {
		panic("arb: division by zero")
	}
	var r uint32
	for i := len(u.limbs) - 1; i >= 0; i-- {
		_, r = divWW(r, u.limbs[i], by)
	}
	return r
}

func (u *UBig) Quo32Mut(by uint32) { u.QuoRem32Mut(by) }

// Lsh returns u shifted left by n bits.
func (u UBig) Lsh(n uint) UBig {
	if n == 0 || u.IsZero() {
		return u.Clone()
	}

	limbs, bits := n/limbBits, n%limbBits
	res := make([]uint32, uint(len(u.limbs))+limbs+1)
	if bits == 0 {
		copy(res[limbs:], u.limbs)
	} else {
		var carry uint32
		for i, x := range u.limbs {
			res[limbs+uint(i)] = x<<bits | carry
			carry = x >> (limbBits - bits)
		}
		res[limbs+uint(len(u.limbs))] = carry
	}
	return UBig{limbs: norm(res)}
}

func (u *UBig) LshMut(n uint) { u.limbs = u.Lsh(n).limbs }

// Rsh returns u shifted right by n bits. Bits shifted past the least
// significant position are discarded, so this is truncating division by a
// power of two.
func (u UBig) Rsh(n uint) UBig {
	if n == 0 {
		return u.Clone()
	}

	limbs, bits := int(n/limbBits), n%limbBits
	if limbs >= len(u.limbs) {
		return ubigZero()
	}

	res := make([]uint32, len(u.limbs)-limbs)
	if bits == 0 {
		copy(res, u.limbs[limbs:])
	} else {
		for i := range res {
			x := u.limbs[limbs+i] >> bits
			if limbs+i+1 < len(u.limbs) {
				x |= u.limbs[limbs+i+1] << (limbBits - bits)
			}
			res[i] = x
		}
	}
	return UBig{limbs: norm(res)}
}

func (u *UBig) RshMut(n uint) { u.limbs = u.Rsh(n).limbs }

// Pow32 returns u raised to the power n, by binary exponentiation.
// Pow32(0) is 1, including for a zero base.
func (u UBig) Pow32(n uint32) UBig {
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
