package arb

import (
	"math/big"
	"testing"
)

var (
	BenchBigIntResult *big.Int
	BenchBigRatResult *big.Rat
	BenchBoolResult   bool
	BenchIntResult    int
	BenchRatResult    Rat
	BenchStringResult string
	BenchUBigResult   UBig
	BenchUint64Result uint64
	BenchUint32Result uint32

	BenchUint641, BenchUint642 uint64 = 12093749018, 18927348917

	benchUBig1 = UBigFrom64(12093749018).Lsh(96).Add32(987654321)
	benchUBig2 = UBigFrom64(18927348917).Lsh(64).Add32(123456789)
	benchRat1  = RatFromFrac64(355, 113)
	benchRat2  = RatFromFrac64(-1393, 4096)
)

func BenchmarkUint64Mul(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchUint64Result = BenchUint641 * BenchUint642
	}
}

func BenchmarkUint64Add(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchUint64Result = BenchUint641 + BenchUint642
	}
}

func BenchmarkUint64Div(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchUint64Result = BenchUint641 / BenchUint642
	}
}

func BenchmarkUBigAdd(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchUBigResult = benchUBig1.Add(benchUBig2)
	}
}

func BenchmarkUBigMul(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchUBigResult = benchUBig1.Mul(benchUBig2)
	}
}

func BenchmarkUBigQuoRem(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchUBigResult, _ = benchUBig1.QuoRem(benchUBig2)
	}
}

func BenchmarkUBigQuoRem32(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchUBigResult, BenchUint32Result = benchUBig1.QuoRem32(121525124)
	}
}

func BenchmarkUBigString(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchStringResult = benchUBig1.String()
	}
}

func BenchmarkRatAdd(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchRatResult = benchRat1.Add(benchRat2)
	}
}

func BenchmarkRatMul(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchRatResult = benchRat1.Mul(benchRat2)
	}
}

func BenchmarkBigIntAdd(b *testing.B) {
	v1 := benchUBig1.AsBigInt()
	v2 := benchUBig2.AsBigInt()
	for i := 0; i < b.N; i++ {
		var dest big.Int
		dest.Add(v1, v2)
	}
}

func BenchmarkBigIntMul(b *testing.B) {
	v1 := benchUBig1.AsBigInt()
	v2 := benchUBig2.AsBigInt()
	for i := 0; i < b.N; i++ {
		var dest big.Int
		dest.Mul(v1, v2)
	}
}

func BenchmarkBigIntDiv(b *testing.B) {
	v1 := benchUBig1.AsBigInt()
	v2 := benchUBig2.AsBigInt()
	for i := 0; i < b.N; i++ {
		var dest big.Int
		dest.Div(v1, v2)
	}
}

func BenchmarkBigRatAdd(b *testing.B) {
	v1 := benchRat1.AsBigRat()
	v2 := benchRat2.AsBigRat()
	for i := 0; i < b.N; i++ {
		var dest big.Rat
		dest.Add(v1, v2)
	}
}

func BenchmarkBigRatMul(b *testing.B) {
	v1 := benchRat1.AsBigRat()
	v2 := benchRat2.AsBigRat()
	for i := 0; i < b.N; i++ {
		var dest big.Rat
		dest.Mul(v1, v2)
	}
}
