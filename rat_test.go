package arb

import (
	"encoding/json"
	"fmt"
	"math"
	"math/big"
	"testing"

	"github.com/shabbyrobe/golib/assert"
)

func rats(s string) Rat {
	r, err := RatFromString(s)
	if err != nil {
		panic(err)
	}
	return r
}

func TestRatFromFrac(t *testing.T) {
	for _, tc := range []struct {
		num, den int64
		out      string
	}{
		{1, 2, "1/2"},
		{2, 4, "1/2"},
		{-2, 4, "-1/2"},
		{2, -4, "-1/2"},
		{-2, -4, "1/2"},
		{0, 7, "0"},
		{0, -7, "0"},
		{6, 3, "2"},
		{14, 6, "7/3"},
	} {
		t.Run(fmt.Sprintf("%d over %d", tc.num, tc.den), func(t *testing.T) {
			tt := assert.WrapTB(t)
			v := RatFromFrac64(tc.num, tc.den)
			tt.MustAssert(v.isValid())
			tt.MustEqual(tc.out, v.String())
		})
	}
}

func TestRatFromFracZeroDen(t *testing.T) {
	mustPanic(t, "arb: zero denominator", func() {
		RatFromFrac64(1, 0)
	})
}

func TestRatArith(t *testing.T) {
	for _, tc := range []struct {
		a, b, add, sub, mul, div string
	}{
		{"1/2", "1/3", "5/6", "1/6", "1/6", "3/2"},
		{"-1/2", "1/3", "-1/6", "-5/6", "-1/6", "-3/2"},
		{"2", "3", "5", "-1", "6", "2/3"},
		{"1/2", "1/2", "1", "0", "1/4", "1"},
		{"0", "1/3", "1/3", "-1/3", "0", "0"},
	} {
		t.Run(fmt.Sprintf("%s,%s", tc.a, tc.b), func(t *testing.T) {
			tt := assert.WrapTB(t)
			a, b := rats(tc.a), rats(tc.b)
			tt.MustEqual(tc.add, a.Add(b).String())
			tt.MustEqual(tc.sub, a.Sub(b).String())
			tt.MustEqual(tc.mul, a.Mul(b).String())
			tt.MustEqual(tc.div, a.Div(b).String())
		})
	}
}

func TestRatDivByZero(t *testing.T) {
	mustPanic(t, "arb: division by zero", func() { rats("1/2").Div(rats("0")) })
	mustPanic(t, "arb: division by zero", func() { rats("0").Reci() })
}

func TestRatReci(t *testing.T) {
	for _, tc := range []struct {
		a, c string
	}{
		{"1/2", "2"},
		{"-1/2", "-2"},
		{"7/3", "3/7"},
		{"-7/3", "-3/7"},
		{"1", "1"},
	} {
		t.Run(tc.a, func(t *testing.T) {
			tt := assert.WrapTB(t)
			v := rats(tc.a).Reci()
			tt.MustAssert(v.isValid())
			tt.MustEqual(tc.c, v.String())

			// An involution:
			tt.MustAssert(rats(tc.a).Equal(v.Reci()))
		})
	}
}

func TestRatPow64(t *testing.T) {
	for _, tc := range []struct {
		a   string
		n   int64
		out string
	}{
		{"2", 10, "1024"},
		{"2", -10, "1/1024"},
		{"-2/3", 2, "4/9"},
		{"-2/3", 3, "-8/27"},
		{"-2/3", -3, "-27/8"},
		{"7/2", 0, "1"},
		{"0", 0, "1"},
		{"0", 3, "0"},
	} {
		t.Run(fmt.Sprintf("%s^%d=%s", tc.a, tc.n, tc.out), func(t *testing.T) {
			tt := assert.WrapTB(t)
			v := rats(tc.a).Pow64(tc.n)
			tt.MustAssert(v.isValid())
			tt.MustEqual(tc.out, v.String())
		})
	}
}

func TestRatFracTruncFloor(t *testing.T) {
	for _, tc := range []struct {
		before, trun, floor string
	}{
		{"3.7", "3", "3"},
		{"-3.7", "-3", "-4"},
		{"4.0", "4", "4"},
		{"-4.0", "-4", "-4"},
		{"0.0", "0", "0"},
		{"-0.0", "0", "0"},
	} {
		t.Run(tc.before, func(t *testing.T) {
			tt := assert.WrapTB(t)
			v := rats(tc.before)
			tt.MustEqual(tc.trun, v.Truncate().String())
			tt.MustEqual(tc.floor, v.Floor().String())

			// truncate + frac must reassemble the value:
			trun, frac := v.TruncateAndFrac()
			tt.MustAssert(v.Equal(RatFromBig(trun).Add(frac)))
		})
	}
}

func TestRatRound(t *testing.T) {
	tt := assert.WrapTB(t)

	tt.MustEqual("3", rats("2.5").Round().String())
	tt.MustEqual("-3", rats("-2.5").Round().String())
	tt.MustEqual("4", rats("3.7").Round().String())
	tt.MustEqual("-4", rats("-3.7").Round().String())
	tt.MustEqual("0", rats("0.25").Round().String())

	// Round must agree with math.Round everywhere both exist:
	for curr := -8.0; curr < 8.0; curr += 0.125 {
		v, err := RatFromFloat64(curr)
		tt.MustOK(err)
		expected, err := RatFromFloat64(math.Round(curr))
		tt.MustOK(err)
		tt.MustAssert(expected.Equal(v.Round()), "failed at %f", curr)
	}
}

func TestRatFromFloat64(t *testing.T) {
	for _, tc := range []struct {
		in  float64
		out string
	}{
		{0, "0"},
		{1, "1"},
		{-1, "-1"},
		{0.5, "1/2"},
		{-0.625, "-5/8"},
		{3.5, "7/2"},
		{4096, "4096"},

		// The exact value of the closest float64 to 0.1, not 1/10:
		{0.1, "3602879701896397/36028797018963968"},
	} {
		t.Run(tc.out, func(t *testing.T) {
			tt := assert.WrapTB(t)
			v, err := RatFromFloat64(tc.in)
			tt.MustOK(err)
			tt.MustAssert(v.isValid())
			tt.MustEqual(tc.out, v.String())
		})
	}
}

func TestRatFromFloat64NonFinite(t *testing.T) {
	tt := assert.WrapTB(t)

	for _, f := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := RatFromFloat64(f)
		tt.MustEqual(ErrNonFinite, err)
	}
}

func TestRatFromFloat64RoundTrip(t *testing.T) {
	tt := assert.WrapTB(t)

	for _, f := range []float64{
		0, 1, -1, 0.1, -0.1, 1.5, 123456.789,
		math.MaxFloat64, math.SmallestNonzeroFloat64,
		math.Pi, math.E, 1.0 / 3.0,
	} {
		v, err := RatFromFloat64(f)
		tt.MustOK(err)
		tt.MustEqual(f, v.AsFloat64(), "failed at %g", f)
	}
}

func TestRatCmp(t *testing.T) {
	for _, tc := range []struct {
		a, b string
		c    int
	}{
		{"1/2", "1/2", 0},
		{"1/2", "1/3", 1},
		{"1/3", "1/2", -1},
		{"-1/2", "1/3", -1},
		{"-1/2", "-1/3", -1},
		{"2", "7/3", -1},
		{"0", "0", 0},
	} {
		t.Run(fmt.Sprintf("cmp(%s,%s)=%d", tc.a, tc.b, tc.c), func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustEqual(tc.c, rats(tc.a).Cmp(rats(tc.b)))
		})
	}
}

func TestRatToApproxString(t *testing.T) {
	for _, tc := range []struct {
		a     string
		width int
		out   string
	}{
		{"1/3", 6, "0.3333"},
		{"-1/3", 7, "-0.3333"},
		{"2/3", 6, "0.6666"}, // truncated, not rounded
		{"7/2", 6, "3.5"},
		{"4", 6, "4"},
		{"-4", 6, "-4"},
		{"0", 6, "0"},
		{"1.0000000177", 10, "1.00000001"},
		{"1.0000000177", 8, "1"},
		{"12345678901", 8, "1.234e10"},
		{"-12345678901", 8, "-1.23e10"},
		{"10000000000", 8, "1e10"},
	} {
		t.Run(fmt.Sprintf("%s@%d=%s", tc.a, tc.width, tc.out), func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustEqual(tc.out, rats(tc.a).ToApproxString(tc.width))
		})
	}
}

func TestRatFromString(t *testing.T) {
	for _, tc := range []struct {
		in, out string
	}{
		{"123", "123"},
		{"-14/6", "-7/3"},
		{"3.14159", "314159/100000"},
		{".5", "1/2"},
		{"4.", "4"},
		{"1.6e4", "16000"},
		{"25e-3", "1/40"},
		{"-2.5e-1", "-1/4"},
		{"0x7b", "123"},
		{"-0x7b", "-123"},
		{"1_000_000", "1000000"},
		{"-0.0", "0"},
	} {
		t.Run(tc.in, func(t *testing.T) {
			tt := assert.WrapTB(t)
			v, err := RatFromString(tc.in)
			tt.MustOK(err)
			tt.MustAssert(v.isValid())
			tt.MustEqual(tc.out, v.String())
		})
	}
}

func TestRatFromBigRat(t *testing.T) {
	tt := assert.WrapTB(t)

	// The zero big.Rat has an empty-bytes numerator:
	zero := RatFromBigRat(new(big.Rat))
	tt.MustAssert(zero.isValid())
	tt.MustAssert(zero.IsZero())
	tt.MustEqual("0", zero.String())

	v := RatFromBigRat(big.NewRat(-14, 6))
	tt.MustAssert(v.isValid())
	tt.MustEqual("-7/3", v.String())
}

func TestRatMarshalJSON(t *testing.T) {
	for _, tc := range []string{"0", "1/2", "-7/3", "123456789123456789123456789/2"} {
		t.Run(tc, func(t *testing.T) {
			tt := assert.WrapTB(t)

			bts, err := json.Marshal(rats(tc))
			tt.MustOK(err)

			var result Rat
			tt.MustOK(json.Unmarshal(bts, &result))
			tt.MustAssert(result.Equal(rats(tc)))
		})
	}
}

func TestRandRat(t *testing.T) {
	tt := assert.WrapTB(t)

	src := rngSource{state: 42}
	for i := 0; i < 100; i++ {
		v := RandRat(&src)
		tt.MustAssert(v.isValid())
		tt.MustAssert(v.GreaterOrEqualTo(ratZero()))
		tt.MustAssert(v.LessThan(ratOne()))
	}
}
