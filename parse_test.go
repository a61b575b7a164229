package arb

import (
	"testing"

	"github.com/shabbyrobe/golib/assert"
)

func TestUBigFromString(t *testing.T) {
	for _, tc := range []struct {
		in, out string
	}{
		{"0", "0"},
		{"007", "7"},
		{"4294967296", "4294967296"},
		{"1000_0000", "10000000"},
		{"0x0", "0"},
		{"0xff", "255"},
		{"0xDEAD_BEEF", "3735928559"},
		{"0x1_00000000_00000000", "18446744073709551616"},
		{"340282366920938463463374607431768211456", "340282366920938463463374607431768211456"},
	} {
		t.Run(tc.in, func(t *testing.T) {
			tt := assert.WrapTB(t)
			v, err := UBigFromString(tc.in)
			tt.MustOK(err)
			tt.MustAssert(v.isValid())
			tt.MustEqual(tc.out, v.String())
		})
	}
}

func TestParseErrors(t *testing.T) {
	for _, tc := range []struct {
		in   string
		kind ParseErrorKind
	}{
		{"", ParseEmpty},
		{"_", ParseEmpty},
		{"12a3", ParseInvalidDigit},
		{"0x", ParseBadRadix},
		{"0xzz", ParseInvalidDigit},
	} {
		t.Run(tc.in, func(t *testing.T) {
			tt := assert.WrapTB(t)
			_, err := UBigFromString(tc.in)
			perr, ok := err.(*ParseError)
			tt.MustAssert(ok, "found: %v", err)
			tt.MustEqual(tc.kind, perr.Kind)
			tt.MustEqual(tc.in, perr.Input)
		})
	}
}

func TestBigFromString(t *testing.T) {
	for _, tc := range []struct {
		in, out string
	}{
		{"0", "0"},
		{"-0", "0"},
		{"+7", "7"},
		{"-7", "-7"},
		{"-0xff", "-255"},
		{"-18446744073709551616", "-18446744073709551616"},
	} {
		t.Run(tc.in, func(t *testing.T) {
			tt := assert.WrapTB(t)
			v, err := BigFromString(tc.in)
			tt.MustOK(err)
			tt.MustAssert(v.isValid())
			tt.MustEqual(tc.out, v.String())
		})
	}
}

func TestRatFromStringErrors(t *testing.T) {
	for _, tc := range []struct {
		in   string
		kind ParseErrorKind
	}{
		{"", ParseEmpty},
		{".", ParseInvalidDigit},
		{"1.2.3", ParseInvalidDigit},
		{"1e", ParseBadExponent},
		{"1e+", ParseBadExponent},
		{"1e9999999999999999999", ParseBadExponent},
		{"1e1000000", ParseBadExponent},
		{"1/0", ParseZeroDenominator},
		{"1/", ParseEmpty},
		{"/2", ParseEmpty},
		{"0x1.5", ParseInvalidDigit},
	} {
		t.Run(tc.in, func(t *testing.T) {
			tt := assert.WrapTB(t)
			_, err := RatFromString(tc.in)
			perr, ok := err.(*ParseError)
			tt.MustAssert(ok, "found: %v", err)
			tt.MustEqual(tc.kind, perr.Kind)
		})
	}
}

func TestParseErrorMessage(t *testing.T) {
	tt := assert.WrapTB(t)

	_, err := UBigFromString("12a3")
	tt.MustEqual(`arb: cannot parse "12a3": invalid digit`, err.Error())
}
