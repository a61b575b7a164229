package arb

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseErrorKind discriminates the ways a numeric string can be
// malformed.
type ParseErrorKind int

const (
	// ParseEmpty means the input had no characters (or only separators).
	ParseEmpty ParseErrorKind = iota

	// ParseInvalidDigit means a character was not valid for the radix, or
	// the input had no digits where digits were required.
	ParseInvalidDigit

	// ParseBadExponent means the exponent marker was not followed by a
	// usable integer, or the exponent was out of range.
	ParseBadExponent

	// ParseBadRadix means a radix prefix ("0x") had no digits after it.
	ParseBadRadix

	// ParseZeroDenominator means a "num/den" input had a zero denominator.
	ParseZeroDenominator
)

func (k ParseErrorKind) String() string {
	switch k {
	case ParseEmpty:
		return "empty input"
	case ParseInvalidDigit:
		return "invalid digit"
	case ParseBadExponent:
		return "malformed exponent"
	case ParseBadRadix:
		return "malformed radix prefix"
	case ParseZeroDenominator:
		return "zero denominator"
	}
	return "unknown"
}

// ParseError is returned by every FromString constructor. Input is the
// original, unstripped string.
type ParseError struct {
	Kind  ParseErrorKind
	Input string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("arb: cannot parse %q: %s", e.Input, e.Kind)
}

// Exponents beyond this produce denominators/numerators too large to be
// useful and are rejected rather than allowed to exhaust memory.
const maxParseExponent = 999999

// UBigFromString parses an unsigned integer from decimal text, or from
// hexadecimal text with a "0x" prefix. Underscores may be used anywhere
// as digit group separators ("1000_0000", "0xDEAD_BEEF").
func UBigFromString(s string) (UBig, error) {
	return parseUBig(strings.Replace(s, "_", "", -1), s)
}

func parseUBig(s, orig string) (UBig, error) {
	if s == "" {
		return ubigZero(), &ParseError{ParseEmpty, orig}
	}

	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		body := s[2:]
		if body == "" {
			return ubigZero(), &ParseError{ParseBadRadix, orig}
		}
		out := ubigZero()
		for _, c := range body {
			d, ok := hexDigit(c)
			if !ok {
				return ubigZero(), &ParseError{ParseInvalidDigit, orig}
			}
			out.Mul32Mut(16)
			out.Add32Mut(d)
		}
		return out, nil
	}

	out := ubigZero()
	for _, c := range s {
		if c < '0' || c > '9' {
			return ubigZero(), &ParseError{ParseInvalidDigit, orig}
		}
		out.Mul32Mut(10)
		out.Add32Mut(uint32(c - '0'))
	}
	return out, nil
}

func hexDigit(c rune) (uint32, bool) {
	switch {
	case c >= '0' && c <= '9':
		return uint32(c - '0'), true
	case c >= 'a' && c <= 'f':
		return uint32(c-'a') + 10, true
	case c >= 'A' && c <= 'F':
		return uint32(c-'A') + 10, true
	}
	return 0, false
}

// BigFromString parses a signed integer: an optional sign followed by
// anything UBigFromString accepts.
func BigFromString(s string) (Big, error) {
	stripped := strings.Replace(s, "_", "", -1)
	neg := false
	if strings.HasPrefix(stripped, "-") || strings.HasPrefix(stripped, "+") {
		neg = stripped[0] == '-'
		stripped = stripped[1:]
	}

	mag, err := parseUBig(stripped, s)
	if err != nil {
		return bigZero(), err
	}
	return Big{mag: mag, neg: neg && !mag.IsZero()}, nil
}

// RatFromString parses a rational number. Accepted forms, all with an
// optional sign and underscore separators:
//
//	"123", "0x7b"         integers (decimal or hex)
//	"-14/6"               fractions, reduced on entry
//	"3.14159", ".5", "4." decimal points
//	"1.6e4", "25e-3"      decimal exponents
//
// The decomposition into numerator and denominator is exact.
func RatFromString(s string) (Rat, error) {
	stripped := strings.Replace(s, "_", "", -1)
	if stripped == "" {
		return ratZero(), &ParseError{ParseEmpty, s}
	}

	if i := strings.IndexByte(stripped, '/'); i >= 0 {
		num, err := BigFromString(stripped[:i])
		if err != nil {
			return ratZero(), err
		}
		den, err := BigFromString(stripped[i+1:])
		if err != nil {
			return ratZero(), err
		}
		if den.IsZero() {
			return ratZero(), &ParseError{ParseZeroDenominator, s}
		}
		return RatFromFrac(num, den), nil
	}

	neg := false
	if strings.HasPrefix(stripped, "-") || strings.HasPrefix(stripped, "+") {
		neg = stripped[0] == '-'
		stripped = stripped[1:]
	}

	// Hex must be handled before the exponent split: 'e' is a hex digit.
	if strings.HasPrefix(stripped, "0x") || strings.HasPrefix(stripped, "0X") {
		mag, err := parseUBig(stripped, s)
		if err != nil {
			return ratZero(), err
		}
		v := Rat{num: Big{mag: mag, neg: neg && !mag.IsZero()}, den: ubigOne()}
		return v, nil
	}

	mantissa := stripped
	exp := 0
	if i := strings.IndexAny(stripped, "eE"); i >= 0 {
		var err error
		exp, err = strconv.Atoi(stripped[i+1:])
		if err != nil || exp > maxParseExponent || exp < -maxParseExponent {
			return ratZero(), &ParseError{ParseBadExponent, s}
		}
		mantissa = stripped[:i]
	}

	intPart, fracPart := mantissa, ""
	if i := strings.IndexByte(mantissa, '.'); i >= 0 {
		intPart, fracPart = mantissa[:i], mantissa[i+1:]
		if strings.IndexByte(fracPart, '.') >= 0 {
			return ratZero(), &ParseError{ParseInvalidDigit, s}
		}
	}
	if intPart == "" && fracPart == "" {
		return ratZero(), &ParseError{ParseInvalidDigit, s}
	}

	mag, err := parseUBig(intPart+fracPart, s)
	if err != nil {
		return ratZero(), err
	}

	num := Big{mag: mag, neg: neg && !mag.IsZero()}
	den := ubigOne()
	scale := -len(fracPart) + exp
	if scale > 0 {
		num.mag.MulMut(UBigFrom32(10).Pow32(uint32(scale)))
	} else if scale < 0 {
		den = UBigFrom32(10).Pow32(uint32(-scale))
	}

	v := Rat{num: num, den: den}
	v.reduce()
	return v, nil
}
