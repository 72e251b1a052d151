package exact

import (
	"math"
	"math/big"
	"strconv"
	"strings"
)

// Ratio creates the reduced value a/b. It is an error for b to be zero.
func Ratio(a, b int64) (Value, error) {
	return newRatio("ratio", big.NewInt(a), big.NewInt(b))
}

// FromRatio creates the reduced value num/den. It is an error for den to be
// zero.
func FromRatio(num, den Value) (Value, error) {
	if err := check("ratio", num, den); err != nil {
		return nil, err
	}
	if IsZero(den) {
		return nil, &FractionError{Op: "ratio", Reason: "denominator can not be 0"}
	}
	return Div(num, den)
}

// CopyOf returns a reduced copy of v. A value too large to reduce gives
// ErrInexact.
func CopyOf(v Value) (Value, error) {
	if err := check("copy", v); err != nil {
		return nil, err
	}
	r, err := canon(v)
	if err != nil {
		return nil, err
	}
	return r.build()
}

// FromDecimal converts a float64 to a value using its shortest decimal
// representation: the digits before and after the point form the numerator
// and the denominator is 10 to the number of digits after the point. Use with
// caution: a float64 that is the result of other floating-point arithmetic
// can produce an awful fraction.
func FromDecimal(x float64) (Value, error) {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return nil, &FractionError{Op: "decimal", Reason: "cannot convert " + strconv.FormatFloat(x, 'g', -1, 64)}
	}
	return ParseDecimal(strconv.FormatFloat(x, 'f', -1, 64))
}

// ParseDecimal converts decimal text, e.g. "-12.5" or ".25", to a value. The
// text is an optional sign followed by digits with at most one decimal point.
func ParseDecimal(s string) (Value, error) {
	t := s
	neg := false
	switch {
	case strings.HasPrefix(t, "-"):
		neg = true
		t = t[1:]
	case strings.HasPrefix(t, "+"):
		t = t[1:]
	}
	whole, frac := t, ""
	if k := strings.IndexByte(t, '.'); k >= 0 {
		whole, frac = t[:k], t[k+1:]
	}
	if whole == "" && frac == "" || !digits(whole) || !digits(frac) {
		return nil, &FractionError{Op: "decimal", Reason: "invalid decimal " + strconv.Quote(s)}
	}
	n, ok := new(big.Int).SetString("0"+whole+frac, 10)
	if !ok {
		return nil, &FractionError{Op: "decimal", Reason: "invalid decimal " + strconv.Quote(s)}
	}
	if neg {
		n.Neg(n)
	}
	d := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(len(frac))), nil)
	return newRatio("decimal", n, d)
}

func digits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
