package exactcalc

import (
	"math/big"
	"strings"

	"github.com/zephyrtronium/exactcalc/exact"
)

// Value is the result of evaluating an expression or a function. It holds
// either an exact number or a real approximation. The zero Value is empty.
type Value struct {
	x exact.Value
	r *big.Float
	// digits is the number of decimal places r has been rounded to, or
	// negative if r is unrounded.
	digits int
}

// Exact wraps an exact number.
func Exact(x exact.Value) Value {
	return Value{x: x, digits: -1}
}

// Real wraps a real approximation. The Value takes ownership of r.
func Real(r *big.Float) Value {
	return Value{r: r, digits: -1}
}

// Exact returns v's exact number, or false if v is real or empty.
func (v Value) Exact() (exact.Value, bool) {
	return v.x, v.x != nil
}

// IsReal reports whether v holds a real approximation.
func (v Value) IsReal() bool {
	return v.r != nil
}

// IsEmpty reports whether v holds nothing.
func (v Value) IsEmpty() bool {
	return v.x == nil && v.r == nil
}

// Float returns v as a new big.Float with the given precision. An empty Value
// gives 0.
func (v Value) Float(prec uint) *big.Float {
	switch {
	case v.x != nil:
		return v.x.Float(prec)
	case v.r != nil:
		return new(big.Float).SetPrec(prec).Set(v.r)
	default:
		return new(big.Float).SetPrec(prec)
	}
}

// Float64 returns the nearest float64 to v.
func (v Value) Float64() float64 {
	switch {
	case v.x != nil:
		return v.x.Float64()
	case v.r != nil:
		f, _ := v.r.Float64()
		return f
	default:
		return 0
	}
}

// String formats v. Exact numbers use their exact form. Rounded reals use
// plain decimal notation without trailing zeros.
func (v Value) String() string {
	switch {
	case v.x != nil:
		return v.x.String()
	case v.r == nil:
		return ""
	case v.r.IsInf():
		return v.r.String()
	case v.digits < 0:
		return v.r.Text('g', -1)
	}
	s := v.r.Text('f', v.digits)
	if strings.ContainsRune(s, '.') {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	if s == "-0" {
		s = "0"
	}
	return s
}

// round rounds a real Value half up to the given number of decimal places.
// Exact and empty Values are returned unchanged.
func (v Value) round(digits int, prec uint) Value {
	if v.r == nil || v.r.IsInf() {
		return v
	}
	if v.r.IsInt() {
		return Value{r: v.r, digits: digits}
	}
	r, _ := v.r.Rat(nil)
	scale := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(digits)), nil)
	// floor(x*10^p + 1/2) is floor((2*n*10^p + d) / 2d).
	n := new(big.Int).Mul(r.Num(), scale)
	n.Lsh(n, 1)
	n.Add(n, r.Denom())
	d := new(big.Int).Lsh(r.Denom(), 1)
	n.Div(n, d)
	q := new(big.Rat).SetFrac(n, scale)
	return Value{r: new(big.Float).SetPrec(prec).SetRat(q), digits: digits}
}
