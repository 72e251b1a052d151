// Package exact implements exact arithmetic over rationals extended with
// real radicals.
//
// Every Value is one of three kinds: an Int, a Fraction whose numerator and
// denominator are each an Int or a Root, or a Root of an integer. Values are
// always kept in a canonical reduced form: a Fraction whose denominator
// reduces to 1 is an Int, and a Root whose value is an integer is an Int.
// Values are immutable and may be shared freely.
package exact

import (
	"math/big"
	"strconv"

	"github.com/zephyrtronium/bigfloat"
)

// Value is an exact number. The only implementations are Int, Fraction, and
// Root.
type Value interface {
	// String formats the value as "a", "a/b", or "rad^(1/deg)".
	String() string
	// Float returns the nearest floating-point approximation of the value
	// with the given precision in bits.
	Float(prec uint) *big.Float
	// Float64 returns the nearest float64 approximation of the value.
	Float64() float64

	value()
}

var (
	_ Value = Int{}
	_ Value = Fraction{}
	_ Value = Root{}
)

var (
	bigZero = big.NewInt(0)
	bigOne  = big.NewInt(1)
)

// Int is an arbitrary-precision integer. The zero value is 0.
type Int struct {
	n *big.Int
}

// NewInt creates an Int.
func NewInt(x int64) Int {
	return Int{big.NewInt(x)}
}

// IntOf creates an Int with a copy of x.
func IntOf(x *big.Int) Int {
	return Int{new(big.Int).Set(x)}
}

func (x Int) int() *big.Int {
	if x.n == nil {
		return bigZero
	}
	return x.n
}

// Big returns a copy of the value of x.
func (x Int) Big() *big.Int {
	return new(big.Int).Set(x.int())
}

// Sign returns -1, 0, or 1 according to the sign of x.
func (x Int) Sign() int {
	return x.int().Sign()
}

func (x Int) String() string {
	return x.int().String()
}

func (x Int) Float(prec uint) *big.Float {
	return new(big.Float).SetPrec(prec).SetInt(x.int())
}

func (x Int) Float64() float64 {
	f, _ := x.Float(64).Float64()
	return f
}

func (Int) value() {}

// Fraction is a quotient of two values, each an Int or a Root, in lowest
// terms with a positive denominator other than 1. Fractions are created by
// the arithmetic functions of this package; the zero value is not a valid
// operand.
type Fraction struct {
	num, den Value
}

// Num returns the numerator of x.
func (x Fraction) Num() Value {
	if x.num == nil {
		return Int{}
	}
	return x.num
}

// Den returns the denominator of x.
func (x Fraction) Den() Value {
	if x.den == nil {
		return NewInt(1)
	}
	return x.den
}

func (x Fraction) String() string {
	d := x.Den()
	if n, ok := d.(Int); ok && n.int().Cmp(bigOne) == 0 {
		return x.Num().String()
	}
	return x.Num().String() + "/" + d.String()
}

func (x Fraction) Float(prec uint) *big.Float {
	n := x.Num().Float(prec)
	return n.Quo(n, x.Den().Float(prec))
}

func (x Fraction) Float64() float64 {
	f, _ := x.Float(64).Float64()
	return f
}

func (Fraction) value() {}

// Root is the principal real root of an integer radicand, or its negation.
// The radicand is negative only when the degree is odd, and it is never a
// perfect power of a divisor of the degree. Negated roots have even degree.
type Root struct {
	rad *big.Int
	deg int64
	neg bool
}

// Radicand returns the radicand of x.
func (x Root) Radicand() Int {
	if x.rad == nil {
		return Int{}
	}
	return IntOf(x.rad)
}

// Degree returns the degree of x.
func (x Root) Degree() int64 {
	return x.deg
}

// Negated reports whether x is the negation of the principal root of its
// radicand.
func (x Root) Negated() bool {
	return x.neg
}

func (x Root) String() string {
	r := x.Radicand().String()
	if x.rad != nil && x.rad.Sign() < 0 {
		r = "(" + r + ")"
	}
	if x.deg != 1 {
		r += "^(1/" + strconv.FormatInt(x.deg, 10) + ")"
	}
	if x.neg {
		r = "-" + r
	}
	return r
}

func (x Root) Float(prec uint) *big.Float {
	a := x.Radicand().Float(prec)
	neg := a.Signbit()
	if neg {
		a.Neg(a)
	}
	neg = neg != x.neg
	if x.deg <= 1 || a.Sign() == 0 {
		if neg {
			a.Neg(a)
		}
		return a
	}
	one := new(big.Float).SetPrec(prec).SetInt64(1)
	y := new(big.Float).SetPrec(prec).SetInt64(x.deg)
	y.Quo(one, y)
	z := new(big.Float).SetPrec(prec)
	bigfloat.Pow(z, a, y)
	if neg {
		z.Neg(z)
	}
	return z
}

func (x Root) Float64() float64 {
	f, _ := x.Float(64).Float64()
	return f
}

func (Root) value() {}

// Equal reports whether x and y are the same number. Invalid operands are
// equal to nothing.
func Equal(x, y Value) bool {
	if check("", x, y) != nil {
		return false
	}
	rx, err := canon(x)
	if err != nil {
		return false
	}
	ry, err := canon(y)
	if err != nil {
		return false
	}
	return rx.neg == ry.neg && rx.d == ry.d && rx.p.Cmp(ry.p) == 0 && rx.q.Cmp(ry.q) == 0
}

// IsZero reports whether x is a valid value equal to zero.
func IsZero(x Value) bool {
	n, ok := x.(Int)
	return ok && n.Sign() == 0
}
