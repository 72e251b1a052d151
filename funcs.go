package exactcalc

import (
	"errors"
	"math/big"

	"github.com/zephyrtronium/bigfloat"

	"github.com/zephyrtronium/exactcalc/exact"
)

// Func is a named constant or function of one argument that expressions can
// refer to by name.
type Func interface {
	// Arity returns the number of arguments the function takes. A Func with
	// arity 0 is a constant and evaluates as soon as it is parsed. A Func
	// with arity 1 applies to the operand that follows it.
	Arity() int

	// Call evaluates the function. args has length Arity. bits is the
	// precision in bits of any real result. Call must not modify the
	// elements of args.
	Call(bits uint, args []Value) (Value, error)
}

var globalfuncs = map[string]Func{
	"exp": Monadic(bigfloat.Exp),
	"ln":  Monadic(positive("ln", bigfloat.Log)),
	"log": Monadic(positive("log", func(out, in *big.Float) *big.Float {
		bigfloat.Log(out, in)
		ten := new(big.Float).SetPrec(out.Prec()).SetFloat64(10)
		bigfloat.Log(ten, ten)
		return out.Quo(out, ten)
	})),
	"sqrt": ExactFunc(rootDegree(2), nonnegative("sqrt", (*big.Float).Sqrt)),
	"cbrt": ExactFunc(rootDegree(3), cbrt),
	"abs":  ExactFunc(absExact, (*big.Float).Abs),

	// constants
	"pi": Niladic(bigfloat.Pi),
	"e": Niladic(func(out *big.Float) *big.Float {
		var one big.Float
		one.SetPrec(out.Prec()).SetFloat64(1)
		return bigfloat.Exp(out, &one)
	}),
}

// DefaultFuncs returns a copy of the functions and constants that parsers know
// unless DisableDefaultFuncs is given.
func DefaultFuncs() map[string]Func {
	m := make(map[string]Func, len(globalfuncs))
	for k, v := range globalfuncs {
		m[k] = v
	}
	return m
}

type constant struct {
	v exact.Value
}

func (c constant) Call(bits uint, args []Value) (Value, error) {
	return Exact(c.v), nil
}

func (constant) Arity() int {
	return 0
}

// Const wraps an exact number into a constant Func.
func Const(v exact.Value) Func {
	return constant{v}
}

type monadic struct {
	f func(out, in *big.Float) *big.Float
}

func (m monadic) Call(bits uint, args []Value) (Value, error) {
	return callReal(m.f, args[0].Float(bits))
}

func (monadic) Arity() int {
	return 1
}

// callReal calls f on in with recovery of domain errors.
func callReal(f func(out, in *big.Float) *big.Float, in *big.Float) (v Value, err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		e, ok := r.(error)
		if !ok {
			panic(r)
		}
		var de DomainError
		if errors.As(e, &de) {
			err = de
			return
		}
		var nan big.ErrNaN
		if errors.As(e, &nan) {
			err = DomainError{X: in}
			return
		}
		panic(r)
	}()
	r := new(big.Float).SetPrec(in.Prec())
	f(r, in)
	return Real(r), nil
}

// Monadic wraps a function of one variable into a Func. f must set out to its
// result, to the precision of in; its return value is always ignored. If f is
// called on an argument outside f's domain, it should panic with a
// DomainError or an error of type big.ErrNaN, or that unwraps to it. The
// result is always real.
func Monadic(f func(out, in *big.Float) *big.Float) Func {
	return monadic{f}
}

type niladic struct {
	f func(out *big.Float) *big.Float
}

func (n niladic) Call(bits uint, args []Value) (Value, error) {
	r := new(big.Float).SetPrec(bits)
	n.f(r)
	return Real(r), nil
}

func (niladic) Arity() int {
	return 0
}

// Niladic wraps a function of zero variables, generally a function which
// computes a constant, into a Func. f must set out to its result; its return
// value is always ignored. Unlike Monadic, the wrapped function is expected
// never to panic.
func Niladic(f func(out *big.Float) *big.Float) Func {
	return niladic{f}
}

type exactFunc struct {
	f        func(exact.Value) (exact.Value, error)
	fallback func(out, in *big.Float) *big.Float
}

func (m exactFunc) Call(bits uint, args []Value) (Value, error) {
	if x, ok := args[0].Exact(); ok {
		r, err := m.f(x)
		if err == nil {
			return Exact(r), nil
		}
		if !errors.Is(err, exact.ErrInexact) {
			return Value{}, err
		}
	}
	return callReal(m.fallback, args[0].Float(bits))
}

func (exactFunc) Arity() int {
	return 1
}

// ExactFunc creates a Func of one variable that evaluates exact arguments
// with f. If the argument is real or f returns exact.ErrInexact, the Func
// evaluates real instead, following the same rules as Monadic.
func ExactFunc(f func(exact.Value) (exact.Value, error), fallback func(out, in *big.Float) *big.Float) Func {
	return exactFunc{f, fallback}
}

// positive panics with a DomainError if the input to f is not positive.
func positive(name string, f func(out, in *big.Float) *big.Float) func(out, in *big.Float) *big.Float {
	return func(out, in *big.Float) *big.Float {
		if in.Sign() <= 0 {
			panic(DomainError{X: in, Func: name})
		}
		return f(out, in)
	}
}

// nonnegative panics with a DomainError if the input to f is negative.
func nonnegative(name string, f func(out, in *big.Float) *big.Float) func(out, in *big.Float) *big.Float {
	return func(out, in *big.Float) *big.Float {
		if in.Sign() < 0 {
			panic(DomainError{X: in, Func: name})
		}
		return f(out, in)
	}
}

func rootDegree(d int64) func(exact.Value) (exact.Value, error) {
	return func(x exact.Value) (exact.Value, error) {
		return exact.RootOf(x, exact.NewInt(d))
	}
}

func cbrt(out, in *big.Float) *big.Float {
	if in.Sign() == 0 {
		return out.SetInt64(0)
	}
	a := new(big.Float).SetPrec(out.Prec()).Abs(in)
	third := new(big.Float).SetPrec(out.Prec()).SetInt64(1)
	third.Quo(third, new(big.Float).SetInt64(3))
	bigfloat.Pow(out, a, third)
	if in.Sign() < 0 {
		out.Neg(out)
	}
	return out
}

func absExact(x exact.Value) (exact.Value, error) {
	if x.Float(64).Sign() >= 0 {
		return exact.CopyOf(x)
	}
	return exact.Mul(exact.NewInt(-1), x)
}
