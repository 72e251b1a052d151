package exactcalc

import (
	"errors"
	"math/big"

	"github.com/zephyrtronium/bigfloat"

	"github.com/zephyrtronium/exactcalc/exact"
)

// maxRealExp is the largest integer exponent for which real powers are
// computed by repeated squaring rather than through logarithms.
const maxRealExp = 1 << 16

// eval evaluates the postfix sequence. bits is the precision of real
// operations.
func (p *Postfix) eval(bits uint) (Value, error) {
	stack := make([]Value, 0, len(p.items))
	for _, it := range p.items {
		switch it.kind {
		case itemValue:
			stack = append(stack, it.val)
		case itemOp:
			n := len(stack)
			if n < 2 {
				return Value{}, &ParserError{Col: it.pos, Text: string(it.op), Err: ErrMissingOperand}
			}
			r, err := binary(it.op, stack[n-2], stack[n-1], bits)
			if err != nil {
				return Value{}, err
			}
			stack[n-2] = r
			stack = stack[:n-1]
		case itemFunc:
			n := len(stack)
			if n < 1 {
				return Value{}, &ParserError{Col: it.pos, Text: it.name, Err: ErrMissingOperand}
			}
			r, err := it.fn.Call(bits, stack[n-1:])
			if err != nil {
				return Value{}, err
			}
			stack[n-1] = r
		default:
			panic("exactcalc: bad postfix item " + it.String())
		}
	}
	switch len(stack) {
	case 0:
		return Value{}, &ParserError{Col: 1, Err: ErrEmpty}
	case 1:
		return stack[0], nil
	default:
		last := p.items[len(p.items)-1]
		return Value{}, &ParserError{Col: last.pos, Text: last.String(), Err: ErrTrailingOperand}
	}
}

// binary applies a binary operator. Exact operands use exact arithmetic unless
// the result has no exact form.
func binary(op byte, x, y Value, bits uint) (Value, error) {
	if a, ok := x.Exact(); ok {
		if b, ok := y.Exact(); ok {
			r, err := exactOp(op)(a, b)
			if err == nil {
				return Exact(r), nil
			}
			if !errors.Is(err, exact.ErrInexact) {
				return Value{}, err
			}
		}
	}
	return realOp(op, x.Float(bits), y.Float(bits), bits)
}

func exactOp(op byte) func(x, y exact.Value) (exact.Value, error) {
	switch op {
	case '+':
		return exact.Add
	case '-':
		return exact.Sub
	case '*':
		return exact.Mul
	case '/':
		return exact.Div
	case '^':
		return exact.Pow
	default:
		panic("exactcalc: unknown operator " + string(op))
	}
}

// realOp applies a binary operator to reals.
func realOp(op byte, x, y *big.Float, bits uint) (v Value, err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		var nan big.ErrNaN
		if e, ok := r.(error); ok && errors.As(e, &nan) {
			err = DomainError{X: x, Func: string(op)}
			return
		}
		panic(r)
	}()
	z := new(big.Float).SetPrec(bits)
	switch op {
	case '+':
		z.Add(x, y)
	case '-':
		z.Sub(x, y)
	case '*':
		z.Mul(x, y)
	case '/':
		if y.Sign() == 0 {
			return Value{}, &exact.FractionError{Op: "divide", Reason: "denominator can not be 0"}
		}
		z.Quo(x, y)
	case '^':
		if err := realPow(z, x, y); err != nil {
			return Value{}, err
		}
	default:
		panic("exactcalc: unknown operator " + string(op))
	}
	return Real(z), nil
}

// realPow sets z to x^y.
func realPow(z, x, y *big.Float) error {
	if y.IsInt() {
		if k, acc := y.Int64(); acc == big.Exact && -maxRealExp <= k && k <= maxRealExp {
			if x.Sign() == 0 && k < 0 {
				return &exact.FractionError{Op: "power", Reason: "denominator can not be 0"}
			}
			powi(z, x, k)
			return nil
		}
	}
	switch x.Sign() {
	case -1:
		return DomainError{X: x, Func: "^"}
	case 0:
		if y.Sign() < 0 {
			return &exact.FractionError{Op: "power", Reason: "denominator can not be 0"}
		}
		z.SetInt64(0)
		return nil
	}
	bigfloat.Pow(z, x, y)
	return nil
}

// powi sets z to x^k by repeated squaring.
func powi(z, x *big.Float, k int64) {
	inv := k < 0
	if inv {
		k = -k
	}
	b := new(big.Float).SetPrec(z.Prec()).Set(x)
	z.SetInt64(1)
	for k > 0 {
		if k&1 != 0 {
			z.Mul(z, b)
		}
		b.Mul(b, b)
		k >>= 1
	}
	if inv {
		z.Quo(new(big.Float).SetPrec(z.Prec()).SetInt64(1), z)
	}
}
