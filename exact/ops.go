package exact

import "math/big"

// check verifies that every operand is a valid Int, Fraction, or Root.
func check(op string, vals ...Value) error {
	for _, v := range vals {
		switch v := v.(type) {
		case Int:
			// The zero Int is 0.
		case Fraction:
			if v.num == nil || v.den == nil {
				return &FractionError{Op: op, Reason: "all parameters must be integers or fractions"}
			}
		case Root:
			if v.rad == nil || v.deg < 2 {
				return &FractionError{Op: op, Reason: "all parameters must be integers or fractions"}
			}
		default:
			return &FractionError{Op: op, Reason: "all parameters must be integers or fractions"}
		}
	}
	return nil
}

// rat returns the numerator and denominator of v if v is rational. The
// results must not be modified.
func rat(v Value) (n, d *big.Int, ok bool) {
	switch v := v.(type) {
	case Int:
		return v.int(), bigOne, true
	case Fraction:
		a, ok := v.num.(Int)
		if !ok {
			return nil, nil, false
		}
		b, ok := v.den.(Int)
		if !ok {
			return nil, nil, false
		}
		return a.int(), b.int(), true
	}
	return nil, nil, false
}

// newRatio creates a reduced value n/d. n and d are owned by the result.
func newRatio(op string, n, d *big.Int) (Value, error) {
	if d.Sign() == 0 {
		return nil, &FractionError{Op: op, Reason: "denominator can not be 0"}
	}
	if d.Sign() < 0 {
		n.Neg(n)
		d.Neg(d)
	}
	if g := new(big.Int).GCD(nil, nil, new(big.Int).Abs(n), d); g.Cmp(bigOne) > 0 {
		n.Quo(n, g)
		d.Quo(d, g)
	}
	if d.Cmp(bigOne) == 0 {
		return Int{n}, nil
	}
	return Fraction{num: Int{n}, den: Int{d}}, nil
}

// lcm computes the least common multiple of two positive integers.
func lcm(x, y *big.Int) *big.Int {
	g := new(big.Int).GCD(nil, nil, x, y)
	l := new(big.Int).Quo(x, g)
	return l.Mul(l, y)
}

// Add returns x + y.
func Add(x, y Value) (Value, error) {
	if err := check("add", x, y); err != nil {
		return nil, err
	}
	return addsub("add", x, y, (*big.Int).Add)
}

// Sub returns x - y.
func Sub(x, y Value) (Value, error) {
	if err := check("subtract", x, y); err != nil {
		return nil, err
	}
	return addsub("subtract", x, y, (*big.Int).Sub)
}

func addsub(op string, x, y Value, f func(z, a, b *big.Int) *big.Int) (Value, error) {
	xn, xd, xok := rat(x)
	yn, yd, yok := rat(y)
	if xok && yok {
		xint, yint := xd.Cmp(bigOne) == 0, yd.Cmp(bigOne) == 0
		switch {
		case xint && yint:
			return Int{f(new(big.Int), xn, yn)}, nil
		case xint:
			n := new(big.Int).Mul(xn, yd)
			return newRatio(op, f(n, n, yn), new(big.Int).Set(yd))
		case yint:
			n := new(big.Int).Mul(yn, xd)
			return newRatio(op, f(n, xn, n), new(big.Int).Set(xd))
		default:
			l := lcm(xd, yd)
			a := new(big.Int).Quo(l, xd)
			a.Mul(a, xn)
			b := new(big.Int).Quo(l, yd)
			b.Mul(b, yn)
			return newRatio(op, f(a, a, b), l)
		}
	}
	// At least one operand is irrational. Only sums that cancel or collect
	// into a single radical have an exact form.
	sub := op == "subtract"
	switch {
	case IsZero(y):
		return x, nil
	case IsZero(x) && !sub:
		return y, nil
	case IsZero(x):
		return Mul(NewInt(-1), y)
	case Equal(x, y) && sub:
		return Int{}, nil
	case Equal(x, y):
		return Mul(NewInt(2), x)
	}
	if ny, err := Mul(NewInt(-1), y); err == nil && Equal(x, ny) {
		if sub {
			return Mul(NewInt(2), x)
		}
		return Int{}, nil
	}
	return nil, ErrInexact
}

// Mul returns x * y.
func Mul(x, y Value) (Value, error) {
	if err := check("multiply", x, y); err != nil {
		return nil, err
	}
	xn, xd, xok := rat(x)
	yn, yd, yok := rat(y)
	if xok && yok {
		xint, yint := xd.Cmp(bigOne) == 0, yd.Cmp(bigOne) == 0
		switch {
		case xint && yint:
			return Int{new(big.Int).Mul(xn, yn)}, nil
		case xint:
			return newRatio("multiply", new(big.Int).Mul(xn, yn), new(big.Int).Set(yd))
		case yint:
			return newRatio("multiply", new(big.Int).Mul(yn, xn), new(big.Int).Set(xd))
		default:
			return newRatio("multiply", new(big.Int).Mul(xn, yn), new(big.Int).Mul(xd, yd))
		}
	}
	if IsZero(x) || IsZero(y) {
		return Int{}, nil
	}
	a, b, err := toRadicals(x, y)
	if err != nil {
		return nil, err
	}
	r, err := a.mul(b)
	if err != nil {
		return nil, err
	}
	return r.build()
}

// Div returns x / y. It is an error for y to be zero.
func Div(x, y Value) (Value, error) {
	if err := check("divide", x, y); err != nil {
		return nil, err
	}
	if IsZero(y) {
		return nil, &FractionError{Op: "divide", Reason: "denominator can not be 0"}
	}
	xn, xd, xok := rat(x)
	yn, yd, yok := rat(y)
	if xok && yok {
		xint, yint := xd.Cmp(bigOne) == 0, yd.Cmp(bigOne) == 0
		switch {
		case xint && yint:
			return newRatio("divide", new(big.Int).Set(xn), new(big.Int).Set(yn))
		case xint:
			return newRatio("divide", new(big.Int).Mul(xn, yd), new(big.Int).Set(yn))
		case yint:
			return newRatio("divide", new(big.Int).Set(xn), new(big.Int).Mul(xd, yn))
		default:
			return newRatio("divide", new(big.Int).Mul(xn, yd), new(big.Int).Mul(xd, yn))
		}
	}
	if IsZero(x) {
		return Int{}, nil
	}
	a, b, err := toRadicals(x, y)
	if err != nil {
		return nil, err
	}
	r, err := a.mul(b.inv())
	if err != nil {
		return nil, err
	}
	return r.build()
}

// Pow returns x^y. An integer exponent expands the numerator and denominator,
// inverting first if the exponent is negative. A fractional exponent p/q
// raises x to p and then takes the qth root. Irrational exponents have no
// exact result and give ErrInexact.
func Pow(x, y Value) (Value, error) {
	if err := check("power", x, y); err != nil {
		return nil, err
	}
	yn, yd, ok := rat(y)
	if !ok {
		return nil, ErrInexact
	}
	if yd.Cmp(bigOne) != 0 {
		if yn.Cmp(bigOne) == 0 {
			return RootOf(x, Int{yd})
		}
		t, err := Pow(x, Int{yn})
		if err != nil {
			return nil, err
		}
		return RootOf(t, Int{yd})
	}
	return powInt(x, yn)
}

// powInt raises x to an integer power.
func powInt(x Value, k *big.Int) (Value, error) {
	if k.Sign() == 0 {
		return NewInt(1), nil
	}
	if IsZero(x) {
		if k.Sign() < 0 {
			return nil, &FractionError{Op: "power", Reason: "denominator can not be 0"}
		}
		return Int{}, nil
	}
	if n, ok := x.(Int); ok && n.int().CmpAbs(bigOne) == 0 {
		// ±1 to any power, including ones that don't fit in an int64.
		if n.Sign() < 0 && k.Bit(0) == 1 {
			return NewInt(-1), nil
		}
		return NewInt(1), nil
	}
	if !k.IsInt64() {
		return nil, ErrInexact
	}
	e := k.Int64()
	r, err := toRadical(x)
	if err != nil {
		return nil, err
	}
	if e < 0 {
		r = r.inv()
		e = -e
	}
	t, err := r.scale(e)
	if err != nil {
		return nil, err
	}
	// scale multiplied the degree; the power keeps it.
	t.d = r.d
	t.neg = r.neg && e%2 == 1
	return t.build()
}

// RootOf returns the yth root of x. The numerator and denominator of x are
// rooted independently. It is an error for y to be zero or for x to be
// negative when y is even.
func RootOf(x, y Value) (Value, error) {
	if err := check("root", x, y); err != nil {
		return nil, err
	}
	yn, yd, ok := rat(y)
	if !ok {
		return nil, ErrInexact
	}
	if yn.Sign() == 0 {
		return nil, &FractionError{Op: "root", Reason: "degree of root can not be 0"}
	}
	if yd.Cmp(bigOne) != 0 {
		// x^(1/(a/b)) = x^(b/a)
		e, err := newRatio("root", new(big.Int).Set(yd), new(big.Int).Set(yn))
		if err != nil {
			return nil, err
		}
		return Pow(x, e)
	}
	if yn.Sign() < 0 {
		t, err := RootOf(x, Int{new(big.Int).Neg(yn)})
		if err != nil {
			return nil, err
		}
		return Div(NewInt(1), t)
	}
	if !yn.IsInt64() || yn.Int64() > maxDegree {
		return nil, ErrInexact
	}
	k := yn.Int64()
	if k == 1 {
		return x, nil
	}
	r, err := toRadical(x)
	if err != nil {
		return nil, err
	}
	if r.neg && k%2 == 0 {
		return nil, &FractionError{Op: "root", Reason: "even root of a negative number"}
	}
	if r.d > maxDegree/k {
		return nil, ErrInexact
	}
	r.d *= k
	return r.build()
}
