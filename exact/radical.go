package exact

import (
	"math"
	"math/big"
)

const (
	// maxBits bounds the size of intermediate integers. Operations that would
	// exceed it report ErrInexact.
	maxBits = 1 << 20
	// maxDegree bounds the degree of radicals.
	maxDegree = 1 << 12
)

// radical is the general form of a value, -1^neg · (p/q)^(1/d), with p ≥ 0,
// q > 0, p and q coprime, and d ≥ 1.
type radical struct {
	neg  bool
	p, q *big.Int
	d    int64
}

// toRadical converts a valid value to its general form. A Fraction combines
// its parts over the lcm of their degrees, which can exceed the size bounds.
func toRadical(v Value) (radical, error) {
	switch v := v.(type) {
	case Int:
		n := v.int()
		return radical{neg: n.Sign() < 0, p: new(big.Int).Abs(n), q: big.NewInt(1), d: 1}, nil
	case Root:
		return radical{neg: v.neg || v.rad.Sign() < 0, p: new(big.Int).Abs(v.rad), q: big.NewInt(1), d: v.deg}, nil
	case Fraction:
		a, b, err := toRadicals(v.Num(), v.Den())
		if err != nil {
			return radical{}, err
		}
		return a.mul(b.inv())
	default:
		panic("exact: invalid value kind")
	}
}

// toRadicals converts two valid values to their general forms.
func toRadicals(x, y Value) (radical, radical, error) {
	a, err := toRadical(x)
	if err != nil {
		return radical{}, radical{}, err
	}
	b, err := toRadical(y)
	if err != nil {
		return radical{}, radical{}, err
	}
	return a, b, nil
}

// canon converts a valid value to its general form with minimal degree.
func canon(v Value) (radical, error) {
	r, err := toRadical(v)
	if err != nil {
		return radical{}, err
	}
	r.simplify()
	return r, nil
}

// reduce divides p and q by their gcd and normalizes zero.
func (r *radical) reduce() {
	if r.p.Sign() == 0 {
		r.neg = false
		r.q = big.NewInt(1)
		r.d = 1
		return
	}
	g := new(big.Int).GCD(nil, nil, r.p, r.q)
	if g.Cmp(bigOne) != 0 {
		r.p = new(big.Int).Quo(r.p, g)
		r.q = new(big.Int).Quo(r.q, g)
	}
}

// simplify lowers the degree of r while p and q are both perfect powers of a
// divisor of the degree.
func (r *radical) simplify() {
	r.reduce()
	for k := int64(2); k <= r.d; {
		if r.d%k == 0 {
			if pk, ok := iroot(r.p, k); ok {
				if qk, ok := iroot(r.q, k); ok {
					r.p, r.q = pk, qk
					r.d /= k
					continue
				}
			}
		}
		k++
	}
}

// scale raises p and q to the kth power, raising the degree to match, so that
// the value is unchanged.
func (r radical) scale(k int64) (radical, error) {
	if k == 1 {
		return r, nil
	}
	if err := sizeCheck(r.p, k); err != nil {
		return radical{}, err
	}
	if err := sizeCheck(r.q, k); err != nil {
		return radical{}, err
	}
	e := big.NewInt(k)
	return radical{
		neg: r.neg,
		p:   new(big.Int).Exp(r.p, e, nil),
		q:   new(big.Int).Exp(r.q, e, nil),
		d:   r.d * k,
	}, nil
}

// mul multiplies two general forms over the lcm of their degrees.
func (r radical) mul(s radical) (radical, error) {
	l, err := lcmDegree(r.d, s.d)
	if err != nil {
		return radical{}, err
	}
	a, err := r.scale(l / r.d)
	if err != nil {
		return radical{}, err
	}
	b, err := s.scale(l / s.d)
	if err != nil {
		return radical{}, err
	}
	if a.p.BitLen()+b.p.BitLen() > maxBits || a.q.BitLen()+b.q.BitLen() > maxBits {
		return radical{}, ErrInexact
	}
	t := radical{
		neg: a.neg != b.neg,
		p:   new(big.Int).Mul(a.p, b.p),
		q:   new(big.Int).Mul(a.q, b.q),
		d:   l,
	}
	t.reduce()
	return t, nil
}

// inv returns the reciprocal of r. r must not be zero.
func (r radical) inv() radical {
	return radical{neg: r.neg, p: new(big.Int).Set(r.q), q: new(big.Int).Set(r.p), d: r.d}
}

// build converts a general form back to a canonical Value. The numerator and
// denominator radicals are taken independently.
func (r radical) build() (Value, error) {
	r.simplify()
	if r.p.Sign() == 0 {
		return Int{}, nil
	}
	if r.d == 1 {
		p := new(big.Int).Set(r.p)
		if r.neg {
			p.Neg(p)
		}
		return newRatio("", p, new(big.Int).Set(r.q))
	}
	num := rootInt(r.p, r.d)
	if r.neg {
		num = negate(num)
	}
	if r.q.Cmp(bigOne) == 0 {
		return num, nil
	}
	return Fraction{num: num, den: rootInt(r.q, r.d)}, nil
}

// negate returns -v for an Int or Root. Odd roots carry the sign in the
// radicand.
func negate(v Value) Value {
	switch v := v.(type) {
	case Int:
		return Int{new(big.Int).Neg(v.int())}
	case Root:
		if v.deg%2 == 1 {
			return Root{rad: new(big.Int).Neg(v.rad), deg: v.deg}
		}
		return Root{rad: v.rad, deg: v.deg, neg: !v.neg}
	default:
		panic("exact: negate of a fraction")
	}
}

// rootInt computes the dth root of n as an Int, if it is exact, or as a Root
// of minimal degree. If d is even, n must be non-negative.
func rootInt(n *big.Int, d int64) Value {
	n = new(big.Int).Set(n)
	for k := int64(2); k <= d; {
		if d%k == 0 {
			if nk, ok := iroot(n, k); ok {
				n = nk
				d /= k
				continue
			}
		}
		k++
	}
	if d == 1 {
		return Int{n}
	}
	return Root{rad: n, deg: d}
}

// iroot computes the exact kth root of n, verifying that the candidate raised
// to the kth power is n. Negative n has a root only when k is odd.
func iroot(n *big.Int, k int64) (*big.Int, bool) {
	switch {
	case k < 1:
		return nil, false
	case n.Sign() < 0:
		if k%2 == 0 {
			return nil, false
		}
		r, ok := iroot(new(big.Int).Neg(n), k)
		if !ok {
			return nil, false
		}
		return r.Neg(r), true
	case k == 1, n.Sign() == 0, n.Cmp(bigOne) == 0:
		return new(big.Int).Set(n), true
	}
	b := int64(n.BitLen())
	if b <= k {
		// 1 < n < 2^k, so the root is strictly between 1 and 2.
		return nil, false
	}
	// Newton's method converges to the floor of the root from above. One step
	// from any positive start lands at or above the floor.
	x := newtonStep(rootEstimate(n, k), n, k)
	for {
		y := newtonStep(x, n, k)
		if y.Cmp(x) >= 0 {
			break
		}
		x = y
	}
	if new(big.Int).Exp(x, big.NewInt(k), nil).Cmp(n) != 0 {
		return nil, false
	}
	return x, true
}

// newtonStep computes ((k-1)x + n/x^(k-1)) / k.
func newtonStep(x, n *big.Int, k int64) *big.Int {
	km1 := big.NewInt(k - 1)
	t := new(big.Int).Exp(x, km1, nil)
	t.Quo(n, t)
	y := new(big.Int).Mul(x, km1)
	y.Add(y, t)
	return y.Quo(y, big.NewInt(k))
}

// rootEstimate approximates the kth root of n > 1 from its leading 64 bits.
func rootEstimate(n *big.Int, k int64) *big.Int {
	s := n.BitLen() - 64
	if s < 0 {
		s = 0
	}
	top := new(big.Int).Rsh(n, uint(s)).Uint64()
	e := (math.Log2(float64(top)) + float64(s)) / float64(k)
	ei := math.Floor(e)
	m := math.Exp2(e - ei)
	if ei < 52 {
		return new(big.Int).SetUint64(uint64(math.Ceil(m * math.Exp2(ei))))
	}
	x := new(big.Int).SetUint64(uint64(math.Ceil(m * (1 << 52))))
	return x.Lsh(x, uint(ei-52))
}

// sizeCheck reports ErrInexact if x^k would exceed the size bound.
func sizeCheck(x *big.Int, k int64) error {
	if k < 0 {
		k = -k
	}
	b := int64(x.BitLen())
	if b > 1 && k > maxBits/b {
		return ErrInexact
	}
	return nil
}

// lcmDegree computes the lcm of two degrees within the degree bound.
func lcmDegree(a, b int64) (int64, error) {
	x, y := a, b
	for y != 0 {
		x, y = y, x%y
	}
	l := a / x * b
	if l > maxDegree || l < 0 {
		return 0, ErrInexact
	}
	return l, nil
}
