package exact

// Acc is an accumulator offering in-place arithmetic over a Value. Each
// method replaces the held value with the result and returns the receiver so
// that calls can be chained. Once an operation fails, the Acc holds its last
// good value, ignores further operations, and reports the error from Err.
type Acc struct {
	v   Value
	err error
}

// NewAcc creates an accumulator holding a reduced copy of v.
func NewAcc(v Value) *Acc {
	c, err := CopyOf(v)
	return &Acc{v: c, err: err}
}

// Value returns the held value.
func (a *Acc) Value() Value {
	return a.v
}

// Err returns the first error that occurred in an operation on a, if any.
func (a *Acc) Err() error {
	return a.err
}

func (a *Acc) String() string {
	if a.v == nil {
		return "<nil>"
	}
	return a.v.String()
}

func (a *Acc) apply(f func(x, y Value) (Value, error), y Value) *Acc {
	if a.err != nil {
		return a
	}
	v, err := f(a.v, y)
	if err != nil {
		a.err = err
		return a
	}
	a.v = v
	return a
}

// Add sets a to a + y.
func (a *Acc) Add(y Value) *Acc { return a.apply(Add, y) }

// Sub sets a to a - y.
func (a *Acc) Sub(y Value) *Acc { return a.apply(Sub, y) }

// Mul sets a to a * y.
func (a *Acc) Mul(y Value) *Acc { return a.apply(Mul, y) }

// Div sets a to a / y.
func (a *Acc) Div(y Value) *Acc { return a.apply(Div, y) }

// Pow sets a to a^y.
func (a *Acc) Pow(y Value) *Acc { return a.apply(Pow, y) }

// Root sets a to the yth root of a.
func (a *Acc) Root(y Value) *Acc { return a.apply(RootOf, y) }
