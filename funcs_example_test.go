package exactcalc_test

import (
	"fmt"

	"github.com/zephyrtronium/exactcalc"
	"github.com/zephyrtronium/exactcalc/exact"
)

// square is a unary function that squares its argument.
type square struct{}

func (square) Arity() int {
	return 1
}

func (square) Call(bits uint, args []exactcalc.Value) (exactcalc.Value, error) {
	if x, ok := args[0].Exact(); ok {
		r, err := exact.Mul(x, x)
		return exactcalc.Exact(r), err
	}
	x := args[0].Float(bits)
	return exactcalc.Real(x.Mul(x, x)), nil
}

func ExampleFunc() {
	p := exactcalc.New(exactcalc.SetFunc("sq", square{}))
	a, _ := p.Parse("sq(2/3)")
	b, _ := p.Parse("sq sqrt 5")
	c, _ := p.Parse("sq pi")
	fmt.Println(a, b, c)

	// Output:
	// 4/9 5 9.8696
}

func ExampleParser_Parse() {
	p := exactcalc.New()
	for _, expr := range []string{"2+3*4", "2(3+4)", "1/3 + 1/6", "sqrt 2 * sqrt 6", "2pi"} {
		v, err := p.Parse(expr)
		fmt.Println(v, err)
	}
	_, err := p.Parse("(2+3")
	fmt.Println(err)

	// Output:
	// 14 <nil>
	// 14 <nil>
	// 1/2 <nil>
	// 12^(1/2) <nil>
	// 6.28319 <nil>
	// 1: bracket not closed "("
}

func ExampleParser_Postfix() {
	a, _ := exactcalc.New().Postfix("1 - 2*3 + 4")
	fmt.Println(a)

	// Output:
	// 1 2 3 * - 4 +
}

func ExampleForceReal() {
	p := exactcalc.New(exactcalc.ForceReal(), exactcalc.Precision(3))
	v, _ := p.Parse("1/3")
	fmt.Println(v)

	// Output:
	// 0.333
}
