package exact_test

import (
	"fmt"

	"github.com/zephyrtronium/exactcalc/exact"
)

func Example() {
	half, _ := exact.Ratio(1, 2)
	third, _ := exact.Ratio(1, 3)
	sum, _ := exact.Add(half, third)
	fmt.Println(sum)

	cbrt8, _ := exact.Pow(exact.NewInt(8), third)
	sqrt2, _ := exact.RootOf(exact.NewInt(2), exact.NewInt(2))
	two, _ := exact.Mul(sqrt2, sqrt2)
	fmt.Println(cbrt8, sqrt2, two)

	// Output:
	// 5/6
	// 2 2^(1/2) 2
}

func ExampleAcc() {
	a := exact.NewAcc(exact.NewInt(3))
	a.Div(exact.NewInt(4)).Pow(exact.NewInt(-2))
	fmt.Println(a, a.Err())

	a.Div(exact.NewInt(0)).Add(exact.NewInt(1))
	fmt.Println(a, a.Err())

	// Output:
	// 16/9 <nil>
	// 16/9 fraction: divide: denominator can not be 0
}
