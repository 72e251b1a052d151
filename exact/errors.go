package exact

import "errors"

// FractionError is an error from an operation on invalid operands, such as a
// division by zero or an operand that is not an Int, Fraction, or Root.
type FractionError struct {
	// Op is the name of the operation, e.g. "divide". It may be empty.
	Op string
	// Reason describes the problem.
	Reason string
}

func (err *FractionError) Error() string {
	if err.Op == "" {
		return "fraction: " + err.Reason
	}
	return "fraction: " + err.Op + ": " + err.Reason
}

// ErrInexact is returned by operations whose result exists as a real number
// but has no exact form as a Value, e.g. the sum of two unlike radicals or a
// power with an irrational exponent. Callers that can work with
// approximations should fall back to Float.
var ErrInexact = errors.New("exact: result has no exact form")
