package exactcalc

import (
	"errors"
	"math/big"
	"strconv"
)

// Causes of a ParserError. Use errors.Is to test for them.
var (
	// ErrNotDefined is the cause of an error for a name that is not a known
	// constant or function.
	ErrNotDefined = errors.New("not defined")
	// ErrDecimal is the cause of an error for a second decimal point in a
	// numeric literal.
	ErrDecimal = errors.New("unexpected token '.'")
	// ErrUnexpectedToken is the cause of an error for a character that can
	// not begin any token.
	ErrUnexpectedToken = errors.New("unexpected token")
	// ErrUnexpectedClose is the cause of an error for a close bracket with no
	// matching open bracket.
	ErrUnexpectedClose = errors.New("unexpected token ')'")
	// ErrUnclosed is the cause of an error for an open bracket with no
	// matching close bracket.
	ErrUnclosed = errors.New("bracket not closed")
	// ErrUnexpectedNumber is the cause of an error for a number immediately
	// following a number, constant, or close bracket.
	ErrUnexpectedNumber = errors.New("unexpected number")
	// ErrMissingOperand is the cause of an error for an operator or function
	// without enough operands.
	ErrMissingOperand = errors.New("missing operand")
	// ErrTrailingOperand is the cause of an error for operands left over
	// after evaluation.
	ErrTrailingOperand = errors.New("trailing operand")
	// ErrEmpty is the cause of an error for an expression with no terms.
	ErrEmpty = errors.New("no expression")
)

// ParserError is an error in the syntax or structure of an expression. It
// implements InputError.
type ParserError struct {
	// Col is the position of the token that caused the error.
	Col int
	// Text is the token that caused the error, if any.
	Text string
	// Err is the cause of the error, one of the Err variables of this package.
	Err error
}

func (err *ParserError) Error() string {
	switch {
	case errors.Is(err.Err, ErrNotDefined):
		return errpos(err.Col, strconv.Quote(err.Text)+" is not defined")
	case errors.Is(err.Err, ErrDecimal), errors.Is(err.Err, ErrUnexpectedClose), err.Text == "":
		return errpos(err.Col, err.Err.Error())
	default:
		return errpos(err.Col, err.Err.Error()+" "+strconv.Quote(err.Text))
	}
}

func (err *ParserError) Unwrap() error {
	return err.Err
}

func (err *ParserError) Pos() int {
	return err.Col
}

// DomainError is an error returned when a function is called on arguments
// outside its domain. DomainError unwraps to big.ErrNaN.
type DomainError struct {
	// X is the out-of-domain argument.
	X *big.Float
	// Func is a name identifying the function or operator.
	Func string
}

func (err DomainError) Error() string {
	r := "<nil>"
	if err.X != nil {
		r = err.X.String()
	}
	r += " outside domain"
	if err.Func != "" {
		r += " of " + err.Func
	}
	return r
}

func (err DomainError) Unwrap() error {
	return big.ErrNaN{}
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the number of runes up to and
	// including the start of the token that caused the error.
	Pos() int
}

var _ InputError = (*ParserError)(nil)
