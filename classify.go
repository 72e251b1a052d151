package exactcalc

// Character classes are fixed code point ranges. Nothing outside ASCII is a
// digit, letter, or operator.

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

func isLetter(r rune) bool {
	return 'a' <= r && r <= 'z' || 'A' <= r && r <= 'Z'
}

// isSpace reports whether r is whitespace, i.e. any control code or space.
func isSpace(r rune) bool {
	return 0 <= r && r < 33
}

// isOperator reports whether r is an operator symbol, including brackets.
func isOperator(r rune) bool {
	switch r {
	case '+', '-', '*', '/', '^', '(', ')':
		return true
	default:
		return false
	}
}

// Operator ranks for the shunting-yard conversion. Higher binds tighter.
const (
	rankOpen = 1 + iota
	rankSum
	rankProduct
	rankPower
	rankFunc
)

// precedence gets the rank of an operator symbol. Anything that is not an
// arithmetic operator or bracket is a function and binds tightest.
func precedence(op byte) int {
	switch op {
	case '(':
		return rankOpen
	case '+', '-':
		return rankSum
	case '*', '/':
		return rankProduct
	case '^':
		return rankPower
	default:
		return rankFunc
	}
}
