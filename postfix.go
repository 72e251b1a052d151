package exactcalc

import (
	"io"
	"strings"

	"github.com/zephyrtronium/exactcalc/exact"
)

type itemKind int8

const (
	itemNone itemKind = iota
	// itemValue pushes val.
	itemValue
	// itemOp applies the binary operator op to the top two operands.
	itemOp
	// itemFunc applies fn to the top operand.
	itemFunc
	// itemOpen is an open bracket. It appears only on the operator stack.
	itemOpen
)

type item struct {
	kind itemKind
	op   byte
	name string
	fn   Func
	val  Value
	pos  int
}

func (it item) rank() int {
	switch it.kind {
	case itemOpen:
		return rankOpen
	case itemFunc:
		return rankFunc
	default:
		return precedence(it.op)
	}
}

func (it item) String() string {
	switch it.kind {
	case itemValue:
		return it.val.String()
	case itemOp:
		return string(it.op)
	case itemFunc:
		return it.name
	case itemOpen:
		return "("
	default:
		return "<none>"
	}
}

// Postfix is an expression converted to postfix order, ready for evaluation.
type Postfix struct {
	items []item
}

// String formats the postfix sequence with its items separated by spaces.
// Constants appear as their values.
func (p *Postfix) String() string {
	var b strings.Builder
	for i, it := range p.items {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(it.String())
	}
	return b.String()
}

// Len returns the number of items in the postfix sequence.
func (p *Postfix) Len() int {
	return len(p.items)
}

// converter holds the state of conversion from infix tokens to postfix.
type converter struct {
	scan  *lexer
	funcs map[string]Func
	bits  uint
	stack []item
	out   []item
	// ends indicates that the last token completed an operand, so that an
	// open bracket, name, or number following it is adjacent.
	ends bool
}

// convert converts an expression to postfix order. Constants are evaluated
// during conversion.
func convert(src io.RuneScanner, funcs map[string]Func, bits uint) (*Postfix, error) {
	c := converter{scan: lex(src), funcs: funcs, bits: bits}
	for {
		tok, err := c.scan.next()
		if err != nil {
			return nil, err
		}
		switch tok.kind {
		case tokenEOF:
			if err := c.flush(); err != nil {
				return nil, err
			}
			return &Postfix{items: c.out}, nil
		case tokenNum:
			if err := c.number(tok); err != nil {
				return nil, err
			}
		case tokenIdent:
			if err := c.ident(tok); err != nil {
				return nil, err
			}
		case tokenOp:
			c.operator(tok.text[0], tok.pos)
			c.ends = false
		case tokenOpen:
			c.adjacent(tok.pos)
			c.stack = append(c.stack, item{kind: itemOpen, pos: tok.pos})
			c.ends = false
		case tokenClose:
			if err := c.close(tok); err != nil {
				return nil, err
			}
		default:
			panic("exactcalc: unknown token kind " + tok.kind.String())
		}
	}
}

func (c *converter) number(tok lexToken) error {
	if c.ends {
		return &ParserError{Col: tok.pos, Text: tok.text, Err: ErrUnexpectedNumber}
	}
	x, err := exact.ParseDecimal(tok.text)
	if err != nil {
		// The lexer only produces well-formed literals.
		panic("exactcalc: lexer produced bad number " + tok.text + ": " + err.Error())
	}
	c.out = append(c.out, item{kind: itemValue, val: Exact(x), pos: tok.pos})
	c.ends = true
	return nil
}

func (c *converter) ident(tok lexToken) error {
	fn := c.funcs[tok.text]
	if fn == nil {
		return &ParserError{Col: tok.pos, Text: tok.text, Err: ErrNotDefined}
	}
	c.adjacent(tok.pos)
	switch fn.Arity() {
	case 0:
		v, err := fn.Call(c.bits, nil)
		if err != nil {
			return err
		}
		c.out = append(c.out, item{kind: itemValue, val: v, name: tok.text, pos: tok.pos})
		c.ends = true
	case 1:
		c.stack = append(c.stack, item{kind: itemFunc, name: tok.text, fn: fn, pos: tok.pos})
		c.ends = false
	default:
		return &ParserError{Col: tok.pos, Text: tok.text, Err: ErrNotDefined}
	}
	return nil
}

// adjacent inserts an implicit multiplication if the previous token completed
// an operand.
func (c *converter) adjacent(pos int) {
	if c.ends {
		c.operator('*', pos)
	}
}

// operator moves operators that bind at least as tightly as op to the output,
// then pushes op. Exponentiation is right-associative and pops nothing.
func (c *converter) operator(op byte, pos int) {
	it := item{kind: itemOp, op: op, pos: pos}
	if op != '^' {
		r := it.rank()
		for len(c.stack) > 0 {
			top := c.stack[len(c.stack)-1]
			if top.kind == itemOpen || top.rank() < r {
				break
			}
			c.out = append(c.out, top)
			c.stack = c.stack[:len(c.stack)-1]
		}
	}
	c.stack = append(c.stack, it)
}

// close moves operators to the output up to the matching open bracket, then
// moves a function applied to the bracket, if there is one.
func (c *converter) close(tok lexToken) error {
	for {
		if len(c.stack) == 0 {
			return &ParserError{Col: tok.pos, Text: tok.text, Err: ErrUnexpectedClose}
		}
		top := c.stack[len(c.stack)-1]
		c.stack = c.stack[:len(c.stack)-1]
		if top.kind == itemOpen {
			break
		}
		c.out = append(c.out, top)
	}
	if n := len(c.stack); n > 0 && c.stack[n-1].kind == itemFunc {
		c.out = append(c.out, c.stack[n-1])
		c.stack = c.stack[:n-1]
	}
	c.ends = true
	return nil
}

// flush moves all remaining operators to the output.
func (c *converter) flush() error {
	for len(c.stack) > 0 {
		top := c.stack[len(c.stack)-1]
		c.stack = c.stack[:len(c.stack)-1]
		if top.kind == itemOpen {
			return &ParserError{Col: top.pos, Text: "(", Err: ErrUnclosed}
		}
		c.out = append(c.out, top)
	}
	return nil
}
