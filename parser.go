package exactcalc

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"github.com/zephyrtronium/exactcalc/exact"
	"github.com/zephyrtronium/exactcalc/observability"
)

// Parser evaluates expressions. A Parser is immutable and safe for concurrent
// use, provided its functions are.
type Parser struct {
	p parsectx
}

// New creates a parser with the given options.
func New(opts ...Option) *Parser {
	return &Parser{p: build(opts)}
}

// Parse evaluates an expression.
func (p *Parser) Parse(expr string) (Value, error) {
	return p.ParseContext(context.Background(), expr)
}

// ParseContext evaluates an expression. ctx carries the trace span.
//
// Real results are rounded to the parser's precision. Errors of type
// *ParserError and *exact.FractionError pass through the parser's error
// handler; if it returns nil, so does ParseContext, along with an empty
// Value. Other errors are returned directly.
func (p *Parser) ParseContext(ctx context.Context, expr string) (Value, error) {
	done := observability.TimedOperation()
	id := uuid.NewString()
	log := observability.EnrichLogger(p.p.logger, id)
	ctx, span := p.p.spans.StartParseSpan(ctx, id, expr)

	v, err := p.eval(ctx, log, expr)

	elapsed := done()
	p.p.spans.EndSpanWithError(span, err)
	p.p.metrics.RecordParse(ctx, elapsed, errKind(err))
	if err != nil {
		observability.LogParseError(log, expr, err, observability.Milliseconds(elapsed))
		if handled(err) {
			return Value{}, p.p.handler(err)
		}
		return Value{}, err
	}
	kind := "exact"
	if v.IsReal() {
		kind = "real"
	}
	p.p.metrics.RecordResult(ctx, kind)
	observability.LogParseComplete(log, expr, v.String(), observability.Milliseconds(elapsed))
	return v, nil
}

func (p *Parser) eval(ctx context.Context, log *slog.Logger, expr string) (Value, error) {
	pf, err := p.Postfix(expr)
	if err != nil {
		return Value{}, err
	}
	observability.Diagnostic(log, slog.LevelDebug, "convert", "converted to postfix",
		slog.String("postfix", pf.String()),
		slog.Int("items", pf.Len()),
	)
	p.p.spans.AddSpanEvent(ctx, "convert", attribute.Int("items", pf.Len()))
	v, err := pf.eval(p.p.bits)
	if err != nil {
		return Value{}, err
	}
	p.p.spans.AddSpanEvent(ctx, "evaluate", attribute.Bool("exact", !v.IsReal()))
	if x, ok := v.Exact(); ok && p.p.real {
		v = Real(x.Float(p.p.bits))
	}
	return v.round(p.p.precision, p.p.bits), nil
}

// Postfix converts an expression to postfix order without evaluating it.
// Constants in the expression are evaluated. Errors are returned directly
// without passing through the error handler.
func (p *Parser) Postfix(expr string) (*Postfix, error) {
	return convert(strings.NewReader(collapse(expr)), p.p.funcs, p.p.bits)
}

// collapse replaces each run of whitespace with a single space.
func collapse(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	space := false
	for _, r := range s {
		if isSpace(r) {
			if !space {
				b.WriteByte(' ')
			}
			space = true
			continue
		}
		space = false
		b.WriteRune(r)
	}
	return b.String()
}

// handled reports whether err is routed to the error handler.
func handled(err error) bool {
	var pe *ParserError
	var fe *exact.FractionError
	return errors.As(err, &pe) || errors.As(err, &fe)
}

// errKind classifies an error for metrics.
func errKind(err error) string {
	var (
		pe *ParserError
		fe *exact.FractionError
		de DomainError
	)
	switch {
	case err == nil:
		return ""
	case errors.As(err, &pe):
		return "parser"
	case errors.As(err, &fe):
		return "fraction"
	case errors.As(err, &de):
		return "domain"
	case errors.Is(err, exact.ErrInexact):
		return "inexact"
	default:
		return "other"
	}
}
