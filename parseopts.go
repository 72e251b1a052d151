package exactcalc

import (
	"log/slog"
	"strconv"

	"github.com/zephyrtronium/exactcalc/observability"
)

// Option is an option for creating a Parser.
type Option interface {
	parseOption(parsectx) parsectx
}

type (
	precopt    int
	bitsopt    uint
	realopt    struct{}
	handleropt func(error) error
	funcopt    struct {
		name string
		fn   Func
	}
	funcsopt   map[string]Func
	disableopt struct{}
	loggeropt  struct{ l *slog.Logger }
	metricsopt struct{ m observability.MetricsRecorder }
	tracingopt struct{ s observability.SpanManager }
)

// parsectx holds the configuration of a Parser.
type parsectx struct {
	// precision is the number of decimal places real results are rounded to.
	precision int
	// bits is the precision in bits of real arithmetic.
	bits uint
	// real indicates that exact results are converted to reals.
	real bool
	// handler intercepts parser and fraction errors.
	handler func(error) error
	// funcs is the set of names expressions may use. A nil entry hides a
	// name.
	funcs map[string]Func
	// nodefaults indicates that default functions are not merged in.
	nodefaults bool

	logger  *slog.Logger
	metrics observability.MetricsRecorder
	spans   observability.SpanManager
}

// Precision sets the number of decimal places to which real results are
// rounded. The default is 5. Panics if n is negative.
func Precision(n int) Option {
	if n < 0 {
		panic("exactcalc: negative precision " + strconv.Itoa(n))
	}
	return precopt(n)
}

func (o precopt) parseOption(p parsectx) parsectx {
	p.precision = int(o)
	return p
}

// Bits sets the precision in bits of real arithmetic. The default is 64.
// Panics if n is zero.
func Bits(n uint) Option {
	if n == 0 {
		panic("exactcalc: zero bits of precision")
	}
	return bitsopt(n)
}

func (o bitsopt) parseOption(p parsectx) parsectx {
	p.bits = uint(o)
	return p
}

// ForceReal makes the parser convert exact results to rounded reals.
func ForceReal() Option {
	return realopt{}
}

func (realopt) parseOption(p parsectx) parsectx {
	p.real = true
	return p
}

// ErrorHandler sets a function to intercept *ParserError and
// *exact.FractionError errors. The parser returns whatever the handler
// returns. If the handler returns nil, the parse result is an empty Value.
// By default, errors are returned unchanged.
func ErrorHandler(f func(error) error) Option {
	return handleropt(f)
}

func (o handleropt) parseOption(p parsectx) parsectx {
	p.handler = o
	return p
}

// SetFunc sets a function or constant for parsing. To disable parsing a
// name, pass nil for fn.
func SetFunc(name string, fn Func) Option {
	return &funcopt{name, fn}
}

func (o *funcopt) parseOption(p parsectx) parsectx {
	if p.funcs == nil {
		p.funcs = map[string]Func{}
	}
	p.funcs[o.name] = o.fn
	return p
}

// SetFuncs sets a group of functions for parsing. To disable parsing any
// name, set it to nil.
func SetFuncs(fns map[string]Func) Option {
	return funcsopt(fns)
}

func (o funcsopt) parseOption(p parsectx) parsectx {
	if p.funcs == nil {
		// Always make a copy.
		p.funcs = make(map[string]Func, len(o))
	}
	for k, v := range o {
		p.funcs[k] = v
	}
	return p
}

// DisableDefaultFuncs disables all default functions and constants. Their
// names will fail to parse unless set by other options.
func DisableDefaultFuncs() Option {
	return disableopt{}
}

func (disableopt) parseOption(p parsectx) parsectx {
	p.nodefaults = true
	return p
}

// Logger sets the diagnostic sink. By default, diagnostics are discarded.
func Logger(l *slog.Logger) Option {
	return loggeropt{l}
}

func (o loggeropt) parseOption(p parsectx) parsectx {
	p.logger = o.l
	return p
}

// Metrics sets the recorder for parse metrics. By default, metrics are not
// recorded.
func Metrics(m observability.MetricsRecorder) Option {
	return metricsopt{m}
}

func (o metricsopt) parseOption(p parsectx) parsectx {
	p.metrics = o.m
	return p
}

// Tracing sets the span manager for parse traces. By default, spans are not
// created.
func Tracing(s observability.SpanManager) Option {
	return tracingopt{s}
}

func (o tracingopt) parseOption(p parsectx) parsectx {
	p.spans = o.s
	return p
}

// build applies options over the defaults.
func build(opts []Option) parsectx {
	p := parsectx{precision: 5, bits: 64}
	for _, opt := range opts {
		p = opt.parseOption(p)
	}
	funcs := make(map[string]Func, len(globalfuncs)+len(p.funcs))
	if !p.nodefaults {
		for k, v := range globalfuncs {
			funcs[k] = v
		}
	}
	for k, v := range p.funcs {
		if v == nil {
			delete(funcs, k)
			continue
		}
		funcs[k] = v
	}
	p.funcs = funcs
	if p.handler == nil {
		p.handler = func(err error) error { return err }
	}
	if p.logger == nil {
		p.logger = slog.New(slog.DiscardHandler)
	}
	if p.metrics == nil {
		p.metrics = observability.NoopMetrics{}
	}
	if p.spans == nil {
		p.spans = observability.NoopSpanManager{}
	}
	return p
}
