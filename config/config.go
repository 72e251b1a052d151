package config

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/zephyrtronium/exactcalc"
	"github.com/zephyrtronium/exactcalc/exact"
)

// Settings are the calculator settings a file can hold. Unset fields leave
// the parser defaults in place.
type Settings struct {
	// Precision is the number of decimal places of real results.
	Precision *int `yaml:"precision" json:"precision"`
	// Bits is the precision in bits of real arithmetic.
	Bits *int `yaml:"bits" json:"bits"`
	// Real converts exact results to reals.
	Real bool `yaml:"real" json:"real"`
	// LogLevel is one of debug, info, warn, or error.
	LogLevel string `yaml:"log_level" json:"log_level"`
	// Disable lists names to remove from the registry.
	Disable []string `yaml:"disable" json:"disable"`
	// Constants are extra named constants.
	Constants map[string]Number `yaml:"constants" json:"constants"`
}

// validate checks the settings that decoding cannot.
func (s *Settings) validate() error {
	if s.Precision != nil && *s.Precision < 0 {
		return fmt.Errorf("precision: must not be negative, got %d", *s.Precision)
	}
	if s.Bits != nil && *s.Bits <= 0 {
		return fmt.Errorf("bits: must be positive, got %d", *s.Bits)
	}
	if _, err := s.level(); err != nil {
		return err
	}
	for _, name := range s.Disable {
		if !isName(name) {
			return fmt.Errorf("disable: %q is not a name", name)
		}
	}
	for name := range s.Constants {
		if !isName(name) {
			return fmt.Errorf("constants: %q is not a name", name)
		}
	}
	return nil
}

// Options converts the settings to parser options.
func (s *Settings) Options() []exactcalc.Option {
	var opts []exactcalc.Option
	if s.Precision != nil {
		opts = append(opts, exactcalc.Precision(*s.Precision))
	}
	if s.Bits != nil {
		opts = append(opts, exactcalc.Bits(uint(*s.Bits)))
	}
	if s.Real {
		opts = append(opts, exactcalc.ForceReal())
	}
	for _, name := range s.Disable {
		opts = append(opts, exactcalc.SetFunc(name, nil))
	}
	for name, n := range s.Constants {
		opts = append(opts, exactcalc.SetFunc(name, exactcalc.Const(n.Value())))
	}
	return opts
}

// Level returns the configured log level, or def if none is set.
func (s *Settings) Level(def slog.Level) slog.Level {
	l, err := s.level()
	if err != nil || l == nil {
		return def
	}
	return *l
}

func (s *Settings) level() (*slog.Level, error) {
	if s.LogLevel == "" {
		return nil, nil
	}
	var l slog.Level
	if err := l.UnmarshalText([]byte(s.LogLevel)); err != nil {
		return nil, fmt.Errorf("log_level: unknown level %q", s.LogLevel)
	}
	return &l, nil
}

// Number is an exact constant written as a decimal, like 0.25, or as a
// ratio of decimals, like 1/3. Values are read from their literal text, so
// decimals never pass through floating point.
type Number struct {
	v exact.Value
}

// Value returns the number. The zero Number is 0.
func (n Number) Value() exact.Value {
	if n.v == nil {
		return exact.NewInt(0)
	}
	return n.v
}

func (n *Number) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: constant must be a decimal or ratio", node.Line)
	}
	if err := n.set(node.Value); err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	return nil
}

func (n *Number) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		var num json.Number
		if err := json.Unmarshal(b, &num); err != nil {
			return fmt.Errorf("constant must be a decimal or ratio, not %s", b)
		}
		s = num.String()
	}
	return n.set(s)
}

func (n *Number) set(text string) error {
	num, den, ok := strings.Cut(text, "/")
	x, err := exact.ParseDecimal(strings.TrimSpace(num))
	if err != nil {
		return fmt.Errorf("constant %q: %w", text, err)
	}
	if ok {
		d, err := exact.ParseDecimal(strings.TrimSpace(den))
		if err != nil {
			return fmt.Errorf("constant %q: %w", text, err)
		}
		if x, err = exact.FromRatio(x, d); err != nil {
			return fmt.Errorf("constant %q: %w", text, err)
		}
	}
	n.v = x
	return nil
}

func isName(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !('a' <= r && r <= 'z' || 'A' <= r && r <= 'Z') {
			return false
		}
	}
	return true
}
