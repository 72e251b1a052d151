package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zephyrtronium/exactcalc"
	"github.com/zephyrtronium/exactcalc/config"
)

func TestParseYAML(t *testing.T) {
	s, err := config.ParseYAML([]byte(`
precision: 3
bits: 128
real: true
log_level: debug
disable: [ln]
constants:
  half: 0.5
  third: 1/3
  huge: 123456789012345678901234567890
  seven: 7
`))
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, s.Level(slog.LevelWarn))
	assert.Equal(t, "123456789012345678901234567890", s.Constants["huge"].Value().String())
	assert.Equal(t, "1/3", s.Constants["third"].Value().String())
	p := exactcalc.New(s.Options()...)

	tests := []struct {
		src  string
		want string
	}{
		{"half + third", "0.833"},
		{"huge", "123456789012345678901234567890"},
		{"seven third", "2.333"},
		{"pi", "3.142"},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			v, err := p.Parse(tt.src)
			require.NoError(t, err)
			assert.Equal(t, tt.want, v.String())
		})
	}

	_, err = p.Parse("ln 2")
	assert.ErrorIs(t, err, exactcalc.ErrNotDefined)
}

func TestParseJSON(t *testing.T) {
	s, err := config.ParseJSON([]byte(`{"precision": 2, "constants": {"tenth": 0.1, "two": "2", "third": "1/3"}}`))
	require.NoError(t, err)

	v, err := exactcalc.New(s.Options()...).Parse("two tenth")
	require.NoError(t, err)
	assert.Equal(t, "1/5", v.String())

	v, err = exactcalc.New(s.Options()...).Parse("third + tenth")
	require.NoError(t, err)
	assert.Equal(t, "13/30", v.String())

	v, err = exactcalc.New(s.Options()...).Parse("e")
	require.NoError(t, err)
	assert.Equal(t, "2.72", v.String())
}

func TestEmptySettings(t *testing.T) {
	for _, data := range []string{"", "{}"} {
		s, err := config.ParseYAML([]byte(data))
		require.NoError(t, err)
		assert.Empty(t, s.Options())
		assert.Equal(t, slog.LevelWarn, s.Level(slog.LevelWarn))
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"negative precision", "precision: -1", "precision"},
		{"fractional precision", "precision: 2.5", "cannot unmarshal"},
		{"zero bits", "bits: 0", "bits"},
		{"unknown level", "log_level: loud", "log_level"},
		{"disable not list", "disable: ln", "parse yaml"},
		{"disable not name", "disable: [x1]", "disable"},
		{"unknown key", "precison: 3", "precison"},
		{"bad constant name", "constants: {x1: 1}", "constants"},
		{"bad constant value", "constants: {x: one}", "line 1"},
		{"zero denominator", "constants: {x: 1/0}", "denominator"},
		{"constant list", "constants: {x: [1]}", "decimal or ratio"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := config.ParseYAML([]byte(tt.yaml))
			assert.ErrorContains(t, err, tt.want)
		})
	}
}

func TestParseJSONErrors(t *testing.T) {
	tests := []struct {
		name string
		json string
		want string
	}{
		{"syntax", "{", "parse json"},
		{"unknown key", `{"digits": 3}`, "digits"},
		{"constant type", `{"constants": {"x": true}}`, "decimal or ratio"},
		{"exponent", `{"constants": {"x": 1e5}}`, "invalid decimal"},
		{"negative bits", `{"bits": -8}`, "bits"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := config.ParseJSON([]byte(tt.json))
			assert.ErrorContains(t, err, tt.want)
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	t.Run("yaml", func(t *testing.T) {
		path := filepath.Join(dir, "calc.yaml")
		require.NoError(t, os.WriteFile(path, []byte("precision: 4\n"), 0o644))
		s, err := config.Load(path)
		require.NoError(t, err)
		require.NotNil(t, s.Precision)
		assert.Equal(t, 4, *s.Precision)
	})

	t.Run("yml", func(t *testing.T) {
		path := filepath.Join(dir, "calc.yml")
		require.NoError(t, os.WriteFile(path, []byte("real: true\n"), 0o644))
		s, err := config.Load(path)
		require.NoError(t, err)
		assert.True(t, s.Real)
	})

	t.Run("json", func(t *testing.T) {
		path := filepath.Join(dir, "calc.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"bits": 80}`), 0o644))
		s, err := config.Load(path)
		require.NoError(t, err)
		require.NotNil(t, s.Bits)
		assert.Equal(t, 80, *s.Bits)
	})

	t.Run("unsupported extension", func(t *testing.T) {
		path := filepath.Join(dir, "calc.toml")
		require.NoError(t, os.WriteFile(path, []byte("bits = 80"), 0o644))
		_, err := config.Load(path)
		assert.ErrorContains(t, err, "settings must be .yaml, .yml, or .json")
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := config.Load(filepath.Join(dir, "nope.yaml"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("invalid settings file", func(t *testing.T) {
		path := filepath.Join(dir, "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("bits: 0\n"), 0o644))
		_, err := config.Load(path)
		assert.ErrorContains(t, err, path)
	})
}
