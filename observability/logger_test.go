package observability

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testHandler captures log records for testing.
type testHandler struct {
	buf   *bytes.Buffer
	level slog.Level
	attrs []slog.Attr
}

func newTestHandler() *testHandler {
	return &testHandler{
		buf:   &bytes.Buffer{},
		level: slog.LevelDebug,
	}
}

func (h *testHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level
}

func (h *testHandler) Handle(_ context.Context, r slog.Record) error {
	data := map[string]any{
		"level": r.Level.String(),
		"msg":   r.Message,
	}
	for _, attr := range h.attrs {
		data[attr.Key] = attr.Value.Any()
	}
	r.Attrs(func(a slog.Attr) bool {
		data[a.Key] = a.Value.Any()
		return true
	})
	return json.NewEncoder(h.buf).Encode(data)
}

func (h *testHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	newH := &testHandler{
		buf:   h.buf,
		level: h.level,
		attrs: make([]slog.Attr, len(h.attrs)+len(attrs)),
	}
	copy(newH.attrs, h.attrs)
	copy(newH.attrs[len(h.attrs):], attrs)
	return newH
}

func (h *testHandler) WithGroup(string) slog.Handler {
	return h
}

func (h *testHandler) getLastRecord() map[string]any {
	lines := bytes.Split(h.buf.Bytes(), []byte("\n"))
	for i := len(lines) - 1; i >= 0; i-- {
		if len(lines[i]) > 0 {
			var m map[string]any
			if err := json.Unmarshal(lines[i], &m); err == nil {
				return m
			}
		}
	}
	return nil
}

func TestEnrichLogger(t *testing.T) {
	t.Run("adds parse_id", func(t *testing.T) {
		h := newTestHandler()
		enriched := EnrichLogger(slog.New(h), "parse-123")
		enriched.Info("test message")

		record := h.getLastRecord()
		require.NotNil(t, record)
		assert.Equal(t, "parse-123", record["parse_id"])
		assert.Equal(t, "test message", record["msg"])
	})

	t.Run("nil logger returns nil", func(t *testing.T) {
		assert.Nil(t, EnrichLogger(nil, "parse-123"))
	})
}

func TestDiagnostic(t *testing.T) {
	t.Run("maps severity and tag", func(t *testing.T) {
		h := newTestHandler()
		Diagnostic(slog.New(h), slog.LevelWarn, "parser", "bracket not closed")

		record := h.getLastRecord()
		require.NotNil(t, record)
		assert.Equal(t, "WARN", record["level"])
		assert.Equal(t, "parser", record["tag"])
		assert.Equal(t, "bracket not closed", record["msg"])
	})

	t.Run("includes attributes", func(t *testing.T) {
		h := newTestHandler()
		Diagnostic(slog.New(h), slog.LevelInfo, "convert", "converted", slog.Int("items", 3))

		record := h.getLastRecord()
		require.NotNil(t, record)
		assert.Equal(t, "convert", record["tag"])
		assert.Equal(t, float64(3), record["items"])
	})

	t.Run("respects handler level", func(t *testing.T) {
		h := newTestHandler()
		h.level = slog.LevelInfo
		Diagnostic(slog.New(h), slog.LevelDebug, "parser", "hidden")
		assert.Nil(t, h.getLastRecord())
	})

	t.Run("nil logger does not panic", func(t *testing.T) {
		assert.NotPanics(t, func() {
			Diagnostic(nil, slog.LevelError, "parser", "msg")
		})
	})
}

func TestLogParseComplete(t *testing.T) {
	t.Run("logs result at DEBUG level", func(t *testing.T) {
		h := newTestHandler()
		LogParseComplete(slog.New(h), "1/3", "1/3", 1.5)

		record := h.getLastRecord()
		require.NotNil(t, record)
		assert.Equal(t, "DEBUG", record["level"])
		assert.Equal(t, "expression parsed", record["msg"])
		assert.Equal(t, "parse", record["tag"])
		assert.Equal(t, "1/3", record["expr"])
		assert.Equal(t, "1/3", record["result"])
		assert.Equal(t, 1.5, record["duration_ms"])
	})

	t.Run("nil logger does not panic", func(t *testing.T) {
		assert.NotPanics(t, func() {
			LogParseComplete(nil, "1", "1", 0)
		})
	})
}

func TestLogParseError(t *testing.T) {
	t.Run("logs error at INFO level", func(t *testing.T) {
		h := newTestHandler()
		LogParseError(slog.New(h), "(2", errors.New("bracket not closed"), 0.25)

		record := h.getLastRecord()
		require.NotNil(t, record)
		assert.Equal(t, "INFO", record["level"])
		assert.Equal(t, "expression failed", record["msg"])
		assert.Equal(t, "parse", record["tag"])
		assert.Equal(t, "(2", record["expr"])
		assert.Equal(t, "bracket not closed", record["error"])
		assert.Equal(t, 0.25, record["duration_ms"])
	})

	t.Run("nil logger does not panic", func(t *testing.T) {
		assert.NotPanics(t, func() {
			LogParseError(nil, "", errors.New("x"), 0)
		})
	})
}

func TestTimedOperation(t *testing.T) {
	done := TimedOperation()
	time.Sleep(5 * time.Millisecond)
	elapsed := done()
	assert.GreaterOrEqual(t, elapsed, 5*time.Millisecond)
}

func TestMilliseconds(t *testing.T) {
	assert.Equal(t, 1.5, Milliseconds(1500*time.Microsecond))
	assert.Equal(t, 0.0, Milliseconds(0))
}
