package observability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.opentelemetry.io/otel/attribute"
)

func TestNoopMetrics(t *testing.T) {
	m := NoopMetrics{}
	assert.NotPanics(t, func() {
		m.RecordParse(context.Background(), time.Millisecond, "")
		m.RecordParse(context.Background(), 0, "parser")
		m.RecordResult(context.Background(), "exact")
	})
}

func TestNoopSpanManager(t *testing.T) {
	m := NoopSpanManager{}
	ctx := context.Background()

	t.Run("returns context unchanged", func(t *testing.T) {
		got, span := m.StartParseSpan(ctx, "id", "1")
		assert.Equal(t, ctx, got)
		assert.NotNil(t, span)
		assert.False(t, span.IsRecording())
	})

	t.Run("does not panic", func(t *testing.T) {
		assert.NotPanics(t, func() {
			_, span := m.StartParseSpan(ctx, "id", "1")
			m.AddSpanEvent(ctx, "evaluate", attribute.String("k", "v"))
			m.EndSpanWithError(span, errors.New("x"))
			m.EndSpanWithError(nil, nil)
		})
	})
}
