package xmetrics

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type nilObserver struct{}

func (nilObserver) Start(context.Context, SpanOptions) (context.Context, Span) {
	return nil, nil
}

func TestStart_Fallbacks(t *testing.T) {
	t.Run("nil observer", func(t *testing.T) {
		//nolint:staticcheck // 验证 nil ctx 兜底
		ctx, span := Start(nil, nil, SpanOptions{})
		assert.NotNil(t, ctx)
		assert.IsType(t, NoopSpan{}, span)
	})

	t.Run("observer returns nils", func(t *testing.T) {
		parent := context.Background()
		ctx, span := Start(parent, nilObserver{}, SpanOptions{})
		assert.Equal(t, parent, ctx)
		assert.IsType(t, NoopSpan{}, span)
	})

	t.Run("noop observer", func(t *testing.T) {
		//nolint:staticcheck // 验证 nil ctx 兜底
		ctx, span := NoopObserver{}.Start(nil, SpanOptions{})
		assert.NotNil(t, ctx)
		span.End(Result{Err: errors.New("ignored")})
	})
}

func TestResolveStatus(t *testing.T) {
	assert.Equal(t, StatusOK, resolveStatus(Result{}))
	assert.Equal(t, StatusError, resolveStatus(Result{Err: errors.New("x")}))
	assert.Equal(t, StatusOK, resolveStatus(Result{Status: StatusOK, Err: errors.New("x")}))
}

func TestKind_String(t *testing.T) {
	tests := map[Kind]string{
		KindInternal: "Internal",
		KindClient:   "Client",
		KindProducer: "Producer",
		KindConsumer: "Consumer",
		Kind(42):     "Kind(42)",
	}
	for kind, want := range tests {
		assert.Equal(t, want, kind.String())
	}
}
