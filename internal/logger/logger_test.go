package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInit(t *testing.T) {
	originalLog := log
	defer func() { log = originalLog }()

	t.Run("Production", func(t *testing.T) {
		Init("production")
		assert.NotNil(t, log)
	})

	t.Run("Development", func(t *testing.T) {
		Init("development")
		assert.NotNil(t, log)
	})
}

func TestL_LazyInit(t *testing.T) {
	originalLog := log
	defer func() { log = originalLog }()

	log = nil
	l := L()
	assert.NotNil(t, l)
	assert.NotNil(t, log)
}

func TestContextFunctions(t *testing.T) {
	ctx := context.Background()
	reqID := "test-request-id-123"

	t.Run("WithRequestID round trip", func(t *testing.T) {
		ctx := WithRequestID(ctx, reqID)
		assert.Equal(t, reqID, RequestIDFrom(ctx))
	})

	t.Run("RequestIDFrom without value", func(t *testing.T) {
		assert.Empty(t, RequestIDFrom(ctx))
	})

	t.Run("FromCtx", func(t *testing.T) {
		assert.NotNil(t, FromCtx(ctx))
		assert.NotNil(t, FromCtx(WithRequestID(ctx, reqID)))
	})
}
