package logger

import (
	"context"
	"testing"

	"go.uber.org/zap"
)

func TestFromContext_RoundTrip(t *testing.T) {
	l := zap.NewNop().Named("request")
	ctx := ContextWithLogger(context.Background(), l)

	if got := FromContext(ctx, nil); got != l {
		t.Error("FromContext did not return the stored logger")
	}
}

func TestFromContext_Fallback(t *testing.T) {
	def := zap.NewNop().Named("server")

	if got := FromContext(context.Background(), def); got != def {
		t.Error("FromContext did not fall back to the default logger")
	}
	if got := FromContext(context.Background(), nil); got == nil {
		t.Error("FromContext returned nil for a bare context")
	}
}
