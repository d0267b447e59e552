package mocks

import (
	"context"
	"hoteladmin/infras/otel"

	oteltrace "go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

type otelImpl struct{}

// NewScope implements otel.Otel.
func (o *otelImpl) NewScope(ctx context.Context, _, _ string) (context.Context, otel.Scope) {
	return ctx, NewScope()
}

// Provider implements otel.Otel.
func (o *otelImpl) Provider() oteltrace.TracerProvider {
	return noop.NewTracerProvider()
}

// Shutdown implements otel.Otel.
func (o *otelImpl) Shutdown(context.Context) error {
	return nil
}

func NewOtel() otel.Otel {
	return &otelImpl{}
}
