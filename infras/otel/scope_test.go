package otel_test

import (
	"context"
	"errors"
	"hoteladmin/infras/otel"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestScope_RecordsErrorsAndAttributes(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	provider := trace.NewTracerProvider(trace.WithSpanProcessor(recorder))

	_, span := provider.Tracer("client").Start(context.Background(), "client.List")
	scope := otel.NewScope(span)

	scope.SetAttributes(map[string]any{
		"resource":  "hotel",
		"records":   2,
		"rating":    4.8,
		"confirmed": true,
	})
	scope.AddEvent("list fetched")
	scope.TraceIfError(nil)
	scope.TraceIfError(errors.New("backend down"))
	scope.End()

	spans := recorder.Ended()
	require.Len(t, spans, 1)

	assert.Equal(t, codes.Error, spans[0].Status().Code)
	assert.Equal(t, "backend down", spans[0].Status().Description)
	assert.Len(t, spans[0].Attributes(), 4)
	assert.Len(t, spans[0].Events(), 2) // the event plus the recorded error
}
