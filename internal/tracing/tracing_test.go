package tracing

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestSpans(t *testing.T) {
	exporter := tracetest.NewInMemoryExporter()
	require.NoError(t, InitWithExporter("cpu-scheduler", "test", exporter))

	_, span := StartSpan(context.Background(), "fcfs.schedule")
	span.WithAttributes(map[string]interface{}{"jobs": 2, "request.id": "abc", "ignored": 1.5})
	EndSpan(span, nil)

	_, failed := StartSpan(context.Background(), "fcfs.schedule")
	EndSpan(failed, errors.New("invalid input"))

	spans := exporter.GetSpans()
	require.Len(t, spans, 2)
	assert.Equal(t, "fcfs.schedule", spans[0].Name)
	assert.Equal(t, codes.Ok, spans[0].Status.Code)
	assert.Len(t, spans[0].Attributes, 2)
	assert.Equal(t, codes.Error, spans[1].Status.Code)
	assert.Equal(t, "invalid input", spans[1].Status.Description)
}

func TestEndSpan_Nil(t *testing.T) {
	assert.NotPanics(t, func() { EndSpan(nil, nil) })
	var span *Span
	assert.Nil(t, span.WithAttributes(map[string]interface{}{"k": "v"}))
}
