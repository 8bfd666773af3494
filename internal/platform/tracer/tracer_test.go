package tracer_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace/noop"

	"domainkit/internal/platform/tracer"
)

func TestNoopTracer_Start(t *testing.T) {
	tr := tracer.NewNoop()
	ctx := context.Background()

	newCtx, span := tr.Start(ctx, tracer.SpanRecord,
		tracer.String(tracer.AttrSubjectKind, "customer"),
		tracer.Bool(tracer.AttrValid, true),
	)

	assert.Equal(t, ctx, newCtx)
	require.NotNil(t, span)

	span.SetAttributes(tracer.Int(tracer.AttrMessageCount, 3))
	span.AddEvent(tracer.EventValidationFailed)
	span.End(errors.New("boom"))
}

func TestOTelTracer_WithInjectedTracer(t *testing.T) {
	tr := tracer.NewOTel(tracer.WithOTelTracer(noop.NewTracerProvider().Tracer("test")))

	ctx, span := tr.Start(context.Background(), tracer.SpanBatch,
		tracer.String(tracer.AttrBatchFile, "customers.yaml"),
		tracer.Int(tracer.AttrBatchRecords, 2),
		tracer.Attribute{Key: "ignored", Value: struct{}{}},
	)
	require.NotNil(t, ctx)
	require.NotNil(t, span)

	span.SetAttributes(tracer.Bool(tracer.AttrValid, false))
	span.AddEvent(tracer.EventValidationFailed, tracer.Int(tracer.AttrMessageCount, 1))
	span.End(errors.New("invalid batch"))
}

func TestOTelTracer_DefaultsToGlobalProvider(t *testing.T) {
	tr := tracer.NewOTel()
	_, span := tr.Start(context.Background(), tracer.SpanRegisterCustomer)
	span.End(nil)
}

func TestHashUser(t *testing.T) {
	assert.Empty(t, tracer.HashUser(""))
	assert.Len(t, tracer.HashUser("marcelo.castelo"), 16)
	assert.Equal(t, tracer.HashUser("marcelo.castelo"), tracer.HashUser("marcelo.castelo"))
	assert.NotEqual(t, tracer.HashUser("marcelo.castelo"), tracer.HashUser("ana"))
}

func TestAttributeConstructors(t *testing.T) {
	assert.Equal(t, tracer.Attribute{Key: "k", Value: "v"}, tracer.String("k", "v"))
	assert.Equal(t, tracer.Attribute{Key: "k", Value: true}, tracer.Bool("k", true))
	assert.Equal(t, tracer.Attribute{Key: "k", Value: int64(7)}, tracer.Int("k", 7))
	assert.Equal(t, tracer.Attribute{Key: "latency", Value: int64(150)}, tracer.Duration("latency", 150*1e6))
}
