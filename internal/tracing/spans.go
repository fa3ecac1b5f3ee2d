package tracing

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Span names.
const (
	SpanSeed   = "zoo.seed"
	SpanRender = "zoo.render"
	SpanCare   = "zoo.care"
)

// Span attribute keys.
const (
	AttrAnimals    = "zoo.animals"
	AttrEmployees  = "zoo.employees"
	AttrSection    = "zoo.section"
	AttrFormat     = "zoo.format"
	AttrCapability = "zoo.capability"
	AttrSkipped    = "zoo.skipped"
)

// Event names.
const (
	EventUnknownKind = "kind.unknown"
	EventRosterRead  = "roster.read"
)

// Start opens a span named name on tracer. A nil tracer falls back to the
// no-op tracer held by ctx.
func Start(ctx context.Context, tracer trace.Tracer, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	if tracer == nil {
		tracer = trace.SpanFromContext(ctx).TracerProvider().Tracer("zoo")
	}
	return tracer.Start(ctx, name, trace.WithAttributes(attrs...))
}

// End records err on span, if any, and ends it.
func End(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}
