// Package tracing sets up OpenTelemetry tracing for the xbwd server.
package tracing

import (
	"io"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"gopkg.in/natefinch/lumberjack.v2"
)

// newExporter returns a file trace exporter.
func newExporter(w io.Writer) (trace.SpanExporter, error) {
	return stdouttrace.New(
		stdouttrace.WithWriter(w),
		// Use human-readable output.
		stdouttrace.WithPrettyPrint(),
	)
}

// newResource returns a resource describing this application.
func newResource(name, version string) (*resource.Resource, error) {
	return resource.Merge(
		resource.Default(),
		resource.NewSchemaless(
			semconv.ServiceName(name),
			semconv.ServiceVersion(version),
		),
	)
}

// NewTracerProvider initialises a tracer provider which writes spans to the
// given file, rotating it as it grows, and installs it as the global
// provider. w.Close() and tp.Shutdown() should be deferred by the caller.
func NewTracerProvider(
	file,
	name,
	version string,
) (*lumberjack.Logger, *trace.TracerProvider, error) {
	w := &lumberjack.Logger{
		Filename:   file,
		MaxBackups: 2,
	}
	exp, err := newExporter(w)
	if err != nil {
		return nil, nil, err
	}
	res, err := newResource(name, version)
	if err != nil {
		return nil, nil, err
	}
	tp := trace.NewTracerProvider(
		trace.WithBatcher(exp),
		trace.WithResource(res),
	)
	otel.SetTracerProvider(tp)
	return w, tp, nil
}
