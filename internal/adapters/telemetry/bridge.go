package telemetry

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/wafer/internal/core/ports"
)

// LogBridge implements sdktrace.SpanProcessor by logging every finished span
// with its duration.
type LogBridge struct {
	logger ports.Logger
}

// NewLogBridge returns a new LogBridge.
func NewLogBridge(logger ports.Logger) *LogBridge {
	return &LogBridge{
		logger: logger,
	}
}

// OnStart does nothing.
func (b *LogBridge) OnStart(_ context.Context, _ sdktrace.ReadWriteSpan) {}

// OnEnd logs the span name, duration and any recorded failure.
func (b *LogBridge) OnEnd(s sdktrace.ReadOnlySpan) {
	if b.logger == nil || !s.SpanContext().IsValid() {
		return
	}

	args := []any{"duration", s.EndTime().Sub(s.StartTime()).String()}
	for _, kv := range s.Attributes() {
		if kv.Key == attribute.Key("fingerprint") {
			args = append(args, "fingerprint", kv.Value.AsString())
		}
	}

	if s.Status().Code == codes.Error {
		b.logger.Warn("span "+s.Name()+" failed", append(args, "error", s.Status().Description)...)
		return
	}
	b.logger.Info("span "+s.Name()+" finished", args...)
}

// ForceFlush does nothing.
func (b *LogBridge) ForceFlush(_ context.Context) error {
	return nil
}

// Shutdown does nothing.
func (b *LogBridge) Shutdown(_ context.Context) error {
	return nil
}

// Install registers a global tracer provider that reports finished spans to
// logger. The returned function shuts the provider down.
func Install(logger ports.Logger) func(context.Context) error {
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSpanProcessor(NewLogBridge(logger)),
	)
	otel.SetTracerProvider(tp)
	return tp.Shutdown
}
