package telemetry

import (
	"context"
	"testing"

	"go.opentelemetry.io/otel/attribute"
)

func TestResourceAttributesIncludeSession(t *testing.T) {
	attrs := resourceAttributes(Options{SessionID: "abc", Seed: 7})

	found := map[attribute.Key]attribute.Value{}
	for _, kv := range attrs {
		found[kv.Key] = kv.Value
	}
	if got := found["service.name"].AsString(); got != serviceName {
		t.Errorf("service.name = %q, want %q", got, serviceName)
	}
	if got := found["session.id"].AsString(); got != "abc" {
		t.Errorf("session.id = %q, want %q", got, "abc")
	}
	if got := found["valdmir.seed"].AsInt64(); got != 7 {
		t.Errorf("valdmir.seed = %d, want 7", got)
	}
}

func TestResourceAttributesOmitEmptySession(t *testing.T) {
	for _, kv := range resourceAttributes(Options{}) {
		if kv.Key == "session.id" {
			t.Error("session.id should be omitted when empty")
		}
	}
}

func TestTracersStartSpans(t *testing.T) {
	ctx := context.Background()
	_, span := Tracer("test").Start(ctx, "noop")
	span.End()
	_, span = NoopTracer().Start(ctx, "noop")
	if span.SpanContext().IsValid() {
		t.Error("noop tracer produced a valid span context")
	}
	span.End()
}
