package kafkax

import (
	"context"
	"testing"

	"github.com/segmentio/kafka-go"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

func TestTraceHeadersRoundTrip(t *testing.T) {
	prev := otel.GetTextMapPropagator()
	otel.SetTextMapPropagator(propagation.TraceContext{})
	defer otel.SetTextMapPropagator(prev)

	sc := trace.NewSpanContext(trace.SpanContextConfig{
		TraceID:    trace.TraceID{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, 0x09, 0x0a, 0x0b, 0x0c, 0x0d, 0x0e, 0x0f, 0x10},
		SpanID:     trace.SpanID{0x11, 0x12, 0x13, 0x14, 0x15, 0x16, 0x17, 0x18},
		TraceFlags: trace.FlagsSampled,
	})
	ctx := trace.ContextWithSpanContext(context.Background(), sc)

	headers := InjectTraceHeaders(ctx, []kafka.Header{{Key: "event_id", Value: []byte("e1")}})
	if HeaderValue(headers, "traceparent") == "" {
		t.Fatalf("expected traceparent header, got %v", headers)
	}
	if HeaderValue(headers, "event_id") != "e1" {
		t.Fatalf("existing headers must be preserved")
	}

	got := trace.SpanContextFromContext(ExtractTraceContext(context.Background(), kafka.Message{Headers: headers}))
	if got.TraceID() != sc.TraceID() {
		t.Fatalf("trace id = %s, want %s", got.TraceID(), sc.TraceID())
	}
}

func TestInjectOverwritesStaleTraceparent(t *testing.T) {
	prev := otel.GetTextMapPropagator()
	otel.SetTextMapPropagator(propagation.TraceContext{})
	defer otel.SetTextMapPropagator(prev)

	sc := trace.NewSpanContext(trace.SpanContextConfig{
		TraceID:    trace.TraceID{0xaa, 0xbb, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14},
		SpanID:     trace.SpanID{1, 2, 3, 4, 5, 6, 7, 8},
		TraceFlags: trace.FlagsSampled,
	})
	ctx := trace.ContextWithSpanContext(context.Background(), sc)

	headers := InjectTraceHeaders(ctx, []kafka.Header{{Key: "traceparent", Value: []byte("stale")}})
	count := 0
	for _, h := range headers {
		if h.Key == "traceparent" {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("want exactly one traceparent header, got %d", count)
	}
	if HeaderValue(headers, "traceparent") == "stale" {
		t.Fatalf("stale traceparent was not overwritten")
	}
}

func TestExtractEventMetaFallbacks(t *testing.T) {
	withHeaders := kafka.Message{
		Topic: "booking.appointment.created.v1",
		Key:   []byte("appt-1"),
		Headers: []kafka.Header{
			{Key: "event_id", Value: []byte("e-42")},
			{Key: "event_type", Value: []byte("booking.appointment.cancelled.v1")},
		},
	}
	meta := ExtractEventMeta(withHeaders)
	if meta.EventID != "e-42" || meta.EventType != "booking.appointment.cancelled.v1" {
		t.Fatalf("unexpected meta from headers: %+v", meta)
	}

	bare := kafka.Message{Topic: "booking.appointment.created.v1", Key: []byte("appt-1")}
	meta = ExtractEventMeta(bare)
	if meta.EventID != "appt-1" {
		t.Fatalf("event id fallback = %q, want message key", meta.EventID)
	}
	if meta.EventType != "booking.appointment.created.v1" {
		t.Fatalf("event type fallback = %q, want topic", meta.EventType)
	}
}

func TestSplitBrokers(t *testing.T) {
	got := SplitBrokers(" kafka-1:9092, ,kafka-2:9092 ")
	if len(got) != 2 || got[0] != "kafka-1:9092" || got[1] != "kafka-2:9092" {
		t.Fatalf("SplitBrokers = %v", got)
	}
	if got := SplitBrokers(""); got != nil {
		t.Fatalf("empty input should yield nil, got %v", got)
	}
}
