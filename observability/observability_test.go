package observability

import (
	"context"
	"strings"
	"testing"
)

func TestNopTracer(t *testing.T) {
	tracer := NopTracer()
	ctx := context.Background()
	ctx2, span := tracer.StartSpan(ctx, "test")
	if ctx2 != ctx {
		t.Fatalf("nop tracer should return same context")
	}
	span.SetTag("key", "value")
	span.SetError(nil)
	span.Finish()
}

func TestTextLoggerLine(t *testing.T) {
	var buf strings.Builder
	log := NewTextLogger(&buf)
	log.Info("parsed document", Int("pages", 3))
	got := buf.String()
	if got != "INFO parsed document pages=3\n" {
		t.Fatalf("unexpected line: %q", got)
	}
}

func TestTextLoggerWith(t *testing.T) {
	var buf strings.Builder
	log := NewTextLogger(&buf).With(String("stage", "ocr"))
	log.Error("recognize page", Int("page", 1))
	got := buf.String()
	if !strings.HasPrefix(got, "ERROR recognize page stage=ocr page=1") {
		t.Fatalf("unexpected line: %q", got)
	}
}
