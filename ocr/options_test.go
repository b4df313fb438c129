package ocr

import (
	"context"
	"testing"
)

func TestTesseractOptions(t *testing.T) {
	in := Input{}
	WithTesseractPSM(6)(&in)
	if got := in.Metadata["tessedit_pageseg_mode"]; got != "6" {
		t.Fatalf("expected PSM to be set, got %q", got)
	}
	WithTesseractWhitelist("ABC")(&in)
	if got := in.Metadata["tessedit_char_whitelist"]; got != "ABC" {
		t.Fatalf("expected whitelist to be set, got %q", got)
	}
	WithTesseractBlacklist("xyz")(&in)
	if got := in.Metadata["tessedit_char_blacklist"]; got != "xyz" {
		t.Fatalf("expected blacklist to be set, got %q", got)
	}
}

func TestDefaultEngineRegistry(t *testing.T) {
	orig := DefaultEngine()
	defer SetDefaultEngine(orig)

	SetDefaultEngine(noopEngine{})
	if DefaultEngine().Name() != "noop" {
		t.Fatalf("unexpected default engine: %s", DefaultEngine().Name())
	}
	res, err := DefaultEngine().Recognize(context.Background(), Input{ID: "page-0"})
	if err != nil {
		t.Fatalf("noop recognize: %v", err)
	}
	if res.InputID != "page-0" || res.PlainText != "" {
		t.Fatalf("unexpected noop result: %+v", res)
	}
}
