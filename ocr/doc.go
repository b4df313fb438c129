package ocr

// Package ocr defines the abstraction for plugging OCR engines (Tesseract by
// default) into the extraction pipeline. The interface is intentionally small
// and transport-agnostic so engines can be backed by native libraries or
// remote APIs without leaking provider-specific concerns into callers.
