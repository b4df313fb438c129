package ocr

import (
	"fmt"

	"github.com/wudi/pdftext/raster"
)

// InputOption mutates an OCR input generated from a rendered page.
type InputOption func(*Input)

// WithLanguages sets language hints on the OCR input.
func WithLanguages(langs ...string) InputOption {
	return func(in *Input) { in.Languages = append([]string(nil), langs...) }
}

// WithRegion sets the recognition region on the OCR input.
func WithRegion(region Region) InputOption {
	return func(in *Input) {
		if region.IsEmpty() {
			in.Region = nil
			return
		}
		in.Region = &region
	}
}

// WithDPI overrides the DPI value on the OCR input.
func WithDPI(dpi int) InputOption {
	return func(in *Input) { in.DPI = dpi }
}

// WithMetadata sets provider-specific metadata for the input.
func WithMetadata(metadata map[string]string) InputOption {
	return func(in *Input) {
		if len(metadata) == 0 {
			in.Metadata = nil
			return
		}
		in.Metadata = make(map[string]string, len(metadata))
		for k, v := range metadata {
			in.Metadata[k] = v
		}
	}
}

// InputFromPageImage converts a rendered page into an OCR input. The
// generated ID is stable for the page index to simplify correlation with
// downstream results, and the render DPI carries through unless overridden.
func InputFromPageImage(img raster.PageImage, opts ...InputOption) Input {
	in := Input{
		ID:        fmt.Sprintf("page-%d", img.Page),
		Image:     img.PNG,
		Format:    ImageFormatPNG,
		PageIndex: img.Page,
		DPI:       img.DPI,
	}
	for _, opt := range opts {
		opt(&in)
	}
	return in
}
