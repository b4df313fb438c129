// Package raster renders PDF pages to pixel images for OCR input.
package raster

import (
	"context"
	"fmt"

	"github.com/gen2brain/go-fitz"
)

// DefaultDPI matches the rendering default of the underlying MuPDF binding.
const DefaultDPI = 300

// PageImage is one rendered page, PNG encoded.
type PageImage struct {
	// Page is the zero-based page index within the source document.
	Page int
	// PNG holds the encoded image.
	PNG []byte
	// DPI is the resolution the page was rendered at.
	DPI int
}

type config struct {
	dpi float64
}

// Option adjusts rasterization settings.
type Option func(*config)

// WithDPI overrides the rendering resolution.
func WithDPI(dpi float64) Option {
	return func(c *config) {
		if dpi > 0 {
			c.dpi = dpi
		}
	}
}

// PageImages renders every page of the document to a PNG image in document
// order. A render failure aborts the whole operation; callers treat it as a
// stage-level error rather than skipping pages.
func PageImages(ctx context.Context, data []byte, opts ...Option) ([]PageImage, error) {
	cfg := config{dpi: DefaultDPI}
	for _, opt := range opts {
		opt(&cfg)
	}
	doc, err := fitz.NewFromMemory(data)
	if err != nil {
		return nil, fmt.Errorf("open document: %w", err)
	}
	defer doc.Close()

	total := doc.NumPage()
	images := make([]PageImage, 0, total)
	for i := 0; i < total; i++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		png, err := doc.ImagePNG(i, cfg.dpi)
		if err != nil {
			return nil, fmt.Errorf("render page %d: %w", i, err)
		}
		images = append(images, PageImage{Page: i, PNG: png, DPI: int(cfg.dpi)})
	}
	return images, nil
}
