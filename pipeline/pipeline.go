// Package pipeline converts PDF documents to plain text, falling back to OCR
// when the embedded text layer yields too little content.
package pipeline

import (
	"context"
	"fmt"
	"strings"

	"github.com/wudi/pdftext/extractor"
	"github.com/wudi/pdftext/observability"
	"github.com/wudi/pdftext/ocr"
	"github.com/wudi/pdftext/raster"
)

// FallbackWordThreshold is the whitespace-delimited word count below which
// direct extraction is considered insufficient and OCR runs. Fixed for
// behavior compatibility with existing consumers.
const FallbackWordThreshold = 50

// Options configures a Processor. Zero values select the registered default
// OCR engine, a nop logger, and a nop tracer.
type Options struct {
	Engine ocr.Engine
	Logger observability.Logger
	Tracer observability.Tracer
}

// Processor converts PDF bytes to plain text.
type Processor struct {
	engine ocr.Engine
	log    observability.Logger
	tracer observability.Tracer

	open      func(data []byte, opts ...extractor.Option) (*extractor.Extractor, error)
	rasterize func(ctx context.Context, data []byte, opts ...raster.Option) ([]raster.PageImage, error)
}

// New builds a Processor.
func New(opts Options) *Processor {
	p := &Processor{
		engine:    opts.Engine,
		log:       opts.Logger,
		tracer:    opts.Tracer,
		open:      extractor.Open,
		rasterize: raster.PageImages,
	}
	if p.engine == nil {
		p.engine = ocr.DefaultEngine()
	}
	if p.log == nil {
		p.log = observability.NopLogger{}
	}
	if p.tracer == nil {
		p.tracer = observability.NopTracer()
	}
	return p
}

// Process runs direct text extraction and, when the result is too thin, the
// OCR fallback. It never returns an error: every outcome is expressed as a
// Result. The reported page count always comes from the initial parse, even
// when OCR rendered a different number of images.
func (p *Processor) Process(ctx context.Context, data []byte) Result {
	ctx, span := p.tracer.StartSpan(ctx, "pdftext.process")
	defer span.Finish()

	doc, err := p.open(data, extractor.WithLogger(p.log))
	if err != nil {
		p.log.Error("parse pdf", observability.Error("err", err))
		span.SetError(err)
		return Failure(err.Error())
	}
	pageCount := doc.PageCount()
	span.SetTag("pages", pageCount)
	p.log.Info("parsed document", observability.Int("pages", pageCount))

	text := joinPages(doc.ExtractText())
	words := len(strings.Fields(text))
	if words >= FallbackWordThreshold {
		return Result{Success: true, Text: text, PageCount: pageCount}
	}

	p.log.Info("direct extraction too thin, trying OCR", observability.Int("words", words))
	ocrText, err := p.runOCR(ctx, data)
	switch {
	case err != nil:
		p.log.Error("ocr stage failed", observability.Error("err", err))
		span.SetError(err)
		if text == "" {
			return Failure(fmt.Sprintf("both text extraction and OCR failed: %v", err))
		}
		// Keep the thin direct-extraction text rather than discarding it.
	case ocrText != "":
		text = ocrText
	}
	return Result{Success: true, Text: text, PageCount: pageCount}
}

// runOCR rasterizes every page and recognizes each image. A failed page is
// logged and contributes empty text; only a rasterization failure aborts the
// stage.
func (p *Processor) runOCR(ctx context.Context, data []byte) (string, error) {
	ctx, span := p.tracer.StartSpan(ctx, "pdftext.ocr")
	defer span.Finish()
	span.SetTag("engine", p.engine.Name())

	images, err := p.rasterize(ctx, data)
	if err != nil {
		span.SetError(err)
		return "", fmt.Errorf("rasterize pages: %w", err)
	}
	parts := make([]string, 0, len(images))
	for _, img := range images {
		p.log.Info("ocr page", observability.Int("page", img.Page), observability.Int("total", len(images)))
		res, err := p.engine.Recognize(ctx, ocr.InputFromPageImage(img))
		if err != nil {
			p.log.Error("ocr page failed", observability.Int("page", img.Page), observability.Error("err", err))
			continue
		}
		parts = append(parts, res.PlainText)
	}
	return strings.TrimSpace(strings.Join(parts, "\n")), nil
}

func joinPages(pages []extractor.PageText) string {
	parts := make([]string, 0, len(pages))
	for _, pg := range pages {
		parts = append(parts, pg.Content)
	}
	return strings.TrimSpace(strings.Join(parts, "\n"))
}
