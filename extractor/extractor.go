package extractor

import (
	"bytes"
	"fmt"

	"github.com/ledongthuc/pdf"

	"github.com/wudi/pdftext/observability"
)

// Extractor pulls the embedded text layer out of a parsed PDF without
// rendering pixels.
type Extractor struct {
	reader *pdf.Reader
	log    observability.Logger
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithLogger routes per-page diagnostics to log.
func WithLogger(log observability.Logger) Option {
	return func(e *Extractor) {
		if log != nil {
			e.log = log
		}
	}
}

// Open parses data as a PDF. A parse failure here is stage-level; the caller
// reports the parser's message and no Extractor is returned. The pdf library
// panics on some malformed inputs, so parsing runs under recover.
func Open(data []byte, opts ...Option) (ex *Extractor, err error) {
	defer func() {
		if r := recover(); r != nil {
			ex, err = nil, fmt.Errorf("parse pdf: %v", r)
		}
	}()
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, err
	}
	e := &Extractor{reader: reader, log: observability.NopLogger{}}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// PageCount reports the page count recorded by the parser. Callers hold on
// to this value; it is never recomputed by later stages.
func (e *Extractor) PageCount() int { return e.reader.NumPage() }
