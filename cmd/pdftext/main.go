// Command pdftext converts a base64-encoded PDF into plain text, falling back
// to OCR when the embedded text layer is too thin. It is built to run as a
// subprocess: stdout carries exactly one JSON result object on every code
// path, and all diagnostics go to stderr.
//
// Usage: pdftext <base64-encoded-pdf>
package main

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/wudi/pdftext/observability"
	"github.com/wudi/pdftext/pipeline"

	_ "github.com/wudi/pdftext/ocr/tesseract" // register the default OCR engine
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	if len(args) != 1 {
		emit(stdout, stderr, pipeline.Failure("No input provided"))
		return 1
	}
	data, err := base64.StdEncoding.DecodeString(args[0])
	if err != nil {
		emit(stdout, stderr, pipeline.Failure(fmt.Sprintf("Processing failed: %v", err)))
		return 0
	}

	p := pipeline.New(pipeline.Options{Logger: observability.NewTextLogger(stderr)})
	emit(stdout, stderr, p.Process(context.Background(), data))
	return 0
}

// emit writes the result as a single JSON line. The encoder appends the
// trailing newline itself.
func emit(stdout, stderr io.Writer, res pipeline.Result) {
	if err := json.NewEncoder(stdout).Encode(res); err != nil {
		fmt.Fprintf(stderr, "pdftext: write result: %v\n", err)
	}
}
