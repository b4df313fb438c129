package main

import (
	"encoding/base64"
	"encoding/json"
	"strings"
	"testing"

	"github.com/wudi/pdftext/internal/pdftest"
)

type resultJSON struct {
	Success   bool    `json:"success"`
	Text      *string `json:"text"`
	PageCount *int    `json:"pageCount"`
	Error     *string `json:"error"`
}

func runAndDecode(t *testing.T, args []string) (resultJSON, string, int) {
	t.Helper()
	var stdout, stderr strings.Builder
	code := run(args, &stdout, &stderr)
	out := stdout.String()
	if strings.Count(out, "\n") != 1 || !strings.HasSuffix(out, "\n") {
		t.Fatalf("stdout must be exactly one line, got %q", out)
	}
	var res resultJSON
	if err := json.Unmarshal([]byte(out), &res); err != nil {
		t.Fatalf("stdout is not JSON: %v (%q)", err, out)
	}
	return res, out, code
}

func TestRunNoArguments(t *testing.T) {
	res, out, code := runAndDecode(t, nil)
	if code != 1 {
		t.Fatalf("exit code = %d, want 1", code)
	}
	if out != `{"success":false,"error":"No input provided"}`+"\n" {
		t.Fatalf("unexpected output: %q", out)
	}
	if res.Success || res.Text != nil || res.PageCount != nil {
		t.Fatalf("unexpected fields in failure result: %+v", res)
	}
}

func TestRunExtraArguments(t *testing.T) {
	_, out, code := runAndDecode(t, []string{"a", "b"})
	if code != 1 {
		t.Fatalf("exit code = %d, want 1", code)
	}
	if out != `{"success":false,"error":"No input provided"}`+"\n" {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestRunInvalidBase64(t *testing.T) {
	res, _, code := runAndDecode(t, []string{"%%% not base64 %%%"})
	if code != 0 {
		t.Fatalf("exit code = %d, want 0", code)
	}
	if res.Success {
		t.Fatalf("expected failure result")
	}
	if res.Error == nil || !strings.HasPrefix(*res.Error, "Processing failed: ") {
		t.Fatalf("unexpected error field: %+v", res.Error)
	}
}

func TestRunUnparseablePDF(t *testing.T) {
	arg := base64.StdEncoding.EncodeToString([]byte("not a pdf"))
	res, _, code := runAndDecode(t, []string{arg})
	if code != 0 {
		t.Fatalf("logical failures still exit 0, got %d", code)
	}
	if res.Success {
		t.Fatalf("expected failure result")
	}
	if res.Error == nil || *res.Error == "" {
		t.Fatalf("expected a non-empty error")
	}
	if res.PageCount != nil {
		t.Fatalf("pageCount must be absent on failure")
	}
}

func TestRunDirectExtraction(t *testing.T) {
	arg := base64.StdEncoding.EncodeToString(pdftest.Doc(pdftest.WordPage(60)))
	res, _, code := runAndDecode(t, []string{arg})
	if code != 0 {
		t.Fatalf("exit code = %d, want 0", code)
	}
	if !res.Success {
		t.Fatalf("expected success: %+v", res)
	}
	if res.Text == nil || !strings.Contains(*res.Text, "word59") {
		t.Fatalf("unexpected text field: %+v", res.Text)
	}
	if res.PageCount == nil || *res.PageCount != 1 {
		t.Fatalf("unexpected pageCount: %+v", res.PageCount)
	}
}
