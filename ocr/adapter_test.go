package ocr

import (
	"reflect"
	"testing"

	"github.com/wudi/pdftext/raster"
)

func TestInputFromPageImage(t *testing.T) {
	page := raster.PageImage{
		Page: 2,
		PNG:  []byte{0x89, 'P', 'N', 'G'},
		DPI:  150,
	}
	region := Region{X: 0, Y: 0, Width: 1, Height: 1}
	meta := map[string]string{"tessedit_pageseg_mode": "6"}

	in := InputFromPageImage(
		page,
		WithLanguages("eng", "spa"),
		WithRegion(region),
		WithMetadata(meta),
	)
	if in.Format != ImageFormatPNG {
		t.Fatalf("unexpected format: %v", in.Format)
	}
	if in.PageIndex != 2 {
		t.Fatalf("unexpected page index: %d", in.PageIndex)
	}
	if got := in.ID; got != "page-2" {
		t.Fatalf("unexpected id: %s", got)
	}
	if len(in.Image) == 0 {
		t.Fatalf("expected image data")
	}
	if in.DPI != 150 {
		t.Fatalf("expected render dpi to carry through, got %d", in.DPI)
	}
	if !reflect.DeepEqual(in.Languages, []string{"eng", "spa"}) {
		t.Fatalf("unexpected languages: %+v", in.Languages)
	}
	if in.Region == nil || *in.Region != region {
		t.Fatalf("unexpected region: %#v", in.Region)
	}
	meta["tessedit_pageseg_mode"] = "7"
	if in.Metadata["tessedit_pageseg_mode"] != "6" {
		t.Fatalf("metadata was not copied: %+v", in.Metadata)
	}
}

func TestWithDPIOverridesRenderDPI(t *testing.T) {
	in := InputFromPageImage(raster.PageImage{Page: 0, DPI: 150}, WithDPI(300))
	if in.DPI != 300 {
		t.Fatalf("unexpected dpi: %d", in.DPI)
	}
}

func TestWithRegionClearsEmpty(t *testing.T) {
	in := Input{Region: &Region{X: 1, Y: 1, Width: 2, Height: 2}}
	WithRegion(Region{})(&in)
	if in.Region != nil {
		t.Fatalf("expected nil region for empty input, got %#v", in.Region)
	}
}
