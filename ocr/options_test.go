package ocr

import (
	"image"
	"image/color"
	"reflect"
	"testing"
)

func TestInputFromImage(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.White)
	meta := map[string]string{"tessedit_pageseg_mode": "6"}

	in, err := InputFromImage(
		img,
		WithID("paste-1"),
		WithLanguages("chi_sim", "eng"),
		WithDPI(300),
		WithMetadata(meta),
	)
	if err != nil {
		t.Fatalf("InputFromImage() error = %v", err)
	}
	if in.Format != ImageFormatPNG {
		t.Fatalf("unexpected format: %v", in.Format)
	}
	if in.ID != "paste-1" {
		t.Fatalf("unexpected id: %s", in.ID)
	}
	if len(in.Image) == 0 {
		t.Fatalf("expected encoded image data")
	}
	if !reflect.DeepEqual(in.Languages, []string{"chi_sim", "eng"}) {
		t.Fatalf("unexpected languages: %+v", in.Languages)
	}
	if in.DPI != 300 {
		t.Fatalf("unexpected dpi: %d", in.DPI)
	}
	meta["tessedit_pageseg_mode"] = "7"
	if in.Metadata["tessedit_pageseg_mode"] != "6" {
		t.Fatalf("metadata was not copied: %+v", in.Metadata)
	}
}

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
}

func TestWithMetadataClearsEmpty(t *testing.T) {
	in := Input{Metadata: map[string]string{"k": "v"}}
	WithMetadata(nil)(&in)
	if in.Metadata != nil {
		t.Fatalf("expected nil metadata, got %+v", in.Metadata)
	}
}
