package render

import (
	"context"
	"testing"

	"github.com/matzehuels/sunburst/pkg/errors"
)

func TestToPDFMissingConverter(t *testing.T) {
	orig := lookPath
	t.Cleanup(func() { lookPath = orig })
	lookPath = func(string) (string, error) { return "", errors.New(errors.ErrCodeFileNotFound, "not found") }

	if Available() {
		t.Fatal("Available() = true, want false")
	}
	_, err := ToPDF(context.Background(), []byte("<svg/>"))
	if !errors.Is(err, errors.ErrCodeUnsupported) {
		t.Errorf("ToPDF() error = %v, want %v", err, errors.ErrCodeUnsupported)
	}
}

func TestToPNGInvalidScale(t *testing.T) {
	for _, scale := range []float64{0, -1} {
		_, err := ToPNG(context.Background(), []byte("<svg/>"), scale)
		if !errors.Is(err, errors.ErrCodeInvalidConfig) {
			t.Errorf("ToPNG(scale=%v) error = %v, want %v", scale, err, errors.ErrCodeInvalidConfig)
		}
	}
}

func TestToPNG(t *testing.T) {
	if !Available() {
		t.Skip("rsvg-convert not installed")
	}
	svg := []byte(`<svg xmlns="http://www.w3.org/2000/svg" width="10" height="10"><rect width="10" height="10"/></svg>`)
	png, err := ToPNG(context.Background(), svg, 1)
	if err != nil {
		t.Fatalf("ToPNG() error: %v", err)
	}
	if len(png) < 8 || string(png[1:4]) != "PNG" {
		t.Errorf("output is not a PNG")
	}
}
