package styles

import (
	"math"
	"testing"

	"github.com/matzehuels/sunburst/pkg/errors"
	"github.com/matzehuels/sunburst/pkg/tree"
)

func TestHSLToRGB(t *testing.T) {
	tests := []struct {
		name    string
		h, s, l float64
		want    tree.RGB
	}{
		{"dark red", 0, 1, 0.25, tree.RGB{R: 127, G: 0, B: 0}},
		{"green", 1.0 / 3, 1, 0.5, tree.RGB{R: 0, G: 255, B: 0}},
		{"black", 0.7, 1, 0, tree.RGB{R: 0, G: 0, B: 0}},
		{"white", 0.2, 1, 1, tree.RGB{R: 255, G: 255, B: 255}},
		{"gray", 0.5, 0, 0.5, tree.RGB{R: 127, G: 127, B: 127}},
		{"hue wraps", 1, 1, 0.25, tree.RGB{R: 127, G: 0, B: 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HSLToRGB(tt.h, tt.s, tt.l); got != tt.want {
				t.Errorf("HSLToRGB(%v, %v, %v) = %v, want %v", tt.h, tt.s, tt.l, got, tt.want)
			}
		})
	}
}

func TestPaletteHue(t *testing.T) {
	p := DefaultPalette()
	want := []float64{0.25, 0.5, 0.75, 0}
	for i, w := range want {
		if got := p.Hue(i, 4); math.Abs(got-w) > 1e-12 {
			t.Errorf("Hue(%d, 4) = %v, want %v", i, got, w)
		}
	}

	p.Hues = []float64{0.1, 0.6}
	for i, w := range []float64{0.1, 0.6, 0.1} {
		if got := p.Hue(i, 3); got != w {
			t.Errorf("Hue(%d, 3) with palette = %v, want %v", i, got, w)
		}
	}
}

func TestPaletteLightness(t *testing.T) {
	p := DefaultPalette()
	if got := p.Lightness(1); got != 0.25 {
		t.Errorf("Lightness(1) = %v, want 0.25", got)
	}
	if got := p.Lightness(3); math.Abs(got-0.35) > 1e-12 {
		t.Errorf("Lightness(3) = %v, want 0.35", got)
	}
	if got := p.Lightness(100); got != 1 {
		t.Errorf("Lightness(100) = %v, want clamped 1", got)
	}
	p.LightnessStep = -0.5
	if got := p.Lightness(3); got != 0 {
		t.Errorf("Lightness(3) with negative step = %v, want clamped 0", got)
	}
}

func TestPaletteValidate(t *testing.T) {
	tests := []struct {
		name string
		p    Palette
		ok   bool
	}{
		{"default", DefaultPalette(), true},
		{"custom hues", Palette{Hues: []float64{0, 0.5, 0.99}, BaseLightness: 0.3}, true},
		{"hue one", Palette{Hues: []float64{1}, BaseLightness: 0.3}, false},
		{"negative hue", Palette{Hues: []float64{-0.1}, BaseLightness: 0.3}, false},
		{"hue too large", Palette{Hues: []float64{1.5}, BaseLightness: 0.3}, false},
		{"hue nan", Palette{Hues: []float64{math.NaN()}, BaseLightness: 0.3}, false},
		{"lightness negative", Palette{BaseLightness: -0.1}, false},
		{"step inf", Palette{BaseLightness: 0.2, LightnessStep: math.Inf(1)}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.p.Validate()
			if tt.ok && err != nil {
				t.Errorf("Validate() error: %v", err)
			}
			if !tt.ok && !errors.Is(err, errors.ErrCodeInvalidConfig) {
				t.Errorf("Validate() error = %v, want %v", err, errors.ErrCodeInvalidConfig)
			}
		})
	}
}

func TestAssign(t *testing.T) {
	root, err := tree.Build([]tree.Row{
		{Line: 1, Cells: []string{"A", "A1", "1"}},
		{Line: 2, Cells: []string{"B", "", "1"}},
	})
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	if err := Assign(root, Palette{Hues: []float64{0, 1.0 / 3}, BaseLightness: 0.25, LightnessStep: 0.25}); err != nil {
		t.Fatalf("Assign() error: %v", err)
	}

	a, _ := root.Child("A")
	a1, _ := a.Child("A1")
	b, _ := root.Child("B")

	if want := (tree.RGB{R: 127, G: 0, B: 0}); a.Color != want {
		t.Errorf("A color = %v, want %v", a.Color, want)
	}
	if want := (tree.RGB{R: 255, G: 0, B: 0}); a1.Color != want {
		t.Errorf("A1 color = %v, want %v", a1.Color, want)
	}
	if want := (tree.RGB{R: 0, G: 127, B: 0}); b.Color != want {
		t.Errorf("B color = %v, want %v", b.Color, want)
	}
	if root.Color != (tree.RGB{}) {
		t.Errorf("root color = %v, want zero", root.Color)
	}
}

func TestAssignInvalidPalette(t *testing.T) {
	root := tree.NewRoot()
	err := Assign(root, Palette{BaseLightness: 2})
	if !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("Assign() error = %v, want %v", err, errors.ErrCodeInvalidConfig)
	}
}
