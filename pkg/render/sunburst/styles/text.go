package styles

import (
	"github.com/matzehuels/sunburst/pkg/render/sunburst/arc"
)

const fontCharWidth = 0.55

// LabelWidth estimates the rendered width of label at fontSize.
func LabelWidth(label string, fontSize float64) float64 {
	return float64(len([]rune(label))) * fontSize * fontCharWidth
}

// FitsLabel reports whether label fits across a wedge of angular width span,
// measured along the chord at radius r.
func FitsLabel(label string, fontSize, r, span float64) bool {
	return LabelWidth(label, fontSize) <= arc.Chord(r, span)
}
