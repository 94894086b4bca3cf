package styles

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/matzehuels/sunburst/pkg/errors"
	"github.com/matzehuels/sunburst/pkg/tree"
)

const (
	// DefaultBaseLightness is the lightness of the innermost ring.
	DefaultBaseLightness = 0.25
	// DefaultLightnessStep is added per ring going outward.
	DefaultLightnessStep = 0.05
	// Saturation is fixed for every wedge.
	Saturation = 1.0
)

// Palette controls wedge colors. Each top-level branch gets one hue, and
// lightness grows with depth so nested rings read as tints of their branch.
type Palette struct {
	// Hues are fractions of the color wheel in [0, 1), assigned to branches
	// in order and repeated when there are more branches than hues. When
	// empty, hues are spread evenly around the wheel.
	Hues []float64 `toml:"hues,omitempty" yaml:"hues,omitempty" json:"hues,omitempty"`

	BaseLightness float64 `toml:"base_lightness" yaml:"base_lightness" json:"base_lightness"`
	LightnessStep float64 `toml:"lightness_step" yaml:"lightness_step" json:"lightness_step"`
}

// DefaultPalette returns evenly spread hues with the stock lightness ramp.
func DefaultPalette() Palette {
	return Palette{BaseLightness: DefaultBaseLightness, LightnessStep: DefaultLightnessStep}
}

// Validate checks that hues and lightness values are usable.
func (p Palette) Validate() error {
	for i, h := range p.Hues {
		if !(h >= 0 && h < 1) {
			return errors.New(errors.ErrCodeInvalidConfig, "hue %d must be in [0, 1), got %g", i, h)
		}
	}
	if !(p.BaseLightness >= 0 && p.BaseLightness <= 1) {
		return errors.New(errors.ErrCodeInvalidConfig, "base lightness must be in [0, 1], got %g", p.BaseLightness)
	}
	if math.IsNaN(p.LightnessStep) || math.IsInf(p.LightnessStep, 0) {
		return errors.New(errors.ErrCodeInvalidConfig, "lightness step must be finite, got %g", p.LightnessStep)
	}
	return nil
}

// Hue returns the hue for branch i of n.
func (p Palette) Hue(i, n int) float64 {
	if len(p.Hues) > 0 {
		return p.Hues[i%len(p.Hues)]
	}
	if n <= 0 {
		return 0
	}
	return math.Mod(float64(i+1)/float64(n), 1)
}

// Lightness returns the lightness for a node at depth (1 for the first
// ring), clamped to [0, 1].
func (p Palette) Lightness(depth int) float64 {
	l := p.BaseLightness + p.LightnessStep*float64(depth-1)
	return max(0, min(1, l))
}

// HSLToRGB converts hue, saturation and lightness, each in [0, 1], to 8-bit
// RGB. Channels are truncated, so 0.5 maps to 127.
func HSLToRGB(h, s, l float64) tree.RGB {
	c := colorful.Hsl(math.Mod(h, 1)*360, s, l).Clamped()
	return tree.RGB{R: channel(c.R), G: channel(c.G), B: channel(c.B)}
}

func channel(v float64) uint8 {
	return uint8(math.Floor(255 * v))
}

// Assign colors every node below root. All nodes in a branch share the
// branch hue; lightness is chosen by depth. The root keeps the zero color.
func Assign(root *tree.Node, p Palette) error {
	if err := p.Validate(); err != nil {
		return err
	}
	branches := root.Children()
	for i, b := range branches {
		hue := p.Hue(i, len(branches))
		tree.Walk(b, func(n *tree.Node) bool {
			n.Color = HSLToRGB(hue, Saturation, p.Lightness(n.Depth))
			return true
		})
	}
	return nil
}
