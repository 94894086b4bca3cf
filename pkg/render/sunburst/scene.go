package sunburst

import (
	"math"

	"github.com/google/uuid"

	"github.com/matzehuels/sunburst/pkg/errors"
	"github.com/matzehuels/sunburst/pkg/render/sunburst/arc"
	"github.com/matzehuels/sunburst/pkg/render/sunburst/styles"
	"github.com/matzehuels/sunburst/pkg/tree"
)

const (
	DefaultWidth       = 1024
	DefaultHeight      = 768
	DefaultStroke      = "black"
	DefaultStrokeWidth = 1.0
	DefaultFontSize    = 12.0
	DefaultFontFamily  = "Helvetica"
	DefaultFontColor   = "black"
	DefaultBackground  = "white"
)

// Font describes label text.
type Font struct {
	Family string  `toml:"family" yaml:"family" json:"family"`
	Size   float64 `toml:"size" yaml:"size" json:"size"`
	Color  string  `toml:"color" yaml:"color" json:"color"`
}

// Scene holds canvas and drawing settings.
type Scene struct {
	Width   int     `toml:"width" yaml:"width" json:"width"`
	Height  int     `toml:"height" yaml:"height" json:"height"`
	CenterX float64 `toml:"center_x" yaml:"center_x" json:"center_x"`
	CenterY float64 `toml:"center_y" yaml:"center_y" json:"center_y"`

	Background  string  `toml:"background" yaml:"background" json:"background"` // "none" or "" skips the rectangle
	Stroke      string  `toml:"stroke" yaml:"stroke" json:"stroke"`
	StrokeWidth float64 `toml:"stroke_width" yaml:"stroke_width" json:"stroke_width"`
	Font        Font    `toml:"font" yaml:"font" json:"font"`

	// HideNarrowLabels drops labels wider than their wedge's chord.
	HideNarrowLabels bool `toml:"hide_narrow_labels" yaml:"hide_narrow_labels" json:"hide_narrow_labels"`
}

// DefaultScene returns a 1024x768 canvas centered on the chart.
func DefaultScene() Scene {
	return Scene{
		Width:       DefaultWidth,
		Height:      DefaultHeight,
		CenterX:     DefaultWidth / 2,
		CenterY:     DefaultHeight / 2,
		Background:  DefaultBackground,
		Stroke:      DefaultStroke,
		StrokeWidth: DefaultStrokeWidth,
		Font: Font{
			Family: DefaultFontFamily,
			Size:   DefaultFontSize,
			Color:  DefaultFontColor,
		},
	}
}

// Center returns the chart center.
func (s Scene) Center() arc.Point {
	return arc.Point{X: s.CenterX, Y: s.CenterY}
}

// Validate checks canvas dimensions, colors and font settings.
func (s Scene) Validate() error {
	if s.Width <= 0 || s.Height <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "canvas size must be positive, got %dx%d", s.Width, s.Height)
	}
	if !finite(s.CenterX) || !finite(s.CenterY) {
		return errors.New(errors.ErrCodeInvalidConfig, "center must be finite, got (%g, %g)", s.CenterX, s.CenterY)
	}
	if !(s.StrokeWidth >= 0) || math.IsInf(s.StrokeWidth, 0) {
		return errors.New(errors.ErrCodeInvalidConfig, "stroke width must be non-negative, got %g", s.StrokeWidth)
	}
	if !(s.Font.Size > 0) || math.IsInf(s.Font.Size, 0) {
		return errors.New(errors.ErrCodeInvalidConfig, "font size must be positive, got %g", s.Font.Size)
	}
	if err := errors.ValidateFontFamily(s.Font.Family); err != nil {
		return err
	}
	if s.Background != "" {
		if err := errors.ValidateColor("background", s.Background); err != nil {
			return err
		}
	}
	if err := errors.ValidateColor("stroke", s.Stroke); err != nil {
		return err
	}
	if err := errors.ValidateColor("font color", s.Font.Color); err != nil {
		return err
	}
	return nil
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

// Element is one drawable node: its wedge outline and label placement.
type Element struct {
	ID        string
	Node      *tree.Node
	Path      arc.Path
	Fill      tree.RGB
	Label     string
	LabelAt   arc.Point
	ShowLabel bool
}

// LabelID returns the element id of the label text.
func (e Element) LabelID() string { return "label-" + e.ID }

// WedgeID returns the element id of the wedge path.
func (e Element) WedgeID() string { return "wedge-" + e.ID }

// idNamespace scopes node ids so they do not collide with other SHA-1 uuids.
var idNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("sunburst"))

// NodeID returns a stable id for n derived from its path.
func NodeID(n *tree.Node) string {
	var key []byte
	for i, p := range n.Path() {
		if i > 0 {
			key = append(key, 0)
		}
		key = append(key, p...)
	}
	return uuid.NewSHA1(idNamespace, key).String()
}

// Elements computes the drawable elements of a laid-out, colored tree in
// document order. The root is never included.
//
// All geometry is generated before anything is drawn, so a failing wedge
// aborts the whole scene.
func Elements(root *tree.Node, s Scene) ([]Element, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	c := s.Center()
	elems := make([]Element, 0, tree.Count(root))

	var err error
	tree.Walk(root, func(n *tree.Node) bool {
		if err != nil {
			return false
		}
		if n == root {
			return true
		}
		var p arc.Path
		p, err = arc.Wedge(c, n.InnerRadius, n.OuterRadius, n.AngleStart, n.AngleEnd)
		if err != nil {
			err = errors.Wrap(errors.ErrCodeInvalidGeometry, err, "wedge %q", n.Key())
			return false
		}
		show := true
		if s.HideNarrowLabels {
			r := (n.InnerRadius + n.OuterRadius) / 2
			show = styles.FitsLabel(n.Name, s.Font.Size, r, n.Span())
		}
		elems = append(elems, Element{
			ID:        NodeID(n),
			Node:      n,
			Path:      p,
			Fill:      n.Color,
			Label:     n.Name,
			LabelAt:   arc.Centroid(c, n.InnerRadius, n.OuterRadius, n.AngleStart, n.AngleEnd),
			ShowLabel: show,
		})
		return true
	})
	if err != nil {
		return nil, err
	}
	return elems, nil
}

// Compose draws root onto canvas: the background, then for every node in
// document order its wedge followed by its label.
func Compose(root *tree.Node, s Scene, canvas Canvas) error {
	elems, err := Elements(root, s)
	if err != nil {
		return err
	}

	canvas.Start(s.Width, s.Height)
	if s.Background != "" && s.Background != "none" {
		canvas.Background(s.Background)
	}
	for _, e := range elems {
		canvas.Wedge(e.WedgeID(), e.Path, e.Fill.String(), s.Stroke, s.StrokeWidth)
		if e.ShowLabel {
			canvas.Label(e.LabelID(), e.LabelAt, e.Label, s.Font)
		}
	}
	canvas.End()
	return nil
}
