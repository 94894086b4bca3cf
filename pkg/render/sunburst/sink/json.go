package sink

import (
	"encoding/json"

	"github.com/matzehuels/sunburst/pkg/render/sunburst"
	"github.com/matzehuels/sunburst/pkg/tree"
)

// JSONOption configures JSON rendering via [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	scene sunburst.Scene
}

// WithJSONScene sets the canvas used to compute wedge paths and label
// positions.
func WithJSONScene(s sunburst.Scene) JSONOption { return func(r *jsonRenderer) { r.scene = s } }

type jsonOutput struct {
	Width   int       `json:"width"`
	Height  int       `json:"height"`
	CenterX float64   `json:"center_x"`
	CenterY float64   `json:"center_y"`
	Total   float64   `json:"total"`
	Arcs    []jsonArc `json:"arcs"`
}

type jsonArc struct {
	ID          string   `json:"id"`
	Path        []string `json:"path"`
	Name        string   `json:"name"`
	Depth       int      `json:"depth"`
	Value       float64  `json:"value"`
	AngleStart  float64  `json:"angle_start"`
	AngleEnd    float64  `json:"angle_end"`
	InnerRadius float64  `json:"inner_radius"`
	OuterRadius float64  `json:"outer_radius"`
	Color       string   `json:"color"`
	D           string   `json:"d"`
	LabelX      float64  `json:"label_x"`
	LabelY      float64  `json:"label_y"`
	Label       bool     `json:"label"`
}

// RenderJSON exports every wedge of a laid-out, colored tree in document
// order, with its geometry, color and SVG path data. External tools can use
// it to draw the chart themselves or to inspect the layout.
func RenderJSON(root *tree.Node, opts ...JSONOption) ([]byte, error) {
	r := jsonRenderer{scene: sunburst.DefaultScene()}
	for _, opt := range opts {
		opt(&r)
	}

	elems, err := sunburst.Elements(root, r.scene)
	if err != nil {
		return nil, err
	}

	out := jsonOutput{
		Width:   r.scene.Width,
		Height:  r.scene.Height,
		CenterX: r.scene.CenterX,
		CenterY: r.scene.CenterY,
		Total:   root.Value,
		Arcs:    make([]jsonArc, 0, len(elems)),
	}
	for _, e := range elems {
		n := e.Node
		out.Arcs = append(out.Arcs, jsonArc{
			ID:          e.ID,
			Path:        n.Path(),
			Name:        n.Name,
			Depth:       n.Depth,
			Value:       n.Value,
			AngleStart:  n.AngleStart,
			AngleEnd:    n.AngleEnd,
			InnerRadius: n.InnerRadius,
			OuterRadius: n.OuterRadius,
			Color:       n.Color.Hex(),
			D:           e.Path.String(),
			LabelX:      e.LabelAt.X,
			LabelY:      e.LabelAt.Y,
			Label:       e.ShowLabel,
		})
	}
	return json.MarshalIndent(out, "", "  ")
}
