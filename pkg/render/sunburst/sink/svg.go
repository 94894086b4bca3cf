package sink

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"strconv"

	svg "github.com/ajstarks/svgo"

	"github.com/matzehuels/sunburst/pkg/render/sunburst"
	"github.com/matzehuels/sunburst/pkg/render/sunburst/arc"
	"github.com/matzehuels/sunburst/pkg/tree"
)

// SVGOption configures SVG rendering.
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	scene sunburst.Scene
	title string
}

// WithScene sets canvas size, stroke, font and label settings.
func WithScene(s sunburst.Scene) SVGOption { return func(r *svgRenderer) { r.scene = s } }

// WithTitle adds a <title> element to the document.
func WithTitle(t string) SVGOption { return func(r *svgRenderer) { r.title = t } }

func newSVGRenderer(opts ...SVGOption) svgRenderer {
	r := svgRenderer{scene: sunburst.DefaultScene()}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// RenderSVG draws a laid-out, colored tree as an SVG document.
func RenderSVG(root *tree.Node, opts ...SVGOption) ([]byte, error) {
	r := newSVGRenderer(opts...)
	var buf bytes.Buffer
	c := NewSVGCanvas(&buf)
	c.title = r.title
	if err := sunburst.Compose(root, r.scene, c); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// SVGCanvas implements [sunburst.Canvas] on top of svgo.
type SVGCanvas struct {
	svg           *svg.SVG
	width, height int
	title         string
}

// NewSVGCanvas returns a canvas writing to w.
func NewSVGCanvas(w io.Writer) *SVGCanvas {
	return &SVGCanvas{svg: svg.New(w)}
}

func (c *SVGCanvas) Start(width, height int) {
	c.width, c.height = width, height
	c.svg.Start(width, height, fmt.Sprintf(`viewBox="0 0 %d %d"`, width, height))
	if c.title != "" {
		c.svg.Title(c.title)
	}
}

func (c *SVGCanvas) Background(fill string) {
	c.svg.Rect(0, 0, c.width, c.height, attr("fill", fill))
}

func (c *SVGCanvas) Wedge(id string, d arc.Path, fill, stroke string, strokeWidth float64) {
	c.svg.Path(d.String(),
		attr("id", id),
		attr("fill", fill),
		attr("stroke", stroke),
		attr("stroke-width", num(strokeWidth)),
	)
}

func (c *SVGCanvas) Label(id string, at arc.Point, text string, font sunburst.Font) {
	c.svg.Text(int(math.Round(at.X)), int(math.Round(at.Y)), text,
		attr("id", id),
		`text-anchor="middle"`,
		`dy=".35em"`,
		attr("font-family", font.Family),
		attr("font-size", num(font.Size)),
		attr("fill", font.Color),
	)
}

func (c *SVGCanvas) End() { c.svg.End() }

// attr formats a presentation attribute. svgo writes arguments containing
// "=" verbatim, so values must already be validated.
func attr(name, value string) string {
	return name + `="` + value + `"`
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
