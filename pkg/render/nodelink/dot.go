package nodelink

import (
	"bytes"
	"cmp"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/sunburst/pkg/errors"
	"github.com/matzehuels/sunburst/pkg/render"
	"github.com/matzehuels/sunburst/pkg/render/sunburst"
	"github.com/matzehuels/sunburst/pkg/tree"
)

// Options configures node-link diagram rendering.
type Options struct {
	// Detailed adds each node's value and share of its parent to the label.
	// When false, only the category name is shown.
	Detailed bool
	// RootLabel names the synthetic root node. Defaults to "total".
	RootLabel string
}

// ToDOT converts a category tree to Graphviz DOT format. Nodes are filled
// with the colors assigned by the styles pass, so the diagram matches the
// sunburst chart of the same data.
//
// The resulting DOT string can be rendered using [RenderSVG], [RenderPDF],
// or [RenderPNG].
func ToDOT(root *tree.Node, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.6;\n")
	buf.WriteString("  nodesep=0.2;\n")
	buf.WriteString("\n")

	tree.Walk(root, func(n *tree.Node) bool {
		label := fmtLabel(n, root, opts)
		fmt.Fprintf(&buf, "  %q [%s];\n", nodeID(n, root), strings.Join(fmtAttrs(n, root, label), ", "))
		return true
	})

	buf.WriteString("\n")
	tree.Walk(root, func(n *tree.Node) bool {
		for _, c := range n.Children() {
			fmt.Fprintf(&buf, "  %q -> %q;\n", nodeID(n, root), nodeID(c, root))
		}
		return true
	})

	buf.WriteString("}\n")
	return buf.String()
}

func nodeID(n, root *tree.Node) string {
	if n == root {
		return "root"
	}
	return sunburst.NodeID(n)
}

func fmtLabel(n, root *tree.Node, opts Options) string {
	name := n.Name
	if n == root {
		name = cmp.Or(opts.RootLabel, "total")
	}
	if !opts.Detailed {
		return name
	}

	parts := []string{name, "value: " + strconv.FormatFloat(n.Value, 'g', -1, 64)}
	if p := n.Parent(); p != nil && p.Value > 0 {
		parts = append(parts, fmt.Sprintf("share: %.1f%%", 100*n.Value/p.Value))
	}
	return strings.Join(parts, "\n")
}

func fmtAttrs(n, root *tree.Node, label string) []string {
	attrs := []string{fmt.Sprintf("label=%q", label)}
	if n == root {
		return append(attrs, "style=\"rounded,filled,dashed\"", "fillcolor=lightgrey", "fontcolor=black")
	}
	attrs = append(attrs, fmt.Sprintf("fillcolor=%q", n.Color.Hex()))
	if dark(n.Color) {
		attrs = append(attrs, "fontcolor=white")
	}
	return attrs
}

// dark reports whether c needs light text (perceived brightness below half).
func dark(c tree.RGB) bool {
	return 299*int(c.R)+587*int(c.G)+114*int(c.B) < 128*1000
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
// Returns the SVG bytes ready for display or further conversion with [render.ToPDF] or [render.ToPNG].
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "init graphviz")
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "parse DOT")
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "render DOT")
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox replaces Graphviz's pt-sized root element with a plain
// viewBox so the diagram scales like the sunburst output.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	tag := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(tag))
}

// RenderPDF renders a DOT graph as PDF via SVG conversion.
//
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPDF(ctx context.Context, dot string) ([]byte, error) {
	svg, err := RenderSVG(ctx, dot)
	if err != nil {
		return nil, err
	}
	return render.ToPDF(ctx, svg)
}

// RenderPNG renders a DOT graph as PNG via SVG conversion.
// A scale of 2.0 produces a 2x resolution image suitable for high-DPI displays.
func RenderPNG(ctx context.Context, dot string, scale float64) ([]byte, error) {
	svg, err := RenderSVG(ctx, dot)
	if err != nil {
		return nil, err
	}
	return render.ToPNG(ctx, svg, scale)
}
