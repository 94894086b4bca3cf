// Package nodelink renders the category tree as a node-link diagram.
//
// # Overview
//
// The sunburst chart shows proportions well but hides small categories.
// This package draws the same hierarchy as a left-to-right Graphviz tree,
// where every category is a box connected to its parent. Boxes use the
// colors assigned for the sunburst, so both views of one dataset match.
//
// # Usage
//
// Convert a tree to DOT format, then render to SVG:
//
//	dot := nodelink.ToDOT(root, nodelink.Options{Detailed: true})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// For PDF or PNG output:
//
//	pdf, err := nodelink.RenderPDF(ctx, dot)
//	png, err := nodelink.RenderPNG(ctx, dot, 2.0)  // 2x scale
//
// # Options
//
//   - Detailed: adds each node's value and its share of the parent
//   - RootLabel: name of the synthetic root box (default "total")
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering. PDF and PNG conversion requires librsvg (rsvg-convert).
package nodelink
