// Package render provides format conversion shared by all chart renderers.
//
// # Overview
//
// This package holds the renderer subpackages and the SVG conversion they
// share:
//
//   - Generic format conversion (SVG to PDF/PNG)
//   - Sunburst charts (in [sunburst] subpackage)
//   - Node-link diagrams (in [nodelink] subpackage)
//
// # Format Conversion
//
// The [ToPDF] and [ToPNG] functions convert any SVG to other formats using
// the external rsvg-convert tool (from librsvg). [Available] reports whether
// the tool is on PATH; without it both return an error with code
// UNSUPPORTED.
//
//	svg, err := sink.RenderSVG(root)
//	pdf, err := render.ToPDF(ctx, svg)
//	png, err := render.ToPNG(ctx, svg, 2.0) // 2x scale
//
// # Sunburst Charts
//
// Key sunburst subpackages:
//   - [sunburst/layout]: Angular spans and ring radii
//   - [sunburst/styles]: HSL colors and label fitting
//   - [sunburst/arc]: Wedge outlines with arcs split at π
//   - [sunburst/sink]: Output formats (SVG, PNG, PDF, JSON)
//
// # Node-Link Diagrams
//
// The [nodelink] subpackage renders the category tree as a left-to-right
// Graphviz diagram, each node filled with its sunburst color.
//
//	dot := nodelink.ToDOT(root, nodelink.Options{Detailed: true})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// [sunburst]: github.com/matzehuels/sunburst/pkg/render/sunburst
// [sunburst/layout]: github.com/matzehuels/sunburst/pkg/render/sunburst/layout
// [sunburst/styles]: github.com/matzehuels/sunburst/pkg/render/sunburst/styles
// [sunburst/arc]: github.com/matzehuels/sunburst/pkg/render/sunburst/arc
// [sunburst/sink]: github.com/matzehuels/sunburst/pkg/render/sunburst/sink
// [nodelink]: github.com/matzehuels/sunburst/pkg/render/nodelink
package render
