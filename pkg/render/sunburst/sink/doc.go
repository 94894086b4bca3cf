// Package sink provides output format renderers for sunburst charts.
//
// # Overview
//
// A "sink" turns a laid-out, colored [tree.Node] hierarchy into a final
// output format:
//
//   - SVG: vector output drawn with svgo
//   - JSON: per-wedge geometry for external tools
//   - PDF: print-ready output (requires rsvg-convert)
//   - PNG: raster output (requires rsvg-convert)
//
// # SVG Output
//
// [RenderSVG] composes the chart onto an [SVGCanvas]. Every wedge is a
// closed <path> with a stable id, followed by its centered <text> label:
//
//	svg, err := sink.RenderSVG(root,
//	    sink.WithScene(scene),
//	    sink.WithTitle("Budget 2024"),
//	)
//
// # PDF and PNG Output
//
// [RenderPDF] and [RenderPNG] render SVG first and convert it with
// rsvg-convert from librsvg:
//
//	brew install librsvg        # macOS
//	apt install librsvg2-bin    # Linux
//
// [tree.Node]: github.com/matzehuels/sunburst/pkg/tree.Node
package sink
