// Package pkg provides the libraries behind the sunburst chart tool.
//
// # Overview
//
// Sunburst draws a category hierarchy as concentric rings: the innermost
// ring holds the top-level categories, each further ring one level deeper,
// and every wedge spans an angle proportional to its value. The pkg
// directory is organized by stage:
//
//  1. [io] - Import rows from CSV, TSV and XLSX; export trees as CSV
//  2. [tree] - Build the category tree from carry-forward rows and aggregate values
//  3. [render/sunburst] - Layout, colors, arc geometry and scene composition
//  4. [render/nodelink] - The same tree as a Graphviz diagram
//  5. [pipeline] - Orchestration (read → layout → render)
//
// # Architecture
//
// The data flow:
//
//	CSV / TSV / XLSX rows
//	         ↓
//	    [io] package (rows with line numbers)
//	         ↓
//	    [tree] package (Build + Aggregate)
//	         ↓
//	    [render/sunburst/layout] (angles and radii)
//	         ↓
//	    [render/sunburst/styles] (HSL colors)
//	         ↓
//	    [render/sunburst] (Compose on a Canvas)
//	         ↓
//	    SVG/PDF/PNG/JSON output
//
// # Quick Start
//
//	root, err := tree.Build(rows)
//	if err != nil {
//	    return err
//	}
//	if err := tree.Aggregate(root); err != nil {
//	    return err
//	}
//	if err := layout.Assign(root, layout.DefaultOptions()); err != nil {
//	    return err
//	}
//	if err := styles.Assign(root, styles.DefaultPalette()); err != nil {
//	    return err
//	}
//	svg, err := sink.RenderSVG(root)
//
// Most callers go through [pipeline] instead, which adds validation, hooks
// and logging.
//
// # Supporting Packages
//
// [errors] - Coded errors (MALFORMED_ROW, MISSING_VALUE, INVALID_GEOMETRY, ...)
// and input validation.
//
// [observability] - Hooks for read, layout, render and output events.
//
// [buildinfo] - Version information set at build time.
//
// [io]: https://pkg.go.dev/github.com/matzehuels/sunburst/pkg/io
// [tree]: https://pkg.go.dev/github.com/matzehuels/sunburst/pkg/tree
// [render/sunburst]: https://pkg.go.dev/github.com/matzehuels/sunburst/pkg/render/sunburst
// [render/nodelink]: https://pkg.go.dev/github.com/matzehuels/sunburst/pkg/render/nodelink
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/sunburst/pkg/pipeline
// [errors]: https://pkg.go.dev/github.com/matzehuels/sunburst/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/sunburst/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/sunburst/pkg/buildinfo
//
// [render/sunburst/layout]: https://pkg.go.dev/github.com/matzehuels/sunburst/pkg/render/sunburst/layout
// [render/sunburst/styles]: https://pkg.go.dev/github.com/matzehuels/sunburst/pkg/render/sunburst/styles
package pkg
