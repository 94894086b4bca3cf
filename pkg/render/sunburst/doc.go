// Package sunburst composes a laid-out category tree into drawing calls.
//
// # Overview
//
// A sunburst chart draws a hierarchy as concentric rings. Each node becomes
// a wedge whose angular width is proportional to its value; each depth level
// is one ring. The work is split across subpackages that run in order over
// one [tree.Node] hierarchy:
//
//   - [layout]: angles and ring radii
//   - [styles]: branch hues and depth lightness
//   - [arc]: SVG path data for each wedge
//   - [sink]: output formats (SVG, JSON, PNG, PDF)
//
// This package ties them together. [Elements] turns every non-root node into
// an [Element] (wedge outline, fill, label position) and [Compose] replays
// the elements onto a [Canvas]:
//
//	root, _ := tree.Build(rows)
//	_ = tree.Aggregate(root)
//	_ = layout.Assign(root, layout.DefaultOptions())
//	_ = styles.Assign(root, styles.DefaultPalette())
//	err := sunburst.Compose(root, sunburst.DefaultScene(), canvas)
//
// # Draw Order
//
// Nodes are emitted in document order: a node's wedge, then its label, then
// its children in ascending name order. Labels of inner rings can therefore
// be covered by wedges of later siblings' subtrees only where they overflow
// their own wedge.
//
// # Identifiers
//
// Each element carries an id derived from the node path with a name-based
// (SHA-1) UUID, so rendering the same data twice produces identical output.
//
// [tree.Node]: github.com/matzehuels/sunburst/pkg/tree.Node
// [layout]: github.com/matzehuels/sunburst/pkg/render/sunburst/layout
// [styles]: github.com/matzehuels/sunburst/pkg/render/sunburst/styles
// [arc]: github.com/matzehuels/sunburst/pkg/render/sunburst/arc
// [sink]: github.com/matzehuels/sunburst/pkg/render/sunburst/sink
package sunburst
