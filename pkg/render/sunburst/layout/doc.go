// Package layout assigns angular spans and ring radii to a sunburst tree.
//
// # Overview
//
// [Assign] walks an aggregated [tree.Node] hierarchy top-down. The root owns
// the full circle; each node hands out its span to its children in ascending
// name order, each child receiving a share proportional to its value. Every
// depth level becomes one ring of width [Options.RingWidth], starting at
// [Options.StartRadius].
//
// # Angles
//
// Angles are radians measured counter-clockwise from the positive x axis.
// The renderer flips y for screen coordinates, see package arc.
//
// # Zero Values
//
// A node whose value is zero has nothing to divide. Its children are all
// placed at the node's start angle with zero width, in sort order, instead of
// dividing by zero.
//
// # Verification
//
// [Verify] re-checks the tiling, containment and ring invariants on an
// assigned tree. The pipeline runs it after every layout.
//
// [tree.Node]: github.com/matzehuels/sunburst/pkg/tree.Node
package layout
