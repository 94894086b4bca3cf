// Package tree holds the weighted category hierarchy behind a sunburst chart.
//
// # Overview
//
// A [Node] is one category at one depth. The synthetic root has no name and
// is never drawn; its children are the top-level branches. Siblings are kept
// sorted ascending by name (byte-wise), so every traversal visits them in the
// same order regardless of input order.
//
// # Building
//
// [Build] turns spreadsheet-style rows into a tree. Each [Row] holds optional
// label cells followed by a numeric value cell. A blank label cell means
// "same as the row above", so a parent label only needs to be written once:
//
//	A,  A1, 1.2
//	 ,  A2, 0.8
//	B,    , 2.0
//
// yields root → {A → {A1: 1.2, A2: 0.8}, B: 2.0}.
//
// # Passes
//
// After building, three in-place passes run in a fixed order:
//
//  1. [Aggregate] sums leaf values into interior nodes.
//  2. layout.Assign gives every node an angular span and ring radii.
//  3. styles.Assign gives every node a color.
//
// Each pass is a full traversal that writes its own fields only. A tree
// belongs to a single pipeline run and is not safe for concurrent mutation.
package tree
