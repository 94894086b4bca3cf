package layout

import (
	"math"

	"github.com/matzehuels/sunburst/pkg/errors"
	"github.com/matzehuels/sunburst/pkg/tree"
)

const (
	// DefaultRingWidth is the radial thickness of one ring.
	DefaultRingWidth = 50.0
	// DefaultStartRadius is the inner radius of the first ring.
	DefaultStartRadius = 120.0
	// DefaultTolerance is the slack allowed by [Verify] for float comparisons.
	DefaultTolerance = 1e-9
)

// FullCircle is the angular span of the root.
const FullCircle = 2 * math.Pi

// Options configures ring geometry.
type Options struct {
	RingWidth   float64 // radial thickness per depth level, > 0
	StartRadius float64 // inner radius of the first ring, >= 0
}

// DefaultOptions returns the stock ring geometry.
func DefaultOptions() Options {
	return Options{RingWidth: DefaultRingWidth, StartRadius: DefaultStartRadius}
}

// Validate checks the geometry preconditions.
func (o Options) Validate() error {
	switch {
	case !(o.RingWidth > 0) || math.IsInf(o.RingWidth, 0):
		return errors.InvalidGeometry("ring width must be a positive number, got %g", o.RingWidth)
	case !(o.StartRadius >= 0) || math.IsInf(o.StartRadius, 0):
		return errors.InvalidGeometry("start radius must be non-negative, got %g", o.StartRadius)
	}
	return nil
}

// Assign lays out an aggregated tree in place.
//
// The root spans [0, 2π] with both radii at StartRadius. Each node's span is
// divided among its children in ascending name order, proportionally to
// their values: with running total cv and node total V, a child covers
//
//	[ts + cv/V·(te−ts), ts + (cv+value)/V·(te−ts)]
//
// Consecutive children share their boundary angle exactly and the last
// child ends exactly at te, so children tile the parent with no gap or
// overlap. When V is zero every child collapses to the point [ts, ts].
// A child's inner radius is its parent's outer radius; its outer radius adds
// RingWidth.
//
// Assign must run after tree.Aggregate.
func Assign(root *tree.Node, opts Options) error {
	if err := opts.Validate(); err != nil {
		return err
	}
	root.AngleStart = 0
	root.AngleEnd = FullCircle
	root.InnerRadius = opts.StartRadius
	root.OuterRadius = opts.StartRadius
	assign(root, opts.RingWidth)
	return nil
}

func assign(n *tree.Node, ringWidth float64) {
	children := n.Children()
	if len(children) == 0 {
		return
	}

	ts, te := n.AngleStart, n.AngleEnd
	total := n.Value
	inner := n.OuterRadius

	start := ts
	cv := 0.0
	for i, c := range children {
		end := ts
		if total > 0 {
			cv += c.Value
			end = ts + cv/total*(te-ts)
			if i == len(children)-1 {
				end = te
			}
		}
		c.AngleStart = start
		c.AngleEnd = end
		c.InnerRadius = inner
		c.OuterRadius = inner + ringWidth
		assign(c, ringWidth)
		start = end
	}
}

// Verify checks the layout invariants of an assigned tree within tol:
// children of a node with positive value tile its span exactly, every span
// lies inside its parent's, and every rendered node is one ring wide with
// its inner radius at the parent's outer radius.
func Verify(root *tree.Node, opts Options, tol float64) error {
	var err error
	tree.Walk(root, func(n *tree.Node) bool {
		if err != nil {
			return false
		}
		err = verifyNode(n, opts, tol)
		return err == nil
	})
	return err
}

func verifyNode(n *tree.Node, opts Options, tol float64) error {
	if n.AngleEnd < n.AngleStart {
		return errors.InvalidGeometry("%q: span [%g, %g] is reversed", n.Key(), n.AngleStart, n.AngleEnd)
	}
	if p := n.Parent(); p != nil {
		if n.AngleStart < p.AngleStart-tol || n.AngleEnd > p.AngleEnd+tol {
			return errors.InvalidGeometry("%q: span [%g, %g] escapes parent [%g, %g]",
				n.Key(), n.AngleStart, n.AngleEnd, p.AngleStart, p.AngleEnd)
		}
		if math.Abs(n.InnerRadius-p.OuterRadius) > tol {
			return errors.InvalidGeometry("%q: inner radius %g does not meet parent outer radius %g",
				n.Key(), n.InnerRadius, p.OuterRadius)
		}
		if math.Abs(n.OuterRadius-n.InnerRadius-opts.RingWidth) > tol {
			return errors.InvalidGeometry("%q: ring width %g, want %g",
				n.Key(), n.OuterRadius-n.InnerRadius, opts.RingWidth)
		}
	}

	children := n.Children()
	if len(children) == 0 || n.Value <= 0 {
		return nil
	}
	if d := math.Abs(children[0].AngleStart - n.AngleStart); d > tol {
		return errors.InvalidGeometry("%q: first child starts %g away from parent", n.Key(), d)
	}
	for i := 1; i < len(children); i++ {
		if d := math.Abs(children[i].AngleStart - children[i-1].AngleEnd); d > tol {
			return errors.InvalidGeometry("%q: gap of %g between %q and %q",
				n.Key(), d, children[i-1].Name, children[i].Name)
		}
	}
	if d := math.Abs(children[len(children)-1].AngleEnd - n.AngleEnd); d > tol {
		return errors.InvalidGeometry("%q: last child ends %g away from parent", n.Key(), d)
	}
	return nil
}
