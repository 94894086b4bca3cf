package tree

import (
	"github.com/matzehuels/sunburst/pkg/errors"
)

// Aggregate propagates values bottom-up. Leaves keep the value supplied by
// the input; every interior node's Value is overwritten with the sum of its
// children, added in ascending name order.
//
// Aggregate mutates root in place and must run before layout. It returns an
// error with code [errors.ErrCodeMissingValue] if a childless node never
// received a value (an empty root included) or any leaf value is negative.
func Aggregate(root *Node) error {
	if root.IsLeaf() && !root.valued {
		return errors.MissingValue("", "dataset has no rows")
	}
	return aggregate(root)
}

func aggregate(n *Node) error {
	if n.IsLeaf() {
		switch {
		case !n.valued:
			return errors.MissingValue(n.Key(), "leaf has no value")
		case n.Value < 0:
			return errors.MissingValue(n.Key(), "negative value %g", n.Value)
		}
		return nil
	}

	var sum float64
	for _, c := range n.children {
		if err := aggregate(c); err != nil {
			return err
		}
		sum += c.Value
	}
	n.Value = sum
	return nil
}
