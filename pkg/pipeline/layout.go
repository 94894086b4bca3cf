package pipeline

import (
	"github.com/matzehuels/sunburst/pkg/render/sunburst/layout"
	"github.com/matzehuels/sunburst/pkg/render/sunburst/styles"
	"github.com/matzehuels/sunburst/pkg/tree"
)

// =============================================================================
// Layout
// =============================================================================

// Layout assigns angles, radii and colors to an aggregated tree.
//
// The geometry is checked with [layout.Verify] right after assignment, so a
// broken tiling is reported here rather than rendered. Nodelink diagrams
// only need colors, but share the same pass so both views match.
func Layout(root *tree.Node, opts Options) error {
	opts.setLogger()
	lo := opts.LayoutOptions()
	if err := layout.Assign(root, lo); err != nil {
		return err
	}
	if err := layout.Verify(root, lo, layout.DefaultTolerance); err != nil {
		return err
	}
	if err := styles.Assign(root, opts.Palette); err != nil {
		return err
	}

	for _, b := range root.Children() {
		opts.Logger.Debug("branch",
			"name", b.Name,
			"value", b.Value,
			"start", b.AngleStart,
			"end", b.AngleEnd,
			"color", b.Color.Hex())
	}
	return nil
}
