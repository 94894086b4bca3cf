package pipeline

import (
	"github.com/matzehuels/sunburst/pkg/io"
	"github.com/matzehuels/sunburst/pkg/tree"
)

// Read imports the rows of opts.Input and returns the aggregated tree along
// with the number of rows read.
func Read(opts Options) (*tree.Node, int, error) {
	opts.setLogger()
	rows, err := io.ImportRows(opts.Input, io.ReadOptions{Header: opts.Header, Sheet: opts.Sheet})
	if err != nil {
		return nil, 0, err
	}
	opts.Logger.Debug("imported rows", "path", opts.Input, "rows", len(rows), "header", opts.Header, "sheet", opts.Sheet)
	root, err := BuildTree(rows)
	if err != nil {
		return nil, len(rows), err
	}
	return root, len(rows), nil
}

// BuildTree builds and aggregates a tree from rows.
func BuildTree(rows []tree.Row) (*tree.Node, error) {
	root, err := tree.Build(rows)
	if err != nil {
		return nil, err
	}
	if err := tree.Aggregate(root); err != nil {
		return nil, err
	}
	return root, nil
}
