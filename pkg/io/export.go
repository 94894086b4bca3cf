package io

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"

	"github.com/matzehuels/sunburst/pkg/errors"
	"github.com/matzehuels/sunburst/pkg/tree"
)

// WriteCSV writes one record per leaf of root in document order, using the
// carry-forward layout: a label is written only where it differs from the
// record above, and the value always sits in the last column. Reading the
// output with [ReadCSV] and tree.Build reproduces the same tree.
func WriteCSV(root *tree.Node, w io.Writer) error {
	width := tree.MaxDepth(root) + 1
	cw := csv.NewWriter(w)

	var prev []string
	var werr error
	tree.Walk(root, func(n *tree.Node) bool {
		if werr != nil {
			return false
		}
		if n == root || !n.IsLeaf() {
			return true
		}
		path := n.Path()
		rec := make([]string, width)
		diverged := false
		for i, name := range path {
			if diverged || i >= len(prev) || prev[i] != name {
				rec[i] = name
				diverged = true
			}
		}
		rec[width-1] = strconv.FormatFloat(n.Value, 'g', -1, 64)
		werr = cw.Write(rec)
		prev = path
		return true
	})
	if werr != nil {
		return errors.Wrap(errors.ErrCodeInternal, werr, "write csv")
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "write csv")
	}
	return nil
}

// ExportCSV writes root to a CSV file at path.
// This is a convenience wrapper around [WriteCSV] for file-based output.
func ExportCSV(root *tree.Node, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "create %s", path)
	}
	defer f.Close()
	return WriteCSV(root, f)
}
