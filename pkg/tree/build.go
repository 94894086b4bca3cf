package tree

import (
	"math"
	"strconv"
	"strings"

	"github.com/matzehuels/sunburst/pkg/errors"
)

// Row is one input row: optional path labels followed by a numeric value.
type Row struct {
	Line  int      // 1-based row number in the source, used in errors
	Cells []string // labels..., value
}

// Blank reports whether every cell of the row is empty.
func (r Row) Blank() bool {
	for _, c := range r.Cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// Builder reconstructs a hierarchy from rows using the carry-forward rule:
// a non-empty label in column i replaces path segment i and discards every
// deeper segment, while a blank cell reuses segment i if it is still set.
//
// A Builder is not safe for concurrent use.
type Builder struct {
	root *Node
	path []string
}

// NewBuilder returns a Builder with an empty root.
func NewBuilder() *Builder {
	return &Builder{root: NewRoot()}
}

// Root returns the tree built so far.
func (b *Builder) Root() *Node { return b.root }

// Add applies one row. Fully blank rows are ignored.
//
// Add returns an error with code [errors.ErrCodeMalformedRow] when the value
// cell is missing or not a finite number, when a label has no parent
// segment to attach to, when the row's path is empty, or when the row
// conflicts with an earlier one (a leaf extended with children, an interior
// node given a value, or a leaf given a second value).
func (b *Builder) Add(row Row) error {
	if row.Blank() {
		return nil
	}
	if len(row.Cells) == 0 {
		return errors.MalformedRow(row.Line, "row has no cells")
	}

	labels := row.Cells[:len(row.Cells)-1]
	raw := strings.TrimSpace(row.Cells[len(row.Cells)-1])

	if err := b.advance(row.Line, labels); err != nil {
		return err
	}
	if len(b.path) == 0 {
		return errors.MalformedRow(row.Line, "row has no category path")
	}

	value, err := parseValue(row.Line, raw)
	if err != nil {
		return err
	}

	cur := b.root
	for depth, name := range b.path {
		if cur.valued {
			return errors.MalformedRow(row.Line,
				"%q already has a value (row %d) and cannot have children",
				cur.Key(), cur.line)
		}
		next := cur.AddChild(name)
		if depth < len(b.path)-1 {
			cur = next
			continue
		}
		switch {
		case next.valued:
			return errors.MalformedRow(row.Line, "%q already has a value (row %d)", next.Key(), next.line)
		case !next.IsLeaf():
			return errors.MalformedRow(row.Line, "%q has children and cannot take a value", next.Key())
		}
		next.SetValue(value)
		next.line = row.Line
	}
	return nil
}

// advance updates the cached path from the row's label cells.
func (b *Builder) advance(line int, labels []string) error {
	for i, cell := range labels {
		label := strings.TrimSpace(cell)
		if label == "" {
			continue
		}
		if err := errors.ValidateLabel(label); err != nil {
			return errors.Wrap(errors.ErrCodeMalformedRow, err, "row %d: column %d", line, i+1)
		}
		if i > len(b.path) {
			return errors.MalformedRow(line, "label %q in column %d has no parent in column %d", label, i+1, i)
		}
		b.path = append(b.path[:i], label)
	}
	return nil
}

func parseValue(line int, raw string) (float64, error) {
	if raw == "" {
		return 0, errors.MalformedRow(line, "missing value")
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, errors.MalformedRow(line, "value %q is not a number", raw)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, errors.MalformedRow(line, "value %q is not finite", raw)
	}
	return v, nil
}

// Build constructs a tree from rows. It stops at the first malformed row.
func Build(rows []Row) (*Node, error) {
	b := NewBuilder()
	for _, row := range rows {
		if err := b.Add(row); err != nil {
			return nil, err
		}
	}
	return b.Root(), nil
}
