package tree

import (
	"slices"
	"testing"

	"github.com/matzehuels/sunburst/pkg/errors"
)

func rows(cells ...[]string) []Row {
	out := make([]Row, len(cells))
	for i, c := range cells {
		out[i] = Row{Line: i + 1, Cells: c}
	}
	return out
}

func names(nodes []*Node) []string {
	out := make([]string, len(nodes))
	for i, n := range nodes {
		out[i] = n.Name
	}
	return out
}

func mustChild(t *testing.T, n *Node, path ...string) *Node {
	t.Helper()
	cur := n
	for _, name := range path {
		next, ok := cur.Child(name)
		if !ok {
			t.Fatalf("missing node %v (stopped at %q)", path, name)
		}
		cur = next
	}
	return cur
}

func TestBuildCarryForward(t *testing.T) {
	root, err := Build(rows(
		[]string{"A", "A1", "1.2"},
		[]string{"", "A2", "0.8"},
		[]string{"B", "", "2.0"},
	))
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}

	if got := names(root.Children()); !slices.Equal(got, []string{"A", "B"}) {
		t.Errorf("root children = %v, want [A B]", got)
	}
	a := mustChild(t, root, "A")
	if got := names(a.Children()); !slices.Equal(got, []string{"A1", "A2"}) {
		t.Errorf("A children = %v, want [A1 A2]", got)
	}
	if v := mustChild(t, root, "A", "A1").Value; v != 1.2 {
		t.Errorf("A1 = %v, want 1.2", v)
	}
	if v := mustChild(t, root, "A", "A2").Value; v != 0.8 {
		t.Errorf("A2 = %v, want 0.8", v)
	}
	b := mustChild(t, root, "B")
	if !b.IsLeaf() || b.Value != 2.0 {
		t.Errorf("B = leaf %v value %v, want leaf with 2.0", b.IsLeaf(), b.Value)
	}
}

func TestBuildSortsSiblings(t *testing.T) {
	root, err := Build(rows(
		[]string{"zeta", "1"},
		[]string{"alpha", "1"},
		[]string{"Mid", "1"},
		[]string{"beta", "1"},
	))
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	// Byte-wise order: uppercase sorts before lowercase.
	want := []string{"Mid", "alpha", "beta", "zeta"}
	if got := names(root.Children()); !slices.Equal(got, want) {
		t.Errorf("children = %v, want %v", got, want)
	}
}

func TestBuildDepthAndPath(t *testing.T) {
	root, err := Build(rows([]string{"A", "B", "C", "3"}))
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	c := mustChild(t, root, "A", "B", "C")
	if c.Depth != 3 {
		t.Errorf("Depth = %d, want 3", c.Depth)
	}
	if c.Key() != "A/B/C" {
		t.Errorf("Key() = %q, want A/B/C", c.Key())
	}
	if c.Branch().Name != "A" {
		t.Errorf("Branch() = %q, want A", c.Branch().Name)
	}
	if root.Branch() != nil {
		t.Error("root Branch() should be nil")
	}
}

func TestBuildSkipsBlankRows(t *testing.T) {
	root, err := Build(rows(
		[]string{"A", "1"},
		[]string{"", ""},
		[]string{"  ", " "},
		[]string{"B", "2"},
	))
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	if Count(root) != 2 {
		t.Errorf("Count() = %d, want 2", Count(root))
	}
}

func TestBuildMalformedRows(t *testing.T) {
	tests := []struct {
		name string
		rows []Row
	}{
		{"missing value", rows([]string{"A", ""})},
		{"non-numeric value", rows([]string{"A", "lots"})},
		{"NaN value", rows([]string{"A", "NaN"})},
		{"infinite value", rows([]string{"A", "+Inf"})},
		{"no path", rows([]string{"", "3"})},
		{"value only", rows([]string{"3"})},
		{"gap in path", rows([]string{"", "A1", "1"})},
		{"leaf then extended", rows(
			[]string{"A", "", "1"},
			[]string{"A", "A1", "2"},
		)},
		{"interior then valued", rows(
			[]string{"A", "A1", "1"},
			[]string{"A", "", "2"},
		)},
		{"duplicate leaf", rows(
			[]string{"A", "1"},
			[]string{"A", "2"},
		)},
		{"control char label", rows([]string{"A\x01", "1"})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Build(tt.rows)
			if err == nil {
				t.Fatal("Build() should fail")
			}
			if !errors.Is(err, errors.ErrCodeMalformedRow) {
				t.Errorf("error code = %v, want %v (%v)", errors.GetCode(err), errors.ErrCodeMalformedRow, err)
			}
		})
	}
}

func TestBuilderReportsLine(t *testing.T) {
	b := NewBuilder()
	if err := b.Add(Row{Line: 7, Cells: []string{"A", "x"}}); err == nil {
		t.Fatal("Add() should fail")
	} else if got := errors.UserMessage(err); got != `row 7: value "x" is not a number` {
		t.Errorf("message = %q", got)
	}
}

func TestBuildTrimsCells(t *testing.T) {
	root, err := Build(rows([]string{" A ", " 4.5 "}))
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	if v := mustChild(t, root, "A").Value; v != 4.5 {
		t.Errorf("A = %v, want 4.5", v)
	}
}

func TestWalkDocumentOrder(t *testing.T) {
	root, err := Build(rows(
		[]string{"B", "B2", "1"},
		[]string{"A", "A1", "1"},
		[]string{"B", "B1", "1"},
	))
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}

	var got []string
	Walk(root, func(n *Node) bool {
		if !n.IsRoot() {
			got = append(got, n.Key())
		}
		return true
	})
	want := []string{"A", "A/A1", "B", "B/B1", "B/B2"}
	if !slices.Equal(got, want) {
		t.Errorf("Walk order = %v, want %v", got, want)
	}
	if MaxDepth(root) != 2 {
		t.Errorf("MaxDepth() = %d, want 2", MaxDepth(root))
	}
}

func TestRGB(t *testing.T) {
	c := RGB{R: 255, G: 8, B: 0}
	if c.String() != "rgb(255,8,0)" {
		t.Errorf("String() = %q", c.String())
	}
	if c.Hex() != "#ff0800" {
		t.Errorf("Hex() = %q", c.Hex())
	}
}
