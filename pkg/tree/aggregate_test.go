package tree

import (
	"testing"

	"github.com/matzehuels/sunburst/pkg/errors"
)

func TestAggregateSums(t *testing.T) {
	root, err := Build(rows(
		[]string{"A", "A1", "2"},
		[]string{"", "A2", "3"},
		[]string{"B", "", "5"},
	))
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	if err := Aggregate(root); err != nil {
		t.Fatalf("Aggregate() error: %v", err)
	}

	if root.Value != 10 {
		t.Errorf("root = %v, want 10", root.Value)
	}
	if v := mustChild(t, root, "A").Value; v != 5 {
		t.Errorf("A = %v, want 5", v)
	}
	if v := mustChild(t, root, "B").Value; v != 5 {
		t.Errorf("B = %v, want 5", v)
	}
}

func TestAggregateInvariant(t *testing.T) {
	root, err := Build(rows(
		[]string{"A", "A1", "x", "0.25"},
		[]string{"", "", "y", "0.5"},
		[]string{"", "A2", "", "1.75"},
		[]string{"B", "B1", "", "3"},
		[]string{"", "B2", "z", "0"},
		[]string{"C", "", "", "7.125"},
	))
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	if err := Aggregate(root); err != nil {
		t.Fatalf("Aggregate() error: %v", err)
	}

	Walk(root, func(n *Node) bool {
		if n.IsLeaf() {
			return true
		}
		var sum float64
		for _, c := range n.Children() {
			sum += c.Value
		}
		if n.Value != sum {
			t.Errorf("%q value = %v, want sum of children %v", n.Key(), n.Value, sum)
		}
		return true
	})
}

func TestAggregateErrors(t *testing.T) {
	t.Run("empty dataset", func(t *testing.T) {
		err := Aggregate(NewRoot())
		if !errors.Is(err, errors.ErrCodeMissingValue) {
			t.Errorf("error = %v, want %v", err, errors.ErrCodeMissingValue)
		}
	})

	t.Run("negative value", func(t *testing.T) {
		root, err := Build(rows(
			[]string{"A", "A1", "2"},
			[]string{"", "A2", "-1"},
		))
		if err != nil {
			t.Fatalf("Build() error: %v", err)
		}
		err = Aggregate(root)
		if !errors.Is(err, errors.ErrCodeMissingValue) {
			t.Errorf("error = %v, want %v", err, errors.ErrCodeMissingValue)
		}
	})

	t.Run("leaf without value", func(t *testing.T) {
		root := NewRoot()
		root.AddChild("A").AddChild("A1")
		err := Aggregate(root)
		if !errors.Is(err, errors.ErrCodeMissingValue) {
			t.Errorf("error = %v, want %v", err, errors.ErrCodeMissingValue)
		}
	})
}
