package nodelink

import (
	"context"
	"strings"
	"testing"

	"github.com/matzehuels/sunburst/pkg/render/sunburst"
	"github.com/matzehuels/sunburst/pkg/render/sunburst/styles"
	"github.com/matzehuels/sunburst/pkg/tree"
)

func sample(t *testing.T) *tree.Node {
	t.Helper()
	root, err := tree.Build([]tree.Row{
		{Line: 1, Cells: []string{"A", "A1", "2"}},
		{Line: 2, Cells: []string{"", "A2", "3"}},
		{Line: 3, Cells: []string{"B", "", "5"}},
	})
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	if err := tree.Aggregate(root); err != nil {
		t.Fatalf("Aggregate() error: %v", err)
	}
	if err := styles.Assign(root, styles.DefaultPalette()); err != nil {
		t.Fatalf("styles.Assign() error: %v", err)
	}
	return root
}

func TestToDOT_Basic(t *testing.T) {
	root := sample(t)
	dot := ToDOT(root, Options{})

	if !strings.Contains(dot, "digraph G") {
		t.Error("ToDOT() output missing digraph declaration")
	}
	a, _ := root.Child("A")
	a1, _ := a.Child("A1")
	for _, want := range []string{
		`"root" [label="total"`,
		`label="A1"`,
		`"root" -> "` + sunburst.NodeID(a) + `"`,
		`"` + sunburst.NodeID(a) + `" -> "` + sunburst.NodeID(a1) + `"`,
		`fillcolor="` + a1.Color.Hex() + `"`,
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("ToDOT() output missing %s", want)
		}
	}
	if n := strings.Count(dot, "->"); n != 4 {
		t.Errorf("ToDOT() has %d edges, want 4", n)
	}
}

func TestToDOT_Detailed(t *testing.T) {
	dot := ToDOT(sample(t), Options{Detailed: true, RootLabel: "budget"})

	for _, want := range []string{`label="budget\nvalue: 10"`, `A2\nvalue: 3\nshare: 60.0%`, `B\nvalue: 5\nshare: 50.0%`} {
		if !strings.Contains(dot, want) {
			t.Errorf("ToDOT() detailed output missing %s", want)
		}
	}
}

func TestToDOT_QuotesNames(t *testing.T) {
	root, err := tree.Build([]tree.Row{{Line: 1, Cells: []string{`say "hi"`, "1"}}})
	if err != nil {
		t.Fatal(err)
	}
	dot := ToDOT(root, Options{})
	if !strings.Contains(dot, `label="say \"hi\""`) {
		t.Errorf("label not quoted:\n%s", dot)
	}
}

func TestDark(t *testing.T) {
	tests := []struct {
		c    tree.RGB
		want bool
	}{
		{tree.RGB{R: 0, G: 0, B: 0}, true},
		{tree.RGB{R: 127, G: 0, B: 0}, true},
		{tree.RGB{R: 255, G: 255, B: 255}, false},
		{tree.RGB{R: 0, G: 255, B: 0}, false},
	}
	for _, tt := range tests {
		if got := dark(tt.c); got != tt.want {
			t.Errorf("dark(%v) = %v, want %v", tt.c, got, tt.want)
		}
	}
}

func TestNormalizeViewBox(t *testing.T) {
	in := []byte(`<svg width="100pt" height="50pt" viewBox="0.00 0.00 100.00 50.00" xmlns="http://www.w3.org/2000/svg"><g/></svg>`)
	out := string(normalizeViewBox(in))
	want := `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 100.00 50.00" width="100" height="50"><g/></svg>`
	if out != want {
		t.Errorf("normalizeViewBox() = %s, want %s", out, want)
	}

	plain := []byte(`<svg><g/></svg>`)
	if got := normalizeViewBox(plain); string(got) != string(plain) {
		t.Errorf("normalizeViewBox() changed svg without viewBox: %s", got)
	}
}

func TestRenderSVG(t *testing.T) {
	svg, err := RenderSVG(context.Background(), ToDOT(sample(t), Options{Detailed: true}))
	if err != nil {
		t.Fatalf("RenderSVG() error: %v", err)
	}
	if !strings.Contains(string(svg), `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 `) {
		t.Errorf("RenderSVG() output has unexpected root element")
	}
}
