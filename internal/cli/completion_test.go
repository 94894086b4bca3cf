package cli

import (
	"slices"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/matzehuels/sunburst/pkg/pipeline"
)

func TestCompleteSet(t *testing.T) {
	tests := []struct {
		name       string
		set        map[string]bool
		list       bool
		toComplete string
		want       []string
	}{
		{"formats", pipeline.ValidFormats, true, "", []string{"json", "pdf", "png", "svg"}},
		{"second format", pipeline.ValidFormats, true, "svg,p", []string{"svg,json", "svg,pdf", "svg,png", "svg,svg"}},
		{"viz types", pipeline.ValidVizTypes, false, "", []string{"nodelink", "sunburst"}},
		{"viz type ignores commas", pipeline.ValidVizTypes, false, "a,", []string{"nodelink", "sunburst"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, dir := completeSet(tt.set, tt.list)(nil, nil, tt.toComplete)
			if !slices.Equal(got, tt.want) {
				t.Errorf("completions = %v, want %v", got, tt.want)
			}
			if dir&cobra.ShellCompDirectiveNoFileComp == 0 {
				t.Error("flag values should not complete files")
			}
			if noSpace := dir&cobra.ShellCompDirectiveNoSpace != 0; noSpace != tt.list {
				t.Errorf("NoSpace = %v, want %v", noSpace, tt.list)
			}
		})
	}
}

func TestCompleteInput(t *testing.T) {
	exts, dir := completeInput(nil, nil, "")
	if dir != cobra.ShellCompDirectiveFilterFileExt {
		t.Errorf("directive = %v, want FilterFileExt", dir)
	}
	if !slices.Contains(exts, "xlsx") {
		t.Errorf("extensions %v should include xlsx", exts)
	}
	if _, dir := completeInput(nil, []string{"budget.csv"}, ""); dir != cobra.ShellCompDirectiveNoFileComp {
		t.Errorf("second argument directive = %v, want NoFileComp", dir)
	}
}

func TestCompletionCommand(t *testing.T) {
	for shell := range completionScripts {
		t.Run(shell, func(t *testing.T) {
			out, err := run(t, "completion", shell)
			if err != nil {
				t.Fatalf("completion %s error: %v", shell, err)
			}
			if !strings.Contains(out, appName) {
				t.Errorf("completion %s script does not mention %s", shell, appName)
			}
		})
	}
	if _, err := run(t, "completion", "tcsh"); err == nil {
		t.Error("completion tcsh should fail")
	}
}
