package cli

import (
	"io"
	"maps"
	"slices"
	"strings"

	"github.com/spf13/cobra"
)

// inputExtensions are the file types the importer recognizes.
var inputExtensions = []string{"csv", "txt", "tsv", "tab", "xlsx", "xlsm"}

// completionScripts maps each supported shell to its script generator.
var completionScripts = map[string]func(*cobra.Command, io.Writer) error{
	"bash":       func(root *cobra.Command, w io.Writer) error { return root.GenBashCompletionV2(w, true) },
	"zsh":        (*cobra.Command).GenZshCompletion,
	"fish":       func(root *cobra.Command, w io.Writer) error { return root.GenFishCompletion(w, true) },
	"powershell": (*cobra.Command).GenPowerShellCompletionWithDesc,
}

// completionCommand prints a completion script. Completing "sunburst render"
// offers CSV, TSV and XLSX files and the --format and --type values.
func (c *CLI) completionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "completion bash|zsh|fish|powershell",
		Short: "Print a shell completion script",
		Long: `Print a shell completion script for sunburst.

  sunburst completion bash > /etc/bash_completion.d/sunburst
  sunburst completion zsh > "${fpath[1]}/_sunburst"
  sunburst completion fish > ~/.config/fish/completions/sunburst.fish
  sunburst completion powershell >> $PROFILE

Start a new shell afterwards.`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			return completionScripts[args[0]](cmd.Root(), cmd.OutOrStdout())
		},
	}
}

// completeInput offers input files for the single positional argument.
func completeInput(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return inputExtensions, cobra.ShellCompDirectiveFilterFileExt
}

// completeSet offers the sorted keys of set. With list, the value is a
// comma-separated list and only its last item is completed.
func completeSet(set map[string]bool, list bool) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(_ *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		var prefix string
		if i := strings.LastIndex(toComplete, ","); list && i >= 0 {
			prefix = toComplete[:i+1]
		}
		var out []string
		for _, v := range slices.Sorted(maps.Keys(set)) {
			out = append(out, prefix+v)
		}
		if list {
			return out, cobra.ShellCompDirectiveNoFileComp | cobra.ShellCompDirectiveNoSpace
		}
		return out, cobra.ShellCompDirectiveNoFileComp
	}
}
