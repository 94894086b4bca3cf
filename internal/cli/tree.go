package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/sunburst/pkg/io"
	"github.com/matzehuels/sunburst/pkg/pipeline"
	"github.com/matzehuels/sunburst/pkg/tree"
)

// treeCommand creates the tree command, which prints the aggregated
// hierarchy without drawing it.
func (c *CLI) treeCommand() *cobra.Command {
	var (
		configPath string
		export     string
		header     bool
		sheet      string
		maxDepth   int
	)

	cmd := &cobra.Command{
		Use:   "tree [file]",
		Short: "Print the aggregated category hierarchy",
		Long: `Print the aggregated category hierarchy with values and shares.

Interior values are the sums of their children. Use --export to write the
tree back out as carry-forward CSV, which also normalizes the row order.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := baseOptions(configPath)
			if err != nil {
				return err
			}
			opts.Input = args[0]
			if cmd.Flags().Changed("header") {
				opts.Header = header
			}
			if cmd.Flags().Changed("sheet") {
				opts.Sheet = sheet
			}
			return c.runTree(cmd.Context(), opts, export, maxDepth)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "config file (.toml, .yaml or .json)")
	cmd.Flags().StringVar(&export, "export", "", "write the tree as CSV to this path")
	cmd.Flags().BoolVar(&header, "header", false, "skip the first row")
	cmd.Flags().StringVar(&sheet, "sheet", "", "XLSX sheet name (default: active sheet)")
	cmd.Flags().IntVar(&maxDepth, "depth", 0, "limit printed levels (0 prints all)")
	cmd.ValidArgsFunction = completeInput

	return cmd
}

func (c *CLI) runTree(ctx context.Context, opts pipeline.Options, export string, maxDepth int) error {
	prog := newProgress(c.Logger)
	root, rows, err := c.newRunner().Read(ctx, opts)
	if err != nil {
		return err
	}
	prog.stage("Read %d rows", rows)

	fmt.Fprintln(stdout, StyleTitle.Render(opts.Input))
	printTree(root, maxDepth)
	printNewline()
	printKeyValue("total", fmt.Sprintf("%g", root.Value))
	printKeyValue("categories", fmt.Sprintf("%d", tree.Count(root)))
	printKeyValue("depth", fmt.Sprintf("%d", tree.MaxDepth(root)))

	if export != "" {
		if err := io.ExportCSV(root, export); err != nil {
			return err
		}
		printNewline()
		printSuccess("Exported tree")
		printFile(export)
	}
	return nil
}

// printTree prints every node below root as an indented line with its value
// and its share of the parent.
func printTree(root *tree.Node, maxDepth int) {
	tree.Walk(root, func(n *tree.Node) bool {
		if n.IsRoot() {
			return true
		}
		if maxDepth > 0 && n.Depth > maxDepth {
			return false
		}
		indent := strings.Repeat("  ", n.Depth-1)
		fmt.Fprintf(stdout, "%s%s %s %s\n",
			indent,
			StyleValue.Render(n.Name),
			StyleNumber.Render(fmt.Sprintf("%g", n.Value)),
			StyleDim.Render(share(n)))
		return true
	})
}

// share formats n's value as a percentage of its parent's.
func share(n *tree.Node) string {
	p := n.Parent()
	if p == nil || p.Value == 0 {
		return "(-)"
	}
	return fmt.Sprintf("(%.1f%%)", 100*n.Value/p.Value)
}
