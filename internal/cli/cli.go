// Package cli implements the sunburst command-line interface.
//
// The CLI is built on cobra and wraps the [pipeline] package: every command
// resolves a [pipeline.Options] from defaults, an optional config file and
// flags, in that order, and hands it to a [pipeline.Runner].
//
// # Commands
//
//   - render: Draw a CSV, TSV or XLSX hierarchy as SVG, PNG, PDF or JSON
//   - tree: Print the aggregated hierarchy, optionally exporting it as CSV
//   - config: Print the effective configuration as TOML
//   - completion: Generate shell completion scripts
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging through
// charmbracelet/log. Status lines go to stdout, log lines to stderr.
//
// [pipeline]: github.com/matzehuels/sunburst/pkg/pipeline
// [pipeline.Options]: github.com/matzehuels/sunburst/pkg/pipeline.Options
// [pipeline.Runner]: github.com/matzehuels/sunburst/pkg/pipeline.Runner
package cli

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/sunburst/pkg/buildinfo"
	"github.com/matzehuels/sunburst/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for display.
const appName = "sunburst"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Sunburst draws hierarchical data as concentric rings",
		Long:         `Sunburst reads a category hierarchy from CSV, TSV or XLSX rows and draws it as a sunburst chart: every level is a ring, every category a wedge sized by its value.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.renderCommand())
	root.AddCommand(c.treeCommand())
	root.AddCommand(c.configCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner() *pipeline.Runner {
	return pipeline.NewRunner(c.Logger)
}

// =============================================================================
// Options Helpers
// =============================================================================

// baseOptions returns the defaults, overlaid with the config file if one is
// given.
func baseOptions(configPath string) (pipeline.Options, error) {
	if configPath == "" {
		return pipeline.DefaultOptions(), nil
	}
	return pipeline.LoadOptions(configPath)
}

// parseFormats parses a comma-separated format string into a slice.
// Whitespace around entries is ignored and empty entries are dropped.
func parseFormats(s string) []string {
	var formats []string
	for _, f := range strings.Split(s, ",") {
		if f = strings.TrimSpace(f); f != "" {
			formats = append(formats, f)
		}
	}
	return formats
}

// basePath derives the base output path from the output and input file paths.
// If output is empty, it strips the extension from input.
// If output has a format extension (.svg, .pdf, etc.), it strips that extension.
func basePath(output, input string) string {
	if output == "" {
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := filepath.Ext(output)
	if pipeline.ValidFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// nopCloser wraps an io.Writer with a no-op Close method.
type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

// openOutput returns a WriteCloser for the given path.
// If path is empty or "-", it returns os.Stdout wrapped in nopCloser.
// Otherwise, it creates the file at path, overwriting if it exists.
func openOutput(path string) (io.WriteCloser, error) {
	if path == "" || path == "-" {
		return nopCloser{os.Stdout}, nil
	}
	return os.Create(path)
}
