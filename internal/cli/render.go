package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/sunburst/pkg/errors"
	"github.com/matzehuels/sunburst/pkg/observability"
	"github.com/matzehuels/sunburst/pkg/pipeline"
)

// renderFlags holds the raw flag values of the render command. They are
// applied on top of the config file only when set on the command line.
type renderFlags struct {
	config      string
	output      string
	formats     string
	vizType     string
	header      bool
	sheet       string
	ringWidth   float64
	startRadius float64
	hues        []float64
	width       int
	height      int
	title       string
	scale       float64
	detailed    bool
	hideNarrow  bool
	background  string
	fontFamily  string
	fontSize    float64
}

// renderCommand creates the render command.
func (c *CLI) renderCommand() *cobra.Command {
	var flags renderFlags
	defaults := pipeline.DefaultOptions()

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a hierarchy as a sunburst chart",
		Long: `Render a hierarchy as a sunburst chart.

The input is a CSV, TSV or XLSX file with one row per leaf category. The
leading cells hold the category path, the last cell the value. A blank
cell repeats the label from the row above:

  Food,Fruit,12
  ,Vegetables,8
  Rent,,30

Settings are resolved from defaults, then --config, then flags.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := flags.options(cmd, args[0])
			if err != nil {
				return err
			}
			return c.runRender(cmd.Context(), opts, flags.output)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&flags.config, "config", "c", "", "config file (.toml, .yaml or .json)")
	f.StringVarP(&flags.output, "output", "o", "", "output file (single format, - for stdout) or base path (multiple)")
	f.StringVarP(&flags.formats, "format", "f", "", "output format(s): svg (default), png, pdf, json (comma-separated)")
	f.StringVarP(&flags.vizType, "type", "t", defaults.VizType, "visualization type: sunburst, nodelink")
	f.BoolVar(&flags.header, "header", false, "skip the first row")
	f.StringVar(&flags.sheet, "sheet", "", "XLSX sheet name (default: active sheet)")
	f.Float64Var(&flags.ringWidth, "ring-width", defaults.RingWidth, "radial thickness of each ring")
	f.Float64Var(&flags.startRadius, "start-radius", defaults.StartRadius, "inner radius of the first ring")
	f.Float64SliceVar(&flags.hues, "hues", nil, "top-level hues in [0,1), cycled (default: evenly spread)")
	f.IntVar(&flags.width, "width", defaults.Scene.Width, "canvas width")
	f.IntVar(&flags.height, "height", defaults.Scene.Height, "canvas height")
	f.StringVar(&flags.title, "title", "", "chart title")
	f.Float64Var(&flags.scale, "scale", defaults.Scale, "PNG scale factor")
	f.BoolVar(&flags.detailed, "detailed", false, "show value and share in nodelink labels")
	f.BoolVar(&flags.hideNarrow, "hide-narrow-labels", false, "omit labels wider than their wedge")
	f.StringVar(&flags.background, "background", defaults.Scene.Background, "background color, none for transparent")
	f.StringVar(&flags.fontFamily, "font-family", defaults.Scene.Font.Family, "label font family")
	f.Float64Var(&flags.fontSize, "font-size", defaults.Scene.Font.Size, "label font size")

	cmd.ValidArgsFunction = completeInput
	_ = cmd.RegisterFlagCompletionFunc("format", completeSet(pipeline.ValidFormats, true))
	_ = cmd.RegisterFlagCompletionFunc("type", completeSet(pipeline.ValidVizTypes, false))

	return cmd
}

// options resolves defaults, the config file and changed flags, in that order.
func (fl *renderFlags) options(cmd *cobra.Command, input string) (pipeline.Options, error) {
	opts, err := baseOptions(fl.config)
	if err != nil {
		return opts, err
	}
	opts.Input = input

	changed := cmd.Flags().Changed
	if changed("format") {
		opts.Formats = parseFormats(fl.formats)
		if err := pipeline.ValidateFormats(opts.Formats); err != nil {
			return opts, err
		}
	}
	if changed("type") {
		opts.VizType = fl.vizType
	}
	if changed("header") {
		opts.Header = fl.header
	}
	if changed("sheet") {
		opts.Sheet = fl.sheet
	}
	if changed("ring-width") {
		opts.RingWidth = fl.ringWidth
	}
	if changed("start-radius") {
		opts.StartRadius = fl.startRadius
	}
	if changed("hues") {
		opts.Palette.Hues = fl.hues
	}
	if changed("width") {
		opts.Scene.Width = fl.width
	}
	if changed("height") {
		opts.Scene.Height = fl.height
	}
	if changed("title") {
		opts.Title = fl.title
	}
	if changed("scale") {
		opts.Scale = fl.scale
	}
	if changed("detailed") {
		opts.Detailed = fl.detailed
	}
	if changed("hide-narrow-labels") {
		opts.Scene.HideNarrowLabels = fl.hideNarrow
	}
	if changed("background") {
		opts.Scene.Background = fl.background
	}
	if changed("font-family") {
		opts.Scene.Font.Family = fl.fontFamily
	}
	if changed("font-size") {
		opts.Scene.Font.Size = fl.fontSize
	}
	if fl.output == "-" && len(opts.Formats) > 1 {
		return opts, errors.New(errors.ErrCodeInvalidInput,
			"cannot write %d formats to stdout, pick one with -f or give -o a base path", len(opts.Formats))
	}
	return opts, nil
}

// runRender executes the pipeline and writes every artifact.
func (c *CLI) runRender(ctx context.Context, opts pipeline.Options, output string) error {
	prog := newProgress(c.Logger)

	spinner := newSpinner(ctx, fmt.Sprintf("Rendering %s...", opts.Input))
	spinner.Start()

	result, err := c.newRunner().Execute(ctx, opts)
	if err != nil {
		spinner.StopWithError("Render failed")
		return err
	}
	spinner.Stop()
	prog.stage("Rendered %s", opts.Input)

	paths, err := writeArtifacts(ctx, artifactWriteParams{
		artifacts: result.Artifacts,
		formats:   opts.Formats,
		input:     opts.Input,
		output:    output,
	})
	if err != nil {
		return err
	}

	if output == "-" {
		return nil
	}
	printSuccess("Rendered %s chart", opts.VizType)
	for _, p := range paths {
		printFile(p)
	}
	s := result.Stats
	if s.Total == 0 {
		printWarning("All values are zero, the chart has no visible wedges")
	}
	printStats(s.RowCount, s.NodeCount, s.Depth, s.Total)
	printNewline()
	printNextStep("Inspect", appName+" tree "+opts.Input)
	return nil
}

// artifactWriteParams describes one batch of rendered outputs.
type artifactWriteParams struct {
	artifacts map[string][]byte
	formats   []string
	input     string
	output    string
}

// writeArtifacts writes artifacts in format order and returns the paths.
// A single format goes to output verbatim (stdout for "-"); several formats
// share a base path derived from output or input.
func writeArtifacts(ctx context.Context, p artifactWriteParams) ([]string, error) {
	hooks := observability.Output()
	base := basePath(p.output, p.input)

	var paths []string
	for _, format := range p.formats {
		data, ok := p.artifacts[format]
		if !ok {
			continue
		}
		path := base + "." + format
		if len(p.formats) == 1 && p.output != "" {
			path = p.output
		}

		if err := writeFile(path, data); err != nil {
			hooks.OnWriteError(ctx, path, format, err)
			return paths, fmt.Errorf("write %s: %w", path, err)
		}
		hooks.OnWrite(ctx, path, format, len(data))
		if path != "-" {
			paths = append(paths, path)
		}
	}
	return paths, nil
}

func writeFile(path string, data []byte) error {
	out, err := openOutput(path)
	if err != nil {
		return err
	}
	if _, err := out.Write(data); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
