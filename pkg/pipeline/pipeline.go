// Package pipeline provides the chart pipeline shared by every entry point.
//
// This package implements the complete read → layout → render pipeline. The
// CLI and tests call it instead of wiring the tree, layout, styles and sink
// packages themselves, so all entry points behave the same.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Read: Import rows from a CSV, TSV or XLSX file, build the category
//     tree and aggregate values
//  2. Layout: Assign angles and ring radii, verify the tiling, assign colors
//  3. Render: Generate output in various formats (SVG, PNG, PDF, JSON)
//
// Every stage mutates the one tree owned by the run. A failing stage aborts
// the run; there is no partial output.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(logger)
//	opts := pipeline.DefaultOptions()
//	opts.Input = "budget.xlsx"
//	opts.Formats = []string{"svg", "pdf"}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
//
// Run individual stages:
//
//	root, rows, err := runner.Read(ctx, opts)
//	err = runner.Layout(ctx, root, opts)
//	artifacts, err := runner.Render(ctx, root, opts)
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/sunburst/pkg/errors"
	"github.com/matzehuels/sunburst/pkg/render/sunburst"
	"github.com/matzehuels/sunburst/pkg/render/sunburst/layout"
	"github.com/matzehuels/sunburst/pkg/render/sunburst/styles"
	"github.com/matzehuels/sunburst/pkg/tree"
)

// =============================================================================
// Default Values
// =============================================================================

// Visualization types.
const (
	VizTypeSunburst = "sunburst"
	VizTypeNodelink = "nodelink"
)

// DefaultVizType is the default visualization type.
const DefaultVizType = VizTypeSunburst

// DefaultScale is the PNG scale factor.
const DefaultScale = 2.0

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
	FormatJSON = "json"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatPNG:  true,
	FormatPDF:  true,
	FormatJSON: true,
}

// ValidVizTypes is the set of supported visualization types.
var ValidVizTypes = map[string]bool{
	VizTypeSunburst: true,
	VizTypeNodelink: true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the chart pipeline. It can be
// loaded from TOML, YAML or JSON with [LoadOptions].
//
// Start from [DefaultOptions]: zero values are kept where zero is a valid
// setting (start radius, lightness, empty background).
type Options struct {
	// Input options
	Input  string `toml:"input,omitempty" yaml:"input,omitempty" json:"input,omitempty"`
	Header bool   `toml:"header" yaml:"header" json:"header,omitempty"`
	Sheet  string `toml:"sheet,omitempty" yaml:"sheet,omitempty" json:"sheet,omitempty"`

	// Layout options
	VizType     string  `toml:"viz_type" yaml:"viz_type" json:"viz_type,omitempty"`
	RingWidth   float64 `toml:"ring_width" yaml:"ring_width" json:"ring_width,omitempty"`
	StartRadius float64 `toml:"start_radius" yaml:"start_radius" json:"start_radius"`

	// Color options
	Palette styles.Palette `toml:"palette" yaml:"palette" json:"palette"`

	// Render options
	Formats  []string       `toml:"formats" yaml:"formats" json:"formats,omitempty"`
	Title    string         `toml:"title,omitempty" yaml:"title,omitempty" json:"title,omitempty"`
	Scale    float64        `toml:"scale" yaml:"scale" json:"scale,omitempty"`
	Detailed bool           `toml:"detailed" yaml:"detailed" json:"detailed,omitempty"` // value and share in nodelink labels
	Scene    sunburst.Scene `toml:"scene" yaml:"scene" json:"scene"`

	// Runtime options (not serialized)
	Logger *log.Logger `toml:"-" yaml:"-" json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// DefaultOptions returns the stock configuration: 50px rings from radius
// 120 on a 1024x768 white canvas, evenly spread hues, SVG output.
func DefaultOptions() Options {
	scene := sunburst.DefaultScene()
	scene.CenterX, scene.CenterY = 0, 0 // centered on the canvas by SetRenderDefaults
	return Options{
		VizType:     DefaultVizType,
		RingWidth:   layout.DefaultRingWidth,
		StartRadius: layout.DefaultStartRadius,
		Palette:     styles.DefaultPalette(),
		Formats:     []string{FormatSVG},
		Scale:       DefaultScale,
		Scene:       scene,
	}
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Tree is the aggregated, laid-out and colored category tree.
	Tree *tree.Node

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	RowCount   int
	NodeCount  int
	Depth      int
	Total      float64
	ReadTime   time.Duration
	LayoutTime time.Duration
	RenderTime time.Duration
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: svg, png, pdf, json)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateVizType checks that a visualization type is valid.
func ValidateVizType(vizType string) error {
	if !ValidVizTypes[vizType] {
		return errors.New(errors.ErrCodeInvalidConfig, "invalid viz_type: %q (must be one of: sunburst, nodelink)", vizType)
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks required fields and applies defaults for the full pipeline.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForRead(); err != nil {
		return err
	}
	if err := o.ValidateForLayout(); err != nil {
		return err
	}
	if err := o.ValidateForRender(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// ValidateForRead checks the input settings.
func (o *Options) ValidateForRead() error {
	if o.Input == "" {
		return errors.New(errors.ErrCodeInvalidInput, "input file is required")
	}
	o.setLogger()
	return errors.ValidatePath(o.Input)
}

// SetLayoutDefaults sets default values for layout computation.
func (o *Options) SetLayoutDefaults() {
	if o.VizType == "" {
		o.VizType = DefaultVizType
	}
	if o.RingWidth == 0 {
		o.RingWidth = layout.DefaultRingWidth
	}
	o.setLogger()
}

// ValidateForLayout validates and sets defaults for layout computation.
func (o *Options) ValidateForLayout() error {
	o.SetLayoutDefaults()
	if err := ValidateVizType(o.VizType); err != nil {
		return err
	}
	if err := o.LayoutOptions().Validate(); err != nil {
		return err
	}
	return o.Palette.Validate()
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	s := &o.Scene
	if s.Width == 0 {
		s.Width = sunburst.DefaultWidth
	}
	if s.Height == 0 {
		s.Height = sunburst.DefaultHeight
	}
	// A zero center means "middle of the canvas".
	if s.CenterX == 0 && s.CenterY == 0 {
		s.CenterX, s.CenterY = float64(s.Width)/2, float64(s.Height)/2
	}
	if s.Stroke == "" {
		s.Stroke = sunburst.DefaultStroke
	}
	if s.Font.Family == "" {
		s.Font.Family = sunburst.DefaultFontFamily
	}
	if s.Font.Size == 0 {
		s.Font.Size = sunburst.DefaultFontSize
	}
	if s.Font.Color == "" {
		s.Font.Color = sunburst.DefaultFontColor
	}
	o.setLogger()
}

// ValidateForRender validates and sets defaults for rendering.
func (o *Options) ValidateForRender() error {
	o.SetLayoutDefaults()
	o.SetRenderDefaults()
	if err := ValidateVizType(o.VizType); err != nil {
		return err
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if !(o.Scale > 0) {
		return errors.New(errors.ErrCodeInvalidConfig, "scale must be positive, got %g", o.Scale)
	}
	return o.Scene.Validate()
}

// IsSunburst returns true if this is a sunburst visualization.
func (o *Options) IsSunburst() bool {
	return o.VizType == "" || o.VizType == VizTypeSunburst
}

// IsNodelink returns true if this is a nodelink visualization.
func (o *Options) IsNodelink() bool {
	return o.VizType == VizTypeNodelink
}

// LayoutOptions returns the ring geometry.
func (o *Options) LayoutOptions() layout.Options {
	return layout.Options{RingWidth: o.RingWidth, StartRadius: o.StartRadius}
}

func (o *Options) setLogger() {
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}
