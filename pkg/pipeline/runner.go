package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/sunburst/pkg/errors"
	"github.com/matzehuels/sunburst/pkg/observability"
	"github.com/matzehuels/sunburst/pkg/tree"
)

// Runner executes pipeline stages with logging and observability hooks.
//
// The Runner is stateless except for the logger - it doesn't store pipeline
// results. Multiple goroutines can safely use the same Runner with different
// options, as long as each run owns its own tree.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner. If logger is nil, log.Default() is used.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Execute runs the complete read → layout → render pipeline.
// Cancellation is checked between stages.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	logger := opts.Logger

	result := &Result{
		Artifacts: make(map[string][]byte),
	}

	// Stage 1: Read
	readStart := time.Now()
	root, rows, err := r.Read(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}
	result.Tree = root
	result.Stats.ReadTime = time.Since(readStart)
	result.Stats.RowCount = rows
	result.Stats.NodeCount = tree.Count(root)
	result.Stats.Depth = tree.MaxDepth(root)
	result.Stats.Total = root.Value

	logger.Info("read categories",
		"rows", rows,
		"nodes", result.Stats.NodeCount,
		"depth", result.Stats.Depth,
		"total", root.Value,
		"duration", result.Stats.ReadTime)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Stage 2: Layout
	layoutStart := time.Now()
	if err := r.Layout(ctx, root, opts); err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}
	result.Stats.LayoutTime = time.Since(layoutStart)

	logger.Info("computed layout",
		"rings", result.Stats.Depth,
		"duration", result.Stats.LayoutTime)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Stage 3: Render
	renderStart := time.Now()
	artifacts, err := r.Render(ctx, root, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)

	logger.Info("rendered outputs",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// Read imports the input and returns the aggregated tree and row count.
func (r *Runner) Read(ctx context.Context, opts Options) (*tree.Node, int, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateForRead(); err != nil {
		return nil, 0, err
	}

	hooks := observability.Pipeline()
	hooks.OnReadStart(ctx, opts.Input)
	start := time.Now()

	root, rows, err := Read(opts)
	if err != nil {
		hooks.OnReadComplete(ctx, opts.Input, rows, 0, time.Since(start), err)
		return nil, rows, err
	}

	hooks.OnReadComplete(ctx, opts.Input, rows, tree.Count(root), time.Since(start), nil)
	return root, rows, nil
}

// Layout assigns geometry and colors to root.
func (r *Runner) Layout(ctx context.Context, root *tree.Node, opts Options) error {
	r.applyLogger(&opts)
	if err := opts.ValidateForLayout(); err != nil {
		return err
	}

	hooks := observability.Pipeline()
	hooks.OnLayoutStart(ctx, opts.VizType, tree.Count(root))
	start := time.Now()

	err := Layout(root, opts)
	hooks.OnLayoutComplete(ctx, opts.VizType, time.Since(start), err)
	return err
}

// Render produces the requested artifacts from a laid-out tree.
func (r *Runner) Render(ctx context.Context, root *tree.Node, opts Options) (map[string][]byte, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateForRender(); err != nil {
		return nil, err
	}
	if root == nil {
		return nil, errors.New(errors.ErrCodeInternal, "render: nil tree")
	}

	hooks := observability.Pipeline()
	hooks.OnRenderStart(ctx, opts.Formats)
	start := time.Now()

	artifacts, err := Render(ctx, root, opts)
	hooks.OnRenderComplete(ctx, opts.Formats, time.Since(start), err)
	if err != nil {
		return nil, err
	}
	return artifacts, nil
}

// applyLogger sets the runner's logger on options if not already set. It
// must run before validation, which falls back to a discarding logger.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
