package pipeline

import (
	"context"
	"fmt"

	"github.com/matzehuels/sunburst/pkg/errors"
	"github.com/matzehuels/sunburst/pkg/render/nodelink"
	"github.com/matzehuels/sunburst/pkg/render/sunburst/sink"
	"github.com/matzehuels/sunburst/pkg/tree"
)

// Render generates output artifacts in the requested formats.
func Render(ctx context.Context, root *tree.Node, opts Options) (map[string][]byte, error) {
	opts.setLogger()
	render := renderSunburst
	if opts.IsNodelink() {
		render = renderNodelink
	}
	artifacts, err := render(ctx, root, opts)
	if err != nil {
		return nil, err
	}
	for _, format := range opts.Formats {
		opts.Logger.Debug("rendered", "viz", opts.VizType, "format", format, "bytes", len(artifacts[format]))
	}
	return artifacts, nil
}

// renderSunburst generates sunburst outputs.
func renderSunburst(ctx context.Context, root *tree.Node, opts Options) (map[string][]byte, error) {
	svgOpts := buildSVGOptions(opts)
	artifacts := make(map[string][]byte)

	for _, format := range opts.Formats {
		var data []byte
		var err error

		switch format {
		case FormatSVG:
			data, err = sink.RenderSVG(root, svgOpts...)
		case FormatPNG:
			data, err = sink.RenderPNG(ctx, root, sink.WithPNGSVGOptions(svgOpts...), sink.WithScale(opts.Scale))
		case FormatPDF:
			data, err = sink.RenderPDF(ctx, root, sink.WithPDFSVGOptions(svgOpts...))
		case FormatJSON:
			data, err = sink.RenderJSON(root, sink.WithJSONScene(opts.Scene))
		default:
			return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported sunburst format: %s", format)
		}

		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}

	return artifacts, nil
}

// renderNodelink generates nodelink outputs. JSON carries the same per-node
// data as for sunburst charts, since Graphviz positions are not stable output.
func renderNodelink(ctx context.Context, root *tree.Node, opts Options) (map[string][]byte, error) {
	dot := nodelink.ToDOT(root, nodelink.Options{Detailed: opts.Detailed, RootLabel: opts.Title})
	artifacts := make(map[string][]byte)

	for _, format := range opts.Formats {
		var data []byte
		var err error

		switch format {
		case FormatSVG:
			data, err = nodelink.RenderSVG(ctx, dot)
		case FormatPNG:
			data, err = nodelink.RenderPNG(ctx, dot, opts.Scale)
		case FormatPDF:
			data, err = nodelink.RenderPDF(ctx, dot)
		case FormatJSON:
			data, err = sink.RenderJSON(root, sink.WithJSONScene(opts.Scene))
		default:
			return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported nodelink format: %s", format)
		}

		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}

	return artifacts, nil
}

// buildSVGOptions builds SVG rendering options.
func buildSVGOptions(opts Options) []sink.SVGOption {
	svgOpts := []sink.SVGOption{sink.WithScene(opts.Scene)}
	if opts.Title != "" {
		svgOpts = append(svgOpts, sink.WithTitle(opts.Title))
	}
	return svgOpts
}
