package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/matzehuels/ganttcal/pkg/calendar"
	"github.com/matzehuels/ganttcal/pkg/observability"
	"github.com/matzehuels/ganttcal/pkg/render/sink"
	"github.com/matzehuels/ganttcal/pkg/render/styles"
)

// Render generates output artifacts in the requested formats.
func Render(ctx context.Context, p calendar.Plan, opts Options) (map[string][]byte, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, err
	}
	hooks := observability.Pipeline()
	hooks.OnRenderStart(ctx, opts.Formats)
	start := time.Now()

	artifacts, err := renderFormats(ctx, p, opts)
	hooks.OnRenderComplete(ctx, opts.Formats, time.Since(start), err)
	return artifacts, err
}

func renderFormats(ctx context.Context, p calendar.Plan, opts Options) (map[string][]byte, error) {
	svgOpts, err := buildSVGOptions(opts)
	if err != nil {
		return nil, err
	}

	artifacts := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		var data []byte
		var err error

		switch format {
		case FormatSVG:
			data = sink.RenderSVG(p, svgOpts...)
		case FormatJSON:
			data, err = sink.RenderJSON(p,
				sink.WithJSONStyle(opts.Style),
				sink.WithJSONLocale(opts.Locale),
				sink.WithJSONRange(opts.Start, opts.End))
		case FormatPDF:
			data, err = sink.RenderPDF(ctx, p, sink.WithPDFSVGOptions(svgOpts...))
		case FormatPNG:
			data, err = sink.RenderPNG(ctx, p, sink.WithPNGSVGOptions(svgOpts...), sink.WithScale(opts.Scale))
		default:
			return nil, fmt.Errorf("unsupported format: %s", format)
		}

		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}
	return artifacts, nil
}

// buildSVGOptions resolves the style, color overrides and font.
func buildSVGOptions(opts Options) ([]sink.SVGOption, error) {
	palette, err := styles.LookupPalette(opts.Style)
	if err != nil {
		return nil, err
	}
	return []sink.SVGOption{
		sink.WithStyle(palette.With(opts.Colors)),
		sink.WithFont(opts.Font()),
	}, nil
}
