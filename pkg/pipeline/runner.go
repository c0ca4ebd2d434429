package pipeline

import (
	"context"
	"time"

	"github.com/netlabtools/labviz/pkg/lab"
	"github.com/netlabtools/labviz/pkg/layout"
	"github.com/netlabtools/labviz/pkg/render"
)

// Run executes the full pipeline for the lab file at path.
// No partial artifacts are returned on error.
func Run(ctx context.Context, path string, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	logger := opts.Logger

	start := time.Now()
	l, err := lab.ParseFile(path)
	if err != nil {
		return nil, err
	}
	parseTime := time.Since(start)
	logger.Debugf("Parsed %d nodes, %d connections", l.NodeCount(), l.ConnectionCount())

	start = time.Now()
	layoutResult := layout.Compute(l, layout.Options{
		Width:  opts.Width,
		Height: opts.Height,
		Margin: opts.Margin,
	})
	layoutTime := time.Since(start)
	if layoutResult.Ring {
		logger.Debugf("Ring topology detected (%d routers)", layoutResult.Routers)
	} else {
		logger.Debugf("Using grid layout (%d routers)", layoutResult.Routers)
	}

	start = time.Now()
	artifacts, err := renderAll(ctx, l, opts)
	if err != nil {
		return nil, err
	}
	renderTime := time.Since(start)

	return &Result{
		Lab:       l,
		Layout:    layoutResult,
		Artifacts: artifacts,
		Stats: Stats{
			NodeCount:       l.NodeCount(),
			ConnectionCount: l.ConnectionCount(),
			ParseTime:       parseTime,
			LayoutTime:      layoutTime,
			RenderTime:      renderTime,
		},
	}, nil
}

// renderAll produces one artifact per requested format. The DOT string
// is built once and shared by the dot and png outputs.
func renderAll(ctx context.Context, l *lab.Lab, opts Options) (map[string][]byte, error) {
	artifacts := make(map[string][]byte, len(opts.Formats))
	var dot string

	for _, format := range opts.Formats {
		switch format {
		case FormatSVG:
			artifacts[format] = render.RenderSVG(l,
				render.WithSize(opts.Width, opts.Height),
				render.WithPalette(opts.Colors),
			)
		case FormatDOT:
			if dot == "" {
				dot = render.ToDOT(l)
			}
			artifacts[format] = []byte(dot)
		case FormatPNG:
			if dot == "" {
				dot = render.ToDOT(l)
			}
			png, err := render.RenderDOTPNG(ctx, dot)
			if err != nil {
				return nil, err
			}
			artifacts[format] = png
		}
	}
	return artifacts, nil
}
