// Package pipeline wires the full lab-to-diagram transform:
// parse → classify → layout → render.
//
// Both the generate command and the preview server run the same
// pipeline, so defaults and validation live here rather than in the CLI.
//
//	opts := pipeline.Options{Formats: []string{pipeline.FormatSVG}}
//	result, err := pipeline.Run(ctx, "lab.conf", opts)
//	svg := result.Artifacts[pipeline.FormatSVG]
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/netlabtools/labviz/pkg/errors"
	"github.com/netlabtools/labviz/pkg/lab"
	"github.com/netlabtools/labviz/pkg/layout"
	"github.com/netlabtools/labviz/pkg/render"
)

// Output format identifiers.
const (
	FormatSVG = "svg"
	FormatDOT = "dot"
	FormatPNG = "png"
)

// ValidFormats is the set of supported output formats. PNG and DOT use
// the Graphviz node-link projection; SVG uses the native layout.
var ValidFormats = map[string]bool{
	FormatSVG: true,
	FormatDOT: true,
	FormatPNG: true,
}

// ValidateFormat checks that a format is supported.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: svg, dot, png)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are supported.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// Options configures a pipeline run. Zero values fall back to defaults.
type Options struct {
	// Canvas geometry.
	Width  float64
	Height float64
	Margin float64

	// Colors overrides the connection palette; empty entries keep the
	// stock colors.
	Colors render.Palette

	// Formats lists the artifacts to render. Defaults to ["svg"].
	Formats []string

	// Logger receives progress output. Defaults to a discard logger.
	Logger *log.Logger
}

// ValidateAndSetDefaults normalizes the options in place.
func (o *Options) ValidateAndSetDefaults() error {
	if o.Width == 0 {
		o.Width = layout.DefaultWidth
	}
	if o.Height == 0 {
		o.Height = layout.DefaultHeight
	}
	if o.Margin == 0 {
		o.Margin = layout.DefaultMargin
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return ValidateFormats(o.Formats)
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Lab is the parsed, classified graph.
	Lab *lab.Lab

	// Layout reports which placement strategy was used.
	Layout layout.Result

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains counts and per-stage timing.
	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	NodeCount       int
	ConnectionCount int
	ParseTime       time.Duration
	LayoutTime      time.Duration
	RenderTime      time.Duration
}
