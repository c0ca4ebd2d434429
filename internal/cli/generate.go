package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/netlabtools/labviz/pkg/config"
	"github.com/netlabtools/labviz/pkg/pipeline"
)

// outputSuffix is appended to the input basename when no output path is
// given: lab.conf → lab_topology.svg.
const outputSuffix = "_topology"

// generateOpts holds the command-line flags for the generate command.
type generateOpts struct {
	output     string   // output file path (derived from input if empty)
	formats    []string // output formats: svg, dot, png
	width      float64  // canvas width in pixels
	height     float64  // canvas height in pixels
	margin     float64  // canvas margin in pixels
	configFile string   // optional TOML render config
}

// newGenerateCmd creates the generate command running the full pipeline.
// Flags override values from --config; both override the defaults
// (1000x800 canvas, 50px margin, SVG output).
func newGenerateCmd() *cobra.Command {
	var formatsStr string
	opts := generateOpts{}

	cmd := &cobra.Command{
		Use:   "generate <lab.conf>",
		Short: "Generate a network topology diagram from a lab.conf file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(formatsStr)
			if err := pipeline.ValidateFormats(opts.formats); err != nil {
				return err
			}
			return runGenerate(cmd.Context(), args[0], cmd, &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: <input>_topology.<format>)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), dot, png (comma-separated)")
	cmd.Flags().Float64VarP(&opts.width, "width", "w", 0, "canvas width (default 1000)")
	cmd.Flags().Float64VarP(&opts.height, "height", "H", 0, "canvas height (default 800)")
	cmd.Flags().Float64Var(&opts.margin, "margin", 0, "canvas margin (default 50)")
	cmd.Flags().StringVarP(&opts.configFile, "config", "c", "", "TOML render config file")

	return cmd
}

// parseFormats parses the --format flag into a slice of output formats.
// If empty, defaults to ["svg"].
func parseFormats(s string) []string {
	if s == "" {
		return []string{pipeline.FormatSVG}
	}
	return strings.Split(s, ",")
}

// buildOptions merges defaults, config file, and flags into pipeline
// options. Explicitly set flags win over the config file.
func buildOptions(cmd *cobra.Command, opts *generateOpts) (pipeline.Options, error) {
	cfg := config.Default()
	if opts.configFile != "" {
		var err error
		cfg, err = config.Load(opts.configFile)
		if err != nil {
			return pipeline.Options{}, err
		}
	}

	po := pipeline.Options{
		Width:   cfg.Canvas.Width,
		Height:  cfg.Canvas.Height,
		Margin:  cfg.Canvas.Margin,
		Colors:  cfg.Colors,
		Formats: opts.formats,
	}
	if cmd.Flags().Changed("width") {
		po.Width = opts.width
	}
	if cmd.Flags().Changed("height") {
		po.Height = opts.height
	}
	if cmd.Flags().Changed("margin") {
		po.Margin = opts.margin
	}
	return po, nil
}

// runGenerate executes the pipeline and writes one file per format.
func runGenerate(ctx context.Context, input string, cmd *cobra.Command, opts *generateOpts) error {
	logger := loggerFromContext(ctx)
	logger.Infof("Parsing %s", input)

	po, err := buildOptions(cmd, opts)
	if err != nil {
		return err
	}
	po.Logger = logger

	prog := newProgress(logger)
	result, err := pipeline.Run(ctx, input, po)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Generated diagram for %d nodes and %d connections",
		result.Stats.NodeCount, result.Stats.ConnectionCount))

	for _, format := range opts.formats {
		path := outputPath(opts.output, input, format, len(opts.formats) > 1)
		if err := writeArtifact(path, result.Artifacts[format]); err != nil {
			return err
		}
		logger.Infof("Wrote %s", path)
	}

	printSummary(result)
	return nil
}

// outputPath derives the output file path for a format.
// An explicit output is used verbatim for a single format; with multiple
// formats its extension is replaced per format. Without an output the
// path is <input base>_topology.<format>.
func outputPath(output, input, format string, multi bool) string {
	if output != "" {
		if !multi {
			return output
		}
		return strings.TrimSuffix(output, filepath.Ext(output)) + "." + format
	}
	base := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
	return base + outputSuffix + "." + format
}

// writeArtifact writes data to path, creating or truncating the file.
func writeArtifact(path string, data []byte) error {
	out, err := openOutput(path)
	if err != nil {
		return err
	}
	defer out.Close()
	_, err = out.Write(data)
	return err
}

// nopCloser wraps an io.Writer with a no-op Close method.
type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

// openOutput returns a WriteCloser for the given path, or stdout when
// path is "-".
func openOutput(path string) (io.WriteCloser, error) {
	if path == "-" {
		return nopCloser{os.Stdout}, nil
	}
	return os.Create(path)
}
