package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/wedgeplot/pkg/errors"
	"github.com/matzehuels/wedgeplot/pkg/magnet"
	"github.com/matzehuels/wedgeplot/pkg/observability"
	"github.com/matzehuels/wedgeplot/pkg/pipeline"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output  string // output file (single format) or base path (multiple)
	formats string // comma-separated output formats
	pipeline.Options
}

// renderCommand creates the render command.
//
// Without an argument the built-in Magnet IV preset is rendered, so
// `wedgeplot render --mode full` works out of the box.
func (c *CLI) renderCommand() *cobra.Command {
	opts := renderOpts{
		Options: pipeline.Options{
			Mode:  pipeline.DefaultMode,
			Style: pipeline.DefaultStyle,
			Width: pipeline.DefaultWidth,
			Scale: pipeline.DefaultScale,
		},
	}

	cmd := &cobra.Command{
		Use:   "render [config.toml]",
		Short: "Render a magnet layout to SVG, PNG, PDF or JSON",
		Long: `Render a segmented annular magnet layout.

The configuration is read from a TOML file (see "wedgeplot init"). Without a
file the built-in Magnet IV preset is used.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Formats = parseFormats(opts.formats)
			if err := pipeline.ValidateFormats(opts.Formats); err != nil {
				return err
			}
			var input string
			if len(args) == 1 {
				input = args[0]
			}
			return c.runRender(cmd.Context(), input, &opts)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	f.StringVarP(&opts.formats, "format", "f", "", "output format(s): svg (default), png, pdf, json (comma-separated)")
	f.StringVar(&opts.Mode, "mode", opts.Mode, "diagram mode: quadrant, full")
	f.StringVar(&opts.Style, "style", opts.Style, "wedge style: outline, filled")
	f.Float64Var(&opts.Width, "width", opts.Width, "canvas width in pixels")
	f.Float64Var(&opts.Scale, "scale", opts.Scale, "PNG pixel density")
	f.StringVar(&opts.Title, "title", "", "document title")
	f.BoolVar(&opts.NoArrows, "no-arrows", false, "omit magnetisation arrows")
	f.BoolVar(&opts.NoLabels, "no-labels", false, "omit width and orientation labels")
	f.BoolVar(&opts.NoBrackets, "no-brackets", false, "omit angular brackets")
	f.BoolVar(&opts.NoAnnotations, "no-annotations", false, "omit the legend and caption")
	f.BoolVar(&opts.NoAxes, "no-axes", false, "omit axes and tick labels")

	return cmd
}

// runRender executes the pipeline and writes one file per format.
func (c *CLI) runRender(ctx context.Context, input string, opts *renderOpts) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)
	runner := c.newRunner()

	po := opts.Options
	po.Logger = logger

	var (
		result *pipeline.Result
		err    error
	)
	if input == "" {
		logger.Infof("Rendering built-in %s preset", presetName)
		po.Source = presetName
		result, err = runner.Execute(ctx, magnet.MagnetIV(), po)
	} else {
		logger.Infof("Rendering %s", input)
		result, err = runner.ExecuteFile(ctx, input, po)
	}
	if err != nil {
		return err
	}

	paths := outputPaths(opts.output, input, po.Formats)
	for _, format := range po.Formats {
		if err := writeArtifact(ctx, format, paths[format], result.Artifacts[format]); err != nil {
			return err
		}
	}

	prog.done(result.Diagram.Mode, len(po.Formats), result.Stats)
	printSuccess("Rendered %s diagram: %s sectors, %s primitives",
		result.Diagram.Mode,
		StyleNumber.Render(fmt.Sprint(result.Stats.Sectors)),
		StyleNumber.Render(fmt.Sprint(result.Stats.Primitives)))
	for _, format := range po.Formats {
		printFile(paths[format])
	}
	return nil
}

func writeArtifact(ctx context.Context, format, path string, data []byte) error {
	hooks := observability.Output()
	if err := errors.ValidateOutputPath(path); err != nil {
		hooks.OnWriteError(ctx, format, path, err)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		hooks.OnWriteError(ctx, format, path, err)
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "write %s", path)
	}
	hooks.OnWrite(ctx, format, path, len(data))
	return nil
}

// outputPaths maps each format to its destination. A single format written
// with -o goes exactly to that path; otherwise every format gets
// base + "." + format.
func outputPaths(output, input string, formats []string) map[string]string {
	paths := make(map[string]string, len(formats))
	if output != "" && len(formats) == 1 {
		paths[formats[0]] = output
		return paths
	}
	base := basePath(output, input)
	for _, f := range formats {
		paths[f] = base + "." + f
	}
	return paths
}

// basePath derives the base output path from the output and input paths.
// If output is empty, it strips the extension from input, falling back to
// the preset name. A known format extension on output is stripped.
func basePath(output, input string) string {
	if output == "" {
		if input == "" {
			return presetName
		}
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := filepath.Ext(output)
	if slices.Contains(pipeline.Formats, strings.TrimPrefix(ext, ".")) {
		return strings.TrimSuffix(output, ext)
	}
	return output
}
