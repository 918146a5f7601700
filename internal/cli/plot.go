package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/transplot/transplot/pkg/config"
	"github.com/transplot/transplot/pkg/pipeline"
)

// plotOpts holds the command-line flags for the plot command.
type plotOpts struct {
	output     string   // output file path (or base path for multiple formats)
	formats    []string // output formats: "svg", "png", "pdf"
	configPath string   // optional TOML config file
	scale      float64  // placement-unit divisor override
	seed       uint64   // palette-extension seed override
	noCache    bool     // disable the artifact cache
	refresh    bool     // bypass and overwrite cached artifacts
}

// plotCommand creates the plot command for rendering placement files.
//
// Default settings:
//   - format: svg
//   - scale: 50 (placement units per output unit)
//   - caching: enabled, keyed on file content and render parameters
func (c *CLI) plotCommand() *cobra.Command {
	var formatsStr string
	var opts plotOpts

	cmd := &cobra.Command{
		Use:   "plot [file]",
		Short: "Render a placement file as SVG, PNG or PDF",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(formatsStr)
			if err := pipeline.ValidateFormats(opts.formats); err != nil {
				return err
			}
			if cmd.Flags().Changed("scale") && opts.scale <= 0 {
				return fmt.Errorf("invalid scale: %v (must be positive)", opts.scale)
			}
			return c.runPlot(cmd.Context(), cmd, args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), png, pdf (comma-separated)")
	cmd.Flags().StringVar(&opts.configPath, "config", "", "TOML file with plot parameters")
	cmd.Flags().Float64Var(&opts.scale, "scale", 0, "placement units per output unit (overrides config)")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 0, "seed for palette-extension colors (overrides config)")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the artifact cache")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "re-render even when a cached artifact exists")

	return cmd
}

// runPlot executes the plot pipeline and writes each artifact to disk.
func (c *CLI) runPlot(ctx context.Context, cmd *cobra.Command, input string, opts *plotOpts) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	plot, err := loadPlot(cmd, opts)
	if err != nil {
		return err
	}

	runner, err := c.newRunner(opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	result, err := runner.Execute(ctx, pipeline.Options{
		Input:   input,
		Formats: opts.formats,
		Plot:    &plot,
		Refresh: opts.refresh,
		Logger:  logger,
	})
	if err != nil {
		printError("%v", err)
		return err
	}

	for _, format := range opts.formats {
		path := outputPath(opts.output, input, format, len(opts.formats) > 1)
		if err := writeArtifact(path, result.Artifacts[format]); err != nil {
			return err
		}
		printSuccess("%s %s", path, cacheMarker(result.CacheInfo.RenderHit))
	}

	printDetail("%s syntax, %d transistors, %d groups",
		result.Model.Version, result.Stats.Transistors, result.Stats.Groups)
	prog.done(fmt.Sprintf("Plotted %d transistors", result.Stats.Transistors))
	return nil
}

// loadPlot resolves the render parameters: config file if given, built-in
// defaults otherwise, with flag overrides applied on top.
func loadPlot(cmd *cobra.Command, opts *plotOpts) (config.Plot, error) {
	plot := config.Default()
	if opts.configPath != "" {
		loaded, err := config.Load(opts.configPath)
		if err != nil {
			return config.Plot{}, err
		}
		plot = loaded
	}
	if cmd.Flags().Changed("scale") {
		plot.Scale = opts.scale
	}
	if cmd.Flags().Changed("seed") {
		plot.Seed = opts.seed
	}
	return plot, plot.Validate()
}

// outputPath derives the destination for one artifact.
// For a single format, an explicit output path is used verbatim; otherwise
// the input path with the format extension.
func outputPath(output, input, format string, multi bool) string {
	if output != "" && !multi {
		return output
	}
	base := output
	if base == "" {
		base = strings.TrimSuffix(input, filepath.Ext(input))
	} else if ext := filepath.Ext(base); pipeline.ValidFormats[strings.TrimPrefix(ext, ".")] {
		base = strings.TrimSuffix(base, ext)
	}
	return base + "." + format
}

// writeArtifact writes data to path, overwriting any existing file.
func writeArtifact(path string, data []byte) error {
	out, err := openOutput(path)
	if err != nil {
		return err
	}
	defer out.Close()
	_, err = out.Write(data)
	return err
}
