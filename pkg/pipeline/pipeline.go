// Package pipeline provides the core plotting pipeline for transplot.
//
// This package implements the complete parse → colorize → render pipeline
// shared by the CLI commands. By centralizing this logic, all entry points
// behave identically: the same syntax detection, the same deterministic
// color assignment, the same artifact caching.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Parse: read a placement file and detect its syntax version
//  2. Colorize: assign deterministic fill colors to transistor groups
//  3. Render: generate output in various formats (SVG, PNG, PDF)
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, logger)
//	opts := pipeline.Options{
//	    Input:   "design.tp",
//	    Formats: []string{"svg"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/transplot/transplot/pkg/colormap"
	"github.com/transplot/transplot/pkg/config"
	"github.com/transplot/transplot/pkg/errors"
	"github.com/transplot/transplot/pkg/placement"
)

// DefaultPNGScale is the default raster supersampling factor for PNG output.
const DefaultPNGScale = 2.0

// Format constants for output formats.
const (
	FormatSVG = "svg"
	FormatPNG = "png"
	FormatPDF = "pdf"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG: true,
	FormatPNG: true,
	FormatPDF: true,
}

// Options contains all configuration for the plotting pipeline.
type Options struct {
	// Input is the path of the placement file to plot.
	Input string

	// Formats lists the artifact formats to produce. Defaults to SVG.
	Formats []string

	// Plot holds the rendering parameters. Nil means built-in defaults.
	Plot *config.Plot

	// PNGScale is the raster supersampling factor for PNG output.
	PNGScale float64

	// Refresh bypasses the artifact cache and overwrites cached entries.
	Refresh bool

	// Logger receives progress output. Defaults to a silent logger.
	Logger *log.Logger

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Model is the parsed placement.
	Model *placement.Model

	// ContentHash is the hash of the raw input file.
	ContentHash string

	// Colors maps qualifying group tags to their assigned fill colors.
	Colors map[string]colormap.Color

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Transistors int
	Groups      int
	ParseTime   time.Duration
	ColorTime   time.Duration
	RenderTime  time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	RenderHit bool // whether all artifacts came from cache
}

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidConfig,
			"invalid format: %q (must be one of: svg, png, pdf)", format)
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

// ValidateAndSetDefaults checks required fields and applies defaults.
// This method is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.Input == "" {
		return errors.New(errors.ErrCodeInvalidConfig, "input file is required")
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if o.Plot == nil {
		p := config.Default()
		o.Plot = &p
	}
	if err := o.Plot.Validate(); err != nil {
		return err
	}
	if o.PNGScale == 0 {
		o.PNGScale = DefaultPNGScale
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	o.validated = true
	return nil
}
