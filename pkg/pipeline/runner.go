package pipeline

import (
	"context"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/transplot/transplot/pkg/cache"
	"github.com/transplot/transplot/pkg/colormap"
	"github.com/transplot/transplot/pkg/config"
	"github.com/transplot/transplot/pkg/errors"
	"github.com/transplot/transplot/pkg/observability"
	"github.com/transplot/transplot/pkg/placement"
	"github.com/transplot/transplot/pkg/render"
)

// Runner encapsulates pipeline execution with artifact caching.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Cache: c, Logger: logger}
}

// Execute runs the complete parse → colorize → render pipeline with caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	// The runner's logger must win over the validation default, which would
	// silence an unset Options.Logger with an io.Discard logger.
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	result := &Result{
		Artifacts: make(map[string][]byte),
	}

	// Stage 1: Parse
	parseStart := time.Now()
	model, data, err := r.parse(ctx, opts)
	if err != nil {
		return nil, err
	}
	result.Model = model
	result.ContentHash = cache.Hash(data)
	result.Stats.ParseTime = time.Since(parseStart)
	result.Stats.Transistors = len(model.Transistors)
	result.Stats.Groups = len(model.GroupCounts)

	opts.Logger.Info("parsed placement",
		"version", model.Version.String(),
		"transistors", result.Stats.Transistors,
		"groups", result.Stats.Groups,
		"duration", result.Stats.ParseTime)

	// Stage 2: Colorize
	colorStart := time.Now()
	assigner := colormap.New(opts.Plot.PaletteColors(), opts.Plot.Seed)
	result.Colors = assigner.Assign(model.GroupCounts)
	result.Stats.ColorTime = time.Since(colorStart)

	// Stage 3: Render
	renderStart := time.Now()
	artifacts, renderHit, err := r.renderWithCache(ctx, model, result.Colors, result.ContentHash, opts)
	if err != nil {
		return nil, err
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = renderHit

	opts.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"cached", renderHit,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// Parse reads and parses the input file without rendering.
func (r *Runner) Parse(ctx context.Context, opts Options) (*placement.Model, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	model, _, err := r.parse(ctx, opts)
	return model, err
}

func (r *Runner) parse(ctx context.Context, opts Options) (*placement.Model, []byte, error) {
	observability.Pipeline().OnParseStart(ctx, opts.Input)
	start := time.Now()

	data, err := os.ReadFile(opts.Input)
	if err != nil {
		if os.IsNotExist(err) {
			err = errors.Wrap(errors.ErrCodeFileNotFound, err, "placement file not found: %s", opts.Input)
		} else {
			err = errors.Wrap(errors.ErrCodeInternal, err, "read %s", opts.Input)
		}
		observability.Pipeline().OnParseComplete(ctx, opts.Input, "", 0, time.Since(start), err)
		return nil, nil, err
	}

	model, err := placement.Parse(string(data))
	if err != nil {
		observability.Pipeline().OnParseComplete(ctx, opts.Input, "", 0, time.Since(start), err)
		return nil, nil, err
	}

	observability.Pipeline().OnParseComplete(ctx, opts.Input, model.Version.String(),
		len(model.Transistors), time.Since(start), nil)
	return model, data, nil
}

// renderWithCache produces every requested format, serving from the artifact
// cache when the input content and render parameters are unchanged.
func (r *Runner) renderWithCache(ctx context.Context, model *placement.Model, colors map[string]colormap.Color, contentHash string, opts Options) (map[string][]byte, bool, error) {
	observability.Pipeline().OnRenderStart(ctx, opts.Formats)
	start := time.Now()

	keyOpts := artifactKeyOpts{Plot: *opts.Plot, PNGScale: opts.PNGScale}

	// Try to get all formats from cache.
	artifacts := make(map[string][]byte)
	if !opts.Refresh {
		allCached := true
		for _, format := range opts.Formats {
			key := cache.ArtifactKey(contentHash, format, keyOpts)
			data, hit, err := r.Cache.Get(ctx, key)
			if err != nil || !hit {
				observability.Cache().OnCacheMiss(ctx, "artifact")
				allCached = false
				break
			}
			observability.Cache().OnCacheHit(ctx, "artifact")
			artifacts[format] = data
		}
		if allCached && len(artifacts) == len(opts.Formats) {
			observability.Pipeline().OnRenderComplete(ctx, opts.Formats, time.Since(start), nil)
			return artifacts, true, nil
		}
	}

	rendered, err := r.renderAll(model, colors, opts)
	if err != nil {
		observability.Pipeline().OnRenderComplete(ctx, opts.Formats, time.Since(start), err)
		return nil, false, err
	}

	for format, data := range rendered {
		key := cache.ArtifactKey(contentHash, format, keyOpts)
		if err := r.Cache.Set(ctx, key, data, cache.TTLArtifact); err == nil {
			observability.Cache().OnCacheSet(ctx, "artifact", len(data))
		}
	}

	observability.Pipeline().OnRenderComplete(ctx, opts.Formats, time.Since(start), nil)
	return rendered, false, nil
}

// renderAll builds the scene once and converts it to every requested format.
func (r *Runner) renderAll(model *placement.Model, colors map[string]colormap.Color, opts Options) (map[string][]byte, error) {
	scene := render.BuildScene(model, colors, *opts.Plot)
	svg := render.RenderSVG(scene)

	artifacts := make(map[string][]byte)
	for _, format := range opts.Formats {
		switch format {
		case FormatSVG:
			artifacts[format] = svg
		case FormatPNG:
			data, err := render.ToPNG(svg, opts.PNGScale)
			if err != nil {
				return nil, err
			}
			artifacts[format] = data
		case FormatPDF:
			data, err := render.ToPDF(svg)
			if err != nil {
				return nil, err
			}
			artifacts[format] = data
		default:
			return nil, errors.New(errors.ErrCodeInvalidConfig, "unsupported format: %s", format)
		}
	}
	return artifacts, nil
}

// artifactKeyOpts is the render-parameter portion of an artifact cache key.
type artifactKeyOpts struct {
	Plot     config.Plot
	PNGScale float64
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
