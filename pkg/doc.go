// Package pkg provides the core libraries for transplot placement plotting.
//
// # Overview
//
// Transplot reads transistor-level chip placement files and renders them as
// die plots. The pkg directory is organized into three main areas:
//
//  1. [placement] - The placement file format: syntax detection and parsing
//  2. [colormap] - Deterministic color assignment for transistor groups
//  3. [render] - Scene construction and SVG/PNG/PDF output
//
// supported by [pipeline] (orchestration), [cache] (artifact caching),
// [config] (plot parameters), [errors] (structured error codes) and
// [observability] (instrumentation hooks).
//
// # Architecture
//
// The typical data flow through transplot:
//
//	Placement file (v1 or v2 syntax)
//	         ↓
//	    [placement] package (detect syntax, build model)
//	         ↓
//	    [colormap] package (assign group colors)
//	         ↓
//	    [render] package (scene + SVG, PNG/PDF conversion)
//	         ↓
//	    SVG/PNG/PDF output
//
// # Quick Start
//
// Parse a placement file and render it:
//
//	model, err := placement.ParseFile("design.tp")
//	if err != nil {
//	    return err
//	}
//	colors := colormap.New(nil, 42).Assign(model.GroupCounts)
//	scene := render.BuildScene(model, colors, config.Default())
//	svg := render.RenderSVG(scene)
//
// Or run the whole pipeline with caching:
//
//	runner := pipeline.NewRunner(cache, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{Input: "design.tp"})
package pkg
