// Package render turns a placement model and a group color assignment into
// image artifacts. It is a thin consumer of the parser and colormap
// packages: rectangle generation is pure and unit-testable, the SVG sink
// writes the scene out, and PNG/PDF conversion shells out to rsvg-convert.
package render

import "github.com/transplot/transplot/pkg/colormap"

// Rect is one axis-aligned rectangle in scaled placement coordinates
// (y grows upward; the SVG sink flips the axis).
type Rect struct {
	X, Y, W, H float64

	Fill      bool
	FillColor colormap.Color
	FillAlpha float64

	Stroke      bool
	StrokeWidth float64
}

// Point is a scaled coordinate pair.
type Point struct {
	X, Y float64
}

// Polyline is an open path drawn in input order.
type Polyline struct {
	Points []Point
	Width  float64
}

// Label is a text annotation anchored at its center.
type Label struct {
	X, Y float64
	Text string
	Size float64
}

// Viewport is the visible region in scaled placement coordinates.
type Viewport struct {
	MinX, MinY, MaxX, MaxY float64
}

// Width returns the horizontal extent of the viewport.
func (v Viewport) Width() float64 { return v.MaxX - v.MinX }

// Height returns the vertical extent of the viewport.
func (v Viewport) Height() float64 { return v.MaxY - v.MinY }

// Empty reports whether the viewport has no area to draw.
func (v Viewport) Empty() bool { return v.Width() <= 0 || v.Height() <= 0 }

// Scene is everything the sinks need, in draw order: rectangles first
// (rows, then transistors, then macros, then pins), then polylines, labels
// on top.
type Scene struct {
	Viewport  Viewport
	Rects     []Rect
	Polylines []Polyline
	Labels    []Label
}
