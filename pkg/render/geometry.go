package render

import (
	"github.com/transplot/transplot/pkg/colormap"
	"github.com/transplot/transplot/pkg/config"
	"github.com/transplot/transplot/pkg/placement"
)

// pinSize is the pin marker side length in output units.
const pinSize = 4.0

// BuildScene generates the draw list for a model under the given color
// assignment and parameters. Geometry fields the input never set produce no
// shapes: rows need the die area, row height and row count; transistor
// rectangles need the site width and row height. A model with none of these
// yields a scene whose viewport is empty.
func BuildScene(m *placement.Model, colors map[string]colormap.Color, p config.Plot) Scene {
	s := Scene{Viewport: viewport(m, p)}

	s.Rects = append(s.Rects, rowRects(m, p)...)
	s.Rects = append(s.Rects, transistorRects(m, colors, p)...)
	s.Rects = append(s.Rects, macroRects(m, p)...)
	s.Rects = append(s.Rects, pinRects(m, p)...)
	s.Polylines = pathLines(m, p)
	s.Labels = macroLabels(m, p)

	return s
}

// viewport derives the visible region from the die area plus margins.
// Without a die area there is nothing to frame the plot with, so the
// viewport collapses and sinks emit an empty image.
func viewport(m *placement.Model, p config.Plot) Viewport {
	if m.DieArea == nil {
		return Viewport{}
	}
	d := *m.DieArea
	return Viewport{
		MinX: float64(d.XL-p.MarginX) / p.Scale,
		MinY: float64(d.YL-p.MarginY) / p.Scale,
		MaxX: float64(d.XH+p.MarginX) / p.Scale,
		MaxY: float64(d.YH+p.MarginY) / p.Scale,
	}
}

// rowRects outlines each placement row across the die width.
func rowRects(m *placement.Model, p config.Plot) []Rect {
	if m.DieArea == nil || m.RowHeight == nil || m.NumRows == nil {
		return nil
	}
	d := *m.DieArea
	rowH := float64(*m.RowHeight) / p.Scale
	x := float64(d.XL) / p.Scale
	y0 := float64(d.YL) / p.Scale
	w := float64(d.Width()) / p.Scale

	rects := make([]Rect, 0, *m.NumRows)
	for i := 0; i < *m.NumRows; i++ {
		rects = append(rects, Rect{
			X: x, Y: y0 + float64(i)*rowH, W: w, H: rowH,
			Stroke:      true,
			StrokeWidth: p.RowLineWidth,
		})
	}
	return rects
}

// transistorRects produces the diffusion and poly rectangles per transistor.
// The transistor footprint is one site wide and half a row tall; the
// diffusion strip shrinks vertically and centers, the poly strip shrinks
// horizontally and centers.
func transistorRects(m *placement.Model, colors map[string]colormap.Color, p config.Plot) []Rect {
	if m.SiteWidth == nil || m.RowHeight == nil {
		return nil
	}
	w := float64(*m.SiteWidth) / p.Scale
	h := float64(*m.RowHeight) / 2 / p.Scale

	diffY := h * (1 - p.DiffusionShrink) / 2
	diffH := h * p.DiffusionShrink
	polyX := w * (1 - p.PolyShrink) / 2
	polyW := w * p.PolyShrink

	rects := make([]Rect, 0, 2*len(m.Transistors))
	for _, t := range m.Transistors {
		x := float64(t.X) / p.Scale
		y := float64(t.Y) / p.Scale
		fill, alpha := transistorFill(t, colors, p)

		// Diffusion strip.
		rects = append(rects, Rect{
			X: x, Y: y + diffY, W: w, H: diffH,
			Fill: true, FillColor: fill, FillAlpha: alpha,
			Stroke: true, StrokeWidth: p.TransistorLineWidth,
		})
		// Poly strip.
		rects = append(rects, Rect{
			X: x + polyX, Y: y, W: polyW, H: h,
			Fill: true, FillColor: fill, FillAlpha: alpha,
			Stroke: true, StrokeWidth: p.TransistorLineWidth,
		})
	}
	return rects
}

// transistorFill picks the fill for a transistor: its group color when the
// group qualifies, the neutral fill otherwise, with per-kind opacities.
func transistorFill(t placement.Transistor, colors map[string]colormap.Color, p config.Plot) (colormap.Color, float64) {
	if c, ok := colors[t.Group]; ok {
		if t.Kind == placement.KindPMOS {
			return c, p.Alpha.PMOS
		}
		return c, p.Alpha.NMOS
	}
	if t.Kind == placement.KindPMOS {
		return colormap.Neutral, p.Alpha.InvPMOS
	}
	return colormap.Neutral, p.Alpha.InvNMOS
}

// macroRects outlines placed macro instances.
func macroRects(m *placement.Model, p config.Plot) []Rect {
	rects := make([]Rect, 0, len(m.Macros))
	for _, mc := range m.Macros {
		rects = append(rects, Rect{
			X: float64(mc.X) / p.Scale,
			Y: float64(mc.Y) / p.Scale,
			W: float64(mc.Width) / p.Scale,
			H: float64(mc.Height) / p.Scale,
			Stroke:      true,
			StrokeWidth: p.RowLineWidth,
		})
	}
	return rects
}

// macroLabels names each macro instance at the center of its rectangle.
func macroLabels(m *placement.Model, p config.Plot) []Label {
	labels := make([]Label, 0, len(m.Macros))
	for _, mc := range m.Macros {
		labels = append(labels, Label{
			X:    (float64(mc.X) + float64(mc.Width)/2) / p.Scale,
			Y:    (float64(mc.Y) + float64(mc.Height)/2) / p.Scale,
			Text: mc.Name,
			Size: pinSize,
		})
	}
	return labels
}

// pinRects marks pins with small filled squares centered on the pin location.
func pinRects(m *placement.Model, p config.Plot) []Rect {
	rects := make([]Rect, 0, len(m.Pins))
	for _, pin := range m.Pins {
		rects = append(rects, Rect{
			X: float64(pin.X)/p.Scale - pinSize/2,
			Y: float64(pin.Y)/p.Scale - pinSize/2,
			W: pinSize, H: pinSize,
			Fill: true, FillColor: colormap.Color{}, FillAlpha: 1,
		})
	}
	return rects
}

// pathLines converts routing paths to polylines, preserving point order.
// Empty paths draw nothing but keep their slot so ordering stays aligned
// with the source.
func pathLines(m *placement.Model, p config.Plot) []Polyline {
	lines := make([]Polyline, 0, len(m.Paths))
	for _, path := range m.Paths {
		pts := make([]Point, 0, len(path))
		for _, pt := range path {
			pts = append(pts, Point{X: float64(pt.X) / p.Scale, Y: float64(pt.Y) / p.Scale})
		}
		lines = append(lines, Polyline{Points: pts, Width: p.TransistorLineWidth})
	}
	return lines
}
