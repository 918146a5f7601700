package render

import (
	"bytes"
	"fmt"
	"strings"
)

// RenderSVG writes the scene as an SVG document. Placement coordinates grow
// upward while SVG's y axis grows downward, so every shape is flipped
// against the viewport top edge here rather than with a transform, keeping
// the output easy to diff in tests.
func RenderSVG(s Scene) []byte {
	var buf bytes.Buffer

	if s.Viewport.Empty() {
		buf.WriteString(`<svg xmlns="http://www.w3.org/2000/svg" width="1" height="1"/>` + "\n")
		return buf.Bytes()
	}

	w, h := s.Viewport.Width(), s.Viewport.Height()
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`+"\n", w, h, w, h)
	buf.WriteString(`<rect width="100%" height="100%" fill="white"/>` + "\n")

	for _, r := range s.Rects {
		renderRect(&buf, s.Viewport, r)
	}
	for _, p := range s.Polylines {
		renderPolyline(&buf, s.Viewport, p)
	}
	for _, l := range s.Labels {
		renderLabel(&buf, s.Viewport, l)
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func renderRect(buf *bytes.Buffer, v Viewport, r Rect) {
	x := r.X - v.MinX
	y := v.MaxY - (r.Y + r.H) // axis flip

	fmt.Fprintf(buf, `<rect x="%.2f" y="%.2f" width="%.2f" height="%.2f"`, x, y, r.W, r.H)
	if r.Fill {
		fmt.Fprintf(buf, ` fill="%s" fill-opacity="%.2f"`, r.FillColor.Hex(), r.FillAlpha)
	} else {
		buf.WriteString(` fill="none"`)
	}
	if r.Stroke {
		fmt.Fprintf(buf, ` stroke="black" stroke-width="%.2f"`, r.StrokeWidth)
	}
	buf.WriteString("/>\n")
}

var textEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

func renderLabel(buf *bytes.Buffer, v Viewport, l Label) {
	fmt.Fprintf(buf, `<text x="%.2f" y="%.2f" font-size="%.2f" text-anchor="middle" dominant-baseline="middle">%s</text>`+"\n",
		l.X-v.MinX, v.MaxY-l.Y, l.Size, textEscaper.Replace(l.Text))
}

func renderPolyline(buf *bytes.Buffer, v Viewport, p Polyline) {
	if len(p.Points) == 0 {
		return
	}
	buf.WriteString(`<polyline points="`)
	for i, pt := range p.Points {
		if i > 0 {
			buf.WriteByte(' ')
		}
		fmt.Fprintf(buf, "%.2f,%.2f", pt.X-v.MinX, v.MaxY-pt.Y)
	}
	fmt.Fprintf(buf, `" fill="none" stroke="black" stroke-width="%.2f"/>`+"\n", p.Width)
}
