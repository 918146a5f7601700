package render

import (
	"strings"
	"testing"

	"github.com/transplot/transplot/pkg/colormap"
	"github.com/transplot/transplot/pkg/config"
	"github.com/transplot/transplot/pkg/placement"
)

func testModel(t *testing.T, input string) *placement.Model {
	t.Helper()
	m, err := placement.Parse(input)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	return m
}

func TestBuildSceneViewport(t *testing.T) {
	m := testModel(t, "DIEAREA 0 0 5000 4000\n")
	p := config.Default() // scale 50, margin 2000

	s := BuildScene(m, nil, p)
	want := Viewport{MinX: -40, MinY: -40, MaxX: 140, MaxY: 120}
	if s.Viewport != want {
		t.Errorf("Viewport = %+v, want %+v", s.Viewport, want)
	}
}

func TestBuildSceneRows(t *testing.T) {
	m := testModel(t, "DIEAREA 0 0 5000 4000\nROWHEIGHT 200\nROWS 3\n")
	p := config.Default()

	s := BuildScene(m, nil, p)
	if len(s.Rects) != 3 {
		t.Fatalf("len(Rects) = %d, want 3 row outlines", len(s.Rects))
	}
	for i, r := range s.Rects {
		if r.Fill {
			t.Errorf("row %d should be outline-only", i)
		}
		if r.W != 100 || r.H != 4 {
			t.Errorf("row %d size = %vx%v, want 100x4", i, r.W, r.H)
		}
		if wantY := float64(i) * 4; r.Y != wantY {
			t.Errorf("row %d Y = %v, want %v", i, r.Y, wantY)
		}
	}
}

func TestBuildSceneSkipsUnsetGeometry(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"NoDieArea", "ROWHEIGHT 200\nROWS 3\nSITEWIDTH 40\n"},
		{"NoRowHeight", "DIEAREA 0 0 100 100\nROWS 3\nSITEWIDTH 40\n"},
		{"NoRows", "DIEAREA 0 0 100 100\nROWHEIGHT 200\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := BuildScene(testModel(t, tt.input), nil, config.Default())
			if len(s.Rects) != 0 {
				t.Errorf("len(Rects) = %d, want 0: unset geometry means nothing to render", len(s.Rects))
			}
		})
	}
}

func TestBuildSceneTransistors(t *testing.T) {
	input := `DIEAREA 0 0 5000 4000
ROWHEIGHT 200
SITEWIDTH 50
TRANSISTOR T1 100 0 0 NMOS g1
TRANSISTOR T2 200 0 0 PMOS g2
`
	m := testModel(t, input)
	colors := map[string]colormap.Color{"g1": {R: 255}}
	p := config.Default()

	s := BuildScene(m, colors, p)
	// Two rectangles (diffusion + poly) per transistor.
	if len(s.Rects) != 4 {
		t.Fatalf("len(Rects) = %d, want 4", len(s.Rects))
	}

	diff, poly := s.Rects[0], s.Rects[1]

	// Footprint: one site wide (50/50 = 1), half a row tall (100/50 = 2).
	if diff.W != 1 || poly.H != 2 {
		t.Errorf("footprint = %vx%v, want 1x2", diff.W, poly.H)
	}
	// Diffusion shrinks vertically and centers: height 1, offset 0.5.
	if diff.H != 1 || diff.Y != 0.5 {
		t.Errorf("diffusion = H %v at Y %v, want 1 at 0.5", diff.H, diff.Y)
	}
	// Poly shrinks horizontally and centers: width 0.2, offset 0.4 from x=2.
	if poly.W != 0.2 || poly.X != 2.4 {
		t.Errorf("poly = W %v at X %v, want 0.2 at 2.4", poly.W, poly.X)
	}

	// g1 qualifies: colored at NMOS alpha.
	if diff.FillColor != (colormap.Color{R: 255}) || diff.FillAlpha != p.Alpha.NMOS {
		t.Errorf("colored fill = %v/%v, want red at %v", diff.FillColor, diff.FillAlpha, p.Alpha.NMOS)
	}
	// g2 has no color: neutral fill at the inverter PMOS alpha.
	if s.Rects[2].FillColor != colormap.Neutral || s.Rects[2].FillAlpha != p.Alpha.InvPMOS {
		t.Errorf("neutral fill = %v/%v, want %v at %v",
			s.Rects[2].FillColor, s.Rects[2].FillAlpha, colormap.Neutral, p.Alpha.InvPMOS)
	}
}

func TestBuildScenePinsMacrosPaths(t *testing.T) {
	input := `DIEAREA 0 0 5000 4000
PIN clk 100 100 net_clk
SDC s0 RAM32 500 500 1000 500
PATH ( 0 0 ) ( 100 0 )
PATH
`
	s := BuildScene(testModel(t, input), nil, config.Default())

	if len(s.Rects) != 2 {
		t.Fatalf("len(Rects) = %d, want macro + pin", len(s.Rects))
	}
	macro := s.Rects[0]
	if macro.W != 20 || macro.H != 10 || macro.Fill {
		t.Errorf("macro = %+v, want 20x10 outline", macro)
	}
	pin := s.Rects[1]
	if pin.W != pinSize || !pin.Fill {
		t.Errorf("pin = %+v, want %v-unit filled square", pin, pinSize)
	}

	if len(s.Polylines) != 2 {
		t.Fatalf("len(Polylines) = %d, want 2 (empty path keeps its slot)", len(s.Polylines))
	}
	if len(s.Polylines[0].Points) != 2 || len(s.Polylines[1].Points) != 0 {
		t.Errorf("polyline point counts = %d, %d; want 2, 0",
			len(s.Polylines[0].Points), len(s.Polylines[1].Points))
	}

	if len(s.Labels) != 1 || s.Labels[0].Text != "s0" {
		t.Errorf("Labels = %+v, want one centered macro name", s.Labels)
	}
	// Label centers on the macro rectangle: (500+1000/2)/50, (500+500/2)/50.
	if s.Labels[0].X != 20 || s.Labels[0].Y != 15 {
		t.Errorf("label at (%v, %v), want (20, 15)", s.Labels[0].X, s.Labels[0].Y)
	}
}

func TestRenderSVG(t *testing.T) {
	input := `DIEAREA 0 0 5000 4000
ROWHEIGHT 200
SITEWIDTH 50
ROWS 2
TRANSISTOR T1 100 100 0 NMOS g1
TRANSISTOR T2 200 100 0 NMOS g1
TRANSISTOR T3 300 100 0 NMOS g1
`
	m := testModel(t, input)
	colors := colormap.New(nil, 42).Assign(m.GroupCounts)

	svg := string(RenderSVG(BuildScene(m, colors, config.Default())))

	if !strings.HasPrefix(svg, `<svg xmlns="http://www.w3.org/2000/svg"`) {
		t.Error("missing svg root element")
	}
	if !strings.HasSuffix(strings.TrimSpace(svg), "</svg>") {
		t.Error("unterminated svg document")
	}
	// g1 qualifies (count 3) and takes palette[0] = blue.
	if !strings.Contains(svg, `fill="#0000ff"`) {
		t.Error("expected palette[0] fill for the qualifying group")
	}
	if got := strings.Count(svg, "<rect"); got != 1+2+6 {
		t.Errorf("rect count = %d, want background + 2 rows + 6 transistor rects", got)
	}
}

func TestRenderSVGDeterministic(t *testing.T) {
	m := testModel(t, "DIEAREA 0 0 5000 4000\nROWHEIGHT 200\nROWS 2\n")
	a := RenderSVG(BuildScene(m, nil, config.Default()))
	b := RenderSVG(BuildScene(m, nil, config.Default()))
	if string(a) != string(b) {
		t.Error("rendering must be deterministic")
	}
}

func TestRenderSVGEmptyScene(t *testing.T) {
	svg := string(RenderSVG(Scene{}))
	if !strings.Contains(svg, "<svg") {
		t.Error("empty scene should still produce a valid svg document")
	}
	if strings.Contains(svg, "<rect x=") {
		t.Error("empty scene should contain no shapes")
	}
}

func TestRenderSVGAxisFlip(t *testing.T) {
	// A rect at the viewport bottom (placement y=0) must land at the SVG
	// bottom (large y), not the top.
	s := Scene{
		Viewport: Viewport{MinX: 0, MinY: 0, MaxX: 100, MaxY: 100},
		Rects:    []Rect{{X: 0, Y: 0, W: 10, H: 10, Stroke: true, StrokeWidth: 1}},
	}
	svg := string(RenderSVG(s))
	if !strings.Contains(svg, `<rect x="0.00" y="90.00"`) {
		t.Errorf("expected flipped y=90.00 in:\n%s", svg)
	}
}
