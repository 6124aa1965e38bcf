package sink

import (
	"bytes"
	"encoding/json"
	"image/png"
	"strings"
	"testing"

	"github.com/matzehuels/wedgeplot/pkg/diagram"
	"github.com/matzehuels/wedgeplot/pkg/errors"
	"github.com/matzehuels/wedgeplot/pkg/geometry"
	"github.com/matzehuels/wedgeplot/pkg/magnet"
	"github.com/matzehuels/wedgeplot/pkg/render"
)

func assemble(t *testing.T, mode diagram.Mode) diagram.Diagram {
	t.Helper()
	d, err := diagram.Assemble(magnet.MagnetIV(), mode)
	if err != nil {
		t.Fatalf("Assemble() error: %v", err)
	}
	return d
}

func TestRenderSVG(t *testing.T) {
	for _, mode := range []diagram.Mode{diagram.ModeQuadrant, diagram.ModeFull} {
		t.Run(string(mode), func(t *testing.T) {
			d := assemble(t, mode)
			out := string(RenderSVG(d, WithTitle("Magnet IV")))

			if !strings.HasPrefix(out, "<?xml") {
				t.Errorf("missing XML declaration: %.40q", out)
			}
			if !strings.Contains(out, "<title>Magnet IV</title>") {
				t.Error("missing title")
			}
			if got, want := strings.Count(out, `class="wedge"`), d.Count(diagram.KindWedgeArc); got != want {
				t.Errorf("wedge paths = %d, want %d", got, want)
			}
			if got, want := strings.Count(out, `class="arrow"`), d.Count(diagram.KindArrow); got != want {
				t.Errorf("arrow paths = %d, want %d", got, want)
			}
			if got, want := strings.Count(out, `class="bracket"`), d.Count(diagram.KindAngularBracket); got != want {
				t.Errorf("bracket paths = %d, want %d", got, want)
			}
			for _, s := range []string{"x [mm]", "y [mm]", "12°", "inner Ø 346, outer Ø 792"} {
				if !strings.Contains(out, s) {
					t.Errorf("missing text %q", s)
				}
			}
			if !strings.HasSuffix(strings.TrimSpace(out), "</svg>") {
				t.Error("document not closed")
			}
		})
	}
}

func TestRenderSVGWithoutAxes(t *testing.T) {
	d := assemble(t, diagram.ModeQuadrant)
	out := string(RenderSVG(d, WithoutAxes()))
	if strings.Contains(out, `id="axes"`) {
		t.Error("axes drawn despite WithoutAxes")
	}
	if strings.Count(out, `class="wedge"`) != magnet.MagnetIVSegments {
		t.Errorf("expected %d wedges", magnet.MagnetIVSegments)
	}
}

func TestRenderSVGStyle(t *testing.T) {
	d := assemble(t, diagram.ModeQuadrant)
	out := string(RenderSVG(d, WithStyle(FilledStyle()), WithWidth(400)))
	if !strings.Contains(out, "fill:#dfe6ee") {
		t.Error("wedge fill not applied")
	}
	if !strings.Contains(out, `width="400"`) {
		t.Error("width option ignored")
	}
}

func TestRenderSVGSkipsDegenerateArrows(t *testing.T) {
	cfg := magnet.Config{
		InnerRadius:      0.173,
		OuterRadius:      0.396,
		TotalSpanDegrees: 45,
		SectorFractions:  []float64{50, 0, 50},
		ArrowAngles:      []float64{0, 90, 180},
	}
	d, err := diagram.Assemble(cfg, diagram.ModeQuadrant)
	if err != nil {
		t.Fatalf("Assemble() error: %v", err)
	}
	out := string(RenderSVG(d))
	if got := strings.Count(out, `class="arrow"`); got != 2 {
		t.Errorf("arrow paths = %d, want 2", got)
	}
	if got := strings.Count(out, `class="wedge"`); got != 3 {
		t.Errorf("wedge paths = %d, want 3", got)
	}
}

func TestRenderPNG(t *testing.T) {
	d := assemble(t, diagram.ModeFull)
	data, err := RenderPNG(d, WithScale(1), WithPNGWidth(400))
	if err != nil {
		t.Fatalf("RenderPNG() error: %v", err)
	}

	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("png.Decode() error: %v", err)
	}
	vp := render.NewViewport(d.Frame, 400)
	b := img.Bounds()
	if b.Dx() != int(vp.Width) || b.Dy() != int(vp.Height) {
		t.Errorf("size = %dx%d, want %dx%d", b.Dx(), b.Dy(), int(vp.Width), int(vp.Height))
	}
}

func TestRenderPNGWedgeArcs(t *testing.T) {
	d := assemble(t, diagram.ModeQuadrant)
	data, err := RenderPNG(d, WithScale(1), WithPNGWidth(500), WithPNGStyle(FilledStyle()), WithoutPNGAxes())
	if err != nil {
		t.Fatalf("RenderPNG() error: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("png.Decode() error: %v", err)
	}

	var w diagram.WedgeArc
	for _, p := range d.Primitives {
		if arc, ok := p.(diagram.WedgeArc); ok {
			w = arc
			break
		}
	}
	vp := render.NewViewport(d.Frame, 500)
	mid := (w.StartAngle + w.EndAngle) / 2
	inked := func(r, deg float64) bool {
		x, y := vp.Map(w.Center.Add(geometry.Polar(r, deg)))
		cr, cg, cb, _ := img.At(int(x), int(y)).RGBA()
		return cr < 0xffff || cg < 0xffff || cb < 0xffff
	}

	if !inked(w.Radius, mid) {
		t.Error("outer arc not drawn at the wedge mid angle")
	}
	if !inked(w.Radius-w.Width/2, mid) {
		t.Error("wedge interior not filled")
	}
}

func TestRenderPNGScale(t *testing.T) {
	d := assemble(t, diagram.ModeQuadrant)
	data, err := RenderPNG(d, WithPNGWidth(300), WithPNGStyle(FilledStyle()), WithoutPNGAxes())
	if err != nil {
		t.Fatalf("RenderPNG() error: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("png.Decode() error: %v", err)
	}
	if got := img.Bounds().Dx(); got != 600 {
		t.Errorf("width = %d, want 600 at default 2x scale", got)
	}

	if _, err := RenderPNG(d, WithScale(0)); !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("RenderPNG(scale 0) error = %v, want INVALID_FORMAT", err)
	}
}

func TestRenderPDF(t *testing.T) {
	if !render.CanConvert() {
		t.Skip("rsvg-convert not installed")
	}
	data, err := RenderPDF(assemble(t, diagram.ModeQuadrant))
	if err != nil {
		t.Fatalf("RenderPDF() error: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Errorf("output is not a PDF: %.8q", data)
	}
}

func TestRenderJSON(t *testing.T) {
	d := assemble(t, diagram.ModeFull)
	data, err := RenderJSON(d, WithJSONTitle("Magnet IV"), WithJSONSource("magnet.toml"))
	if err != nil {
		t.Fatalf("RenderJSON() error: %v", err)
	}

	var out jsonOutput
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("json.Unmarshal() error: %v", err)
	}

	if out.Mode != "full" {
		t.Errorf("Mode = %q, want full", out.Mode)
	}
	if out.Title != "Magnet IV" || out.Source != "magnet.toml" {
		t.Errorf("Title/Source = %q/%q", out.Title, out.Source)
	}
	if out.Sectors != magnet.MagnetIVSegments {
		t.Errorf("Sectors = %d, want %d", out.Sectors, magnet.MagnetIVSegments)
	}
	if out.Frame.MinX != d.Frame.MinX || out.Frame.MaxY != d.Frame.MaxY {
		t.Errorf("Frame = %+v, want %+v", out.Frame, d.Frame)
	}
	if len(out.Primitives) != len(d.Primitives) {
		t.Fatalf("Primitives = %d, want %d", len(out.Primitives), len(d.Primitives))
	}
	for i, p := range d.Primitives {
		if out.Primitives[i].Type != p.Kind().String() {
			t.Errorf("primitive %d type = %q, want %q", i, out.Primitives[i].Type, p.Kind())
		}
	}

	first := out.Primitives[0]
	if first.Wedge == nil || first.Quadrant != "Q1" || first.Sector != 0 {
		t.Errorf("first primitive = %+v, want sector 0 Q1 wedge", first)
	}
	if second := out.Primitives[1]; second.Arrow == nil || second.Quadrant != "Q1" {
		t.Errorf("second primitive = %+v, want Q1 arrow", second)
	}
	last := out.Primitives[len(out.Primitives)-1]
	if last.Text == nil || last.Text.Style != "annotation" || last.Quadrant != "" || last.Sector != -1 {
		t.Errorf("last primitive = %+v, want annotation", last)
	}
}

func TestTickLabel(t *testing.T) {
	tests := map[float64]string{0: "0", 100: "100", -200: "-200", 0.5: "0.5"}
	for v, want := range tests {
		if got := tickLabel(v); got != want {
			t.Errorf("tickLabel(%v) = %q, want %q", v, got, want)
		}
	}
}
