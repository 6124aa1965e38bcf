package render

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/wedgeplot/pkg/diagram"
	"github.com/matzehuels/wedgeplot/pkg/errors"
	"github.com/matzehuels/wedgeplot/pkg/geometry"
	"github.com/matzehuels/wedgeplot/pkg/magnet"
)

type recorder struct {
	frame diagram.Frame
	calls []string
}

func (r *recorder) SetFrame(f diagram.Frame)                 { r.frame = f; r.calls = append(r.calls, "frame") }
func (r *recorder) DrawAnnularWedge(diagram.WedgeArc)        { r.calls = append(r.calls, "wedge") }
func (r *recorder) DrawArrow(diagram.Arrow)                  { r.calls = append(r.calls, "arrow") }
func (r *recorder) DrawText(diagram.TextLabel)               { r.calls = append(r.calls, "text") }
func (r *recorder) DrawCurvedBracket(diagram.AngularBracket) { r.calls = append(r.calls, "bracket") }

func testConfig() magnet.Config {
	return magnet.Config{
		InnerRadius:      0.173,
		OuterRadius:      0.396,
		TotalSpanDegrees: 45,
		SectorFractions:  []float64{50, 0, 50},
		ArrowAngles:      []float64{0, 90, 180},
	}
}

func TestDraw(t *testing.T) {
	d, err := diagram.Assemble(testConfig(), diagram.ModeQuadrant)
	require.NoError(t, err)

	var r recorder
	Draw(d, &r)

	want := []string{
		"frame",
		"wedge", "arrow", "text", "text", "bracket",
		"wedge", "text", "text", "bracket", // zero-width sector: arrow skipped
		"wedge", "arrow", "text", "text", "bracket",
	}
	assert.Equal(t, want, r.calls)
	assert.Equal(t, d.Frame, r.frame)
}

func TestArrowShape(t *testing.T) {
	a := diagram.Arrow{Tail: geometry.Point{X: 0, Y: 0}, Vector: geometry.Point{X: 100, Y: 0}, HeadWidth: 8}
	shaftEnd, head := ArrowShape(a)

	assertPoint(t, geometry.Point{X: 88, Y: 0}, shaftEnd)
	assertPoint(t, geometry.Point{X: 100, Y: 0}, head[0])
	assertPoint(t, geometry.Point{X: 88, Y: 4}, head[1])
	assertPoint(t, geometry.Point{X: 88, Y: -4}, head[2])
}

func TestArrowShapeShortArrow(t *testing.T) {
	a := diagram.Arrow{Vector: geometry.Point{X: 0, Y: 10}, HeadWidth: 8}
	shaftEnd, head := ArrowShape(a)

	// The head is limited to half the arrow and narrowed to match.
	assertPoint(t, geometry.Point{X: 0, Y: 5}, shaftEnd)
	assert.InDelta(t, 5.0, head[1].Sub(head[2]).Len(), 1e-9)
}

func TestArrowheadZeroDirection(t *testing.T) {
	tip := geometry.Point{X: 3, Y: 4}
	head, base := Arrowhead(tip, geometry.Point{}, 8, 10)
	assert.Equal(t, Triangle{tip, tip, tip}, head)
	assert.Equal(t, tip, base)
}

func TestBracketShape(t *testing.T) {
	r := 100.0
	b := diagram.AngularBracket{
		Start:     geometry.Polar(r, 0),
		End:       geometry.Polar(r, 90),
		Radius:    r,
		Curvature: math.Tan(geometry.Radians(90) / 4),
		HeadWidth: 4,
	}
	br := BracketShape(b)

	// The control point lies outward, on the bisector.
	assert.InDelta(t, 45.0, br.Control.Angle(), 1e-9)
	assert.Greater(t, br.Control.Len(), r)
	assert.InDelta(t, r, br.quadraticPoint(0.5).Len(), 1e-9)

	// Tips sit on the endpoints with the bases back along the curve.
	assertPoint(t, b.Start, br.StartHead[0])
	assertPoint(t, b.End, br.EndHead[0])
	assert.Greater(t, br.StartHead[1].Y, 0.0)
	assert.Greater(t, br.EndHead[1].X, 0.0)
}

func TestBracketControlDegenerate(t *testing.T) {
	p := geometry.Point{X: 10, Y: 10}
	b := diagram.AngularBracket{Start: p, End: p, Curvature: 0}
	assert.Equal(t, p, BracketControl(b))
}

func TestTicks(t *testing.T) {
	tests := []struct {
		name   string
		lo, hi float64
		n      int
		want   []float64
	}{
		{"quadrant", 0, 415.8, 5, []float64{0, 100, 200, 300, 400}},
		{"full", -415.8, 415.8, 4, []float64{-400, -200, 0, 200, 400}},
		{"small", 0, 1, 4, []float64{0, 0.2, 0.4, 0.6000000000000001, 0.8, 1}},
		{"empty", 1, 1, 4, nil},
		{"zero n", 0, 10, 0, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Ticks(tt.lo, tt.hi, tt.n)
			require.Len(t, got, len(tt.want))
			for i := range got {
				assert.InDelta(t, tt.want[i], got[i], 1e-9)
			}
		})
	}
}

func TestViewport(t *testing.T) {
	f := diagram.Frame{MinX: -100, MinY: -100, MaxX: 100, MaxY: 100}
	v := NewViewport(f, 200+MarginLeft+MarginRight)

	assert.InDelta(t, 1.0, v.Scale(), 1e-12)
	assert.InDelta(t, 200+MarginTop+MarginBottom, v.Height, 1e-9)

	x, y := v.Map(geometry.Origin)
	assert.InDelta(t, MarginLeft+100, x, 1e-9)
	assert.InDelta(t, MarginTop+100, y, 1e-9)

	// y axis points down in pixel space.
	_, top := v.Map(geometry.Point{Y: 100})
	assert.InDelta(t, MarginTop, top, 1e-9)

	x0, y0, x1, y1 := v.PlotRect()
	assert.InDelta(t, MarginLeft, x0, 1e-9)
	assert.InDelta(t, MarginTop, y0, 1e-9)
	assert.InDelta(t, MarginLeft+200, x1, 1e-9)
	assert.InDelta(t, MarginTop+200, y1, 1e-9)

	assert.Equal(t, DefaultWidth, NewViewport(f, 0).Width)
}

func TestToPDFMissingConverter(t *testing.T) {
	old := converter
	converter = "wedgeplot-no-such-converter"
	t.Cleanup(func() { converter = old })

	assert.False(t, CanConvert())
	_, err := ToPDF([]byte("<svg/>"))
	assert.True(t, errors.Is(err, errors.ErrCodeUnsupported))
}

func assertPoint(t *testing.T, want, got geometry.Point) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, 1e-9)
	assert.InDelta(t, want.Y, got.Y, 1e-9)
}
