package geometry

import (
	"github.com/matzehuels/wedgeplot/pkg/magnet"
)

// Sector is the rendering-ready geometry of one wedge. All lengths and
// points are in output units (metres multiplied by the presentation scale);
// angles are in degrees.
//
// Sectors are values: every operation in this package returns new ones.
type Sector struct {
	Index    int      // position in the quadrant partition
	Quadrant Quadrant // Q1 for computed sectors, Q1..Q4 for replicas

	StartAngle, EndAngle float64
	MeanAngle            float64
	InnerRadius          float64
	OuterRadius          float64
	MeanRadius           float64

	ArrowAngle  float64 // arrow direction
	ArrowLength float64
	ArrowTail   Point
	ArrowHead   Point

	LabelWidthPos       Point
	LabelOrientationPos Point

	BracketRadius float64
	BracketStart  Point
	BracketEnd    Point
}

// Width returns the angular width of the sector.
func (s Sector) Width() float64 { return s.EndAngle - s.StartAngle }

// Boundary returns the sector's angular extent.
func (s Sector) Boundary() Boundary { return Boundary{Start: s.StartAngle, End: s.EndAngle} }

// ArrowVector returns ArrowHead - ArrowTail.
func (s Sector) ArrowVector() Point { return s.ArrowHead.Sub(s.ArrowTail) }

// ComputeSector derives the placement of one sector from its boundary, the
// band radii (metres) and its arrow direction (degrees).
//
// The arrow is centred on the sector's mean point and its length grows with
// the arc length at the mean radius, so wider sectors get longer arrows. A
// zero-width boundary yields a zero-length arrow; it is returned as is and
// renderers decide whether to draw it.
func ComputeSector(b Boundary, innerRadius, outerRadius, arrowAngleDegrees float64, p magnet.Presentation) Sector {
	inner := p.Scale * innerRadius
	outer := p.Scale * outerRadius
	meanRadius := (inner + outer) / 2
	meanAngle := b.Mean()

	length := p.ArrowFactor * meanRadius * Radians(b.Width())
	dir := Direction(arrowAngleDegrees)
	meanPoint := Polar(meanRadius, meanAngle)
	tail := meanPoint.Sub(dir.Scaled(length / 2))
	head := tail.Add(dir.Scaled(length))

	bracketRadius := p.BracketRadius * inner

	return Sector{
		Quadrant:            Q1,
		StartAngle:          b.Start,
		EndAngle:            b.End,
		MeanAngle:           meanAngle,
		InnerRadius:         inner,
		OuterRadius:         outer,
		MeanRadius:          meanRadius,
		ArrowAngle:          arrowAngleDegrees,
		ArrowLength:         length,
		ArrowTail:           tail,
		ArrowHead:           head,
		LabelWidthPos:       Polar(p.LabelOffset*p.WidthLabelRadius*inner, meanAngle),
		LabelOrientationPos: head.Scaled(p.LabelOffset),
		BracketRadius:       bracketRadius,
		BracketStart:        Polar(bracketRadius, b.Start),
		BracketEnd:          Polar(bracketRadius, b.End),
	}
}

// Sectors partitions cfg's span and computes every sector of the first
// quadrant in index order. It validates cfg first and returns its ConfigError.
func Sectors(cfg magnet.Config) ([]Sector, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	boundaries, err := Partition(cfg.TotalSpanDegrees, cfg.SectorFractions)
	if err != nil {
		return nil, err
	}
	p := cfg.Display()
	sectors := make([]Sector, len(boundaries))
	for i, b := range boundaries {
		s := ComputeSector(b, cfg.InnerRadius, cfg.OuterRadius, cfg.ArrowAngles[i], p)
		s.Index = i
		sectors[i] = s
	}
	return sectors, nil
}
