package sink

import (
	"encoding/json"

	"github.com/matzehuels/wedgeplot/pkg/diagram"
	"github.com/matzehuels/wedgeplot/pkg/errors"
	"github.com/matzehuels/wedgeplot/pkg/geometry"
)

// JSONOption configures JSON rendering via [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	title  string
	source string
}

// WithJSONTitle records a title in the output.
func WithJSONTitle(t string) JSONOption { return func(r *jsonRenderer) { r.title = t } }

// WithJSONSource records the path of the config the diagram was built from.
func WithJSONSource(path string) JSONOption { return func(r *jsonRenderer) { r.source = path } }

type jsonOutput struct {
	Title      string          `json:"title,omitempty"`
	Source     string          `json:"source,omitempty"`
	Mode       string          `json:"mode"`
	Sectors    int             `json:"sectors_per_quadrant"`
	Frame      jsonFrame       `json:"frame"`
	Primitives []jsonPrimitive `json:"primitives"`
}

type jsonFrame struct {
	MinX   float64 `json:"min_x"`
	MinY   float64 `json:"min_y"`
	MaxX   float64 `json:"max_x"`
	MaxY   float64 `json:"max_y"`
	XLabel string  `json:"x_label,omitempty"`
	YLabel string  `json:"y_label,omitempty"`
}

type jsonPoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type jsonPrimitive struct {
	Type     string       `json:"type"`
	Sector   int          `json:"sector"`
	Quadrant string       `json:"quadrant,omitempty"`
	Wedge    *jsonWedge   `json:"wedge,omitempty"`
	Arrow    *jsonArrow   `json:"arrow,omitempty"`
	Text     *jsonText    `json:"text,omitempty"`
	Bracket  *jsonBracket `json:"bracket,omitempty"`
}

type jsonWedge struct {
	Center     jsonPoint `json:"center"`
	Radius     float64   `json:"radius"`
	Width      float64   `json:"width"`
	StartAngle float64   `json:"start_angle"`
	EndAngle   float64   `json:"end_angle"`
}

type jsonArrow struct {
	Tail      jsonPoint `json:"tail"`
	Head      jsonPoint `json:"head"`
	HeadWidth float64   `json:"head_width"`
}

type jsonText struct {
	Position jsonPoint `json:"position"`
	Text     string    `json:"text"`
	Style    string    `json:"style"`
}

type jsonBracket struct {
	Start     jsonPoint `json:"start"`
	End       jsonPoint `json:"end"`
	Center    jsonPoint `json:"center"`
	Radius    float64   `json:"radius"`
	Curvature float64   `json:"curvature"`
	HeadWidth float64   `json:"head_width"`
}

// RenderJSON exports the frame and primitives of d, in emission order.
func RenderJSON(d diagram.Diagram, opts ...JSONOption) ([]byte, error) {
	r := jsonRenderer{}
	for _, opt := range opts {
		opt(&r)
	}

	out := jsonOutput{
		Title:   r.title,
		Source:  r.source,
		Mode:    string(d.Mode),
		Sectors: d.Sectors,
		Frame: jsonFrame{
			MinX: d.Frame.MinX, MinY: d.Frame.MinY,
			MaxX: d.Frame.MaxX, MaxY: d.Frame.MaxY,
			XLabel: d.Frame.XLabel, YLabel: d.Frame.YLabel,
		},
		Primitives: make([]jsonPrimitive, 0, len(d.Primitives)),
	}
	for _, p := range d.Primitives {
		out.Primitives = append(out.Primitives, toJSONPrimitive(p))
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "marshal diagram")
	}
	return data, nil
}

func toJSONPrimitive(p diagram.Primitive) jsonPrimitive {
	jp := jsonPrimitive{Type: p.Kind().String()}
	setRef := func(ref diagram.Ref) {
		jp.Sector = ref.Sector
		if ref.Sector >= 0 {
			jp.Quadrant = ref.Quadrant.String()
		}
	}

	switch p := p.(type) {
	case diagram.WedgeArc:
		setRef(p.Ref)
		jp.Wedge = &jsonWedge{
			Center:     pt(p.Center),
			Radius:     p.Radius,
			Width:      p.Width,
			StartAngle: p.StartAngle,
			EndAngle:   p.EndAngle,
		}
	case diagram.Arrow:
		setRef(p.Ref)
		jp.Arrow = &jsonArrow{Tail: pt(p.Tail), Head: pt(p.Head()), HeadWidth: p.HeadWidth}
	case diagram.TextLabel:
		setRef(p.Ref)
		jp.Text = &jsonText{Position: pt(p.Position), Text: p.Text, Style: string(p.Style)}
	case diagram.AngularBracket:
		setRef(p.Ref)
		jp.Bracket = &jsonBracket{
			Start:     pt(p.Start),
			End:       pt(p.End),
			Center:    pt(p.Center),
			Radius:    p.Radius,
			Curvature: p.Curvature,
			HeadWidth: p.HeadWidth,
		}
	}
	return jp
}

func pt(p geometry.Point) jsonPoint { return jsonPoint{X: p.X, Y: p.Y} }
