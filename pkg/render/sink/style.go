package sink

import (
	"strconv"
)

// NoFill disables filling wedges.
const NoFill = "none"

// Style holds the colours and sizes shared by the SVG and PNG sinks.
// Colours are hex strings.
type Style struct {
	Background   string
	WedgeStroke  string
	WedgeFill    string
	StrokeWidth  float64
	ArrowColor   string
	BracketColor string
	TextColor    string
	AxisColor    string
	FontFamily   string
	FontSize     float64
}

// DefaultStyle draws black wedge outlines on white, like a printed figure.
func DefaultStyle() Style {
	return Style{
		Background:   "#ffffff",
		WedgeStroke:  "#000000",
		WedgeFill:    NoFill,
		StrokeWidth:  1.2,
		ArrowColor:   "#c0392b",
		BracketColor: "#2c3e50",
		TextColor:    "#000000",
		AxisColor:    "#333333",
		FontFamily:   "Helvetica, Arial, sans-serif",
		FontSize:     12,
	}
}

// FilledStyle shades wedges lightly.
func FilledStyle() Style {
	s := DefaultStyle()
	s.WedgeFill = "#dfe6ee"
	return s
}

// tickLabel formats an axis tick value without trailing zeros.
func tickLabel(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// tickCount is the target number of ticks per axis.
const tickCount = 5
