package bidual

import (
	"image/color"

	"github.com/tdewolff/canvas"
)

// Palette of the diagram.
var (
	PrimalColor    = canvas.Hex("#e8f4e8")
	DualColor      = canvas.Hex("#e8e8f4")
	SetColor       = canvas.Hex("#fafafa")
	SubsetColor    = canvas.Hex("#f0f0ff")
	BorderColor    = canvas.Hex("#333333")
	PrimalEdge     = canvas.Hex("#88aa88")
	DualEdge       = canvas.Hex("#8888aa")
	SubsetEdge     = canvas.Hex("#666688")
	PrimalCaption  = canvas.Hex("#446644")
	DualCaption    = canvas.Hex("#444466")
	OperatorColor  = canvas.Hex("#cc4444")
	EmbeddingColor = canvas.Hex("#4444cc")
	IsoColor       = canvas.Hex("#228822")
)

// DashedLine is the on/off pattern of a dashed stroke in units of the stroke width.
var DashedLine = []float64{3.7, 1.6}

// Style is the paint of a filled and stroked shape. StrokeWidth is in points, Dashes are multiples of StrokeWidth.
// Alpha applies to both fill and stroke and is flattened onto a white background so that no transparency reaches the output.
type Style struct {
	Fill        color.RGBA
	Stroke      color.RGBA
	StrokeWidth float64
	Dashes      []float64
	Alpha       float64
}

func (s Style) fill() color.RGBA {
	return flatten(s.Fill, s.alpha())
}

func (s Style) stroke() color.RGBA {
	return flatten(s.Stroke, s.alpha())
}

func (s Style) alpha() float64 {
	if s.Alpha == 0.0 {
		return 1.0
	}
	return s.Alpha
}

// flatten composites an opaque color with opacity alpha over white.
func flatten(col color.RGBA, alpha float64) color.RGBA {
	if col.A == 0 {
		return canvas.Transparent
	} else if 1.0 <= alpha {
		return col
	}
	mix := func(c uint8) uint8 {
		return uint8(alpha*float64(c) + (1.0-alpha)*255.0 + 0.5)
	}
	return color.RGBA{mix(col.R), mix(col.G), mix(col.B), 0xff}
}
