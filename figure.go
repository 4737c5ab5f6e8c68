// Package bidual draws the diagram of a space, its bidual, the canonical embedding into the bidual, and an operator
// together with its bidual extension. Shapes are recorded on a Figure in diagram units and written to PDF, SVG, PNG or
// TeX by github.com/tdewolff/canvas.
package bidual

import (
	"github.com/tdewolff/canvas"
)

// Options configure a Figure.
type Options struct {
	Scale  float64 // millimeters per diagram unit
	Margin float64 // in mm around the cropped content
	TeX    bool    // typeset labels with the TeX engine instead of the font metrics
	Minify bool    // minify SVG output
}

// DefaultOptions are the options used when nil is passed.
var DefaultOptions = Options{
	Scale:  26.0,
	Margin: 2.0,
}

// Figure is the drawing surface that every drawing function receives. It records elements in drawing order and
// keeps the first error that occurs while recording; later additions are ignored once an error is set.
type Figure struct {
	opts     Options
	fonts    *fonts
	elements []Element
	err      error
}

// NewFigure returns an empty figure with the Latin Modern Roman fonts loaded. The options are copied; nil selects
// DefaultOptions.
func NewFigure(opts *Options) (*Figure, error) {
	o := DefaultOptions
	if opts != nil {
		o = *opts
	}
	if o.Scale <= 0.0 {
		o.Scale = DefaultOptions.Scale
	}

	fs, err := loadFonts()
	if err != nil {
		return nil, err
	}
	return &Figure{
		opts:  o,
		fonts: fs,
	}, nil
}

// Err returns the first error that occurred while recording.
func (f *Figure) Err() error {
	return f.err
}

// Scale returns the number of millimeters per diagram unit.
func (f *Figure) Scale() float64 {
	return f.opts.Scale
}

// Elements returns the recorded elements in drawing order.
func (f *Figure) Elements() []Element {
	return f.elements
}

// Bounds returns the extent of all elements in diagram units.
func (f *Figure) Bounds() canvas.Rect {
	if len(f.elements) == 0 {
		return canvas.Rect{}
	}
	r := f.elements[0].Bounds()
	for _, e := range f.elements[1:] {
		r = r.Add(e.Bounds())
	}
	return r
}

func (f *Figure) halfStroke(width float64) float64 {
	return width * mmPerPt / f.opts.Scale / 2.0
}

// AddRegion records a region.
func (f *Figure) AddRegion(r *Region) *Region {
	if f.err != nil {
		return r
	}
	r.halfStroke = f.halfStroke(r.Style.StrokeWidth)
	f.elements = append(f.elements, r)
	return r
}

// AddEllipse records an ellipse.
func (f *Figure) AddEllipse(e *Ellipse) *Ellipse {
	if f.err != nil {
		return e
	}
	e.halfStroke = f.halfStroke(e.Style.StrokeWidth)
	f.elements = append(f.elements, e)
	return e
}

// AddArrow records an arrow, shrinking its endpoints and laying out its heads.
func (f *Figure) AddArrow(a *Arrow) *Arrow {
	if f.err != nil {
		return a
	}
	a.layout(f.opts.Scale)
	f.elements = append(f.elements, a)
	return a
}

// AddLabel typesets and records a label. Malformed markup sets the figure's error.
func (f *Figure) AddLabel(l *Label) *Label {
	if f.err != nil {
		return l
	}
	if err := l.typeset(f.fonts, f.opts.Scale, f.opts.TeX); err != nil {
		f.err = err
		return l
	}
	f.elements = append(f.elements, l)
	return l
}

// Labels returns the recorded labels in drawing order.
func (f *Figure) Labels() []*Label {
	labels := []*Label{}
	for _, e := range f.elements {
		if l, ok := e.(*Label); ok {
			labels = append(labels, l)
		}
	}
	return labels
}
