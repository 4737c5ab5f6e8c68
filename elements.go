package bidual

import (
	"image/color"
	"strconv"

	"github.com/tdewolff/canvas"
)

// Element is a primitive recorded on a Figure.
type Element interface {
	// Bounds returns the extent in diagram units, stroke included.
	Bounds() canvas.Rect

	draw(*canvas.Context, view)
}

// view maps diagram units to millimeters on the output canvas.
type view struct {
	origin canvas.Point
	scale  float64
}

func (v view) at(p canvas.Point) canvas.Point {
	return p.Sub(v.origin).Mul(v.scale)
}

func (v view) matrix() canvas.Matrix {
	return canvas.Identity.Scale(v.scale, v.scale).Translate(-v.origin.X, -v.origin.Y)
}

func setStyle(ctx *canvas.Context, style Style) {
	ctx.SetFillColor(style.fill())
	ctx.SetStrokeColor(style.stroke())
	ctx.SetStrokeWidth(style.StrokeWidth * mmPerPt)
	ctx.SetStrokeCapper(canvas.ButtCap)
	ctx.SetStrokeJoiner(canvas.MiterJoin)
	if 0 < len(style.Dashes) {
		dashes := make([]float64, len(style.Dashes))
		for i, d := range style.Dashes {
			dashes[i] = d * style.StrokeWidth * mmPerPt
		}
		ctx.SetDashes(0.0, dashes...)
	} else {
		ctx.SetDashes(0.0)
	}
}

// Region is a rounded rectangle grouping the spaces of one kind. The box is padded by Pad on every side.
type Region struct {
	Origin        canvas.Point
	Width, Height float64
	Pad, Radius   float64
	Style         Style
	Caption       *Label

	halfStroke float64
}

// Box returns the padded rectangle without stroke.
func (r *Region) Box() canvas.Rect {
	return canvas.Rect{
		X0: r.Origin.X - r.Pad,
		Y0: r.Origin.Y - r.Pad,
		X1: r.Origin.X + r.Width + r.Pad,
		Y1: r.Origin.Y + r.Height + r.Pad,
	}
}

func (r *Region) Bounds() canvas.Rect {
	return r.Box().Expand(r.halfStroke)
}

func (r *Region) draw(ctx *canvas.Context, v view) {
	box := r.Box()
	at := v.at(pt(box.X0, box.Y0))
	setStyle(ctx, r.Style)
	ctx.DrawPath(at.X, at.Y, canvas.RoundedRectangle((box.X1-box.X0)*v.scale, (box.Y1-box.Y0)*v.scale, r.Radius*v.scale))
}

// SetRole tells which space an ellipse depicts.
type SetRole int

// see SetRole
const (
	PrimalSet   SetRole = iota // a primal space, X or Y
	BidualSet                  // a bidual space, X'' or Y''
	EmbeddedSet                // the image of a primal space inside its bidual
)

func (role SetRole) String() string {
	switch role {
	case PrimalSet:
		return "PrimalSet"
	case BidualSet:
		return "BidualSet"
	case EmbeddedSet:
		return "EmbeddedSet"
	}
	return "Invalid(" + strconv.Itoa(int(role)) + ")"
}

// Ellipse is a labelled set.
type Ellipse struct {
	Center        canvas.Point
	Width, Height float64
	Style         Style
	Role          SetRole
	Label         *Label

	halfStroke float64
}

// Box returns the bounding box of the ellipse without stroke.
func (e *Ellipse) Box() canvas.Rect {
	return canvas.Rect{
		X0: e.Center.X - e.Width/2.0,
		Y0: e.Center.Y - e.Height/2.0,
		X1: e.Center.X + e.Width/2.0,
		Y1: e.Center.Y + e.Height/2.0,
	}
}

func (e *Ellipse) Bounds() canvas.Rect {
	return e.Box().Expand(e.halfStroke)
}

func (e *Ellipse) draw(ctx *canvas.Context, v view) {
	at := v.at(e.Center)
	setStyle(ctx, e.Style)
	ctx.DrawPath(at.X, at.Y, canvas.Ellipse(e.Width/2.0*v.scale, e.Height/2.0*v.scale))
}

// HeadStyle is the arrow head configuration.
type HeadStyle int

// see HeadStyle
const (
	SingleHead HeadStyle = iota // ->
	DoubleHead                  // <->
)

// ArrowRole tells what an arrow depicts.
type ArrowRole int

// see ArrowRole
const (
	Operator    ArrowRole = iota // T or its bidual extension T''
	Embedding                    // the canonical embedding J_X or J_Y
	Isomorphism                  // X ≅ J_X(X)
)

func (role ArrowRole) String() string {
	switch role {
	case Operator:
		return "Operator"
	case Embedding:
		return "Embedding"
	case Isomorphism:
		return "Isomorphism"
	}
	return "Invalid(" + strconv.Itoa(int(role)) + ")"
}

// Arrow is an open-headed arrow from From to To. Rad bends it into a quadratic curve, see arc3.
// Width, HeadScale, ShrinkA and ShrinkB are in points; the head is 0.4 HeadScale long and 0.4 HeadScale wide.
type Arrow struct {
	From, To         canvas.Point
	Head             HeadStyle
	Color            color.RGBA
	Width            float64
	Rad              float64
	HeadScale        float64
	ShrinkA, ShrinkB float64
	Role             ArrowRole
	Label            *Label

	start, end, ctrl canvas.Point
	barbs            [][2]canvas.Point // per head: the two barb ends, tip is start or end
	halfStroke       float64
}

// Start returns the shrunken start point.
func (a *Arrow) Start() canvas.Point {
	return a.start
}

// End returns the shrunken end point.
func (a *Arrow) End() canvas.Point {
	return a.end
}

// Control returns the control point of the arrow's curve; it is the midpoint for straight arrows.
func (a *Arrow) Control() canvas.Point {
	return a.ctrl
}

func (a *Arrow) layout(scale float64) {
	u := mmPerPt / scale
	a.halfStroke = a.Width * u / 2.0
	a.start, a.end = shrink(a.From, a.To, a.ShrinkA*u, a.ShrinkB*u)
	a.ctrl = arc3(a.start, a.end, a.Rad)

	length, halfWidth := 0.4*a.HeadScale*u, 0.2*a.HeadScale*u
	a.barbs = a.barbs[:0]
	l, r := arrowHead(a.end, a.end.Sub(a.ctrl), length, halfWidth)
	a.barbs = append(a.barbs, [2]canvas.Point{l, r})
	if a.Head == DoubleHead {
		l, r = arrowHead(a.start, a.start.Sub(a.ctrl), length, halfWidth)
		a.barbs = append(a.barbs, [2]canvas.Point{l, r})
	}
}

// path returns the shaft and the open heads in diagram units.
func (a *Arrow) path() *canvas.Path {
	p := &canvas.Path{}
	p.MoveTo(a.start.X, a.start.Y)
	if a.Rad == 0.0 {
		p.LineTo(a.end.X, a.end.Y)
	} else {
		p.QuadTo(a.ctrl.X, a.ctrl.Y, a.end.X, a.end.Y)
	}
	tips := []canvas.Point{a.end, a.start}
	for i, barb := range a.barbs {
		p.MoveTo(barb[0].X, barb[0].Y)
		p.LineTo(tips[i].X, tips[i].Y)
		p.LineTo(barb[1].X, barb[1].Y)
	}
	return p
}

func (a *Arrow) Bounds() canvas.Rect {
	return a.path().Bounds().Expand(a.halfStroke)
}

func (a *Arrow) draw(ctx *canvas.Context, v view) {
	ctx.SetFillColor(canvas.Transparent)
	ctx.SetStrokeColor(a.Color)
	ctx.SetStrokeWidth(a.Width * mmPerPt)
	ctx.SetStrokeCapper(canvas.RoundCap)
	ctx.SetStrokeJoiner(canvas.RoundJoin)
	ctx.SetDashes(0.0)
	ctx.DrawPath(0.0, 0.0, a.path().Transform(v.matrix()))
}
