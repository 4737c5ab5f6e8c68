package bidual

import (
	"image/color"

	"github.com/tdewolff/canvas"
)

// Anchors are the centers of the primal spaces X and Y and of their biduals X'' and Y''.
// Every other position in the diagram derives from these.
var Anchors = struct {
	X, Y, Xpp, Ypp canvas.Point
}{
	X:   canvas.Point{X: 1.7, Y: 5.0},
	Y:   canvas.Point{X: 1.7, Y: 2.0},
	Xpp: canvas.Point{X: 6.5, Y: 5.0},
	Ypp: canvas.Point{X: 6.5, Y: 2.0},
}

// Sizes and offsets in diagram units.
const (
	SetWidth         = 1.8
	SetHeight        = 1.0
	OuterWidth       = 3.2
	OuterHeight      = 1.6
	InnerWidth       = 2.0
	InnerHeight      = 1.0
	InnerShift       = 0.3  // the embedded image sits this far left of its bidual's center
	OuterLabelShift  = 0.95 // the bidual's label sits this far right of its center
	EmbeddingInset   = 0.8  // embedding arrows end this far left of the embedded image's center
	IsoOffset        = 0.5  // isomorphism arrows attach this far above or below the centers
	IsoInset         = 0.3  // and this far left of the embedded image's center
	IsoRad           = 0.2
	RegionPad        = 0.1
	RegionRadius     = 0.3
	CaptionRise      = 0.2
	ArrowWidth       = 3.0  // pt
	ArrowHeadScale   = 22.0 // pt
	EmbeddingShrink  = 20.0 // pt
	TransposedShrink = 35.0 // pt
)

// ArrowOptions are the options of DrawArrow. Offset shifts the label from the arrow's midpoint, in diagram units.
// FontSize, ShrinkA and ShrinkB are in points.
type ArrowOptions struct {
	Color            color.RGBA
	Offset           canvas.Point
	FontSize         float64
	ShrinkA, ShrinkB float64
	Role             ArrowRole
}

// DefaultArrowOptions draw a black operator arrow with its label slightly above the midpoint.
var DefaultArrowOptions = ArrowOptions{
	Color:    canvas.Black,
	Offset:   canvas.Point{X: 0.0, Y: 0.3},
	FontSize: 14.0,
	ShrinkA:  30.0,
	ShrinkB:  30.0,
	Role:     Operator,
}

// DrawRegion draws a rounded rectangle at origin with a bottom-aligned caption at captionPos.
func DrawRegion(f *Figure, origin canvas.Point, width, height float64, fill, edge color.RGBA, radius float64, caption string, captionPos canvas.Point, captionColor color.RGBA) *Region {
	r := f.AddRegion(&Region{
		Origin: origin,
		Width:  width,
		Height: height,
		Pad:    RegionPad,
		Radius: radius,
		Style: Style{
			Fill:        fill,
			Stroke:      edge,
			StrokeWidth: 2.0,
			Alpha:       0.5,
		},
	})
	r.Caption = f.AddLabel(&Label{
		Markup: caption,
		Pos:    captionPos,
		Size:   14.0,
		Color:  captionColor,
		Bold:   true,
		Italic: true,
		VAlign: canvas.Bottom,
	})
	return r
}

// DrawBackgroundRegions draws the regions grouping the primal and the bidual spaces.
func DrawBackgroundRegions(f *Figure) {
	DrawRegion(f, pt(0.2, 1.0), 3.0, 5.0, PrimalColor, PrimalEdge, RegionRadius,
		"Primal Spaces", pt(Anchors.X.X, 6.0+CaptionRise), PrimalCaption)
	DrawRegion(f, pt(3.6, 1.0), 6.0, 5.0, DualColor, DualEdge, RegionRadius,
		"Bidual Spaces", pt(Anchors.Xpp.X, 6.0+CaptionRise), DualCaption)
}

// DrawSet draws an ellipse with its label at the center.
func DrawSet(f *Figure, center canvas.Point, label string, width, height float64) *Ellipse {
	e := f.AddEllipse(&Ellipse{
		Center: center,
		Width:  width,
		Height: height,
		Style: Style{
			Fill:        SetColor,
			Stroke:      BorderColor,
			StrokeWidth: 2.0,
		},
		Role: PrimalSet,
	})
	e.Label = f.AddLabel(&Label{
		Markup: label,
		Pos:    center,
		Size:   22.0,
		Color:  canvas.Black,
		Bold:   true,
		VAlign: canvas.Middle,
	})
	return e
}

// DrawNestedSets draws a bidual space with the embedded image of its primal space inside, shifted left by InnerShift.
// Zero sizes select the defaults. It returns the center of the embedded image.
func DrawNestedSets(f *Figure, center canvas.Point, outerLabel, innerLabel string, outerSize, innerSize canvas.Point) canvas.Point {
	if outerSize == (canvas.Point{}) {
		outerSize = pt(OuterWidth, OuterHeight)
	}
	if innerSize == (canvas.Point{}) {
		innerSize = pt(InnerWidth, InnerHeight)
	}

	outer := f.AddEllipse(&Ellipse{
		Center: center,
		Width:  outerSize.X,
		Height: outerSize.Y,
		Style: Style{
			Fill:        SetColor,
			Stroke:      BorderColor,
			StrokeWidth: 2.0,
		},
		Role: BidualSet,
	})

	innerCenter := pt(center.X-InnerShift, center.Y)
	inner := f.AddEllipse(&Ellipse{
		Center: innerCenter,
		Width:  innerSize.X,
		Height: innerSize.Y,
		Style: Style{
			Fill:        SubsetColor,
			Stroke:      SubsetEdge,
			StrokeWidth: 1.5,
			Dashes:      DashedLine,
		},
		Role: EmbeddedSet,
	})

	inner.Label = f.AddLabel(&Label{
		Markup: innerLabel,
		Pos:    innerCenter,
		Size:   20.0,
		Color:  canvas.Black,
		Bold:   true,
		VAlign: canvas.Middle,
	})
	outer.Label = f.AddLabel(&Label{
		Markup: outerLabel,
		Pos:    pt(center.X+OuterLabelShift, center.Y),
		Size:   20.0,
		Color:  BorderColor,
		Bold:   true,
		VAlign: canvas.Middle,
	})
	return innerCenter
}

// DrawArrow draws a straight single-headed arrow from start to end with its label at the midpoint shifted by
// opts.Offset. The endpoints are pulled in by opts.ShrinkA and opts.ShrinkB to keep clear of the shapes they connect.
func DrawArrow(f *Figure, start, end canvas.Point, label string, opts ArrowOptions) *Arrow {
	a := f.AddArrow(&Arrow{
		From:      start,
		To:        end,
		Head:      SingleHead,
		Color:     opts.Color,
		Width:     ArrowWidth,
		HeadScale: ArrowHeadScale,
		ShrinkA:   opts.ShrinkA,
		ShrinkB:   opts.ShrinkB,
		Role:      opts.Role,
	})
	a.Label = f.AddLabel(&Label{
		Markup: label,
		Pos:    midpoint(start, end, opts.Offset),
		Size:   opts.FontSize,
		Color:  opts.Color,
		Bold:   true,
		VAlign: canvas.Middle,
	})
	return a
}

// DrawIsomorphismArrows draws the curved double-headed arrows joining the tops of X and J_X(X), and the bottoms of
// Y and J_Y(Y). They bend in opposite directions, away from the rest of the diagram.
func DrawIsomorphismArrows(f *Figure, jx, jy canvas.Point) {
	iso := func(from, to canvas.Point, rad float64) {
		f.AddArrow(&Arrow{
			From:      from,
			To:        to,
			Head:      DoubleHead,
			Color:     IsoColor,
			Width:     ArrowWidth,
			Rad:       rad,
			HeadScale: ArrowHeadScale,
			Role:      Isomorphism,
		})
	}
	iso(pt(Anchors.X.X, Anchors.X.Y+IsoOffset), pt(jx.X-IsoInset, Anchors.Xpp.Y+IsoOffset), -IsoRad)
	iso(pt(Anchors.Y.X, Anchors.Y.Y-IsoOffset), pt(jy.X-IsoInset, Anchors.Ypp.Y-IsoOffset), IsoRad)
}

// Compose draws the complete diagram onto f and returns the first error that occurred.
func Compose(f *Figure) error {
	DrawBackgroundRegions(f)

	DrawSet(f, Anchors.X, "$X$", SetWidth, SetHeight)
	DrawSet(f, Anchors.Y, "$Y$", SetWidth, SetHeight)

	jx := DrawNestedSets(f, Anchors.Xpp, "$X''$", "$J_X(X)$", canvas.Point{}, canvas.Point{})
	jy := DrawNestedSets(f, Anchors.Ypp, "$Y''$", "$J_Y(Y)$", canvas.Point{}, canvas.Point{})

	operator := DefaultArrowOptions
	operator.Color = OperatorColor
	operator.FontSize = 22.0
	operator.Offset = pt(-0.35, 0.0)
	DrawArrow(f, Anchors.X, Anchors.Y, "$T$", operator)

	operator.Offset = pt(-0.5, 0.0)
	operator.ShrinkA, operator.ShrinkB = TransposedShrink, TransposedShrink
	DrawArrow(f, jx, jy, "$T''$", operator)

	embedding := DefaultArrowOptions
	embedding.Color = EmbeddingColor
	embedding.FontSize = 22.0
	embedding.ShrinkB = EmbeddingShrink
	embedding.Role = Embedding
	embedding.Offset = pt(0.0, 0.35)
	DrawArrow(f, Anchors.X, pt(jx.X-EmbeddingInset, jx.Y), "$J_X$", embedding)

	embedding.Offset = pt(0.0, -0.4)
	DrawArrow(f, Anchors.Y, pt(jy.X-EmbeddingInset, jy.Y), "$J_Y$", embedding)

	DrawIsomorphismArrows(f, jx, jy)
	return f.Err()
}

// Render draws the diagram and writes it to filename.
func Render(filename string, opts *Options) error {
	f, err := NewFigure(opts)
	if err != nil {
		return err
	}
	if err := Compose(f); err != nil {
		return err
	}
	return f.Write(filename)
}
