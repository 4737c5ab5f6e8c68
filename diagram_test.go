package bidual

import (
	"math"
	"sort"
	"testing"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/test"
)

func composed(t *testing.T) *Figure {
	t.Helper()
	f, err := NewFigure(nil)
	test.Error(t, err)
	test.Error(t, Compose(f))
	return f
}

func TestComposeCounts(t *testing.T) {
	f := composed(t)

	regions := 0
	sets := map[SetRole]int{}
	arrows := map[ArrowRole]int{}
	for _, e := range f.Elements() {
		switch e := e.(type) {
		case *Region:
			regions++
		case *Ellipse:
			sets[e.Role]++
		case *Arrow:
			arrows[e.Role]++
		}
	}
	test.T(t, regions, 2)
	test.T(t, sets[PrimalSet], 2)
	test.T(t, sets[BidualSet], 2)
	test.T(t, sets[EmbeddedSet], 2)
	test.T(t, arrows[Operator], 2)
	test.T(t, arrows[Embedding], 2)
	test.T(t, arrows[Isomorphism], 2)
}

func TestComposeLabels(t *testing.T) {
	f := composed(t)

	texts := []string{}
	for _, l := range f.Labels() {
		texts = append(texts, l.Text())
	}
	sort.Strings(texts)
	test.T(t, texts, []string{"Bidual Spaces", "J_X", "J_X(X)", "J_Y", "J_Y(Y)", "Primal Spaces", "T", "T''", "X", "X''", "Y", "Y''"})
}

func TestComposeOrder(t *testing.T) {
	f := composed(t)

	// backgrounds come first so that every other shape is drawn above them
	elements := f.Elements()
	_, ok := elements[0].(*Region)
	test.That(t, ok, "first element must be a region")

	last := -1
	for i, e := range elements {
		if a, ok := e.(*Arrow); ok && a.Role == Isomorphism {
			last = i
		}
	}
	for i, e := range elements {
		if _, ok := e.(*Arrow); ok && i > last {
			t.Fatalf("arrow %d drawn after the isomorphism arrows", i)
		}
	}
}

func TestNestedSets(t *testing.T) {
	f := composed(t)

	outers := map[float64]*Ellipse{}
	inners := []*Ellipse{}
	for _, e := range f.Elements() {
		if e, ok := e.(*Ellipse); ok {
			switch e.Role {
			case BidualSet:
				outers[e.Center.Y] = e
			case EmbeddedSet:
				inners = append(inners, e)
			}
		}
	}
	test.T(t, len(inners), 2)
	for _, inner := range inners {
		outer, ok := outers[inner.Center.Y]
		test.That(t, ok, "embedded set must lie in a bidual set")
		test.Float(t, inner.Center.X, outer.Center.X-InnerShift)
		test.That(t, outer.Box().Contains(inner.Box()))
		test.That(t, inner.Style.Dashes != nil, "embedded set must be dashed")

		// sample the inner ellipse and check every point against the outer one
		a, b := outer.Width/2.0, outer.Height/2.0
		for i := 0; i < 360; i++ {
			phi := float64(i) * math.Pi / 180.0
			x := inner.Center.X + inner.Width/2.0*math.Cos(phi) - outer.Center.X
			y := inner.Center.Y + inner.Height/2.0*math.Sin(phi) - outer.Center.Y
			test.That(t, (x/a)*(x/a)+(y/b)*(y/b) <= 1.0, "embedded set leaves its bidual set at", phi)
		}
	}
}

func TestComposeBounds(t *testing.T) {
	f := composed(t)

	// font ascenders may reach slightly above the captions' nominal box
	frame := Frame.Expand(0.1)
	for _, e := range f.Elements() {
		test.That(t, frame.Contains(e.Bounds()), "element outside frame:", e.Bounds())
	}
	for _, e := range f.Elements() {
		if _, ok := e.(*Label); ok {
			continue
		}
		test.That(t, Frame.Contains(e.Bounds()), "shape outside frame:", e.Bounds())
	}
}

func TestArrowShrink(t *testing.T) {
	f := composed(t)

	u := mmPerPt / f.Scale()
	for _, e := range f.Elements() {
		a, ok := e.(*Arrow)
		if !ok {
			continue
		}
		test.Float(t, a.Start().Sub(a.From).Length(), a.ShrinkA*u)
		test.Float(t, a.To.Sub(a.End()).Length(), a.ShrinkB*u)
		if a.Role == Isomorphism {
			test.T(t, a.Head, DoubleHead)
			test.That(t, a.Rad != 0.0, "isomorphism arrow must be curved")
		} else {
			test.T(t, a.Head, SingleHead)
			test.Float(t, a.Control().X, (a.Start().X+a.End().X)/2.0)
			test.Float(t, a.Control().Y, (a.Start().Y+a.End().Y)/2.0)
		}
	}
}

func TestIsomorphismArrows(t *testing.T) {
	f, err := NewFigure(nil)
	test.Error(t, err)

	jx, jy := pt(6.2, 5.0), pt(6.2, 2.0)
	DrawIsomorphismArrows(f, jx, jy)
	test.Error(t, f.Err())
	test.T(t, len(f.Elements()), 2)

	top := f.Elements()[0].(*Arrow)
	test.T(t, top.From, pt(1.7, 5.5))
	test.Float(t, top.To.X, 5.9)
	test.Float(t, top.To.Y, 5.5)
	test.That(t, top.Control().Y > 5.5, "top arrow must bend upwards")

	bottom := f.Elements()[1].(*Arrow)
	test.T(t, bottom.From, pt(1.7, 1.5))
	test.That(t, bottom.Control().Y < 1.5, "bottom arrow must bend downwards")
}

func TestDrawArrowLabel(t *testing.T) {
	f, err := NewFigure(nil)
	test.Error(t, err)

	opts := DefaultArrowOptions
	a := DrawArrow(f, pt(0.0, 0.0), pt(2.0, 0.0), "$T$", opts)
	test.Error(t, f.Err())
	test.T(t, a.Label.Pos, pt(1.0, 0.3))
	test.T(t, a.Label.Color, canvas.Black)
	test.T(t, a.Label.Text(), "T")
	test.That(t, a.Label.Bold, "arrow labels are bold")
}

func TestDrawNestedSetsDefaults(t *testing.T) {
	f, err := NewFigure(nil)
	test.Error(t, err)

	jx := DrawNestedSets(f, Anchors.Xpp, "$X''$", "$J_X(X)$", canvas.Point{}, canvas.Point{})
	test.T(t, jx, pt(Anchors.Xpp.X-InnerShift, Anchors.Xpp.Y))

	outer := f.Elements()[0].(*Ellipse)
	test.Float(t, outer.Width, OuterWidth)
	test.Float(t, outer.Height, OuterHeight)
	inner := f.Elements()[1].(*Ellipse)
	test.Float(t, inner.Width, InnerWidth)
	test.Float(t, inner.Height, InnerHeight)

	f, err = NewFigure(nil)
	test.Error(t, err)
	DrawNestedSets(f, Anchors.Xpp, "$X''$", "$J_X(X)$", pt(4.0, 2.0), pt(1.0, 0.5))
	test.Float(t, f.Elements()[0].(*Ellipse).Width, 4.0)
	test.Float(t, f.Elements()[1].(*Ellipse).Height, 0.5)
}

func TestLabelBounds(t *testing.T) {
	f, err := NewFigure(nil)
	test.Error(t, err)

	middle := f.AddLabel(&Label{Markup: "$X$", Pos: pt(1.0, 1.0), Size: 22.0, Bold: true, VAlign: canvas.Middle})
	bottom := f.AddLabel(&Label{Markup: "$X$", Pos: pt(1.0, 1.0), Size: 22.0, Bold: true, VAlign: canvas.Bottom})
	test.Error(t, f.Err())

	r := middle.Bounds()
	test.Float(t, (r.X0+r.X1)/2.0, 1.0)
	test.That(t, r.Y0 < 1.0 && 1.0 < r.Y1, "middle label must straddle its anchor")
	test.Float(t, bottom.Bounds().Y0, 1.0)
	test.That(t, 1.0 < bottom.Bounds().Y1, "bottom label must sit above its anchor")

	sub := f.AddLabel(&Label{Markup: "$J_X$", Pos: pt(1.0, 1.0), Size: 22.0, VAlign: canvas.Middle})
	plain := f.AddLabel(&Label{Markup: "$J$", Pos: pt(1.0, 1.0), Size: 22.0, VAlign: canvas.Middle})
	test.That(t, sub.Bounds().X1 > plain.Bounds().X1, "subscript must widen the label")

	subscripts := 0
	sub.text.WalkSpans(func(_, _ float64, span canvas.TextSpan) {
		if span.Face.Variant == canvas.FontSubscript {
			subscripts++
			test.String(t, span.Text, "X")
		}
	})
	test.T(t, subscripts, 1)
}

func TestFigureError(t *testing.T) {
	f, err := NewFigure(nil)
	test.Error(t, err)

	f.AddLabel(&Label{Markup: "$X", Size: 10.0})
	test.That(t, f.Err() != nil, "malformed markup must set the figure error")

	// later additions are ignored
	f.AddEllipse(&Ellipse{Width: 1.0, Height: 1.0})
	test.T(t, len(f.Elements()), 0)
	test.That(t, Compose(f) != nil)
}

func TestOptions(t *testing.T) {
	opts := Options{Scale: -1.0}
	f, err := NewFigure(&opts)
	test.Error(t, err)
	test.Float(t, f.Scale(), DefaultOptions.Scale)
	test.Float(t, opts.Scale, -1.0)

	opts = Options{}
	_, err = NewFigure(&opts)
	test.Error(t, err)
	test.T(t, opts, Options{})

	f, err = NewFigure(&Options{Scale: 10.0})
	test.Error(t, err)
	test.Float(t, f.Scale(), 10.0)

	test.T(t, f.Bounds(), canvas.Rect{})
}
