package bidual

import (
	"github.com/tdewolff/canvas"
)

const mmPerPt = 25.4 / 72.0

// Frame is the coordinate extent of the diagram in diagram units.
var Frame = canvas.Rect{X0: -0.5, Y0: 0.5, X1: 10.0, Y1: 6.5}

func pt(x, y float64) canvas.Point {
	return canvas.Point{X: x, Y: y}
}

// midpoint returns the average of a and b shifted by offset.
func midpoint(a, b, offset canvas.Point) canvas.Point {
	return a.Add(b).Mul(0.5).Add(offset)
}

// arc3 returns the control point of the quadratic Bézier from a to b with curvature rad.
// The control point lies at the chord's midpoint displaced by rad times the chord rotated clockwise,
// so a negative rad bends a left-to-right arrow upwards.
func arc3(a, b canvas.Point, rad float64) canvas.Point {
	d := b.Sub(a)
	return a.Add(b).Mul(0.5).Add(canvas.Point{X: rad * d.Y, Y: -rad * d.X})
}

// shrink moves a and b towards each other along their chord by da and db respectively.
// Shrinking never lets the endpoints pass each other; they meet at the weighted split point instead.
func shrink(a, b canvas.Point, da, db float64) (canvas.Point, canvas.Point) {
	d := b.Sub(a)
	n := d.Length()
	if n == 0.0 || (da == 0.0 && db == 0.0) {
		return a, b
	} else if n <= da+db {
		m := a.Add(d.Mul(da / (da + db)))
		return m, m
	}
	u := d.Div(n)
	return a.Add(u.Mul(da)), b.Sub(u.Mul(db))
}

// arrowHead returns the two barb ends of an open arrow head with its tip at tip, pointing along dir.
func arrowHead(tip, dir canvas.Point, length, halfWidth float64) (canvas.Point, canvas.Point) {
	if dir.IsZero() {
		return tip, tip
	}
	u := dir.Norm(1.0)
	base := tip.Sub(u.Mul(length))
	n := u.Rot90CCW().Mul(halfWidth)
	return base.Add(n), base.Sub(n)
}
