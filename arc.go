package dubins

import "math"

// Arc is a circular arc. A positive SweepAngle runs counter-clockwise, a
// negative one clockwise.
type Arc struct {
	Center     Point
	Radius     float64
	StartAngle float64
	SweepAngle float64
}

// EndAngle returns the angle at which the arc ends, normalized to [0, 2π).
func (a Arc) EndAngle() float64 {
	return NormalizeAngle(a.StartAngle + a.SweepAngle)
}

// Turn returns the direction the arc is traversed in. Arcs with zero sweep
// report Left.
func (a Arc) Turn() Turn {
	if a.SweepAngle < 0 {
		return Right
	}
	return Left
}

// Length returns the arc length.
func (a Arc) Length() float64 {
	return math.Abs(a.SweepAngle) * a.Radius
}

// Eval returns the point at parameter t, with t=0 at the start and t=1 at the
// end of the arc.
func (a Arc) Eval(t float64) Point {
	return pointOnCircle(a.Center, a.Radius, a.StartAngle+t*a.SweepAngle)
}

// At returns the point reached after rotating by the unsigned angle th from
// the start, in the arc's direction.
func (a Arc) At(th float64) Point {
	return pointOnCircle(a.Center, a.Radius, a.StartAngle+math.Copysign(th, a.SweepAngle))
}

// HeadingAt returns the direction of travel after rotating by the unsigned
// angle th from the start.
func (a Arc) HeadingAt(th float64) float64 {
	s := math.Copysign(1, a.SweepAngle)
	return NormalizeAngle(a.StartAngle + s*th + s*math.Pi/2)
}

func (a Arc) Start() Point { return a.Eval(0) }
func (a Arc) End() Point   { return a.Eval(1) }

// BoundingBox returns a rectangle enclosing the arc. It is not tight; it
// encloses the full circle.
func (a Arc) BoundingBox() Rect {
	r := math.Abs(a.Radius)
	return Rect{
		X0: a.Center.X - r,
		Y0: a.Center.Y - r,
		X1: a.Center.X + r,
		Y1: a.Center.Y + r,
	}
}
