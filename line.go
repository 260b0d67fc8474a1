package dubins

import "math"

// Line represents a line segment.
type Line struct {
	// The line's start point.
	P0 Point
	// The line's end point.
	P1 Point
}

// Length returns the length of the line.
func (l Line) Length() float64 {
	return l.P1.Sub(l.P0).Hypot()
}

// Direction returns the unit vector from P0 to P1. It is NaN for lines of
// zero length.
func (l Line) Direction() Vec2 {
	return l.P1.Sub(l.P0).Normalize()
}

// DistanceTo returns the distance of pt from the infinite line through P0 and
// P1. For lines of zero length it is the distance to P0.
func (l Line) DistanceTo(pt Point) float64 {
	d := l.P1.Sub(l.P0)
	n := d.Hypot()
	if n == 0 {
		return pt.Distance(l.P0)
	}
	return math.Abs(d.Cross(pt.Sub(l.P0))) / n
}

func (l Line) BoundingBox() Rect {
	return NewRectFromPoints(l.P0, l.P1)
}
