package dubins

import (
	"errors"
	"fmt"
	"math"
)

// Path is a Curve-Straight-Curve Dubins path: an arc around the origin's turn
// circle, a straight tangent segment, and an arc around the terminus' turn
// circle. Either arc and the segment may have zero length.
//
// A Path is immutable. Changing any input means building a new Path.
type Path struct {
	origin   Waypoint
	terminus Waypoint
	radius   float64
	typ      PathType
	circles  [2]TurnCircle
	tangent  Line
	heading  float64
	arcs     [2]Arc
}

// NewPath builds the Dubins path from origin to terminus with the given turn
// radius, turning turns[0] at the origin and turns[1] at the terminus.
//
// It returns ErrInvalidRadius for radii that aren't positive and finite,
// ErrInvalidTurn for turn values other than Left and Right, and
// ErrUnreachableGeometry when opposite turns are requested for circles less
// than 2·radius apart.
//
// When both turns are the same and both turn circles coincide, the terminus
// lies on the origin's circle. The result is then a single arc from the
// origin to the terminus, followed by a zero-length segment and a zero-length
// second arc at the terminus.
func NewPath(origin, terminus Waypoint, radius float64, turns [2]Turn) (Path, error) {
	typ, err := PathTypeFromTurns(turns)
	if err != nil {
		return Path{}, err
	}
	c1, err := NewTurnCircle(origin, radius, turns[0])
	if err != nil {
		return Path{}, fmt.Errorf("origin circle: %w", err)
	}
	c2, err := NewTurnCircle(terminus, radius, turns[1])
	if err != nil {
		return Path{}, fmt.Errorf("terminus circle: %w", err)
	}

	p := Path{
		origin:   origin,
		terminus: terminus,
		radius:   radius,
		typ:      typ,
		circles:  [2]TurnCircle{c1, c2},
	}

	tangent, err := SolveTangent(c1, c2)
	switch {
	case errors.Is(err, ErrDegenerateGeometry):
		tangent = Line{P0: terminus.Position, P1: terminus.Position}
	case err != nil:
		return Path{}, fmt.Errorf("%v path from %v to %v: %w", typ, origin, terminus, err)
	}
	p.tangent = tangent

	start := c1.AngleOf(origin.Position)
	end := c1.AngleOf(tangent.P0)
	p.arcs[0] = Arc{
		Center:     c1.Center,
		Radius:     radius,
		StartAngle: start,
		SweepAngle: c1.Sweep(start, end),
	}
	start = c2.AngleOf(tangent.P1)
	end = c2.AngleOf(terminus.Position)
	p.arcs[1] = Arc{
		Center:     c2.Center,
		Radius:     radius,
		StartAngle: start,
		SweepAngle: c2.Sweep(start, end),
	}

	if tangent.Length() > angleEpsilon {
		p.heading = NormalizeAngle(tangent.P1.Sub(tangent.P0).Angle())
	} else {
		p.heading = c1.HeadingAt(c1.AngleOf(tangent.P0))
	}
	return p, nil
}

// NewPathOfType is like [NewPath] but takes the turn pair as a [PathType].
func NewPathOfType(origin, terminus Waypoint, radius float64, typ PathType) (Path, error) {
	turns := typ.Turns()
	if !turns[0].Valid() {
		return Path{}, fmt.Errorf("%w: %v", ErrInvalidTurn, typ)
	}
	return NewPath(origin, terminus, radius, turns)
}

func (p Path) Origin() Waypoint   { return p.origin }
func (p Path) Terminus() Waypoint { return p.terminus }
func (p Path) Radius() float64    { return p.radius }
func (p Path) Type() PathType     { return p.typ }

// Turns returns the turn directions at the origin and at the terminus.
func (p Path) Turns() [2]Turn {
	return [2]Turn{p.circles[0].Turn, p.circles[1].Turn}
}

// OriginCircle returns the turn circle anchored at the origin.
func (p Path) OriginCircle() TurnCircle { return p.circles[0] }

// TerminusCircle returns the turn circle anchored at the terminus.
func (p Path) TerminusCircle() TurnCircle { return p.circles[1] }

// Circles returns both turn circles, origin first.
func (p Path) Circles() [2]TurnCircle { return p.circles }

// Tangent returns the straight segment of the path. It may have zero length.
func (p Path) Tangent() Line { return p.tangent }

// HasStraight reports whether the path has a straight segment of non-zero
// length. Paths without one consist of two arcs joined directly.
func (p Path) HasStraight() bool { return p.tangent.Length() > angleEpsilon }

// StraightHeading returns the heading along the straight segment. For
// zero-length segments it is the heading at the point where the arcs meet.
func (p Path) StraightHeading() float64 { return p.heading }

// FirstArc returns the arc around the origin circle, from the origin to the
// start of the straight segment.
func (p Path) FirstArc() Arc { return p.arcs[0] }

// SecondArc returns the arc around the terminus circle, from the end of the
// straight segment to the terminus.
func (p Path) SecondArc() Arc { return p.arcs[1] }

// SegmentLengths returns the lengths of the first arc, the straight segment
// and the second arc.
func (p Path) SegmentLengths() [3]float64 {
	return [3]float64{p.arcs[0].Length(), p.tangent.Length(), p.arcs[1].Length()}
}

// Length returns the total length of the path.
func (p Path) Length() float64 {
	l := p.SegmentLengths()
	return l[0] + l[1] + l[2]
}

// BoundingBox returns a rectangle enclosing the path and both of its turn
// circles.
func (p Path) BoundingBox() Rect {
	return p.arcs[0].BoundingBox().Union(p.arcs[1].BoundingBox()).Union(p.tangent.BoundingBox())
}

func (p Path) String() string {
	l := p.SegmentLengths()
	return fmt.Sprintf("%v path from %v to %v (%.6g + %.6g + %.6g = %.6g)",
		p.typ, p.origin, p.terminus, l[0], l[1], l[2], p.Length())
}

// straightDir returns the unit direction of the straight segment.
func (p Path) straightDir() Vec2 {
	return VecFromAngle(p.heading)
}

// sweep returns the unsigned sweep of arc i.
func (p Path) sweep(i int) float64 {
	return math.Abs(p.arcs[i].SweepAngle)
}
