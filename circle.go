package dubins

import (
	"fmt"
	"math"
)

// TurnCircle is the circle a vehicle follows while turning at a waypoint.
type TurnCircle struct {
	Center Point
	Radius float64
	Turn   Turn
}

// NewTurnCircle returns the circle of the given radius that is tangent to the
// waypoint's heading and lies on the side of turn t. For Left the center is
// 90° counter-clockwise from the heading, for Right 90° clockwise.
func NewTurnCircle(wp Waypoint, radius float64, t Turn) (TurnCircle, error) {
	if !(radius > 0) || math.IsInf(radius, 0) {
		return TurnCircle{}, fmt.Errorf("%w: %g", ErrInvalidRadius, radius)
	}
	if !t.Valid() {
		return TurnCircle{}, fmt.Errorf("%w: %v", ErrInvalidTurn, t)
	}
	if err := wp.validate(); err != nil {
		return TurnCircle{}, err
	}
	off := wp.Direction().Perp().Mul(t.sign() * radius)
	return TurnCircle{
		Center: wp.Position.Translate(off),
		Radius: radius,
		Turn:   t,
	}, nil
}

// PointAt returns the point on the circle at the given angle.
func (c TurnCircle) PointAt(angle float64) Point {
	return pointOnCircle(c.Center, c.Radius, angle)
}

// AngleOf returns the angle of pt as seen from the circle's center, in
// [0, 2π).
func (c TurnCircle) AngleOf(pt Point) float64 {
	return NormalizeAngle(pt.Sub(c.Center).Angle())
}

// Sweep returns the signed rotation from angle from to angle to, traveling in
// the circle's turn direction. The magnitude is in [0, 2π); the result is
// positive for Left and negative for Right circles.
func (c TurnCircle) Sweep(from, to float64) float64 {
	return c.Turn.sign() * rotation(from, to, c.Turn)
}

// HeadingAt returns the direction of travel at the point on the circle at the
// given angle.
func (c TurnCircle) HeadingAt(angle float64) float64 {
	return NormalizeAngle(angle + c.Turn.sign()*math.Pi/2)
}

// tangentPoint returns the point at which a vehicle traveling around c leaves
// it in direction dir, which must be a unit vector.
func (c TurnCircle) tangentPoint(dir Vec2) Point {
	return c.Center.Translate(dir.Perp().Mul(-c.Turn.sign() * c.Radius))
}

func (c TurnCircle) String() string {
	return fmt.Sprintf("%v circle at %v, r=%g", c.Turn, c.Center, c.Radius)
}

func pointOnCircle(center Point, radius float64, angle float64) Point {
	sin, cos := math.Sincos(angle)
	return center.Translate(
		Vec2{
			X: cos * radius,
			Y: sin * radius,
		})
}
