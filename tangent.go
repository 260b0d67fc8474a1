package dubins

import (
	"fmt"
	"math"
)

// SolveTangent returns the straight segment that leaves c1 and joins c2 such
// that a vehicle traveling around c1 in its turn direction can follow the
// segment and continue around c2 in that circle's turn direction.
//
// Circles with the same turn direction are joined by an outer tangent, which
// is parallel to the line between their centers. Circles with opposite turn
// directions are joined by an inner tangent that crosses between them; it
// only exists when the centers are at least 2r apart, and ErrUnreachableGeometry
// is returned otherwise. When the centers are exactly 2r apart the segment has
// zero length and sits halfway between the centers.
//
// Both circles must have the same radius. Same-direction circles sharing a
// center yield ErrDegenerateGeometry.
//
// The returned segment's P0 lies on c1 and P1 lies on c2. At both points the
// segment is perpendicular to the circle's radius.
func SolveTangent(c1, c2 TurnCircle) (Line, error) {
	if !c1.Turn.Valid() || !c2.Turn.Valid() {
		return Line{}, fmt.Errorf("%w: %v, %v", ErrInvalidTurn, c1.Turn, c2.Turn)
	}
	if math.Abs(c1.Radius-c2.Radius) > angleEpsilon*max(1, c1.Radius) {
		return Line{}, fmt.Errorf("%w: %g and %g", ErrRadiusMismatch, c1.Radius, c2.Radius)
	}
	r := c1.Radius
	d := c2.Center.Sub(c1.Center)
	dist := d.Hypot()

	if c1.Turn == c2.Turn {
		if dist <= angleEpsilon {
			return Line{}, fmt.Errorf("%w: %v and %v share a center", ErrDegenerateGeometry, c1, c2)
		}
		dir := d.Mul(1 / dist)
		return Line{
			P0: c1.tangentPoint(dir),
			P1: c2.tangentPoint(dir),
		}, nil
	}

	// The center-to-center vector is the hypotenuse of a right triangle whose
	// legs are the segment itself and the 2r offset between the two tangent
	// points' radii.
	gap := dist - 2*r
	switch {
	case gap < -angleEpsilon*max(1, r):
		return Line{}, fmt.Errorf("%w: centers %g apart, %s needs at least %g",
			ErrUnreachableGeometry, dist, crossName(c1.Turn), 2*r)
	case gap <= angleEpsilon*max(1, r):
		mid := c1.Center.Midpoint(c2.Center)
		return Line{P0: mid, P1: mid}, nil
	}
	length := math.Sqrt(dist*dist - 4*r*r)
	angle := d.Angle() + c1.Turn.sign()*math.Atan2(2*r, length)
	dir := VecFromAngle(angle)
	return Line{
		P0: c1.tangentPoint(dir),
		P1: c2.tangentPoint(dir),
	}, nil
}

func crossName(first Turn) string {
	typ, _ := PathTypeFromTurns([2]Turn{first, first.Reverse()})
	return typ.String()
}
