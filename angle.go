package dubins

import "math"

// All angles in this package are in radians, measured counter-clockwise from
// the positive x axis. Conversions from other conventions happen once, at the
// boundary (see [WaypointFromCourse]).

// angleEpsilon is the tolerance below which two angles or lengths are
// considered equal.
const angleEpsilon = 1e-9

// NormalizeAngle maps an angle in radians to the range [0, 2π).
func NormalizeAngle(th float64) float64 {
	th = math.Mod(th, 2*math.Pi)
	if th < 0 {
		th += 2 * math.Pi
	}
	if th >= 2*math.Pi {
		// A tiny negative input can round up to exactly 2π.
		th = 0
	}
	return th
}

// Radians converts degrees to radians.
func Radians(deg float64) float64 {
	return deg * (math.Pi / 180)
}

// Degrees converts radians to degrees.
func Degrees(rad float64) float64 {
	return rad * (180 / math.Pi)
}

// CourseToHeading converts a compass course, in degrees clockwise from the
// positive y axis, to a heading in radians counter-clockwise from the positive
// x axis, normalized to [0, 2π).
func CourseToHeading(course float64) float64 {
	return NormalizeAngle(Radians(90 - course))
}

// HeadingToCourse is the inverse of [CourseToHeading]. The result is in
// [0, 360).
func HeadingToCourse(heading float64) float64 {
	c := math.Mod(90-Degrees(heading), 360)
	if c < 0 {
		c += 360
	}
	if c >= 360 {
		c = 0
	}
	return c
}

// rotation returns the positive rotation, in [0, 2π), needed to get from
// angle from to angle to while turning in direction t. Rotations within
// angleEpsilon of a full turn are reported as zero.
func rotation(from, to float64, t Turn) float64 {
	var d float64
	if t == Left {
		d = NormalizeAngle(to - from)
	} else {
		d = NormalizeAngle(from - to)
	}
	if d > 2*math.Pi-angleEpsilon {
		d = 0
	}
	return d
}
