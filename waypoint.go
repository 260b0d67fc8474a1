package dubins

import (
	"fmt"
	"math"
)

// Waypoint is an oriented position: where the vehicle is and which way it is
// heading. Waypoints are values and are never modified after construction.
type Waypoint struct {
	Position Point
	// Heading in radians, counter-clockwise from the positive x axis, in
	// [0, 2π).
	Heading float64
}

// NewWaypoint returns the waypoint at (x, y) with the given heading in
// radians. The heading is normalized to [0, 2π).
func NewWaypoint(x, y, heading float64) Waypoint {
	return Waypoint{
		Position: Pt(x, y),
		Heading:  NormalizeAngle(heading),
	}
}

// WaypointFromCourse returns the waypoint at (x, y) with a compass course,
// given in degrees clockwise from the positive y axis.
func WaypointFromCourse(x, y, course float64) Waypoint {
	return Waypoint{
		Position: Pt(x, y),
		Heading:  CourseToHeading(course),
	}
}

// Course returns the waypoint's heading as a compass course in degrees.
func (wp Waypoint) Course() float64 {
	return HeadingToCourse(wp.Heading)
}

// Direction returns the unit vector pointing along the heading.
func (wp Waypoint) Direction() Vec2 {
	return VecFromAngle(wp.Heading)
}

// Distance returns the distance between the positions of two waypoints.
func (wp Waypoint) Distance(o Waypoint) float64 {
	return wp.Position.Distance(o.Position)
}

func (wp Waypoint) String() string {
	return fmt.Sprintf("%v@%gπ", wp.Position, wp.Heading/math.Pi)
}

func (wp Waypoint) validate() error {
	if !wp.Position.isFinite() || math.IsNaN(wp.Heading) || math.IsInf(wp.Heading, 0) {
		return fmt.Errorf("%w: %v", ErrInvalidWaypoint, wp)
	}
	return nil
}
