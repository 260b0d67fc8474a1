// Package dubins computes Dubins paths: the paths a vehicle with a minimum
// turning radius follows between two oriented waypoints, made of an arc, a
// straight segment, and another arc.
//
// # Conventions
//
// Coordinates are Cartesian with y pointing up. Headings and angles are in
// radians, measured counter-clockwise from the positive x axis, and
// normalized to [0, 2π) (see [NormalizeAngle]). Waypoints given as compass
// courses, in degrees clockwise from the positive y axis, can be built with
// [WaypointFromCourse].
//
// Arcs use signed sweeps: positive sweeps turn counter-clockwise ([Left]),
// negative sweeps clockwise ([Right]).
//
// # Building paths
//
// The caller picks the turn at each end. [NewPath] takes an origin, a
// terminus, a turn radius and a pair of [Turn] values, and builds the
// Curve-Straight-Curve path of the corresponding [PathType]:
//
//   - [LSL] and [RSR] paths join the turn circles with an outer tangent,
//     which always exists.
//   - [LSR] and [RSL] paths join them with an inner tangent, which only exists
//     when the circle centers are at least twice the radius apart. Otherwise
//     NewPath returns [ErrUnreachableGeometry].
//
// The package doesn't search for the shortest of the four paths, and it
// doesn't build Curve-Curve-Curve paths.
//
// The building blocks are exported as well: [NewTurnCircle] constructs the
// circle a vehicle follows when turning at a waypoint, and [SolveTangent]
// finds the segment joining two such circles.
//
// # Sampling
//
// [Path.Sample] turns a path into a sequence of points, sampling the arcs at
// a fixed angular step and the straight segment at a fixed linear step. The
// sequence starts exactly at the origin and ends exactly at the terminus.
// [Path.Poses] additionally reports the heading at every point, and
// [Path.PathElements] produces a polyline that can be written as SVG path
// data with [WriteSVG].
//
// # Errors
//
// Invalid input is reported through sentinel errors, such as
// [ErrInvalidRadius] and [ErrInvalidStep], wrapped with additional context.
// Use [errors.Is] to check for them. No partial results are returned.
//
// # Literature
//
//   - [Dubins path generation for a fixed wing UAV] by Lugo-Cárdenas, Flores, Salazar and Lozano
//   - [On Curves of Minimal Length with a Constraint on Average Curvature] by L. E. Dubins
//
// [Dubins path generation for a fixed wing UAV]: https://doi.org/10.1109/ICUAS.2014.6842272
// [On Curves of Minimal Length with a Constraint on Average Curvature]: https://doi.org/10.2307/2372560
package dubins
