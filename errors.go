package dubins

import "errors"

var (
	// ErrInvalidRadius is returned when a turn radius is not a positive, finite
	// number.
	ErrInvalidRadius = errors.New("invalid turn radius")

	// ErrUnreachableGeometry is returned when the requested turn pair has no
	// tangent at the given separation. This happens for opposite turns whose
	// circle centers are closer than twice the radius. Callers may retry with
	// another turn pair or a smaller radius.
	ErrUnreachableGeometry = errors.New("unreachable geometry")

	// ErrDegenerateGeometry is returned by [SolveTangent] when two circles with
	// the same turn direction share a center, leaving the connecting segment
	// without a direction. [NewPath] resolves that case itself.
	ErrDegenerateGeometry = errors.New("degenerate geometry")

	// ErrInvalidStep is returned when a sampling step is not a positive, finite
	// number.
	ErrInvalidStep = errors.New("invalid sampling step")

	// ErrInvalidTurn is returned for turn values other than Left and Right.
	ErrInvalidTurn = errors.New("invalid turn")

	// ErrRadiusMismatch is returned by [SolveTangent] for circles of different
	// radii.
	ErrRadiusMismatch = errors.New("circle radii differ")

	// ErrInvalidWaypoint is returned for waypoints with non-finite coordinates
	// or heading.
	ErrInvalidWaypoint = errors.New("invalid waypoint")
)
