package dubins

import (
	"fmt"
	"strings"
)

// Turn is the direction in which a vehicle turns at a waypoint.
type Turn uint8

const (
	Left Turn = iota + 1
	Right
)

func (t Turn) String() string {
	switch t {
	case Left:
		return "Left"
	case Right:
		return "Right"
	default:
		return fmt.Sprintf("Turn(%d)", t)
	}
}

// Valid reports whether t is Left or Right.
func (t Turn) Valid() bool {
	return t == Left || t == Right
}

// Reverse returns the opposite turn direction.
func (t Turn) Reverse() Turn {
	switch t {
	case Left:
		return Right
	case Right:
		return Left
	default:
		return t
	}
}

// sign returns +1 for counter-clockwise (left) and −1 for clockwise (right)
// rotation.
func (t Turn) sign() float64 {
	if t == Left {
		return 1
	}
	return -1
}

// ParseTurn parses a single turn letter, "L" or "R", case-insensitively. It
// also accepts the full names "left" and "right".
func ParseTurn(s string) (Turn, error) {
	switch {
	case strings.EqualFold(s, "l"), strings.EqualFold(s, "left"):
		return Left, nil
	case strings.EqualFold(s, "r"), strings.EqualFold(s, "right"):
		return Right, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidTurn, s)
	}
}

// PathType is the class of a Curve-Straight-Curve path, named after its
// turn pair.
type PathType uint8

const (
	LSL PathType = iota + 1
	RSR
	LSR
	RSL
)

func (pt PathType) String() string {
	switch pt {
	case LSL:
		return "LSL"
	case RSR:
		return "RSR"
	case LSR:
		return "LSR"
	case RSL:
		return "RSL"
	default:
		return fmt.Sprintf("PathType(%d)", pt)
	}
}

// Turns returns the turn pair of the path type.
func (pt PathType) Turns() [2]Turn {
	switch pt {
	case LSL:
		return [2]Turn{Left, Left}
	case RSR:
		return [2]Turn{Right, Right}
	case LSR:
		return [2]Turn{Left, Right}
	case RSL:
		return [2]Turn{Right, Left}
	default:
		return [2]Turn{}
	}
}

// PathTypeFromTurns returns the path type for an ordered turn pair.
func PathTypeFromTurns(turns [2]Turn) (PathType, error) {
	switch turns {
	case [2]Turn{Left, Left}:
		return LSL, nil
	case [2]Turn{Right, Right}:
		return RSR, nil
	case [2]Turn{Left, Right}:
		return LSR, nil
	case [2]Turn{Right, Left}:
		return RSL, nil
	default:
		return 0, fmt.Errorf("%w: %v", ErrInvalidTurn, turns)
	}
}

// ParsePathType parses a turn pair written as two letters, such as "RL",
// or as a path type name, such as "RSL".
func ParsePathType(s string) (PathType, error) {
	switch len(s) {
	case 2:
	case 3:
		if s[1] != 'S' && s[1] != 's' {
			return 0, fmt.Errorf("%w: %q", ErrInvalidTurn, s)
		}
		s = s[:1] + s[2:]
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidTurn, s)
	}
	t1, err := ParseTurn(s[:1])
	if err != nil {
		return 0, err
	}
	t2, err := ParseTurn(s[1:])
	if err != nil {
		return 0, err
	}
	return PathTypeFromTurns([2]Turn{t1, t2})
}
