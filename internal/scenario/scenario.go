// Package scenario loads the description of a single Dubins path problem:
// two waypoints, a turn radius, a turn pair and the sampling steps.
//
// Scenarios are stored as TOML:
//
//	radius = 2.0
//	turns = "RL"
//	course = true
//
//	[origin]
//	x = 10.0
//	y = 0.0
//	heading = 60.0
//
//	[terminus]
//	x = 0.0
//	y = 4.0
//	heading = 120.0
//
//	[sampling]
//	angular_step = 1.0
//	linear_step = 0.5
//
// With course set, headings are compass courses in degrees, clockwise from
// north, and the angular step is in degrees. Otherwise headings and the
// angular step are in radians, counter-clockwise from the positive x axis.
package scenario

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/pelletier/go-toml/v2"

	"honnef.co/go/dubins"
)

// Default sampling steps, used when a scenario leaves them unset.
const (
	DefaultAngularStepDegrees = 1.0
	DefaultLinearStep         = 0.5
)

var ErrInvalid = errors.New("invalid scenario")

type Waypoint struct {
	X       float64 `toml:"x"`
	Y       float64 `toml:"y"`
	Heading float64 `toml:"heading"`
}

type Sampling struct {
	// Zero selects the default.
	AngularStep float64 `toml:"angular_step,omitempty"`
	// Zero selects the default.
	LinearStep float64 `toml:"linear_step,omitempty"`
}

type Scenario struct {
	Radius   float64  `toml:"radius"`
	Turns    string   `toml:"turns"`
	Course   bool     `toml:"course"`
	Origin   Waypoint `toml:"origin"`
	Terminus Waypoint `toml:"terminus"`
	Sampling Sampling `toml:"sampling"`
}

// Default returns a right-straight-left scenario between (10, 0) and (0, 4).
func Default() Scenario {
	return Scenario{
		Radius:   2,
		Turns:    "RL",
		Course:   true,
		Origin:   Waypoint{X: 10, Y: 0, Heading: 60},
		Terminus: Waypoint{X: 0, Y: 4, Heading: 120},
		Sampling: Sampling{AngularStep: DefaultAngularStepDegrees, LinearStep: DefaultLinearStep},
	}
}

// Load reads and validates the scenario stored in the named file.
func Load(path string) (Scenario, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Scenario{}, err
	}
	s, err := Decode(bytes.NewReader(b))
	if err != nil {
		return Scenario{}, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Decode reads and validates a scenario. Unknown keys are rejected.
func Decode(r io.Reader) (Scenario, error) {
	var s Scenario
	dec := toml.NewDecoder(r).DisallowUnknownFields()
	if err := dec.Decode(&s); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			row, col := derr.Position()
			return Scenario{}, fmt.Errorf("%w: line %d, column %d: %s", ErrInvalid, row, col, derr.Error())
		}
		return Scenario{}, fmt.Errorf("%w: %s", ErrInvalid, err)
	}
	if err := s.Validate(); err != nil {
		return Scenario{}, err
	}
	return s, nil
}

// Encode writes the scenario as TOML.
func (s Scenario) Encode(w io.Writer) error {
	return toml.NewEncoder(w).Encode(s)
}

// Validate checks the scenario for values that can never produce a path.
// Whether the two waypoints can be joined with the requested turns is only
// known once the path is built.
func (s Scenario) Validate() error {
	if !(s.Radius > 0) || math.IsInf(s.Radius, 0) {
		return fmt.Errorf("%w: radius must be positive, got %g", ErrInvalid, s.Radius)
	}
	if _, err := dubins.ParsePathType(s.Turns); err != nil {
		return fmt.Errorf("%w: turns: %w", ErrInvalid, err)
	}
	for name, wp := range map[string]Waypoint{"origin": s.Origin, "terminus": s.Terminus} {
		for _, v := range [3]float64{wp.X, wp.Y, wp.Heading} {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return fmt.Errorf("%w: %s: non-finite value %g", ErrInvalid, name, v)
			}
		}
	}
	if s.Sampling.AngularStep < 0 || math.IsNaN(s.Sampling.AngularStep) {
		return fmt.Errorf("%w: angular step must not be negative, got %g", ErrInvalid, s.Sampling.AngularStep)
	}
	if s.Sampling.LinearStep < 0 || math.IsNaN(s.Sampling.LinearStep) {
		return fmt.Errorf("%w: linear step must not be negative, got %g", ErrInvalid, s.Sampling.LinearStep)
	}
	return nil
}

func (s Scenario) waypoint(wp Waypoint) dubins.Waypoint {
	if s.Course {
		return dubins.WaypointFromCourse(wp.X, wp.Y, wp.Heading)
	}
	return dubins.NewWaypoint(wp.X, wp.Y, wp.Heading)
}

// Waypoints returns the origin and terminus.
func (s Scenario) Waypoints() (origin, terminus dubins.Waypoint) {
	return s.waypoint(s.Origin), s.waypoint(s.Terminus)
}

// PathType returns the requested turn pair.
func (s Scenario) PathType() (dubins.PathType, error) {
	return dubins.ParsePathType(s.Turns)
}

// Steps returns the angular step in radians and the linear step, with
// defaults filled in.
func (s Scenario) Steps() (angular, linear float64) {
	angular = s.Sampling.AngularStep
	switch {
	case angular == 0:
		angular = dubins.Radians(DefaultAngularStepDegrees)
	case s.Course:
		angular = dubins.Radians(angular)
	}
	linear = s.Sampling.LinearStep
	if linear == 0 {
		linear = DefaultLinearStep
	}
	return angular, linear
}

// Path builds the scenario's path.
func (s Scenario) Path() (dubins.Path, error) {
	if err := s.Validate(); err != nil {
		return dubins.Path{}, err
	}
	typ, err := s.PathType()
	if err != nil {
		return dubins.Path{}, err
	}
	origin, terminus := s.Waypoints()
	return dubins.NewPathOfType(origin, terminus, s.Radius, typ)
}
