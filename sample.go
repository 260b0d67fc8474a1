package dubins

import (
	"fmt"
	"iter"
	"math"
	"slices"
)

// Pose is a sampled point together with the vehicle's heading there.
type Pose struct {
	Point
	// Heading in radians, counter-clockwise from the positive x axis.
	Heading float64
}

// piece is one of the three parts of a path, walked by the sampler.
type piece struct {
	total float64 // sweep in radians for arcs, length for the segment
	step  float64
	at    func(u float64) Pose
	end   Pose
}

func checkSteps(angularStep, linearStep float64) error {
	if !(angularStep > 0) || math.IsInf(angularStep, 0) {
		return fmt.Errorf("%w: angular step %g", ErrInvalidStep, angularStep)
	}
	if !(linearStep > 0) || math.IsInf(linearStep, 0) {
		return fmt.Errorf("%w: linear step %g", ErrInvalidStep, linearStep)
	}
	return nil
}

// Poses returns an iterator over points along the path together with the
// heading at each point. Arcs are sampled every angularStep radians, the
// straight segment every linearStep length units.
//
// The first pose is exactly the origin and the last pose is exactly the
// terminus. The points where the arcs meet the straight segment are included
// once each. When a step doesn't divide a part evenly, the last regular sample
// of that part is followed directly by the part's end point.
//
// Both steps must be positive and finite, otherwise ErrInvalidStep is
// returned and no iterator is produced.
func (p Path) Poses(angularStep, linearStep float64) (iter.Seq[Pose], error) {
	if err := checkSteps(angularStep, linearStep); err != nil {
		return nil, err
	}

	a1, a2 := p.arcs[0], p.arcs[1]
	dir := p.straightDir()
	tangentStart := Pose{p.tangent.P0, p.heading}
	pieces := [3]piece{
		{
			total: p.sweep(0),
			step:  angularStep,
			at:    func(u float64) Pose { return Pose{a1.At(u), a1.HeadingAt(u)} },
			end:   tangentStart,
		},
		{
			total: p.tangent.Length(),
			step:  linearStep,
			at:    func(u float64) Pose { return Pose{p.tangent.P0.Translate(dir.Mul(u)), p.heading} },
			end:   Pose{p.tangent.P1, p.heading},
		},
		{
			total: p.sweep(1),
			step:  angularStep,
			at:    func(u float64) Pose { return Pose{a2.At(u), a2.HeadingAt(u)} },
			end:   Pose{p.terminus.Position, p.terminus.Heading},
		},
	}

	// Index of the last part that has any extent; its end point is replaced
	// by the terminus.
	last := -1
	for i, pc := range pieces {
		if pc.total > angleEpsilon {
			last = i
		}
	}

	origin := Pose{p.origin.Position, p.origin.Heading}
	terminus := Pose{p.terminus.Position, p.terminus.Heading}
	return func(yield func(Pose) bool) {
		if !yield(origin) {
			return
		}
		for i, pc := range pieces[:last+1] {
			if pc.total <= angleEpsilon {
				continue
			}
			for k := 1; ; k++ {
				u := float64(k) * pc.step
				if u >= pc.total-angleEpsilon {
					break
				}
				if !yield(pc.at(u)) {
					return
				}
			}
			if i == last {
				break
			}
			if !yield(pc.end) {
				return
			}
		}
		if last >= 0 || terminus.Point != origin.Point {
			yield(terminus)
		}
	}, nil
}

// Sample returns an iterator over the points of the path, as described by
// [Path.Poses].
func (p Path) Sample(angularStep, linearStep float64) (iter.Seq[Point], error) {
	poses, err := p.Poses(angularStep, linearStep)
	if err != nil {
		return nil, err
	}
	return func(yield func(Point) bool) {
		for pose := range poses {
			if !yield(pose.Point) {
				return
			}
		}
	}, nil
}

// Points returns the points of the path in a slice. See [Path.Sample].
func (p Path) Points(angularStep, linearStep float64) ([]Point, error) {
	seq, err := p.Sample(angularStep, linearStep)
	if err != nil {
		return nil, err
	}
	return slices.Collect(seq), nil
}
