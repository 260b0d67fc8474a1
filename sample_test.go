package dubins

import (
	"errors"
	"math"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

// checkSamples verifies that pts, sampled from p, start at the origin, end at
// the terminus, and visit the first arc, the straight segment and the second
// arc in that order, without gaps larger than the sampling steps.
func checkSamples(t *testing.T, p Path, pts []Point, angularStep, linearStep float64) {
	t.Helper()
	if len(pts) == 0 {
		t.Fatal("no points")
	}
	if pts[0] != p.Origin().Position {
		t.Errorf("first point is %v, want %v", pts[0], p.Origin().Position)
	}
	if pts[len(pts)-1] != p.Terminus().Position {
		t.Errorf("last point is %v, want %v", pts[len(pts)-1], p.Terminus().Position)
	}

	tangent := p.Tangent()
	onCircle := func(c TurnCircle, pt Point) bool {
		return approxEqual(pt.Distance(c.Center), c.Radius)
	}
	onSegment := func(pt Point) bool {
		if tangent.DistanceTo(pt) > tolerance {
			return false
		}
		if tangent.Length() == 0 {
			return true
		}
		u := pt.Sub(tangent.P0).Dot(tangent.Direction())
		return u >= -tolerance && u <= tangent.Length()+tolerance
	}
	phases := [3]func(Point) bool{
		func(pt Point) bool { return onCircle(p.OriginCircle(), pt) },
		onSegment,
		func(pt Point) bool { return onCircle(p.TerminusCircle(), pt) },
	}

	phase := 0
	for i, pt := range pts {
		for phase < len(phases) && !phases[phase](pt) {
			phase++
		}
		if phase == len(phases) {
			t.Fatalf("point %d %v is on neither circle nor the straight segment, or out of order", i, pt)
		}
	}

	maxStep := max(angularStep*p.Radius(), linearStep) + tolerance
	var total float64
	for i := 1; i < len(pts); i++ {
		d := pts[i].Distance(pts[i-1])
		if d > maxStep {
			t.Errorf("points %d and %d are %v apart, more than %v", i-1, i, d, maxStep)
		}
		total += d
	}
	if total > p.Length()+tolerance {
		t.Errorf("sampled polyline is %v long, longer than the path's %v", total, p.Length())
	}
}

func TestSampleStraight(t *testing.T) {
	p := mustPath(t, NewWaypoint(0, 0, 0), NewWaypoint(10, 0, 0), 2, [2]Turn{Right, Right})

	pts, err := p.Points(0.1, 1)
	if err != nil {
		t.Fatal(err)
	}
	want := make([]Point, 11)
	for i := range want {
		want[i] = Pt(float64(i), 0)
	}
	diff(t, want, pts, cmpopts.EquateApprox(0, tolerance))

	// 3 doesn't divide 10; the last regular sample is followed by the
	// terminus.
	pts, err = p.Points(0.1, 3)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, []Point{Pt(0, 0), Pt(3, 0), Pt(6, 0), Pt(9, 0), Pt(10, 0)}, pts, cmpopts.EquateApprox(0, tolerance))
}

func TestSampleArcs(t *testing.T) {
	p := mustPath(t, NewWaypoint(0, 0, math.Pi/2), NewWaypoint(10, 0, 3*math.Pi/2), 2, [2]Turn{Right, Right})
	pts, err := p.Points(math.Pi/4, 2)
	if err != nil {
		t.Fatal(err)
	}
	s := math.Sqrt2
	want := []Point{
		Pt(0, 0),
		Pt(2-s, s),
		Pt(2, 2),
		Pt(4, 2),
		Pt(6, 2),
		Pt(8, 2),
		Pt(8+s, s),
		Pt(10, 0),
	}
	diff(t, want, pts, cmpopts.EquateApprox(0, tolerance))
	checkSamples(t, p, pts, math.Pi/4, 2)
}

func TestSampleProperties(t *testing.T) {
	origins := []Waypoint{
		NewWaypoint(0, 0, 0),
		NewWaypoint(10, 0, math.Pi/3),
		NewWaypoint(-3, 5, 4),
		WaypointFromCourse(0, 0, 300),
	}
	termini := []Waypoint{
		NewWaypoint(0, 4, 2),
		NewWaypoint(7, -2, 5.5),
		NewWaypoint(1, 1, 0),
		WaypointFromCourse(10, 4, 330),
	}
	steps := [][2]float64{{0.05, 0.1}, {Radians(1), 0.5}, {1, 3}}

	var built int
	for _, o := range origins {
		for _, d := range termini {
			for _, r := range []float64{0.5, 1, 2} {
				for _, typ := range []PathType{LSL, RSR, LSR, RSL} {
					p, err := NewPathOfType(o, d, r, typ)
					if err != nil {
						if !errors.Is(err, ErrUnreachableGeometry) {
							t.Errorf("%v from %v to %v, r=%v: %s", typ, o, d, r, err)
						}
						c1, _ := NewTurnCircle(o, r, typ.Turns()[0])
						c2, _ := NewTurnCircle(d, r, typ.Turns()[1])
						if dist := c1.Center.Distance(c2.Center); typ == LSL || typ == RSR || dist >= 2*r {
							t.Errorf("%v from %v to %v, r=%v: unexpectedly unreachable, centers %v apart", typ, o, d, r, dist)
						}
						continue
					}
					built++
					checkTangent(t, p.OriginCircle(), p.TerminusCircle(), p.Tangent())
					for _, st := range steps {
						pts, err := p.Points(st[0], st[1])
						if err != nil {
							t.Fatal(err)
						}
						checkSamples(t, p, pts, st[0], st[1])
					}
				}
			}
		}
	}
	if built == 0 {
		t.Fatal("no paths were built")
	}
}

func TestSamplePolylineLength(t *testing.T) {
	p := mustPath(t, NewWaypoint(-3, 5, 4), NewWaypoint(7, -2, 5.5), 1, [2]Turn{Left, Right})
	pts, err := p.Points(0.001, 0.01)
	if err != nil {
		t.Fatal(err)
	}
	var total float64
	for i := 1; i < len(pts); i++ {
		total += pts[i].Distance(pts[i-1])
	}
	if math.Abs(total-p.Length()) > 1e-6*p.Length() {
		t.Errorf("polyline is %v long, path is %v", total, p.Length())
	}
}

func TestSampleInvalidStep(t *testing.T) {
	p := mustPath(t, NewWaypoint(0, 0, 0), NewWaypoint(10, 0, 0), 2, [2]Turn{Left, Left})
	for _, st := range [][2]float64{{0, 1}, {1, 0}, {-1, 1}, {1, -0.5}, {math.NaN(), 1}, {1, math.Inf(1)}} {
		if _, err := p.Sample(st[0], st[1]); !errors.Is(err, ErrInvalidStep) {
			t.Errorf("steps %v: got error %v, want ErrInvalidStep", st, err)
		}
		if pts, err := p.Points(st[0], st[1]); !errors.Is(err, ErrInvalidStep) || pts != nil {
			t.Errorf("steps %v: got %v, %v; want no points and ErrInvalidStep", st, pts, err)
		}
	}
}

func TestSampleStop(t *testing.T) {
	p := mustPath(t, NewWaypoint(0, 0, 0), NewWaypoint(10, 0, 0), 2, [2]Turn{Right, Right})
	seq, err := p.Sample(0.1, 1)
	if err != nil {
		t.Fatal(err)
	}
	var got []Point
	for pt := range seq {
		got = append(got, pt)
		if len(got) == 3 {
			break
		}
	}
	diff(t, []Point{Pt(0, 0), Pt(1, 0), Pt(2, 0)}, got, cmpopts.EquateApprox(0, tolerance))

	// The iterator can be consumed again and produces the same points.
	all := slices.Collect(seq)
	if len(all) != 11 {
		t.Errorf("got %d points, want 11", len(all))
	}
}

func TestPoses(t *testing.T) {
	p := mustPath(t, NewWaypoint(0, 0, math.Pi/2), NewWaypoint(10, 0, 3*math.Pi/2), 2, [2]Turn{Right, Right})
	seq, err := p.Poses(0.1, 0.5)
	if err != nil {
		t.Fatal(err)
	}
	poses := slices.Collect(seq)
	if h := poses[0].Heading; h != math.Pi/2 {
		t.Errorf("got initial heading %v, want π/2", h)
	}
	if h := poses[len(poses)-1].Heading; h != 3*math.Pi/2 {
		t.Errorf("got final heading %v, want 3π/2", h)
	}
	for i := 1; i < len(poses); i++ {
		// Moving between two samples, the chord's direction lies between the
		// headings at both ends. For small steps it is close to both.
		chord := poses[i].Point.Sub(poses[i-1].Point).Normalize()
		for _, pose := range poses[i-1 : i+1] {
			if dot := chord.Dot(VecFromAngle(pose.Heading)); dot < math.Cos(0.1) {
				t.Errorf("pose %v doesn't point along the path: %v", pose, chord)
			}
		}
	}
}
