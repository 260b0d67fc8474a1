package dubins

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const tolerance = 1e-9

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func approxEqual(x, y float64) bool {
	return math.Abs(x-y) < tolerance
}

func mustPath(t *testing.T, origin, terminus Waypoint, radius float64, turns [2]Turn) Path {
	t.Helper()
	p, err := NewPath(origin, terminus, radius, turns)
	if err != nil {
		t.Fatalf("NewPath(%v, %v, %g, %v): %s", origin, terminus, radius, turns, err)
	}
	return p
}
