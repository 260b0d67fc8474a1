package dubins

import (
	"slices"
	"strings"
	"testing"
)

func TestElements(t *testing.T) {
	pts := []Point{Pt(0, 0), Pt(1, 2), Pt(3, 4)}
	got := slices.Collect(Elements(slices.Values(pts)))
	diff(t, []PathElement{MoveTo(Pt(0, 0)), LineTo(Pt(1, 2)), LineTo(Pt(3, 4))}, got)

	if got := slices.Collect(Elements(slices.Values([]Point(nil)))); len(got) != 0 {
		t.Errorf("got %v, want no elements", got)
	}
}

func TestSVG(t *testing.T) {
	seq := slices.Values([]PathElement{MoveTo(Pt(0, 0)), LineTo(Pt(1.5, -2)), LineTo(Pt(1.0/3, 4))})
	if got, want := SVG(seq, SVGOptions{}), "M0,0 L1.5,-2 L0.3333333333333333,4"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if got, want := SVG(seq, SVGOptions{MaxPrecision: 3}), "M0,0 L1.5,-2 L0.333,4"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestPathElements(t *testing.T) {
	p := mustPath(t, NewWaypoint(0, 0, 0), NewWaypoint(10, 0, 0), 2, [2]Turn{Right, Right})
	seq, err := p.PathElements(0.1, 5)
	if err != nil {
		t.Fatal(err)
	}
	got := SVG(seq, SVGOptions{MaxPrecision: 6})
	if !strings.HasPrefix(got, "M0,0 ") || !strings.HasSuffix(got, " L10,0") {
		t.Errorf("got %q", got)
	}
	if _, err := p.PathElements(0, 5); err == nil {
		t.Error("expected an error for a zero angular step")
	}
}
