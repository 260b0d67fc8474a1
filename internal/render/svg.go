package render

import (
	"fmt"
	"io"
	"slices"

	"honnef.co/go/dubins"
)

// Styles of the drawing's elements. Strokes keep their width when the drawing
// is scaled.
const (
	circleStyle   = "fill: none; stroke: gray; stroke-dasharray: 4 2; vector-effect: non-scaling-stroke"
	pathStyle     = "fill: none; stroke: steelblue; stroke-width: 2; vector-effect: non-scaling-stroke"
	tangentStyle  = "fill: none; stroke: orange; stroke-width: 1; vector-effect: non-scaling-stroke"
	centerStyle   = "fill: black"
	originStyle   = "fill: green"
	terminusStyle = "fill: red"
)

// svgWriter writes SVG elements and keeps the first error.
type svgWriter struct {
	w   io.Writer
	err error
}

func (svg *svgWriter) printf(format string, a ...any) {
	if svg.err != nil {
		return
	}
	_, svg.err = fmt.Fprintf(svg.w, format, a...)
}

func (svg *svgWriter) start(viewBox dubins.Rect) {
	// The drawing is flipped vertically, so that y points up as in the path's
	// coordinate system.
	svg.printf(`<?xml version="1.0"?>
<svg version="1.1"
     viewBox="%g %g %g %g"
     xmlns="http://www.w3.org/2000/svg">
<g transform="scale(1,-1)">
`, viewBox.X0, -viewBox.Y1, viewBox.Width(), viewBox.Height())
}

func (svg *svgWriter) end() {
	svg.printf("</g>\n</svg>\n")
}

func (svg *svgWriter) circle(c dubins.Point, r float64, style string) {
	svg.printf("<circle cx='%g' cy='%g' r='%g' style='%s'/>\n", c.X, c.Y, r, style)
}

func (svg *svgWriter) line(l dubins.Line, style string) {
	svg.printf("<line x1='%g' y1='%g' x2='%g' y2='%g' style='%s'/>\n", l.P0.X, l.P0.Y, l.P1.X, l.P1.Y, style)
}

func (svg *svgWriter) polyline(pts []dubins.Point, style string) {
	if svg.err != nil {
		return
	}
	svg.printf("<path style='%s' d='", style)
	if svg.err == nil {
		svg.err = dubins.WriteSVG(svg.w, dubins.Elements(slices.Values(pts)), dubins.SVGOptions{MaxPrecision: 6})
	}
	svg.printf("'/>\n")
}

// WriteSVG draws the sampled path together with both turn circles, their
// centers, the tangent segment, and the path's end points.
func WriteSVG(w io.Writer, p dubins.Path, pts []dubins.Point) error {
	bbox := p.BoundingBox()
	for _, pt := range pts {
		bbox = bbox.UnionPoint(pt)
	}
	size := max(bbox.Width(), bbox.Height())
	bbox = bbox.Inflate(0.05*size, 0.05*size)
	dot := 0.01 * size

	svg := &svgWriter{w: w}
	svg.start(bbox)
	for _, c := range p.Circles() {
		svg.circle(c.Center, c.Radius, circleStyle)
		svg.circle(c.Center, dot, centerStyle)
	}
	if p.HasStraight() {
		svg.line(p.Tangent(), tangentStyle)
	}
	if len(pts) > 0 {
		svg.polyline(pts, pathStyle)
		svg.circle(pts[0], dot, originStyle)
		svg.circle(pts[len(pts)-1], dot, terminusStyle)
	}
	svg.end()
	return svg.err
}
