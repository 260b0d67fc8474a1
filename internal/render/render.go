// Package render writes sampled Dubins paths for consumption outside of Go:
// as an SVG drawing, as CSV, or as JSON.
package render

import (
	"encoding/csv"
	"fmt"
	"io"
	"slices"
	"strconv"

	"github.com/goccy/go-json"

	"honnef.co/go/dubins"
)

// Format selects the output encoding.
type Format string

const (
	CSV  Format = "csv"
	JSON Format = "json"
	SVG  Format = "svg"
)

var Formats = []Format{CSV, JSON, SVG}

// ParseFormat returns the format with the given name.
func ParseFormat(s string) (Format, error) {
	f := Format(s)
	if !slices.Contains(Formats, f) {
		return "", fmt.Errorf("unknown format %q, want one of %v", s, Formats)
	}
	return f, nil
}

// Write encodes the path and its samples in format f.
func Write(w io.Writer, f Format, p dubins.Path, pts []dubins.Point) error {
	switch f {
	case CSV:
		return WriteCSV(w, pts)
	case JSON:
		return WriteJSON(w, p, pts)
	case SVG:
		return WriteSVG(w, p, pts)
	default:
		return fmt.Errorf("unknown format %q", f)
	}
}

// WriteCSV writes one "x,y" record per point, preceded by a header.
func WriteCSV(w io.Writer, pts []dubins.Point) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"x", "y"}); err != nil {
		return err
	}
	for _, pt := range pts {
		rec := []string{
			strconv.FormatFloat(pt.X, 'g', -1, 64),
			strconv.FormatFloat(pt.Y, 'g', -1, 64),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

type jsonPoint [2]float64

type jsonCircle struct {
	Center jsonPoint `json:"center"`
	Radius float64   `json:"radius"`
	Turn   string    `json:"turn"`
}

type jsonArc struct {
	Center     jsonPoint `json:"center"`
	StartAngle float64   `json:"start_angle"`
	SweepAngle float64   `json:"sweep_angle"`
	EndAngle   float64   `json:"end_angle"`
	Length     float64   `json:"length"`
}

type jsonPath struct {
	Type    string        `json:"type"`
	Radius  float64       `json:"radius"`
	Length  float64       `json:"length"`
	Circles [2]jsonCircle `json:"circles"`
	Tangent [2]jsonPoint  `json:"tangent"`
	Arcs    [2]jsonArc    `json:"arcs"`
	Points  []jsonPoint   `json:"points"`
}

func toJSONPoint(pt dubins.Point) jsonPoint { return jsonPoint{pt.X, pt.Y} }

// WriteJSON writes the path's geometry and its samples as a JSON object.
func WriteJSON(w io.Writer, p dubins.Path, pts []dubins.Point) error {
	doc := jsonPath{
		Type:    p.Type().String(),
		Radius:  p.Radius(),
		Length:  p.Length(),
		Tangent: [2]jsonPoint{toJSONPoint(p.Tangent().P0), toJSONPoint(p.Tangent().P1)},
		Points:  make([]jsonPoint, len(pts)),
	}
	for i, c := range p.Circles() {
		doc.Circles[i] = jsonCircle{
			Center: toJSONPoint(c.Center),
			Radius: c.Radius,
			Turn:   c.Turn.String(),
		}
	}
	for i, a := range [2]dubins.Arc{p.FirstArc(), p.SecondArc()} {
		doc.Arcs[i] = jsonArc{
			Center:     toJSONPoint(a.Center),
			StartAngle: a.StartAngle,
			SweepAngle: a.SweepAngle,
			EndAngle:   a.EndAngle(),
			Length:     a.Length(),
		}
	}
	for i, pt := range pts {
		doc.Points[i] = toJSONPoint(pt)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}
