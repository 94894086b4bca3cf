package arc

import (
	"math"
	"strconv"
	"strings"

	"github.com/matzehuels/sunburst/pkg/errors"
)

// Point is a position in screen coordinates (y grows downward).
type Point struct {
	X, Y float64
}

// At returns the screen point at angle t and radius r around c.
// Angles grow counter-clockwise on screen, hence the subtracted sine.
func At(c Point, r, t float64) Point {
	return Point{X: c.X + r*math.Cos(t), Y: c.Y - r*math.Sin(t)}
}

// Span is an angular interval [Start, End] in radians with Start <= End.
type Span struct {
	Start, End float64
}

// Width returns End - Start.
func (s Span) Width() float64 { return s.End - s.Start }

// Mid returns the bisecting angle.
func (s Span) Mid() float64 { return (s.Start + s.End) / 2 }

// Split normalizes [t0, t1] and cuts it into sub-arcs of at most π each.
//
// The angles are swapped if t1 < t0, and a span wider than 2π is reduced by
// whole turns, so the result never covers more than a full circle. Exact
// multiples of 2π reduce to the full circle, not to zero.
// A span wider than π is returned as two halves meeting at the midpoint
// angle; anything else is returned as a single span.
func Split(t0, t1 float64) []Span {
	if t1 < t0 {
		t0, t1 = t1, t0
	}
	if w := t1 - t0; w > 2*math.Pi {
		// Whole multiples of a turn stay a full circle.
		if w = math.Mod(w, 2*math.Pi); w == 0 {
			w = 2 * math.Pi
		}
		t1 = t0 + w
	}
	if t1-t0 > math.Pi {
		mid := (t0 + t1) / 2
		return []Span{{t0, mid}, {mid, t1}}
	}
	return []Span{{t0, t1}}
}

// Op is a path command.
type Op byte

// Path commands, named after their SVG letters.
const (
	MoveTo Op = 'M'
	ArcTo  Op = 'A'
	LineTo Op = 'L'
	Close  Op = 'Z'
)

// Segment is one absolute path command. For ArcTo, Radius is the circle
// radius and Sweep is the SVG sweep flag; the large-arc flag is always 0
// because no segment spans more than π.
type Segment struct {
	Op     Op
	To     Point
	Radius float64
	Sweep  bool
}

// Path is a sequence of absolute path commands.
type Path []Segment

// String formats the path as SVG path data.
func (p Path) String() string {
	var b strings.Builder
	for i, s := range p {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteByte(byte(s.Op))
		switch s.Op {
		case MoveTo, LineTo:
			b.WriteByte(' ')
			writePoint(&b, s.To)
		case ArcTo:
			b.WriteByte(' ')
			b.WriteString(fmtFloat(s.Radius))
			b.WriteByte(',')
			b.WriteString(fmtFloat(s.Radius))
			b.WriteString(" 0 0,")
			if s.Sweep {
				b.WriteByte('1')
			} else {
				b.WriteByte('0')
			}
			b.WriteByte(' ')
			writePoint(&b, s.To)
		}
	}
	return b.String()
}

func writePoint(b *strings.Builder, p Point) {
	b.WriteString(fmtFloat(p.X))
	b.WriteByte(',')
	b.WriteString(fmtFloat(p.Y))
}

// fmtFloat prints with 4 decimals and trims trailing zeros; "-0" becomes "0".
func fmtFloat(v float64) string {
	s := strconv.FormatFloat(v, 'f', 4, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	if s == "-0" {
		return "0"
	}
	return s
}

// Wedge builds the closed region between radii r0 and r1 and angles t0 and
// t1 around center c.
//
// The outline starts at the inner radius at the lower angle, follows the
// inner circle counter-clockwise (sweep 0) through every sub-arc returned by
// [Split], steps out to the outer radius, follows the outer circle back
// clockwise (sweep 1) and closes. Splitting keeps every arc at or below π,
// so a full 2π request still yields a visible annulus instead of an arc whose
// coincident endpoints would make renderers drop it.
//
// Wedge returns an error with code [errors.ErrCodeInvalidGeometry] if either
// radius is negative, r0 exceeds r1, or any input is not finite.
func Wedge(c Point, r0, r1, t0, t1 float64) (Path, error) {
	for _, v := range []float64{c.X, c.Y, r0, r1, t0, t1} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, errors.InvalidGeometry("non-finite wedge parameter %g", v)
		}
	}
	switch {
	case r0 < 0 || r1 < 0:
		return nil, errors.InvalidGeometry("negative radius (inner %g, outer %g)", r0, r1)
	case r0 > r1:
		return nil, errors.InvalidGeometry("inner radius %g exceeds outer radius %g", r0, r1)
	}

	spans := Split(t0, t1)
	first, last := spans[0], spans[len(spans)-1]

	p := make(Path, 0, 2*len(spans)+4)
	p = append(p, Segment{Op: MoveTo, To: At(c, r0, first.Start)})
	for _, s := range spans {
		p = append(p, Segment{Op: ArcTo, To: At(c, r0, s.End), Radius: r0})
	}
	p = append(p, Segment{Op: LineTo, To: At(c, r1, last.End)})
	for i := len(spans) - 1; i >= 0; i-- {
		p = append(p, Segment{Op: ArcTo, To: At(c, r1, spans[i].Start), Radius: r1, Sweep: true})
	}
	p = append(p, Segment{Op: Close})
	return p, nil
}

// Centroid returns the label anchor of a wedge: the point at the mid angle
// and mid radius.
func Centroid(c Point, r0, r1, t0, t1 float64) Point {
	return At(c, (r0+r1)/2, (t0+t1)/2)
}

// Chord returns the straight-line distance across a span of width w at
// radius r, capped at the diameter.
func Chord(r, w float64) float64 {
	if w >= math.Pi {
		return 2 * r
	}
	return 2 * r * math.Sin(w/2)
}
