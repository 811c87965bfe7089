package regions

import (
	"fmt"
	"math"
	"math/cmplx"
)

// SideKindError reports a polygon side of a kind outside the permitted set.
type SideKindError struct {
	Index int
	Kind  string
}

func (e *SideKindError) Error() string {
	return fmt.Sprintf("regions: side %d has unsupported kind %s", e.Index, e.Kind)
}

// Polygon is a closed path whose sides are segments and rays. Rays occur in
// pairs and represent vertices at infinity.
type Polygon struct {
	ClosedPath
}

// NewPolygon assembles sides into a polygon, rejecting side kinds other
// than [Segment] and [Ray].
func NewPolygon(sides []Curve, tol float64) (Polygon, error) {
	for i, s := range sides {
		switch s.(type) {
		case Segment, Ray:
		default:
			return Polygon{}, &SideKindError{Index: i, Kind: s.kind().String()}
		}
	}
	p, err := NewClosedPath(sides, tol)
	if err != nil {
		return Polygon{}, err
	}
	return Polygon{ClosedPath: p}, nil
}

// NewPolygonFromVertices returns the polygon whose sides are the segments
// between consecutive finite vertices, closing back to the first.
func NewPolygonFromVertices(vertices []complex128, tol float64) (Polygon, error) {
	if len(vertices) < 3 {
		return Polygon{}, fmt.Errorf("regions: polygon needs at least 3 vertices, got %d", len(vertices))
	}
	sides := make([]Curve, len(vertices))
	for i, v := range vertices {
		sides[i] = Segment{A: v, B: vertices[(i+1)%len(vertices)]}
	}
	return NewPolygon(sides, tol)
}

// Angles returns the interior angle at every vertex. Angles at vertices at
// infinity are negative, in [−2π, 0).
func (p Polygon) Angles() []float64 { return interiorAngles(p.ClosedPath) }

// Truncate replaces every vertex at infinity with a detour along an
// automatically chosen bounding circle, centered at the centroid of the
// finite vertices with radius twice the largest centroid distance. A
// bounded polygon is returned unchanged.
func (p Polygon) Truncate(tol float64) (CircularPolygon, error) {
	return truncatePolygon(p.ClosedPath, nil, tol)
}

// TruncateWith is like [Polygon.Truncate] with an explicit bounding circle,
// which must enclose every finite vertex.
func (p Polygon) TruncateWith(c Circle, tol float64) (CircularPolygon, error) {
	return truncatePolygon(p.ClosedPath, &c, tol)
}

// CircularPolygon is a closed path whose sides are segments, rays, and
// arcs.
type CircularPolygon struct {
	ClosedPath
}

// NewCircularPolygon assembles sides into a circular polygon, rejecting
// side kinds other than [Segment], [Ray], and [Arc].
func NewCircularPolygon(sides []Curve, tol float64) (CircularPolygon, error) {
	for i, s := range sides {
		switch s.(type) {
		case Segment, Ray, Arc:
		default:
			return CircularPolygon{}, &SideKindError{Index: i, Kind: s.kind().String()}
		}
	}
	p, err := NewClosedPath(sides, tol)
	if err != nil {
		return CircularPolygon{}, err
	}
	return CircularPolygon{ClosedPath: p}, nil
}

// Angles returns the interior angle at every vertex.
func (p CircularPolygon) Angles() []float64 { return interiorAngles(p.ClosedPath) }

// Truncate replaces every vertex at infinity with a detour along an
// automatically chosen bounding circle. A bounded polygon is returned
// unchanged.
func (p CircularPolygon) Truncate(tol float64) (CircularPolygon, error) {
	return truncatePolygon(p.ClosedPath, nil, tol)
}

// TruncateWith is like [CircularPolygon.Truncate] with an explicit bounding
// circle.
func (p CircularPolygon) TruncateWith(c Circle, tol float64) (CircularPolygon, error) {
	return truncatePolygon(p.ClosedPath, &c, tol)
}

// interiorAngles computes the interior angle at each vertex of a closed
// path: π less the signed turn from the incoming to the outgoing tangent,
// less another 2π at a vertex at infinity. If the angles sum to a negative
// total, all are negated, canonicalizing to the positive-orientation
// convention.
func interiorAngles(p ClosedPath) []float64 {
	n := p.Len()
	angles := make([]float64, n)
	var sum float64
	for k := 0; k < n; k++ {
		prev := p.curves[(k-1+n)%n]
		cur := p.curves[k]
		in := prev.Tangent(1)
		out := cur.Tangent(0)
		turn := normAngle(cmplx.Phase(out * cmplx.Conj(in)))
		ang := math.Pi - turn
		if !isInfZ(cur.Start()) {
			if math.Pi-turn <= 1e-9 {
				// Anti-parallel sides at a finite vertex, the tip of a slit:
				// the interior wraps fully around the vertex.
				ang = 2 * math.Pi
			}
		} else {
			ang -= 2 * math.Pi
			if math.Pi-math.Abs(turn) <= 1e-9 {
				// Anti-parallel rays: the raw angle is ambiguous between 0
				// and −2π. Cut both rays with a large circle and compare
				// the angular positions of the crossings.
				if r1, ok1 := prev.(Ray); ok1 {
					if r2, ok2 := cur.(Ray); ok2 {
						ang = infVertexAngle(r1, r2)
					}
				}
			}
		}
		angles[k] = ang
		sum += ang
	}
	if sum < 0 {
		for k := range angles {
			angles[k] = -angles[k]
		}
	}
	return angles
}

// infVertexAngle disambiguates the interior angle at a vertex at infinity
// formed by anti-parallel rays: 0 when the interior pinches between them,
// −2π when it wraps all the way around.
func infVertexAngle(out, in Ray) float64 {
	scale := 1 + math.Max(cmplx.Abs(out.Base), cmplx.Abs(in.Base))
	c := NewCircle((out.Base+in.Base)/2, 1000*scale)
	z1, err1 := rayFar(out, c, DefaultTolerance)
	z2, err2 := rayFar(in, c, DefaultTolerance)
	if err1 != nil || err2 != nil {
		return -2 * math.Pi
	}
	s := rem2pi(cmplx.Phase(z2-c.Center) - cmplx.Phase(z1-c.Center))
	if s > 1e-9 && s < math.Pi {
		return 0
	}
	return -2 * math.Pi
}
