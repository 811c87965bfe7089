package regions

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"
)

// ErrNoFiniteVertex is returned when an unbounded polygon has no finite
// vertex to anchor a bounding circle on.
var ErrNoFiniteVertex = errors.New("regions: cannot truncate a polygon with no finite vertex")

// boundingCircle returns the default truncation circle: centered at the
// centroid of the finite vertices, with radius twice the largest distance
// from the centroid to a finite vertex.
func boundingCircle(p ClosedPath) (Circle, error) {
	var fin []complex128
	for _, c := range p.curves {
		if v := c.Start(); !isInfZ(v) {
			fin = append(fin, v)
		}
		if v := c.End(); !isInfZ(v) {
			fin = append(fin, v)
		}
	}
	if len(fin) == 0 {
		return Circle{}, ErrNoFiniteVertex
	}
	var sum complex128
	for _, v := range fin {
		sum += v
	}
	ctr := sum / complex(float64(len(fin)), 0)
	var maxd float64
	for _, v := range fin {
		maxd = math.Max(maxd, cmplx.Abs(v-ctr))
	}
	r := 2 * maxd
	if r == 0 {
		r = 2 * (1 + cmplx.Abs(ctr))
	}
	return NewCircle(ctr, r), nil
}

// rayFar returns the crossing of a ray with a circle farthest along the
// ray's direction towards infinity.
func rayFar(r Ray, c Circle, tol float64) (complex128, error) {
	pts := Intersect(r, c, tol).Points()
	if len(pts) == 0 {
		return 0, fmt.Errorf("regions: ray from %v does not reach the bounding circle", r.Base)
	}
	best := pts[0]
	for _, p := range pts[1:] {
		if dot(r.dir(), p-r.Base) > dot(r.dir(), best-r.Base) {
			best = p
		}
	}
	return best, nil
}

// truncatePolygon replaces every vertex at infinity of a polygon or
// circular polygon with Segment–Arc–Segment along the bounding circle. A
// vertex at infinity is a consecutive pair of a to-infinity ray and a
// from-infinity ray, wrapping from the last side to the first. The detour
// arcs follow the boundary's orientation: counterclockwise for a
// positively oriented polygon, clockwise for a negatively oriented one, so
// truncation preserves winding numbers inside the circle.
func truncatePolygon(p ClosedPath, circ *Circle, tol float64) (CircularPolygon, error) {
	if p.IsBounded() {
		return NewCircularPolygon(p.curves, tol)
	}
	var c Circle
	if circ != nil {
		c = *circ
	} else {
		var err error
		c, err = boundingCircle(p)
		if err != nil {
			return CircularPolygon{}, err
		}
	}

	n := p.Len()
	pair := make([]bool, n)     // side k starts an infinite-vertex ray pair
	consumed := make([]bool, n) // side k is the second ray of a pair
	for k := 0; k < n; k++ {
		cur, ok1 := p.curves[k].(Ray)
		nxt, ok2 := p.curves[(k+1)%n].(Ray)
		if ok1 && ok2 && !cur.Reversed && nxt.Reversed {
			pair[k] = true
			consumed[(k+1)%n] = true
		}
	}

	orient := p.orientation()
	atol := tol * (1 + c.Radius)
	var out []Curve
	for k := 0; k < n; k++ {
		switch {
		case consumed[k]:
		case !pair[k]:
			out = append(out, p.curves[k])
		default:
			r1 := p.curves[k].(Ray)
			r2 := p.curves[(k+1)%n].(Ray)
			z1, err := rayFar(r1, c, tol)
			if err != nil {
				return CircularPolygon{}, err
			}
			z2, err := rayFar(r2, c, tol)
			if err != nil {
				return CircularPolygon{}, err
			}
			a1 := cmplx.Phase(z1 - c.Center)
			a2 := cmplx.Phase(z2 - c.Center)
			sweep := rem2pi(a2 - a1)
			if orient < 0 {
				sweep = -rem2pi(a1 - a2)
			}
			if math.Abs(sweep) <= atol {
				// Anti-parallel rays meeting the circle at one point: the
				// detour must make the full turn.
				sweep = float64(orient) * 2 * math.Pi
			}
			arc := NewArc(c, a1, sweep)
			out = append(out,
				Segment{A: r1.Base, B: arc.Start()},
				arc,
				Segment{A: arc.End(), B: r2.Base},
			)
		}
	}
	return NewCircularPolygon(out, math.Max(tol, DefaultTolerance))
}
