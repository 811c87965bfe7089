package regions

import (
	"math"
	"math/cmplx"
)

// IntersectionKind classifies the result of [Intersect].
type IntersectionKind uint8

const (
	// IntersectNone means the curves share no point.
	IntersectNone IntersectionKind = iota
	// IntersectPoint means the curves meet in a single point P.
	IntersectPoint
	// IntersectPointPair means the curves meet in exactly the two points P
	// and Q, in no particular order.
	IntersectPointPair
	// IntersectOverlap means the curves coincide along the sub-curve
	// Overlap.
	IntersectOverlap
)

func (k IntersectionKind) String() string {
	switch k {
	case IntersectNone:
		return "none"
	case IntersectPoint:
		return "point"
	case IntersectPointPair:
		return "point pair"
	case IntersectOverlap:
		return "overlap"
	default:
		return "unknown"
	}
}

// Intersection is the result of intersecting two curves.
type Intersection struct {
	Kind IntersectionKind
	// P holds the intersection point for [IntersectPoint]; P and Q hold the
	// unordered pair for [IntersectPointPair].
	P, Q complex128
	// Overlap holds the shared sub-curve for [IntersectOverlap].
	Overlap Curve
}

// Points returns the isolated intersection points, if any.
func (x Intersection) Points() []complex128 {
	switch x.Kind {
	case IntersectPoint:
		return []complex128{x.P}
	case IntersectPointPair:
		return []complex128{x.P, x.Q}
	default:
		return nil
	}
}

func none() Intersection { return Intersection{Kind: IntersectNone} }

func pointI(p complex128) Intersection { return Intersection{Kind: IntersectPoint, P: p} }

func pairI(p, q complex128) Intersection {
	return Intersection{Kind: IntersectPointPair, P: p, Q: q}
}

func overlapI(c Curve) Intersection { return Intersection{Kind: IntersectOverlap, Overlap: c} }

func fromPoints(pts []complex128) Intersection {
	switch len(pts) {
	case 0:
		return none()
	case 1:
		return pointI(pts[0])
	default:
		return pairI(pts[0], pts[1])
	}
}

// Intersect computes the intersection of two curves. All degeneracy
// decisions (parallelism, tangency, concentricity) are made with the
// relative tolerance tol and resolved to one of the result kinds, never an
// error. The result is symmetric: Intersect(b, a, tol) describes the same
// point set.
//
// An overlap result carries a single curve. Two arcs of a common circle can
// share two disjoint sub-arcs, one across each end; in that case the longer
// sub-arc is reported and the other is dropped.
func Intersect(a, b Curve, tol float64) Intersection {
	if a.kind() > b.kind() {
		// One canonical computation per unordered kind pair.
		return Intersect(b, a, tol)
	}
	switch {
	case b.kind() <= kindSegment:
		return meetCarriers(carrierOf(a), carrierOf(b), tol)
	case b.kind() == kindCircle && a.kind() <= kindSegment:
		return circleCarrier(b.(Circle), carrierOf(a), tol)
	case b.kind() == kindArc && a.kind() <= kindSegment:
		arc := b.(Arc)
		return filterArc(circleCarrier(arc.C, carrierOf(a), tol), arc, tol)
	case b.kind() == kindCircle:
		return circleCircle(a.(Circle), b.(Circle), tol)
	case a.kind() == kindCircle:
		arc := b.(Arc)
		res := circleCircle(a.(Circle), arc.C, tol)
		if res.Kind == IntersectOverlap {
			// Identical circles: the whole arc is shared.
			return overlapI(arc)
		}
		return filterArc(res, arc, tol)
	default:
		return arcArc(a.(Arc), b.(Arc), tol)
	}
}

// carrier is the line carrying a Line, Ray, or Segment, with the curve's
// valid domain expressed in the signed-distance parameter along the unit
// direction.
type carrier struct {
	base complex128
	dir  complex128
	lo   float64
	hi   float64
}

func carrierOf(c Curve) carrier {
	switch c := c.(type) {
	case Line:
		return carrier{base: c.Base, dir: c.Dir, lo: math.Inf(-1), hi: math.Inf(1)}
	case Ray:
		// The point set does not depend on the traversal direction.
		return carrier{base: c.Base, dir: c.dir(), lo: 0, hi: math.Inf(1)}
	case Segment:
		return carrier{base: c.A, dir: unit(c.B - c.A), lo: 0, hi: cmplx.Abs(c.B - c.A)}
	default:
		panic("regions: curve has no carrier line")
	}
}

func (k carrier) at(s float64) complex128 {
	return k.base + k.dir*complex(s, 0)
}

// meetCarriers solves the 2×2 system for the meeting point of two carrier
// lines and validates the solution against both domains. Near-parallel
// carriers fall through to a coincidence test and interval clipping.
func meetCarriers(a, b carrier, tol float64) Intersection {
	cr := cross(a.dir, b.dir)
	w := b.base - a.base
	tolL := tol * (1 + cmplx.Abs(a.base) + cmplx.Abs(b.base))
	if math.Abs(cr) <= tol {
		// Parallel within tolerance. Coincident carriers overlap along the
		// clipped domain intersection; otherwise the curves are disjoint.
		if math.Abs(cross(a.dir, w)) > tolL {
			return none()
		}
		off := dot(a.dir, w)
		sgn := 1.0
		if dot(a.dir, b.dir) < 0 {
			sgn = -1
		}
		blo, bhi := off+sgn*b.lo, off+sgn*b.hi
		if blo > bhi {
			blo, bhi = bhi, blo
		}
		lo := max(a.lo, blo)
		hi := min(a.hi, bhi)
		switch {
		case lo > hi+tolL:
			return none()
		case hi-lo <= tolL:
			return pointI(a.at((lo + hi) / 2))
		case math.IsInf(lo, -1) && math.IsInf(hi, 1):
			return overlapI(Line{Base: a.base, Dir: a.dir})
		case math.IsInf(hi, 1):
			return overlapI(Ray{Base: a.at(lo), Angle: cmplx.Phase(a.dir)})
		case math.IsInf(lo, -1):
			return overlapI(Ray{Base: a.at(hi), Angle: cmplx.Phase(-a.dir)})
		default:
			return overlapI(Segment{A: a.at(lo), B: a.at(hi)})
		}
	}
	sa := cross(w, b.dir) / cr
	sb := cross(w, a.dir) / cr
	if sa < a.lo-tolL || sa > a.hi+tolL || sb < b.lo-tolL || sb > b.hi+tolL {
		return none()
	}
	return pointI(a.at(min(max(sa, a.lo), a.hi)))
}

// circleCarrier intersects a circle with a Line, Ray, or Segment via the
// perpendicular foot point through the circle's center.
func circleCarrier(c Circle, k carrier, tol float64) Intersection {
	tolL := tol * (1 + cmplx.Abs(c.Center) + c.Radius)
	sf := dot(k.dir, c.Center-k.base)
	foot := k.at(sf)
	d := cmplx.Abs(c.Center - foot)
	if d > c.Radius+tolL {
		return none()
	}
	h := math.Sqrt(math.Max(c.Radius*c.Radius-d*d, 0))
	if 2*h <= tolL {
		// Tangency: the two candidates collapse to the foot point.
		if sf < k.lo-tolL || sf > k.hi+tolL {
			return none()
		}
		return pointI(k.at(min(max(sf, k.lo), k.hi)))
	}
	var pts []complex128
	for _, s := range [2]float64{sf - h, sf + h} {
		if s >= k.lo-tolL && s <= k.hi+tolL {
			pts = append(pts, k.at(min(max(s, k.lo), k.hi)))
		}
	}
	return fromPoints(pts)
}

// circleCircle intersects two circles in closed form.
func circleCircle(c1, c2 Circle, tol float64) Intersection {
	delta := c2.Center - c1.Center
	d := cmplx.Abs(delta)
	rscale := tol * (1 + c1.Radius + c2.Radius)
	tolL := tol * (1 + cmplx.Abs(c1.Center) + cmplx.Abs(c2.Center))
	if d <= tolL {
		// Concentric: identical circle or no intersection.
		if math.Abs(c1.Radius-c2.Radius) <= rscale {
			return overlapI(c1)
		}
		return none()
	}
	if d > c1.Radius+c2.Radius+rscale || d < math.Abs(c1.Radius-c2.Radius)-rscale {
		return none()
	}
	a := (c1.Radius*c1.Radius - c2.Radius*c2.Radius + d*d) / (2 * d)
	h := math.Sqrt(math.Max(c1.Radius*c1.Radius-a*a, 0))
	u := delta / complex(d, 0)
	p := c1.Center + u*complex(a, 0)
	if 2*h <= rscale {
		return pointI(p)
	}
	iu := u * complex(0, 1)
	return pairI(p+iu*complex(h, 0), p-iu*complex(h, 0))
}

// filterArc keeps only the isolated intersection points whose position angle
// lies within the arc's angular range.
func filterArc(res Intersection, a Arc, tol float64) Intersection {
	var pts []complex128
	for _, p := range res.Points() {
		if _, ok := a.paramOf(p, tol); ok {
			pts = append(pts, p)
		}
	}
	if res.Kind == IntersectOverlap {
		return res
	}
	return fromPoints(pts)
}

// arcArc reduces to the underlying circles; arcs on a common circle overlap
// along the intersection of their angular intervals.
func arcArc(a, b Arc, tol float64) Intersection {
	res := circleCircle(a.C, b.C, tol)
	if res.Kind != IntersectOverlap {
		return filterArc(filterArc(res, a, tol), b, tol)
	}

	a0, wa := a.ccwInterval()
	b0, wb := b.ccwInterval()
	atol := tol * (1 + cmplx.Abs(a.C.Center) + a.C.Radius) / a.C.Radius
	rel := rem2pi(b0 - a0)

	// b's interval can overlap a's directly or after wrapping a full turn.
	type interval struct{ lo, hi float64 }
	var spans []interval
	for _, r := range [2]float64{rel, rel - 2*math.Pi} {
		lo := math.Max(0, r)
		hi := math.Min(wa, r+wb)
		if hi >= lo-atol {
			spans = append(spans, interval{lo, hi})
		}
	}

	sub := func(lo, hi float64) Curve {
		if a.SweepAngle >= 0 {
			return Arc{C: a.C, StartAngle: a0 + lo, SweepAngle: hi - lo}
		}
		return Arc{C: a.C, StartAngle: a0 + hi, SweepAngle: lo - hi}
	}
	at := func(th float64) complex128 {
		return a.C.Center + cmplx.Rect(a.C.Radius, a0+th)
	}

	// Both spans can be genuine sub-arcs; only the longer one is reported.
	var pts []complex128
	best := interval{0, -1}
	for _, s := range spans {
		if s.hi-s.lo <= atol {
			pts = append(pts, at((s.lo+s.hi)/2))
		} else if s.hi-s.lo > best.hi-best.lo {
			best = s
		}
	}
	if best.hi > best.lo {
		return overlapI(sub(best.lo, best.hi))
	}
	return fromPoints(pts)
}
