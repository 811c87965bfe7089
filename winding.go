package regions

import "math/cmplx"

// Winding returns the number of net counterclockwise revolutions the closed
// path makes about z, by accumulating signed horizontal-ray crossings over
// the sides. Ray sides count their single crossing directly; a Line side
// counts by its Riemann-sphere side test, see [Line.Winding]. The result is
// unreliable for z on the boundary.
func (p ClosedPath) Winding(z complex128) int {
	w := 0
	for _, side := range p.curves {
		switch side := side.(type) {
		case Segment:
			w += segmentCrossing(side.A, side.B, z)
		case Ray:
			w += rayCrossing(side, z)
		case Arc:
			w += arcCrossings(side, z)
		case Circle:
			w += side.Winding(z)
		case Line:
			w += side.Winding(z)
		default:
			panic("regions: winding number undefined for side kind " + side.kind().String())
		}
	}
	return w
}

// segmentCrossing is the fast path of Sunday's ray-crossing method: +1 for
// an upward crossing of the horizontal ray from z, −1 for a downward one.
// The crossing at a side's bottom endpoint counts; the top endpoint belongs
// to the adjacent side.
func segmentCrossing(a, b, z complex128) int {
	if imag(a) <= imag(z) {
		if imag(b) > imag(z) && cross(b-a, z-a) > 0 {
			return 1
		}
	} else if imag(b) <= imag(z) && cross(b-a, z-a) < 0 {
		return -1
	}
	return 0
}

// rayCrossing counts the crossing of a ray side with the horizontal ray
// from z, under the same half-open endpoint rule as segmentCrossing: the
// base counts when it is the bottom end of the traversal and is skipped
// when it is the top. Reversal flips only the crossing sign, never the
// point set. A horizontal ray contributes nothing.
func rayCrossing(r Ray, z complex128) int {
	d := r.dir()
	w := 0
	if imag(d) > 0 {
		if imag(r.Base) <= imag(z) && cross(d, z-r.Base) > 0 {
			w = 1
		}
	} else if imag(d) < 0 {
		if imag(r.Base) > imag(z) && cross(d, z-r.Base) < 0 {
			w = -1
		}
	}
	if r.Reversed {
		w = -w
	}
	return w
}

// arcCrossings intersects the horizontal line through z with an arc side
// and sums the crossing signs strictly to the right of z. An arc can cross
// the ray up to twice; each crossing counts by the sign of its tangent's
// vertical component.
func arcCrossings(a Arc, z complex128) int {
	res := Intersect(a, Line{Base: z, Dir: 1}, DefaultTolerance)
	w := 0
	for _, p := range res.Points() {
		if real(p) <= real(z) {
			continue
		}
		t, ok := a.paramOf(p, DefaultTolerance)
		if !ok {
			continue
		}
		// Half-open at the ends, mirroring the segment rule: an upward
		// crossing at the arc's end (and a downward one at its start)
		// belongs to the adjacent side.
		if s := imag(a.Tangent(t)); s > 0 {
			if eqZ(p, a.Point(1), DefaultTolerance) {
				continue
			}
			w++
		} else if s < 0 {
			if eqZ(p, a.Point(0), DefaultTolerance) {
				continue
			}
			w--
		}
	}
	return w
}

// orientation reports +1 for a positively oriented boundary and −1 for a
// negatively oriented one, by sampling the winding number just left and
// just right of a point on a side: for a simple boundary the two samples
// sum to the orientation sign. A side whose samples cancel (both zero, as
// along a slit) is skipped; a boundary with no informative side defaults
// to positive.
func (p ClosedPath) orientation() int {
	for _, side := range p.curves {
		var pt, tan complex128
		switch s := side.(type) {
		case Segment:
			pt, tan = s.Point(0.5), s.Tangent(0.5)
		case Arc:
			pt, tan = s.Point(0.5), s.Tangent(0.5)
		case Ray:
			pt = s.Base + s.dir()*complex(1+cmplx.Abs(s.Base), 0)
			tan = s.Tangent(0.5)
		default:
			continue
		}
		eps := complex(1e-9*(1+cmplx.Abs(pt)), 0)
		o := p.Winding(pt+1i*tan*eps) + p.Winding(pt-1i*tan*eps)
		switch {
		case o > 0:
			return 1
		case o < 0:
			return -1
		}
	}
	return 1
}

// Winding counts signed ray crossings over the polygon's sides; see
// [ClosedPath.Winding].
func (p Polygon) Winding(z complex128) int { return p.ClosedPath.Winding(z) }

// Winding counts signed ray crossings over the polygon's sides; see
// [ClosedPath.Winding].
func (p CircularPolygon) Winding(z complex128) int { return p.ClosedPath.Winding(z) }
