package regions

import (
	"math"
	"math/cmplx"
)

// DefaultTolerance is a reasonable tolerance for geometries whose
// coordinates are of moderate magnitude. Tolerances are always applied
// relatively, as tol·(1+|scale|).
const DefaultTolerance = 1e-12

type curveKind uint8

const (
	kindLine curveKind = iota
	kindRay
	kindSegment
	kindCircle
	kindArc
)

func (k curveKind) String() string {
	switch k {
	case kindLine:
		return "Line"
	case kindRay:
		return "Ray"
	case kindSegment:
		return "Segment"
	case kindCircle:
		return "Circle"
	case kindArc:
		return "Arc"
	default:
		return "unknown"
	}
}

// Curve is a curve in the complex plane, parameterized over t ∈ [0, 1]. The
// set of implementations is closed: [Line], [Ray], [Segment], [Circle], and
// [Arc].
type Curve interface {
	// Point evaluates the curve at t ∈ [0, 1]. Unbounded curves return
	// complex infinity at the parameter of their infinite endpoint.
	Point(t float64) complex128
	// Tangent returns the unit tangent, in the direction of travel, at t.
	Tangent(t float64) complex128
	// Start and End return the curve's endpoints, Point(0) and Point(1).
	Start() complex128
	End() complex128
	// Arclength returns the curve's length, +Inf for unbounded curves.
	Arclength() float64
	// IsBounded reports whether the curve lies in a bounded subset of the
	// plane.
	IsBounded() bool
	// Reverse returns the same point set traversed in the opposite
	// direction.
	Reverse() Curve

	// Translate returns the image of the curve under z → z+w.
	Translate(w complex128) Curve
	// Mul returns the image of the curve under z → w·z. w must be nonzero.
	Mul(w complex128) Curve
	// Neg returns the image of the curve under z → −z.
	Neg() Curve
	// Conj returns the image of the curve under z → conj(z), the reflection
	// across the real axis.
	Conj() Curve
	// Inv returns the image of the curve under z → 1/z. Lines and circles
	// map to lines or circles; bounded curves map to segments or arcs. The
	// operator carries no tolerance parameter, so the choice between the
	// degenerate and generic image uses [DefaultTolerance].
	Inv() Curve

	// Dist returns the distance from z to the nearest point on the curve.
	Dist(z complex128) float64
	// Closest returns the point on the curve nearest to z.
	Closest(z complex128) complex128

	kind() curveKind
}

// ClosedCurve is a curve admissible as a region boundary: it divides the
// plane (or the Riemann sphere, for a [Line]) in two and assigns every
// off-curve point a winding number. Implementations are [Line], [Circle],
// [ClosedPath], [Polygon], and [CircularPolygon].
type ClosedCurve interface {
	// Winding returns the number of net counterclockwise revolutions the
	// curve makes about z. The result is unreliable for z on the curve.
	Winding(z complex128) int

	closedCurve()
}

// IsLeft reports whether z lies to the left of the oriented closed curve c,
// i.e. whether the winding number of c about z is positive.
func IsLeft(z complex128, c ClosedCurve) bool { return c.Winding(z) > 0 }

// IsRight reports whether z lies to the right of the oriented closed curve
// c, i.e. whether the winding number of c about z is negative.
func IsRight(z complex128, c ClosedCurve) bool { return c.Winding(z) < 0 }

// cross returns the 2D cross product of u and v viewed as vectors,
// Im(conj(u)·v).
func cross(u, v complex128) float64 {
	return real(u)*imag(v) - imag(u)*real(v)
}

// dot returns the 2D dot product of u and v viewed as vectors.
func dot(u, v complex128) float64 {
	return real(u)*real(v) + imag(u)*imag(v)
}

// unit returns v/|v|.
func unit(v complex128) complex128 {
	return v / complex(cmplx.Abs(v), 0)
}

func isInfZ(z complex128) bool {
	return math.IsInf(real(z), 0) || math.IsInf(imag(z), 0)
}

// rem2pi reduces x to [0, 2π).
func rem2pi(x float64) float64 {
	x = math.Mod(x, 2*math.Pi)
	if x < 0 {
		x += 2 * math.Pi
	}
	return x
}

// normAngle reduces x to (−π, π].
func normAngle(x float64) float64 {
	x = rem2pi(x)
	if x > math.Pi {
		x -= 2 * math.Pi
	}
	return x
}

// angleEq reports whether two angles coincide modulo 2π within atol.
func angleEq(a, b, atol float64) bool {
	d := rem2pi(a - b)
	return d <= atol || d >= 2*math.Pi-atol
}

func eqZ(a, b complex128, tol float64) bool {
	if isInfZ(a) || isInfZ(b) {
		return isInfZ(a) && isInfZ(b)
	}
	return cmplx.Abs(a-b) <= tol*(1+cmplx.Abs(a)+cmplx.Abs(b))
}

// CurvesEqual reports whether a and b are the same curve with the same
// orientation, compared within the relative tolerance tol. Curves of
// different kinds are never equal.
func CurvesEqual(a, b Curve, tol float64) bool {
	if a.kind() != b.kind() {
		return false
	}
	atol := tol * (1 + math.Pi)
	switch a := a.(type) {
	case Line:
		b := b.(Line)
		return b.Dist(a.Base) <= tol*(1+cmplx.Abs(a.Base)) &&
			cmplx.Abs(a.Dir-b.Dir) <= tol*2
	case Ray:
		b := b.(Ray)
		return a.Reversed == b.Reversed && eqZ(a.Base, b.Base, tol) &&
			angleEq(a.Angle, b.Angle, atol)
	case Segment:
		b := b.(Segment)
		return eqZ(a.A, b.A, tol) && eqZ(a.B, b.B, tol)
	case Circle:
		b := b.(Circle)
		return a.CCW == b.CCW && eqZ(a.Center, b.Center, tol) &&
			math.Abs(a.Radius-b.Radius) <= tol*(1+a.Radius+b.Radius)
	case Arc:
		b := b.(Arc)
		// Compare the circle, start angle, and sweep directly.
		return a.CCW() == b.CCW() &&
			eqZ(a.C.Center, b.C.Center, tol) &&
			math.Abs(a.C.Radius-b.C.Radius) <= tol*(1+a.C.Radius+b.C.Radius) &&
			angleEq(a.StartAngle, b.StartAngle, atol) &&
			math.Abs(a.SweepAngle-b.SweepAngle) <= atol
	default:
		return false
	}
}
