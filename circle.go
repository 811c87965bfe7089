package regions

import (
	"errors"
	"math"
	"math/cmplx"
)

// Circle is a circle with the given center and radius, traversed
// counterclockwise when CCW is set.
type Circle struct {
	Center complex128
	Radius float64
	CCW    bool
}

var _ Curve = Circle{}
var _ ClosedCurve = Circle{}

// UnitCircle is the positively oriented circle |z| = 1.
var UnitCircle = Circle{Center: 0, Radius: 1, CCW: true}

// NewCircle returns the positively oriented circle with the given center and
// radius.
func NewCircle(center complex128, radius float64) Circle {
	return Circle{Center: center, Radius: radius, CCW: true}
}

// ErrCollinear is returned by the three-point constructors when the points
// lie on a common line.
var ErrCollinear = errors.New("regions: collinear points do not determine a circle")

// CircleThrough returns the circle through the three points a, b, c,
// oriented in their order of traversal. Points within tol of a common line
// are classified as collinear and return [ErrCollinear].
func CircleThrough(a, b, c complex128, tol float64) (Circle, error) {
	u := b - a
	v := c - a
	d := 2 * cross(u, v)
	scale := 1 + cmplx.Abs(u) + cmplx.Abs(v)
	if math.Abs(d) <= tol*scale*scale {
		return Circle{}, ErrCollinear
	}
	uu := dot(u, u)
	vv := dot(v, v)
	center := a + complex((uu*imag(v)-vv*imag(u))/d, (vv*real(u)-uu*real(v))/d)
	return Circle{
		Center: center,
		Radius: cmplx.Abs(a - center),
		CCW:    cross(u, v) > 0,
	}, nil
}

// sign returns ±1 according to the circle's orientation.
func (c Circle) sign() float64 {
	if c.CCW {
		return 1
	}
	return -1
}

func (c Circle) Point(t float64) complex128 {
	return c.Center + cmplx.Rect(c.Radius, 2*math.Pi*t*c.sign())
}

func (c Circle) Tangent(t float64) complex128 {
	return complex(0, c.sign()) * cmplx.Rect(1, 2*math.Pi*t*c.sign())
}

func (c Circle) Start() complex128  { return c.Center + complex(c.Radius, 0) }
func (c Circle) End() complex128    { return c.Start() }
func (c Circle) Arclength() float64 { return 2 * math.Pi * c.Radius }
func (c Circle) IsBounded() bool    { return true }

func (c Circle) Reverse() Curve {
	return Circle{Center: c.Center, Radius: c.Radius, CCW: !c.CCW}
}

func (c Circle) Translate(w complex128) Curve {
	return Circle{Center: c.Center + w, Radius: c.Radius, CCW: c.CCW}
}

func (c Circle) Mul(w complex128) Curve {
	return Circle{Center: w * c.Center, Radius: cmplx.Abs(w) * c.Radius, CCW: c.CCW}
}

func (c Circle) Neg() Curve {
	return Circle{Center: -c.Center, Radius: c.Radius, CCW: c.CCW}
}

func (c Circle) Conj() Curve {
	return Circle{Center: cmplx.Conj(c.Center), Radius: c.Radius, CCW: !c.CCW}
}

func (c Circle) Inv() Curve {
	d := cmplx.Abs(c.Center)
	if math.Abs(d-c.Radius) <= DefaultTolerance*(1+d+c.Radius) {
		// A circle through the origin maps to a line. The point farthest
		// from the origin maps to the line's closest approach; the image
		// direction follows from dw = −dz/z².
		z0 := 2 * c.Center
		tz := complex(0, c.sign()) * unit(c.Center)
		return Line{Base: 1 / z0, Dir: unit(-tz / (z0 * z0))}
	}
	img, _ := CircleThrough(1/c.Point(0), 1/c.Point(1.0/3), 1/c.Point(2.0/3), DefaultTolerance)
	return img
}

func (c Circle) Dist(z complex128) float64 {
	return math.Abs(cmplx.Abs(z-c.Center) - c.Radius)
}

func (c Circle) Closest(z complex128) complex128 {
	v := z - c.Center
	if v == 0 {
		return c.Center + complex(c.Radius, 0)
	}
	return c.Center + unit(v)*complex(c.Radius, 0)
}

// Winding returns ±1 for points enclosed by the circle, according to its
// orientation, and 0 outside.
func (c Circle) Winding(z complex128) int {
	if cmplx.Abs(z-c.Center) < c.Radius {
		return int(c.sign())
	}
	return 0
}

func (c Circle) kind() curveKind { return kindCircle }
func (c Circle) closedCurve()    {}
