package regions

import (
	"math"
	"math/cmplx"
)

// Arc is a circular arc: the piece of circle C beginning at position angle
// StartAngle (radians) and sweeping through SweepAngle radians,
// counterclockwise for positive SweepAngle. The underlying circle is kept
// positively oriented; the traversal direction is carried entirely by the
// sign of SweepAngle.
type Arc struct {
	C          Circle
	StartAngle float64
	SweepAngle float64
}

var _ Curve = Arc{}

// NewArc returns the arc of c beginning at position angle start and sweeping
// through sweep radians.
func NewArc(c Circle, start, sweep float64) Arc {
	c.CCW = true
	return Arc{C: c, StartAngle: start, SweepAngle: sweep}
}

// ArcThrough returns the arc from a to b passing through m. Points within
// tol of a common line are classified as collinear and return
// [ErrCollinear].
func ArcThrough(a, m, b complex128, tol float64) (Arc, error) {
	c, err := CircleThrough(a, m, b, tol)
	if err != nil {
		return Arc{}, err
	}
	start := cmplx.Phase(a - c.Center)
	end := cmplx.Phase(b - c.Center)
	var sweep float64
	if c.CCW {
		sweep = rem2pi(end - start)
	} else {
		sweep = -rem2pi(start - end)
	}
	c.CCW = true
	return Arc{C: c, StartAngle: start, SweepAngle: sweep}, nil
}

// CCW reports whether the arc is traversed counterclockwise.
func (a Arc) CCW() bool { return a.SweepAngle >= 0 }

func (a Arc) angle(t float64) float64 { return a.StartAngle + t*a.SweepAngle }

func (a Arc) Point(t float64) complex128 {
	return a.C.Center + cmplx.Rect(a.C.Radius, a.angle(t))
}

func (a Arc) Tangent(t float64) complex128 {
	s := 1.0
	if a.SweepAngle < 0 {
		s = -1
	}
	return complex(0, s) * cmplx.Rect(1, a.angle(t))
}

func (a Arc) Start() complex128 { return a.Point(0) }
func (a Arc) End() complex128   { return a.Point(1) }

func (a Arc) Arclength() float64 { return math.Abs(a.SweepAngle) * a.C.Radius }
func (a Arc) IsBounded() bool    { return true }

func (a Arc) Reverse() Curve {
	return Arc{C: a.C, StartAngle: a.StartAngle + a.SweepAngle, SweepAngle: -a.SweepAngle}
}

func (a Arc) Translate(w complex128) Curve {
	return Arc{C: a.C.Translate(w).(Circle), StartAngle: a.StartAngle, SweepAngle: a.SweepAngle}
}

func (a Arc) Mul(w complex128) Curve {
	return Arc{C: a.C.Mul(w).(Circle), StartAngle: a.StartAngle + cmplx.Phase(w), SweepAngle: a.SweepAngle}
}

func (a Arc) Neg() Curve {
	return Arc{C: a.C.Neg().(Circle), StartAngle: a.StartAngle + math.Pi, SweepAngle: a.SweepAngle}
}

func (a Arc) Conj() Curve {
	c := a.C.Conj().(Circle)
	c.CCW = true
	return Arc{C: c, StartAngle: -a.StartAngle, SweepAngle: -a.SweepAngle}
}

func (a Arc) Inv() Curve { return invThrough(a) }

func (a Arc) Dist(z complex128) float64 {
	return cmplx.Abs(z - a.Closest(z))
}

func (a Arc) Closest(z complex128) complex128 {
	if _, ok := a.paramOf(z, 0); ok {
		return a.C.Closest(z)
	}
	p0, p1 := a.Point(0), a.Point(1)
	if cmplx.Abs(z-p0) <= cmplx.Abs(z-p1) {
		return p0
	}
	return p1
}

func (a Arc) kind() curveKind { return kindArc }

// paramOf returns the arc parameter of a point assumed to lie on the arc's
// circle, and whether the point's position angle falls within the arc's
// angular range, with tol of slack at the ends.
func (a Arc) paramOf(z complex128, tol float64) (float64, bool) {
	th := cmplx.Phase(z - a.C.Center)
	atol := tol * (1 + cmplx.Abs(z)) / a.C.Radius
	s := 1.0
	if a.SweepAngle < 0 {
		s = -1
	}
	// Angular distance from the start, measured in the sweep direction.
	d := rem2pi(s * (th - a.StartAngle))
	if d >= 2*math.Pi-atol {
		d = 0
	}
	w := math.Abs(a.SweepAngle)
	if d > w+atol {
		return 0, false
	}
	if w == 0 {
		return 0, d <= atol
	}
	return min(max(d/w, 0), 1), true
}

// ccwInterval returns the arc's point set as a counterclockwise angular
// interval: a start angle and a nonnegative width.
func (a Arc) ccwInterval() (float64, float64) {
	if a.SweepAngle >= 0 {
		return a.StartAngle, a.SweepAngle
	}
	return a.StartAngle + a.SweepAngle, -a.SweepAngle
}
