package regions

import (
	"math"
	"math/cmplx"
)

// Line is an infinite oriented line through Base with unit direction Dir.
type Line struct {
	Base complex128
	Dir  complex128
}

var _ Curve = Line{}
var _ ClosedCurve = Line{}

// NewLine returns the line through base in the direction of dir. dir is
// normalized and must be nonzero.
func NewLine(base, dir complex128) Line {
	return Line{Base: base, Dir: unit(dir)}
}

// LineThrough returns the oriented line from a towards b.
func LineThrough(a, b complex128) Line {
	return NewLine(a, b-a)
}

// lineParam maps t ∈ (0, 1) monotonically onto (−∞, ∞).
func lineParam(t float64) float64 {
	return (t - 0.5) / (t * (1 - t))
}

func (l Line) Point(t float64) complex128 {
	if t <= 0 || t >= 1 {
		return cmplx.Inf()
	}
	return l.Base + l.Dir*complex(lineParam(t), 0)
}

func (l Line) Tangent(t float64) complex128 { return l.Dir }
func (l Line) Start() complex128            { return cmplx.Inf() }
func (l Line) End() complex128              { return cmplx.Inf() }
func (l Line) Arclength() float64           { return math.Inf(1) }
func (l Line) IsBounded() bool              { return false }

func (l Line) Reverse() Curve { return Line{Base: l.Base, Dir: -l.Dir} }

func (l Line) Translate(w complex128) Curve { return Line{Base: l.Base + w, Dir: l.Dir} }
func (l Line) Mul(w complex128) Curve       { return Line{Base: w * l.Base, Dir: unit(w * l.Dir)} }
func (l Line) Neg() Curve                   { return Line{Base: -l.Base, Dir: -l.Dir} }
func (l Line) Conj() Curve                  { return Line{Base: cmplx.Conj(l.Base), Dir: cmplx.Conj(l.Dir)} }

func (l Line) Inv() Curve {
	foot := l.Closest(0)
	if cmplx.Abs(foot) <= DefaultTolerance*(1+cmplx.Abs(l.Base)) {
		// A line through the origin maps to a line through the origin.
		return Line{Base: 0, Dir: -cmplx.Conj(l.Dir)}
	}
	c, _ := CircleThrough(1/l.Point(0.25), 1/l.Point(0.5), 1/l.Point(0.75), DefaultTolerance)
	return c
}

func (l Line) Dist(z complex128) float64 {
	return cmplx.Abs(z - l.Closest(z))
}

func (l Line) Closest(z complex128) complex128 {
	return l.Base + l.Dir*complex(dot(l.Dir, z-l.Base), 0)
}

// Winding treats the line as a closed curve on the Riemann sphere: points to
// its left have winding number 1, points to its right 0.
func (l Line) Winding(z complex128) int {
	if cross(l.Dir, z-l.Base) > 0 {
		return 1
	}
	return 0
}

func (l Line) kind() curveKind { return kindLine }
func (l Line) closedCurve()    {}

// Ray is a half-line from Base in the direction of Angle. A forward ray is
// traversed from Base to infinity; a reversed ray from infinity to Base.
type Ray struct {
	Base     complex128
	Angle    float64
	Reversed bool
}

var _ Curve = Ray{}

// NewRay returns the forward ray from base in the direction of angle
// (radians).
func NewRay(base complex128, angle float64) Ray {
	return Ray{Base: base, Angle: angle}
}

// dir returns the unit vector from the base towards infinity.
func (r Ray) dir() complex128 {
	return cmplx.Rect(1, r.Angle)
}

func (r Ray) Point(t float64) complex128 {
	s := t
	if r.Reversed {
		s = 1 - t
	}
	if s >= 1 {
		return cmplx.Inf()
	}
	return r.Base + r.dir()*complex(s/(1-s), 0)
}

func (r Ray) Tangent(t float64) complex128 {
	if r.Reversed {
		return -r.dir()
	}
	return r.dir()
}

func (r Ray) Start() complex128 {
	if r.Reversed {
		return cmplx.Inf()
	}
	return r.Base
}

func (r Ray) End() complex128 {
	if r.Reversed {
		return r.Base
	}
	return cmplx.Inf()
}

func (r Ray) Arclength() float64 { return math.Inf(1) }
func (r Ray) IsBounded() bool    { return false }

func (r Ray) Reverse() Curve {
	return Ray{Base: r.Base, Angle: r.Angle, Reversed: !r.Reversed}
}

func (r Ray) Translate(w complex128) Curve {
	return Ray{Base: r.Base + w, Angle: r.Angle, Reversed: r.Reversed}
}

func (r Ray) Mul(w complex128) Curve {
	return Ray{Base: w * r.Base, Angle: r.Angle + cmplx.Phase(w), Reversed: r.Reversed}
}

func (r Ray) Neg() Curve {
	return Ray{Base: -r.Base, Angle: r.Angle + math.Pi, Reversed: r.Reversed}
}

func (r Ray) Conj() Curve {
	return Ray{Base: cmplx.Conj(r.Base), Angle: -r.Angle, Reversed: r.Reversed}
}

func (r Ray) Inv() Curve { return invThrough(r) }

func (r Ray) Dist(z complex128) float64 {
	return cmplx.Abs(z - r.Closest(z))
}

func (r Ray) Closest(z complex128) complex128 {
	s := dot(r.dir(), z-r.Base)
	if s <= 0 {
		return r.Base
	}
	return r.Base + r.dir()*complex(s, 0)
}

func (r Ray) kind() curveKind { return kindRay }

// Segment is the oriented line segment from A to B.
type Segment struct {
	A complex128
	B complex128
}

var _ Curve = Segment{}

func (s Segment) Point(t float64) complex128 {
	return s.A + (s.B-s.A)*complex(t, 0)
}

func (s Segment) Tangent(t float64) complex128 { return unit(s.B - s.A) }
func (s Segment) Start() complex128            { return s.A }
func (s Segment) End() complex128              { return s.B }
func (s Segment) Arclength() float64           { return cmplx.Abs(s.B - s.A) }
func (s Segment) IsBounded() bool              { return true }

func (s Segment) Reverse() Curve { return Segment{A: s.B, B: s.A} }

func (s Segment) Translate(w complex128) Curve { return Segment{A: s.A + w, B: s.B + w} }
func (s Segment) Mul(w complex128) Curve       { return Segment{A: w * s.A, B: w * s.B} }
func (s Segment) Neg() Curve                   { return Segment{A: -s.A, B: -s.B} }
func (s Segment) Conj() Curve                  { return Segment{A: cmplx.Conj(s.A), B: cmplx.Conj(s.B)} }
func (s Segment) Inv() Curve                   { return invThrough(s) }

func (s Segment) Dist(z complex128) float64 {
	return cmplx.Abs(z - s.Closest(z))
}

func (s Segment) Closest(z complex128) complex128 {
	d := s.B - s.A
	t := dot(d, z-s.A) / dot(d, d)
	t = min(max(t, 0), 1)
	return s.Point(t)
}

func (s Segment) kind() curveKind { return kindSegment }

// invPt maps a point under z → 1/z, exchanging zero and infinity.
func invPt(z complex128) complex128 {
	if isInfZ(z) {
		return 0
	}
	if z == 0 {
		return cmplx.Inf()
	}
	return 1 / z
}

// invThrough maps a bounded, non-circular curve under z → 1/z by the images
// of its endpoints and midpoint: a segment or ray when the images are
// collinear, otherwise an arc.
func invThrough(c Curve) Curve {
	w1 := invPt(c.Point(0))
	wm := invPt(c.Point(0.5))
	w2 := invPt(c.Point(1))
	if isInfZ(wm) {
		// The curve's interior passes through the origin; the image is
		// unbounded in the middle and the best closed-form answer is the
		// image of the whole carrier.
		return Line{Base: w1, Dir: unit(w1 - w2)}
	}
	switch {
	case isInfZ(w1):
		return Ray{Base: w2, Angle: cmplx.Phase(wm - w2), Reversed: true}
	case isInfZ(w2):
		return Ray{Base: w1, Angle: cmplx.Phase(wm - w1)}
	}
	scale := 1 + cmplx.Abs(w1) + cmplx.Abs(w2)
	if math.Abs(cross(wm-w1, w2-w1)) <= DefaultTolerance*scale*scale {
		return Segment{A: w1, B: w2}
	}
	a, _ := ArcThrough(w1, wm, w2, DefaultTolerance)
	return a
}
