package regions

import (
	"fmt"
	"math"
	"math/cmplx"
)

// ContinuityError reports adjacent curves of a path whose endpoints fail to
// meet within the construction tolerance. Index identifies the pair: curves
// Index and Index+1, or the seam between the last and first curve of a
// closed path when Index is the final index.
type ContinuityError struct {
	Index int
	Gap   float64
}

func (e *ContinuityError) Error() string {
	return fmt.Sprintf("regions: curves %d and %d do not meet (gap %g)", e.Index, e.Index+1, e.Gap)
}

// ParamError reports a path parameter outside the valid domain [0, n].
type ParamError struct {
	T float64
	N int
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("regions: parameter %g outside path domain [0, %d]", e.T, e.N)
}

// IndexError reports a side or vertex index out of range.
type IndexError struct {
	Index int
	N     int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("regions: index %d out of range [0, %d)", e.Index, e.N)
}

// Path is a piecewise curve: an ordered sequence of curves in which each
// curve begins where its predecessor ends. Paths are immutable; the
// constructor copies the side slice.
type Path struct {
	curves []Curve
}

// NewPath assembles curves into a path, verifying that consecutive
// endpoints coincide within the relative tolerance tol. Two infinite
// endpoints are taken to coincide.
func NewPath(curves []Curve, tol float64) (Path, error) {
	if len(curves) == 0 {
		return Path{}, fmt.Errorf("regions: empty path")
	}
	cs := make([]Curve, len(curves))
	copy(cs, curves)
	for k := 0; k < len(cs)-1; k++ {
		if !eqZ(cs[k].End(), cs[k+1].Start(), tol) {
			return Path{}, &ContinuityError{Index: k, Gap: gap(cs[k].End(), cs[k+1].Start())}
		}
	}
	return Path{curves: cs}, nil
}

func gap(a, b complex128) float64 {
	if isInfZ(a) || isInfZ(b) {
		return math.Inf(1)
	}
	return cmplx.Abs(a - b)
}

// Len returns the number of curves in the path.
func (p Path) Len() int { return len(p.curves) }

// Curves returns a copy of the path's curve sequence.
func (p Path) Curves() []Curve {
	cs := make([]Curve, len(p.curves))
	copy(cs, p.curves)
	return cs
}

// Side returns the k-th curve of the path.
func (p Path) Side(k int) (Curve, error) {
	if k < 0 || k >= len(p.curves) {
		return nil, &IndexError{Index: k, N: len(p.curves)}
	}
	return p.curves[k], nil
}

// Point evaluates the path at the global parameter t ∈ [0, n], where n is
// the number of curves: t maps to curve ⌊t⌋ at local parameter t mod 1.
func (p Path) Point(t float64) (complex128, error) {
	k, local, err := p.locate(t)
	if err != nil {
		return 0, err
	}
	return p.curves[k].Point(local), nil
}

// Tangent returns the unit tangent at the global parameter t.
func (p Path) Tangent(t float64) (complex128, error) {
	k, local, err := p.locate(t)
	if err != nil {
		return 0, err
	}
	return p.curves[k].Tangent(local), nil
}

func (p Path) locate(t float64) (int, float64, error) {
	n := len(p.curves)
	if math.IsNaN(t) || t < 0 || t > float64(n) {
		return 0, 0, &ParamError{T: t, N: n}
	}
	k := int(math.Floor(t))
	if k == n {
		k = n - 1
	}
	return k, t - float64(k), nil
}

// Start returns the path's first point.
func (p Path) Start() complex128 { return p.curves[0].Start() }

// End returns the path's last point.
func (p Path) End() complex128 { return p.curves[len(p.curves)-1].End() }

// Arclength returns the total length of the path's curves.
func (p Path) Arclength() float64 {
	var sum float64
	for _, c := range p.curves {
		sum += c.Arclength()
	}
	return sum
}

// IsBounded reports whether every curve of the path is bounded.
func (p Path) IsBounded() bool {
	for _, c := range p.curves {
		if !c.IsBounded() {
			return false
		}
	}
	return true
}

// Vertices returns the start point of every curve, followed by the end
// point of the last.
func (p Path) Vertices() []complex128 {
	vs := make([]complex128, 0, len(p.curves)+1)
	for _, c := range p.curves {
		vs = append(vs, c.Start())
	}
	return append(vs, p.End())
}

func (p Path) apply(f func(Curve) Curve) Path {
	cs := make([]Curve, len(p.curves))
	for i, c := range p.curves {
		cs[i] = f(c)
	}
	return Path{curves: cs}
}

// Translate returns the path shifted by w. Like all the conformal
// operators, it applies curve-wise; a similarity maps matching endpoints to
// matching endpoints, so continuity is preserved by construction.
func (p Path) Translate(w complex128) Path {
	return p.apply(func(c Curve) Curve { return c.Translate(w) })
}

// Mul returns the image of the path under z → w·z.
func (p Path) Mul(w complex128) Path {
	return p.apply(func(c Curve) Curve { return c.Mul(w) })
}

// Neg returns the image of the path under z → −z.
func (p Path) Neg() Path {
	return p.apply(func(c Curve) Curve { return c.Neg() })
}

// Conj returns the image of the path under z → conj(z).
func (p Path) Conj() Path {
	return p.apply(func(c Curve) Curve { return c.Conj() })
}

// Inv returns the image of the path under z → 1/z. The result is only a
// valid path when no curve of p passes through the origin in its interior.
func (p Path) Inv() Path {
	return p.apply(func(c Curve) Curve { return c.Inv() })
}

// Reverse returns the path traversed in the opposite direction.
func (p Path) Reverse() Path {
	cs := make([]Curve, len(p.curves))
	for i, c := range p.curves {
		cs[len(cs)-1-i] = c.Reverse()
	}
	return Path{curves: cs}
}

// ApproxEqual reports whether two paths consist of equal curves in the same
// order, within tol.
func (p Path) ApproxEqual(o Path, tol float64) bool {
	return curvesMatch(p.curves, o.curves, tol)
}

func curvesMatch(a, b []Curve, tol float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !CurvesEqual(a[i], b[i], tol) {
			return false
		}
	}
	return true
}

// ClosedPath is a path whose last curve ends where the first begins.
type ClosedPath struct {
	Path
}

var _ ClosedCurve = ClosedPath{}

// NewClosedPath assembles curves into a closed path. In addition to the
// checks of [NewPath], the last curve's endpoint must match the first
// curve's start; a violation there is reported with the final pair index.
func NewClosedPath(curves []Curve, tol float64) (ClosedPath, error) {
	p, err := NewPath(curves, tol)
	if err != nil {
		return ClosedPath{}, err
	}
	if !eqZ(p.End(), p.Start(), tol) {
		return ClosedPath{}, &ContinuityError{Index: len(curves) - 1, Gap: gap(p.End(), p.Start())}
	}
	return ClosedPath{Path: p}, nil
}

// Point evaluates the closed path at the global parameter t, which is
// unrestricted: the curve index wraps modulo the number of curves.
func (p ClosedPath) Point(t float64) (complex128, error) {
	return p.Path.Point(p.wrap(t))
}

// Tangent returns the unit tangent at the wrapped global parameter t.
func (p ClosedPath) Tangent(t float64) (complex128, error) {
	return p.Path.Tangent(p.wrap(t))
}

func (p ClosedPath) wrap(t float64) float64 {
	n := float64(len(p.curves))
	t = math.Mod(t, n)
	if t < 0 {
		t += n
	}
	return t
}

// Vertices returns the start point of every curve.
func (p ClosedPath) Vertices() []complex128 {
	vs := make([]complex128, len(p.curves))
	for i, c := range p.curves {
		vs[i] = c.Start()
	}
	return vs
}

func (p ClosedPath) Translate(w complex128) ClosedPath { return ClosedPath{p.Path.Translate(w)} }
func (p ClosedPath) Mul(w complex128) ClosedPath       { return ClosedPath{p.Path.Mul(w)} }
func (p ClosedPath) Neg() ClosedPath                   { return ClosedPath{p.Path.Neg()} }
func (p ClosedPath) Conj() ClosedPath                  { return ClosedPath{p.Path.Conj()} }
func (p ClosedPath) Inv() ClosedPath                   { return ClosedPath{p.Path.Inv()} }
func (p ClosedPath) Reverse() ClosedPath               { return ClosedPath{p.Path.Reverse()} }

// ApproxEqual reports whether two closed paths trace the same curves in the
// same direction, allowing the side lists to be rotations of one another.
func (p ClosedPath) ApproxEqual(o ClosedPath, tol float64) bool {
	n := len(p.curves)
	if n != len(o.curves) {
		return false
	}
	for shift := 0; shift < n; shift++ {
		ok := true
		for i := 0; i < n; i++ {
			if !CurvesEqual(p.curves[i], o.curves[(i+shift)%n], tol) {
				ok = false
				break
			}
		}
		if ok {
			return true
		}
	}
	return false
}

func (p ClosedPath) closedCurve() {}
