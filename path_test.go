package regions

import (
	"errors"
	"math"
	"testing"
)

type pointer interface {
	Point(t float64) (complex128, error)
	Tangent(t float64) (complex128, error)
}

func pointAt(t *testing.T, p pointer, s float64) complex128 {
	t.Helper()
	z, err := p.Point(s)
	if err != nil {
		t.Fatalf("Point(%g): %v", s, err)
	}
	return z
}

func tangentAt(t *testing.T, p pointer, s float64) complex128 {
	t.Helper()
	z, err := p.Tangent(s)
	if err != nil {
		t.Fatalf("Tangent(%g): %v", s, err)
	}
	return z
}

func lShape() []Curve {
	return []Curve{
		Segment{A: 0, B: 2},
		Segment{A: 2, B: 2 + 1i},
		Segment{A: 2 + 1i, B: 2 + 2i},
	}
}

func TestPathContinuity(t *testing.T) {
	p, err := NewPath(lShape(), DefaultTolerance)
	if err != nil {
		t.Fatal(err)
	}
	if p.Len() != 3 {
		t.Errorf("Len = %d, expected 3", p.Len())
	}

	broken := lShape()
	broken[2] = Segment{A: 3 + 1i, B: 2 + 2i}
	_, err = NewPath(broken, DefaultTolerance)
	var ce *ContinuityError
	if !errors.As(err, &ce) {
		t.Fatalf("got %v, expected a ContinuityError", err)
	}
	if ce.Index != 1 {
		t.Errorf("ContinuityError.Index = %d, expected 1", ce.Index)
	}
}

func TestPathEvaluation(t *testing.T) {
	p, err := NewPath(lShape(), DefaultTolerance)
	if err != nil {
		t.Fatal(err)
	}
	approxZ(t, 0, p.Start(), 1e-15)
	approxZ(t, 2+2i, p.End(), 1e-15)
	approxF(t, 4, p.Arclength(), 1e-15)

	// The parameter counts sides: t ∈ [k, k+1] evaluates side k.
	approxZ(t, 1, pointAt(t, p, 0.5), 1e-15)
	approxZ(t, 2, pointAt(t, p, 1), 1e-15)
	approxZ(t, 2+0.5i, pointAt(t, p, 1.5), 1e-15)
	approxZ(t, 2+2i, pointAt(t, p, 3), 1e-15)
	approxZ(t, 1, tangentAt(t, p, 0.5), 1e-15)
	approxZ(t, 1i, tangentAt(t, p, 2.5), 1e-15)

	var pe *ParamError
	if _, err := p.Point(3.5); !errors.As(err, &pe) {
		t.Fatalf("got %v, expected a ParamError", err)
	}
	if _, err := p.Point(-0.1); !errors.As(err, &pe) {
		t.Fatalf("got %v, expected a ParamError", err)
	}

	diff(t, []complex128{0, 2, 2 + 1i, 2 + 2i}, p.Vertices())

	if _, err := p.Side(3); err == nil {
		t.Error("Side(3) should fail on a 3-sided path")
	}
	var ie *IndexError
	if _, err := p.Side(-1); !errors.As(err, &ie) {
		t.Fatalf("got %v, expected an IndexError", err)
	}
}

func TestPathUnbounded(t *testing.T) {
	// The boundary of a half-strip: in from infinity, across, back out.
	curves := []Curve{
		Ray{Base: 0, Angle: math.Pi / 2, Reversed: true},
		Segment{A: 0, B: 2},
		NewRay(2, math.Pi/2),
	}
	p, err := NewPath(curves, DefaultTolerance)
	if err != nil {
		t.Fatal(err)
	}
	if p.IsBounded() {
		t.Error("a path containing rays is unbounded")
	}
	if !isInfZ(p.Start()) || !isInfZ(p.End()) {
		t.Error("expected infinite path endpoints")
	}
	approxZ(t, 1, pointAt(t, p, 1.5), 1e-15)
}

func TestPathTransforms(t *testing.T) {
	p, err := NewPath(lShape(), DefaultTolerance)
	if err != nil {
		t.Fatal(err)
	}

	q := p.Translate(1i)
	approxZ(t, 1i, q.Start(), 1e-15)
	approxZ(t, 2+3i, q.End(), 1e-15)

	q = p.Mul(1i)
	approxZ(t, 2i, pointAt(t, q, 1), 1e-15)

	q = p.Reverse()
	approxZ(t, 2+2i, q.Start(), 1e-15)
	approxZ(t, 0, q.End(), 1e-15)
	approxZ(t, 2+0.5i, pointAt(t, q, 1.5), 1e-15)

	q = p.Conj()
	approxZ(t, 2-2i, q.End(), 1e-15)

	// Transforms preserve continuity, so reconstruction must not fail.
	if _, err := NewPath(q.Curves(), DefaultTolerance); err != nil {
		t.Errorf("transformed path is discontinuous: %v", err)
	}
}

func TestPathInv(t *testing.T) {
	p, err := NewPath([]Curve{
		Segment{A: 1, B: 2},
		Segment{A: 2, B: 2 + 2i},
	}, DefaultTolerance)
	if err != nil {
		t.Fatal(err)
	}
	q := p.Inv()
	approxZ(t, 1, q.Start(), 1e-12)
	approxZ(t, 1/(2+2i), q.End(), 1e-12)
	if _, err := NewPath(q.Curves(), 1e-9); err != nil {
		t.Errorf("inverted path is discontinuous: %v", err)
	}
}

func squarePath(t *testing.T) ClosedPath {
	t.Helper()
	p, err := NewClosedPath([]Curve{
		Segment{A: -1 - 1i, B: 1 - 1i},
		Segment{A: 1 - 1i, B: 1 + 1i},
		Segment{A: 1 + 1i, B: -1 + 1i},
		Segment{A: -1 + 1i, B: -1 - 1i},
	}, DefaultTolerance)
	if err != nil {
		t.Fatal(err)
	}
	return p
}

func TestClosedPathSeam(t *testing.T) {
	_, err := NewClosedPath([]Curve{
		Segment{A: 0, B: 1},
		Segment{A: 1, B: 1 + 1i},
	}, DefaultTolerance)
	var ce *ContinuityError
	if !errors.As(err, &ce) {
		t.Fatalf("got %v, expected a ContinuityError at the seam", err)
	}
	if ce.Index != 1 {
		t.Errorf("ContinuityError.Index = %d, expected 1", ce.Index)
	}
}

func TestClosedPathWraps(t *testing.T) {
	p := squarePath(t)
	// The parameter is periodic with period Len().
	approxZ(t, pointAt(t, p, 0.5), pointAt(t, p, 4.5), 1e-15)
	approxZ(t, pointAt(t, p, 3.25), pointAt(t, p, -0.75), 1e-15)
	approxZ(t, tangentAt(t, p, 1.5), tangentAt(t, p, 5.5), 1e-15)
	approxZ(t, p.Start(), p.End(), 1e-15)
	diff(t, []complex128{-1 - 1i, 1 - 1i, 1 + 1i, -1 + 1i}, p.Vertices())
}

func TestClosedPathEqualUnderRotation(t *testing.T) {
	p := squarePath(t)
	rotated, err := NewClosedPath([]Curve{
		Segment{A: 1 - 1i, B: 1 + 1i},
		Segment{A: 1 + 1i, B: -1 + 1i},
		Segment{A: -1 + 1i, B: -1 - 1i},
		Segment{A: -1 - 1i, B: 1 - 1i},
	}, DefaultTolerance)
	if err != nil {
		t.Fatal(err)
	}
	if !p.ApproxEqual(rotated, DefaultTolerance) {
		t.Error("cyclic rotation of the sides should compare equal")
	}
	if p.ApproxEqual(rotated.Reverse(), DefaultTolerance) {
		t.Error("a reversed path is a different closed path")
	}
}

func TestClosedPathRays(t *testing.T) {
	// A closed path may pass through infinity: consecutive curves with
	// infinite endpoints are considered to meet there.
	_, err := NewClosedPath([]Curve{
		Segment{A: 0, B: 2},
		NewRay(2, math.Pi/2),
		Ray{Base: 0, Angle: math.Pi / 2, Reversed: true},
	}, DefaultTolerance)
	if err != nil {
		t.Fatal(err)
	}
}
