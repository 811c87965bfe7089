package regions

import (
	"errors"
	"math"
	"testing"
)

func halfStrip(t *testing.T) Polygon {
	t.Helper()
	p, err := NewPolygon([]Curve{
		Ray{Base: 0, Angle: math.Pi / 2, Reversed: true},
		Segment{A: 0, B: 2},
		NewRay(2, math.Pi/2),
	}, DefaultTolerance)
	if err != nil {
		t.Fatal(err)
	}
	return p
}

func TestTruncateBounded(t *testing.T) {
	sq, err := NewPolygonFromVertices([]complex128{0, 1, 1 + 1i, 1i}, DefaultTolerance)
	if err != nil {
		t.Fatal(err)
	}
	tr, err := sq.Truncate(DefaultTolerance)
	if err != nil {
		t.Fatal(err)
	}
	if !tr.ClosedPath.ApproxEqual(sq.ClosedPath, DefaultTolerance) {
		t.Error("truncating a bounded polygon should leave it unchanged")
	}
}

func TestTruncateHalfStrip(t *testing.T) {
	hs := halfStrip(t)
	tr, err := hs.Truncate(DefaultTolerance)
	if err != nil {
		t.Fatal(err)
	}
	if !tr.IsBounded() {
		t.Fatal("truncation should remove all unbounded sides")
	}

	// The finite vertices survive.
	vs := tr.Vertices()
	for _, want := range []complex128{0, 2} {
		found := false
		for _, v := range vs {
			if eqZ(v, want, DefaultTolerance) {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("finite vertex %v missing from truncation", want)
		}
	}

	// Winding numbers agree with the original inside the bounding circle.
	for _, z := range []complex128{1 + 0.5i, 0.5 + 1i, 1.5 + 0.1i, 1 - 0.5i, -0.5 + 0.5i, 2.5 + 0.5i} {
		if got, want := tr.Winding(z), hs.Winding(z); got != want {
			t.Errorf("Winding(%v) = %d after truncation, %d before", z, got, want)
		}
	}
}

func TestTruncateWith(t *testing.T) {
	hs := halfStrip(t)
	c := NewCircle(1, 5)
	tr, err := hs.TruncateWith(c, DefaultTolerance)
	if err != nil {
		t.Fatal(err)
	}

	var arcs []Arc
	for _, side := range tr.Curves() {
		if a, ok := side.(Arc); ok {
			arcs = append(arcs, a)
		}
	}
	if len(arcs) != 1 {
		t.Fatalf("got %d arc sides, expected 1", len(arcs))
	}
	a := arcs[0]
	approxZ(t, c.Center, a.C.Center, 1e-12)
	approxF(t, c.Radius, a.C.Radius, 1e-12)
	// The detour endpoints lie on the vertical rays.
	approxF(t, 2, real(a.Start()), 1e-12)
	approxF(t, 0, real(a.End()), 1e-12)
	if a.SweepAngle <= 0 {
		t.Error("detour arcs run counterclockwise")
	}

	if w := tr.Winding(1 + 1i); w != 1 {
		t.Errorf("Winding(1+1i) = %d, expected 1", w)
	}
	if w := tr.Winding(-1 + 1i); w != 0 {
		t.Errorf("Winding(-1+1i) = %d, expected 0", w)
	}
}

func TestTruncateSeamOrderings(t *testing.T) {
	// The ray pair at infinity may or may not straddle the side-list seam;
	// both orderings must truncate to the same circular polygon.
	c := NewCircle(1, 4)
	wrap := halfStrip(t) // pair wraps from the last side to the first
	flat, err := NewPolygon([]Curve{
		Segment{A: 0, B: 2},
		NewRay(2, math.Pi/2),
		Ray{Base: 0, Angle: math.Pi / 2, Reversed: true},
	}, DefaultTolerance)
	if err != nil {
		t.Fatal(err)
	}
	tw, err := wrap.TruncateWith(c, DefaultTolerance)
	if err != nil {
		t.Fatal(err)
	}
	tf, err := flat.TruncateWith(c, DefaultTolerance)
	if err != nil {
		t.Fatal(err)
	}
	if !tw.ClosedPath.ApproxEqual(tf.ClosedPath, DefaultTolerance) {
		t.Error("the two orderings should truncate to the same polygon")
	}
}

func TestTruncateSlit(t *testing.T) {
	// Anti-parallel rays meet the circle at a single point; the detour
	// must sweep the full circle.
	slit, err := NewPolygon([]Curve{
		NewRay(0, 0),
		Ray{Base: 0, Angle: 0, Reversed: true},
	}, DefaultTolerance)
	if err != nil {
		t.Fatal(err)
	}
	tr, err := slit.Truncate(DefaultTolerance)
	if err != nil {
		t.Fatal(err)
	}
	var sweep float64
	for _, side := range tr.Curves() {
		if a, ok := side.(Arc); ok {
			sweep += a.SweepAngle
		}
	}
	approxF(t, 2*math.Pi, sweep, 1e-12)
}

func TestTruncateReversedHalfStrip(t *testing.T) {
	rev := halfStrip(t).ClosedPath.Reverse()
	if w := rev.Winding(1 + 1i); w != -1 {
		t.Errorf("Winding(1+1i) = %d, expected -1", w)
	}
	if !IsRight(1+1i, rev) {
		t.Error("strip points lie right of the reversed boundary")
	}
	if w := rev.Winding(-1 + 1i); w != 0 {
		t.Errorf("Winding(-1+1i) = %d, expected 0", w)
	}

	// Truncation follows the boundary's orientation: the detour arc runs
	// clockwise and the winding numbers survive.
	tr, err := truncatePolygon(rev, nil, DefaultTolerance)
	if err != nil {
		t.Fatal(err)
	}
	arcs := 0
	for _, side := range tr.Curves() {
		if a, ok := side.(Arc); ok {
			arcs++
			if a.SweepAngle >= 0 {
				t.Error("detour arcs on a negatively oriented boundary run clockwise")
			}
		}
	}
	if arcs != 1 {
		t.Fatalf("got %d arc sides, expected 1", arcs)
	}
	for _, z := range []complex128{1 + 1i, -1 + 1i, 1 - 1i, 0.5 + 0.5i} {
		if got, want := tr.Winding(z), rev.Winding(z); got != want {
			t.Errorf("Winding(%v) = %d after truncation, %d before", z, got, want)
		}
	}
}

func TestTruncateNoFiniteVertex(t *testing.T) {
	p, err := NewClosedPath([]Curve{NewLine(0, 1)}, DefaultTolerance)
	if err != nil {
		t.Fatal(err)
	}
	_, err = truncatePolygon(p, nil, DefaultTolerance)
	if !errors.Is(err, ErrNoFiniteVertex) {
		t.Errorf("got %v, expected ErrNoFiniteVertex", err)
	}
}
