package regions

import "fmt"

// Region is a subset of the complex plane that can report membership of a
// point. Membership of points on or extremely near a region's boundary is
// unreliable.
type Region interface {
	Contains(z complex128) bool
}

// SimplyConnectedRegion is the region on one side of a Jordan curve: the
// left side when Left is set, the right side otherwise.
type SimplyConnectedRegion struct {
	Boundary ClosedCurve
	Left     bool
}

var _ Region = SimplyConnectedRegion{}

// Interior returns the region to the left of c. For a positively oriented
// bounded curve this is the enclosed region.
func Interior(c ClosedCurve) SimplyConnectedRegion {
	return SimplyConnectedRegion{Boundary: c, Left: true}
}

// Exterior returns the region to the right of c.
func Exterior(c ClosedCurve) SimplyConnectedRegion {
	return SimplyConnectedRegion{Boundary: c, Left: false}
}

func (r SimplyConnectedRegion) Contains(z complex128) bool {
	return r.Left == IsLeft(z, r.Boundary)
}

// Complement returns the region on the other side of the same boundary.
func (r SimplyConnectedRegion) Complement() SimplyConnectedRegion {
	return SimplyConnectedRegion{Boundary: r.Boundary, Left: !r.Left}
}

// ApproxEqual reports whether two simply connected regions describe the
// same set: equal boundaries with equal side flags, or reversed boundaries
// with opposite flags.
func (r SimplyConnectedRegion) ApproxEqual(o SimplyConnectedRegion, tol float64) bool {
	if r.Left == o.Left {
		return closedEqual(r.Boundary, o.Boundary, tol)
	}
	return closedEqual(r.Boundary, reverseClosed(o.Boundary), tol)
}

func reverseClosed(c ClosedCurve) ClosedCurve {
	switch c := c.(type) {
	case Line:
		return c.Reverse().(Line)
	case Circle:
		return c.Reverse().(Circle)
	case ClosedPath:
		return c.Reverse()
	case Polygon:
		return c.ClosedPath.Reverse()
	case CircularPolygon:
		return c.ClosedPath.Reverse()
	default:
		panic("regions: unknown closed curve")
	}
}

func closedEqual(a, b ClosedCurve, tol float64) bool {
	// Polygons compare by their underlying paths.
	if p, ok := a.(Polygon); ok {
		a = p.ClosedPath
	}
	if p, ok := a.(CircularPolygon); ok {
		a = p.ClosedPath
	}
	if p, ok := b.(Polygon); ok {
		b = p.ClosedPath
	}
	if p, ok := b.(CircularPolygon); ok {
		b = p.ClosedPath
	}
	switch a := a.(type) {
	case Line:
		b, ok := b.(Line)
		return ok && CurvesEqual(a, b, tol)
	case Circle:
		b, ok := b.(Circle)
		return ok && CurvesEqual(a, b, tol)
	case ClosedPath:
		b, ok := b.(ClosedPath)
		return ok && a.ApproxEqual(b, tol)
	default:
		return false
	}
}

// ArityError reports a mismatch between a connected region's declared
// connectivity and the number of boundary components supplied.
type ArityError struct {
	Connectivity int
	Want         int
	Got          int
}

func (e *ArityError) Error() string {
	return fmt.Sprintf("regions: connectivity %d requires %d inner boundaries, got %d",
		e.Connectivity, e.Want, e.Got)
}

// ConnectedRegion is a region of connectivity N: the set of points inside
// the outer boundary (all of the plane if Outer is nil) and outside every
// inner boundary.
type ConnectedRegion struct {
	Outer ClosedCurve
	Inner []ClosedCurve
}

var _ Region = ConnectedRegion{}

// NewConnectedRegion builds a region of the given connectivity. The number
// of inner boundaries must equal the connectivity, less one when an outer
// boundary is present.
func NewConnectedRegion(connectivity int, outer ClosedCurve, inner []ClosedCurve) (ConnectedRegion, error) {
	want := connectivity
	if outer != nil {
		want--
	}
	if len(inner) != want {
		return ConnectedRegion{}, &ArityError{Connectivity: connectivity, Want: want, Got: len(inner)}
	}
	in := make([]ClosedCurve, len(inner))
	copy(in, inner)
	return ConnectedRegion{Outer: outer, Inner: in}, nil
}

func (r ConnectedRegion) Contains(z complex128) bool {
	for _, b := range r.Inner {
		if IsLeft(z, b) {
			return false
		}
	}
	return r.Outer == nil || IsLeft(z, r.Outer)
}

// Annulus is the region between two concentric circles.
type Annulus struct {
	Outer Circle
	Inner Circle
}

var _ Region = Annulus{}

// NewAnnulus returns the annulus centered at center with the given radii,
// requiring outer > inner > 0.
func NewAnnulus(center complex128, outer, inner float64) (Annulus, error) {
	if !(outer > inner && inner > 0) {
		return Annulus{}, fmt.Errorf("regions: annulus radii must satisfy outer > inner > 0, got %g, %g", outer, inner)
	}
	return Annulus{Outer: NewCircle(center, outer), Inner: NewCircle(center, inner)}, nil
}

func (a Annulus) Contains(z complex128) bool {
	return IsLeft(z, a.Outer) && !IsLeft(z, a.Inner)
}

// RegionUnion is the union of two regions.
type RegionUnion struct {
	A, B Region
}

var _ Region = RegionUnion{}

// Union returns the union of two regions.
func Union(a, b Region) RegionUnion { return RegionUnion{A: a, B: b} }

func (r RegionUnion) Contains(z complex128) bool {
	return r.A.Contains(z) || r.B.Contains(z)
}

// RegionIntersection is the intersection of two regions.
type RegionIntersection struct {
	A, B Region
}

var _ Region = RegionIntersection{}

// IntersectRegions returns the intersection of two regions.
func IntersectRegions(a, b Region) RegionIntersection { return RegionIntersection{A: a, B: b} }

func (r RegionIntersection) Contains(z complex128) bool {
	return r.A.Contains(z) && r.B.Contains(z)
}

// Predefined curves and regions.
var (
	// RealLine is the real axis oriented towards +∞.
	RealLine = Line{Base: 0, Dir: 1}
	// ImagLine is the imaginary axis oriented towards +i∞.
	ImagLine = Line{Base: 0, Dir: 1i}

	// UnitDisk is the open region |z| < 1.
	UnitDisk = Interior(UnitCircle)
	// UpperHalfPlane is the region Im z > 0.
	UpperHalfPlane = Interior(RealLine)
	// LowerHalfPlane is the region Im z < 0.
	LowerHalfPlane = Exterior(RealLine)
	// LeftHalfPlane is the region Re z < 0.
	LeftHalfPlane = Interior(ImagLine)
	// RightHalfPlane is the region Re z > 0.
	RightHalfPlane = Exterior(ImagLine)
)
