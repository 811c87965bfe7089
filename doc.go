// Package regions provides curves, paths, polygons, and regions in the
// complex plane, intended as the domain-description layer for
// complex-analysis tooling such as conformal mapping.
//
// # Curves
//
// The package works with a closed set of five curve kinds: [Line], [Ray],
// [Segment], [Circle], and [Arc]. All of them implement [Curve], which
// exposes a parameterization over t ∈ [0, 1], unit tangents, arc length,
// reversal, the conformal operators (translation, complex multiplication,
// negation, conjugation, and the image under z → 1/z), and nearest-point
// queries. Curves are immutable value types; every operator returns a new
// value.
//
// [Intersect] computes the pairwise intersection of any two curves in closed
// form, classifying the result as empty, a single point, a point pair, or an
// overlapping sub-curve. Degeneracy decisions (parallel lines, tangent or
// concentric circles) are made with relative tolerances and are never
// surfaced as errors.
//
// # Paths and polygons
//
// [Path] and [ClosedPath] assemble curves into piecewise boundaries,
// enforcing endpoint continuity at construction. [Polygon] restricts a
// closed path to segment and ray sides, [CircularPolygon] additionally
// admits arcs. Closed curves and paths compute winding numbers
// ([ClosedPath.Winding]) by signed ray crossings, for unbounded sides
// included. [Polygon.Truncate] finitizes an unbounded polygon by replacing
// each vertex at infinity with a detour along a bounding circle, following
// the boundary's orientation.
//
// # Regions
//
// A [Region] reports membership of a point. [SimplyConnectedRegion] pairs a
// Jordan curve with a side flag, [ConnectedRegion] allows multiple boundary
// components, and [Annulus] is the concentric-circle special case. [Union]
// and [IntersectRegions] combine regions as a boolean expression tree.
//
// # Tolerances
//
// Numerical comparisons use a caller-supplied tolerance, applied relatively
// as tol·(1+|scale|). [DefaultTolerance] is a reasonable choice for
// geometries of moderate magnitude. Results for points on or extremely near
// a boundary are unreliable; this is inherent to floating-point side tests.
package regions
