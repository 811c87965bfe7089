package regions

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func approxZ(t *testing.T, want, got complex128, tol float64) {
	t.Helper()
	if cmplx.Abs(want-got) > tol {
		t.Errorf("got %v, expected %v within %g", got, want, tol)
	}
}

func approxF(t *testing.T, want, got float64, tol float64) {
	t.Helper()
	if math.Abs(want-got) > tol {
		t.Errorf("got %v, expected %v within %g", got, want, tol)
	}
}

// samePoints reports whether two unordered point sets match within tol.
func samePoints(a, b []complex128, tol float64) bool {
	if len(a) != len(b) {
		return false
	}
	used := make([]bool, len(b))
outer:
	for _, p := range a {
		for i, q := range b {
			if !used[i] && cmplx.Abs(p-q) <= tol {
				used[i] = true
				continue outer
			}
		}
		return false
	}
	return true
}
