// Copyright 2026 The Go-Copula Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bivariate

import "testing"

// stubSource replays a fixed slice for every draw, standing in for
// the seeded generator in fixture tests.
type stubSource struct {
	vals  []float64
	calls int
}

func (s *stubSource) Uniforms(low, high float64, n int) []float64 {
	s.calls++
	if n > len(s.vals) {
		panic("stubSource: draw larger than fixture")
	}
	return append([]float64(nil), s.vals[:n]...)
}

var interior = []float64{0.05, 0.25, 0.5, 0.75, 0.95}

// checkCDFLaws verifies, across a range of tau values, that the CDF
// vanishes when either argument is 0 and reduces to the other
// argument when one is 1.
func checkCDFLaws(t *testing.T, f Family, taus []float64) {
	t.Helper()
	for _, tau := range taus {
		theta, err := f.Theta(tau)
		if err != nil {
			t.Fatalf("Theta(%v) failed: %v", tau, err)
		}
		for _, w := range []float64{0, 0.05, 0.25, 0.5, 0.75, 0.95, 1} {
			if got := f.CDF(theta, 0, w); got != 0 {
				t.Errorf("tau=%v: CDF(0, %v) = %v, want 0", tau, w, got)
			}
			if got := f.CDF(theta, w, 0); got != 0 {
				t.Errorf("tau=%v: CDF(%v, 0) = %v, want 0", tau, w, got)
			}
			if got := f.CDF(theta, w, 1); !aeq(w, got) {
				t.Errorf("tau=%v: CDF(%v, 1) = %v, want %v", tau, w, got, w)
			}
			if got := f.CDF(theta, 1, w); !aeq(w, got) {
				t.Errorf("tau=%v: CDF(1, %v) = %v, want %v", tau, w, got, w)
			}
		}

		// The boundary special cases agree with the closed
		// form's limit approaching 1.
		for _, w := range interior {
			if got, lim := f.CDF(theta, w, 1), f.CDF(theta, w, 1-1e-12); !aeq(lim, got) {
				t.Errorf("tau=%v: CDF(%v, 1) = %v discontinuous with limit %v", tau, w, got, lim)
			}
		}
	}
}

// checkDensityPositive verifies the density is strictly positive on
// interior points for all valid theta.
func checkDensityPositive(t *testing.T, f Family, taus []float64) {
	t.Helper()
	for _, tau := range taus {
		theta, err := f.Theta(tau)
		if err != nil {
			t.Fatalf("Theta(%v) failed: %v", tau, err)
		}
		for _, u := range interior {
			for _, v := range interior {
				if got := f.PDF(theta, u, v); !(got > 0) {
					t.Errorf("tau=%v: PDF(%v, %v) = %v, want > 0", tau, u, v, got)
				}
			}
		}
	}
}

// checkPercentPointRoundTrip verifies that the percent point inverts
// the partial derivative: PercentPoint(u, dC/du(u, v)) ≈ v wherever
// the conditional CDF is strictly between 0 and 1 (negative-theta
// Clayton has a zero-mass region where the forward map is flat and no
// inverse exists).
func checkPercentPointRoundTrip(t *testing.T, f Family, taus []float64) {
	t.Helper()
	for _, tau := range taus {
		theta, err := f.Theta(tau)
		if err != nil {
			t.Fatalf("Theta(%v) failed: %v", tau, err)
		}
		for _, u := range interior {
			for _, v := range interior {
				y := f.PartialDerivative(theta, u, v)
				if y <= 0 || y >= 1 {
					continue
				}
				got, err := f.PercentPoint(theta, u, y)
				if err != nil {
					t.Fatalf("tau=%v: PercentPoint(%v, %v) failed: %v", tau, u, y, err)
				}
				if !aeq(v, got) {
					t.Errorf("tau=%v: PercentPoint(%v, dC/du(%v, %v)) = %v, want %v",
						tau, u, u, v, got, v)
				}
			}
		}
	}
}
