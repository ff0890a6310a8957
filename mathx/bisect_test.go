// Copyright 2026 The Go-Copula Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mathx

import (
	"math"
	"testing"
)

func TestBisect(t *testing.T) {
	// Root of x² - 2 on [0, 2] is √2.
	got, err := Bisect(func(x float64) float64 { return x*x - 2 }, 0, 2, 1e-12, 100)
	if err != nil {
		t.Fatalf("Bisect failed: %v", err)
	}
	if math.Abs(got-math.Sqrt2) > 1e-10 {
		t.Errorf("want %v, got %v", math.Sqrt2, got)
	}

	// Decreasing function.
	got, err = Bisect(func(x float64) float64 { return math.Cos(x) - x }, 0, 1, 1e-12, 100)
	if err != nil {
		t.Fatalf("Bisect failed: %v", err)
	}
	if math.Abs(math.Cos(got)-got) > 1e-10 {
		t.Errorf("cos(x)=x not satisfied at %v", got)
	}

	// Endpoint roots are returned exactly.
	got, err = Bisect(func(x float64) float64 { return x }, 0, 1, 1e-12, 100)
	if err != nil || got != 0 {
		t.Errorf("want 0, <nil>; got %v, %v", got, err)
	}
}

func TestBisectErrors(t *testing.T) {
	// No sign change over the bracket.
	if _, err := Bisect(func(x float64) float64 { return x*x + 1 }, -1, 1, 1e-12, 100); err != ErrBracket {
		t.Errorf("want ErrBracket, got %v", err)
	}

	// Iteration budget too small for the tolerance.
	if _, err := Bisect(func(x float64) float64 { return x*x - 2 }, 0, 2, 1e-12, 4); err != ErrMaxIter {
		t.Errorf("want ErrMaxIter, got %v", err)
	}
}

func TestDebye1(t *testing.T) {
	aeq := func(want, got, tol float64) bool { return math.Abs(want-got) < tol }

	if got := Debye1(0); got != 1 {
		t.Errorf("Debye1(0) = %v, want 1", got)
	}

	// Small-x Taylor check: D₁(0.1) ≈ 1 - 0.1/4 + 0.01/36.
	want := 1 - 0.025 + 0.01/36 - 0.0001/3600 + 0.000001/211680
	if got := Debye1(0.1); !aeq(want, got, 1e-12) {
		t.Errorf("Debye1(0.1) = %v, want %v", got, want)
	}

	// Large-x asymptote: D₁(x) → π²/(6x).
	if got := Debye1(50); !aeq(math.Pi*math.Pi/(6*50), got, 1e-12) {
		t.Errorf("Debye1(50) = %v, want %v", math.Pi*math.Pi/(6*50), got)
	}

	// Reflection D₁(-x) = D₁(x) + x/2.
	for _, x := range []float64{0.25, 0.5, 1, 3, 10} {
		if got, want := Debye1(-x), Debye1(x)+x/2; !aeq(want, got, 1e-12) {
			t.Errorf("Debye1(%v) = %v, want %v", -x, got, want)
		}
	}

	// Continuity across the series crossover at x = 1.
	lo, hi := Debye1(1-1e-9), Debye1(1+1e-9)
	if !aeq(lo, hi, 1e-6) {
		t.Errorf("Debye1 discontinuous at crossover: %v vs %v", lo, hi)
	}
}
