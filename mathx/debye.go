// Copyright 2026 The Go-Copula Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mathx

import "math"

const pi2over6 = math.Pi * math.Pi / 6

// Debye1 computes the first Debye function
//
//	D₁(x) = (1/x) ∫₀ˣ t/(eᵗ-1) dt
//
// which relates the Frank copula's shape parameter to Kendall's tau.
// It is defined for all real x via the reflection
// D₁(-x) = D₁(x) + x/2, with D₁(0) = 1.
//
// For small |x| the integrand's Taylor expansion is used; otherwise
// the integral is evaluated through the exponentially convergent
// series ∫₀ˣ = π²/6 - Σ_{k≥1} e^(-kx)·(x/k + 1/k²).
func Debye1(x float64) float64 {
	if x == 0 {
		return 1
	}
	if x < 0 {
		return Debye1(-x) - x/2
	}

	if x < 1 {
		// 1 - x/4 + Σ B₂ₙ x²ⁿ / ((2n+1)·(2n)!), truncated where
		// the terms drop below 1e-10 for x < 1. The exponential
		// series below converges too slowly here and loses
		// precision to cancellation as x → 0.
		x2 := x * x
		return 1 - x/4 +
			x2*(1.0/36-
				x2*(1.0/3600-
					x2*(1.0/211680-
						x2*(1.0/10886400-
							x2/526901760))))
	}

	sum := 0.0
	for k := 1; ; k++ {
		kf := float64(k)
		term := math.Exp(-kf*x) * (x/kf + 1/(kf*kf))
		sum += term
		if term < sum*1e-16 || term < math.SmallestNonzeroFloat64 {
			break
		}
	}
	return (pi2over6 - sum) / x
}
