// Copyright 2026 The Go-Copula Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bivariate

import "math"

var nan = math.NaN()

func aeq(expect, got float64) bool {
	return math.Abs(expect-got) < 0.00001
}

// releq compares to relative precision, for fixture values far from
// unit scale.
func releq(expect, got float64) bool {
	return math.Abs(expect-got) <= 1e-6*math.Abs(expect)
}

// tauGrid returns n equally spaced tau values spanning (lo, hi),
// excluding both endpoints.
func tauGrid(lo, hi float64, n int) []float64 {
	out := make([]float64, 0, n)
	for i := 1; i < n+1; i++ {
		out = append(out, lo+(hi-lo)*float64(i)/float64(n+1))
	}
	return out
}
