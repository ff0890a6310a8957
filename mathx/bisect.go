// Copyright 2026 The Go-Copula Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// mathx contains the numeric helpers shared by the distribution
// packages: bounded scalar root-finding and the Debye function.
// gonum's optimize package is built around multivariate minimization
// and exposes no scalar bracketing root-finder, so Bisect lives here.
package mathx // import "github.com/gocopula/go-copula/mathx"

import (
	"errors"
	"math"
)

// ErrBracket indicates that f(lo) and f(hi) do not bracket a sign
// change, so bisection cannot start.
var ErrBracket = errors.New("mathx: interval does not bracket a root")

// ErrMaxIter indicates that the iteration budget was exhausted before
// the interval shrank below the requested tolerance.
var ErrMaxIter = errors.New("mathx: root-finding iteration budget exhausted")

// Bisect finds x in [lo, hi] with f(x) = 0 by bisection. f must be
// continuous and f(lo), f(hi) must have opposite signs. It stops once
// the bracketing interval is narrower than tol, or after maxIter
// halvings, whichever comes first; exceeding maxIter without reaching
// tol is reported as ErrMaxIter.
func Bisect(f func(float64) float64, lo, hi, tol float64, maxIter int) (float64, error) {
	flo, fhi := f(lo), f(hi)
	if flo == 0 {
		return lo, nil
	}
	if fhi == 0 {
		return hi, nil
	}
	if math.Signbit(flo) == math.Signbit(fhi) {
		return 0, ErrBracket
	}

	for i := 0; i < maxIter; i++ {
		mid := lo + (hi-lo)/2
		if hi-lo < tol || mid == lo || mid == hi {
			return mid, nil
		}
		fmid := f(mid)
		if fmid == 0 {
			return mid, nil
		}
		if math.Signbit(fmid) == math.Signbit(flo) {
			lo, flo = mid, fmid
		} else {
			hi = mid
		}
	}
	return 0, ErrMaxIter
}
