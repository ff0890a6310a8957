// Copyright 2026 The Go-Copula Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bivariate

import (
	"fmt"

	"github.com/gocopula/go-copula/mathx"
)

// A Family is a parametric bivariate copula family. Each family fixes
// the closed-form algebra: the inversion from Kendall's tau to theta,
// the valid theta domain, the CDF and PDF, the conditional CDF
// (partial derivative), and the conditional inverse (percent point).
//
// Families are stateless values; theta is passed to every evaluation
// so the same Family can serve any number of fitted instances.
type Family interface {
	// String returns the family's name.
	String() string

	// Theta inverts the family's tau(theta) relation. It returns
	// ErrInvalidParameter for tau values the relation cannot map
	// to a valid theta; tau = 0 maps to the family's independence
	// boundary rather than erroring.
	Theta(tau float64) (float64, error)

	// CDF evaluates the copula C(u, v) for the given theta. At a
	// zero coordinate it returns the analytic limit 0, and when
	// one coordinate is 1 it returns the other (uniform
	// marginals), rather than evaluating the raw closed form.
	CDF(theta, u, v float64) float64

	// PDF evaluates the copula density, the mixed second partial
	// derivative of the CDF.
	PDF(theta, u, v float64) float64

	// PartialDerivative evaluates dC/du at (u, v): the
	// conditional CDF of V given U = u.
	PartialDerivative(theta, u, v float64) float64

	// PercentPoint solves PartialDerivative(theta, u, v) = y for
	// v: the conditional inverse CDF of V given U = u. Families
	// without a closed-form inverse solve numerically and report
	// ErrConvergence if the iteration budget runs out.
	PercentPoint(theta, u, y float64) (float64, error)
}

// Numerical percent point configuration, for families (or theta
// ranges) with no closed-form conditional inverse.
var (
	// PercentPointTol is the bracketing tolerance of the percent
	// point root-finder.
	PercentPointTol = 1e-12

	// PercentPointMaxIter caps the root-finder's iterations; a
	// solve that exceeds it fails with ErrConvergence.
	PercentPointMaxIter = 100
)

// percentPointBisect solves PartialDerivative(theta, u, v) = y for v
// by bisection over the open unit interval. Targets outside the
// conditional CDF's range over (eps, 1-eps) clamp to the nearest
// endpoint, so the result always lies in [0, 1].
func percentPointBisect(f Family, theta, u, y float64) (float64, error) {
	const eps = 1e-12
	g := func(v float64) float64 {
		return f.PartialDerivative(theta, u, v) - y
	}
	switch {
	case g(eps) >= 0:
		return eps, nil
	case g(1-eps) <= 0:
		return 1 - eps, nil
	}
	v, err := mathx.Bisect(g, eps, 1-eps, PercentPointTol, PercentPointMaxIter)
	if err != nil {
		return 0, fmt.Errorf("%v percent point at (u=%v, y=%v): %w", f, u, y, ErrConvergence)
	}
	return v, nil
}
