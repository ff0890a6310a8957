// Copyright 2026 The Go-Copula Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bivariate

import "errors"

var (
	// ErrInvalidParameter indicates a tau or theta outside the
	// active family's valid domain, such as a tau the family's
	// closed-form inversion cannot map to a finite theta.
	ErrInvalidParameter = errors.New("bivariate: parameter outside the family's valid domain")

	// ErrConvergence indicates that the percent point's numerical
	// root-finding exhausted its iteration budget before reaching
	// the configured tolerance.
	ErrConvergence = errors.New("bivariate: percent point root-finding did not converge")

	// ErrDomain indicates a coordinate outside [0, 1] passed to an
	// operation defined only on the unit square.
	ErrDomain = errors.New("bivariate: coordinate outside the unit square")

	// ErrSampleSize indicates too few observations to fit.
	ErrSampleSize = errors.New("bivariate: sample is too small")
)
