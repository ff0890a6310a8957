// Copyright 2026 The Go-Copula Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bivariate

import (
	"fmt"
	"math"
)

// Clayton is the Clayton copula family
//
//	C(u,v) = (u^-θ + v^-θ - 1)^(-1/θ)
//
// with theta in (-1, 0) ∪ (0, ∞) and the independence copula uv as
// the theta → 0 limit. Positive theta concentrates dependence in the
// lower tail.
type Clayton struct{}

func (Clayton) String() string { return "clayton" }

// Theta computes theta = 2·tau/(1 - tau). The relation is undefined
// at tau = 1 and leaves the valid theta domain at tau <= -1, so tau
// must lie in (-1, 1); tau = 0 yields the independence boundary
// theta = 0.
func (Clayton) Theta(tau float64) (float64, error) {
	if tau <= -1 || tau >= 1 {
		return 0, fmt.Errorf("clayton: tau %v outside (-1, 1): %w", tau, ErrInvalidParameter)
	}
	return 2 * tau / (1 - tau), nil
}

func (Clayton) CDF(theta, u, v float64) float64 {
	switch {
	case u == 0 || v == 0:
		return 0
	case u == 1:
		return v
	case v == 1:
		return u
	case theta == 0:
		return u * v
	}
	s := math.Pow(u, -theta) + math.Pow(v, -theta) - 1
	if s <= 0 {
		// Negative theta puts zero mass below the curve
		// u^-θ + v^-θ = 1.
		return 0
	}
	return math.Pow(s, -1/theta)
}

func (Clayton) PDF(theta, u, v float64) float64 {
	switch {
	case u <= 0 || v <= 0:
		return 0
	case theta == 0:
		return 1
	}
	s := math.Pow(u, -theta) + math.Pow(v, -theta) - 1
	if s <= 0 {
		return 0
	}
	return (theta + 1) * math.Pow(u*v, -theta-1) * math.Pow(s, -(2*theta+1)/theta)
}

func (Clayton) PartialDerivative(theta, u, v float64) float64 {
	switch {
	case v == 0:
		return 0
	case v == 1:
		return 1
	case theta == 0:
		return v
	case u == 0:
		// For theta > 0 the conditional mass collapses to 0 as
		// u → 0 (lower tail dependence), so the conditional CDF
		// is 1 at any v > 0. For theta < 0, C vanishes on a
		// neighborhood of u = 0, handled by the s <= 0 case.
		if theta > 0 {
			return 1
		}
		return 0
	}
	s := math.Pow(u, -theta) + math.Pow(v, -theta) - 1
	if s <= 0 {
		return 0
	}
	return math.Pow(u, -theta-1) * math.Pow(s, -(theta+1)/theta)
}

// PercentPoint solves dC/du = y for v. For theta > 0 the inverse is
// closed form:
//
//	v = (u^-θ·(y^(-θ/(1+θ)) - 1) + 1)^(-1/θ)
//
// For theta < 0 the closed form is not an inverse over the whole
// square, so the conditional CDF is inverted numerically.
func (Clayton) PercentPoint(theta, u, y float64) (float64, error) {
	switch {
	case y <= 0:
		return 0, nil
	case y >= 1:
		return 1, nil
	case theta == 0:
		return y, nil
	case theta < 0:
		return percentPointBisect(Clayton{}, theta, u, y)
	}
	a := math.Pow(y, -theta/(1+theta))
	b := math.Pow(u, -theta)
	return math.Pow(b*(a-1)+1, -1/theta), nil
}
