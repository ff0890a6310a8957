// Copyright 2026 The Go-Copula Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bivariate

import (
	"fmt"
	"math"
)

// Gumbel is the Gumbel (Gumbel-Hougaard) copula family
//
//	C(u,v) = exp(-((-ln u)^θ + (-ln v)^θ)^(1/θ))
//
// with theta in [1, ∞); theta = 1 is the independence copula. Gumbel
// models positive, upper-tail dependence only.
type Gumbel struct{}

func (Gumbel) String() string { return "gumbel" }

// Theta computes theta = 1/(1 - tau). Gumbel cannot represent
// negative dependence and tau = 1 has no finite theta, so tau must
// lie in [0, 1); tau = 0 yields the independence boundary theta = 1.
func (Gumbel) Theta(tau float64) (float64, error) {
	if tau < 0 || tau >= 1 {
		return 0, fmt.Errorf("gumbel: tau %v outside [0, 1): %w", tau, ErrInvalidParameter)
	}
	return 1 / (1 - tau), nil
}

func (Gumbel) CDF(theta, u, v float64) float64 {
	switch {
	case u == 0 || v == 0:
		return 0
	case u == 1:
		return v
	case v == 1:
		return u
	case theta == 1:
		return u * v
	}
	lu, lv := -math.Log(u), -math.Log(v)
	return math.Exp(-math.Pow(math.Pow(lu, theta)+math.Pow(lv, theta), 1/theta))
}

func (g Gumbel) PDF(theta, u, v float64) float64 {
	switch {
	case theta == 1:
		return 1
	case u <= 0 || v <= 0 || u >= 1 || v >= 1:
		// The closed form degenerates on the square's edges;
		// its limit there is 0 for theta > 1.
		return 0
	}
	lu, lv := -math.Log(u), -math.Log(v)
	sum := math.Pow(lu, theta) + math.Pow(lv, theta)
	return g.CDF(theta, u, v) / (u * v) *
		math.Pow(sum, -2+2/theta) *
		math.Pow(lu*lv, theta-1) *
		(1 + (theta-1)*math.Pow(sum, -1/theta))
}

func (g Gumbel) PartialDerivative(theta, u, v float64) float64 {
	switch {
	case v == 0:
		return 0
	case v == 1:
		return 1
	case theta == 1:
		return v
	case u == 0:
		// As u → 0 the conditional CDF tends to 1 for any
		// v > 0.
		return 1
	case u == 1:
		// Given U = 1, the conditional mass sits at v = 1.
		return 0
	}
	lu, lv := -math.Log(u), -math.Log(v)
	sum := math.Pow(lu, theta) + math.Pow(lv, theta)
	return g.CDF(theta, u, v) * math.Pow(sum, 1/theta-1) * math.Pow(lu, theta-1) / u
}

// PercentPoint has no closed form for Gumbel; the conditional CDF is
// strictly increasing in v, so it is inverted by bounded bisection.
func (Gumbel) PercentPoint(theta, u, y float64) (float64, error) {
	switch {
	case y <= 0:
		return 0, nil
	case y >= 1:
		return 1, nil
	case theta == 1:
		return y, nil
	}
	return percentPointBisect(Gumbel{}, theta, u, y)
}
