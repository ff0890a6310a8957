// Copyright 2026 The Go-Copula Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bivariate

import (
	"fmt"
	"math"

	"github.com/gocopula/go-copula/mathx"
)

// Frank is the Frank copula family
//
//	C(u,v) = -(1/θ)·ln(1 + g(u)·g(v)/g(1)),  g(x) = e^(-θx) - 1
//
// with theta in (-∞, 0) ∪ (0, ∞) and the independence copula uv as
// the theta → 0 limit. Frank is the only one of the implemented
// families that is symmetric in both tails.
type Frank struct{}

func (Frank) String() string { return "frank" }

// Theta inverts Kendall's tau for the Frank family,
//
//	tau(θ) = 1 - 4·(1 - D₁(θ))/θ
//
// where D₁ is the first Debye function. The relation has no closed
// inverse; it is odd and strictly increasing in theta, so theta is
// recovered by bisection on |tau| and given tau's sign. The bracket
// comes from the asymptotes: tau(θ) < θ/9 everywhere puts theta above
// |tau|, and tau(θ) > 1 - 4/θ puts it below 8/(1-|tau|). tau must lie
// in (-1, 1); tau = 0 yields the independence boundary theta = 0.
func (Frank) Theta(tau float64) (float64, error) {
	switch {
	case tau <= -1 || tau >= 1:
		return 0, fmt.Errorf("frank: tau %v outside (-1, 1): %w", tau, ErrInvalidParameter)
	case tau == 0:
		return 0, nil
	}
	at := math.Abs(tau)
	if at < 1e-8 {
		// tau = θ/9 - θ³/900 + ...; the cubic term is below double
		// precision here.
		return 9 * tau, nil
	}
	theta, err := mathx.Bisect(func(t float64) float64 {
		return frankTau(t) - at
	}, at, 8/(1-at), 1e-12, 200)
	if err != nil {
		return 0, fmt.Errorf("frank: no theta for tau %v: %w", tau, ErrInvalidParameter)
	}
	return math.Copysign(theta, tau), nil
}

// frankTau is Kendall's tau as a function of theta > 0.
func frankTau(theta float64) float64 {
	return 1 - 4*(1-mathx.Debye1(theta))/theta
}

// frankG is the generator auxiliary e^(-θx) - 1, computed via Expm1
// so small theta does not cancel.
func frankG(theta, x float64) float64 {
	return math.Expm1(-theta * x)
}

func (Frank) CDF(theta, u, v float64) float64 {
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
	return -math.Log1p(frankG(theta, u)*frankG(theta, v)/frankG(theta, 1)) / theta
}

func (Frank) PDF(theta, u, v float64) float64 {
	if theta == 0 {
		return 1
	}
	g1 := frankG(theta, 1)
	den := frankG(theta, u)*frankG(theta, v) + g1
	return -theta * g1 * (1 + frankG(theta, u+v)) / (den * den)
}

func (Frank) PartialDerivative(theta, u, v float64) float64 {
	switch {
	case v == 0:
		return 0
	case v == 1:
		return 1
	case theta == 0:
		return v
	}
	gu, gv := frankG(theta, u), frankG(theta, v)
	return (gu*gv + gv) / (gu*gv + frankG(theta, 1))
}

// PercentPoint inverts the conditional CDF in closed form: solving
// dC/du = y for g(v) gives g(v) = y·g(1)/(1 + g(u)·(1 - y)), and
// v = -ln(1 + g(v))/θ.
func (Frank) PercentPoint(theta, u, y float64) (float64, error) {
	switch {
	case y <= 0:
		return 0, nil
	case y >= 1:
		return 1, nil
	case theta == 0:
		return y, nil
	}
	gv := y * frankG(theta, 1) / (1 + frankG(theta, u)*(1-y))
	return -math.Log1p(gv) / theta, nil
}
