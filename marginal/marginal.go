// Copyright 2026 The Go-Copula Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// marginal fits univariate marginal distributions for use alongside a
// copula: a copula separates the dependence structure from the
// marginals, so evaluating it in the original measurement space needs
// a fitted marginal per coordinate to map observations onto the unit
// interval and back.
package marginal // import "github.com/gocopula/go-copula/marginal"

import (
	"errors"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// A Marginal is a fitted univariate distribution. gonum's distuv
// distributions satisfy it directly, as do the fitted types below.
type Marginal interface {
	// CDF returns P(X <= x) in [0, 1].
	CDF(x float64) float64

	// Quantile returns the x with CDF(x) = p, for p in [0, 1].
	Quantile(p float64) float64
}

// ErrDegenerate indicates a sample a marginal cannot be fitted to:
// too few values, or all values equal.
var ErrDegenerate = errors.New("marginal: degenerate sample")

// FitNormal fits a normal marginal to xs by moment matching.
func FitNormal(xs []float64) (distuv.Normal, error) {
	if len(xs) < 2 {
		return distuv.Normal{}, ErrDegenerate
	}
	mu, sigma := stat.MeanStdDev(xs, nil)
	if sigma == 0 {
		return distuv.Normal{}, ErrDegenerate
	}
	return distuv.Normal{Mu: mu, Sigma: sigma}, nil
}

// FitUniform fits a uniform marginal over the sample's range.
func FitUniform(xs []float64) (distuv.Uniform, error) {
	if len(xs) == 0 {
		return distuv.Uniform{}, ErrDegenerate
	}
	lo, hi := floats.Min(xs), floats.Max(xs)
	if lo == hi {
		return distuv.Uniform{}, ErrDegenerate
	}
	return distuv.Uniform{Min: lo, Max: hi}, nil
}

// Empirical is a distribution-free marginal backed by the sample's
// order statistics. Its CDF is a step function, so Quantile(CDF(x))
// recovers x only up to the sample's resolution.
type Empirical struct {
	xs []float64 // sorted
}

// NewEmpirical builds an empirical marginal from xs, which it copies
// and sorts.
func NewEmpirical(xs []float64) (*Empirical, error) {
	if len(xs) == 0 {
		return nil, ErrDegenerate
	}
	s := append([]float64(nil), xs...)
	sort.Float64s(s)
	return &Empirical{s}, nil
}

func (e *Empirical) CDF(x float64) float64 {
	return stat.CDF(x, stat.Empirical, e.xs, nil)
}

func (e *Empirical) Quantile(p float64) float64 {
	return stat.Quantile(p, stat.Empirical, e.xs, nil)
}
