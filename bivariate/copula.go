// Copyright 2026 The Go-Copula Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bivariate

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// A Marginal maps observations to and from the unit interval through
// a fitted univariate distribution. The marginal package's types and
// gonum's distuv distributions satisfy it directly.
type Marginal interface {
	// CDF returns P(X <= x) in [0, 1].
	CDF(x float64) float64

	// Quantile returns the x with CDF(x) = p.
	Quantile(p float64) float64
}

// A UniformSource draws batches of independent uniform variates on
// [low, high). Implementations used by Sample must be seedable for
// reproducible output.
type UniformSource interface {
	Uniforms(low, high float64, n int) []float64
}

// distuvSource is the default UniformSource: a distuv.Uniform over a
// per-instance source, so a Copula's draws never share state with the
// process-wide generator or with other instances.
type distuvSource struct {
	dist distuv.Uniform
}

func newDistuvSource(src rand.Source) *distuvSource {
	return &distuvSource{distuv.Uniform{Min: 0, Max: 1, Src: src}}
}

func (s *distuvSource) Uniforms(low, high float64, n int) []float64 {
	s.dist.Min, s.dist.Max = low, high
	out := make([]float64, n)
	for i := range out {
		out[i] = s.dist.Rand()
	}
	return out
}

// A Copula is a bivariate copula of a fixed Family. Theta and Tau are
// set by Fit but remain plain assignable fields: constructing an
// instance and setting them directly, bypassing Fit, is supported for
// simulation without observed data, and collaborators may read them
// for serialization.
type Copula struct {
	// Family selects the closed-form algebra. It must be non-nil.
	Family Family

	// Theta is the family's shape parameter.
	Theta float64

	// Tau is the Kendall rank correlation Theta was derived from.
	Tau float64

	mu, mv Marginal
	src    UniformSource
}

// New returns a Copula of family f whose sampler is seeded from the
// process-wide generator. Use NewSeeded for reproducible sampling.
func New(f Family) *Copula {
	return &Copula{Family: f, src: newDistuvSource(rand.NewSource(rand.Uint64()))}
}

// NewSeeded returns a Copula of family f with a deterministic
// sampler: two instances built with the same seed produce identical
// Sample output for the same call sequence.
func NewSeeded(f Family, seed uint64) *Copula {
	return &Copula{Family: f, src: newDistuvSource(rand.NewSource(seed))}
}

// SetSource replaces the sampler's uniform source.
func (c *Copula) SetSource(src UniformSource) { c.src = src }

// SetMarginals attaches fitted marginal distributions for U and V.
// Once attached, CDF, PDF and their batch forms accept coordinates in
// the original measurement space and map them through each marginal's
// CDF before evaluating the copula. Pass nil, nil to detach.
func (c *Copula) SetMarginals(mu, mv Marginal) {
	c.mu, c.mv = mu, mv
}

// Fit estimates Kendall's tau from the paired observations xy (each
// row one (x, y) pair; only rank relationships matter) and derives
// theta through the family's inversion. A successful second call
// fully replaces the previously fitted state. Observations must be
// free of NaNs and there must be at least two of them.
func (c *Copula) Fit(xy [][2]float64) error {
	if len(xy) < 2 {
		return ErrSampleSize
	}
	xs := make([]float64, len(xy))
	ys := make([]float64, len(xy))
	for i, p := range xy {
		if math.IsNaN(p[0]) || math.IsNaN(p[1]) {
			return fmt.Errorf("observation %d is NaN: %w", i, ErrInvalidParameter)
		}
		xs[i], ys[i] = p[0], p[1]
	}
	tau := stat.Kendall(xs, ys, nil)
	theta, err := c.Family.Theta(tau)
	if err != nil {
		return err
	}
	c.Tau, c.Theta = tau, theta
	return nil
}

// FitMatrix fits from an n×2 design matrix, one observation per row.
func (c *Copula) FitMatrix(m mat.Matrix) error {
	r, cols := m.Dims()
	if cols != 2 {
		return fmt.Errorf("want an n×2 matrix, got %d×%d: %w", r, cols, ErrInvalidParameter)
	}
	xy := make([][2]float64, r)
	for i := range xy {
		xy[i] = [2]float64{m.At(i, 0), m.At(i, 1)}
	}
	return c.Fit(xy)
}

// toUnit maps a coordinate pair through the attached marginals, or
// passes it through untouched when none are attached.
func (c *Copula) toUnit(x, y float64) (u, v float64) {
	if c.mu == nil || c.mv == nil {
		return x, y
	}
	return c.mu.CDF(x), c.mv.CDF(y)
}

// CDF evaluates the copula's cumulative distribution at (x, y). With
// marginals attached the coordinates are in the original measurement
// space; otherwise they are used as-is.
func (c *Copula) CDF(x, y float64) float64 {
	u, v := c.toUnit(x, y)
	return c.Family.CDF(c.Theta, u, v)
}

// CDFEach returns CDF(pts[i][0], pts[i][1]) for each i.
func (c *Copula) CDFEach(pts [][2]float64) []float64 {
	out := make([]float64, len(pts))
	for i, p := range pts {
		out[i] = c.CDF(p[0], p[1])
	}
	return out
}

// PDF evaluates the copula's probability density at (x, y), mapped
// through the marginals when attached.
func (c *Copula) PDF(x, y float64) float64 {
	u, v := c.toUnit(x, y)
	return c.Family.PDF(c.Theta, u, v)
}

// PDFEach returns PDF(pts[i][0], pts[i][1]) for each i.
func (c *Copula) PDFEach(pts [][2]float64) []float64 {
	out := make([]float64, len(pts))
	for i, p := range pts {
		out[i] = c.PDF(p[0], p[1])
	}
	return out
}

// PartialDerivative evaluates dC/du at (u, v) on the unit square: the
// conditional CDF of V given U = u. Coordinates outside [0, 1] fail
// with ErrDomain.
func (c *Copula) PartialDerivative(u, v float64) (float64, error) {
	if err := checkUnit(u, v); err != nil {
		return 0, err
	}
	return c.Family.PartialDerivative(c.Theta, u, v), nil
}

// PartialDerivativeEach returns PartialDerivative for each pair. A
// coordinate outside the unit square fails the whole batch.
func (c *Copula) PartialDerivativeEach(pts [][2]float64) ([]float64, error) {
	out := make([]float64, len(pts))
	for i, p := range pts {
		d, err := c.PartialDerivative(p[0], p[1])
		if err != nil {
			return nil, err
		}
		out[i] = d
	}
	return out, nil
}

// PercentPoint solves PartialDerivative(u, v) = y for v: the
// conditional inverse CDF of V given U = u. Arguments outside [0, 1]
// fail with ErrDomain; a numerical inversion that cannot reach
// tolerance fails with ErrConvergence.
func (c *Copula) PercentPoint(u, y float64) (float64, error) {
	if err := checkUnit(u, y); err != nil {
		return 0, err
	}
	return c.Family.PercentPoint(c.Theta, u, y)
}

// PercentPointEach returns PercentPoint(us[i], ys[i]) for each i.
// Any failing solve fails the whole batch.
func (c *Copula) PercentPointEach(us, ys []float64) ([]float64, error) {
	if len(us) != len(ys) {
		return nil, fmt.Errorf("length mismatch %d vs %d: %w", len(us), len(ys), ErrInvalidParameter)
	}
	out := make([]float64, len(us))
	for i := range us {
		v, err := c.PercentPoint(us[i], ys[i])
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// Sample draws n correlated pairs on the unit square by conditional
// inverse-transform sampling: it draws n uniforms for the
// conditioning coordinate, then n uniforms for the conditional
// targets (two separate draws from the instance's source, in that
// fixed order; seeded reproducibility depends on it), and inverts
// each target through the percent point. Row i is
// (PercentPoint(u_i, t_i), u_i); every entry lies in [0, 1].
func (c *Copula) Sample(n int) ([][2]float64, error) {
	if n < 0 {
		return nil, fmt.Errorf("negative sample size %d: %w", n, ErrInvalidParameter)
	}
	if c.src == nil {
		c.src = newDistuvSource(rand.NewSource(rand.Uint64()))
	}
	us := c.src.Uniforms(0, 1, n)
	ts := c.src.Uniforms(0, 1, n)

	out := make([][2]float64, n)
	for i := range out {
		v, err := c.Family.PercentPoint(c.Theta, us[i], ts[i])
		if err != nil {
			return nil, err
		}
		out[i] = [2]float64{v, us[i]}
	}
	return out, nil
}

func checkUnit(coords ...float64) error {
	for _, x := range coords {
		if x < 0 || x > 1 || math.IsNaN(x) {
			return fmt.Errorf("%v: %w", x, ErrDomain)
		}
	}
	return nil
}
