// Copyright 2026 The Go-Copula Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// bivariate models the dependence between two continuous random
// variables with a parametric Archimedean copula: a joint
// distribution on the unit square with uniform marginals, shaped by a
// single scalar parameter theta.
//
// A Copula is fitted to paired observations by estimating Kendall's
// rank correlation (tau) and inverting the family's tau-theta
// relation. The fitted instance evaluates the copula's cumulative
// distribution and density, the conditional CDF of one coordinate
// given the other, and its inverse (the percent point), and draws
// synthetic correlated pairs by conditional inverse-transform
// sampling.
//
// Concurrency: Fit mutates the instance and must not be called
// concurrently with anything else on the same instance. Evaluation
// methods (CDF, PDF, PartialDerivative, PercentPoint and their batch
// forms) read only Theta and Tau and are safe to call concurrently
// once fitting is done. Sample advances the instance's random source,
// so concurrent Sample calls on a shared instance require external
// synchronization; each instance owns its own seeded source precisely
// so that distinct instances never contend.
package bivariate // import "github.com/gocopula/go-copula/bivariate"
