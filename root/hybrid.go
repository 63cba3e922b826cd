// Copyright 2024 The Goeik Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package root implements the bracketed hybrid root-finder UTri uses to
// minimize the two-point edge-update objective. F is only known to be C¹ —
// its derivative may be non-monotone on [0,1] — so bisection (guaranteed
// progress) is combined with a Newton step x - f(x)/f'(x) taken from the
// caller-supplied derivative (no secant step is formed from previous
// iterates), falling back to bisection whenever that step would leave the
// current bracket or the supplied derivative is zero. The iteration loop follows the
// residual-driven style of the porous-media saturation solve (a fixed
// iteration cap, a break on |residual| < tolerance, and a verbose trace
// hook for debugging).
package root

import "math"

// MaxIt is the default iteration cap for Hybrid.
const MaxIt = 100

// Tol is the default convergence tolerance on the bracket width and on the
// residual |f(x)|.
const Tol = 1e-13

// Hybrid finds a root of f on the bracket [a,b], where f returns the
// function value, its derivative, and the objective being minimized (for
// UTri, F' = fx and F = val; update.Tri passes dfx = 0, so each of its steps
// is a bisection) at x. It requires f(a) and f(b) to
// have opposite sign (or either endpoint to already be a root); if they do
// not, Hybrid reports the bracket endpoint with the lower objective value
// instead of erroring, matching the original "fall back to the better
// endpoint when there's no sign change" contract (spec: UTri root-finder).
func Hybrid(f func(x float64) (fx, dfx, val float64), a, b float64) float64 {
	if a > b {
		a, b = b, a
	}
	fa, _, vala := f(a)
	fb, _, valb := f(b)
	if fa == 0 {
		return a
	}
	if fb == 0 {
		return b
	}
	if sameSign(fa, fb) {
		if vala <= valb {
			return a
		}
		return b
	}

	// Maintain a bracket [lo,hi] with f(lo) and f(hi) of opposite sign, and
	// a current best estimate x updated by secant steps when they stay
	// inside the bracket, bisection otherwise.
	lo, hi := a, b
	flo, fhi := fa, fb
	x := 0.5 * (lo + hi)
	for it := 0; it < MaxIt; it++ {
		fx, dfx, _ := f(x)
		if math.Abs(fx) < Tol || 0.5*(hi-lo) < Tol {
			return x
		}

		if sameSign(fx, flo) {
			lo, flo = x, fx
		} else {
			hi, fhi = x, fx
		}

		// Try a secant/Newton-style step using the derivative at x; accept
		// it only if it lands strictly inside the current bracket.
		next := x
		if dfx != 0 {
			next = x - fx/dfx
		}
		if next <= lo || next >= hi {
			next = 0.5 * (lo + hi)
		}
		x = next
	}
	_ = fhi
	return x
}

func sameSign(a, b float64) bool {
	return (a > 0 && b > 0) || (a < 0 && b < 0)
}
