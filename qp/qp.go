// Copyright 2024 The Goeik Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package qp solves the inequality-constrained quadratic program UTetra's
// Newton subproblem reduces to on each iteration:
//
//	minimize_{y in Δ²}  (1/2) y'*H*y + c'*y
//
// over the unit 2-simplex Δ² = {y : y0,y1 >= 0, y0+y1 <= 1}. A generic QP
// solver would be overkill and numerically worse for a 2-variable problem
// with a fixed, known constraint set, so the seven face configurations
// (interior, three edges, three corners) are handled by explicit case
// analysis: a feasible interior stationary point is returned at once;
// otherwise the three corners and the clamped 1D minimizers along the three
// edges are compared and the one with the lowest objective is returned.
// Lagrange multipliers are not computed.
package qp

// Face identifies which constraint configuration of Δ² was active at the
// solution returned by SolveSimplex2.
type Face int

const (
	Interior Face = iota // y0>0, y1>0, y0+y1<1
	Edge0               // y0 = 0
	Edge1               // y1 = 0
	EdgeSum             // y0+y1 = 1
	Corner00            // y = (0,0)
	Corner10            // y = (1,0)
	Corner01            // y = (0,1)
)

const tol = 1e-12

// SolveSimplex2 minimizes (1/2) y'Hy + c'y over Δ² and returns the
// minimizer together with which face of the simplex it lies on.
func SolveSimplex2(H [2][2]float64, c [2]float64) (y [2]float64, active Face) {
	// Interior stationary point: H y = -c.
	if yi, ok := solve2(H, [2]float64{-c[0], -c[1]}); ok {
		if yi[0] > -tol && yi[1] > -tol && yi[0]+yi[1] < 1+tol {
			return clampToSimplex(yi), Interior
		}
	}

	candidates := []struct {
		face Face
		y    [2]float64
	}{
		{Corner00, [2]float64{0, 0}},
		{Corner10, [2]float64{1, 0}},
		{Corner01, [2]float64{0, 1}},
	}

	best := candidates[0].y
	bestFace := candidates[0].face
	bestObj := objective(H, c, best)
	for _, cand := range candidates[1:] {
		if o := objective(H, c, cand.y); o < bestObj {
			bestObj, best, bestFace = o, cand.y, cand.face
		}
	}

	// Edge y0=0: minimize over y1 in [0,1].
	if y1, ok := stationary1D(H[1][1], c[1]); ok {
		y1 = clamp01(y1)
		cand := [2]float64{0, y1}
		if o := objective(H, c, cand); o < bestObj {
			bestObj, best, bestFace = o, cand, Edge0
		}
	}

	// Edge y1=0: minimize over y0 in [0,1].
	if y0, ok := stationary1D(H[0][0], c[0]); ok {
		y0 = clamp01(y0)
		cand := [2]float64{y0, 0}
		if o := objective(H, c, cand); o < bestObj {
			bestObj, best, bestFace = o, cand, Edge1
		}
	}

	// Edge y0+y1=1: parametrize y0=t, y1=1-t, minimize over t in [0,1].
	// F(t) = 1/2 [t,1-t] H [t,1-t]' + c.[t,1-t]
	// dF/dt = H00 t - H11(1-t) + H01(1-2t)... expand directly:
	a := H[0][0] - 2*H[0][1] + H[1][1]
	b := H[0][1] - H[1][1] + c[0] - c[1]
	if t, ok := stationary1D(a, b); ok {
		t = clamp01(t)
		cand := [2]float64{t, 1 - t}
		if o := objective(H, c, cand); o < bestObj {
			bestObj, best, bestFace = o, cand, EdgeSum
		}
	}

	_ = bestObj
	return best, bestFace
}

// objective evaluates (1/2) y'Hy + c'y.
func objective(H [2][2]float64, c [2]float64, y [2]float64) float64 {
	Hy0 := H[0][0]*y[0] + H[0][1]*y[1]
	Hy1 := H[1][0]*y[0] + H[1][1]*y[1]
	return 0.5*(y[0]*Hy0+y[1]*Hy1) + c[0]*y[0] + c[1]*y[1]
}

// solve2 solves the 2x2 linear system A x = b; ok is false if A is singular.
func solve2(A [2][2]float64, b [2]float64) (x [2]float64, ok bool) {
	det := A[0][0]*A[1][1] - A[0][1]*A[1][0]
	if det == 0 {
		return x, false
	}
	x[0] = (b[0]*A[1][1] - A[0][1]*b[1]) / det
	x[1] = (A[0][0]*b[1] - b[0]*A[1][0]) / det
	return x, true
}

// stationary1D solves a*t + b = 0 for t (the derivative of a 1D quadratic
// a/2*t^2 + b*t); ok is false if a==0 (no interior stationary point).
func stationary1D(a, b float64) (t float64, ok bool) {
	if a == 0 {
		return 0, false
	}
	return -b / a, true
}

func clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

func clampToSimplex(y [2]float64) [2]float64 {
	if y[0] < 0 {
		y[0] = 0
	}
	if y[1] < 0 {
		y[1] = 0
	}
	if s := y[0] + y[1]; s > 1 {
		y[0] /= s
		y[1] /= s
	}
	return y
}
