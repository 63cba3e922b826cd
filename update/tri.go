// Copyright 2024 The Goeik Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package update implements the two local-update kernels of the
// fast-marching propagation loop: Tri (two-point edge update) and Tetra
// (three-point face update). Both minimize a Bernstein-Bezier travel-time
// interpolant plus a straight-line slowness-weighted distance term, the way
// msolid's Update methods drive a local Newton solve to a converged state.
package update

import (
	"math"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/goeik/bb"
	"github.com/cpmech/goeik/jet"
	"github.com/cpmech/goeik/root"
	"github.com/cpmech/goeik/slowness"
)

// Tri solves the two-point edge update: minimize
//
//	F(lam) = Edge(Tc; 1-lam, lam) + s(x)*||x - xb(lam)||
//
// over lam in [0,1], where xb(lam) = (1-lam)*x0 + lam*x1.
type Tri struct {
	x, x0, x1 [3]float64
	x1mx0     [3]float64
	tc        [4]float64
	s         float64

	cos01 float64

	lam       float64
	f, df     float64
	xMinusXb  [3]float64
}

// NewTri builds a Tri update for target point x with source vertices x0,x1
// carrying jets j0,j1, routed through the given slowness field.
func NewTri(x, x0, x1 [3]float64, j0, j1 jet.Jet3, field slowness.Field) *Tri {
	if !j0.Finite() || !j1.Finite() {
		chk.Panic("update.NewTri: source jets must be finite")
	}
	t := &Tri{x: x, x0: x0, x1: x1, s: field.S(x[:])}
	for i := 0; i < 3; i++ {
		t.x1mx0[i] = x1[i] - x0[i]
	}
	dx0 := sub3(x0, x)
	dx1 := sub3(x1, x)
	t.cos01 = dot3(dx0, dx1) / (norm3(dx0) * norm3(dx1))

	f := [2]float64{j0.F, j1.F}
	grad := [2][3]float64{{j0.Fx, j0.Fy, j0.Fz}, {j1.Fx, j1.Fy, j1.Fz}}
	t.tc = bb.InterpEdgeHermite(x0, x1, f, grad)
	return t
}

// IsCausal reports whether the source vertices subtend an angle <= 90 deg
// at x, the condition under which the stationary point of F is physically
// meaningful.
func (t *Tri) IsCausal() bool {
	return t.cos01 >= 0
}

// setLambda evaluates F and dF/dlam at lam, caching the state needed by
// Solve's root-finder callback and by Jet's gradient reconstruction.
func (t *Tri) setLambda(lam float64) {
	t.lam = lam
	var xb [3]float64
	for i := 0; i < 3; i++ {
		xb[i] = t.x0[i] + lam*t.x1mx0[i]
	}
	t.xMinusXb = sub3(t.x, xb)
	L := norm3(t.xMinusXb)

	// dL/dlam = -(x1-x0).(x-xb)/L: as lam grows xb moves toward x1, and L
	// shrinks exactly when x1-x0 points the same way as x-xb.
	dLdLam := -dot3(t.x1mx0, t.xMinusXb) / L

	b := [2]float64{1 - lam, lam}
	T := bb.Edge(t.tc, b)
	a := [2]float64{-1, 1}
	dTdLam := bb.DEdge(t.tc, b, a)

	t.f = T + t.s*L
	t.df = dTdLam + t.s*dLdLam
}

// Solve finds the minimizing lam in [0,1] by bracketed hybrid root-finding
// on dF/dlam, and is idempotent: calling it again from the converged state
// reproduces the same lam and value.
func (t *Tri) Solve() {
	lam := root.Hybrid(func(l float64) (float64, float64, float64) {
		t.setLambda(l)
		return t.df, 0, t.f
	}, 0, 1)
	t.setLambda(lam)
}

// Value returns F(lam*) after Solve.
func (t *Tri) Value() float64 { return t.f }

// Lambda returns the converged parameter in [0,1].
func (t *Tri) Lambda() float64 { return t.lam }

// Jet returns the updated travel-time jet: f and the arrival direction
// (x-xb*)/L, which approximates the gradient of T at x.
func (t *Tri) Jet() jet.Jet3 {
	L := norm3(t.xMinusXb)
	return jet.Jet3{
		F:  t.f,
		Fx: t.xMinusXb[0] / L,
		Fy: t.xMinusXb[1] / L,
		Fz: t.xMinusXb[2] / L,
	}
}

func sub3(a, b [3]float64) [3]float64 {
	return [3]float64{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}

func dot3(a, b [3]float64) float64 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

func norm3(a [3]float64) float64 {
	return math.Sqrt(dot3(a, a))
}
