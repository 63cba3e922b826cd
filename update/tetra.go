// Copyright 2024 The Goeik Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package update

import (
	"math"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/goeik/bb"
	"github.com/cpmech/goeik/jet"
	"github.com/cpmech/goeik/qp"
	"github.com/cpmech/goeik/slowness"
)

// MaxIter caps the projected-Newton iteration in Solve.
const MaxIter = 20

var simplexA1 = [3]float64{-1, 1, 0}
var simplexA2 = [3]float64{-1, 0, 1}

// Tetra solves the three-point face update: minimize
//
//	F(lam) = Tri(Tc; b(lam)) + s(x)*||x - X*b(lam)||
//
// over the unit 2-simplex lam0,lam1 >= 0, lam0+lam1 <= 1, where
// b = (1-lam0-lam1, lam0, lam1).
type Tetra struct {
	x        [3]float64
	X        [3][3]float64 // columns x0,x1,x2, stored row-major as X[i] = vertex i
	tc       [10]float64
	s        float64

	lam [2]float64
	f   float64
	g   [2]float64
	h   [2][2]float64
	p   [2]float64

	angles   [3]float64
	xMinusXb [3]float64

	niter int
}

// NewTetra builds a Tetra update for target point x with source vertices
// x0,x1,x2 carrying jets j0,j1,j2, routed through the given slowness field.
// The initial iterate is the simplex centroid.
func NewTetra(x, x0, x1, x2 [3]float64, j0, j1, j2 jet.Jet3, field slowness.Field) *Tetra {
	if !j0.Finite() || !j1.Finite() || !j2.Finite() {
		chk.Panic("update.NewTetra: source jets must be finite")
	}
	t := &Tetra{x: x, X: [3][3]float64{x0, x1, x2}, s: field.S(x[:])}

	f := [3]float64{j0.F, j1.F, j2.F}
	grad := [3][3]float64{
		{j0.Fx, j0.Fy, j0.Fz},
		{j1.Fx, j1.Fy, j1.Fz},
		{j2.Fx, j2.Fy, j2.Fz},
	}
	t.tc = bb.InterpTri(f, grad, t.X)

	d0 := normalize3(sub3(t.X[0], x))
	d1 := normalize3(sub3(t.X[1], x))
	d2 := normalize3(sub3(t.X[2], x))
	t.angles[0] = dot3(d0, d1)
	t.angles[1] = dot3(d1, d2)
	t.angles[2] = dot3(d2, d0)

	t.lam = [2]float64{1.0 / 3, 1.0 / 3}
	t.setLambda(t.lam)
	return t
}

// IsCausal reports whether all three vertex-to-x angles are non-obtuse,
// the condition under which the update's stationary point is physically
// meaningful.
func (t *Tetra) IsCausal() bool {
	return t.angles[0] >= 0 && t.angles[1] >= 0 && t.angles[2] >= 0
}

// IsDegenerate reports whether x lies in the plane spanned by the three
// source vertices, making the update's distance term singular.
func (t *Tetra) IsDegenerate() bool {
	var dX [3][3]float64
	for i := 0; i < 3; i++ {
		dX[i] = sub3(t.X[i], t.x)
	}
	return math.Abs(det3(dX)) < 1e-15
}

func barycentric(lam [2]float64) [3]float64 {
	return [3]float64{1 - lam[0] - lam[1], lam[0], lam[1]}
}

// setLambda evaluates f, g, H, and the next Newton step p at lam.
func (t *Tetra) setLambda(lam [2]float64) {
	t.lam = lam
	b := barycentric(lam)

	var xb [3]float64
	for i := 0; i < 3; i++ {
		xb[0] += b[i] * t.X[i][0]
		xb[1] += b[i] * t.X[i][1]
		xb[2] += b[i] * t.X[i][2]
	}
	t.xMinusXb = sub3(t.x, xb)
	L := norm3(t.xMinusXb)

	// Xt * (x-xb) projected onto the barycentric tangent directions a1,a2,
	// following the corner-matrix convention X[i] = vertex i (row i).
	xtv := [3]float64{
		dot3(t.X[0], t.xMinusXb),
		dot3(t.X[1], t.xMinusXb),
		dot3(t.X[2], t.xMinusXb),
	}
	tmp1 := [3]float64{-xtv[0] / L, -xtv[1] / L, -xtv[2] / L}

	dL := [2]float64{dot3(simplexA1, tmp1), dot3(simplexA2, tmp1)}

	// D2L = (X^T X - tmp1 tmp1^T)/L, projected onto a1,a2.
	xtx := xtxOf(t.X)
	var tmp2 [3][3]float64
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			tmp2[i][j] = (xtx[i][j] - tmp1[i]*tmp1[j]) / L
		}
	}
	col1 := mat3vec(tmp2, simplexA1)
	col2 := mat3vec(tmp2, simplexA2)
	var d2L [2][2]float64
	d2L[0][0] = dot3(col1, simplexA1)
	d2L[0][1] = dot3(col1, simplexA2)
	d2L[1][0] = d2L[0][1]
	d2L[1][1] = dot3(col2, simplexA2)

	dT := [2]float64{bb.DTri(t.tc, b, simplexA1), bb.DTri(t.tc, b, simplexA2)}
	var d2T [2][2]float64
	d2T[0][0] = bb.D2Tri(t.tc, b, simplexA1, simplexA1)
	d2T[0][1] = bb.D2Tri(t.tc, b, simplexA1, simplexA2)
	d2T[1][0] = d2T[0][1]
	d2T[1][1] = bb.D2Tri(t.tc, b, simplexA2, simplexA2)

	t.f = t.s*L + bb.Tri(t.tc, b)
	t.g[0] = t.s*dL[0] + dT[0]
	t.g[1] = t.s*dL[1] + dT[1]
	t.h[0][0] = t.s*d2L[0][0] + d2T[0][0]
	t.h[0][1] = t.s*d2L[0][1] + d2T[0][1]
	t.h[1][0] = t.h[0][1]
	t.h[1][1] = t.s*d2L[1][1] + d2T[1][1]

	// Regularize: add twice the magnitude of a negative smaller eigenvalue
	// to the diagonal so the Newton subproblem stays descent-consistent.
	tr := t.h[0][0] + t.h[1][1]
	det := t.h[0][0]*t.h[1][1] - t.h[0][1]*t.h[1][0]
	minEigDoubled := tr - math.Sqrt(math.Max(tr*tr-4*det, 0))
	if minEigDoubled < 0 {
		t.h[0][0] -= minEigDoubled
		t.h[1][1] -= minEigDoubled
	}

	hLam := mat2vec(t.h, lam)
	c := [2]float64{t.g[0] - hLam[0], t.g[1] - hLam[1]}
	y, _ := qp.SolveSimplex2(t.h, c)
	t.p = [2]float64{y[0] - lam[0], y[1] - lam[1]}
}

// Solve runs projected Newton with Armijo backtracking from the current
// iterate (the simplex centroid, set by NewTetra) for exactly MaxIter
// iterations; there is no early exit on convergence.
func (t *Tetra) Solve() {
	const c1 = 1e-2
	for t.niter = 0; t.niter < MaxIter; t.niter++ {
		lam := t.lam
		p := t.p
		f := t.f

		beta := 1.0
		c1GdotP := c1 * (t.g[0]*p[0] + t.g[1]*p[1])
		next := [2]float64{lam[0] + beta*p[0], lam[1] + beta*p[1]}
		t.setLambda(next)
		for t.f > f+beta*c1GdotP {
			beta /= 2
			next = [2]float64{lam[0] + beta*p[0], lam[1] + beta*p[1]}
			t.setLambda(next)
			if beta < 1e-16 {
				break
			}
		}
	}
}

// NumIter reports how many Newton iterations Solve performed.
func (t *Tetra) NumIter() int { return t.niter }

// Lambda returns the converged iterate (lam0,lam1) in the unit 2-simplex.
func (t *Tetra) Lambda() [2]float64 { return t.lam }

// Value returns F(lam*) after Solve.
func (t *Tetra) Value() float64 { return t.f }

// Gradient returns the objective gradient at the converged iterate.
func (t *Tetra) Gradient() [2]float64 { return t.g }

// Jet returns the updated travel-time jet.
func (t *Tetra) Jet() jet.Jet3 {
	L := norm3(t.xMinusXb)
	return jet.Jet3{
		F:  t.f,
		Fx: t.xMinusXb[0] / L,
		Fy: t.xMinusXb[1] / L,
		Fz: t.xMinusXb[2] / L,
	}
}

// LagrangeMults reports alpha in R^3 with alpha_k >= 0 and complementary
// slackness b_k*alpha_k = 0, one of six cases depending on which
// barycentric coordinate of the converged iterate is 0 or 1.
func (t *Tetra) LagrangeMults() [3]float64 {
	const atol = 5e-15
	b := barycentric(t.lam)
	var alpha [3]float64
	g := t.g
	switch {
	case math.Abs(b[0]-1) < atol:
		alpha = [3]float64{0, -g[0], -g[1]}
	case math.Abs(b[1]-1) < atol:
		alpha = [3]float64{g[0], 0, g[0] - g[1]}
	case math.Abs(b[2]-1) < atol:
		alpha = [3]float64{g[0], g[0] - g[1], 0}
	case math.Abs(b[0]) < atol:
		alpha = [3]float64{(g[0] + g[1]) / 2, 0, 0}
	case math.Abs(b[1]) < atol:
		alpha = [3]float64{0, -g[0], 0}
	case math.Abs(b[2]) < atol:
		alpha = [3]float64{0, 0, -g[1]}
	default:
		// interior: all constraints inactive.
	}
	return alpha
}

func normalize3(a [3]float64) [3]float64 {
	n := norm3(a)
	return [3]float64{a[0] / n, a[1] / n, a[2] / n}
}

func det3(m [3][3]float64) float64 {
	return m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
}

func xtxOf(X [3][3]float64) [3][3]float64 {
	var out [3][3]float64
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out[i][j] = dot3(X[i], X[j])
		}
	}
	return out
}

func mat3vec(m [3][3]float64, v [3]float64) [3]float64 {
	return [3]float64{
		m[0][0]*v[0] + m[0][1]*v[1] + m[0][2]*v[2],
		m[1][0]*v[0] + m[1][1]*v[1] + m[1][2]*v[2],
		m[2][0]*v[0] + m[2][1]*v[1] + m[2][2]*v[2],
	}
}

func mat2vec(m [2][2]float64, v [2]float64) [2]float64 {
	return [2]float64{
		m[0][0]*v[0] + m[0][1]*v[1],
		m[1][0]*v[0] + m[1][1]*v[1],
	}
}
