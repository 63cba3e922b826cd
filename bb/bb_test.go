// Copyright 2024 The Goeik Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bb

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func TestEdgeInterpCorners(tst *testing.T) {
	chk.PrintTitle("bb: edge corner interpolation")

	x0 := [3]float64{0, 0, 0}
	x1 := [3]float64{2, 0, 0}
	f := [2]float64{1.5, 3.5}
	grad := [2][3]float64{{0.5, 0, 0}, {-0.25, 0, 0}}
	c := InterpEdgeHermite(x0, x1, f, grad)

	chk.Float64(tst, "f(0)", 1e-15, Edge(c, [2]float64{1, 0}), f[0])
	chk.Float64(tst, "f(1)", 1e-15, Edge(c, [2]float64{0, 1}), f[1])

	// dT/dλ at λ=0 equals ∇f0·(x1-x0); at λ=1 equals ∇f1·(x1-x0).
	dx0 := grad[0][0] * (x1[0] - x0[0])
	dx1 := grad[1][0] * (x1[0] - x0[0])
	chk.Float64(tst, "dT/dλ(0)", 1e-13, DEdge(c, [2]float64{1, 0}, [2]float64{-1, 1}), dx0)
	chk.Float64(tst, "dT/dλ(1)", 1e-13, DEdge(c, [2]float64{0, 1}, [2]float64{-1, 1}), dx1)
}

func TestEdgeLinearReproduction(tst *testing.T) {
	chk.PrintTitle("bb: edge reproduces a linear field exactly")

	// T(x) = 2x is linear; the cubic Hermite edge interpolant must equal
	// it everywhere on the segment, not only at the corners.
	x0 := [3]float64{0, 0, 0}
	x1 := [3]float64{1, 0, 0}
	f := [2]float64{0, 2}
	grad := [2][3]float64{{2, 0, 0}, {2, 0, 0}}
	c := InterpEdgeHermite(x0, x1, f, grad)
	for _, lam := range []float64{0, 0.25, 0.5, 0.75, 1} {
		got := Edge(c, [2]float64{1 - lam, lam})
		chk.Float64(tst, "T(λ)", 1e-13, got, 2*lam)
	}
}

func TestTriCornerInterpolation(tst *testing.T) {
	chk.PrintTitle("bb: triangle corner interpolation")

	X := [3][3]float64{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}}
	f := [3]float64{1, 2, 3}
	Df := [3][3]float64{{0.1, 0.2, 0}, {-0.1, 0.3, 0}, {0.2, -0.2, 0}}
	c := InterpTri(f, Df, X)

	chk.Float64(tst, "f at v0", 1e-15, Tri(c, [3]float64{1, 0, 0}), f[0])
	chk.Float64(tst, "f at v1", 1e-15, Tri(c, [3]float64{0, 1, 0}), f[1])
	chk.Float64(tst, "f at v2", 1e-15, Tri(c, [3]float64{0, 0, 1}), f[2])
}

func TestTriLinearReproduction(tst *testing.T) {
	chk.PrintTitle("bb: triangle reproduces a linear field exactly")

	X := [3][3]float64{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}}
	grad := [3]float64{2, -1, 0}
	f := [3]float64{0, 0, 0}
	Df := [3][3]float64{}
	for i := 0; i < 3; i++ {
		f[i] = grad[0]*X[i][0] + grad[1]*X[i][1]
		Df[i] = [3]float64{grad[0], grad[1], grad[2]}
	}
	c := InterpTri(f, Df, X)
	for _, b := range [][3]float64{{1, 0, 0}, {0.5, 0.5, 0}, {1.0 / 3, 1.0 / 3, 1.0 / 3}, {0.2, 0.3, 0.5}} {
		var x [2]float64
		for i := 0; i < 3; i++ {
			x[0] += b[i] * X[i][0]
			x[1] += b[i] * X[i][1]
		}
		want := grad[0]*x[0] + grad[1]*x[1]
		chk.Float64(tst, "T(b)", 1e-12, Tri(c, b), want)
	}
}

func TestTetCornerInterpolation(tst *testing.T) {
	chk.PrintTitle("bb: tet corner interpolation")

	X := [4][3]float64{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
	f := [4]float64{1, 2, 3, 4}
	Df := [4][3]float64{{0.1, 0, 0}, {0, 0.2, 0}, {0, 0, 0.3}, {0.1, 0.1, 0.1}}
	c := InterpTet(f, Df, X)

	verts := [4][4]float64{{1, 0, 0, 0}, {0, 1, 0, 0}, {0, 0, 1, 0}, {0, 0, 0, 1}}
	for i, b := range verts {
		chk.Float64(tst, "f at vertex", 1e-13, Tet(c, b), f[i])
	}
}
