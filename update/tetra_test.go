// Copyright 2024 The Goeik Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package update

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/goeik/jet"
)

func flatTetraFixture(tst *testing.T) *Tetra {
	x0 := [3]float64{0, 0, 0}
	x1 := [3]float64{1, 0, 0}
	x2 := [3]float64{0, 1, 0}
	x := [3]float64{1.0 / 3, 1.0 / 3, 1}
	j0 := jet.Jet3{F: 0, Fx: 0, Fy: 0, Fz: 0}
	j1 := jet.Jet3{F: 0, Fx: 0, Fy: 0, Fz: 0}
	j2 := jet.Jet3{F: 0, Fx: 0, Fy: 0, Fz: 0}
	return NewTetra(x, x0, x1, x2, j0, j1, j2, constantField(tst))
}

func TestTetraSolveIsIdempotent(tst *testing.T) {
	chk.PrintTitle("update.Tetra: idempotent solve")

	u := flatTetraFixture(tst)
	u.Solve()
	f1, lam1 := u.Value(), u.Lambda()
	u.Solve()
	chk.Float64(tst, "f", 1e-9, u.Value(), f1)
	chk.Float64(tst, "lam0", 1e-9, u.Lambda()[0], lam1[0])
	chk.Float64(tst, "lam1", 1e-9, u.Lambda()[1], lam1[1])
}

func TestTetraConvergesToInteriorStationaryPoint(tst *testing.T) {
	chk.PrintTitle("update.Tetra: interior minimum")

	// x sits directly above the triangle's centroid, so by symmetry the
	// minimizing barycentric point should also be the centroid, interior
	// to the simplex (lam0=lam1=1/3).
	u := flatTetraFixture(tst)
	u.Solve()
	lam := u.Lambda()
	chk.Float64(tst, "lam0", 1e-6, lam[0], 1.0/3)
	chk.Float64(tst, "lam1", 1e-6, lam[1], 1.0/3)
}

func TestTetraGradientVanishesAtInteriorOptimum(tst *testing.T) {
	chk.PrintTitle("update.Tetra: KKT stationarity at interior optimum")

	u := flatTetraFixture(tst)
	u.Solve()
	g := u.Gradient()
	chk.Float64(tst, "g0", 1e-5, g[0], 0)
	chk.Float64(tst, "g1", 1e-5, g[1], 0)

	alpha := u.LagrangeMults()
	for i, a := range alpha {
		if a != 0 {
			tst.Fatalf("expected zero multipliers at interior optimum, got alpha[%d]=%v", i, a)
		}
	}
}

func TestTetraCausalGate(tst *testing.T) {
	chk.PrintTitle("update.Tetra: causality gate")

	u := flatTetraFixture(tst)
	if !u.IsCausal() {
		tst.Fatal("expected causal update for x above the triangle's interior")
	}
}

func TestTetraDegenerateWhenCoplanar(tst *testing.T) {
	chk.PrintTitle("update.Tetra: degeneracy check")

	x0 := [3]float64{0, 0, 0}
	x1 := [3]float64{1, 0, 0}
	x2 := [3]float64{0, 1, 0}
	x := [3]float64{0.3, 0.3, 0} // coplanar with x0,x1,x2
	j0 := jet.Jet3{F: 0, Fx: 0, Fy: 0, Fz: 0}
	j1 := jet.Jet3{F: 0, Fx: 0, Fy: 0, Fz: 0}
	j2 := jet.Jet3{F: 0, Fx: 0, Fy: 0, Fz: 0}
	u := NewTetra(x, x0, x1, x2, j0, j1, j2, constantField(tst))
	if !u.IsDegenerate() {
		tst.Fatal("expected degenerate update for coplanar x")
	}
}

func TestTetraJetDirectionIsUnitLength(tst *testing.T) {
	chk.PrintTitle("update.Tetra: jet gradient is a unit arrival direction")

	u := flatTetraFixture(tst)
	u.Solve()
	j := u.Jet()
	norm := math.Sqrt(j.Fx*j.Fx + j.Fy*j.Fy + j.Fz*j.Fz)
	chk.Float64(tst, "|grad T|", 1e-8, norm, 1)
}
