// Copyright 2024 The Goeik Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package update

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/goeik/jet"
	"github.com/cpmech/goeik/slowness"
)

func constantField(tst *testing.T) slowness.Field {
	f, _ := slowness.Get("constant")
	if err := f.Init(nil); err != nil {
		tst.Fatal(err)
	}
	return f
}

func TestTriRecoversStraightLineDistance(tst *testing.T) {
	chk.PrintTitle("update.Tri: straight-line distance")

	// Source vertices x0,x1 on the x-axis both at T=0 (a zero-time seed
	// segment); the update target x is offset in y, so the minimizer should
	// sit at the foot of the perpendicular and f should equal that distance.
	x0 := [3]float64{0, 0, 0}
	x1 := [3]float64{2, 0, 0}
	x := [3]float64{1, 1, 0}
	j0 := jet.Jet3{F: 0, Fx: 0, Fy: 0, Fz: 0}
	j1 := jet.Jet3{F: 0, Fx: 0, Fy: 0, Fz: 0}

	u := NewTri(x, x0, x1, j0, j1, constantField(tst))
	if !u.IsCausal() {
		tst.Fatal("expected causal update")
	}
	u.Solve()
	chk.Float64(tst, "lambda", 1e-8, u.Lambda(), 0.5)
	chk.Float64(tst, "f", 1e-8, u.Value(), 1)
}

func TestTriSolveIsIdempotent(tst *testing.T) {
	chk.PrintTitle("update.Tri: idempotent solve")

	x0 := [3]float64{0, 0, 0}
	x1 := [3]float64{1, 0, 0}
	x := [3]float64{0.5, 2, 0}
	j0 := jet.Jet3{F: 0.1, Fx: 0, Fy: 1, Fz: 0}
	j1 := jet.Jet3{F: 0.2, Fx: 0, Fy: 1, Fz: 0}

	u := NewTri(x, x0, x1, j0, j1, constantField(tst))
	u.Solve()
	f1, lam1 := u.Value(), u.Lambda()
	u.Solve()
	chk.Float64(tst, "f", 1e-12, u.Value(), f1)
	chk.Float64(tst, "lambda", 1e-12, u.Lambda(), lam1)
}

func TestTriNonCausalIsRejectedByCaller(tst *testing.T) {
	chk.PrintTitle("update.Tri: non-causal gate")

	// x0 and x1 lie on opposite sides of x along the same line, so the two
	// source directions subtend close to 180 degrees: cos01 < 0.
	x0 := [3]float64{-1, 0, 0}
	x1 := [3]float64{1, 0, 0}
	x := [3]float64{0, 0, 0}
	j0 := jet.Jet3{F: 0, Fx: -1, Fy: 0, Fz: 0}
	j1 := jet.Jet3{F: 0, Fx: 1, Fy: 0, Fz: 0}

	u := NewTri(x, x0, x1, j0, j1, constantField(tst))
	if u.IsCausal() {
		tst.Fatal("expected non-causal update to be flagged")
	}
}

func TestTriMatchesSingleVertexDistance(tst *testing.T) {
	chk.PrintTitle("update.Tri: boundary lambda matches endpoint")

	// When the interpolant strongly disfavors x1 (f(x1) much larger), the
	// minimizer is pushed to the lambda=0 boundary and the value reduces to
	// the single-vertex distance f(x0) + ||x-x0|| = 0 + 5.
	x0 := [3]float64{0, 0, 0}
	x1 := [3]float64{1, 0, 0}
	x := [3]float64{0, 5, 0}
	j0 := jet.Jet3{F: 0, Fx: 0, Fy: 1, Fz: 0}
	j1 := jet.Jet3{F: 100, Fx: 0, Fy: 1, Fz: 0}

	u := NewTri(x, x0, x1, j0, j1, constantField(tst))
	u.Solve()
	if u.Lambda() < 0 || u.Lambda() > 1 {
		tst.Fatalf("lambda out of range: %v", u.Lambda())
	}
	if math.IsNaN(u.Value()) {
		tst.Fatal("value is NaN")
	}
	chk.Float64(tst, "lambda", 1e-12, u.Lambda(), 0)
	chk.Float64(tst, "f", 1e-12, u.Value(), 5)
}
