// Copyright 2024 The Goeik Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qp

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func TestInteriorMinimum(tst *testing.T) {
	chk.PrintTitle("qp: interior minimum")

	// F(y) = y0^2 + y1^2 - 0.2 y0 - 0.2 y1, minimized at (0.1,0.1), interior.
	H := [2][2]float64{{2, 0}, {0, 2}}
	c := [2]float64{-0.2, -0.2}
	y, face := SolveSimplex2(H, c)
	chk.Float64(tst, "y0", 1e-12, y[0], 0.1)
	chk.Float64(tst, "y1", 1e-12, y[1], 0.1)
	if face != Interior {
		tst.Fatalf("expected Interior, got %v", face)
	}
}

func TestCornerMinimum(tst *testing.T) {
	chk.PrintTitle("qp: corner minimum")

	// Strongly favors y=(0,0): positive-definite H, c pulls away from the
	// simplex so the unconstrained minimum lies outside it near the origin.
	H := [2][2]float64{{2, 0}, {0, 2}}
	c := [2]float64{5, 5}
	y, face := SolveSimplex2(H, c)
	chk.Float64(tst, "y0", 1e-12, y[0], 0)
	chk.Float64(tst, "y1", 1e-12, y[1], 0)
	if face != Corner00 {
		tst.Fatalf("expected Corner00, got %v", face)
	}
}

func TestEdgeSumMinimum(tst *testing.T) {
	chk.PrintTitle("qp: sum-edge minimum")

	// F(y) = (y0-y1)^2, minimized anywhere on y0=y1; combined with a strong
	// pull toward y0+y1=1 via c, the constrained minimum sits at (0.5,0.5)
	// on the y0+y1=1 edge.
	H := [2][2]float64{{2, -2}, {-2, 2}}
	c := [2]float64{-10, -10}
	y, face := SolveSimplex2(H, c)
	chk.Float64(tst, "y0", 1e-9, y[0], 0.5)
	chk.Float64(tst, "y1", 1e-9, y[1], 0.5)
	if face != EdgeSum {
		tst.Fatalf("expected EdgeSum, got %v", face)
	}
}
