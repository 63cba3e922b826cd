// Copyright 2024 The Goeik Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package root

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func TestHybridFindsRootOfSmoothMonotone(tst *testing.T) {
	chk.PrintTitle("root: monotone cubic")

	f := func(x float64) (float64, float64, float64) { return x*x*x - x - 2, 3*x*x - 1, 0 }
	x := Hybrid(f, 1, 2)
	fx, _, _ := f(x)
	chk.Float64(tst, "|f(x*)|", 1e-10, math.Abs(fx), 0)
}

func TestHybridFindsRootOfNonMonotoneDerivative(tst *testing.T) {
	chk.PrintTitle("root: non-monotone derivative")

	// f(x) = sin(4x) has a non-monotone derivative on [0,1]; the bracket
	// still contains exactly one sign change of f itself.
	f := func(x float64) (float64, float64, float64) { return math.Sin(4 * x), 4 * math.Cos(4*x), 0 }
	x := Hybrid(f, 0.5, 1.0)
	fx, _, _ := f(x)
	chk.Float64(tst, "|f(x*)|", 1e-9, math.Abs(fx), 0)
}

func TestHybridNoSignChangeReturnsBetterEndpoint(tst *testing.T) {
	chk.PrintTitle("root: no sign change on bracket")

	// fx = x*x+1 never changes sign on [-1,0.25], so Hybrid must fall back
	// to the endpoint with the lower objective (val), not the smaller |fx|:
	// val picks x=-1 (val=-2) even though |fx| is smaller at x=0.25.
	f := func(x float64) (float64, float64, float64) {
		fx := x*x + 1
		return fx, 2 * x, -fx
	}
	x := Hybrid(f, -1, 0.25)
	if x != -1 {
		tst.Fatalf("expected the lower-objective endpoint -1, got %v", x)
	}
}
