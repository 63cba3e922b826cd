// Copyright 2024 The Goeik Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package jet defines the travel-time jets propagated by the fast-marching
// solver: a function value together with its first (and, on the 2D grid,
// mixed second) partial derivatives at a node.
package jet

import "math"

// Jet2 is the jet stored at a node of a 2D grid: value, gradient, and the
// mixed partial fxy needed to build a bicubic Hermite interpolant on each
// grid cell.
type Jet2 struct {
	F   float64
	Fx  float64
	Fy  float64
	Fxy float64
}

// Jet3 is the jet stored at a vertex of a 3D tetrahedral mesh: value and
// gradient. There is no mixed partial since 3D continuous evaluation uses
// cubic Bernstein-Bézier tets built directly from corner jets, not a tensor
// product basis.
type Jet3 struct {
	F  float64
	Fx float64
	Fy float64
	Fz float64
}

// Grad returns (Fx, Fy).
func (j Jet2) Grad() [2]float64 { return [2]float64{j.Fx, j.Fy} }

// Grad returns (Fx, Fy, Fz).
func (j Jet3) Grad() [3]float64 { return [3]float64{j.Fx, j.Fy, j.Fz} }

// Finite reports whether every component of j is finite. A non-finite jet
// signals "no value yet" per the node-state contract.
func (j Jet2) Finite() bool {
	return isfinite(j.F) && isfinite(j.Fx) && isfinite(j.Fy) && isfinite(j.Fxy)
}

// Finite reports whether every component of j is finite.
func (j Jet3) Finite() bool {
	return isfinite(j.F) && isfinite(j.Fx) && isfinite(j.Fy) && isfinite(j.Fz)
}

func isfinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// Far2 and Far3 are the sentinel jets installed at nodes in the Far state:
// non-finite, so Finite() reports false and no update can mistake them for
// a real value.
var (
	Far2 = Jet2{F: math.Inf(1), Fx: math.NaN(), Fy: math.NaN(), Fxy: math.NaN()}
	Far3 = Jet3{F: math.Inf(1), Fx: math.NaN(), Fy: math.NaN(), Fz: math.NaN()}
)
