// Copyright 2024 The Goeik Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package update

import (
	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/goeik/jet"
	"github.com/cpmech/goeik/slowness"
)

// Point solves the one-point line update: T(x) = T(x0) + s(x)*||x-x0||. It
// is the degenerate case of Tri with a single Valid source vertex instead of
// two, and is what bootstraps the first ring of nodes around a seed before
// any incident triangle or tet face has two (or three) Valid corners.
type Point struct {
	x, x0 [3]float64
	j0    jet.Jet3
	s     float64
}

// NewPoint builds a Point update for target point x with source vertex x0
// carrying jet j0, routed through the given slowness field.
func NewPoint(x, x0 [3]float64, j0 jet.Jet3, field slowness.Field) *Point {
	if !j0.Finite() {
		chk.Panic("update.NewPoint: source jet must be finite")
	}
	return &Point{x: x, x0: x0, j0: j0, s: field.S(x[:])}
}

// Value returns T(x0) + s(x)*||x-x0||.
func (p *Point) Value() float64 {
	return p.j0.F + p.s*norm3(sub3(p.x, p.x0))
}

// Jet returns the updated travel-time jet: value and the arrival direction
// (x-x0)/||x-x0||, which approximates the gradient of T at x.
func (p *Point) Jet() jet.Jet3 {
	d := sub3(p.x, p.x0)
	L := norm3(d)
	if L == 0 {
		return jet.Jet3{F: p.j0.F}
	}
	return jet.Jet3{
		F:  p.Value(),
		Fx: d[0] / L,
		Fy: d[1] / L,
		Fz: d[2] / L,
	}
}
