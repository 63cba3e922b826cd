// Copyright 2024 The Goeik Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package geom provides the mesh/grid oracles the marcher queries:
// coordinates, adjacency, and point location. It owns no travel-time state;
// it only answers questions about geometry, the way the teacher's fem
// package separates Domain geometry from the eikonal solver's state.
package geom

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// ErrOutOfDomain is returned by Grid.Locate when a query point falls
// outside [XYMin, XYMin+H*(Shape-1)].
var ErrOutOfDomain = chk.Err("geom: point is out of the grid domain")

// Grid is a uniform 2D Cartesian grid: Shape[0] x Shape[1] nodes, spaced H
// apart starting at XYMin.
type Grid struct {
	Shape [2]int
	XYMin [2]float64
	H     float64
}

// NewGrid validates and builds a Grid.
func NewGrid(shape [2]int, xymin [2]float64, h float64) *Grid {
	if shape[0] < 2 || shape[1] < 2 {
		chk.Panic("geom.NewGrid: shape must be at least 2x2, got %v", shape)
	}
	if h <= 0 {
		chk.Panic("geom.NewGrid: spacing must be positive, got %v", h)
	}
	return &Grid{Shape: shape, XYMin: xymin, H: h}
}

// NumNodes returns the total node count.
func (g *Grid) NumNodes() int { return g.Shape[0] * g.Shape[1] }

// NumCells returns the total cell count.
func (g *Grid) NumCells() int { return (g.Shape[0] - 1) * (g.Shape[1] - 1) }

// IndToL maps a node index (i,j) to its linear label.
func (g *Grid) IndToL(i, j int) int { return j*g.Shape[0] + i }

// LToInd maps a linear node label back to (i,j).
func (g *Grid) LToInd(l int) (i, j int) {
	i = l % g.Shape[0]
	j = l / g.Shape[0]
	return
}

// IndToLc maps a cell index (i,j) to its linear cell label.
func (g *Grid) IndToLc(i, j int) int { return j*(g.Shape[0]-1) + i }

// LcToInd maps a linear cell label back to (i,j).
func (g *Grid) LcToInd(lc int) (i, j int) {
	nc := g.Shape[0] - 1
	i = lc % nc
	j = lc / nc
	return
}

// XY returns the coordinates of node l.
func (g *Grid) XY(l int) [2]float64 {
	i, j := g.LToInd(l)
	return [2]float64{
		g.XYMin[0] + float64(i)*g.H,
		g.XYMin[1] + float64(j)*g.H,
	}
}

// CellCorners returns the four node labels of cell lc in the order
// (i,j), (i+1,j), (i,j+1), (i+1,j+1).
func (g *Grid) CellCorners(lc int) [4]int {
	i, j := g.LcToInd(lc)
	return [4]int{
		g.IndToL(i, j),
		g.IndToL(i+1, j),
		g.IndToL(i, j+1),
		g.IndToL(i+1, j+1),
	}
}

// Locate finds the cell containing (x,y) and its local coordinates
// cc in [0,1]^2 within that cell. Returns ErrOutOfDomain outside the grid.
func (g *Grid) Locate(x, y float64) (lc int, cc [2]float64, err error) {
	fi := (x - g.XYMin[0]) / g.H
	fj := (y - g.XYMin[1]) / g.H
	i := int(math.Floor(fi))
	j := int(math.Floor(fj))
	if fi < 0 || fj < 0 || fi > float64(g.Shape[0]-1) || fj > float64(g.Shape[1]-1) {
		return 0, cc, ErrOutOfDomain
	}
	// Points lying exactly on the top/right boundary belong to the last cell.
	if i == g.Shape[0]-1 {
		i--
	}
	if j == g.Shape[1]-1 {
		j--
	}
	cc = [2]float64{fi - float64(i), fj - float64(j)}
	lc = g.IndToLc(i, j)
	return
}

// CellsOfNode returns the (up to four) cell labels incident to node l, in
// no particular order.
func (g *Grid) CellsOfNode(l int) []int {
	i, j := g.LToInd(l)
	var out []int
	nc0, nc1 := g.Shape[0]-1, g.Shape[1]-1
	for _, di := range [2]int{-1, 0} {
		for _, dj := range [2]int{-1, 0} {
			ci, cj := i+di, j+dj
			if ci >= 0 && ci < nc0 && cj >= 0 && cj < nc1 {
				out = append(out, g.IndToLc(ci, cj))
			}
		}
	}
	return out
}

// NeighborsOf returns the (up to four) grid-adjacent node labels of l.
func (g *Grid) NeighborsOf(l int) []int {
	i, j := g.LToInd(l)
	var out []int
	if i > 0 {
		out = append(out, g.IndToL(i-1, j))
	}
	if i < g.Shape[0]-1 {
		out = append(out, g.IndToL(i+1, j))
	}
	if j > 0 {
		out = append(out, g.IndToL(i, j-1))
	}
	if j < g.Shape[1]-1 {
		out = append(out, g.IndToL(i, j+1))
	}
	return out
}
