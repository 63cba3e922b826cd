// Copyright 2024 The Goeik Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package marcher

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/cpmech/goeik/geom"
	"github.com/cpmech/goeik/heap"
	"github.com/cpmech/goeik/jet"
	"github.com/cpmech/goeik/slowness"
	"github.com/cpmech/goeik/update"
)

// Grid2 drives fast marching over a uniform 2D grid. Its node/jet/heap
// storage is allocated once at construction to the grid's node count and
// never reallocated.
type Grid2 struct {
	grid     *geom.Grid
	field    slowness.Field
	state    []State
	jets     []jet.Jet2
	heap     *heap.Indexed[int]
	cellJets map[int][4]jet.Jet2 // built-on-demand bicubic corner cache

	// Verbose gates per-step diagnostic logging, mirroring msolid.Driver's
	// Silent/ShowR flags.
	Verbose bool
}

type grid2Valuer struct{ jets []jet.Jet2 }

func (v grid2Valuer) Value(l int) float64  { return v.jets[l].F }
func (v grid2Valuer) SetPos(l int, p int) {}

// NewGrid2 builds a solver over g, routing every local update through
// field. All nodes start Far.
func NewGrid2(g *geom.Grid, field slowness.Field) *Grid2 {
	n := g.NumNodes()
	m := &Grid2{
		grid:     g,
		field:    field,
		state:    make([]State, n),
		jets:     make([]jet.Jet2, n),
		cellJets: map[int][4]jet.Jet2{},
	}
	for l := range m.jets {
		m.jets[l] = jet.Far2
	}
	m.heap = heap.New[int](n, grid2Valuer{m.jets})
	return m
}

// AddTrial installs l as Trial with the given jet and inserts it into the
// frontier heap.
func (m *Grid2) AddTrial(l int, j jet.Jet2) {
	m.state[l] = Trial
	m.jets[l] = j
	m.heap.Insert(l)
}

// AddValid installs l as Valid with the given jet, without inserting it
// into the heap.
func (m *Grid2) AddValid(l int, j jet.Jet2) {
	m.state[l] = Valid
	m.jets[l] = j
}

// MakeBoundary excludes l from propagation entirely.
func (m *Grid2) MakeBoundary(l int) {
	m.state[l] = Boundary
}

// State reports the current state of node l.
func (m *Grid2) State(l int) State { return m.state[l] }

// Jet returns the current jet of node l.
func (m *Grid2) Jet(l int) jet.Jet2 { return m.jets[l] }

// Step pops the Trial node of minimum T, promotes it to Valid, and updates
// its Far/Trial neighbours. No-op when the heap is empty.
func (m *Grid2) Step() {
	l, ok := m.heap.Pop()
	if !ok {
		return
	}
	m.state[l] = Valid
	if m.Verbose {
		io.Pf("marcher.Grid2: valid l=%d T=%g\n", l, m.jets[l].F)
	}

	for _, n := range m.grid.NeighborsOf(l) {
		if m.state[n] == Valid || m.state[n] == Boundary {
			continue
		}
		m.updateNode(n)
	}
}

// updateNode recomputes the best candidate jet for n from every triangle
// incident to n (across the grid cells touching it, split along the
// (i,j)-(i+1,j+1) diagonal). A triangle whose other two corners are both
// Valid gives a two-point Tri candidate; a triangle with only one Valid
// corner falls back to a one-point Point update against that corner alone,
// which is what lets a lone seed (or a seed's first ring) propagate at all
// before any triangle has two Valid corners to offer. The best-improving
// candidate across both kinds is installed.
func (m *Grid2) updateNode(n int) {
	best := m.jets[n]
	bestF := best.F
	improved := false

	xy := m.grid.XY(n)
	x := [3]float64{xy[0], xy[1], 0}

	consider := func(j3 jet.Jet3) {
		if j3.F < bestF {
			bestF = j3.F
			best = to2(j3)
			improved = true
		}
	}
	pointCandidate := func(l int) jet.Jet3 {
		xy0 := m.grid.XY(l)
		x0 := [3]float64{xy0[0], xy0[1], 0}
		return update.NewPoint(x, x0, to3(m.jets[l]), m.field).Jet()
	}

	for _, lc := range m.grid.CellsOfNode(n) {
		corners := m.grid.CellCorners(lc) // [00,10,01,11]
		triangles := [2][3]int{
			{corners[0], corners[1], corners[3]},
			{corners[0], corners[2], corners[3]},
		}
		for _, tri := range triangles {
			others := otherTwo(tri, n)
			if others == nil {
				continue
			}
			l0, l1 := others[0], others[1]
			v0, v1 := m.state[l0] == Valid, m.state[l1] == Valid
			switch {
			case v0 && v1:
				xy0 := m.grid.XY(l0)
				xy1 := m.grid.XY(l1)
				x0 := [3]float64{xy0[0], xy0[1], 0}
				x1 := [3]float64{xy1[0], xy1[1], 0}
				j0 := to3(m.jets[l0])
				j1 := to3(m.jets[l1])

				u := update.NewTri(x, x0, x1, j0, j1, m.field)
				if !u.IsCausal() {
					continue
				}
				u.Solve()
				consider(u.Jet())
			case v0:
				consider(pointCandidate(l0))
			case v1:
				consider(pointCandidate(l1))
			}
		}
	}

	if !improved || bestF >= m.jets[n].F {
		return
	}
	m.jets[n] = best
	if m.state[n] == Far {
		m.state[n] = Trial
		m.heap.Insert(n)
	} else {
		m.heap.Swim(n)
	}
}

func otherTwo(tri [3]int, n int) []int {
	var out []int
	for _, v := range tri {
		if v != n {
			out = append(out, v)
		}
	}
	if len(out) != 2 {
		return nil
	}
	return out
}

func to3(j jet.Jet2) jet.Jet3 { return jet.Jet3{F: j.F, Fx: j.Fx, Fy: j.Fy, Fz: 0} }
func to2(j jet.Jet3) jet.Jet2 { return jet.Jet2{F: j.F, Fx: j.Fx, Fy: j.Fy, Fxy: 0} }

// Solve repeats Step until the heap is empty.
func (m *Grid2) Solve() {
	for m.heap.Size() > 0 {
		m.Step()
	}
}

// CanBuildCell reports whether all four corner jets of cell lc are finite.
func (m *Grid2) CanBuildCell(lc int) bool {
	for _, c := range m.grid.CellCorners(lc) {
		if !m.jets[c].Finite() {
			return false
		}
	}
	return true
}

// BuildCells caches corner jets for every buildable cell. Idempotent.
func (m *Grid2) BuildCells() {
	for lc := 0; lc < m.grid.NumCells(); lc++ {
		if _, ok := m.cellJets[lc]; ok {
			continue
		}
		if !m.CanBuildCell(lc) {
			continue
		}
		corners := m.grid.CellCorners(lc)
		m.cellJets[lc] = [4]jet.Jet2{m.jets[corners[0]], m.jets[corners[1]], m.jets[corners[2]], m.jets[corners[3]]}
	}
}

func (m *Grid2) ensureCell(x, y float64) (cc [2]float64, corners [4]jet.Jet2, err error) {
	lc, cc, err := m.grid.Locate(x, y)
	if err != nil {
		return cc, corners, err
	}
	if _, ok := m.cellJets[lc]; !ok {
		if !m.CanBuildCell(lc) {
			return cc, corners, chk.Err("marcher.Grid2: cell %d is not yet solvable (non-finite corner jet)", lc)
		}
		ci := m.grid.CellCorners(lc)
		m.cellJets[lc] = [4]jet.Jet2{m.jets[ci[0]], m.jets[ci[1]], m.jets[ci[2]], m.jets[ci[3]]}
	}
	return cc, m.cellJets[lc], nil
}

// T evaluates the continuous travel-time field at (x,y) via the per-cell
// bicubic Hermite patch, building the cell on demand.
func (m *Grid2) T(x, y float64) (float64, error) {
	cc, corners, err := m.ensureCell(x, y)
	if err != nil {
		return 0, err
	}
	return bicubic(corners, m.grid.H, cc[0], cc[1]), nil
}

// Tx evaluates dT/dx at (x,y).
func (m *Grid2) Tx(x, y float64) (float64, error) {
	cc, corners, err := m.ensureCell(x, y)
	if err != nil {
		return 0, err
	}
	return bicubicDx(corners, m.grid.H, cc[0], cc[1]), nil
}

// Ty evaluates dT/dy at (x,y).
func (m *Grid2) Ty(x, y float64) (float64, error) {
	cc, corners, err := m.ensureCell(x, y)
	if err != nil {
		return 0, err
	}
	return bicubicDy(corners, m.grid.H, cc[0], cc[1]), nil
}

// Txy evaluates d2T/dxdy at (x,y).
func (m *Grid2) Txy(x, y float64) (float64, error) {
	cc, corners, err := m.ensureCell(x, y)
	if err != nil {
		return 0, err
	}
	return bicubicDxy(corners, m.grid.H, cc[0], cc[1]), nil
}
