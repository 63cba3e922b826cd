// Copyright 2024 The Goeik Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package marcher

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/cpmech/goeik/bb"
	"github.com/cpmech/goeik/geom"
	"github.com/cpmech/goeik/heap"
	"github.com/cpmech/goeik/jet"
	"github.com/cpmech/goeik/slowness"
	"github.com/cpmech/goeik/update"
)

// Mesh3 drives fast marching over an unstructured tetrahedral mesh,
// mirroring Grid2's lifecycle and update-dispatch structure but discovering
// update candidates via tet-face incidence instead of cell-diagonal splits.
type Mesh3 struct {
	mesh  geom.Mesh
	field slowness.Field
	state []State
	jets  []jet.Jet3
	heap  *heap.Indexed[int]

	Verbose bool
}

type mesh3Valuer struct{ jets []jet.Jet3 }

func (v mesh3Valuer) Value(l int) float64 { return v.jets[l].F }
func (v mesh3Valuer) SetPos(l int, p int) {}

// NewMesh3 builds a solver over mesh, routing every local update through
// field. All nodes start Far.
func NewMesh3(mesh geom.Mesh, field slowness.Field) *Mesh3 {
	n := mesh.NumVerts()
	m := &Mesh3{
		mesh:  mesh,
		field: field,
		state: make([]State, n),
		jets:  make([]jet.Jet3, n),
	}
	for l := range m.jets {
		m.jets[l] = jet.Far3
	}
	m.heap = heap.New[int](n, mesh3Valuer{m.jets})
	return m
}

// AddTrial installs l as Trial with the given jet and inserts it into the
// frontier heap.
func (m *Mesh3) AddTrial(l int, j jet.Jet3) {
	m.state[l] = Trial
	m.jets[l] = j
	m.heap.Insert(l)
}

// AddValid installs l as Valid with the given jet, without inserting it
// into the heap.
func (m *Mesh3) AddValid(l int, j jet.Jet3) {
	m.state[l] = Valid
	m.jets[l] = j
}

// MakeBoundary excludes l from propagation entirely.
func (m *Mesh3) MakeBoundary(l int) {
	m.state[l] = Boundary
}

// State reports the current state of node l.
func (m *Mesh3) State(l int) State { return m.state[l] }

// Jet returns the current jet of node l.
func (m *Mesh3) Jet(l int) jet.Jet3 { return m.jets[l] }

// Step pops the Trial node of minimum T, promotes it to Valid, and updates
// its Far/Trial neighbours. No-op when the heap is empty.
func (m *Mesh3) Step() {
	l, ok := m.heap.Pop()
	if !ok {
		return
	}
	m.state[l] = Valid
	if m.Verbose {
		io.Pf("marcher.Mesh3: valid l=%d T=%g\n", l, m.jets[l].F)
	}

	for _, n := range m.mesh.VertNeighbors(l) {
		if m.state[n] == Valid || m.state[n] == Boundary {
			continue
		}
		m.updateNode(n)
	}
}

// updateNode recomputes the best candidate jet for n across every tet
// incident to n: any pair of its other three vertices that are Valid gives
// a UTri candidate, all three Valid gives a UTetra candidate, and every
// Valid vertex also gives a one-point Point update against it alone — the
// only way a lone seed vertex propagates before any incident face has two
// or three Valid corners to offer.
func (m *Mesh3) updateNode(n int) {
	best := m.jets[n]
	bestF := best.F
	improved := false

	x := toArr(m.mesh.Vert(n))

	consider := func(j jet.Jet3) {
		if j.F < bestF {
			bestF = j.F
			best = j
			improved = true
		}
	}

	for _, cid := range m.mesh.VertCells(n) {
		cell := m.mesh.Cell(cid)
		others := otherThree(cell, n)
		if others == nil {
			continue
		}
		valid := [3]bool{
			m.state[others[0]] == Valid,
			m.state[others[1]] == Valid,
			m.state[others[2]] == Valid,
		}

		for i, o := range others {
			if valid[i] {
				xo := toArr(m.mesh.Vert(o))
				consider(update.NewPoint(x, xo, m.jets[o], m.field).Jet())
			}
		}

		pairs := [3][2]int{{0, 1}, {0, 2}, {1, 2}}
		for _, p := range pairs {
			if !valid[p[0]] || !valid[p[1]] {
				continue
			}
			a, b := others[p[0]], others[p[1]]
			xa := toArr(m.mesh.Vert(a))
			xb := toArr(m.mesh.Vert(b))
			u := update.NewTri(x, xa, xb, m.jets[a], m.jets[b], m.field)
			if !u.IsCausal() {
				continue
			}
			u.Solve()
			consider(u.Jet())
		}

		if valid[0] && valid[1] && valid[2] {
			a, b, c := others[0], others[1], others[2]
			xa := toArr(m.mesh.Vert(a))
			xb := toArr(m.mesh.Vert(b))
			xc := toArr(m.mesh.Vert(c))
			u := update.NewTetra(x, xa, xb, xc, m.jets[a], m.jets[b], m.jets[c], m.field)
			if u.IsDegenerate() || !u.IsCausal() {
				continue
			}
			u.Solve()
			consider(u.Jet())
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

func otherThree(cell [4]int, n int) []int {
	var out []int
	for _, v := range cell {
		if v != n {
			out = append(out, v)
		}
	}
	if len(out) != 3 {
		return nil
	}
	return out
}

func toArr(v r3.Vec) [3]float64 { return [3]float64{v.X, v.Y, v.Z} }

// Solve repeats Step until the heap is empty.
func (m *Mesh3) Solve() {
	for m.heap.Size() > 0 {
		m.Step()
	}
}

// T evaluates the continuous travel-time field at x by locating its
// containing tet and evaluating the cubic Bernstein-Bezier patch built
// from that tet's corner jets.
func (m *Mesh3) T(x r3.Vec) (float64, error) {
	cid, bary, ok := m.mesh.Contains(x)
	if !ok {
		return 0, chk.Err("marcher.Mesh3: point is outside the mesh")
	}
	cell := m.mesh.Cell(cid)
	var f [4]float64
	var grad [4][3]float64
	var X [4][3]float64
	for i, v := range cell {
		j := m.jets[v]
		if !j.Finite() {
			return 0, chk.Err("marcher.Mesh3: tet %d vertex %d is not yet solved", cid, v)
		}
		f[i] = j.F
		grad[i] = [3]float64{j.Fx, j.Fy, j.Fz}
		X[i] = toArr(m.mesh.Vert(v))
	}
	tc := bb.InterpTet(f, grad, X)
	return bb.Tet(tc, bary), nil
}
