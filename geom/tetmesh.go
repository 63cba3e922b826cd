// Copyright 2024 The Goeik Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"math"

	"github.com/cpmech/gosl/la"
	"gonum.org/v1/gonum/spatial/r3"
)

// TetMesh is a concrete Mesh backed by a vertex array and tetrahedron
// connectivity. Adjacency is built once at construction time (the
// allocate-once-at-setup convention the teacher's Domain follows) and never
// recomputed; a TetMesh's topology is immutable for its lifetime.
type TetMesh struct {
	verts []r3.Vec
	cells [][4]int

	vertCells     [][]int
	vertNeighbors [][]int
	edges         [][2]int
}

// NewTetMesh builds a TetMesh from a vertex array and per-tet vertex index
// quadruples. Vertex-to-cell lists are collected directly from the cells;
// vertex-to-vertex adjacency and the edge list are derived from a dense
// incidence matrix (small/medium meshes only; this solver targets
// fixture-sized meshes, not CAD-scale tessellations).
func NewTetMesh(verts []r3.Vec, cells [][4]int) *TetMesh {
	m := &TetMesh{verts: verts, cells: cells}
	n := len(verts)
	incidence := la.MatAlloc(n, n)

	m.vertCells = make([][]int, n)
	edgeSeen := map[[2]int]bool{}
	for cid, c := range cells {
		for a := 0; a < 4; a++ {
			m.vertCells[c[a]] = append(m.vertCells[c[a]], cid)
			for b := a + 1; b < 4; b++ {
				i, j := c[a], c[b]
				if i > j {
					i, j = j, i
				}
				if incidence[i][j] == 0 {
					incidence[i][j] = 1
					incidence[j][i] = 1
					edgeSeen[[2]int{i, j}] = true
				}
			}
		}
	}

	m.vertNeighbors = make([][]int, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if incidence[i][j] != 0 {
				m.vertNeighbors[i] = append(m.vertNeighbors[i], j)
			}
		}
	}

	m.edges = make([][2]int, 0, len(edgeSeen))
	for e := range edgeSeen {
		m.edges = append(m.edges, e)
	}
	return m
}

func (m *TetMesh) NumVerts() int { return len(m.verts) }
func (m *TetMesh) NumCells() int { return len(m.cells) }

func (m *TetMesh) Vert(l int) r3.Vec { return m.verts[l] }

func (m *TetMesh) Cell(id int) [4]int { return m.cells[id] }

func (m *TetMesh) VertCells(l int) []int { return m.vertCells[l] }

func (m *TetMesh) VertNeighbors(l int) []int { return m.vertNeighbors[l] }

func (m *TetMesh) Edges() [][2]int { return m.edges }

// Contains locates x by testing every tet's barycentric coordinates; a
// linear scan is adequate for the fixture-sized meshes this solver targets
// (no spatial index is built).
func (m *TetMesh) Contains(x r3.Vec) (cellID int, bary [4]float64, ok bool) {
	const tol = 1e-9
	for cid, c := range m.cells {
		b, good := tetBarycentric(m.verts[c[0]], m.verts[c[1]], m.verts[c[2]], m.verts[c[3]], x)
		if !good {
			continue
		}
		if b[0] >= -tol && b[1] >= -tol && b[2] >= -tol && b[3] >= -tol {
			return cid, b, true
		}
	}
	return 0, bary, false
}

// tetBarycentric solves for the barycentric coordinates of x in the
// tetrahedron (x0,x1,x2,x3) via Cramer's rule on the 3x3 system relating
// (x1-x0, x2-x0, x3-x0) to (x-x0). good is false for a degenerate tet.
func tetBarycentric(x0, x1, x2, x3, x r3.Vec) (b [4]float64, good bool) {
	e1 := r3.Sub(x1, x0)
	e2 := r3.Sub(x2, x0)
	e3 := r3.Sub(x3, x0)
	rhs := r3.Sub(x, x0)

	det := det3x3(e1, e2, e3)
	if math.Abs(det) < 1e-15 {
		return b, false
	}
	b[1] = det3x3(rhs, e2, e3) / det
	b[2] = det3x3(e1, rhs, e3) / det
	b[3] = det3x3(e1, e2, rhs) / det
	b[0] = 1 - b[1] - b[2] - b[3]
	return b, true
}

func det3x3(c0, c1, c2 r3.Vec) float64 {
	return c0.X*(c1.Y*c2.Z-c1.Z*c2.Y) -
		c0.Y*(c1.X*c2.Z-c1.Z*c2.X) +
		c0.Z*(c1.X*c2.Y-c1.Y*c2.X)
}

var _ Mesh = (*TetMesh)(nil)
