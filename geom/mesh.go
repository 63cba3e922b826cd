// Copyright 2024 The Goeik Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import "gonum.org/v1/gonum/spatial/r3"

// Mesh is the 3D tetrahedral mesh oracle the marcher queries: vertex
// coordinates, adjacency, and point location. Non-constant topology
// (refinement, insertion) is out of scope; a Mesh is built once and
// queried for its lifetime.
type Mesh interface {
	NumVerts() int
	NumCells() int
	Vert(l int) r3.Vec
	Cell(id int) [4]int
	VertCells(l int) []int // cell ids incident to vertex l
	VertNeighbors(l int) []int
	Edges() [][2]int
	// Contains locates x within a cell and returns its barycentric
	// coordinates there; ok is false when x is outside every cell.
	Contains(x r3.Vec) (cellID int, bary [4]float64, ok bool)
}
