// Copyright 2024 The Goeik Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package marcher drives ordered propagation of the fast-marching solve: a
// node-state machine, an indexed-heap frontier, and local-update dispatch.
// Grid2 targets uniform 2D grids, Mesh3 targets unstructured tetrahedral
// meshes; both follow the teacher's allocate-once-at-construction lifecycle
// (fem.Domain builds its node/equation arrays once per stage and never
// reallocates mid-solve).
package marcher

// State is a node's position in the fast-marching state machine.
type State int

const (
	Far State = iota
	Trial
	Valid
	Boundary
)

func (s State) String() string {
	switch s {
	case Far:
		return "Far"
	case Trial:
		return "Trial"
	case Valid:
		return "Valid"
	case Boundary:
		return "Boundary"
	default:
		return "Unknown"
	}
}
