// Copyright 2024 The Goeik Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"gonum.org/v1/gonum/spatial/r3"
)

// OctantSphereMesh builds a small tetrahedral mesh approximating the unit
// ball, used as the fixture for the approximate-sphere end-to-end scenario.
// Each of the 8 octants contributes a once-subdivided spherical triangle
// (4 sub-triangles) fanned to the center, giving 32 tets over 19 vertices;
// vertices shared across octant boundaries (the 6 axis points and the 12
// edge midpoints of the enclosing octahedron) are deduplicated.
func OctantSphereMesh() *TetMesh {
	type key [3]int64

	const scale = 1e9
	quantize := func(v r3.Vec) key {
		return key{
			int64(math.Round(v.X * scale)),
			int64(math.Round(v.Y * scale)),
			int64(math.Round(v.Z * scale)),
		}
	}

	verts := []r3.Vec{}
	index := map[key]int{}
	vertexOf := func(v r3.Vec) int {
		k := quantize(v)
		if id, ok := index[k]; ok {
			return id
		}
		id := len(verts)
		verts = append(verts, v)
		index[k] = id
		return id
	}

	center := vertexOf(r3.Vec{})

	var cells [][4]int
	for _, sx := range [2]float64{-1, 1} {
		for _, sy := range [2]float64{-1, 1} {
			for _, sz := range [2]float64{-1, 1} {
				a := r3.Vec{X: sx, Y: 0, Z: 0}
				b := r3.Vec{X: 0, Y: sy, Z: 0}
				c := r3.Vec{X: 0, Y: 0, Z: sz}
				ab := unit(r3.Scale(0.5, r3.Add(a, b)))
				bc := unit(r3.Scale(0.5, r3.Add(b, c)))
				ca := unit(r3.Scale(0.5, r3.Add(c, a)))

				va, vb, vc := vertexOf(a), vertexOf(b), vertexOf(c)
				vab, vbc, vca := vertexOf(ab), vertexOf(bc), vertexOf(ca)

				subTris := [4][3]int{
					{va, vab, vca},
					{vab, vb, vbc},
					{vca, vbc, vc},
					{vab, vbc, vca},
				}
				for _, tri := range subTris {
					cells = append(cells, [4]int{center, tri[0], tri[1], tri[2]})
				}
			}
		}
	}

	if len(verts) != 19 {
		chk.Panic("geom.OctantSphereMesh: expected 19 vertices, got %d", len(verts))
	}
	return NewTetMesh(verts, cells)
}

func unit(v r3.Vec) r3.Vec {
	return r3.Scale(1/r3.Norm(v), v)
}
