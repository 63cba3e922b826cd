// Copyright 2024 The Goeik Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bb

// idx4 is a multi-index (i,j,k,l) with i+j+k+l equal to the degree of the
// net it indexes into.
type idx4 [4]int

// tetOrder fixes the layout of the 20-coefficient cubic tetrahedron: 4
// vertices, then 12 edge points (two per edge, ordered near-vertex-first),
// then 4 face-center points (one per face, omitting the opposite vertex).
var tetOrder = [20]idx4{
	{3, 0, 0, 0}, {0, 3, 0, 0}, {0, 0, 3, 0}, {0, 0, 0, 3},
	{2, 1, 0, 0}, {1, 2, 0, 0}, // edge 0-1
	{2, 0, 1, 0}, {1, 0, 2, 0}, // edge 0-2
	{2, 0, 0, 1}, {1, 0, 0, 2}, // edge 0-3
	{0, 2, 1, 0}, {0, 1, 2, 0}, // edge 1-2
	{0, 2, 0, 1}, {0, 1, 0, 2}, // edge 1-3
	{0, 0, 2, 1}, {0, 0, 1, 2}, // edge 2-3
	{1, 1, 1, 0}, // face 0-1-2 (opposite vertex 3)
	{1, 1, 0, 1}, // face 0-1-3 (opposite vertex 2)
	{1, 0, 1, 1}, // face 0-2-3 (opposite vertex 1)
	{0, 1, 1, 1}, // face 1-2-3 (opposite vertex 0)
}

// tetNet builds the degree-3 control net as a lookup keyed by multi-index.
func tetNet(c [20]float64) map[idx4]float64 {
	m := make(map[idx4]float64, 20)
	for i, key := range tetOrder {
		m[key] = c[i]
	}
	return m
}

// multiIndices4 enumerates every (i,j,k,l) with i+j+k+l==n and each >= 0.
func multiIndices4(n int) []idx4 {
	var out []idx4
	for i := 0; i <= n; i++ {
		for j := 0; j <= n-i; j++ {
			for k := 0; k <= n-i-j; k++ {
				l := n - i - j - k
				out = append(out, idx4{i, j, k, l})
			}
		}
	}
	return out
}

// tetReduce performs one De Casteljau reduction step of a degree-n net to
// degree n-1 at barycentric point b.
func tetReduce(net map[idx4]float64, n int, b [4]float64) map[idx4]float64 {
	next := make(map[idx4]float64)
	for _, key := range multiIndices4(n - 1) {
		var v float64
		for axis := 0; axis < 4; axis++ {
			raised := key
			raised[axis]++
			v += b[axis] * net[raised]
		}
		next[key] = v
	}
	return next
}

// Tet evaluates the cubic Bernstein-Bézier polynomial with coefficients c
// (ordered per tetOrder) on the 3-simplex at barycentric point b.
func Tet(c [20]float64, b [4]float64) float64 {
	net := tetNet(c)
	for deg := 3; deg >= 1; deg-- {
		net = tetReduce(net, deg, b)
	}
	return net[idx4{0, 0, 0, 0}]
}

// InterpTet builds the 20 coefficients of a cubic Bernstein-Bézier
// tetrahedron from corner values f, corner gradients Df, and corner
// positions X, using the same edge-Hermite rule as InterpTri and closing
// each of the tetrahedron's four faces with InterpTri's interior-point
// formula.
func InterpTet(f [4]float64, Df [4][3]float64, X [4][3]float64) [20]float64 {
	edgeDeriv := func(i, j int) float64 {
		var dx [3]float64
		for k := 0; k < 3; k++ {
			dx[k] = X[j][k] - X[i][k]
		}
		return f[i] + (Df[i][0]*dx[0]+Df[i][1]*dx[1]+Df[i][2]*dx[2])/3
	}

	var c [20]float64
	c[0], c[1], c[2], c[3] = f[0], f[1], f[2], f[3]
	edges := [6][2]int{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}}
	for e, ij := range edges {
		i, j := ij[0], ij[1]
		c[4+2*e] = edgeDeriv(i, j)
		c[4+2*e+1] = edgeDeriv(j, i)
	}

	// Face closure: each face reuses its own 3 vertices and 6 edge points,
	// exactly InterpTri's interior-point formula.
	faceCenter := func(v0, v1, v2, e01near0, e01near1, e02near0, e02near2, e12near1, e12near2 float64) float64 {
		return (e01near0+e01near1+e02near0+e02near2+e12near1+e12near2)/4 - (v0+v1+v2)/6
	}
	c[16] = faceCenter(f[0], f[1], f[2], c[4], c[5], c[6], c[7], c[10], c[11])   // face 0-1-2
	c[17] = faceCenter(f[0], f[1], f[3], c[4], c[5], c[8], c[9], c[12], c[13])   // face 0-1-3
	c[18] = faceCenter(f[0], f[2], f[3], c[6], c[7], c[8], c[9], c[14], c[15])   // face 0-2-3
	c[19] = faceCenter(f[1], f[2], f[3], c[10], c[11], c[12], c[13], c[14], c[15]) // face 1-2-3
	return c
}
