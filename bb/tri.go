// Copyright 2024 The Goeik Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bb

// Triangle coefficient ordering: c[0..2] are the vertex values (300,030,003
// in barycentric-exponent notation), c[3..8] are the edge control points
// (210,120,021,012,102,201), and c[9] is the interior point (111).
const (
	tri300 = iota
	tri030
	tri003
	tri210
	tri120
	tri021
	tri012
	tri102
	tri201
	tri111
)

// Tri evaluates the cubic Bernstein-Bézier polynomial with coefficients c on
// the 2-simplex at the barycentric point b=(b0,b1,b2), b0+b1+b2=1, via
// three levels of De Casteljau reduction.
func Tri(c [10]float64, b [3]float64) float64 {
	d := triReduce(c, b)
	e := triReduce1(d, b)
	return b[0]*e[0] + b[1]*e[1] + b[2]*e[2]
}

// DTri returns the directional derivative of Tri at b in direction a
// (a0+a1+a2=0): the degree-2 net is 3*Δ_a(c), evaluated by De Casteljau.
func DTri(c [10]float64, b [3]float64, a [3]float64) float64 {
	g := triDiff(c, a)
	e := triReduce1(g, b)
	return b[0]*e[0] + b[1]*e[1] + b[2]*e[2]
}

// D2Tri returns the second directional derivative of Tri at b in directions
// a1 then a2: the degree-2 net 3*Δ_{a1}(c) is differenced again by a2 to a
// degree-1 net, scaled by 2, then evaluated at b.
func D2Tri(c [10]float64, b [3]float64, a1, a2 [3]float64) float64 {
	g := triDiff(c, a1)
	h := triDiff1(g, a2)
	return b[0]*h[0] + b[1]*h[1] + b[2]*h[2]
}

// triReduce reduces the degree-3 net c to the degree-2 net d=(d200,d020,d002,d110,d011,d101).
func triReduce(c [10]float64, b [3]float64) [6]float64 {
	u, v, w := b[0], b[1], b[2]
	return [6]float64{
		u*c[tri300] + v*c[tri210] + w*c[tri201], // d200
		u*c[tri120] + v*c[tri030] + w*c[tri021], // d020
		u*c[tri102] + v*c[tri012] + w*c[tri003], // d002
		u*c[tri210] + v*c[tri120] + w*c[tri111], // d110
		u*c[tri111] + v*c[tri021] + w*c[tri012], // d011
		u*c[tri201] + v*c[tri111] + w*c[tri102], // d101
	}
}

// triReduce1 reduces a degree-2 net d=(d200,d020,d002,d110,d011,d101) to the
// degree-1 net e=(e100,e010,e001).
func triReduce1(d [6]float64, b [3]float64) [3]float64 {
	const d200, d020, d002, d110, d011, d101 = 0, 1, 2, 3, 4, 5
	u, v, w := b[0], b[1], b[2]
	return [3]float64{
		u*d[d200] + v*d[d110] + w*d[d101],
		u*d[d110] + v*d[d020] + w*d[d011],
		u*d[d101] + v*d[d011] + w*d[d002],
	}
}

// triDiff computes the degree-2 net 3*Δ_a(c) in direction a=(a0,a1,a2).
func triDiff(c [10]float64, a [3]float64) [6]float64 {
	a0, a1, a2 := a[0], a[1], a[2]
	return [6]float64{
		3 * (a0*c[tri300] + a1*c[tri210] + a2*c[tri201]),
		3 * (a0*c[tri120] + a1*c[tri030] + a2*c[tri021]),
		3 * (a0*c[tri102] + a1*c[tri012] + a2*c[tri003]),
		3 * (a0*c[tri210] + a1*c[tri120] + a2*c[tri111]),
		3 * (a0*c[tri111] + a1*c[tri021] + a2*c[tri012]),
		3 * (a0*c[tri201] + a1*c[tri111] + a2*c[tri102]),
	}
}

// triDiff1 differences a degree-2 net g by direction a into a degree-1 net,
// scaled by 2.
func triDiff1(g [6]float64, a [3]float64) [3]float64 {
	const d200, d020, d002, d110, d011, d101 = 0, 1, 2, 3, 4, 5
	a0, a1, a2 := a[0], a[1], a[2]
	return [3]float64{
		2 * (a0*g[d200] + a1*g[d110] + a2*g[d101]),
		2 * (a0*g[d110] + a1*g[d020] + a2*g[d011]),
		2 * (a0*g[d101] + a1*g[d011] + a2*g[d002]),
	}
}

// InterpTri builds the 10 coefficients of a cubic Bernstein-Bézier triangle
// from corner values f, corner gradients (in ambient coordinates) Df, and
// corner positions X, so that the polynomial interpolates f at each corner
// and its directional derivative along each outgoing edge matches the
// projection of the corresponding corner gradient. The interior
// coefficient follows the standard cubic-Hermite-triangle closure
//
//	c111 = (sum of the six edge coefficients)/4 - (sum of the three corner values)/6
//
// which reproduces a linear field exactly and is the unique choice
// consistent with both triangle orientations of each shared edge.
func InterpTri(f [3]float64, Df [3][3]float64, X [3][3]float64) [10]float64 {
	edgeDeriv := func(i, j int) float64 {
		var dx [3]float64
		for k := 0; k < 3; k++ {
			dx[k] = X[j][k] - X[i][k]
		}
		return f[i] + (Df[i][0]*dx[0]+Df[i][1]*dx[1]+Df[i][2]*dx[2])/3
	}

	var c [10]float64
	c[tri300] = f[0]
	c[tri030] = f[1]
	c[tri003] = f[2]
	c[tri210] = edgeDeriv(0, 1)
	c[tri120] = edgeDeriv(1, 0)
	c[tri021] = edgeDeriv(1, 2)
	c[tri012] = edgeDeriv(2, 1)
	c[tri102] = edgeDeriv(2, 0)
	c[tri201] = edgeDeriv(0, 2)
	c[tri111] = (c[tri210]+c[tri120]+c[tri021]+c[tri012]+c[tri102]+c[tri201])/4 -
		(f[0]+f[1]+f[2])/6
	return c
}
