// Copyright 2024 The Goeik Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bb evaluates cubic Bernstein-Bézier polynomials on the 1-, 2-, and
// 3-simplex (edge, triangle, tetrahedron), together with their directional
// derivatives, and builds the Hermite coefficient vectors that interpolate a
// function value and gradient at each corner. Every evaluation routine uses
// the De Casteljau recurrence, which is stable for barycentric coordinates
// with nonnegative components; no special-case guards are needed.
package bb

// Edge evaluates the cubic Bernstein-Bézier polynomial with coefficients c
// at the point on the 1-simplex with barycentric coordinates b=(1-λ,λ).
func Edge(c [4]float64, b [2]float64) float64 {
	// De Casteljau: three levels of linear interpolation.
	d := [3]float64{
		b[0]*c[0] + b[1]*c[1],
		b[0]*c[1] + b[1]*c[2],
		b[0]*c[2] + b[1]*c[3],
	}
	e := [2]float64{
		b[0]*d[0] + b[1]*d[1],
		b[0]*d[1] + b[1]*d[2],
	}
	return b[0]*e[0] + b[1]*e[1]
}

// DEdge returns the directional derivative of Edge at b in the direction
// a=(-1,1) (i.e. d/dλ). A degree-3 BB polynomial's derivative along a is a
// degree-2 BB polynomial with coefficients 3*Δ_a(c); this is evaluated via
// De Casteljau on that degree-2 net.
func DEdge(c [4]float64, b [2]float64, a [2]float64) float64 {
	d := [3]float64{
		3 * (a[0]*c[0] + a[1]*c[1]),
		3 * (a[0]*c[1] + a[1]*c[2]),
		3 * (a[0]*c[2] + a[1]*c[3]),
	}
	e := [2]float64{
		b[0]*d[0] + b[1]*d[1],
		b[0]*d[1] + b[1]*d[2],
	}
	return b[0]*e[0] + b[1]*e[1]
}

// D2Edge returns the second directional derivative of Edge at b in direction
// a, obtained by differencing the degree-2 net from DEdge a second time.
func D2Edge(c [4]float64, b [2]float64, a [2]float64) float64 {
	d := [3]float64{
		3 * (a[0]*c[0] + a[1]*c[1]),
		3 * (a[0]*c[1] + a[1]*c[2]),
		3 * (a[0]*c[2] + a[1]*c[3]),
	}
	e := [2]float64{
		2 * (a[0]*d[0] + a[1]*d[1]),
		2 * (a[0]*d[1] + a[1]*d[2]),
	}
	return b[0]*e[0] + b[1]*e[1]
}

// InterpEdgeHermite builds the 4 Hermite coefficients of a cubic edge
// joining corner positions x0, x1 from corner values f=(f0,f1) and full
// ambient-space corner gradients grad=(∇f0,∇f1): the directional
// derivative each endpoint slope must match is ∇f_i·(x1-x0).
func InterpEdgeHermite(x0, x1 [3]float64, f [2]float64, grad [2][3]float64) [4]float64 {
	var dx [3]float64
	for k := 0; k < 3; k++ {
		dx[k] = x1[k] - x0[k]
	}
	df := [2]float64{
		grad[0][0]*dx[0] + grad[0][1]*dx[1] + grad[0][2]*dx[2],
		grad[1][0]*dx[0] + grad[1][1]*dx[1] + grad[1][2]*dx[2],
	}
	return InterpEdge(f, df)
}

// InterpEdge builds the 4 Hermite coefficients of a cubic edge from the
// corner values f=(f0,f1) and corner derivatives df=(df0,df1) (each the
// directional derivative of the underlying field along x1-x0, already
// scaled by the edge length as the caller requires). c[0]=f0, c[3]=f1, and
// the two interior control points are placed so the polynomial's endpoint
// slopes match df0 and df1 exactly:
//
//	c[1] = f0 + df0/3
//	c[2] = f1 - df1/3
func InterpEdge(f [2]float64, df [2]float64) [4]float64 {
	return [4]float64{
		f[0],
		f[0] + df[0]/3,
		f[1] - df[1]/3,
		f[1],
	}
}
