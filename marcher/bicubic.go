// Copyright 2024 The Goeik Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package marcher

import "github.com/cpmech/goeik/jet"

// h00,h10,h01,h11 are the cubic Hermite basis functions on [0,1], the same
// family bb.Edge evaluates via De Casteljau form; the bicubic patch below
// tensors them directly because the cross-derivative term (fxy) has no
// single-simplex BB analogue to compose from.
func h00(t float64) float64 { return 2*t*t*t - 3*t*t + 1 }
func h10(t float64) float64 { return t*t*t - 2*t*t + t }
func h01(t float64) float64 { return -2*t*t*t + 3*t*t }
func h11(t float64) float64 { return t*t*t - t*t }

func dh00(t float64) float64 { return 6*t*t - 6*t }
func dh10(t float64) float64 { return 3*t*t - 4*t + 1 }
func dh01(t float64) float64 { return -6*t*t + 6*t }
func dh11(t float64) float64 { return 3*t*t - 2*t }

// bicubicSum evaluates the full bicubic sum over the four corners, where
// Hv0/Hv1 are the value-basis functions of corner index 0 and 1 and hdOf
// supplies the matching derivative-basis functions.
func bicubicSum(c [4]jet.Jet2, h float64, t0, t1 float64,
	Hv0, Hv1 func(float64) float64) float64 {

	f := [2][2]float64{{c[0].F, c[2].F}, {c[1].F, c[3].F}}
	fx := [2][2]float64{{c[0].Fx, c[2].Fx}, {c[1].Fx, c[3].Fx}}
	fy := [2][2]float64{{c[0].Fy, c[2].Fy}, {c[1].Fy, c[3].Fy}}
	fxy := [2][2]float64{{c[0].Fxy, c[2].Fxy}, {c[1].Fxy, c[3].Fxy}}

	Hv := [2]func(float64) float64{Hv0, Hv1}
	var sum float64
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			sum += f[i][j] * Hv[i](t0) * Hv[j](t1)
			sum += h * fx[i][j] * hdOf(i)(t0) * Hv[j](t1)
			sum += h * fy[i][j] * Hv[i](t0) * hdOf(j)(t1)
			sum += h * h * fxy[i][j] * hdOf(i)(t0) * hdOf(j)(t1)
		}
	}
	return sum
}

func hdOf(k int) func(float64) float64 {
	if k == 0 {
		return h10
	}
	return h11
}

func hvOf(k int) func(float64) float64 {
	if k == 0 {
		return h00
	}
	return h01
}

// bicubic evaluates T at local coordinates (t0,t1) in [0,1]^2. Corner
// layout c = [(i,j), (i+1,j), (i,j+1), (i+1,j+1)], matching
// geom.Grid.CellCorners.
func bicubic(c [4]jet.Jet2, h, t0, t1 float64) float64 {
	return bicubicSum(c, h, t0, t1, h00, h01)
}

func bicubicDx(c [4]jet.Jet2, h, t0, t1 float64) float64 {
	f := [2][2]float64{{c[0].F, c[2].F}, {c[1].F, c[3].F}}
	fx := [2][2]float64{{c[0].Fx, c[2].Fx}, {c[1].Fx, c[3].Fx}}
	fy := [2][2]float64{{c[0].Fy, c[2].Fy}, {c[1].Fy, c[3].Fy}}
	fxy := [2][2]float64{{c[0].Fxy, c[2].Fxy}, {c[1].Fxy, c[3].Fxy}}

	var sum float64
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			sum += f[i][j] * dhvOf(i)(t0) * hvOf(j)(t1)
			sum += h * fx[i][j] * dhdOf(i)(t0) * hvOf(j)(t1)
			sum += h * fy[i][j] * dhvOf(i)(t0) * hdOf(j)(t1)
			sum += h * h * fxy[i][j] * dhdOf(i)(t0) * hdOf(j)(t1)
		}
	}
	return sum / h
}

func bicubicDy(c [4]jet.Jet2, h, t0, t1 float64) float64 {
	f := [2][2]float64{{c[0].F, c[2].F}, {c[1].F, c[3].F}}
	fx := [2][2]float64{{c[0].Fx, c[2].Fx}, {c[1].Fx, c[3].Fx}}
	fy := [2][2]float64{{c[0].Fy, c[2].Fy}, {c[1].Fy, c[3].Fy}}
	fxy := [2][2]float64{{c[0].Fxy, c[2].Fxy}, {c[1].Fxy, c[3].Fxy}}

	var sum float64
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			sum += f[i][j] * hvOf(i)(t0) * dhvOf(j)(t1)
			sum += h * fx[i][j] * hdOf(i)(t0) * dhvOf(j)(t1)
			sum += h * fy[i][j] * hvOf(i)(t0) * dhdOf(j)(t1)
			sum += h * h * fxy[i][j] * hdOf(i)(t0) * dhdOf(j)(t1)
		}
	}
	return sum / h
}

func bicubicDxy(c [4]jet.Jet2, h, t0, t1 float64) float64 {
	f := [2][2]float64{{c[0].F, c[2].F}, {c[1].F, c[3].F}}
	fx := [2][2]float64{{c[0].Fx, c[2].Fx}, {c[1].Fx, c[3].Fx}}
	fy := [2][2]float64{{c[0].Fy, c[2].Fy}, {c[1].Fy, c[3].Fy}}
	fxy := [2][2]float64{{c[0].Fxy, c[2].Fxy}, {c[1].Fxy, c[3].Fxy}}

	var sum float64
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			sum += f[i][j] * dhvOf(i)(t0) * dhvOf(j)(t1)
			sum += h * fx[i][j] * dhdOf(i)(t0) * dhvOf(j)(t1)
			sum += h * fy[i][j] * dhvOf(i)(t0) * dhdOf(j)(t1)
			sum += h * h * fxy[i][j] * dhdOf(i)(t0) * dhdOf(j)(t1)
		}
	}
	return sum / (h * h)
}

func dhvOf(k int) func(float64) float64 {
	if k == 0 {
		return dh00
	}
	return dh01
}

func dhdOf(k int) func(float64) float64 {
	if k == 0 {
		return dh10
	}
	return dh11
}
