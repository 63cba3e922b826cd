// Copyright 2024 The Goeik Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package slowness

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
)

func TestConstantDefaultsToOne(tst *testing.T) {
	chk.PrintTitle("slowness: constant default")

	f, ok := Get("constant")
	if !ok {
		tst.Fatal("constant field not registered")
	}
	if err := f.Init(nil); err != nil {
		tst.Fatal(err)
	}
	chk.Float64(tst, "s(x)", 1e-15, f.S([]float64{1, 2, 3}), 1)
	g := f.GradS([]float64{1, 2, 3})
	for i, gi := range g {
		chk.Float64(tst, "grad s", 1e-15, gi, 0)
		_ = i
	}
}

func TestConstantHonoursValueParameter(tst *testing.T) {
	chk.PrintTitle("slowness: constant value param")

	f, _ := Get("constant")
	prms := fun.Prms{&fun.Prm{N: "value", V: 2.5}}
	if err := f.Init(prms); err != nil {
		tst.Fatal(err)
	}
	chk.Float64(tst, "s(x)", 1e-15, f.S([]float64{0, 0}), 2.5)
}

func TestConstantRejectsNonPositiveValue(tst *testing.T) {
	chk.PrintTitle("slowness: constant rejects non-positive value")

	f, _ := Get("constant")
	prms := fun.Prms{&fun.Prm{N: "value", V: 0}}
	if err := f.Init(prms); err == nil {
		tst.Fatal("expected error for non-positive value")
	}
}

func TestGetUnknownFieldFails(tst *testing.T) {
	chk.PrintTitle("slowness: unknown field")

	_, ok := Get("nonexistent")
	if ok {
		tst.Fatal("expected ok=false for unregistered field name")
	}
}
