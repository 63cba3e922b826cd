// Copyright 2024 The Goeik Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package slowness defines the scalar slowness field s(x) that every local
// update kernel routes travel-time evaluation through, and a name-keyed
// allocator registry mirroring msolid's Model/GetModel pattern so a
// config-driven driver can select a field by name.
package slowness

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
)

// Field computes the slowness s(x) >= 0 and its gradient at a point x given
// in the ambient coordinates of the grid or mesh being solved (len(x)==2 for
// Grid2, len(x)==3 for Mesh3).
type Field interface {
	Init(prms fun.Prms) error   // initialises field parameters
	S(x []float64) float64      // s(x)
	GradS(x []float64) []float64 // ∇s(x), same length as x
}

// Constant is the slowness field s(x) = Value everywhere, with ∇s = 0. It is
// the only field exercised end-to-end; variable-s fields are a Non-goal, but
// the registry seam below is real so adding one does not require surgery on
// update.Tri/update.Tetra.
type Constant struct {
	Value float64
}

// Init reads the "value" parameter, defaulting to 1 if absent.
func (c *Constant) Init(prms fun.Prms) error {
	c.Value = 1
	for _, p := range prms {
		if p.N == "value" {
			c.Value = p.V
		}
	}
	if c.Value <= 0 {
		return chk.Err("slowness.Constant: value must be positive: got %v", c.Value)
	}
	return nil
}

func (c *Constant) S(x []float64) float64 { return c.Value }

func (c *Constant) GradS(x []float64) []float64 {
	g := make([]float64, len(x))
	return g
}

// allocators holds all available slowness fields; name => allocator.
var allocators = map[string]func() Field{}

// Register makes a named field constructor available to Get. Called from
// init() in the file defining each field, the way msolid's model files
// register themselves into msolid.allocators.
func Register(name string, alloc func() Field) {
	allocators[name] = alloc
}

// Get allocates a new field by name.
func Get(name string) (field Field, existent bool) {
	alloc, ok := allocators[name]
	if !ok {
		return nil, false
	}
	return alloc(), true
}

func init() {
	Register("constant", func() Field { return new(Constant) })
}
