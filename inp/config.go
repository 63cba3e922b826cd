// Copyright 2024 The Goeik Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package inp reads scenario definitions from JSON files: grid or mesh
// geometry, the slowness field to march through, and the sources to seed
// the frontier from.
package inp

import (
	"encoding/json"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/io"

	"github.com/cpmech/goeik/geom"
	"github.com/cpmech/goeik/slowness"
)

// GridData describes a uniform 2D grid domain.
type GridData struct {
	Shape [2]int     `json:"shape"` // number of nodes along each axis
	XYMin [2]float64 `json:"xymin"` // coordinates of node (0,0)
	H     float64    `json:"h"`     // node spacing
}

// MeshData names a mesh fixture to build. Scenario JSON files reference
// fixtures by name rather than embedding raw vertex/cell arrays; "octant"
// is the only fixture this package knows how to build today.
type MeshData struct {
	Fixture string `json:"fixture"`
}

// SourceData places a single seed point in the domain. L is the node or
// vertex label to seed; Boundary marks it excluded from propagation
// instead of seeded with a travel time.
type SourceData struct {
	L        int     `json:"l"`
	T        float64 `json:"t"`
	Boundary bool    `json:"boundary"`
}

// SlownessData names a registered slowness.Field and its parameters.
type SlownessData struct {
	Name string   `json:"name"`
	Prms fun.Prms `json:"prms"`
}

// Config holds a complete scenario: exactly one of Grid or Mesh must be
// set, a slowness field, and the sources to seed the march from.
type Config struct {
	Desc     string        `json:"desc"`
	Grid     *GridData     `json:"grid"`
	Mesh     *MeshData     `json:"mesh"`
	Slowness SlownessData  `json:"slowness"`
	Sources  []*SourceData `json:"sources"`
}

// ReadConfig reads and validates a scenario from a JSON file.
func ReadConfig(path string) (cfg *Config, err error) {
	b, err := io.ReadFile(path)
	if err != nil {
		return nil, chk.Err("inp: cannot read config file %q: %v", path, err)
	}
	cfg = new(Config)
	if err = json.Unmarshal(b, cfg); err != nil {
		return nil, chk.Err("inp: cannot parse config file %q: %v", path, err)
	}
	if err = cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Grid == nil && c.Mesh == nil {
		return chk.Err("inp: config must set either \"grid\" or \"mesh\"")
	}
	if c.Grid != nil && c.Mesh != nil {
		return chk.Err("inp: config cannot set both \"grid\" and \"mesh\"")
	}
	if len(c.Sources) == 0 {
		return chk.Err("inp: config must list at least one source")
	}
	if c.Slowness.Name == "" {
		c.Slowness.Name = "constant"
	}
	return nil
}

// BuildGrid builds the geom.Grid described by the config. It is an error
// to call this when the config describes a mesh scenario instead.
func (c *Config) BuildGrid() (*geom.Grid, error) {
	if c.Grid == nil {
		return nil, chk.Err("inp: config has no grid section")
	}
	return geom.NewGrid(c.Grid.Shape, c.Grid.XYMin, c.Grid.H), nil
}

// BuildMesh builds the geom.Mesh named by the config's mesh fixture. It is
// an error to call this when the config describes a grid scenario instead.
func (c *Config) BuildMesh() (geom.Mesh, error) {
	if c.Mesh == nil {
		return nil, chk.Err("inp: config has no mesh section")
	}
	switch c.Mesh.Fixture {
	case "octant":
		return geom.OctantSphereMesh(), nil
	default:
		return nil, chk.Err("inp: unknown mesh fixture %q", c.Mesh.Fixture)
	}
}

// Field builds and initialises the slowness.Field named by the config.
func (c *Config) Field() (slowness.Field, error) {
	field, ok := slowness.Get(c.Slowness.Name)
	if !ok {
		return nil, chk.Err("inp: unknown slowness field %q", c.Slowness.Name)
	}
	if err := field.Init(c.Slowness.Prms); err != nil {
		return nil, chk.Err("inp: cannot initialise slowness field %q: %v", c.Slowness.Name, err)
	}
	return field, nil
}
