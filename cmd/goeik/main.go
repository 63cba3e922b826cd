// Copyright 2024 The Goeik Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command goeik runs a fast-marching eikonal solve over a scenario
// described by a JSON config file and reports the travel time at every
// node or vertex.
package main

import (
	"flag"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/cpmech/goeik/inp"
	"github.com/cpmech/goeik/jet"
	"github.com/cpmech/goeik/marcher"
	"github.com/cpmech/goeik/slowness"
)

func main() {
	defer func() {
		if err := recover(); err != nil {
			io.Pfred("ERROR: %v\n", err)
		}
	}()

	flag.Parse()
	if len(flag.Args()) < 1 {
		chk.Panic("Please provide a scenario filename. Ex.: goeik scenario.json")
	}
	fnamepath := flag.Arg(0)

	io.Pf("goeik -- fast marching for the eikonal equation\n\n")

	cfg, err := inp.ReadConfig(fnamepath)
	if err != nil {
		chk.Panic("%v", err)
	}
	if cfg.Desc != "" {
		io.Pf("%s\n", cfg.Desc)
	}

	field, err := cfg.Field()
	if err != nil {
		chk.Panic("%v", err)
	}

	switch {
	case cfg.Grid != nil:
		runGrid(cfg, field)
	case cfg.Mesh != nil:
		runMesh(cfg, field)
	}
}

func runGrid(cfg *inp.Config, field slowness.Field) {
	g, err := cfg.BuildGrid()
	if err != nil {
		chk.Panic("%v", err)
	}
	m := marcher.NewGrid2(g, field)

	for _, src := range cfg.Sources {
		if src.Boundary {
			m.MakeBoundary(src.L)
			continue
		}
		m.AddTrial(src.L, jet.Jet2{F: src.T})
	}

	m.Solve()

	for l := 0; l < g.NumNodes(); l++ {
		xy := g.XY(l)
		io.Pf("node %4d  xy=(%8.4f,%8.4f)  T=%10.6f\n", l, xy[0], xy[1], m.Jet(l).F)
	}
}

func runMesh(cfg *inp.Config, field slowness.Field) {
	mesh, err := cfg.BuildMesh()
	if err != nil {
		chk.Panic("%v", err)
	}
	m := marcher.NewMesh3(mesh, field)

	for _, src := range cfg.Sources {
		if src.Boundary {
			m.MakeBoundary(src.L)
			continue
		}
		m.AddTrial(src.L, jet.Jet3{F: src.T})
	}

	m.Solve()

	for l := 0; l < mesh.NumVerts(); l++ {
		x := mesh.Vert(l)
		io.Pf("vert %4d  x=(%8.4f,%8.4f,%8.4f)  T=%10.6f\n", l, x[0], x[1], x[2], m.Jet(l).F)
	}
}
