// Copyright 2024 The Goeik Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/stretchr/testify/require"
)

func writeConfig(tst *testing.T, body string) string {
	dir := tst.TempDir()
	path := filepath.Join(dir, "scenario.json")
	require.NoError(tst, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestReadConfigGrid(tst *testing.T) {
	chk.PrintTitle("ReadConfigGrid")

	path := writeConfig(tst, `{
		"desc": "point source",
		"grid": {"shape": [11, 11], "xymin": [0, 0], "h": 0.1},
		"slowness": {"name": "constant", "prms": [{"n": "value", "v": 2}]},
		"sources": [{"l": 60, "t": 0}]
	}`)

	cfg, err := ReadConfig(path)
	require.NoError(tst, err)
	require.NotNil(tst, cfg.Grid)
	require.Nil(tst, cfg.Mesh)
	require.Equal(tst, [2]int{11, 11}, cfg.Grid.Shape)
	require.Len(tst, cfg.Sources, 1)

	field, err := cfg.Field()
	require.NoError(tst, err)
	chk.Float64(tst, "s", 1e-15, field.S([]float64{0, 0}), 2)

	g, err := cfg.BuildGrid()
	require.NoError(tst, err)
	require.Equal(tst, 121, g.NumNodes())

	_, err = cfg.BuildMesh()
	require.Error(tst, err)
}

func TestReadConfigMesh(tst *testing.T) {
	chk.PrintTitle("ReadConfigMesh")

	path := writeConfig(tst, `{
		"mesh": {"fixture": "octant"},
		"sources": [{"l": 0, "t": 0}]
	}`)

	cfg, err := ReadConfig(path)
	require.NoError(tst, err)
	require.NotNil(tst, cfg.Mesh)
	require.Equal(tst, "octant", cfg.Mesh.Fixture)

	field, err := cfg.Field()
	require.NoError(tst, err)
	chk.Float64(tst, "s", 1e-15, field.S([]float64{1, 1, 1}), 1)

	m, err := cfg.BuildMesh()
	require.NoError(tst, err)
	require.Equal(tst, 19, m.NumVerts())

	_, err = cfg.BuildGrid()
	require.Error(tst, err)
}

func TestReadConfigRejectsMissingGeometry(tst *testing.T) {
	chk.PrintTitle("ReadConfigRejectsMissingGeometry")

	path := writeConfig(tst, `{"sources": [{"l": 0}]}`)
	_, err := ReadConfig(path)
	require.Error(tst, err)
}

func TestReadConfigRejectsBothGeometries(tst *testing.T) {
	chk.PrintTitle("ReadConfigRejectsBothGeometries")

	path := writeConfig(tst, `{
		"grid": {"shape": [3, 3], "xymin": [0, 0], "h": 1},
		"mesh": {"fixture": "octant"},
		"sources": [{"l": 0}]
	}`)
	_, err := ReadConfig(path)
	require.Error(tst, err)
}

func TestReadConfigRejectsNoSources(tst *testing.T) {
	chk.PrintTitle("ReadConfigRejectsNoSources")

	path := writeConfig(tst, `{"grid": {"shape": [3, 3], "xymin": [0, 0], "h": 1}}`)
	_, err := ReadConfig(path)
	require.Error(tst, err)
}

func TestReadConfigRejectsUnknownSlowness(tst *testing.T) {
	chk.PrintTitle("ReadConfigRejectsUnknownSlowness")

	path := writeConfig(tst, `{
		"grid": {"shape": [3, 3], "xymin": [0, 0], "h": 1},
		"slowness": {"name": "nonexistent"},
		"sources": [{"l": 0}]
	}`)
	cfg, err := ReadConfig(path)
	require.NoError(tst, err)
	_, err = cfg.Field()
	require.Error(tst, err)
}

func TestReadConfigFailsOnMissingFile(tst *testing.T) {
	chk.PrintTitle("ReadConfigFailsOnMissingFile")

	_, err := ReadConfig("/nonexistent/path/scenario.json")
	require.Error(tst, err)
}
