// Copyright 2016 The Gohgl Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/cpmech/gohgl/mdl/friction"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadDataYAML(t *testing.T) {
	dat, err := ReadData("../examples/single_pipe.yaml")
	require.NoError(t, err)
	assert.Equal(t, "../examples/single_pipe.yaml", dat.Filename)

	c, err := dat.Case("")
	require.NoError(t, err)
	assert.Equal(t, "P1", c.Pipe.Name)
	assert.Equal(t, 100.0, c.Pipe.L)
	assert.Equal(t, 0.2, c.Pipe.D)
	assert.Equal(t, 0.00015, c.Pipe.Eps)
	assert.Equal(t, 0.5, c.Pipe.K)
	assert.Equal(t, 0.0, c.Pipe.Zin)
	assert.Equal(t, 0.0, c.Pipe.Zout)
	assert.Equal(t, 1000.0, c.Fluid.Rho)
	assert.Equal(t, 0.001, c.Fluid.Mu)
	assert.Equal(t, 0.05, c.Flow.Q)
	assert.Equal(t, 50.0, c.Flow.Hin)
	assert.Equal(t, 9.81, c.Flow.Grav)
	assert.Equal(t, 50, c.Flow.Npts)
	assert.Equal(t, friction.MethodAuto, c.Flow.Method)
	require.NotNil(t, c.Assess)
	assert.Equal(t, 101325.0, c.Assess.Patm)
	assert.Equal(t, 2339.0, c.Assess.Pvap)
}

func TestReadDataJSON(t *testing.T) {
	dat, err := ReadData("../examples/siphon.json")
	require.NoError(t, err)

	c, err := dat.Case("S1")
	require.NoError(t, err)
	assert.Equal(t, friction.MethodTurbulent, c.Flow.Method)
	assert.Equal(t, 1e-8, c.Flow.Solver.Tol)
	assert.Equal(t, 100, c.Flow.Solver.NmaxIt)
	assert.Equal(t, 45.0, c.Flow.Hin)
	assert.Equal(t, 48.0, c.Pipe.Zout)
	assert.Equal(t, DefaultGrav, c.Flow.Grav)
	assert.Equal(t, DefaultNpts, c.Flow.Npts)
}

func TestDecodeDefaults(t *testing.T) {
	src := `
fluid: {rho: 1000, mu: 0.001}
nodes:
  A: {head: 10}
  B:
pipes:
  - {L: 10, D: 0.1, from: A, to: B, Q: 0.01}
`
	dat, err := Decode([]byte(src), ".yml")
	require.NoError(t, err)
	assert.Equal(t, DefaultGrav, *dat.Grav)
	assert.Equal(t, DefaultMethod, dat.FrictionMethod)
	assert.Equal(t, DefaultNpts, dat.Npts)
	assert.Nil(t, dat.Assess)

	c, err := dat.Case("")
	require.NoError(t, err)
	assert.Equal(t, DefaultName, c.Pipe.Name)
	assert.Equal(t, 0.0, c.Pipe.Eps)
	assert.Equal(t, 0.0, c.Pipe.K)
	assert.Equal(t, 10.0, c.Flow.Hin)
	assert.Equal(t, 0.0, c.Pipe.Zin)
	assert.Equal(t, 0.0, c.Pipe.Zout)
	assert.Equal(t, friction.Colebrook{Tol: friction.DefaultTol, NmaxIt: friction.DefaultNmaxIt}, c.Flow.Solver)
}

func TestDecodeMissingField(t *testing.T) {
	cases := []struct {
		name string
		src  string
		key  string
	}{
		{"no fluid", `{"pipes": []}`, "fluid"},
		{"no rho", `{"fluid": {"mu": 0.001}}`, "fluid.rho"},
		{"no mu", `{"fluid": {"rho": 1000}}`, "fluid.mu"},
		{"no pipes", `{"fluid": {"rho": 1000, "mu": 0.001}}`, "pipes"},
		{"no D", `{"fluid": {"rho": 1000, "mu": 0.001}, "pipes": [{"L": 1, "Q": 1, "from": "A", "to": "B"}]}`, "pipes[0].D"},
		{"no L", `{"fluid": {"rho": 1000, "mu": 0.001}, "pipes": [{"D": 1, "Q": 1, "from": "A", "to": "B"}]}`, "pipes[0].L"},
		{"no Q", `{"fluid": {"rho": 1000, "mu": 0.001}, "pipes": [{"L": 1, "D": 1, "from": "A", "to": "B"}]}`, "pipes[0].Q"},
		{"no from", `{"fluid": {"rho": 1000, "mu": 0.001}, "pipes": [{"L": 1, "D": 1, "Q": 1, "to": "B"}]}`, "pipes[0].from"},
		{"no node", `{"fluid": {"rho": 1000, "mu": 0.001}, "nodes": {"A": {}}, "pipes": [{"L": 1, "D": 1, "Q": 1, "from": "A", "to": "B"}]}`, "nodes.B"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Decode([]byte(tc.src), ".json")
			var merr *MissingFieldError
			require.True(t, errors.As(err, &merr), "expected MissingFieldError, got %v", err)
			assert.Equal(t, tc.key, merr.Key)
			assert.Contains(t, err.Error(), tc.key)
		})
	}
}

func TestReadDataErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := ReadData(filepath.Join(dir, "nothing.yaml"))
	require.Error(t, err)

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"fluid": `), 0o644))
	_, err = ReadData(bad)
	require.Error(t, err)

	missing := filepath.Join(dir, "missing.yaml")
	require.NoError(t, os.WriteFile(missing, []byte("fluid: {rho: 1000}\n"), 0o644))
	_, err = ReadData(missing)
	var merr *MissingFieldError
	require.True(t, errors.As(err, &merr))
	assert.Equal(t, "fluid.mu", merr.Key)
}

func TestCaseErrors(t *testing.T) {
	dat, err := ReadData("../examples/single_pipe.yaml")
	require.NoError(t, err)

	_, err = dat.Case("P9")
	require.Error(t, err)

	dat.FrictionMethod = "blasius"
	_, err = dat.Case("")
	require.Error(t, err)
}

func TestCaseSolver(t *testing.T) {
	base := `
fluid: {rho: 1000, mu: 0.001}
nodes: {A: {head: 10}, B: {}}
pipes:
  - {L: 10, D: 0.1, from: A, to: B, Q: 0.01}
`
	cases := []struct {
		name   string
		solver string
		ok     bool
		tol    float64
		nmaxit int
	}{
		{"tol only", "solver: {tol: 1e-9}", true, 1e-9, friction.DefaultNmaxIt},
		{"nmaxit only", "solver: {nmaxit: 7}", true, friction.DefaultTol, 7},
		{"empty block", "solver: {}", true, friction.DefaultTol, friction.DefaultNmaxIt},
		{"negative tol", "solver: {tol: -1}", false, 0, 0},
		{"zero tol", "solver: {tol: 0}", false, 0, 0},
		{"zero nmaxit", "solver: {nmaxit: 0}", false, 0, 0},
		{"negative both", "solver: {tol: -1, nmaxit: -5}", false, 0, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			dat, err := Decode([]byte(base+tc.solver+"\n"), ".yaml")
			require.NoError(t, err)
			c, err := dat.Case("")
			if !tc.ok {
				require.Error(t, err)
				assert.Nil(t, c)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.tol, c.Flow.Solver.Tol)
			assert.Equal(t, tc.nmaxit, c.Flow.Solver.NmaxIt)
		})
	}
}
