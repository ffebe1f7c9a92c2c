// Copyright 2016 The Gohgl Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements the output of results: JSON summaries and plots of grade lines
package out

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/cpmech/gohgl/mdl/fluid"
	"github.com/cpmech/gohgl/pipe"
	"github.com/cpmech/gosl/chk"
)

// FluidResults holds the fluid properties written with the results
type FluidResults struct {
	Rho float64 `json:"rho"`
	Mu  float64 `json:"mu"`
}

// AssessResults holds the pressure-head assessment written with the results
type AssessResults struct {
	Pmin           float64 `json:"p_min_m"`
	Xmin           float64 `json:"x_min_m"`
	Margin         float64 `json:"cavitation_margin_m"`
	SubAtmospheric bool    `json:"sub_atmospheric"`
	Cavitation     bool    `json:"cavitation"`
}

// Results holds the summary of a pipe profile
type Results struct {
	Pipe       string         `json:"pipe"`
	Q          float64        `json:"Q_m3s"`
	V          float64        `json:"V_ms"`
	Hf         float64        `json:"hf_major_m"`
	Hm         float64        `json:"hm_minor_m"`
	Hin        float64        `json:"H_in_m"`
	Hout       float64        `json:"H_out_m"`
	Grav       float64        `json:"g"`
	Fluid      FluidResults   `json:"fluid"`
	Re         float64        `json:"Re"`
	F          float64        `json:"f"`
	Regime     string         `json:"regime"`
	Converged  bool           `json:"converged"`
	Iterations int            `json:"iterations"`
	Assess     *AssessResults `json:"assessment,omitempty"`
}

// NewResults collects the summary of a computed profile
func NewResults(name string, fld fluid.Model, flw pipe.Flow, prof *pipe.Profile, ass *pipe.Assessment) (o *Results) {
	o = &Results{
		Pipe:       name,
		Q:          flw.Q,
		V:          prof.V,
		Hf:         prof.Hf,
		Hm:         prof.Hm,
		Hin:        flw.Hin,
		Hout:       prof.Hout(),
		Grav:       flw.Grav,
		Fluid:      FluidResults{Rho: fld.Rho, Mu: fld.Mu},
		Re:         prof.Re,
		F:          prof.F,
		Regime:     prof.Regime.String(),
		Converged:  prof.Converged,
		Iterations: prof.Iterations,
	}
	if ass != nil {
		o.Assess = &AssessResults{
			Pmin:           ass.Pmin,
			Xmin:           ass.Xmin,
			Margin:         ass.Margin,
			SubAtmospheric: ass.SubAtmospheric,
			Cavitation:     ass.Cavitation,
		}
	}
	return
}

// ResultsPath returns the path of the results file corresponding to a configuration
// file; e.g. examples/single_pipe.yaml => examples/single_pipe_results.json
func ResultsPath(cfgPath string) string {
	return strings.TrimSuffix(cfgPath, filepath.Ext(cfgPath)) + "_results.json"
}

// Write writes the results as indented JSON, creating the directory if needed
func (o *Results) Write(filename string) (err error) {
	b, err := json.MarshalIndent(o, "", "  ")
	if err != nil {
		return chk.Err("cannot encode results:\n%v", err)
	}
	if dir := filepath.Dir(filename); dir != "" {
		if err = os.MkdirAll(dir, 0o755); err != nil {
			return
		}
	}
	return os.WriteFile(filename, append(b, '\n'), 0o644)
}

// ReadResults reads a results file
func ReadResults(filename string) (o *Results, err error) {
	b, err := os.ReadFile(filename)
	if err != nil {
		return
	}
	o = new(Results)
	err = json.Unmarshal(b, o)
	return
}
