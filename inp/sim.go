// Copyright 2016 The Gohgl Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from YAML or JSON pipe configuration files
package inp

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/cpmech/gosl/chk"
	"gopkg.in/yaml.v3"
)

// default values
const (
	DefaultGrav   = 9.81   // gravity acceleration [m/s²]
	DefaultMethod = "auto" // friction method
	DefaultNpts   = 50     // number of sample points along a pipe
	DefaultName   = "P1"   // name of unnamed pipes
)

// FluidData holds the fluid properties
type FluidData struct {
	Rho *float64 `json:"rho" yaml:"rho"` // intrinsic density [kg/m³]
	Mu  *float64 `json:"mu" yaml:"mu"`   // dynamic viscosity [Pa・s]
}

// NodeData holds data of a pipe end
type NodeData struct {
	Head float64 `json:"head" yaml:"head"` // total head [m]; used at the upstream node
	Z    float64 `json:"z" yaml:"z"`       // elevation [m]
}

// PipeData holds pipe data
type PipeData struct {
	Name string   `json:"name" yaml:"name"` // name of pipe; default = P1
	L    *float64 `json:"L" yaml:"L"`       // length [m]
	D    *float64 `json:"D" yaml:"D"`       // internal diameter [m]
	Eps  float64  `json:"eps" yaml:"eps"`   // absolute roughness [m]
	K    float64  `json:"K" yaml:"K"`       // aggregate minor-loss coefficient
	From string   `json:"from" yaml:"from"` // upstream node
	To   string   `json:"to" yaml:"to"`     // downstream node
	Q    *float64 `json:"Q" yaml:"Q"`       // flow rate [m³/s]
}

// SolverData holds data for the friction factor solver
type SolverData struct {
	Tol    *float64 `json:"tol" yaml:"tol"`       // relative tolerance; nil means default
	NmaxIt *int     `json:"nmaxit" yaml:"nmaxit"` // number of max iterations; nil means default
}

// AssessData holds data for the pressure-head assessment
type AssessData struct {
	Patm float64 `json:"patm" yaml:"patm"` // absolute atmospheric pressure [Pa]
	Pvap float64 `json:"pvap" yaml:"pvap"` // absolute vapour pressure [Pa]
}

// Data holds all configuration data
type Data struct {

	// input data
	Fluid          *FluidData           `json:"fluid" yaml:"fluid"`                     // fluid properties
	Grav           *float64             `json:"g" yaml:"g"`                             // gravity acceleration; default = 9.81
	Nodes          map[string]*NodeData `json:"nodes" yaml:"nodes"`                     // pipe ends
	Pipes          []*PipeData          `json:"pipes" yaml:"pipes"`                     // pipes
	FrictionMethod string               `json:"friction_method" yaml:"friction_method"` // "auto", "laminar" or "turbulent"
	Npts           int                  `json:"npts" yaml:"npts"`                       // number of sample points; default = 50
	Solver         *SolverData          `json:"solver" yaml:"solver"`                   // friction factor solver
	Assess         *AssessData          `json:"assess" yaml:"assess"`                   // pressure-head assessment; nil = off

	// derived
	Filename string // filename with path; empty if decoded from memory
}

// ReadData reads a configuration file. The format is selected by the extension:
// .json is decoded as JSON; anything else as YAML.
func ReadData(filename string) (o *Data, err error) {
	b, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("cannot read configuration file %q: %w", filename, err)
	}
	o, err = Decode(b, filepath.Ext(filename))
	if err != nil {
		return nil, fmt.Errorf("cannot load configuration file %q: %w", filename, err)
	}
	o.Filename = filename
	return
}

// Decode decodes configuration data, sets defaults and checks required fields
//
//	Input:
//	 ext -- extension indicating the format; e.g. ".json", ".yaml"
func Decode(b []byte, ext string) (o *Data, err error) {
	o = new(Data)
	switch strings.ToLower(ext) {
	case ".json":
		err = json.Unmarshal(b, o)
	default:
		err = yaml.Unmarshal(b, o)
	}
	if err != nil {
		return nil, err
	}
	o.SetDefault()
	if err = o.Check(); err != nil {
		return nil, err
	}
	return
}

// SetDefault sets default values
func (o *Data) SetDefault() {
	if o.Grav == nil {
		g := DefaultGrav
		o.Grav = &g
	}
	if o.FrictionMethod == "" {
		o.FrictionMethod = DefaultMethod
	}
	if o.Npts == 0 {
		o.Npts = DefaultNpts
	}
	if o.Solver == nil {
		o.Solver = new(SolverData)
	}
	for _, p := range o.Pipes {
		if p != nil && p.Name == "" {
			p.Name = DefaultName
		}
	}
}

// Check checks that all required fields are present
func (o *Data) Check() error {
	if o.Fluid == nil {
		return &MissingFieldError{Key: "fluid"}
	}
	if o.Fluid.Rho == nil {
		return &MissingFieldError{Key: "fluid.rho"}
	}
	if o.Fluid.Mu == nil {
		return &MissingFieldError{Key: "fluid.mu"}
	}
	if len(o.Pipes) == 0 {
		return &MissingFieldError{Key: "pipes"}
	}
	for i, p := range o.Pipes {
		key := func(k string) string { return "pipes[" + strconv.Itoa(i) + "]." + k }
		if p == nil {
			return &MissingFieldError{Key: "pipes[" + strconv.Itoa(i) + "]"}
		}
		switch {
		case p.L == nil:
			return &MissingFieldError{Key: key("L")}
		case p.D == nil:
			return &MissingFieldError{Key: key("D")}
		case p.Q == nil:
			return &MissingFieldError{Key: key("Q")}
		case p.From == "":
			return &MissingFieldError{Key: key("from")}
		case p.To == "":
			return &MissingFieldError{Key: key("to")}
		}
		if _, ok := o.Nodes[p.From]; !ok {
			return &MissingFieldError{Key: "nodes." + p.From}
		}
		if _, ok := o.Nodes[p.To]; !ok {
			return &MissingFieldError{Key: "nodes." + p.To}
		}
	}
	return nil
}

// FindPipe returns the pipe with the given name; an empty name selects the first pipe
func (o *Data) FindPipe(name string) (*PipeData, error) {
	if name == "" {
		return o.Pipes[0], nil
	}
	for _, p := range o.Pipes {
		if p.Name == name {
			return p, nil
		}
	}
	return nil, chk.Err("cannot find pipe named %q", name)
}
