// Copyright 2016 The Gohgl Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"github.com/cpmech/gohgl/mdl/fluid"
	"github.com/cpmech/gohgl/mdl/friction"
	"github.com/cpmech/gohgl/pipe"
	"github.com/cpmech/gosl/fun/dbf"
)

// MissingFieldError reports a required configuration key that is absent
type MissingFieldError struct {
	Key string // dotted key; e.g. "pipes[0].D"
}

// Error implements error
func (o *MissingFieldError) Error() string {
	return "missing required configuration field " + o.Key
}

// Case holds everything needed to compute the profile of one pipe
type Case struct {
	Pipe   pipe.Pipe   // geometry and elevations of the pipe ends
	Fluid  fluid.Model // fluid properties
	Flow   pipe.Flow   // flow rate, inlet head and solver settings
	Assess *AssessData // nil if no assessment was requested
}

// Case extracts the data of the named pipe; an empty name selects the first pipe.
// The inlet head and elevation come from the "from" node; the outlet elevation
// comes from the "to" node.
func (o *Data) Case(name string) (c *Case, err error) {
	p, err := o.FindPipe(name)
	if err != nil {
		return
	}
	method, err := friction.ParseMethod(o.FrictionMethod)
	if err != nil {
		return
	}
	var fld fluid.Model
	if err = fld.Init(o.fluidPrms()); err != nil {
		return nil, err
	}
	var sol friction.Colebrook
	if err = sol.Init(o.solverPrms()); err != nil {
		return nil, err
	}
	A, B := o.node(p.From), o.node(p.To)
	c = &Case{
		Pipe: pipe.Pipe{
			Name: p.Name,
			L:    *p.L,
			D:    *p.D,
			Eps:  p.Eps,
			K:    p.K,
			Zin:  A.Z,
			Zout: B.Z,
		},
		Fluid: fld,
		Flow: pipe.Flow{
			Q:      *p.Q,
			Hin:    A.Head,
			Grav:   *o.Grav,
			Npts:   o.Npts,
			Method: method,
			Solver: sol,
		},
		Assess: o.Assess,
	}
	return
}

// fluidPrms returns the fluid parameters
func (o *Data) fluidPrms() dbf.Params {
	return dbf.Params{
		&dbf.P{N: "rho", V: *o.Fluid.Rho},
		&dbf.P{N: "mu", V: *o.Fluid.Mu},
	}
}

// solverPrms returns the parameters given in the solver block; absent keys keep the defaults
func (o *Data) solverPrms() (prms dbf.Params) {
	if o.Solver == nil {
		return
	}
	if o.Solver.Tol != nil {
		prms = append(prms, &dbf.P{N: "tol", V: *o.Solver.Tol})
	}
	if o.Solver.NmaxIt != nil {
		prms = append(prms, &dbf.P{N: "nmaxit", V: float64(*o.Solver.NmaxIt)})
	}
	return
}

// node returns the node data; empty nodes have zero head and elevation
func (o *Data) node(name string) NodeData {
	if n := o.Nodes[name]; n != nil {
		return *n
	}
	return NodeData{}
}
