// Copyright 2016 The Gohgl Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package fluid implements the properties of incompressible Newtonian fluids
package fluid

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Model holds the properties of an incompressible Newtonian fluid
type Model struct {
	Rho float64 // intrinsic density [kg/m³]
	Mu  float64 // dynamic viscosity [Pa・s]
}

// Init initialises this structure
func (o *Model) Init(prms dbf.Params) (err error) {
	for _, p := range prms {
		switch p.N {
		case "rho":
			o.Rho = p.V
		case "mu":
			o.Mu = p.V
		default:
			return chk.Err("fluid: parameter named %q is incorrect\n", p.N)
		}
	}
	return
}

// GetPrms gets (an example of) parameters
//
//	Input:
//	 example -- returns water at 20°C; otherwise returns current parameters
func (o Model) GetPrms(example bool) dbf.Params {
	if example {
		return dbf.Params{
			&dbf.P{N: "rho", V: 998.2},   // [kg/m³]
			&dbf.P{N: "mu", V: 1.002e-3}, // [Pa・s]
		}
	}
	return dbf.Params{
		&dbf.P{N: "rho", V: o.Rho},
		&dbf.P{N: "mu", V: o.Mu},
	}
}

// Nu returns the kinematic viscosity ν = μ/ρ [m²/s]
func (o Model) Nu() float64 {
	return o.Mu / o.Rho
}

// Reynolds computes Re = ρ・|V|・D/μ
func (o Model) Reynolds(V, D float64) float64 {
	return o.Rho * math.Abs(V) * D / o.Mu
}
