// Copyright 2016 The Gohgl Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package pipe implements the steady-state hydraulic and energy grade lines along a
// single pipe of uniform diameter
package pipe

import (
	"math"

	"github.com/cpmech/gohgl/mdl/fluid"
	"github.com/cpmech/gohgl/mdl/friction"
	"github.com/cpmech/gosl/io"
)

// Pipe holds the geometry of a pipe segment
type Pipe struct {
	Name string  // identifier; e.g. P1
	L    float64 // length [m]
	D    float64 // internal diameter [m]
	Eps  float64 // absolute roughness [m]
	K    float64 // aggregate minor-loss coefficient [-]
	Zin  float64 // inlet elevation [m]
	Zout float64 // outlet elevation [m]
}

// Flow holds the steady flow condition imposed on a pipe
type Flow struct {
	Q      float64            // volumetric flow rate [m³/s]; the sign gives the direction
	Hin    float64            // inlet head [m]
	Grav   float64            // gravity acceleration [m/s²]
	Npts   int                // number of sample points along the pipe
	Method friction.Method    // regime selection
	Solver friction.Colebrook // turbulent friction factor solver; zero value means defaults
}

// String returns a short description of the pipe
func (o Pipe) String() string {
	return io.Sf("%s: L=%g D=%g ε=%g K=%g z=[%g, %g]", o.Name, o.L, o.D, o.Eps, o.K, o.Zin, o.Zout)
}

// Area returns the cross-sectional area A = π・D²/4
func (o Pipe) Area() float64 {
	return math.Pi * o.D * o.D / 4.0
}

// RelRough returns the relative roughness ε/D
func (o Pipe) RelRough() float64 {
	return o.Eps / o.D
}

// Check checks the geometry
func (o Pipe) Check() error {
	if err := positive("L", o.L); err != nil {
		return err
	}
	if err := positive("D", o.D); err != nil {
		return err
	}
	if err := nonNegative("eps", o.Eps); err != nil {
		return err
	}
	if err := nonNegative("K", o.K); err != nil {
		return err
	}
	if err := finite("z_in", o.Zin); err != nil {
		return err
	}
	return finite("z_out", o.Zout)
}

// Check checks the flow condition
func (o Flow) Check() error {
	if err := finite("Q", o.Q); err != nil {
		return err
	}
	if err := finite("H_in", o.Hin); err != nil {
		return err
	}
	if err := positive("g", o.Grav); err != nil {
		return err
	}
	if o.Npts < 2 {
		return &InputError{Field: "npts", Value: float64(o.Npts), Rule: ">= 2"}
	}
	return nil
}

// CheckFluid checks the fluid properties
func CheckFluid(fld fluid.Model) error {
	if err := positive("rho", fld.Rho); err != nil {
		return err
	}
	return positive("mu", fld.Mu)
}
