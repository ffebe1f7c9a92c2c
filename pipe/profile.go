// Copyright 2016 The Gohgl Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pipe

import (
	"math"

	"github.com/cpmech/gohgl/mdl/fluid"
	"github.com/cpmech/gohgl/mdl/friction"
	"github.com/cpmech/gosl/utl"
)

// Profile holds the head profile along a pipe and the scalar results
//
//	Note: X, HGL, EGL and Z have Npts entries; X goes from 0 to L
type Profile struct {

	// sampled along the pipe
	X   []float64 // positions [m]
	HGL []float64 // hydraulic grade line [m]
	EGL []float64 // energy grade line [m]
	Z   []float64 // elevation [m]

	// scalars
	V  float64 // mean velocity [m/s]; signed as Q
	Re float64 // Reynolds number
	F  float64 // Darcy friction factor
	Hv float64 // velocity head V²/(2g) [m]
	Hf float64 // major (friction) loss over the whole length [m]
	Hm float64 // minor loss [m]; lumped at the inlet

	// friction factor solution
	Regime     friction.Regime // regime used to compute F
	Iterations int             // Colebrook iterations
	Converged  bool            // false if F is the last iterate of a non-converged solve
}

// Profile computes the hydraulic profile along the pipe for a steady flow
//
//	V      = Q / A
//	Re     = ρ・|V|・D / μ
//	hf     = f・(L/D)・V²/(2g)
//	hm     = K・V²/(2g)
//	HGL(x) = H_in - hm - hf・x/L
//	EGL(x) = HGL(x) + V²/(2g)
//	z(x)   = z_in + (z_out - z_in)・x/L
func (o Pipe) Profile(fld fluid.Model, flw Flow) (res *Profile, err error) {

	// check input
	if err = o.Check(); err != nil {
		return
	}
	if err = CheckFluid(fld); err != nil {
		return
	}
	if err = flw.Check(); err != nil {
		return
	}

	// kinematics
	res = new(Profile)
	res.V = flw.Q / o.Area()
	res.Re = fld.Reynolds(res.V, o.D)
	res.Hv = res.V * res.V / (2.0 * flw.Grav)

	// friction factor
	ff := flw.Solver.Factor(flw.Method, res.Re, o.RelRough())
	res.F = ff.F
	res.Regime = ff.Regime
	res.Iterations = ff.It
	res.Converged = ff.Converged

	// losses
	res.Hf = res.F * (o.L / o.D) * res.Hv
	res.Hm = o.K * res.Hv

	// sample
	n := flw.Npts
	res.X = utl.LinSpace(0, o.L, n)
	res.X[0], res.X[n-1] = 0, o.L
	res.HGL = make([]float64, n)
	res.EGL = make([]float64, n)
	res.Z = make([]float64, n)
	for i, x := range res.X {
		ξ := x / o.L
		res.HGL[i] = flw.Hin - res.Hm - res.Hf*ξ
		res.EGL[i] = res.HGL[i] + res.Hv
		res.Z[i] = o.Zin + (o.Zout-o.Zin)*ξ
	}
	return
}

// Hout returns the hydraulic grade at the outlet
func (o Profile) Hout() float64 {
	return o.HGL[len(o.HGL)-1]
}

// Loss returns the friction loss accumulated up to each sample point
func (o Profile) Loss() []float64 {
	L := o.X[len(o.X)-1]
	loss := make([]float64, len(o.X))
	for i, x := range o.X {
		loss[i] = o.Hf * x / L
	}
	return loss
}

// Finite tells whether all sampled values are finite
func (o Profile) Finite() bool {
	for _, arr := range [][]float64{o.X, o.HGL, o.EGL, o.Z} {
		for _, v := range arr {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return false
			}
		}
	}
	return true
}
