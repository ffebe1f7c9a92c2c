// Copyright 2016 The Gohgl Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import "math"

// ColumnFluidPressure computes pressure (p) and intrinsic density (R) of a fluid
// at rest along a column with gravity (g). The solution is:
//
//	R    = R0 + C・(p - p0)
//	p(z) = p0 + (R0/C)・(exp(C・g・(H - z)) - 1)    if C > 0
//	p(z) = p0 + R0・g・(H - z)                      if C = 0
//
// where H is the elevation where (R0,p0) is known; e.g. the free surface of a reservoir
type ColumnFluidPressure struct {
	R0   float64 // intrinsic density corresponding to p0
	P0   float64 // pressure corresponding to R0
	C    float64 // compressibility coefficient; e.g. R0/Kbulk; zero means incompressible
	Grav float64 // gravity acceleration (positive constant)
	H    float64 // elevation where (R0,p0) is known
}

// Init initialises this structure
func (o *ColumnFluidPressure) Init(R0, p0, C, g, H float64) {
	o.R0 = R0
	o.P0 = p0
	o.C = C
	o.Grav = g
	o.H = H
}

// Calc computes pressure and density at elevation z
func (o ColumnFluidPressure) Calc(z float64) (p, R float64) {
	if o.C == 0 {
		return o.P0 + o.R0*o.Grav*(o.H-z), o.R0
	}
	p = o.P0 + (o.R0/o.C)*(math.Exp(o.C*o.Grav*(o.H-z))-1.0)
	R = o.R0 + o.C*(p-o.P0)
	return
}

// Head computes the pressure head (p - p0)/(R0・g) at elevation z
func (o ColumnFluidPressure) Head(z float64) float64 {
	p, _ := o.Calc(z)
	return (p - o.P0) / (o.R0 * o.Grav)
}
