// Copyright 2016 The Gohgl Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

// Water handles the properties of liquid water at a reference temperature
type Water struct {
	Θ    float64 // reference temperature; default = 20°C or 293.15K
	Rho  float64 // intrinsic density @ reference temperature
	Mu   float64 // dynamic viscosity @ reference temperature
	Pvap float64 // absolute vapour pressure @ reference temperature
	Patm float64 // absolute atmospheric pressure at sea level
}

// Init initialises data
func (o *Water) Init() {
	o.Θ = 293.15     // [K]      20°C
	o.Rho = 998.2    // [kg/m³]  20°C
	o.Mu = 1.002e-3  // [Pa・s]   20°C
	o.Pvap = 2339.0  // [Pa]     20°C
	o.Patm = 101325. // [Pa]
}

// PressureHead converts an absolute pressure into a head of water [m]
func (o Water) PressureHead(p, grav float64) float64 {
	return p / (o.Rho * grav)
}
