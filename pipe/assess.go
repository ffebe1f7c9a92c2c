// Copyright 2016 The Gohgl Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pipe

import (
	"gonum.org/v1/gonum/floats"
)

// Assessment holds the pressure-head check of a profile
//
//	Note: pressure heads are gauge values HGL - z unless stated otherwise
type Assessment struct {
	Pressure       []float64 // gauge pressure head at each sample point [m]
	Pmin           float64   // minimum gauge pressure head [m]
	Xmin           float64   // position of Pmin [m]
	Margin         float64   // absolute pressure head minus vapour pressure head at Xmin [m]
	SubAtmospheric bool      // Pmin < 0
	Cavitation     bool      // Margin < 0
}

// Assess checks the profile for sub-atmospheric pressure and cavitation risk
//
//	Input:
//	 rho  -- intrinsic density of the fluid [kg/m³]
//	 grav -- gravity acceleration [m/s²]
//	 patm -- absolute atmospheric pressure [Pa]
//	 pvap -- absolute vapour pressure of the fluid [Pa]
func (o Profile) Assess(rho, grav, patm, pvap float64) (res *Assessment, err error) {
	if err = positive("rho", rho); err != nil {
		return
	}
	if err = positive("g", grav); err != nil {
		return
	}
	if err = nonNegative("patm", patm); err != nil {
		return
	}
	if err = nonNegative("pvap", pvap); err != nil {
		return
	}
	if len(o.HGL) < 2 || len(o.HGL) != len(o.Z) {
		return nil, &InputError{Field: "npts", Value: float64(len(o.HGL)), Rule: ">= 2 with matching elevations"}
	}
	γ := rho * grav
	res = new(Assessment)
	res.Pressure = floats.SubTo(make([]float64, len(o.HGL)), o.HGL, o.Z)
	imin := floats.MinIdx(res.Pressure)
	res.Pmin = res.Pressure[imin]
	res.Xmin = o.X[imin]
	res.Margin = patm/γ + res.Pmin - pvap/γ
	res.SubAtmospheric = res.Pmin < 0
	res.Cavitation = res.Margin < 0
	return
}
