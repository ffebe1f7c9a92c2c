// Copyright 2016 The Gohgl Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package friction implements Darcy friction factor laws for full pipe flow
//
//	References:
//	 [1] Colebrook CF (1939) Turbulent flow in pipes, with particular reference to the transition
//	     region between the smooth and rough pipe laws. J Inst Civil Eng, 11(4), 133-156
//	 [2] Swamee PK and Jain AK (1976) Explicit equations for pipe-flow problems.
//	     J Hydraulics Division ASCE, 102(5), 657-664
//	 [3] Haaland SE (1983) Simple and explicit formulas for the friction factor in turbulent
//	     pipe flow. J Fluids Eng, 105(1), 89-90
package friction

import (
	"math"
	"strings"

	"github.com/cpmech/gosl/chk"
)

// ReCrit is the Reynolds number separating laminar from turbulent flow.
// The transitional band above it is treated as turbulent.
const ReCrit = 2300.0

// Method selects how the flow regime is decided
type Method int

const (
	MethodAuto      Method = iota // regime from Reynolds number
	MethodLaminar                 // laminar law regardless of Re
	MethodTurbulent               // Colebrook-White regardless of Re
)

// ParseMethod returns the method corresponding to a configuration key.
// An empty key means "auto".
func ParseMethod(key string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(key)) {
	case "", "auto":
		return MethodAuto, nil
	case "laminar":
		return MethodLaminar, nil
	case "turbulent", "colebrook":
		return MethodTurbulent, nil
	}
	return MethodAuto, chk.Err("friction method %q is incorrect; options are \"auto\", \"laminar\" and \"turbulent\"", key)
}

// String returns the configuration key of the method
func (o Method) String() string {
	switch o {
	case MethodLaminar:
		return "laminar"
	case MethodTurbulent:
		return "turbulent"
	}
	return "auto"
}

// Regime is the flow regime used to compute the friction factor
type Regime int

const (
	RegimeNone      Regime = iota // no flow (Re = 0)
	RegimeLaminar                 // f = 64/Re
	RegimeTurbulent               // Colebrook-White
)

// String returns the name of the regime
func (o Regime) String() string {
	switch o {
	case RegimeLaminar:
		return "laminar"
	case RegimeTurbulent:
		return "turbulent"
	}
	return "none"
}

// Classify returns the regime corresponding to the Reynolds number
func Classify(Re float64) Regime {
	if Re <= 0 {
		return RegimeNone
	}
	if Re < ReCrit {
		return RegimeLaminar
	}
	return RegimeTurbulent
}

// Laminar computes the Hagen-Poiseuille friction factor f = 64/Re
func Laminar(Re float64) float64 {
	if Re <= 0 {
		return 0
	}
	return 64.0 / Re
}

// SwameeJain computes the explicit approximation of Colebrook-White [2]
//
//	f = 0.25 / log10(εr/3.7 + 5.74/Re^0.9)²
func SwameeJain(Re, εr float64) float64 {
	if Re <= 0 {
		return 0
	}
	l := math.Log10(εr/3.7 + 5.74/math.Pow(Re, 0.9))
	return 0.25 / (l * l)
}

// Haaland computes the explicit approximation of Colebrook-White [3]
//
//	1/√f = -1.8 log10((εr/3.7)^1.11 + 6.9/Re)
func Haaland(Re, εr float64) float64 {
	if Re <= 0 {
		return 0
	}
	x := -1.8 * math.Log10(math.Pow(εr/3.7, 1.11)+6.9/Re)
	return 1.0 / (x * x)
}
