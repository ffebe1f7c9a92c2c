// Copyright 2016 The Gohgl Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements analytical solutions used to verify the hydraulic computations
package ana

import "math"

// HagenPoiseuille computes the fully developed laminar flow in a circular pipe.
// The head loss along a length L is:
//
//	hf = 32・μ・L・|V| / (ρ・g・D²)   with   V = 4・Q / (π・D²)
//
// which corresponds to the Darcy-Weisbach formula with f = 64/Re.
type HagenPoiseuille struct {
	Rho  float64 // intrinsic density
	Mu   float64 // dynamic viscosity
	D    float64 // internal diameter
	L    float64 // length
	Grav float64 // gravity acceleration (positive constant)
}

// Velocity returns the mean velocity for the flow rate Q
func (o HagenPoiseuille) Velocity(Q float64) float64 {
	return 4.0 * Q / (math.Pi * o.D * o.D)
}

// Hf returns the friction head loss for the flow rate Q
func (o HagenPoiseuille) Hf(Q float64) float64 {
	V := math.Abs(o.Velocity(Q))
	return 32.0 * o.Mu * o.L * V / (o.Rho * o.Grav * o.D * o.D)
}

// Umax returns the centreline velocity (twice the mean velocity)
func (o HagenPoiseuille) Umax(Q float64) float64 {
	return 2.0 * o.Velocity(Q)
}

// U returns the velocity at radial distance r from the axis: u(r) = umax・(1 - (2r/D)²)
func (o HagenPoiseuille) U(Q, r float64) float64 {
	ξ := 2.0 * r / o.D
	return o.Umax(Q) * (1.0 - ξ*ξ)
}
