// Copyright 2016 The Gohgl Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_colpresfluid01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("colpresfluid01. pressure on fluid along column")

	var water Water
	water.Init()
	H := 10.0
	g := 9.81

	var col ColumnFluidPressure
	col.Init(water.Rho, 0, 0, g, H)

	Z := utl.LinSpace(0, H, 11)
	for _, z := range Z {
		p, R := col.Calc(z)
		io.Pforan("z=%5.2f p=%12.4f R=%g\n", z, p, R)
		chk.Float64(tst, "p", 1e-9, p, water.Rho*g*(H-z))
		chk.Float64(tst, "R", 1e-15, R, water.Rho)
		chk.Float64(tst, "head", 1e-13, col.Head(z), H-z)
	}
}

func Test_colpresfluid02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("colpresfluid02. slightly compressible fluid")

	R0 := 1.0
	p0 := 0.0
	C := 1e-2
	H := 10.0
	g := 10.0

	var col ColumnFluidPressure
	col.Init(R0, p0, C, g, H)

	// dp/dz = -R・g
	h := 1e-6
	for _, z := range []float64{0, 2.5, 5, 7.5} {
		pa, _ := col.Calc(z - h)
		pb, _ := col.Calc(z + h)
		_, R := col.Calc(z)
		chk.Float64(tst, "dp/dz", 1e-6, (pb-pa)/(2*h), -R*g)
	}

	// compressible fluid is denser than incompressible one below H
	p, R := col.Calc(0)
	chk.Float64(tst, "p(0)", 1e-13, p, (R0/C)*(math.Exp(C*g*H)-1.0))
	if R <= R0 || p <= R0*g*H {
		tst.Errorf("compressible column should be heavier: p=%g R=%g\n", p, R)
	}

	// free surface
	p, R = col.Calc(H)
	chk.Float64(tst, "p(H)", 1e-17, p, p0)
	chk.Float64(tst, "R(H)", 1e-17, R, R0)
}
