// Copyright 2016 The Gohgl Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package friction

import (
	"math"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// default solver settings
const (
	DefaultTol    = 1e-6 // relative tolerance on f
	DefaultNmaxIt = 50   // iteration cap
	DefaultSeed   = 0.02 // seed used when Swamee-Jain cannot provide one
)

// Colebrook solves the implicit Colebrook-White relation [1]
//
//	1/√f = -2 log10( εr/3.7 + 2.51/(Re √f) )
//
// by fixed-point iterations on x = 1/√f seeded with Swamee-Jain.
// The zero value uses DefaultTol and DefaultNmaxIt.
type Colebrook struct {
	Tol    float64 // relative tolerance on successive values of f
	NmaxIt int     // max number of iterations
}

// Result holds the friction factor and how it was obtained
type Result struct {
	F         float64 // Darcy friction factor
	Regime    Regime  // regime used
	It        int     // number of iterations (0 for closed-form laws)
	Converged bool    // tolerance was met; false means the last iterate is returned
}

// Init initialises the solver
func (o *Colebrook) Init(prms dbf.Params) (err error) {
	o.Tol, o.NmaxIt = DefaultTol, DefaultNmaxIt
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "tol":
			o.Tol = p.V
		case "nmaxit":
			o.NmaxIt = int(p.V)
		default:
			return chk.Err("colebrook: parameter named %q is incorrect\n", p.N)
		}
	}
	if o.Tol <= 0 || o.NmaxIt < 1 {
		return chk.Err("colebrook: invalid parameters: {tol=%g, nmaxit=%d} must be all > 0", o.Tol, o.NmaxIt)
	}
	return
}

// GetPrms gets (an example) of parameters
func (o Colebrook) GetPrms(example bool) dbf.Params {
	if example {
		return dbf.Params{
			&dbf.P{N: "tol", V: DefaultTol},
			&dbf.P{N: "nmaxit", V: DefaultNmaxIt},
		}
	}
	return dbf.Params{
		&dbf.P{N: "tol", V: o.tol()},
		&dbf.P{N: "nmaxit", V: float64(o.nmaxit())},
	}
}

// Factor computes the friction factor for the given method, Reynolds number and
// relative roughness εr = ε/D. Re = 0 always gives f = 0.
func (o Colebrook) Factor(method Method, Re, εr float64) (res Result) {
	res.Regime = Classify(Re)
	if res.Regime == RegimeNone {
		res.Converged = true
		return
	}
	switch method {
	case MethodLaminar:
		res.Regime = RegimeLaminar
	case MethodTurbulent:
		res.Regime = RegimeTurbulent
	}
	if res.Regime == RegimeLaminar {
		res.F = Laminar(Re)
		res.Converged = true
		return
	}
	res.F, res.It, res.Converged = o.Solve(Re, εr)
	return
}

// Solve solves Colebrook-White for f. It never fails: if the iterations do not meet the
// tolerance within NmaxIt, or an iterate leaves the valid domain of the logarithm, the
// last valid iterate is returned with converged = false. f is always finite and in [0, 1].
func (o Colebrook) Solve(Re, εr float64) (f float64, it int, converged bool) {
	if Re <= 0 {
		return 0, 0, true
	}
	if εr < 0 || math.IsNaN(εr) {
		εr = 0
	}
	seed := Seed(Re, εr)
	f = seed
	x := 1.0 / math.Sqrt(f)
	tol, nmaxit := o.tol(), o.nmaxit()
	for it = 1; it <= nmaxit; it++ {
		arg := εr/3.7 + 2.51*x/Re
		if arg <= 0 || math.IsInf(arg, 0) {
			break
		}
		xnew := -2.0 * math.Log10(arg)
		if xnew <= 0 || math.IsNaN(xnew) {
			break
		}
		fnew := 1.0 / (xnew * xnew)
		δ := math.Abs(fnew-f) / f
		f, x = fnew, xnew
		if δ < tol {
			converged = true
			break
		}
	}
	if it > nmaxit {
		it = nmaxit
	}
	switch {
	case math.IsNaN(f) || math.IsInf(f, 0):
		f, converged = seed, false
	case f < 0:
		f, converged = 0, false
	case f > 1:
		f, converged = 1, false
	}
	return
}

// Seed returns the initial guess of the Colebrook iterations: Swamee-Jain clamped
// into [1e-4, 1], or DefaultSeed when the approximation is not usable
func Seed(Re, εr float64) float64 {
	f := SwameeJain(Re, εr)
	if math.IsNaN(f) || math.IsInf(f, 0) || f <= 0 {
		return DefaultSeed
	}
	return math.Min(math.Max(f, 1e-4), 1)
}

func (o Colebrook) tol() float64 {
	if o.Tol <= 0 {
		return DefaultTol
	}
	return o.Tol
}

func (o Colebrook) nmaxit() int {
	if o.NmaxIt < 1 {
		return DefaultNmaxIt
	}
	return o.NmaxIt
}
