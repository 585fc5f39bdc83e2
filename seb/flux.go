// Copyright 2016 The SEBdemo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package seb

import "github.com/cpmech/gosl/chk"

// Sigma is the Stefan-Boltzmann constant [W/m²/K⁴]
const Sigma = 5.670374419e-8

// Fluxes holds all terms of the surface energy balance at one instant.
// Sign convention: fluxes are positive when directed downward, into the slab.
type Fluxes struct {
	Kdown float64 // incoming shortwave [W/m²]
	Kup   float64 // reflected shortwave [W/m²]
	Kstar float64 // net shortwave = Kdown - Kup [W/m²]
	Ldown float64 // incoming longwave [W/m²]
	Lup   float64 // emitted longwave [W/m²]
	Lstar float64 // net longwave = Ldown - Lup [W/m²]
	H     float64 // sensible heat [W/m²]
	E     float64 // latent heat [W/m²]
	Qg    float64 // residual ground flux = Kstar + Lstar - H - E [W/m²]
}

// Balance holds the material and configuration parameters of the surface
// energy balance
type Balance struct {
	Alb  float64 // surface albedo α
	Eps  float64 // surface emissivity ε
	Htc  float64 // sensible heat-transfer coefficient h [W/m²/K]
	Beta float64 // Bowen ratio β; latent heat is E = H/β
	Evap bool    // latent heat enabled
}

// Validate checks the balance parameters
func (o Balance) Validate() (err error) {
	if o.Htc < 0 {
		return chk.Err("invalid configuration: heat-transfer coefficient (h=%g) cannot be negative", o.Htc)
	}
	return
}

// Calc evaluates each term of the balance for surface temperature Ts [K]
// and forcing values Ta [K], Kdown and Ldown [W/m²].
//  Note: Ts must be the absolute (Kelvin) temperature; a negative or
//        non-finite Ts is a caller error and is not clamped here.
func (o Balance) Calc(Ts, Ta, Kdown, Ldown float64) (res Fluxes) {
	res.Kdown = Kdown
	res.Kup = o.Alb * Kdown
	res.Kstar = res.Kdown - res.Kup
	res.Ldown = Ldown
	res.Lup = o.Eps * Sigma * Ts * Ts * Ts * Ts
	res.Lstar = res.Ldown - res.Lup
	res.H = o.Htc * (Ts - Ta)
	if o.Evap && o.Beta != 0 {
		res.E = res.H / o.Beta
	}
	res.Qg = res.Kstar + res.Lstar - res.H - res.E
	return
}

// DqgDts returns the derivative of the residual ground flux with respect to
// the surface temperature; used to assemble the Jacobian of the conduction
// problem
func (o Balance) DqgDts(Ts float64) (dQgdTs float64) {
	dQgdTs = -4.0*o.Eps*Sigma*Ts*Ts*Ts - o.Htc
	if o.Evap && o.Beta != 0 {
		dQgdTs -= o.Htc / o.Beta
	}
	return
}
