// Copyright 2016 The SEBdemo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements analytical solutions
package ana

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// ThermalWave implements the steady-periodic solution of 1D conduction in a
// semi-infinite medium whose surface temperature oscillates sinusoidally:
//
//   T(z,t) = Tm + A·exp(z/D)·cos(ω·(t-Tpeak) + z/D),   z ≤ 0
//   ω = 2π/Period,   D = sqrt(2κ/ω)   (damping depth)
//
// The amplitude decays by e per damping depth and the phase lags by one
// radian, i.e. the wave arrives later the deeper it travels.
type ThermalWave struct {

	// input
	Tm     float64 // mean temperature [K]
	A      float64 // surface amplitude [K]
	Period float64 // oscillation period [s]
	Kap    float64 // thermal diffusivity κ [m²/s]
	Tpeak  float64 // time of surface maximum [s]

	// derived
	ω float64 // angular frequency [rad/s]
	D float64 // damping depth [m]
}

// Init initialises this structure
func (o *ThermalWave) Init(prms dbf.Params) (err error) {

	// default values
	o.Tm = 293.15
	o.A = 5.0
	o.Period = 24.0 * 3600.0

	// parameters
	for _, p := range prms {
		switch p.N {
		case "Tm":
			o.Tm = p.V
		case "A":
			o.A = p.V
		case "Period":
			o.Period = p.V
		case "kap":
			o.Kap = p.V
		case "Tpeak":
			o.Tpeak = p.V
		default:
			return chk.Err("thermalwave: parameter named %q is incorrect", p.N)
		}
	}

	// check and derived
	if o.Period <= 0 {
		return chk.Err("thermalwave: period (Period=%g) must be positive", o.Period)
	}
	if o.Kap <= 0 {
		return chk.Err("thermalwave: diffusivity (kap=%g) must be positive", o.Kap)
	}
	o.ω = 2.0 * math.Pi / o.Period
	o.D = math.Sqrt(2.0 * o.Kap / o.ω)
	return
}

// DampingDepth returns D [m]
func (o ThermalWave) DampingDepth() float64 {
	return o.D
}

// Temp returns the temperature [K] at depth z ≤ 0 [m] and time t [s]
func (o ThermalWave) Temp(z, t float64) float64 {
	return o.Tm + o.A*math.Exp(z/o.D)*math.Cos(o.ω*(t-o.Tpeak)+z/o.D)
}

// Ampl returns the oscillation amplitude [K] at depth z ≤ 0 [m]
func (o ThermalWave) Ampl(z float64) float64 {
	return o.A * math.Exp(z/o.D)
}

// Lag returns the phase lag [s] of the wave at depth z ≤ 0 [m] with respect
// to the surface
func (o ThermalWave) Lag(z float64) float64 {
	return -z / o.D / o.ω
}
