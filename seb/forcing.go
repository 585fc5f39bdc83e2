// Copyright 2016 The SEBdemo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package seb implements the surface energy balance: analytic diurnal
// forcing shapes, forcing series with interpolated lookup, and the
// evaluation of the radiative/turbulent/conductive flux terms
package seb

import (
	"math"
	"sort"

	"github.com/cpmech/gosl/chk"
)

// time constants
const (
	Hour = 3600.0      // one hour [s]
	Day  = 24.0 * Hour // one day [s]
)

// Diurnal generates air temperature and incoming radiation from simple
// analytic diurnal shapes. The air temperature is sinusoidal and peaks
// together with the shortwave, at the midpoint between Trise and Tset.
// The shortwave is zero at and beyond sunrise/sunset and reaches Sb at
// the midpoint. The longwave is held constant.
type Diurnal struct {
	TaMean float64 // mean air temperature [K]
	TaAmp  float64 // air temperature amplitude (half peak-to-trough) [K]
	Sb     float64 // peak shortwave [W/m²]
	Trise  float64 // sunrise time [s]
	Tset   float64 // sunset time [s]
	Ldown  float64 // constant downwelling longwave [W/m²]
}

// Validate checks the parameters of the diurnal shapes
func (o Diurnal) Validate() (err error) {
	if o.Trise >= o.Tset {
		return chk.Err("invalid forcing: sunrise time (trise=%g) must be before sunset time (tset=%g)", o.Trise, o.Tset)
	}
	if o.TaAmp < 0 {
		return chk.Err("invalid forcing: air temperature amplitude (taamp=%g) cannot be negative", o.TaAmp)
	}
	if o.Sb < 0 {
		return chk.Err("invalid forcing: peak shortwave (sb=%g) cannot be negative", o.Sb)
	}
	return
}

// Ta returns the instantaneous air temperature [K] at time t [s]
func (o Diurnal) Ta(t float64) float64 {
	tmid := 0.5 * (o.Trise + o.Tset)
	phase := (tday(t) - tmid) / Day
	return o.TaMean + o.TaAmp*math.Cos(2.0*math.Pi*phase)
}

// Kdown returns the instantaneous downwelling shortwave [W/m²] at time t [s].
// The angle θ sweeps from -π/2 at sunrise to +π/2 at sunset and is clamped
// outside this window, so Kdown vanishes during the night.
func (o Diurnal) Kdown(t float64) float64 {
	t24 := tday(t)
	θ := (t24-o.Trise)/(o.Tset-o.Trise)*math.Pi/2.0 + (t24-o.Tset)/(o.Tset-o.Trise)*math.Pi/2.0
	θ = math.Min(math.Max(θ, -math.Pi/2.0), math.Pi/2.0)
	return o.Sb * math.Cos(θ)
}

// Gen evaluates the diurnal shapes over the given time sequence and
// returns the corresponding forcing series
func (o Diurnal) Gen(tt []float64) (srs *Series, err error) {
	err = o.Validate()
	if err != nil {
		return
	}
	if len(tt) < 1 {
		return nil, chk.Err("invalid forcing: time sequence must have at least one sample")
	}
	srs = new(Series)
	srs.T = make([]float64, len(tt))
	srs.Ta = make([]float64, len(tt))
	srs.Kd = make([]float64, len(tt))
	srs.Ld = make([]float64, len(tt))
	copy(srs.T, tt)
	for i, t := range tt {
		srs.Ta[i] = o.Ta(t)
		srs.Kd[i] = o.Kdown(t)
		srs.Ld[i] = o.Ldown
	}
	return srs, srs.Check()
}

// tday brings t into the 0..24h window
func tday(t float64) float64 {
	t24 := math.Mod(t, Day)
	if t24 < 0 {
		t24 += Day
	}
	return t24
}

// Series holds time-aligned forcing samples. Externally supplied arrays can
// be used directly provided Check passes.
type Series struct {
	T  []float64 // time [s]; strictly increasing
	Ta []float64 // air temperature [K]
	Kd []float64 // downwelling shortwave [W/m²]
	Ld []float64 // downwelling longwave [W/m²]
}

// Check verifies the invariants of the series: all slices aligned with at
// least one sample and strictly increasing time
func (o *Series) Check() (err error) {
	n := len(o.T)
	if n < 1 {
		return chk.Err("invalid forcing: series must have at least one sample")
	}
	if len(o.Ta) != n || len(o.Kd) != n || len(o.Ld) != n {
		return chk.Err("invalid forcing: series lengths are inconsistent: nt=%d nTa=%d nKd=%d nLd=%d", n, len(o.Ta), len(o.Kd), len(o.Ld))
	}
	for i := 1; i < n; i++ {
		if o.T[i] <= o.T[i-1] {
			return chk.Err("invalid forcing: time must be strictly increasing: T[%d]=%g T[%d]=%g", i-1, o.T[i-1], i, o.T[i])
		}
	}
	return
}

// Covers tells whether [t0,t1] lies within the time span of the series
func (o *Series) Covers(t0, t1 float64) bool {
	n := len(o.T)
	if n < 1 {
		return false
	}
	return o.T[0] <= t0 && o.T[n-1] >= t1
}

// At returns the forcing values at time t by linear interpolation.
// Lookups outside the time span are clamped to the first/last sample.
func (o *Series) At(t float64) (Ta, Kd, Ld float64) {
	n := len(o.T)
	if t <= o.T[0] {
		return o.Ta[0], o.Kd[0], o.Ld[0]
	}
	if t >= o.T[n-1] {
		return o.Ta[n-1], o.Kd[n-1], o.Ld[n-1]
	}
	i := sort.SearchFloat64s(o.T, t)
	if o.T[i] == t {
		return o.Ta[i], o.Kd[i], o.Ld[i]
	}
	w := (t - o.T[i-1]) / (o.T[i] - o.T[i-1])
	Ta = o.Ta[i-1] + w*(o.Ta[i]-o.Ta[i-1])
	Kd = o.Kd[i-1] + w*(o.Kd[i]-o.Kd[i-1])
	Ld = o.Ld[i-1] + w*(o.Ld[i]-o.Ld[i-1])
	return
}
