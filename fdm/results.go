// Copyright 2016 The SEBdemo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fdm

import (
	"bytes"

	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/num"
	"github.com/cpmech/gosl/utl"
)

// Results holds the time series of all energy-balance terms and the full
// space-time temperature field of one simulation. Created once per run and
// never mutated after return.
type Results struct {

	// coordinates
	Times []float64 // [nout] output times [s]
	Z     []float64 // [nz] node depths, 0 at the surface down to -H [m]

	// time series [nout]
	Ta    []float64 // air temperature [K]
	Ts    []float64 // surface temperature [K]
	Kdown []float64 // incoming shortwave [W/m²]
	Kup   []float64 // reflected shortwave [W/m²]
	Kstar []float64 // net shortwave [W/m²]
	Ldown []float64 // incoming longwave [W/m²]
	Lup   []float64 // emitted longwave [W/m²]
	Lstar []float64 // net longwave [W/m²]
	H     []float64 // sensible heat [W/m²]
	E     []float64 // latent heat [W/m²]
	Qg    []float64 // energy-balance residual ground flux [W/m²]
	G     []float64 // displayed ground flux -k·(T1-T0)/Δz [W/m²]

	// profiles
	Tprofiles [][]float64 // [nout][nz] temperature field [K]

	// auxiliary
	grid *Grid // the grid used by the run
}

// Init allocates all series for nout output times on grid g
func (o *Results) Init(nout int, g *Grid) {
	o.grid = g
	o.Times = make([]float64, nout)
	o.Z = make([]float64, g.Nz)
	copy(o.Z, g.Z)
	o.Ta = make([]float64, nout)
	o.Ts = make([]float64, nout)
	o.Kdown = make([]float64, nout)
	o.Kup = make([]float64, nout)
	o.Kstar = make([]float64, nout)
	o.Ldown = make([]float64, nout)
	o.Lup = make([]float64, nout)
	o.Lstar = make([]float64, nout)
	o.H = make([]float64, nout)
	o.E = make([]float64, nout)
	o.Qg = make([]float64, nout)
	o.G = make([]float64, nout)
	o.Tprofiles = utl.Alloc(nout, g.Nz)
}

// SlabEnergy returns the depth-integrated thermal energy C·∫T dz [J/m²] of
// the profile at output index idx, using the trapezoidal rule. C is the
// volumetric heat capacity [J/m³/K].
func (o *Results) SlabEnergy(idx int, C float64) float64 {
	depth := make([]float64, len(o.Z))
	for i, z := range o.Z {
		depth[i] = -z // increasing, from 0 down to H
	}
	return C * num.QuadDiscreteTrapzXY(depth, o.Tprofiles[idx])
}

// SaveTable writes all time series as a whitespace-separated table
func (o *Results) SaveTable(dirout, fnkey string) {
	var buf bytes.Buffer
	io.Ff(&buf, "%15s%15s%15s%15s%15s%15s%15s%15s%15s%15s%15s%15s%15s\n",
		"t", "Ta", "Ts", "Kdown", "Kup", "Kstar", "Ldown", "Lup", "Lstar", "H", "E", "Qg", "G")
	for j := range o.Times {
		io.Ff(&buf, "%15g%15g%15g%15g%15g%15g%15g%15g%15g%15g%15g%15g%15g\n",
			o.Times[j], o.Ta[j], o.Ts[j], o.Kdown[j], o.Kup[j], o.Kstar[j],
			o.Ldown[j], o.Lup[j], o.Lstar[j], o.H[j], o.E[j], o.Qg[j], o.G[j])
	}
	io.WriteFileVD(dirout, fnkey+"-series.res", &buf)
}

// SaveProfiles writes the temperature field as a table with one row per
// output time; the first column is time and the remaining ones follow Z
func (o *Results) SaveProfiles(dirout, fnkey string) {
	var buf bytes.Buffer
	io.Ff(&buf, "%15s", "t")
	for _, z := range o.Z {
		io.Ff(&buf, "%15g", z)
	}
	io.Ff(&buf, "\n")
	for j, t := range o.Times {
		io.Ff(&buf, "%15g", t)
		for _, T := range o.Tprofiles[j] {
			io.Ff(&buf, "%15g", T)
		}
		io.Ff(&buf, "\n")
	}
	io.WriteFileVD(dirout, fnkey+"-profiles.res", &buf)
}
