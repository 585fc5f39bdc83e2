// Copyright 2016 The SEBdemo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fdm

import (
	"github.com/mvreeuwijk/SEBdemo/inp"
	"github.com/mvreeuwijk/SEBdemo/seb"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/la"
)

// BottomBC selects the bottom boundary policy. The policy is fixed for the
// whole run.
type BottomBC int

const (

	// Insulating enforces a zero-flux Neumann condition at the bottom node,
	// via the same ghost-node construction used at the surface
	Insulating BottomBC = iota

	// Open freezes the bottom node at its initial temperature (dT/dt = 0).
	// This is a deliberate simplification, not a flux-matching open boundary.
	Open
)

// BottomBCbyName returns the bottom boundary policy corresponding to name
func BottomBCbyName(name string) (bc BottomBC, err error) {
	switch name {
	case "insulating":
		bc = Insulating
	case "open":
		bc = Open
	default:
		err = chk.Err("invalid configuration: bottom boundary policy %q is unknown; it must be \"insulating\" or \"open\"", name)
	}
	return
}

// String returns the name of the policy
func (o BottomBC) String() string {
	if o == Open {
		return "open"
	}
	return "insulating"
}

// Column assembles the time derivative of the discretised temperature field
// of one slab column. The surface node converts the energy-balance residual
// Qg into an equivalent Fourier-law flux gradient through a ghost node
// eliminated from the centred second-difference stencil:
//
//   dT0/dt = (2κ/Δz)·[(T1-T0)/Δz - f],   f = -Qg/k
//
// Interior nodes use the standard central-difference Laplacian and the
// bottom node follows the selected policy.
type Column struct {

	// input
	Grid   *Grid         // vertical discretisation
	Mat    *inp.Material // slab material
	Bal    seb.Balance   // surface energy balance parameters
	Frc    *seb.Series   // forcing series; interpolated at solver-internal times
	Bottom BottomBC      // bottom boundary policy

	// alternative surface condition: when set, Qgfun(t) prescribes the net
	// surface ground flux directly and the energy balance is bypassed
	// (radiative and turbulent terms must then be folded into the function)
	Qgfun dbf.T
}

// Init initialises the column and checks its inputs
func (o *Column) Init(g *Grid, mat *inp.Material, bal seb.Balance, frc *seb.Series, bottom BottomBC) (err error) {
	o.Grid, o.Mat, o.Bal, o.Frc, o.Bottom = g, mat, bal, frc, bottom
	if g == nil || mat == nil {
		return chk.Err("invalid configuration: column needs a grid and a material")
	}
	err = bal.Validate()
	if err != nil {
		return
	}
	if frc == nil && o.Qgfun == nil {
		return chk.Err("invalid forcing: column needs a forcing series or an imposed flux function")
	}
	if frc != nil {
		err = frc.Check()
	}
	return
}

// SurfaceQg returns the net ground flux at the surface for temperature Ts
// and time t
func (o *Column) SurfaceQg(Ts, t float64) float64 {
	if o.Qgfun != nil {
		return o.Qgfun.F(t, nil)
	}
	Ta, Kd, Ld := o.Frc.At(t)
	return o.Bal.Calc(Ts, Ta, Kd, Ld).Qg
}

// Fcn computes f := dT/dt for the current state T at time t.
// It is called at every solver-internal stage and does not allocate.
func (o *Column) Fcn(f []float64, t float64, T []float64) {

	// interior nodes
	nz := o.Grid.Nz
	κ, dz := o.Mat.Kap, o.Grid.Dz
	for i := 1; i < nz-1; i++ {
		f[i] = κ * (T[i-1] - 2.0*T[i] + T[i+1]) / (dz * dz)
	}

	// surface node: energy-balance residual as ghost-node flux gradient
	fs := -o.SurfaceQg(T[0], t) / o.Mat.K
	f[0] = 2.0 * κ / dz * ((T[1]-T[0])/dz - fs)

	// bottom node
	switch o.Bottom {
	case Insulating:
		f[nz-1] = -2.0 * κ / dz * (T[nz-1] - T[nz-2]) / dz
	case Open:
		f[nz-1] = 0
	}
}

// Jac computes the (sparse) Jacobian dfdT. The matrix is tridiagonal except
// for the surface entry, which carries the linearised energy balance.
func (o *Column) Jac(dfdy *la.Triplet, t float64, T []float64) {
	nz := o.Grid.Nz
	if dfdy.Max() == 0 {
		dfdy.Init(nz, nz, 3*nz)
	}
	κ, dz := o.Mat.Kap, o.Grid.Dz
	w := κ / (dz * dz)
	dfdy.Start()

	// surface node
	dQgdTs := 0.0
	if o.Qgfun == nil {
		dQgdTs = o.Bal.DqgDts(T[0])
	}
	dfdy.Put(0, 0, -2.0*w+2.0*κ/(dz*o.Mat.K)*dQgdTs)
	dfdy.Put(0, 1, 2.0*w)

	// interior nodes
	for i := 1; i < nz-1; i++ {
		dfdy.Put(i, i-1, w)
		dfdy.Put(i, i, -2.0*w)
		dfdy.Put(i, i+1, w)
	}

	// bottom node; the open policy leaves the row empty
	if o.Bottom == Insulating {
		dfdy.Put(nz-1, nz-2, 2.0*w)
		dfdy.Put(nz-1, nz-1, -2.0*w)
	}
}
