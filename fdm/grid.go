// Copyright 2016 The SEBdemo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package fdm implements the finite-difference discretisation of 1D
// transient heat conduction in a slab coupled to a surface energy balance,
// and the stiff time integration driving it
package fdm

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// Grid holds the uniform vertical discretisation of the slab. Node 0 is the
// surface at z=0; node Nz-1 is the bottom at z=-Thick.
type Grid struct {

	// input
	Thick float64 // slab thickness H [m]
	Nz    int     // number of nodes

	// derived
	Dz float64   // node spacing Δz = H/(Nz-1) [m]
	Z  []float64 // node depths, from 0 down to -H [m]
}

// Init initialises the grid
func (o *Grid) Init(thick float64, nz int) (err error) {
	if thick <= 0 {
		return chk.Err("invalid configuration: slab thickness (thick=%g) must be positive", thick)
	}
	if nz < 3 {
		return chk.Err("invalid configuration: number of nodes (nz=%d) must be at least 3", nz)
	}
	o.Thick = thick
	o.Nz = nz
	o.Dz = thick / float64(nz-1)
	o.Z = utl.LinSpace(0, -thick, nz)
	return
}
