// Copyright 2016 The SEBdemo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fdm

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gosl/ode"
)

// Simulator drives the stiff time integration of one slab column. The
// conduction system is stiff for fine grids, hence the implicit Radau5
// integrator with adaptive internal stepping. One Simulator owns its column
// and workspace; independent simulators may run concurrently.
type Simulator struct {

	// input
	Col  *Column // discretised column providing the RHS and Jacobian
	Atol float64 // absolute tolerance for the stiff solver
	Rtol float64 // relative tolerance for the stiff solver

	// derived
	conf *ode.Config // solver configuration
	sol  *ode.Solver // stiff ODE solver
}

// Init initialises the simulator
func (o *Simulator) Init(col *Column, atol, rtol float64) (err error) {
	o.Col = col
	o.Atol, o.Rtol = atol, rtol
	if o.Atol <= 0 || o.Rtol <= 0 {
		return chk.Err("invalid configuration: tolerances (atol=%g, rtol=%g) must be positive", atol, rtol)
	}
	fcn := func(f la.Vector, h, t float64, T la.Vector) {
		o.Col.Fcn(f, t, T)
	}
	jac := func(dfdy *la.Triplet, h, t float64, T la.Vector) {
		o.Col.Jac(dfdy, t, T)
	}
	o.conf = ode.NewConfig("radau5", "", nil)
	o.conf.SetTols(o.Atol, o.Rtol)
	o.sol = ode.NewSolver(o.Col.Grid.Nz, o.conf, fcn, jac, nil)
	return
}

// Free releases the resources held by the linear solver
func (o *Simulator) Free() {
	if o.sol != nil {
		o.sol.Free()
	}
}

// Run integrates the column from t=0 to tmax and samples the solution at
// every output step dt. Tini is the initial temperature profile; use
// UniformProfile for a scalar initial temperature. The returned results are
// owned by the caller and never mutated afterwards.
func (o *Simulator) Run(Tini []float64, dt, tmax float64) (res *Results, err error) {

	// validate before any integration starts
	nz := o.Col.Grid.Nz
	if tmax <= 0 {
		return nil, chk.Err("invalid configuration: horizon (tmax=%g) must be positive", tmax)
	}
	if dt <= 0 || dt > tmax {
		return nil, chk.Err("invalid configuration: output step (dt=%g) must be positive and not greater than tmax=%g", dt, tmax)
	}
	if len(Tini) != nz {
		return nil, chk.Err("invalid configuration: initial profile has %d values but the grid has %d nodes", len(Tini), nz)
	}
	if o.Col.Qgfun == nil && !o.Col.Frc.Covers(0, tmax) {
		n := len(o.Col.Frc.T)
		return nil, chk.Err("invalid forcing: series spans [%g,%g] and does not cover the simulation span [0,%g]", o.Col.Frc.T[0], o.Col.Frc.T[n-1], tmax)
	}

	// output time grid: 0, dt, 2·dt, ... the last point not beyond tmax
	nout := int(math.Floor(tmax/dt+1e-9)) + 1
	res = new(Results)
	res.Init(nout, o.Col.Grid)
	for j := 0; j < nout; j++ {
		res.Times[j] = float64(j) * dt
	}

	// the solver panics on failures (e.g. too many substeps)
	tcur := 0.0
	defer func() {
		if r := recover(); r != nil {
			res, err = nil, chk.Err("integration failure at t=%g: %v", tcur, r)
		}
	}()

	// integrate interval by interval so the solution lands exactly on the
	// output grid
	y := make([]float64, nz)
	copy(y, Tini)
	copy(res.Tprofiles[0], y)
	for j := 1; j < nout; j++ {
		tcur = res.Times[j]
		o.sol.Solve(y, res.Times[j-1], res.Times[j])
		for i := 0; i < nz; i++ {
			if math.IsNaN(y[i]) || math.IsInf(y[i], 0) {
				return nil, chk.Err("integration failure at t=%g: non-finite temperature at node %d", res.Times[j], i)
			}
		}
		copy(res.Tprofiles[j], y)
	}

	// post-process: recompute the energy-balance terms at the solved surface
	// temperatures, and the displayed ground flux from the one-sided gradient
	o.postprocess(res)
	return
}

// postprocess fills the diagnostic time series of res.
// Note: G is the first-order one-sided estimate -k·(T1-T0)/Δz; it differs
// slightly from the Qg used inside the RHS due to discretisation.
func (o *Simulator) postprocess(res *Results) {
	k, dz := o.Col.Mat.K, o.Col.Grid.Dz
	for j, t := range res.Times {
		T := res.Tprofiles[j]
		res.Ts[j] = T[0]
		res.G[j] = -k * (T[1] - T[0]) / dz
		if o.Col.Qgfun != nil {
			continue
		}
		Ta, Kd, Ld := o.Col.Frc.At(t)
		fx := o.Col.Bal.Calc(T[0], Ta, Kd, Ld)
		res.Ta[j] = Ta
		res.Kdown[j] = fx.Kdown
		res.Kup[j] = fx.Kup
		res.Kstar[j] = fx.Kstar
		res.Ldown[j] = fx.Ldown
		res.Lup[j] = fx.Lup
		res.Lstar[j] = fx.Lstar
		res.H[j] = fx.H
		res.E[j] = fx.E
		res.Qg[j] = fx.Qg
	}
}

// UniformProfile returns an initial profile with all nodes at T0
func UniformProfile(g *Grid, T0 float64) (T []float64) {
	T = make([]float64, g.Nz)
	for i := range T {
		T[i] = T0
	}
	return
}
