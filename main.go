// Copyright 2016 The SEBdemo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/mvreeuwijk/SEBdemo/fdm"
	"github.com/mvreeuwijk/SEBdemo/inp"
	"github.com/mvreeuwijk/SEBdemo/seb"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("ERROR: %v\n", err)
		}
	}()

	// read input parameters
	fnamepath, _ := io.ArgToFilename(0, "", ".sim", true)
	verbose := io.ArgToBool(1, true)
	saveProfiles := io.ArgToBool(2, true)

	// message
	if verbose {
		io.PfWhite("\nSEBdemo -- 1D conduction + surface energy balance\n\n")
		io.Pf("%v\n", io.ArgsTable("INPUT ARGUMENTS",
			"filename path", "fnamepath", fnamepath,
			"show messages", "verbose", verbose,
			"save temperature profiles", "saveProfiles", saveProfiles,
		))
	}

	// read simulation input
	sim, err := inp.ReadSim(fnamepath)
	if err != nil {
		chk.Panic("cannot read simulation input:\n%v", err)
	}

	// forcing series
	nf := int(sim.Run.Tmax/sim.Forcing.Dt) + 1
	frc, err := sim.Gen.Gen(utl.LinSpace(0, sim.Run.Tmax, nf))
	if err != nil {
		chk.Panic("cannot generate forcing:\n%v", err)
	}

	// grid and column
	var grid fdm.Grid
	err = grid.Init(sim.Run.Thick, sim.Run.Nz)
	if err != nil {
		chk.Panic("cannot build grid:\n%v", err)
	}
	bottom, err := fdm.BottomBCbyName(sim.Run.Bottom)
	if err != nil {
		chk.Panic("cannot select bottom boundary:\n%v", err)
	}
	bal := seb.Balance{
		Alb:  sim.Mat.Alb,
		Eps:  sim.Mat.Eps,
		Htc:  sim.Run.Htc,
		Beta: sim.Run.Beta,
		Evap: sim.Mat.Evap,
	}
	var col fdm.Column
	err = col.Init(&grid, sim.Mat, bal, frc, bottom)
	if err != nil {
		chk.Panic("cannot build column:\n%v", err)
	}

	// run simulation
	var sv fdm.Simulator
	err = sv.Init(&col, sim.Run.Atol, sim.Run.Rtol)
	if err != nil {
		chk.Panic("cannot initialise simulator:\n%v", err)
	}
	defer sv.Free()
	res, err := sv.Run(fdm.UniformProfile(&grid, sim.Run.T0), sim.Run.Dt, sim.Run.Tmax)
	if err != nil {
		chk.Panic("Run failed:\n%v", err)
	}

	// save results
	res.SaveTable(sim.DirOut, sim.Key)
	if saveProfiles {
		res.SaveProfiles(sim.DirOut, sim.Key)
	}
	if verbose {
		nt := len(res.Times)
		io.Pf("material: %s (k=%g, C=%g, kappa=%g)\n", sim.Mat.Name, sim.Mat.K, sim.Mat.C, sim.Mat.Kap)
		io.Pf("final surface temperature = %g K\n", res.Ts[nt-1])
	}
}
