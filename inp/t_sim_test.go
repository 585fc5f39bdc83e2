// Copyright 2016 The SEBdemo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_sim01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sim01. read simulation file")

	sim, err := ReadSim("data/diurnal-concrete.sim")
	if err != nil {
		tst.Errorf("cannot read simulation file: %v\n", err)
		return
	}
	io.Pforan("sim.Key    = %v\n", sim.Key)
	io.Pforan("sim.DirOut = %v\n", sim.DirOut)

	// keys and paths
	if sim.Key != "diurnal-concrete" {
		tst.Errorf("Key is incorrect: %q\n", sim.Key)
		return
	}
	if sim.DirOut != "/tmp/sebdemo/diurnal-concrete" {
		tst.Errorf("DirOut is incorrect: %q\n", sim.DirOut)
		return
	}

	// material
	if sim.Mat == nil {
		tst.Errorf("material was not selected\n")
		return
	}
	chk.Float64(tst, "mat: k", 1e-15, sim.Mat.K, 1.5)
	chk.Float64(tst, "mat: C", 1e-15, sim.Mat.C, 1.8e6)

	// forcing
	chk.Float64(tst, "forcing: tamean", 1e-15, sim.Forcing.TaMean, 293.0)
	chk.Float64(tst, "forcing: trise", 1e-15, sim.Forcing.Trise, 21600)
	chk.Float64(tst, "forcing: tset", 1e-15, sim.Forcing.Tset, 64800)
	chk.Float64(tst, "gen: Sb", 1e-15, sim.Gen.Sb, 800.0)

	// run data
	chk.Float64(tst, "run: thick", 1e-15, sim.Run.Thick, 1.0)
	chk.IntAssert(sim.Run.Nz, 21)
	chk.Float64(tst, "run: dt", 1e-15, sim.Run.Dt, 1800.0)
	chk.Float64(tst, "run: tmax", 1e-15, sim.Run.Tmax, 172800)

	// defaults for absent keys
	chk.Float64(tst, "run: atol (default)", 1e-15, sim.Run.Atol, 1e-6)
	chk.Float64(tst, "run: rtol (default)", 1e-15, sim.Run.Rtol, 1e-6)
}

func Test_sim02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sim02. missing file and run validation")

	// missing file
	_, err := ReadSim("data/does-not-exist.sim")
	if err == nil {
		tst.Errorf("missing simulation file must fail\n")
		return
	}
	io.Pforan("err = %v\n", err)

	// invalid run data
	var r RunData
	r.SetDefault()
	if r.Validate() != nil {
		tst.Errorf("default run data must be valid\n")
		return
	}
	for _, bad := range []func(*RunData){
		func(r *RunData) { r.Thick = 0 },
		func(r *RunData) { r.Nz = 2 },
		func(r *RunData) { r.T0 = -1 },
		func(r *RunData) { r.Htc = -1 },
		func(r *RunData) { r.Tmax = 0 },
		func(r *RunData) { r.Dt = 0 },
		func(r *RunData) { r.Dt = 2 * r.Tmax },
		func(r *RunData) { r.Atol = 0 },
		func(r *RunData) { r.Rtol = -1 },
	} {
		q := r
		bad(&q)
		if q.Validate() == nil {
			tst.Errorf("invalid run data %+v must fail\n", q)
			return
		}
	}
}
