// Copyright 2016 The SEBdemo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// +build ignore

package main

import (
	"github.com/mvreeuwijk/SEBdemo/ana"
	"github.com/mvreeuwijk/SEBdemo/inp"
	"github.com/mvreeuwijk/SEBdemo/seb"

	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("ERROR: %v\n", err)
		}
	}()

	// input data
	matfile := io.ArgToString(0, "materials.json")
	io.Pf("\n%s\n", io.ArgsTable(
		"materials database filename", "matfile", matfile,
	))

	// read database
	mdb := inp.ReadMat("", matfile)
	if mdb == nil {
		io.PfRed("cannot read materials database %q\n", matfile)
		return
	}

	// print table with derived quantities, including the damping depth of
	// the 24h thermal wave
	io.Pf("%-12s%10s%10s%10s%8s%8s%8s%14s%14s%10s\n",
		"name", "k", "rho", "cp", "alb", "eps", "evap", "C", "kappa", "D24h")
	for _, name := range mdb.Names() {
		m, err := mdb.Get(name)
		if err != nil {
			io.PfRed("%v\n", err)
			return
		}
		var tw ana.ThermalWave
		err = tw.Init([]*dbf.P{
			&dbf.P{N: "kap", V: m.Kap},
			&dbf.P{N: "Period", V: seb.Day},
		})
		if err != nil {
			io.PfRed("%v\n", err)
			return
		}
		io.Pf("%-12s%10g%10g%10g%8g%8g%8v%14g%14.4g%10.4f\n",
			m.Name, m.K, m.Rho, m.Cp, m.Alb, m.Eps, m.Evap, m.C, m.Kap, tw.DampingDepth())
	}
}
