// Copyright 2016 The SEBdemo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package seb

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_diurnal01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("diurnal01. analytic shapes")

	d := Diurnal{TaMean: 293.15, TaAmp: 5, Sb: 800, Trise: 6 * Hour, Tset: 18 * Hour, Ldown: 350}
	err := d.Validate()
	if err != nil {
		tst.Errorf("validation failed: %v\n", err)
		return
	}

	// shortwave: zero at and beyond sunrise/sunset, peak at midday
	tmid := 0.5 * (d.Trise + d.Tset)
	chk.Float64(tst, "Kd @ sunrise", 1e-12, d.Kdown(d.Trise), 0)
	chk.Float64(tst, "Kd @ sunset", 1e-12, d.Kdown(d.Tset), 0)
	chk.Float64(tst, "Kd @ midnight", 1e-12, d.Kdown(0), 0)
	chk.Float64(tst, "Kd @ before sunrise", 1e-12, d.Kdown(d.Trise-Hour), 0)
	chk.Float64(tst, "Kd @ peak", 1e-12, d.Kdown(tmid), d.Sb)
	io.Pforan("Kd(9h) = %v\n", d.Kdown(9*Hour))

	// symmetry about the peak and daily periodicity
	chk.Float64(tst, "Kd symmetry", 1e-12, d.Kdown(tmid-2*Hour), d.Kdown(tmid+2*Hour))
	chk.Float64(tst, "Kd periodicity", 1e-12, d.Kdown(9*Hour), d.Kdown(9*Hour+Day))

	// air temperature: peak aligned with shortwave peak
	chk.Float64(tst, "Ta @ peak", 1e-12, d.Ta(tmid), d.TaMean+d.TaAmp)
	chk.Float64(tst, "Ta @ peak+12h", 1e-12, d.Ta(tmid+12*Hour), d.TaMean-d.TaAmp)
	chk.Float64(tst, "Ta periodicity", 1e-12, d.Ta(3*Hour), d.Ta(3*Hour+Day))
}

func Test_diurnal02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("diurnal02. series generation")

	d := Diurnal{TaMean: 290, TaAmp: 4, Sb: 600, Trise: 7 * Hour, Tset: 21 * Hour, Ldown: 340}
	tt := utl.LinSpace(0, Day, 145)
	srs, err := d.Gen(tt)
	if err != nil {
		tst.Errorf("generation failed: %v\n", err)
		return
	}
	chk.IntAssert(len(srs.T), 145)
	for i, t := range srs.T {
		chk.Float64(tst, io.Sf("Ta[%d]", i), 1e-14, srs.Ta[i], d.Ta(t))
		chk.Float64(tst, io.Sf("Kd[%d]", i), 1e-14, srs.Kd[i], d.Kdown(t))
		chk.Float64(tst, io.Sf("Ld[%d]", i), 1e-14, srs.Ld[i], 340)
	}
}

func Test_diurnal03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("diurnal03. invalid forcing")

	d := Diurnal{TaMean: 290, TaAmp: 4, Sb: 600, Trise: 21 * Hour, Tset: 7 * Hour}
	if d.Validate() == nil {
		tst.Errorf("sunrise after sunset must fail\n")
		return
	}
	d = Diurnal{TaMean: 290, TaAmp: -1, Sb: 600, Trise: 7 * Hour, Tset: 21 * Hour}
	if d.Validate() == nil {
		tst.Errorf("negative amplitude must fail\n")
		return
	}
	d = Diurnal{TaMean: 290, TaAmp: 4, Sb: -600, Trise: 7 * Hour, Tset: 21 * Hour}
	if d.Validate() == nil {
		tst.Errorf("negative peak shortwave must fail\n")
		return
	}
	d = Diurnal{TaMean: 290, TaAmp: 4, Sb: 600, Trise: 7 * Hour, Tset: 21 * Hour}
	if _, err := d.Gen(nil); err == nil {
		tst.Errorf("empty time sequence must fail\n")
		return
	}
}

func Test_series01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("series01. interpolation and clamping")

	srs := &Series{
		T:  []float64{0, 10, 20},
		Ta: []float64{290, 300, 280},
		Kd: []float64{0, 100, 0},
		Ld: []float64{340, 350, 360},
	}
	err := srs.Check()
	if err != nil {
		tst.Errorf("check failed: %v\n", err)
		return
	}

	// exact samples
	Ta, Kd, Ld := srs.At(10)
	chk.Float64(tst, "Ta @ sample", 1e-15, Ta, 300)
	chk.Float64(tst, "Kd @ sample", 1e-15, Kd, 100)
	chk.Float64(tst, "Ld @ sample", 1e-15, Ld, 350)

	// midpoints
	Ta, Kd, Ld = srs.At(5)
	chk.Float64(tst, "Ta @ midpoint", 1e-14, Ta, 295)
	chk.Float64(tst, "Kd @ midpoint", 1e-14, Kd, 50)
	chk.Float64(tst, "Ld @ midpoint", 1e-14, Ld, 345)

	// clamping before t=0 and after the last sample
	Ta, _, _ = srs.At(-5)
	chk.Float64(tst, "Ta clamped left", 1e-15, Ta, 290)
	Ta, _, _ = srs.At(25)
	chk.Float64(tst, "Ta clamped right", 1e-15, Ta, 280)

	// coverage
	if !srs.Covers(0, 20) {
		tst.Errorf("series must cover [0,20]\n")
		return
	}
	if srs.Covers(0, 21) {
		tst.Errorf("series must not cover [0,21]\n")
		return
	}
}

func Test_series02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("series02. invalid series")

	srs := &Series{T: []float64{0, 10, 10}, Ta: []float64{1, 2, 3}, Kd: []float64{0, 0, 0}, Ld: []float64{0, 0, 0}}
	if srs.Check() == nil {
		tst.Errorf("non-increasing time must fail\n")
		return
	}
	srs = &Series{T: []float64{0, 10}, Ta: []float64{1, 2, 3}, Kd: []float64{0, 0}, Ld: []float64{0, 0}}
	if srs.Check() == nil {
		tst.Errorf("inconsistent lengths must fail\n")
		return
	}
	srs = &Series{}
	if srs.Check() == nil {
		tst.Errorf("empty series must fail\n")
		return
	}
}
