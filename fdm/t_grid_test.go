// Copyright 2016 The SEBdemo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fdm

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_grid01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("grid01. uniform vertical grid")

	var g Grid
	err := g.Init(0.2, 5)
	if err != nil {
		tst.Errorf("grid init failed: %v\n", err)
		return
	}
	io.Pforan("Z = %v\n", g.Z)
	chk.Float64(tst, "dz", 1e-17, g.Dz, 0.05)
	chk.IntAssert(len(g.Z), 5)
	chk.Array(tst, "Z", 1e-15, g.Z, []float64{0, -0.05, -0.1, -0.15, -0.2})

	// invalid grids
	if g.Init(0, 5) == nil {
		tst.Errorf("zero thickness must fail\n")
		return
	}
	if g.Init(0.2, 2) == nil {
		tst.Errorf("two nodes must fail\n")
		return
	}
}
