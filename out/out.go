// Copyright 2016 The SEBdemo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements simulation output handling for analyses and plotting
package out

import (
	"github.com/mvreeuwijk/SEBdemo/fdm"

	"github.com/cpmech/gosl/chk"
)

// Global variables
var (

	// data set by Start
	Res    *fdm.Results         // results being post-processed
	Series map[string][]float64 // maps series key to values

	// subplots
	Splots []*SplotDat // all subplots
	Csplot *SplotDat   // current subplot
)

// Start starts handling of results from one simulation run
func Start(res *fdm.Results) {
	if res == nil {
		chk.Panic("out.Start: results must not be nil")
	}
	Res = res
	Series = map[string][]float64{
		"t":     res.Times,
		"z":     res.Z,
		"Ta":    res.Ta,
		"Ts":    res.Ts,
		"Kdown": res.Kdown,
		"Kup":   res.Kup,
		"Kstar": res.Kstar,
		"Ldown": res.Ldown,
		"Lup":   res.Lup,
		"Lstar": res.Lstar,
		"H":     res.H,
		"E":     res.E,
		"Qg":    res.Qg,
		"G":     res.G,
	}
	Splots = nil
	Csplot = nil
}

// Get returns the series corresponding to key; e.g. "Ts" or "Kstar"
func Get(key string) []float64 {
	s, ok := Series[key]
	if !ok {
		chk.Panic("series with key=%q is not available", key)
	}
	return s
}
