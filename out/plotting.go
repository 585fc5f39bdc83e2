// Copyright 2016 The SEBdemo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"
	"github.com/cpmech/gosl/utl"
)

// PltEntity stores all data for a plot entity (X vs Y)
type PltEntity struct {
	X     []float64 // x-values
	Y     []float64 // y-values
	Xlbl  string    // horizontal axis label; e.g. "t"
	Ylbl  string    // vertical axis label; e.g. "Ts"
	Style plt.A     // style
}

// SplotDat stores all data for one subplot
type SplotDat struct {
	Title string       // title of subplot
	Xlbl  string       // x-axis label
	Ylbl  string       // y-axis label
	Data  []*PltEntity // data and styles to be plotted
}

// Splot activates a new subplot window
func Splot(splotTitle string) {
	s := &SplotDat{Title: splotTitle}
	Splots = append(Splots, s)
	Csplot = s
}

// Plot adds one curve to the current subplot. xkey and ykey are series keys
// such as "t", "Ts" or "Kstar"
func Plot(xkey, ykey string, fm plt.A) {
	var e PltEntity
	e.X, e.Xlbl = Get(xkey), xkey
	e.Y, e.Ylbl = Get(ykey), ykey
	e.Style = fm
	if e.Style.L == "" {
		e.Style.L = ykey
	}
	addToCurrent(&e)
}

// PlotProfile adds the temperature profile at output index idxT to the
// current subplot (temperature on the x-axis, depth on the y-axis).
// Use idxT=-1 for the last output time.
func PlotProfile(idxT int, fm plt.A) {
	if idxT < 0 {
		idxT = len(Res.Times) - 1
	}
	if idxT >= len(Res.Times) {
		chk.Panic("cannot plot profile: output index %d is out of range", idxT)
	}
	var e PltEntity
	e.X, e.Xlbl = Res.Tprofiles[idxT], "T"
	e.Y, e.Ylbl = Res.Z, "z"
	e.Style = fm
	if e.Style.L == "" {
		e.Style.L = io.Sf("t=%gh", Res.Times[idxT]/3600.0)
	}
	addToCurrent(&e)
}

// Draw draws or saves the figure with all subplots
//  dirout -- directory to save figure
//  fnkey  -- filename key, without extension (saved as fnkey + ".png" or
//            ".eps" depending on plt.Reset). Use "" to skip saving
//  show   -- shows figure
func Draw(dirout, fnkey string, show bool) {
	nplots := len(Splots)
	nr, nc := utl.BestSquare(nplots)
	var k int
	for i := 0; i < nr; i++ {
		for j := 0; j < nc; j++ {
			plt.Subplot(nr, nc, k+1)
			if Splots[k].Title != "" {
				plt.Title(Splots[k].Title, nil)
			}
			for _, d := range Splots[k].Data {
				d.Style.NoClip = true
				plt.Plot(d.X, d.Y, &d.Style)
			}
			plt.Gll(Splots[k].Xlbl, Splots[k].Ylbl, nil)
			k += 1
		}
	}
	if fnkey != "" {
		plt.Save(dirout, fnkey)
	}
	if show {
		plt.Show()
	}
}

func addToCurrent(e *PltEntity) {
	if len(e.X) != len(e.Y) {
		chk.Panic("lengths of x- and y-series are different. len(x)=%d, len(y)=%d", len(e.X), len(e.Y))
	}
	if Csplot == nil {
		Splot("")
	}
	Csplot.Data = append(Csplot.Data, e)
	if Csplot.Xlbl == "" {
		Csplot.Xlbl = e.Xlbl
	}
	if Csplot.Ylbl == "" {
		Csplot.Ylbl = e.Ylbl
	}
}
