// Copyright 2016 The SEBdemo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"encoding/json"
	"path/filepath"

	"github.com/mvreeuwijk/SEBdemo/seb"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Data holds global simulation data
type Data struct {
	Desc    string `json:"desc"`    // description of simulation
	Matfile string `json:"matfile"` // materials database path, relative to the .sim file
	Mat     string `json:"mat"`     // name of material in database
	DirOut  string `json:"dirout"`  // directory for output; e.g. /tmp/sebdemo
}

// ForcingData holds the parameters of the analytic diurnal forcing
type ForcingData struct {
	TaMean float64 `json:"tamean"` // mean air temperature [K]
	TaAmp  float64 `json:"taamp"`  // air temperature amplitude [K]
	Sb     float64 `json:"sb"`     // peak shortwave [W/m²]
	Trise  float64 `json:"trise"`  // sunrise time [s]
	Tset   float64 `json:"tset"`   // sunset time [s]
	Ldown  float64 `json:"ldown"`  // constant downwelling longwave [W/m²]
	Dt     float64 `json:"dt"`     // forcing sampling interval [s]
}

// SetDefault sets default values
func (o *ForcingData) SetDefault() {
	o.TaMean = 293.15
	o.TaAmp = 5.0
	o.Sb = 800.0
	o.Trise = 7 * seb.Hour
	o.Tset = 21 * seb.Hour
	o.Ldown = 350.0
	o.Dt = 600.0
}

// Generator returns the diurnal forcing generator corresponding to the data
func (o ForcingData) Generator() seb.Diurnal {
	return seb.Diurnal{
		TaMean: o.TaMean,
		TaAmp:  o.TaAmp,
		Sb:     o.Sb,
		Trise:  o.Trise,
		Tset:   o.Tset,
		Ldown:  o.Ldown,
	}
}

// RunData holds the discretisation and time-stepping parameters of one run
type RunData struct {
	Thick  float64 `json:"thick"`  // slab thickness [m]
	Nz     int     `json:"nz"`     // number of grid nodes
	T0     float64 `json:"t0"`     // uniform initial temperature [K]
	Htc    float64 `json:"h"`      // sensible heat-transfer coefficient [W/m²/K]
	Beta   float64 `json:"beta"`   // Bowen ratio; 0 disables latent heat
	Bottom string  `json:"bottom"` // bottom boundary policy: "insulating" or "open"
	Dt     float64 `json:"dt"`     // output time step [s]
	Tmax   float64 `json:"tmax"`   // total simulation horizon [s]
	Atol   float64 `json:"atol"`   // absolute tolerance for the stiff solver
	Rtol   float64 `json:"rtol"`   // relative tolerance for the stiff solver
}

// SetDefault sets default values
func (o *RunData) SetDefault() {
	o.Thick = 0.2
	o.Nz = 101
	o.T0 = 293.15
	o.Htc = 10.0
	o.Beta = 0.0
	o.Bottom = "insulating"
	o.Dt = 600.0
	o.Tmax = 24 * seb.Hour
	o.Atol = 1e-6
	o.Rtol = 1e-6
}

// Validate checks the run data
func (o RunData) Validate() (err error) {
	if o.Thick <= 0 {
		return chk.Err("invalid configuration: slab thickness (thick=%g) must be positive", o.Thick)
	}
	if o.Nz < 3 {
		return chk.Err("invalid configuration: number of nodes (nz=%d) must be at least 3", o.Nz)
	}
	if o.T0 <= 0 {
		return chk.Err("invalid configuration: initial temperature (t0=%g) must be a positive absolute temperature", o.T0)
	}
	if o.Htc < 0 {
		return chk.Err("invalid configuration: heat-transfer coefficient (h=%g) cannot be negative", o.Htc)
	}
	if o.Tmax <= 0 {
		return chk.Err("invalid configuration: horizon (tmax=%g) must be positive", o.Tmax)
	}
	if o.Dt <= 0 || o.Dt > o.Tmax {
		return chk.Err("invalid configuration: output step (dt=%g) must be positive and not greater than tmax=%g", o.Dt, o.Tmax)
	}
	if o.Atol <= 0 || o.Rtol <= 0 {
		return chk.Err("invalid configuration: tolerances (atol=%g, rtol=%g) must be positive", o.Atol, o.Rtol)
	}
	return
}

// Simulation holds all simulation input data
type Simulation struct {

	// input
	Data    Data        `json:"data"`    // global data
	Forcing ForcingData `json:"forcing"` // analytic forcing parameters
	Run     RunData     `json:"run"`     // discretisation and time stepping

	// derived
	Key       string      // simulation key; e.g. mysim01.sim => mysim01
	DirOut    string      // directory to save results
	MatParams *MatDb      // materials database
	Mat       *Material   // selected material
	Gen       seb.Diurnal // forcing generator
}

// ReadSim reads all simulation data from a .sim JSON file. All validation
// happens here, before any integration starts.
func ReadSim(simfilepath string) (o *Simulation, err error) {

	// io.ReadFile panics on missing files
	defer func() {
		if r := recover(); r != nil {
			o, err = nil, chk.Err("ReadSim: cannot read simulation file %q:\n%v", simfilepath, r)
		}
	}()

	// read file
	o = new(Simulation)
	b := io.ReadFile(simfilepath)

	// set default values
	o.Forcing.SetDefault()
	o.Run.SetDefault()

	// decode
	err = json.Unmarshal(b, o)
	if err != nil {
		return nil, chk.Err("ReadSim: cannot unmarshal simulation file %q:\n%v", simfilepath, err)
	}

	// filename key and output directory
	dir := filepath.Dir(simfilepath)
	fn := filepath.Base(simfilepath)
	o.Key = io.FnKey(fn)
	o.DirOut = o.Data.DirOut
	if o.DirOut == "" {
		o.DirOut = "/tmp/sebdemo/" + o.Key
	}

	// read materials database
	o.MatParams = ReadMat(dir, o.Data.Matfile)
	if o.MatParams == nil {
		return nil, chk.Err("ReadSim: cannot read materials database %q", o.Data.Matfile)
	}
	o.Mat, err = o.MatParams.Get(o.Data.Mat)
	if err != nil {
		return nil, err
	}

	// forcing generator
	o.Gen = o.Forcing.Generator()
	err = o.Gen.Validate()
	if err != nil {
		return nil, err
	}
	if o.Forcing.Dt <= 0 {
		return nil, chk.Err("invalid forcing: sampling interval (dt=%g) must be positive", o.Forcing.Dt)
	}

	// run data
	err = o.Run.Validate()
	if err != nil {
		return nil, err
	}
	return
}
