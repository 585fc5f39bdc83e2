// Copyright 2016 The SEBdemo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from .sim and materials JSON files
package inp

import (
	"encoding/json"
	"path/filepath"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

// Material holds the thermal and radiative properties of one slab material.
// It is immutable once initialised; derived quantities are computed eagerly.
type Material struct {

	// input
	Name string  // name of material
	K    float64 // thermal conductivity k [W/m/K]
	Rho  float64 // density ρ [kg/m³]
	Cp   float64 // specific heat capacity cp [J/kg/K]
	Alb  float64 // surface albedo α
	Eps  float64 // surface emissivity ε
	Evap bool    // evaporation enabled (vegetated/wet surfaces)

	// derived
	C   float64 // volumetric heat capacity C = ρ·cp [J/m³/K]
	Kap float64 // thermal diffusivity κ = k/C [m²/s]
}

// Init initialises the material from a list of parameters
func (o *Material) Init(name string, prms dbf.Params) (err error) {

	// parse parameters
	o.Name = name
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "k":
			o.K = p.V
		case "rho":
			o.Rho = p.V
		case "cp":
			o.Cp = p.V
		case "alb":
			o.Alb = p.V
		case "eps":
			o.Eps = p.V
		case "evap":
			o.Evap = p.V > 0
		default:
			return chk.Err("material %q: parameter named %q is incorrect", name, p.N)
		}
	}

	// check
	if o.K <= 0 {
		return chk.Err("material %q: thermal conductivity (k=%g) must be positive", name, o.K)
	}
	if o.Rho <= 0 {
		return chk.Err("material %q: density (rho=%g) must be positive", name, o.Rho)
	}
	if o.Cp <= 0 {
		return chk.Err("material %q: specific heat capacity (cp=%g) must be positive", name, o.Cp)
	}
	if o.Alb < 0 || o.Alb > 1 {
		return chk.Err("material %q: albedo (alb=%g) must be within [0,1]", name, o.Alb)
	}
	if o.Eps <= 0 || o.Eps > 1 {
		return chk.Err("material %q: emissivity (eps=%g) must be within (0,1]", name, o.Eps)
	}

	// derived
	o.C = o.Rho * o.Cp
	o.Kap = o.K / o.C
	return
}

// GetPrms gets (an example) of parameters
func (o Material) GetPrms() dbf.Params {
	return []*dbf.P{
		&dbf.P{N: "k", V: 1.5},
		&dbf.P{N: "rho", V: 2000},
		&dbf.P{N: "cp", V: 900},
		&dbf.P{N: "alb", V: 0.2},
		&dbf.P{N: "eps", V: 0.95},
		&dbf.P{N: "evap", V: 0},
	}
}

// MatData holds one material entry of the materials database file
type MatData struct {
	Name string     `json:"name"` // name of material
	Desc string     `json:"desc"` // description of material
	Prms dbf.Params `json:"prms"` // properties
}

// MatDb holds the materials database
type MatDb struct {

	// input
	Materials []*MatData `json:"materials"` // all materials

	// derived
	name2mat map[string]*Material // maps material name to initialised material
}

// ReadMat reads the materials database from a JSON file
//  Note: returns nil on errors
func ReadMat(dir, fn string) (mdb *MatDb) {

	// io.ReadFile panics on missing files
	defer func() {
		if recover() != nil {
			mdb = nil
		}
	}()

	// read and decode
	b := io.ReadFile(filepath.Join(dir, fn))
	mdb = new(MatDb)
	err := json.Unmarshal(b, mdb)
	if err != nil {
		return nil
	}

	// initialise materials
	mdb.name2mat = make(map[string]*Material)
	for _, md := range mdb.Materials {
		m := new(Material)
		err = m.Init(md.Name, md.Prms)
		if err != nil {
			return nil
		}
		mdb.name2mat[md.Name] = m
	}
	return
}

// Get returns the material corresponding to name
func (o *MatDb) Get(name string) (mat *Material, err error) {
	mat, ok := o.name2mat[name]
	if !ok {
		return nil, chk.Err("material %q is not in the database", name)
	}
	return
}

// Names returns the names of all materials in the database
func (o *MatDb) Names() (names []string) {
	for _, md := range o.Materials {
		names = append(names, md.Name)
	}
	return
}
