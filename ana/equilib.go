// Copyright 2016 The SEBdemo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"github.com/mvreeuwijk/SEBdemo/seb"

	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gosl/num"
)

// SurfEquilib computes the equilibrium surface temperature under constant
// forcing, i.e. the root of Qg(Ts) = 0. With zero shortwave and the
// longwave balancing the air temperature exactly (Ld = ε·σ·Ta⁴), the root
// is Ta itself; the solver handles the general case.
type SurfEquilib struct {
	Bal seb.Balance // surface energy balance parameters
	Ta  float64     // constant air temperature [K]
	Kd  float64     // constant downwelling shortwave [W/m²]
	Ld  float64     // constant downwelling longwave [W/m²]
}

// Temp returns the equilibrium surface temperature, starting the nonlinear
// iterations from Tguess [K]
func (o *SurfEquilib) Temp(Tguess float64) float64 {
	var nls num.NlSolver
	defer nls.Free()
	nls.Init(1, o.fFcn, nil, o.jFcn, true, false, nil)
	Res := []float64{Tguess}
	nls.Solve(Res, true)
	return Res[0]
}

// fFcn implements the nonlinear problem to be solved when finding the
// equilibrium temperature
func (o *SurfEquilib) fFcn(fx, X la.Vector) {
	fx[0] = o.Bal.Calc(X[0], o.Ta, o.Kd, o.Ld).Qg
}

// jFcn is the derivative of fFcn
func (o *SurfEquilib) jFcn(dfdx *la.Matrix, X la.Vector) {
	dfdx.Set(0, 0, o.Bal.DqgDts(X[0]))
}
