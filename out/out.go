// Copyright 2016 The Goseis Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements simulation output handling for analyses and plotting
package out

import (
	"github.com/cpmech/goseis/fdtd"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// Global variables
var (
	Exp   *fdtd.Main // the experiment set by Start
	Times []float64  // recording times
)

// Start sets the experiment to extract results from
func Start(m *fdtd.Main) {
	Exp = m
	Times = m.Sim.Time.Times()
}

// Trace returns the record of one receiver
//  Input:
//   iss   -- supersource index
//   ir    -- receiver index
//   field -- "p", "vx" or "vz"
func Trace(iss, ir int, field string) (w []float64) {
	rec := Exp.Rec(iss)
	if rec == nil {
		chk.Panic("supersource %d has no records", iss)
	}
	var mat [][]float64
	switch field {
	case "p":
		mat = rec.P
	case "vx":
		mat = rec.Vx
	case "vz":
		mat = rec.Vz
	default:
		chk.Panic("unknown receiver field %q", field)
	}
	if mat == nil {
		chk.Panic("field %q was not recorded", field)
	}
	w = make([]float64, len(mat))
	for n := 0; n < len(mat); n++ {
		w[n] = mat[n][ir]
	}
	return
}

// Snap returns snapshot k of supersource iss on the physical mesh
func Snap(iss, k int) [][]float64 {
	if Exp.Snaps == nil {
		chk.Panic("snapshots were not requested")
	}
	return Exp.Snaps[iss][k]
}

// KernelKI returns the sensitivity kernel wrt the inverse bulk modulus
func KernelKI() [][]float64 {
	if Exp.GradKI == nil {
		chk.Panic("kernels were not requested")
	}
	return Exp.GradKI
}

// KernelRI returns the sensitivity kernel wrt the inverse density
func KernelRI() [][]float64 {
	if Exp.GradRI == nil {
		chk.Panic("kernels were not requested")
	}
	return Exp.GradRI
}

// MeshCoords returns the z and x coordinates of the physical mesh
func MeshCoords() (Z, X []float64) {
	m := Exp.Sim.Med
	Z = utl.LinSpace(m.Oz, m.Zmax(), m.Nz)
	X = utl.LinSpace(m.Ox, m.Xmax(), m.Nx)
	return
}
