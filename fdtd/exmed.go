// Copyright 2016 The Goseis Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fdtd

import (
	"github.com/cpmech/goseis/mdl"
	"github.com/cpmech/gosl/la"
)

// ExMedium holds the medium maps on the extended mesh. Values inside
// the padding are replicated from the nearest physical cell so that
// the absorbing layers carry the edge impedance.
type ExMedium struct {

	// at pressure nodes [Nz][Nx]
	K  [][]float64 // bulk modulus
	KI [][]float64 // inverse bulk modulus
	RI [][]float64 // inverse density

	// harmonically averaged onto staggered nodes [Nz][Nx]
	RIvx [][]float64 // inverse density at (iz, ix+½)
	RIvz [][]float64 // inverse density at (iz+½, ix)

	// model perturbation (born mode only; nil otherwise) [Nz][Nx]
	DKI   [][]float64 // perturbation of inverse bulk modulus
	DRIvx [][]float64 // perturbation of inverse density at vx nodes
	DRIvz [][]float64 // perturbation of inverse density at vz nodes
}

// NewExMedium pads the medium maps onto the extended mesh
func NewExMedium(g *Grid, med *mdl.Medium, pert *mdl.Perturbation) (o *ExMedium) {
	o = new(ExMedium)
	o.K = extend(g, med.K)
	o.KI = extend(g, med.KI)
	o.RI = extend(g, med.RI)
	o.RIvx = mdl.HmeanX(o.RI)
	o.RIvz = mdl.HmeanZ(o.RI)
	if pert != nil {
		o.DKI = embed(g, pert.DKI)
		dri := embed(g, pert.DRI)
		o.DRIvx = la.MatAlloc(g.Nz, g.Nx)
		o.DRIvz = la.MatAlloc(g.Nz, g.Nx)
		for i := 0; i < g.Nz; i++ {
			for j := 0; j < g.Nx-1; j++ {
				o.DRIvx[i][j] = (dri[i][j] + dri[i][j+1]) / 2.0
			}
			o.DRIvx[i][g.Nx-1] = dri[i][g.Nx-1]
		}
		for i := 0; i < g.Nz-1; i++ {
			for j := 0; j < g.Nx; j++ {
				o.DRIvz[i][j] = (dri[i][j] + dri[i+1][j]) / 2.0
			}
		}
		copy(o.DRIvz[g.Nz-1], dri[g.Nz-1])
	}
	return
}

// extend pads a physical field onto the extended mesh by replicating
// the nearest edge value into the padding
func extend(g *Grid, a [][]float64) (e [][]float64) {
	e = la.MatAlloc(g.Nz, g.Nx)
	for i := 0; i < g.Nz; i++ {
		id := i - g.Npml
		if id < 0 {
			id = 0
		}
		if id > g.Nzd-1 {
			id = g.Nzd - 1
		}
		for j := 0; j < g.Nx; j++ {
			jd := j - g.Npml
			if jd < 0 {
				jd = 0
			}
			if jd > g.Nxd-1 {
				jd = g.Nxd - 1
			}
			e[i][j] = a[id][jd]
		}
	}
	return
}

// embed places a physical field onto the extended mesh leaving the
// padding zeroed; used for model perturbations
func embed(g *Grid, a [][]float64) (e [][]float64) {
	e = la.MatAlloc(g.Nz, g.Nx)
	for i := 0; i < g.Nzd; i++ {
		for j := 0; j < g.Nxd; j++ {
			e[i+g.Npml][j+g.Npml] = a[i][j]
		}
	}
	return
}
