// Copyright 2016 The Goseis Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fdtd

import (
	"github.com/cpmech/goseis/inp"
	"github.com/cpmech/gosl/la"
)

// Coupling holds, for one supersource of one propagating wavefield,
// the grid indices and 4-cell bilinear weights coupling every point
// source and receiver to the mesh, plus the effective source wavelets.
// Weight order per point: (iz,ix), (iz,ix+1), (iz+1,ix), (iz+1,ix+1).
type Coupling struct {

	// dimensions
	Ns, Nr int

	// source spray onto pressure nodes
	Siz, Six []int       // [Ns] cell indices
	Sw       [][]float64 // (Ns,4) spray weights
	Wav      [][]float64 // (Ns,Nt) effective wavelets (sflag already applied)

	// receiver interpolation, per field
	Riz, Rix   []int       // [Nr] cells for p
	Rw         [][]float64 // (Nr,4) weights for p
	RizX, RixX []int       // [Nr] cells for vx
	RwX        [][]float64 // (Nr,4) weights for vx
	RizZ, RixZ []int       // [Nr] cells for vz
	RwZ        [][]float64 // (Nr,4) weights for vz
}

// NewCoupling builds the coupling of one supersource
//  Input:
//   g     -- extended grid
//   geom  -- supersource geometry
//   wav   -- raw wavelets (Ns,Nt); may be nil when sflag=0
//   sflag -- source flag: 0 off, 1 injection rate, 2 pressure, 3 time-reversed
func NewCoupling(g *Grid, geom *inp.SSrcGeom, wav [][]float64, sflag int) (o *Coupling) {
	o = new(Coupling)
	o.Ns, o.Nr = geom.Ns(), geom.Nr()

	// sources
	o.Siz = make([]int, o.Ns)
	o.Six = make([]int, o.Ns)
	o.Sw = la.MatAlloc(o.Ns, 4)
	for is := 0; is < o.Ns; is++ {
		iz, ix, fz, fx := g.IdxP(geom.Sz[is], geom.Sx[is])
		o.Siz[is], o.Six[is] = iz, ix
		setWeights(o.Sw[is], fz, fx)
	}

	// effective wavelets
	if sflag != 0 {
		o.Wav = la.MatAlloc(o.Ns, g.Nt)
		for is := 0; is < o.Ns; is++ {
			switch sflag {
			case 1: // injection rate: integrate in time
				sum := 0.0
				for n := 0; n < g.Nt; n++ {
					sum += wav[is][n] * g.Dt
					o.Wav[is][n] = sum
				}
			case 2: // pressure
				copy(o.Wav[is], wav[is])
			case 3: // time-reversed pressure
				for n := 0; n < g.Nt; n++ {
					o.Wav[is][n] = wav[is][g.Nt-1-n]
				}
			}
		}
	}

	// receivers
	o.Riz = make([]int, o.Nr)
	o.Rix = make([]int, o.Nr)
	o.RizX = make([]int, o.Nr)
	o.RixX = make([]int, o.Nr)
	o.RizZ = make([]int, o.Nr)
	o.RixZ = make([]int, o.Nr)
	o.Rw = la.MatAlloc(o.Nr, 4)
	o.RwX = la.MatAlloc(o.Nr, 4)
	o.RwZ = la.MatAlloc(o.Nr, 4)
	for ir := 0; ir < o.Nr; ir++ {
		iz, ix, fz, fx := g.IdxP(geom.Rz[ir], geom.Rx[ir])
		o.Riz[ir], o.Rix[ir] = iz, ix
		setWeights(o.Rw[ir], fz, fx)
		iz, ix, fz, fx = g.IdxVx(geom.Rz[ir], geom.Rx[ir])
		o.RizX[ir], o.RixX[ir] = iz, ix
		setWeights(o.RwX[ir], fz, fx)
		iz, ix, fz, fx = g.IdxVz(geom.Rz[ir], geom.Rx[ir])
		o.RizZ[ir], o.RixZ[ir] = iz, ix
		setWeights(o.RwZ[ir], fz, fx)
	}
	return
}

// setWeights fills the 4 bilinear weights for fractional offsets (fz,fx)
func setWeights(w []float64, fz, fx float64) {
	w[0] = (1.0 - fz) * (1.0 - fx)
	w[1] = (1.0 - fz) * fx
	w[2] = fz * (1.0 - fx)
	w[3] = fz * fx
}
