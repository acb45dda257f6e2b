// Copyright 2016 The Goseis Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fdtd

import (
	"github.com/cpmech/goseis/mdl"
	"github.com/cpmech/gosl/la"
)

// Gradient accumulates the zero-lag cross-correlations of the forward
// and adjoint states that form the sensitivity kernels. Accumulation
// happens on the extended mesh; AddTo scales by the cell area,
// chains the staggered density kernels back onto the pressure nodes
// and crops to the physical domain.
type Gradient struct {
	g   *Grid
	KI  [][]float64 // kernel wrt inverse bulk modulus, extended mesh
	Rvx [][]float64 // kernel wrt inverse density at vx nodes, extended mesh
	Rvz [][]float64 // kernel wrt inverse density at vz nodes, extended mesh
}

// NewGradient allocates the kernel accumulators
func NewGradient(g *Grid) (o *Gradient) {
	o = new(Gradient)
	o.g = g
	o.KI = la.MatAlloc(g.Nz, g.Nx)
	o.Rvx = la.MatAlloc(g.Nz, g.Nx)
	o.Rvz = la.MatAlloc(g.Nz, g.Nx)
	return
}

// Zero resets the accumulators; called between supersources
func (o *Gradient) Zero() {
	la.MatFill(o.KI, 0)
	la.MatFill(o.Rvx, 0)
	la.MatFill(o.Rvz, 0)
}

// CorrP accumulates the monopole sensitivity p_fwd·p_adj over the
// physical domain
func (o *Gradient) CorrP(fwd, adj *Field) {
	np := o.g.Npml
	for i := np; i < np+o.g.Nzd; i++ {
		for j := np; j < np+o.g.Nxd; j++ {
			o.KI[i][j] += fwd.P[i][j] * adj.P[i][j]
		}
	}
}

// CorrV accumulates the staggered density sensitivities
// vx_fwd·vx_adj and vz_fwd·vz_adj over the physical domain
func (o *Gradient) CorrV(fwd, adj *Field) {
	np := o.g.Npml
	for i := np; i < np+o.g.Nzd; i++ {
		for j := np; j < np+o.g.Nxd; j++ {
			o.Rvx[i][j] += fwd.Vx[i][j] * adj.Vx[i][j]
			o.Rvz[i][j] += fwd.Vz[i][j] * adj.Vz[i][j]
		}
	}
}

// AddTo scales the accumulated kernels by the cell area, reduces the
// staggered density kernels onto the pressure nodes through the
// transpose of the harmonic-averaging stencil, and adds the physical-
// domain result into the (Nzd,Nxd) stacks gKI and gRI
func (o *Gradient) AddTo(m *ExMedium, gKI, gRI [][]float64) {
	np := o.g.Npml
	area := o.g.Dz * o.g.Dx

	// density kernel back at pressure nodes, extended mesh
	gr := la.MatAlloc(o.g.Nz, o.g.Nx)
	mdl.HmeanXTransp(o.Rvx, m.RI, gr)
	mdl.HmeanZTransp(o.Rvz, m.RI, gr)

	// crop and stack
	for i := 0; i < o.g.Nzd; i++ {
		for j := 0; j < o.g.Nxd; j++ {
			gKI[i][j] += area * o.KI[i+np][j+np]
			gRI[i][j] += area * gr[i+np][j+np]
		}
	}
}
