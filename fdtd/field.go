// Copyright 2016 The Goseis Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fdtd

import "github.com/cpmech/gosl/la"

// Field holds the state of one propagating wavefield on the extended
// mesh. P lives at integer nodes and times; Vx at (iz, ix+½) and
// half-integer times; Vz at (iz+½, ix) and half-integer times.
type Field struct {

	// state [Nz][Nx]
	P  [][]float64 // pressure at time n
	Pp [][]float64 // pressure at time n-1
	Vx [][]float64 // particle velocity along x at time n-½
	Vz [][]float64 // particle velocity along z at time n-½

	// derivative scratch [Nz][Nx]
	Dpdx [][]float64 // ∂p/∂x at vx nodes
	Dpdz [][]float64 // ∂p/∂z at vz nodes
	Dvdx [][]float64 // ∂vx/∂x at p nodes
	Dvdz [][]float64 // ∂vz/∂z at p nodes

	// absorbing-layer memory variables [Nz][Nx]
	Mpx [][]float64 // memory of ∂p/∂x
	Mpz [][]float64 // memory of ∂p/∂z
	Mvx [][]float64 // memory of ∂vx/∂x
	Mvz [][]float64 // memory of ∂vz/∂z
}

// NewField allocates one wavefield's slabs
func NewField(g *Grid) (o *Field) {
	o = new(Field)
	o.P = la.MatAlloc(g.Nz, g.Nx)
	o.Pp = la.MatAlloc(g.Nz, g.Nx)
	o.Vx = la.MatAlloc(g.Nz, g.Nx)
	o.Vz = la.MatAlloc(g.Nz, g.Nx)
	o.Dpdx = la.MatAlloc(g.Nz, g.Nx)
	o.Dpdz = la.MatAlloc(g.Nz, g.Nx)
	o.Dvdx = la.MatAlloc(g.Nz, g.Nx)
	o.Dvdz = la.MatAlloc(g.Nz, g.Nx)
	o.Mpx = la.MatAlloc(g.Nz, g.Nx)
	o.Mpz = la.MatAlloc(g.Nz, g.Nx)
	o.Mvx = la.MatAlloc(g.Nz, g.Nx)
	o.Mvz = la.MatAlloc(g.Nz, g.Nx)
	return
}

// Zero resets all slabs; called between supersources
func (o *Field) Zero() {
	for _, s := range [][][]float64{o.P, o.Pp, o.Vx, o.Vz, o.Dpdx, o.Dpdz, o.Dvdx, o.Dvdz, o.Mpx, o.Mpz, o.Mvx, o.Mvz} {
		la.MatFill(s, 0)
	}
}

// slabs returns the saveable state slabs indexed by fldP, fldVx, fldVz
func (o *Field) slabs() [nfld][][]float64 {
	return [nfld][][]float64{o.P, o.Vx, o.Vz}
}
