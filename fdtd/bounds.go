// Copyright 2016 The Goseis Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fdtd

import "github.com/cpmech/gosl/la"

// Bounds stores, at every time step, a Nhalo-cell-thick halo of p, vx
// and vz around the physical domain, plus one full-domain snapshot of
// the final state. Replaying the halo while stepping the scheme in
// reverse time reconstructs the interior history without storing it.
//
// The strips start 2 cells inside the padding (ib0 = Npml-2) and the
// tangential extents overhang the physical domain by 3 cells on each
// side. This indexing is load-bearing: the halo must sit in the inert
// part of the padding (see pmlProfile) and cover the stencil reach.
type Bounds struct {

	// grid and index origins
	g          *Grid
	tz0, bz0   int // first row of the top and bottom strips
	lx0, rx0   int // first column of the left and right strips
	cx0, cz0   int // tangential origins of the strips
	ncx, ncz   int // tangential extents: Nxd+6, Nzd+6

	// halo strips per field and step: [nfld][Nt](Nhalo,ncx) or (ncz,Nhalo)
	top, bot [nfld][][][]float64
	lef, rig [nfld][][][]float64

	// final full-domain snapshot per field: [nfld](Nz,Nx)
	snap [nfld][][]float64
}

// NewBounds allocates the halo store
func NewBounds(g *Grid) (o *Bounds) {
	o = new(Bounds)
	o.g = g
	o.tz0 = g.Npml - 2
	o.bz0 = g.Npml + g.Nzd - 1
	o.lx0 = g.Npml - 2
	o.rx0 = g.Npml + g.Nxd - 1
	o.cx0 = g.Npml - Nhalo
	o.cz0 = g.Npml - Nhalo
	o.ncx = g.Nxd + 2*Nhalo
	o.ncz = g.Nzd + 2*Nhalo
	for fld := 0; fld < nfld; fld++ {
		o.top[fld] = make([][][]float64, g.Nt)
		o.bot[fld] = make([][][]float64, g.Nt)
		o.lef[fld] = make([][][]float64, g.Nt)
		o.rig[fld] = make([][][]float64, g.Nt)
		for n := 0; n < g.Nt; n++ {
			o.top[fld][n] = la.MatAlloc(Nhalo, o.ncx)
			o.bot[fld][n] = la.MatAlloc(Nhalo, o.ncx)
			o.lef[fld][n] = la.MatAlloc(o.ncz, Nhalo)
			o.rig[fld][n] = la.MatAlloc(o.ncz, Nhalo)
		}
		o.snap[fld] = la.MatAlloc(g.Nz, g.Nx)
	}
	return
}

// Save copies the halo of f into slot n
func (o *Bounds) Save(f *Field, n int) {
	for fld, s := range f.slabs() {
		for k := 0; k < Nhalo; k++ {
			copy(o.top[fld][n][k], s[o.tz0+k][o.cx0:o.cx0+o.ncx])
			copy(o.bot[fld][n][k], s[o.bz0+k][o.cx0:o.cx0+o.ncx])
		}
		for i := 0; i < o.ncz; i++ {
			for k := 0; k < Nhalo; k++ {
				o.lef[fld][n][i][k] = s[o.cz0+i][o.lx0+k]
				o.rig[fld][n][i][k] = s[o.cz0+i][o.rx0+k]
			}
		}
	}
}

// Force overwrites the halo of f with the values recorded at slot n
func (o *Bounds) Force(f *Field, n int) {
	for fld, s := range f.slabs() {
		for k := 0; k < Nhalo; k++ {
			copy(s[o.tz0+k][o.cx0:o.cx0+o.ncx], o.top[fld][n][k])
			copy(s[o.bz0+k][o.cx0:o.cx0+o.ncx], o.bot[fld][n][k])
		}
		for i := 0; i < o.ncz; i++ {
			for k := 0; k < Nhalo; k++ {
				s[o.cz0+i][o.lx0+k] = o.lef[fld][n][i][k]
				s[o.cz0+i][o.rx0+k] = o.rig[fld][n][i][k]
			}
		}
	}
}

// SaveSnap records the full extended-domain state of f
func (o *Bounds) SaveSnap(f *Field) {
	for fld, s := range f.slabs() {
		for i := 0; i < o.g.Nz; i++ {
			copy(o.snap[fld][i], s[i])
		}
	}
}

// LoadSnap restores the full extended-domain state into f
func (o *Bounds) LoadSnap(f *Field) {
	for fld, s := range f.slabs() {
		for i := 0; i < o.g.Nz; i++ {
			copy(s[i], o.snap[fld][i])
		}
	}
}
