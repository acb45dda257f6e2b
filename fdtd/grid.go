// Copyright 2016 The Goseis Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fdtd

import (
	"math"
	"strings"

	"github.com/cpmech/goseis/inp"
	"github.com/cpmech/goseis/mdl"
)

// Grid holds the extended computational mesh: the physical mesh padded
// by Npml cells on each side, together with the absorbing-layer
// profiles for both axes at integer and half-shifted node positions.
type Grid struct {

	// dimensions
	Nzd, Nxd int     // physical mesh
	Npml     int     // padding cells on each side
	Nz, Nx   int     // extended mesh: Nzd+2·Npml, Nxd+2·Npml
	Dz, Dx   float64 // grid spacings
	Oz, Ox   float64 // origin of the physical mesh
	Dt       float64 // time step
	Nt       int     // number of time samples

	// absorbing-layer profiles along z; length Nz
	Az, Bz, KIz    []float64 // at integer nodes (p, vx)
	AzH, BzH, KIzH []float64 // at half-shifted nodes (vz)

	// absorbing-layer profiles along x; length Nx
	Ax, Bx, KIx    []float64 // at integer nodes (p, vz)
	AxH, BxH, KIxH []float64 // at half-shifted nodes (vx)
}

// NewGrid builds the extended mesh and its absorbing profiles
func NewGrid(med *mdl.Medium, tg *inp.TimeGrid, dat *inp.FdtdData) (o *Grid) {
	o = new(Grid)
	o.Nzd, o.Nxd = med.Nz, med.Nx
	o.Npml = dat.Npml
	o.Nz = o.Nzd + 2*o.Npml
	o.Nx = o.Nxd + 2*o.Npml
	o.Dz, o.Dx = med.Dz, med.Dx
	o.Oz, o.Ox = med.Oz, med.Ox
	o.Dt = tg.Dt()
	o.Nt = tg.Nt

	// faces: t=zmin, b=zmax, l=xmin, r=xmax
	top := strings.ContainsRune(dat.AbsTrbl, 't')
	bot := strings.ContainsRune(dat.AbsTrbl, 'b')
	lef := strings.ContainsRune(dat.AbsTrbl, 'l')
	rig := strings.ContainsRune(dat.AbsTrbl, 'r')

	o.Az, o.Bz, o.KIz = pmlProfile(o.Nz, o.Npml, o.Dz, o.Dt, med.VpMax, dat, top, bot, false)
	o.AzH, o.BzH, o.KIzH = pmlProfile(o.Nz, o.Npml, o.Dz, o.Dt, med.VpMax, dat, top, bot, true)
	o.Ax, o.Bx, o.KIx = pmlProfile(o.Nx, o.Npml, o.Dx, o.Dt, med.VpMax, dat, lef, rig, false)
	o.AxH, o.BxH, o.KIxH = pmlProfile(o.Nx, o.Npml, o.Dx, o.Dt, med.VpMax, dat, lef, rig, true)
	return
}

// pmlProfile builds the damping (a), recursion (b) and inverse-stretch
// (kI) vectors along one axis. The damped region is npml-3 cells thick
// on each enabled face; the 3 innermost padding cells stay inert so
// that the boundary halo (see Bounds) lives in an undamped region.
// Profiles are inert (a=0, b=1, kI=1) strictly inside the physical
// domain and on disabled faces.
func pmlProfile(n, npml int, δ, dt, vpmax float64, dat *inp.FdtdData, absMin, absMax, half bool) (a, b, kI []float64) {

	// allocate inert profiles
	a = make([]float64, n)
	b = make([]float64, n)
	kI = make([]float64, n)
	for i := 0; i < n; i++ {
		b[i], kI[i] = 1, 1
	}

	// damping parameters
	thick := float64(npml - Nhalo)
	dmax := -(dat.Npoly + 1.0) * vpmax * math.Log(dat.Rcoef) / (2.0 * thick * δ)
	αmax := math.Pi * dat.Fpeak

	// edge positions (in cells) of the damped regions
	e0 := float64(npml - Nhalo)
	e1 := float64(n-npml) + float64(Nhalo) - 1.0

	for i := 0; i < n; i++ {
		pos := float64(i)
		if half {
			pos += 0.5
		}

		// normalized distance into the damped region
		var d float64
		if absMin && pos < e0 {
			d = (e0 - pos) / thick
		} else if absMax && pos > e1 {
			d = (pos - e1) / thick
		} else {
			continue
		}
		d = math.Min(d, 1)

		// profile values
		ddamp := dmax * math.Pow(d, dat.Npoly)
		k := 1.0 + (dat.Kmax-1.0)*math.Pow(d, dat.Npoly)
		α := αmax * (1.0 - d)
		b[i] = math.Exp(-(ddamp/k + α) * dt)
		den := k * (ddamp + k*α)
		if den > 0 {
			a[i] = ddamp * (b[i] - 1.0) / den
		}
		kI[i] = 1.0 / k
	}
	return
}

// IdxP returns the extended-mesh cell enclosing point (z,x) for fields
// at integer (pressure) nodes, together with the fractional offsets
func (o *Grid) IdxP(z, x float64) (iz, ix int, fz, fx float64) {
	return o.idx(z, x, 0, 0)
}

// IdxVx returns cell and offsets for the x-staggered (vx) nodes
func (o *Grid) IdxVx(z, x float64) (iz, ix int, fz, fx float64) {
	return o.idx(z, x, 0, 0.5)
}

// IdxVz returns cell and offsets for the z-staggered (vz) nodes
func (o *Grid) IdxVz(z, x float64) (iz, ix int, fz, fx float64) {
	return o.idx(z, x, 0.5, 0)
}

func (o *Grid) idx(z, x, sz, sx float64) (iz, ix int, fz, fx float64) {
	gz := (z-o.Oz)/o.Dz + float64(o.Npml) - sz
	gx := (x-o.Ox)/o.Dx + float64(o.Npml) - sx
	iz = int(math.Floor(gz))
	ix = int(math.Floor(gx))
	if iz > o.Nz-2 {
		iz = o.Nz - 2
	}
	if ix > o.Nx-2 {
		ix = o.Nx - 2
	}
	if iz < 0 {
		iz = 0
	}
	if ix < 0 {
		ix = 0
	}
	fz = gz - float64(iz)
	fx = gx - float64(ix)
	return
}
