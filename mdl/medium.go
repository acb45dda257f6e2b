// Copyright 2016 The Goseis Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package mdl implements acoustic medium maps on the physical mesh
package mdl

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
)

// Medium holds the acoustic model on the physical (unpadded) mesh.
// Pressure nodes carry the bulk modulus K and density Rho; the inverse
// maps KI and RI are the ones the sensitivity kernels refer to.
type Medium struct {

	// mesh
	Nz int     // number of cells along z (vertical, first index)
	Nx int     // number of cells along x
	Dz float64 // grid spacing along z
	Dx float64 // grid spacing along x
	Oz float64 // origin: z-coordinate of first pressure node
	Ox float64 // origin: x-coordinate of first pressure node

	// primary fields [Nz][Nx]
	Vp  [][]float64 // P-wave velocity
	Rho [][]float64 // density

	// derived fields [Nz][Nx]
	K  [][]float64 // bulk modulus = ρ·vp²
	KI [][]float64 // inverse bulk modulus
	RI [][]float64 // inverse density at pressure nodes

	// derived bounds
	VpMin, VpMax float64
}

// Alloc allocates primary fields for a (nz, nx) mesh
func (o *Medium) Alloc(nz, nx int, dz, dx, oz, ox float64) {
	if nz < 1 || nx < 1 {
		chk.Panic("medium mesh must have at least one cell per axis. nz=%d, nx=%d is incorrect", nz, nx)
	}
	if dz <= 0 || dx <= 0 {
		chk.Panic("grid spacings must be positive. dz=%v, dx=%v is incorrect", dz, dx)
	}
	o.Nz, o.Nx = nz, nx
	o.Dz, o.Dx = dz, dx
	o.Oz, o.Ox = oz, ox
	o.Vp = la.MatAlloc(nz, nx)
	o.Rho = la.MatAlloc(nz, nx)
}

// Derive computes K, KI, RI and the velocity bounds from Vp and Rho
func (o *Medium) Derive() (err error) {
	o.K = la.MatAlloc(o.Nz, o.Nx)
	o.KI = la.MatAlloc(o.Nz, o.Nx)
	o.RI = la.MatAlloc(o.Nz, o.Nx)
	o.VpMin, o.VpMax = math.MaxFloat64, 0
	for i := 0; i < o.Nz; i++ {
		for j := 0; j < o.Nx; j++ {
			vp, ρ := o.Vp[i][j], o.Rho[i][j]
			if vp <= 0 || ρ <= 0 {
				return chk.Err("medium fields must be positive. vp=%v, rho=%v at (%d,%d) is incorrect", vp, ρ, i, j)
			}
			o.K[i][j] = ρ * vp * vp
			o.KI[i][j] = 1.0 / o.K[i][j]
			o.RI[i][j] = 1.0 / ρ
			o.VpMin = math.Min(o.VpMin, vp)
			o.VpMax = math.Max(o.VpMax, vp)
		}
	}
	return
}

// Zmax returns the z-coordinate of the last pressure node
func (o *Medium) Zmax() float64 { return o.Oz + float64(o.Nz-1)*o.Dz }

// Xmax returns the x-coordinate of the last pressure node
func (o *Medium) Xmax() float64 { return o.Ox + float64(o.Nx-1)*o.Dx }

// Contains tells whether point (z,x) lies inside the physical mesh
func (o *Medium) Contains(z, x float64) bool {
	return z >= o.Oz && z <= o.Zmax() && x >= o.Ox && x <= o.Xmax()
}

// Uniform returns a homogeneous medium
func Uniform(nz, nx int, dz, dx, oz, ox, vp, rho float64) (o *Medium) {
	o = new(Medium)
	o.Alloc(nz, nx, dz, dx, oz, ox)
	la.MatFill(o.Vp, vp)
	la.MatFill(o.Rho, rho)
	err := o.Derive()
	if err != nil {
		chk.Panic("cannot derive uniform medium:\n%v", err)
	}
	return
}

// TwoLayer returns a medium with a horizontal interface at z=zint.
// Cells with node z < zint get (vp1, rho1); the rest get (vp2, rho2).
func TwoLayer(nz, nx int, dz, dx, oz, ox, zint, vp1, rho1, vp2, rho2 float64) (o *Medium) {
	o = new(Medium)
	o.Alloc(nz, nx, dz, dx, oz, ox)
	for i := 0; i < nz; i++ {
		z := oz + float64(i)*dz
		vp, ρ := vp1, rho1
		if z >= zint {
			vp, ρ = vp2, rho2
		}
		for j := 0; j < nx; j++ {
			o.Vp[i][j] = vp
			o.Rho[i][j] = ρ
		}
	}
	err := o.Derive()
	if err != nil {
		chk.Panic("cannot derive two-layer medium:\n%v", err)
	}
	return
}

// Perturbation holds small model perturbations for linearized modeling
type Perturbation struct {
	DKI [][]float64 // perturbation of inverse bulk modulus [Nz][Nx]
	DRI [][]float64 // perturbation of inverse density [Nz][Nx]
}

// NewPerturbation allocates a zero perturbation matching medium m
func NewPerturbation(m *Medium) (o *Perturbation) {
	o = new(Perturbation)
	o.DKI = la.MatAlloc(m.Nz, m.Nx)
	o.DRI = la.MatAlloc(m.Nz, m.Nx)
	return
}
