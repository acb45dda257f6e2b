// Copyright 2016 The Goseis Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fdtd

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// stepV advances the particle velocities by one (half) step:
// compute ∂p/∂x and ∂p/∂z with the 4th-order staggered stencil, update
// the absorbing-layer memory variables, then update vx and vz.
// Calling with -dt undoes the update wherever the absorbing profiles are
// inert (used by the time-reversed pass); the memory variables are not
// rewound.
// The corrected derivatives are left in Dpdx/Dpdz for reuse.
func stepV(g *Grid, m *ExMedium, f *Field, dt float64) {
	for i := npad; i < g.Nz-npad; i++ {
		for j := npad; j < g.Nx-npad; j++ {

			// ∂p/∂x at (i, j+½)
			d := (c1*(f.P[i][j+1]-f.P[i][j]) - c2*(f.P[i][j+2]-f.P[i][j-1])) / g.Dx
			f.Mpx[i][j] = g.BxH[j]*f.Mpx[i][j] + g.AxH[j]*d
			f.Dpdx[i][j] = g.KIxH[j]*d + f.Mpx[i][j]
			f.Vx[i][j] -= dt * m.RIvx[i][j] * f.Dpdx[i][j]

			// ∂p/∂z at (i+½, j)
			d = (c1*(f.P[i+1][j]-f.P[i][j]) - c2*(f.P[i+2][j]-f.P[i-1][j])) / g.Dz
			f.Mpz[i][j] = g.BzH[i]*f.Mpz[i][j] + g.AzH[i]*d
			f.Dpdz[i][j] = g.KIzH[i]*d + f.Mpz[i][j]
			f.Vz[i][j] -= dt * m.RIvz[i][j] * f.Dpdz[i][j]
		}
	}
}

// stepP advances the pressure by one step: compute ∂vx/∂x + ∂vz/∂z on
// the fresh half-step velocities, update the memory variables, then
// update p. The pre-update pressure is kept in Pp.
func stepP(g *Grid, m *ExMedium, f *Field, dt float64) {
	for i := 0; i < g.Nz; i++ {
		copy(f.Pp[i], f.P[i])
	}
	for i := npad; i < g.Nz-npad; i++ {
		for j := npad; j < g.Nx-npad; j++ {

			// ∂vx/∂x at (i, j)
			d := (c1*(f.Vx[i][j]-f.Vx[i][j-1]) - c2*(f.Vx[i][j+1]-f.Vx[i][j-2])) / g.Dx
			f.Mvx[i][j] = g.Bx[j]*f.Mvx[i][j] + g.Ax[j]*d
			f.Dvdx[i][j] = g.KIx[j]*d + f.Mvx[i][j]

			// ∂vz/∂z at (i, j)
			d = (c1*(f.Vz[i][j]-f.Vz[i-1][j]) - c2*(f.Vz[i+1][j]-f.Vz[i-2][j])) / g.Dz
			f.Mvz[i][j] = g.Bz[i]*f.Mvz[i][j] + g.Az[i]*d
			f.Dvdz[i][j] = g.KIz[i]*d + f.Mvz[i][j]

			f.P[i][j] -= dt * m.K[i][j] * (f.Dvdx[i][j] + f.Dvdz[i][j])
		}
	}
}

// injectSource sprays the sources of one supersource onto the pressure
// field at time step n. sgn=-1 removes a previously injected source
// (used by the time-reversed pass).
func injectSource(g *Grid, m *ExMedium, f *Field, cpl *Coupling, n int, sgn float64) {
	if cpl.Wav == nil {
		return
	}
	for is := 0; is < cpl.Ns; is++ {
		iz, ix := cpl.Siz[is], cpl.Six[is]
		s := sgn * g.Dt * cpl.Wav[is][n]
		f.P[iz][ix] += s * m.K[iz][ix] * cpl.Sw[is][0]
		f.P[iz][ix+1] += s * m.K[iz][ix+1] * cpl.Sw[is][1]
		f.P[iz+1][ix] += s * m.K[iz+1][ix] * cpl.Sw[is][2]
		f.P[iz+1][ix+1] += s * m.K[iz+1][ix+1] * cpl.Sw[is][3]
	}
}

// record interpolates the requested fields at the receivers of one
// supersource and writes them into row n of the record matrices
func record(f *Field, cpl *Coupling, rec *Records, n int) {
	if rec.P != nil {
		for ir := 0; ir < cpl.Nr; ir++ {
			iz, ix, w := cpl.Riz[ir], cpl.Rix[ir], cpl.Rw[ir]
			rec.P[n][ir] = w[0]*f.P[iz][ix] + w[1]*f.P[iz][ix+1] + w[2]*f.P[iz+1][ix] + w[3]*f.P[iz+1][ix+1]
		}
	}
	if rec.Vx != nil {
		for ir := 0; ir < cpl.Nr; ir++ {
			iz, ix, w := cpl.RizX[ir], cpl.RixX[ir], cpl.RwX[ir]
			rec.Vx[n][ir] = w[0]*f.Vx[iz][ix] + w[1]*f.Vx[iz][ix+1] + w[2]*f.Vx[iz+1][ix] + w[3]*f.Vx[iz+1][ix+1]
		}
	}
	if rec.Vz != nil {
		for ir := 0; ir < cpl.Nr; ir++ {
			iz, ix, w := cpl.RizZ[ir], cpl.RixZ[ir], cpl.RwZ[ir]
			rec.Vz[n][ir] = w[0]*f.Vz[iz][ix] + w[1]*f.Vz[iz][ix+1] + w[2]*f.Vz[iz+1][ix] + w[3]*f.Vz[iz+1][ix+1]
		}
	}
}

// bornInjectV adds the secondary body-force sources of the linearized
// wavefield f2, derived from the background pressure gradients of f1
// computed by the preceding stepV call
func bornInjectV(g *Grid, m *ExMedium, f2, f1 *Field) {
	for i := npad; i < g.Nz-npad; i++ {
		for j := npad; j < g.Nx-npad; j++ {
			f2.Vx[i][j] -= g.Dt * m.DRIvx[i][j] * f1.Dpdx[i][j]
			f2.Vz[i][j] -= g.Dt * m.DRIvz[i][j] * f1.Dpdz[i][j]
		}
	}
}

// bornInjectP adds the secondary pressure sources of the linearized
// wavefield f2, derived from the background pressure rate of f1
func bornInjectP(g *Grid, m *ExMedium, f2, f1 *Field) {
	for i := npad; i < g.Nz-npad; i++ {
		for j := npad; j < g.Nx-npad; j++ {
			f2.P[i][j] -= m.K[i][j] * m.DKI[i][j] * (f1.P[i][j] - f1.Pp[i][j])
		}
	}
}

// checkFinite scans the pressure field on a coarse stride and fails on
// the first non-finite value; a NaN or Inf indicates instability
func checkFinite(g *Grid, f *Field, n int) (err error) {
	for i := 0; i < g.Nz; i += 8 {
		for j := 0; j < g.Nx; j += 8 {
			v := f.P[i][j]
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return chk.Err("non-finite pressure %v at cell (%d,%d), step %d: simulation is unstable", v, i, j, n)
			}
		}
	}
	return
}
