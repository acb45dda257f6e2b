// Copyright 2016 The Goseis Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fdtd

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// CheckStability verifies the Courant condition and the grid-dispersion
// condition of the 4th-order staggered scheme.
//  Input:
//   vpmin, vpmax -- medium velocity bounds
//   dz, dx       -- grid spacings
//   dt           -- time step
//   fmax         -- maximum source frequency
func CheckStability(vpmin, vpmax, dz, dx, dt, fmax float64) (err error) {

	// Courant condition
	courant := dt * vpmax * math.Sqrt(1.0/(dx*dx)+1.0/(dz*dz))
	if courant > CourantMax {
		return chk.Err("time step too large: Courant number = %g > %g. reduce dt below %g", courant, CourantMax, dt*CourantMax/courant)
	}

	// grid dispersion
	hmax := vpmin / (PtsPerWavelen * fmax)
	if math.Min(dz, dx) > hmax {
		return chk.Err("grid too coarse: spacing = %g > %g = vpmin/(%g*fmax). refine the mesh or lower fmax", math.Min(dz, dx), hmax, PtsPerWavelen)
	}
	return
}
