// Copyright 2016 The Goseis Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fdtd

// stencil coefficients of the 4th-order staggered first derivative:
//  ∂f/∂x ≈ (c1·(f[i+½]−f[i−½]) − c2·(f[i+3/2]−f[i−3/2])) / δx
const (
	c1 = 27.0 / 24.0
	c2 = 1.0 / 24.0
)

// Nhalo is the thickness of the boundary halo saved for time reversal:
// the stencil half-width (2) plus one guard cell
const Nhalo = 3

// npad is the number of padding cells excluded from stencil writes on
// each side of the extended mesh
const npad = 2

// stability limits of the 4th-order staggered scheme
const (
	CourantMax    = 0.5 // maximum Courant number
	PtsPerWavelen = 5.0 // minimum grid points per minimum wavelength
)

// field indices into a wavefield's slab list
const (
	fldP = iota
	fldVx
	fldVz
	nfld
)
