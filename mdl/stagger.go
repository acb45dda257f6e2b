// Copyright 2016 The Goseis Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mdl

import "github.com/cpmech/gosl/la"

// HmeanX returns the harmonic mean of a[i][j] and a[i][j+1]; i.e. the
// field a averaged onto the x-staggered (vx) nodes. The last column is
// copied unchanged.
func HmeanX(a [][]float64) (h [][]float64) {
	nz, nx := len(a), len(a[0])
	h = la.MatAlloc(nz, nx)
	for i := 0; i < nz; i++ {
		for j := 0; j < nx-1; j++ {
			h[i][j] = 2.0 * a[i][j] * a[i][j+1] / (a[i][j] + a[i][j+1])
		}
		h[i][nx-1] = a[i][nx-1]
	}
	return
}

// HmeanZ returns the harmonic mean of a[i][j] and a[i+1][j]; i.e. the
// field a averaged onto the z-staggered (vz) nodes
func HmeanZ(a [][]float64) (h [][]float64) {
	nz, nx := len(a), len(a[0])
	h = la.MatAlloc(nz, nx)
	for i := 0; i < nz-1; i++ {
		for j := 0; j < nx; j++ {
			h[i][j] = 2.0 * a[i][j] * a[i+1][j] / (a[i][j] + a[i+1][j])
		}
	}
	copy(h[nz-1], a[nz-1])
	return
}

// HmeanXTransp chains a sensitivity gvx defined at the x-staggered nodes
// back onto the pressure nodes, through the Jacobian transpose of HmeanX
// evaluated at field a. Contributions are added into g.
//  ∂h/∂u = 2v²/(u+v)²   with   h = 2uv/(u+v),  u=a[i][j],  v=a[i][j+1]
func HmeanXTransp(gvx, a, g [][]float64) {
	nz, nx := len(a), len(a[0])
	for i := 0; i < nz; i++ {
		for j := 0; j < nx-1; j++ {
			u, v := a[i][j], a[i][j+1]
			s := u + v
			g[i][j] += gvx[i][j] * 2.0 * v * v / (s * s)
			g[i][j+1] += gvx[i][j] * 2.0 * u * u / (s * s)
		}
		g[i][nx-1] += gvx[i][nx-1]
	}
}

// HmeanZTransp chains a sensitivity gvz defined at the z-staggered nodes
// back onto the pressure nodes (see HmeanXTransp)
func HmeanZTransp(gvz, a, g [][]float64) {
	nz, nx := len(a), len(a[0])
	for i := 0; i < nz-1; i++ {
		for j := 0; j < nx; j++ {
			u, v := a[i][j], a[i+1][j]
			s := u + v
			g[i][j] += gvz[i][j] * 2.0 * v * v / (s * s)
			g[i+1][j] += gvz[i][j] * 2.0 * u * u / (s * s)
		}
	}
	for j := 0; j < nx; j++ {
		g[nz-1][j] += gvz[nz-1][j]
	}
}
