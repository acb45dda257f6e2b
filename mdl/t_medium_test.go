// Copyright 2016 The Goseis Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mdl

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gosl/num"
	"github.com/cpmech/gosl/rnd"
)

func Test_medium01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("medium01. uniform and two-layer builders")

	m := Uniform(10, 12, 10, 10, 0, 0, 2000, 1000)
	chk.Scalar(tst, "K", 1e-15, m.K[5][5], 1000*2000*2000)
	chk.Scalar(tst, "KI·K", 1e-15, m.KI[5][5]*m.K[5][5], 1)
	chk.Scalar(tst, "RI", 1e-15, m.RI[0][0], 1e-3)
	chk.Scalar(tst, "vpmin", 1e-15, m.VpMin, 2000)
	chk.Scalar(tst, "vpmax", 1e-15, m.VpMax, 2000)
	chk.Scalar(tst, "zmax", 1e-15, m.Zmax(), 90)
	if !m.Contains(45, 110) || m.Contains(-1, 0) {
		tst.Errorf("Contains failed\n")
	}

	t := TwoLayer(10, 12, 10, 10, 0, 0, 50, 2000, 1000, 3000, 1200)
	chk.Scalar(tst, "vp layer1", 1e-15, t.Vp[4][0], 2000)
	chk.Scalar(tst, "vp layer2", 1e-15, t.Vp[5][0], 3000)
	chk.Scalar(tst, "vpmin", 1e-15, t.VpMin, 2000)
	chk.Scalar(tst, "vpmax", 1e-15, t.VpMax, 3000)
}

func Test_stagger01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("stagger01. harmonic averages")

	// harmonic mean of two neighbors; uniform field is a fixed point
	a := la.MatAlloc(3, 3)
	la.MatFill(a, 2.5)
	chk.Matrix(tst, "HmeanX uniform", 1e-15, HmeanX(a), a)
	chk.Matrix(tst, "HmeanZ uniform", 1e-15, HmeanZ(a), a)

	// symmetric in the two neighbors
	a[1][1], a[1][2] = 2.0, 6.0
	h := HmeanX(a)
	chk.Scalar(tst, "H(2,6)", 1e-15, h[1][1], 3.0)
	a[1][1], a[1][2] = 6.0, 2.0
	h = HmeanX(a)
	chk.Scalar(tst, "H(6,2)", 1e-15, h[1][1], 3.0)
}

func Test_stagger02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("stagger02. transpose of the averaging stencil")

	// the chain rule through HmeanX: the directional derivative of
	// φ(a) = Σ g∘HmeanX(a) along δ must equal ⟨HmeanXTransp(g,a), δ⟩
	nz, nx := 4, 5
	a := la.MatAlloc(nz, nx)
	g := la.MatAlloc(nz, nx)
	δ := la.MatAlloc(nz, nx)
	rnd.Init(0)
	for i := 0; i < nz; i++ {
		rnd.Float64s(a[i], 1, 2)
		rnd.Float64s(g[i], -1, 1)
		rnd.Float64s(δ[i], -1, 1)
	}

	φ := func(ε float64) (res float64) {
		b := la.MatAlloc(nz, nx)
		for i := 0; i < nz; i++ {
			for j := 0; j < nx; j++ {
				b[i][j] = a[i][j] + ε*δ[i][j]
			}
		}
		h := HmeanX(b)
		for i := 0; i < nz; i++ {
			for j := 0; j < nx; j++ {
				res += g[i][j] * h[i][j]
			}
		}
		return
	}

	// analytical: transpose times direction
	gt := la.MatAlloc(nz, nx)
	HmeanXTransp(g, a, gt)
	dana := 0.0
	for i := 0; i < nz; i++ {
		for j := 0; j < nx; j++ {
			dana += gt[i][j] * δ[i][j]
		}
	}

	// numerical
	dnum := num.DerivCen(func(x float64, args ...interface{}) float64 {
		return φ(x)
	}, 0)
	chk.AnaNum(tst, "dφ/dε", 1e-8, dana, dnum, chk.Verbose)

	// same for the z-direction
	gtz := la.MatAlloc(nz, nx)
	HmeanZTransp(g, a, gtz)
	φz := func(ε float64) (res float64) {
		b := la.MatAlloc(nz, nx)
		for i := 0; i < nz; i++ {
			for j := 0; j < nx; j++ {
				b[i][j] = a[i][j] + ε*δ[i][j]
			}
		}
		h := HmeanZ(b)
		for i := 0; i < nz; i++ {
			for j := 0; j < nx; j++ {
				res += g[i][j] * h[i][j]
			}
		}
		return
	}
	danaz := 0.0
	for i := 0; i < nz; i++ {
		for j := 0; j < nx; j++ {
			danaz += gtz[i][j] * δ[i][j]
		}
	}
	dnumz := num.DerivCen(func(x float64, args ...interface{}) float64 {
		return φz(x)
	}, 0)
	chk.AnaNum(tst, "dφz/dε", 1e-8, danaz, dnumz, chk.Verbose)
}
