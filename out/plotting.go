// Copyright 2016 The Goseis Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gosl/plt"
	"github.com/cpmech/gosl/utl"
)

// PlotTrace plots the record of one receiver versus time
//  fm -- formatting codes; e.g. plt.Fmt{C: "blue", L: "receiver 0"}
func PlotTrace(iss, ir int, field string, fm plt.Fmt) {
	plt.Plot(Times, Trace(iss, ir, field), fm.GetArgs("clip_on=0"))
	plt.Gll("t", field, "")
}

// PlotSection plots all receivers of one supersource as a record
// section: each trace scaled by gain and offset by its receiver index
func PlotSection(iss int, field string, gain float64, fm plt.Fmt) {
	rec := Exp.Rec(iss)
	nr := len(rec.P[0])
	for ir := 0; ir < nr; ir++ {
		w := Trace(iss, ir, field)
		y := make([]float64, len(w))
		for n := 0; n < len(w); n++ {
			y[n] = float64(ir) + gain*w[n]
		}
		plt.Plot(Times, y, fm.GetArgs("clip_on=0"))
	}
	plt.Gll("t", "receiver", "")
}

// PlotField contours a physical-mesh field such as a snapshot, the
// illumination map or a sensitivity kernel
func PlotField(f [][]float64, args string) {
	Z, X := MeshCoords()
	nz, nx := len(Z), len(X)
	xx := la.MatAlloc(nz, nx)
	zz := la.MatAlloc(nz, nx)
	for i := 0; i < nz; i++ {
		for j := 0; j < nx; j++ {
			xx[i][j] = X[j]
			zz[i][j] = Z[i]
		}
	}
	plt.ContourSimple(xx, zz, f, args)
	plt.Gll("x", "z", "")
}

// PlotWav plots a source wavelet sampled on the time grid
func PlotWav(w []float64, fm plt.Fmt) {
	t := utl.LinSpace(Times[0], Times[len(Times)-1], len(w))
	plt.Plot(t, w, fm.GetArgs("clip_on=0"))
	plt.Gll("t", "amplitude", "")
}

// Save saves the current figure into dirout
func Save(dirout, fname string) {
	plt.SaveD(dirout, fname)
}
