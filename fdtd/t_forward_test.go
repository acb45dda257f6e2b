// Copyright 2016 The Goseis Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fdtd

import (
	"math"
	"testing"

	"github.com/cpmech/goseis/ana"
	"github.com/cpmech/goseis/inp"
	"github.com/cpmech/goseis/mdl"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/io"
)

// forwardSim builds a single-wavefield pressure-source experiment
func forwardSim(med *mdl.Medium, tf float64, nt int, fpeak float64, g *inp.SSrcGeom, abs string, npml int) (sim *inp.Simulation) {
	sim = &inp.Simulation{
		Time: inp.TimeGrid{T0: 0, Tf: tf, Nt: nt},
		Fdtd: inp.FdtdData{
			Model:   "acoustic",
			Npw:     1,
			Sflags:  []int{2},
			Rflags:  []int{1},
			Fpeak:   fpeak,
			AbsTrbl: abs,
			Npml:    npml,
			Nworker: 1,
		},
		Geoms: []inp.AGeom{{g}},
		Med:   med,
	}
	sim.Wavs = []inp.SrcWav{inp.RickerWavs(&sim.Time, sim.Geoms[0], fpeak, 1.5/fpeak, 1)}
	return
}

// peakTime returns the time of the maximum of w within [ta,tb]
func peakTime(w, times []float64, ta, tb float64) (tpeak float64) {
	wmax := math.Inf(-1)
	for n, t := range times {
		if t < ta || t > tb {
			continue
		}
		if w[n] > wmax {
			wmax, tpeak = w[n], t
		}
	}
	return
}

func Test_forward01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("forward01. homogeneous box. absorbing walls. decay")

	// homogeneous box with one Ricker source in the middle and four
	// absorbing walls: after the direct arrival plus two crossings,
	// the recorded pressure must have decayed into the absorbing floor
	med := mdl.Uniform(80, 80, 10, 10, 0, 0, 2000, 1000)
	g := &inp.SSrcGeom{
		Sz: []float64{400}, Sx: []float64{400},
		Rz: []float64{200}, Rx: []float64{200},
	}
	sim := forwardSim(med, 1.0, 801, 15, g, "trbl", 50)
	sim.Fdtd.Snaps = true
	sim.Fdtd.Tsnaps = []float64{0.85, 0.95}

	exp, err := New(sim)
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}
	err = exp.Run()
	if err != nil {
		tst.Errorf("Run failed: %v\n", err)
		return
	}

	// peak and tail of the recorded pressure
	w := make([]float64, sim.Time.Nt)
	peak, tail := 0.0, 0.0
	times := sim.Time.Times()
	for n := range w {
		w[n] = exp.Rec(0).P[n][0]
		if math.Abs(w[n]) > peak {
			peak = math.Abs(w[n])
		}
		if times[n] > 0.9 && math.Abs(w[n]) > tail {
			tail = math.Abs(w[n])
		}
	}
	io.Pforan("peak = %v, tail = %v, tail/peak = %v\n", peak, tail, tail/peak)
	if peak == 0 {
		tst.Errorf("no signal recorded\n")
		return
	}
	if tail > 1e-4*peak {
		tst.Errorf("pressure did not decay: tail/peak = %v\n", tail/peak)
	}

	// total pressure energy inside the box is non-increasing once the
	// source is quiet
	e0, e1 := 0.0, 0.0
	for i := 0; i < med.Nz; i++ {
		for j := 0; j < med.Nx; j++ {
			e0 += exp.Snaps[0][0][i][j] * exp.Snaps[0][0][i][j]
			e1 += exp.Snaps[0][1][i][j] * exp.Snaps[0][1][i][j]
		}
	}
	io.Pforan("energy: %v -> %v\n", e0, e1)
	if e1 > e0 {
		tst.Errorf("energy increased after the source became quiet: %v -> %v\n", e0, e1)
	}
}

func Test_forward02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("forward02. two-layer model. arrival times")

	// reflective top; source and receiver at the same depth above a
	// faster half-space: direct and reflected arrivals must match the
	// geometric ray prediction
	med := mdl.TwoLayer(100, 60, 10, 10, 0, 0, 600, 2000, 1000, 3000, 1000)
	g := &inp.SSrcGeom{
		Sz: []float64{200}, Sx: []float64{150},
		Rz: []float64{200}, Rx: []float64{450},
	}
	fpeak, tdelay := 18.0, 1.5/18.0
	sim := forwardSim(med, 0.7, 701, fpeak, g, "brl", 50)

	exp, err := New(sim)
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}
	err = exp.Run()
	if err != nil {
		tst.Errorf("Run failed: %v\n", err)
		return
	}

	// analytical ray times
	var sol ana.TwoLayerArrivals
	sol.Init(fun.Prms{
		&fun.Prm{N: "vp1", V: 2000},
		&fun.Prm{N: "zint", V: 600},
		&fun.Prm{N: "zs", V: 200},
		&fun.Prm{N: "xs", V: 150},
	})
	tdir := tdelay + sol.Direct(200, 450)
	tref := tdelay + sol.Reflected(200, 450)

	// picked arrivals
	w := make([]float64, sim.Time.Nt)
	for n := range w {
		w[n] = exp.Rec(0).P[n][0]
	}
	times := sim.Time.Times()
	dt := sim.Time.Dt()
	p1 := peakTime(w, times, tdir-0.05, tdir+0.05)
	p2 := peakTime(w, times, tref-0.045, tref+0.045)
	io.Pforan("direct:    picked %v, ray %v\n", p1, tdir)
	io.Pforan("reflected: picked %v, ray %v\n", p2, tref)

	// picks carry the waveform shaping of 2D spreading and the
	// half-cell position of the discrete interface
	chk.Scalar(tst, "direct", 4*dt, p1, tdir)
	chk.Scalar(tst, "reflected", 6*dt, p2, tref)
	chk.Scalar(tst, "moveout", 5*dt, p2-p1, tref-tdir)
}

func Test_forward03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("forward03. reciprocity")

	// swapping a source and a pressure receiver placed symmetrically
	// about the vertical mid-plane must give identical records
	med := mdl.Uniform(40, 60, 10, 10, 0, 0, 2000, 1000)
	a := []float64{250, 150}
	b := []float64{250, 440}
	gab := &inp.SSrcGeom{Sz: a[:1], Sx: a[1:], Rz: b[:1], Rx: b[1:]}
	gba := &inp.SSrcGeom{Sz: b[:1], Sx: b[1:], Rz: a[:1], Rx: a[1:]}

	run := func(g *inp.SSrcGeom) []float64 {
		sim := forwardSim(med, 0.3, 301, 15, g, "trbl", 20)
		exp, err := New(sim)
		if err != nil {
			tst.Fatalf("New failed: %v\n", err)
		}
		err = exp.Run()
		if err != nil {
			tst.Fatalf("Run failed: %v\n", err)
		}
		w := make([]float64, sim.Time.Nt)
		for n := range w {
			w[n] = exp.Rec(0).P[n][0]
		}
		return w
	}
	wab := run(gab)
	wba := run(gba)

	// normalized maximum difference
	wmax, dmax := 0.0, 0.0
	for n := range wab {
		wmax = math.Max(wmax, math.Abs(wab[n]))
		dmax = math.Max(dmax, math.Abs(wab[n]-wba[n]))
	}
	io.Pforan("max |w| = %v, max diff = %v\n", wmax, dmax)
	chk.Scalar(tst, "reciprocity", 1e-12, dmax/wmax, 0)
}

func Test_forward04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("forward04. parallel dispatch over supersources")

	// two independent supersources must give the same records no
	// matter how many workers share them
	med := mdl.Uniform(30, 40, 10, 10, 0, 0, 2000, 1000)
	g0 := &inp.SSrcGeom{Sz: []float64{100}, Sx: []float64{100}, Rz: []float64{200}, Rx: []float64{300}}
	g1 := &inp.SSrcGeom{Sz: []float64{150}, Sx: []float64{250}, Rz: []float64{100}, Rx: []float64{150}}

	run := func(nworker int) (*Main, *Records, *Records) {
		sim := &inp.Simulation{
			Time: inp.TimeGrid{T0: 0, Tf: 0.2, Nt: 201},
			Fdtd: inp.FdtdData{
				Model: "acoustic", Npw: 1,
				Sflags: []int{2}, Rflags: []int{1},
				Fpeak: 15, Npml: 20, Nworker: nworker,
				Illum: true,
			},
			Geoms: []inp.AGeom{{g0, g1}},
			Med:   med,
		}
		sim.Wavs = []inp.SrcWav{inp.RickerWavs(&sim.Time, sim.Geoms[0], 15, 0.1, 1)}
		exp, err := New(sim)
		if err != nil {
			tst.Fatalf("New failed: %v\n", err)
		}
		err = exp.Run()
		if err != nil {
			tst.Fatalf("Run failed: %v\n", err)
		}
		return exp, exp.Rec(0), exp.Rec(1)
	}
	ea, a0, a1 := run(1)
	eb, b0, b1 := run(2)
	chk.Matrix(tst, "records ss0", 1e-17, a0.P, b0.P)
	chk.Matrix(tst, "records ss1", 1e-17, a1.P, b1.P)

	// the illumination stacks agree up to the summation order of the
	// per-worker reduction
	imax, dmax := 0.0, 0.0
	for i := 0; i < med.Nz; i++ {
		for j := 0; j < med.Nx; j++ {
			imax = math.Max(imax, ea.IllumMap[i][j])
			dmax = math.Max(dmax, math.Abs(ea.IllumMap[i][j]-eb.IllumMap[i][j]))
		}
	}
	chk.Scalar(tst, "illumination", 1e-12, dmax/imax, 0)
	if ea.IllumMap[10][10] <= 0 {
		tst.Errorf("illumination must be positive where the field passed\n")
	}
}
