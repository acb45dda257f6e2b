// Copyright 2016 The Goseis Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fdtd

import (
	"math"
	"testing"

	"github.com/cpmech/goseis/inp"
	"github.com/cpmech/goseis/mdl"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// bornSim builds a two-wavefield linearized experiment: wavefield 0
// carries the background, wavefield 1 the scattered field and the
// receivers
func bornSim(med *mdl.Medium, pert *mdl.Perturbation, g *inp.SSrcGeom) (sim *inp.Simulation) {
	sim = &inp.Simulation{
		Time: inp.TimeGrid{T0: 0, Tf: 0.3, Nt: 301},
		Fdtd: inp.FdtdData{
			Model:   "born",
			Npw:     2,
			Sflags:  []int{2, 0},
			Rflags:  []int{0, 1},
			Fpeak:   15,
			Npml:    20,
			Nworker: 1,
		},
		Geoms: []inp.AGeom{{g}, {g}},
		Med:   med,
		Pert:  pert,
	}
	sim.Wavs = []inp.SrcWav{
		inp.RickerWavs(&sim.Time, sim.Geoms[0], 15, 0.1, 1),
		inp.ZeroWavs(&sim.Time, sim.Geoms[1]),
	}
	return
}

func Test_born01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("born01. linearity in the perturbation")

	// scaling the perturbation by c scales the scattered records by c
	med := mdl.Uniform(30, 40, 10, 10, 0, 0, 2000, 1000)
	g := &inp.SSrcGeom{
		Sz: []float64{100}, Sx: []float64{100},
		Rz: []float64{120}, Rx: []float64{300},
	}
	run := func(c float64) [][]float64 {
		pert := mdl.NewPerturbation(med)
		pert.DKI[15][20] = c * med.KI[15][20]
		pert.DRI[18][25] = c * 0.5 * med.RI[18][25]
		exp, err := New(bornSim(med, pert, g))
		if err != nil {
			tst.Fatalf("New failed: %v\n", err)
		}
		err = exp.Run()
		if err != nil {
			tst.Fatalf("Run failed: %v\n", err)
		}
		return exp.Rec(0).P
	}
	d1 := run(0.01)
	d2 := run(0.02)

	// d2 must equal 2·d1 sample by sample
	wmax, dmax := 0.0, 0.0
	for n := range d1 {
		wmax = math.Max(wmax, math.Abs(d2[n][0]))
		dmax = math.Max(dmax, math.Abs(d2[n][0]-2.0*d1[n][0]))
	}
	io.Pforan("max |d2| = %v, max |d2-2*d1| = %v\n", wmax, dmax)
	if wmax == 0 {
		tst.Errorf("no scattered signal recorded\n")
		return
	}
	chk.Scalar(tst, "linearity", 1e-12, dmax/wmax, 0)
}

func Test_born02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("born02. scattered records vs. perturbed modeling")

	// on a uniform background the linearized records are the exact
	// derivative of the records wrt the model: compare against the
	// difference of two plain forward runs
	med := mdl.Uniform(30, 40, 10, 10, 0, 0, 2000, 1000)
	g := &inp.SSrcGeom{
		Sz: []float64{100}, Sx: []float64{100},
		Rz: []float64{120}, Rx: []float64{300},
	}

	// point anomaly of the inverse bulk modulus
	ε := 1e-3
	iz, ix := 15, 20
	pert := mdl.NewPerturbation(med)
	pert.DKI[iz][ix] = ε * med.KI[iz][ix]

	// linearized run
	exp, err := New(bornSim(med, pert, g))
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}
	err = exp.Run()
	if err != nil {
		tst.Errorf("Run failed: %v\n", err)
		return
	}
	born := exp.Rec(0).P

	// perturbed medium: same ρ, bulk modulus from KI+δKI
	med2 := mdl.Uniform(30, 40, 10, 10, 0, 0, 2000, 1000)
	med2.Vp[iz][ix] = math.Sqrt(1.0 / ((med.KI[iz][ix] + pert.DKI[iz][ix]) * med2.Rho[iz][ix]))
	err = med2.Derive()
	if err != nil {
		tst.Errorf("Derive failed: %v\n", err)
		return
	}

	// two plain forward runs
	run := func(m *mdl.Medium) [][]float64 {
		sim := forwardSim(m, 0.3, 301, 15, g, "trbl", 20)
		sim.Wavs = []inp.SrcWav{inp.RickerWavs(&sim.Time, sim.Geoms[0], 15, 0.1, 1)}
		e, err := New(sim)
		if err != nil {
			tst.Fatalf("New failed: %v\n", err)
		}
		err = e.Run()
		if err != nil {
			tst.Fatalf("Run failed: %v\n", err)
		}
		return e.Rec(0).P
	}
	d0 := run(med)
	d1 := run(med2)

	// compare
	var num, den float64
	for n := range born {
		fd := d1[n][0] - d0[n][0]
		num += (born[n][0] - fd) * (born[n][0] - fd)
		den += fd * fd
	}
	io.Pforan("‖born-fd‖/‖fd‖ = %v\n", math.Sqrt(num/den))
	if den == 0 {
		tst.Errorf("no scattered signal\n")
		return
	}
	chk.Scalar(tst, "born vs fd", 1e-2, math.Sqrt(num/den), 0)
}

func Test_born03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("born03. configuration errors")

	med := mdl.Uniform(30, 40, 10, 10, 0, 0, 2000, 1000)
	g := &inp.SSrcGeom{Sz: []float64{100}, Sx: []float64{100}, Rz: []float64{120}, Rx: []float64{300}}

	// born requires npw=2
	sim := bornSim(med, mdl.NewPerturbation(med), g)
	sim.Fdtd.Npw = 1
	sim.Fdtd.Sflags = []int{2}
	sim.Fdtd.Rflags = []int{1}
	sim.Geoms = sim.Geoms[:1]
	sim.Wavs = sim.Wavs[:1]
	if _, err := New(sim); err == nil {
		tst.Errorf("New should have failed with npw=1\n")
	}

	// born cannot run with the kernel engine
	sim = bornSim(med, mdl.NewPerturbation(med), g)
	sim.Fdtd.Gmodel = true
	if _, err := New(sim); err == nil {
		tst.Errorf("New should have failed with born+gmodel\n")
	}

	// born requires a perturbation
	sim = bornSim(med, nil, g)
	if _, err := New(sim); err == nil {
		tst.Errorf("New should have failed without perturbation\n")
	}
}
