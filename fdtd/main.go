// Copyright 2016 The Goseis Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package fdtd implements 2-D acoustic wave propagation on a staggered
// grid with convolutional absorbing layers, including time-reversed
// reconstruction, adjoint-state sensitivity kernels and linearized
// (Born) modeling, dispatched in parallel over supersources
package fdtd

import (
	"runtime"

	"github.com/cpmech/goseis/inp"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gosl/utl"
)

// Main holds all data of one experiment: the immutable common
// parameters built once, the per-worker state reused across
// supersources, and the shared output accumulators filled by Run
type Main struct {

	// common parameters (immutable after New)
	Sim     *inp.Simulation // input data
	Grid    *Grid           // extended mesh and absorbing profiles
	Med     *ExMedium       // medium maps on the extended mesh
	Cpl     [][]*Coupling   // source/receiver couplings [npw][nss]
	Nworker int             // number of workers
	ShowMsg bool            // show messages

	// outputs (written by Run)
	Recs     []*Records      // records per supersource [nss]
	Snaps    [][][][]float64 // pressure snapshots [nss][nsnap][Nzd][Nxd]
	IllumMap [][]float64     // illumination stack (Nzd,Nxd)
	GradKI   [][]float64     // kernel stack wrt inverse bulk modulus (Nzd,Nxd)
	GradRI   [][]float64     // kernel stack wrt inverse density (Nzd,Nxd)

	// derived
	recPw   int   // wavefield whose receivers are recorded; -1 if none
	snapAt  []int // [Nt] snapshot slot per time step; -1 if none
	workers []*worker
}

// New builds an experiment from validated input data. All
// configuration and stability errors surface here; Run is not
// expected to fail under valid inputs.
func New(sim *inp.Simulation) (o *Main, err error) {

	// validate input
	err = sim.Init()
	if err != nil {
		return nil, err
	}
	if sim.Fdtd.Kind == inp.AcousticVisco {
		return nil, chk.Err("viscoacoustic propagation is not implemented yet")
	}

	// stability
	err = CheckStability(sim.Med.VpMin, sim.Med.VpMax, sim.Med.Dz, sim.Med.Dx, sim.Time.Dt(), sim.Fdtd.Fmax)
	if err != nil {
		return nil, err
	}

	// common parameters
	o = new(Main)
	o.Sim = sim
	o.ShowMsg = sim.Data.Verbose
	o.Grid = NewGrid(sim.Med, &sim.Time, &sim.Fdtd)
	o.Med = NewExMedium(o.Grid, sim.Med, sim.Pert)

	// couplings
	nss := sim.Nss()
	o.Cpl = make([][]*Coupling, sim.Fdtd.Npw)
	for ipw := 0; ipw < sim.Fdtd.Npw; ipw++ {
		o.Cpl[ipw] = make([]*Coupling, nss)
		for iss := 0; iss < nss; iss++ {
			var wav [][]float64
			if sim.Fdtd.Sflags[ipw] != 0 {
				wav = sim.Wavs[ipw][iss]
			}
			o.Cpl[ipw][iss] = NewCoupling(o.Grid, sim.Geoms[ipw][iss], wav, sim.Fdtd.Sflags[ipw])
		}
	}

	// recorded wavefield
	o.recPw = -1
	for ipw, r := range sim.Fdtd.Rflags {
		if r == 1 {
			o.recPw = ipw
		}
	}

	// records
	o.Recs = make([]*Records, nss)
	if o.recPw >= 0 {
		for iss := 0; iss < nss; iss++ {
			o.Recs[iss] = NewRecords(o.Grid.Nt, sim.Geoms[o.recPw][iss].Nr(), sim.Fdtd.Rfields)
		}
	}

	// snapshots
	o.snapAt = make([]int, o.Grid.Nt)
	for n := 0; n < o.Grid.Nt; n++ {
		o.snapAt[n] = -1
	}
	if sim.Fdtd.Snaps {
		idx, _ := utl.GetITout(sim.Time.Times(), sim.Fdtd.Tsnaps, sim.Time.Dt()/2.0)
		if len(idx) == 0 {
			return nil, chk.Err("no snapshot time falls on the time grid")
		}
		o.Snaps = make([][][][]float64, nss)
		for iss := 0; iss < nss; iss++ {
			o.Snaps[iss] = make([][][]float64, len(idx))
			for k := range idx {
				o.Snaps[iss][k] = la.MatAlloc(o.Grid.Nzd, o.Grid.Nxd)
			}
		}
		for k, n := range idx {
			o.snapAt[n] = k
		}
	}

	// stacks
	if sim.Fdtd.Illum {
		o.IllumMap = la.MatAlloc(o.Grid.Nzd, o.Grid.Nxd)
	}
	if sim.Fdtd.Gmodel {
		o.GradKI = la.MatAlloc(o.Grid.Nzd, o.Grid.Nxd)
		o.GradRI = la.MatAlloc(o.Grid.Nzd, o.Grid.Nxd)
	}

	// workers
	o.Nworker = sim.Fdtd.Nworker
	if o.Nworker < 1 {
		o.Nworker = runtime.GOMAXPROCS(0)
	}
	if o.Nworker > nss {
		o.Nworker = nss
	}
	needBounds := sim.Fdtd.Backprop != 0 || sim.Fdtd.Gmodel
	o.workers = make([]*worker, o.Nworker)
	for iw := 0; iw < o.Nworker; iw++ {
		o.workers[iw] = newWorker(iw, o.Grid, sim, needBounds)
	}
	for iss := 0; iss < nss; iss++ {
		w := o.workers[iss%o.Nworker]
		w.sses = append(w.sses, iss)
	}

	// message
	if o.ShowMsg {
		io.Pf("> Experiment built: %d supersources, %d workers, mesh %dx%d (extended %dx%d), %d steps\n",
			nss, o.Nworker, o.Grid.Nzd, o.Grid.Nxd, o.Grid.Nz, o.Grid.Nx, o.Grid.Nt)
	}
	return
}

// Rec returns the records of supersource iss
func (o *Main) Rec(iss int) *Records { return o.Recs[iss] }

// GradVec returns the sensitivity kernels flattened into a single
// vector of length 2·Nzd·Nxd: first the kernel wrt the inverse bulk
// modulus, then the kernel wrt the inverse density (row-major)
func (o *Main) GradVec() (v []float64) {
	if o.GradKI == nil {
		chk.Panic("kernels are not available: experiment was not built in gradient mode")
	}
	nc := o.Grid.Nzd * o.Grid.Nxd
	v = make([]float64, 2*nc)
	for i := 0; i < o.Grid.Nzd; i++ {
		for j := 0; j < o.Grid.Nxd; j++ {
			v[i*o.Grid.Nxd+j] = o.GradKI[i][j]
			v[nc+i*o.Grid.Nxd+j] = o.GradRI[i][j]
		}
	}
	return
}
