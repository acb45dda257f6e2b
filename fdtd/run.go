// Copyright 2016 The Goseis Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fdtd

import (
	"sync"
	"time"

	"github.com/cpmech/goseis/inp"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"
)

// worker holds the state of one worker: the propagating wavefields,
// the halo store and the private accumulators. It is reused for all
// supersources assigned to it and never touched by other workers.
type worker struct {
	id   int
	sses []int // assigned supersources

	// per-wavefield state
	F []*Field

	// halo store (nil when neither replay nor kernels are requested)
	bs *Bounds

	// private accumulators (merged into the shared stacks at the join)
	grad     *Gradient   // per-supersource kernel scratch
	gKI, gRI [][]float64 // kernel stacks (Nzd,Nxd)
	illum    [][]float64 // illumination stack (Nzd,Nxd)

	err error
}

func newWorker(id int, g *Grid, sim *inp.Simulation, needBounds bool) (o *worker) {
	o = new(worker)
	o.id = id
	o.F = make([]*Field, sim.Fdtd.Npw)
	for ipw := 0; ipw < sim.Fdtd.Npw; ipw++ {
		o.F[ipw] = NewField(g)
	}
	if needBounds {
		o.bs = NewBounds(g)
	}
	if sim.Fdtd.Gmodel {
		o.grad = NewGradient(g)
		o.gKI = la.MatAlloc(g.Nzd, g.Nxd)
		o.gRI = la.MatAlloc(g.Nzd, g.Nxd)
	}
	if sim.Fdtd.Illum {
		o.illum = la.MatAlloc(g.Nzd, g.Nxd)
	}
	return
}

// Run performs all supersources and fills the outputs. Supersources
// are independent: each worker simulates its own subset with fully
// local state; the only cross-worker writes happen below the join,
// where the private accumulators are summed into the shared stacks.
func (o *Main) Run() (err error) {

	// run workers
	cpu := time.Now()
	var wg sync.WaitGroup
	for _, w := range o.workers {
		wg.Add(1)
		go func(w *worker) {
			defer wg.Done()
			for _, iss := range w.sses {
				w.err = w.run(o, iss)
				if w.err != nil {
					return
				}
			}
		}(w)
	}
	wg.Wait()

	// collect failures
	for _, w := range o.workers {
		if w.err != nil {
			return chk.Err("worker %d failed:\n%v", w.id, w.err)
		}
	}

	// reduce private accumulators
	for _, w := range o.workers {
		if o.GradKI != nil {
			for i := 0; i < o.Grid.Nzd; i++ {
				for j := 0; j < o.Grid.Nxd; j++ {
					o.GradKI[i][j] += w.gKI[i][j]
					o.GradRI[i][j] += w.gRI[i][j]
				}
			}
		}
		if o.IllumMap != nil {
			for i := 0; i < o.Grid.Nzd; i++ {
				for j := 0; j < o.Grid.Nxd; j++ {
					o.IllumMap[i][j] += w.illum[i][j]
				}
			}
		}
	}

	// message
	if o.ShowMsg {
		io.Pf("> Run completed. CPU time = %v\n", time.Now().Sub(cpu))
	}
	return
}

// run simulates one supersource
func (o *worker) run(m *Main, iss int) (err error) {
	for _, f := range o.F {
		f.Zero()
	}
	switch {
	case m.Sim.Fdtd.Gmodel:
		return o.runGradient(m, iss)
	case m.Sim.Fdtd.Kind == inp.AcousticBorn:
		return o.runBorn(m, iss)
	case m.Sim.Fdtd.Backprop == -1:
		return o.runReverse(m, iss)
	}
	return o.runForward(m, iss)
}

// runForward performs the plain time loop of all wavefields
func (o *worker) runForward(m *Main, iss int) (err error) {
	g, em, dat := m.Grid, m.Med, &m.Sim.Fdtd
	for n := 0; n < g.Nt; n++ {
		for ipw := 0; ipw < dat.Npw; ipw++ {
			f := o.F[ipw]
			stepV(g, em, f, g.Dt)
			stepP(g, em, f, g.Dt)
			injectSource(g, em, f, m.Cpl[ipw][iss], n, 1)
		}
		err = o.outputs(m, iss, n)
		if err != nil {
			return
		}
		if dat.Backprop == 1 {
			o.bs.Save(o.F[0], n)
		}
	}
	if dat.Backprop == 1 {
		o.bs.SaveSnap(o.F[0])
	}
	return
}

// runReverse reconstructs the forward history of wavefield 0 from the
// halo store of a previous forward run on this worker, stepping the
// scheme in reverse time while forcing the recorded halo values.
// Receivers record the reconstructed field at the matching steps.
func (o *worker) runReverse(m *Main, iss int) (err error) {
	g, em := m.Grid, m.Med
	f := o.F[0]
	cpl := m.Cpl[0][iss]
	o.bs.LoadSnap(f)
	if m.recPw == 0 && m.Recs[iss] != nil {
		record(f, cpl, m.Recs[iss], g.Nt-1)
	}
	for n := g.Nt - 1; n >= 0; n-- {
		o.bs.Force(f, n)
		injectSource(g, em, f, cpl, n, -1)
		stepP(g, em, f, -g.Dt)
		stepV(g, em, f, -g.Dt)
		if m.recPw == 0 && m.Recs[iss] != nil && n > 0 {
			// state now equals the one recorded after step n-1
			record(f, cpl, m.Recs[iss], n-1)
		}
	}
	return
}

// runGradient performs the forward pass with halo saving, then the
// time-reversed pass: the adjoint wavefield propagates on the reversed
// residuals while wavefield 0 is reconstructed backwards, and the
// zero-lag correlations of the two accumulate the sensitivity kernels
func (o *worker) runGradient(m *Main, iss int) (err error) {
	g, em := m.Grid, m.Med
	fwd, adj := o.F[0], o.F[1]
	cplF, cplA := m.Cpl[0][iss], m.Cpl[1][iss]

	// forward pass of wavefield 0
	for n := 0; n < g.Nt; n++ {
		stepV(g, em, fwd, g.Dt)
		stepP(g, em, fwd, g.Dt)
		injectSource(g, em, fwd, cplF, n, 1)
		err = o.outputs(m, iss, n)
		if err != nil {
			return
		}
		o.bs.Save(fwd, n)
	}
	o.bs.SaveSnap(fwd)

	// time-reversed pass
	o.grad.Zero()
	o.bs.LoadSnap(fwd)
	for n := g.Nt - 1; n >= 0; n-- {

		// adjoint wavefield forward in reversed time
		τ := g.Nt - 1 - n
		stepV(g, em, adj, g.Dt)
		stepP(g, em, adj, g.Dt)
		injectSource(g, em, adj, cplA, τ, 1)

		// reconstruct wavefield 0 at step n
		o.bs.Force(fwd, n)
		injectSource(g, em, fwd, cplF, n, -1)
		stepP(g, em, fwd, -g.Dt)
		stepV(g, em, fwd, -g.Dt)

		// zero-lag correlations
		o.grad.CorrP(fwd, adj)
		o.grad.CorrV(fwd, adj)
	}
	o.grad.AddTo(em, o.gKI, o.gRI)
	return
}

// runBorn propagates the background wavefield 0 and, simultaneously,
// the linearized wavefield 1 driven by perturbation-weighted secondary
// sources derived from the background state
func (o *worker) runBorn(m *Main, iss int) (err error) {
	g, em, dat := m.Grid, m.Med, &m.Sim.Fdtd
	bg, sc := o.F[0], o.F[1]
	for n := 0; n < g.Nt; n++ {

		// background
		stepV(g, em, bg, g.Dt)
		stepP(g, em, bg, g.Dt)
		injectSource(g, em, bg, m.Cpl[0][iss], n, 1)

		// linearized
		stepV(g, em, sc, g.Dt)
		bornInjectV(g, em, sc, bg)
		stepP(g, em, sc, g.Dt)
		bornInjectP(g, em, sc, bg)
		injectSource(g, em, sc, m.Cpl[1][iss], n, 1)

		err = o.outputs(m, iss, n)
		if err != nil {
			return
		}
		if dat.Backprop == 1 {
			o.bs.Save(bg, n)
		}
	}
	if dat.Backprop == 1 {
		o.bs.SaveSnap(bg)
	}
	return
}

// outputs records receivers, accumulates illumination, copies
// snapshots and checks the state health at time step n
func (o *worker) outputs(m *Main, iss, n int) (err error) {
	g, dat := m.Grid, &m.Sim.Fdtd

	// records
	if m.recPw >= 0 && m.Recs[iss] != nil {
		record(o.F[m.recPw], m.Cpl[m.recPw][iss], m.Recs[iss], n)
	}

	// illumination of the source-side wavefield
	if o.illum != nil {
		p := o.F[0].P
		for i := 0; i < g.Nzd; i++ {
			for j := 0; j < g.Nxd; j++ {
				v := p[i+g.Npml][j+g.Npml]
				o.illum[i][j] += v * v
			}
		}
	}

	// snapshots
	if k := m.snapAt[n]; k >= 0 && m.Snaps != nil {
		p := o.F[0].P
		for i := 0; i < g.Nzd; i++ {
			copy(m.Snaps[iss][k][i], p[i+g.Npml][g.Npml:g.Npml+g.Nxd])
		}
	}

	// health
	if n%dat.Ncheck == 0 {
		for _, f := range o.F {
			err = checkFinite(g, f, n)
			if err != nil {
				return
			}
		}
	}
	return
}
