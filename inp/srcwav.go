// Copyright 2016 The Goseis Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// SrcWav holds the source time functions of one propagating wavefield,
// sampled on the recording time grid: Wav[iss][isrc][n]
type SrcWav [][][]float64

// Validate checks shapes against the acquisition geometry
func (o SrcWav) Validate(ag AGeom, nt int) (err error) {
	if len(o) != len(ag) {
		return chk.Err("srcwav must have one wavelet set per supersource. len(srcwav)=%d != nss=%d", len(o), len(ag))
	}
	for iss, ws := range o {
		if len(ws) != ag[iss].Ns() {
			return chk.Err("supersource %d: srcwav must have one wavelet per source. %d != %d", iss, len(ws), ag[iss].Ns())
		}
		for is, w := range ws {
			if len(w) != nt {
				return chk.Err("supersource %d: wavelet %d must be sampled on the time grid. len=%d != nt=%d", iss, is, len(w), nt)
			}
		}
	}
	return
}

// Ricker returns a Ricker wavelet with peak frequency fpeak, delayed by
// tdelay and scaled by amp, sampled on the time grid
func Ricker(tg *TimeGrid, fpeak, tdelay, amp float64) (w []float64) {
	w = make([]float64, tg.Nt)
	dt := tg.Dt()
	for n := 0; n < tg.Nt; n++ {
		t := tg.T0 + float64(n)*dt - tdelay
		a := math.Pi * math.Pi * fpeak * fpeak * t * t
		w[n] = amp * (1.0 - 2.0*a) * math.Exp(-a)
	}
	return
}

// RickerWavs builds a SrcWav firing the same Ricker wavelet from every
// source of every supersource in ag
func RickerWavs(tg *TimeGrid, ag AGeom, fpeak, tdelay, amp float64) (o SrcWav) {
	o = make(SrcWav, len(ag))
	w := Ricker(tg, fpeak, tdelay, amp)
	for iss, g := range ag {
		o[iss] = make([][]float64, g.Ns())
		for is := 0; is < g.Ns(); is++ {
			o[iss][is] = w
		}
	}
	return
}

// WavData holds instructions to build source wavelets from a .sim file
type WavData struct {
	Type   string  `json:"type"`   // "ricker"
	Fpeak  float64 `json:"fpeak"`  // peak frequency
	Tdelay float64 `json:"tdelay"` // time delay; 0 means 1.5/fpeak
	Amp    float64 `json:"amp"`    // amplitude; 0 means 1
}

// Build creates the wavelets for geometry ag
func (o *WavData) Build(tg *TimeGrid, ag AGeom) (w SrcWav, err error) {
	if o.Type != "ricker" {
		return nil, chk.Err("unknown wavelet type %q", o.Type)
	}
	if o.Fpeak <= 0 {
		return nil, chk.Err("wavelet peak frequency must be positive. fpeak=%v is incorrect", o.Fpeak)
	}
	tdelay, amp := o.Tdelay, o.Amp
	if tdelay == 0 {
		tdelay = 1.5 / o.Fpeak
	}
	if amp == 0 {
		amp = 1
	}
	return RickerWavs(tg, ag, o.Fpeak, tdelay, amp), nil
}

// ZeroWavs builds a SrcWav of zeros matching geometry ag; useful as a
// placeholder for wavefields whose sources are disabled
func ZeroWavs(tg *TimeGrid, ag AGeom) (o SrcWav) {
	o = make(SrcWav, len(ag))
	for iss, g := range ag {
		o[iss] = make([][]float64, g.Ns())
		for is := 0; is < g.Ns(); is++ {
			o[iss][is] = make([]float64, tg.Nt)
		}
	}
	return
}
