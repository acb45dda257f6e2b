// Copyright 2016 The Goseis Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from a (.sim) JSON file
package inp

import (
	"encoding/json"

	"github.com/cpmech/goseis/mdl"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

// ModelKind distinguishes the modeling variants
type ModelKind int

// modeling variants
const (
	Acoustic      ModelKind = iota // plain acoustic propagation
	AcousticBorn                   // linearized (Born) modeling about a background medium
	AcousticVisco                  // viscoacoustic propagation (not implemented yet)
)

// Data holds global data for simulations
type Data struct {
	Desc    string `json:"desc"`    // description of simulation
	DirOut  string `json:"dirout"`  // directory for output; e.g. /tmp/goseis
	Verbose bool   `json:"verbose"` // show messages
}

// SetDefaults sets default values
func (o *Data) SetDefaults() {
	if o.DirOut == "" {
		o.DirOut = "/tmp/goseis"
	}
}

// TimeGrid holds the uniform recording time grid
type TimeGrid struct {
	T0 float64 `json:"t0"` // initial time
	Tf float64 `json:"tf"` // final time
	Nt int     `json:"nt"` // number of samples
}

// Dt returns the time step
func (o *TimeGrid) Dt() float64 { return (o.Tf - o.T0) / float64(o.Nt-1) }

// Times returns all sampling times
func (o *TimeGrid) Times() []float64 { return utl.LinSpace(o.T0, o.Tf, o.Nt) }

// Validate checks the time grid
func (o *TimeGrid) Validate() (err error) {
	if o.Nt < 2 {
		return chk.Err("time grid must have at least 2 samples. nt=%d is incorrect", o.Nt)
	}
	if o.Tf <= o.T0 {
		return chk.Err("time grid must have tf > t0. t0=%v, tf=%v is incorrect", o.T0, o.Tf)
	}
	return
}

// FdtdData holds the options controlling the finite-difference engine
type FdtdData struct {

	// modeling variant and wavefields
	Model string `json:"model"` // "acoustic", "born" or "visco"
	Npw   int    `json:"npw"`   // number of propagating wavefields: 1 or 2

	// source and receiver flags; one entry per propagating wavefield
	Sflags  []int    `json:"sflags"`  // 0: off, 1: injection rate, 2: pressure, 3: time-reversed pressure
	Rflags  []int    `json:"rflags"`  // 0: do not record, 1: record
	Rfields []string `json:"rfields"` // receiver fields; subset of {"p","vx","vz"}

	// absorbing boundaries
	AbsTrbl string  `json:"abstrbl"` // absorbing faces; e.g. "trbl" for top-right-bottom-left
	Npml    int     `json:"npml"`    // number of padding cells on each side
	Npoly   float64 `json:"npoly"`   // polynomial order of damping profile
	Rcoef   float64 `json:"rcoef"`   // theoretical reflection coefficient
	Kmax    float64 `json:"kmax"`    // maximum grid-stretch factor

	// source frequency band
	Fmin  float64 `json:"fmin"`  // minimum source frequency
	Fpeak float64 `json:"fpeak"` // peak source frequency
	Fmax  float64 `json:"fmax"`  // maximum source frequency

	// simulation modes
	Backprop int       `json:"backprop"` // +1: save boundaries, -1: replay them, 0: off
	Gmodel   bool      `json:"gmodel"`   // compute sensitivity kernels by adjoint state
	Illum    bool      `json:"illum"`    // accumulate illumination map
	Snaps    bool      `json:"snaps"`    // record snapshots of the pressure field
	Tsnaps   []float64 `json:"tsnaps"`   // times at which to record snapshots

	// resources
	Nworker int `json:"nworker"` // number of workers; 0 means automatic
	Ncheck  int `json:"ncheck"`  // interval (steps) of the non-finite wavefield check

	// derived
	Kind ModelKind `json:"-"` // parsed Model tag
}

// SetDefaults sets default values
func (o *FdtdData) SetDefaults() {
	if o.Model == "" {
		o.Model = "acoustic"
	}
	if o.Npw == 0 {
		o.Npw = 1
	}
	if o.Npml == 0 {
		o.Npml = 50
	}
	if o.Npoly == 0 {
		o.Npoly = 2
	}
	if o.Rcoef == 0 {
		o.Rcoef = 1e-6
	}
	if o.Kmax == 0 {
		o.Kmax = 1
	}
	if o.AbsTrbl == "" {
		o.AbsTrbl = "trbl"
	}
	if len(o.Rfields) == 0 {
		o.Rfields = []string{"p"}
	}
	if o.Ncheck == 0 {
		o.Ncheck = 200
	}
	if o.Fmin == 0 {
		o.Fmin = o.Fpeak / 2.0
	}
	if o.Fmax == 0 {
		o.Fmax = 2.0 * o.Fpeak
	}
}

// Validate checks option consistency
func (o *FdtdData) Validate() (err error) {
	switch o.Model {
	case "acoustic":
		o.Kind = Acoustic
	case "born":
		o.Kind = AcousticBorn
	case "visco":
		o.Kind = AcousticVisco
	default:
		return chk.Err("unknown modeling variant %q", o.Model)
	}
	if o.Npw != 1 && o.Npw != 2 {
		return chk.Err("number of propagating wavefields must be 1 or 2. npw=%d is incorrect", o.Npw)
	}
	if (o.Kind == AcousticBorn || o.Gmodel) && o.Npw != 2 {
		return chk.Err("born and gradient modes require npw=2. npw=%d is incorrect", o.Npw)
	}
	if o.Gmodel && o.Kind == AcousticBorn {
		return chk.Err("born and gradient modes cannot be combined")
	}
	if len(o.Sflags) != o.Npw {
		return chk.Err("sflags must have one entry per wavefield. len(sflags)=%d != npw=%d", len(o.Sflags), o.Npw)
	}
	if len(o.Rflags) != o.Npw {
		return chk.Err("rflags must have one entry per wavefield. len(rflags)=%d != npw=%d", len(o.Rflags), o.Npw)
	}
	for _, s := range o.Sflags {
		if s < 0 || s > 3 {
			return chk.Err("source flags must be in {0,1,2,3}. sflag=%d is incorrect", s)
		}
	}
	for _, r := range o.Rflags {
		if r != 0 && r != 1 {
			return chk.Err("receiver flags must be 0 or 1. rflag=%d is incorrect", r)
		}
	}
	for _, f := range o.Rfields {
		if f != "p" && f != "vx" && f != "vz" {
			return chk.Err("unknown receiver field %q", f)
		}
	}
	if o.Backprop < -1 || o.Backprop > 1 {
		return chk.Err("backprop flag must be -1, 0 or +1. backprop=%d is incorrect", o.Backprop)
	}
	for _, c := range o.AbsTrbl {
		if c != 't' && c != 'r' && c != 'b' && c != 'l' {
			return chk.Err("absorbing faces must be a subset of \"trbl\". %q is incorrect", o.AbsTrbl)
		}
	}
	if o.Fpeak <= 0 {
		return chk.Err("peak source frequency must be positive. fpeak=%v is incorrect", o.Fpeak)
	}
	if o.Npml < 6 {
		return chk.Err("padding must have at least 6 cells. npml=%d is incorrect", o.Npml)
	}
	if o.Snaps && len(o.Tsnaps) == 0 {
		return chk.Err("snapshots requested but tsnaps is empty")
	}
	return
}

// MediumData holds instructions to build a medium from a .sim file
type MediumData struct {
	Type string  `json:"type"` // "uniform" or "twolayer"
	Nz   int     `json:"nz"`   // number of cells along z
	Nx   int     `json:"nx"`   // number of cells along x
	Dz   float64 `json:"dz"`   // grid spacing along z
	Dx   float64 `json:"dx"`   // grid spacing along x
	Oz   float64 `json:"oz"`   // origin along z
	Ox   float64 `json:"ox"`   // origin along x
	Vp   float64 `json:"vp"`   // velocity (first layer)
	Rho  float64 `json:"rho"`  // density (first layer)
	Zint float64 `json:"zint"` // interface depth (twolayer)
	Vp2  float64 `json:"vp2"`  // velocity of second layer (twolayer)
	Rho2 float64 `json:"rho2"` // density of second layer (twolayer)
}

// Build creates the medium
func (o *MediumData) Build() (m *mdl.Medium, err error) {
	switch o.Type {
	case "uniform":
		m = mdl.Uniform(o.Nz, o.Nx, o.Dz, o.Dx, o.Oz, o.Ox, o.Vp, o.Rho)
	case "twolayer":
		m = mdl.TwoLayer(o.Nz, o.Nx, o.Dz, o.Dx, o.Oz, o.Ox, o.Zint, o.Vp, o.Rho, o.Vp2, o.Rho2)
	default:
		err = chk.Err("unknown medium type %q", o.Type)
	}
	return
}

// Simulation holds all simulation input data
type Simulation struct {

	// input
	Data    Data        `json:"data"`   // global data
	Time    TimeGrid    `json:"time"`   // recording time grid
	Fdtd    FdtdData    `json:"fdtd"`   // engine options
	MedData *MediumData `json:"medium"`  // medium construction data (.sim file path only)
	WavData *WavData    `json:"wavelet"` // wavelet construction data (.sim file path only)
	Geoms   []AGeom     `json:"ageom"`   // acquisition geometry; one per propagating wavefield
	Wavs    []SrcWav    `json:"srcwav"`  // source wavelets; one per propagating wavefield

	// derived
	Med  *mdl.Medium       `json:"-"` // the medium
	Pert *mdl.Perturbation `json:"-"` // model perturbation (born mode)
}

// Init sets defaults, derives auxiliary data and validates everything.
// The medium must be set, either directly or through MedData.
func (o *Simulation) Init() (err error) {

	// defaults
	o.Data.SetDefaults()
	o.Fdtd.SetDefaults()

	// time grid and options
	err = o.Time.Validate()
	if err != nil {
		return
	}
	err = o.Fdtd.Validate()
	if err != nil {
		return
	}

	// medium
	if o.Med == nil {
		if o.MedData == nil {
			return chk.Err("medium is missing")
		}
		o.Med, err = o.MedData.Build()
		if err != nil {
			return
		}
	}
	if o.Med.K == nil {
		err = o.Med.Derive()
		if err != nil {
			return
		}
	}

	// born perturbation
	if o.Fdtd.Kind == AcousticBorn && o.Pert == nil {
		return chk.Err("born mode requires a model perturbation")
	}

	// acquisition geometry
	if len(o.Geoms) != o.Fdtd.Npw {
		return chk.Err("ageom must have one entry per wavefield. len(ageom)=%d != npw=%d", len(o.Geoms), o.Fdtd.Npw)
	}
	nss := len(o.Geoms[0])
	if nss < 1 {
		return chk.Err("ageom must have at least one supersource")
	}
	for ipw, ag := range o.Geoms {
		if len(ag) != nss {
			return chk.Err("all wavefields must have the same number of supersources. len(ageom[%d])=%d != %d", ipw, len(ag), nss)
		}
		err = ag.Validate(o.Med)
		if err != nil {
			return
		}
	}

	// source wavelets from construction data
	if len(o.Wavs) == 0 && o.WavData != nil {
		o.Wavs = make([]SrcWav, o.Fdtd.Npw)
		for ipw := 0; ipw < o.Fdtd.Npw; ipw++ {
			if o.Fdtd.Sflags[ipw] != 0 {
				o.Wavs[ipw], err = o.WavData.Build(&o.Time, o.Geoms[ipw])
				if err != nil {
					return
				}
			} else {
				o.Wavs[ipw] = ZeroWavs(&o.Time, o.Geoms[ipw])
			}
		}
	}

	// source wavelets
	if len(o.Wavs) != o.Fdtd.Npw {
		return chk.Err("srcwav must have one entry per wavefield. len(srcwav)=%d != npw=%d", len(o.Wavs), o.Fdtd.Npw)
	}
	for ipw, sw := range o.Wavs {
		if o.Fdtd.Sflags[ipw] == 0 {
			continue
		}
		err = sw.Validate(o.Geoms[ipw], o.Time.Nt)
		if err != nil {
			return
		}
	}
	return
}

// Nss returns the number of supersources
func (o *Simulation) Nss() int { return len(o.Geoms[0]) }

// ReadSim reads a .sim JSON file. A bad input file cannot be recovered
// from, thus this function panics on any error (the CLI catches it).
func ReadSim(simfilepath string, verbose bool) (o *Simulation) {

	// read file
	b, err := io.ReadFile(simfilepath)
	if err != nil {
		chk.Panic("cannot read simulation file %q:\n%v", simfilepath, err)
	}

	// decode
	o = new(Simulation)
	err = json.Unmarshal(b, o)
	if err != nil {
		chk.Panic("cannot parse simulation file %q:\n%v", simfilepath, err)
	}

	// initialise
	err = o.Init()
	if err != nil {
		chk.Panic("cannot initialise simulation %q:\n%v", simfilepath, err)
	}
	if verbose {
		io.Pf("> %q read\n", simfilepath)
	}
	return
}
