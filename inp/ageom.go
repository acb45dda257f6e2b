// Copyright 2016 The Goseis Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"github.com/cpmech/goseis/mdl"
	"github.com/cpmech/gosl/chk"
)

// SSrcGeom holds the geometry of one supersource: the coordinates of
// all sources fired simultaneously and of all receivers listening
type SSrcGeom struct {
	Sz []float64 `json:"sz"` // z-coordinates of sources
	Sx []float64 `json:"sx"` // x-coordinates of sources
	Rz []float64 `json:"rz"` // z-coordinates of receivers
	Rx []float64 `json:"rx"` // x-coordinates of receivers
}

// Ns returns the number of sources
func (o *SSrcGeom) Ns() int { return len(o.Sz) }

// Nr returns the number of receivers
func (o *SSrcGeom) Nr() int { return len(o.Rz) }

// AGeom holds the acquisition geometry of one propagating wavefield:
// one SSrcGeom per supersource
type AGeom []*SSrcGeom

// Validate checks shapes and whether all points lie inside the mesh
func (o AGeom) Validate(med *mdl.Medium) (err error) {
	for iss, g := range o {
		if g == nil {
			return chk.Err("supersource %d has no geometry", iss)
		}
		if len(g.Sz) != len(g.Sx) {
			return chk.Err("supersource %d: source coordinate arrays must have the same length. len(sz)=%d != len(sx)=%d", iss, len(g.Sz), len(g.Sx))
		}
		if len(g.Rz) != len(g.Rx) {
			return chk.Err("supersource %d: receiver coordinate arrays must have the same length. len(rz)=%d != len(rx)=%d", iss, len(g.Rz), len(g.Rx))
		}
		if g.Ns() < 1 {
			return chk.Err("supersource %d has no sources", iss)
		}
		for is := 0; is < g.Ns(); is++ {
			if !med.Contains(g.Sz[is], g.Sx[is]) {
				return chk.Err("supersource %d: source %d at (%v,%v) lies outside the mesh [%v,%v]x[%v,%v]",
					iss, is, g.Sz[is], g.Sx[is], med.Oz, med.Zmax(), med.Ox, med.Xmax())
			}
		}
		for ir := 0; ir < g.Nr(); ir++ {
			if !med.Contains(g.Rz[ir], g.Rx[ir]) {
				return chk.Err("supersource %d: receiver %d at (%v,%v) lies outside the mesh [%v,%v]x[%v,%v]",
					iss, ir, g.Rz[ir], g.Rx[ir], med.Oz, med.Zmax(), med.Ox, med.Xmax())
			}
		}
	}
	return
}
