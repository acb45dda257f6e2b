// Copyright 2016 The Goseis Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fdtd

import "github.com/cpmech/gosl/la"

// Records holds the receiver time series of one supersource: one
// (Nt,Nr) matrix per requested receiver field. Matrices of fields not
// requested stay nil.
type Records struct {
	P  [][]float64 // pressure records (Nt,Nr)
	Vx [][]float64 // vx records (Nt,Nr)
	Vz [][]float64 // vz records (Nt,Nr)
}

// NewRecords allocates record matrices for the requested fields
func NewRecords(nt, nr int, rfields []string) (o *Records) {
	o = new(Records)
	for _, f := range rfields {
		switch f {
		case "p":
			o.P = la.MatAlloc(nt, nr)
		case "vx":
			o.Vx = la.MatAlloc(nt, nr)
		case "vz":
			o.Vz = la.MatAlloc(nt, nr)
		}
	}
	return
}
