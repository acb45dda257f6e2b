// Copyright 2016 The Goseis Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements analytical solutions
package ana

import (
	"math"

	"github.com/cpmech/gosl/fun"
)

// DirectArrival computes the traveltime and geometric spreading of the
// direct wave from a point source in a homogeneous 2-D medium
type DirectArrival struct {
	Vp float64 // medium velocity
	Zs float64 // source z-coordinate
	Xs float64 // source x-coordinate
}

// Init initialises this structure
func (o *DirectArrival) Init(prms fun.Prms) {
	o.Vp = 2000.0
	for _, p := range prms {
		switch p.N {
		case "vp":
			o.Vp = p.V
		case "zs":
			o.Zs = p.V
		case "xs":
			o.Xs = p.V
		}
	}
}

// Time returns the direct-arrival traveltime at point (z,x)
func (o DirectArrival) Time(z, x float64) float64 {
	return math.Hypot(z-o.Zs, x-o.Xs) / o.Vp
}

// Spread returns the 2-D geometric spreading factor 1/√r at (z,x)
func (o DirectArrival) Spread(z, x float64) float64 {
	r := math.Hypot(z-o.Zs, x-o.Xs)
	if r == 0 {
		return 1
	}
	return 1.0 / math.Sqrt(r)
}

// TwoLayerArrivals computes direct and reflected ray traveltimes for a
// source and receiver above a horizontal interface at depth Zint in a
// medium with first-layer velocity Vp1
type TwoLayerArrivals struct {
	Vp1  float64 // velocity of the first layer
	Zint float64 // interface depth
	Zs   float64 // source z-coordinate
	Xs   float64 // source x-coordinate
}

// Init initialises this structure
func (o *TwoLayerArrivals) Init(prms fun.Prms) {
	o.Vp1 = 2000.0
	for _, p := range prms {
		switch p.N {
		case "vp1":
			o.Vp1 = p.V
		case "zint":
			o.Zint = p.V
		case "zs":
			o.Zs = p.V
		case "xs":
			o.Xs = p.V
		}
	}
}

// Direct returns the direct-wave traveltime at (z,x)
func (o TwoLayerArrivals) Direct(z, x float64) float64 {
	return math.Hypot(z-o.Zs, x-o.Xs) / o.Vp1
}

// Reflected returns the traveltime of the wave reflected at the
// interface, using the image source at z = 2·Zint − Zs
func (o TwoLayerArrivals) Reflected(z, x float64) float64 {
	return math.Hypot(2.0*o.Zint-o.Zs-z, x-o.Xs) / o.Vp1
}
