// Copyright 2016 The Goseis Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
)

func Test_arrivals01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("arrivals01. direct wave")

	var sol DirectArrival
	sol.Init(fun.Prms{
		&fun.Prm{N: "vp", V: 2000},
		&fun.Prm{N: "zs", V: 100},
		&fun.Prm{N: "xs", V: 200},
	})
	chk.Scalar(tst, "t same point", 1e-15, sol.Time(100, 200), 0)
	chk.Scalar(tst, "t offset", 1e-15, sol.Time(100, 600), 0.2)
	chk.Scalar(tst, "t diagonal", 1e-15, sol.Time(400, 600), 0.25)
	chk.Scalar(tst, "spread", 1e-15, sol.Spread(100, 600), 0.05)
}

func Test_arrivals02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("arrivals02. two-layer reflection")

	var sol TwoLayerArrivals
	sol.Init(fun.Prms{
		&fun.Prm{N: "vp1", V: 2000},
		&fun.Prm{N: "zint", V: 600},
		&fun.Prm{N: "zs", V: 200},
		&fun.Prm{N: "xs", V: 150},
	})
	chk.Scalar(tst, "direct", 1e-15, sol.Direct(200, 450), 0.15)

	// zero offset: two-way normal-incidence time
	chk.Scalar(tst, "reflected zero-offset", 1e-15, sol.Reflected(200, 150), 2*400.0/2000.0)

	// with offset: image source at z = 2·zint − zs = 1000
	chk.Scalar(tst, "reflected", 1e-12, sol.Reflected(200, 450), 0.42720018726587652)
}
