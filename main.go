// Copyright 2016 The Goseis Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"flag"

	"github.com/cpmech/goseis/fdtd"
	"github.com/cpmech/goseis/inp"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			chk.Verbose = true
			for i := 8; i > 3; i-- {
				chk.CallerInfo(i)
			}
			io.PfRed("ERROR: %v\n", err)
		}
	}()

	// message
	io.PfWhite("\nGoseis -- 2D acoustic forward modeling and adjoint kernels\n\n")

	// simulation filenamepath
	flag.Parse()
	var fnamepath string
	if len(flag.Args()) > 0 {
		fnamepath = flag.Arg(0)
	} else {
		chk.Panic("please, provide a filename. Ex.: box.sim")
	}

	// check extension
	if io.FnExt(fnamepath) == "" {
		fnamepath += ".sim"
	}

	// read input and build experiment
	sim := inp.ReadSim(fnamepath, true)
	exp, err := fdtd.New(sim)
	if err != nil {
		chk.Panic("cannot build experiment:\n%v", err)
	}

	// run all supersources
	err = exp.Run()
	if err != nil {
		chk.Panic("simulation failed:\n%v", err)
	}

	// save records
	fnkey := io.FnKey(fnamepath)
	for iss := 0; iss < sim.Nss(); iss++ {
		rec := exp.Rec(iss)
		if rec == nil {
			continue
		}
		b, err := json.MarshalIndent(rec, "", "  ")
		if err != nil {
			chk.Panic("cannot encode records of supersource %d:\n%v", iss, err)
		}
		io.WriteFileSD(sim.Data.DirOut, io.Sf("%s-ss%d-records.json", fnkey, iss), string(b))
	}
	io.Pf("> Records saved in %s\n", sim.Data.DirOut)
}
