// Copyright 2016 The Goseis Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fdtd

import (
	"math/cmplx"

	"github.com/cpmech/gosl/chk"
)

// ErrorAfterScaling computes the scalar α minimizing ‖α·x − y‖² and
// the remaining misfit J = ‖α·x − y‖²; i.e. α = ⟨x,y⟩/⟨x,x⟩
func ErrorAfterScaling(x, y []float64) (α, J float64, err error) {
	if len(x) != len(y) {
		err = chk.Err("signals must have the same length. %d != %d", len(x), len(y))
		return
	}
	var xy, xx float64
	for i := 0; i < len(x); i++ {
		xy += x[i] * y[i]
		xx += x[i] * x[i]
	}
	if xx == 0 {
		err = chk.Err("cannot scale: ⟨x,x⟩ is zero")
		return
	}
	α = xy / xx
	for i := 0; i < len(x); i++ {
		d := α*x[i] - y[i]
		J += d * d
	}
	return
}

// ErrorAfterScalingC is the complex variant of ErrorAfterScaling:
// α = ⟨x,y⟩/⟨x,x⟩ with the conjugate-linear inner product
func ErrorAfterScalingC(x, y []complex128) (α complex128, J float64, err error) {
	if len(x) != len(y) {
		err = chk.Err("signals must have the same length. %d != %d", len(x), len(y))
		return
	}
	var xy complex128
	var xx float64
	for i := 0; i < len(x); i++ {
		xy += cmplx.Conj(x[i]) * y[i]
		xx += real(cmplx.Conj(x[i]) * x[i])
	}
	if xx == 0 {
		err = chk.Err("cannot scale: ⟨x,x⟩ is zero")
		return
	}
	α = xy / complex(xx, 0)
	for i := 0; i < len(x); i++ {
		d := α*x[i] - y[i]
		J += real(cmplx.Conj(d) * d)
	}
	return
}
