// Copyright (c) 2026 The micro25519 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gf25519

import (
	"errors"

	"github.com/johgrolux/micro25519/internal/mpi"
	"github.com/johgrolux/micro25519/internal/word"
)

// ErrInversionOfZero is returned by Inv when its input is congruent to 0
// mod p.
var ErrInversionOfZero = errors.New("gf25519: inversion of zero")

// Inv sets r = a^-1 mod p using the binary Extended Euclidean Algorithm,
// maintaining a pair (ux, x1) and (vx, x2) with the invariant that x1 and
// x2 track a^-1 relative to ux and vx respectively until one side reaches
// 1.
//
// Inv is the one operation in this package that is not constant-time: its
// control flow depends on the bit pattern of a, by construction (a binary
// Euclidean inverter cannot avoid that and stay branch-free). Callers that
// invert a secret value must mask it first: pick a fresh random field
// element u, compute inv(a*u), then multiply the result by u to recover
// a^-1 without the timing of Inv itself depending on a. Inv does not do
// this internally because u must come from the caller's own entropy
// source, which this package has no dependency on.
func Inv(r, a *Elt) error {
	var ux, vx Elt
	var x1, x2 Elt

	mpi.Copy(ux[:], a[:], Len)
	Setp(&vx)
	x1 = one
	// x2 starts at the field element 0, which is the Elt zero value.

	uvlen := Len

	// Guard: inputs may arrive unreduced (up to 2^256-1), so ux may
	// start out larger than vx = p by more than one subtraction.
	for mpi.Cmp(ux[:uvlen], vx[:uvlen], uvlen) >= 0 {
		var t Elt
		mpi.Sub(t[:uvlen], ux[:uvlen], vx[:uvlen], uvlen)
		copy(ux[:uvlen], t[:uvlen])
	}

	if isZero(ux[:]) {
		return ErrInversionOfZero
	}

	for !isOne(ux[:uvlen], uvlen) && !isOne(vx[:uvlen], uvlen) {
		for ux[0]&1 == 0 {
			var shifted Elt
			mpi.Shr(shifted[:uvlen], ux[:uvlen], uvlen)
			copy(ux[:uvlen], shifted[:uvlen])
			Hlv(&x1, &x1)
		}
		for vx[0]&1 == 0 {
			var shifted Elt
			mpi.Shr(shifted[:uvlen], vx[:uvlen], uvlen)
			copy(vx[:uvlen], shifted[:uvlen])
			Hlv(&x2, &x2)
		}

		if mpi.Cmp(ux[:uvlen], vx[:uvlen], uvlen) >= 0 {
			var t Elt
			mpi.Sub(t[:uvlen], ux[:uvlen], vx[:uvlen], uvlen)
			copy(ux[:uvlen], t[:uvlen])
			Sub(&x1, &x1, &x2)
		} else {
			var t Elt
			mpi.Sub(t[:uvlen], vx[:uvlen], ux[:uvlen], uvlen)
			copy(vx[:uvlen], t[:uvlen])
			Sub(&x2, &x2, &x1)
		}

		if uvlen > 1 && ux[uvlen-1] == 0 && vx[uvlen-1] == 0 {
			uvlen--
		}
	}

	if isOne(ux[:uvlen], uvlen) {
		*r = x1
	} else {
		*r = x2
	}
	return nil
}

func isZero(v []word.W) bool {
	for _, w := range v {
		if w != 0 {
			return false
		}
	}
	return true
}

func isOne(v []word.W, length int) bool {
	return mpi.CmpW(v, 1, length) == 0
}
