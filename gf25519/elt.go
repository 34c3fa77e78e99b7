// Copyright (c) 2026 The micro25519 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gf25519 implements GF(p) arithmetic for the pseudo-Mersenne prime
// p = 2^255 - 19, with the modular reduction folded into the arithmetic.
// Add, Sub and Mul32 reduce within their single pass over the operand
// words, and Mul and Sqr fold their 16-word product back in two reduction
// passes. Cneg and Hlv are not fused into one pass of their own: Cneg runs
// both Add and Sub and selects one result, and Hlv is a conditional add of
// p followed by a separate shift. It is the L2/L3 layer of the
// arithmetic core described alongside this package: every function accepts
// operands in [0, 2^256) and returns a result in [0, 2p-1] (the "output
// tightness invariant"); callers that need the canonical least-residue form
// call Fred.
//
// Every function here except Inv runs in constant time: no branch, loop
// bound, or memory access depends on the value of a secret operand. Inv is
// explicitly exempted — its control flow is inherently data-dependent — and
// callers that invert secret values must mask it themselves (see Inv's
// doc comment).
package gf25519

import (
	"github.com/johgrolux/micro25519/internal/mpi"
	"github.com/johgrolux/micro25519/internal/word"
)

// Len is the field-element width in words.
const Len = word.Len

// Elt is a field element: an 8-word little-endian unsigned integer,
// congruent mod p to the value it represents but not necessarily in
// [0, p-1]. The zero value is the field element 0.
type Elt [Len]word.W

// p is the field modulus 2^255 - 19, little-endian.
var p = Elt{0xFFFFFFED, 0xFFFFFFFF, 0xFFFFFFFF, 0xFFFFFFFF, 0xFFFFFFFF, 0xFFFFFFFF, 0xFFFFFFFF, 0x7FFFFFFF}

// one is the field element 1.
var one = Elt{1, 0, 0, 0, 0, 0, 0, 0}

// Setp sets r to the field modulus p.
func Setp(r *Elt) {
	*r = p
}

// Cmpp compares a against the hard-coded word pattern of p without
// canonicalizing a first; a's domain already fits 256 bits so no prior
// reduction is needed. Returns -1, 0, or +1.
func Cmpp(a *Elt) int {
	return mpi.Cmp(a[:], p[:], Len)
}

// Cmp compares a and b for mathematical equality mod p: both operands are
// canonicalized via the Fred pattern into scratch buffers, then compared
// with a constant-time three-way compare. Returns -1, 0, or +1.
func Cmp(a, b *Elt) int {
	var fa, fb Elt
	Fred(&fa, a)
	Fred(&fb, b)
	return mpi.Cmp(fa[:], fb[:], Len)
}

// Fred canonicalizes a into r, so that r is in [0, p-1] and r is congruent
// to a mod p. Two rounds of (conditionally subtract p) are used rather than
// one because inputs may arrive in [0, 2p) or even less-tightly reduced,
// and a single subtraction pass is only guaranteed to land in [0, 2p-1]
// again.
func Fred(r, a *Elt) {
	var t Elt
	t = *a
	for round := 0; round < 2; round++ {
		var sub Elt
		borrow := mpi.Sub(sub[:], t[:], p[:], Len)
		// sub = t - p in two's complement; if that underflowed
		// (t < p), add p back to recover t unchanged.
		var restored Elt
		mpi.CAdd(restored[:], sub[:], p[:], borrow, Len)
		t = restored
	}
	*r = t
}
