// Copyright (c) 2026 The micro25519 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gf25519

import (
	"golang.org/x/sys/cpu"

	"github.com/johgrolux/micro25519/internal/mpi"
	"github.com/johgrolux/micro25519/internal/word"
)

// fastProduct selects, once at package init, which of the two equivalent
// schoolbook-product implementations below Mul and Sqr call. Both are pure
// Go and produce bit-identical output for any input (TestProductPathsAgree
// checks this); the only thing the selection changes is whether the
// 16-word scratch buffer is fully zeroed up front or whether its first nine
// words are seeded directly by a peeled first iteration, which avoids a
// separate zeroing pass over those words. On amd64 with BMI2 available we
// take the peeled path; elsewhere we fall back to the straightforward
// zero-then-accumulate path built on internal/mpi.Mul, which is the L1
// kernel that this package is layered over.
var fastProduct bool

func init() {
	fastProduct = cpu.X86.HasBMI2
}

// product computes the full 16-word product t = a*b.
func product(t *[2 * Len]word.W, a, b *Elt) {
	if fastProduct {
		productPeeled(t, a, b)
	} else {
		mpi.Mul(t[:], a[:], b[:], Len)
	}
}

// productPeeled computes the same 16-word product as internal/mpi.Mul, but
// initializes t[0:Len+1] directly from the i=0 row instead of zeroing all
// 2*Len words up front; only the words the i=0 row doesn't reach need an
// explicit zero.
func productPeeled(t *[2 * Len]word.W, a, b *Elt) {
	var carry word.DW
	a0 := word.DW(a[0])
	for j := 0; j < Len; j++ {
		acc := a0*word.DW(b[j]) + carry
		t[j] = word.W(acc)
		carry = acc >> word.WBits
	}
	t[Len] = word.W(carry)
	for k := Len + 1; k < 2*Len; k++ {
		t[k] = 0
	}

	for i := 1; i < Len; i++ {
		var rowCarry word.DW
		ai := word.DW(a[i])
		for j := 0; j < Len; j++ {
			acc := ai*word.DW(b[j]) + word.DW(t[i+j]) + rowCarry
			t[i+j] = word.W(acc)
			rowCarry = acc >> word.WBits
		}
		t[i+Len] = word.W(rowCarry)
	}
}

// reduce folds a 16-word product t into r, a field element in [0, 2p-1].
// First pass: fold the high 8 words into the low 8 via t[i] += t[i+8]*2c,
// using the identity 2^256 ≡ 2c (mod p). Second pass: the leftover carry
// out of that fold, combined with t[7], forms a value whose bits above
// position 255 are folded back in through another multiply-by-c, exactly
// as Add and Sub fold their own top-word overflow.
func reduce(t *[2 * Len]word.W, r *Elt) {
	var carry word.DW
	for i := 0; i < Len; i++ {
		sum := word.DW(t[i]) + word.DW(t[i+Len])*word.DW(word.TwoC) + carry
		t[i] = word.W(sum)
		carry = sum >> word.WBits
	}

	combined := (carry << word.WBits) | word.DW(t[Len-1])
	msw := word.W(combined) & word.TopMask
	upper := combined >> word.TopBits

	sum := word.DW(t[0]) + upper*word.DW(word.C)
	r[0] = word.W(sum)
	carry2 := sum >> word.WBits
	for i := 1; i < Len-1; i++ {
		sum = word.DW(t[i]) + carry2
		r[i] = word.W(sum)
		carry2 = sum >> word.WBits
	}
	r[Len-1] = msw + word.W(carry2)
}

// Mul sets r = a*b mod p, with r in [0, 2p-1].
func Mul(r, a, b *Elt) {
	var t [2 * Len]word.W
	product(&t, a, b)
	reduce(&t, r)
}

// Sqr sets r = a*a mod p, with r in [0, 2p-1]. Built from the same
// schoolbook product as Mul; the off-diagonal-doubling shortcut some
// embedded implementations use for squaring is a performance variant of
// the identical computation, not a distinct one, and is left out here.
func Sqr(r, a *Elt) {
	var t [2 * Len]word.W
	product(&t, a, a)
	reduce(&t, r)
}

// Mul32 sets r = a*b mod p for a single-word scalar b, with r in
// [0, 2p-1]. The product fits in Len+1 words; reduction folds the overflow
// above position 255 (t[Len]*2c, plus c for the single overflow bit above
// that) into the carry that seeds the pass over the remaining words.
func Mul32(r, a *Elt, b word.W) {
	var t [Len + 1]word.W
	var carry word.DW
	for i := 0; i < Len; i++ {
		acc := word.DW(a[i])*word.DW(b) + carry
		t[i] = word.W(acc)
		carry = acc >> word.WBits
	}
	t[Len] = word.W(carry)

	topBit := (t[Len-1] >> word.TopBits) & 1
	msw := t[Len-1] & word.TopMask
	carryIn := word.DW(t[Len])*word.DW(word.TwoC) + word.DW(topBit)*word.DW(word.C)

	sum := word.DW(t[0]) + carryIn
	r[0] = word.W(sum)
	carry2 := sum >> word.WBits
	for i := 1; i < Len-1; i++ {
		sum = word.DW(t[i]) + carry2
		r[i] = word.W(sum)
		carry2 = sum >> word.WBits
	}
	r[Len-1] = msw + word.W(carry2)
}
