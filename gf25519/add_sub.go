// Copyright (c) 2026 The micro25519 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gf25519

import "github.com/johgrolux/micro25519/internal/word"

// Add sets r = a + b mod p, with r in [0, 2p-1]. The top-word sum is split
// into a 31-bit low part (the new top word) and an overflow part; the
// overflow, multiplied by c, is folded back in as the carry that seeds the
// single pass over the remaining words — the reduction is interlocked with
// the addition rather than run as a second loop.
func Add(r, a, b *Elt) {
	s := word.DW(a[Len-1]) + word.DW(b[Len-1])
	msw := word.W(s) & word.TopMask
	carryIn := word.DW(word.C) * (s >> word.TopBits)

	for i := 0; i < Len-1; i++ {
		sum := carryIn + word.DW(a[i]) + word.DW(b[i])
		r[i] = word.W(sum)
		carryIn = sum >> word.WBits
	}
	r[Len-1] = msw + word.W(carryIn)
}

// Sub sets r = a - b mod p, with r in [0, 2p-1]. Implemented as
// r = 4p + a - b so the running accumulator never goes negative. The
// top-word step starts from 4*p's top word plus a[7]-b[7], extracts the
// new 31-bit top word, and folds the rest into a signed carry in
// [-3c, c] that seeds the main pass; the +4 needed to complete the 4p
// offset is added back into the final top word once the pass is done.
func Sub(r, a, b *Elt) {
	raw := word.SDW(4)*word.SDW(word.TopMask) + word.SDW(a[Len-1]) - word.SDW(b[Len-1])
	msw := word.W(raw & word.SDW(word.TopMask))
	carryIn := word.SDW(word.C)*(raw>>word.TopBits) - word.SDW(4*word.C)

	for i := 0; i < Len-1; i++ {
		diff := carryIn + word.SDW(a[i]) - word.SDW(b[i])
		r[i] = word.W(diff)
		carryIn = diff >> word.WBits
	}
	r[Len-1] = msw + word.W(carryIn) + 4
}

// Cneg sets r = -a mod p (in [0, 2p-1]) when neg's LSB is 1, or r = a mod p
// (reduced into [0, 2p-1]) when it is 0 — without ever branching on neg.
// Both results are computed unconditionally through Add/Sub's fused
// reduction and the real one is picked with a mask-select, the same
// branch-free mask idiom internal/mpi.CAdd uses.
func Cneg(r, a *Elt, neg word.W) {
	var zero, viaAdd, viaSub Elt
	Add(&viaAdd, a, &zero)
	Sub(&viaSub, &zero, a)

	mask := 0 - (neg & 1)
	for i := 0; i < Len; i++ {
		r[i] = viaAdd[i] ^ ((viaAdd[i] ^ viaSub[i]) & mask)
	}
}

// Hlv sets r = a/2 mod p, with r in [0, 2p-1]. If a is even this is a
// plain shift; if a is odd, p is conditionally added first (branch-free,
// via CAdd) so the shift divides an even value, and the bit CAdd carried
// out of the top word is folded back in as the new top bit after the
// shift.
func Hlv(r, a *Elt) {
	oddBit := a[0] & 1
	var adjusted Elt
	carry := caddP(&adjusted, a, oddBit)
	shr(r, &adjusted)
	r[Len-1] |= carry << (word.WBits - 1)
}
