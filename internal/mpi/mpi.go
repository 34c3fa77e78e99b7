// Copyright (c) 2026 The micro25519 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mpi implements variable-length multi-precision integer arithmetic
// over little-endian arrays of word.W. It is the L1 layer of the arithmetic
// core: every function takes an explicit length so the same code serves
// any operand width, and every function (besides Mul) runs in constant
// time with respect to the values of its operands — only the length may
// vary the instruction count, and length is never secret.
//
// Arrays carry no length tag of their own; callers pass len and are
// responsible for ensuring r, a, and b (as applicable) have at least that
// many elements. Aliasing between r and the inputs is permitted everywhere
// except Mul, whose schoolbook accumulation overwrites r[i+j] while still
// needing its prior contents.
package mpi

import "github.com/johgrolux/micro25519/internal/word"

// Add sets r = a + b over len words and returns the carry out of the top
// word, 0 or 1.
func Add(r, a, b []word.W, length int) word.W {
	var carry word.DW
	for i := 0; i < length; i++ {
		sum := word.DW(a[i]) + word.DW(b[i]) + carry
		r[i] = word.W(sum)
		carry = sum >> word.WBits
	}
	return word.W(carry)
}

// CAdd sets r = a + (cond & 1)*b over len words, without branching on the
// condition bit, and returns the carry out of the top word.
func CAdd(r, a, b []word.W, cond word.W, length int) word.W {
	mask := 0 - (cond & 1)
	var carry word.DW
	for i := 0; i < length; i++ {
		sum := word.DW(a[i]) + word.DW(b[i]&mask) + carry
		r[i] = word.W(sum)
		carry = sum >> word.WBits
	}
	return word.W(carry)
}

// Sub sets r = a - b over len words in two's-complement form (so that
// r = 2^(32*len) + a - b when a < b) and returns the borrow out of the top
// word, 0 or 1.
func Sub(r, a, b []word.W, length int) word.W {
	var borrow word.SDW
	for i := 0; i < length; i++ {
		diff := word.SDW(a[i]) - word.SDW(b[i]) - borrow
		r[i] = word.W(diff)
		// diff is in [-2^32, 2^32-1]; its sign bit (bit 63 of the
		// 64-bit accumulator) is the borrow out of this word,
		// regardless of diff's magnitude.
		borrow = (diff >> 63) & 1
	}
	return word.W(borrow)
}

// Mul sets r = a * b, a 2*len-word product, using operand-scanning
// schoolbook multiplication. r must not alias a or b.
func Mul(r, a, b []word.W, length int) {
	for i := 0; i < 2*length; i++ {
		r[i] = 0
	}
	for i := 0; i < length; i++ {
		var carry word.DW
		ai := word.DW(a[i])
		for j := 0; j < length; j++ {
			acc := ai*word.DW(b[j]) + word.DW(r[i+j]) + carry
			r[i+j] = word.W(acc)
			carry = acc >> word.WBits
		}
		r[i+length] = word.W(carry)
	}
}

// Shr sets r = a >> 1 (logical) over len words and returns the LSB of a[0]
// before the shift.
func Shr(r, a []word.W, length int) word.W {
	lsbOut := a[0] & 1
	var carryIn word.W
	for i := length - 1; i >= 0; i-- {
		cur := a[i]
		r[i] = (cur >> 1) | (carryIn << (word.WBits - 1))
		carryIn = cur & 1
	}
	return lsbOut
}

// Cmp performs a constant-time three-way compare of a and b over len words
// and returns -1, 0, or +1. No early exit: every word is examined
// regardless of where the arrays first differ.
//
// len must not exceed word.WBits: each word's lt/gt verdict occupies one
// bit position in the lt/gt accumulators, most-significant word first, so
// the final numeric comparison of the two accumulators automatically picks
// out the verdict of the most significant word at which a and b differ
// (its bit outranks every verdict bit contributed by less significant
// words) without branching on where that word is.
func Cmp(a, b []word.W, length int) int {
	var lt, gt word.W
	for i := length - 1; i >= 0; i-- {
		lt = (lt << 1) | (ltBit(a[i], b[i]) & 1)
		gt = (gt << 1) | (ltBit(b[i], a[i]) & 1)
	}
	switch {
	case lt > gt:
		return -1
	case gt > lt:
		return 1
	default:
		return 0
	}
}

// CmpW is Cmp against a single-word value b, i.e. against the array
// [b, 0, 0, ..., 0] of length len.
func CmpW(a []word.W, b word.W, length int) int {
	var lt, gt word.W
	for i := length - 1; i >= 0; i-- {
		var bi word.W
		if i == 0 {
			bi = b
		}
		lt = (lt << 1) | (ltBit(a[i], bi) & 1)
		gt = (gt << 1) | (ltBit(bi, a[i]) & 1)
	}
	switch {
	case lt > gt:
		return -1
	case gt > lt:
		return 1
	default:
		return 0
	}
}

// SetW sets r = [w, 0, 0, ..., 0] over len words.
func SetW(r []word.W, w word.W, length int) {
	r[0] = w
	for i := 1; i < length; i++ {
		r[i] = 0
	}
}

// Copy sets r = a over len words.
func Copy(r, a []word.W, length int) {
	copy(r[:length], a[:length])
}

// ltBit returns 1 if x < y, else 0, derived from the sign bit of the
// signed difference rather than a branch on the comparison — the same
// technique Sub's own borrow extraction uses.
func ltBit(x, y word.W) word.W {
	return word.W((word.SDW(x) - word.SDW(y)) >> 63)
}
