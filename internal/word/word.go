// Copyright (c) 2026 The micro25519 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package word defines the fixed-width integer types the rest of the
// arithmetic core is built from, plus the pseudo-Mersenne prime constants
// derived from them. Nothing here branches on a secret value; it is pure
// constant definition.
package word

// W is the fundamental unit the MPI and field kernels operate on.
type W = uint32

// DW holds any sum or product of two W values without loss.
type DW = uint64

// SDW is the signed counterpart of DW, used where an intermediate value
// (a borrow, a halving remainder) must be representable as negative.
type SDW = int64

const (
	// WBits is the bit width of W.
	WBits = 32

	// K is the exponent of the field prime p = 2^K - C.
	K = 255

	// C is the pseudo-Mersenne cofactor of p.
	C = 19

	// Len is the field-element width in words: ceil(K / WBits).
	Len = (K + WBits - 1) / WBits

	// TopBits is the number of value bits held in the most significant
	// word of a field element (K mod WBits, or WBits if K is a multiple
	// of it).
	TopBits = K - (Len-1)*WBits

	// TopMask masks the value bits of the top word (bits below position
	// K within word Len-1). For K=255, WBits=32 this is 0x7FFFFFFF.
	TopMask W = (1 << TopBits) - 1

	// TwoC and FourC are 2*C and 4*C, used throughout the reduction
	// formulas in the field kernel.
	TwoC  W = 2 * C
	FourC W = 4 * C
)
