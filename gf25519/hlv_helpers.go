// Copyright (c) 2026 The micro25519 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gf25519

import (
	"github.com/johgrolux/micro25519/internal/mpi"
	"github.com/johgrolux/micro25519/internal/word"
)

// caddP sets r = a + (cond&1)*p and returns the carry out of the top word.
func caddP(r, a *Elt, cond word.W) word.W {
	return mpi.CAdd(r[:], a[:], p[:], cond, Len)
}

// shr sets r = a >> 1 (logical, over the full element width).
func shr(r, a *Elt) {
	mpi.Shr(r[:], a[:], Len)
}
