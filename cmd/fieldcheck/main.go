// Copyright (c) 2026 The micro25519 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command fieldcheck loads a test-vector file (see internal/testvector for
// the format) and reports, for each vector, whether the field kernel's
// computed result matches the expected one after full reduction.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/golang/glog"

	"github.com/johgrolux/micro25519/gf25519"
	"github.com/johgrolux/micro25519/internal/testvector"
)

func main() {
	os.Exit(run())
}

func run() int {
	verbose := flag.Bool("verbose", false, "log every vector, not just failures")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: fieldcheck [-verbose] <vector-file>")
		return 2
	}

	f, err := os.Open(flag.Arg(0))
	if err != nil {
		glog.Errorf("fieldcheck: %v", err)
		return 1
	}
	defer f.Close()

	file, err := testvector.Parse(f)
	if err != nil {
		glog.Errorf("fieldcheck: %v", err)
		return 1
	}

	passed, failed := 0, 0
	for i, v := range file.Vectors {
		got := evaluate(file.Operation, v)

		var want gf25519.Elt
		gf25519.Fred(&want, &v.Res)

		if gf25519.Cmp(&got, &want) == 0 {
			passed++
			if *verbose {
				glog.Infof("%s vector %d: pass", file.Operation, i)
			}
			continue
		}
		failed++
		glog.Errorf("%s vector %d: fail", file.Operation, i)
	}

	glog.Infof("%s: %d passed, %d failed", file.Operation, passed, failed)
	glog.Flush()
	if failed > 0 {
		return 1
	}
	return 0
}

// evaluate runs the named operation (fully reduced) against a vector's
// operands.
func evaluate(op string, v testvector.Vector) gf25519.Elt {
	var got gf25519.Elt
	switch op {
	case "Addition":
		gf25519.Add(&got, &v.Op1, &v.Op2)
	case "Subtraction":
		gf25519.Sub(&got, &v.Op1, &v.Op2)
	case "Multiplication":
		gf25519.Mul(&got, &v.Op1, &v.Op2)
	case "Multiplication (32 bit)":
		gf25519.Mul32(&got, &v.Op1, v.Op2[0])
	case "Squaring":
		gf25519.Sqr(&got, &v.Op1)
	case "Halving":
		gf25519.Hlv(&got, &v.Op1)
	case "Negation":
		gf25519.Cneg(&got, &v.Op1, 1)
	}
	var reduced gf25519.Elt
	gf25519.Fred(&reduced, &got)
	return reduced
}
