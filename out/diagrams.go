// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"math"

	"github.com/keithjlee/dsg-wbm/ele"
	"github.com/keithjlee/dsg-wbm/fem"
)

// Forces holds internal forces at a cross-section in the local system of a member
//
//	N  -- axial force (+ tension)
//	Vy -- shear force along local y
//	Vz -- shear force along local z (3D)
//	T  -- torsional moment (3D)
//	My -- bending moment about local y (3D)
//	Mz -- bending moment about local z (frames)
type Forces struct {
	N, Vy, Vz, T, My, Mz float64
}

// Section computes the internal forces at distance x from the start of an analysed element.
// Members carry no span loads, thus shear forces are constant and moments vary linearly
func Section(e *fem.Element, x float64) (f Forces) {
	if len(e.Pl) == 0 {
		return
	}
	p := e.Pl
	nd := len(p) / 2
	f.N = p[nd]
	switch e.Kind {
	case ele.Frame2D:
		f.Vy = p[1]
		f.Mz = -p[2] + p[1]*x
	case ele.Frame3D:
		f.Vy = p[1]
		f.Vz = p[2]
		f.T = -p[3]
		f.My = -p[4] - p[2]*x
		f.Mz = -p[5] + p[1]*x
	}
	return
}

// Diagram computes the internal forces at nstations equally spaced stations along an element
//
//	Output:
//	 xs -- [nstations] distances from the start node
//	 fs -- [nstations] internal forces
func Diagram(e *fem.Element, nstations int) (xs []float64, fs []Forces) {
	if nstations < 2 {
		nstations = 2
	}
	xs = make([]float64, nstations)
	fs = make([]Forces, nstations)
	for i := 0; i < nstations; i++ {
		xs[i] = e.L * float64(i) / float64(nstations-1)
		fs[i] = Section(e, xs[i])
	}
	return
}

// MaxMoment returns the largest absolute bending moment along an element.
// Moments vary linearly, thus the ends are enough
func MaxMoment(e *fem.Element) (M float64) {
	for _, x := range []float64{0, e.L} {
		f := Section(e, x)
		M = max(M, math.Abs(f.My), math.Abs(f.Mz))
	}
	return
}
