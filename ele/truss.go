// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import (
	"gonum.org/v1/gonum/mat"
)

// Truss represents an axial bar (tension/compression only) with 2 nodes
//
//	(0)--------------------(1) ----> x (local)
//	 u0                     u1       Props: E, A
//
// The local stiffness matrix acts on the axial DOFs only; the transverse DOFs of the
// local system are kept so that Kl and R have the same size.

// register variants
func init() {
	SetVariant(Truss2D, &Variant{
		Name:     "truss2d",
		Ndim:     2,
		Keys:     []string{"ux", "uy"},
		Y2F:      map[string]string{"ux": "fx", "uy": "fy"},
		Kernel:   trussKernel(2),
		Rotation: rotation2d(false),
		Check:    checkTruss(Truss2D),
	})
	SetVariant(Truss3D, &Variant{
		Name:     "truss3d",
		Ndim:     3,
		Keys:     []string{"ux", "uy", "uz"},
		Y2F:      map[string]string{"ux": "fx", "uy": "fy", "uz": "fz"},
		Kernel:   trussKernel(3),
		Rotation: rotation3d(2),
		Check:    checkTruss(Truss3D),
	})
}

// trussKernel returns the local stiffness function of a bar with nd DOFs per node
func trussKernel(nd int) KernelFunc {
	return func(p *Props, L float64) *mat.Dense {
		α := p.E * p.A / L
		kl := mat.NewDense(2*nd, 2*nd, nil)
		kl.Set(0, 0, +α)
		kl.Set(0, nd, -α)
		kl.Set(nd, 0, -α)
		kl.Set(nd, nd, +α)
		return kl
	}
}

func checkTruss(kind Kind) CheckFunc {
	return func(p *Props) error {
		return check(kind, "E,A", p.E, p.A)
	}
}
