// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import (
	"gonum.org/v1/gonum/mat"
)

// Frame represents a structural beam-column (Euler-Bernoulli, linear elastic) with 2 nodes
//
//	2D    y               Props:     DOFs per node:
//	      ^               E, A, Iz   ux, uy, rz
//	      |
//	     (0)-------------------(1) ----> x
//
//	3D    y               Props:                DOFs per node:
//	      ^               E, G, A, Iz, Iy, J    ux, uy, uz, rx, ry, rz
//	      |
//	     (0)-------------------(1) ----> x
//	     /
//	    z      y is the up vector made orthogonal to x and rotated by ψ about x

// register variants
func init() {
	SetVariant(Frame2D, &Variant{
		Name:     "frame2d",
		Ndim:     2,
		Keys:     []string{"ux", "uy", "rz"},
		Y2F:      map[string]string{"ux": "fx", "uy": "fy", "rz": "mz"},
		Kernel:   frame2dKernel,
		Rotation: rotation2d(true),
		Check: func(p *Props) error {
			return check(Frame2D, "E,A,Iz", p.E, p.A, p.Iz)
		},
	})
	SetVariant(Frame3D, &Variant{
		Name:     "frame3d",
		Ndim:     3,
		Keys:     []string{"ux", "uy", "uz", "rx", "ry", "rz"},
		Y2F:      map[string]string{"ux": "fx", "uy": "fy", "uz": "fz", "rx": "mx", "ry": "my", "rz": "mz"},
		Kernel:   frame3dKernel,
		Rotation: rotation3d(4),
		Check: func(p *Props) error {
			return check(Frame3D, "E,A,G,Iz,Iy,J", p.E, p.A, p.G, p.Iz, p.Iy, p.J)
		},
	})
}

// frame2dKernel computes the 6x6 local stiffness matrix. local DOFs: u0 v0 θ0 u1 v1 θ1
func frame2dKernel(p *Props, l float64) *mat.Dense {

	// aux vars
	ll := l * l
	m := p.E * p.A / l
	n := p.E * p.Iz / (ll * l)

	// upper triangle
	kl := mat.NewDense(6, 6, nil)
	set := symSetter(kl)
	set(0, 0, m)
	set(0, 3, -m)
	set(1, 1, 12*n)
	set(1, 2, 6*l*n)
	set(1, 4, -12*n)
	set(1, 5, 6*l*n)
	set(2, 2, 4*ll*n)
	set(2, 4, -6*l*n)
	set(2, 5, 2*ll*n)
	set(3, 3, m)
	set(4, 4, 12*n)
	set(4, 5, -6*l*n)
	set(5, 5, 4*ll*n)
	return kl
}

// frame3dKernel computes the 12x12 local stiffness matrix.
// local DOFs per node: u v w θx θy θz. v,θz bend with Iz and w,θy bend with Iy
func frame3dKernel(p *Props, l float64) *mat.Dense {

	// constants
	EIz := p.E * p.Iz
	EIy := p.E * p.Iy
	GJ := p.G * p.J
	EA := p.E * p.A
	ll := l * l
	lll := l * ll

	// upper triangle
	kl := mat.NewDense(12, 12, nil)
	set := symSetter(kl)

	// axial
	set(0, 0, EA/l)
	set(0, 6, -EA/l)
	set(6, 6, EA/l)

	// torsion
	set(3, 3, GJ/l)
	set(3, 9, -GJ/l)
	set(9, 9, GJ/l)

	// bending in local x-y plane
	set(1, 1, 12.0*EIz/lll)
	set(1, 5, 6.0*EIz/ll)
	set(1, 7, -12.0*EIz/lll)
	set(1, 11, 6.0*EIz/ll)
	set(5, 5, 4.0*EIz/l)
	set(5, 7, -6.0*EIz/ll)
	set(5, 11, 2.0*EIz/l)
	set(7, 7, 12.0*EIz/lll)
	set(7, 11, -6.0*EIz/ll)
	set(11, 11, 4.0*EIz/l)

	// bending in local x-z plane
	set(2, 2, 12.0*EIy/lll)
	set(2, 4, -6.0*EIy/ll)
	set(2, 8, -12.0*EIy/lll)
	set(2, 10, -6.0*EIy/ll)
	set(4, 4, 4.0*EIy/l)
	set(4, 8, 6.0*EIy/ll)
	set(4, 10, 2.0*EIy/l)
	set(8, 8, 12.0*EIy/lll)
	set(8, 10, 6.0*EIy/ll)
	set(10, 10, 4.0*EIy/l)
	return kl
}

// symSetter returns a function that sets both (i,j) and (j,i)
func symSetter(a *mat.Dense) func(i, j int, v float64) {
	return func(i, j int, v float64) {
		a.Set(i, j, v)
		a.Set(j, i, v)
	}
}
