// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

// Cantilever holds the closed-form solution of a prismatic cantilever with loads at the free end
//
//	   |
//	   |o================o  --> N
//	   |    L, EA, EI    |
//	                     v V
type Cantilever struct {
	L  float64 // length
	EA float64 // axial stiffness
	EI float64 // bending stiffness about the axis normal to V
	GJ float64 // torsional stiffness
}

// Tip returns the deflection and rotation at the free end due to a transverse load V
func (o Cantilever) Tip(V float64) (δ, θ float64) {
	return V * o.L * o.L * o.L / (3.0 * o.EI), V * o.L * o.L / (2.0 * o.EI)
}

// Moment returns the bending moment at distance x from the support due to a transverse load V.
// Negative values stretch the face opposite to V
func (o Cantilever) Moment(V, x float64) float64 {
	return -V * (o.L - x)
}

// Elongation returns the axial displacement of the free end due to an axial load N
func (o Cantilever) Elongation(N float64) float64 {
	return N * o.L / o.EA
}

// Twist returns the rotation of the free end due to a torque T
func (o Cantilever) Twist(T float64) float64 {
	return T * o.L / o.GJ
}

// Bars345 returns the member forces of the 3-4-5 triangle with a horizontal load P at the top
//
//	 P --> (2)
//	        | \
//	      3 |   \ 5
//	        |     \
//	       (0)-----(1)
//	        ^   4   o
//
//	Output: [N01, N02, N12] (+ tension)
func Bars345(P float64) []float64 {
	return []float64{P, 0.75 * P, -1.25 * P}
}
