// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// recover computes element end forces, nodal results and compliance
func (o *Structure) recover() {
	for _, e := range o.Elems {
		e.Recover(o.U)
	}
	for _, nod := range o.Nodes {
		nod.Disp = make([]float64, len(nod.Eqs))
		nod.Reaction = make([]float64, len(nod.Eqs))
		for j, I := range nod.Eqs {
			nod.Disp[j] = o.U.AtVec(I)
			nod.Reaction[j] = o.Reactions.AtVec(I)
		}
	}
	o.Compliance = mat.Dot(o.F, o.U)
}

// Equilibrium returns, for each global direction (x, y and z in 3D), the sum of all nodal
// loads and reactions. The result is nil if the structure has not been analysed
func (o *Structure) Equilibrium() (sum []float64) {
	if o.U == nil {
		return
	}
	ndim := 0
	for _, nod := range o.Nodes {
		if nod.Ndim() > ndim {
			ndim = nod.Ndim()
		}
	}
	sum = make([]float64, ndim)
	for _, nod := range o.Nodes {
		for d := 0; d < nod.Ndim(); d++ { // translations come first in all layouts
			sum[d] += nod.Load[d] + nod.Reaction[d]
		}
	}
	return
}

// MaxDisp returns the largest absolute translation and the node and DOF key where it happens.
// node is -1 if the structure has not been analysed
func (o *Structure) MaxDisp() (val float64, node int, key string) {
	node = -1
	for i, nod := range o.Nodes {
		for j := 0; j < len(nod.Disp) && j < nod.Ndim(); j++ {
			u := math.Abs(nod.Disp[j])
			if node < 0 || u > val {
				val, node, key = u, i, nod.keys[j]
			}
		}
	}
	return
}
