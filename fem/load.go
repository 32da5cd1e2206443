// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

// Load holds prescribed forces (and moments) at a node
type Load struct {
	Node int       // index of node in the structure's list of nodes
	vals []float64 // [ndof] values aligned with the node's DOFs
}

// NewLoad returns a new load. The values are aligned with the DOFs of the node;
// e.g. [fx, fy, mz] for a node of a 2D frame
func NewLoad(node int, vals []float64) *Load {
	return &Load{Node: node, vals: append([]float64{}, vals...)}
}

// Vals returns a copy of the values
func (o *Load) Vals() []float64 { return append([]float64{}, o.vals...) }
