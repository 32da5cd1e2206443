// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"fmt"
)

// NumberDofs assigns global indices to all DOFs of all nodes. Indices form one contiguous
// block per node, following the order of nodes. Restrained DOFs are numbered too, so they
// can receive reactions
//
//	Output:
//	 eqs  -- [nnod][ndof] global indices of each node
//	 ndof -- total number of DOFs
func NumberDofs(nodes []*Node) (eqs [][]int, ndof int) {
	eqs = make([][]int, len(nodes))
	for i, nod := range nodes {
		eqs[i] = make([]int, nod.Ndof())
		for j := range eqs[i] {
			eqs[i][j] = ndof
			ndof++
		}
	}
	return
}

// ExpandDofs returns the global indices of an element: start node block then end node block
func ExpandDofs(e *Element, eqs [][]int) (umap []int, err error) {
	for _, idx := range e.NodeIdx {
		if idx < 0 || idx >= len(eqs) {
			return nil, fmt.Errorf("%w: element %d refers to node %d but there are %d nodes", ErrUnassociated, e.Id, idx, len(eqs))
		}
	}
	a, b := eqs[e.NodeIdx[0]], eqs[e.NodeIdx[1]]
	umap = make([]int, 0, len(a)+len(b))
	umap = append(umap, a...)
	umap = append(umap, b...)
	return
}

// Associate computes the elements attached to each node. An element must refer to the very
// nodes found in the list at its node indices
//
//	Output:
//	 incs -- [nnod] set of (element, end) pairs attached to each node
func Associate(nodes []*Node, elems []*Element) (incs [][]Incidence, err error) {
	incs = make([][]Incidence, len(nodes))
	seen := make(map[Incidence]int) // incidence => node
	for eid, e := range elems {
		if e == nil {
			return nil, fmt.Errorf("%w: element %d is nil", ErrUnassociated, eid)
		}
		for m, idx := range e.NodeIdx {
			if idx < 0 || idx >= len(nodes) || nodes[idx] != e.nodes[m] {
				return nil, fmt.Errorf("%w: element %d: node %d is not the node given at construction", ErrUnassociated, eid, idx)
			}
			inc := Incidence{Elem: eid, End: End(m)}
			if _, ok := seen[inc]; ok {
				continue
			}
			seen[inc] = idx
			incs[idx] = append(incs[idx], inc)
		}
	}
	return
}

// partition splits the global DOFs into free and restrained sets
func partition(dofs []bool) (free, fixed []int) {
	for i, isFree := range dofs {
		if isFree {
			free = append(free, i)
		} else {
			fixed = append(fixed, i)
		}
	}
	return
}
