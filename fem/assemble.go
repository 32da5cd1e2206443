// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/mat"
)

// assembleF writes all loads into F and into the nodes. Loads at the same node are added up
func (o *Structure) assembleF() (err error) {
	F := make([]float64, o.Ndof)
	for i, load := range o.Loads {
		if load == nil {
			return fmt.Errorf("%w: load %d is nil", ErrLoadDim, i)
		}
		if load.Node < 0 || load.Node >= len(o.Nodes) {
			return fmt.Errorf("%w: load %d refers to node %d but there are %d nodes", ErrInvalidNode, i, load.Node, len(o.Nodes))
		}
		nod := o.Nodes[load.Node]
		if len(load.vals) != len(nod.Eqs) {
			return fmt.Errorf("%w: load %d has %d values but node %d has %d DOFs", ErrLoadDim, i, len(load.vals), load.Node, len(nod.Eqs))
		}
		for j, I := range nod.Eqs {
			F[I] += load.vals[j]
		}
	}
	for _, nod := range o.Nodes {
		nod.Load = make([]float64, len(nod.Eqs))
		for j, I := range nod.Eqs {
			nod.Load[j] = F[I]
		}
	}
	o.F = mat.NewVecDense(o.Ndof, F)
	return
}

// computeKernels computes the stiffness matrices of all elements concurrently.
// Each goroutine writes to its own element only
func (o *Structure) computeKernels() error {
	var g errgroup.Group
	g.SetLimit(o.workers())
	for _, e := range o.Elems {
		g.Go(e.Stiffness)
	}
	return g.Wait()
}

// assembleK adds the global stiffness matrices of all elements into K
func (o *Structure) assembleK() (err error) {
	o.K = mat.NewDense(o.Ndof, o.Ndof, nil)
	for _, e := range o.Elems {
		if e.R == nil || e.K == nil {
			return fmt.Errorf("%w: element %d", ErrNoRotation, e.Id)
		}
		for i, I := range e.Eqs {
			for j, J := range e.Eqs {
				o.K.Set(I, J, o.K.At(I, J)+e.K.At(i, j))
			}
		}
	}
	return
}

// workers returns the number of goroutines computing element matrices
func (o *Structure) workers() int {
	if o.Nworkers > 0 {
		return o.Nworkers
	}
	return runtime.GOMAXPROCS(0)
}
