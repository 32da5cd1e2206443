// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package fem implements the linear static analysis of trusses and frames
package fem

import (
	"fmt"
	"sync"

	"github.com/cpmech/gosl/io"
	"gonum.org/v1/gonum/mat"
)

// DefaultCondMax is the default largest acceptable condition number of the reduced stiffness matrix
const DefaultCondMax = 1e14

// Structure holds all nodes, elements and loads in addition to the global system and results.
// Nodes and elements are mutated in place by Preprocess and Analyze; they must not be
// changed by callers while these run
type Structure struct {

	// input
	Nodes []*Node    // all nodes
	Elems []*Element // all elements
	Loads []*Load    // all loads (optional)

	// control
	Nworkers int     // number of goroutines computing element matrices; ≤ 0 means GOMAXPROCS
	CondMax  float64 // largest acceptable condition number of the reduced stiffness matrix
	Verbose  bool    // show messages

	// preprocessing
	Ndof  int   // total number of DOFs
	Free  []int // global indices of free DOFs
	Fixed []int // global indices of restrained DOFs

	// results
	K          *mat.Dense    // [ndof][ndof] global stiffness matrix
	F          *mat.VecDense // [ndof] global force vector
	U          *mat.VecDense // [ndof] displacements
	Reactions  *mat.VecDense // [ndof] reactions; zero at free DOFs
	Compliance float64       // Fᵗ·U

	// exclusive access during preprocessing and analysis
	mu sync.Mutex
}

// NewStructure returns a new structure after running Preprocess
//
//	Input:
//	 nodes -- all nodes
//	 elems -- all elements; built with NewElement from the same list of nodes
//	 loads -- [optional] loads
func NewStructure(nodes []*Node, elems []*Element, loads []*Load) (o *Structure, err error) {
	o = &Structure{Nodes: nodes, Elems: elems, Loads: loads, CondMax: DefaultCondMax}
	if err = o.Preprocess(); err != nil {
		return nil, err
	}
	return
}

// Preprocess associates nodes and elements and computes the global DOF indices of nodes and
// elements. It recomputes everything from scratch, thus calling it again gives the same results
func (o *Structure) Preprocess() (err error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.preprocess()
}

// Analyze applies the loads, assembles the global system, solves for the displacements and
// computes reactions, member forces and compliance. On failure, all results are cleared
func (o *Structure) Analyze() (err error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.clear()
	defer func() {
		if err != nil {
			o.clear()
		}
	}()

	// indices may have been invalidated by changes to the model
	if err = o.preprocess(); err != nil {
		return
	}

	// message
	if o.Verbose {
		io.Pf(">> Number of nodes = %d\n", len(o.Nodes))
		io.Pf(">> Number of elements = %d\n", len(o.Elems))
		io.Pf(">> Number of equations = %d (free = %d, restrained = %d)\n", o.Ndof, len(o.Free), len(o.Fixed))
	}

	// global system
	if err = o.assembleF(); err != nil {
		return
	}
	if err = o.computeKernels(); err != nil {
		return
	}
	if err = o.assembleK(); err != nil {
		return
	}

	// solution
	if err = o.solve(); err != nil {
		return
	}
	o.recover()

	// message
	if o.Verbose {
		io.Pf(">> Compliance = %g\n", o.Compliance)
	}
	return
}

// Dofs returns the DOF-activity flags of all nodes concatenated in node order
func (o *Structure) Dofs() (dofs []bool) {
	for _, nod := range o.Nodes {
		dofs = append(dofs, nod.dofs...)
	}
	return
}

// preprocess implements Preprocess. Nodes and elements are only modified if all checks pass
func (o *Structure) preprocess() (err error) {
	if len(o.Nodes) == 0 {
		return fmt.Errorf("%w: structure has no nodes", ErrInvalidNode)
	}
	for i, nod := range o.Nodes {
		if nod == nil {
			return fmt.Errorf("%w: node %d is nil", ErrInvalidNode, i)
		}
	}

	// node-element association
	incs, err := Associate(o.Nodes, o.Elems)
	if err != nil {
		return
	}

	// global indices of nodes and elements
	eqs, ndof := NumberDofs(o.Nodes)
	umaps := make([][]int, len(o.Elems))
	for i, e := range o.Elems {
		umaps[i], err = ExpandDofs(e, eqs)
		if err != nil {
			return
		}
	}

	// commit
	for i, nod := range o.Nodes {
		nod.Eqs = eqs[i]
		nod.Elems = incs[i]
	}
	for i, e := range o.Elems {
		e.Id = i
		e.Eqs = umaps[i]
	}
	o.Ndof = ndof
	o.Free, o.Fixed = partition(o.Dofs())
	return
}

// clear erases all results
func (o *Structure) clear() {
	o.K, o.F, o.U, o.Reactions = nil, nil, nil, nil
	o.Compliance = 0
	for _, nod := range o.Nodes {
		if nod != nil {
			nod.Load, nod.Disp, nod.Reaction = nil, nil, nil
		}
	}
	for _, e := range o.Elems {
		if e != nil {
			e.clear()
		}
	}
}
