// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"fmt"

	"github.com/keithjlee/dsg-wbm/ele"
	"gonum.org/v1/gonum/mat"
)

// Element holds a 2-node member (truss or frame) of the structure
type Element struct {

	// basic data
	Id      int       // index in the structure's list of elements (set by Structure)
	NodeIdx [2]int    // indices of start and end nodes
	Kind    ele.Kind  // variant
	Props   ele.Props // section and material properties
	nodes   [2]*Node  // start and end nodes

	// geometry
	L float64    // length
	R *mat.Dense // [nu][nu] global-to-local rotation matrix

	// stiffness (written by Structure.Analyze)
	Kl *mat.Dense // [nu][nu] local stiffness matrix
	K  *mat.Dense // [nu][nu] global stiffness matrix: Rᵗ·Kl·R

	// problem variables
	Eqs []int // [nu] global DOF indices: start node block followed by end node block

	// results (written by Structure.Analyze)
	Ul []float64 // [nu] local displacements
	Pl []float64 // [nu] local end forces
	Pg []float64 // [nu] global end forces
	N  float64   // axial force: negative = compression, positive = tension
}

// NewElement returns a new element connecting nodes[ij[0]] to nodes[ij[1]]
func NewElement(nodes []*Node, ij [2]int, kind ele.Kind, p ele.Props) (o *Element, err error) {

	// variant
	v, err := ele.GetVariant(kind)
	if err != nil {
		return
	}
	if err = v.Check(&p); err != nil {
		return
	}

	// nodes
	o = &Element{NodeIdx: ij, Kind: kind, Props: p}
	for m, idx := range ij {
		if idx < 0 || idx >= len(nodes) || nodes[idx] == nil {
			return nil, fmt.Errorf("%w: node index %d is not in the list of %d nodes", ErrUnassociated, idx, len(nodes))
		}
		nod := nodes[idx]
		if nod.Ndim() != v.Ndim || nod.Ndof() != v.Ndof() {
			return nil, fmt.Errorf("%w: node %d (%dD with %d DOFs) cannot be attached to %s (%dD with %d DOFs)",
				ErrInvalidNode, idx, nod.Ndim(), nod.Ndof(), kind, v.Ndim, v.Ndof())
		}
		o.nodes[m] = nod
	}

	// geometry
	x0, x1 := o.nodes[0].x, o.nodes[1].x
	o.L = ele.Length(x0, x1)
	if o.L < ele.MinLength {
		return nil, fmt.Errorf("%w: nodes %d and %d with L=%g", ErrDegenerate, ij[0], ij[1], o.L)
	}
	o.R, err = v.Rotation(x0, x1, p.Psi)
	if err != nil {
		return nil, err
	}
	return
}

// Start returns the start node
func (o *Element) Start() *Node { return o.nodes[0] }

// End returns the end node
func (o *Element) End() *Node { return o.nodes[1] }

// Nu returns the number of DOFs of this element
func (o *Element) Nu() int {
	if v, err := ele.GetVariant(o.Kind); err == nil {
		return 2 * v.Ndof()
	}
	return 0
}

// Stiffness computes the local and global stiffness matrices
func (o *Element) Stiffness() (err error) {
	if o.R == nil {
		return fmt.Errorf("%w: element %d", ErrNoRotation, o.Id)
	}
	v, err := ele.GetVariant(o.Kind)
	if err != nil {
		return fmt.Errorf("element %d: %w", o.Id, err)
	}
	kl, err := v.Local(&o.Props, o.L)
	if err != nil {
		return fmt.Errorf("element %d: %w", o.Id, err)
	}
	if n, _ := o.R.Dims(); n != 2*v.Ndof() {
		return fmt.Errorf("%w: element %d has R with %d rows instead of %d", ErrNoRotation, o.Id, n, 2*v.Ndof())
	}
	o.Kl, o.K = kl, ele.ToGlobal(o.R, kl)
	return
}

// Recover computes local displacements and end forces from the global displacements U
//
//	Ul = R·u    Pl = Kl·Ul    Pg = Rᵗ·Pl
func (o *Element) Recover(U mat.Vector) {
	nu := len(o.Eqs)
	ue := mat.NewVecDense(nu, nil)
	for i, I := range o.Eqs {
		ue.SetVec(i, U.AtVec(I))
	}
	var ul, pl, pg mat.VecDense
	ul.MulVec(o.R, ue)
	pl.MulVec(o.Kl, &ul)
	pg.MulVec(o.R.T(), &pl)
	o.Ul = append([]float64{}, ul.RawVector().Data...)
	o.Pl = append([]float64{}, pl.RawVector().Data...)
	o.Pg = append([]float64{}, pg.RawVector().Data...)
	o.N = o.Pl[nu/2] // axial component at the end node
}

// Stress returns the axial stress N/A
func (o *Element) Stress() float64 { return o.N / o.Props.A }

// clear erases stiffness matrices and results
func (o *Element) clear() {
	o.Kl, o.K = nil, nil
	o.Ul, o.Pl, o.Pg = nil, nil, nil
	o.N = 0
}
