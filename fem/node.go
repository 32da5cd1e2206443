// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"fmt"

	"github.com/keithjlee/dsg-wbm/ele"
)

// End tells which end of an element is attached to a node
type End int

// element ends
const (
	AtStart End = iota
	AtEnd
)

// Incidence records an element attached to a node
type Incidence struct {
	Elem int // element id; i.e. index in the structure's list of elements
	End  End // end of the element attached to the node
}

// NodeOption modifies a node during construction
type NodeOption func(o *Node) error

// Node holds a point of the structure together with its DOFs.
//
//	DOF layouts:  2D truss: ux uy     3D truss: ux uy uz
//	              2D frame: ux uy rz  3D frame: ux uy uz rx ry rz
//
// The DOF-activity flags use true for a free DOF (solved for) and false for a restrained
// DOF (support). Restrained DOFs receive reactions and may have prescribed displacements.
type Node struct {

	// input (immutable)
	x      []float64 // [ndim] position
	dofs   []bool    // [ndof] activity: true = free, false = restrained
	settle []float64 // [ndof] prescribed displacements of restrained DOFs (nil => zero)
	keys   []string  // [ndof] DOF keys from the layout
	fkeys  []string  // [ndof] force keys corresponding to keys

	// preprocessing (written by Structure)
	Eqs   []int       // [ndof] global DOF indices
	Elems []Incidence // attached elements (a set)

	// results (written by Structure.Analyze)
	Load     []float64 // [ndof] applied loads
	Disp     []float64 // [ndof] displacements
	Reaction []float64 // [ndof] support reactions; zero at free DOFs
}

// NewNode returns a new node
//
//	Input:
//	 x    -- position; len(x) = 2 or 3
//	 dofs -- DOF activity; true = free. len(dofs) must match one of the layouts
//	 opts -- options such as WithSettlement
func NewNode(x []float64, dofs []bool, opts ...NodeOption) (o *Node, err error) {
	if len(x) != 2 && len(x) != 3 {
		return nil, fmt.Errorf("%w: position must have 2 or 3 components (got %d)", ErrInvalidNode, len(x))
	}
	v := layout(len(x), len(dofs))
	if v == nil {
		return nil, fmt.Errorf("%w: there is no DOF layout with %d DOFs in %dD", ErrInvalidNode, len(dofs), len(x))
	}
	o = new(Node)
	o.x = append([]float64{}, x...)
	o.dofs = append([]bool{}, dofs...)
	o.keys = v.Keys
	o.fkeys = make([]string, len(v.Keys))
	for i, key := range v.Keys {
		o.fkeys[i] = v.Y2F[key]
	}
	for _, opt := range opts {
		if err = opt(o); err != nil {
			return nil, err
		}
	}
	return
}

// WithSettlement sets prescribed displacements of restrained DOFs. Values at free DOFs must be zero
func WithSettlement(vals []float64) NodeOption {
	return func(o *Node) error {
		if len(vals) != len(o.dofs) {
			return fmt.Errorf("%w: settlement has %d values but node has %d DOFs", ErrInvalidNode, len(vals), len(o.dofs))
		}
		for i, val := range vals {
			if o.dofs[i] && val != 0 {
				return fmt.Errorf("%w: cannot prescribe displacement %g at free DOF %q", ErrInvalidNode, val, o.keys[i])
			}
		}
		o.settle = append([]float64{}, vals...)
		return nil
	}
}

// X returns a copy of the position
func (o *Node) X() []float64 { return append([]float64{}, o.x...) }

// Dofs returns a copy of the DOF-activity flags
func (o *Node) Dofs() []bool { return append([]bool{}, o.dofs...) }

// Keys returns the DOF keys; e.g. ["ux", "uy", "rz"]
func (o *Node) Keys() []string { return o.keys }

// ForceKeys returns the keys of loads and reactions; e.g. ["fx", "fy", "mz"]
func (o *Node) ForceKeys() []string { return o.fkeys }

// Ndim returns the space dimension
func (o *Node) Ndim() int { return len(o.x) }

// Ndof returns the number of declared DOFs
func (o *Node) Ndof() int { return len(o.dofs) }

// Free tells whether the i-th DOF is free
func (o *Node) Free(i int) bool { return o.dofs[i] }

// Settlement returns the prescribed displacement of the i-th DOF
func (o *Node) Settlement(i int) float64 {
	if o.settle == nil {
		return 0
	}
	return o.settle[i]
}

// layout returns the variant defining the DOFs of a node with ndof DOFs in ndim dimensions
func layout(ndim, ndof int) *ele.Variant {
	for _, kind := range ele.Kinds() {
		v, _ := ele.GetVariant(kind)
		if v.Ndim == ndim && v.Ndof() == ndof {
			return v
		}
	}
	return nil
}
