// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import (
	"fmt"
	"sort"

	"github.com/cpmech/gosl/chk"
	"gonum.org/v1/gonum/mat"
)

// KernelFunc computes the local stiffness matrix of an element with length L
type KernelFunc func(p *Props, L float64) *mat.Dense

// RotationFunc computes the global-to-local rotation matrix of an element going from x0 to x1
type RotationFunc func(x0, x1 []float64, psi float64) (*mat.Dense, error)

// CheckFunc checks the properties required by a variant
type CheckFunc func(p *Props) error

// Variant holds the definition of an element variant
type Variant struct {
	Name     string            // name used in input files; e.g. "truss2d"
	Ndim     int               // space dimension
	Keys     []string          // DOF keys PER NODE. e.g. ["ux", "uy", "rz"]
	Y2F      map[string]string // maps DOF keys to force keys. e.g. "ux" => "fx", "rz" => "mz"
	Kernel   KernelFunc        // local stiffness matrix
	Rotation RotationFunc      // global-to-local rotation matrix
	Check    CheckFunc         // checks properties
}

// Ndof returns the number of DOFs per node
func (o *Variant) Ndof() int { return len(o.Keys) }

// Local computes the local stiffness matrix after checking the properties
func (o *Variant) Local(p *Props, L float64) (kl *mat.Dense, err error) {
	if err = o.Check(p); err != nil {
		return
	}
	if !(L > 0) {
		return nil, fmt.Errorf("%w: %s with L=%g", ErrDegenerate, o.Name, L)
	}
	kl = o.Kernel(p, L)
	return
}

// SetVariant sets a new variant in the dispatch table
func SetVariant(kind Kind, v *Variant) {
	if _, ok := variants[kind]; ok {
		chk.Panic("cannot set variant %d (%q) because it exists already", int(kind), v.Name)
	}
	if v.Kernel == nil || v.Rotation == nil || v.Check == nil {
		chk.Panic("variant %q must have kernel, rotation and check functions", v.Name)
	}
	variants[kind] = v
}

// GetVariant returns the definition of a variant from the dispatch table
func GetVariant(kind Kind) (*Variant, error) {
	if v, ok := variants[kind]; ok {
		return v, nil
	}
	return nil, fmt.Errorf("%w: %d", ErrUnknownKind, int(kind))
}

// Kinds returns all registered variants in ascending order
func Kinds() (kinds []Kind) {
	for k := range variants {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return
}

// variants holds all element variants
var variants = make(map[Kind]*Variant)
