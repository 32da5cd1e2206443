// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ele implements the structural element variants: local stiffness kernels and
// global-to-local rotation matrices of 2-node trusses and frames
package ele

import (
	"errors"
	"fmt"
	"strings"

	"github.com/cpmech/gosl/io"
)

// error kinds
var (
	ErrUnknownKind  = errors.New("unknown element variant")
	ErrDegenerate   = errors.New("degenerate (zero-length) element")
	ErrInvalidProps = errors.New("invalid element properties")
)

// Kind is the tag of an element variant
type Kind int

// element variants
const (
	Truss2D Kind = iota // axial bar in the x-y plane
	Truss3D             // axial bar in space
	Frame2D             // Euler-Bernoulli beam-column in the x-y plane
	Frame3D             // Euler-Bernoulli beam-column in space, with torsion
)

// String returns the name of the variant; e.g. "frame3d"
func (k Kind) String() string {
	if v, ok := variants[k]; ok {
		return v.Name
	}
	return io.Sf("Kind(%d)", int(k))
}

// ParseKind returns the variant corresponding to name (case insensitive)
func ParseKind(name string) (Kind, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for k, v := range variants {
		if v.Name == key {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, name)
}

// Props holds section and material properties of an element
type Props struct {
	E   float64 // Young's modulus
	A   float64 // cross-sectional area
	G   float64 // shear modulus
	Iz  float64 // strong axis moment of inertia; bending in the local x-y plane
	Iy  float64 // weak axis moment of inertia; bending in the local x-z plane
	J   float64 // torsional constant
	Psi float64 // rotation of the local y-z axes about the local x-axis [rad]
}

// EA returns the axial rigidity
func (o *Props) EA() float64 { return o.E * o.A }

// check returns an error if any of the named values is not positive
func check(kind Kind, names string, vals ...float64) error {
	keys := strings.Split(names, ",")
	for i, val := range vals {
		if !(val > 0) {
			return fmt.Errorf("%w: %s requires %s > 0 (got %g)", ErrInvalidProps, kind, keys[i], val)
		}
	}
	return nil
}
