// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"
)

// tolerances
const (
	MinLength   = 1e-12 // elements shorter than this are degenerate
	TolParallel = 1e-6  // |e0 × up| below this means e0 is parallel to the reference up vector
)

// reference "up" vectors for the local y-axis of 3D members
var (
	UpRef = r3.Vec{Z: 1} // default
	UpAlt = r3.Vec{X: 1} // used when the member is parallel to UpRef
)

// Length returns the distance between x0 and x1
func Length(x0, x1 []float64) (L float64) {
	for i := 0; i < len(x0); i++ {
		L += (x1[i] - x0[i]) * (x1[i] - x0[i])
	}
	return math.Sqrt(L)
}

// Axes computes the unit vectors of the local system of a 3D member
//
//	e0 -- local x-axis: from x0 to x1
//	e1 -- local y-axis: Gram-Schmidt of the up vector against e0, rotated by ψ about e0
//	e2 -- local z-axis: e0 × e1
func Axes(x0, x1 []float64, ψ float64) (e0, e1, e2 r3.Vec, err error) {
	d := r3.Vec{X: x1[0] - x0[0], Y: x1[1] - x0[1], Z: x1[2] - x0[2]}
	L := r3.Norm(d)
	if L < MinLength {
		err = fmt.Errorf("%w: x0=%v x1=%v", ErrDegenerate, x0, x1)
		return
	}
	e0 = r3.Scale(1.0/L, d)

	// vertical members
	up := UpRef
	if r3.Norm(r3.Cross(e0, up)) < TolParallel {
		up = UpAlt
	}

	// Gram-Schmidt
	e1 = r3.Unit(r3.Sub(up, r3.Scale(r3.Dot(up, e0), e0)))
	e2 = r3.Cross(e0, e1)

	// orientation angle
	if ψ != 0 {
		c, s := math.Cos(ψ), math.Sin(ψ)
		e1, e2 = r3.Add(r3.Scale(c, e1), r3.Scale(s, e2)), r3.Add(r3.Scale(-s, e1), r3.Scale(c, e2))
	}
	return
}

// rotation2d returns the rotation function of 2D members. withRz adds the (unchanged) rotation DOF
func rotation2d(withRz bool) RotationFunc {
	return func(x0, x1 []float64, ψ float64) (*mat.Dense, error) {
		L := Length(x0[:2], x1[:2])
		if L < MinLength {
			return nil, fmt.Errorf("%w: x0=%v x1=%v", ErrDegenerate, x0, x1)
		}
		c := (x1[0] - x0[0]) / L
		s := (x1[1] - x0[1]) / L
		if withRz {
			λ := mat.NewDense(3, 3, []float64{
				+c, s, 0,
				-s, c, 0,
				+0, 0, 1,
			})
			return blockDiag(λ, 2), nil
		}
		λ := mat.NewDense(2, 2, []float64{
			+c, s,
			-s, c,
		})
		return blockDiag(λ, 2), nil
	}
}

// rotation3d returns the rotation function of 3D members with nblk direction-cosine blocks
func rotation3d(nblk int) RotationFunc {
	return func(x0, x1 []float64, ψ float64) (*mat.Dense, error) {
		e0, e1, e2, err := Axes(x0, x1, ψ)
		if err != nil {
			return nil, err
		}
		λ := mat.NewDense(3, 3, []float64{
			e0.X, e0.Y, e0.Z,
			e1.X, e1.Y, e1.Z,
			e2.X, e2.Y, e2.Z,
		})
		return blockDiag(λ, nblk), nil
	}
}

// blockDiag replicates the square matrix λ nblk times along the diagonal
func blockDiag(λ *mat.Dense, nblk int) *mat.Dense {
	n, _ := λ.Dims()
	R := mat.NewDense(n*nblk, n*nblk, nil)
	for k := 0; k < nblk; k++ {
		R.Slice(k*n, (k+1)*n, k*n, (k+1)*n).(*mat.Dense).Copy(λ)
	}
	return R
}

// ToGlobal computes K = Rᵗ·Kl·R
func ToGlobal(R, kl *mat.Dense) *mat.Dense {
	var K mat.Dense
	K.Product(R.T(), kl, R)
	return &K
}
