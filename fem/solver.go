// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"fmt"
	"math"

	"github.com/cpmech/gosl/io"
	"gonum.org/v1/gonum/mat"
)

// Partition holds the global system split into free (f) and restrained (s) DOFs
//
//	 _          _
//	|  Kff  Kfs  | / Uf \   / Ff \   /  0 \
//	|            | |    | = |    | + |    |
//	|_ Ksf  Kss _| \ Us /   \ Fs /   \ Rs /
//
// Matrices with a zero dimension are nil
type Partition struct {
	Kff  *mat.SymDense // [nf][nf]
	Kfs  *mat.Dense    // [nf][ns]
	Ksf  *mat.Dense    // [ns][nf]
	Kss  *mat.Dense    // [ns][ns]
	Ff   []float64     // [nf] loads at free DOFs
	Fs   []float64     // [ns] loads at restrained DOFs
	Us   []float64     // [ns] prescribed displacements
	Cond float64       // condition number of Kff (after Solve)
}

// NewPartition splits K and F according to the sets of free and restrained DOFs
func NewPartition(K mat.Matrix, F mat.Vector, Us []float64, free, fixed []int) (o *Partition) {
	o = &Partition{Us: Us}
	o.Ff = gather(F, free)
	o.Fs = gather(F, fixed)
	o.Kfs = sub(K, free, fixed)
	o.Ksf = sub(K, fixed, free)
	o.Kss = sub(K, fixed, fixed)
	nf := len(free)
	if nf > 0 {
		o.Kff = mat.NewSymDense(nf, nil)
		for a, I := range free {
			for b := a; b < nf; b++ {
				o.Kff.SetSym(a, b, K.At(I, free[b]))
			}
		}
	}
	return
}

// Solve solves Kff·Uf = Ff − Kfs·Us using the Cholesky factorisation of Kff.
// A singular, indefinite or ill-conditioned Kff returns ErrSingular
func (o *Partition) Solve(condMax float64) (Uf []float64, err error) {
	nf := len(o.Ff)
	if nf == 0 {
		return
	}
	rhs := append([]float64{}, o.Ff...)
	mulAdd(rhs, -1, o.Kfs, o.Us)
	var chol mat.Cholesky
	if ok := chol.Factorize(o.Kff); !ok {
		return nil, fmt.Errorf("%w: Kff is not positive definite", ErrSingular)
	}
	o.Cond = chol.Cond()
	if math.IsNaN(o.Cond) || o.Cond > condMax {
		return nil, fmt.Errorf("%w: condition number of Kff = %g > %g", ErrSingular, o.Cond, condMax)
	}
	var x mat.VecDense
	if err = chol.SolveVecTo(&x, mat.NewVecDense(nf, rhs)); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSingular, err)
	}
	Uf = append([]float64{}, x.RawVector().Data...)
	return
}

// Reactions computes Rs = Ksf·Uf + Kss·Us − Fs
func (o *Partition) Reactions(Uf []float64) (Rs []float64) {
	Rs = make([]float64, len(o.Fs))
	for i, f := range o.Fs {
		Rs[i] = -f
	}
	mulAdd(Rs, 1, o.Ksf, Uf)
	mulAdd(Rs, 1, o.Kss, o.Us)
	return
}

// solve computes U and the reactions
func (o *Structure) solve() (err error) {

	// prescribed displacements
	U := make([]float64, o.Ndof)
	for _, nod := range o.Nodes {
		for j, I := range nod.Eqs {
			U[I] = nod.Settlement(j)
		}
	}

	// free displacements
	condMax := o.CondMax
	if condMax <= 0 {
		condMax = DefaultCondMax
	}
	p := NewPartition(o.K, o.F, gather(mat.NewVecDense(o.Ndof, U), o.Fixed), o.Free, o.Fixed)
	Uf, err := p.Solve(condMax)
	if err != nil {
		return
	}
	scatter(U, o.Free, Uf)
	if o.Verbose && len(Uf) > 0 {
		io.Pf(">> Condition number of Kff = %g\n", p.Cond)
	}

	// results
	R := make([]float64, o.Ndof)
	scatter(R, o.Fixed, p.Reactions(Uf))
	o.U = mat.NewVecDense(o.Ndof, U)
	o.Reactions = mat.NewVecDense(o.Ndof, R)
	return
}

// gather returns v[idx]
func gather(v mat.Vector, idx []int) (res []float64) {
	res = make([]float64, len(idx))
	for i, I := range idx {
		res[i] = v.AtVec(I)
	}
	return
}

// scatter sets dst[idx] = src
func scatter(dst []float64, idx []int, src []float64) {
	for i, I := range idx {
		dst[I] = src[i]
	}
}

// sub returns a[rows, cols] or nil if rows or cols are empty
func sub(a mat.Matrix, rows, cols []int) *mat.Dense {
	if len(rows) == 0 || len(cols) == 0 {
		return nil
	}
	res := mat.NewDense(len(rows), len(cols), nil)
	for i, I := range rows {
		for j, J := range cols {
			res.Set(i, j, a.At(I, J))
		}
	}
	return res
}

// mulAdd computes dst += α·a·x; nothing is done if a is nil
func mulAdd(dst []float64, α float64, a *mat.Dense, x []float64) {
	if a == nil {
		return
	}
	var y mat.VecDense
	y.MulVec(a, mat.NewVecDense(len(x), x))
	for i := range dst {
		dst[i] += α * y.AtVec(i)
	}
}
