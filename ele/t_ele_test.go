// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// deep2 converts a matrix to [][]float64
func deep2(a mat.Matrix) [][]float64 {
	m, n := a.Dims()
	res := make([][]float64, m)
	for i := 0; i < m; i++ {
		res[i] = make([]float64, n)
		for j := 0; j < n; j++ {
			res[i][j] = a.At(i, j)
		}
	}
	return res
}

// eye returns the n x n identity as [][]float64
func eye(n int) [][]float64 {
	res := make([][]float64, n)
	for i := 0; i < n; i++ {
		res[i] = make([]float64, n)
		res[i][i] = 1
	}
	return res
}

// samples holds pairs of end points used by many tests
var samples = [][2][]float64{
	{{0, 0, 0}, {3, 0, 0}},
	{{0, 0, 0}, {0, 2, 0}},
	{{0, 0, 0}, {0, 0, 5}},  // vertical
	{{1, 1, 4}, {1, 1, -2}}, // vertical, going down
	{{1, -2, 3}, {4, 2, 5}},
	{{-1, 0.5, 0}, {2, -3.5, 1.5}},
}

var props = Props{E: 200e6, A: 0.01, G: 80e6, Iz: 2e-4, Iy: 1e-4, J: 5e-5, Psi: 0.3}

func Test_kinds01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("kinds01. dispatch table")

	kinds := Kinds()
	chk.Ints(tst, "kinds", []int{int(kinds[0]), int(kinds[1]), int(kinds[2]), int(kinds[3])}, []int{0, 1, 2, 3})
	ndofs := []int{2, 3, 3, 6}
	ndims := []int{2, 3, 2, 3}
	for i, kind := range kinds {
		v, err := GetVariant(kind)
		require.NoError(tst, err)
		require.Equal(tst, ndofs[i], v.Ndof(), io.Sf("%s: ndof", kind))
		require.Equal(tst, ndims[i], v.Ndim, io.Sf("%s: ndim", kind))
		k, err := ParseKind(v.Name)
		require.NoError(tst, err)
		require.Equal(tst, kind, k)
	}

	k, err := ParseKind(" Frame3D ")
	require.NoError(tst, err)
	require.Equal(tst, Frame3D, k)

	_, err = ParseKind("shell")
	require.ErrorIs(tst, err, ErrUnknownKind)
	_, err = GetVariant(Kind(42))
	require.ErrorIs(tst, err, ErrUnknownKind)
	require.Equal(tst, "Kind(42)", Kind(42).String())
}

func Test_kernels01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("kernels01. local stiffness matrices")

	L := 2.5
	for _, kind := range Kinds() {
		v, _ := GetVariant(kind)
		kl, err := v.Local(&props, L)
		require.NoError(tst, err)
		n, m := kl.Dims()
		require.Equal(tst, 2*v.Ndof(), n, io.Sf("%s: size", kind))
		require.Equal(tst, n, m, io.Sf("%s: square", kind))

		// symmetric
		chk.Deep2(tst, io.Sf("%s: symmetric", kind), 1e-17, deep2(kl), deep2(kl.T()))

		// rigid body translation along the local x-axis gives no forces
		u := mat.NewVecDense(n, nil)
		u.SetVec(0, 1)
		u.SetVec(v.Ndof(), 1)
		var f mat.VecDense
		f.MulVec(kl, u)
		chk.Array(tst, io.Sf("%s: rigid translation", kind), 1e-8, f.RawVector().Data, make([]float64, n))

		// axial coefficient
		chk.Float64(tst, io.Sf("%s: EA/L", kind), 1e-8, kl.At(0, 0), props.EA()/L)
		chk.Float64(tst, io.Sf("%s: -EA/L", kind), 1e-8, kl.At(0, v.Ndof()), -props.EA()/L)
	}
}

func Test_kernels02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("kernels02. frame coefficients")

	L := 2.0
	v, _ := GetVariant(Frame3D)
	kl, err := v.Local(&props, L)
	require.NoError(tst, err)
	EIz, EIy, GJ := props.E*props.Iz, props.E*props.Iy, props.G*props.J
	chk.Float64(tst, "12EIz/L³", 1e-8, kl.At(1, 1), 12*EIz/(L*L*L))
	chk.Float64(tst, "6EIz/L²", 1e-8, kl.At(1, 5), 6*EIz/(L*L))
	chk.Float64(tst, "4EIz/L", 1e-8, kl.At(5, 5), 4*EIz/L)
	chk.Float64(tst, "2EIz/L", 1e-8, kl.At(5, 11), 2*EIz/L)
	chk.Float64(tst, "12EIy/L³", 1e-8, kl.At(2, 2), 12*EIy/(L*L*L))
	chk.Float64(tst, "-6EIy/L²", 1e-8, kl.At(2, 4), -6*EIy/(L*L))
	chk.Float64(tst, "4EIy/L", 1e-8, kl.At(10, 10), 4*EIy/L)
	chk.Float64(tst, "GJ/L", 1e-8, kl.At(3, 3), GJ/L)
	chk.Float64(tst, "-GJ/L", 1e-8, kl.At(9, 3), -GJ/L)

	// truss: no bending
	t, _ := GetVariant(Truss3D)
	kt, _ := t.Local(&props, L)
	for i := 0; i < 6; i++ {
		for j := 0; j < 6; j++ {
			if (i == 0 || i == 3) && (j == 0 || j == 3) {
				continue
			}
			chk.Float64(tst, io.Sf("truss3d: k[%d][%d]", i, j), 1e-17, kt.At(i, j), 0)
		}
	}
}

func Test_kernels03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("kernels03. invalid properties")

	v, _ := GetVariant(Frame3D)
	p := props
	p.J = 0
	_, err := v.Local(&p, 1)
	require.ErrorIs(tst, err, ErrInvalidProps)
	require.Contains(tst, err.Error(), "J > 0")

	// trusses do not need bending properties
	t, _ := GetVariant(Truss2D)
	_, err = t.Local(&Props{E: 1, A: 1}, 1)
	require.NoError(tst, err)

	_, err = t.Local(&Props{E: 1, A: -1}, 1)
	require.ErrorIs(tst, err, ErrInvalidProps)

	_, err = t.Local(&Props{E: 1, A: 1}, 0)
	require.ErrorIs(tst, err, ErrDegenerate)
}

func Test_rotation01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("rotation01. orthonormal R")

	for _, kind := range Kinds() {
		v, _ := GetVariant(kind)
		for _, pair := range samples {
			x0, x1 := pair[0][:v.Ndim], pair[1][:v.Ndim]
			if Length(x0, x1) < MinLength {
				continue
			}
			R, err := v.Rotation(x0, x1, props.Psi)
			require.NoError(tst, err)
			var RtR mat.Dense
			RtR.Mul(R.T(), R)
			n, _ := R.Dims()
			require.Equal(tst, 2*v.Ndof(), n, io.Sf("%s: size of R", kind))
			chk.Deep2(tst, io.Sf("%s: RᵗR %v→%v", kind, x0, x1), 1e-14, deep2(&RtR), eye(n))

			// first row is the unit vector from x0 to x1
			L := Length(x0, x1)
			for i := 0; i < v.Ndim; i++ {
				chk.Float64(tst, io.Sf("%s: e0[%d]", kind, i), 1e-15, R.At(0, i), (x1[i]-x0[i])/L)
			}
		}
	}
}

func Test_rotation02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("rotation02. local axes")

	// horizontal member: local y is the global Z
	e0, e1, e2, err := Axes([]float64{0, 0, 0}, []float64{2, 0, 0}, 0)
	require.NoError(tst, err)
	chk.Array(tst, "e0", 1e-15, []float64{e0.X, e0.Y, e0.Z}, []float64{1, 0, 0})
	chk.Array(tst, "e1", 1e-15, []float64{e1.X, e1.Y, e1.Z}, []float64{0, 0, 1})
	chk.Array(tst, "e2", 1e-15, []float64{e2.X, e2.Y, e2.Z}, []float64{0, -1, 0})

	// rotated by 90°
	_, e1, e2, err = Axes([]float64{0, 0, 0}, []float64{2, 0, 0}, math.Pi/2)
	require.NoError(tst, err)
	chk.Array(tst, "e1(ψ=90°)", 1e-15, []float64{e1.X, e1.Y, e1.Z}, []float64{0, -1, 0})
	chk.Array(tst, "e2(ψ=90°)", 1e-15, []float64{e2.X, e2.Y, e2.Z}, []float64{0, 0, -1})

	// vertical member: alternate reference axis
	e0, e1, e2, err = Axes([]float64{1, 1, 0}, []float64{1, 1, 3}, 0)
	require.NoError(tst, err)
	chk.Array(tst, "vertical: e0", 1e-15, []float64{e0.X, e0.Y, e0.Z}, []float64{0, 0, 1})
	chk.Array(tst, "vertical: e1", 1e-15, []float64{e1.X, e1.Y, e1.Z}, []float64{1, 0, 0})
	chk.Array(tst, "vertical: e2", 1e-15, []float64{e2.X, e2.Y, e2.Z}, []float64{0, 1, 0})

	// degenerate
	_, _, _, err = Axes([]float64{1, 1, 1}, []float64{1, 1, 1}, 0)
	require.ErrorIs(tst, err, ErrDegenerate)
	v, _ := GetVariant(Frame2D)
	_, err = v.Rotation([]float64{1, 1}, []float64{1, 1}, 0)
	require.ErrorIs(tst, err, ErrDegenerate)
}

func Test_rotation03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("rotation03. R·K·Rᵗ == Kl")

	for _, kind := range Kinds() {
		v, _ := GetVariant(kind)
		for _, pair := range samples {
			x0, x1 := pair[0][:v.Ndim], pair[1][:v.Ndim]
			L := Length(x0, x1)
			if L < MinLength {
				continue
			}
			R, err := v.Rotation(x0, x1, props.Psi)
			require.NoError(tst, err)
			kl, err := v.Local(&props, L)
			require.NoError(tst, err)
			K := ToGlobal(R, kl)
			var back mat.Dense
			back.Product(R, K, R.T())
			tol := 1e-9 * mat.Max(kl)
			chk.Deep2(tst, io.Sf("%s: round trip %v→%v", kind, x0, x1), tol, deep2(&back), deep2(kl))
			chk.Deep2(tst, io.Sf("%s: K symmetric", kind), tol, deep2(K), deep2(K.T()))
		}
	}
}

func Test_rotation04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("rotation04. 2D truss in global system")

	// compare with explicit formula of rod element
	x0, x1 := []float64{0, 0}, []float64{3, 4}
	v, _ := GetVariant(Truss2D)
	p := Props{E: 10, A: 2}
	L := Length(x0, x1)
	R, _ := v.Rotation(x0, x1, 0)
	kl, _ := v.Local(&p, L)
	K := ToGlobal(R, kl)
	α := p.E * p.A / L
	c, s := 0.6, 0.8
	chk.Deep2(tst, "K", 1e-14, deep2(K), [][]float64{
		{+α * c * c, +α * c * s, -α * c * c, -α * c * s},
		{+α * c * s, +α * s * s, -α * c * s, -α * s * s},
		{-α * c * c, -α * c * s, +α * c * c, +α * c * s},
		{-α * c * s, -α * s * s, +α * c * s, +α * s * s},
	})
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}
