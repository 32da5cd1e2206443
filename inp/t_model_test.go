// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/keithjlee/dsg-wbm/ele"
	"github.com/keithjlee/dsg-wbm/fem"
	"github.com/stretchr/testify/require"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_model01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("model01. JSON truss")

	mdl, err := ReadModel("data/truss345.json")
	require.NoError(tst, err)
	require.Equal(tst, "truss345", mdl.Key)
	require.Len(tst, mdl.Nodes, 3)
	require.Equal(tst, [2]int{1, 2}, mdl.Elems[2].Nodes)

	s, err := mdl.Build()
	require.NoError(tst, err)
	require.Equal(tst, 2, s.Nworkers)
	chk.Float64(tst, "condmax", 1e-17, s.CondMax, 1e12)
	require.Equal(tst, []bool{false, false, true, false, true, true}, s.Dofs())

	require.NoError(tst, s.Analyze())
	io.Pforan("N = %v %v %v\n", s.Elems[0].N, s.Elems[1].N, s.Elems[2].N)
	chk.Float64(tst, "N01", 1e-12, s.Elems[0].N, 12)
	chk.Float64(tst, "N02", 1e-12, s.Elems[1].N, 9)
	chk.Float64(tst, "N12", 1e-12, s.Elems[2].N, -15)
}

func Test_model02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("model02. YAML frame and settlement")

	mdl, err := ReadModel("data/cantilever3d.yaml")
	require.NoError(tst, err)
	s, err := mdl.Build()
	require.NoError(tst, err)
	chk.Float64(tst, "ψ", 1e-15, s.Elems[0].Props.Psi, 1.5707963267948966)
	chk.Float64(tst, "condmax", 1e-17, s.CondMax, fem.DefaultCondMax)
	require.NoError(tst, s.Analyze())
	E, Iy, L, P := 200e6, 1e-5, 2.0, 4.0
	chk.Float64(tst, "uz = PL³/3EIy", 1e-12, s.Nodes[1].Disp[2], P*L*L*L/(3*E*Iy))

	mdl, err = ReadModel("data/settlement.yml")
	require.NoError(tst, err)
	s, err = mdl.Build()
	require.NoError(tst, err)
	require.NoError(tst, s.Analyze())
	chk.Float64(tst, "u1", 1e-15, s.Nodes[1].Disp[0], 0.005)
	chk.Float64(tst, "N", 1e-13, s.Elems[1].N, 100*2/4.0*0.005)
}

func Test_model03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("model03. fix shorthand")

	for _, c := range []struct {
		kind, fix string
		dofs      []bool
	}{
		{"truss2d", "", []bool{true, true}},
		{"truss2d", "all", []bool{false, false}},
		{"frame2d", "pin", []bool{false, false, true}},
		{"frame2d", "y", []bool{true, false, true}},
		{"frame2d", "x, rz", []bool{false, true, false}},
		{"frame3d", "xz rx", []bool{false, true, false, false, true, true}},
		{"frame3d", "UY,RY", []bool{true, false, true, true, false, true}},
		{"truss3d", "pin", []bool{false, false, false}},
	} {
		k, err := ele.ParseKind(c.kind)
		require.NoError(tst, err)
		v, _ := ele.GetVariant(k)
		nd := &NodeData{X: make([]float64, v.Ndim), Fix: c.fix}
		dofs, err := nd.Activity(c.kind)
		require.NoError(tst, err, c.fix)
		require.Equal(tst, c.dofs, dofs, io.Sf("%s: %q", c.kind, c.fix))
	}

	// errors
	_, err := (&NodeData{X: []float64{0, 0}, Fix: "z"}).Activity("truss2d")
	require.ErrorIs(tst, err, ErrInput)
	_, err = (&NodeData{X: []float64{0, 0}, Fix: "rz"}).Activity("truss2d")
	require.ErrorIs(tst, err, ErrInput)
	_, err = (&NodeData{X: []float64{0, 0, 0}}).Activity("truss2d")
	require.ErrorIs(tst, err, ErrInput)
	_, err = (&NodeData{X: []float64{0, 0}, Dofs: []bool{true, false}, Fix: "x"}).Activity("")
	require.ErrorIs(tst, err, ErrInput)
	_, err = (&NodeData{X: []float64{0, 0}}).Activity("")
	require.ErrorIs(tst, err, ele.ErrUnknownKind)
	dofs, err := (&NodeData{X: []float64{0, 0}, Dofs: []bool{true, false}}).Activity("")
	require.NoError(tst, err)
	require.Equal(tst, []bool{true, false}, dofs)
}

func Test_model04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("model04. input errors")

	// reader
	_, err := ReadModel("data/badkey.json")
	require.ErrorIs(tst, err, ErrInput)
	_, err = ReadModel("data/truss345.txt")
	require.Error(tst, err)
	_, err = ReadModel("data/missing.json")
	require.ErrorIs(tst, err, os.ErrNotExist)
	fn := filepath.Join(tst.TempDir(), "model.toml")
	require.NoError(tst, os.WriteFile(fn, []byte("kind = 'truss2d'"), 0644))
	_, err = ReadModel(fn)
	require.ErrorIs(tst, err, ErrInput)

	// sections
	base := func() *Model {
		return &Model{
			Kind:     "truss2d",
			Sections: []*Section{{Name: "bar", E: 1, A: 1}},
			Nodes:    []*NodeData{{X: []float64{0, 0}, Fix: "all"}, {X: []float64{1, 0}, Fix: "y"}},
			Elems:    []*ElemData{{Nodes: [2]int{0, 1}, Section: "bar"}},
			Loads:    []*LoadData{{Node: 1, Vals: []float64{1, 0}}},
		}
	}
	_, err = base().Build()
	require.NoError(tst, err)

	m := base()
	m.Sections = append(m.Sections, &Section{Name: "bar"})
	_, err = m.Build()
	require.ErrorIs(tst, err, ErrInput)

	m = base()
	m.Elems[0].Section = "beam"
	_, err = m.Build()
	require.ErrorIs(tst, err, ErrInput)

	// errors from other packages keep their kind
	m = base()
	m.Elems[0].Kind = "shell"
	_, err = m.Build()
	require.ErrorIs(tst, err, fem.ErrUnknownKind)

	m = base()
	m.Elems[0].Nodes = [2]int{0, 5}
	_, err = m.Build()
	require.ErrorIs(tst, err, fem.ErrUnassociated)

	m = base()
	m.Sections[0].A = 0
	_, err = m.Build()
	require.ErrorIs(tst, err, fem.ErrInvalidProps)

	m = base()
	m.Nodes[1].X = []float64{0, 0}
	_, err = m.Build()
	require.ErrorIs(tst, err, fem.ErrDegenerate)

	m = base()
	m.Loads[0].Vals = []float64{1, 0, 0}
	s, err := m.Build()
	require.NoError(tst, err)
	require.ErrorIs(tst, s.Analyze(), fem.ErrLoadDim)
}

func Test_model05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("model05. sections from shapes and reference materials")

	mdl, err := ReadModel("data/portal.yaml")
	require.NoError(tst, err)
	s, err := mdl.Build()
	require.NoError(tst, err)

	// explicit values take precedence
	col, beam := s.Elems[0].Props, s.Elems[1].Props
	chk.Float64(tst, "beam: A", 1e-17, beam.A, 0.01)
	chk.Float64(tst, "beam: Iz", 1e-15, beam.Iz, 0.2*0.4*0.4*0.4/12)
	chk.Float64(tst, "col: A", 1e-15, col.A, 0.2*0.3-0.27*0.19)
	chk.Float64(tst, "E", 1e-6, col.E, 2e8)
	chk.Float64(tst, "G", 1e-6, beam.G, 2e8/2.64)

	require.NoError(tst, s.Analyze())
	sum := s.Equilibrium()
	chk.Array(tst, "Σ loads + reactions", 1e-9, sum, []float64{0, 0})
	chk.Float64(tst, "Σ vertical reactions", 1e-9, s.Nodes[0].Reaction[1]+s.Nodes[3].Reaction[1], 40)

	// invalid reference data
	m := &Model{Sections: []*Section{{Name: "x", Material: "steel", Unit: "psi"}}}
	_, err = m.Build()
	require.ErrorIs(tst, err, ErrInput)
	m = &Model{Sections: []*Section{{Name: "x", Shape: &ShapeData{Type: "hexagon"}}}}
	_, err = m.Build()
	require.ErrorIs(tst, err, ErrInput)
}
