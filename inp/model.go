// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input of structural models from JSON and YAML files
package inp

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/keithjlee/dsg-wbm/ele"
	"github.com/keithjlee/dsg-wbm/fem"
	"gopkg.in/yaml.v3"
)

// ErrInput is returned when the model file is invalid
var ErrInput = errors.New("invalid input")

// ControlData holds analysis settings
type ControlData struct {
	Workers int     `json:"workers" yaml:"workers"` // number of goroutines computing element matrices; 0 => GOMAXPROCS
	CondMax float64 `json:"condmax" yaml:"condmax"` // largest acceptable condition number; 0 => default
	Verbose bool    `json:"verbose" yaml:"verbose"` // show messages
}

// NodeData holds node data
type NodeData struct {
	X      []float64 `json:"x" yaml:"x"`           // coordinates
	Kind   string    `json:"kind" yaml:"kind"`     // DOF layout given by an element variant; e.g. "frame2d". default = Model.Kind
	Dofs   []bool    `json:"dofs" yaml:"dofs"`     // DOF activity: true = free. overrides Kind and Fix
	Fix    string    `json:"fix" yaml:"fix"`       // restrained DOFs; e.g. "all", "pin", "xy", "ux rz"
	Settle []float64 `json:"settle" yaml:"settle"` // prescribed displacements of restrained DOFs
}

// ElemData holds element data
type ElemData struct {
	Nodes   [2]int  `json:"nodes" yaml:"nodes"`     // start and end nodes
	Kind    string  `json:"kind" yaml:"kind"`       // variant; e.g. "truss3d". default = Model.Kind
	Section string  `json:"section" yaml:"section"` // name of section
	Psi     float64 `json:"psi" yaml:"psi"`         // orientation angle about the local x-axis [degrees]
}

// LoadData holds nodal loads
type LoadData struct {
	Node int       `json:"node" yaml:"node"` // index of node
	Vals []float64 `json:"vals" yaml:"vals"` // values aligned with the node's DOFs
}

// Model holds all data of a structural model
type Model struct {
	Desc     string      `json:"desc" yaml:"desc"`         // description of model
	Kind     string      `json:"kind" yaml:"kind"`         // default variant of nodes and elements
	Control  ControlData `json:"control" yaml:"control"`   // analysis settings
	Sections []*Section  `json:"sections" yaml:"sections"` // all sections
	Nodes    []*NodeData `json:"nodes" yaml:"nodes"`       // all nodes
	Elems    []*ElemData `json:"elems" yaml:"elems"`       // all elements
	Loads    []*LoadData `json:"loads" yaml:"loads"`       // all loads

	// derived
	Key string // filename key; e.g. "truss345" for "data/truss345.json"
}

// ReadModel reads a model from a .json, .yaml or .yml file. Unknown fields are rejected
func ReadModel(path string) (o *Model, err error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return
	}
	o = new(Model)
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".json":
		dec := json.NewDecoder(bytes.NewReader(b))
		dec.DisallowUnknownFields()
		err = dec.Decode(o)
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(b))
		dec.KnownFields(true)
		err = dec.Decode(o)
	default:
		return nil, fmt.Errorf("%w: cannot read %q; extension must be .json, .yaml or .yml", ErrInput, path)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: cannot decode %q: %v", ErrInput, path, err)
	}
	o.Key = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return
}

// Build constructs and preprocesses the structure
func (o *Model) Build() (s *fem.Structure, err error) {

	// sections
	db, err := NewSectionDb(o.Sections)
	if err != nil {
		return
	}

	// nodes
	nodes := make([]*fem.Node, len(o.Nodes))
	for i, nd := range o.Nodes {
		if nd == nil {
			return nil, fmt.Errorf("%w: node %d is empty", ErrInput, i)
		}
		dofs, err := nd.Activity(o.Kind)
		if err != nil {
			return nil, fmt.Errorf("node %d: %w", i, err)
		}
		var opts []fem.NodeOption
		if nd.Settle != nil {
			opts = append(opts, fem.WithSettlement(nd.Settle))
		}
		nodes[i], err = fem.NewNode(nd.X, dofs, opts...)
		if err != nil {
			return nil, fmt.Errorf("node %d: %w", i, err)
		}
	}

	// elements
	elems := make([]*fem.Element, len(o.Elems))
	for i, ed := range o.Elems {
		if ed == nil {
			return nil, fmt.Errorf("%w: element %d is empty", ErrInput, i)
		}
		kind, err := ele.ParseKind(pick(ed.Kind, o.Kind))
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		sec, err := db.Get(ed.Section)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		elems[i], err = fem.NewElement(nodes, ed.Nodes, kind, sec.Props(ed.Psi))
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
	}

	// loads
	loads := make([]*fem.Load, len(o.Loads))
	for i, ld := range o.Loads {
		if ld == nil {
			return nil, fmt.Errorf("%w: load %d is empty", ErrInput, i)
		}
		loads[i] = fem.NewLoad(ld.Node, ld.Vals)
	}

	// structure
	s, err = fem.NewStructure(nodes, elems, loads)
	if err != nil {
		return
	}
	o.Control.Apply(s)
	return
}

// Apply sets the analysis settings of a structure
func (o ControlData) Apply(s *fem.Structure) {
	s.Nworkers = o.Workers
	s.Verbose = o.Verbose
	if o.CondMax > 0 {
		s.CondMax = o.CondMax
	}
}

// Activity returns the DOF-activity flags (true = free) of a node.
// defaultKind is used if the node has no kind
//
//	Fix shorthand (tokens separated by spaces or commas):
//	 all    -- all DOFs are restrained
//	 pin    -- translations are restrained
//	 xyz    -- any combination of x, y and z restrains the corresponding translations
//	 key    -- a DOF key of the layout; e.g. "uy" or "rz"
func (o *NodeData) Activity(defaultKind string) (dofs []bool, err error) {
	if len(o.Dofs) > 0 {
		if o.Fix != "" {
			return nil, fmt.Errorf("%w: dofs and fix cannot be given together", ErrInput)
		}
		return append([]bool{}, o.Dofs...), nil
	}
	kind, err := ele.ParseKind(pick(o.Kind, defaultKind))
	if err != nil {
		return
	}
	v, err := ele.GetVariant(kind)
	if err != nil {
		return
	}
	if len(o.X) != v.Ndim {
		return nil, fmt.Errorf("%w: %s node must have %d coordinates (got %d)", ErrInput, v.Name, v.Ndim, len(o.X))
	}
	dofs = make([]bool, v.Ndof())
	for i := range dofs {
		dofs[i] = true
	}
	index := make(map[string]int)
	for i, key := range v.Keys {
		index[key] = i
	}
	restrain := func(key, token string) error {
		i, ok := index[key]
		if !ok {
			return fmt.Errorf("%w: %s node has no DOF %q (in fix %q)", ErrInput, v.Name, key, token)
		}
		dofs[i] = false
		return nil
	}
	for _, token := range strings.FieldsFunc(strings.ToLower(o.Fix), func(r rune) bool { return r == ' ' || r == ',' }) {
		switch {
		case token == "all":
			for i := range dofs {
				dofs[i] = false
			}
		case token == "pin":
			for i := 0; i < v.Ndim; i++ {
				dofs[i] = false
			}
		case strings.Trim(token, "xyz") == "":
			for _, c := range token {
				if err = restrain("u"+string(c), token); err != nil {
					return nil, err
				}
			}
		default:
			if err = restrain(token, token); err != nil {
				return nil, err
			}
		}
	}
	return
}

// pick returns a if not empty or b otherwise
func pick(a, b string) string {
	if a != "" {
		return a
	}
	return b
}
