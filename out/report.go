// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements reports and internal force diagrams of analysed structures
package out

import (
	"strings"

	"github.com/cpmech/gosl/io"
	"github.com/keithjlee/dsg-wbm/fem"
)

// NumFmt is the format of real numbers in reports
var NumFmt = "%14.6e"

// Nodes returns a table with the loads, displacements and reactions of all nodes; one row per DOF.
// Restrained DOFs are marked with *
func Nodes(s *fem.Structure) string {
	var b strings.Builder
	b.WriteString(io.Sf("%6s %4s %3s %14s %14s %14s\n", "node", "dof", "", "load", "disp", "reaction"))
	for i, nod := range s.Nodes {
		fkeys := nod.ForceKeys()
		for j, key := range nod.Keys() {
			mark := " "
			if !nod.Free(j) {
				mark = "*"
			}
			b.WriteString(io.Sf("%6d %3s%s %3s "+NumFmt+" "+NumFmt+" "+NumFmt+"\n", i, key, mark, fkeys[j],
				at(nod.Load, j), at(nod.Disp, j), at(nod.Reaction, j)))
		}
	}
	return b.String()
}

// Members returns a table with the axial forces, stresses and largest bending moments of all elements
func Members(s *fem.Structure) string {
	var b strings.Builder
	b.WriteString(io.Sf("%6s %-8s %6s %6s %14s %14s %14s %14s\n", "elem", "kind", "start", "end", "L", "N", "σ", "max|M|"))
	for i, e := range s.Elems {
		b.WriteString(io.Sf("%6d %-8s %6d %6d "+NumFmt+" "+NumFmt+" "+NumFmt+" "+NumFmt+"\n", i, e.Kind,
			e.NodeIdx[0], e.NodeIdx[1], e.L, e.N, e.Stress(), MaxMoment(e)))
	}
	return b.String()
}

// Summary returns the main figures of the structure and its analysis
func Summary(s *fem.Structure) string {
	var b strings.Builder
	b.WriteString(io.Sf("number of nodes      = %d\n", len(s.Nodes)))
	b.WriteString(io.Sf("number of elements   = %d\n", len(s.Elems)))
	b.WriteString(io.Sf("number of loads      = %d\n", len(s.Loads)))
	b.WriteString(io.Sf("number of DOFs       = %d (free = %d, restrained = %d)\n", s.Ndof, len(s.Free), len(s.Fixed)))
	if s.U == nil {
		b.WriteString("not analysed\n")
		return b.String()
	}
	val, node, key := s.MaxDisp()
	b.WriteString(io.Sf("compliance           = %g\n", s.Compliance))
	b.WriteString(io.Sf("max translation      = %g at node %d (%s)\n", val, node, key))
	b.WriteString(io.Sf("Σ loads + reactions  = %v\n", s.Equilibrium()))
	return b.String()
}

// Incidences returns the elements attached to each node
func Incidences(s *fem.Structure) string {
	var b strings.Builder
	b.WriteString(io.Sf("%6s %s\n", "node", "elements (end)"))
	for i, nod := range s.Nodes {
		items := make([]string, len(nod.Elems))
		for k, inc := range nod.Elems {
			items[k] = io.Sf("%d(%d)", inc.Elem, inc.End)
		}
		b.WriteString(io.Sf("%6d %s\n", i, strings.Join(items, " ")))
	}
	return b.String()
}

// at returns v[i] or zero if v is not set
func at(v []float64, i int) float64 {
	if i < len(v) {
		return v[i]
	}
	return 0
}
