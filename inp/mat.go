// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"fmt"
	"math"

	"github.com/keithjlee/dsg-wbm/ana"
	"github.com/keithjlee/dsg-wbm/ele"
)

// Section holds material and cross-section data shared by many elements
type Section struct {
	Name string  `json:"name" yaml:"name"` // name of section; e.g. "IPE200"
	E    float64 `json:"E" yaml:"E"`       // Young's modulus
	A    float64 `json:"A" yaml:"A"`       // cross-sectional area
	G    float64 `json:"G" yaml:"G"`       // shear modulus (3D frames)
	Iz   float64 `json:"Iz" yaml:"Iz"`     // moment of inertia about local z (frames)
	Iy   float64 `json:"Iy" yaml:"Iy"`     // moment of inertia about local y (3D frames)
	J    float64 `json:"J" yaml:"J"`       // torsional constant (3D frames)

	// reference data; explicit values above take precedence
	Shape    *ShapeData `json:"shape" yaml:"shape"`       // cross-section giving A, Iz, Iy and J
	Material string     `json:"material" yaml:"material"` // reference material giving E and G; e.g. "steel"
	Unit     string     `json:"unit" yaml:"unit"`         // unit of pressure of the reference material. default = "kPa"
}

// ShapeData holds the dimensions of a cross-section
type ShapeData struct {
	Type string  `json:"type" yaml:"type"` // "rectangle", "I-beam" or "circle"
	B    float64 `json:"b" yaml:"b"`       // width
	H    float64 `json:"h" yaml:"h"`       // height (along local y)
	Tf   float64 `json:"tf" yaml:"tf"`     // flange thickness
	Tw   float64 `json:"tw" yaml:"tw"`     // web thickness
	R    float64 `json:"r" yaml:"r"`       // radius
}

// resolve sets the properties not given explicitly from the shape and the reference material
func (o *Section) resolve() error {
	if o.Shape != nil {
		cs, err := ana.NewCrossSection(o.Shape.Type, o.Shape.B, o.Shape.H, o.Shape.Tf, o.Shape.Tw, o.Shape.R)
		if err != nil {
			return fmt.Errorf("%w: section %q: %v", ErrInput, o.Name, err)
		}
		setIfZero(&o.A, cs.A)
		setIfZero(&o.Iz, cs.Iz)
		setIfZero(&o.Iy, cs.Iy)
		setIfZero(&o.J, cs.J)
	}
	if o.Material != "" {
		unit := o.Unit
		if unit == "" {
			unit = "kPa"
		}
		m, err := ana.NewMaterial(o.Material, unit)
		if err != nil {
			return fmt.Errorf("%w: section %q: %v", ErrInput, o.Name, err)
		}
		setIfZero(&o.E, m.E)
		setIfZero(&o.G, m.G)
	}
	return nil
}

// setIfZero sets *a = b if *a is zero
func setIfZero(a *float64, b float64) {
	if *a == 0 {
		*a = b
	}
}

// Props returns the element properties of this section. psi is given in degrees
func (o *Section) Props(psi float64) ele.Props {
	return ele.Props{E: o.E, A: o.A, G: o.G, Iz: o.Iz, Iy: o.Iy, J: o.J, Psi: psi * math.Pi / 180.0}
}

// SectionDb implements a database of sections
type SectionDb struct {
	Sections []*Section          // all sections in input order
	byName   map[string]*Section // name => section
}

// NewSectionDb returns a new database. Names must be unique and not empty
func NewSectionDb(sections []*Section) (o *SectionDb, err error) {
	o = &SectionDb{Sections: sections, byName: make(map[string]*Section)}
	for i, sec := range sections {
		if sec == nil || sec.Name == "" {
			return nil, fmt.Errorf("%w: section %d has no name", ErrInput, i)
		}
		if _, ok := o.byName[sec.Name]; ok {
			return nil, fmt.Errorf("%w: section %q is defined more than once", ErrInput, sec.Name)
		}
		if err = sec.resolve(); err != nil {
			return nil, err
		}
		o.byName[sec.Name] = sec
	}
	return
}

// Get returns section by name
func (o *SectionDb) Get(name string) (*Section, error) {
	if sec, ok := o.byName[name]; ok {
		return sec, nil
	}
	return nil, fmt.Errorf("%w: cannot find section named %q", ErrInput, name)
}
