// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements closed-form solutions and reference data for structural members
package ana

import (
	"errors"
	"fmt"
	"math"
)

// ErrUnavailable is returned for unknown cross-section types, materials or units
var ErrUnavailable = errors.New("unavailable")

// CrossSection computes cross-sectional moments of inertia and other properties.
// The height is measured along the local y-axis and the width along the local z-axis
//
//	              y
//	              ^                            tw
//	              |                        -->| |<--
//	          +-------+                ___    | |     ___
//	          |   |   |              tf |   ########   |
//	          |   |   |                ---  ########   |
//	          |   +---|---> z                  ##      |
//	          |       |  h = Hei               ##      | h = Hei
//	          |       |                ---  ########   |
//	          +-------+              tf_|_  ########  ---
//	           b = Wid                       b = Wid
//
//	typ: "rectangle", "I-beam" or "circle"
type CrossSection struct {

	// input
	Type string  // "rectangle", "I-beam" or "circle"
	Wid  float64 // width (b) if not circular
	Hei  float64 // height (h) if not circular
	Tf   float64 // flange thickness if I-beam
	Tw   float64 // web thickness if I-beam
	R    float64 // radius if circular

	// derived
	A  float64 // cross-sectional area
	Iz float64 // major moment of inertia (bending in the local x-y plane)
	Iy float64 // minor moment of inertia (bending in the local x-z plane)
	J  float64 // torsional constant
}

// NewCrossSection returns a new cross-section with its properties computed
func NewCrossSection(typ string, wid, hei, tf, tw, rad float64) (o *CrossSection, err error) {

	// input data
	o = &CrossSection{Type: typ, Wid: wid, Hei: hei, Tf: tf, Tw: tw, R: rad}

	// derived
	switch typ {
	case "rectangle":
		b, h := wid, hei
		if b <= 0 || h <= 0 {
			return nil, fmt.Errorf("rectangle requires b > 0 and h > 0 (got %g and %g)", b, h)
		}
		b3 := b * b * b
		h3 := h * h * h
		o.A = b * h
		o.Iz = b * h3 / 12.0
		o.Iy = b3 * h / 12.0
		if b == h {
			o.J = 9.0 * b3 * b / 64.0
		} else {
			if b > h {
				b, h = h, b
			}
			o.J = h * b3 * (1.0/3.0 - 0.21*(b/h)*(1.0-b*b3/(12.0*h*h3))) // approximate
		}

	case "I-beam":
		b, h := wid, hei
		if b <= 0 || tf <= 0 || tw <= 0 || h <= 2*tf || tw > b {
			return nil, fmt.Errorf("I-beam requires b > 0, tf > 0, 0 < tw ≤ b and h > 2 tf (got b=%g h=%g tf=%g tw=%g)", b, h, tf, tw)
		}
		b3 := b * b * b
		h3 := h * h * h
		tf3 := tf * tf * tf
		tw3 := tw * tw * tw
		l := h - 2.0*tf
		l3 := l * l * l
		o.A = b*h - l*(b-tw)
		o.Iz = b*h3/12.0 - (b-tw)*l3/12.0
		o.Iy = l*tw3/12.0 + tf*b3/6.0
		o.J = (2.0*b*tf3 + (h-2.0*tf)*tw3) / 3.0

	case "circle":
		if rad <= 0 {
			return nil, fmt.Errorf("circle requires r > 0 (got %g)", rad)
		}
		r2 := rad * rad
		o.A = math.Pi * r2
		o.Iz = math.Pi * r2 * r2 / 4.0
		o.Iy = o.Iz
		o.J = o.Iz + o.Iy

	default:
		return nil, fmt.Errorf("%w: cross-section type %q", ErrUnavailable, typ)
	}
	return
}

// Material holds parameters of some reference materials
type Material struct {

	// input
	Type     string // type of material; e.g. "steel"
	UnitPres string // unit of pressure

	// derived
	UnitDens string  // unit of density
	Desc     string  // description
	E        float64 // Young's modulus
	Nu       float64 // Poisson's coefficient
	G        float64 // shear modulus
	Rho      float64 // density
}

// NewMaterial returns the parameters of a reference material
//
//	Input:
//	 unitPres:  "kPa" => E:[kPa], rho:[Mg/m³]
//	            "MPa" => E:[MPa], rho:[Gg/m³]
//	            "GPa" => E:[GPa], rho:[Tg/m³]
func NewMaterial(typ, unitPres string) (o *Material, err error) {

	// material data
	o = &Material{Type: typ}
	switch typ {
	case "steel":
		o.Desc = "Steel: structural A36"
		o.E = 200000.0  // [MPa]
		o.Nu = 0.32     // [-]
		o.Rho = 7.85e-3 // [Gg/m³]
	case "aluminum":
		o.Desc = "Aluminum: 2014-T6"
		o.E = 73100.0   // [MPa]
		o.Nu = 0.35     // [-]
		o.Rho = 2.79e-3 // [Gg/m³]
	case "concrete-low":
		o.Desc = "Concrete: low strength"
		o.E = 22100.0   // [MPa]
		o.Nu = 0.15     // [-]
		o.Rho = 2.38e-3 // [Gg/m³]
	case "concrete-high":
		o.Desc = "Concrete: high strength"
		o.E = 30000.0   // [MPa]
		o.Nu = 0.15     // [-]
		o.Rho = 2.38e-3 // [Gg/m³]
	case "wood-douglas-fir":
		o.Desc = "Wood: Douglas-fir"
		o.E = 13100.0   // [MPa]
		o.Nu = 0.29     // [-]
		o.Rho = 4.70e-4 // [Gg/m³]
	default:
		return nil, fmt.Errorf("%w: material %q", ErrUnavailable, typ)
	}

	// set unit
	o.UnitPres = unitPres
	toPres := 1.0 // converts MPa to unitPres
	toDens := 1.0 // converts Gg/m³ to UnitDens
	switch unitPres {
	case "kPa":
		o.UnitDens = "Mg/m³"
		toPres, toDens = 1e3, 1e3
	case "MPa":
		o.UnitDens = "Gg/m³"
	case "GPa":
		o.UnitDens = "Tg/m³"
		toPres, toDens = 1e-3, 1e-3
	default:
		return nil, fmt.Errorf("%w: unit of pressure %q", ErrUnavailable, unitPres)
	}

	// convert values to requested units
	o.E *= toPres
	o.Rho *= toDens

	// derived quantity
	o.G = o.E / (2.0 * (1.0 + o.Nu))
	return
}
