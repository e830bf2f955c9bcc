/*
 * skf.go, part of goSKF
 *
 * Copyright 2023 The goSKF developers
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package skf

import "fmt"

//Element holds the 20 Slater-Koster integrals for one interatomic
//distance: Hamiltonian (H) and overlap (S) matrix elements for each
//orbital channel, with 0 meaning sigma, 1 pi and 2 delta bonds.
//The zero value is the out-of-domain record: parameterizations return
//it, rather than extrapolating, for distances outside their fit domain.
//Channels a parameterization does not model simply stay zero.
type Element struct {
	Hss0 float64
	Hsp0 float64
	Hsd0 float64
	Hpp0 float64
	Hpp1 float64
	Hpd0 float64
	Hpd1 float64
	Hdd0 float64
	Hdd1 float64
	Hdd2 float64
	Sss0 float64
	Ssp0 float64
	Ssd0 float64
	Spp0 float64
	Spp1 float64
	Spd0 float64
	Spd1 float64
	Sdd0 float64
	Sdd1 float64
	Sdd2 float64
}

//row returns the integrals in the fixed .skf column order.
func (E *Element) row() [20]float64 {
	return [20]float64{
		E.Hdd0, E.Hdd1, E.Hdd2, E.Hpd0, E.Hpd1,
		E.Hpp0, E.Hpp1, E.Hsd0, E.Hsp0, E.Hss0,
		E.Sdd0, E.Sdd1, E.Sdd2, E.Spd0, E.Spd1,
		E.Spp0, E.Spp1, E.Ssd0, E.Ssp0, E.Sss0,
	}
}

//Pair is the pairwise repulsive interaction at one interatomic distance,
//in atomic units (Hartree, Hartree/Bohr radius). The zero value is the
//out-of-domain record. Force is the physical force, -dEnergy/dr.
type Pair struct {
	Energy float64
	Force  float64
}

//ElementFunc maps an interatomic distance, in Bohr radii, to the
//Slater-Koster integrals at that distance.
type ElementFunc func(r float64) Element

//PairFunc maps an interatomic distance, in Bohr radii, to the pairwise
//repulsive energy and force at that distance.
type PairFunc func(r float64) Pair

//Kind tells whether a parameterization describes the interaction between
//two atoms of the same element or of two different elements. The .skf
//header layout differs between the two.
type Kind int

const (
	Homonuclear Kind = iota
	Heteronuclear
)

func (K Kind) String() string {
	switch K {
	case Homonuclear:
		return "homonuclear"
	case Heteronuclear:
		return "heteronuclear"
	}
	return fmt.Sprintf("Kind(%d)", int(K))
}

//Param is the full description of one tight-binding parameterization, in
//atomic units throughout. It is the single source of truth for both table
//writers. Multiple Params can coexist; nothing in the package keeps state
//between calls.
type Param struct {
	Kind        Kind
	Mass        float64 //atomic mass of the element (first element, if heteronuclear)
	GridDist    float64 //spacing of the .skf radial grid [Bohr radii]
	NGridPoints int     //points in the radial grid, for both tables
	Elements    ElementFunc
	DomainTB    [2]float64 //validity domain of Elements [Bohr radii]
	//Homonuclear electronic data, written on the second .skf line:
	OnSite  []float64 //on-site energies Ed Ep Es [Hartree]
	SPE     float64   //spin polarization error of the spin-unpolarized atom
	Hubbard []float64 //Hubbard U values Ud Up Us
	Occup   []float64 //occupations of the neutral atom fd fp fs
	Spline  []float64 //the 8 spline coefficient placeholders of the mass line
	//Pairwise repulsion, for the LAMMPS table:
	Pair        PairFunc
	DomainPair  [2]float64 //validity domain of Pair [Bohr radii]
	Keyword     string     //LAMMPS pair_style table keyword
	Description string
	Contributor string
}

//check verifies the invariants both writers rely on: a sane grid that
//reaches at least to the tight-binding cutoff, and a recognized Kind.
func (P *Param) check() error {
	if P.Kind != Homonuclear && P.Kind != Heteronuclear {
		return Error{UnknownKind + ": " + P.Kind.String(), "", []string{"Param.check"}, true}
	}
	if P.GridDist <= 0 || P.NGridPoints <= 0 {
		return Error{fmt.Sprintf("%s: gridDist %v, nGridPoints %d", BadGrid, P.GridDist, P.NGridPoints), "", []string{"Param.check"}, true}
	}
	if P.GridDist*float64(P.NGridPoints-1) < P.DomainTB[1] {
		return Error{fmt.Sprintf("%s: grid ends at %v but the tight-binding cutoff is %v", BadGrid, P.GridDist*float64(P.NGridPoints-1), P.DomainTB[1]), "", []string{"Param.check"}, true}
	}
	//the .skf mass line must have exactly 20 fields, so the spline
	//placeholder vector is pinned to 8 entries.
	if len(P.Spline) != 8 {
		return Error{fmt.Sprintf("%s: %d spline placeholders, need 8", BadElementData, len(P.Spline)), "", []string{"Param.check"}, true}
	}
	if P.Kind == Homonuclear && (len(P.OnSite) != 3 || len(P.Hubbard) != 3 || len(P.Occup) != 3) {
		return Error{fmt.Sprintf("%s: on-site, Hubbard and occupation vectors must have 3 entries each", BadElementData), "", []string{"Param.check"}, true}
	}
	return nil
}
