/*
 * porezag.go, part of goSKF
 *
 * Copyright 2023 The goSKF developers
 *
    This program is free software: you can redistribute it and/or modify
    it under the terms of the GNU Lesser General Public License as published by
    the Free Software Foundation, either version 2.1 of the License, or
    (at your option) any later version.

    This program is distributed in the hope that it will be useful,
    but WITHOUT ANY WARRANTY; without even the implied warranty of
    MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
    GNU General Public License for more details.

    You should have received a copy of the GNU Lesser General Public License
    along with this program.  If not, see <http://www.gnu.org/licenses/>.
 *
 *
*/

//Package porezag implements the carbon tight-binding parameterization of
//Porezag, Frauenheim, Koehler, Seifert and Kaschner, "Construction of
//tight-binding-like potentials on the basis of density-functional theory:
//Application to carbon" (Phys. Rev. B 51, 12947, 1995), as closed-form
//Chebyshev fits: the s/p Hamiltonian and overlap matrix elements on
//[1,7] Bohr radii and the pairwise repulsive correction on [1,4.1] Bohr
//radii. All quantities are in atomic units.
package porezag

import (
	skf "github.com/goskf/goskf"
	"github.com/goskf/goskf/cheb"
)

//Validity domains of the fits [Bohr radii]. Outside them the model
//returns exact zeros instead of extrapolating.
var (
	tbDomain   = cheb.Domain{Min: 1, Max: 7}
	pairDomain = cheb.Domain{Min: 1, Max: 4.1}
)

//Chebyshev coefficients of the Hamiltonian matrix elements [Hartree],
//from Table I of the paper.
var (
	hSSSigma = []float64{-0.4663805, 0.3528951, -0.1402985, 0.0050519,
		0.0269723, -0.0158810, 0.0036716, 0.0010301,
		-0.0015546, 0.0008601}
	hSPSigma = []float64{0.3395418, -0.2250358, 0.0298224, 0.0653476,
		-0.0605786, 0.0298962, -0.0099609, 0.0020609,
		0.0001264, -0.0003381}
	hPPSigma = []float64{0.2422701, -0.1315258, -0.0372696, 0.0942352,
		-0.0673216, 0.0316900, -0.0117293, 0.0033519,
		-0.0004838, -0.0000906}
	hPPPi = []float64{-0.3793837, 0.3204470, -0.1956799, 0.0883986,
		-0.0300733, 0.0074465, -0.0008563, -0.0004453,
		0.0003842, -0.0001855}
)

//Chebyshev coefficients of the overlap matrix elements.
//NOTE: compared to the published table, the pp-sigma and pp-pi overlap
//sets are SWAPPED on purpose: the paper mislabeled those two columns in
//both the table and the corresponding plot. Cawkwell et al.,
//"Transferable density functional tight binding for carbon..." confirms
//the corrected assignment used here. Do not "fix" this back.
var (
	sSSSigma = []float64{0.4728644, -0.3661623, 0.1594782, -0.0204934,
		-0.0170732, 0.0096695, -0.0007135, -0.0013826,
		0.0007849, -0.0002005}
	sSPSigma = []float64{-0.3662838, 0.2490285, -0.0431248, -0.0584391,
		0.0492775, -0.0150447, -0.0010758, 0.0027734,
		-0.0011214, 0.0002303}
	sPPSigma = []float64{-0.1359608, 0.0226235, 0.1406440, -0.1573794,
		0.0753818, -0.0108677, -0.0075444, 0.0051533,
		-0.0013747, 0.0000751}
	sPPPi = []float64{0.3715732, -0.3070867, 0.1707304, -0.0581555,
		0.0061645, 0.0051460, -0.0032776, 0.0009119,
		-0.0001265, -0.000227}
)

//Chebyshev coefficients of the pairwise repulsive energy [Hartree].
var vRep = []float64{2.2681036, -1.9157174, 1.1677745, -0.5171036,
	0.1529242, -0.0219294, -0.0000002, -0.0000001,
	-0.0000005, 0.0000009}

//fit evaluates one fitted quantity at the mapped coordinate y. The
//half-weighted zeroth coefficient is subtracted so the truncated sum is a
//proper cosine-series expansion, as the fits were published.
func fit(y float64, c []float64) float64 {
	return cheb.Eval(y, c) - c[0]/2
}

//Elements computes the Slater-Koster integrals of the carbon
//parameterization at the interatomic distance r [Bohr radii]. Only the
//s and p channels are parameterized; everything involving d orbitals
//stays zero. For r outside [1,7] all channels are exactly zero.
func Elements(r float64) skf.Element {
	var e skf.Element
	if !tbDomain.Contains(r) {
		return e
	}
	y := tbDomain.Y(r)
	e.Hss0 = fit(y, hSSSigma)
	e.Hsp0 = fit(y, hSPSigma)
	e.Hpp0 = fit(y, hPPSigma)
	e.Hpp1 = fit(y, hPPPi)
	e.Sss0 = fit(y, sSSSigma)
	e.Ssp0 = fit(y, sSPSigma)
	e.Spp0 = fit(y, sPPSigma)
	e.Spp1 = fit(y, sPPPi)
	return e
}

//Pair computes the pairwise repulsive correction to the carbon
//parameterization at the interatomic distance r [Bohr radii]. The force
//is analytic: -dE/dr = -(dE/dy)(dy/dr), with dE/dy from the Chebyshev
//derivative recurrence, not from finite differencing. For r outside
//[1,4.1] both energy and force are exactly zero.
func Pair(r float64) skf.Pair {
	var p skf.Pair
	if !pairDomain.Contains(r) {
		return p
	}
	y := pairDomain.Y(r)
	p.Energy = fit(y, vRep)
	p.Force = -cheb.Deriv(y, vRep) * pairDomain.DyDr()
	return p
}

//Carbon returns the full carbon-carbon parameterization bundle, ready to
//be handed to the table writers. On-site energies, the spin polarization
//error, Hubbard values and occupations are the ones distributed with the
//DFTB+ 3ob set. Each call returns a fresh value, so callers may tweak
//grids without interfering with each other.
func Carbon() *skf.Param {
	return &skf.Param{
		Kind:        skf.Homonuclear,
		Mass:        12.01,
		GridDist:    0.02, //[Bohr radii]
		NGridPoints: 500,
		Elements:    Elements,
		DomainTB:    [2]float64{tbDomain.Min, tbDomain.Max},
		OnSite:      []float64{0, -0.19435511, -0.50489172},
		SPE:         -0.04547908,
		Hubbard:     []float64{0.3647, 0.3647, 0.3647},
		Occup:       []float64{0, 2, 2},
		Spline:      []float64{0, 0, 0, 0, 0, 0, 0, 0},
		Pair:        Pair,
		DomainPair:  [2]float64{pairDomain.Min, pairDomain.Max},
		Keyword:     "POREZAG_C",
		Description: "pairwise repulsive potential of Porezag C-C tight binding parameterization",
		Contributor: "goSKF",
	}
}
