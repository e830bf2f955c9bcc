/*
 * porezag_test.go, part of goSKF
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

package porezag

import (
	"math"
	"testing"

	skf "github.com/goskf/goskf"
	"github.com/goskf/goskf/cheb"
)

//TestElementsOutsideDomain: everything must be exactly zero outside
//[1,7], including just past the endpoints. Not approximately zero, and
//not the boundary series value: exactly the zero record.
func TestElementsOutsideDomain(Te *testing.T) {
	zero := skf.Element{}
	for _, r := range []float64{0, 0.5, 0.999999, 7.000001, 8, 100} {
		if e := Elements(r); e != zero {
			Te.Errorf("Elements(%v) = %+v, want the all-zero record", r, e)
		}
	}
	zp := skf.Pair{}
	for _, r := range []float64{0, 0.9999, 4.100001, 5, 100} {
		if p := Pair(r); p != zp {
			Te.Errorf("Pair(%v) = %+v, want zeros", r, p)
		}
	}
}

//TestElementsBoundary: at r=1 and r=7 the series is evaluated (closed
//interval), finitely, and matches chebEval(y)-c[0]/2 directly.
func TestElementsBoundary(Te *testing.T) {
	for _, r := range []float64{1, 7} {
		e := Elements(r)
		y := tbDomain.Y(r)
		want := cheb.Eval(y, hSSSigma) - hSSSigma[0]/2
		if math.IsNaN(e.Hss0) || math.IsInf(e.Hss0, 0) {
			Te.Errorf("Hss0 at boundary r=%v is not finite: %v", r, e.Hss0)
		}
		if math.Abs(e.Hss0-want) > 1e-14 {
			Te.Errorf("Hss0(%v) = %v, direct series gives %v", r, e.Hss0, want)
		}
		if e.Hss0 == 0 && e.Sss0 == 0 {
			Te.Errorf("boundary r=%v treated as outside the domain", r)
		}
	}
}

//TestElementsAgainstSeries recomputes every parameterized channel from
//its coefficient table at a few interior distances. This doubles as a
//pin on the overlap pp-sigma/pp-pi assignment: those two tables are
//intentionally swapped with respect to the published paper (the paper
//mislabeled them), so Spp0 must come from the set whose leading
//coefficient is -0.1359608, and Spp1 from the one leading with
//0.3715732.
func TestElementsAgainstSeries(Te *testing.T) {
	channels := []struct {
		label string
		c     []float64
		get   func(e skf.Element) float64
	}{
		{"Hss0", hSSSigma, func(e skf.Element) float64 { return e.Hss0 }},
		{"Hsp0", hSPSigma, func(e skf.Element) float64 { return e.Hsp0 }},
		{"Hpp0", hPPSigma, func(e skf.Element) float64 { return e.Hpp0 }},
		{"Hpp1", hPPPi, func(e skf.Element) float64 { return e.Hpp1 }},
		{"Sss0", sSSSigma, func(e skf.Element) float64 { return e.Sss0 }},
		{"Ssp0", sSPSigma, func(e skf.Element) float64 { return e.Ssp0 }},
		{"Spp0", sPPSigma, func(e skf.Element) float64 { return e.Spp0 }},
		{"Spp1", sPPPi, func(e skf.Element) float64 { return e.Spp1 }},
	}
	for _, r := range []float64{1.3, 2.46, 3.5, 5.2, 6.9} {
		e := Elements(r)
		y := tbDomain.Y(r)
		for _, ch := range channels {
			want := cheb.Eval(y, ch.c) - ch.c[0]/2
			if got := ch.get(e); math.Abs(got-want) > 1e-14 {
				Te.Errorf("%s(%v) = %v, want %v", ch.label, r, got, want)
			}
		}
	}
}

func TestOverlapAssignment(Te *testing.T) {
	//the corrected (Cawkwell-consistent) orientation of the two swapped
	//overlap tables
	if sPPSigma[0] != -0.1359608 {
		Te.Errorf("pp-sigma overlap table leads with %v, the corrected assignment leads with -0.1359608", sPPSigma[0])
	}
	if sPPPi[0] != 0.3715732 {
		Te.Errorf("pp-pi overlap table leads with %v, the corrected assignment leads with 0.3715732", sPPPi[0])
	}
}

//TestDChannelsZero: the parameterization has no d orbitals, so every d
//channel stays zero even inside the domain.
func TestDChannelsZero(Te *testing.T) {
	e := Elements(2.5)
	for label, v := range map[string]float64{
		"Hsd0": e.Hsd0, "Hpd0": e.Hpd0, "Hpd1": e.Hpd1,
		"Hdd0": e.Hdd0, "Hdd1": e.Hdd1, "Hdd2": e.Hdd2,
		"Ssd0": e.Ssd0, "Spd0": e.Spd0, "Spd1": e.Spd1,
		"Sdd0": e.Sdd0, "Sdd1": e.Sdd1, "Sdd2": e.Sdd2,
	} {
		if v != 0 {
			Te.Errorf("%s = %v inside the domain, want 0", label, v)
		}
	}
}

//TestPairForceFiniteDifference checks the analytic force against a
//central finite difference of the energy with respect to r, at interior
//points of the pair domain. An off-by-one in the derivative recurrence
//would produce a wrong but plausible-looking curve, which is exactly
//what this catches.
func TestPairForceFiniteDifference(Te *testing.T) {
	const h = 1e-5
	for _, r := range []float64{1.2, 1.5, 2.0, 2.5, 3.0, 3.5, 4.0} {
		p := Pair(r)
		fd := -(Pair(r+h).Energy - Pair(r-h).Energy) / (2 * h)
		tol := 1e-4 * math.Max(math.Abs(fd), 1e-6)
		if math.Abs(p.Force-fd) > tol {
			Te.Errorf("force at r=%v: analytic %v, finite difference %v", r, p.Force, fd)
		}
	}
}

//TestPairEnergyDecreasing: the repulsion is monotonically decaying over
//the fit domain, so the force should stay positive (pushing apart) well
//inside it.
func TestPairEnergyDecreasing(Te *testing.T) {
	prev := Pair(1.0).Energy
	for r := 1.1; r <= 3.5; r += 0.1 {
		cur := Pair(r).Energy
		if cur >= prev {
			Te.Errorf("repulsive energy not decaying at r=%v: %v -> %v", r, prev, cur)
		}
		prev = cur
	}
}

//TestCarbonParam sanity-checks the shipped bundle.
func TestCarbonParam(Te *testing.T) {
	p := Carbon()
	if p.Kind != skf.Homonuclear {
		Te.Errorf("carbon bundle is %v, want homonuclear", p.Kind)
	}
	if p.Mass != 12.01 || p.GridDist != 0.02 || p.NGridPoints != 500 {
		Te.Errorf("unexpected grid/mass metadata: %+v", p)
	}
	if got := p.GridDist * float64(p.NGridPoints-1); got < p.DomainTB[1] {
		Te.Errorf("grid ends at %v, before the tight-binding cutoff %v", got, p.DomainTB[1])
	}
	//the two injected functions must be the package evaluators
	if p.Elements == nil || p.Pair == nil {
		Te.Error("carbon bundle missing an evaluator")
	}
	if e := p.Elements(2.5); e != Elements(2.5) {
		Te.Error("bundle element function disagrees with Elements")
	}
}
