/*
 * lammps.go, part of goSKF
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

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"time"

	"gonum.org/v1/gonum/floats"
)

//PairTableWrite writes the pairwise repulsive potential of P as a LAMMPS
//tabulated pair potential ("pair_style table") named name. P is in atomic
//units throughout; the table comes out in metal units (Angstrom, eV),
//with the conversion done here. The radial grid has P.NGridPoints points
//evenly spaced over P.DomainPair, endpoints included.
func PairTableWrite(name string, P *Param) error {
	if P.Pair == nil {
		return Error{NilPairFunc, name, []string{"PairTableWrite"}, true}
	}
	if P.NGridPoints < 2 || P.DomainPair[1] <= P.DomainPair[0] {
		return Error{fmt.Sprintf("%s: %d points over [%g,%g]", BadGrid, P.NGridPoints, P.DomainPair[0], P.DomainPair[1]), name, []string{"PairTableWrite"}, true}
	}
	out, err := os.Create(name)
	if err != nil {
		return Error{UnableToOpen + ": " + err.Error(), name, []string{"PairTableWrite"}, true}
	}
	defer out.Close()
	w := bufio.NewWriter(out)

	rvals := floats.Span(make([]float64, P.NGridPoints), P.DomainPair[0], P.DomainPair[1])

	fmt.Fprintf(w, "# DATE: %s UNITS: metal CONTRIBUTOR: %s\n", time.Now().Format("2006-01-02"), P.Contributor)
	fmt.Fprintf(w, "# %s\n", P.Description)
	fmt.Fprintf(w, "\n")
	fmt.Fprintf(w, "%s\n", P.Keyword)
	fmt.Fprintf(w, "N %d\n", P.NGridPoints)
	fmt.Fprintf(w, "\n")

	for i, r := range rvals {
		p := P.Pair(r) //energy [Hartree], force [Hartree/Bohr radius]
		fmt.Fprintf(w, "%d %g %g %g\n", i+1, r*Bohr2A, p.Energy*H2eV, p.Force*(H2eV/Bohr2A))
	}

	if err := w.Flush(); err != nil {
		return Error{err.Error(), name, []string{"PairTableWrite"}, true}
	}
	log.Printf("Wrote LAMMPS pair table: %s (keyword %s, %d points)", name, P.Keyword, P.NGridPoints)
	return nil
}
