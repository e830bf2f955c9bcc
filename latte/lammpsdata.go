/*
 * lammpsdata.go, part of goSKF
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

package latte

import (
	"fmt"
	"log"
	"os"
)

//WriteLAMMPSData writes the configuration as a LAMMPS data file
//(Description header, box extents, Masses and Atoms sections), so the
//same system can be run with the tabulated pair potentials this library
//generates. Atom type numbers follow the order of C.Types, starting at
//1; masses come from the element mass table, and unknown symbols get
//mass 0 for the user to fix by hand.
func WriteLAMMPSData(name string, C *Config) error {
	out, err := os.Create(name)
	if err != nil {
		return err
	}
	defer out.Close()

	fmt.Fprintf(out, "LAMMPS Description\n \n")
	fmt.Fprintf(out, "%d atoms\n \n", C.Len())
	fmt.Fprintf(out, "%d atom types\n \n", len(C.Types))

	dims := []string{"x", "y", "z"}
	for i := 0; i < 3; i++ {
		lo, hi := C.Box[i][0], C.Box[i][0]
		for _, v := range C.Box[i] {
			if v < lo {
				lo = v
			}
			if v > hi {
				hi = v
			}
		}
		fmt.Fprintf(out, "%g %g %slo %shi\n", lo, hi, dims[i], dims[i])
	}
	fmt.Fprintf(out, "\nMasses\n\n")
	for k, t := range C.Types {
		fmt.Fprintf(out, "%d %g\n", k+1, symbolMass[t])
	}
	fmt.Fprintf(out, "\nAtoms\n\n")
	id := 1
	for k, q := range C.Coords {
		rows, _ := q.Dims()
		for i := 0; i < rows; i++ {
			_, err = fmt.Fprintf(out, "%d %d %.5f %.5f %.5f\n", id, k+1, q.At(i, 0), q.At(i, 1), q.At(i, 2))
			if err != nil {
				return err
			}
			id++
		}
	}
	log.Printf("Wrote .lmp file: %s (%d atoms)", name, C.Len())
	return nil
}
