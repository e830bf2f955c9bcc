/*
 * files.go, part of goSKF
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
	"strconv"
	"strings"
)

//SKFWrite writes the parameterization P as a .skf file named name.
//The layout is the one LATTE and DFTB+ expect: a grid line, one or two
//element-data lines depending on P.Kind, one integral-table row of 20
//columns per grid point, and a placeholder spline section. Grid rows
//below the tight-binding domain are written as all 1.0, which is the
//sentinel downstream codes expect there; rows inside the domain come
//from P.Elements. The file is written whole; any failure aborts the
//generation and no attempt is made to clean up a partial file.
func SKFWrite(name string, P *Param) error {
	if err := P.check(); err != nil {
		return errDecorate(err, "SKFWrite")
	}
	if P.Elements == nil {
		return Error{NilElementFunc, name, []string{"SKFWrite"}, true}
	}
	out, err := os.Create(name)
	if err != nil {
		return Error{UnableToOpen + ": " + err.Error(), name, []string{"SKFWrite"}, true}
	}
	defer out.Close()
	w := bufio.NewWriter(out)

	//10 placeholder "d" values, required by the format but unused.
	dstub := strings.Repeat(" 0", 10)
	fmt.Fprintf(w, "%g %d\n", P.GridDist, P.NGridPoints)
	switch P.Kind {
	case Homonuclear:
		fmt.Fprintf(w, "%s %.8f %s %s\n", joinFloats(P.OnSite, "%.8f"), P.SPE, joinFloats(P.Hubbard, "%.8f"), joinFloats(P.Occup, "%.8f"))
		fmt.Fprintf(w, "%g %s %g%s\n", P.Mass, joinFloats(P.Spline, "%g"), P.DomainTB[1], dstub)
	case Heteronuclear:
		//the mass field is meaningless for heteronuclear tables, so an
		//obviously-dummy value goes there.
		fmt.Fprintf(w, "%d %s %g%s\n", 12345, joinFloats(P.Spline, "%g"), P.DomainTB[1], dstub)
	}

	for i := 0; i < P.NGridPoints; i++ {
		r := P.GridDist * float64(i)
		if r < P.DomainTB[0] {
			w.WriteString(onesRow(20))
			continue
		}
		e := P.Elements(r)
		row := e.row()
		w.WriteString(joinFloats(row[:], "%.5f") + "\n")
	}

	fmt.Fprintf(w, "Spline\n")
	fmt.Fprintf(w, "%d %g\n", 1, P.DomainTB[1]) //interval count, cutoff
	fmt.Fprintf(w, "0 0 -1\n")                  //a1 a2 a3 of exp(-a1*r+a2)+a3
	//one polynomial segment spanning the whole domain, all coefficients
	//zero: start end c0 c1 c2 c3 c4 c5
	fmt.Fprintf(w, "%g %g 0 0 0 0 0 0\n", P.DomainTB[0], P.DomainTB[1])

	if err := w.Flush(); err != nil {
		return Error{err.Error(), name, []string{"SKFWrite"}, true}
	}
	log.Printf("Wrote .skf file: %s (%d grid points)", name, P.NGridPoints)
	return nil
}

//joinFloats formats each value with the given verb and joins with spaces.
func joinFloats(v []float64, verb string) string {
	s := make([]string, len(v))
	for i, f := range v {
		s[i] = fmt.Sprintf(verb, f)
	}
	return strings.Join(s, " ")
}

//onesRow returns a sentinel integral-table row of n 1.0 columns.
func onesRow(n int) string {
	one := strconv.FormatFloat(1, 'f', 5, 64)
	cols := make([]string, n)
	for i := range cols {
		cols[i] = one
	}
	return strings.Join(cols, " ") + "\n"
}

//errDecorate adds the caller's name to an Error on the way up. It panics
//if used on an error that is not an skf.Error, which inside this package
//cannot happen.
func errDecorate(err error, caller string) error {
	err2 := err.(Error)
	err2.Decorate(caller)
	return err2
}
