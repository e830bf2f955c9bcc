/*
 * latte.go, part of goSKF
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

//Package latte reads and writes the atomic-configuration files used
//around the LATTE tight-binding code: the .dat coordinate format, LAMMPS
//data files, and LATTE's own text output. It also provides the few
//periodic-coordinate manipulations (translation, box wrapping, bounds)
//that preparing those files needs. This is deliberately thin plumbing:
//anything resembling simulation belongs to LATTE/LAMMPS themselves.
package latte

import (
	"bufio"
	"fmt"
	"log"
	"math"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"
)

//A map for assigning mass to elements.
//Note that just the elements common in LATTE-style simulations are present.
var symbolMass = map[string]float64{
	"H":  1.0,
	"C":  12.01,
	"N":  14.01,
	"O":  16.00,
	"F":  18.998,
	"Na": 22.99,
	"Mg": 24.30,
	"Si": 28.08,
	"P":  30.97,
	"S":  32.06,
	"Cl": 35.45,
	"K":  39.1,
	"Ca": 40.08,
	"Ti": 47.87,
	"Fe": 55.84,
	"Cu": 63.55,
	"Zn": 65.38,
}

//Config is an atomic configuration in a periodic box: one Nx3 coordinate
//block per element type, plus the three box periodicity vectors, one per
//row. Types appear in first-seen order and each type occurs once.
type Config struct {
	Box    [3][3]float64
	Types  []string
	Coords []*mat.Dense //one Nx3 block per entry of Types
}

//Len returns the total number of atoms over all types.
func (C *Config) Len() int {
	n := 0
	for _, q := range C.Coords {
		r, _ := q.Dims()
		n += r
	}
	return n
}

//block returns the coordinate block for the given type, or nil.
func (C *Config) block(symbol string) *mat.Dense {
	for i, t := range C.Types {
		if t == symbol {
			return C.Coords[i]
		}
	}
	return nil
}

//ReadDat reads a LATTE .dat configuration file: the atom count, three
//box-vector lines, then one "Symbol x y z" line per atom. Atoms are
//grouped into one coordinate block per element type, in first-seen order.
func ReadDat(name string) (*Config, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	in := bufio.NewScanner(f)

	readLine := func() ([]string, error) {
		if !in.Scan() {
			if err := in.Err(); err != nil {
				return nil, err
			}
			return nil, fmt.Errorf("latte: %s ends prematurely", name)
		}
		return strings.Fields(in.Text()), nil
	}

	fields, err := readLine()
	if err != nil {
		return nil, err
	}
	if len(fields) < 1 {
		return nil, fmt.Errorf("latte: %s: missing atom count", name)
	}
	natoms, err := strconv.Atoi(fields[0])
	if err != nil {
		return nil, fmt.Errorf("latte: %s: bad atom count: %v", name, err)
	}

	C := new(Config)
	for i := 0; i < 3; i++ {
		fields, err = readLine()
		if err != nil {
			return nil, err
		}
		if len(fields) < 3 {
			return nil, fmt.Errorf("latte: %s: box vector line %d ill-formed", name, i+1)
		}
		for j := 0; j < 3; j++ {
			C.Box[i][j], err = strconv.ParseFloat(fields[j], 64)
			if err != nil {
				return nil, fmt.Errorf("latte: %s: box vector line %d: %v", name, i+1, err)
			}
		}
	}

	//one growing coordinate slice per type; converted to blocks at the end
	raw := make([][]float64, 0, 2)
	for i := 0; i < natoms; i++ {
		fields, err = readLine()
		if err != nil {
			return nil, err
		}
		if len(fields) < 4 {
			return nil, fmt.Errorf("latte: %s: atom line %d ill-formed", name, i+1)
		}
		var xyz [3]float64
		for j := 0; j < 3; j++ {
			xyz[j], err = strconv.ParseFloat(fields[j+1], 64)
			if err != nil {
				return nil, fmt.Errorf("latte: %s: atom line %d: %v", name, i+1, err)
			}
		}
		ti := -1
		for k, t := range C.Types {
			if t == fields[0] {
				ti = k
				break
			}
		}
		if ti < 0 {
			C.Types = append(C.Types, fields[0])
			raw = append(raw, nil)
			ti = len(C.Types) - 1
		}
		raw[ti] = append(raw[ti], xyz[0], xyz[1], xyz[2])
	}
	for _, data := range raw {
		C.Coords = append(C.Coords, mat.NewDense(len(data)/3, 3, data))
	}
	return C, nil
}

//WriteDat writes the configuration in LATTE's .dat format: atom count,
//the three box vectors with 4 decimals, then one "Symbol x y z" line per
//atom with 5 decimals, blocks in type order.
func (C *Config) WriteDat(name string) error {
	out, err := os.Create(name)
	if err != nil {
		return err
	}
	defer out.Close()
	fmt.Fprintf(out, "       %d\n", C.Len())
	for i := 0; i < 3; i++ {
		fmt.Fprintf(out, "   %.4f   %.4f   %.4f\n", C.Box[i][0], C.Box[i][1], C.Box[i][2])
	}
	for k, q := range C.Coords {
		rows, _ := q.Dims()
		for i := 0; i < rows; i++ {
			_, err = fmt.Fprintf(out, "%s    %.5f   %.5f   %.5f\n", C.Types[k], q.At(i, 0), q.At(i, 1), q.At(i, 2))
			if err != nil {
				return err
			}
		}
	}
	log.Printf("Wrote .dat file: %s (%d atoms)", name, C.Len())
	return nil
}

//Translate displaces every coordinate of every type block by d.
func (C *Config) Translate(d [3]float64) {
	for _, q := range C.Coords {
		rows, _ := q.Dims()
		for i := 0; i < rows; i++ {
			for j := 0; j < 3; j++ {
				q.Set(i, j, q.At(i, j)+d[j])
			}
		}
	}
}

//Wrap moves atoms that left the box back inside, using the periodicity
//vectors. It assumes an orthorhombic box (only the diagonal of the box
//vectors is used) and moves each atom by at most one box length per
//dimension. Atoms within a small tolerance below zero are left in place.
func (C *Config) Wrap() {
	const tol = 1e-3
	var size [3]float64
	for i := 0; i < 3; i++ {
		size[i] = C.Box[i][i]
	}
	for _, q := range C.Coords {
		rows, _ := q.Dims()
		for i := 0; i < rows; i++ {
			for j := 0; j < 3; j++ {
				v := q.At(i, j)
				if v < 0-tol {
					q.Set(i, j, v+size[j])
				} else if v >= size[j] {
					q.Set(i, j, v-size[j])
				}
			}
		}
	}
}

//Bounds returns the extreme coordinate values over all atoms and all
//directions, useful for setting plotting ranges.
func (C *Config) Bounds() (min, max float64) {
	min = math.Inf(1)
	max = math.Inf(-1)
	for _, q := range C.Coords {
		rows, _ := q.Dims()
		for i := 0; i < rows; i++ {
			for j := 0; j < 3; j++ {
				v := q.At(i, j)
				if v < min {
					min = v
				}
				if v > max {
					max = v
				}
			}
		}
	}
	return min, max
}

//MeanDisplacement returns the average distance between corresponding
//atoms of two configurations, which must have the same types with the
//same number of atoms each.
func MeanDisplacement(a, b *Config) (float64, error) {
	if len(a.Coords) != len(b.Coords) {
		return 0, fmt.Errorf("latte: configurations have %d and %d type blocks", len(a.Coords), len(b.Coords))
	}
	total := 0.0
	n := 0
	for k, qa := range a.Coords {
		qb := b.Coords[k]
		ra, _ := qa.Dims()
		rb, _ := qb.Dims()
		if ra != rb {
			return 0, fmt.Errorf("latte: type block %d has %d and %d atoms", k, ra, rb)
		}
		for i := 0; i < ra; i++ {
			dx := qb.At(i, 0) - qa.At(i, 0)
			dy := qb.At(i, 1) - qa.At(i, 1)
			dz := qb.At(i, 2) - qa.At(i, 2)
			total += math.Sqrt(dx*dx + dy*dy + dz*dz)
			n++
		}
	}
	if n == 0 {
		return 0, fmt.Errorf("latte: no atoms to compare")
	}
	return total / float64(n), nil
}
