/*
 * read.go, part of goSKF
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
	"compress/gzip"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/klauspost/compress/zstd"
	"gonum.org/v1/gonum/mat"
)

//Integral labels in .skf column order, first half Hamiltonian, second
//half overlap. Simple layout covers s, p and d orbitals; the extended
//layout adds the f channels.
var (
	hSimple = []string{"Hdd0", "Hdd1", "Hdd2", "Hpd0", "Hpd1",
		"Hpp0", "Hpp1", "Hsd0", "Hsp0", "Hss0"}
	sSimple = []string{"Sdd0", "Sdd1", "Sdd2", "Spd0", "Spd1",
		"Spp0", "Spp1", "Ssd0", "Ssp0", "Sss0"}
	hExtended = []string{"Hff0", "Hff1", "Hff2", "Hff3", "Hdf0",
		"Hdf1", "Hdf2", "Hdd0", "Hdd1", "Hdd2",
		"Hpf0", "Hpf1", "Hpd0", "Hpd1", "Hpp0",
		"Hpp1", "Hsf0", "Hsd0", "Hsp0", "Hss0"}
	sExtended = []string{"Sff0", "Sff1", "Sff2", "Sff3", "Sdf0",
		"Sdf1", "Sdf2", "Sdd0", "Sdd1", "Sdd2",
		"Spf0", "Spf1", "Spd0", "Spd1", "Spp0",
		"Spp1", "Ssf0", "Ssd0", "Ssp0", "Sss0"}
)

//Table is an integral table parsed back from a .skf file, used to compare
//generated tables against each other or against distributed reference sets.
type Table struct {
	GridDist float64
	Extended bool      //f-orbital (40 column) layout?
	H, S     *mat.Dense //one column per integral, one row per grid point
}

//NPoints returns the number of radial grid points in the table.
func (T *Table) NPoints() int {
	r, _ := T.H.Dims()
	return r
}

//HLabels returns the labels of the Hamiltonian columns, in column order.
func (T *Table) HLabels() []string {
	if T.Extended {
		return hExtended
	}
	return hSimple
}

//SLabels returns the labels of the overlap columns, in column order.
func (T *Table) SLabels() []string {
	if T.Extended {
		return sExtended
	}
	return sSimple
}

//Rs returns the radial grid of the table, gridDist*i for each row i.
func (T *Table) Rs() []float64 {
	r := make([]float64, T.NPoints())
	for i := range r {
		r[i] = T.GridDist * float64(i)
	}
	return r
}

//Column returns the values of the integral with the given label (e.g.
//"Hss0" or "Spp1"), one per grid point.
func (T *Table) Column(label string) ([]float64, error) {
	for j, l := range T.HLabels() {
		if l == label {
			return mat.Col(nil, j, T.H), nil
		}
	}
	for j, l := range T.SLabels() {
		if l == label {
			return mat.Col(nil, j, T.S), nil
		}
	}
	return nil, Error{fmt.Sprintf("No integral labeled %s in a table with this layout", label), "", []string{"Column"}, true}
}

//Present returns whether the labeled integral is non-trivially nonzero:
//channels a parameterization does not model are exactly zero everywhere,
//and the sentinel rows make every channel nonzero near r=0, so a series
//counts as present only if it has weight beyond the first third of the
//grid. Plotting uses this to skip empty channels.
func (T *Table) Present(label string) (bool, error) {
	col, err := T.Column(label)
	if err != nil {
		return false, errDecorate(err, "Present")
	}
	sum := 0.0
	for _, v := range col[len(col)/3:] {
		sum += math.Abs(v)
	}
	return sum > 0, nil
}

//zstdReadCloser adapts zstd.Decoder, whose Close returns nothing, to
//io.ReadCloser.
type zstdReadCloser struct {
	*zstd.Decoder
}

func (z zstdReadCloser) Close() error {
	z.Decoder.Close()
	return nil
}

//openTable opens a possibly-compressed table file, picking the
//decompressor from the filename extension. Reference .skf sets are often
//distributed gzip or zstd compressed, so the reader takes them as-is.
func openTable(name string) (io.ReadCloser, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	lower := strings.ToLower(name)
	switch {
	case strings.HasSuffix(lower, ".gz"):
		g, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, err
		}
		return g, nil
	case strings.HasSuffix(lower, ".zst"), strings.HasSuffix(lower, ".zstd"):
		z, err := zstd.NewReader(f)
		if err != nil {
			f.Close()
			return nil, err
		}
		return zstdReadCloser{z}, nil
	}
	return f, nil
}

//expandRepeats expands every count*value entry of a line into count
//repetitions of value, returning a flat field slice. Distributed .skf
//files compress runs of equal columns (typically zeros) this way.
func expandRepeats(fields []string) ([]string, error) {
	expanded := make([]string, 0, len(fields))
	for _, entry := range fields {
		if !strings.Contains(entry, "*") {
			expanded = append(expanded, entry)
			continue
		}
		parts := strings.SplitN(entry, "*", 2)
		count, err := strconv.ParseFloat(parts[0], 64)
		if err != nil || count < 0 || count != math.Trunc(count) {
			return nil, fmt.Errorf("%s: %q", BadRepeat, entry)
		}
		for i := 0; i < int(count); i++ {
			expanded = append(expanded, parts[1])
		}
	}
	return expanded, nil
}

//SKFRead parses the .skf file named name (plain, .gz or .zst) into a
//Table. It auto-detects the simple (20 column) vs extended (40 column)
//layout from the "@" marker on the first line, expands the count*value
//repeat notation, and locates the integral table between the header and
//the "Spline" marker. Malformed files (missing marker, missing table,
//ragged rows) fail with a descriptive error rather than yielding a
//truncated or misaligned table.
func SKFRead(name string) (*Table, error) {
	in, err := openTable(name)
	if err != nil {
		return nil, Error{UnableToOpen + ": " + err.Error(), name, []string{"SKFRead"}, true}
	}
	defer in.Close()

	var lines [][]string
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		//commas are decoration in some distributed files
		clean := strings.ReplaceAll(scanner.Text(), ",", "")
		fields, err := expandRepeats(strings.Fields(clean))
		if err != nil {
			return nil, Error{fmt.Sprintf("line %d: %v", len(lines)+1, err), name, []string{"SKFRead"}, true}
		}
		lines = append(lines, fields)
	}
	if err := scanner.Err(); err != nil {
		return nil, Error{err.Error(), name, []string{"SKFRead"}, true}
	}
	if len(lines) < 2 {
		return nil, Error{NoIntegralTable + ": file too short", name, []string{"SKFRead"}, true}
	}

	T := new(Table)
	gridLine := lines[0]
	ncols := 20
	if strings.Contains(strings.Join(lines[0], " "), "@") {
		//extended format: the marker line comes first, the grid line second
		T.Extended = true
		ncols = 40
		gridLine = lines[1]
	}
	if len(gridLine) == 0 {
		return nil, Error{NoIntegralTable + ": empty grid line", name, []string{"SKFRead"}, true}
	}
	T.GridDist, err = strconv.ParseFloat(gridLine[0], 64)
	if err != nil {
		return nil, Error{fmt.Sprintf("bad grid spacing %q: %v", gridLine[0], err), name, []string{"SKFRead"}, true}
	}

	start := -1
	for i, fields := range lines {
		if len(fields) == ncols {
			start = i
			//in the simple layout the element-data line right before the
			//integral table also has 20 fields; the table starts after it.
			if !T.Extended {
				start++
			}
			break
		}
	}
	if start < 0 || start >= len(lines) {
		return nil, Error{NoIntegralTable, name, []string{"SKFRead"}, true}
	}
	end := -1
	for i := start; i < len(lines); i++ {
		for _, f := range lines[i] {
			if f == "Spline" {
				end = i
				break
			}
		}
		if end >= 0 {
			break
		}
	}
	if end < 0 {
		return nil, Error{NoSplineMarker, name, []string{"SKFRead"}, true}
	}
	if end <= start {
		return nil, Error{NoIntegralTable, name, []string{"SKFRead"}, true}
	}

	rows := end - start
	T.H = mat.NewDense(rows, ncols/2, nil)
	T.S = mat.NewDense(rows, ncols/2, nil)
	for i := 0; i < rows; i++ {
		fields := lines[start+i]
		if len(fields) != ncols {
			return nil, Error{fmt.Sprintf("%s: row %d has %d columns, want %d", BadIntegralTable, i, len(fields), ncols), name, []string{"SKFRead"}, true}
		}
		for j, field := range fields {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, Error{fmt.Sprintf("%s: row %d column %d: %v", BadIntegralTable, i, j, err), name, []string{"SKFRead"}, true}
			}
			if j < ncols/2 {
				T.H.Set(i, j, v)
			} else {
				T.S.Set(i, j-ncols/2, v)
			}
		}
	}
	return T, nil
}
