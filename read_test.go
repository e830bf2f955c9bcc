/*
 * read_test.go, part of goSKF
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

package skf_test

import (
	"math"
	"os"
	"strings"
	"testing"

	skf "github.com/goskf/goskf"
	"gonum.org/v1/gonum/floats"
)

//TestReadExtended parses the extended-layout fixture, which exercises
//the "@" format marker, the count*value repeat notation and stray
//commas at the same time.
func TestReadExtended(Te *testing.T) {
	T, err := skf.SKFRead("test/extended.skf")
	if err != nil {
		Te.Fatal(err)
	}
	if !T.Extended {
		Te.Fatal("extended fixture not detected as extended")
	}
	if T.GridDist != 0.5 {
		Te.Errorf("grid spacing %v, want 0.5", T.GridDist)
	}
	if T.NPoints() != 3 {
		Te.Fatalf("%d grid points, want 3", T.NPoints())
	}
	if !floats.Equal(T.Rs(), []float64{0, 0.5, 1}) {
		Te.Errorf("radial grid %v", T.Rs())
	}
	checks := map[string][]float64{
		"Hff0": {0.1, 0.2, 0.3}, //first H column
		"Hss0": {0.1, 0.0, 0.3}, //last H column
		"Sff0": {1.1, 1.2, 2.5}, //first S column
		"Sss0": {1.1, 1.2, 1.3}, //last S column
	}
	for label, want := range checks {
		got, err := T.Column(label)
		if err != nil {
			Te.Fatal(err)
		}
		if !floats.EqualApprox(got, want, 1e-12) {
			Te.Errorf("%s column = %v, want %v", label, got, want)
		}
	}
	if _, err := T.Column("Hqq0"); err == nil {
		Te.Error("Column accepted a label that does not exist")
	}
}

//TestReadCompressed: the same fixture gzip and zstd compressed must
//parse to identical tables.
func TestReadCompressed(Te *testing.T) {
	plain, err := skf.SKFRead("test/extended.skf")
	if err != nil {
		Te.Fatal(err)
	}
	for _, name := range []string{"test/extended.skf.gz", "test/extended.skf.zst"} {
		T, err := skf.SKFRead(name)
		if err != nil {
			Te.Fatal(err)
		}
		for _, label := range []string{"Hff0", "Hss0", "Sff0", "Sss0"} {
			a, _ := plain.Column(label)
			b, _ := T.Column(label)
			if !floats.Equal(a, b) {
				Te.Errorf("%s: %s column differs from the plain file", name, label)
			}
		}
	}
}

//writeTemp drops the given content in the test directory.
func writeTemp(Te *testing.T, name, content string) string {
	path := "test/" + name
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		Te.Fatal(err)
	}
	return path
}

//TestReadMalformed: truncated or inconsistent files must fail fast with
//a descriptive error, never yield a misaligned table.
func TestReadMalformed(Te *testing.T) {
	ones := strings.TrimSpace(strings.Repeat("1.0 ", 20))
	ragged := strings.TrimSpace(strings.Repeat("1.0 ", 19))

	cases := []struct {
		name    string
		content string
		wantSub string
	}{
		{"no-spline.skf",
			"0.1 3\n0 0 0 0 0 0 0 0 0 0\n" + ones + "\n" + ones + "\n" + ones + "\n" + ones + "\n",
			"Spline"},
		{"no-table.skf",
			"0.1 3\n0 0 0 0 0 0 0 0 0 0\nSpline\n1 7\n",
			"integral table"},
		{"ragged.skf",
			"0.1 3\n" + ones + "\n" + ones + "\n" + ragged + "\n" + ones + "\nSpline\n",
			"columns"},
		{"bad-repeat.skf",
			"0.1 3\n" + ones + "\n" + "x*1.0 " + ragged + "\nSpline\n",
			"count*value"},
		{"empty.skf", "", "too short"},
	}
	for _, c := range cases {
		path := writeTemp(Te, c.name, c.content)
		_, err := skf.SKFRead(path)
		if err == nil {
			Te.Errorf("%s parsed without error", c.name)
			continue
		}
		if !strings.Contains(err.Error(), c.wantSub) {
			Te.Errorf("%s: error %q does not mention %q", c.name, err, c.wantSub)
		}
	}
	if _, err := skf.SKFRead("test/does-not-exist.skf"); err == nil {
		Te.Error("reading a missing file did not fail")
	}
}

//TestRepeatExpansionValues: a compressed sentinel row must expand to the
//same values an uncompressed one has.
func TestRepeatExpansionValues(Te *testing.T) {
	ones := strings.TrimSpace(strings.Repeat("1.0 ", 20))
	zeros := "20*0.0"
	content := "0.1 3\n0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0\n" +
		"20*1.0\n" + ones + "\n" + zeros + "\nSpline\n"
	path := writeTemp(Te, "repeat.skf", content)
	T, err := skf.SKFRead(path)
	if err != nil {
		Te.Fatal(err)
	}
	if T.NPoints() != 3 {
		Te.Fatalf("%d points, want 3", T.NPoints())
	}
	col, err := T.Column("Hss0")
	if err != nil {
		Te.Fatal(err)
	}
	if !floats.Equal(col, []float64{1, 1, 0}) {
		Te.Errorf("Hss0 = %v, want [1 1 0]", col)
	}
	if math.Abs(T.GridDist-0.1) > 1e-15 {
		Te.Errorf("grid spacing %v", T.GridDist)
	}
}
