/*
 * skfplot.go, part of goSKF
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

//Package skfplot draws the integral curves of parsed .skf tables, mainly
//to eyeball a generated table against a reference one (plot both with
//the same domain and compare).
package skfplot

import (
	"fmt"

	skf "github.com/goskf/goskf"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

func basicPlot(title string, domain [2]float64) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "r (Bohr radii)"
	p.Y.Label.Text = "integral (Hartree)"
	p.X.Min = domain[0]
	p.X.Max = domain[1]
	p.Add(plotter.NewGrid())
	return p
}

//plotHalf draws one half (Hamiltonian or overlap) of a table. Channels
//that are not present (zero everywhere past the first third of the grid,
//see skf.Table.Present) are skipped, so unparameterized orbitals don't
//clutter the legend.
func plotHalf(T *skf.Table, labels []string, title string, domain [2]float64, filename string) error {
	p := basicPlot(title, domain)
	rs := T.Rs()
	drawn := 0
	for _, label := range labels {
		present, err := T.Present(label)
		if err != nil {
			return err
		}
		if !present {
			continue
		}
		col, err := T.Column(label)
		if err != nil {
			return err
		}
		pts := make(plotter.XYs, len(col))
		for i, v := range col {
			pts[i].X = rs[i]
			pts[i].Y = v
		}
		l, err := plotter.NewLine(pts)
		if err != nil {
			return err
		}
		l.Color = plotutil.Color(drawn)
		p.Add(l)
		p.Legend.Add(label, l)
		drawn++
	}
	if err := p.Save(6*vg.Inch, 4*vg.Inch, filename); err != nil {
		return err
	}
	return nil
}

//Plot draws the Hamiltonian and overlap halves of the table into
//basename_H.png and basename_S.png, with the x axis limited to the given
//domain (r values, in Bohr radii).
func Plot(T *skf.Table, domain [2]float64, basename string) error {
	if err := plotHalf(T, T.HLabels(), "Hamiltonian matrix elements", domain, fmt.Sprintf("%s_H.png", basename)); err != nil {
		return err
	}
	return plotHalf(T, T.SLabels(), "Overlap matrix elements", domain, fmt.Sprintf("%s_S.png", basename))
}
