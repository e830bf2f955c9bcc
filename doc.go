/*
 * doc.go, part of goSKF
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

/*Package skf generates and validates Slater-Koster (.skf) tight-binding
parameter tables and companion LAMMPS tabulated pair potentials from
closed-form Chebyshev fits.


	**goSKF capabilities**

    Writes .skf files (header, 20-column integral table, spline stub
	section) for homonuclear and heteronuclear parameterizations, ready
	for consumption by LATTE and DFTB+.

    Writes pairwise repulsive potentials in the LAMMPS tabulated pair
	style ("metal" units; the atomic-unit to eV/Angstrom conversion is
	done internally).

    Reads .skf files back, both the simple and the extended (f-orbital)
	column layouts, including the count*value repeat notation used by
	some distributed tables, and plain, gzip or zstd compressed files.
	The parsed tables drive numeric and visual comparison against
	reference sets (see the skfplot subpackage).

    Ships the Porezag et al. carbon parameterization (see the porezag
	subpackage) and the Chebyshev machinery (cheb) needed to add others.

    Reads and writes LATTE .dat atomic-configuration files and LAMMPS
	data files, with the small set of coordinate manipulations the table
	generator's surroundings need (see the latte subpackage).

A parameterization is described by a Param value holding the grid, the
element metadata and two injected functions: one mapping an interatomic
distance to the 20 Hamiltonian/overlap matrix elements, and one mapping a
distance to a pairwise (energy, force). Everything is a plain value; there
is no global state, and generation runs are single threaded, whole file
in, whole file out.
*/
package skf
