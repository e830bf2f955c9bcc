/*
 * conversion.go, part of goSKF
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

//This provides useful conversion factors between atomic units, in which
//all parameterizations are expressed, and the LAMMPS "metal" unit system
//(Angstrom, eV) the pair tables are written in.

//Conversions
const (
	Bohr2A = 0.529177 //Bohr radii to Angstrom
	A2Bohr = 1 / 0.529177
	H2eV   = 27.2114 //Hartree to eV
	EV2H   = 1 / 27.2114
	H2Kcal = 627.509 //Hartree to Kcal/mol
	Kcal2H = 1 / 627.509
)
