/*
 * errors.go, part of goSKF
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

import "fmt"

//Error is the general structure for table generation and parsing errors.
type Error struct {
	message  string
	filename string //the file that has problems, or empty string if none.
	deco     []string
	critical bool
}

func (err Error) Error() string {
	if err.filename == "" {
		return fmt.Sprintf("skf error: %s", err.message)
	}
	return fmt.Sprintf("skf file %s error: %s", err.filename, err.message)
}

//Decorate adds new information to the error as it is passed up the call
//stack, and returns the current decoration trace.
func (err Error) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

//FileName returns the file associated to the error, if any.
func (err Error) FileName() string { return err.filename }

//Critical returns true if the error is critical, false otherwise.
func (err Error) Critical() bool { return err.critical }

//Error messages. Out-of-domain distances are deliberately NOT here: the
//interaction models define those to yield exact zeros, not failures.
const (
	UnknownKind      = "Parameterization kind must be homonuclear or heteronuclear"
	BadGrid          = "Radial grid inconsistent with the declared domains"
	BadElementData   = "Ill-formed element data vectors"
	NilElementFunc   = "Given nil element function"
	NilPairFunc      = "Given nil pair function"
	UnableToOpen     = "Unable to open file"
	NoSplineMarker   = "No Spline marker found"
	NoIntegralTable  = "No integral table found"
	BadIntegralTable = "Ill-formed integral table"
	BadRepeat        = "Ill-formed count*value entry"
)
