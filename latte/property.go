/*
 * property.go, part of goSKF
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
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

//PropertyNotFoundError reports that a LATTE output file does not contain
//the requested property. It is a distinct type so callers can tell "not
//there" from "there but unparseable": a missing property must never be
//silently coerced to 0 or NaN.
type PropertyNotFoundError struct {
	Property string
	File     string
}

func (err PropertyNotFoundError) Error() string {
	return fmt.Sprintf("latte: property %q not found in %s", err.Property, err.File)
}

//Property scans a LATTE output text file for the scalar property with
//the given name and returns its value. The property line is recognized
//by its prefix, and the value is the last whitespace-separated field of
//that line. Nonscalar properties (tensors) are not handled.
func Property(property, name string) (float64, error) {
	f, err := os.Open(name)
	if err != nil {
		return 0, err
	}
	defer f.Close()
	in := bufio.NewScanner(f)
	for in.Scan() {
		line := in.Text()
		if !strings.HasPrefix(line, property) {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		v, err := strconv.ParseFloat(fields[len(fields)-1], 64)
		if err != nil {
			return 0, fmt.Errorf("latte: property %q in %s: %v", property, name, err)
		}
		return v, nil
	}
	if err := in.Err(); err != nil {
		return 0, err
	}
	return 0, PropertyNotFoundError{Property: property, File: name}
}
