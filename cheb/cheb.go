/*
 * cheb.go, part of goSKF
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

//Package cheb evaluates truncated Chebyshev expansions and their first
//derivatives, and maps bounded physical intervals onto the canonical
//Chebyshev domain [-1,1]. These are the numeric kernels behind the fitted
//tight-binding matrix elements and the pairwise repulsion, so the
//recurrences must stay exactly the textbook ones: changing them changes
//published physical constants.
package cheb

//Eval returns the value of the Chebyshev series Sum_k c[k]*T_k(y), where
//T_k is the Chebyshev polynomial of the first kind, via the recurrence
//T_0=1, T_1=y, T_k=2y*T_{k-1}-T_{k-2}.
//y is assumed to be in [-1,1]; the function does not check that.
func Eval(y float64, c []float64) float64 {
	if len(c) == 0 {
		return 0
	}
	sum := c[0]
	if len(c) == 1 {
		return sum
	}
	sum += c[1] * y
	tprev := 1.0 //T_{k-2}
	tcurr := y   //T_{k-1}
	for k := 2; k < len(c); k++ {
		t := 2*y*tcurr - tprev
		sum += c[k] * t
		tprev = tcurr
		tcurr = t
	}
	return sum
}

//Deriv returns the derivative with respect to y of the series evaluated
//by Eval: d/dy Sum_k c[k]*T_k(y) = Sum_{k>=1} k*c[k]*U_{k-1}(y), where
//U_n is the Chebyshev polynomial of the second kind, via the recurrence
//U_0=1, U_1=2y, U_n=2y*U_{n-1}-U_{n-2}.
func Deriv(y float64, c []float64) float64 {
	if len(c) < 2 {
		return 0
	}
	sum := c[1] //k=1 term, U_0=1
	if len(c) == 2 {
		return sum
	}
	uprev := 1.0  //U_{k-3}
	ucurr := 2 * y //U_{k-2}
	sum += 2 * c[2] * ucurr
	for k := 3; k < len(c); k++ {
		u := 2*y*ucurr - uprev
		sum += float64(k) * c[k] * u
		uprev = ucurr
		ucurr = u
	}
	return sum
}

//Domain is a bounded physical interval [Min,Max] (in Bohr radii, for the
//parameterizations shipped here) on which a Chebyshev fit is valid.
type Domain struct {
	Min, Max float64
}

//Contains returns whether r lies in the closed interval [Min,Max].
//Interaction models return exact zeros outside their domain instead of
//extrapolating, so they gate on this before calling Y.
func (D Domain) Contains(r float64) bool {
	return r >= D.Min && r <= D.Max
}

//Y maps r in [Min,Max] onto [-1,1].
func (D Domain) Y(r float64) float64 {
	return (2*r - D.Max - D.Min) / (D.Max - D.Min)
}

//R is the inverse of Y.
func (D Domain) R(y float64) float64 {
	return (y*(D.Max-D.Min) + D.Max + D.Min) / 2
}

//DyDr returns dy/dr for the affine map Y. It is constant over the domain,
//and is the factor that turns d/dy of a fitted energy into a physical force.
func (D Domain) DyDr() float64 {
	return 2 / (D.Max - D.Min)
}
