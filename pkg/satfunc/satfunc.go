// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package satfunc

import (
	"github.com/consensys/go-proptab/pkg/linear"
)

// FillValue marks unused cells of saturation function tables.
const FillValue = 1.0e20

// buildTable creates the linearised, padded vector for a collection of
// saturation function tables.  Saturation functions have no sub-tables and,
// hence, a single primary key.
func buildTable(numTables, numRows, numDep uint, fn linear.FillFunc) []float64 {
	return linear.BuildPropfuncTable(numTables, 1, numRows, numDep, FillValue, fn)
}

// outputRelperm copies relative permeability values into dst, zeroing any
// value not strictly above the mobility threshold tolcrit.
func outputRelperm(kr []float64, tolcrit float64, dst []float64) {
	for i, v := range kr {
		if v > tolcrit {
			dst[i] = v
		} else {
			dst[i] = 0
		}
	}
}

// outputReversedRelperm is outputRelperm over kr in reverse order.
func outputReversedRelperm(kr []float64, tolcrit float64, dst []float64) {
	n := len(kr)
	//
	for i := range kr {
		v := kr[n-1-i]
		//
		if v > tolcrit {
			dst[i] = v
		} else {
			dst[i] = 0
		}
	}
}

// outputReversedComplement writes 1-s[i] into dst in reverse order, thus
// transforming increasing phase saturations into increasing oil saturations.
func outputReversedComplement(s []float64, dst []float64) {
	n := len(s)
	//
	for i := range s {
		dst[i] = 1.0 - s[n-1-i]
	}
}
