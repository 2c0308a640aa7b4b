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
package linear

import "fmt"

// FillFunc populates one sub-table.  It writes the independent variate of
// sub-table primID of table tableID into column zero of table, and each
// dependent variate into columns one onwards.  It returns the number of active
// rows written, which is zero when no such sub-table exists (e.g. a
// composition node beyond the range of this particular region).
type FillFunc func(tableID, primID uint, table *Table) uint

// BuildPropfuncTable creates the linearised, padded vector for a collection of
// tabulated property functions corresponding to a single input keyword.  Each
// sub-table has 1 + 2*numDep columns: the independent variate, numDep dependent
// variates and their derivatives with respect to the independent variate.  The
// fill function is called once for every (table, primary key) pair in row-major
// order, immediately followed by the derivative calculation for that same
// sub-table using the reported number of active rows.  Derivatives are
// computed from the values already stored, and hence in output units.
func BuildPropfuncTable(numTables, numPrimary, numRows, numDep uint, fill float64, fn FillFunc) []float64 {
	numCols := 1 + 2*numDep
	table := NewTable(numTables, numPrimary, numRows, numCols, fill)
	//
	for tableID := uint(0); tableID < numTables; tableID++ {
		for primID := uint(0); primID < numPrimary; primID++ {
			numActRows := fn(tableID, primID, table)
			// Sanity check
			if numActRows > numRows {
				panic(fmt.Sprintf("sub-table (%d,%d) has %d active rows, but only %d allocated", tableID, primID,
					numActRows, numRows))
			}
			//
			CalcSlopes(numDep, Descriptor{tableID, primID, numActRows}, table)
		}
	}
	//
	return table.Data()
}
