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

// Descriptor identifies the active portion of one sub-table.
type Descriptor struct {
	// Table (region) index.
	TableID uint
	// Primary key index within the table.
	PrimID uint
	// Number of active (non-padding) rows.
	NumActRows uint
}

// CalcSlopes computes the derivatives of each of numDep dependent columns with
// respect to the independent column (column zero) of the sub-table identified
// by desc.  The derivative of dependent column j (column 1+j) is written to
// column 1+numDep+j.  Each active row i < n-1 gets the slope of the segment
// [x[i], x[i+1]] and the final active row reuses the slope of the last
// segment.  This matches the piecewise linear interpolant of the table.
// Padding rows are neither read nor written.  Sub-tables with fewer than two
// active rows are left untouched.
func CalcSlopes(numDep uint, desc Descriptor, table *Table) {
	n := desc.NumActRows
	//
	if numDep == 0 || n < 2 {
		return
	}
	//
	x := table.Column(desc.TableID, desc.PrimID, 0)
	//
	for j := uint(0); j < numDep; j++ {
		y := table.Column(desc.TableID, desc.PrimID, 1+j)
		dy := table.Column(desc.TableID, desc.PrimID, 1+numDep+j)
		//
		for i := uint(0); i+1 < n; i++ {
			dy[i] = (y[i+1] - y[i]) / (x[i+1] - x[i])
		}
		// Final row reuses slope of last segment
		dy[n-1] = dy[n-2]
	}
}
