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
	"fmt"

	"github.com/consensys/go-proptab/pkg/deck"
	"github.com/consensys/go-proptab/pkg/linear"
)

// ============================================================================
// Two-phase systems
// ============================================================================

// OilFromSOF2 creates the normalised two-phase SOFN entries for all
// saturation regions from SOF2 input tables, as columns [So, Kro] plus
// derivatives.
func OilFromSOF2(numRows uint, tolcrit float64, sof2 []deck.Sof2Table) []float64 {
	return buildTable(uint(len(sof2)), numRows, 1, func(tableID, primID uint, table *linear.Table) uint {
		t := &sof2[tableID]
		//
		copy(table.Column(tableID, primID, 0), t.So)
		outputRelperm(t.Kro, tolcrit, table.Column(tableID, primID, 1))
		//
		return t.NumRows()
	})
}

// OilFromSGOF creates the normalised two-phase SOFN entries of a gas/oil
// system from SGOF input tables.  Oil saturation is 1-Sg, so the rows of each
// input table are emitted in reverse to keep So increasing.
func OilFromSGOF(numRows uint, tolcrit float64, sgof []deck.SgofTable) []float64 {
	return buildTable(uint(len(sgof)), numRows, 1, func(tableID, primID uint, table *linear.Table) uint {
		t := &sgof[tableID]
		//
		outputReversedComplement(t.Sg, table.Column(tableID, primID, 0))
		outputReversedRelperm(t.Krog, tolcrit, table.Column(tableID, primID, 1))
		//
		return t.NumRows()
	})
}

// OilFromSWOF creates the normalised two-phase SOFN entries of an oil/water
// system from SWOF input tables, with So = 1-Sw in increasing order.
func OilFromSWOF(numRows uint, tolcrit float64, swof []deck.SwofTable) []float64 {
	return buildTable(uint(len(swof)), numRows, 1, func(tableID, primID uint, table *linear.Table) uint {
		t := &swof[tableID]
		//
		outputReversedComplement(t.Sw, table.Column(tableID, primID, 0))
		outputReversedRelperm(t.Krow, tolcrit, table.Column(tableID, primID, 1))
		//
		return t.NumRows()
	})
}

// ============================================================================
// Three-phase systems
// ============================================================================

// OilFromSOF3 creates the normalised three-phase SOFN entries for all
// saturation regions from SOF3 input tables, as columns [So, Krow, Krog] plus
// derivatives.
func OilFromSOF3(numRows uint, tolcrit float64, sof3 []deck.Sof3Table) []float64 {
	return buildTable(uint(len(sof3)), numRows, 2, func(tableID, primID uint, table *linear.Table) uint {
		return outputSOF3(&sof3[tableID], tolcrit, tableID, primID, table)
	})
}

// OilFromSGOFAndSWOF creates the normalised three-phase SOFN entries for all
// saturation regions by merging each SGOF table with the SWOF table of the
// same region (see MergeSOF3).  The merged table may have as many rows as
// both inputs combined, so numRows is typically twice the declared number of
// saturation nodes.
func OilFromSGOFAndSWOF(numRows uint, tolcrit float64, sgof []deck.SgofTable, swof []deck.SwofTable) []float64 {
	if len(sgof) != len(swof) {
		panic(fmt.Sprintf("mismatched number of SGOF (%d) and SWOF (%d) tables", len(sgof), len(swof)))
	}
	//
	return buildTable(uint(len(sgof)), numRows, 2, func(tableID, primID uint, table *linear.Table) uint {
		sof3 := MergeSOF3(&sgof[tableID], &swof[tableID])
		return outputSOF3(&sof3, tolcrit, tableID, primID, table)
	})
}

func outputSOF3(t *deck.Sof3Table, tolcrit float64, tableID, primID uint, table *linear.Table) uint {
	copy(table.Column(tableID, primID, 0), t.So)
	outputRelperm(t.Krow, tolcrit, table.Column(tableID, primID, 1))
	outputRelperm(t.Krog, tolcrit, table.Column(tableID, primID, 2))
	//
	return t.NumRows()
}
