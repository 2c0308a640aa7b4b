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
	"github.com/consensys/go-proptab/pkg/deck"
	"github.com/consensys/go-proptab/pkg/linear"
	"github.com/consensys/go-proptab/pkg/units"
)

// WaterFromSWFN creates the normalised SWFN entries for all saturation
// regions from SWFN input tables, as columns [Sw, Krw, Pcow] plus derivatives.
func WaterFromSWFN(numRows uint, tolcrit float64, u units.Converter, swfn []deck.SwfnTable) []float64 {
	return buildTable(uint(len(swfn)), numRows, 2, func(tableID, primID uint, table *linear.Table) uint {
		t := &swfn[tableID]
		//
		copy(table.Column(tableID, primID, 0), t.Sw)
		outputRelperm(t.Krw, tolcrit, table.Column(tableID, primID, 1))
		outputPressure(u, t.Pcow, table.Column(tableID, primID, 2))
		//
		return t.NumRows()
	})
}

// WaterFromSWOF creates the normalised SWFN entries for all saturation
// regions from SWOF input tables.  This uses columns Sw, Krw and Pcow.
func WaterFromSWOF(numRows uint, tolcrit float64, u units.Converter, swof []deck.SwofTable) []float64 {
	return buildTable(uint(len(swof)), numRows, 2, func(tableID, primID uint, table *linear.Table) uint {
		t := &swof[tableID]
		//
		copy(table.Column(tableID, primID, 0), t.Sw)
		outputRelperm(t.Krw, tolcrit, table.Column(tableID, primID, 1))
		outputPressure(u, t.Pcow, table.Column(tableID, primID, 2))
		//
		return t.NumRows()
	})
}
