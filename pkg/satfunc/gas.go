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

// GasFromSGFN creates the normalised SGFN entries for all saturation regions
// from SGFN input tables.  Each sub-table holds columns [Sg, Krg, Pcog] plus
// derivatives, with capillary pressure in declared units.
func GasFromSGFN(numRows uint, tolcrit float64, u units.Converter, sgfn []deck.SgfnTable) []float64 {
	return buildTable(uint(len(sgfn)), numRows, 2, func(tableID, primID uint, table *linear.Table) uint {
		t := &sgfn[tableID]
		//
		copy(table.Column(tableID, primID, 0), t.Sg)
		outputRelperm(t.Krg, tolcrit, table.Column(tableID, primID, 1))
		outputPressure(u, t.Pcog, table.Column(tableID, primID, 2))
		//
		return t.NumRows()
	})
}

// GasFromSGOF creates the normalised SGFN entries for all saturation regions
// from SGOF input tables.  This uses columns Sg, Krg and Pcog of each table.
func GasFromSGOF(numRows uint, tolcrit float64, u units.Converter, sgof []deck.SgofTable) []float64 {
	return buildTable(uint(len(sgof)), numRows, 2, func(tableID, primID uint, table *linear.Table) uint {
		t := &sgof[tableID]
		//
		copy(table.Column(tableID, primID, 0), t.Sg)
		outputRelperm(t.Krg, tolcrit, table.Column(tableID, primID, 1))
		outputPressure(u, t.Pcog, table.Column(tableID, primID, 2))
		//
		return t.NumRows()
	})
}

func outputPressure(u units.Converter, pc []float64, dst []float64) {
	for i, v := range pc {
		dst[i] = u.FromSI(units.Pressure, v)
	}
}
