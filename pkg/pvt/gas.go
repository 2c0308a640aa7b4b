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
package pvt

import (
	"github.com/consensys/go-proptab/pkg/deck"
	"github.com/consensys/go-proptab/pkg/linear"
	"github.com/consensys/go-proptab/pkg/units"
)

// GasFromPVDG creates the dry gas PVT entries for all PVT regions, as columns
// [Pg, 1/Bg, 1/(Bg*mu_g)] plus derivatives with one row per pressure node.
func GasFromPVDG(numPressNodes uint, u units.Converter, pvdg []deck.PvdgTable) []float64 {
	return linear.BuildPropfuncTable(uint(len(pvdg)), 1, numPressNodes, 2, DryFillValue,
		func(tableID, primID uint, table *linear.Table) uint {
			t := &pvdg[tableID]
			//
			outputConverted(u, units.Pressure, t.Pg, table.Column(tableID, primID, 0))
			outputReciprocals(u, units.GasInverseFormationVolumeFactor, t.Bg, t.MuG,
				table.Column(tableID, primID, 1), table.Column(tableID, primID, 2))
			//
			return t.NumRows()
		})
}

// GasFromPVTG creates the wet gas PVT entries for all PVT regions.  The
// primary key is the gas pressure node and each sub-table holds columns [Rv,
// 1/Bg, 1/(Bg*mu_g)] plus derivatives for the undersaturated curve at that
// node.  Pressure nodes beyond those of a given region have no active rows.
func GasFromPVTG(numCompNodes, numPressNodes uint, u units.Converter, pvtg []deck.PvtgTable) []float64 {
	return linear.BuildPropfuncTable(uint(len(pvtg)), numPressNodes, numCompNodes, 2, WetGasFillValue,
		func(tableID, primID uint, table *linear.Table) uint {
			if primID >= uint(len(pvtg[tableID].Undersaturated)) {
				return 0
			}
			//
			t := &pvtg[tableID].Undersaturated[primID]
			//
			outputConverted(u, units.OilGasRatio, t.Rv, table.Column(tableID, primID, 0))
			outputReciprocals(u, units.GasInverseFormationVolumeFactor, t.Bg, t.MuG,
				table.Column(tableID, primID, 1), table.Column(tableID, primID, 2))
			//
			return t.NumRows()
		})
}

// GasPressureNodes creates the table of gas pressure nodes (the primary keys
// of PVTG) for all PVT regions.  It has a single column and no derivatives.
func GasPressureNodes(numPressNodes uint, u units.Converter, pvtg []deck.PvtgTable) []float64 {
	return linear.BuildPropfuncTable(uint(len(pvtg)), 1, numPressNodes, 0, DryFillValue,
		func(tableID, primID uint, table *linear.Table) uint {
			t := &pvtg[tableID]
			//
			outputConverted(u, units.Pressure, t.Saturated.Pg, table.Column(tableID, primID, 0))
			//
			return t.NumPrimary()
		})
}

// MaxNumCompNodesPVTG returns the largest number of Rv nodes on any
// undersaturated PVTG curve.
func MaxNumCompNodesPVTG(pvtg []deck.PvtgTable) uint {
	return maxRows(pvtg, func(t *deck.PvtgTable) uint {
		return maxRows(t.Undersaturated, (*deck.PvtgUndersaturated).NumRows)
	})
}

// MaxNumPressNodesPVTG returns the largest number of pressure nodes in any
// PVTG table.
func MaxNumPressNodesPVTG(pvtg []deck.PvtgTable) uint {
	return maxRows(pvtg, (*deck.PvtgTable).NumPrimary)
}

// MaxNumPressNodesPVDG returns the largest number of rows in any PVDG table.
func MaxNumPressNodesPVDG(pvdg []deck.PvdgTable) uint {
	return maxRows(pvdg, (*deck.PvdgTable).NumRows)
}
