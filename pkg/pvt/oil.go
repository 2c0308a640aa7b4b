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

// OilFromPVDO creates the dead oil PVT entries for all PVT regions, as columns
// [Po, 1/Bo, 1/(Bo*mu_o)] plus derivatives with one row per pressure node.
func OilFromPVDO(numPressNodes uint, u units.Converter, pvdo []deck.PvdoTable) []float64 {
	return linear.BuildPropfuncTable(uint(len(pvdo)), 1, numPressNodes, 2, DryFillValue,
		func(tableID, primID uint, table *linear.Table) uint {
			t := &pvdo[tableID]
			//
			outputConverted(u, units.Pressure, t.Po, table.Column(tableID, primID, 0))
			outputReciprocals(u, units.OilInverseFormationVolumeFactor, t.Bo, t.MuO,
				table.Column(tableID, primID, 1), table.Column(tableID, primID, 2))
			//
			return t.NumRows()
		})
}

// OilFromPVTO creates the live oil PVT entries for all PVT regions.  The
// primary key is the dissolved gas/oil ratio node and each sub-table holds
// columns [Po, 1/Bo, 1/(Bo*mu_o)] plus derivatives for the undersaturated
// curve at that node.  Composition nodes beyond those of a given region have
// no active rows.
func OilFromPVTO(numCompNodes, numPressNodes uint, u units.Converter, pvto []deck.PvtoTable) []float64 {
	return linear.BuildPropfuncTable(uint(len(pvto)), numCompNodes, numPressNodes, 2, DryFillValue,
		func(tableID, primID uint, table *linear.Table) uint {
			if primID >= uint(len(pvto[tableID].Undersaturated)) {
				return 0
			}
			//
			t := &pvto[tableID].Undersaturated[primID]
			//
			outputConverted(u, units.Pressure, t.Po, table.Column(tableID, primID, 0))
			outputReciprocals(u, units.OilInverseFormationVolumeFactor, t.Bo, t.MuO,
				table.Column(tableID, primID, 1), table.Column(tableID, primID, 2))
			//
			return t.NumRows()
		})
}

// OilCompositionNodes creates the table of dissolved gas/oil ratio nodes (the
// primary keys of PVTO) for all PVT regions.
func OilCompositionNodes(numCompNodes uint, u units.Converter, pvto []deck.PvtoTable) []float64 {
	return linear.BuildPropfuncTable(uint(len(pvto)), 1, numCompNodes, 0, DryFillValue,
		func(tableID, primID uint, table *linear.Table) uint {
			t := &pvto[tableID]
			//
			outputConverted(u, units.GasOilRatio, t.Saturated.Rs, table.Column(tableID, primID, 0))
			//
			return t.NumPrimary()
		})
}

// OilFromPVCDO creates the dead oil PVT entries with constant compressibility
// for all PVT regions.  Each region has a single active row of columns [Po,
// Bo, Co, mu_o, Cv], no derivatives, padded to numPressNodes rows.
//
// Compressibility and viscosibility are measured in 1/pressure, which is not
// a measure of the unit system.  They are converted with ToSI(Pressure, .)
// instead, which is the reciprocal of the pressure conversion.
func OilFromPVCDO(numPressNodes uint, u units.Converter, pvcdo []deck.FlatRecord) []float64 {
	table := linear.NewTable(uint(len(pvcdo)), 1, numPressNodes, 5, DeadOilFillValue)
	//
	for i, t := range pvcdo {
		id := uint(i)
		table.Column(id, 0, 0)[0] = u.FromSI(units.Pressure, t.ReferencePressure)
		table.Column(id, 0, 1)[0] = u.FromSI(units.OilFormationVolumeFactor, t.VolumeFactor)
		table.Column(id, 0, 2)[0] = u.ToSI(units.Pressure, t.Compressibility)
		table.Column(id, 0, 3)[0] = u.FromSI(units.Viscosity, t.Viscosity)
		table.Column(id, 0, 4)[0] = u.ToSI(units.Pressure, t.Viscosibility)
	}
	//
	return table.Data()
}

// MaxNumCompNodesPVTO returns the largest number of Rs nodes in any PVTO
// table.
func MaxNumCompNodesPVTO(pvto []deck.PvtoTable) uint {
	return maxRows(pvto, (*deck.PvtoTable).NumPrimary)
}

// MaxNumPressNodesPVTO returns the largest number of pressure nodes on any
// undersaturated PVTO curve.
func MaxNumPressNodesPVTO(pvto []deck.PvtoTable) uint {
	return maxRows(pvto, func(t *deck.PvtoTable) uint {
		return maxRows(t.Undersaturated, (*deck.PvtoUndersaturated).NumRows)
	})
}

// MaxNumPressNodesPVDO returns the largest number of rows in any PVDO table.
func MaxNumPressNodesPVDO(pvdo []deck.PvdoTable) uint {
	return maxRows(pvdo, (*deck.PvdoTable).NumRows)
}
