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

// WaterFromPVTW creates the water PVT entries for all PVT regions.  Each
// region is a single row of columns [Pw, 1/Bw, Cw, 1/(Bw*mu_w), Cw-Cv] with no
// derivatives.  As for PVCDO, quantities in 1/pressure use ToSI(Pressure, .).
func WaterFromPVTW(u units.Converter, pvtw []deck.FlatRecord) []float64 {
	table := linear.NewTable(uint(len(pvtw)), 1, 1, 5, WaterFillValue)
	//
	for i, t := range pvtw {
		id := uint(i)
		recip := u.FromSI(units.WaterInverseFormationVolumeFactor, 1.0/t.VolumeFactor)
		//
		table.Column(id, 0, 0)[0] = u.FromSI(units.Pressure, t.ReferencePressure)
		table.Column(id, 0, 1)[0] = recip
		table.Column(id, 0, 2)[0] = u.ToSI(units.Pressure, t.Compressibility)
		table.Column(id, 0, 3)[0] = recip / u.FromSI(units.Viscosity, t.Viscosity)
		table.Column(id, 0, 4)[0] = u.ToSI(units.Pressure, t.Compressibility-t.Viscosibility)
	}
	//
	return table.Data()
}
