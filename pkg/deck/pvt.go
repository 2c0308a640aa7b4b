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
package deck

// PvdgTable is a dry gas PVT table (PVDG): gas formation volume factor and
// viscosity as functions of pressure.
type PvdgTable struct {
	Pg  []float64 `json:"pg"`
	Bg  []float64 `json:"bg"`
	MuG []float64 `json:"mug"`
}

// NumRows returns the number of pressure nodes in this table.
func (p *PvdgTable) NumRows() uint { return uint(len(p.Pg)) }

// PvdoTable is a dead oil PVT table (PVDO).
type PvdoTable struct {
	Po  []float64 `json:"po"`
	Bo  []float64 `json:"bo"`
	MuO []float64 `json:"muo"`
}

// NumRows returns the number of pressure nodes in this table.
func (p *PvdoTable) NumRows() uint { return uint(len(p.Po)) }

// PvtgSaturated holds the saturated (dew point) curve of a wet gas table.
// Each row is a primary key, i.e. a gas pressure node.
type PvtgSaturated struct {
	Pg  []float64 `json:"pg"`
	Rv  []float64 `json:"rv"`
	Bg  []float64 `json:"bg"`
	MuG []float64 `json:"mug"`
}

// PvtgUndersaturated is the curve, at one fixed gas pressure, of formation
// volume factor and viscosity as functions of vaporised oil/gas ratio.
type PvtgUndersaturated struct {
	Rv  []float64 `json:"rv"`
	Bg  []float64 `json:"bg"`
	MuG []float64 `json:"mug"`
}

// NumRows returns the number of composition nodes of this curve.
func (p *PvtgUndersaturated) NumRows() uint { return uint(len(p.Rv)) }

// PvtgTable is a wet gas PVT table (PVTG) for one PVT region.  There is one
// undersaturated curve per saturated row.
type PvtgTable struct {
	Saturated      PvtgSaturated        `json:"saturated"`
	Undersaturated []PvtgUndersaturated `json:"undersaturated"`
}

// NumPrimary returns the number of pressure nodes (primary keys) of this table.
func (p *PvtgTable) NumPrimary() uint { return uint(len(p.Saturated.Pg)) }

// PvtoSaturated holds the saturated (bubble point) curve of a live oil table.
// Each row is a primary key, i.e. a dissolved gas/oil ratio node.
type PvtoSaturated struct {
	Rs  []float64 `json:"rs"`
	Po  []float64 `json:"po"`
	Bo  []float64 `json:"bo"`
	MuO []float64 `json:"muo"`
}

// PvtoUndersaturated is the curve, at one fixed dissolved gas/oil ratio, of
// formation volume factor and viscosity as functions of oil pressure.
type PvtoUndersaturated struct {
	Po  []float64 `json:"po"`
	Bo  []float64 `json:"bo"`
	MuO []float64 `json:"muo"`
}

// NumRows returns the number of pressure nodes of this curve.
func (p *PvtoUndersaturated) NumRows() uint { return uint(len(p.Po)) }

// PvtoTable is a live oil PVT table (PVTO) for one PVT region.  There is one
// undersaturated curve per saturated row.
type PvtoTable struct {
	Saturated      PvtoSaturated        `json:"saturated"`
	Undersaturated []PvtoUndersaturated `json:"undersaturated"`
}

// NumPrimary returns the number of composition nodes (primary keys) of this
// table.
func (p *PvtoTable) NumPrimary() uint { return uint(len(p.Saturated.Rs)) }

// FlatRecord is a single-row PVT record with constant compressibility (PVCDO
// for oil, PVTW for water).
type FlatRecord struct {
	ReferencePressure float64 `json:"pref"`
	VolumeFactor      float64 `json:"b"`
	Compressibility   float64 `json:"c"`
	Viscosity         float64 `json:"mu"`
	Viscosibility     float64 `json:"cv"`
}

// DensityRecord holds the surface densities of one PVT region.
type DensityRecord struct {
	Oil   float64 `json:"oil"`
	Water float64 `json:"water"`
	Gas   float64 `json:"gas"`
}
