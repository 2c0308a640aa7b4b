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

// SgofTable is a Family One gas/oil saturation function table (SGOF).
type SgofTable struct {
	Sg   []float64 `json:"sg"`
	Krg  []float64 `json:"krg"`
	Krog []float64 `json:"krog"`
	Pcog []float64 `json:"pcog"`
}

// NumRows returns the number of saturation nodes in this table.
func (p *SgofTable) NumRows() uint { return uint(len(p.Sg)) }

// SwofTable is a Family One oil/water saturation function table (SWOF).
type SwofTable struct {
	Sw   []float64 `json:"sw"`
	Krw  []float64 `json:"krw"`
	Krow []float64 `json:"krow"`
	Pcow []float64 `json:"pcow"`
}

// NumRows returns the number of saturation nodes in this table.
func (p *SwofTable) NumRows() uint { return uint(len(p.Sw)) }

// SgfnTable is a Family Two gas saturation function table (SGFN).
type SgfnTable struct {
	Sg   []float64 `json:"sg"`
	Krg  []float64 `json:"krg"`
	Pcog []float64 `json:"pcog"`
}

// NumRows returns the number of saturation nodes in this table.
func (p *SgfnTable) NumRows() uint { return uint(len(p.Sg)) }

// SwfnTable is a Family Two water saturation function table (SWFN).
type SwfnTable struct {
	Sw   []float64 `json:"sw"`
	Krw  []float64 `json:"krw"`
	Pcow []float64 `json:"pcow"`
}

// NumRows returns the number of saturation nodes in this table.
func (p *SwfnTable) NumRows() uint { return uint(len(p.Sw)) }

// Sof2Table is a Family Two two-phase oil saturation function table (SOF2).
type Sof2Table struct {
	So  []float64 `json:"so"`
	Kro []float64 `json:"kro"`
}

// NumRows returns the number of saturation nodes in this table.
func (p *Sof2Table) NumRows() uint { return uint(len(p.So)) }

// Sof3Table is a Family Two three-phase oil saturation function table (SOF3).
type Sof3Table struct {
	So   []float64 `json:"so"`
	Krow []float64 `json:"krow"`
	Krog []float64 `json:"krog"`
}

// NumRows returns the number of saturation nodes in this table.
func (p *Sof3Table) NumRows() uint { return uint(len(p.So)) }
