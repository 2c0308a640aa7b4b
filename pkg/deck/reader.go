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

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/consensys/go-proptab/pkg/units"
)

// rawDeck mirrors the JSON deck notation.  Values are given in the declared
// unit system of the deck.
type rawDeck struct {
	Name    string    `json:"name"`
	Units   string    `json:"units"`
	Phases  Phases    `json:"phases"`
	Tabdims Tabdims   `json:"tabdims"`
	Tolcrit *float64  `json:"tolcrit"`
	Tables  rawTables `json:"tables"`
}

type rawTables struct {
	Sgof    []SgofTable     `json:"SGOF"`
	Swof    []SwofTable     `json:"SWOF"`
	Sgfn    []SgfnTable     `json:"SGFN"`
	Swfn    []SwfnTable     `json:"SWFN"`
	Sof2    []Sof2Table     `json:"SOF2"`
	Sof3    []Sof3Table     `json:"SOF3"`
	Pvdg    []PvdgTable     `json:"PVDG"`
	Pvdo    []PvdoTable     `json:"PVDO"`
	Pvtg    []PvtgTable     `json:"PVTG"`
	Pvto    []PvtoTable     `json:"PVTO"`
	Pvcdo   []FlatRecord    `json:"PVCDO"`
	Pvtw    []FlatRecord    `json:"PVTW"`
	Density []DensityRecord `json:"DENSITY"`
}

// FromBytes parses a deck expressed in JSON notation.  For example:
//
//	{"units": "METRIC", "phases": {"oil": true, "water": true},
//	 "tables": {"SWOF": [{"sw": [...], "krw": [...], "krow": [...], "pcow": [...]}]}}
//
// Table values are converted from the declared unit system into SI, omitted
// dimensions are defaulted and every table is checked for consistent column
// lengths and a strictly increasing independent variate.
func FromBytes(data []byte) (*Deck, error) {
	var raw rawDeck
	//
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	//
	if err := decoder.Decode(&raw); err != nil {
		return nil, fmt.Errorf("malformed deck: %w", err)
	}
	//
	sys, err := units.ByName(raw.Units)
	if err != nil {
		return nil, err
	}
	//
	deck := &Deck{Name: raw.Name}
	deck.Runspec = Runspec{
		Phases:  raw.Phases,
		Tabdims: defaultTabdims(raw.Tabdims),
		Tolcrit: DefaultTolcrit,
		Units:   sys.Name(),
	}
	//
	if raw.Tolcrit != nil {
		deck.Runspec.Tolcrit = *raw.Tolcrit
	}
	//
	if err := validate(&raw.Tables, deck.Runspec.Tabdims); err != nil {
		return nil, err
	}
	//
	deck.Tables = toSI(sys, raw.Tables)

	return deck, nil
}

func defaultTabdims(t Tabdims) Tabdims {
	def := DefaultTabdims()
	//
	if t.NumSatTables == 0 {
		t.NumSatTables = def.NumSatTables
	}

	if t.NumPvtTables == 0 {
		t.NumPvtTables = def.NumPvtTables
	}

	if t.NumSatNodes == 0 {
		t.NumSatNodes = def.NumSatNodes
	}

	if t.NumPressureNodes == 0 {
		t.NumPressureNodes = def.NumPressureNodes
	}

	if t.NumFipRegions == 0 {
		t.NumFipRegions = def.NumFipRegions
	}

	if t.NumRsNodes == 0 {
		t.NumRsNodes = def.NumRsNodes
	}

	return t
}

// ============================================================================
// Validation
// ============================================================================

func validate(t *rawTables, tabd Tabdims) error {
	var errs []error
	//
	for i, r := range t.Sgof {
		errs = append(errs, checkTable("SGOF", i, r.Sg, r.Krg, r.Krog, r.Pcog))
		errs = append(errs, checkSatNodes("SGOF", i, len(r.Sg), tabd.NumSatNodes))
	}

	for i, r := range t.Swof {
		errs = append(errs, checkTable("SWOF", i, r.Sw, r.Krw, r.Krow, r.Pcow))
		errs = append(errs, checkSatNodes("SWOF", i, len(r.Sw), tabd.NumSatNodes))
	}

	for i, r := range t.Sgfn {
		errs = append(errs, checkTable("SGFN", i, r.Sg, r.Krg, r.Pcog))
		errs = append(errs, checkSatNodes("SGFN", i, len(r.Sg), tabd.NumSatNodes))
	}

	for i, r := range t.Swfn {
		errs = append(errs, checkTable("SWFN", i, r.Sw, r.Krw, r.Pcow))
		errs = append(errs, checkSatNodes("SWFN", i, len(r.Sw), tabd.NumSatNodes))
	}

	for i, r := range t.Sof2 {
		errs = append(errs, checkTable("SOF2", i, r.So, r.Kro))
		errs = append(errs, checkSatNodes("SOF2", i, len(r.So), tabd.NumSatNodes))
	}

	for i, r := range t.Sof3 {
		errs = append(errs, checkTable("SOF3", i, r.So, r.Krow, r.Krog))
		errs = append(errs, checkSatNodes("SOF3", i, len(r.So), tabd.NumSatNodes))
	}

	for i, r := range t.Pvdg {
		errs = append(errs, checkTable("PVDG", i, r.Pg, r.Bg, r.MuG))
	}

	for i, r := range t.Pvdo {
		errs = append(errs, checkTable("PVDO", i, r.Po, r.Bo, r.MuO))
	}

	for i, r := range t.Pvtg {
		s := r.Saturated
		errs = append(errs, checkTable("PVTG", i, s.Pg, s.Rv, s.Bg, s.MuG))
		errs = append(errs, checkCurves("PVTG", i, len(s.Pg), len(r.Undersaturated)))
		//
		for _, u := range r.Undersaturated {
			errs = append(errs, checkTable("PVTG", i, u.Rv, u.Bg, u.MuG))
		}
	}

	for i, r := range t.Pvto {
		s := r.Saturated
		errs = append(errs, checkTable("PVTO", i, s.Rs, s.Po, s.Bo, s.MuO))
		errs = append(errs, checkCurves("PVTO", i, len(s.Rs), len(r.Undersaturated)))
		//
		for _, u := range r.Undersaturated {
			errs = append(errs, checkTable("PVTO", i, u.Po, u.Bo, u.MuO))
		}
	}
	// Return first error (if any)
	for _, err := range errs {
		if err != nil {
			return err
		}
	}

	return nil
}

// checkTable ensures the independent column of a table (the first) is
// non-empty and strictly increasing, and that all other columns match its
// length.
func checkTable(keyword string, region int, indep []float64, deps ...[]float64) error {
	if len(indep) == 0 {
		return fmt.Errorf("%s table %d is empty", keyword, region+1)
	}
	//
	for i, col := range deps {
		if len(col) != len(indep) {
			return fmt.Errorf("%s table %d: column %d has %d rows (expected %d)", keyword, region+1, i+2,
				len(col), len(indep))
		}
	}
	//
	for i := 1; i < len(indep); i++ {
		if indep[i] <= indep[i-1] {
			return fmt.Errorf("%s table %d: independent variate not increasing at row %d", keyword, region+1, i+1)
		}
	}
	//
	return nil
}

// checkSatNodes ensures a saturation function table fits within the declared
// number of saturation nodes (NSSFUN).
func checkSatNodes(keyword string, region int, nrows int, nssfun uint) error {
	if uint(nrows) > nssfun {
		return fmt.Errorf("%s table %d has %d rows, exceeding NSSFUN (%d)", keyword, region+1, nrows, nssfun)
	}

	return nil
}

func checkCurves(keyword string, region int, nkeys int, ncurves int) error {
	if nkeys != ncurves {
		return fmt.Errorf("%s table %d: %d primary keys but %d undersaturated curves", keyword, region+1, nkeys,
			ncurves)
	}

	return nil
}

// ============================================================================
// Unit conversion
// ============================================================================

func toSI(sys *units.System, t rawTables) TableManager {
	convert := func(m units.Measure, data []float64) []float64 {
		out := make([]float64, len(data))
		copy(out, data)
		sys.ToSIAll(m, out)

		return out
	}
	// Conversion of compressibility-like quantities (1/pressure).
	reciprocal := func(v float64) float64 {
		return sys.FromSI(units.Pressure, v)
	}
	//
	var tm TableManager
	//
	for _, r := range t.Sgof {
		tm.Sgof = append(tm.Sgof, SgofTable{r.Sg, r.Krg, r.Krog, convert(units.Pressure, r.Pcog)})
	}

	for _, r := range t.Swof {
		tm.Swof = append(tm.Swof, SwofTable{r.Sw, r.Krw, r.Krow, convert(units.Pressure, r.Pcow)})
	}

	for _, r := range t.Sgfn {
		tm.Sgfn = append(tm.Sgfn, SgfnTable{r.Sg, r.Krg, convert(units.Pressure, r.Pcog)})
	}

	for _, r := range t.Swfn {
		tm.Swfn = append(tm.Swfn, SwfnTable{r.Sw, r.Krw, convert(units.Pressure, r.Pcow)})
	}

	tm.Sof2 = t.Sof2
	tm.Sof3 = t.Sof3

	for _, r := range t.Pvdg {
		tm.Pvdg = append(tm.Pvdg, PvdgTable{
			convert(units.Pressure, r.Pg),
			convert(units.GasFormationVolumeFactor, r.Bg),
			convert(units.Viscosity, r.MuG),
		})
	}

	for _, r := range t.Pvdo {
		tm.Pvdo = append(tm.Pvdo, PvdoTable{
			convert(units.Pressure, r.Po),
			convert(units.OilFormationVolumeFactor, r.Bo),
			convert(units.Viscosity, r.MuO),
		})
	}

	for _, r := range t.Pvtg {
		var table PvtgTable
		//
		table.Saturated = PvtgSaturated{
			convert(units.Pressure, r.Saturated.Pg),
			convert(units.OilGasRatio, r.Saturated.Rv),
			convert(units.GasFormationVolumeFactor, r.Saturated.Bg),
			convert(units.Viscosity, r.Saturated.MuG),
		}
		//
		for _, u := range r.Undersaturated {
			table.Undersaturated = append(table.Undersaturated, PvtgUndersaturated{
				convert(units.OilGasRatio, u.Rv),
				convert(units.GasFormationVolumeFactor, u.Bg),
				convert(units.Viscosity, u.MuG),
			})
		}
		//
		tm.Pvtg = append(tm.Pvtg, table)
	}

	for _, r := range t.Pvto {
		var table PvtoTable
		//
		table.Saturated = PvtoSaturated{
			convert(units.GasOilRatio, r.Saturated.Rs),
			convert(units.Pressure, r.Saturated.Po),
			convert(units.OilFormationVolumeFactor, r.Saturated.Bo),
			convert(units.Viscosity, r.Saturated.MuO),
		}
		//
		for _, u := range r.Undersaturated {
			table.Undersaturated = append(table.Undersaturated, PvtoUndersaturated{
				convert(units.Pressure, u.Po),
				convert(units.OilFormationVolumeFactor, u.Bo),
				convert(units.Viscosity, u.MuO),
			})
		}
		//
		tm.Pvto = append(tm.Pvto, table)
	}

	for _, r := range t.Pvcdo {
		tm.Pvcdo = append(tm.Pvcdo, FlatRecord{
			ReferencePressure: sys.ToSI(units.Pressure, r.ReferencePressure),
			VolumeFactor:      sys.ToSI(units.OilFormationVolumeFactor, r.VolumeFactor),
			Compressibility:   reciprocal(r.Compressibility),
			Viscosity:         sys.ToSI(units.Viscosity, r.Viscosity),
			Viscosibility:     reciprocal(r.Viscosibility),
		})
	}

	for _, r := range t.Pvtw {
		tm.Pvtw = append(tm.Pvtw, FlatRecord{
			ReferencePressure: sys.ToSI(units.Pressure, r.ReferencePressure),
			VolumeFactor:      sys.ToSI(units.WaterFormationVolumeFactor, r.VolumeFactor),
			Compressibility:   reciprocal(r.Compressibility),
			Viscosity:         sys.ToSI(units.Viscosity, r.Viscosity),
			Viscosibility:     reciprocal(r.Viscosibility),
		})
	}

	for _, r := range t.Density {
		tm.Density = append(tm.Density, DensityRecord{
			Oil:   sys.ToSI(units.Density, r.Oil),
			Water: sys.ToSI(units.Density, r.Water),
			Gas:   sys.ToSI(units.Density, r.Gas),
		})
	}
	//
	return tm
}
