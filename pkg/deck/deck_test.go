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
	"errors"
	"testing"

	"github.com/consensys/go-proptab/pkg/util/assert"
	"github.com/google/go-cmp/cmp"
)

const owDeck = `{
	"name": "OW",
	"units": "METRIC",
	"phases": {"oil": true, "water": true},
	"tabdims": {"nssfun": 5},
	"tables": {
		"SWOF": [{
			"sw":   [0.2, 0.4, 0.6, 0.8, 1.0],
			"krw":  [0.0, 0.1, 0.3, 0.6, 1.0],
			"krow": [1.0, 0.5, 0.2, 0.05, 0.0],
			"pcow": [2.0, 1.0, 0.5, 0.25, 0.0]
		}],
		"PVTW": [{"pref": 200, "b": 1.02, "c": 4.5e-5, "mu": 0.5, "cv": 0}],
		"DENSITY": [{"oil": 850, "water": 1030, "gas": 1.0}]
	}
}`

func Test_Deck_01(t *testing.T) {
	d := check_FromBytes(t, owDeck)
	//
	assert.Equal(t, "OW", d.Name)
	assert.Equal(t, "METRIC", d.Runspec.Units)
	assert.True(t, d.Runspec.Phases.Oil && d.Runspec.Phases.Water)
	assert.False(t, d.Runspec.Phases.Gas)
	assert.False(t, d.Runspec.Phases.ThreePhase())
	// Explicit and defaulted dimensions
	assert.Equal(t, uint(5), d.Runspec.Tabdims.NumSatNodes)
	assert.Equal(t, uint(DefaultNumPressureNodes), d.Runspec.Tabdims.NumPressureNodes)
	assert.Equal(t, uint(DefaultNumSatTables), d.Runspec.Tabdims.NumSatTables)
	assert.Near(t, DefaultTolcrit, d.Runspec.Tolcrit, 0)
}

func Test_Deck_02(t *testing.T) {
	d := check_FromBytes(t, owDeck)
	swof := d.Tables.Swof[0]
	// Saturations are dimensionless, capillary pressure in bar.
	assert.Equal(t, uint(5), swof.NumRows())
	assert.AllNear(t, []float64{0.2, 0.4, 0.6, 0.8, 1.0}, swof.Sw, 0)
	assert.AllNear(t, []float64{2.0e5, 1.0e5, 0.5e5, 0.25e5, 0}, swof.Pcow, 1e-12)
	//
	pvtw := d.Tables.Pvtw[0]
	assert.Near(t, 200.0e5, pvtw.ReferencePressure, 1e-12)
	assert.Near(t, 1.02, pvtw.VolumeFactor, 1e-12)
	assert.Near(t, 4.5e-10, pvtw.Compressibility, 1e-12)
	assert.Near(t, 0.5e-3, pvtw.Viscosity, 1e-12)
}

func Test_Deck_03(t *testing.T) {
	d := check_FromBytes(t, owDeck)
	//
	if diff := cmp.Diff([]string{"DENSITY", "PVTW", "SWOF"}, d.Tables.Keywords()); diff != "" {
		t.Errorf("unexpected keywords (-want +got):\n%s", diff)
	}
	//
	assert.True(t, d.Tables.HasTables("swof"))
	assert.False(t, d.Tables.HasTables("SGOF"))
	//
	n, err := d.Tables.Count("DENSITY")
	assert.True(t, err == nil)
	assert.Equal(t, uint(1), n)
	//
	_, err = d.Tables.Count("EQUALS")
	assert.True(t, errors.Is(err, ErrUnknownKeyword))
}

func Test_Deck_04(t *testing.T) {
	// Field units
	d := check_FromBytes(t, `{
		"units": "FIELD",
		"phases": {"oil": true, "gas": true},
		"tolcrit": 0.01,
		"tables": {
			"PVDG": [{"pg": [14.7, 500], "bg": [200, 5], "mug": [0.01, 0.02]}],
			"DENSITY": [{"oil": 53.0, "water": 64.0, "gas": 0.05}]
		}
	}`)
	//
	assert.Equal(t, "FIELD", d.Runspec.Units)
	assert.Near(t, 0.01, d.Runspec.Tolcrit, 0)
	//
	pvdg := d.Tables.Pvdg[0]
	assert.Near(t, 14.7*6894.757293168361, pvdg.Pg[0], 1e-9)
	// rb/Mscf into rm3/sm3
	assert.Near(t, 200*0.158987294928/28.316846592, pvdg.Bg[0], 1e-9)
	assert.Near(t, 0.01e-3, pvdg.MuG[0], 1e-12)
	// lb/ft3 into kg/m3
	assert.Near(t, 53.0*16.01846337396014, d.Tables.Density[0].Oil, 1e-9)
}

func Test_Deck_05(t *testing.T) {
	d := check_FromBytes(t, `{
		"phases": {"oil": true, "gas": true},
		"tables": {
			"PVTO": [{
				"saturated": {"rs": [10, 50], "po": [50, 150], "bo": [1.1, 1.2], "muo": [2.0, 1.5]},
				"undersaturated": [
					{"po": [50, 100, 200], "bo": [1.1, 1.09, 1.08], "muo": [2.0, 2.1, 2.2]},
					{"po": [150, 250], "bo": [1.2, 1.19], "muo": [1.5, 1.6]}
				]
			}]
		}
	}`)
	//
	pvto := d.Tables.Pvto[0]
	assert.Equal(t, uint(2), pvto.NumPrimary())
	assert.Equal(t, uint(3), pvto.Undersaturated[0].NumRows())
	assert.AllNear(t, []float64{10, 50}, pvto.Saturated.Rs, 1e-12)
	assert.AllNear(t, []float64{150e5, 250e5}, pvto.Undersaturated[1].Po, 1e-12)
}

func Test_Deck_Invalid_01(t *testing.T) {
	// Column length mismatch
	check_Invalid(t, `{"tables": {"SWFN": [{"sw": [0.1, 0.2], "krw": [0.0], "pcow": [0, 0]}]}}`)
}

func Test_Deck_Invalid_02(t *testing.T) {
	// Independent variate not increasing
	check_Invalid(t, `{"tables": {"SOF2": [{"so": [0.5, 0.5], "kro": [0.0, 1.0]}]}}`)
}

func Test_Deck_Invalid_03(t *testing.T) {
	// Empty table
	check_Invalid(t, `{"tables": {"PVDO": [{"po": [], "bo": [], "muo": []}]}}`)
}

func Test_Deck_Invalid_04(t *testing.T) {
	// Unknown keyword
	check_Invalid(t, `{"tables": {"EQUALS": []}}`)
}

func Test_Deck_Invalid_05(t *testing.T) {
	// Unknown unit system
	check_Invalid(t, `{"units": "IMPERIAL"}`)
}

func Test_Deck_Invalid_06(t *testing.T) {
	// Saturated keys without matching undersaturated curves
	check_Invalid(t, `{"tables": {"PVTG": [{
		"saturated": {"pg": [10, 20], "rv": [0, 0], "bg": [0.1, 0.05], "mug": [0.01, 0.02]},
		"undersaturated": [{"rv": [0], "bg": [0.1], "mug": [0.01]}]
	}]}}`)
}

func Test_Deck_Invalid_07(t *testing.T) {
	// More saturation nodes than NSSFUN allows
	check_Invalid(t, `{"tabdims": {"nssfun": 2}, "tables": {"SGFN": [{
		"sg": [0.0, 0.5, 1.0], "krg": [0.0, 0.5, 1.0], "pcog": [0.0, 0.0, 0.0]
	}]}}`)
}

// ===================================================================
// Test Helpers
// ===================================================================

func check_FromBytes(t *testing.T, input string) *Deck {
	t.Helper()
	//
	d, err := FromBytes([]byte(input))
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	//
	return d
}

func check_Invalid(t *testing.T, input string) {
	t.Helper()
	//
	if _, err := FromBytes([]byte(input)); err == nil {
		t.Errorf("expected error for deck %s", input)
	}
}
