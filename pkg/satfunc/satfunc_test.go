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
	"testing"

	"github.com/consensys/go-proptab/pkg/deck"
	"github.com/consensys/go-proptab/pkg/units"
	"github.com/consensys/go-proptab/pkg/util/assert"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

const tolcrit = 1.0e-6

// Saturations are dyadic so that complements and offsets are exact.
var swofTable = deck.SwofTable{
	Sw:   []float64{0.25, 0.5, 0.625, 0.75},
	Krw:  []float64{0.0, 0.125, 0.25, 0.5},
	Krow: []float64{0.75, 0.25, 0.125, 0.0},
	Pcow: []float64{4.0e5, 2.0e5, 1.0e5, 0.0},
}

var sgofTable = deck.SgofTable{
	Sg:   []float64{0.0, 0.125, 0.1875, 0.3125, 0.75},
	Krg:  []float64{0.0, 0.0625, 0.125, 0.25, 1.0},
	Krog: []float64{1.0, 0.5, 0.25, 0.125, 0.0},
	Pcog: []float64{0.0, 0.5e5, 1.0e5, 1.5e5, 3.0e5},
}

func Test_Relperm_01(t *testing.T) {
	kr := []float64{0.0, 5.0e-7, 1.0e-6, 2.0e-6, 0.5}
	dst := make([]float64, len(kr))
	//
	outputRelperm(kr, tolcrit, dst)
	// Values at or below the threshold become zero, rows are retained.
	assert.AllNear(t, []float64{0, 0, 0, 2.0e-6, 0.5}, dst, 0)
}

func Test_Relperm_02(t *testing.T) {
	kr := []float64{0.5, 2.0e-6, 1.0e-7}
	dst := make([]float64, len(kr))
	//
	outputReversedRelperm(kr, tolcrit, dst)
	assert.AllNear(t, []float64{0, 2.0e-6, 0.5}, dst, 0)
}

func Test_Water_01(t *testing.T) {
	// Five row O/W system in a ten row table
	swof := []deck.SwofTable{{
		Sw:   []float64{0.2, 0.4, 0.6, 0.8, 1.0},
		Krw:  []float64{0.0, 0.1, 0.3, 0.6, 1.0},
		Krow: []float64{1.0, 0.5, 0.2, 0.05, 0.0},
		Pcow: []float64{2.0e5, 1.0e5, 0.5e5, 0.25e5, 0.0},
	}}
	tab := WaterFromSWOF(10, tolcrit, units.NewMetric(), swof)
	//
	assert.Equal(t, 10*5, len(tab))
	check_Column(t, tab, 10, 0, []float64{0.2, 0.4, 0.6, 0.8, 1.0})
	check_Column(t, tab, 10, 1, []float64{0.0, 0.1, 0.3, 0.6, 1.0})
	check_Column(t, tab, 10, 2, []float64{2.0, 1.0, 0.5, 0.25, 0.0})
	// Derivatives, last row repeats the final segment
	check_Column(t, tab, 10, 3, []float64{0.5, 1.0, 1.5, 2.0, 2.0})
	check_Column(t, tab, 10, 4, []float64{-5.0, -2.5, -1.25, -1.25, -1.25})
	// Padding
	for c := 0; c < 5; c++ {
		for r := 5; r < 10; r++ {
			assert.Equal(t, FillValue, tab[c*10+r])
		}
	}
}

func Test_Water_02(t *testing.T) {
	// Family I and Family II yield identical SWFN tables
	swfn := []deck.SwfnTable{{Sw: swofTable.Sw, Krw: swofTable.Krw, Pcow: swofTable.Pcow}}
	//
	fam1 := WaterFromSWOF(6, tolcrit, units.NewField(), []deck.SwofTable{swofTable})
	fam2 := WaterFromSWFN(6, tolcrit, units.NewField(), swfn)
	//
	if diff := cmp.Diff(fam2, fam1); diff != "" {
		t.Errorf("SWFN mismatch (-swfn +swof):\n%s", diff)
	}
}

func Test_Gas_01(t *testing.T) {
	tab := GasFromSGOF(5, tolcrit, units.NewMetric(), []deck.SgofTable{sgofTable})
	//
	assert.Equal(t, 5*5, len(tab))
	check_Column(t, tab, 5, 0, sgofTable.Sg)
	check_Column(t, tab, 5, 1, sgofTable.Krg)
	check_Column(t, tab, 5, 2, []float64{0.0, 0.5, 1.0, 1.5, 3.0})
}

func Test_Gas_02(t *testing.T) {
	sgfn := []deck.SgfnTable{{Sg: sgofTable.Sg, Krg: sgofTable.Krg, Pcog: sgofTable.Pcog}}
	//
	fam1 := GasFromSGOF(8, tolcrit, units.NewLab(), []deck.SgofTable{sgofTable, sgofTable})
	fam2 := GasFromSGFN(8, tolcrit, units.NewLab(), append(sgfn, sgfn...))
	//
	assert.Equal(t, 2*8*5, len(fam1))
	//
	if diff := cmp.Diff(fam2, fam1); diff != "" {
		t.Errorf("SGFN mismatch (-sgfn +sgof):\n%s", diff)
	}
}

func Test_Oil_01(t *testing.T) {
	// O/W system, So = 1-Sw reversed
	tab := OilFromSWOF(4, tolcrit, []deck.SwofTable{swofTable})
	//
	assert.Equal(t, 4*3, len(tab))
	check_Column(t, tab, 4, 0, []float64{0.25, 0.375, 0.5, 0.75})
	check_Column(t, tab, 4, 1, []float64{0.0, 0.125, 0.25, 0.75})
	check_Column(t, tab, 4, 2, []float64{1.0, 1.0, 2.0, 2.0})
}

func Test_Oil_02(t *testing.T) {
	// G/O system, equivalent SOF2
	sof2 := []deck.Sof2Table{{
		So:  []float64{0.25, 0.6875, 0.8125, 0.875, 1.0},
		Kro: []float64{0.0, 0.125, 0.25, 0.5, 1.0},
	}}
	//
	fam1 := OilFromSGOF(7, tolcrit, []deck.SgofTable{sgofTable})
	fam2 := OilFromSOF2(7, tolcrit, sof2)
	//
	if diff := cmp.Diff(fam2, fam1); diff != "" {
		t.Errorf("SOFN mismatch (-sof2 +sgof):\n%s", diff)
	}
}

func Test_Oil_03(t *testing.T) {
	// Three-phase, Family I against the equivalent merged SOF3
	sof3 := MergeSOF3(&sgofTable, &swofTable)
	//
	fam1 := OilFromSGOFAndSWOF(18, tolcrit, []deck.SgofTable{sgofTable}, []deck.SwofTable{swofTable})
	fam2 := OilFromSOF3(18, tolcrit, []deck.Sof3Table{sof3})
	//
	assert.Equal(t, 18*5, len(fam1))
	//
	if diff := cmp.Diff(fam2, fam1); diff != "" {
		t.Errorf("SOFN mismatch (-sof3 +sgof/swof):\n%s", diff)
	}
}

func Test_Oil_04(t *testing.T) {
	// All immobile
	sof2 := []deck.Sof2Table{{So: []float64{0.0, 0.5, 1.0}, Kro: []float64{0.0, 1.0e-7, 1.0e-6}}}
	tab := OilFromSOF2(3, tolcrit, sof2)
	//
	check_Column(t, tab, 3, 1, []float64{0, 0, 0})
	check_Column(t, tab, 3, 2, []float64{0, 0, 0})
}

func Test_Oil_05(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected panic for overlong table")
		}
	}()
	//
	OilFromSWOF(3, tolcrit, []deck.SwofTable{swofTable})
}

func Test_Merge_01(t *testing.T) {
	// Four SWOF and five SGOF nodes with one shared oil saturation
	sof3 := MergeSOF3(&sgofTable, &swofTable)
	//
	assert.Equal(t, uint(8), sof3.NumRows())
	//
	expected := deck.Sof3Table{
		So:   []float64{0.0, 0.25, 0.375, 0.4375, 0.5, 0.5625, 0.625, 0.75},
		Krow: []float64{0.0, 0.0, 0.125, 0.1875, 0.25, 0.375, 0.5, 0.75},
		Krog: []float64{0.0, 0.125 * 4 / 7, 0.125 * 6 / 7, 0.125, 0.1875, 0.25, 0.5, 1.0},
	}
	//
	if diff := cmp.Diff(expected, sof3, cmpopts.EquateApprox(0, 1e-12)); diff != "" {
		t.Errorf("merged SOF3 mismatch (-want +got):\n%s", diff)
	}
}

func Test_Merge_02(t *testing.T) {
	// Owned nodes are exact, not interpolated
	sof3 := MergeSOF3(&sgofTable, &swofTable)
	//
	for i, so := range sof3.So {
		if j := indexOf(1.0-swofTable.Sw[0]-sgofTable.Sg[0]-so, sgofTable.Sg); j >= 0 {
			assert.Equal(t, sgofTable.Krog[j], sof3.Krog[i], "row %d", i)
		}

		if j := indexOf(1.0-so, swofTable.Sw); j >= 0 {
			assert.Equal(t, swofTable.Krow[j], sof3.Krow[i], "row %d", i)
		}
	}
}

func Test_Merge_03(t *testing.T) {
	// Merged oil saturations are strictly increasing
	sof3 := MergeSOF3(&sgofTable, &swofTable)
	//
	for i := 1; i < len(sof3.So); i++ {
		assert.True(t, sof3.So[i-1] < sof3.So[i], "row %d", i)
	}
}

func Test_Merge_04(t *testing.T) {
	// Identical node sets collapse completely
	swof := deck.SwofTable{Sw: []float64{0.0, 0.5, 1.0}, Krow: []float64{1.0, 0.25, 0.0}}
	sgof := deck.SgofTable{Sg: []float64{0.0, 0.5, 1.0}, Krog: []float64{1.0, 0.5, 0.0}}
	sof3 := MergeSOF3(&sgof, &swof)
	//
	assert.AllNear(t, []float64{0.0, 0.5, 1.0}, sof3.So, 0)
	assert.AllNear(t, []float64{0.0, 0.25, 1.0}, sof3.Krow, 0)
	assert.AllNear(t, []float64{0.0, 0.5, 1.0}, sof3.Krog, 0)
}

func Test_KroFunction_01(t *testing.T) {
	f := NewDerivedKroFunction([]float64{0.0, 0.5, 1.0}, []float64{1.0, 0.25, 0.0}, 1.0)
	//
	assert.Equal(t, uint(3), f.Size())
	assert.Near(t, 0.5, f.So(1), 0)
	assert.Near(t, 0.25, f.Kro(1), 0)
	// Interpolation and flat extrapolation
	assert.Near(t, 0.625, f.KroAt(0.75), 1e-15)
	assert.Near(t, 0.125, f.KroAt(0.25), 1e-15)
	assert.Near(t, 1.0, f.KroAt(1.5), 0)
	assert.Near(t, 0.0, f.KroAt(-0.5), 0)
	// Nodes are reproduced exactly
	assert.Near(t, 0.25, f.KroAt(0.5), 0)
}

// ===================================================================
// Test Helpers
// ===================================================================

// check_Column checks the leading active rows of a column of a single table
// (one region, one primary key).
func check_Column(t *testing.T, tab []float64, numRows int, col int, expected []float64) {
	t.Helper()
	//
	actual := tab[col*numRows : col*numRows+len(expected)]
	assert.AllNear(t, expected, actual, 1e-12, "column %d", col)
}

func indexOf(x float64, xs []float64) int {
	for i, v := range xs {
		if v == x {
			return i
		}
	}

	return -1
}
