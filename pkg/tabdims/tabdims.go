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
package tabdims

// Positions within the TABDIMS vector.  Start positions are one-based offsets
// into the TAB vector, counts describe the shape of the corresponding block.
const (
	// TabSize is the total number of elements in the TAB vector.
	TabSize = 0

	PvtoMainStart     = 6
	PvtoCompStart     = 7
	NumPvtoPressNodes = 8
	NumPvtoCompNodes  = 9
	NumPvtoTables     = 10

	PvtwStart     = 11
	NumPvtwTables = 12

	PvtgMainStart     = 13
	PvtgPressStart    = 14
	NumPvtgCompNodes  = 15
	NumPvtgPressNodes = 16
	NumPvtgTables     = 17

	DensityTableStart = 18
	DensityNumTables  = 19

	SwfnTableStart  = 20
	SwfnNumSatNodes = 21
	SwfnNumTables   = 22

	SgfnTableStart  = 23
	SgfnNumSatNodes = 24
	SgfnNumTables   = 25

	SofnTableStart  = 26
	SofnNumSatNodes = 28
	SofnNumTables   = 29

	// NumElems is the length of the TABDIMS vector.
	NumElems = 100
	// NumDefaulted is the number of leading TABDIMS entries initialised to one.
	NumDefaulted = 59
)

// New returns a fresh TABDIMS vector with its conventional initial values.
func New() []int32 {
	v := make([]int32, NumElems)
	//
	for i := 0; i < NumDefaulted; i++ {
		v[i] = 1
	}

	return v
}

// Name returns a human-readable name for a TABDIMS position, or the empty
// string for unused positions.
func Name(index int) string {
	return names[index]
}

var names = map[int]string{
	TabSize:           "TAB size",
	PvtoMainStart:     "PVTO main start",
	PvtoCompStart:     "PVTO composition start",
	NumPvtoPressNodes: "PVTO pressure nodes",
	NumPvtoCompNodes:  "PVTO composition nodes",
	NumPvtoTables:     "PVTO tables",
	PvtwStart:         "PVTW start",
	NumPvtwTables:     "PVTW tables",
	PvtgMainStart:     "PVTG main start",
	PvtgPressStart:    "PVTG pressure start",
	NumPvtgCompNodes:  "PVTG composition nodes",
	NumPvtgPressNodes: "PVTG pressure nodes",
	NumPvtgTables:     "PVTG tables",
	DensityTableStart: "DENSITY start",
	DensityNumTables:  "DENSITY tables",
	SwfnTableStart:    "SWFN start",
	SwfnNumSatNodes:   "SWFN saturation nodes",
	SwfnNumTables:     "SWFN tables",
	SgfnTableStart:    "SGFN start",
	SgfnNumSatNodes:   "SGFN saturation nodes",
	SgfnNumTables:     "SGFN tables",
	SofnTableStart:    "SOFN start",
	SofnNumSatNodes:   "SOFN saturation nodes",
	SofnNumTables:     "SOFN tables",
}
