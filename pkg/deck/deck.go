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
	"fmt"
	"slices"
	"strings"

	"golang.org/x/exp/maps"
)

// ErrUnknownKeyword is returned when a table keyword is not recognised.
var ErrUnknownKeyword = errors.New("unknown table keyword")

// Default table dimensions (TABDIMS) and mobility threshold (TOLCRIT).
const (
	DefaultNumSatTables     = 1
	DefaultNumPvtTables     = 1
	DefaultNumSatNodes      = 20
	DefaultNumPressureNodes = 20
	DefaultNumFipRegions    = 1
	DefaultNumRsNodes       = 20
	DefaultTolcrit          = 1.0e-6
)

// Phases records which fluid phases are active in a run.
type Phases struct {
	Oil   bool `json:"oil"`
	Water bool `json:"water"`
	Gas   bool `json:"gas"`
}

// ThreePhase determines whether all of oil, water and gas are active.
func (p Phases) ThreePhase() bool {
	return p.Oil && p.Water && p.Gas
}

// Tabdims holds the declared table dimensions of a run.
type Tabdims struct {
	// NTSFUN
	NumSatTables uint `json:"ntsfun"`
	// NTPVT
	NumPvtTables uint `json:"ntpvt"`
	// NSSFUN, maximum number of saturation nodes per table.
	NumSatNodes uint `json:"nssfun"`
	// NPPVT, maximum number of pressure nodes per table.
	NumPressureNodes uint `json:"nppvt"`
	// NTFIP
	NumFipRegions uint `json:"ntfip"`
	// NRPVT, maximum number of Rs (or Rv) nodes per table.
	NumRsNodes uint `json:"nrpvt"`
}

// DefaultTabdims returns the simulator defaults for TABDIMS.
func DefaultTabdims() Tabdims {
	return Tabdims{DefaultNumSatTables, DefaultNumPvtTables, DefaultNumSatNodes, DefaultNumPressureNodes,
		DefaultNumFipRegions, DefaultNumRsNodes}
}

// Runspec captures the run specification relevant to table output.
type Runspec struct {
	Phases  Phases
	Tabdims Tabdims
	// Minimum relative permeability for a phase to be considered mobile.
	Tolcrit float64
	// Declared unit system (e.g. "METRIC").
	Units string
}

// TableManager holds all property function tables of a run, one entry per
// region.  All values are in SI units.
type TableManager struct {
	Sgof    []SgofTable
	Swof    []SwofTable
	Sgfn    []SgfnTable
	Swfn    []SwfnTable
	Sof2    []Sof2Table
	Sof3    []Sof3Table
	Pvdg    []PvdgTable
	Pvdo    []PvdoTable
	Pvtg    []PvtgTable
	Pvto    []PvtoTable
	Pvcdo   []FlatRecord
	Pvtw    []FlatRecord
	Density []DensityRecord
}

// Count returns the number of tables (regions) given for a keyword.
func (p *TableManager) Count(keyword string) (uint, error) {
	var n int
	//
	switch strings.ToUpper(keyword) {
	case "SGOF":
		n = len(p.Sgof)
	case "SWOF":
		n = len(p.Swof)
	case "SGFN":
		n = len(p.Sgfn)
	case "SWFN":
		n = len(p.Swfn)
	case "SOF2":
		n = len(p.Sof2)
	case "SOF3":
		n = len(p.Sof3)
	case "PVDG":
		n = len(p.Pvdg)
	case "PVDO":
		n = len(p.Pvdo)
	case "PVTG":
		n = len(p.Pvtg)
	case "PVTO":
		n = len(p.Pvto)
	case "PVCDO":
		n = len(p.Pvcdo)
	case "PVTW":
		n = len(p.Pvtw)
	case "DENSITY":
		n = len(p.Density)
	default:
		return 0, fmt.Errorf("%w: %s", ErrUnknownKeyword, keyword)
	}
	//
	return uint(n), nil
}

// HasTables determines whether at least one table was given for a keyword.
// Unknown keywords have no tables.
func (p *TableManager) HasTables(keyword string) bool {
	n, err := p.Count(keyword)
	return err == nil && n > 0
}

// Keywords returns the (sorted) set of keywords for which tables are present.
func (p *TableManager) Keywords() []string {
	present := make(map[string]uint)
	//
	for _, kw := range tableKeywords {
		if n, _ := p.Count(kw); n > 0 {
			present[kw] = n
		}
	}
	//
	keys := maps.Keys(present)
	slices.Sort(keys)

	return keys
}

var tableKeywords = []string{
	"SGOF", "SWOF", "SGFN", "SWFN", "SOF2", "SOF3",
	"PVDG", "PVDO", "PVTG", "PVTO", "PVCDO", "PVTW", "DENSITY",
}

// Deck is the parsed, SI-converted content of a simulation deck which is
// relevant for table output.
type Deck struct {
	// Case name
	Name    string
	Runspec Runspec
	Tables  TableManager
}
