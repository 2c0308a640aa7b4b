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
package tables

import (
	"github.com/consensys/go-proptab/pkg/deck"
	"github.com/consensys/go-proptab/pkg/satfunc"
	"github.com/consensys/go-proptab/pkg/tabdims"
)

// AddSatFunc appends the normalised saturation function tables (SGFN, SOFN
// and SWFN) for the active phases of a deck.  These are produced either from
// Family I keywords (SGOF, SWOF) or from Family II keywords (SGFN, SOF2, SOF3,
// SWFN).  A deck which uses both families, or neither, is inconsistent.
func (p *Tables) AddSatFunc(d *deck.Deck) error {
	var (
		tm     = &d.Tables
		gas    = d.Runspec.Phases.Gas
		oil    = d.Runspec.Phases.Oil
		wat    = d.Runspec.Phases.Water
		threeP = d.Runspec.Phases.ThreePhase()
	)
	//
	famI := (gas && tm.HasTables("SGOF")) || (wat && tm.HasTables("SWOF"))
	famII := (gas && tm.HasTables("SGFN")) ||
		(oil && ((threeP && tm.HasTables("SOF3")) || tm.HasTables("SOF2"))) ||
		(wat && tm.HasTables("SWFN"))
	//
	switch {
	case famI && famII:
		return p.inconsistent("saturation functions", presentKeywords(tm, satfuncKeywords)...)
	case famI:
		return p.addSatFuncFamilyOne(d)
	case famII:
		return p.addSatFuncFamilyTwo(d)
	default:
		return p.inconsistent("saturation functions")
	}
}

func (p *Tables) addSatFuncFamilyOne(d *deck.Deck) error {
	var (
		tm      = &d.Tables
		phases  = d.Runspec.Phases
		nssfun  = d.Runspec.Tabdims.NumSatNodes
		tolcrit = d.Runspec.Tolcrit
	)
	//
	if phases.Gas {
		sgfn := satfunc.GasFromSGOF(nssfun, tolcrit, p.units, tm.Sgof)
		p.addSatFuncData("SGFN", tabdims.SgfnTableStart, sgfn, nssfun, len(tm.Sgof))
	}
	//
	if phases.Oil {
		switch {
		case phases.Gas && !phases.Water:
			// Gas/oil system
			sofn := satfunc.OilFromSGOF(nssfun, tolcrit, tm.Sgof)
			p.addSatFuncData("SOFN", tabdims.SofnTableStart, sofn, nssfun, len(tm.Sgof))
		case phases.Water && !phases.Gas:
			// Oil/water system
			sofn := satfunc.OilFromSWOF(nssfun, tolcrit, tm.Swof)
			p.addSatFuncData("SOFN", tabdims.SofnTableStart, sofn, nssfun, len(tm.Swof))
		default:
			// Three-phase system.  Merging tables requires twice as many rows.
			if len(tm.Sgof) != len(tm.Swof) {
				if err := p.inconsistent("three-phase oil saturation functions", "SGOF", "SWOF"); err != nil {
					return err
				}

				break
			}
			//
			numRows := 2 * nssfun
			sofn := satfunc.OilFromSGOFAndSWOF(numRows, tolcrit, tm.Sgof, tm.Swof)
			p.addSatFuncData("SOFN", tabdims.SofnTableStart, sofn, numRows, len(tm.Sgof))
		}
	}
	//
	if phases.Water {
		swfn := satfunc.WaterFromSWOF(nssfun, tolcrit, p.units, tm.Swof)
		p.addSatFuncData("SWFN", tabdims.SwfnTableStart, swfn, nssfun, len(tm.Swof))
	}
	//
	return nil
}

func (p *Tables) addSatFuncFamilyTwo(d *deck.Deck) error {
	var (
		tm      = &d.Tables
		phases  = d.Runspec.Phases
		nssfun  = d.Runspec.Tabdims.NumSatNodes
		tolcrit = d.Runspec.Tolcrit
	)
	//
	if phases.Gas {
		sgfn := satfunc.GasFromSGFN(nssfun, tolcrit, p.units, tm.Sgfn)
		p.addSatFuncData("SGFN", tabdims.SgfnTableStart, sgfn, nssfun, len(tm.Sgfn))
	}
	//
	if phases.Oil {
		if phases.Gas != phases.Water {
			// Two-phase system
			sofn := satfunc.OilFromSOF2(nssfun, tolcrit, tm.Sof2)
			p.addSatFuncData("SOFN", tabdims.SofnTableStart, sofn, nssfun, len(tm.Sof2))
		} else {
			sofn := satfunc.OilFromSOF3(nssfun, tolcrit, tm.Sof3)
			p.addSatFuncData("SOFN", tabdims.SofnTableStart, sofn, nssfun, len(tm.Sof3))
		}
	}
	//
	if phases.Water {
		swfn := satfunc.WaterFromSWFN(nssfun, tolcrit, p.units, tm.Swfn)
		p.addSatFuncData("SWFN", tabdims.SwfnTableStart, swfn, nssfun, len(tm.Swfn))
	}
	//
	return nil
}

// addSatFuncData appends a saturation function block and records its number
// of saturation nodes and tables.
func (p *Tables) addSatFuncData(name string, index int, data []float64, numRows uint, numTables int) {
	p.addData(name, index, data)
	//
	switch index {
	case tabdims.SgfnTableStart:
		p.tabdims[tabdims.SgfnNumSatNodes] = int32(numRows)
		p.tabdims[tabdims.SgfnNumTables] = int32(numTables)
	case tabdims.SofnTableStart:
		p.tabdims[tabdims.SofnNumSatNodes] = int32(numRows)
		p.tabdims[tabdims.SofnNumTables] = int32(numTables)
	case tabdims.SwfnTableStart:
		p.tabdims[tabdims.SwfnNumSatNodes] = int32(numRows)
		p.tabdims[tabdims.SwfnNumTables] = int32(numTables)
	}
}

var satfuncKeywords = []string{"SGOF", "SWOF", "SGFN", "SOF2", "SOF3", "SWFN"}

// presentKeywords filters a list of keywords down to those with tables.
func presentKeywords(tm *deck.TableManager, keywords []string) []string {
	var present []string
	//
	for _, kw := range keywords {
		if tm.HasTables(kw) {
			present = append(present, kw)
		}
	}

	return present
}
