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
	"github.com/consensys/go-proptab/pkg/pvt"
	"github.com/consensys/go-proptab/pkg/tabdims"
)

// AddPVTTables appends the PVT tables for the active phases of a deck.  Gas
// requires exactly one of PVTG or PVDG, and oil exactly one of PVTO, PVDO or
// PVCDO.  Water PVT tables are appended only when PVTW is given.  The number
// of pressure and composition nodes is the larger of that declared in TABDIMS
// and that actually used by the tables.
func (p *Tables) AddPVTTables(d *deck.Deck) error {
	phases := d.Runspec.Phases
	//
	if phases.Gas {
		if err := p.addGasPVTTables(d); err != nil {
			return err
		}
	}
	//
	if phases.Oil {
		if err := p.addOilPVTTables(d); err != nil {
			return err
		}
	}
	//
	if phases.Water {
		p.addWaterPVTTables(d)
	}
	//
	return nil
}

func (p *Tables) addGasPVTTables(d *deck.Deck) error {
	var (
		tm            = &d.Tables
		tabd          = d.Runspec.Tabdims
		numPressNodes = tabd.NumPressureNodes
	)
	//
	if keywords := presentKeywords(tm, []string{"PVTG", "PVDG"}); len(keywords) != 1 {
		return p.inconsistent("gas PVT tables", keywords...)
	}
	//
	if tm.HasTables("PVTG") {
		// Wet gas
		numCompNodes := max(tabd.NumRsNodes, pvt.MaxNumCompNodesPVTG(tm.Pvtg))
		numPrimary := max(numPressNodes, pvt.MaxNumPressNodesPVTG(tm.Pvtg))
		//
		p.addData("PVTG", tabdims.PvtgMainStart, pvt.GasFromPVTG(numCompNodes, numPrimary, p.units, tm.Pvtg))
		p.addData("PVTG-P", tabdims.PvtgPressStart, pvt.GasPressureNodes(numPrimary, p.units, tm.Pvtg))
		p.tabdims[tabdims.NumPvtgPressNodes] = int32(numPrimary)
		p.tabdims[tabdims.NumPvtgCompNodes] = int32(numCompNodes)
		p.tabdims[tabdims.NumPvtgTables] = int32(len(tm.Pvtg))
	} else {
		// Dry gas
		numRows := max(numPressNodes, pvt.MaxNumPressNodesPVDG(tm.Pvdg))
		//
		p.addData("PVDG", tabdims.PvtgMainStart, pvt.GasFromPVDG(numRows, p.units, tm.Pvdg))
		p.tabdims[tabdims.NumPvtgPressNodes] = int32(numRows)
		p.tabdims[tabdims.NumPvtgTables] = int32(len(tm.Pvdg))
	}
	//
	return nil
}

func (p *Tables) addOilPVTTables(d *deck.Deck) error {
	var (
		tm            = &d.Tables
		tabd          = d.Runspec.Tabdims
		numPressNodes = tabd.NumPressureNodes
	)
	//
	if keywords := presentKeywords(tm, []string{"PVTO", "PVDO", "PVCDO"}); len(keywords) != 1 {
		return p.inconsistent("oil PVT tables", keywords...)
	}
	//
	switch {
	case tm.HasTables("PVTO"):
		// Live oil
		numCompNodes := max(tabd.NumRsNodes, pvt.MaxNumCompNodesPVTO(tm.Pvto))
		numRows := max(numPressNodes, pvt.MaxNumPressNodesPVTO(tm.Pvto))
		//
		p.addData("PVTO", tabdims.PvtoMainStart, pvt.OilFromPVTO(numCompNodes, numRows, p.units, tm.Pvto))
		p.addData("PVTO-RS", tabdims.PvtoCompStart, pvt.OilCompositionNodes(numCompNodes, p.units, tm.Pvto))
		p.tabdims[tabdims.NumPvtoPressNodes] = int32(numRows)
		p.tabdims[tabdims.NumPvtoCompNodes] = int32(numCompNodes)
		p.tabdims[tabdims.NumPvtoTables] = int32(len(tm.Pvto))
	case tm.HasTables("PVDO"):
		// Dead oil
		numRows := max(numPressNodes, pvt.MaxNumPressNodesPVDO(tm.Pvdo))
		//
		p.addData("PVDO", tabdims.PvtoMainStart, pvt.OilFromPVDO(numRows, p.units, tm.Pvdo))
		p.tabdims[tabdims.NumPvtoPressNodes] = int32(numRows)
		p.tabdims[tabdims.NumPvtoTables] = int32(len(tm.Pvdo))
	default:
		// Dead oil with constant compressibility
		numRows := max(numPressNodes, uint(len(tm.Pvcdo)))
		//
		p.addData("PVCDO", tabdims.PvtoMainStart, pvt.OilFromPVCDO(numRows, p.units, tm.Pvcdo))
		p.tabdims[tabdims.NumPvtoPressNodes] = int32(numRows)
		p.tabdims[tabdims.NumPvtoTables] = int32(len(tm.Pvcdo))
	}
	//
	return nil
}

func (p *Tables) addWaterPVTTables(d *deck.Deck) {
	pvtw := d.Tables.Pvtw
	//
	if len(pvtw) == 0 {
		return
	}
	//
	p.addData("PVTW", tabdims.PvtwStart, pvt.WaterFromPVTW(p.units, pvtw))
	p.tabdims[tabdims.NumPvtwTables] = int32(len(pvtw))
}
