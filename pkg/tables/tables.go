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
	"github.com/consensys/go-proptab/pkg/tabdims"
	"github.com/consensys/go-proptab/pkg/units"
	log "github.com/sirupsen/logrus"
)

// DensityFillValue marks unused cells of the density block.
const DensityFillValue = -2.0e20

// Block describes one contiguous block of the TAB vector.
type Block struct {
	// Name of the block (e.g. "SGFN").
	Name string
	// Position in the TABDIMS vector holding this block's start.
	Index int
	// Zero-based offset of the first element of the block within TAB.
	Offset int
	// Number of elements in the block.
	Size int
}

// Tables accumulates the linearised TAB vector and its TABDIMS directory for
// a single simulation run.  Blocks are appended in the order the various Add
// methods are called.
type Tables struct {
	units   units.Converter
	strict  bool
	tab     []float64
	tabdims []int32
	blocks  []Block
}

// Option configures a Tables instance.
type Option func(*Tables)

// WithStrict determines whether ambiguous or missing table specifications are
// reported as errors (strict) or merely logged and skipped (lenient).  The
// default is lenient.
func WithStrict(strict bool) Option {
	return func(p *Tables) {
		p.strict = strict
	}
}

// New constructs an empty accumulator whose output is expressed in the given
// unit system.
func New(u units.Converter, opts ...Option) *Tables {
	p := &Tables{units: u, tabdims: tabdims.New()}
	//
	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Tab returns the TAB vector accumulated so far.
func (p *Tables) Tab() []float64 {
	return p.tab
}

// TabDims returns the TABDIMS vector accumulated so far.
func (p *Tables) TabDims() []int32 {
	return p.tabdims
}

// Blocks returns the blocks appended so far, in order of appending.
func (p *Tables) Blocks() []Block {
	return p.blocks
}

// AddDensity appends the surface densities of all PVT regions.  The block
// holds the oil densities of all regions, followed by those of water and then
// of gas.
func (p *Tables) AddDensity(density []deck.DensityRecord) {
	nreg := len(density)
	//
	if nreg == 0 {
		return
	}
	//
	data := make([]float64, 3*nreg)
	//
	for i := range data {
		data[i] = DensityFillValue
	}
	//
	for i, r := range density {
		data[0*nreg+i] = p.units.FromSI(units.Density, r.Oil)
		data[1*nreg+i] = p.units.FromSI(units.Density, r.Water)
		data[2*nreg+i] = p.units.FromSI(units.Density, r.Gas)
	}
	//
	p.tabdims[tabdims.DensityNumTables] = int32(nreg)
	p.addData("DENSITY", tabdims.DensityTableStart, data)
}

// addData appends a block to the TAB vector, recording its (one-based) start
// at the given TABDIMS position.
func (p *Tables) addData(name string, index int, data []float64) {
	offset := len(p.tab)
	p.tabdims[index] = int32(offset + 1)
	p.tab = append(p.tab, data...)
	p.tabdims[tabdims.TabSize] = int32(len(p.tab))
	p.blocks = append(p.blocks, Block{name, index, offset, len(data)})
	//
	log.Debugf("appended %s block (%d elements at %d)", name, len(data), offset+1)
}

// inconsistent reports a quantity which could not be produced from the given
// keywords.  In lenient mode this is logged and nil returned.
func (p *Tables) inconsistent(quantity string, keywords ...string) error {
	err := NewConfigurationError(quantity, keywords...)
	//
	if p.strict {
		return err
	}
	//
	log.Warnf("%s (skipped)", err)

	return nil
}

// FromDeck linearises all tables of a deck, in the deck's declared unit
// system.  Densities are appended first, then the PVT functions and finally
// the saturation functions.
func FromDeck(d *deck.Deck, opts ...Option) (*Tables, error) {
	sys, err := units.ByName(d.Runspec.Units)
	if err != nil {
		return nil, err
	}
	//
	p := New(sys, opts...)
	p.AddDensity(d.Tables.Density)
	//
	if err := p.AddPVTTables(d); err != nil {
		return nil, err
	}
	//
	if err := p.AddSatFunc(d); err != nil {
		return nil, err
	}
	//
	return p, nil
}
