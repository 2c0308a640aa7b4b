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
package linear

import "fmt"

// Table is a padded, linearised four-dimensional array of property function
// values backed by a single flat vector.  Conceptually it is indexed by
// (table, primary key, row, column), but the physical layout keeps each
// column of a sub-table contiguous so that it can be written with stride one.
// That is, a sub-table occupies numRows*numCols consecutive cells and column c
// of sub-table (t, p) starts at numRows*numCols*(p + t*numPrimary) + numRows*c.
//
// Cells which are never written retain the fill value given at construction.
type Table struct {
	data       []float64
	numTables  uint
	numPrimary uint
	numRows    uint
	numCols    uint
}

// NewTable allocates a table of numTables*numPrimary*numRows*numCols cells,
// all initialised to fill.
func NewTable(numTables, numPrimary, numRows, numCols uint, fill float64) *Table {
	data := make([]float64, numTables*numPrimary*numRows*numCols)
	//
	for i := range data {
		data[i] = fill
	}

	return &Table{data, numTables, numPrimary, numRows, numCols}
}

// Column returns the numRows cells of a given column within a given
// sub-table.  Callers write at most their number of active rows into this
// slice, starting at index zero.
func (p *Table) Column(tableID, primID, colID uint) []float64 {
	if p.data == nil {
		panic("access to extracted table")
	} else if tableID >= p.numTables || primID >= p.numPrimary || colID >= p.numCols {
		panic(fmt.Sprintf("invalid table column (%d,%d,%d) in %dx%dx%d table", tableID, primID, colID,
			p.numTables, p.numPrimary, p.numCols))
	}
	//
	offset := p.numRows*p.numCols*(primID+tableID*p.numPrimary) + p.numRows*colID

	return p.data[offset : offset+p.numRows : offset+p.numRows]
}

// NumRows returns the number of (padded) rows of each sub-table.
func (p *Table) NumRows() uint {
	return p.numRows
}

// NumColumns returns the number of columns of each sub-table.
func (p *Table) NumColumns() uint {
	return p.numCols
}

// Data extracts the flat vector from this table, leaving the table empty.
// Once extracted, the table should be discarded.
func (p *Table) Data() []float64 {
	data := p.data
	p.data = nil
	//
	return data
}
