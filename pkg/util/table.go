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
package util

import (
	"fmt"
	"io"
)

// TablePrinter is useful for printing tables to the terminal.  The first row
// is treated as a heading, and is separated from the remainder by a rule.
type TablePrinter struct {
	widths []uint
	rows   [][]string
}

// NewTablePrinter constructs a new table with given dimensions.
func NewTablePrinter(width uint, height uint) *TablePrinter {
	widths := make([]uint, width)
	rows := make([][]string, height)
	// Construct the table
	for i := uint(0); i < height; i++ {
		rows[i] = make([]string, width)
	}

	return &TablePrinter{widths, rows}
}

// Height returns the number of rows in this table.
func (p *TablePrinter) Height() uint {
	return uint(len(p.rows))
}

// SetRow sets the contents of an entire row in this table
func (p *TablePrinter) SetRow(row uint, vals ...string) {
	if len(vals) != len(p.widths) {
		panic("incorrect number of columns")
	}
	// Update column widths
	for i := 0; i < len(p.widths); i++ {
		p.widths[i] = max(p.widths[i], uint(len(vals[i])))
	}
	// Done
	p.rows[row] = vals
}

// SetMaxWidth puts an upper bound on the total width of the table, as
// printed.  Each column is given an equal share, with a minimum of one
// character.
func (p *TablePrinter) SetMaxWidth(total uint) {
	if len(p.widths) == 0 {
		return
	}
	// Three characters of padding per column
	share := max(1, int(total)/len(p.widths)-3)
	//
	for i := 0; i < len(p.widths); i++ {
		p.widths[i] = min(p.widths[i], uint(share))
	}
}

// Print the table to a given writer.
func (p *TablePrinter) Print(w io.Writer) {
	for i, row := range p.rows {
		for j, col := range row {
			jth := col
			jthWidth := p.widths[j]

			if uint(len(col)) > jthWidth {
				jth = col[0:jthWidth]
			}

			fmt.Fprintf(w, " %*s |", jthWidth, jth)
		}

		fmt.Fprintln(w)
		//
		if i == 0 && len(p.rows) > 1 {
			p.printRule(w)
		}
	}
}

func (p *TablePrinter) printRule(w io.Writer) {
	for _, width := range p.widths {
		for k := uint(0); k < width+2; k++ {
			fmt.Fprint(w, "-")
		}

		fmt.Fprint(w, "+")
	}

	fmt.Fprintln(w)
}
