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
	"sort"

	"github.com/consensys/go-proptab/pkg/deck"
)

// DerivedKroFunction provides oil saturation and oil relative permeability
// look-up for a Family I table (SGOF or SWOF), where rows are given in terms
// of increasing gas or water saturation s.  The oil saturation at row i is
// offset - s[i].
type DerivedKroFunction struct {
	s      []float64
	kro    []float64
	offset float64
}

// NewDerivedKroFunction constructs a derived function from a phase saturation
// column, the corresponding oil relative permeability column and the oil
// saturation offset.
func NewDerivedKroFunction(s []float64, kro []float64, offset float64) *DerivedKroFunction {
	return &DerivedKroFunction{s, kro, offset}
}

// So returns the oil saturation of row i.
func (p *DerivedKroFunction) So(i uint) float64 {
	return p.offset - p.s[i]
}

// Kro returns the oil relative permeability of row i.
func (p *DerivedKroFunction) Kro(i uint) float64 {
	return p.kro[i]
}

// KroAt evaluates the piecewise linear oil relative permeability at an
// arbitrary oil saturation.  Values outside the tabulated range are
// extrapolated flat.
func (p *DerivedKroFunction) KroAt(so float64) float64 {
	s := p.offset - so
	// First row whose saturation is not less than s
	i := sort.SearchFloat64s(p.s, s)
	//
	if i == 0 {
		return p.kro[0]
	} else if i == len(p.s) {
		return p.kro[len(p.kro)-1]
	}
	//
	sl, yl := p.s[i-1], p.kro[i-1]
	sr, yr := p.s[i], p.kro[i]
	t := (s - sl) / (sr - sl)

	return t*yr + (1.0-t)*yl
}

// Size returns the number of rows in this function.
func (p *DerivedKroFunction) Size() uint {
	return uint(len(p.s))
}

// tableElement identifies one row of one derived function.
type tableElement struct {
	function uint
	index    uint
}

// makeReverseRange enumerates the rows of a derived function in order of
// increasing oil saturation.
func makeReverseRange(function uint, n uint) []tableElement {
	elems := make([]tableElement, 0, n)
	//
	for i := n; i > 0; i-- {
		elems = append(elems, tableElement{function, i - 1})
	}

	return elems
}

// mergeTables joins two derived functions on their oil saturation nodes.  The
// result is the ordered union, where a node present in both functions is
// taken once from the first.
func mergeTables(fns [2]*DerivedKroFunction) []tableElement {
	t0 := makeReverseRange(0, fns[0].Size())
	t1 := makeReverseRange(1, fns[1].Size())
	merged := make([]tableElement, 0, len(t0)+len(t1))
	so := func(e tableElement) float64 { return fns[e.function].So(e.index) }
	//
	i, j := 0, 0
	//
	for i < len(t0) && j < len(t1) {
		a, b := so(t0[i]), so(t1[j])
		//
		switch {
		case a < b:
			merged = append(merged, t0[i])
			i++
		case b < a:
			merged = append(merged, t1[j])
			j++
		default:
			merged = append(merged, t0[i])
			i++
			j++
		}
	}
	// Remainders
	merged = append(merged, t0[i:]...)

	return append(merged, t1[j:]...)
}

// MergeSOF3 derives a three-phase SOF3 table from an SGOF table and an SWOF
// table of the same region.  Krow(So) is taken from SWOF with So = 1-Sw and
// Krog(So) from SGOF with So = (1-Swco)-Sg, where Swco is the connate water
// saturation (first Sw node).  Rows are the union of the oil saturation nodes
// of both, in increasing order.  On each row the function owning that node
// contributes its exact value, whilst the other is interpolated.
func MergeSOF3(sgof *deck.SgofTable, swof *deck.SwofTable) deck.Sof3Table {
	// NOTE: order matches the SOF3 columns [So, Krow, Krog].
	fns := [2]*DerivedKroFunction{
		NewDerivedKroFunction(swof.Sw, swof.Krow, 1.0),
		NewDerivedKroFunction(sgof.Sg, sgof.Krog, 1.0-swof.Sw[0]),
	}
	//
	merged := mergeTables(fns)
	cols := [3][]float64{}
	//
	for i := range cols {
		cols[i] = make([]float64, 0, len(merged))
	}
	//
	for _, row := range merged {
		self := row.function
		other := 1 - self
		so := fns[self].So(row.index)
		//
		cols[0] = append(cols[0], so)
		cols[1+self] = append(cols[1+self], fns[self].Kro(row.index))
		cols[1+other] = append(cols[1+other], fns[other].KroAt(so))
	}
	//
	return deck.Sof3Table{So: cols[0], Krow: cols[1], Krog: cols[2]}
}
