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
package pvt

import (
	"github.com/consensys/go-proptab/pkg/units"
)

const (
	// DryFillValue marks unused cells of PVDG, PVDO and PVTO tables, as well as
	// of composition and pressure node tables.
	DryFillValue = 2.0e20
	// WetGasFillValue marks unused cells of PVTG tables.
	WetGasFillValue = -2.0e20
	// DeadOilFillValue marks unused cells of PVCDO tables.
	DeadOilFillValue = -1.0e20
	// WaterFillValue marks unused cells of PVTW tables.
	WaterFillValue = 1.0e20
)

// outputConverted writes the values of src, converted from SI into the
// declared unit of measure m, into dst.
func outputConverted(u units.Converter, m units.Measure, src []float64, dst []float64) {
	for i, v := range src {
		dst[i] = u.FromSI(m, v)
	}
}

// outputReciprocals writes 1/B and 1/(B*mu) into dstB and dstBmu, where m
// identifies the inverse formation volume factor measure of the phase.
func outputReciprocals(u units.Converter, m units.Measure, b, mu []float64, dstB, dstBmu []float64) {
	for i := range b {
		recip := u.FromSI(m, 1.0/b[i])
		dstB[i] = recip
		dstBmu[i] = recip / u.FromSI(units.Viscosity, mu[i])
	}
}

// maxRows determines the largest row count amongst a set of items.
func maxRows[T any](items []T, rows func(*T) uint) uint {
	var n uint
	//
	for i := range items {
		n = max(n, rows(&items[i]))
	}

	return n
}
