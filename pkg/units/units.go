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
package units

import (
	"fmt"
	"strings"
)

// Measure identifies a physical quantity whose numerical value depends on the
// unit system in which it is expressed.
type Measure uint

const (
	// Identity is a dimensionless quantity (e.g. saturation, relative
	// permeability).
	Identity Measure = iota
	// Length (m, ft, cm).
	Length
	// Time (day, hr).
	Time
	// Density (kg/m3, lb/ft3, g/cc).
	Density
	// Pressure (barsa, psia, atma).
	Pressure
	// AbsoluteTemperature (K, R).
	AbsoluteTemperature
	// Temperature (C, F).
	Temperature
	// Viscosity (cP).
	Viscosity
	// Permeability (mD).
	Permeability
	// LiquidSurfaceVolume (sm3, stb, scc).
	LiquidSurfaceVolume
	// GasSurfaceVolume (sm3, Mscf, scc).
	GasSurfaceVolume
	// ReservoirVolume (rm3, rb, rcc).
	ReservoirVolume
	// GasOilRatio is dissolved gas/oil ratio (Rs).
	GasOilRatio
	// OilGasRatio is vaporised oil/gas ratio (Rv).
	OilGasRatio
	// GasFormationVolumeFactor is Bg.
	GasFormationVolumeFactor
	// OilFormationVolumeFactor is Bo.
	OilFormationVolumeFactor
	// WaterFormationVolumeFactor is Bw.
	WaterFormationVolumeFactor
	// GasInverseFormationVolumeFactor is 1/Bg.
	GasInverseFormationVolumeFactor
	// OilInverseFormationVolumeFactor is 1/Bo.
	OilInverseFormationVolumeFactor
	// WaterInverseFormationVolumeFactor is 1/Bw.
	WaterInverseFormationVolumeFactor
	// number of measures; must remain last.
	measureCount
)

var measureNames = [measureCount]string{
	"identity", "length", "time", "density", "pressure", "absolute_temperature",
	"temperature", "viscosity", "permeability", "liquid_surface_volume",
	"gas_surface_volume", "reservoir_volume", "gas_oil_ratio", "oil_gas_ratio",
	"gas_formation_volume_factor", "oil_formation_volume_factor",
	"water_formation_volume_factor", "gas_inverse_formation_volume_factor",
	"oil_inverse_formation_volume_factor", "water_inverse_formation_volume_factor",
}

func (m Measure) String() string {
	if m < measureCount {
		return measureNames[m]
	}

	return fmt.Sprintf("measure(%d)", uint(m))
}

// Converter abstracts the unit conversions required when writing tables.
// Values held in memory are always SI; the declared unit system of a run
// determines what gets written.
type Converter interface {
	// FromSI converts an SI value into the declared unit of the given
	// measure.
	FromSI(m Measure, value float64) float64
	// ToSI converts a value in the declared unit of the given measure into
	// SI.
	ToSI(m Measure, value float64) float64
}

// System is a concrete unit system, i.e. a table of scale factors and offsets
// (one per measure) relating declared units to SI.
type System struct {
	name   string
	factor [measureCount]float64
	offset [measureCount]float64
	labels [measureCount]string
}

// Name returns the keyword naming this unit system (e.g. "METRIC").
func (p *System) Name() string {
	return p.name
}

// FromSI converts value (SI) into this system's unit of measure m.
func (p *System) FromSI(m Measure, value float64) float64 {
	return (value - p.offset[m]) / p.factor[m]
}

// ToSI converts value, given in this system's unit of measure m, into SI.
func (p *System) ToSI(m Measure, value float64) float64 {
	return p.factor[m]*value + p.offset[m]
}

// FromSIAll converts every element of data in place.
func (p *System) FromSIAll(m Measure, data []float64) {
	for i, v := range data {
		data[i] = p.FromSI(m, v)
	}
}

// ToSIAll converts every element of data in place.
func (p *System) ToSIAll(m Measure, data []float64) {
	for i, v := range data {
		data[i] = p.ToSI(m, v)
	}
}

// Label returns the printable unit string of a given measure.
func (p *System) Label(m Measure) string {
	return p.labels[m]
}

// NewMetric constructs the METRIC unit system.
func NewMetric() *System {
	return newSystem("METRIC", metricBase, [measureCount]string{
		"", "M", "DAYS", "KG/M3", "BARSA", "K", "C", "CP", "MD", "SM3", "SM3", "RM3",
		"SM3/SM3", "SM3/SM3", "RM3/SM3", "RM3/SM3", "RM3/SM3", "SM3/RM3", "SM3/RM3", "SM3/RM3",
	})
}

// NewField constructs the FIELD unit system.
func NewField() *System {
	return newSystem("FIELD", fieldBase, [measureCount]string{
		"", "FT", "DAYS", "LB/FT3", "PSIA", "R", "F", "CP", "MD", "STB", "MSCF", "RB",
		"MSCF/STB", "STB/MSCF", "RB/MSCF", "RB/STB", "RB/STB", "MSCF/RB", "STB/RB", "STB/RB",
	})
}

// NewLab constructs the LAB unit system.
func NewLab() *System {
	return newSystem("LAB", labBase, [measureCount]string{
		"", "CM", "HR", "G/CC", "ATMA", "K", "C", "CP", "MD", "SCC", "SCC", "RCC",
		"SCC/SCC", "SCC/SCC", "RCC/SCC", "RCC/SCC", "RCC/SCC", "SCC/RCC", "SCC/RCC", "SCC/RCC",
	})
}

// NewPVTM constructs the PVT-M unit system.
func NewPVTM() *System {
	return newSystem("PVT-M", pvtmBase, [measureCount]string{
		"", "M", "DAYS", "KG/M3", "ATMA", "K", "C", "CP", "MD", "SM3", "SM3", "RM3",
		"SM3/SM3", "SM3/SM3", "RM3/SM3", "RM3/SM3", "RM3/SM3", "SM3/RM3", "SM3/RM3", "SM3/RM3",
	})
}

// ByName returns the unit system identified by a deck keyword.  An empty name
// selects METRIC, which is the simulator default.
func ByName(name string) (*System, error) {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "", "METRIC":
		return NewMetric(), nil
	case "FIELD":
		return NewField(), nil
	case "LAB":
		return NewLab(), nil
	case "PVT-M", "PVTM":
		return NewPVTM(), nil
	}

	return nil, fmt.Errorf("unknown unit system %q", name)
}
