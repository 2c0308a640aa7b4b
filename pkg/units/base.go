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

// Elementary SI prefixes and units from which the declared conventions are
// assembled.
const (
	centi = 1.0e-2
	milli = 1.0e-3

	meter  = 1.0
	inch   = 2.54 * centi * meter
	feet   = 12 * inch
	day    = 86400.0
	hour   = 3600.0
	kg     = 1.0
	pound  = 0.45359237 * kg
	gram   = 1.0e-3 * kg
	barsa  = 1.0e5
	atm    = 101325.0
	lbf    = 4.4482216152605 // pound * gravity
	psia   = lbf / (inch * inch)
	poise  = 0.1
	cP     = centi * poise
	darcy  = 9.869233e-13
	cubic  = meter * meter * meter
	stb    = 0.158987294928 * cubic
	cubft  = feet * feet * feet
	mscf   = 1000 * cubft
	cc     = centi * centi * centi
	kelvin = 1.0
	rankin = 5.0 / 9.0
	// Offset between Fahrenheit and Kelvin, expressed in Kelvin.
	fahrenheitOffset = 459.67 * rankin
	celsiusOffset    = 273.15
)

// baseUnits holds the elementary scale factors of one unit convention.  Every
// measure factor is derived from these.
type baseUnits struct {
	length            float64
	time              float64
	density           float64
	pressure          float64
	absTemperature    float64
	temperature       float64
	temperatureOffset float64
	viscosity         float64
	permeability      float64
	liquidVolume      float64
	gasVolume         float64
	resVolume         float64
}

var metricBase = baseUnits{
	length: meter, time: day, density: kg / cubic, pressure: barsa,
	absTemperature: kelvin, temperature: kelvin, temperatureOffset: celsiusOffset,
	viscosity: cP, permeability: milli * darcy,
	liquidVolume: cubic, gasVolume: cubic, resVolume: cubic,
}

var fieldBase = baseUnits{
	length: feet, time: day, density: pound / cubft, pressure: psia,
	absTemperature: rankin, temperature: rankin, temperatureOffset: fahrenheitOffset,
	viscosity: cP, permeability: milli * darcy,
	liquidVolume: stb, gasVolume: mscf, resVolume: stb,
}

var labBase = baseUnits{
	length: centi * meter, time: hour, density: gram / cc, pressure: atm,
	absTemperature: kelvin, temperature: kelvin, temperatureOffset: celsiusOffset,
	viscosity: cP, permeability: milli * darcy,
	liquidVolume: cc, gasVolume: cc, resVolume: cc,
}

var pvtmBase = baseUnits{
	length: meter, time: day, density: kg / cubic, pressure: atm,
	absTemperature: kelvin, temperature: kelvin, temperatureOffset: celsiusOffset,
	viscosity: cP, permeability: milli * darcy,
	liquidVolume: cubic, gasVolume: cubic, resVolume: cubic,
}

func newSystem(name string, b baseUnits, labels [measureCount]string) *System {
	sys := &System{name: name, labels: labels}
	//
	sys.factor = [measureCount]float64{
		Identity:                          1,
		Length:                            b.length,
		Time:                              b.time,
		Density:                           b.density,
		Pressure:                          b.pressure,
		AbsoluteTemperature:               b.absTemperature,
		Temperature:                       b.temperature,
		Viscosity:                         b.viscosity,
		Permeability:                      b.permeability,
		LiquidSurfaceVolume:               b.liquidVolume,
		GasSurfaceVolume:                  b.gasVolume,
		ReservoirVolume:                   b.resVolume,
		GasOilRatio:                       b.gasVolume / b.liquidVolume,
		OilGasRatio:                       b.liquidVolume / b.gasVolume,
		GasFormationVolumeFactor:          b.resVolume / b.gasVolume,
		OilFormationVolumeFactor:          b.resVolume / b.liquidVolume,
		WaterFormationVolumeFactor:        b.resVolume / b.liquidVolume,
		GasInverseFormationVolumeFactor:   b.gasVolume / b.resVolume,
		OilInverseFormationVolumeFactor:   b.liquidVolume / b.resVolume,
		WaterInverseFormationVolumeFactor: b.liquidVolume / b.resVolume,
	}
	// Only temperature is affine.
	sys.offset[Temperature] = b.temperatureOffset

	return sys
}
