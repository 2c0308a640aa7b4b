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
	"math"
	"testing"
)

func Test_Units_01(t *testing.T) {
	// One bar in METRIC is 1e5 Pa.
	check_FromSI(t, NewMetric(), Pressure, 1.0e5, 1.0)
	check_FromSI(t, NewMetric(), Viscosity, 1.0e-3, 1.0)
	check_FromSI(t, NewMetric(), Density, 850.0, 850.0)
}

func Test_Units_02(t *testing.T) {
	check_FromSI(t, NewField(), Pressure, 6894.757293168361, 1.0)
	check_FromSI(t, NewField(), Length, 0.3048, 1.0)
	check_FromSI(t, NewField(), GasOilRatio, mscf/stb, 1.0)
	check_FromSI(t, NewField(), OilGasRatio, stb/mscf, 1.0)
	check_FromSI(t, NewField(), GasInverseFormationVolumeFactor, mscf/stb, 1.0)
}

func Test_Units_03(t *testing.T) {
	check_FromSI(t, NewLab(), Pressure, atm, 1.0)
	check_FromSI(t, NewLab(), Density, 1000.0, 1.0)
	check_FromSI(t, NewPVTM(), Pressure, atm, 1.0)
}

func Test_Units_04(t *testing.T) {
	// Affine conversion for temperature.
	check_FromSI(t, NewMetric(), Temperature, 273.15, 0.0)
	check_FromSI(t, NewField(), Temperature, 273.15, 32.0)
}

func Test_Units_RoundTrip_01(t *testing.T) {
	systems := []*System{NewMetric(), NewField(), NewLab(), NewPVTM()}
	values := []float64{0, 1, 101325, 2.5e7, -3.25, 1e-9}
	//
	for _, sys := range systems {
		for m := Identity; m < measureCount; m++ {
			for _, v := range values {
				x := sys.ToSI(m, sys.FromSI(m, v))
				if !near(x, v) {
					t.Errorf("%s: %s round trip of %g gave %g", sys.Name(), m, v, x)
				}
			}
		}
	}
}

func Test_Units_ByName_01(t *testing.T) {
	for _, name := range []string{"", "metric", "FIELD", "Lab", "PVT-M"} {
		if _, err := ByName(name); err != nil {
			t.Errorf("unexpected error for %q: %v", name, err)
		}
	}
	//
	if _, err := ByName("IMPERIAL"); err == nil {
		t.Errorf("expected error for unknown unit system")
	}
}

func Test_Units_Vector_01(t *testing.T) {
	sys := NewField()
	data := []float64{1e5, 2e5, 3e5}
	sys.FromSIAll(Pressure, data)
	sys.ToSIAll(Pressure, data)
	//
	for i, v := range []float64{1e5, 2e5, 3e5} {
		if !near(data[i], v) {
			t.Errorf("element %d: expected %g, got %g", i, v, data[i])
		}
	}
}

// ===================================================================
// Test Helpers
// ===================================================================

func check_FromSI(t *testing.T, sys *System, m Measure, si float64, expected float64) {
	if actual := sys.FromSI(m, si); !near(actual, expected) {
		t.Errorf("%s: %s from SI %g: expected %g, got %g", sys.Name(), m, si, expected, actual)
	}
}

func near(a, b float64) bool {
	return math.Abs(a-b) <= 1e-10*math.Max(1, math.Max(math.Abs(a), math.Abs(b)))
}
