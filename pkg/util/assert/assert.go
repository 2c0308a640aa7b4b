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
package assert

import (
	"fmt"
	"math"
	"reflect"
	"testing"
)

// Equal errors if actual is not equal to expected.  Integers of different
// types are compared by value.
func Equal(t *testing.T, expected, actual any, msg ...any) {
	t.Helper()
	//
	if reflect.DeepEqual(expected, actual) || intEqual(expected, actual) {
		return
	}

	t.Errorf("expected: %v, actual: %v", expected, actual)
	report(t, msg)
	t.FailNow()
}

// True errors if condition is false.
func True(t *testing.T, condition bool, msg ...any) {
	t.Helper()
	//
	if condition {
		return
	}

	t.Errorf("condition is false")
	report(t, msg)
	t.FailNow()
}

// False errors if condition is true.
func False(t *testing.T, condition bool, msg ...any) {
	t.Helper()
	//
	if !condition {
		return
	}

	t.Errorf("condition is true")
	report(t, msg)
	t.FailNow()
}

// Near errors unless actual is within a relative tolerance tol of expected.
// The tolerance is absolute for values of magnitude below one.
func Near(t *testing.T, expected, actual, tol float64, msg ...any) {
	t.Helper()
	//
	if IsNear(expected, actual, tol) {
		return
	}

	t.Errorf("expected: %v, actual: %v (tolerance %v)", expected, actual, tol)
	report(t, msg)
	t.FailNow()
}

// AllNear errors unless both slices have the same length and all elements are
// pairwise near.
func AllNear(t *testing.T, expected, actual []float64, tol float64, msg ...any) {
	t.Helper()
	//
	if len(expected) != len(actual) {
		t.Errorf("expected %d elements, got %d", len(expected), len(actual))
		report(t, msg)
		t.FailNow()
	}
	//
	for i := range expected {
		if !IsNear(expected[i], actual[i], tol) {
			t.Errorf("element %d: expected: %v, actual: %v (tolerance %v)", i, expected[i], actual[i], tol)
			report(t, msg)
			t.FailNow()
		}
	}
}

// IsNear determines whether two floating point values agree to within a
// relative tolerance.
func IsNear(expected, actual, tol float64) bool {
	if expected == actual {
		return true
	}
	//
	scale := math.Max(1, math.Max(math.Abs(expected), math.Abs(actual)))

	return math.Abs(expected-actual) <= tol*scale
}

func report(t *testing.T, msg []any) {
	t.Helper()
	//
	if len(msg) != 0 {
		t.Errorf("%s", fmt.Sprintf(fmt.Sprint(msg[0]), msg[1:]...))
	}
}

// intEqual returns whether expected and actual are both integers and whether they are equal
// if that is the case.
func intEqual(expected, actual any) bool {
	a, aInt64 := asInt64(expected)
	b, bInt64 := asInt64(actual)

	if aInt64 != bInt64 {
		return false
	}

	if aInt64 {
		return a == b
	}

	x, aUint64 := expected.(uint64)
	y, bUint64 := actual.(uint64)

	if !aUint64 || !bUint64 {
		return false
	}

	return x == y
}

// asInt64 tries to convert x to an int64 and specifies if the conversion was successful or
// if x only can be expressed as a uint64
func asInt64(x any) (int64, bool) {
	if y, ok := x.(uint64); ok && y > math.MaxInt64 {
		return 0, false
	}

	switch x := x.(type) {
	case int:
		return int64(x), true
	case int8:
		return int64(x), true
	case int16:
		return int64(x), true
	case int32:
		return int64(x), true
	case int64:
		return x, true
	case uint:
		return int64(x), true
	case uint8:
		return int64(x), true
	case uint16:
		return int64(x), true
	case uint32:
		return int64(x), true
	case uint64:
		return int64(x), true
	}

	return 0, false
}
