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
package tabfile

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/consensys/go-proptab/pkg/util/assert"
	"github.com/google/go-cmp/cmp"
)

var testFile = File{
	Metadata: Metadata{Name: "SPE1", Units: "FIELD"},
	TabDims:  []int32{6, 1, 1, 1, 1, 1, 0, 0},
	Tab:      []float64{0.0, 0.5, 1.0, 1.0e20, -2.0e20, math.SmallestNonzeroFloat64},
}

func Test_Binary_01(t *testing.T) {
	data, err := ToBytes(&testFile)
	assert.True(t, err == nil)
	//
	file, err := FromBytes(data)
	assert.True(t, err == nil)
	//
	if diff := cmp.Diff(&testFile, file); diff != "" {
		t.Errorf("table file mismatch (-want +got):\n%s", diff)
	}
}

func Test_Binary_02(t *testing.T) {
	data, err := ToBytes(&File{})
	assert.True(t, err == nil)
	//
	file, err := FromBytes(data)
	assert.True(t, err == nil)
	assert.Equal(t, 0, len(file.Tab))
	assert.Equal(t, 0, len(file.TabDims))
}

func Test_Binary_03(t *testing.T) {
	data, _ := ToBytes(&testFile)
	// Layout: identifier, versions, metadata, then records
	assert.True(t, bytes.HasPrefix(data, PROPTAB[:]))
	assert.True(t, bytes.Contains(data, []byte("TABDIMS ")))
	assert.True(t, bytes.Contains(data, []byte("TAB     ")))
	// Truncated files are rejected
	for _, n := range []int{4, 20, len(data) - 1} {
		if _, err := FromBytes(data[:n]); err == nil {
			t.Errorf("expected error for file truncated to %d bytes", n)
		}
	}
}

func Test_Binary_04(t *testing.T) {
	data, _ := ToBytes(&testFile)
	// Incompatible major version
	data[9] = byte(MAJOR_VERSION + 1)
	//
	_, err := FromBytes(data)
	assert.True(t, err != nil && strings.Contains(err.Error(), "incompatible"))
}

func Test_Header_01(t *testing.T) {
	header, err := NewHeader(Metadata{"CASE", "LAB"})
	assert.True(t, err == nil)
	assert.True(t, header.IsCompatible())
	//
	data, _ := header.MarshalBinary()
	//
	var other Header
	//
	assert.True(t, other.UnmarshalBinary(bytes.NewReader(data)) == nil)
	//
	metadata, err := other.GetMetaData()
	assert.True(t, err == nil)
	assert.Equal(t, Metadata{"CASE", "LAB"}, metadata)
}

func Test_Json_01(t *testing.T) {
	str := ToJsonString(&testFile)
	//
	assert.True(t, strings.HasPrefix(str, `{"name": "SPE1", "units": "FIELD", "tabdims": [6, 1, 1`))
	assert.True(t, strings.Contains(str, "1e+20, -2e+20"))
	//
	file, err := FromJsonBytes([]byte(str))
	assert.True(t, err == nil)
	//
	if diff := cmp.Diff(&testFile, file); diff != "" {
		t.Errorf("table file mismatch (-want +got):\n%s", diff)
	}
}

func Test_Json_02(t *testing.T) {
	_, err := FromJsonBytes([]byte(`{"tab": [1, 2`))
	assert.True(t, err != nil)
}
