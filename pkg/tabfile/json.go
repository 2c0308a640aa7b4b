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
	"encoding/json"
	"strconv"
	"strings"
)

// ToJsonString converts a table file into a JSON string.  For example,
// {"name": "CASE", "units": "METRIC", "tabdims": [6, ...], "tab": [0.1, ...]}.
func ToJsonString(file *File) string {
	var builder strings.Builder
	//
	builder.WriteString("{\"name\": ")
	builder.WriteString(strconv.Quote(file.Metadata.Name))
	builder.WriteString(", \"units\": ")
	builder.WriteString(strconv.Quote(file.Metadata.Units))
	builder.WriteString(", \"tabdims\": [")
	//
	for i, v := range file.TabDims {
		if i != 0 {
			builder.WriteString(", ")
		}

		builder.WriteString(strconv.FormatInt(int64(v), 10))
	}
	//
	builder.WriteString("], \"tab\": [")
	//
	for i, v := range file.Tab {
		if i != 0 {
			builder.WriteString(", ")
		}

		builder.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
	}
	//
	builder.WriteString("]}")
	// Done
	return builder.String()
}

// FromJsonBytes parses a table file expressed in JSON notation, as produced
// by ToJsonString.
func FromJsonBytes(data []byte) (*File, error) {
	var raw struct {
		Name    string    `json:"name"`
		Units   string    `json:"units"`
		TabDims []int32   `json:"tabdims"`
		Tab     []float64 `json:"tab"`
	}
	//
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	//
	return &File{Metadata{raw.Name, raw.Units}, raw.TabDims, raw.Tab}, nil
}
