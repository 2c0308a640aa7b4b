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
package tables

import (
	"fmt"
	"strings"
)

// ConfigurationError is a structured error reported when the tables given for
// some quantity do not identify exactly one way of producing it.  For example,
// a deck specifying both SGOF and SGFN tables, or a live oil deck with both
// PVTO and PVDO tables.
type ConfigurationError struct {
	// Quantity which could not be produced (e.g. "saturation functions").
	quantity string
	// Keywords found for this quantity, which is empty if none were found.
	keywords []string
}

// NewConfigurationError constructs a new configuration error.
func NewConfigurationError(quantity string, keywords ...string) *ConfigurationError {
	return &ConfigurationError{quantity, keywords}
}

// Quantity returns the quantity which could not be produced.
func (p *ConfigurationError) Quantity() string {
	return p.quantity
}

// Keywords returns the conflicting keywords, if any.
func (p *ConfigurationError) Keywords() []string {
	return p.keywords
}

// Error implements the error interface.
func (p *ConfigurationError) Error() string {
	if len(p.keywords) == 0 {
		return fmt.Sprintf("no tables for %s", p.quantity)
	}
	//
	return fmt.Sprintf("ambiguous tables for %s (%s)", p.quantity, strings.Join(p.keywords, ", "))
}
