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
	"encoding/binary"
	"encoding/json"
	"errors"
	"io"
)

// PROPTAB is the identifier at the start of every binary table file.
var PROPTAB = [8]byte{'p', 'r', 'o', 'p', 't', 'a', 'b', 0}

// MAJOR_VERSION of binary table files supported by this package.  Files with a
// different major version cannot be read.
const MAJOR_VERSION uint16 = 1

// MINOR_VERSION of binary table files written by this package.  Files with a
// lower or equal minor version can be read.
const MINOR_VERSION uint16 = 0

var errMalformed = errors.New("malformed table file")

// Metadata describes the run from which a table file was produced.
type Metadata struct {
	// Case name of the deck.
	Name string `json:"name"`
	// Unit system in which all values are expressed.
	Units string `json:"units"`
}

// Header provides a structured header for the binary file format.  In
// particular, it supports versioning and embedded (JSON) metadata.
type Header struct {
	Identifier   [8]byte
	MajorVersion uint16
	MinorVersion uint16
	MetaData     []byte
}

// NewHeader constructs a header for the current file format version.
func NewHeader(metadata Metadata) (Header, error) {
	data, err := json.Marshal(metadata)
	//
	if err != nil {
		return Header{}, err
	}
	//
	return Header{PROPTAB, MAJOR_VERSION, MINOR_VERSION, data}, nil
}

// GetMetaData parses the metadata bytes of this header.  An empty metadata
// section yields empty metadata.
func (p *Header) GetMetaData() (Metadata, error) {
	var metadata Metadata
	//
	if len(p.MetaData) == 0 {
		return metadata, nil
	}
	//
	err := json.Unmarshal(p.MetaData, &metadata)
	//
	return metadata, err
}

// MarshalBinary converts the header into a sequence of bytes.
func (p *Header) MarshalBinary() ([]byte, error) {
	var (
		buffer     bytes.Buffer
		majorBytes [2]byte
		minorBytes [2]byte
		metaLength [4]byte
	)
	// Marshall version numbers
	binary.BigEndian.PutUint16(majorBytes[:], p.MajorVersion)
	binary.BigEndian.PutUint16(minorBytes[:], p.MinorVersion)
	binary.BigEndian.PutUint32(metaLength[:], uint32(len(p.MetaData)))
	// Write identifier
	buffer.Write(p.Identifier[:])
	buffer.Write(majorBytes[:])
	buffer.Write(minorBytes[:])
	buffer.Write(metaLength[:])
	buffer.Write(p.MetaData)
	// Done
	return buffer.Bytes(), nil
}

// UnmarshalBinary initialises this header from a reader.  This should match
// exactly the encoding above.
func (p *Header) UnmarshalBinary(r io.Reader) error {
	var (
		majorBytes      [2]byte
		minorBytes      [2]byte
		metaLengthBytes [4]byte
	)
	//
	for _, field := range [][]byte{p.Identifier[:], majorBytes[:], minorBytes[:], metaLengthBytes[:]} {
		if _, err := io.ReadFull(r, field); err != nil {
			return errMalformed
		}
	}
	// Read metadata itself
	metaBytes := make([]byte, binary.BigEndian.Uint32(metaLengthBytes[:]))
	//
	if _, err := io.ReadFull(r, metaBytes); err != nil {
		return errMalformed
	}
	// Finally assign everything over
	p.MajorVersion = binary.BigEndian.Uint16(majorBytes[:])
	p.MinorVersion = binary.BigEndian.Uint16(minorBytes[:])
	p.MetaData = metaBytes
	//
	return nil
}

// IsCompatible determines whether a given binary file can be read by this
// version of the package.
func (p *Header) IsCompatible() bool {
	return p.Identifier == PROPTAB &&
		p.MajorVersion == MAJOR_VERSION &&
		p.MinorVersion <= MINOR_VERSION
}
