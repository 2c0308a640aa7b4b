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
	"fmt"
	"io"
)

// File is an in-memory table file, holding the TABDIMS and TAB vectors of a
// single run.
type File struct {
	Metadata Metadata
	TabDims  []int32
	Tab      []float64
}

// Record keywords, padded to eight characters.
var (
	tabdimsKeyword = [8]byte{'T', 'A', 'B', 'D', 'I', 'M', 'S', ' '}
	tabKeyword     = [8]byte{'T', 'A', 'B', ' ', ' ', ' ', ' ', ' '}
)

// ToBytes writes a given table file into a byte array.
func ToBytes(file *File) ([]byte, error) {
	var buf bytes.Buffer
	//
	if err := WriteBytes(file, &buf); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// WriteBytes writes a given table file to an io.Writer.  This consists of a
// header, followed by a TABDIMS record and a TAB record.  Each record is an
// eight character keyword, an element count and the elements themselves, all
// big endian.
func WriteBytes(file *File, w io.Writer) error {
	header, err := NewHeader(file.Metadata)
	if err != nil {
		return err
	}
	//
	headerBytes, err := header.MarshalBinary()
	if err != nil {
		return err
	}
	//
	if _, err := w.Write(headerBytes); err != nil {
		return err
	}
	//
	if err := writeRecord(w, tabdimsKeyword, file.TabDims); err != nil {
		return err
	}
	//
	return writeRecord(w, tabKeyword, file.Tab)
}

func writeRecord[T int32 | float64](w io.Writer, keyword [8]byte, data []T) error {
	if _, err := w.Write(keyword[:]); err != nil {
		return err
	}
	//
	if err := binary.Write(w, binary.BigEndian, uint32(len(data))); err != nil {
		return err
	}
	//
	return binary.Write(w, binary.BigEndian, data)
}

// FromBytes parses a byte array representing a binary table file, or produces
// an error if the file was malformed in some way.
func FromBytes(data []byte) (*File, error) {
	var (
		header Header
		file   File
		buf    = bytes.NewReader(data)
		err    error
	)
	//
	if err = header.UnmarshalBinary(buf); err != nil {
		return nil, err
	} else if !header.IsCompatible() {
		return nil, fmt.Errorf("incompatible table file (v%d.%d)", header.MajorVersion, header.MinorVersion)
	}
	//
	if file.Metadata, err = header.GetMetaData(); err != nil {
		return nil, err
	}
	//
	if file.TabDims, err = readRecord[int32](buf, tabdimsKeyword); err != nil {
		return nil, err
	}
	//
	if file.Tab, err = readRecord[float64](buf, tabKeyword); err != nil {
		return nil, err
	}
	//
	return &file, nil
}

func readRecord[T int32 | float64](buf *bytes.Reader, keyword [8]byte) ([]T, error) {
	var (
		actual [8]byte
		n      uint32
	)
	//
	if _, err := io.ReadFull(buf, actual[:]); err != nil {
		return nil, errMalformed
	} else if actual != keyword {
		return nil, fmt.Errorf("expected record %q, found %q", keyword[:], actual[:])
	}
	//
	if err := binary.Read(buf, binary.BigEndian, &n); err != nil {
		return nil, errMalformed
	}
	// Sanity check length before allocating
	if uint64(n)*uint64(binary.Size(T(0))) > uint64(buf.Len()) {
		return nil, errMalformed
	}
	//
	data := make([]T, n)
	//
	if err := binary.Read(buf, binary.BigEndian, data); err != nil {
		return nil, errMalformed
	}
	//
	return data, nil
}
