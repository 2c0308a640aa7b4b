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
package archive

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/consensys/go-proptab/pkg/tabfile"
)

// ErrNotFound is returned when no record exists for a given name.
var ErrNotFound = errors.New("record not found")

// Record is one archived conversion result.
type Record struct {
	// Case name, which uniquely identifies the record.
	Name string
	// Unit system of all values.
	Units   string
	TabDims []int32
	Tab     []float64
	Created time.Time
}

// dialect captures the differences between supported SQL backends.
type dialect struct {
	driver string
	// Column type for binary payloads
	blob string
	// Placeholder for the ith (one-based) query argument
	placeholder func(i int) string
}

// Store archives conversion results in a SQL database.  Each record is held
// as a single row, with TAB and TABDIMS encoded in the binary table file
// format.
type Store struct {
	db      *sql.DB
	dialect dialect
}

func open(ctx context.Context, d dialect, dsn string) (*Store, error) {
	db, err := sql.Open(d.driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", d.driver, err)
	}
	//
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping %s: %w", d.driver, err)
	}
	//
	ddl := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS property_tables (
		name TEXT PRIMARY KEY,
		units TEXT NOT NULL,
		payload %s NOT NULL,
		created TEXT NOT NULL
	)`, d.blob)
	//
	if _, err := db.ExecContext(ctx, ddl); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create property_tables table: %w", err)
	}
	//
	return &Store{db, d}, nil
}

// Put archives a record, replacing any existing record of the same name.
func (s *Store) Put(ctx context.Context, rec Record) error {
	payload, err := tabfile.ToBytes(&tabfile.File{
		Metadata: tabfile.Metadata{Name: rec.Name, Units: rec.Units},
		TabDims:  rec.TabDims,
		Tab:      rec.Tab,
	})
	//
	if err != nil {
		return fmt.Errorf("encode %s: %w", rec.Name, err)
	}
	//
	p := s.dialect.placeholder
	query := fmt.Sprintf(`INSERT INTO property_tables (name, units, payload, created) VALUES (%s, %s, %s, %s)
		ON CONFLICT (name) DO UPDATE SET units = excluded.units, payload = excluded.payload,
		created = excluded.created`, p(1), p(2), p(3), p(4))
	//
	created := rec.Created.UTC().Format(time.RFC3339Nano)
	//
	if _, err := s.db.ExecContext(ctx, query, rec.Name, rec.Units, payload, created); err != nil {
		return fmt.Errorf("insert %s: %w", rec.Name, err)
	}
	//
	return nil
}

// Get retrieves the record of a given name, or ErrNotFound.
func (s *Store) Get(ctx context.Context, name string) (Record, error) {
	var (
		rec     = Record{Name: name}
		payload []byte
		created string
	)
	//
	query := fmt.Sprintf(`SELECT units, payload, created FROM property_tables WHERE name = %s`,
		s.dialect.placeholder(1))
	err := s.db.QueryRowContext(ctx, query, name).Scan(&rec.Units, &payload, &created)
	//
	if errors.Is(err, sql.ErrNoRows) {
		return Record{}, fmt.Errorf("%w: %s", ErrNotFound, name)
	} else if err != nil {
		return Record{}, fmt.Errorf("select %s: %w", name, err)
	}
	//
	file, err := tabfile.FromBytes(payload)
	if err != nil {
		return Record{}, fmt.Errorf("decode %s: %w", name, err)
	}
	//
	if rec.Created, err = time.Parse(time.RFC3339Nano, created); err != nil {
		return Record{}, fmt.Errorf("decode %s: %w", name, err)
	}
	//
	rec.TabDims = file.TabDims
	rec.Tab = file.Tab

	return rec, nil
}

// List returns the names of all archived records in sorted order.
func (s *Store) List(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT name FROM property_tables ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("select names: %w", err)
	}
	//
	defer func() { _ = rows.Close() }()
	//
	var names []string
	//
	for rows.Next() {
		var name string
		//
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		//
		names = append(names, name)
	}
	//
	return names, rows.Err()
}

// Close releases the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}
