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
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib" // register pgx as a database/sql driver
)

// DefaultPostgresDSN is used when no DSN is given.
const DefaultPostgresDSN = "postgres://localhost/proptab?sslmode=disable"

var postgresDialect = dialect{
	driver:      "pgx",
	blob:        "BYTEA",
	placeholder: func(i int) string { return fmt.Sprintf("$%d", i) },
}

// OpenPostgres opens an archive held in a Postgres database.
func OpenPostgres(ctx context.Context, dsn string) (*Store, error) {
	if dsn == "" {
		dsn = DefaultPostgresDSN
	}
	//
	return open(ctx, postgresDialect, dsn)
}
