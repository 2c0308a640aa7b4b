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
package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/consensys/go-proptab/pkg/archive"
	"github.com/consensys/go-proptab/pkg/tabdims"
	"github.com/consensys/go-proptab/pkg/tabfile"
	"github.com/consensys/go-proptab/pkg/util/assert"
)

const goDeck = `{
	"name": "GO",
	"units": "FIELD",
	"phases": {"oil": true, "gas": true},
	"tabdims": {"nssfun": 4, "nppvt": 3},
	"tables": {
		"SGOF": [{
			"sg": [0.0, 0.25, 0.5, 0.75],
			"krg": [0.0, 0.125, 0.5, 1.0],
			"krog": [1.0, 0.5, 0.125, 0.0],
			"pcog": [0.0, 1.0, 2.0, 4.0]
		}],
		"PVDG": [{"pg": [14.7, 500, 1000], "bg": [200, 5, 2.5], "mug": [0.01, 0.015, 0.02]}],
		"PVDO": [{"po": [14.7, 500, 1000], "bo": [1.05, 1.04, 1.03], "muo": [2.0, 2.5, 3.0]}],
		"DENSITY": [{"oil": 53.0, "water": 64.0, "gas": 0.05}]
	}
}`

func Test_Convert_01(t *testing.T) {
	var out bytes.Buffer
	//
	filename := check_DeckFile(t, goDeck)
	err := runConvert(context.Background(), filename, convertConfig{format: "json"}, &out)
	assert.True(t, err == nil, "convert failed: %v", err)
	//
	file, err := tabfile.FromJsonBytes(out.Bytes())
	assert.True(t, err == nil, "unexpected error: %v", err)
	assert.Equal(t, "GO", file.Metadata.Name)
	assert.Equal(t, "FIELD", file.Metadata.Units)
	assert.Equal(t, int(file.TabDims[tabdims.TabSize]), len(file.Tab))
	assert.AllNear(t, []float64{53.0, 64.0, 0.05}, file.Tab[0:3], 1e-9)
}

func Test_Convert_02(t *testing.T) {
	dir := t.TempDir()
	cfg := convertConfig{
		format:          "bin",
		out:             filepath.Join(dir, "go.bin"),
		archive:         filepath.Join(dir, "archive.db"),
		metricsTextfile: filepath.Join(dir, "proptab.prom"),
	}
	//
	err := runConvert(context.Background(), check_DeckFile(t, goDeck), cfg, nil)
	assert.True(t, err == nil, "convert failed: %v", err)
	// Binary output
	data, err := os.ReadFile(cfg.out)
	assert.True(t, err == nil)
	file, err := tabfile.FromBytes(data)
	assert.True(t, err == nil, "unexpected error: %v", err)
	assert.Equal(t, "GO", file.Metadata.Name)
	// Archive
	store, err := archive.OpenSQLite(context.Background(), cfg.archive)
	assert.True(t, err == nil, "unexpected error: %v", err)
	//
	defer store.Close()
	//
	rec, err := store.Get(context.Background(), "GO")
	assert.True(t, err == nil, "unexpected error: %v", err)
	assert.Equal(t, file.Tab, rec.Tab)
	assert.Equal(t, file.TabDims, rec.TabDims)
	// Metrics
	metrics, err := os.ReadFile(cfg.metricsTextfile)
	assert.True(t, err == nil)
	assert.True(t, strings.Contains(string(metrics), "proptab_blocks_total{block=\"PVDG\"} 1"))
	assert.True(t, strings.Contains(string(metrics), "proptab_tab_elements"))
}

func Test_Convert_03(t *testing.T) {
	err := runConvert(context.Background(), check_DeckFile(t, goDeck), convertConfig{format: "xml"}, &bytes.Buffer{})
	assert.True(t, err != nil && strings.Contains(err.Error(), "xml"))
}

func Test_Convert_04(t *testing.T) {
	// Strict mode rejects a deck without gas PVT tables
	deck := strings.Replace(goDeck, `"PVDG": [{"pg": [14.7, 500, 1000], "bg": [200, 5, 2.5], "mug": [0.01, 0.015, 0.02]}],`,
		"", 1)
	filename := check_DeckFile(t, deck)
	//
	err := runConvert(context.Background(), filename, convertConfig{strict: true}, &bytes.Buffer{})
	assert.True(t, err != nil && strings.Contains(err.Error(), "gas PVT"), "unexpected error: %v", err)
	//
	err = runConvert(context.Background(), filename, convertConfig{}, &bytes.Buffer{})
	assert.True(t, err == nil, "unexpected error: %v", err)
}

func Test_Convert_05(t *testing.T) {
	err := runConvert(context.Background(), filepath.Join(t.TempDir(), "missing.json"), convertConfig{}, nil)
	assert.True(t, err != nil)
}

func Test_Inspect_01(t *testing.T) {
	var out bytes.Buffer
	//
	err := runInspect(check_DeckFile(t, goDeck), false, &out, 0)
	assert.True(t, err == nil, "inspect failed: %v", err)
	//
	text := out.String()
	assert.True(t, strings.HasPrefix(text, "GO (FIELD): "))
	//
	for _, block := range []string{"DENSITY", "PVDG", "PVDO", "SGFN", "SOFN"} {
		assert.True(t, strings.Contains(text, " "+block+" |"), "missing block %s", block)
	}
}

func Test_Metrics_01(t *testing.T) {
	_, tabs, err := readDeckFile(check_DeckFile(t, goDeck), true)
	assert.True(t, err == nil, "unexpected error: %v", err)
	//
	filename := filepath.Join(t.TempDir(), "metrics.prom")
	metrics := newConversionMetrics()
	metrics.Observe(tabs)
	assert.True(t, metrics.WriteTextfile(filename) == nil)
	//
	data, err := os.ReadFile(filename)
	assert.True(t, err == nil)
	assert.True(t, strings.Contains(string(data), "proptab_block_elements{block=\"DENSITY\"} 3"))
}

// ===================================================================
// Test Helpers
// ===================================================================

func check_DeckFile(t *testing.T, contents string) string {
	t.Helper()
	//
	filename := filepath.Join(t.TempDir(), "deck.json")
	//
	if err := os.WriteFile(filename, []byte(contents), 0644); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	//
	return filename
}
