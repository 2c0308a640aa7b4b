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
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/consensys/go-proptab/pkg/archive"
	"github.com/consensys/go-proptab/pkg/archive/s3"
	"github.com/consensys/go-proptab/pkg/tabfile"
	"github.com/consensys/go-proptab/pkg/util"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var convertCmd = &cobra.Command{
	Use:   "convert [flags] deck_file",
	Short: "Convert the tables of a deck into TAB and TABDIMS vectors.",
	Long: `Linearise the saturation, PVT and density tables of a (JSON) deck, writing the
resulting TAB and TABDIMS vectors in JSON or binary form.  Optionally, the result
can be archived in an SQLite or PostgreSQL database and published to S3.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		cfg := convertConfigFromFlags(cmd)
		//
		if err := runConvert(cmd.Context(), args[0], cfg, os.Stdout); err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
	},
}

// convertConfig holds the options of a single conversion.
type convertConfig struct {
	strict bool
	// Output file, or stdout when empty.
	out string
	// Output format, either "json" or "bin".
	format          string
	archive         string
	postgres        string
	publish         string
	metricsTextfile string
}

func convertConfigFromFlags(cmd *cobra.Command) convertConfig {
	return convertConfig{
		strict:          GetFlag(cmd, "strict"),
		out:             GetString(cmd, "out"),
		format:          GetString(cmd, "format"),
		archive:         GetString(cmd, "archive"),
		postgres:        GetString(cmd, "postgres"),
		publish:         GetString(cmd, "publish"),
		metricsTextfile: GetString(cmd, "metrics-textfile"),
	}
}

func runConvert(ctx context.Context, filename string, cfg convertConfig, stdout io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	//
	stats := util.NewPerfStats()
	//
	d, tabs, err := readDeckFile(filename, cfg.strict)
	if err != nil {
		return err
	}
	//
	file := &tabfile.File{
		Metadata: tabfile.Metadata{Name: d.Name, Units: d.Runspec.Units},
		TabDims:  tabs.TabDims(),
		Tab:      tabs.Tab(),
	}
	//
	payload, contentType, err := encodeFile(file, cfg.format)
	if err != nil {
		return err
	}
	//
	if cfg.out == "" {
		_, err = stdout.Write(payload)
	} else {
		err = os.WriteFile(cfg.out, payload, 0644)
	}
	//
	if err != nil {
		return err
	}
	//
	record := archive.Record{Name: d.Name, Units: d.Runspec.Units, TabDims: file.TabDims, Tab: file.Tab,
		Created: time.Now()}
	//
	if cfg.archive != "" {
		if err := archiveRecord(ctx, record, func() (*archive.Store, error) {
			return archive.OpenSQLite(ctx, cfg.archive)
		}); err != nil {
			return err
		}
	}
	//
	if cfg.postgres != "" {
		if err := archiveRecord(ctx, record, func() (*archive.Store, error) {
			return archive.OpenPostgres(ctx, cfg.postgres)
		}); err != nil {
			return err
		}
	}
	//
	if cfg.publish != "" {
		if err := publish(ctx, cfg.publish, payload, contentType); err != nil {
			return err
		}
	}
	//
	if cfg.metricsTextfile != "" {
		metrics := newConversionMetrics()
		metrics.Observe(tabs)
		//
		if err := metrics.WriteTextfile(cfg.metricsTextfile); err != nil {
			return err
		}
	}
	//
	stats.Log("Converting deck")
	//
	return nil
}

// Encode a table file in the given format, returning the encoded bytes and
// their content type.
func encodeFile(file *tabfile.File, format string) ([]byte, string, error) {
	switch format {
	case "", "json":
		return []byte(tabfile.ToJsonString(file)), "application/json", nil
	case "bin":
		data, err := tabfile.ToBytes(file)
		return data, "application/octet-stream", err
	default:
		return nil, "", fmt.Errorf("unknown output format %q", format)
	}
}

func archiveRecord(ctx context.Context, record archive.Record, open func() (*archive.Store, error)) error {
	store, err := open()
	if err != nil {
		return err
	}
	//
	defer store.Close()
	//
	if err := store.Put(ctx, record); err != nil {
		return err
	}
	//
	log.Infof("archived %s", record.Name)
	//
	return nil
}

func publish(ctx context.Context, key string, payload []byte, contentType string) error {
	cfg, err := s3.ConfigFromEnv()
	if err != nil {
		return err
	}
	//
	publisher, err := s3.New(ctx, cfg)
	if err != nil {
		return err
	}
	//
	fullKey, err := publisher.Publish(ctx, key, payload, contentType)
	if err != nil {
		return err
	}
	//
	log.Infof("published s3://%s/%s", cfg.Bucket, fullKey)
	//
	return nil
}

//nolint:errcheck
func init() {
	rootCmd.AddCommand(convertCmd)
	convertCmd.Flags().StringP("out", "o", "", "write output to this file (default stdout)")
	convertCmd.Flags().String("format", "json", "output format (json or bin)")
	convertCmd.Flags().String("archive", "", "archive the result in this SQLite database")
	convertCmd.Flags().String("postgres", "", "archive the result in the PostgreSQL database with this DSN")
	convertCmd.Flags().String("publish", "", "publish the result to S3 under this key (see PROPTAB_S3_*)")
	convertCmd.Flags().String("metrics-textfile", "", "write conversion metrics to this file")
}
