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
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/consensys/go-proptab/pkg/tabdims"
	"github.com/consensys/go-proptab/pkg/tables"
	"github.com/consensys/go-proptab/pkg/util"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [flags] deck_file",
	Short: "Inspect the table layout of a deck.",
	Long: `Linearise the tables of a (JSON) deck and print the TABDIMS directory, along
with the position and size of each block in the TAB vector.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		if err := runInspect(args[0], GetFlag(cmd, "strict"), os.Stdout, terminalWidth()); err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
	},
}

// Determine the width of the terminal attached to stdout, or 0 if there is no
// such terminal.
func terminalWidth() uint {
	fd := int(os.Stdout.Fd())
	//
	if term.IsTerminal(fd) {
		if width, _, err := term.GetSize(fd); err == nil && width > 0 {
			return uint(width)
		}
	}
	//
	return 0
}

func runInspect(filename string, strict bool, w io.Writer, width uint) error {
	d, tabs, err := readDeckFile(filename, strict)
	if err != nil {
		return err
	}
	//
	fmt.Fprintf(w, "%s (%s): %d elements in %d blocks\n\n", d.Name, d.Runspec.Units, len(tabs.Tab()),
		len(tabs.Blocks()))
	//
	printTabdims(w, tabs.TabDims(), width)
	fmt.Fprintln(w)
	printBlocks(w, tabs.Blocks(), width)
	//
	return nil
}

// Print all named TABDIMS entries.
func printTabdims(w io.Writer, dims []int32, width uint) {
	var named []int
	//
	for i := range dims {
		if tabdims.Name(i) != "" {
			named = append(named, i)
		}
	}
	//
	printer := util.NewTablePrinter(3, uint(len(named))+1)
	printer.SetRow(0, "Index", "TABDIMS", "Value")
	//
	for row, i := range named {
		printer.SetRow(uint(row)+1, strconv.Itoa(i), tabdims.Name(i), strconv.Itoa(int(dims[i])))
	}
	//
	if width > 0 {
		printer.SetMaxWidth(width)
	}
	//
	printer.Print(w)
}

// Print the block directory, with one-based start positions.
func printBlocks(w io.Writer, blocks []tables.Block, width uint) {
	printer := util.NewTablePrinter(4, uint(len(blocks))+1)
	printer.SetRow(0, "Block", "TABDIMS", "Start", "Size")
	//
	for row, b := range blocks {
		printer.SetRow(uint(row)+1, b.Name, tabdims.Name(b.Index), strconv.Itoa(b.Offset+1), strconv.Itoa(b.Size))
	}
	//
	if width > 0 {
		printer.SetMaxWidth(width)
	}
	//
	printer.Print(w)
}

//nolint:errcheck
func init() {
	rootCmd.AddCommand(inspectCmd)
}
