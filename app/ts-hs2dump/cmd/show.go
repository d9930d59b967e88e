/*
Copyright 2022 Huawei Cloud Computing Technologies Co., Ltd.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

 http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package cmd

import (
	"fmt"
	"io"
	"os"
	"path"
	"strconv"

	"github.com/bgosztonyi/Impala/lib/bitmap"
	"github.com/bgosztonyi/Impala/lib/hs2"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var (
	limit int

	showCmd = &cobra.Command{
		Use:   "show <snapshot>",
		Short: "print the rows of a row set snapshot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rs, err := readSnapshot(args[0])
			if err != nil {
				return err
			}
			writeRows(cmd.OutOrStdout(), rs, limit)
			return nil
		},
	}

	statCmd = &cobra.Command{
		Use:   "stat <snapshot>",
		Short: "print the layout of a row set snapshot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rs, err := readSnapshot(args[0])
			if err != nil {
				return err
			}
			writeStat(cmd.OutOrStdout(), rs)
			return nil
		},
	}
)

func init() {
	showCmd.Flags().IntVar(&limit, "limit", 0, "print at most this many rows, 0 prints all.")
}

func readSnapshot(file string) (*hs2.TRowSet, error) {
	buf, err := os.ReadFile(path.Clean(file))
	if err != nil {
		return nil, err
	}
	return hs2.UnmarshalRowSet(buf)
}

func numRows(rs *hs2.TRowSet) int {
	if len(rs.Columns) > 0 {
		return rs.Columns[0].Len()
	}
	return len(rs.Rows)
}

func numColumns(rs *hs2.TRowSet) int {
	if len(rs.Columns) > 0 {
		return len(rs.Columns)
	}
	if len(rs.Rows) > 0 {
		return len(rs.Rows[0].ColVals)
	}
	return 0
}

func writeRows(w io.Writer, rs *hs2.TRowSet, limit int) {
	rows, cols := numRows(rs), numColumns(rs)
	if limit > 0 && limit < rows {
		rows = limit
	}

	header := make([]string, 0, cols+1)
	header = append(header, "row")
	for i := 0; i < cols; i++ {
		header = append(header, "c"+strconv.Itoa(i))
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	for r := 0; r < rows; r++ {
		line := make([]string, 0, cols+1)
		line = append(line, strconv.FormatInt(rs.StartRowOffset+int64(r), 10))
		if len(rs.Columns) > 0 {
			for _, c := range rs.Columns {
				line = append(line, hs2.PrintColumnRow(c, r))
			}
		} else {
			for _, v := range rs.Rows[r].ColVals {
				line = append(line, hs2.PrintTColumnValue(v))
			}
		}
		table.Append(line)
	}
	table.Render()
}

// columnKind names the set variant of c.
func columnKind(c *hs2.TColumn) string {
	switch {
	case c == nil:
		return "unset"
	case c.BoolVal != nil:
		return "bool"
	case c.ByteVal != nil:
		return "byte"
	case c.I16Val != nil:
		return "i16"
	case c.I32Val != nil:
		return "i32"
	case c.I64Val != nil:
		return "i64"
	case c.DoubleVal != nil:
		return "double"
	case c.StringVal != nil:
		return "string"
	}
	return "unset"
}

func writeStat(w io.Writer, rs *hs2.TRowSet) {
	rows := numRows(rs)
	layout := "columnar"
	if len(rs.Columns) == 0 {
		layout = "row"
	}
	fmt.Fprintf(w, "layout: %s\nstart row offset: %d\nrows: %d\ncolumns: %d\n",
		layout, rs.StartRowOffset, rows, numColumns(rs))

	if len(rs.Columns) == 0 {
		return
	}
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"column", "type", "nulls", "null bitmap bytes"})
	for i, c := range rs.Columns {
		table.Append([]string{
			"c" + strconv.Itoa(i),
			columnKind(c),
			strconv.Itoa(bitmap.NullCount(c.NullBitmap(), rows)),
			strconv.Itoa(len(c.NullBitmap())),
		})
	}
	table.Render()
}
