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

package hs2

import (
	"fmt"

	"github.com/bgosztonyi/Impala/lib/errno"
	"github.com/bgosztonyi/Impala/lib/scalar"
	"github.com/bgosztonyi/Impala/lib/types"
)

// ResultSet accumulates the rows of one fetch in the layout of the
// negotiated protocol version. It is not safe for concurrent use.
type ResultSet struct {
	version ProtocolVersion
	schema  []types.ColumnType
	rowSet  *TRowSet
	numRows int
}

func NewResultSet(version ProtocolVersion, schema []types.ColumnType, startRowOffset int64) *ResultSet {
	rs := &ResultSet{
		version: version,
		schema:  schema,
		rowSet:  &TRowSet{StartRowOffset: startRowOffset},
	}
	if version.UsesColumnar() {
		rs.rowSet.Columns = make([]*TColumn, len(schema))
		for i := range rs.rowSet.Columns {
			rs.rowSet.Columns[i] = &TColumn{}
		}
	}
	return rs
}

func (rs *ResultSet) Version() ProtocolVersion {
	return rs.version
}

func (rs *ResultSet) Schema() []types.ColumnType {
	return rs.schema
}

// Size returns the number of rows added so far.
func (rs *ResultSet) Size() int {
	return rs.numRows
}

func (rs *ResultSet) TRowSet() *TRowSet {
	return rs.rowSet
}

// AddRows adds rows [start, start+count) of the column sources src, one
// source per schema column.
func (rs *ResultSet) AddRows(src []scalar.Source, start, count int) error {
	if len(src) != len(rs.schema) {
		return errno.NewError(errno.ColumnCountMismatch, len(rs.schema), len(src))
	}
	if count <= 0 {
		return nil
	}
	for i := range src {
		if start < 0 || src[i].Len() < start+count {
			return errno.NewError(errno.InvalidRowSet,
				fmt.Sprintf("column %d has %d rows, cannot read [%d, %d)", i, src[i].Len(), start, start+count))
		}
	}

	if rs.version.UsesColumnar() {
		for i := range src {
			err := AppendBatch(src[i], rs.schema[i], start, rs.numRows, count, rs.rowSet.Columns[i])
			if err != nil {
				return err
			}
		}
		rs.numRows += count
		return nil
	}

	row := make([]scalar.Value, len(src))
	for r := start; r < start+count; r++ {
		for i := range src {
			row[i] = src[i].Value(r)
		}
		if err := rs.AddOneRow(row); err != nil {
			return err
		}
	}
	return nil
}

// AddOneRow adds a single row, one value per schema column.
func (rs *ResultSet) AddOneRow(row []scalar.Value) error {
	if len(row) != len(rs.schema) {
		return errno.NewError(errno.ColumnCountMismatch, len(rs.schema), len(row))
	}

	if !rs.version.UsesColumnar() {
		tr, err := RowToLegacy(row, rs.schema)
		if err != nil {
			return err
		}
		rs.rowSet.Rows = append(rs.rowSet.Rows, tr)
		rs.numRows++
		return nil
	}

	for i := range row {
		if err := AppendValue(row[i], rs.schema[i], rs.numRows, rs.rowSet.Columns[i]); err != nil {
			return err
		}
	}
	rs.numRows++
	return nil
}

// AddRowsFrom copies up to count rows of other, starting at start, and
// returns how many rows were copied. Both sets must share schema and layout.
func (rs *ResultSet) AddRowsFrom(other *ResultSet, start, count int) (n int, err error) {
	if rs.version.UsesColumnar() != other.version.UsesColumnar() {
		return 0, errno.NewError(errno.InvalidRowSet,
			fmt.Sprintf("cannot copy %s rows into %s result set", other.version, rs.version))
	}
	if len(other.schema) != len(rs.schema) {
		return 0, errno.NewError(errno.ColumnCountMismatch, len(rs.schema), len(other.schema))
	}

	if count > other.numRows-start {
		count = other.numRows - start
	}
	if start < 0 || count <= 0 {
		return 0, nil
	}
	if err := rs.checkStitch(other); err != nil {
		return 0, err
	}

	if !rs.version.UsesColumnar() {
		rs.rowSet.Rows = append(rs.rowSet.Rows, other.rowSet.Rows[start:start+count]...)
		rs.numRows += count
		return count, nil
	}

	defer func() {
		if r := recover(); r != nil {
			n, err = 0, errno.Recovered(r, errno.ModuleCodec)
		}
	}()
	for i, col := range rs.rowSet.Columns {
		stitchColumn(col, other.rowSet.Columns[i], rs.numRows, start, count)
	}
	rs.numRows += count
	return count, nil
}

// checkStitch verifies, before any column is touched, that every column of
// other is written with the same family and that both sides hold the row
// counts they report.
func (rs *ResultSet) checkStitch(other *ResultSet) error {
	for i := range rs.schema {
		dstFam, err := familyOf(rs.schema[i])
		if err != nil {
			return err
		}
		srcFam, err := familyOf(other.schema[i])
		if err != nil {
			return err
		}
		if dstFam != srcFam {
			return errno.NewError(errno.InvalidRowSet,
				fmt.Sprintf("column %d: cannot copy %s rows into %s column", i, other.schema[i], rs.schema[i]))
		}
	}

	if !rs.version.UsesColumnar() {
		return nil
	}
	for i, col := range rs.rowSet.Columns {
		if n := col.Len(); n != rs.numRows {
			return errno.NewError(errno.InvalidRowSet, fmt.Sprintf("column %d holds %d rows, expected %d", i, n, rs.numRows))
		}
		if n := other.rowSet.Columns[i].Len(); n != other.numRows {
			return errno.NewError(errno.InvalidRowSet, fmt.Sprintf("source column %d holds %d rows, expected %d", i, n, other.numRows))
		}
	}
	return nil
}

// ByteSize estimates the memory held by the accumulated rows.
func (rs *ResultSet) ByteSize() int64 {
	var size int64
	for _, c := range rs.rowSet.Columns {
		size += columnByteSize(c)
	}
	for _, r := range rs.rowSet.Rows {
		for _, v := range r.ColVals {
			size += valueByteSize(v)
		}
	}
	return size
}

func columnByteSize(c *TColumn) int64 {
	n := int64(c.Len())
	size := int64(len(c.NullBitmap()))
	switch {
	case c.BoolVal != nil, c.ByteVal != nil:
		size += n
	case c.I16Val != nil:
		size += 2 * n
	case c.I32Val != nil:
		size += 4 * n
	case c.I64Val != nil, c.DoubleVal != nil:
		size += 8 * n
	case c.StringVal != nil:
		for _, s := range c.StringVal.Values {
			size += int64(len(s))
		}
	}
	return size
}

func valueByteSize(v *TColumnValue) int64 {
	switch {
	case v.IsSetBoolVal(), v.IsSetByteVal():
		return 1
	case v.IsSetI16Val():
		return 2
	case v.IsSetI32Val():
		return 4
	case v.IsSetI64Val(), v.IsSetDoubleVal():
		return 8
	case v.IsSetStringVal() && v.StringVal.Value != nil:
		return int64(len(*v.StringVal.Value))
	}
	return 0
}
