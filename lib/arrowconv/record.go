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

// Package arrowconv exports columnar HiveServer2 row sets as Arrow records.
package arrowconv

import (
	"fmt"

	"github.com/apache/arrow/go/v13/arrow"
	"github.com/apache/arrow/go/v13/arrow/array"
	"github.com/apache/arrow/go/v13/arrow/memory"
	"github.com/bgosztonyi/Impala/lib/bitmap"
	"github.com/bgosztonyi/Impala/lib/errno"
	"github.com/bgosztonyi/Impala/lib/hs2"
	"github.com/bgosztonyi/Impala/lib/types"
)

// ArrowType returns the Arrow type of the wire family t is sent with.
func ArrowType(t types.ColumnType) (arrow.DataType, error) {
	switch t.Type {
	case types.Null, types.Boolean:
		return arrow.FixedWidthTypes.Boolean, nil
	case types.TinyInt:
		return arrow.PrimitiveTypes.Int8, nil
	case types.SmallInt:
		return arrow.PrimitiveTypes.Int16, nil
	case types.Int:
		return arrow.PrimitiveTypes.Int32, nil
	case types.BigInt:
		return arrow.PrimitiveTypes.Int64, nil
	case types.Float, types.Double:
		return arrow.PrimitiveTypes.Float64, nil
	case types.Timestamp, types.String, types.Varchar, types.Char:
		return arrow.BinaryTypes.String, nil
	case types.Decimal:
		if t.ByteSize() == 0 {
			return nil, errno.NewError(errno.InvalidDecimalWidth, t, 0)
		}
		return arrow.BinaryTypes.String, nil
	}
	return nil, errno.NewError(errno.UnsupportedDataType, t)
}

func NewSchema(names []string, schema []types.ColumnType) (*arrow.Schema, error) {
	if len(names) != len(schema) {
		return nil, errno.NewError(errno.ColumnCountMismatch, len(schema), len(names))
	}

	fields := make([]arrow.Field, len(schema))
	for i, t := range schema {
		dt, err := ArrowType(t)
		if err != nil {
			return nil, err
		}
		fields[i] = arrow.Field{Name: names[i], Type: dt, Nullable: true}
	}
	return arrow.NewSchema(fields, nil), nil
}

// validity inverts a null bitmap into Arrow's per-row valid flags.
func validity(nulls []byte, rows int) []bool {
	valid := make([]bool, rows)
	for i := range valid {
		valid[i] = !bitmap.GetBit(nulls, i)
	}
	return valid
}

// ToRecord copies the columns of rs into a new Arrow record. The caller
// releases the record.
func ToRecord(names []string, schema []types.ColumnType, rs *hs2.TRowSet) (arrow.Record, error) {
	s, err := NewSchema(names, schema)
	if err != nil {
		return nil, err
	}
	if len(rs.Rows) > 0 {
		return nil, errno.NewError(errno.InvalidRowSet, "row oriented row set has no columns to export")
	}
	if len(rs.Columns) != len(schema) {
		return nil, errno.NewError(errno.ColumnCountMismatch, len(schema), len(rs.Columns))
	}

	rows := 0
	if len(rs.Columns) > 0 {
		rows = rs.Columns[0].Len()
	}
	for i, col := range rs.Columns {
		if col.Len() != rows {
			return nil, errno.NewError(errno.InvalidRowSet, fmt.Sprintf("column %d has %d rows, expected %d", i, col.Len(), rows))
		}
		if len(col.NullBitmap()) != bitmap.RequiredBytes(rows) {
			return nil, errno.NewError(errno.InvalidRowSet, fmt.Sprintf("column %d has a null bitmap of %d bytes", i, len(col.NullBitmap())))
		}
	}

	b := array.NewRecordBuilder(memory.DefaultAllocator, s)
	defer b.Release()

	if rows > 0 {
		for i, col := range rs.Columns {
			if err := appendColumn(b.Field(i), col, rows, names[i]); err != nil {
				return nil, err
			}
		}
	}
	return b.NewRecord(), nil
}

func appendColumn(fb array.Builder, col *hs2.TColumn, rows int, name string) error {
	valid := validity(col.NullBitmap(), rows)

	switch fb := fb.(type) {
	case *array.BooleanBuilder:
		if col.BoolVal != nil {
			fb.AppendValues(col.BoolVal.Values, valid)
			return nil
		}
	case *array.Int8Builder:
		if col.ByteVal != nil {
			fb.AppendValues(col.ByteVal.Values, valid)
			return nil
		}
	case *array.Int16Builder:
		if col.I16Val != nil {
			fb.AppendValues(col.I16Val.Values, valid)
			return nil
		}
	case *array.Int32Builder:
		if col.I32Val != nil {
			fb.AppendValues(col.I32Val.Values, valid)
			return nil
		}
	case *array.Int64Builder:
		if col.I64Val != nil {
			fb.AppendValues(col.I64Val.Values, valid)
			return nil
		}
	case *array.Float64Builder:
		if col.DoubleVal != nil {
			fb.AppendValues(col.DoubleVal.Values, valid)
			return nil
		}
	case *array.StringBuilder:
		if col.StringVal != nil {
			fb.AppendValues(col.StringVal.Values, valid)
			return nil
		}
	}
	return errno.NewError(errno.InvalidRowSet, fmt.Sprintf("column %s does not match arrow type %s", name, fb.Type()))
}
