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
	"github.com/bgosztonyi/Impala/lib/errno"
	"github.com/bgosztonyi/Impala/lib/metrics"
	"github.com/bgosztonyi/Impala/lib/scalar"
	"github.com/bgosztonyi/Impala/lib/types"
)

func present[T any](v T, isNull bool) *T {
	if isNull {
		return nil
	}
	return &v
}

func toLegacy(r reader, i int, t types.ColumnType) (*TColumnValue, error) {
	fam, err := familyOf(t)
	if err != nil {
		return nil, err
	}

	var isNull bool
	cv := &TColumnValue{}
	switch fam {
	case familyBool:
		var v bool
		v, isNull, err = r.boolAt(i)
		cv.BoolVal = &TBoolValue{Value: present(v, isNull)}
	case familyByte:
		var v int8
		v, isNull, err = r.byteAt(i)
		cv.ByteVal = &TByteValue{Value: present(v, isNull)}
	case familyI16:
		var v int16
		v, isNull, err = r.i16At(i)
		cv.I16Val = &TI16Value{Value: present(v, isNull)}
	case familyI32:
		var v int32
		v, isNull, err = r.i32At(i)
		cv.I32Val = &TI32Value{Value: present(v, isNull)}
	case familyI64:
		var v int64
		v, isNull, err = r.i64At(i)
		cv.I64Val = &TI64Value{Value: present(v, isNull)}
	case familyDouble:
		var v float64
		v, isNull, err = r.doubleAt(i)
		cv.DoubleVal = &TDoubleValue{Value: present(v, isNull)}
	case familyString:
		var v string
		v, isNull, err = r.stringAt(i)
		cv.StringVal = &TStringValue{Value: present(v, isNull)}
	}
	if err != nil {
		return nil, err
	}

	nulls := 0
	if isNull {
		nulls = 1
	}
	metrics.Codec.AddRows(fam.String(), 1, nulls)
	return cv, nil
}

// ValueToLegacy converts one engine value into a V1-V5 tagged value.
// FLOAT is widened to double; DECIMAL, TIMESTAMP and the character types
// become strings; NULL_TYPE becomes a bool without a value.
func ValueToLegacy(v scalar.Value, t types.ColumnType) (*TColumnValue, error) {
	r := &scalarReader{src: scalar.Values{v}, typ: t}
	cv, err := toLegacy(r, 0, t)
	return cv, logFailure(t, err)
}

// ColumnValueToLegacy converts a pre-decoded value into a V1-V5 tagged value.
func ColumnValueToLegacy(v *ColumnValue, t types.ColumnType) (*TColumnValue, error) {
	cv, err := toLegacy(columnValueReader{v}, 0, t)
	return cv, logFailure(t, err)
}

// RowToLegacy converts one row, one value per schema column.
func RowToLegacy(row []scalar.Value, schema []types.ColumnType) (*TRow, error) {
	if len(row) != len(schema) {
		return nil, errno.NewError(errno.ColumnCountMismatch, len(schema), len(row))
	}

	out := &TRow{ColVals: make([]*TColumnValue, len(row))}
	for i := range row {
		cv, err := ValueToLegacy(row[i], schema[i])
		if err != nil {
			return nil, err
		}
		out.ColVals[i] = cv
	}
	return out, nil
}
