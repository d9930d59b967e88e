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
	"github.com/bgosztonyi/Impala/lib/scalar"
	"github.com/bgosztonyi/Impala/lib/types"
)

// family is the wire representation a column type is written with.
type family uint8

const (
	familyBool family = iota
	familyByte
	familyI16
	familyI32
	familyI64
	familyDouble
	familyString
)

var familyNames = [...]string{
	familyBool:   "bool",
	familyByte:   "byte",
	familyI16:    "i16",
	familyI32:    "i32",
	familyI64:    "i64",
	familyDouble: "double",
	familyString: "string",
}

func (f family) String() string {
	return familyNames[f]
}

func familyOf(t types.ColumnType) (family, error) {
	switch t.Type {
	case types.Null, types.Boolean:
		return familyBool, nil
	case types.TinyInt:
		return familyByte, nil
	case types.SmallInt:
		return familyI16, nil
	case types.Int:
		return familyI32, nil
	case types.BigInt:
		return familyI64, nil
	case types.Float, types.Double:
		return familyDouble, nil
	case types.Timestamp, types.String, types.Varchar, types.Char:
		return familyString, nil
	case types.Decimal:
		switch w := t.ByteSize(); w {
		case 4, 8, 16:
			return familyString, nil
		default:
			return 0, errno.NewError(errno.InvalidDecimalWidth, t, w)
		}
	default:
		return 0, errno.NewError(errno.UnsupportedDataType, t)
	}
}

// reader yields the converted value of row i for each family. The second
// result reports a null row.
type reader interface {
	boolAt(i int) (bool, bool, error)
	byteAt(i int) (int8, bool, error)
	i16At(i int) (int16, bool, error)
	i32At(i int) (int32, bool, error)
	i64At(i int) (int64, bool, error)
	doubleAt(i int) (float64, bool, error)
	stringAt(i int) (string, bool, error)
}

// scalarReader reads live engine values and renders the text families.
type scalarReader struct {
	src scalar.Source
	typ types.ColumnType
}

func (r *scalarReader) boolAt(i int) (bool, bool, error) {
	v := r.src.Value(i)
	return v.Bool(), v.IsNull(), nil
}

func (r *scalarReader) byteAt(i int) (int8, bool, error) {
	v := r.src.Value(i)
	return v.Int8(), v.IsNull(), nil
}

func (r *scalarReader) i16At(i int) (int16, bool, error) {
	v := r.src.Value(i)
	return v.Int16(), v.IsNull(), nil
}

func (r *scalarReader) i32At(i int) (int32, bool, error) {
	v := r.src.Value(i)
	return v.Int32(), v.IsNull(), nil
}

func (r *scalarReader) i64At(i int) (int64, bool, error) {
	v := r.src.Value(i)
	return v.Int64(), v.IsNull(), nil
}

func (r *scalarReader) doubleAt(i int) (float64, bool, error) {
	v := r.src.Value(i)
	return v.Float64(), v.IsNull(), nil
}

func (r *scalarReader) stringAt(i int) (string, bool, error) {
	v := r.src.Value(i)
	if v.IsNull() {
		return "", true, nil
	}

	switch r.typ.Type {
	case types.Timestamp:
		return types.FormatTimestamp(v.Timestamp()), false, nil
	case types.Char:
		return types.CharSlot(v.Bytes(), r.typ.Len), false, nil
	case types.Decimal:
		s, err := types.FormatDecimal(v.Bytes(), r.typ)
		return s, false, err
	default:
		return string(v.Bytes()), false, nil
	}
}

// columnValueReader reads pre-decoded values; the field of the column's
// family decides both the payload and the null flag.
type columnValueReader []*ColumnValue

func load[T any](p *T) (T, bool, error) {
	if p == nil {
		var zero T
		return zero, true, nil
	}
	return *p, false, nil
}

func (r columnValueReader) boolAt(i int) (bool, bool, error) {
	if r[i] == nil {
		return false, true, nil
	}
	return load(r[i].BoolVal)
}

func (r columnValueReader) byteAt(i int) (int8, bool, error) {
	if r[i] == nil {
		return 0, true, nil
	}
	return load(r[i].ByteVal)
}

func (r columnValueReader) i16At(i int) (int16, bool, error) {
	if r[i] == nil {
		return 0, true, nil
	}
	return load(r[i].ShortVal)
}

func (r columnValueReader) i32At(i int) (int32, bool, error) {
	if r[i] == nil {
		return 0, true, nil
	}
	return load(r[i].IntVal)
}

func (r columnValueReader) i64At(i int) (int64, bool, error) {
	if r[i] == nil {
		return 0, true, nil
	}
	return load(r[i].LongVal)
}

func (r columnValueReader) doubleAt(i int) (float64, bool, error) {
	if r[i] == nil {
		return 0, true, nil
	}
	return load(r[i].DoubleVal)
}

func (r columnValueReader) stringAt(i int) (string, bool, error) {
	if r[i] == nil {
		return "", true, nil
	}
	return load(r[i].StringVal)
}
