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

// Package hs2 converts engine result rows into the HiveServer2 wire model:
// one tagged value per row and column for protocol V1-V5, and one value
// array plus one null bitmap per column from V6 on.
package hs2

// Legacy (row oriented) values. Each wrapper holds its payload behind a
// pointer; a nil Value is a SQL NULL.

type TBoolValue struct {
	Value *bool
}

type TByteValue struct {
	Value *int8
}

type TI16Value struct {
	Value *int16
}

type TI32Value struct {
	Value *int32
}

type TI64Value struct {
	Value *int64
}

type TDoubleValue struct {
	Value *float64
}

type TStringValue struct {
	Value *string
}

// TColumnValue is a union; exactly one field is set.
type TColumnValue struct {
	BoolVal   *TBoolValue
	ByteVal   *TByteValue
	I16Val    *TI16Value
	I32Val    *TI32Value
	I64Val    *TI64Value
	DoubleVal *TDoubleValue
	StringVal *TStringValue
}

func (v *TColumnValue) IsSetBoolVal() bool {
	return v != nil && v.BoolVal != nil
}

func (v *TColumnValue) IsSetByteVal() bool {
	return v != nil && v.ByteVal != nil
}

func (v *TColumnValue) IsSetI16Val() bool {
	return v != nil && v.I16Val != nil
}

func (v *TColumnValue) IsSetI32Val() bool {
	return v != nil && v.I32Val != nil
}

func (v *TColumnValue) IsSetI64Val() bool {
	return v != nil && v.I64Val != nil
}

func (v *TColumnValue) IsSetDoubleVal() bool {
	return v != nil && v.DoubleVal != nil
}

func (v *TColumnValue) IsSetStringVal() bool {
	return v != nil && v.StringVal != nil
}

type TRow struct {
	ColVals []*TColumnValue
}

// Columnar values. Values has one entry per row, null rows included;
// Nulls is the LSB-first null bitmap covering the same rows.

type TBoolColumn struct {
	Values []bool
	Nulls  []byte
}

type TByteColumn struct {
	Values []int8
	Nulls  []byte
}

type TI16Column struct {
	Values []int16
	Nulls  []byte
}

type TI32Column struct {
	Values []int32
	Nulls  []byte
}

type TI64Column struct {
	Values []int64
	Nulls  []byte
}

type TDoubleColumn struct {
	Values []float64
	Nulls  []byte
}

type TStringColumn struct {
	Values []string
	Nulls  []byte
}

// TColumn is a union; the field matching the column's family is set by the
// first append.
type TColumn struct {
	BoolVal   *TBoolColumn
	ByteVal   *TByteColumn
	I16Val    *TI16Column
	I32Val    *TI32Column
	I64Val    *TI64Column
	DoubleVal *TDoubleColumn
	StringVal *TStringColumn
}

// Len returns the number of rows held by the set variant.
func (c *TColumn) Len() int {
	switch {
	case c == nil:
		return 0
	case c.BoolVal != nil:
		return len(c.BoolVal.Values)
	case c.ByteVal != nil:
		return len(c.ByteVal.Values)
	case c.I16Val != nil:
		return len(c.I16Val.Values)
	case c.I32Val != nil:
		return len(c.I32Val.Values)
	case c.I64Val != nil:
		return len(c.I64Val.Values)
	case c.DoubleVal != nil:
		return len(c.DoubleVal.Values)
	case c.StringVal != nil:
		return len(c.StringVal.Values)
	}
	return 0
}

// NullBitmap returns the null bitmap of the set variant.
func (c *TColumn) NullBitmap() []byte {
	switch {
	case c == nil:
		return nil
	case c.BoolVal != nil:
		return c.BoolVal.Nulls
	case c.ByteVal != nil:
		return c.ByteVal.Nulls
	case c.I16Val != nil:
		return c.I16Val.Nulls
	case c.I32Val != nil:
		return c.I32Val.Nulls
	case c.I64Val != nil:
		return c.I64Val.Nulls
	case c.DoubleVal != nil:
		return c.DoubleVal.Nulls
	case c.StringVal != nil:
		return c.StringVal.Nulls
	}
	return nil
}

type TRowSet struct {
	StartRowOffset int64
	Rows           []*TRow
	Columns        []*TColumn
}

// ColumnValue is a row value the engine has already evaluated, with at most
// one field set. A missing field is a SQL NULL.
type ColumnValue struct {
	BoolVal   *bool
	ByteVal   *int8
	ShortVal  *int16
	IntVal    *int32
	LongVal   *int64
	DoubleVal *float64
	StringVal *string
}
