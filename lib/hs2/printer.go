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
	"math"
	"strconv"

	"github.com/bgosztonyi/Impala/lib/bitmap"
)

const nullText = "NULL"

// formatDouble prints six significant digits, and inf, -inf or nan for the
// special values.
func formatDouble(v float64) string {
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}
	return strconv.FormatFloat(v, 'g', 6, 64)
}

func printValue[T any](p *T, format func(T) string) string {
	if p == nil {
		return nullText
	}
	return format(*p)
}

func formatInt[T int8 | int16 | int32 | int64](v T) string {
	return strconv.FormatInt(int64(v), 10)
}

func identity(s string) string {
	return s
}

// PrintTColumnValue renders a tagged value for display. When several
// variants are set the first of bool, double, byte, i32, i16, i64, string
// wins; no variant or a variant without a value prints NULL.
func PrintTColumnValue(v *TColumnValue) string {
	switch {
	case v.IsSetBoolVal():
		return printValue(v.BoolVal.Value, strconv.FormatBool)
	case v.IsSetDoubleVal():
		return printValue(v.DoubleVal.Value, formatDouble)
	case v.IsSetByteVal():
		return printValue(v.ByteVal.Value, formatInt[int8])
	case v.IsSetI32Val():
		return printValue(v.I32Val.Value, formatInt[int32])
	case v.IsSetI16Val():
		return printValue(v.I16Val.Value, formatInt[int16])
	case v.IsSetI64Val():
		return printValue(v.I64Val.Value, formatInt[int64])
	case v.IsSetStringVal():
		return printValue(v.StringVal.Value, identity)
	}
	return nullText
}

// PrintColumnRow renders row i of a columnar column the same way.
func PrintColumnRow(c *TColumn, i int) string {
	switch {
	case c == nil:
		return nullText
	case c.BoolVal != nil:
		return printColumnRow(c.BoolVal.Values, c.BoolVal.Nulls, i, strconv.FormatBool)
	case c.DoubleVal != nil:
		return printColumnRow(c.DoubleVal.Values, c.DoubleVal.Nulls, i, formatDouble)
	case c.ByteVal != nil:
		return printColumnRow(c.ByteVal.Values, c.ByteVal.Nulls, i, formatInt[int8])
	case c.I32Val != nil:
		return printColumnRow(c.I32Val.Values, c.I32Val.Nulls, i, formatInt[int32])
	case c.I16Val != nil:
		return printColumnRow(c.I16Val.Values, c.I16Val.Nulls, i, formatInt[int16])
	case c.I64Val != nil:
		return printColumnRow(c.I64Val.Values, c.I64Val.Nulls, i, formatInt[int64])
	case c.StringVal != nil:
		return printColumnRow(c.StringVal.Values, c.StringVal.Nulls, i, identity)
	}
	return nullText
}

func printColumnRow[T any](values []T, nulls []byte, i int, format func(T) string) string {
	if i >= len(values) || isNullRow(nulls, i) {
		return nullText
	}
	return format(values[i])
}

func isNullRow(nulls []byte, i int) bool {
	return i>>3 < len(nulls) && nulls[i>>3]&bitmap.BitMask[i&7] != 0
}
