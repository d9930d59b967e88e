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
	"github.com/bgosztonyi/Impala/lib/bitmap"
	"github.com/bgosztonyi/Impala/lib/errno"
	"github.com/bgosztonyi/Impala/lib/metrics"
	"github.com/bgosztonyi/Impala/lib/types"
)

// span selects the rows one append touches. A streaming span writes a single
// row at dstStart and grows the bitmap implicitly; a bulk span pre-sizes the
// column to dstStart+count and then sets each row in place.
type span struct {
	stream   bool
	srcStart int
	dstStart int
	count    int
}

func streamAt(srcIdx, rowIdx int) span {
	return span{stream: true, srcStart: srcIdx, dstStart: rowIdx, count: 1}
}

func bulk(srcStart, dstStart, count int) span {
	return span{srcStart: srcStart, dstStart: dstStart, count: count}
}

// growValues extends values to n entries, zero filling. It never shrinks.
func growValues[T any](values *[]T, n int) {
	l := len(*values)
	if n <= l {
		return
	}
	if cap(*values) >= n {
		*values = (*values)[:n]
		clear((*values)[l:])
		return
	}
	*values = append(*values, make([]T, n-l)...)
}

func appendRange[T any](values *[]T, nulls *[]byte, get func(int) (T, bool, error), s span) (int, error) {
	if s.count <= 0 {
		return 0, nil
	}

	end := s.dstStart + s.count
	growValues(values, end)
	bitmap.EnsureSize(nulls, end)

	nullCount := 0
	for i := 0; i < s.count; i++ {
		v, isNull, err := get(s.srcStart + i)
		if err != nil {
			return nullCount, err
		}
		if isNull {
			var zero T
			v = zero
			nullCount++
		}
		(*values)[s.dstStart+i] = v
		bitmap.SetBit(*nulls, s.dstStart+i, isNull)
	}
	return nullCount, nil
}

func appendOne[T any](values *[]T, nulls *[]byte, get func(int) (T, bool, error), s span) (int, error) {
	// a row inside the last bitmap byte passes AppendBit, so order is checked
	// against the values as well
	if s.dstStart != len(*values) {
		panic(errno.NewError(errno.BitmapOutOfRange, len(*nulls), s.dstStart))
	}

	v, isNull, err := get(s.srcStart)
	if err != nil {
		return 0, err
	}
	if isNull {
		var zero T
		v = zero
	}

	bitmap.AppendBit(nulls, s.dstStart, isNull)
	*values = append(*values, v)
	if isNull {
		return 1, nil
	}
	return 0, nil
}

func appendSpan[T any](values *[]T, nulls *[]byte, get func(int) (T, bool, error), s span) (int, error) {
	if s.stream {
		return appendOne(values, nulls, get, s)
	}
	return appendRange(values, nulls, get, s)
}

// appendColumn writes the rows selected by s into the variant of col that
// matches the family of t, creating the variant on first use.
func appendColumn(r reader, t types.ColumnType, s span, col *TColumn) error {
	fam, err := familyOf(t)
	if err != nil {
		return err
	}

	var nulls int
	switch fam {
	case familyBool:
		if col.BoolVal == nil {
			col.BoolVal = &TBoolColumn{}
		}
		nulls, err = appendSpan(&col.BoolVal.Values, &col.BoolVal.Nulls, r.boolAt, s)
	case familyByte:
		if col.ByteVal == nil {
			col.ByteVal = &TByteColumn{}
		}
		nulls, err = appendSpan(&col.ByteVal.Values, &col.ByteVal.Nulls, r.byteAt, s)
	case familyI16:
		if col.I16Val == nil {
			col.I16Val = &TI16Column{}
		}
		nulls, err = appendSpan(&col.I16Val.Values, &col.I16Val.Nulls, r.i16At, s)
	case familyI32:
		if col.I32Val == nil {
			col.I32Val = &TI32Column{}
		}
		nulls, err = appendSpan(&col.I32Val.Values, &col.I32Val.Nulls, r.i32At, s)
	case familyI64:
		if col.I64Val == nil {
			col.I64Val = &TI64Column{}
		}
		nulls, err = appendSpan(&col.I64Val.Values, &col.I64Val.Nulls, r.i64At, s)
	case familyDouble:
		if col.DoubleVal == nil {
			col.DoubleVal = &TDoubleColumn{}
		}
		nulls, err = appendSpan(&col.DoubleVal.Values, &col.DoubleVal.Nulls, r.doubleAt, s)
	case familyString:
		if col.StringVal == nil {
			col.StringVal = &TStringColumn{}
		}
		nulls, err = appendSpan(&col.StringVal.Values, &col.StringVal.Nulls, r.stringAt, s)
	}
	if err != nil {
		return err
	}

	if s.count > 0 {
		metrics.Codec.AddRows(fam.String(), s.count, nulls)
	}
	return nil
}
