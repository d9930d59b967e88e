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

	"github.com/bgosztonyi/Impala/lib/bitmap"
	"github.com/bgosztonyi/Impala/lib/codec"
	"github.com/bgosztonyi/Impala/lib/errno"
	"github.com/bgosztonyi/Impala/lib/metrics"
)

const rowSetFormatVersion uint8 = 1

// variant tags shared by values and columns
const (
	tagNone uint8 = iota
	tagBool
	tagByte
	tagI16
	tagI32
	tagI64
	tagDouble
	tagString
)

var _ codec.BinaryCodec = (*TRowSet)(nil)

func (rs *TRowSet) MarshalBinary() ([]byte, error) {
	return MarshalRowSet(nil, rs), nil
}

func (rs *TRowSet) UnmarshalBinary(data []byte) error {
	out, err := UnmarshalRowSet(data)
	if err != nil {
		return err
	}
	*rs = *out
	return nil
}

// MarshalRowSet appends the binary snapshot of rs to dst.
func MarshalRowSet(dst []byte, rs *TRowSet) []byte {
	start := len(dst)
	dst = codec.AppendUint8(dst, rowSetFormatVersion)
	dst = codec.AppendInt64(dst, rs.StartRowOffset)

	dst = codec.AppendUint32(dst, uint32(len(rs.Rows)))
	for _, row := range rs.Rows {
		dst = codec.AppendUint32(dst, uint32(len(row.ColVals)))
		for _, v := range row.ColVals {
			dst = marshalValue(dst, v)
		}
	}

	dst = codec.AppendUint32(dst, uint32(len(rs.Columns)))
	for _, col := range rs.Columns {
		dst = marshalColumn(dst, col)
	}

	metrics.Codec.AddEncodedBytes(len(dst) - start)
	return dst
}

func appendOptional[T any](dst []byte, p *T, enc func([]byte, T) []byte) []byte {
	if p == nil {
		return codec.AppendBool(dst, false)
	}
	dst = codec.AppendBool(dst, true)
	return enc(dst, *p)
}

func marshalValue(dst []byte, v *TColumnValue) []byte {
	switch {
	case v.IsSetBoolVal():
		dst = codec.AppendUint8(dst, tagBool)
		return appendOptional(dst, v.BoolVal.Value, codec.AppendBool)
	case v.IsSetByteVal():
		dst = codec.AppendUint8(dst, tagByte)
		return appendOptional(dst, v.ByteVal.Value, codec.AppendInt8)
	case v.IsSetI16Val():
		dst = codec.AppendUint8(dst, tagI16)
		return appendOptional(dst, v.I16Val.Value, codec.AppendInt16)
	case v.IsSetI32Val():
		dst = codec.AppendUint8(dst, tagI32)
		return appendOptional(dst, v.I32Val.Value, codec.AppendInt32)
	case v.IsSetI64Val():
		dst = codec.AppendUint8(dst, tagI64)
		return appendOptional(dst, v.I64Val.Value, codec.AppendInt64)
	case v.IsSetDoubleVal():
		dst = codec.AppendUint8(dst, tagDouble)
		return appendOptional(dst, v.DoubleVal.Value, codec.AppendFloat64)
	case v.IsSetStringVal():
		dst = codec.AppendUint8(dst, tagString)
		return appendOptional(dst, v.StringVal.Value, codec.AppendString)
	}
	return codec.AppendUint8(dst, tagNone)
}

func marshalColumn(dst []byte, c *TColumn) []byte {
	switch {
	case c == nil:
		return codec.AppendUint8(dst, tagNone)
	case c.BoolVal != nil:
		dst = codec.AppendUint8(dst, tagBool)
		dst = codec.AppendBoolSlice(dst, c.BoolVal.Values)
	case c.ByteVal != nil:
		dst = codec.AppendUint8(dst, tagByte)
		dst = codec.AppendInt8Slice(dst, c.ByteVal.Values)
	case c.I16Val != nil:
		dst = codec.AppendUint8(dst, tagI16)
		dst = codec.AppendInt16Slice(dst, c.I16Val.Values)
	case c.I32Val != nil:
		dst = codec.AppendUint8(dst, tagI32)
		dst = codec.AppendInt32Slice(dst, c.I32Val.Values)
	case c.I64Val != nil:
		dst = codec.AppendUint8(dst, tagI64)
		dst = codec.AppendInt64Slice(dst, c.I64Val.Values)
	case c.DoubleVal != nil:
		dst = codec.AppendUint8(dst, tagDouble)
		dst = codec.AppendFloat64Slice(dst, c.DoubleVal.Values)
	case c.StringVal != nil:
		dst = codec.AppendUint8(dst, tagString)
		dst = codec.AppendStringSlice(dst, c.StringVal.Values)
	default:
		return codec.AppendUint8(dst, tagNone)
	}
	return codec.AppendBytes(dst, c.NullBitmap())
}

// UnmarshalRowSet decodes a snapshot written by MarshalRowSet.
func UnmarshalRowSet(buf []byte) (*TRowSet, error) {
	rs, err := unmarshalRowSet(codec.NewBinaryDecoder(buf))
	if err != nil {
		if _, ok := err.(*errno.Error); !ok {
			err = errno.NewError(errno.InvalidRowSet, err.Error())
		}
		return nil, err
	}
	return rs, nil
}

func unmarshalRowSet(dec *codec.BinaryDecoder) (*TRowSet, error) {
	ver, err := codec.DecodeUint8(dec, "version")
	if err != nil {
		return nil, err
	}
	if ver != rowSetFormatVersion {
		return nil, errno.NewError(errno.InvalidRowSet, fmt.Sprintf("unknown format version %d", ver))
	}

	rs := &TRowSet{}
	if rs.StartRowOffset, err = codec.DecodeInt64(dec, "start_row_offset"); err != nil {
		return nil, err
	}

	err = codec.DecodeArray(dec, "rows", func(dec *codec.BinaryDecoder) error {
		row := &TRow{}
		err := codec.DecodeArray(dec, "col_vals", func(dec *codec.BinaryDecoder) error {
			v, err := unmarshalValue(dec)
			row.ColVals = append(row.ColVals, v)
			return err
		})
		rs.Rows = append(rs.Rows, row)
		return err
	})
	if err != nil {
		return nil, err
	}

	err = codec.DecodeArray(dec, "columns", func(dec *codec.BinaryDecoder) error {
		col, err := unmarshalColumn(dec)
		rs.Columns = append(rs.Columns, col)
		return err
	})
	if err != nil {
		return nil, err
	}

	if dec.RemainSize() != 0 {
		return nil, errno.NewError(errno.InvalidRowSet, fmt.Sprintf("%d trailing bytes", dec.RemainSize()))
	}
	return rs, nil
}

func decodeOptional[T any](dec *codec.BinaryDecoder, key string, size int, read func() T) (*T, error) {
	ok, err := codec.DecodeBool(dec, key)
	if err != nil || !ok {
		return nil, err
	}
	if err = dec.CheckSize(key, size); err != nil {
		return nil, err
	}
	v := read()
	return &v, nil
}

func unmarshalValue(dec *codec.BinaryDecoder) (*TColumnValue, error) {
	tag, err := codec.DecodeUint8(dec, "value_tag")
	if err != nil {
		return nil, err
	}

	v := &TColumnValue{}
	switch tag {
	case tagNone:
	case tagBool:
		v.BoolVal = &TBoolValue{}
		v.BoolVal.Value, err = decodeOptional(dec, "bool_val", 1, dec.Bool)
	case tagByte:
		v.ByteVal = &TByteValue{}
		v.ByteVal.Value, err = decodeOptional(dec, "byte_val", 1, dec.Int8)
	case tagI16:
		v.I16Val = &TI16Value{}
		v.I16Val.Value, err = decodeOptional(dec, "i16_val", 2, dec.Int16)
	case tagI32:
		v.I32Val = &TI32Value{}
		v.I32Val.Value, err = decodeOptional(dec, "i32_val", 4, dec.Int32)
	case tagI64:
		v.I64Val = &TI64Value{}
		v.I64Val.Value, err = decodeOptional(dec, "i64_val", 8, dec.Int64)
	case tagDouble:
		v.DoubleVal = &TDoubleValue{}
		v.DoubleVal.Value, err = decodeOptional(dec, "double_val", 8, dec.Float64)
	case tagString:
		v.StringVal = &TStringValue{}
		var ok bool
		if ok, err = codec.DecodeBool(dec, "string_val"); err == nil && ok {
			var s string
			s, err = codec.DecodeString(dec, "string_val")
			v.StringVal.Value = &s
		}
	default:
		return nil, errno.NewError(errno.InvalidRowSet, fmt.Sprintf("unknown value tag %d", tag))
	}
	return v, err
}

func checkNulls(nulls []byte, rows int) error {
	if len(nulls) != bitmap.RequiredBytes(rows) {
		return errno.NewError(errno.InvalidRowSet,
			fmt.Sprintf("null bitmap of %d bytes for %d rows", len(nulls), rows))
	}
	return nil
}

func unmarshalColumn(dec *codec.BinaryDecoder) (*TColumn, error) {
	tag, err := codec.DecodeUint8(dec, "column_tag")
	if err != nil {
		return nil, err
	}

	c := &TColumn{}
	rows := 0
	switch tag {
	case tagNone:
		return c, nil
	case tagBool:
		c.BoolVal = &TBoolColumn{}
		c.BoolVal.Values, err = codec.DecodeBoolSlice(dec, "bool_column")
		rows = len(c.BoolVal.Values)
	case tagByte:
		c.ByteVal = &TByteColumn{}
		c.ByteVal.Values, err = codec.DecodeInt8Slice(dec, "byte_column")
		rows = len(c.ByteVal.Values)
	case tagI16:
		c.I16Val = &TI16Column{}
		c.I16Val.Values, err = codec.DecodeInt16Slice(dec, "i16_column")
		rows = len(c.I16Val.Values)
	case tagI32:
		c.I32Val = &TI32Column{}
		c.I32Val.Values, err = codec.DecodeInt32Slice(dec, "i32_column")
		rows = len(c.I32Val.Values)
	case tagI64:
		c.I64Val = &TI64Column{}
		c.I64Val.Values, err = codec.DecodeInt64Slice(dec, "i64_column")
		rows = len(c.I64Val.Values)
	case tagDouble:
		c.DoubleVal = &TDoubleColumn{}
		c.DoubleVal.Values, err = codec.DecodeFloat64Slice(dec, "double_column")
		rows = len(c.DoubleVal.Values)
	case tagString:
		c.StringVal = &TStringColumn{}
		c.StringVal.Values, err = codec.DecodeStringSlice(dec, "string_column")
		rows = len(c.StringVal.Values)
	default:
		return nil, errno.NewError(errno.InvalidRowSet, fmt.Sprintf("unknown column tag %d", tag))
	}
	if err != nil {
		return nil, err
	}

	nulls, err := codec.DecodeBytes(dec, "nulls")
	if err != nil {
		return nil, err
	}
	if err = checkNulls(nulls, rows); err != nil {
		return nil, err
	}

	switch tag {
	case tagBool:
		c.BoolVal.Nulls = nulls
	case tagByte:
		c.ByteVal.Nulls = nulls
	case tagI16:
		c.I16Val.Nulls = nulls
	case tagI32:
		c.I32Val.Nulls = nulls
	case tagI64:
		c.I64Val.Nulls = nulls
	case tagDouble:
		c.DoubleVal.Nulls = nulls
	case tagString:
		c.StringVal.Nulls = nulls
	}
	return c, nil
}
