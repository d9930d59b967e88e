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
)

func stitchValues[T any](dst *[]T, dstNulls *[]byte, src []T, srcNulls []byte, rowsBefore, start, count int) {
	if len(*dst) != rowsBefore || len(*dstNulls) != bitmap.RequiredBytes(rowsBefore) {
		panic(errno.NewError(errno.BitmapOutOfRange, len(*dstNulls), rowsBefore))
	}
	if start+count > len(src) {
		panic(errno.NewError(errno.BitmapOutOfRange, len(srcNulls), start+count-1))
	}
	*dst = append(*dst, src[start:start+count]...)
	bitmap.Stitch(dstNulls, rowsBefore, count, start, srcNulls)
}

// stitchColumn appends rows [start, start+count) of src to dst, which holds
// rowsBefore rows. dst takes the variant of src when it has none yet.
func stitchColumn(dst, src *TColumn, rowsBefore, start, count int) {
	switch {
	case src.BoolVal != nil:
		if dst.BoolVal == nil {
			dst.BoolVal = &TBoolColumn{}
		}
		stitchValues(&dst.BoolVal.Values, &dst.BoolVal.Nulls, src.BoolVal.Values, src.BoolVal.Nulls, rowsBefore, start, count)
	case src.ByteVal != nil:
		if dst.ByteVal == nil {
			dst.ByteVal = &TByteColumn{}
		}
		stitchValues(&dst.ByteVal.Values, &dst.ByteVal.Nulls, src.ByteVal.Values, src.ByteVal.Nulls, rowsBefore, start, count)
	case src.I16Val != nil:
		if dst.I16Val == nil {
			dst.I16Val = &TI16Column{}
		}
		stitchValues(&dst.I16Val.Values, &dst.I16Val.Nulls, src.I16Val.Values, src.I16Val.Nulls, rowsBefore, start, count)
	case src.I32Val != nil:
		if dst.I32Val == nil {
			dst.I32Val = &TI32Column{}
		}
		stitchValues(&dst.I32Val.Values, &dst.I32Val.Nulls, src.I32Val.Values, src.I32Val.Nulls, rowsBefore, start, count)
	case src.I64Val != nil:
		if dst.I64Val == nil {
			dst.I64Val = &TI64Column{}
		}
		stitchValues(&dst.I64Val.Values, &dst.I64Val.Nulls, src.I64Val.Values, src.I64Val.Nulls, rowsBefore, start, count)
	case src.DoubleVal != nil:
		if dst.DoubleVal == nil {
			dst.DoubleVal = &TDoubleColumn{}
		}
		stitchValues(&dst.DoubleVal.Values, &dst.DoubleVal.Nulls, src.DoubleVal.Values, src.DoubleVal.Nulls, rowsBefore, start, count)
	case src.StringVal != nil:
		if dst.StringVal == nil {
			dst.StringVal = &TStringColumn{}
		}
		stitchValues(&dst.StringVal.Values, &dst.StringVal.Nulls, src.StringVal.Values, src.StringVal.Nulls, rowsBefore, start, count)
	}
}
