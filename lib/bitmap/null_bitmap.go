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

// Package bitmap packs per-row null flags into bytes, LSB first: row i is
// bit i%8 of byte i/8, and a set bit means the row is null.
//
// Accessing a row outside the allocated bytes is a caller bug and panics
// with an errno.BitmapOutOfRange error.
package bitmap

import (
	"sync/atomic"

	"github.com/bgosztonyi/Impala/lib/errno"
)

var (
	BitMask        = [8]byte{1, 2, 4, 8, 16, 32, 64, 128}
	FlippedBitMask = [8]byte{254, 253, 251, 247, 239, 223, 191, 127}
)

var stitchFastPath atomic.Bool

func init() {
	stitchFastPath.Store(true)
}

// SetStitchFastPath toggles whole-byte copies in Stitch when both offsets are byte aligned.
func SetStitchFastPath(en bool) {
	stitchFastPath.Store(en)
}

func RequiredBytes(rows int) int {
	return (rows + 7) / 8
}

// EnsureSize grows nulls to cover rows, zero filling new bytes. It never shrinks.
func EnsureSize(nulls *[]byte, rows int) {
	n := RequiredBytes(rows)
	l := len(*nulls)
	if n <= l {
		return
	}
	if cap(*nulls) >= n {
		*nulls = (*nulls)[:n]
		clear((*nulls)[l:])
		return
	}
	*nulls = append(*nulls, make([]byte, n-l)...)
}

// SetBit ORs the null flag of row into nulls, which must already cover row.
// A bit that is already set is never cleared.
func SetBit(nulls []byte, row int, isNull bool) {
	checkCovered(nulls, row)
	if isNull {
		nulls[row>>3] |= BitMask[row&0x07]
	}
}

// AppendBit records the null flag of row, which must be the row right after
// the last one recorded. A zero byte is appended whenever row starts a new byte.
func AppendBit(nulls *[]byte, row int, isNull bool) {
	if row < 0 || len(*nulls) != RequiredBytes(row) {
		panic(errno.NewError(errno.BitmapOutOfRange, len(*nulls), row))
	}
	if row&0x07 == 0 {
		*nulls = append(*nulls, 0)
	}
	if isNull {
		(*nulls)[row>>3] |= BitMask[row&0x07]
	}
}

func GetBit(nulls []byte, row int) bool {
	checkCovered(nulls, row)
	return nulls[row>>3]&BitMask[row&0x07] != 0
}

// Stitch appends rowsAdded flags read from src starting at bit startIdx to dst,
// which must hold exactly rowsBefore flags.
func Stitch(dst *[]byte, rowsBefore, rowsAdded, startIdx int, src []byte) {
	if rowsAdded <= 0 {
		return
	}
	checkCovered(src, startIdx+rowsAdded-1)

	if stitchFastPath.Load() && rowsBefore&0x07 == 0 && startIdx&0x07 == 0 {
		stitchAligned(dst, rowsBefore, rowsAdded, startIdx, src)
		return
	}

	for i := 0; i < rowsAdded; i++ {
		AppendBit(dst, rowsBefore+i, GetBit(src, startIdx+i))
	}
}

func stitchAligned(dst *[]byte, rowsBefore, rowsAdded, startIdx int, src []byte) {
	if len(*dst) != RequiredBytes(rowsBefore) {
		panic(errno.NewError(errno.BitmapOutOfRange, len(*dst), rowsBefore))
	}

	from := startIdx >> 3
	n := RequiredBytes(rowsAdded)
	*dst = append(*dst, src[from:from+n]...)

	// bits past the last stitched row stay clear
	if tail := rowsAdded & 0x07; tail != 0 {
		(*dst)[len(*dst)-1] &= BitMask[tail] - 1
	}
}

// NullCount returns how many of the first rows flags are set.
func NullCount(nulls []byte, rows int) int {
	n := 0
	for i := 0; i < rows; i++ {
		if GetBit(nulls, i) {
			n++
		}
	}
	return n
}

func checkCovered(nulls []byte, row int) {
	if row < 0 || row>>3 >= len(nulls) {
		panic(errno.NewError(errno.BitmapOutOfRange, len(nulls), row))
	}
}
