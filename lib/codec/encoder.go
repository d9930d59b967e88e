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

package codec

import (
	"math"

	"github.com/VictoriaMetrics/VictoriaMetrics/lib/encoding"
)

func AppendBool(b []byte, v bool) []byte {
	if v {
		return append(b, 1)
	}
	return append(b, 0)
}

func AppendUint8(b []byte, v uint8) []byte {
	return append(b, v)
}

func AppendUint16(b []byte, v uint16) []byte {
	return encoding.MarshalUint16(b, v)
}

func AppendUint32(b []byte, v uint32) []byte {
	return encoding.MarshalUint32(b, v)
}

func AppendUint64(b []byte, v uint64) []byte {
	return encoding.MarshalUint64(b, v)
}

func AppendInt8(b []byte, v int8) []byte {
	return append(b, uint8(v))
}

func AppendInt16(b []byte, v int16) []byte {
	return encoding.MarshalInt16(b, v)
}

// AppendInt32 writes v zigzag encoded, matching BinaryDecoder.Int32.
func AppendInt32(b []byte, v int32) []byte {
	return AppendUint32(b, uint32(v<<1)^uint32(v>>31))
}

func AppendInt64(b []byte, v int64) []byte {
	return encoding.MarshalInt64(b, v)
}

func AppendFloat64(b []byte, v float64) []byte {
	return encoding.MarshalUint64(b, math.Float64bits(v))
}

func AppendBytes(b []byte, v []byte) []byte {
	b = AppendUint32(b, uint32(len(v)))
	return append(b, v...)
}

func AppendString(b []byte, v string) []byte {
	b = AppendUint32(b, uint32(len(v)))
	return append(b, v...)
}

func AppendBoolSlice(b []byte, a []bool) []byte {
	b = AppendUint32(b, uint32(len(a)))
	for _, v := range a {
		b = AppendBool(b, v)
	}
	return b
}

func AppendInt8Slice(b []byte, a []int8) []byte {
	b = AppendUint32(b, uint32(len(a)))
	for _, v := range a {
		b = AppendInt8(b, v)
	}
	return b
}

func AppendInt16Slice(b []byte, a []int16) []byte {
	b = AppendUint32(b, uint32(len(a)))
	for _, v := range a {
		b = AppendInt16(b, v)
	}
	return b
}

func AppendInt32Slice(b []byte, a []int32) []byte {
	b = AppendUint32(b, uint32(len(a)))
	for _, v := range a {
		b = AppendInt32(b, v)
	}
	return b
}

func AppendInt64Slice(b []byte, a []int64) []byte {
	b = AppendUint32(b, uint32(len(a)))
	for _, v := range a {
		b = AppendInt64(b, v)
	}
	return b
}

func AppendFloat64Slice(b []byte, a []float64) []byte {
	b = AppendUint32(b, uint32(len(a)))
	for _, v := range a {
		b = AppendFloat64(b, v)
	}
	return b
}

// AppendStringSlice writes the element count followed by each element with
// its own length prefix.
func AppendStringSlice(b []byte, a []string) []byte {
	b = AppendUint32(b, uint32(len(a)))
	for _, v := range a {
		b = AppendString(b, v)
	}
	return b
}
