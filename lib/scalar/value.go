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

// Package scalar models one evaluated column value of a row and the sources
// that produce them.
package scalar

import (
	"math"
	"time"
)

// Value is either null or a payload of the column's type. Byte payloads
// (strings, CHAR slots, decimals) are borrowed from the producer and are only
// valid until the append call that consumes them returns.
type Value struct {
	valid bool
	bits  uint64
	bytes []byte
	ts    time.Time
}

var NullValue = Value{}

func Null() Value {
	return Value{}
}

func Bool(v bool) Value {
	var b uint64
	if v {
		b = 1
	}
	return Value{valid: true, bits: b}
}

func Int8(v int8) Value {
	return Value{valid: true, bits: uint64(int64(v))}
}

func Int16(v int16) Value {
	return Value{valid: true, bits: uint64(int64(v))}
}

func Int32(v int32) Value {
	return Value{valid: true, bits: uint64(int64(v))}
}

func Int64(v int64) Value {
	return Value{valid: true, bits: uint64(v)}
}

func Float32(v float32) Value {
	return Value{valid: true, bits: math.Float64bits(float64(v))}
}

func Float64(v float64) Value {
	return Value{valid: true, bits: math.Float64bits(v)}
}

// Bytes wraps a STRING/VARCHAR payload or a CHAR slot.
func Bytes(v []byte) Value {
	return Value{valid: true, bytes: v}
}

func Str(v string) Value {
	return Value{valid: true, bytes: []byte(v)}
}

// Decimal wraps a little-endian two's complement unscaled payload of 4, 8 or 16 bytes.
func Decimal(raw []byte) Value {
	return Value{valid: true, bytes: raw}
}

func Timestamp(t time.Time) Value {
	return Value{valid: true, ts: t}
}

func (v Value) IsNull() bool {
	return !v.valid
}

func (v Value) Bool() bool {
	return v.bits != 0
}

func (v Value) Int8() int8 {
	return int8(v.bits)
}

func (v Value) Int16() int16 {
	return int16(v.bits)
}

func (v Value) Int32() int32 {
	return int32(v.bits)
}

func (v Value) Int64() int64 {
	return int64(v.bits)
}

// Float64 returns the payload of FLOAT and DOUBLE values, FLOAT widened.
func (v Value) Float64() float64 {
	return math.Float64frombits(v.bits)
}

func (v Value) Bytes() []byte {
	return v.bytes
}

func (v Value) Timestamp() time.Time {
	return v.ts
}
