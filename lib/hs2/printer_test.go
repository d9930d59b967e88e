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

package hs2_test

import (
	"math"
	"testing"

	"github.com/bgosztonyi/Impala/lib/hs2"
	"github.com/stretchr/testify/assert"
)

func TestPrintTColumnValue(t *testing.T) {
	cases := []struct {
		name string
		v    *hs2.TColumnValue
		exp  string
	}{
		{"nil", nil, "NULL"},
		{"no variant", &hs2.TColumnValue{}, "NULL"},
		{"bool true", &hs2.TColumnValue{BoolVal: &hs2.TBoolValue{Value: ptr(true)}}, "true"},
		{"bool false", &hs2.TColumnValue{BoolVal: &hs2.TBoolValue{Value: ptr(false)}}, "false"},
		{"bool unset", &hs2.TColumnValue{BoolVal: &hs2.TBoolValue{}}, "NULL"},
		{"byte", &hs2.TColumnValue{ByteVal: &hs2.TByteValue{Value: ptr(int8(65))}}, "65"},
		{"byte negative", &hs2.TColumnValue{ByteVal: &hs2.TByteValue{Value: ptr(int8(-128))}}, "-128"},
		{"i16", &hs2.TColumnValue{I16Val: &hs2.TI16Value{Value: ptr(int16(-7))}}, "-7"},
		{"i32", &hs2.TColumnValue{I32Val: &hs2.TI32Value{Value: ptr(int32(42))}}, "42"},
		{"i64", &hs2.TColumnValue{I64Val: &hs2.TI64Value{Value: ptr(int64(1) << 62)}}, "4611686018427387904"},
		{"i64 unset", &hs2.TColumnValue{I64Val: &hs2.TI64Value{}}, "NULL"},
		{"double", &hs2.TColumnValue{DoubleVal: &hs2.TDoubleValue{Value: ptr(1.5)}}, "1.5"},
		{"double large", &hs2.TColumnValue{DoubleVal: &hs2.TDoubleValue{Value: ptr(1234567.0)}}, "1.23457e+06"},
		{"double digits", &hs2.TColumnValue{DoubleVal: &hs2.TDoubleValue{Value: ptr(3.14159265)}}, "3.14159"},
		{"double inf", &hs2.TColumnValue{DoubleVal: &hs2.TDoubleValue{Value: ptr(math.Inf(1))}}, "inf"},
		{"double -inf", &hs2.TColumnValue{DoubleVal: &hs2.TDoubleValue{Value: ptr(math.Inf(-1))}}, "-inf"},
		{"double nan", &hs2.TColumnValue{DoubleVal: &hs2.TDoubleValue{Value: ptr(math.NaN())}}, "nan"},
		{"string", &hs2.TColumnValue{StringVal: &hs2.TStringValue{Value: ptr("abc")}}, "abc"},
		{"string empty", &hs2.TColumnValue{StringVal: &hs2.TStringValue{Value: ptr("")}}, ""},
		{"string unset", &hs2.TColumnValue{StringVal: &hs2.TStringValue{}}, "NULL"},
		// bool wins over every other variant
		{"precedence bool", &hs2.TColumnValue{
			BoolVal:   &hs2.TBoolValue{},
			DoubleVal: &hs2.TDoubleValue{Value: ptr(1.0)},
		}, "NULL"},
		{"precedence byte over i32", &hs2.TColumnValue{
			ByteVal: &hs2.TByteValue{Value: ptr(int8(1))},
			I32Val:  &hs2.TI32Value{Value: ptr(int32(2))},
		}, "1"},
		{"precedence i32 over i16", &hs2.TColumnValue{
			I16Val: &hs2.TI16Value{Value: ptr(int16(3))},
			I32Val: &hs2.TI32Value{Value: ptr(int32(2))},
		}, "2"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.exp, hs2.PrintTColumnValue(c.v))
		})
	}
}

func TestPrintColumnRow(t *testing.T) {
	col := &hs2.TColumn{I32Val: &hs2.TI32Column{Values: []int32{5, 0, 7}, Nulls: []byte{0x02}}}
	assert.Equal(t, "5", hs2.PrintColumnRow(col, 0))
	assert.Equal(t, "NULL", hs2.PrintColumnRow(col, 1))
	assert.Equal(t, "7", hs2.PrintColumnRow(col, 2))
	assert.Equal(t, "NULL", hs2.PrintColumnRow(col, 3))

	col = &hs2.TColumn{BoolVal: &hs2.TBoolColumn{Values: []bool{true}, Nulls: []byte{0}}}
	assert.Equal(t, "true", hs2.PrintColumnRow(col, 0))
	assert.Equal(t, "NULL", hs2.PrintColumnRow(nil, 0))

	col = &hs2.TColumn{DoubleVal: &hs2.TDoubleColumn{Values: []float64{math.Inf(-1), 0.1}, Nulls: []byte{0}}}
	assert.Equal(t, "-inf", hs2.PrintColumnRow(col, 0))
	assert.Equal(t, "0.1", hs2.PrintColumnRow(col, 1))
}
