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

package types_test

import (
	"math/big"
	"testing"
	"time"

	"github.com/bgosztonyi/Impala/lib/errno"
	"github.com/bgosztonyi/Impala/lib/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColumnType_String(t *testing.T) {
	assert.Equal(t, "INT", types.NewColumnType(types.Int).String())
	assert.Equal(t, "CHAR(5)", types.NewCharType(5).String())
	assert.Equal(t, "VARCHAR(20)", types.NewVarcharType(20).String())
	assert.Equal(t, "DECIMAL(10,2)", types.NewDecimalType(10, 2).String())
	assert.Equal(t, "UNKNOWN(200)", types.PrimitiveType(200).String())
}

func TestColumnType_DecimalByteSize(t *testing.T) {
	cases := []struct {
		precision int
		exp       int
	}{
		{1, 4}, {9, 4}, {10, 8}, {18, 8}, {19, 16}, {38, 16}, {39, 0}, {0, 0},
	}
	for _, c := range cases {
		assert.Equal(t, c.exp, types.NewDecimalType(c.precision, 0).ByteSize(), "precision=%d", c.precision)
	}
}

func TestFormatDecimal(t *testing.T) {
	s, err := types.FormatDecimal(types.Decimal4(12345), types.NewDecimalType(9, 2))
	require.NoError(t, err)
	assert.Equal(t, "123.45", s)

	s, err = types.FormatDecimal(types.Decimal4(-5), types.NewDecimalType(5, 2))
	require.NoError(t, err)
	assert.Equal(t, "-0.05", s)

	s, err = types.FormatDecimal(types.Decimal8(123456789012345), types.NewDecimalType(18, 0))
	require.NoError(t, err)
	assert.Equal(t, "123456789012345", s)

	s, err = types.FormatDecimal(types.Decimal8(-100), types.NewDecimalType(12, 3))
	require.NoError(t, err)
	assert.Equal(t, "-0.100", s)

	big38, ok := new(big.Int).SetString("-12345678901234567890123456789", 10)
	require.True(t, ok)
	s, err = types.FormatDecimal(types.Decimal16(big38), types.NewDecimalType(38, 10))
	require.NoError(t, err)
	assert.Equal(t, "-1234567890123456789.0123456789", s)

	s, err = types.FormatDecimal(types.Decimal16(big.NewInt(7)), types.NewDecimalType(20, 1))
	require.NoError(t, err)
	assert.Equal(t, "0.7", s)
}

func TestFormatDecimal_Errors(t *testing.T) {
	_, err := types.FormatDecimal(types.Decimal4(1), types.NewDecimalType(40, 2))
	assert.True(t, errno.Equal(err, errno.InvalidDecimalWidth))

	_, err = types.FormatDecimal(types.Decimal4(1), types.NewDecimalType(12, 2))
	assert.True(t, errno.Equal(err, errno.DecimalWidthMismatch))
}

func TestFormatTimestamp(t *testing.T) {
	ts := time.Date(2012, 1, 1, 9, 10, 11, 0, time.UTC)
	assert.Equal(t, "2012-01-01 09:10:11", types.FormatTimestamp(ts))

	ts = time.Date(2012, 1, 1, 9, 10, 11, 123000000, time.UTC)
	assert.Equal(t, "2012-01-01 09:10:11.123000000", types.FormatTimestamp(ts))

	ts = time.Date(1400, 12, 31, 23, 59, 59, 1, time.UTC)
	assert.Equal(t, "1400-12-31 23:59:59.000000001", types.FormatTimestamp(ts))
}

func TestCharSlot(t *testing.T) {
	assert.Equal(t, "ab   ", types.CharSlot([]byte("ab   "), 5))
	assert.Equal(t, "abc", types.CharSlot([]byte("abcdef"), 3))
	assert.Equal(t, "ab   ", types.CharSlot([]byte("ab"), 5))
	assert.Equal(t, "", types.CharSlot([]byte("ab"), 0))
}
