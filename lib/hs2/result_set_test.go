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
	"testing"

	"github.com/bgosztonyi/Impala/lib/bitmap"
	"github.com/bgosztonyi/Impala/lib/errno"
	"github.com/bgosztonyi/Impala/lib/hs2"
	"github.com/bgosztonyi/Impala/lib/scalar"
	"github.com/bgosztonyi/Impala/lib/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSchema = []types.ColumnType{
	types.NewColumnType(types.Int),
	types.NewColumnType(types.String),
	types.NewDecimalType(9, 2),
}

func testRows(n int) scalar.Rows {
	rows := make(scalar.Rows, n)
	for i := range rows {
		row := []scalar.Value{scalar.Int32(int32(i)), scalar.Str("r"), scalar.Decimal(types.Decimal4(int32(i * 100)))}
		if i%4 == 1 {
			row[1] = scalar.Null()
		}
		rows[i] = row
	}
	return rows
}

func columnSources(rows scalar.Rows, ncol int) []scalar.Source {
	src := make([]scalar.Source, ncol)
	for i := range src {
		src[i] = rows.Column(i)
	}
	return src
}

func TestProtocolVersion(t *testing.T) {
	assert.False(t, hs2.ProtocolV1.UsesColumnar())
	assert.False(t, hs2.ProtocolV5.UsesColumnar())
	assert.True(t, hs2.ProtocolV6.UsesColumnar())
	assert.True(t, hs2.ProtocolV10.UsesColumnar())
	assert.Equal(t, "HIVE_CLI_SERVICE_PROTOCOL_V6", hs2.ProtocolV6.String())
	assert.Equal(t, "UNKNOWN_PROTOCOL(42)", hs2.ProtocolVersion(42).String())
}

func TestResultSet_Columnar(t *testing.T) {
	rows := testRows(10)
	rs := hs2.NewResultSet(hs2.ProtocolV6, testSchema, 0)

	require.NoError(t, rs.AddRows(columnSources(rows, 3), 0, 6))
	require.NoError(t, rs.AddRows(columnSources(rows, 3), 6, 4))
	require.NoError(t, rs.AddOneRow([]scalar.Value{scalar.Null(), scalar.Str("last"), scalar.Null()}))
	assert.Equal(t, 11, rs.Size())

	trs := rs.TRowSet()
	assert.Empty(t, trs.Rows)
	require.Len(t, trs.Columns, 3)
	for _, c := range trs.Columns {
		assert.Equal(t, 11, c.Len())
		assert.Equal(t, 2, len(c.NullBitmap()))
	}

	assert.Equal(t, "9", hs2.PrintColumnRow(trs.Columns[0], 9))
	assert.Equal(t, "NULL", hs2.PrintColumnRow(trs.Columns[0], 10))
	assert.Equal(t, "NULL", hs2.PrintColumnRow(trs.Columns[1], 5))
	assert.Equal(t, "last", hs2.PrintColumnRow(trs.Columns[1], 10))
	assert.Equal(t, "3.00", hs2.PrintColumnRow(trs.Columns[2], 3))
	assert.True(t, rs.ByteSize() > 0)
}

func TestResultSet_Legacy(t *testing.T) {
	rows := testRows(5)
	rs := hs2.NewResultSet(hs2.ProtocolV3, testSchema, 100)

	require.NoError(t, rs.AddRows(columnSources(rows, 3), 1, 3))
	assert.Equal(t, 3, rs.Size())

	trs := rs.TRowSet()
	assert.Equal(t, int64(100), trs.StartRowOffset)
	assert.Empty(t, trs.Columns)
	require.Len(t, trs.Rows, 3)
	assert.Equal(t, "1", hs2.PrintTColumnValue(trs.Rows[0].ColVals[0]))
	assert.Equal(t, "NULL", hs2.PrintTColumnValue(trs.Rows[0].ColVals[1]))
	assert.Equal(t, "3.00", hs2.PrintTColumnValue(trs.Rows[2].ColVals[2]))

	// int + string "r" + decimal text, minus the null string in the first row
	assert.Equal(t, int64(3*4+2*1+3*4), rs.ByteSize())
}

func TestResultSet_Errors(t *testing.T) {
	rows := testRows(3)
	rs := hs2.NewResultSet(hs2.ProtocolV8, testSchema, 0)

	err := rs.AddRows(columnSources(rows, 2), 0, 3)
	assert.True(t, errno.Equal(err, errno.ColumnCountMismatch))

	err = rs.AddRows(columnSources(rows, 3), 1, 3)
	assert.True(t, errno.Equal(err, errno.InvalidRowSet))

	err = rs.AddOneRow([]scalar.Value{scalar.Int32(1)})
	assert.True(t, errno.Equal(err, errno.ColumnCountMismatch))

	assert.NoError(t, rs.AddRows(columnSources(rows, 3), 0, 0))
	assert.Equal(t, 0, rs.Size())
}

func TestResultSet_AddRowsFrom(t *testing.T) {
	for _, fast := range []bool{true, false} {
		bitmap.SetStitchFastPath(fast)

		rows := testRows(20)
		cached := hs2.NewResultSet(hs2.ProtocolV7, testSchema, 0)
		require.NoError(t, cached.AddRows(columnSources(rows, 3), 0, 20))

		// fetch from the start in pages of 8
		out := hs2.NewResultSet(hs2.ProtocolV7, testSchema, 0)
		for start := 0; start < 20; start += 8 {
			n, err := out.AddRowsFrom(cached, start, 8)
			require.NoError(t, err)
			assert.Equal(t, min(8, 20-start), n)
		}
		assert.Equal(t, cached.TRowSet(), out.TRowSet())

		// unaligned window
		out = hs2.NewResultSet(hs2.ProtocolV7, testSchema, 0)
		n, err := out.AddRowsFrom(cached, 3, 100)
		require.NoError(t, err)
		assert.Equal(t, 17, n)
		assert.Equal(t, "NULL", hs2.PrintColumnRow(out.TRowSet().Columns[1], 2))
		assert.Equal(t, "r", hs2.PrintColumnRow(out.TRowSet().Columns[1], 3))
		assert.Equal(t, "3", hs2.PrintColumnRow(out.TRowSet().Columns[0], 0))

		n, err = out.AddRowsFrom(cached, 20, 5)
		require.NoError(t, err)
		assert.Equal(t, 0, n)
	}
	bitmap.SetStitchFastPath(true)
}

func TestResultSet_AddRowsFrom_Legacy(t *testing.T) {
	rows := testRows(4)
	cached := hs2.NewResultSet(hs2.ProtocolV1, testSchema, 0)
	require.NoError(t, cached.AddRows(columnSources(rows, 3), 0, 4))

	out := hs2.NewResultSet(hs2.ProtocolV2, testSchema, 0)
	n, err := out.AddRowsFrom(cached, 2, 10)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, 2, out.Size())

	_, err = hs2.NewResultSet(hs2.ProtocolV9, testSchema, 0).AddRowsFrom(cached, 0, 1)
	assert.True(t, errno.Equal(err, errno.InvalidRowSet))
}

func TestResultSet_AddRowsFrom_FamilyMismatch(t *testing.T) {
	ints := []types.ColumnType{types.NewColumnType(types.Int), types.NewColumnType(types.Int)}
	mixed := []types.ColumnType{types.NewColumnType(types.Int), types.NewColumnType(types.String)}

	out := hs2.NewResultSet(hs2.ProtocolV6, ints, 0)
	require.NoError(t, out.AddOneRow([]scalar.Value{scalar.Int32(1), scalar.Int32(2)}))
	src := hs2.NewResultSet(hs2.ProtocolV6, mixed, 0)
	require.NoError(t, src.AddOneRow([]scalar.Value{scalar.Int32(3), scalar.Str("x")}))

	n, err := out.AddRowsFrom(src, 0, 1)
	assert.True(t, errno.Equal(err, errno.InvalidRowSet))
	assert.Equal(t, 0, n)

	assert.Equal(t, 1, out.Size())
	cols := out.TRowSet().Columns
	assert.Equal(t, []int32{1}, cols[0].I32Val.Values)
	assert.Equal(t, []int32{2}, cols[1].I32Val.Values)
	assert.Nil(t, cols[1].StringVal)

	// NULL_TYPE and BOOLEAN share the bool family
	nullCol := hs2.NewResultSet(hs2.ProtocolV6, []types.ColumnType{types.NewColumnType(types.Null)}, 0)
	boolCol := hs2.NewResultSet(hs2.ProtocolV6, []types.ColumnType{types.NewColumnType(types.Boolean)}, 0)
	require.NoError(t, boolCol.AddOneRow([]scalar.Value{scalar.Bool(true)}))
	n, err = nullCol.AddRowsFrom(boolCol, 0, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestResultSet_AddRowsFrom_ColumnOutOfStep(t *testing.T) {
	cached := hs2.NewResultSet(hs2.ProtocolV6, testSchema, 0)
	require.NoError(t, cached.AddRows(columnSources(testRows(4), 3), 0, 4))

	out := hs2.NewResultSet(hs2.ProtocolV6, testSchema, 0)
	require.NoError(t, out.AddRows(columnSources(testRows(2), 3), 0, 2))
	last := out.TRowSet().Columns[2].StringVal
	last.Values = append(last.Values, "extra")

	_, err := out.AddRowsFrom(cached, 0, 4)
	assert.True(t, errno.Equal(err, errno.InvalidRowSet))
	assert.Equal(t, 2, out.TRowSet().Columns[0].Len())
	assert.Equal(t, 2, out.Size())
}
