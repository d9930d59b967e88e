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

package types

import "fmt"

type PrimitiveType uint8

const (
	Invalid PrimitiveType = iota
	Null
	Boolean
	TinyInt
	SmallInt
	Int
	BigInt
	Float
	Double
	Date
	DateTime
	Timestamp
	String
	Binary
	Decimal
	Char
	Varchar
)

var primitiveNames = [...]string{
	Invalid:   "INVALID_TYPE",
	Null:      "NULL_TYPE",
	Boolean:   "BOOLEAN",
	TinyInt:   "TINYINT",
	SmallInt:  "SMALLINT",
	Int:       "INT",
	BigInt:    "BIGINT",
	Float:     "FLOAT",
	Double:    "DOUBLE",
	Date:      "DATE",
	DateTime:  "DATETIME",
	Timestamp: "TIMESTAMP",
	String:    "STRING",
	Binary:    "BINARY",
	Decimal:   "DECIMAL",
	Char:      "CHAR",
	Varchar:   "VARCHAR",
}

func (t PrimitiveType) String() string {
	if int(t) < len(primitiveNames) {
		return primitiveNames[t]
	}
	return fmt.Sprintf("UNKNOWN(%d)", uint8(t))
}

const (
	MaxDecimal4Precision = 9
	MaxDecimal8Precision = 18
	MaxPrecision         = 38
)

// ColumnType describes one scalar result column. Len is used by CHAR and
// VARCHAR, Precision and Scale by DECIMAL.
type ColumnType struct {
	Type      PrimitiveType
	Len       int
	Precision int
	Scale     int
}

func NewColumnType(t PrimitiveType) ColumnType {
	return ColumnType{Type: t}
}

func NewCharType(n int) ColumnType {
	return ColumnType{Type: Char, Len: n}
}

func NewVarcharType(n int) ColumnType {
	return ColumnType{Type: Varchar, Len: n}
}

func NewDecimalType(precision, scale int) ColumnType {
	return ColumnType{Type: Decimal, Precision: precision, Scale: scale}
}

func (t ColumnType) String() string {
	switch t.Type {
	case Char, Varchar:
		return fmt.Sprintf("%s(%d)", t.Type, t.Len)
	case Decimal:
		return fmt.Sprintf("%s(%d,%d)", t.Type, t.Precision, t.Scale)
	default:
		return t.Type.String()
	}
}

// ByteSize is the in-memory slot width. For DECIMAL it selects the physical
// representation; 0 means the type has no valid width.
func (t ColumnType) ByteSize() int {
	switch t.Type {
	case Null, Boolean, TinyInt:
		return 1
	case SmallInt:
		return 2
	case Int, Float, Date:
		return 4
	case BigInt, Double:
		return 8
	case Timestamp:
		return 12
	case String, Varchar, Binary:
		return 16
	case Char:
		return t.Len
	case Decimal:
		return decimalByteSize(t.Precision)
	default:
		return 0
	}
}

func decimalByteSize(precision int) int {
	switch {
	case precision <= 0:
		return 0
	case precision <= MaxDecimal4Precision:
		return 4
	case precision <= MaxDecimal8Precision:
		return 8
	case precision <= MaxPrecision:
		return 16
	default:
		return 0
	}
}
