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

import (
	"encoding/binary"
	"math/big"
	"strconv"
	"time"

	"github.com/bgosztonyi/Impala/lib/errno"
	"github.com/shopspring/decimal"
)

const timestampLayout = "2006-01-02 15:04:05"

// FormatTimestamp renders t as "yyyy-MM-dd HH:mm:ss", followed by nine
// fractional digits when t has a sub-second part. t is printed in its own location.
func FormatTimestamp(t time.Time) string {
	buf := make([]byte, 0, len(timestampLayout)+10)
	buf = t.AppendFormat(buf, timestampLayout)
	if ns := t.Nanosecond(); ns != 0 {
		buf = append(buf, '.')
		frac := strconv.AppendInt(nil, int64(ns), 10)
		for i := len(frac); i < 9; i++ {
			buf = append(buf, '0')
		}
		buf = append(buf, frac...)
	}
	return string(buf)
}

// CharSlot returns exactly n bytes of a CHAR(n) slot. Padding already in the
// slot is kept; a short slot is padded with spaces.
func CharSlot(slot []byte, n int) string {
	if n <= 0 {
		return ""
	}
	if len(slot) >= n {
		return string(slot[:n])
	}
	buf := make([]byte, n)
	copy(buf, slot)
	for i := len(slot); i < n; i++ {
		buf[i] = ' '
	}
	return string(buf)
}

// FormatDecimal renders the little-endian two's complement payload raw as a
// fixed-point number with t.Scale fractional digits. The payload width must
// equal t.ByteSize(), which must be 4, 8 or 16.
func FormatDecimal(raw []byte, t ColumnType) (string, error) {
	width := t.ByteSize()
	switch width {
	case 4, 8, 16:
	default:
		return "", errno.NewError(errno.InvalidDecimalWidth, t, width)
	}
	if len(raw) != width {
		return "", errno.NewError(errno.DecimalWidthMismatch, len(raw), t)
	}

	exp := -int32(t.Scale)
	var d decimal.Decimal
	switch width {
	case 4:
		d = decimal.New(int64(int32(binary.LittleEndian.Uint32(raw))), exp)
	case 8:
		d = decimal.New(int64(binary.LittleEndian.Uint64(raw)), exp)
	case 16:
		d = decimal.NewFromBigInt(decimal16ToBig(raw), exp)
	}
	return d.StringFixed(int32(t.Scale)), nil
}

func decimal16ToBig(raw []byte) *big.Int {
	lo := binary.LittleEndian.Uint64(raw[:8])
	hi := int64(binary.LittleEndian.Uint64(raw[8:16]))

	v := big.NewInt(hi)
	v.Lsh(v, 64)
	return v.Add(v, new(big.Int).SetUint64(lo))
}

// Decimal4 encodes an unscaled value as a 4-byte decimal payload.
func Decimal4(unscaled int32) []byte {
	return binary.LittleEndian.AppendUint32(nil, uint32(unscaled))
}

// Decimal8 encodes an unscaled value as an 8-byte decimal payload.
func Decimal8(unscaled int64) []byte {
	return binary.LittleEndian.AppendUint64(nil, uint64(unscaled))
}

// Decimal16 encodes an unscaled value as a 16-byte decimal payload. Values
// outside the signed 128-bit range are truncated to their low 128 bits.
func Decimal16(unscaled *big.Int) []byte {
	mod := new(big.Int).Lsh(big.NewInt(1), 128)
	v := new(big.Int).Mod(unscaled, mod)

	buf := make([]byte, 16)
	be := v.FillBytes(make([]byte, 16))
	for i := 0; i < 16; i++ {
		buf[i] = be[15-i]
	}
	return buf
}
