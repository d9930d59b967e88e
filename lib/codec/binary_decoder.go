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
	"fmt"
	"math"

	"github.com/VictoriaMetrics/VictoriaMetrics/lib/encoding"
)

// BinaryDecoder reads values written by the Append* functions. The typed
// readers do not check bounds; callers check with CheckSize first or use the
// Decode* helpers.
type BinaryDecoder struct {
	buf    []byte
	offset int
}

func NewBinaryDecoder(buf []byte) *BinaryDecoder {
	return &BinaryDecoder{
		buf:    buf,
		offset: 0,
	}
}

func (c *BinaryDecoder) RemainSize() int {
	return len(c.buf) - c.offset
}

func (c *BinaryDecoder) CheckSize(key string, size int) error {
	if size < 0 || c.RemainSize() < size {
		return fmt.Errorf("too small data for %s. expected %d byte(s), only %d byte(s)", key, size, c.RemainSize())
	}
	return nil
}

func (c *BinaryDecoder) Bool() bool {
	i := c.Uint8()
	return (i & 0x01) == 1
}

func (c *BinaryDecoder) Uint8() uint8 {
	i := c.buf[c.offset]
	c.offset += 1
	return i
}

func (c *BinaryDecoder) Uint16() uint16 {
	i := encoding.UnmarshalUint16(c.buf[c.offset : c.offset+sizeOfUint16])
	c.offset += sizeOfUint16
	return i
}

func (c *BinaryDecoder) Uint32() uint32 {
	i := encoding.UnmarshalUint32(c.buf[c.offset : c.offset+sizeOfUint32])
	c.offset += sizeOfUint32
	return i
}

func (c *BinaryDecoder) Uint64() uint64 {
	i := encoding.UnmarshalUint64(c.buf[c.offset : c.offset+sizeOfUint64])
	c.offset += sizeOfUint64
	return i
}

func (c *BinaryDecoder) Int8() int8 {
	return int8(c.Uint8())
}

func (c *BinaryDecoder) Int16() int16 {
	i := encoding.UnmarshalInt16(c.buf[c.offset : c.offset+sizeOfInt16])
	c.offset += sizeOfInt16
	return i
}

func (c *BinaryDecoder) Int32() int32 {
	u := c.Uint32()
	i := int32(u>>1) ^ (int32(u<<31) >> 31)
	return i
}

func (c *BinaryDecoder) Int64() int64 {
	i := encoding.UnmarshalInt64(c.buf[c.offset : c.offset+sizeOfInt64])
	c.offset += sizeOfInt64
	return i
}

func (c *BinaryDecoder) Float64() float64 {
	return math.Float64frombits(c.Uint64())
}

// BytesN appends the next n bytes to dst.
func (c *BinaryDecoder) BytesN(dst []byte, n int) []byte {
	dst = append(dst, c.buf[c.offset:c.offset+n]...)
	c.offset += n
	return dst
}

// BytesNoCopyN returns the next n bytes without copying them.
func (c *BinaryDecoder) BytesNoCopyN(n int) []byte {
	b := c.buf[c.offset : c.offset+n]
	c.offset += n
	return b
}
