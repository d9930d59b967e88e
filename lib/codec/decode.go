// Copyright 2025 Huawei Cloud Computing Technologies Co., Ltd.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package codec

import (
	"errors"
)

func DecodeBool(dec *BinaryDecoder, key string) (bool, error) {
	if err := dec.CheckSize(key, sizeOfBool); err != nil {
		return false, err
	}
	return dec.Bool(), nil
}

func DecodeUint8(dec *BinaryDecoder, key string) (uint8, error) {
	if err := dec.CheckSize(key, sizeOfUint8); err != nil {
		return 0, err
	}
	return dec.Uint8(), nil
}

func DecodeUint16(dec *BinaryDecoder, key string) (uint16, error) {
	if err := dec.CheckSize(key, sizeOfUint16); err != nil {
		return 0, err
	}
	return dec.Uint16(), nil
}

func DecodeUint32(dec *BinaryDecoder, key string) (uint32, error) {
	if err := dec.CheckSize(key, sizeOfUint32); err != nil {
		return 0, err
	}
	return dec.Uint32(), nil
}

func DecodeUint64(dec *BinaryDecoder, key string) (uint64, error) {
	if err := dec.CheckSize(key, sizeOfUint64); err != nil {
		return 0, err
	}
	return dec.Uint64(), nil
}

func DecodeInt32(dec *BinaryDecoder, key string) (int32, error) {
	if err := dec.CheckSize(key, sizeOfInt32); err != nil {
		return 0, err
	}
	return dec.Int32(), nil
}

func DecodeInt64(dec *BinaryDecoder, key string) (int64, error) {
	if err := dec.CheckSize(key, sizeOfInt64); err != nil {
		return 0, err
	}
	return dec.Int64(), nil
}

func DecodeBytes(dec *BinaryDecoder, key string) ([]byte, error) {
	n, err := DecodeUint32(dec, key)
	if err != nil {
		return nil, err
	}
	if err = dec.CheckSize(key, int(n)); err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, nil
	}
	return dec.BytesN(nil, int(n)), nil
}

func DecodeString(dec *BinaryDecoder, key string) (string, error) {
	n, err := DecodeUint32(dec, key)
	if err != nil {
		return "", err
	}
	if err = dec.CheckSize(key, int(n)); err != nil {
		return "", err
	}
	return string(dec.BytesNoCopyN(int(n))), nil
}

// decodeFixedSlice reads a count-prefixed slice of fixed width elements.
func decodeFixedSlice[T any](dec *BinaryDecoder, key string, width int, read func() T) ([]T, error) {
	n, err := DecodeUint32(dec, key)
	if err != nil {
		return nil, err
	}
	if int(n) < 0 || int(n) > dec.RemainSize()/width {
		return nil, dec.CheckSize(key, int(n)*width)
	}
	if n == 0 {
		return nil, nil
	}

	a := make([]T, n)
	for i := range a {
		a[i] = read()
	}
	return a, nil
}

func DecodeBoolSlice(dec *BinaryDecoder, key string) ([]bool, error) {
	return decodeFixedSlice(dec, key, sizeOfBool, dec.Bool)
}

func DecodeInt8Slice(dec *BinaryDecoder, key string) ([]int8, error) {
	return decodeFixedSlice(dec, key, sizeOfUint8, dec.Int8)
}

func DecodeInt16Slice(dec *BinaryDecoder, key string) ([]int16, error) {
	return decodeFixedSlice(dec, key, sizeOfInt16, dec.Int16)
}

func DecodeInt32Slice(dec *BinaryDecoder, key string) ([]int32, error) {
	return decodeFixedSlice(dec, key, sizeOfInt32, dec.Int32)
}

func DecodeInt64Slice(dec *BinaryDecoder, key string) ([]int64, error) {
	return decodeFixedSlice(dec, key, sizeOfInt64, dec.Int64)
}

func DecodeFloat64Slice(dec *BinaryDecoder, key string) ([]float64, error) {
	return decodeFixedSlice(dec, key, sizeOfFloat64, dec.Float64)
}

func DecodeStringSlice(dec *BinaryDecoder, key string) ([]string, error) {
	var a []string
	err := DecodeArray(dec, key, func(dec *BinaryDecoder) error {
		s, err := DecodeString(dec, key)
		a = append(a, s)
		return err
	})
	return a, err
}

// DecodeArray reads a count and calls cb once per element.
func DecodeArray(dec *BinaryDecoder, key string, cb func(dec *BinaryDecoder) error) error {
	n, err := DecodeUint32(dec, key)
	if err != nil {
		return err
	}

	nInt := int(n)
	if nInt < 0 {
		return errors.New("array length overflow")
	}

	for range nInt {
		if err = cb(dec); err != nil {
			return err
		}
	}
	return nil
}
