// Copyright Huawei Cloud Computing Technologies Co., Ltd.
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

const (
	sizeOfInt16 = 2
	sizeOfInt32 = 4
	sizeOfInt64 = 8

	sizeOfUint8  = 1
	sizeOfUint16 = 2
	sizeOfUint32 = 4
	sizeOfUint64 = 8

	sizeOfFloat64 = 8

	sizeOfBool = 1

	MaxSliceSize = sizeOfUint32
)

func SizeOfString(s string) int {
	return len(s) + sizeOfUint32
}

func SizeOfBoolSlice(s []bool) int {
	return len(s) + MaxSliceSize
}

func SizeOfInt8Slice(s []int8) int {
	return len(s) + MaxSliceSize
}

func SizeOfInt16Slice(s []int16) int {
	return len(s)*sizeOfInt16 + MaxSliceSize
}

func SizeOfInt32Slice(s []int32) int {
	return len(s)*sizeOfInt32 + MaxSliceSize
}

func SizeOfInt64Slice(s []int64) int {
	return len(s)*sizeOfInt64 + MaxSliceSize
}

func SizeOfFloat64Slice(s []float64) int {
	return len(s)*sizeOfFloat64 + MaxSliceSize
}

func SizeOfByteSlice(s []byte) int {
	return len(s) + sizeOfUint32
}

func SizeOfStringSlice(s []string) int {
	n := MaxSliceSize
	for i := range s {
		n += SizeOfString(s[i])
	}
	return n
}
