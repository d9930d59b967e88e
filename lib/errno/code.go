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

package errno

// common error codes
const (
	InternalError     = 9001
	InvalidDataType   = 9002
	RecoverPanic      = 9003
	InvalidBufferSize = 9005
	ShortBufferSize   = 9006

	// BuiltInError errors returned by built-in functions
	BuiltInError = 9007

	// ThirdPartyError errors returned by third-party packages
	ThirdPartyError = 9008

	ShortRead = 9010
)

// result-set codec error codes
const (
	UnsupportedDataType  = 1201
	InvalidDecimalWidth  = 1202
	DecimalWidthMismatch = 1203
	BitmapOutOfRange     = 1204
	InvalidRowSet        = 1205
	ColumnCountMismatch  = 1206
	InvalidCompression   = 1207
	UnsupportedProtocol  = 1208
)

// result cache error codes
const (
	ResultCacheMiss      = 1301
	ResultCacheTooLarge  = 1302
	ResultCacheCorrupted = 1303
)

// config error codes
const (
	InvalidConfig = 1401
)
