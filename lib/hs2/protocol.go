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

package hs2

import "fmt"

// ProtocolVersion is the HiveServer2 protocol negotiated with the client.
type ProtocolVersion int32

const (
	ProtocolV1 ProtocolVersion = iota
	ProtocolV2
	ProtocolV3
	ProtocolV4
	ProtocolV5
	ProtocolV6
	ProtocolV7
	ProtocolV8
	ProtocolV9
	ProtocolV10
)

// UsesColumnar reports whether results are sent as columns (V6 and later).
func (v ProtocolVersion) UsesColumnar() bool {
	return v >= ProtocolV6
}

func (v ProtocolVersion) String() string {
	if v < ProtocolV1 || v > ProtocolV10 {
		return fmt.Sprintf("UNKNOWN_PROTOCOL(%d)", int32(v))
	}
	return fmt.Sprintf("HIVE_CLI_SERVICE_PROTOCOL_V%d", int32(v)+1)
}
