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

type Message struct {
	format string
	level  Level
	module Module
}

func newMessage(format string, module Module, level Level) *Message {
	return &Message{
		format: format,
		level:  level,
		module: module,
	}
}

func newNoticeMessage(format string, module Module) *Message {
	return newMessage(format, module, LevelNotice)
}

func newWarnMessage(format string, module Module) *Message {
	return newMessage(format, module, LevelWarn)
}

func newFatalMessage(format string, module Module) *Message {
	return newMessage(format, module, LevelFatal)
}

var unknownMessage = newNoticeMessage("unknown error", ModuleUnknown)

// When an error message is initialized, the level and module corresponding to the error code are bound
// If the module to which the error code belongs cannot be determined during initialization, set to ModuleUnknown
var messageMap = map[Errno]*Message{
	// common error codes
	InternalError:     newWarnMessage("%v", ModuleUnknown),
	InvalidDataType:   newWarnMessage("invalid data type, exp: %s, got: %s", ModuleUnknown),
	RecoverPanic:      newFatalMessage("runtime panic: %v", ModuleUnknown),
	InvalidBufferSize: newWarnMessage("invalid buffer size, excepted %d; actual %d", ModuleUnknown),
	ShortBufferSize:   newWarnMessage("invalid buffer size, expected greater than %d; actual %d", ModuleUnknown),
	ShortRead:         newWarnMessage("short read. succeeded in reading %d bytes, but expected %d bytes", ModuleUnknown),

	// result-set codec error codes
	UnsupportedDataType:  newFatalMessage("unhandled type: %s", ModuleCodec),
	InvalidDecimalWidth:  newFatalMessage("bad type: %s, unsupported decimal byte size %d", ModuleCodec),
	DecimalWidthMismatch: newFatalMessage("decimal payload of %d bytes does not match %s", ModuleCodec),
	BitmapOutOfRange:     newFatalMessage("null bitmap of %d bytes does not cover row %d", ModuleCodec),
	InvalidRowSet:        newWarnMessage("invalid row set: %s", ModuleCodec),
	ColumnCountMismatch:  newWarnMessage("column count mismatch, exp: %d, got: %d", ModuleCodec),
	InvalidCompression:   newWarnMessage("unknown compression: %s", ModuleCodec),
	UnsupportedProtocol:  newWarnMessage("unsupported protocol version: %d", ModuleCodec),

	// result cache error codes
	ResultCacheMiss:      newNoticeMessage("no cached result for query %s", ModuleResultCache),
	ResultCacheTooLarge:  newWarnMessage("result of %d bytes exceeds cache limit %d", ModuleResultCache),
	ResultCacheCorrupted: newWarnMessage("cached result for query %s is corrupted: %v", ModuleResultCache),

	// config error codes
	InvalidConfig: newWarnMessage("invalid config: %s", ModuleConfig),
}
