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

package logger

import (
	"fmt"

	"github.com/bgosztonyi/Impala/lib/errno"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger tags every entry with its module and expands *errno.Error fields
// into an "errno" field of the form <module><errno>.
type Logger struct {
	zl     *zap.Logger
	module errno.Module
}

func NewLogger(module errno.Module) *Logger {
	return &Logger{module: module}
}

func (l *Logger) With(fields ...zap.Field) *Logger {
	return &Logger{zl: l.GetZapLogger().With(fields...), module: l.module}
}

func (l *Logger) SetModule(m errno.Module) {
	l.module = m
}

func (l *Logger) Error(msg string, fields ...zap.Field) {
	l.GetZapLogger().Error(msg, l.rewriteFields(fields)...)
}

func (l *Logger) Info(msg string, fields ...zap.Field) {
	l.GetZapLogger().Info(msg, fields...)
}

func (l *Logger) Warn(msg string, fields ...zap.Field) {
	l.GetZapLogger().Warn(msg, l.rewriteFields(fields)...)
}

func (l *Logger) Debug(msg string, fields ...zap.Field) {
	if !l.IsDebugLevel() {
		return
	}
	l.GetZapLogger().Debug(msg, fields...)
}

// GetZapLogger returns the logger set with SetZapLogger, or else the process logger.
func (l *Logger) GetZapLogger() *zap.Logger {
	if l.zl != nil {
		return l.zl
	}
	return GetLogger()
}

func (l *Logger) SetZapLogger(lg *zap.Logger) *Logger {
	l.zl = lg
	return l
}

func (l *Logger) IsDebugLevel() bool {
	if l.zl != nil {
		return l.zl.Core().Enabled(zapcore.DebugLevel)
	}
	mu.RLock()
	defer mu.RUnlock()
	return level == zap.DebugLevel
}

func (l *Logger) rewriteFields(fields []zap.Field) []zap.Field {
	size := len(fields)
	for i := 0; i < size; i++ {
		if fields[i].Key != "error" {
			continue
		}

		tmp, ok := fields[i].Interface.(*errno.Error)
		if !ok || tmp == nil {
			continue
		}

		fields = append(fields, zap.String("errno", l.makeErrno(tmp)))
	}
	return fields
}

func (l *Logger) makeErrno(err *errno.Error) string {
	m := err.Module()
	if m == errno.ModuleUnknown {
		m = l.module
	}
	return fmt.Sprintf("%02d%04d", m, err.Errno())
}
