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
	"sync"

	"github.com/bgosztonyi/Impala/lib/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	mu     sync.RWMutex
	logger = zap.NewNop()
	hooks  []*lumberjack.Logger
	level  = zap.InfoLevel
)

var Alevel = zap.NewAtomicLevelAt(zap.InfoLevel)

func SetLevel(lev string) error {
	var l zapcore.Level
	if err := l.UnmarshalText([]byte(lev)); err != nil {
		return err
	}
	Alevel.SetLevel(l)

	mu.Lock()
	level = l
	mu.Unlock()
	return nil
}

// InitLogger replaces the process logger with one writing JSON lines to
// <path>/<app>.log and errors additionally to <path>/<app>.error.log.
// Until it is called the process logger discards everything.
func InitLogger(conf config.Logger) {
	lg, newHooks := getLogger(conf)

	mu.Lock()
	defer mu.Unlock()
	closeHooks()
	hooks = newHooks
	level = conf.Level
	logger = lg
}

func GetLogger() *zap.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

func SetLogger(zapLogger *zap.Logger) {
	mu.Lock()
	defer mu.Unlock()
	logger = zapLogger
}

func CloseLogger() {
	mu.Lock()
	defer mu.Unlock()
	_ = logger.Sync()
	closeHooks()
}

func getLogger(conf config.Logger) (*zap.Logger, []*lumberjack.Logger) {
	hookNormal := conf.NewLumberjackLogger(conf.GetApp())
	hookError := conf.NewLumberjackLogger(makeErrFileName(conf.GetApp()))

	encoder := newEncoder()

	levelError := zap.LevelEnablerFunc(func(lvl zapcore.Level) bool {
		return lvl >= zapcore.ErrorLevel
	})

	Alevel.SetLevel(rewriteLevel(conf.Level))

	core := zapcore.NewTee(
		zapcore.NewCore(encoder, zapcore.AddSync(hookNormal), Alevel),
		zapcore.NewCore(encoder, zapcore.AddSync(hookError), levelError),
	)

	return zap.New(core, zap.AddCaller()), []*lumberjack.Logger{hookNormal, hookError}
}

func rewriteLevel(level zapcore.Level) zapcore.Level {
	if level < zap.DebugLevel || level > zap.FatalLevel {
		level = zap.InfoLevel
	}

	return level
}

func makeErrFileName(fileName string) string {
	return fmt.Sprintf("%s.error", fileName)
}

// closeHooks requires mu to be held.
func closeHooks() {
	for _, h := range hooks {
		_ = h.Close()
	}
	hooks = nil
}

func newEncoder() zapcore.Encoder {
	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        "time",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.RFC3339NanoTimeEncoder,
		EncodeDuration: zapcore.SecondsDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
		EncodeName:     zapcore.FullNameEncoder,
	}

	return zapcore.NewJSONEncoder(encoderConfig)
}
