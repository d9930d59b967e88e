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

package logger_test

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/bgosztonyi/Impala/lib/config"
	"github.com/bgosztonyi/Impala/lib/errno"
	"github.com/bgosztonyi/Impala/lib/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type LogLine struct {
	Level string
	Msg   string
	Errno string
}

func initLogger(t *testing.T, level zapcore.Level) (string, string) {
	dir := t.TempDir()

	conf := config.NewLogger(config.AppCodec)
	conf.Path = dir
	conf.Level = level

	logger.InitLogger(conf)

	return dir + "/hs2codec.log", dir + "/hs2codec.error.log"
}

func readLines(t *testing.T, filename string) []LogLine {
	fp, err := os.Open(filename)
	require.NoError(t, err)
	defer fp.Close()

	var lines []LogLine
	scanner := bufio.NewScanner(fp)
	for scanner.Scan() {
		line := LogLine{}
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &line))
		lines = append(lines, line)
	}
	return lines
}

func TestLogger(t *testing.T) {
	filename, errFile := initLogger(t, zapcore.DebugLevel)

	errMessage := fmt.Sprintf("test error. %d", time.Now().UnixNano())
	infoMessage := fmt.Sprintf("test info. %d", time.Now().UnixNano())

	lg := logger.GetLogger()
	lg.Info(infoMessage)
	lg.Error(errMessage)
	logger.CloseLogger()

	lines := readLines(t, filename)
	require.Len(t, lines, 2)
	assert.Equal(t, "info", lines[0].Level)
	assert.Equal(t, infoMessage, lines[0].Msg)
	assert.Equal(t, "error", lines[1].Level)

	lines = readLines(t, errFile)
	require.Len(t, lines, 1)
	assert.Equal(t, errMessage, lines[0].Msg)
}

func TestModuleLogger_Errno(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	lg := logger.NewLogger(errno.ModuleCodec).SetZapLogger(zap.New(core))

	lg.Error("append failed", zap.Error(errno.NewError(errno.UnsupportedDataType, "ARRAY")))
	lg.Warn("plain", zap.String("k", "v"))
	lg.Debug("debug")

	entries := logs.All()
	require.Len(t, entries, 3)
	assert.Equal(t, "011201", entries[0].ContextMap()["errno"])
	_, ok := entries[1].ContextMap()["errno"]
	assert.False(t, ok)
	assert.Equal(t, "debug", entries[2].Message)
}

func TestSetLevel(t *testing.T) {
	assert.NoError(t, logger.SetLevel("warn"))
	assert.Equal(t, zapcore.WarnLevel, logger.Alevel.Level())
	assert.Error(t, logger.SetLevel("nope"))
	assert.NoError(t, logger.SetLevel("info"))
}
