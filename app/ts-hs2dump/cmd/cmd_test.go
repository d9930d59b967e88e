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

package cmd

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bgosztonyi/Impala/lib/errno"
	"github.com/bgosztonyi/Impala/lib/hs2"
	"github.com/bgosztonyi/Impala/lib/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	configPath, limit, sampleRows, sampleVersion = "", 0, 16, 6

	out := &bytes.Buffer{}
	rootCmd.SetOut(out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestSampleShowStat_Columnar(t *testing.T) {
	file := filepath.Join(t.TempDir(), "columnar.rs")
	_, err := run(t, "sample", file, "--rows", "10")
	require.NoError(t, err)

	out, err := run(t, "stat", file)
	require.NoError(t, err)
	assert.Contains(t, out, "layout: columnar")
	assert.Contains(t, out, "rows: 10")
	assert.Contains(t, out, "columns: 7")
	assert.Contains(t, out, "double")
	// column i is null in rows i and i+7
	assert.Regexp(t, `c0\s*\|\s*bool\s*\|\s*2\s*\|\s*2`, out)
	assert.Regexp(t, `c3\s*\|\s*double\s*\|\s*1\s*\|\s*2`, out)

	out, err = run(t, "show", file, "--limit", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "NULL")
	assert.Contains(t, out, "0.333333")
	assert.Contains(t, out, "row-2")
	assert.NotContains(t, out, "row-3")
}

func TestSampleShowStat_Legacy(t *testing.T) {
	file := filepath.Join(t.TempDir(), "legacy.rs")
	_, err := run(t, "sample", file, "--protocol", "1", "--rows", "4")
	require.NoError(t, err)

	out, err := run(t, "stat", file)
	require.NoError(t, err)
	assert.Contains(t, out, "layout: row")
	assert.Contains(t, out, "rows: 4")

	out, err = run(t, "show", file)
	require.NoError(t, err)
	assert.Contains(t, out, "2024-03-01 12:03:00")
	assert.Contains(t, out, "1.02")
}

func TestSample_UnsupportedProtocol(t *testing.T) {
	_, err := run(t, "sample", filepath.Join(t.TempDir(), "x.rs"), "--protocol", "11")
	assert.True(t, errno.Equal(err, errno.UnsupportedProtocol))
}

func TestShow_Corrupted(t *testing.T) {
	dir := t.TempDir()
	_, err := run(t, "show", filepath.Join(dir, "missing.rs"))
	assert.Error(t, err)

	file := filepath.Join(dir, "bad.rs")
	require.NoError(t, os.WriteFile(file, []byte{0xff, 0x01}, 0600))
	_, err = run(t, "show", file)
	assert.True(t, errno.Equal(err, errno.InvalidRowSet))
}

func TestSample_ResultCache(t *testing.T) {
	dir := t.TempDir()
	confFile := filepath.Join(dir, "hs2.conf")
	content := fmt.Sprintf(`
[logging]
  path = "%s"
[result-cache]
  enabled = true
  compression = "lz4"
`, strings.ReplaceAll(dir, "\\", "/"))
	require.NoError(t, os.WriteFile(confFile, []byte(content), 0600))
	defer logger.CloseLogger()

	file := filepath.Join(dir, "cached.rs")
	_, err := run(t, "sample", file, "--config", confFile)
	require.NoError(t, err)
	assert.True(t, conf.ResultCache.Enabled)

	buf, err := os.ReadFile(file)
	require.NoError(t, err)
	got, err := hs2.UnmarshalRowSet(buf)
	require.NoError(t, err)

	exp, err := buildSample(hs2.ProtocolV6, 16)
	require.NoError(t, err)
	assert.Equal(t, exp, got)
}

func TestLoadConfig_Invalid(t *testing.T) {
	confFile := filepath.Join(t.TempDir(), "hs2.conf")
	require.NoError(t, os.WriteFile(confFile, []byte("[result-cache]\n  enabled = true\n  compression = \"gzip\"\n"), 0600))

	_, err := run(t, "stat", "unused.rs", "--config", confFile)
	assert.Error(t, err)
}
