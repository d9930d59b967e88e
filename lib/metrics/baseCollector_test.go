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

package metrics_test

import (
	"strings"
	"testing"

	"github.com/bgosztonyi/Impala/lib/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodecCollector(t *testing.T) {
	c := metrics.NewCodecCollector()
	c.AddRows("i32", 5, 2)
	c.AddRows("i32", 3, 0)
	c.AddRows("string", 1, 1)
	c.AddRows("double", 0, 0)
	c.AddEncodedBytes(128)
	c.AddCacheLookup(true)
	c.AddCacheLookup(false)
	c.AddCacheLookup(false)

	rows, nulls := c.Rows("i32")
	assert.Equal(t, int64(8), rows)
	assert.Equal(t, int64(2), nulls)

	rows, _ = c.Rows("double")
	assert.Equal(t, int64(0), rows)

	// 2 families * 2 + encoded bytes + 2 cache outcomes
	assert.Equal(t, 7, testutil.CollectAndCount(c))

	exp := `
# HELP hs2_codec_encoded_bytes_total Bytes produced by the row set encoder.
# TYPE hs2_codec_encoded_bytes_total counter
hs2_codec_encoded_bytes_total 128
# HELP hs2_codec_result_cache_requests_total Result cache lookups, by outcome.
# TYPE hs2_codec_result_cache_requests_total counter
hs2_codec_result_cache_requests_total{outcome="hit"} 1
hs2_codec_result_cache_requests_total{outcome="miss"} 2
`
	require.NoError(t, testutil.CollectAndCompare(c, strings.NewReader(exp),
		"hs2_codec_encoded_bytes_total", "hs2_codec_result_cache_requests_total"))
}

func TestCodecCollector_Disabled(t *testing.T) {
	c := metrics.NewCodecCollector()
	c.SetEnabled(false)
	c.AddRows("bool", 4, 1)
	c.AddEncodedBytes(10)

	rows, _ := c.Rows("bool")
	assert.Equal(t, int64(0), rows)
}

func TestCodecCollector_Register(t *testing.T) {
	reg := prometheus.NewPedanticRegistry()
	require.NoError(t, reg.Register(metrics.NewCodecCollector()))
}
