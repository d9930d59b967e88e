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

package metrics

import (
	"sync"
	"sync/atomic"

	"github.com/prometheus/client_golang/prometheus"
)

const subsystem = "hs2_codec"

func NewDesc(subsystem, name, help string, labels []string) *prometheus.Desc {
	return prometheus.NewDesc(
		prometheus.BuildFQName("", subsystem, name),
		help,
		labels,
		nil,
	)
}

type familyStat struct {
	rows  atomic.Int64
	nulls atomic.Int64
}

// CodecCollector counts the work done by the result-set codec.
type CodecCollector struct {
	enabled atomic.Bool

	families sync.Map // string -> *familyStat

	encodedBytes atomic.Int64
	cacheHits    atomic.Int64
	cacheMisses  atomic.Int64

	rowsDesc         *prometheus.Desc
	nullsDesc        *prometheus.Desc
	encodedBytesDesc *prometheus.Desc
	cacheDesc        *prometheus.Desc
}

// Codec is the process wide collector; register it with prometheus.MustRegister.
var Codec = NewCodecCollector()

func NewCodecCollector() *CodecCollector {
	c := &CodecCollector{
		rowsDesc:         NewDesc(subsystem, "rows_total", "Rows appended to result columns, by column family.", []string{"family"}),
		nullsDesc:        NewDesc(subsystem, "nulls_total", "Null rows appended to result columns, by column family.", []string{"family"}),
		encodedBytesDesc: NewDesc(subsystem, "encoded_bytes_total", "Bytes produced by the row set encoder.", nil),
		cacheDesc:        NewDesc(subsystem, "result_cache_requests_total", "Result cache lookups, by outcome.", []string{"outcome"}),
	}
	c.enabled.Store(true)
	return c
}

func (c *CodecCollector) SetEnabled(en bool) {
	c.enabled.Store(en)
}

func (c *CodecCollector) stat(family string) *familyStat {
	if v, ok := c.families.Load(family); ok {
		return v.(*familyStat)
	}
	v, _ := c.families.LoadOrStore(family, &familyStat{})
	return v.(*familyStat)
}

func (c *CodecCollector) AddRows(family string, rows, nulls int) {
	if !c.enabled.Load() || rows == 0 {
		return
	}
	s := c.stat(family)
	s.rows.Add(int64(rows))
	s.nulls.Add(int64(nulls))
}

// Rows returns the rows and nulls counted for family.
func (c *CodecCollector) Rows(family string) (int64, int64) {
	v, ok := c.families.Load(family)
	if !ok {
		return 0, 0
	}
	s := v.(*familyStat)
	return s.rows.Load(), s.nulls.Load()
}

func (c *CodecCollector) AddEncodedBytes(n int) {
	if c.enabled.Load() {
		c.encodedBytes.Add(int64(n))
	}
}

func (c *CodecCollector) AddCacheLookup(hit bool) {
	if !c.enabled.Load() {
		return
	}
	if hit {
		c.cacheHits.Add(1)
	} else {
		c.cacheMisses.Add(1)
	}
}

func (c *CodecCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.rowsDesc
	ch <- c.nullsDesc
	ch <- c.encodedBytesDesc
	ch <- c.cacheDesc
}

func (c *CodecCollector) Collect(ch chan<- prometheus.Metric) {
	c.families.Range(func(k, v interface{}) bool {
		family := k.(string)
		s := v.(*familyStat)
		ch <- prometheus.MustNewConstMetric(c.rowsDesc, prometheus.CounterValue, float64(s.rows.Load()), family)
		ch <- prometheus.MustNewConstMetric(c.nullsDesc, prometheus.CounterValue, float64(s.nulls.Load()), family)
		return true
	})
	ch <- prometheus.MustNewConstMetric(c.encodedBytesDesc, prometheus.CounterValue, float64(c.encodedBytes.Load()))
	ch <- prometheus.MustNewConstMetric(c.cacheDesc, prometheus.CounterValue, float64(c.cacheHits.Load()), "hit")
	ch <- prometheus.MustNewConstMetric(c.cacheDesc, prometheus.CounterValue, float64(c.cacheMisses.Load()), "miss")
}
