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

package config

import (
	"fmt"

	"github.com/influxdata/influxdb/toml"
)

const (
	CompressionNone   = "none"
	CompressionSnappy = "snappy"
	CompressionLZ4    = "lz4"

	DefaultResultCacheEntries = 1024
	DefaultResultCacheSize    = 256 * 1024 * 1024
)

// Codec controls the result-set codec.
type Codec struct {
	// StitchFastPath copies whole bytes when source and destination offsets are both byte aligned.
	StitchFastPath bool `toml:"stitch-fast-path"`
	MetricsEnabled bool `toml:"metrics-enabled"`
}

func NewCodec() Codec {
	return Codec{
		StitchFastPath: true,
		MetricsEnabled: true,
	}
}

func (c Codec) Validate() error {
	return nil
}

// ResultCache bounds the per-query cache of encoded row sets.
type ResultCache struct {
	Enabled     bool      `toml:"enabled"`
	MaxEntries  int       `toml:"max-entries"`
	MaxSize     toml.Size `toml:"max-size"`
	Compression string    `toml:"compression"`
}

func NewResultCache() ResultCache {
	return ResultCache{
		Enabled:     false,
		MaxEntries:  DefaultResultCacheEntries,
		MaxSize:     toml.Size(DefaultResultCacheSize),
		Compression: CompressionSnappy,
	}
}

func (c ResultCache) Validate() error {
	if !c.Enabled {
		return nil
	}

	iv := intValidator{min: 1, max: 1 << 31}
	if err := iv.Validate([]intValidatorItem{
		{key: "result-cache.max-entries", val: int64(c.MaxEntries)},
		{key: "result-cache.max-size", val: int64(c.MaxSize)},
	}); err != nil {
		return err
	}

	switch c.Compression {
	case CompressionNone, CompressionSnappy, CompressionLZ4:
		return nil
	default:
		return fmt.Errorf("result-cache.compression must be one of %s, %s, %s; got %q",
			CompressionNone, CompressionSnappy, CompressionLZ4, c.Compression)
	}
}

type intValidator struct {
	min int64
	max int64
}

type intValidatorItem struct {
	key string
	val int64
}

func (v intValidator) Validate(items []intValidatorItem) error {
	for i := range items {
		item := &items[i]
		if item.val < v.min || item.val > v.max {
			return fmt.Errorf("%s must be in [%d, %d]; got %d", item.key, v.min, v.max, item.val)
		}
	}
	return nil
}
