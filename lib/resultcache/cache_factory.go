// Copyright 2025 Huawei Cloud Computing Technologies Co., Ltd.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package resultcache

import (
	"github.com/bgosztonyi/Impala/lib/config"
	"github.com/bgosztonyi/Impala/lib/hs2"
)

// ResultCache keeps the row sets already sent for a query so that a client
// can fetch from the start again.
type ResultCache interface {
	Get(queryID string) (*hs2.TRowSet, error)
	Put(queryID string, rs *hs2.TRowSet) error
	Remove(queryID string)
}

// NewResultCache returns nil when the cache is disabled.
func NewResultCache(conf config.ResultCache) (ResultCache, error) {
	if !conf.Enabled {
		return nil, nil
	}
	if err := conf.Validate(); err != nil {
		return nil, err
	}
	c, err := NewCache(conf.MaxEntries, int64(conf.MaxSize), conf.Compression)
	if err != nil {
		return nil, err
	}
	return c, nil
}
