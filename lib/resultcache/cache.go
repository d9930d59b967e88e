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
	"encoding/binary"
	"sync"
	"sync/atomic"

	"github.com/bgosztonyi/Impala/lib/config"
	"github.com/bgosztonyi/Impala/lib/errno"
	"github.com/bgosztonyi/Impala/lib/hs2"
	"github.com/bgosztonyi/Impala/lib/logger"
	"github.com/bgosztonyi/Impala/lib/metrics"
	"github.com/golang/snappy"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/pierrec/lz4/v4"
	"go.uber.org/zap"
)

// entry header: one compression tag byte; lz4 entries then carry the raw
// length as a big-endian uint32.
const (
	tagNone uint8 = iota
	tagSnappy
	tagLZ4
)

const lz4HeaderSize = 4

// Cache is a per-query LRU of encoded row sets, bounded by entry count and
// by total encoded bytes. It is safe for concurrent use.
type Cache struct {
	mu          sync.Mutex // serializes Put so a replaced entry is accounted once
	lru         *lru.Cache[string, []byte]
	size        atomic.Int64
	maxSize     int64
	compression string
	log         *logger.Logger
}

func NewCache(maxEntries int, maxSize int64, compression string) (*Cache, error) {
	switch compression {
	case config.CompressionNone, config.CompressionSnappy, config.CompressionLZ4:
	default:
		return nil, errno.NewError(errno.InvalidCompression, compression)
	}

	c := &Cache{
		maxSize:     maxSize,
		compression: compression,
		log:         logger.NewLogger(errno.ModuleResultCache),
	}
	l, err := lru.NewWithEvict[string, []byte](maxEntries, c.onEvict)
	if err != nil {
		return nil, errno.NewThirdParty(err, errno.ModuleResultCache)
	}
	c.lru = l
	return c, nil
}

func (c *Cache) onEvict(queryID string, entry []byte) {
	c.size.Add(-int64(len(entry)))
	c.log.Debug("evict cached result", zap.String("query", queryID), zap.Int("bytes", len(entry)))
}

// Put replaces the cached result of queryID with rs.
func (c *Cache) Put(queryID string, rs *hs2.TRowSet) error {
	entry, err := c.compress(hs2.MarshalRowSet(nil, rs))
	if err != nil {
		return errno.NewThirdParty(err, errno.ModuleResultCache)
	}
	if int64(len(entry)) > c.maxSize {
		return errno.NewError(errno.ResultCacheTooLarge, len(entry), c.maxSize)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.lru.Remove(queryID)
	c.size.Add(int64(len(entry)))
	c.lru.Add(queryID, entry)

	for c.size.Load() > c.maxSize {
		if _, _, ok := c.lru.RemoveOldest(); !ok {
			break
		}
	}
	return nil
}

func (c *Cache) Get(queryID string) (*hs2.TRowSet, error) {
	entry, ok := c.lru.Get(queryID)
	metrics.Codec.AddCacheLookup(ok)
	if !ok {
		return nil, errno.NewError(errno.ResultCacheMiss, queryID)
	}

	raw, err := decompress(entry)
	if err != nil {
		return nil, errno.NewError(errno.ResultCacheCorrupted, queryID, err)
	}
	rs, err := hs2.UnmarshalRowSet(raw)
	if err != nil {
		c.log.Warn("drop corrupted cached result", zap.String("query", queryID), zap.Error(err))
		c.lru.Remove(queryID)
		return nil, errno.NewError(errno.ResultCacheCorrupted, queryID, err)
	}
	return rs, nil
}

func (c *Cache) Remove(queryID string) {
	c.lru.Remove(queryID)
}

func (c *Cache) Len() int {
	return c.lru.Len()
}

// Size returns the encoded bytes currently held.
func (c *Cache) Size() int64 {
	return c.size.Load()
}

func (c *Cache) compress(raw []byte) ([]byte, error) {
	switch c.compression {
	case config.CompressionSnappy:
		dst := make([]byte, 1, 1+snappy.MaxEncodedLen(len(raw)))
		dst[0] = tagSnappy
		return append(dst, snappy.Encode(nil, raw)...), nil
	case config.CompressionLZ4:
		bound := lz4.CompressBlockBound(len(raw))
		dst := make([]byte, 1+lz4HeaderSize+bound)
		n, err := lz4.CompressBlock(raw, dst[1+lz4HeaderSize:], nil)
		if err != nil {
			return nil, err
		}
		// incompressible input is stored as is
		if n > 0 {
			dst[0] = tagLZ4
			binary.BigEndian.PutUint32(dst[1:1+lz4HeaderSize], uint32(len(raw)))
			return dst[:1+lz4HeaderSize+n], nil
		}
	}
	return append([]byte{tagNone}, raw...), nil
}

func decompress(entry []byte) ([]byte, error) {
	if len(entry) == 0 {
		return nil, errno.NewError(errno.ShortRead, 0, 1)
	}

	body := entry[1:]
	switch entry[0] {
	case tagNone:
		return body, nil
	case tagSnappy:
		return snappy.Decode(nil, body)
	case tagLZ4:
		if len(body) < lz4HeaderSize {
			return nil, errno.NewError(errno.ShortRead, len(body), lz4HeaderSize)
		}
		dst := make([]byte, binary.BigEndian.Uint32(body))
		n, err := lz4.UncompressBlock(body[lz4HeaderSize:], dst)
		if err != nil {
			return nil, err
		}
		return dst[:n], nil
	default:
		return nil, errno.NewError(errno.InvalidCompression, entry[0])
	}
}
