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
	"os"
	"path"
	"strconv"
	"time"

	"github.com/bgosztonyi/Impala/lib/errno"
	"github.com/bgosztonyi/Impala/lib/hs2"
	"github.com/bgosztonyi/Impala/lib/logger"
	"github.com/bgosztonyi/Impala/lib/resultcache"
	"github.com/bgosztonyi/Impala/lib/scalar"
	"github.com/bgosztonyi/Impala/lib/types"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const sampleQueryID = "ts-hs2dump-sample"

var (
	sampleRows    int
	sampleVersion int32

	sampleCmd = &cobra.Command{
		Use:   "sample <snapshot>",
		Short: "write a row set snapshot with generated rows",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rs, err := buildSample(hs2.ProtocolVersion(sampleVersion-1), sampleRows)
			if err != nil {
				return err
			}
			rs, err = roundTripCache(rs)
			if err != nil {
				return err
			}
			return os.WriteFile(path.Clean(args[0]), hs2.MarshalRowSet(nil, rs), 0640)
		},
	}
)

func init() {
	sampleCmd.Flags().IntVar(&sampleRows, "rows", 16, "number of generated rows.")
	sampleCmd.Flags().Int32Var(&sampleVersion, "protocol", 6, "HiveServer2 protocol version 1 to 10, 6 and above are columnar.")
}

var sampleSchema = []types.ColumnType{
	types.NewColumnType(types.Boolean),
	types.NewColumnType(types.Int),
	types.NewColumnType(types.BigInt),
	types.NewColumnType(types.Double),
	types.NewVarcharType(16),
	types.NewDecimalType(9, 2),
	types.NewColumnType(types.Timestamp),
}

// buildSample fills a result set row by row. Each row nulls out one column
// in turn.
func buildSample(version hs2.ProtocolVersion, rows int) (*hs2.TRowSet, error) {
	if version < hs2.ProtocolV1 || version > hs2.ProtocolV10 {
		return nil, errno.NewError(errno.UnsupportedProtocol, int32(version)+1)
	}

	base := time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)
	rs := hs2.NewResultSet(version, sampleSchema, 0)
	for i := 0; i < rows; i++ {
		row := []scalar.Value{
			scalar.Bool(i%2 == 0),
			scalar.Int32(int32(i)),
			scalar.Int64(int64(i) << 32),
			scalar.Float64(float64(i) / 3),
			scalar.Str("row-" + strconv.Itoa(i)),
			scalar.Decimal(types.Decimal4(int32(i*101 + 1))),
			scalar.Timestamp(base.Add(time.Duration(i) * time.Minute)),
		}
		row[i%len(row)] = scalar.Null()
		if err := rs.AddOneRow(row); err != nil {
			return nil, err
		}
	}
	return rs.TRowSet(), nil
}

// roundTripCache passes rs through the result cache when one is configured,
// so the written snapshot is the one a client fetch would be served from.
func roundTripCache(rs *hs2.TRowSet) (*hs2.TRowSet, error) {
	cache, err := resultcache.NewResultCache(conf.ResultCache)
	if err != nil || cache == nil {
		return rs, err
	}
	defer cache.Remove(sampleQueryID)

	if err = cache.Put(sampleQueryID, rs); err != nil {
		return nil, err
	}
	cached, err := cache.Get(sampleQueryID)
	if err != nil {
		return nil, err
	}
	logger.NewLogger(errno.ModuleResultCache).Info("sample served from result cache",
		zap.String("compression", conf.ResultCache.Compression))
	return cached, nil
}
