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

package hs2

import (
	"github.com/bgosztonyi/Impala/lib/bitmap"
	"github.com/bgosztonyi/Impala/lib/config"
	"github.com/bgosztonyi/Impala/lib/errno"
	"github.com/bgosztonyi/Impala/lib/logger"
	"github.com/bgosztonyi/Impala/lib/metrics"
	"github.com/bgosztonyi/Impala/lib/scalar"
	"github.com/bgosztonyi/Impala/lib/types"
	"go.uber.org/zap"
)

var log = logger.NewLogger(errno.ModuleCodec)

// Configure applies the [codec] section to the process wide codec state.
func Configure(conf config.Codec) {
	bitmap.SetStitchFastPath(conf.StitchFastPath)
	metrics.Codec.SetEnabled(conf.MetricsEnabled)
}

// recoverAppend turns a panic raised while appending, such as a bitmap that
// does not cover the target row, into the error returned by the entry point.
func recoverAppend(t types.ColumnType, err *error) {
	r := recover()
	if r == nil {
		return
	}
	e := errno.Recovered(r, errno.ModuleCodec)
	log.Error("append column panic", zap.String("type", t.String()), zap.Error(e))
	*err = e
}

func logFailure(t types.ColumnType, err error) error {
	if e, ok := err.(*errno.Error); ok && e.Level() == errno.LevelFatal {
		log.Error("append column failed", zap.String("type", t.String()), zap.Error(e))
	}
	return err
}

// AppendValue appends v as row rowIdx of col. rowIdx must equal the number
// of rows already in col.
func AppendValue(v scalar.Value, t types.ColumnType, rowIdx int, col *TColumn) (err error) {
	defer recoverAppend(t, &err)
	r := &scalarReader{src: scalar.Values{v}, typ: t}
	return logFailure(t, appendColumn(r, t, streamAt(0, rowIdx), col))
}

// AppendColumnValue appends a pre-decoded value as row rowIdx of col.
func AppendColumnValue(cv *ColumnValue, t types.ColumnType, rowIdx int, col *TColumn) (err error) {
	defer recoverAppend(t, &err)
	return logFailure(t, appendColumn(columnValueReader{cv}, t, streamAt(0, rowIdx), col))
}

// AppendColumnValues writes vals[srcStart:srcStart+count] into rows
// [dstStart, dstStart+count) of col. A row is null when the field of the
// column's family is missing.
func AppendColumnValues(vals []*ColumnValue, t types.ColumnType, srcStart, dstStart, count int, col *TColumn) (err error) {
	defer recoverAppend(t, &err)
	return logFailure(t, appendColumn(columnValueReader(vals), t, bulk(srcStart, dstStart, count), col))
}

// AppendBatch evaluates rows [srcStart, srcStart+count) of src and writes
// them into rows [dstStart, dstStart+count) of col. Existing rows before
// dstStart are kept.
func AppendBatch(src scalar.Source, t types.ColumnType, srcStart, dstStart, count int, col *TColumn) (err error) {
	defer recoverAppend(t, &err)
	r := &scalarReader{src: src, typ: t}
	return logFailure(t, appendColumn(r, t, bulk(srcStart, dstStart, count), col))
}
