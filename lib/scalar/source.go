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

package scalar

// Source yields the value of one column for row i.
type Source interface {
	Len() int
	Value(i int) Value
}

// Row is an opaque engine row.
type Row interface{}

// RowBatch is a batch of rows produced by the execution engine.
type RowBatch interface {
	NumRows() int
	Row(i int) Row
}

// Evaluator evaluates one output expression against a row.
type Evaluator interface {
	Eval(row Row) Value
}

type EvaluatorFunc func(row Row) Value

func (f EvaluatorFunc) Eval(row Row) Value {
	return f(row)
}

// BatchSource evaluates expr lazily against each row of batch.
type BatchSource struct {
	batch RowBatch
	expr  Evaluator
}

func NewBatchSource(batch RowBatch, expr Evaluator) *BatchSource {
	return &BatchSource{batch: batch, expr: expr}
}

func (s *BatchSource) Len() int {
	return s.batch.NumRows()
}

func (s *BatchSource) Value(i int) Value {
	return s.expr.Eval(s.batch.Row(i))
}

// Values is a Source over already materialized values.
type Values []Value

func (vs Values) Len() int {
	return len(vs)
}

func (vs Values) Value(i int) Value {
	return vs[i]
}

// Rows is a RowBatch over a slice of rows, each row being a slice of column values.
type Rows [][]Value

func (r Rows) NumRows() int {
	return len(r)
}

func (r Rows) Row(i int) Row {
	return r[i]
}

// ColumnEvaluator reads column idx of a row produced by Rows.
type ColumnEvaluator int

func (c ColumnEvaluator) Eval(row Row) Value {
	return row.([]Value)[c]
}

// Column returns the source of column idx of rows.
func (r Rows) Column(idx int) Source {
	return NewBatchSource(r, ColumnEvaluator(idx))
}
