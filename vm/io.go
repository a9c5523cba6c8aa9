// This file is part of advent-of-code-2019 - https://github.com/Awfa/advent-of-code-2019
//
// Copyright 2019 The advent-of-code-2019 Authors
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

package vm

import (
	"bufio"
	"io"
	"strconv"

	"github.com/pkg/errors"
)

// CellReader is the interface that wraps the ReadCell method.
//
// ReadCell returns the next value of a sequence. It returns io.EOF when no
// value is available. Any other error means that the source has failed.
//
// An *Instance is a CellReader over the values it outputs.
type CellReader interface {
	ReadCell() (Cell, error)
}

type values struct {
	v []Cell
}

func (r *values) ReadCell() (Cell, error) {
	if len(r.v) == 0 {
		return 0, io.EOF
	}
	v := r.v[0]
	r.v = r.v[1:]
	return v, nil
}

// Values returns a CellReader that yields the given values in order.
func Values(v ...Cell) CellReader {
	return &values{v}
}

type multiReader struct {
	readers []CellReader
}

func (mr *multiReader) ReadCell() (Cell, error) {
	for len(mr.readers) > 1 {
		v, err := mr.readers[0].ReadCell()
		if err != io.EOF {
			return v, err
		}
		mr.readers = mr.readers[1:]
	}
	if len(mr.readers) == 0 {
		return 0, io.EOF
	}
	return mr.readers[0].ReadCell()
}

// MultiReader returns a CellReader that's the logical concatenation of the
// provided readers. They're read sequentially: once a reader returns io.EOF,
// the next one is used. The last reader is never discarded, so a source that
// may yield more values later, like a Queue, keeps being polled.
func MultiReader(readers ...CellReader) CellReader {
	r := make([]CellReader, len(readers))
	copy(r, readers)
	return &multiReader{r}
}

type result struct {
	v   Cell
	err error
}

// Queue is a FIFO queue of values usable as a CellReader. ReadCell returns
// io.EOF while the queue is empty; values pushed afterwards will be returned
// by later calls.
//
// A Queue is not safe for concurrent use.
type Queue struct {
	items []result
}

// Push appends v to the queue.
func (q *Queue) Push(v Cell) {
	q.items = append(q.items, result{v: v})
}

// PushError appends an error to the queue. It will be returned by ReadCell in
// due order.
func (q *Queue) PushError(err error) {
	q.items = append(q.items, result{err: err})
}

// Len returns the number of pending items.
func (q *Queue) Len() int {
	return len(q.items)
}

// ReadCell pops the item at the front of the queue.
func (q *Queue) ReadCell() (Cell, error) {
	if len(q.items) == 0 {
		return 0, io.EOF
	}
	it := q.items[0]
	q.items[0] = result{}
	q.items = q.items[1:]
	return it.v, it.err
}

type teeReader struct {
	r  CellReader
	fn func(Cell, error)
}

func (t *teeReader) ReadCell() (Cell, error) {
	v, err := t.r.ReadCell()
	if err != io.EOF {
		t.fn(v, err)
	}
	return v, err
}

// Tee returns a CellReader that calls fn with every value or error read from r
// before returning it. io.EOF is not passed to fn.
func Tee(r CellReader, fn func(v Cell, err error)) CellReader {
	return &teeReader{r, fn}
}

func isSep(c byte) bool {
	switch c {
	case ',', ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}

// scanCells is a bufio.SplitFunc that returns comma or space separated
// tokens.
func scanCells(data []byte, atEOF bool) (advance int, token []byte, err error) {
	start := 0
	for start < len(data) && isSep(data[start]) {
		start++
	}
	for k := start; k < len(data); k++ {
		if isSep(data[k]) {
			return k + 1, data[start:k], nil
		}
	}
	if atEOF && len(data) > start {
		return len(data), data[start:], nil
	}
	return start, nil, nil
}

// TextReader is a CellReader that parses signed decimal integers separated by
// commas and/or white space from an io.Reader.
type TextReader struct {
	s *bufio.Scanner
	n int
}

// NewTextReader returns a new TextReader reading from r.
func NewTextReader(r io.Reader) *TextReader {
	s := bufio.NewScanner(r)
	s.Split(scanCells)
	return &TextReader{s: s}
}

// ReadCell parses the next integer. It returns io.EOF at the end of the
// input.
func (t *TextReader) ReadCell() (Cell, error) {
	if !t.s.Scan() {
		if err := t.s.Err(); err != nil {
			return 0, errors.Wrap(err, "read failed")
		}
		return 0, io.EOF
	}
	n, err := strconv.ParseInt(t.s.Text(), 10, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "value #%d", t.n)
	}
	t.n++
	return Cell(n), nil
}

// ReadAll reads from r until io.EOF and returns the values read. A successful
// call returns err == nil, not err == io.EOF.
func ReadAll(r CellReader) ([]Cell, error) {
	var out []Cell
	for {
		v, err := r.ReadCell()
		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return out, err
		}
		out = append(out, v)
	}
}

// Last reads from r until io.EOF and returns the last value read. It returns
// ErrNoOutput if r did not yield any value.
func Last(r CellReader) (Cell, error) {
	var (
		last Cell
		ok   bool
	)
	for {
		v, err := r.ReadCell()
		if err == io.EOF {
			break
		}
		if err != nil {
			return 0, err
		}
		last, ok = v, true
	}
	if !ok {
		return 0, ErrNoOutput
	}
	return last, nil
}
