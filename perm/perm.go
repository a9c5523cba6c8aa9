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

// Package perm enumerates the permutations of a set of values.
package perm

type frame struct {
	start    int
	swap     int
	explored bool
}

// Enumerator yields every ordering of a set of values, one at a time.
//
// It implements swap-based recursive generation with an explicit stack of
// frames so that each call to Next resumes where the previous one left off.
// The order in which permutations are produced is unspecified.
type Enumerator[T any] struct {
	a     []T
	stack []frame
}

// New returns an Enumerator over the permutations of values. The values
// should be distinct, otherwise some orderings will be returned more than
// once. The slice is copied.
func New[T any](values []T) *Enumerator[T] {
	a := make([]T, len(values))
	copy(a, values)
	e := &Enumerator[T]{a: a}
	e.Reset()
	return e
}

// Reset restarts the enumeration.
func (e *Enumerator[T]) Reset() {
	e.stack = append(e.stack[:0], frame{0, 0, false})
}

// Next returns the next permutation. The returned slice is a view into a
// buffer owned by the Enumerator: its contents are only valid until the next
// call to Next and must not be modified. Next returns false once all
// permutations have been returned.
func (e *Enumerator[T]) Next() ([]T, bool) {
	for len(e.stack) > 0 {
		top := len(e.stack) - 1
		f := e.stack[top]
		e.stack = e.stack[:top]
		switch {
		case f.start+1 >= len(e.a):
			return e.a, true
		case f.swap >= len(e.a):
			// all choices for position start tried; return to the parent frame
		case !f.explored:
			e.a[f.start], e.a[f.swap] = e.a[f.swap], e.a[f.start]
			e.stack = append(e.stack,
				frame{f.start, f.swap, true},
				frame{f.start + 1, f.start + 1, false})
		default:
			// undo the swap and try the next value at position start
			e.a[f.start], e.a[f.swap] = e.a[f.swap], e.a[f.start]
			e.stack = append(e.stack, frame{f.start, f.swap + 1, false})
		}
	}
	return nil, false
}

// All returns all remaining permutations as newly allocated slices.
func (e *Enumerator[T]) All() [][]T {
	var all [][]T
	for {
		p, ok := e.Next()
		if !ok {
			return all
		}
		all = append(all, append([]T(nil), p...))
	}
}
