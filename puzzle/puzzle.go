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

// Package puzzle provides helpers to run Intcode programs the way the Advent
// of Code puzzles do: patching programs before they run, searching inputs and
// collecting diagnostic output.
package puzzle

import (
	"fmt"

	"github.com/Awfa/advent-of-code-2019/vm"
	"github.com/pkg/errors"
)

// ErrNotFound is returned by FindNounVerb when no noun and verb produce the
// target value.
var ErrNotFound = errors.New("no noun/verb pair found")

// Patch returns a copy of program where the cells starting at addr are
// replaced by values.
func Patch(program vm.Image, addr int, values ...vm.Cell) (vm.Image, error) {
	if addr < 0 || addr+len(values) > len(program) {
		return nil, errors.Errorf("patch %d cells @%d out of bounds (program size %d)", len(values), addr, len(program))
	}
	p := program.Clone()
	copy(p[addr:], values)
	return p, nil
}

// GravityAssist runs program with noun and verb stored at addresses 1 and 2,
// and returns the value left at address 0.
func GravityAssist(program vm.Image, noun, verb vm.Cell, opts ...vm.Option) (vm.Cell, error) {
	p, err := Patch(program, 1, noun, verb)
	if err != nil {
		return 0, err
	}
	i, err := vm.New(p, nil, opts...)
	if err != nil {
		return 0, err
	}
	return i.Run()
}

// FindNounVerb searches the noun and verb in the range 0 to 99 for which
// GravityAssist returns target. Nouns and verbs are addresses, so the range is
// capped to the program size.
//
// It returns 100*noun + verb, or ErrNotFound.
func FindNounVerb(program vm.Image, target vm.Cell, opts ...vm.Option) (vm.Cell, error) {
	hi := vm.Cell(len(program) - 1)
	if hi > 99 {
		hi = 99
	}
	for noun := vm.Cell(0); noun <= hi; noun++ {
		for verb := vm.Cell(0); verb <= hi; verb++ {
			v, err := GravityAssist(program, noun, verb, opts...)
			if err != nil {
				return 0, errors.Wrapf(err, "noun %d, verb %d", noun, verb)
			}
			if v == target {
				return 100*noun + verb, nil
			}
		}
	}
	return 0, ErrNotFound
}

// DiagnosticError is returned by Diagnostic when a test fails.
type DiagnosticError struct {
	Test  int // index of the failed test
	Value vm.Cell
}

func (e *DiagnosticError) Error() string {
	return fmt.Sprintf("diagnostic test #%d failed with code %d", e.Test, e.Value)
}

// Diagnostic runs the diagnostic program with the given system ID as input.
// The program outputs 0 for each successful test, then a diagnostic code. A
// non-zero test result is reported as a *DiagnosticError.
func Diagnostic(program vm.Image, systemID vm.Cell, opts ...vm.Option) (vm.Cell, error) {
	i, err := vm.New(program, vm.Values(systemID), opts...)
	if err != nil {
		return 0, err
	}
	out, err := vm.ReadAll(i)
	if err != nil {
		return 0, err
	}
	if len(out) == 0 {
		return 0, vm.ErrNoOutput
	}
	for k, v := range out[:len(out)-1] {
		if v != 0 {
			return 0, &DiagnosticError{k, v}
		}
	}
	return out[len(out)-1], nil
}
