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
	"fmt"

	"github.com/pkg/errors"
)

// ErrInputExhausted is returned when an input instruction executes and the
// input has no value available.
var ErrInputExhausted = errors.New("input exhausted")

// ErrNoOutput is returned by Last when the sequence does not yield any value.
var ErrNoOutput = errors.New("no output")

// InvalidInstructionError is returned when the opcode of an instruction word
// is unknown.
type InvalidInstructionError struct {
	Value Cell // instruction word
	Pos   int  // address of the instruction
}

func (e *InvalidInstructionError) Error() string {
	return fmt.Sprintf("invalid instruction %d at %d", e.Value, e.Pos)
}

// InvalidParameterModeError is returned when an addressing mode digit is
// neither 0 nor 1.
type InvalidParameterModeError struct {
	Mode Cell
	Pos  int // address of the instruction
}

func (e *InvalidParameterModeError) Error() string {
	return fmt.Sprintf("invalid parameter mode %d for instruction at %d", e.Mode, e.Pos)
}

// NotEnoughParametersError is returned when memory ends before the last
// parameter of an instruction.
type NotEnoughParametersError struct {
	Opcode    Opcode
	Expected  int
	Shortfall int // number of missing cells
}

func (e *NotEnoughParametersError) Error() string {
	return fmt.Sprintf("not enough parameters for %v: expected %d, %d missing", e.Opcode, e.Expected, e.Shortfall)
}

// InvalidMemoryLocationError is returned when a position mode parameter holds
// an address outside of memory.
type InvalidMemoryLocationError struct {
	Address Cell
	Pos     int // address of the parameter
}

func (e *InvalidMemoryLocationError) Error() string {
	return fmt.Sprintf("invalid memory location %d referenced at %d", e.Address, e.Pos)
}

// WritableModeError is returned when a parameter written to by an instruction
// is not in position mode.
type WritableModeError struct {
	Mode Mode
	Pos  int // address of the parameter
}

func (e *WritableModeError) Error() string {
	return fmt.Sprintf("writable parameter at %d has mode %v, must be %v", e.Pos, e.Mode, Position)
}

// PCOutOfBoundsError is returned when the instruction pointer lies outside of
// memory.
type PCOutOfBoundsError struct {
	Pos int
}

func (e *PCOutOfBoundsError) Error() string {
	return fmt.Sprintf("instruction pointer %d out of bounds", e.Pos)
}
