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
	"io"
	"strconv"

	"github.com/Awfa/advent-of-code-2019/internal/ici"
)

// Cell is the raw type stored in a memory location.
type Cell int64

// Instance represents an Intcode VM instance.
type Instance struct {
	pc       int
	mem      Image
	input    CellReader
	halted   bool
	err      error // sticky output channel error
	insCount int64
	trace    TraceFunc
}

// Option interface
type Option func(*Instance) error

// TraceFunc is the function prototype for instruction trace hooks. It is
// called with the decoded opcode before the instruction at i.PC() executes.
type TraceFunc func(i *Instance, op Opcode)

// Trace sets a hook called before each instruction is executed. Passing nil
// disables tracing.
func Trace(fn TraceFunc) Option {
	return func(i *Instance) error {
		i.trace = fn
		return nil
	}
}

// SetOptions sets the provided options.
func (i *Instance) SetOptions(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(i); err != nil {
			return err
		}
	}
	return nil
}

// New creates a new Intcode Virtual Machine instance.
//
// The program is copied into the VM's own memory, so the same program image
// can be shared between any number of instances and is never modified.
// Memory size is fixed for the lifetime of the instance.
//
// Values for input instructions are pulled from input, as needed. A nil input
// behaves like an empty one.
//
// Options will be set by calling SetOptions.
func New(program Image, input CellReader, opts ...Option) (*Instance, error) {
	if input == nil {
		input = Values()
	}
	i := &Instance{
		mem:   program.Clone(),
		input: input,
	}
	if err := i.SetOptions(opts...); err != nil {
		return nil, err
	}
	return i, nil
}

// PC returns the current value of the instruction pointer.
func (i *Instance) PC() int {
	return i.pc
}

// Mem returns a copy of the VM memory.
func (i *Instance) Mem() Image {
	return i.mem.Clone()
}

// Cells returns a copy of the n memory cells starting at addr, truncated to
// the memory size.
func (i *Instance) Cells(addr, n int) []Cell {
	if addr < 0 || addr >= len(i.mem) || n <= 0 {
		return nil
	}
	return append([]Cell(nil), i.mem[addr:min(addr+n, len(i.mem))]...)
}

// Halted returns true once the VM has executed a halt instruction.
func (i *Instance) Halted() bool {
	return i.halted
}

// InstructionCount returns the number of instructions executed so far.
func (i *Instance) InstructionCount() int64 {
	return i.insCount
}

// Dump writes the instruction pointer and the VM memory to the specified
// io.Writer. The PC is on the first line, and memory on the second in the same
// format as accepted by Parse.
func (i *Instance) Dump(w io.Writer) error {
	ew := ici.NewErrWriter(w)
	io.WriteString(ew, strconv.Itoa(i.pc))
	ew.Write([]byte{'\n'})
	if err := i.mem.Encode(ew); err != nil {
		return err
	}
	ew.Write([]byte{'\n'})
	return ew.Err
}
