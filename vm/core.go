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

	"github.com/pkg/errors"
)

// Status reports the outcome of a successful Step.
type Status int

// Step results.
const (
	Progressed Status = iota // an instruction was executed
	Output                   // an instruction was executed and produced a value
	Halted                   // the VM is halted
)

func (s Status) String() string {
	switch s {
	case Progressed:
		return "progressed"
	case Output:
		return "output"
	case Halted:
		return "halted"
	}
	return "unknown"
}

// Step executes the instruction at PC.
//
// If the instruction produced a value, the returned Status is Output and the
// value is returned as well. Once the VM has executed a halt instruction, Step
// will keep returning Halted without executing anything.
//
// Errors are fatal: the PC is left pointing to the failing instruction and the
// returned Status is meaningless. In particular, ErrInputExhausted is returned
// (wrapped) if an input instruction runs out of values, and any other error
// returned by the input is passed through, wrapped.
func (i *Instance) Step() (Status, Cell, error) {
	if i.halted {
		return Halted, 0, nil
	}
	pc := i.pc
	if pc < 0 || pc >= len(i.mem) {
		return Progressed, 0, &PCOutOfBoundsError{pc}
	}
	w := i.mem[pc]
	op := Opcode(w % 100)
	info, ok := opcodes[op]
	if !ok {
		return Progressed, 0, &InvalidInstructionError{w, pc}
	}
	n := len(info.Params)
	if short := pc + n + 1 - len(i.mem); short > 0 {
		return Progressed, 0, &NotEnoughParametersError{op, n, short}
	}

	// Resolve parameters left to right: values for read parameters,
	// addresses for write parameters.
	var args [3]Cell
	d := w / 100
	for k, kind := range info.Params {
		m, err := decodeMode(d%10, pc)
		if err != nil {
			return Progressed, 0, err
		}
		d /= 10
		slot := pc + k + 1
		if kind == Write {
			a, err := i.addr(slot, m)
			if err != nil {
				return Progressed, 0, err
			}
			args[k] = Cell(a)
		} else {
			v, err := i.load(slot, m)
			if err != nil {
				return Progressed, 0, err
			}
			args[k] = v
		}
	}

	if i.trace != nil {
		i.trace(i, op)
	}

	// Handlers only compute values. Whether an instruction halts, outputs a
	// value or may move the instruction pointer comes from the opcode table.
	var (
		out    Cell
		target Cell
		jump   bool
	)
	switch op {
	case OpAdd:
		i.mem[args[2]] = args[0] + args[1]
	case OpMul:
		i.mem[args[2]] = args[0] * args[1]
	case OpIn:
		v, err := i.input.ReadCell()
		if err != nil {
			if err == io.EOF {
				err = ErrInputExhausted
			}
			return Progressed, 0, errors.Wrapf(err, "in @pc=%d", pc)
		}
		i.mem[args[0]] = v
	case OpOut:
		out = args[0]
	case OpJumpIfTrue:
		jump, target = args[0] != 0, args[1]
	case OpJumpIfFalse:
		jump, target = args[0] == 0, args[1]
	case OpLessThan:
		i.mem[args[2]] = bool2Cell(args[0] < args[1])
	case OpEquals:
		i.mem[args[2]] = bool2Cell(args[0] == args[1])
	}

	i.insCount++
	if info.Halt {
		i.halted = true
		return Halted, 0, nil
	}
	if info.Jump && jump {
		i.pc = int(target)
	} else {
		i.pc = pc + n + 1
	}
	if info.Output {
		return Output, out, nil
	}
	return Progressed, 0, nil
}

func bool2Cell(b bool) Cell {
	if b {
		return 1
	}
	return 0
}

// Run runs the VM until it halts and returns the value at address 0. Output
// values produced along the way are discarded.
//
// If an error occurs, the PC will point to the instruction that triggered the
// error.
func (i *Instance) Run() (Cell, error) {
	for {
		st, _, err := i.Step()
		if err != nil {
			return 0, err
		}
		if st == Halted {
			return i.mem[0], nil
		}
	}
}

// ReadCell runs the VM until it outputs a value and returns it. This makes an
// Instance usable as the input of another one.
//
// ReadCell returns io.EOF once the VM is halted. If execution fails, the error
// is returned, and returned again on every subsequent call.
func (i *Instance) ReadCell() (Cell, error) {
	if i.err != nil {
		return 0, i.err
	}
	for {
		st, v, err := i.Step()
		switch {
		case err != nil:
			i.err = err
			return 0, err
		case st == Output:
			return v, nil
		case st == Halted:
			return 0, io.EOF
		}
	}
}
