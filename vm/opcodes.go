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

import "strconv"

// Opcode is the operation selector found in the two low decimal digits of an
// instruction word.
type Opcode Cell

// Intcode Virtual Machine Opcodes.
const (
	OpAdd Opcode = iota + 1
	OpMul
	OpIn
	OpOut
	OpJumpIfTrue
	OpJumpIfFalse
	OpLessThan
	OpEquals
	OpEnd Opcode = 99
)

// ParamKind tells whether an instruction reads or writes a parameter.
type ParamKind int

// Parameter kinds.
const (
	Read ParamKind = iota
	Write
)

// OpInfo describes the shape of an opcode.
type OpInfo struct {
	Name   string      // assembler mnemonic
	Params []ParamKind // one entry per parameter
	Halt   bool        // terminator
	Output bool        // produces an output value
	Jump   bool        // may override the instruction pointer
}

var (
	rrw = []ParamKind{Read, Read, Write}
	rr  = []ParamKind{Read, Read}
)

var opcodes = map[Opcode]OpInfo{
	OpAdd:         {Name: "add", Params: rrw},
	OpMul:         {Name: "mul", Params: rrw},
	OpIn:          {Name: "in", Params: []ParamKind{Write}},
	OpOut:         {Name: "out", Params: []ParamKind{Read}, Output: true},
	OpJumpIfTrue:  {Name: "jt", Params: rr, Jump: true},
	OpJumpIfFalse: {Name: "jf", Params: rr, Jump: true},
	OpLessThan:    {Name: "lt", Params: rrw},
	OpEquals:      {Name: "eq", Params: rrw},
	OpEnd:         {Name: "hlt", Halt: true},
}

var opcodeIndex = make(map[string]Opcode)

func init() {
	for op, info := range opcodes {
		opcodeIndex[info.Name] = op
	}
}

// Lookup returns the description of the given opcode. The returned boolean is
// false if op is not a valid opcode.
func Lookup(op Opcode) (OpInfo, bool) {
	info, ok := opcodes[op]
	return info, ok
}

// LookupName returns the opcode for the given assembler mnemonic.
func LookupName(name string) (Opcode, bool) {
	op, ok := opcodeIndex[name]
	return op, ok
}

// Arity returns the number of parameters taken by op, or 0 for invalid
// opcodes.
func (op Opcode) Arity() int {
	return len(opcodes[op].Params)
}

func (op Opcode) String() string {
	if info, ok := opcodes[op]; ok {
		return info.Name
	}
	return "op(" + strconv.Itoa(int(op)) + ")"
}
