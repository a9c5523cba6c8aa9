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

// Package vm implements the Intcode virtual machine.
//
// An Intcode program is a flat array of integers. Each instruction starts with
// an instruction word whose two low decimal digits select the opcode and whose
// remaining digits, read right to left, give the addressing mode of each
// parameter: 0 for position mode (the parameter is an address) and 1 for
// immediate mode (the parameter is the value itself). Parameters that an
// instruction writes to are always in position mode.
//
// Supported opcodes:
//
//	opcode	asm	params	description
//	------	---	------	--------------------------------------------------
//	1	add	r r w	store the sum of the first two parameters in the third
//	2	mul	r r w	store the product of the first two parameters in the third
//	3	in	w	read a value from the input and store it
//	4	out	r	emit the parameter value
//	5	jt	r r	jump to the second parameter if the first is non-zero
//	6	jf	r r	jump to the second parameter if the first is zero
//	7	lt	r r w	store 1 if the first parameter is less than the second, 0 otherwise
//	8	eq	r r w	store 1 if both parameters are equal, 0 otherwise
//	99	hlt		halt
//
// Input and output are pull based. An Instance reads its input from a
// CellReader and is itself a CellReader over the values it outputs: each call
// to ReadCell runs the VM until it emits the next value. This makes it
// possible to plug the output of one VM directly into the input of another
// without intermediate buffering (see package amp).
//
// All errors raised by the VM are fatal. Domain errors are returned as one of
// the *Error struct types declared in this package, possibly wrapped with
// context; use errors.Cause from github.com/pkg/errors to get at them.
package vm
