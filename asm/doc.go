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

// Package asm provides utility functions to assemble and disassemble Intcode
// programs.
//
// Supported assembler mnemonics:
//
//	r is a parameter read by the instruction, w a parameter it writes to.
//
//	opcode	asm	params	description
//	------	---	------	------------------------------------------------
//	1	add	r r w	w = r1 + r2
//	2	mul	r r w	w = r1 * r2
//	3	in	w	w = next input value
//	4	out	r	output r
//	5	jt	r r	jump to r2 if r1 != 0
//	6	jf	r r	jump to r2 if r1 == 0
//	7	lt	r r w	w = 1 if r1 < r2, else 0
//	8	eq	r r w	w = 1 if r1 == r2, else 0
//	99	hlt		halt
//
// Operands:
//
// An operand is either an integer literal, a named constant or a label. By
// default operands are compiled in position mode, that is, as the address of
// the value used by the instruction. Prefixing an operand with '#' compiles it
// in immediate mode: the operand is the value. The assembler sets the mode
// digits of the instruction word accordingly:
//
//	add 9 #3 9	( compiles as 1001 9 3 9 )
//	jt #1 #end	( compiles as 1105 1 <address of end> )
//
// Parameters written to by an instruction cannot be immediate.
//
// Comments:
//
// Comments are placed between parentheses, i.e. '(' and ')'. The body of the
// comment must be separated from the enclosing parentheses by a space:
//
//	( this is a valid comment )
//	(this is not)
//
// Tokens:
//
// Input is split at white space (space, tab or new line) into tokens. A token
// that can be converted to a Go integer (see strconv.ParseInt) is an integer
// literal. Where the parser expects an instruction, integer literals and
// constants are compiled as-is, which makes it possible to write raw programs:
//
//	1002 4 3 4 33	( same as: mul 4 #3 4 .dat 33 )
//
// Labels:
//
// Labels are defined by prefixing them with a colon (:) and can be used as an
// operand or a .dat value (without the ':' prefix). They evaluate to the
// address of the next compiled cell:
//
//	in x
//	out x
//	hlt
//	:x .dat 0
//
// Assembler directives:
//
//	.equ <IDENTIFIER> <value>
//
// defines a constant value. The value must be an integer literal or named
// constant.
//
//	.org <value>
//
// will place the next instruction at the address specified by the given
// integer literal or named constant.
//
//	.dat <value>
//
// will compile the specified integer value, named constant or label address
// as-is.
package asm
