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

package main

import (
	"fmt"
	"strings"

	"github.com/Awfa/advent-of-code-2019/asm"
	"github.com/Awfa/advent-of-code-2019/vm"
)

// traceInstruction logs the instruction about to be executed.
func traceInstruction(i *vm.Instance, op vm.Opcode) {
	log.Debugf("%s", traceLine(i, op))
}

// traceLine disassembles the instruction about to be executed. Only the cells
// of that instruction are copied out of the VM.
func traceLine(i *vm.Instance, op vm.Opcode) string {
	var b strings.Builder
	pc := i.PC()
	fmt.Fprintf(&b, "% 8d\t", pc)
	asm.Disassemble(i.Cells(pc, 1+op.Arity()), 0, &b)
	return b.String()
}
