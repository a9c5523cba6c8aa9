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

package asm

import (
	"fmt"
	"io"
	"strconv"

	"github.com/Awfa/advent-of-code-2019/internal/ici"
	"github.com/Awfa/advent-of-code-2019/vm"
)

// Assemble compiles assembly read from the supplied io.Reader and returns the
// resulting image and error if any.
//
// Then name parameter is used only in error messages to name the source of the
// error. If the io.Reader is a file, name should be the file name.
func Assemble(name string, r io.Reader) (img vm.Image, err error) {
	p := newParser()
	if err = p.Parse(name, r); err != nil {
		return nil, err
	}
	return vm.Image(p.i[:p.size]), nil
}

// Disassemble writes a disassembly of the instruction in the given slice at
// position pc to the specified io.Writer and returns the position of the next
// instruction and any write error.
//
// Cells that do not hold a valid instruction word are written as .dat
// directives. Operands missing at the end of the slice are written as ???.
func Disassemble(i []vm.Cell, pc int, w io.Writer) (next int, err error) {
	ew := ici.NewErrWriter(w)

	word := i[pc]
	op := vm.Opcode(word % 100)
	info, ok := vm.Lookup(op)
	if !ok || !validModes(word, len(info.Params)) {
		io.WriteString(ew, ".dat ")
		io.WriteString(ew, strconv.FormatInt(int64(word), 10))
		return pc + 1, ew.Err
	}
	io.WriteString(ew, info.Name)
	d := word / 100
	pc++
	for range info.Params {
		ew.Write([]byte{' '})
		if pc >= len(i) {
			io.WriteString(ew, "???")
			return pc, ew.Err
		}
		if vm.Mode(d%10) == vm.Immediate {
			ew.Write([]byte{'#'})
		}
		io.WriteString(ew, strconv.FormatInt(int64(i[pc]), 10))
		d /= 10
		pc++
	}
	return pc, ew.Err
}

// validModes checks that the instruction word w has valid mode digits for n
// parameters. Extra digits are ignored, like the VM does.
func validModes(w vm.Cell, n int) bool {
	d := w / 100
	for k := 0; k < n; k++ {
		if m := d % 10; m != 0 && m != 1 {
			return false
		}
		d /= 10
	}
	return true
}

// DisassembleAll writes a disassembly of all cells in the given slice to
// the specified io.Writer. The base argument specifies the real address of the
// first cell (i[0]). It will return any write error.
func DisassembleAll(i []vm.Cell, base int, w io.Writer) error {
	ew := ici.NewErrWriter(w)
	for pc := 0; pc < len(i); {
		fmt.Fprintf(ew, "% 10d\t", base+pc)
		pc, _ = Disassemble(i, pc, ew)
		ew.Write([]byte{'\n'})
		if ew.Err != nil {
			return ew.Err
		}
	}
	return nil
}
