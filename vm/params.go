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

// Mode is a parameter addressing mode.
type Mode Cell

// Addressing modes.
const (
	Position  Mode = 0 // the parameter is the address of the value
	Immediate Mode = 1 // the parameter is the value
)

func (m Mode) String() string {
	switch m {
	case Position:
		return "position"
	case Immediate:
		return "immediate"
	}
	return "mode(" + strconv.Itoa(int(m)) + ")"
}

// decodeMode returns the addressing mode for the given mode digit of the
// instruction at pc.
func decodeMode(digit Cell, pc int) (Mode, error) {
	switch digit {
	case 0, 1:
		return Mode(digit), nil
	}
	return 0, &InvalidParameterModeError{digit, pc}
}

// load returns the value of the parameter at address slot.
func (i *Instance) load(slot int, m Mode) (Cell, error) {
	v := i.mem[slot]
	if m == Immediate {
		return v, nil
	}
	if v < 0 || v >= Cell(len(i.mem)) {
		return 0, &InvalidMemoryLocationError{v, slot}
	}
	return i.mem[v], nil
}

// addr returns the address a writable parameter at address slot points to.
func (i *Instance) addr(slot int, m Mode) (int, error) {
	if m != Position {
		return 0, &WritableModeError{m, slot}
	}
	v := i.mem[slot]
	if v < 0 || v >= Cell(len(i.mem)) {
		return 0, &InvalidMemoryLocationError{v, slot}
	}
	return int(v), nil
}
