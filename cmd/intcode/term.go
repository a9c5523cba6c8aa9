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
	"io"

	"github.com/Awfa/advent-of-code-2019/vm"
)

// promptReader writes a prompt before reading each value. Used when standard
// input is a terminal.
type promptReader struct {
	r vm.CellReader
	w io.Writer
}

func (p *promptReader) ReadCell() (vm.Cell, error) {
	io.WriteString(p.w, "input> ")
	return p.r.ReadCell()
}
