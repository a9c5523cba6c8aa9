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
	"strconv"
	"strings"

	"github.com/Awfa/advent-of-code-2019/vm"
	"github.com/pkg/errors"
)

// cellList is a flag.Value accepting comma separated integers. The flag can be
// specified multiple times.
type cellList []vm.Cell

func (l *cellList) String() string { return fmt.Sprint([]vm.Cell(*l)) }
func (l *cellList) Set(s string) error {
	for _, f := range strings.Split(s, ",") {
		n, err := strconv.ParseInt(strings.TrimSpace(f), 10, 64)
		if err != nil {
			return err
		}
		*l = append(*l, vm.Cell(n))
	}
	return nil
}
func (l *cellList) Get() interface{} { return *l }

type patch struct {
	addr   int
	values []vm.Cell
}

// patchList is a flag.Value accepting patches of the form addr=v1,v2,...
type patchList []patch

func (l *patchList) String() string { return "" }
func (l *patchList) Set(s string) error {
	a, v, ok := strings.Cut(s, "=")
	if !ok {
		return errors.Errorf("invalid patch %q, expected addr=value[,value...]", s)
	}
	addr, err := strconv.Atoi(strings.TrimSpace(a))
	if err != nil {
		return err
	}
	var values cellList
	if err = values.Set(v); err != nil {
		return err
	}
	*l = append(*l, patch{addr, values})
	return nil
}
func (l *patchList) Get() interface{} { return *l }

// ampMode is a flag.Value for the amplifier network mode.
type ampMode string

func (m *ampMode) String() string { return string(*m) }
func (m *ampMode) Set(s string) error {
	switch s {
	case "", "chain", "feedback":
		*m = ampMode(s)
		return nil
	default:
		return errors.Errorf("unknown amplifier mode %q", s)
	}
}
func (m *ampMode) Get() interface{} { return *m }

// phases returns the default phase settings for the mode.
func (m ampMode) phases() []vm.Cell {
	if m == "feedback" {
		return []vm.Cell{5, 6, 7, 8, 9}
	}
	return []vm.Cell{0, 1, 2, 3, 4}
}
