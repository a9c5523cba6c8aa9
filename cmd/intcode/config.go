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
	"flag"
	"sort"
	"strconv"

	"github.com/Awfa/advent-of-code-2019/vm"
	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// config is the contents of a configuration file. Values set on the command
// line take precedence.
//
//	image = "day7.txt"
//	inputs = [1]
//	verbosity = 1
//
//	[patch]
//	1 = [12, 2]
//
//	[amp]
//	mode = "feedback"
//	phases = [5, 6, 7, 8, 9]
//	input = 0
type config struct {
	Image     string             `toml:"image"`
	Inputs    []int64            `toml:"inputs"`
	Patch     map[string][]int64 `toml:"patch"`
	Verbosity *int               `toml:"verbosity"`
	Amp       struct {
		Mode   string  `toml:"mode"`
		Phases []int64 `toml:"phases"`
		Input  *int64  `toml:"input"`
	} `toml:"amp"`
}

func loadConfig(fileName string) (*config, error) {
	var c config
	md, err := toml.DecodeFile(fileName, &c)
	if err != nil {
		return nil, errors.Wrapf(err, "config %s", fileName)
	}
	if u := md.Undecoded(); len(u) > 0 {
		return nil, errors.Errorf("config %s: unknown key %q", fileName, u[0].String())
	}
	return &c, nil
}

func cells(v []int64) []vm.Cell {
	c := make([]vm.Cell, len(v))
	for k := range v {
		c[k] = vm.Cell(v[k])
	}
	return c
}

// apply sets the options not explicitly set on the command line.
func (c *config) apply(o *options) error {
	set := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })

	if !set["image"] && c.Image != "" {
		o.image = c.Image
	}
	if !set["in"] && len(c.Inputs) > 0 {
		o.inputs = cells(c.Inputs)
	}
	if !set["v"] && c.Verbosity != nil {
		o.verbosity = *c.Verbosity
	}
	if !set["patch"] && len(c.Patch) > 0 {
		var patches []patch
		for a, v := range c.Patch {
			n, err := strconv.Atoi(a)
			if err != nil {
				return errors.Errorf("invalid patch address %q", a)
			}
			patches = append(patches, patch{n, cells(v)})
		}
		sort.Slice(patches, func(i, j int) bool { return patches[i].addr < patches[j].addr })
		o.patches = patches
	}
	if !set["amp"] && c.Amp.Mode != "" {
		if err := o.amp.Set(c.Amp.Mode); err != nil {
			return errors.Wrap(err, "config")
		}
	}
	if !set["phases"] && len(c.Amp.Phases) > 0 {
		o.phases = cells(c.Amp.Phases)
	}
	if !set["ampin"] && c.Amp.Input != nil {
		o.ampInput = vm.Cell(*c.Amp.Input)
	}
	return nil
}
