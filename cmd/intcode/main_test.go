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
	"bytes"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/Awfa/advent-of-code-2019/vm"
	"github.com/tliron/commonlog"
)

func TestMain(m *testing.M) {
	commonlog.Configure(0, nil)
	os.Exit(m.Run())
}

func TestCellList(t *testing.T) {
	var l cellList
	for _, s := range []string{"1,2", " -3 ", "4"} {
		if err := l.Set(s); err != nil {
			t.Fatal(err)
		}
	}
	if exp := (cellList{1, 2, -3, 4}); !reflect.DeepEqual(exp, l) {
		t.Errorf("Expected: %v\nGot: %v", exp, l)
	}
	if err := l.Set("1,x"); err == nil {
		t.Error("expected error")
	}
}

func TestPatchList(t *testing.T) {
	var l patchList
	if err := l.Set("1=12,2"); err != nil {
		t.Fatal(err)
	}
	if err := l.Set(" 7 = -1"); err != nil {
		t.Fatal(err)
	}
	exp := patchList{{1, []vm.Cell{12, 2}}, {7, []vm.Cell{-1}}}
	if !reflect.DeepEqual(exp, l) {
		t.Errorf("Expected: %v\nGot: %v", exp, l)
	}
	for _, s := range []string{"12", "a=1", "1=", "1=b"} {
		if err := l.Set(s); err == nil {
			t.Errorf("%q: expected error", s)
		}
	}
}

func TestAmpMode(t *testing.T) {
	var m ampMode
	if err := m.Set("loop"); err == nil {
		t.Error("expected error")
	}
	if err := m.Set("feedback"); err != nil {
		t.Fatal(err)
	}
	if p := m.phases(); !reflect.DeepEqual(p, []vm.Cell{5, 6, 7, 8, 9}) {
		t.Errorf("unexpected phases %v", p)
	}
	if err := m.Set("chain"); err != nil {
		t.Fatal(err)
	}
	if p := m.phases(); !reflect.DeepEqual(p, []vm.Cell{0, 1, 2, 3, 4}) {
		t.Errorf("unexpected phases %v", p)
	}
}

func writeFile(t *testing.T, name, contents string) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(fn, []byte(contents), 0644); err != nil {
		t.Fatal(err)
	}
	return fn
}

func TestConfig(t *testing.T) {
	fn := writeFile(t, "intcode.toml", `
image = "day2.txt"
inputs = [1, 2]
verbosity = 2

[patch]
10 = [3]
1 = [12, 2]

[amp]
mode = "feedback"
phases = [9, 8]
input = 7
`)
	c, err := loadConfig(fn)
	if err != nil {
		t.Fatal(err)
	}
	o := options{image: "input.txt"}
	if err = c.apply(&o); err != nil {
		t.Fatal(err)
	}
	exp := options{
		image:     "day2.txt",
		inputs:    cellList{1, 2},
		patches:   patchList{{1, []vm.Cell{12, 2}}, {10, []vm.Cell{3}}},
		amp:       "feedback",
		phases:    cellList{9, 8},
		ampInput:  7,
		verbosity: 2,
	}
	if !reflect.DeepEqual(exp, o) {
		t.Errorf("Expected: %+v\nGot: %+v", exp, o)
	}
}

func TestConfig_errors(t *testing.T) {
	for _, test := range []struct {
		name, contents string
		load           bool
	}{
		{"syntax", "image = ", false},
		{"unknown key", "image = \"x\"\nfoo = 1\n", false},
		{"bad type", "inputs = \"1,2\"", false},
		{"bad patch address", "[patch]\nx = [1]\n", true},
		{"bad amp mode", "[amp]\nmode = \"loop\"\n", true},
	} {
		c, err := loadConfig(writeFile(t, "c.toml", test.contents))
		if !test.load {
			if err == nil {
				t.Errorf("%s: expected load error", test.name)
			}
			continue
		}
		if err != nil {
			t.Errorf("%s: %v", test.name, err)
			continue
		}
		if err = c.apply(&options{}); err == nil {
			t.Errorf("%s: expected error", test.name)
		}
	}
	if _, err := loadConfig(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestRun(t *testing.T) {
	o := options{inputs: cellList{8}, mem0: true, dump: true}
	var b bytes.Buffer
	i, err := run(&o, vm.Image{3, 9, 8, 9, 10, 9, 4, 9, 99, -1, 8}, &b)
	if err != nil {
		t.Fatal(err)
	}
	if !i.Halted() {
		t.Error("VM not halted")
	}
	if exp := "1\n3\n8\n3,9,8,9,10,9,4,9,99,1,8\n"; b.String() != exp {
		t.Errorf("Expected: %q\nGot: %q", exp, b.String())
	}

	o = options{inputs: cellList{1}}
	b.Reset()
	i, err = run(&o, vm.Image{104, 5, 3, 0, 3, 0, 99}, &b)
	if err == nil {
		t.Fatal("expected error")
	}
	if i == nil || i.PC() != 4 {
		t.Errorf("unexpected VM state")
	}
	if b.String() != "5\n" {
		t.Errorf("unexpected output %q", b.String())
	}
}

func TestPromptReader(t *testing.T) {
	var b bytes.Buffer
	r := &promptReader{vm.Values(1, 2), &b}
	out, err := vm.ReadAll(r)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(out, []vm.Cell{1, 2}) {
		t.Errorf("unexpected values %v", out)
	}
	if b.String() != "input> input> input> " {
		t.Errorf("unexpected prompt %q", b.String())
	}
}

func TestTraceInstruction(t *testing.T) {
	var lines []string
	i, err := vm.New(vm.Image{1101, 1, 2, 0, 104, -5, 99}, nil, vm.Trace(func(i *vm.Instance, op vm.Opcode) {
		lines = append(lines, traceLine(i, op))
		traceInstruction(i, op)
	}))
	if err != nil {
		t.Fatal(err)
	}
	if _, err = i.Run(); err != nil {
		t.Fatal(err)
	}
	exp := []string{
		"       0\tadd #1 #2 0",
		"       4\tout #-5",
		"       6\thlt",
	}
	if !reflect.DeepEqual(exp, lines) {
		t.Errorf("Expected: %q\nGot: %q", exp, lines)
	}
}
