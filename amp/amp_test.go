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

package amp_test

import (
	"fmt"
	"reflect"
	"strings"
	"testing"

	"github.com/Awfa/advent-of-code-2019/amp"
	"github.com/Awfa/advent-of-code-2019/vm"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

var chainTests = []struct {
	prog     vm.Image
	thrust   vm.Cell
	settings []vm.Cell
}{
	{
		vm.Image{3, 15, 3, 16, 1002, 16, 10, 16, 1, 16, 15, 15, 4, 15, 99, 0, 0},
		43210, []vm.Cell{4, 3, 2, 1, 0},
	},
	{
		vm.Image{3, 23, 3, 24, 1002, 24, 10, 24, 1002, 23, -1, 23, 101, 5, 23, 23, 1, 24, 23, 23, 4, 23, 99, 0, 0},
		54321, []vm.Cell{0, 1, 2, 3, 4},
	},
	{
		vm.Image{3, 31, 3, 32, 1002, 32, 10, 32, 1001, 31, -2, 31, 1007, 31, 0, 33, 1002, 33, 7, 33, 1, 33, 31, 31, 1, 32, 31, 31, 4, 31, 99, 0, 0, 0},
		65210, []vm.Cell{1, 0, 4, 3, 2},
	},
}

var feedbackTests = []struct {
	prog     vm.Image
	thrust   vm.Cell
	settings []vm.Cell
}{
	{
		vm.Image{3, 26, 1001, 26, -4, 26, 3, 27, 1002, 27, 2, 27, 1, 27, 26, 27, 4, 27, 1001, 28, -1, 28, 1005, 28, 6, 99, 0, 0, 5},
		139629729, []vm.Cell{9, 8, 7, 6, 5},
	},
	{
		vm.Image{3, 52, 1001, 52, -5, 52, 3, 53, 1, 52, 56, 54, 1007, 54, 5, 55, 1005, 55, 26, 1001, 54,
			-5, 54, 1105, 1, 12, 1, 53, 54, 53, 1008, 54, 0, 55, 1001, 55, 1, 55, 2, 53, 55, 53, 4,
			53, 1001, 56, -1, 56, 1005, 56, 6, 99, 0, 0, 0, 0, 10},
		18216, []vm.Cell{9, 7, 8, 5, 6},
	},
}

func TestChain(t *testing.T) {
	for _, test := range chainTests {
		n, err := amp.Chain(test.prog, test.settings, 0)
		if err != nil {
			t.Fatal(err)
		}
		if n.Halted() {
			t.Error("network halted before running")
		}
		v, err := n.Thrust()
		if err != nil {
			t.Fatalf("%+v", err)
		}
		if v != test.thrust {
			t.Errorf("phases %v: expected %d, got %d", test.settings, test.thrust, v)
		}
		amps := n.Amplifiers()
		if !amps[len(amps)-1].Halted() {
			t.Errorf("phases %v: last amplifier not halted", test.settings)
		}
		if len(amps) != len(test.settings) {
			t.Errorf("expected %d amplifiers, got %d", len(test.settings), len(n.Amplifiers()))
		}
	}
}

// The thrust of a chain is the last value of the last amplifier, whatever
// upstream amplifiers would do next.
func TestChain_upstreamRunning(t *testing.T) {
	// echo inputs; halt after the first one if the phase is 0, loop otherwise
	prog := vm.Image{3, 20, 3, 21, 4, 21, 1006, 20, 12, 1105, 1, 2, 99, 0, 0, 0, 0, 0, 0, 0, 0, 0}
	n, err := amp.Chain(prog, []vm.Cell{1, 0}, 7)
	if err != nil {
		t.Fatal(err)
	}
	v, err := n.Thrust()
	if err != nil {
		t.Fatalf("%+v", err)
	}
	if v != 7 {
		t.Errorf("expected 7, got %d", v)
	}
	amps := n.Amplifiers()
	if amps[0].Halted() || !amps[1].Halted() {
		t.Errorf("unexpected halt states A: %v, B: %v", amps[0].Halted(), amps[1].Halted())
	}
	if n.Halted() {
		t.Error("network reports halted with amplifier A still running")
	}
}

func TestFeedback(t *testing.T) {
	for _, test := range feedbackTests {
		// repeated runs yield the same thrust
		for k := 0; k < 3; k++ {
			n, err := amp.Feedback(test.prog, test.settings, 0)
			if err != nil {
				t.Fatal(err)
			}
			v, err := n.Thrust()
			if err != nil {
				t.Fatalf("%+v", err)
			}
			if v != test.thrust {
				t.Errorf("phases %v: expected %d, got %d", test.settings, test.thrust, v)
			}
			if !n.Halted() {
				t.Errorf("phases %v: not all amplifiers halted", test.settings)
			}
		}
	}
}

func TestMaxThrust(t *testing.T) {
	for _, test := range chainTests {
		v, s, err := amp.MaxThrust(test.prog, []vm.Cell{0, 1, 2, 3, 4}, 0, false)
		if err != nil {
			t.Fatalf("%+v", err)
		}
		if v != test.thrust || !reflect.DeepEqual(s, test.settings) {
			t.Errorf("expected %d %v, got %d %v", test.thrust, test.settings, v, s)
		}
	}
	for _, test := range feedbackTests {
		v, s, err := amp.MaxThrust(test.prog, []vm.Cell{5, 6, 7, 8, 9}, 0, true)
		if err != nil {
			t.Fatalf("%+v", err)
		}
		if v != test.thrust || !reflect.DeepEqual(s, test.settings) {
			t.Errorf("expected %d %v, got %d %v", test.thrust, test.settings, v, s)
		}
	}
}

// The program is shared by all amplifiers and networks, and never modified.
func TestMaxThrust_concurrent(t *testing.T) {
	for _, test := range feedbackTests {
		orig := test.prog.Clone()
		var g errgroup.Group
		for k := 0; k < 4; k++ {
			g.Go(func() error {
				v, _, err := amp.MaxThrust(test.prog, []vm.Cell{5, 6, 7, 8, 9}, 0, true)
				if err != nil {
					return err
				}
				if v != test.thrust {
					return errors.Errorf("expected %d, got %d", test.thrust, v)
				}
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			t.Fatalf("%+v", err)
		}
		if !reflect.DeepEqual(orig, test.prog) {
			t.Error("program modified")
		}
	}
}

func TestNetwork_errors(t *testing.T) {
	if _, err := amp.Chain(vm.Image{99}, nil, 0); err == nil {
		t.Error("expected error for empty network")
	}

	// reads one value too many
	prog := vm.Image{3, 0, 3, 0, 3, 0, 99}
	n, err := amp.Chain(prog, []vm.Cell{0, 1, 2}, 0)
	if err != nil {
		t.Fatal(err)
	}
	_, err = n.Thrust()
	if errors.Cause(err) != vm.ErrInputExhausted {
		t.Fatalf("expected %v, got %v", vm.ErrInputExhausted, err)
	}
	if !strings.Contains(err.Error(), "amplifier A") {
		t.Errorf("error does not name the failing amplifier: %v", err)
	}

	_, _, err = amp.MaxThrust(vm.Image{42}, []vm.Cell{0, 1}, 0, false)
	if _, ok := errors.Cause(err).(*vm.InvalidInstructionError); !ok {
		t.Errorf("unexpected error %v", err)
	}
	if !strings.Contains(err.Error(), "phases") {
		t.Errorf("error does not name the phase settings: %v", err)
	}
}

// A network with no output has no thrust.
func TestNetwork_noOutput(t *testing.T) {
	n, err := amp.Chain(vm.Image{3, 0, 3, 0, 99}, []vm.Cell{0}, 0)
	if err != nil {
		t.Fatal(err)
	}
	if _, err = n.Thrust(); err != vm.ErrNoOutput {
		t.Errorf("expected %v, got %v", vm.ErrNoOutput, err)
	}
}

func ExampleMaxThrust() {
	prog := vm.Image{3, 26, 1001, 26, -4, 26, 3, 27, 1002, 27, 2, 27, 1, 27, 26, 27, 4, 27, 1001, 28, -1, 28, 1005, 28, 6, 99, 0, 0, 5}
	thrust, settings, err := amp.MaxThrust(prog, []vm.Cell{5, 6, 7, 8, 9}, 0, true)
	if err != nil {
		panic(err)
	}
	fmt.Println(thrust, settings)

	// Output:
	// 139629729 [9 8 7 6 5]
}

func ExampleChain() {
	// output 10*input + phase
	prog := vm.Image{3, 15, 3, 16, 1002, 16, 10, 16, 1, 16, 15, 15, 4, 15, 99, 0, 0}
	n, err := amp.Chain(prog, []vm.Cell{1, 2, 3}, 0)
	if err != nil {
		panic(err)
	}
	fmt.Println(n.Thrust())

	// Output:
	// 123 <nil>
}

func BenchmarkMaxThrust(b *testing.B) {
	prog := feedbackTests[1].prog
	for c := 0; c < b.N; c++ {
		amp.MaxThrust(prog, []vm.Cell{5, 6, 7, 8, 9}, 0, true)
	}
}
