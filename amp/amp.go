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

// Package amp wires Intcode VMs into amplifier networks.
//
// In a network, each amplifier runs its own copy of the same program. The
// input of an amplifier is its phase setting followed by the output of the
// previous amplifier; the first one gets its phase setting followed by an
// initial input value. In a feedback network, the output of the last
// amplifier is also fed back to the input of the first one.
//
// Amplifiers are driven by pulling values out of the last one: reading from a
// Network runs upstream amplifiers just enough to produce the next value. No
// goroutines are involved.
package amp

import (
	"io"

	"github.com/Awfa/advent-of-code-2019/perm"
	"github.com/Awfa/advent-of-code-2019/vm"
	"github.com/pkg/errors"
)

// Network is a chain of amplifiers. It implements vm.CellReader over the
// output of the last amplifier.
type Network struct {
	amps []*vm.Instance
	out  vm.CellReader
	loop *vm.Queue // feedback loop, nil for acyclic networks
}

// stage names the errors of an amplifier's output.
type stage struct {
	name byte
	r    vm.CellReader
}

func (s *stage) ReadCell() (vm.Cell, error) {
	v, err := s.r.ReadCell()
	if err != nil && err != io.EOF {
		err = errors.Wrapf(err, "amplifier %c", s.name)
	}
	return v, err
}

func newNetwork(program vm.Image, phases []vm.Cell, input vm.Cell, feedback bool, opts []vm.Option) (*Network, error) {
	if len(phases) == 0 {
		return nil, errors.New("no amplifiers")
	}
	n := &Network{amps: make([]*vm.Instance, 0, len(phases))}
	var upstream vm.CellReader = vm.Values(input)
	if feedback {
		n.loop = new(vm.Queue)
		upstream = vm.MultiReader(upstream, n.loop)
	}
	for k, ph := range phases {
		i, err := vm.New(program, vm.MultiReader(vm.Values(ph), upstream), opts...)
		if err != nil {
			return nil, errors.Wrapf(err, "amplifier %c", 'A'+k)
		}
		n.amps = append(n.amps, i)
		upstream = &stage{byte('A' + k), i}
	}
	n.out = upstream
	if feedback {
		n.out = vm.Tee(upstream, func(v vm.Cell, err error) {
			if err != nil {
				n.loop.PushError(err)
				return
			}
			n.loop.Push(v)
		})
	}
	return n, nil
}

// Chain returns an acyclic network with one amplifier per phase setting. The
// first amplifier gets input after its phase setting.
func Chain(program vm.Image, phases []vm.Cell, input vm.Cell, opts ...vm.Option) (*Network, error) {
	return newNetwork(program, phases, input, false, opts)
}

// Feedback returns a network with one amplifier per phase setting where the
// output of the last amplifier is looped back into the first one, after its
// phase setting and input.
func Feedback(program vm.Image, phases []vm.Cell, input vm.Cell, opts ...vm.Option) (*Network, error) {
	return newNetwork(program, phases, input, true, opts)
}

// ReadCell returns the next value output by the last amplifier. It returns
// io.EOF once the last amplifier has halted.
func (n *Network) ReadCell() (vm.Cell, error) {
	return n.out.ReadCell()
}

// Thrust pulls the output of the last amplifier until it halts and returns
// its last value.
//
// In a feedback network, upstream amplifiers may still be parked right after
// their last output at that point: they are then run to their halt so that
// the whole network is halted. Values they output are discarded. Upstream
// amplifiers of an acyclic chain are left as is.
func (n *Network) Thrust() (vm.Cell, error) {
	t, err := vm.Last(n)
	if err != nil || n.loop == nil {
		return t, err
	}
	for k := len(n.amps) - 2; k >= 0; k-- {
		if _, err = vm.ReadAll(n.amps[k]); err != nil {
			return 0, errors.Wrapf(err, "amplifier %c", 'A'+k)
		}
	}
	return t, nil
}

// Halted returns true if all amplifiers are halted.
func (n *Network) Halted() bool {
	for _, i := range n.amps {
		if !i.Halted() {
			return false
		}
	}
	return true
}

// Amplifiers returns the VM instances of the network, in order.
func (n *Network) Amplifiers() []*vm.Instance {
	return n.amps
}

// MaxThrust builds a network for every permutation of phases and returns the
// highest thrust along with the phase settings that produced it. The first
// error encountered stops the search.
func MaxThrust(program vm.Image, phases []vm.Cell, input vm.Cell, feedback bool, opts ...vm.Option) (thrust vm.Cell, settings []vm.Cell, err error) {
	e := perm.New(phases)
	for {
		p, ok := e.Next()
		if !ok {
			break
		}
		n, err := newNetwork(program, p, input, feedback, opts)
		if err != nil {
			return 0, nil, err
		}
		t, err := n.Thrust()
		if err != nil {
			return 0, nil, errors.Wrapf(err, "phases %v", p)
		}
		if settings == nil || t > thrust {
			thrust = t
			settings = append(settings[:0], p...)
		}
	}
	return thrust, settings, nil
}
