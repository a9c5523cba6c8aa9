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
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/Awfa/advent-of-code-2019/amp"
	"github.com/Awfa/advent-of-code-2019/asm"
	"github.com/Awfa/advent-of-code-2019/puzzle"
	"github.com/Awfa/advent-of-code-2019/vm"
	"github.com/pkg/errors"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
)

type options struct {
	image     string
	config    string
	inputs    cellList
	patches   patchList
	mem0      bool
	find      int64
	diag      int64
	amp       ampMode
	phases    cellList
	ampInput  vm.Cell
	disasm    bool
	dump      bool
	debug     bool
	trace     bool
	verbosity int
}

var log = commonlog.GetLogger("intcode")

func atExit(i *vm.Instance, debug bool, err error) {
	if err == nil {
		return
	}
	if !debug {
		fmt.Fprintf(os.Stderr, "\n%v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "\n%+v\n", err)
	if i != nil {
		mem := i.Mem()
		if pc := i.PC(); pc >= 0 && pc < len(mem) {
			fmt.Fprintf(os.Stderr, "PC: %v (%v)\n", pc, mem[pc])
		} else {
			fmt.Fprintf(os.Stderr, "PC: %v\n", pc)
		}
	}
	os.Exit(1)
}

// input returns the input source for the VM: the -in values if any,
// otherwise standard input.
func input(o *options) vm.CellReader {
	if len(o.inputs) > 0 {
		return vm.Values(o.inputs...)
	}
	if isTerminal(os.Stdin) {
		return &promptReader{vm.NewTextReader(os.Stdin), os.Stderr}
	}
	return vm.NewTextReader(bufio.NewReader(os.Stdin))
}

func vmOptions(o *options) []vm.Option {
	if !o.trace {
		return nil
	}
	return []vm.Option{vm.Trace(traceInstruction)}
}

func run(o *options, program vm.Image, w io.Writer) (i *vm.Instance, err error) {
	i, err = vm.New(program, input(o), vmOptions(o)...)
	if err != nil {
		return nil, err
	}
	for {
		var v vm.Cell
		v, err = i.ReadCell()
		if err == io.EOF {
			break
		}
		if err != nil {
			return i, err
		}
		fmt.Fprintln(w, v)
	}
	log.Infof("halted after %d instructions", i.InstructionCount())
	if o.mem0 {
		fmt.Fprintln(w, i.Mem()[0])
	}
	if o.dump {
		err = i.Dump(w)
	}
	return i, err
}

func main() {
	var (
		o   options
		err error
		i   *vm.Instance
	)

	stdout := bufio.NewWriter(os.Stdout)

	// flush output, catch and log errors
	defer func() {
		stdout.Flush()
		atExit(i, o.debug, err)
	}()

	flag.StringVar(&o.image, "image", "input.txt", "Load program from file `filename`")
	flag.StringVar(&o.config, "config", "", "Read default settings from TOML file `filename`")
	flag.Var(&o.inputs, "in", "comma separated input `values` (can be specified multiple times). Standard input is used if none")
	flag.Var(&o.patches, "patch", "patch the program with `addr=value[,value...]` before running (can be specified multiple times)")
	flag.BoolVar(&o.mem0, "mem0", false, "print the value at address 0 after the program halts")
	flag.Int64Var(&o.find, "find", -1, "search the noun and verb that produce `value` at address 0")
	flag.Int64Var(&o.diag, "diag", -1, "run diagnostics for the given system `ID`")
	flag.Var(&o.amp, "amp", "search the highest thrust for an amplifier network: chain or feedback")
	flag.Var(&o.phases, "phases", "amplifier phase setting `values` (default 0-4 for chain, 5-9 for feedback)")
	var ampInput int64
	flag.Int64Var(&ampInput, "ampin", 0, "initial amplifier input `value`")
	flag.BoolVar(&o.disasm, "disasm", false, "disassemble the program and exit")
	flag.BoolVar(&o.dump, "dump", false, "dump PC and memory upon exit")
	flag.BoolVar(&o.debug, "debug", false, "enable debug diagnostics")
	flag.BoolVar(&o.trace, "trace", false, "log every executed instruction at debug level (see -v)")
	flag.IntVar(&o.verbosity, "v", 0, "log verbosity")

	flag.Parse()
	o.ampInput = vm.Cell(ampInput)

	if o.config != "" {
		var c *config
		if c, err = loadConfig(o.config); err != nil {
			return
		}
		if err = c.apply(&o); err != nil {
			return
		}
	}
	commonlog.Configure(o.verbosity, nil)

	var program vm.Image
	if program, err = vm.Load(o.image); err != nil {
		return
	}
	log.Infof("loaded %d cells from %s", len(program), o.image)
	for _, p := range o.patches {
		if program, err = puzzle.Patch(program, p.addr, p.values...); err != nil {
			return
		}
	}

	switch {
	case o.disasm:
		err = asm.DisassembleAll(program, 0, stdout)
	case o.find >= 0:
		var v vm.Cell
		if v, err = puzzle.FindNounVerb(program, vm.Cell(o.find), vmOptions(&o)...); err == nil {
			fmt.Fprintln(stdout, v)
		}
	case o.diag >= 0:
		var v vm.Cell
		if v, err = puzzle.Diagnostic(program, vm.Cell(o.diag), vmOptions(&o)...); err == nil {
			fmt.Fprintln(stdout, v)
		}
	case o.amp != "":
		phases := []vm.Cell(o.phases)
		if len(phases) == 0 {
			phases = o.amp.phases()
		}
		var (
			thrust   vm.Cell
			settings []vm.Cell
		)
		thrust, settings, err = amp.MaxThrust(program, phases, o.ampInput, o.amp == "feedback", vmOptions(&o)...)
		if err == nil {
			log.Infof("best phase settings: %v", settings)
			fmt.Fprintln(stdout, thrust)
		}
	default:
		i, err = run(&o, program, stdout)
	}
	if err != nil {
		err = errors.WithMessage(err, o.image)
	}
}
