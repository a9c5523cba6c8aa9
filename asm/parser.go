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
	"text/scanner"
	"unicode"

	"github.com/Awfa/advent-of-code-2019/vm"
)

func isIdentRune(ch rune, i int) bool {
	return unicode.IsLetter(ch) || unicode.IsSymbol(ch) || unicode.IsPunct(ch) || unicode.IsDigit(ch)
}

type labelSite struct {
	pos     scanner.Position
	address int
}

type label struct {
	labelSite
	uses []labelSite
}

// parser states
const (
	stInstruction = iota // accept anything
	stOperand            // need an operand for the current instruction
	stOrg                // accept integer or const (for .org directive)
	stEqu                // accept integer or const (for .equ value)
	stDat                // accept integer, const or label (for .dat)
)

type parser struct {
	i       []vm.Cell
	pc      int
	size    int // highest address written + 1
	s       scanner.Scanner
	labels  map[string]*label
	consts  map[string]labelSite
	cstName string
	cstPos  scanner.Position
	err     error

	// instruction being assembled
	insPC int
	info  vm.OpInfo
	arg   int
}

func newParser() *parser {
	p := new(parser)
	p.labels = make(map[string]*label)
	p.consts = make(map[string]labelSite)
	return p
}

func (p *parser) write(v vm.Cell) {
	for p.pc >= len(p.i) {
		p.i = append(p.i, make([]vm.Cell, 1024)...)
	}
	p.i[p.pc] = v
	p.pc++
	if p.pc > p.size {
		p.size = p.pc
	}
}

func (p *parser) useLabel(name string) {
	lbl := p.labels[name]
	if lbl == nil {
		lbl = &label{
			// use current position as valid temp position
			labelSite{p.s.Pos(), -1},
			nil,
		}
		p.labels[name] = lbl
	}
	lbl.uses = append(lbl.uses, labelSite{p.s.Pos(), p.pc})
}

func scanError(s *scanner.Scanner, msg string) error {
	pos := s.Position
	if !pos.IsValid() {
		pos = s.Pos()
	}
	return fmt.Errorf("%s: %s", pos, msg)
}

// value converts s to an integer if s is an integer literal or a named
// constant.
func (p *parser) value(s string) (int, bool) {
	n, err := strconv.ParseInt(s, 0, 64)
	if err == nil {
		return int(n), true
	}
	if c, ok := p.consts[s]; ok {
		return c.address, true
	}
	return 0, false
}

// operand compiles the next operand of the current instruction.
func (p *parser) operand(s string) error {
	m := vm.Position
	if s[0] == '#' {
		m = vm.Immediate
		s = s[1:]
		if s == "" {
			return scanError(&p.s, "Empty immediate operand")
		}
	}
	if m == vm.Immediate && p.info.Params[p.arg] == vm.Write {
		return scanError(&p.s, "Immediate operand for writable parameter of "+p.info.Name+": #"+s)
	}
	if v, ok := p.value(s); ok {
		p.write(vm.Cell(v))
	} else {
		p.useLabel(s)
		p.write(0)
	}
	if m == vm.Immediate {
		mul := vm.Cell(100)
		for k := 0; k < p.arg; k++ {
			mul *= 10
		}
		p.i[p.insPC] += mul
	}
	p.arg++
	return nil
}

// Parse does the parsing and compiling.
func (p *parser) Parse(name string, r io.Reader) error {
	var state int

	p.s.Init(r)
	p.s.Error = func(s *scanner.Scanner, msg string) {
		p.err = scanError(s, msg)
	}
	p.s.IsIdentRune = isIdentRune
	p.s.Mode = scanner.ScanIdents
	p.s.Filename = name

S:
	for tok := p.s.Scan(); p.err == nil && tok != scanner.EOF; tok = p.s.Scan() {
		s := p.s.TokenText()

		if s == "(" {
			// skip comments
			for ; p.err == nil && tok != scanner.EOF && (tok != scanner.Ident || p.s.TokenText() != ")"); tok = p.s.Scan() {
			}
			continue
		}

		switch state {
		case stOperand:
			if s[0] == ':' || s[0] == '.' {
				p.err = scanError(&p.s, "Missing operand for "+p.info.Name+", got "+s)
				break S
			}
			if p.err = p.operand(s); p.err != nil {
				break S
			}
			if p.arg == len(p.info.Params) {
				state = stInstruction
			}
			continue
		case stOrg, stEqu:
			v, ok := p.value(s)
			if !ok {
				p.err = scanError(&p.s, "Expected integer or constant, got "+s)
				break S
			}
			if state == stOrg {
				if v < 0 {
					p.err = scanError(&p.s, "Negative .org address")
					break S
				}
				p.pc = v
			} else {
				p.consts[p.cstName] = labelSite{p.cstPos, v}
			}
			state = stInstruction
			continue
		case stDat:
			if v, ok := p.value(s); ok {
				p.write(vm.Cell(v))
			} else {
				p.useLabel(s)
				p.write(0)
			}
			state = stInstruction
			continue
		}

		switch s[0] {
		case ':':
			n := s[1:]
			if len(n) == 0 {
				p.err = scanError(&p.s, "Empty label name")
				break S
			}
			if cst, ok := p.consts[n]; ok {
				p.err = scanError(&p.s, "Label redefinition: "+n+", previously defined as a constant here: "+cst.pos.String())
				break S
			}
			if l, ok := p.labels[n]; ok {
				if l.address != -1 {
					p.err = scanError(&p.s, "Label redefinition: "+n+", previous definition here: "+l.pos.String())
					break S
				}
				l.address = p.pc
				l.pos = p.s.Pos()
			} else {
				p.labels[n] = &label{
					labelSite{p.s.Pos(), p.pc},
					nil,
				}
			}
		case '.':
			switch s {
			case ".org":
				state = stOrg
			case ".dat":
				state = stDat
			case ".equ":
				t := p.s.Scan()
				if t != scanner.Ident {
					p.err = scanError(&p.s, ".equ: expected identifier, got "+p.s.TokenText())
					break S
				}
				p.cstName = p.s.TokenText()
				if l, ok := p.labels[p.cstName]; ok {
					p.err = scanError(&p.s, ".equ: redefinition of "+p.cstName+", previously defined/used as a label here: "+l.pos.String())
					break S
				}
				p.cstPos = p.s.Pos()
				state = stEqu
			default:
				p.err = scanError(&p.s, "Unknown dot directive: "+s)
			}
		default:
			if op, ok := vm.LookupName(s); ok {
				p.info, _ = vm.Lookup(op)
				p.insPC, p.arg = p.pc, 0
				p.write(vm.Cell(op))
				if len(p.info.Params) > 0 {
					state = stOperand
				}
				break
			}
			// bare integers and constants compile as-is
			if v, ok := p.value(s); ok {
				p.write(vm.Cell(v))
				break
			}
			p.err = scanError(&p.s, "Unknown mnemonic: "+s)
		}
	}
	if p.err != nil {
		return p.err
	}
	if state == stOperand {
		return fmt.Errorf("%s: Missing operand for %s at end of input", p.s.Pos(), p.info.Name)
	}

	// write labels
	for n, l := range p.labels {
		if l.address == -1 {
			return fmt.Errorf("Missing label definition for %s, first use here: %s", n, l.uses[0].pos)
		}
		for _, u := range l.uses {
			p.i[u.address] = vm.Cell(l.address)
		}
	}

	return nil
}
