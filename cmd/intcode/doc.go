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

// The intcode command line tool runs Intcode programs.
//
// Usage:
//
//	-amp value
//		  search the highest thrust for an amplifier network: chain or feedback
//	-ampin value
//		  initial amplifier input value
//	-config filename
//		  Read default settings from TOML file filename
//	-debug
//		  enable debug diagnostics
//	-diag ID
//		  run diagnostics for the given system ID (default -1)
//	-disasm
//		  disassemble the program and exit
//	-dump
//		  dump PC and memory upon exit
//	-find value
//		  search the noun and verb that produce value at address 0 (default -1)
//	-image filename
//		  Load program from file filename (default "input.txt")
//	-in values
//		  comma separated input values (can be specified multiple times). Standard input is used if none
//	-mem0
//		  print the value at address 0 after the program halts
//	-patch addr=value[,value...]
//		  patch the program with addr=value[,value...] before running (can be specified multiple times)
//	-phases values
//		  amplifier phase setting values (default 0-4 for chain, 5-9 for feedback)
//	-trace
//		  log every executed instruction at debug level (see -v)
//	-v int
//		  log verbosity
//
// By default, the program is run and every output value is printed on its own
// line. Input values are taken from the -in flags or, if there are none, read
// from standard input. When standard input is a terminal, a prompt is shown
// for each value.
//
// -patch is applied before any other processing, including -find, -diag and
// -amp. For example, the gravity assist program is run with:
//
//	intcode -image day2.txt -patch 1=12,2 -mem0
//
// -debug: will print a full stacktrace should the VM fail.
//
// -config: settings not given on the command line are read from a TOML file:
//
//	image = "day7.txt"
//	[amp]
//	mode = "feedback"
package main
