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

import (
	"io"
	"os"
	"strconv"

	"github.com/Awfa/advent-of-code-2019/internal/ici"
	"github.com/pkg/errors"
)

// Image encapsulates a VM's memory. It is also used to hold the program a VM is
// created from.
type Image []Cell

// Clone returns a copy of the image.
func (i Image) Clone() Image {
	c := make(Image, len(i))
	copy(c, i)
	return c
}

// Parse reads a program from r. The program text is a list of signed decimal
// integers separated by commas. White space around values is ignored.
func Parse(r io.Reader) (Image, error) {
	v, err := ReadAll(NewTextReader(r))
	if err != nil {
		return nil, errors.Wrap(err, "Parse")
	}
	return Image(v), nil
}

// Load loads a program from file fileName. See Parse.
func Load(fileName string) (Image, error) {
	f, err := os.Open(fileName)
	if err != nil {
		return nil, errors.Wrap(err, "Load")
	}
	defer f.Close()
	i, err := Parse(f)
	if err != nil {
		return nil, errors.Wrapf(err, "Load %v", fileName)
	}
	return i, nil
}

// Encode writes the image to w in the format accepted by Parse, without a
// trailing new line.
func (i Image) Encode(w io.Writer) error {
	ew := ici.NewErrWriter(w)
	l := len(i) - 1
	if l >= 0 {
		for k := 0; k < l; k++ {
			io.WriteString(ew, strconv.FormatInt(int64(i[k]), 10))
			ew.Write([]byte{','})
		}
		io.WriteString(ew, strconv.FormatInt(int64(i[l]), 10))
	}
	return ew.Err
}
