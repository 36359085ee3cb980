// Copyright 2026 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package ifo implements reading .ifo files.
//
// An .ifo file is a text file that describes the layout of a dictionary file
// with the same base name. The first line is a magic string. Each following
// non-empty line is a key=value pair and the first key must be "version".
package ifo

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
)

var (
	errInvalidKey     = errors.New("invalid key")
	errInvalidLine    = errors.New("invalid line")
	errMissingVersion = errors.New("missing version")
	errMissingKey     = errors.New("missing key")
)

var keyRegex = regexp.MustCompile("^[a-zA-Z0-9_-]+$")

// Ifo is the dictionary metadata read from an .ifo file.
type Ifo struct {
	magic    string
	metadata map[string]string
}

// New reads an .ifo file from r.
func New(r io.Reader) (*Ifo, error) {
	i := &Ifo{
		metadata: map[string]string{},
	}

	s := bufio.NewScanner(r)
	if s.Scan() {
		i.magic = strings.TrimSpace(s.Text())
	}

	n := 0
	for s.Scan() {
		line := s.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			return nil, fmt.Errorf("%w: %q", errInvalidLine, line)
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)
		if !keyRegex.MatchString(key) {
			return nil, fmt.Errorf("%w: %q", errInvalidKey, key)
		}
		if n == 0 && key != "version" {
			return nil, errMissingVersion
		}

		i.metadata[key] = value
		n++
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("reading ifo: %w", err)
	}
	if n == 0 {
		return nil, errMissingVersion
	}

	return i, nil
}

// Magic returns the magic string from the first line.
func (i *Ifo) Magic() string {
	return i.magic
}

// Value returns the value for key or the empty string if the key is not
// present.
func (i *Ifo) Value(key string) string {
	return i.metadata[key]
}

// Uint returns the value for key parsed as an unsigned integer of the given
// bit size.
func (i *Ifo) Uint(key string, bitSize int) (uint64, error) {
	v, ok := i.metadata[key]
	if !ok {
		return 0, fmt.Errorf("%w: %s", errMissingKey, key)
	}
	n, err := strconv.ParseUint(v, 10, bitSize)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}
