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

// Package testutil implements builders for test dictionary data.
package testutil

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/ianlewis/go-sudachi/internal/utf16le"
)

// WordInfoRecord is a word info record to encode.
type WordInfoRecord struct {
	Surface              string
	HeadWordLength       uint8
	POSID                uint16
	NormalizedForm       string
	DictionaryFormWordID int32
	ReadingForm          string
	AUnitSplit           []uint32
	BUnitSplit           []uint32
	WordStructure        []uint32

	// Raw, if not nil, is written in place of the encoded record.
	Raw []byte
}

// MakeWordInfos creates a test dictionary buffer. The offset table for the
// records starts at base and the records follow the table in order. Bytes
// before base are zero.
func MakeWordInfos(t *testing.T, base int, records []*WordInfoRecord) []byte {
	t.Helper()

	b := make([]byte, base+4*len(records))
	for i, r := range records {
		if len(b) > math.MaxUint32 {
			t.Fatalf("dictionary too large: %d", len(b))
		}
		//nolint:gosec // length is checked above.
		binary.LittleEndian.PutUint32(b[base+4*i:], uint32(len(b)))
		if r.Raw != nil {
			b = append(b, r.Raw...)
			continue
		}
		b = AppendWordInfo(t, b, r)
	}
	return b
}

// AppendWordInfo appends the encoded record r to b.
func AppendWordInfo(t *testing.T, b []byte, r *WordInfoRecord) []byte {
	t.Helper()

	b = AppendString(t, b, r.Surface)
	b = append(b, r.HeadWordLength)
	b = binary.LittleEndian.AppendUint16(b, r.POSID)
	b = AppendString(t, b, r.NormalizedForm)
	//nolint:gosec // the bits are written as is.
	b = binary.LittleEndian.AppendUint32(b, uint32(r.DictionaryFormWordID))
	b = AppendString(t, b, r.ReadingForm)
	b = AppendUint32s(t, b, r.AUnitSplit)
	b = AppendUint32s(t, b, r.BUnitSplit)
	b = AppendUint32s(t, b, r.WordStructure)
	return b
}

// AppendString appends s as a length-prefixed UTF-16LE string.
func AppendString(t *testing.T, b []byte, s string) []byte {
	t.Helper()

	u, err := utf16le.Encode(s)
	if err != nil {
		t.Fatal(err)
	}
	if len(u)/2 > math.MaxUint8 {
		t.Fatalf("string too long: %q", s)
	}
	b = append(b, byte(len(u)/2))
	return append(b, u...)
}

// AppendUnits appends raw UTF-16 code units as a length-prefixed string. It
// can be used to write strings that are not valid UTF-16.
func AppendUnits(t *testing.T, b []byte, units []uint16) []byte {
	t.Helper()

	if len(units) > math.MaxUint8 {
		t.Fatalf("too many code units: %d", len(units))
	}
	b = append(b, byte(len(units)))
	for _, u := range units {
		b = binary.LittleEndian.AppendUint16(b, u)
	}
	return b
}

// AppendUint32s appends v as a length-prefixed uint32 array.
func AppendUint32s(t *testing.T, b []byte, v []uint32) []byte {
	t.Helper()

	if len(v) > math.MaxUint8 {
		t.Fatalf("array too long: %d", len(v))
	}
	b = append(b, byte(len(v)))
	for _, n := range v {
		b = binary.LittleEndian.AppendUint32(b, n)
	}
	return b
}
