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

package lexicon

import (
	"encoding/binary"
	"fmt"

	"github.com/ianlewis/go-sudachi/internal/utf16le"
)

// recordReader reads the fields of a single record. The first structural
// error is kept in err and every read after it returns a zero value.
type recordReader struct {
	b   []byte
	off int
	err error
}

func (r *recordReader) take(n int) []byte {
	if r.err != nil {
		return nil
	}
	if r.off < 0 || r.off > len(r.b) || len(r.b)-r.off < n {
		r.err = fmt.Errorf("%w: reading %d bytes at offset %d: buffer is %d bytes",
			ErrMalformedRecord, n, r.off, len(r.b))
		return nil
	}
	p := r.b[r.off : r.off+n]
	r.off += n
	return p
}

func (r *recordReader) u8() uint8 {
	p := r.take(1)
	if p == nil {
		return 0
	}
	return p[0]
}

func (r *recordReader) u16() uint16 {
	p := r.take(2)
	if p == nil {
		return 0
	}
	return binary.LittleEndian.Uint16(p)
}

func (r *recordReader) i32() int32 {
	p := r.take(4)
	if p == nil {
		return 0
	}
	//nolint:gosec // reinterpreting the bits as signed is intended.
	return int32(binary.LittleEndian.Uint32(p))
}

// str reads a length-prefixed UTF-16LE string. Structural errors are
// recorded on the reader. A transcoding error is returned to the caller, who
// decides whether it is fatal.
func (r *recordReader) str() (string, error) {
	n := int(r.u8())
	p := r.take(2 * n)
	if r.err != nil {
		return "", nil
	}
	//nolint:wrapcheck // callers add field context.
	return utf16le.Decode(p)
}

// u32s reads a length-prefixed array of uint32. A zero length array is
// returned as an empty, non-nil slice.
func (r *recordReader) u32s() []uint32 {
	n := int(r.u8())
	p := r.take(4 * n)
	if r.err != nil {
		return nil
	}
	v := make([]uint32, n)
	for i := range v {
		v[i] = binary.LittleEndian.Uint32(p[4*i:])
	}
	return v
}
