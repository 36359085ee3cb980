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

import "encoding/binary"

// offsetSize is the size in bytes of an offset table slot.
const offsetSize = 4

// offsetIndex maps word ids to record offsets. It borrows the dictionary
// buffer and never modifies it.
type offsetIndex struct {
	b     []byte
	base  int
	count uint32
}

// offsetOf returns the record offset for the word id. It returns false if the
// id's slot lies outside the buffer. The returned offset itself is not
// validated.
func (x *offsetIndex) offsetOf(id uint32) (uint32, bool) {
	if x.base < 0 {
		return 0, false
	}
	pos := uint64(x.base) + offsetSize*uint64(id)
	if pos+offsetSize > uint64(len(x.b)) {
		return 0, false
	}
	return binary.LittleEndian.Uint32(x.b[pos:]), true
}
