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

package sudachi

import (
	"fmt"
	"strings"

	"github.com/ianlewis/go-sudachi/lexicon"
)

// Entry is a dictionary entry found by a search.
type Entry struct {
	id     uint32
	info   *lexicon.WordInfo
	folded string
}

// ID returns the entry's word id.
func (e *Entry) ID() uint32 {
	return e.id
}

// WordInfo returns the entry's word info.
func (e *Entry) WordInfo() *lexicon.WordInfo {
	return e.info
}

// String returns a string representation of the Entry.
func (e *Entry) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d\t%s", e.id, e.info.Surface)
	if e.info.ReadingForm != "" {
		fmt.Fprintf(&b, "\t%s", e.info.ReadingForm)
	}
	if e.info.DictionaryForm != e.info.Surface {
		fmt.Fprintf(&b, "\t(%s)", e.info.DictionaryForm)
	}
	return b.String()
}
