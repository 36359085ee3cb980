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

import "errors"

var (
	// ErrNotFound indicates that the word id has no slot in the offset table.
	ErrNotFound = errors.New("word not found")

	// ErrDanglingReference indicates that a word's dictionary form refers to
	// a word that could not be looked up.
	ErrDanglingReference = errors.New("dangling dictionary form reference")

	// ErrMalformedRecord indicates that a record could not be decoded, either
	// because it extends past the end of the buffer or because its
	// dictionary form references form a cycle.
	ErrMalformedRecord = errors.New("malformed word info record")

	// ErrTextDecode indicates that a string field did not contain valid
	// UTF-16. It is only reported as a warning on the decoded WordInfo.
	ErrTextDecode = errors.New("decoding text")
)
