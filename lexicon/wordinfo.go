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
	"fmt"
	"io"
	"log/slog"
	"slices"
)

// WordInfo is a decoded word info record.
type WordInfo struct {
	// Surface is the text of the word as it appears in source text.
	Surface string

	// headWordLength is the byte length of the head word.
	headWordLength uint8

	// POSID is an id in the dictionary's part of speech table.
	POSID uint16

	// NormalizedForm is the canonical spelling of the word. It is never
	// empty and is the surface when the record does not specify one.
	NormalizedForm string

	// DictionaryFormWordID is the id of the word supplying the dictionary
	// form. A negative value or the word's own id means the word is its own
	// dictionary form. See DictionaryFormRef.
	DictionaryFormWordID int32

	// DictionaryForm is the canonical headword.
	DictionaryForm string

	// ReadingForm is the phonetic reading of the word.
	ReadingForm string

	// AUnitSplit, BUnitSplit and WordStructure are word ids describing how
	// the word is segmented, in encoding order.
	AUnitSplit    []uint32
	BUnitSplit    []uint32
	WordStructure []uint32

	// Warnings are non-fatal problems encountered while decoding, such as
	// string fields replaced with the empty string because they were not
	// valid UTF-16. Each warning wraps ErrTextDecode.
	Warnings []error
}

// DictionaryFormRef returns the id of the word that supplies the dictionary
// form of the word with the given id. It returns false when the word is its
// own dictionary form.
func (w *WordInfo) DictionaryFormRef(id uint32) (uint32, bool) {
	if w.DictionaryFormWordID < 0 || uint32(w.DictionaryFormWordID) == id {
		return 0, false
	}
	return uint32(w.DictionaryFormWordID), true
}

// Options are options for decoding word info.
type Options struct {
	// Logger receives warnings about records with undecodable text.
	Logger *slog.Logger
}

// DefaultOptions is the default options for WordInfos.
var DefaultOptions = &Options{
	Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
}

// WordInfos decodes word info records from a dictionary buffer. WordInfos
// does not copy or modify the buffer and the buffer must not be modified
// while the WordInfos is in use. It is safe for concurrent use.
type WordInfos struct {
	offsets *offsetIndex
	logger  *slog.Logger
}

// New returns a new WordInfos for the buffer b. The offset table starts at
// byte offset and holds count entries.
func New(b []byte, offset int, count uint32, options *Options) *WordInfos {
	if options == nil {
		options = DefaultOptions
	}
	logger := options.Logger
	if logger == nil {
		logger = DefaultOptions.Logger
	}

	return &WordInfos{
		offsets: &offsetIndex{
			b:     b,
			base:  offset,
			count: count,
		},
		logger: logger,
	}
}

// Count returns the declared number of entries in the offset table.
func (w *WordInfos) Count() uint32 {
	return w.offsets.count
}

// WordInfo returns the decoded word info for the word id. The dictionary
// form is resolved from the word referenced by the record, if any.
//
// An id without an offset table slot returns ErrNotFound. A record whose
// dictionary form references a word that cannot be looked up returns
// ErrDanglingReference wrapping the cause. A truncated record or a cycle of
// dictionary form references returns ErrMalformedRecord.
func (w *WordInfos) WordInfo(id uint32) (*WordInfo, error) {
	return w.lookup(id, nil)
}

// lookup decodes the word id. chain holds the ids whose dictionary forms are
// being resolved through this word.
func (w *WordInfos) lookup(id uint32, chain []uint32) (*WordInfo, error) {
	offset, ok := w.offsets.offsetOf(id)
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrNotFound, id)
	}

	info, err := w.decode(id, offset)
	if err != nil {
		return nil, fmt.Errorf("word %d: %w", id, err)
	}

	ref, ok := info.DictionaryFormRef(id)
	if !ok {
		return info, nil
	}

	chain = append(chain, id)
	if slices.Contains(chain, ref) {
		return nil, fmt.Errorf("%w: word %d: dictionary form references form a cycle through %d",
			ErrMalformedRecord, id, ref)
	}

	target, err := w.lookup(ref, chain)
	if err != nil {
		return nil, fmt.Errorf("%w: word %d: %w", ErrDanglingReference, id, err)
	}
	info.DictionaryForm = target.Surface

	return info, nil
}

// decode decodes the record at offset.
func (w *WordInfos) decode(id, offset uint32) (*WordInfo, error) {
	r := &recordReader{
		b:   w.offsets.b,
		off: int(offset),
	}

	info := &WordInfo{}
	info.Surface = w.text(r, id, info, "surface")
	info.headWordLength = r.u8()
	info.POSID = r.u16()
	info.NormalizedForm = w.text(r, id, info, "normalized_form")
	info.DictionaryFormWordID = r.i32()
	info.ReadingForm = w.text(r, id, info, "reading_form")
	info.AUnitSplit = r.u32s()
	info.BUnitSplit = r.u32s()
	info.WordStructure = r.u32s()
	if r.err != nil {
		return nil, r.err
	}

	if info.NormalizedForm == "" {
		info.NormalizedForm = info.Surface
	}
	info.DictionaryForm = info.Surface

	return info, nil
}

// text reads a string field. Text that is not valid UTF-16 is replaced with
// the empty string and recorded as a warning.
func (w *WordInfos) text(r *recordReader, id uint32, info *WordInfo, field string) string {
	start := r.off
	s, err := r.str()
	if err != nil {
		err = fmt.Errorf("%w: %s at offset %d: %w", ErrTextDecode, field, start, err)
		info.Warnings = append(info.Warnings, err)
		w.logger.Warn("replacing undecodable text with empty string",
			slog.Uint64("word_id", uint64(id)),
			slog.String("field", field),
			slog.Int("offset", start),
			slog.String("error", err.Error()),
		)
		return ""
	}
	return s
}
