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

// Package utf16le implements strict conversion between UTF-16 little-endian
// text and UTF-8.
package utf16le

import (
	"encoding/binary"
	"errors"
	"fmt"
	"unicode/utf16"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ErrInvalidUTF16 indicates that the input contained an unpaired surrogate or
// an odd number of bytes.
var ErrInvalidUTF16 = errors.New("invalid utf-16")

// Decoder is a [transform.Transformer] that converts UTF-16LE input to UTF-8.
// Unlike the decoders in golang.org/x/text/encoding/unicode, malformed input
// is reported as [ErrInvalidUTF16] rather than replaced with U+FFFD.
type Decoder struct {
	transform.NopResetter
}

// Transform implements [transform.Transformer.Transform].
func (Decoder) Transform(dst, src []byte, atEOF bool) (int, int, error) {
	var nDst, nSrc int
	for nSrc < len(src) {
		remaining := len(src) - nSrc
		if remaining < 2 {
			if atEOF {
				return nDst, nSrc, fmt.Errorf("%w: odd byte count", ErrInvalidUTF16)
			}
			return nDst, nSrc, transform.ErrShortSrc
		}

		r := rune(binary.LittleEndian.Uint16(src[nSrc:]))
		size := 2
		if utf16.IsSurrogate(r) {
			if remaining < 4 {
				if atEOF {
					return nDst, nSrc, fmt.Errorf("%w: unpaired surrogate %#04x", ErrInvalidUTF16, r)
				}
				return nDst, nSrc, transform.ErrShortSrc
			}
			r2 := rune(binary.LittleEndian.Uint16(src[nSrc+2:]))
			pair := utf16.DecodeRune(r, r2)
			if pair == utf8.RuneError {
				return nDst, nSrc, fmt.Errorf("%w: unpaired surrogate %#04x", ErrInvalidUTF16, r)
			}
			r = pair
			size = 4
		}

		if nDst+utf8.RuneLen(r) > len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		nDst += utf8.EncodeRune(dst[nDst:], r)
		nSrc += size
	}

	return nDst, nSrc, nil
}

// Decode converts the UTF-16LE bytes in b to a string.
func Decode(b []byte) (string, error) {
	out, _, err := transform.Bytes(Decoder{}, b)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// Encode converts s to UTF-16LE bytes without a byte order mark.
func Encode(s string) ([]byte, error) {
	enc := unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewEncoder()
	b, err := enc.Bytes([]byte(s))
	if err != nil {
		return nil, fmt.Errorf("encoding utf-16: %w", err)
	}
	return b, nil
}
