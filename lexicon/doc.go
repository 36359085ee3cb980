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

// Package lexicon implements decoding of the word info table of a
// morphological dictionary.
//
// The word info table comes in two parts:
//  1. An offset table: one 32-bit little-endian offset per word id, measured
//     from the start of the dictionary buffer.
//  2. A record area containing one variable length record per word. Each
//     record is laid out as follows (integers are little-endian):
//     - surface: length-prefixed string
//     - head word length: uint8
//     - part of speech id: uint16
//     - normalized form: length-prefixed string (empty means surface)
//     - dictionary form word id: int32 (negative means none)
//     - reading form: length-prefixed string
//     - A unit split: length-prefixed uint32 array
//     - B unit split: length-prefixed uint32 array
//     - word structure: length-prefixed uint32 array
//
// Strings are a single byte count of UTF-16 code units followed by the code
// units. Arrays are a single byte element count followed by the elements.
package lexicon
