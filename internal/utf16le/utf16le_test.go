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

package utf16le

import (
	"errors"
	"io"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/text/transform"
)

func TestDecode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    []byte
		expected string
		err      error
	}{
		{
			name:     "empty",
			input:    []byte{},
			expected: "",
		},
		{
			name:     "ascii",
			input:    []byte{'c', 0, 'a', 0, 't', 0},
			expected: "cat",
		},
		{
			name:     "kana",
			input:    []byte{0x6b, 0x30, 0x93, 0x30},
			expected: "にん",
		},
		{
			name: "surrogate pair",
			// U+1F600
			input:    []byte{0x3d, 0xd8, 0x00, 0xde},
			expected: "\U0001F600",
		},
		{
			name:  "lone high surrogate",
			input: []byte{0x3d, 0xd8},
			err:   ErrInvalidUTF16,
		},
		{
			name:  "lone low surrogate",
			input: []byte{0x00, 0xde, 'a', 0},
			err:   ErrInvalidUTF16,
		},
		{
			name:  "reversed pair",
			input: []byte{0x00, 0xde, 0x3d, 0xd8},
			err:   ErrInvalidUTF16,
		},
		{
			name:  "odd length",
			input: []byte{'a', 0, 'b'},
			err:   ErrInvalidUTF16,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			got, err := Decode(test.input)
			if !errors.Is(err, test.err) {
				t.Fatalf("Decode: unexpected error, want: %v, got: %v", test.err, err)
			}
			if diff := cmp.Diff(test.expected, got); diff != "" {
				t.Fatalf("Decode (-want, +got):\n%s", diff)
			}
		})
	}
}

// TestDecoder_shortSrc feeds the transformer one byte at a time so that code
// units and surrogate pairs are split across Transform calls.
func TestDecoder_shortSrc(t *testing.T) {
	t.Parallel()

	want := "a\U0001F600ねこ"
	src, err := Encode(want)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	r := transform.NewReader(&oneByteReader{b: src}, Decoder{})
	var got []byte
	buf := make([]byte, 1)
	for {
		n, err := r.Read(buf)
		got = append(got, buf[:n]...)
		if err != nil {
			break
		}
	}

	if diff := cmp.Diff(want, string(got)); diff != "" {
		t.Fatalf("Decoder (-want, +got):\n%s", diff)
	}
}

func TestEncode(t *testing.T) {
	t.Parallel()

	got, err := Encode("dog")
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if diff := cmp.Diff([]byte{'d', 0, 'o', 0, 'g', 0}, got); diff != "" {
		t.Fatalf("Encode (-want, +got):\n%s", diff)
	}
}

type oneByteReader struct {
	b []byte
}

func (r *oneByteReader) Read(p []byte) (int, error) {
	if len(r.b) == 0 {
		return 0, io.EOF
	}
	if len(p) == 0 {
		return 0, nil
	}
	p[0] = r.b[0]
	r.b = r.b[1:]
	return 1, nil
}
