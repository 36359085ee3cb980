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
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestOffsetIndex_offsetOf(t *testing.T) {
	t.Parallel()

	// Two bytes of padding followed by a table of [8, 40] and one trailing
	// byte.
	b := []byte{0xff, 0xff, 8, 0, 0, 0, 40, 0, 0, 0, 0xff}

	tests := []struct {
		name     string
		base     int
		id       uint32
		expected uint32
		found    bool
	}{
		{
			name:     "first",
			base:     2,
			id:       0,
			expected: 8,
			found:    true,
		},
		{
			name:     "second",
			base:     2,
			id:       1,
			expected: 40,
			found:    true,
		},
		{
			name: "partial slot",
			base: 2,
			id:   2,
		},
		{
			name: "past end",
			base: 2,
			id:   100,
		},
		{
			name: "max id",
			base: 2,
			id:   ^uint32(0),
		},
		{
			name: "negative base",
			base: -1,
			id:   0,
		},
		{
			name: "base past end",
			base: len(b),
			id:   0,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			x := &offsetIndex{b: b, base: test.base, count: 2}
			got, found := x.offsetOf(test.id)
			if diff := cmp.Diff(test.found, found); diff != "" {
				t.Fatalf("offsetOf found (-want, +got):\n%s", diff)
			}
			if diff := cmp.Diff(test.expected, got); diff != "" {
				t.Fatalf("offsetOf (-want, +got):\n%s", diff)
			}
		})
	}
}
