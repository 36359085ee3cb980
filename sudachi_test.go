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
	"errors"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ianlewis/go-sudachi/internal/testutil"
)

var testRecords = []*testutil.WordInfoRecord{
	{Surface: "東京", ReadingForm: "トウキョウ", DictionaryFormWordID: -1},
	{Surface: "ＡＢＣ", ReadingForm: "エービーシー", NormalizedForm: "ABC", DictionaryFormWordID: -1},
	{Surface: "走った", ReadingForm: "ハシッタ", DictionaryFormWordID: 3},
	{Surface: "走る", ReadingForm: "ハシル", DictionaryFormWordID: -1},
	{Surface: "東京都", ReadingForm: "トウキョウト", DictionaryFormWordID: -1, AUnitSplit: []uint32{0, 5}},
	{Surface: "泳いだ", DictionaryFormWordID: 100},
	{Surface: "東京", ReadingForm: "ヒガシキョウ", DictionaryFormWordID: -1},
}

const testBase = 32

func testOptions() *Options {
	return &Options{
		Offset: testBase,
		//nolint:gosec // test data is small.
		Count: uint32(len(testRecords)),
	}
}

// TestOpen tests opening dictionary files.
func TestOpen(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		opts *testutil.MakeDictOptions
		err  error
	}{
		{
			name: "dic",
		},
		{
			name: "bin",
			opts: &testutil.MakeDictOptions{Ext: ".bin"},
		},
		{
			name: "upper case ext",
			opts: &testutil.MakeDictOptions{Ext: ".DIC"},
		},
		{
			name: "dictzip",
			opts: &testutil.MakeDictOptions{DictZip: true},
		},
		{
			name: "unsupported",
			opts: &testutil.MakeDictOptions{Ext: ".txt"},
			err:  ErrUnsupportedFormat,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			path := testutil.MakeTempDict(t, testutil.MakeWordInfos(t, testBase, testRecords), test.opts)

			d, err := Open(path, testOptions())
			if !errors.Is(err, test.err) {
				t.Fatalf("Open: unexpected error, want: %v, got: %v", test.err, err)
			}
			if err != nil {
				return
			}
			defer d.Close()

			info, err := d.WordInfo(2)
			if err != nil {
				t.Fatalf("WordInfo: %v", err)
			}
			if diff := cmp.Diff("走る", info.DictionaryForm); diff != "" {
				t.Fatalf("WordInfo (-want, +got):\n%s", diff)
			}

			if diff := cmp.Diff(uint32(len(testRecords)), d.Count()); diff != "" {
				t.Fatalf("Count (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestOpen_missing(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"missing.dic", "missing.dic.dz"} {
		if _, err := Open(filepath.Join(t.TempDir(), name), nil); err == nil {
			t.Errorf("Open(%q): expected error", name)
		}
	}
}

// TestDictionary_Search tests Dictionary.Search.
func TestDictionary_Search(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		query    string
		prefix   bool
		expected []uint32
	}{
		{
			name:     "exact",
			query:    "東京",
			expected: []uint32{0, 6},
		},
		{
			name:     "whitespace",
			query:    "  走る ",
			expected: []uint32{3},
		},
		{
			name:     "width folding",
			query:    "ABC",
			expected: []uint32{1},
		},
		{
			name:     "resolved dictionary form",
			query:    "走った",
			expected: []uint32{2},
		},
		{
			name:     "dangling reference skipped",
			query:    "泳いだ",
			expected: nil,
		},
		{
			name:     "prefix",
			query:    "東京",
			prefix:   true,
			expected: []uint32{0, 6, 4},
		},
		{
			name:     "no results",
			query:    "大阪",
			expected: nil,
		},
	}

	d := New(testutil.MakeWordInfos(t, testBase, testRecords), testOptions())

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			var entries []*Entry
			var err error
			if test.prefix {
				entries, err = d.SearchPrefix(test.query)
			} else {
				entries, err = d.Search(test.query)
			}
			if err != nil {
				t.Fatalf("Search: %v", err)
			}

			var ids []uint32
			for _, e := range entries {
				ids = append(ids, e.ID())
			}
			if diff := cmp.Diff(test.expected, ids); diff != "" {
				t.Fatalf("Search (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestDictionary_Search_malformed(t *testing.T) {
	t.Parallel()

	records := []*testutil.WordInfoRecord{
		{Surface: "犬", DictionaryFormWordID: -1},
		{Raw: []byte{0x09, 'x'}},
	}
	d := New(testutil.MakeWordInfos(t, 0, records), &Options{Count: 2})
	if _, err := d.Search("犬"); err == nil {
		t.Fatal("Search: expected error")
	}
}

func TestEntry_String(t *testing.T) {
	t.Parallel()

	d := New(testutil.MakeWordInfos(t, testBase, testRecords), testOptions())
	entries, err := d.Search("走った")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("Search: want 1 entry, got %d", len(entries))
	}

	if diff := cmp.Diff("2\t走った\tハシッタ\t(走る)", entries[0].String()); diff != "" {
		t.Fatalf("String (-want, +got):\n%s", diff)
	}
}

// TestOpen_ifo tests reading the word info table layout from an .ifo file.
func TestOpen_ifo(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		ifo  string
		zip  bool
		err  error
	}{
		{
			name: "dic",
			ifo:  "Sudachi lexicon info\nversion=1\nwordinfo_offset=32\nwordinfo_count=7\n",
		},
		{
			name: "dictzip",
			ifo:  "Sudachi lexicon info\nversion=1\nwordinfo_offset=32\nwordinfo_count=7\n",
			zip:  true,
		},
		{
			name: "bad magic",
			ifo:  "other magic\nversion=1\nwordinfo_offset=32\nwordinfo_count=7\n",
			err:  ErrInvalidIfo,
		},
		{
			name: "bad version",
			ifo:  "Sudachi lexicon info\nversion=2\nwordinfo_offset=32\nwordinfo_count=7\n",
			err:  ErrInvalidIfo,
		},
		{
			name: "missing count",
			ifo:  "Sudachi lexicon info\nversion=1\nwordinfo_offset=32\n",
			err:  ErrInvalidIfo,
		},
		{
			name: "negative offset",
			ifo:  "Sudachi lexicon info\nversion=1\nwordinfo_offset=-1\nwordinfo_count=7\n",
			err:  ErrInvalidIfo,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			path := testutil.MakeTempDict(t, testutil.MakeWordInfos(t, testBase, testRecords), &testutil.MakeDictOptions{
				DictZip: test.zip,
				Ifo:     test.ifo,
			})

			d, err := Open(path, nil)
			if !errors.Is(err, test.err) {
				t.Fatalf("Open: unexpected error, want: %v, got: %v", test.err, err)
			}
			if err != nil {
				return
			}
			defer d.Close()

			if diff := cmp.Diff(uint32(7), d.Count()); diff != "" {
				t.Fatalf("Count (-want, +got):\n%s", diff)
			}
			info, err := d.WordInfo(4)
			if err != nil {
				t.Fatalf("WordInfo: %v", err)
			}
			if diff := cmp.Diff("東京都", info.Surface); diff != "" {
				t.Fatalf("WordInfo (-want, +got):\n%s", diff)
			}
		})
	}
}
