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

package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ianlewis/go-dictzip"
)

// MakeDictOptions are options for MakeTempDict.
type MakeDictOptions struct {
	// Ext is an optional file extension for the dictionary file. Defaults to
	// '.dic.dz' if DictZip is true. Otherwise '.dic'.
	Ext string

	// DictZip indicates that the dictionary file should be compressed with
	// DictZip.
	DictZip bool

	// Ifo, if not empty, is written to an .ifo file next to the dictionary
	// file.
	Ifo string
}

// GetExt returns the file extension for the dictionary file.
func (o *MakeDictOptions) GetExt() string {
	if o != nil {
		if o.Ext != "" {
			return o.Ext
		}
		if o.DictZip {
			return ".dic.dz"
		}
	}
	return ".dic"
}

// MakeTempDict writes the dictionary data to a file in a temporary directory
// and returns its path. The file is removed when the test completes.
func MakeTempDict(t *testing.T, data []byte, opts *MakeDictOptions) string {
	t.Helper()
	if opts == nil {
		opts = &MakeDictOptions{}
	}

	path := filepath.Join(t.TempDir(), "system"+opts.GetExt())
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	if opts.DictZip {
		z, err := dictzip.NewWriter(f)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := z.Write(data); err != nil {
			t.Fatal(err)
		}
		if err := z.Close(); err != nil {
			t.Fatal(err)
		}
	} else if _, err := f.Write(data); err != nil {
		t.Fatal(err)
	}

	if err := f.Close(); err != nil {
		t.Fatal(err)
	}

	if opts.Ifo != "" {
		ifoPath := filepath.Join(filepath.Dir(path), "system.ifo")
		if err := os.WriteFile(ifoPath, []byte(opts.Ifo), 0o600); err != nil {
			t.Fatal(err)
		}
	}
	return path
}
