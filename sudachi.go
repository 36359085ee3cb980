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
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/ianlewis/go-dictzip"
	"golang.org/x/text/transform"

	"github.com/ianlewis/go-sudachi/ifo"
	"github.com/ianlewis/go-sudachi/internal/folding"
	"github.com/ianlewis/go-sudachi/internal/index"
	"github.com/ianlewis/go-sudachi/internal/mmfile"
	"github.com/ianlewis/go-sudachi/lexicon"
)

const (
	ifoMagic   = "Sudachi lexicon info"
	ifoVersion = "1"
)

var (
	// ErrUnsupportedFormat indicates that the dictionary file extension is not
	// recognized.
	ErrUnsupportedFormat = errors.New("unsupported dictionary format")

	// ErrInvalidIfo indicates that the dictionary's .ifo file is invalid.
	ErrInvalidIfo = errors.New("invalid ifo")
)

// Options are options for opening a dictionary.
type Options struct {
	// Offset is the byte offset of the word info offset table.
	Offset int

	// Count is the number of entries in the word info offset table.
	Count uint32

	// Lexicon are options for decoding word info.
	Lexicon *lexicon.Options

	// Folder returns a [transform.Transformer] that performs folding (e.g.
	// width folding, whitespace folding, etc.) on surfaces and queries used
	// by Search.
	Folder func() transform.Transformer
}

// DefaultOptions is the default options for a Dictionary.
var DefaultOptions = &Options{
	Folder: folding.Surface,
}

// Dictionary is a Sudachi dictionary.
type Dictionary struct {
	infos  *lexicon.WordInfos
	folder func() transform.Transformer
	close  func() error

	mu    sync.Mutex
	index *index.Index[*Entry]
}

// New returns a new Dictionary for the dictionary data in b. The Dictionary
// does not copy b and b must not be modified while the Dictionary is in use.
func New(b []byte, options *Options) *Dictionary {
	return newDictionary(b, options, func() error { return nil })
}

func newDictionary(b []byte, options *Options, closeFunc func() error) *Dictionary {
	if options == nil {
		options = DefaultOptions
	}
	folder := options.Folder
	if folder == nil {
		folder = DefaultOptions.Folder
	}

	return &Dictionary{
		infos:  lexicon.New(b, options.Offset, options.Count, options.Lexicon),
		folder: folder,
		close:  closeFunc,
	}
}

// Open opens the dictionary file at path. Files with a .dz extension are
// decompressed into memory. Other files are memory mapped and must be closed
// with the Dictionary's Close method.
//
// If options is nil or sets neither Offset nor Count, the word info table
// layout is read from the .ifo file with the same base name as the
// dictionary file (e.g. system.ifo for system.dic.dz).
func Open(path string, options *Options) (*Dictionary, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".dz", ".dic", ".bin":
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	if options == nil {
		options = DefaultOptions
	}
	if options.Offset == 0 && options.Count == 0 {
		offset, count, err := readIfo(path)
		if err != nil {
			return nil, err
		}
		opts := *options
		opts.Offset = offset
		opts.Count = count
		options = &opts
	}

	if ext == ".dz" {
		b, err := readDictZip(path)
		if err != nil {
			return nil, err
		}
		return New(b, options), nil
	}

	b, unmap, err := mmfile.Map(path)
	if err != nil {
		return nil, fmt.Errorf("opening dictionary: %w", err)
	}
	return newDictionary(b, options, unmap), nil
}

// ifoPath returns the path of the .ifo file for the dictionary file path.
func ifoPath(path string) string {
	base := path
	if strings.EqualFold(filepath.Ext(base), ".dz") {
		base = strings.TrimSuffix(base, filepath.Ext(base))
	}
	return strings.TrimSuffix(base, filepath.Ext(base)) + ".ifo"
}

// readIfo reads the word info table layout from the dictionary's .ifo file.
func readIfo(path string) (int, uint32, error) {
	p := ifoPath(path)
	f, err := os.Open(p)
	if err != nil {
		return 0, 0, fmt.Errorf("error opening %q: %w", p, err)
	}
	defer f.Close()

	i, err := ifo.New(f)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q: %w", ErrInvalidIfo, p, err)
	}
	if i.Magic() != ifoMagic {
		return 0, 0, fmt.Errorf("%w: %q: bad magic data", ErrInvalidIfo, p)
	}
	if v := i.Value("version"); v != ifoVersion {
		return 0, 0, fmt.Errorf("%w: %q: unsupported version: %v", ErrInvalidIfo, p, v)
	}

	offset, err := i.Uint("wordinfo_offset", 31)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q: %w", ErrInvalidIfo, p, err)
	}
	count, err := i.Uint("wordinfo_count", 32)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q: %w", ErrInvalidIfo, p, err)
	}

	//nolint:gosec // offset and count are parsed with bounded bit sizes.
	return int(offset), uint32(count), nil
}

func readDictZip(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %q: %w", path, err)
	}
	defer f.Close()

	z, err := dictzip.NewReader(f)
	if err != nil {
		return nil, fmt.Errorf("reading %q: %w", path, err)
	}
	defer z.Close()

	b, err := io.ReadAll(z)
	if err != nil {
		return nil, fmt.Errorf("reading %q: %w", path, err)
	}
	return b, nil
}

// Count returns the number of entries in the dictionary's word info table.
func (d *Dictionary) Count() uint32 {
	return d.infos.Count()
}

// WordInfos returns the dictionary's word info decoder.
func (d *Dictionary) WordInfos() *lexicon.WordInfos {
	return d.infos
}

// WordInfo returns the word info for the word id.
func (d *Dictionary) WordInfo(id uint32) (*lexicon.WordInfo, error) {
	//nolint:wrapcheck // errors are returned from the lexicon unchanged.
	return d.infos.WordInfo(id)
}

// Search returns the entries whose folded surface equals the folded query.
// The search index is built on first use.
func (d *Dictionary) Search(query string) ([]*Entry, error) {
	idx, err := d.searchIndex()
	if err != nil {
		return nil, err
	}
	return idx.Search(folding.String(d.folder(), query)), nil
}

// SearchPrefix returns the entries whose folded surface starts with the
// folded prefix.
func (d *Dictionary) SearchPrefix(prefix string) ([]*Entry, error) {
	idx, err := d.searchIndex()
	if err != nil {
		return nil, err
	}
	return idx.Prefix(folding.String(d.folder(), prefix)), nil
}

// searchIndex returns the surface index, building it if necessary. Entries
// that are missing or have dangling dictionary form references are left out
// of the index. A malformed entry is an error.
func (d *Dictionary) searchIndex() (*index.Index[*Entry], error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.index != nil {
		return d.index, nil
	}

	var entries []*Entry
	for id := range d.infos.Count() {
		info, err := d.infos.WordInfo(id)
		switch {
		case err == nil:
		case errors.Is(err, lexicon.ErrMalformedRecord):
			return nil, fmt.Errorf("building search index: %w", err)
		case errors.Is(err, lexicon.ErrNotFound), errors.Is(err, lexicon.ErrDanglingReference):
			continue
		default:
			return nil, fmt.Errorf("building search index: %w", err)
		}
		entries = append(entries, &Entry{
			id:     id,
			info:   info,
			folded: folding.String(d.folder(), info.Surface),
		})
	}

	d.index = index.New(entries, func(e *Entry) string {
		return e.folded
	})
	return d.index, nil
}

// Close releases the dictionary data. The Dictionary must not be used after
// Close is called. WordInfo values already returned remain valid.
func (d *Dictionary) Close() error {
	if err := d.close(); err != nil {
		return fmt.Errorf("closing dictionary: %w", err)
	}
	return nil
}
