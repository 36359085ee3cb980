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

package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/rodaine/table"
	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-sudachi/lexicon"
)

var dumpCommand = &cli.Command{
	Name:  "dump",
	Usage: "print one line per word in the word info table",
	Flags: []cli.Flag{
		&cli.UintFlag{
			Name:  "start",
			Usage: "start at word id `N`",
		},
		&cli.UintFlag{
			Name:  "limit",
			Usage: "print at most `N` words (0 for no limit)",
		},
	},
	Action: func(c *cli.Context) error {
		d, logger, err := openDictionary(c)
		if err != nil {
			return err
		}
		defer d.Close()

		start := uint64(c.Uint("start"))
		end := uint64(d.Count())
		if limit := uint64(c.Uint("limit")); limit > 0 && start+limit < end {
			end = start + limit
		}

		tbl := table.New("ID", "Surface", "Reading", "Normalized", "Dictionary", "POS").WithWriter(c.App.Writer)
		for id := start; id < end; id++ {
			//nolint:gosec // end is at most Count.
			info, err := d.WordInfo(uint32(id))
			if errors.Is(err, lexicon.ErrNotFound) || errors.Is(err, lexicon.ErrDanglingReference) {
				logger.Warn("skipping word", slog.Uint64("word_id", id), slog.String("error", err.Error()))
				continue
			}
			if err != nil {
				return fmt.Errorf("%w: %w", ErrLexutil, err)
			}
			tbl.AddRow(id, info.Surface, info.ReadingForm, info.NormalizedForm, info.DictionaryForm, info.POSID)
		}
		tbl.Print()
		return nil
	},
}
