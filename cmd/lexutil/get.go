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
	"strconv"
	"strings"

	"github.com/rodaine/table"
	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-sudachi/lexicon"
)

var getCommand = &cli.Command{
	Name:      "get",
	Usage:     "print word info for word ids",
	ArgsUsage: "ID...",
	Action: func(c *cli.Context) error {
		if c.NArg() == 0 {
			return fmt.Errorf("%w: missing word id", ErrFlagParse)
		}
		ids := make([]uint32, 0, c.NArg())
		for _, arg := range c.Args().Slice() {
			id, err := strconv.ParseUint(arg, 10, 32)
			if err != nil {
				return fmt.Errorf("%w: invalid word id %q", ErrFlagParse, arg)
			}
			ids = append(ids, uint32(id))
		}

		d, logger, err := openDictionary(c)
		if err != nil {
			return err
		}
		defer d.Close()

		var notFound []string
		for i, id := range ids {
			info, err := d.WordInfo(id)
			if errors.Is(err, lexicon.ErrNotFound) || errors.Is(err, lexicon.ErrDanglingReference) {
				logger.Warn("word not found", slog.Uint64("word_id", uint64(id)), slog.String("error", err.Error()))
				notFound = append(notFound, strconv.FormatUint(uint64(id), 10))
				continue
			}
			if err != nil {
				return fmt.Errorf("%w: %w", ErrLexutil, err)
			}

			if i > 0 {
				fmt.Fprintln(c.App.Writer)
			}
			printWordInfo(c, id, info)
		}

		if len(notFound) > 0 {
			return fmt.Errorf("%w: %s", ErrWordNotFound, strings.Join(notFound, ", "))
		}
		return nil
	},
}

// printWordInfo prints all fields of the word info as a table.
func printWordInfo(c *cli.Context, id uint32, info *lexicon.WordInfo) {
	tbl := table.New("Field", "Value").WithWriter(c.App.Writer)
	tbl.AddRow("id", id)
	tbl.AddRow("surface", info.Surface)
	tbl.AddRow("reading_form", info.ReadingForm)
	tbl.AddRow("normalized_form", info.NormalizedForm)
	tbl.AddRow("dictionary_form", info.DictionaryForm)
	tbl.AddRow("dictionary_form_word_id", info.DictionaryFormWordID)
	tbl.AddRow("pos_id", info.POSID)
	tbl.AddRow("a_unit_split", formatIDs(info.AUnitSplit))
	tbl.AddRow("b_unit_split", formatIDs(info.BUnitSplit))
	tbl.AddRow("word_structure", formatIDs(info.WordStructure))
	for _, w := range info.Warnings {
		tbl.AddRow("warning", w.Error())
	}
	tbl.Print()
}

// formatIDs formats a list of word ids.
func formatIDs(ids []uint32) string {
	s := make([]string, len(ids))
	for i, id := range ids {
		s[i] = strconv.FormatUint(uint64(id), 10)
	}
	return "[" + strings.Join(s, " ") + "]"
}
