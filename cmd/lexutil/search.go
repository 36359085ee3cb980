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
	"fmt"

	"github.com/rodaine/table"
	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-sudachi"
)

var searchCommand = &cli.Command{
	Name:      "search",
	Usage:     "search words by surface",
	ArgsUsage: "QUERY",
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:               "prefix",
			Usage:              "match surfaces starting with QUERY",
			DisableDefaultText: true,
		},
	},
	Action: func(c *cli.Context) error {
		if c.NArg() != 1 {
			return fmt.Errorf("%w: unexpected number of arguments", ErrFlagParse)
		}
		query := c.Args().First()

		d, _, err := openDictionary(c)
		if err != nil {
			return err
		}
		defer d.Close()

		var entries []*sudachi.Entry
		if c.Bool("prefix") {
			entries, err = d.SearchPrefix(query)
		} else {
			entries, err = d.Search(query)
		}
		if err != nil {
			return fmt.Errorf("%w: %w", ErrLexutil, err)
		}
		if len(entries) == 0 {
			return fmt.Errorf("%w: %q", ErrWordNotFound, query)
		}

		tbl := table.New("ID", "Surface", "Reading", "Dictionary").WithWriter(c.App.Writer)
		for _, e := range entries {
			info := e.WordInfo()
			tbl.AddRow(e.ID(), info.Surface, info.ReadingForm, info.DictionaryForm)
		}
		tbl.Print()
		return nil
	},
}
