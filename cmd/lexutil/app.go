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
	"math"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-sudachi"
	"github.com/ianlewis/go-sudachi/lexicon"
)

const (
	// ExitCodeSuccess is successful error code.
	ExitCodeSuccess int = iota

	// ExitCodeFlagParseError is the exit code for a flag parsing error.
	ExitCodeFlagParseError

	// ExitCodeNotFound is the exit code when a requested word was not found.
	ExitCodeNotFound

	// ExitCodeUnknownError is the exit code for an unknown error.
	ExitCodeUnknownError
)

// ErrLexutil is a parent error for all command errors.
var ErrLexutil = errors.New("lexutil")

// ErrFlagParse is a flag parsing error.
var ErrFlagParse = fmt.Errorf("%w: parsing flags", ErrLexutil)

// ErrWordNotFound indicates that one or more requested words were not found.
var ErrWordNotFound = fmt.Errorf("%w: word not found", ErrLexutil)

var copyrightNames = []string{
	"2026 Ian Lewis",
}

//nolint:gochecknoinits // init needed needed for global variable.
func init() {
	// Set the HelpFlag to a random name so that it isn't used. `cli` handles
	// the flag with the root command such that it takes a command name argument
	// which conflicts with the help flag defined on the app.
	//
	// This flag is hidden by the help output.
	// See: github.com/urfave/cli/issues/1809
	cli.HelpFlag = &cli.BoolFlag{
		// NOTE: Use a random name no one would guess.
		Name:               "d41d8cd98f00b204e980",
		DisableDefaultText: true,
	}
}

// check checks the error and panics if not nil.
func check(err error) {
	if err != nil {
		panic(err)
	}
}

func newLexutilApp(name string) *cli.App {
	return &cli.App{
		Name:  filepath.Base(name),
		Usage: "Inspect the word info table of Sudachi dictionaries.",
		Description: strings.Join([]string{
			"Sudachi dictionary lexicon utility written in Go.",
			"http://github.com/ianlewis/go-sudachi",
		}, "\n"),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "dict",
				Usage:   "read the dictionary from `FILE`",
				Aliases: []string{"f"},
				EnvVars: []string{"LEXUTIL_DICT"},
			},
			&cli.IntFlag{
				Name:    "offset",
				Usage:   "offset table starts at byte `N` (read from the .ifo file if unset)",
				EnvVars: []string{"LEXUTIL_OFFSET"},
			},
			&cli.UintFlag{
				Name:    "count",
				Usage:   "offset table holds `N` entries (read from the .ifo file if unset)",
				EnvVars: []string{"LEXUTIL_COUNT"},
			},
			&cli.BoolFlag{
				Name:               "verbose",
				Usage:              "print debug logs",
				Aliases:            []string{"v"},
				DisableDefaultText: true,
			},

			// Special flags are shown at the end.
			&cli.BoolFlag{
				Name:               "help",
				Usage:              "print this help text and exit",
				Aliases:            []string{"h"},
				DisableDefaultText: true,
			},
			&cli.BoolFlag{
				Name:               "version",
				Usage:              "print version information and exit",
				Aliases:            []string{"V"},
				DisableDefaultText: true,
			},
		},
		Copyright:       strings.Join(copyrightNames, "\n"),
		HideHelp:        true,
		HideHelpCommand: true,
		OnUsageError: func(_ *cli.Context, err error, _ bool) error {
			return fmt.Errorf("%w: %w", ErrFlagParse, err)
		},
		Action: func(c *cli.Context) error {
			if c.Bool("version") {
				return printVersion(c)
			}

			check(cli.ShowAppHelp(c))
			return nil
		},
		Commands: []*cli.Command{
			getCommand,
			dumpCommand,
			searchCommand,
		},
	}
}

// newLogger returns a logger writing to the app's error writer.
func newLogger(c *cli.Context) *slog.Logger {
	level := slog.LevelWarn
	if c.Bool("verbose") {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(c.App.ErrWriter, &slog.HandlerOptions{Level: level}))
}

// openDictionary opens the dictionary given by the global flags.
func openDictionary(c *cli.Context) (*sudachi.Dictionary, *slog.Logger, error) {
	path := c.String("dict")
	if path == "" {
		return nil, nil, fmt.Errorf("%w: missing --dict", ErrFlagParse)
	}
	offset := c.Int("offset")
	if offset < 0 {
		return nil, nil, fmt.Errorf("%w: invalid --offset: %d", ErrFlagParse, offset)
	}
	count := c.Uint("count")
	if count > math.MaxUint32 {
		return nil, nil, fmt.Errorf("%w: invalid --count: %d", ErrFlagParse, count)
	}

	logger := newLogger(c)
	logger.Debug("opening dictionary",
		slog.String("path", path),
		slog.Int("offset", offset),
		slog.Uint64("count", uint64(count)),
	)

	d, err := sudachi.Open(path, &sudachi.Options{
		Offset: offset,
		//nolint:gosec // count is bounds checked above.
		Count: uint32(count),
		Lexicon: &lexicon.Options{
			Logger: logger,
		},
	})
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrLexutil, err)
	}
	return d, logger, nil
}
