// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathtrie

package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/woozymasta/pathtrie"
	"github.com/woozymasta/pathtrie/internal/config"
)

// Set at build time using ldflags.
var version = "dev"

// Execute runs the root command with args and returns the process exit status.
func Execute(args []string) int {
	return execute(args, os.Stdout, os.Stderr)
}

// execute runs the root command with explicit streams.
func execute(args []string, stdout io.Writer, stderr io.Writer) int {
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.Execute()
	if err != nil {
		logger := newLogger(stderr, log.InfoLevel)
		logger.Error("pathtrie failed", "kind", pathtrie.KindOf(err), "err", err)
		if errors.Is(err, errUsage) {
			_, _ = fmt.Fprint(stderr, cmd.UsageString())
		}
	}

	return exitCode(err)
}

// newRootCmd creates the pathtrie root command.
func newRootCmd() *cobra.Command {
	var cfgFile string

	cmd := &cobra.Command{
		Use:   "pathtrie <input-file> <output-file>",
		Short: "Match paths against comma-separated wildcard patterns",
		Long: heredoc.Doc(`
			Read patterns and paths from the input file and write, for every path,
			the nearest pattern (fewest "*" wildcards) or "NO MATCH" to the output file.

			Input file layout:
			  <number of patterns>
			  <pattern per line, tokens separated by ",">
			  <number of paths>
			  <path per line, segments separated by "/">
		`),
		Example: heredoc.Doc(`
			# Classify paths, one result line per path
			$ pathtrie input.txt output.txt

			# Write results as YAML with debug logging
			$ pathtrie --format yaml -v input.txt output.yaml
		`),
		Version:       version,
		Args:          twoFileArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgFile, cmd.Flags())
			if err != nil {
				return err
			}

			logger := newLogger(cmd.ErrOrStderr(), cfg.LogLevel)
			if cfg.ConfigFile != "" {
				logger.Debug("using config file", "path", cfg.ConfigFile)
			}

			return run(logger, cfg, args[0], args[1])
		},
	}

	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %w", errUsage, err)
	})

	flags := cmd.Flags()
	flags.StringVar(&cfgFile, "config", "", "Config file (default is $HOME/.pathtrie.yaml)")
	flags.String(config.KeyFormat, string(pathtrie.FormatText), `Output format: "text", "json" or "yaml"`)
	flags.String(config.KeyWildcard, pathtrie.Wildcard, "Pattern token matching any single path segment")
	flags.String(config.KeyNoMatch, pathtrie.NoMatch, "Label written for paths without a matching pattern")
	flags.String(config.KeyLogLevel, "info", `Log level: "debug", "info", "warn" or "error"`)
	flags.BoolP(config.KeyVerbose, "v", false, "Enable debug logging")

	return cmd
}

// twoFileArgs requires exactly two non-blank positional arguments.
func twoFileArgs(_ *cobra.Command, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("%w: expected exactly two arguments, input file and output file, got %d", errUsage, len(args))
	}

	for _, arg := range args {
		if strings.TrimSpace(arg) == "" {
			return fmt.Errorf("%w: input and output file paths must not be blank", errUsage)
		}
	}

	return nil
}

// run loads input, classifies every path and writes results.
func run(logger *log.Logger, cfg config.Config, inputFile string, outputFile string) error {
	logger.Info("start", "input", inputFile, "output", outputFile)

	input, err := pathtrie.LoadInputFile(inputFile)
	if err != nil {
		return err
	}

	logger.Info("input loaded", "patterns", len(input.Patterns), "paths", len(input.Paths))

	m := pathtrie.NewMatcher(input.Patterns, cfg.Matcher)
	logger.Debug("pattern trie built", "nodes", m.Root().Size())

	results := m.Results(input.Paths)
	matched := 0
	for _, res := range results {
		if res.Matched {
			matched++
		}

		logger.Debug("path classified", "path", res.Path, "pattern", res.Pattern, "wildcards", res.Wildcards)
	}

	if err := pathtrie.WriteResultsFile(outputFile, results, cfg.Format); err != nil {
		return err
	}

	logger.Info("end", "matched", matched, "unmatched", len(results)-matched, "format", cfg.Format)
	return nil
}

// newLogger creates the stderr logger used by the command.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		Prefix:          "pathtrie",
		ReportTimestamp: true,
	})
}
